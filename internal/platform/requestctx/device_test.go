package requestctx

import (
	"context"
	"testing"
)

func TestDeviceIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithDeviceID(context.Background(), "device-1")
	if got := DeviceIDFromContext(ctx); got != "device-1" {
		t.Fatalf("DeviceIDFromContext() = %q, want %q", got, "device-1")
	}
}

func TestDeviceIDFromContextMissing(t *testing.T) {
	t.Parallel()

	if got := DeviceIDFromContext(context.Background()); got != "" {
		t.Fatalf("DeviceIDFromContext() = %q, want empty", got)
	}
	//nolint:staticcheck // nil context is part of the contract.
	if got := DeviceIDFromContext(nil); got != "" {
		t.Fatalf("DeviceIDFromContext(nil) = %q, want empty", got)
	}
}

func TestWithDeviceIDNilContext(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // nil context is part of the contract.
	ctx := WithDeviceID(nil, "device-2")
	if got := DeviceIDFromContext(ctx); got != "device-2" {
		t.Fatalf("DeviceIDFromContext() = %q, want %q", got, "device-2")
	}
}
