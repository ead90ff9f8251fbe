// Package requestctx carries request-scoped identity through context.
package requestctx

import "context"

type deviceIDContextKey struct{}

// WithDeviceID stores the browser device identifier in context.
func WithDeviceID(ctx context.Context, deviceID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, deviceIDContextKey{}, deviceID)
}

// DeviceIDFromContext returns the device identifier stored in context, or
// the empty string when none was attached.
func DeviceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(deviceIDContextKey{}).(string)
	return value
}
