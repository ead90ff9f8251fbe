package appstate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/smarthealth/internal/platform/i18n"
)

func TestRegistryReturnsSameStorePerDevice(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(newFakeKV(), nil)
	first, err := registry.Store(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	second, err := registry.Store(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if first != second {
		t.Fatal("expected the same store instance")
	}
	other, err := registry.Store(context.Background(), "device-2")
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if other == first {
		t.Fatal("expected distinct stores per device")
	}
}

func TestRegistryLoadsPersistedState(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	kv.values[SlotKey("device-1")] = []byte(`{"language":"bn","role":"asha","onboarded":true}`)
	registry := NewRegistry(kv, nil)
	store, err := registry.Store(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if got := store.Snapshot(); got.Language != i18n.Bengali || got.Role != RoleASHA || !got.Onboarded {
		t.Fatalf("Snapshot() = %+v", got)
	}
}

func TestRegistryRequiresDeviceID(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(newFakeKV(), nil)
	if _, err := registry.Store(context.Background(), " "); !errors.Is(err, ErrDeviceRequired) {
		t.Fatalf("Store() error = %v, want ErrDeviceRequired", err)
	}
}

func TestRegistryRetriesFailedLoad(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	kv.failGet = true
	registry := NewRegistry(kv, nil)
	if _, err := registry.Store(context.Background(), "device-1"); err == nil {
		t.Fatal("expected load failure")
	}
	kv.mu.Lock()
	kv.failGet = false
	kv.mu.Unlock()
	if _, err := registry.Store(context.Background(), "device-1"); err != nil {
		t.Fatalf("Store() retry error = %v", err)
	}
}

func TestRegistrySweepEvictsIdleStores(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	registry := NewRegistry(newFakeKV(), nil)
	registry.now = func() time.Time { return now }

	if _, err := registry.Store(context.Background(), "old"); err != nil {
		t.Fatalf("Store(old) error = %v", err)
	}
	now = now.Add(time.Hour)
	if _, err := registry.Store(context.Background(), "fresh"); err != nil {
		t.Fatalf("Store(fresh) error = %v", err)
	}

	if removed := registry.Sweep(30 * time.Minute); removed != 1 {
		t.Fatalf("Sweep() removed %d, want 1", removed)
	}
	if registry.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", registry.Len())
	}
	registry.Forget("fresh")
	if registry.Len() != 0 {
		t.Fatalf("Len() after Forget = %d, want 0", registry.Len())
	}
}
