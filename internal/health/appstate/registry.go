package appstate

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrDeviceRequired is returned when a store is requested without a device id.
var ErrDeviceRequired = errors.New("appstate: device id is required")

// Registry owns one Store per device and hands the same instance to every
// screen rendered for that device.
type Registry struct {
	kv         KeyValue
	translator Translator
	now        func() time.Time

	mu      sync.Mutex
	entries map[string]*registryEntry
}

type registryEntry struct {
	store    *Store
	lastUsed time.Time
}

// NewRegistry builds a registry whose stores share kv and translator.
func NewRegistry(kv KeyValue, translator Translator) *Registry {
	return &Registry{
		kv:         kv,
		translator: translator,
		now:        time.Now,
		entries:    map[string]*registryEntry{},
	}
}

// Store returns the loaded store for deviceID, creating and loading it on
// first use. A failed load is retried on the next call.
func (r *Registry) Store(ctx context.Context, deviceID string) (*Store, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, ErrDeviceRequired
	}

	r.mu.Lock()
	entry, ok := r.entries[deviceID]
	if !ok {
		entry = &registryEntry{store: NewStore(r.kv, SlotKey(deviceID), r.translator)}
		r.entries[deviceID] = entry
	}
	entry.lastUsed = r.now()
	r.mu.Unlock()

	if err := entry.store.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return entry.store, nil
}

// Forget drops the cached store for deviceID. Persisted state is kept.
func (r *Registry) Forget(deviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, strings.TrimSpace(deviceID))
}

// Sweep evicts stores unused for longer than idle and reports how many
// were removed.
func (r *Registry) Sweep(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-idle)
	removed := 0
	for deviceID, entry := range r.entries {
		if entry.lastUsed.Before(cutoff) {
			delete(r.entries, deviceID)
			removed++
		}
	}
	return removed
}

// Len reports how many device stores are cached.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
