package onboarding

import (
	"strings"
	"sync"
	"time"
)

// Registry keeps the in-progress flow for each device.
type Registry struct {
	scheduler Scheduler
	timings   Timings

	mu    sync.Mutex
	flows map[string]*registryEntry
}

type registryEntry struct {
	flow     *Flow
	lastUsed time.Time
}

// NewRegistry builds an empty flow registry.
func NewRegistry(scheduler Scheduler, timings Timings) *Registry {
	if scheduler == nil {
		scheduler = ClockScheduler{}
	}
	return &Registry{
		scheduler: scheduler,
		timings:   timings,
		flows:     map[string]*registryEntry{},
	}
}

// Timings returns the delays flows are built with.
func (r *Registry) Timings() Timings {
	return r.timings
}

// Flow returns the started flow for deviceID, creating it over store when
// the device has none.
func (r *Registry) Flow(deviceID string, store StateStore) *Flow {
	deviceID = strings.TrimSpace(deviceID)
	r.mu.Lock()
	entry, ok := r.flows[deviceID]
	if !ok {
		entry = &registryEntry{flow: NewFlow(store, r.scheduler, r.timings)}
		r.flows[deviceID] = entry
	}
	entry.lastUsed = r.scheduler.Now()
	r.mu.Unlock()

	entry.flow.Start()
	return entry.flow
}

// Lookup returns the flow for deviceID without creating one.
func (r *Registry) Lookup(deviceID string) (*Flow, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.flows[strings.TrimSpace(deviceID)]
	if !ok {
		return nil, false
	}
	entry.lastUsed = r.scheduler.Now()
	return entry.flow, true
}

// Remove stops and drops the flow for deviceID.
func (r *Registry) Remove(deviceID string) {
	r.mu.Lock()
	entry, ok := r.flows[strings.TrimSpace(deviceID)]
	delete(r.flows, strings.TrimSpace(deviceID))
	r.mu.Unlock()
	if ok {
		entry.flow.Stop()
	}
}

// Sweep stops and drops flows unused for longer than idle.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := r.scheduler.Now().Add(-idle)
	var stale []*Flow
	r.mu.Lock()
	for deviceID, entry := range r.flows {
		if entry.lastUsed.Before(cutoff) {
			stale = append(stale, entry.flow)
			delete(r.flows, deviceID)
		}
	}
	r.mu.Unlock()
	for _, flow := range stale {
		flow.Stop()
	}
	return len(stale)
}

// Len reports how many flows are in progress.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.flows)
}
