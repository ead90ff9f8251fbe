// Package timeouts defines shared timeout constants used across the service.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// DeviceIdle is how long a device's in-memory state and onboarding flow may
// sit unused before the janitor evicts them. Persisted state is unaffected.
const DeviceIdle = 30 * time.Minute

// SweepInterval is how often the janitor looks for idle devices.
const SweepInterval = 5 * time.Minute
