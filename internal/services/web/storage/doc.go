// Package storage defines the key-value slot contract backing per-device
// application state.
package storage
