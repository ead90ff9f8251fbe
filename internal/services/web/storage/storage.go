package storage

import (
	"context"
	"errors"
	"strings"
)

// ErrKeyRequired rejects blank slot keys.
var ErrKeyRequired = errors.New("slot key is required")

// Store holds one opaque value per key. A value is written or replaced in a
// single operation so a reader never sees a partial record.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NormalizeKey trims key and reports whether it is usable.
func NormalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrKeyRequired
	}
	return key, nil
}
