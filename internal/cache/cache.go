// Package cache provides TTL-bounded key-value stores used for behavior
// profile caching and recommendation response caching. Stores are injected
// into their consumers; nothing in this package is module-level mutable state.
package cache

import (
	"context"
	"time"
)

// Store is a TTL-bounded key-value store. Values are opaque byte slices;
// callers own serialization.
type Store interface {
	// Get returns the value for key, or found=false when absent or expired
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key for at most ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key if present
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store
	Close() error
}
