// Package cache defines the key/value cache interface backing the session
// store and the per-user profile caches.
package cache

import (
	"context"
	"time"
)

// Type represents the cache backend type.
type Type string

const (
	// TypeRedis selects the Redis implementation.
	TypeRedis Type = "redis"
)

// Cache is a byte-valued cache with per-key TTL.
type Cache interface {
	// Get retrieves a value by key. Returns nil when the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value. A zero ttl means the backend's default; a negative
	// ttl stores without expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Returns true if the key existed.
	Delete(ctx context.Context, key string) (bool, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the connection.
	Close() error
}
