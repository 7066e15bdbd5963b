// Package cache stores rendered artifacts keyed by a hash of the options
// that produced them.
//
// Three backends are provided:
//   - [FileCache] for the CLI, one raw file per entry under a cache dir
//   - [RedisCache] for the HTTP service, shared between replicas
//   - [NullCache] when caching is disabled
//
// Keys come from a [Keyer] so that every backend agrees on naming.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
//
// Get returns (nil, false, nil) on a miss; an error means the backend
// itself failed. A ttl of 0 stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
