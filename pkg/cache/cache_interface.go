package cache

import (
	"context"
	"time"
)

// Cache is the contract for the list/page cache. The Redis
// implementation lives in internal/infrastructure/cache; tests swap in
// an in-memory fake.
type Cache interface {
	// Get loads a cached value into dest.
	// found = false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern
	// (used for locale-variant page keys, e.g. "pages:blog:*").
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
