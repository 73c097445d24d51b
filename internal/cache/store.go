package cache

import (
	"context"
	"time"
)

// Store is a key-value cache with expiring entries. Values are opaque
// JSON-serialized payloads.
//
// Both implementations fail open: a Get against an unreachable store
// reports a miss and a failed Set is logged and dropped, so a cache outage
// degrades to uncached operation instead of failing requests.
type Store interface {
	// Get returns the cached value for key, or false if the key is absent,
	// expired, or the store is unreachable.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for the given TTL. Errors are never
	// surfaced to the caller.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
