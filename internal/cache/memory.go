package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is an in-process cache store used for development and tests,
// selected with CACHE_BACKEND=memory. Same TTL semantics as Redis, no
// external dependency.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates an in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

// Get returns the cached value for key
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	data, ok := v.([]byte)
	return data, ok
}

// Set stores value under key with the given TTL
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	s.cache.Set(key, value, ttl)
}
