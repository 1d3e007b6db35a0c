package cache

import (
	"bytes"
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// Memory cache defaults.
const (
	DefaultMemorySize = 256
	DefaultMemoryTTL  = 10 * time.Minute
)

// MemoryCache is an in-process LRU cache with a cache-wide TTL.
// The per-entry ttl passed to Set is ignored; entries expire after the TTL
// given to NewMemoryCache.
type MemoryCache struct {
	lru *lru.LRU[string, []byte]
}

// NewMemoryCache creates a cache holding at most size entries for ttl.
// Non-positive arguments select DefaultMemorySize and DefaultMemoryTTL.
func NewMemoryCache(size int, ttl time.Duration) *MemoryCache {
	if size <= 0 {
		size = DefaultMemorySize
	}
	if ttl <= 0 {
		ttl = DefaultMemoryTTL
	}
	return &MemoryCache{lru: lru.NewLRU[string, []byte](size, nil, ttl)}
}

// Get retrieves a copy of the cached value.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(data), true, nil
}

// Set stores a copy of data.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.lru.Add(key, bytes.Clone(data))
	return nil
}

// Delete removes key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

// Purge drops every entry.
func (c *MemoryCache) Purge(ctx context.Context) error {
	c.lru.Purge()
	return nil
}

// Len returns the number of live entries.
func (c *MemoryCache) Len() int { return c.lru.Len() }

// Close purges the cache.
func (c *MemoryCache) Close() error {
	c.lru.Purge()
	return nil
}

var _ Cache = (*MemoryCache)(nil)
