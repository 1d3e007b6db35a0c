// Package cache provides byte-level caches used to avoid re-parsing the
// control file when it has not changed.
//
// Four backends implement [Cache]:
//   - [NullCache]: never stores anything (the default; every query re-reads the file)
//   - [MemoryCache]: in-process LRU with expiry, for the HTTP server
//   - [FileCache]: JSON files on disk, shared between CLI invocations
//   - [RedisCache]: shared across server instances
//
// Callers build keys with [Key] so that any change to the inputs (path,
// size, modification time) yields a new key. Stale entries are never read;
// they only age out.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 means the backend default.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Purge removes every entry owned by this cache.
	Purge(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}
