// Package cache stores rendered artifacts keyed by a hash of their inputs.
//
// # Backends
//
//   - [FileCache]: one file per entry under a directory, used by the CLI
//   - [RedisCache]: a shared cache for the HTTP server
//   - [NullCache]: never stores anything, used with --no-cache
//
// # Keys
//
// A [Keyer] maps the hash of a board and its render options to a cache key:
//
//	key := keyer.ArtifactKey(boardHash, cache.ArtifactKeyOpts{Format: "svg", ConfigHash: h})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long rendered artifacts are kept.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte store with expiration.
type Cache interface {
	// Get returns the stored value and whether it was found. A missing or
	// expired entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
