// Package cache provides byte caches for expensive render artifacts.
//
// The CLI uses a [FileCache] to keep Graphviz SVG output keyed by the hash
// of the DOT text that produced it, so re-exporting an unchanged graph skips
// the render entirely. [NullCache] disables caching without branching at the
// call sites, and [Scoped] namespaces keys when several artifact kinds share
// one directory.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional expiry.
// Implementations must treat a missing key as a miss, not an error.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}

// Scoped wraps a cache with a key prefix so independent artifact kinds can
// share a backing store without colliding.
type Scoped struct {
	inner  Cache
	prefix string
}

// NewScoped creates a prefix-scoped view of inner.
func NewScoped(inner Cache, prefix string) *Scoped {
	return &Scoped{inner: inner, prefix: prefix}
}

// Get retrieves a value under the prefixed key.
func (s *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

// Set stores a value under the prefixed key.
func (s *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

// Delete removes the value under the prefixed key.
func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Close closes the underlying cache.
func (s *Scoped) Close() error { return s.inner.Close() }

var _ Cache = (*Scoped)(nil)
