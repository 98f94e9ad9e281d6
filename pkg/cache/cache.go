// Package cache provides byte-level caching for rendered artifacts.
//
// Rendering a DOT graph to SVG, PDF, or PNG is deterministic in its input,
// so the render command caches artifacts keyed on a hash of the DOT text and
// output format. The module cache inside the loader is a different thing
// entirely (interpreter memoization semantics) and deliberately does not use
// this package.
//
// Two implementations exist: [FileCache] for normal CLI use (XDG cache
// directory) and [NullCache] for --no-cache runs and tests.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
