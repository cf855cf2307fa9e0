// Package cache provides pluggable storage for rendered graph artifacts.
//
// # Overview
//
// Rendering a relationship graph is expensive: it fans out into many API
// requests and runs a Graphviz layout. Renders are deterministic for an
// unchanged remote state, so finished artifacts (SVG plus DOT) are cached
// keyed by the DOT text and layout engine. When the remote graph changes the
// DOT changes with it, which invalidates the key without any bookkeeping.
//
// # Backends
//
//   - [FileCache]: entries as files under a directory, for CLI usage
//   - [RedisCache]: shared cache for multi-instance server deployments
//   - [NullCache]: disables caching (testing, --no-cache)
//
// All backends store opaque bytes with a TTL; serialization is the caller's
// concern.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrClosed is returned by operations on a cache that has been closed.
var ErrClosed = errors.New("cache closed")

// Cache stores opaque byte values with per-entry expiration.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and fresh; expired or missing entries are a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
