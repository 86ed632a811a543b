// Package cache stores computed diagrams keyed by their input.
//
// The engine is a pure function of its edge list and options, so a cached
// diagram is always valid for the exact input that produced it. Keys are
// content hashes; there is no invalidation beyond TTL expiry.
//
// Three backends are provided: [FileCache] for CLI use, [RedisCache] for
// the API server, and [NullCache] to disable caching.
package cache

import (
	"context"
	"time"
)

// TTLDiagram is how long computed diagrams stay cached.
// Diagrams are cheap to recompute; the TTL mainly bounds disk growth.
const TTLDiagram = 7 * 24 * time.Hour

// Cache is the storage interface shared by all backends.
// A miss is (nil, false, nil); errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DiagramKey generates the cache key for a computed diagram from the
// content hash of its edges and options.
func DiagramKey(inputHash string) string {
	return "diagram:" + inputHash
}
