package cache

import (
	"context"
	"time"
)

// NullCache discards every diagram handed to it, so the pipeline recomputes
// on each run. It backs the CLI's --no-cache flag and the server's "none"
// cache backend.
type NullCache struct{}

// NewNullCache creates a cache that never stores a diagram.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always reports a miss, forcing a fresh layout computation.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the diagram.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing; there is never anything stored.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
