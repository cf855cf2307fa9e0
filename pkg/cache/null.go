package cache

import (
	"context"
	"time"
)

// NullCache satisfies [Cache] without storing anything. Every Get is a miss.
type NullCache struct{}

// NewNullCache returns a cache that drops all writes.
func NewNullCache() *NullCache { return &NullCache{} }

func (*NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (*NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

func (*NullCache) Delete(ctx context.Context, key string) error { return nil }

func (*NullCache) Close() error { return nil }
