package cache

import (
	"context"
	"time"
)

// Cache stores rendered response bodies keyed by content section.
// Get reports a miss with found=false rather than an error.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NoopCache misses on every read. Used when no Redis is configured.
type NoopCache struct{}

func NewNoop() *NoopCache { return &NoopCache{} }

func (*NoopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (*NoopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NoopCache) Delete(context.Context, string) error { return nil }
