package cache

import (
	"context"
	"time"

	"github.com/matzehuels/mosaic/pkg/observability"
)

// Observed wraps c so that lookups report to the registered
// [observability.CacheHooks].
func Observed(c Cache) Cache {
	return &observed{Cache: c}
}

type observed struct {
	Cache
}

func (o *observed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := o.Cache.Get(ctx, key)
	if err == nil {
		if hit {
			observability.Cache().OnCacheHit(ctx, key)
		} else {
			observability.Cache().OnCacheMiss(ctx, key)
		}
	}
	return data, hit, err
}

func (o *observed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := o.Cache.Set(ctx, key, data, ttl)
	if err == nil {
		observability.Cache().OnCacheSet(ctx, key, len(data))
	}
	return err
}

// Clear forwards to the wrapped cache when it supports clearing.
func (o *observed) Clear(ctx context.Context) (int, error) {
	if c, ok := o.Cache.(Clearer); ok {
		return c.Clear(ctx)
	}
	return 0, nil
}
