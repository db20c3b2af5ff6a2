package cache

import (
	"context"
	"time"

	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Keyed is the one cache-aside helper shared by every entity type. Reads go
// through the cache, mutations delete keys instead of rewriting them, and a
// broken cache never fails the calling operation: every cache error is logged
// and the loader result is returned instead.
type Keyed[T any] struct {
	redis contracts.RedisRepository
	log   *zap.Logger
	ttl   time.Duration
}

func NewKeyed[T any](redis contracts.RedisRepository, log *zap.Logger, ttl time.Duration) *Keyed[T] {
	return &Keyed[T]{redis: redis, log: log, ttl: ttl}
}

// GetOrLoad returns the cached value for key, falling back to loader on miss
// (or on any cache failure) and writing the loaded value back.
func (c *Keyed[T]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (*T, error)) (*T, error) {
	raw, err := c.redis.Get(ctx, key)
	if err != nil {
		c.log.Warn("cache read failed, falling through to store",
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	} else if raw != "" {
		value := new(T)
		if err := json.Unmarshal([]byte(raw), value); err == nil {
			return value, nil
		}
		c.log.Warn("cache entry is not decodable, falling through to store",
			zap.String(constvars.LoggingCacheKey, key),
		)
	}

	value, err := loader(ctx)
	if err != nil {
		return nil, err
	}

	c.Set(ctx, key, value)
	return value, nil
}

// Set writes value under key with the helper's TTL. Failures are logged only.
func (c *Keyed[T]) Set(ctx context.Context, key string, value *T) {
	if err := c.redis.Set(ctx, key, value, c.ttl); err != nil {
		c.log.Warn("cache write failed",
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}
}

// Invalidate removes the given keys. Failures are logged only.
func (c *Keyed[T]) Invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := c.redis.Delete(ctx, key); err != nil {
			c.log.Warn("cache invalidation failed",
				zap.String(constvars.LoggingCacheKey, key),
				zap.Error(err),
			)
		}
	}
}

// InvalidatePattern removes every key matching the pattern.
func (c *Keyed[T]) InvalidatePattern(ctx context.Context, pattern string) {
	keys, err := c.redis.Keys(ctx, pattern)
	if err != nil {
		c.log.Warn("cache pattern scan failed",
			zap.String(constvars.LoggingCacheKey, pattern),
			zap.Error(err),
		)
		return
	}
	c.Invalidate(ctx, keys...)
}
