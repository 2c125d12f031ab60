// Package cache holds the read-through availability cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"booth-booking/internal/infra/metrics"
	"booth-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "availability:"

// RedisCache stores JSON values with a fixed TTL. Values may be up to TTL stale.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheLookups.WithLabelValues("miss").Inc()
			return false, nil
		}
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return false, errs.Wrap(err, "redis get")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return false, errs.Wrap(err, "decode cached availability")
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "encode availability")
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set")
	}
	return nil
}

// NoopCache always misses.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NoopCache) Set(context.Context, string, any) error         { return nil }
