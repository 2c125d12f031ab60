package bootstrap

import (
	"context"
	"log/slog"

	"booth-booking/internal/handler/middleware"
	"booth-booking/internal/infra/cache"
	"booth-booking/internal/infra/ratelimit"
	"booth-booking/internal/pkg/config"
	"booth-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewAvailabilityCache,
		NewRateLimiter,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is empty; caching and rate limiting are then switched off.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("redis not configured, availability cache and rate limiting disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// the cache and limiter both fail open
				slog.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func NewAvailabilityCache(client *redis.Client, cfg config.Config) queries.AvailabilityCache {
	if client == nil {
		return cache.NoopCache{}
	}
	return cache.NewRedisCache(client, cfg.Redis.CacheTTL)
}

func NewRateLimiter(client *redis.Client, cfg config.Config) middleware.RateLimiter {
	if client == nil || !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.NewTokenBucket(client, cfg.RateLimit)
}
