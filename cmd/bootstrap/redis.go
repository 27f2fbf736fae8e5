package bootstrap

import (
	"context"
	"log/slog"

	"glowscore/internal/infra/redis"
	"glowscore/internal/pkg/config"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRateLimiter,
	),
)

// NewRateLimiter returns nil when no redis address is configured; the
// rate-limit middleware treats a nil limiter as a pass-through.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config) (*redis.RateLimiter, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("redis not configured, redemption rate limiting disabled")
		return nil, nil
	}

	client, err := redis.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return redis.NewRateLimiter(client), nil
}
