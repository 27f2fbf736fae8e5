package components

import (
	"glowscore/internal/handler"
	"glowscore/internal/handler/api"
	"glowscore/internal/handler/middleware"
	"glowscore/internal/infra/redis"
	"glowscore/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRedeemHandler,
		api.NewAdminHandler,
		api.NewAnalysisHandler,
		middleware.NewAdminMiddleware,
		func(limiter *redis.RateLimiter, cfg config.Config) *middleware.RateLimitMiddleware {
			return middleware.NewRateLimitMiddleware(limiter, cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
