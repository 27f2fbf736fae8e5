package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"glowscore/internal/infra/redis"
	"glowscore/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type RateLimitMiddleware struct {
	limiter *redis.RateLimiter
	cfg     config.RateLimitConfig
}

// NewRateLimitMiddleware accepts a nil limiter; redemption throttling is
// optional and the middleware becomes a pass-through without redis.
func NewRateLimitMiddleware(limiter *redis.RateLimiter, cfg config.RateLimitConfig) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, cfg: cfg}
}

// LimitRedeem throttles redemption attempts per client IP. Redis being down
// fails open: losing the throttle is preferable to refusing every redemption.
func (m *RateLimitMiddleware) LimitRedeem() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := redis.RedeemAttemptKey(c.ClientIP())
		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.cfg.RedeemPerMinute, time.Minute)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err.Error())
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many redemption attempts, try again later",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
