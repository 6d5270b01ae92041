package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storeops/internal/infrastructure/ratelimit"
	"storeops/internal/shared/config"
	"storeops/internal/shared/constants"
	"storeops/internal/shared/logger"
	"storeops/internal/shared/utils"
)

// RateLimit throttles requests per admin session, falling back to the
// client IP before authentication ran. Limiter failures fail open; an
// unreachable Redis must not take the API down with it.
func RateLimit(limiter ratelimit.RateLimiter, cfg *config.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	limits := ratelimit.RateLimitConfig{
		RequestsPerMinute: cfg.RequestsPerMinute,
		RequestsPerHour:   cfg.RequestsPerHour,
		RequestsPerDay:    cfg.RequestsPerDay,
	}

	return func(c *gin.Context) {
		if !cfg.Enabled || limiter == nil {
			c.Next()
			return
		}

		key := c.GetString(constants.ContextKeyAdminID)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		allowed, err := limiter.Allow(key, limits)
		if err != nil {
			log.Warnw("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
			c.Abort()
			return
		}

		c.Next()
	}
}
