package middleware

import (
	"github.com/decklens/core/internal/pkg/ratelimit"
	"github.com/decklens/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const rateLimitMessage = "Too many requests from this IP, please try again after an hour"

// RateLimit returns a middleware guarding expensive endpoints with the
// injected admission gate. Limiter failures fail open: a broken counter
// backend must not take the whole pipeline down with it.
func RateLimit(limiter ratelimit.Limiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		allowed, err := limiter.Admit(c.Request.Context(), ip)
		if err != nil {
			log.Warn("admission gate unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			c.Header("Retry-After", "3600")
			response.TooManyRequests(c, rateLimitMessage)
			return
		}
		c.Next()
	}
}
