package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"frota-backend/pkg/ratelimit"
)

// LoginRateLimit throttles credential guessing per client IP. A limiter
// error does not block the request; the limiter fails open.
func LoginRateLimit(limiter *ratelimit.RedisLimiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, retryAfter, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many login attempts. Try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
