package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// rateLimitKey buckets by authenticated user when the auth middleware ran
// earlier in the chain, by client IP otherwise.
func rateLimitKey(c *gin.Context) string {
	caller, exists := c.Get("user_id")
	if !exists {
		caller = c.ClientIP()
	}
	return fmt.Sprintf("rate_limit:%s:%s", c.Request.URL.Path, caller)
}

func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKey(c)

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			// Rate limiting is best effort; don't fail requests when redis
			// is unreachable.
			c.Next()
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
