package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestRateLimitMiddleware_FailsOpenWithoutRedis(t *testing.T) {
	router := setupTestRouter()
	router.Use(RateLimitMiddleware(unreachableRedis(), 1, time.Minute))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Limit is 1; with redis down every request must still pass.
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitMiddleware_KeysOnAuthenticatedUser(t *testing.T) {
	var key string
	router := setupTestRouter()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "user-123")
	})
	router.Use(RateLimitMiddleware(unreachableRedis(), 100, time.Minute))
	router.GET("/test", func(c *gin.Context) {
		key = rateLimitKey(c)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rate_limit:/test:user-123", key)
}

func TestRateLimitKey_FallsBackToClientIP(t *testing.T) {
	var key string
	router := setupTestRouter()
	router.GET("/test", func(c *gin.Context) {
		key = rateLimitKey(c)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	router.ServeHTTP(w, req)

	assert.Equal(t, "rate_limit:/test:203.0.113.7", key)
}
