package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"mealmarket-be/internal/logger"
	"mealmarket-be/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// throttled counts rejections across all tiers.
var throttled metrics.Counter

// Rate Limit Tiers
const (
	// Auth / login (Strict)
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// General (Default)
	limitGeneral = rate.Limit(10)
	burstGeneral = 20
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

// init starts the background cleanup routine.
func init() {
	go cleanupVisitors()
}

// getVisitor retrieves or creates a rate limiter for the given bucket key.
func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes old entries from the visitors map to prevent memory leaks.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		mu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		mu.Unlock()
	}
}

// RateLimit applies the general tier per client.
func RateLimit() gin.HandlerFunc {
	return rateLimit(limitGeneral, burstGeneral, "general")
}

// RateLimitStrict applies the strict tier, meant for login and register.
func RateLimitStrict() gin.HandlerFunc {
	return rateLimit(limitStrict, burstStrict, "strict")
}

func rateLimit(limit rate.Limit, burst int, tier string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prefer user ID if authenticated, fall back to client IP.
		identity := c.GetString(UserIDKey)
		if identity == "" {
			identity = "ip:" + c.ClientIP()
		} else {
			identity = "user:" + identity
		}

		// The same user gets separate quotas for strict vs general actions.
		key := fmt.Sprintf("%s:%s", identity, tier)

		limiter := getVisitor(key, limit, burst)
		if !limiter.Allow() {
			throttled.Inc()
			logger.FromCtx(c.Request.Context()).Warn("rate limit exceeded",
				zap.String("bucket", key),
				zap.Uint64("throttled_total", throttled.Load()),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
