package middleware

import (
	"mealmarket-be/internal/logger"
	"mealmarket-be/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requestsServed counts every request the logger saw since startup.
var requestsServed metrics.Counter

// RequestLogger tags each request with a request id and logs it in
// structured JSON once the handler chain finishes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := metrics.StartTimer()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)

		c.Next()

		requestsServed.Inc()

		logger.FromCtx(ctx).Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("duration", timer.Duration().String()),
			zap.String("remoteIP", c.ClientIP()),
			zap.String("userID", c.GetString(UserIDKey)),
			zap.Uint64("served", requestsServed.Load()),
		)
	}
}
