package mw

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Leganyst/session-scheduler/internal/logging"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger кладёт в контекст запроса логгер с request_id и пишет
// итог запроса одной строкой.
func RequestLogger(base *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		logger := base.With("request_id", requestID)
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))

		start := time.Now()
		c.Next()

		kv := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("http request", kv...)
		case status >= 400:
			logger.Info("http request", kv...)
		default:
			logger.Debug("http request", kv...)
		}
	}
}
