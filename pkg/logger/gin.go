package logger

import (
	"time"

	"challengecart/pkg/correlation"

	"github.com/gin-gonic/gin"
)

// CorrelationMiddleware extracts X-Correlation-ID from the request header or
// generates a new one. The ID is stored in the request context and echoed in
// the response header.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, corrID := correlation.Ensure(c.Request.Context(), c.GetHeader(correlation.Header))
		c.Request = c.Request.WithContext(ctx)
		c.Header(correlation.Header, corrID)

		c.Next()
	}
}

// GinRequestLogger logs one record per request with method, path, status and
// latency. Bodies are not logged; webhook payloads may carry customer data.
func (l *Logger) GinRequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		l.InfoContext(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
