// Package middleware contains the gin middleware shared by all routes.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
)

// RequestMetrics is the slice of the metrics surface the logger middleware
// feeds.
type RequestMetrics interface {
	RecordHTTPRequest(method, path string, statusCode int, duration time.Duration)
}

// Logging returns a middleware that logs every request and records request
// metrics. metrics may be nil.
func Logging(log logging.Logger, metrics RequestMetrics) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()

		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", path),
			logging.Int("status", status),
			logging.Duration("duration", duration),
			logging.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logging.String("errors", c.Errors.String()))
		}
		switch {
		case status >= 500:
			log.Error("request completed", fields...)
		case status >= 400:
			log.Warn("request completed", fields...)
		default:
			log.Info("request completed", fields...)
		}

		if metrics != nil {
			metrics.RecordHTTPRequest(c.Request.Method, path, status, duration)
		}
	}
}

// Recovery returns a middleware that converts panics into 500 responses and
// logs the panic value.
func Recovery(log logging.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					logging.String("path", c.Request.URL.Path),
					logging.Any("panic", r),
				)
				c.AbortWithStatusJSON(500, gin.H{"code": "COMMON_001", "message": "internal server error"})
			}
		}()
		c.Next()
	}
}
