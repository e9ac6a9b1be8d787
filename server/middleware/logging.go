package middleware

import (
	"slices"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/errkit/logger"
)

var quietPaths = []string{"/health", "/version"}

// RequestLogger logs every completed request with its final status, after
// the error handler has written the response. Requests that raised errors
// are logged at debug since the error handler reports them. Health and
// version endpoints are skipped.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if slices.Contains(quietPaths, path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := logger.Merge(
			logger.DurationFields(time.Since(start)),
			logger.Fields(
				logger.FieldMethod, c.Request.Method,
				logger.FieldPath, path,
				logger.FieldStatusCode, status,
				logger.FieldClientIP, c.ClientIP(),
			),
		)
		if route := c.FullPath(); route != "" {
			fields[logger.FieldRoute] = route
		}
		if id := GetRequestID(c); id != "" {
			fields[logger.FieldRequestID] = id
		}
		if len(c.Errors) > 0 {
			// The error handler already logged the failure.
			log.Debug("Request completed", fields)
			return
		}
		logByStatus(log, fields, status)
	}
}

// logByStatus logs at error for 5xx, warn for 4xx and debug otherwise.
func logByStatus(log *logger.Logger, fields map[string]interface{}, status int) {
	switch {
	case status >= 500:
		log.Error("Request completed", fields)
	case status >= 400:
		log.Warn("Request completed", fields)
	default:
		log.Debug("Request completed", fields)
	}
}
