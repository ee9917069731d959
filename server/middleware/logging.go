package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/webcore/logger"
)

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	log = log.WithComponent("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logger.Fields(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			logger.FieldStatus, c.Writer.Status(),
			logger.FieldDuration, time.Since(start).Milliseconds(),
		)
		if id := c.GetString(ContextRequestID); id != "" {
			fields[logger.FieldRequestID] = id
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("Request failed", fields)
		case c.Writer.Status() >= 400:
			log.Warn("Request rejected", fields)
		default:
			log.Info("Request completed", fields)
		}
	}
}
