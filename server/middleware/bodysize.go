package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/webcore/envelope"
	"github.com/skillsenselab/webcore/errors"
)

// DefaultMaxBodySize caps request bodies when no limit is configured.
const DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB

// BodySizeLimit restricts the request body to maxBytes. Oversized bodies are
// rejected up front with a PayloadTooLargeError envelope when the request
// declares its length, or aborted mid-read otherwise.
func BodySizeLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			e := errors.PayloadTooLarge("").WithDetail("maxBytes", maxBytes)
			c.AbortWithStatusJSON(e.HTTPStatus(), envelope.RenderREST(e))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
