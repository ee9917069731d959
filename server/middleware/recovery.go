package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/webcore/envelope"
	"github.com/skillsenselab/webcore/errors"
	"github.com/skillsenselab/webcore/logger"
)

// Recovery returns a Gin middleware that recovers from panics, logs the
// stack, and renders the generic internal-error envelope.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Panic recovered", logger.Fields(
					logger.FieldError, fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				))
				e := errors.Application("")
				c.AbortWithStatusJSON(e.HTTPStatus(), envelope.RenderREST(e))
			}
		}()
		c.Next()
	}
}
