package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/webcore/envelope"
	"github.com/skillsenselab/webcore/policy"
)

// RequirePolicy evaluates policies before the handler runs. On the first
// denial the pipeline halts and the denial's error envelope is rendered;
// the handler never executes.
func RequirePolicy(gate *policy.Gate, cfg policy.Config, policies ...policy.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := gate.EvaluateAll(c.Request.Context(), cfg, policies...)
		if !d.Allowed() {
			c.AbortWithStatusJSON(d.Err.HTTPStatus(), envelope.RenderREST(d.Err))
			return
		}
		c.Next()
	}
}
