package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/webcore/envelope"
	"github.com/skillsenselab/webcore/errors"
)

// DataResponse is the success envelope: data is set and error is null.
type DataResponse struct {
	Data  any `json:"data"`
	Error any `json:"error"`
}

// RespondError renders err as the REST error envelope. Taxonomy errors keep
// their kind's status; anything else is coerced to an ApplicationError with
// a safe message, so internal diagnostics never reach the wire.
func RespondError(c *gin.Context, err error) {
	e := errors.Coerce(err)
	c.JSON(e.HTTPStatus(), envelope.RenderREST(e))
}

// RespondGraphQLError renders err as the GraphQL error envelope for the
// given operation name. GraphQL errors ride a 200 response.
func RespondGraphQLError(c *gin.Context, operationName string, err error) {
	e := errors.Coerce(err)
	c.JSON(http.StatusOK, envelope.RenderGraphQL(e, operationName))
}

// RespondOK sends a 200 response wrapping data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// RespondCreated sends a 201 response wrapping data.
func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, DataResponse{Data: data})
}

// RespondNoContent sends a 204 with no body.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
