package envelope

import (
	"github.com/skillsenselab/webcore/errors"
)

// RESTEnvelope is the REST error response body.
type RESTEnvelope struct {
	Data  any       `json:"data"`
	Error RESTError `json:"error"`
}

// RESTError carries the error fields sent to REST clients.
type RESTError struct {
	Status  int            `json:"status"`
	Name    string         `json:"name"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// GraphQLEnvelope is the GraphQL error response body.
type GraphQLEnvelope struct {
	Errors []GraphQLError `json:"errors"`
	Data   map[string]any `json:"data"`
}

// GraphQLError is a single entry in the GraphQL errors list.
type GraphQLError struct {
	Message    string            `json:"message"`
	Extensions GraphQLExtensions `json:"extensions"`
}

// GraphQLExtensions carries the structured error and the convention code.
type GraphQLExtensions struct {
	Error GraphQLErrorDetail `json:"error"`
	Code  string             `json:"code"`
}

// GraphQLErrorDetail mirrors the stable error fields inside extensions.
type GraphQLErrorDetail struct {
	Name    string         `json:"name"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// RenderREST converts an error instance into the REST envelope:
//
//	{"data": null, "error": {"status", "name", "message", "details"}}
func RenderREST(e *errors.Error) RESTEnvelope {
	return RESTEnvelope{
		Data: nil,
		Error: RESTError{
			Status:  e.Kind.HTTPStatus(),
			Name:    e.Kind.Name(),
			Message: e.Message,
			Details: cloneDetails(e.Details),
		},
	}
}

// RenderGraphQL converts an error instance into the GraphQL envelope for the
// given operation name:
//
//	{"errors": [{"message", "extensions": {"error": {...}, "code"}}],
//	 "data": {<operationName>: null}}
func RenderGraphQL(e *errors.Error, operationName string) GraphQLEnvelope {
	return GraphQLEnvelope{
		Errors: []GraphQLError{{
			Message: e.Message,
			Extensions: GraphQLExtensions{
				Error: GraphQLErrorDetail{
					Name:    e.Kind.Name(),
					Message: e.Message,
					Details: cloneDetails(e.Details),
				},
				Code: GraphQLCode(e.Kind),
			},
		}},
		Data: map[string]any{operationName: nil},
	}
}

// cloneDetails copies the details map so envelopes never alias the error
// instance. Empty details always serialize as {}.
func cloneDetails(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
