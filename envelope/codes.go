package envelope

import "github.com/skillsenselab/webcore/errors"

// GraphQL convention codes carried in extensions.code.
const (
	CodeBadUserInput        = "BAD_USER_INPUT"
	CodeForbidden           = "FORBIDDEN"
	CodeUnauthenticated     = "UNAUTHENTICATED"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

// graphqlCodes maps wire names to GraphQL convention codes.
var graphqlCodes = map[string]string{
	errors.KindValidation.Name():   CodeBadUserInput,
	errors.KindPagination.Name():   CodeBadUserInput,
	errors.KindForbidden.Name():    CodeForbidden,
	errors.KindPolicy.Name():       CodeForbidden,
	errors.KindUnauthorized.Name(): CodeUnauthenticated,
}

// GraphQLCode returns the GraphQL convention code for a kind. Unmapped kinds
// (including all custom kinds) fall back to INTERNAL_SERVER_ERROR.
func GraphQLCode(k errors.Kind) string {
	if code, ok := graphqlCodes[k.Name()]; ok {
		return code
	}
	return CodeInternalServerError
}
