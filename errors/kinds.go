package errors

import "net/http"

// Kind identifies a category of error. The name is the stable wire
// identifier, the HTTP status drives REST rendering, and the default
// message is used when an instance is created without one.
//
// Custom kinds implement this interface directly; there is no registration
// step and no base type to embed.
type Kind interface {
	Name() string
	HTTPStatus() int
	DefaultMessage() string
}

// kind is the built-in Kind implementation.
type kind struct {
	name    string
	status  int
	message string
}

func (k kind) Name() string           { return k.name }
func (k kind) HTTPStatus() int        { return k.status }
func (k kind) DefaultMessage() string { return k.message }

// Built-in kinds. Names are wire-stable and must not change.
var (
	// KindApplication is the generic application failure.
	KindApplication Kind = kind{"ApplicationError", http.StatusInternalServerError, "An application error occurred"}
	// KindValidation indicates the request payload failed validation.
	KindValidation Kind = kind{"ValidationError", http.StatusBadRequest, "Invalid input"}
	// KindPolicy indicates a policy rejected the request.
	KindPolicy Kind = kind{"PolicyError", http.StatusForbidden, "Policy Failed"}
	// KindPagination indicates invalid pagination parameters.
	KindPagination Kind = kind{"PaginationError", http.StatusBadRequest, "Invalid pagination parameters"}
	// KindNotFound indicates the requested entity does not exist.
	KindNotFound Kind = kind{"NotFoundError", http.StatusNotFound, "Entity not found"}
	// KindForbidden indicates the caller lacks permission.
	KindForbidden Kind = kind{"ForbiddenError", http.StatusForbidden, "Forbidden access"}
	// KindUnauthorized indicates the caller is not authenticated.
	KindUnauthorized Kind = kind{"UnauthorizedError", http.StatusUnauthorized, "Unauthorized"}
	// KindPayloadTooLarge indicates the request body exceeded the limit.
	KindPayloadTooLarge Kind = kind{"PayloadTooLargeError", http.StatusRequestEntityTooLarge, "Entity too large"}
)

// builtinKinds lists every built-in kind, in wire-name order.
var builtinKinds = []Kind{
	KindApplication,
	KindForbidden,
	KindNotFound,
	KindPagination,
	KindPayloadTooLarge,
	KindPolicy,
	KindUnauthorized,
	KindValidation,
}

// Kinds returns the built-in kinds. The returned slice is a copy.
func Kinds() []Kind {
	out := make([]Kind, len(builtinKinds))
	copy(out, builtinKinds)
	return out
}

// NewKind creates a custom Kind with the given wire name, HTTP status and
// default message. The result may be raised anywhere a built-in kind is.
func NewKind(name string, httpStatus int, defaultMessage string) Kind {
	return kind{name: name, status: httpStatus, message: defaultMessage}
}
