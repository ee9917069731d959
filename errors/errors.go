package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the taxonomy error instance: a Kind, a message, and an optional
// details payload. The Cause is kept for logs and is never serialized.
type Error struct {
	// Kind drives the wire name, HTTP status and default message.
	Kind Kind
	// Message is the human-readable message.
	Message string
	// Details contains additional, producer-defined context.
	Details map[string]any
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Kind.Name(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind.Name(), e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// HTTPStatus returns the HTTP status of the error's kind.
func (e *Error) HTTPStatus() int { return e.Kind.HTTPStatus() }

// WithCause sets the underlying cause and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Classify creates an Error of the given kind. An empty message falls back
// to the kind's default message.
func Classify(k Kind, message string) *Error {
	if message == "" {
		message = k.DefaultMessage()
	}
	return &Error{Kind: k, Message: message}
}

// New is an alias for Classify kept for constructor symmetry.
func New(k Kind, message string) *Error {
	return Classify(k, message)
}

// --- Common Error Constructors ---

// Application creates a generic application error.
func Application(message string) *Error {
	return Classify(KindApplication, message)
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return Classify(KindValidation, message)
}

// Policy creates a policy rejection error.
func Policy(message string) *Error {
	return Classify(KindPolicy, message)
}

// Pagination creates a pagination error.
func Pagination(message string) *Error {
	return Classify(KindPagination, message)
}

// NotFound creates a not-found error for the given resource.
func NotFound(resource, id string) *Error {
	e := Classify(KindNotFound, "")
	if resource != "" {
		e.Message = fmt.Sprintf("The requested %s was not found.", resource)
		e = e.WithDetail("resource", resource)
	}
	if id != "" {
		e = e.WithDetail("id", id)
	}
	return e
}

// Forbidden creates a forbidden-access error.
func Forbidden(reason string) *Error {
	return Classify(KindForbidden, reason)
}

// Unauthorized creates an unauthorized error.
func Unauthorized(reason string) *Error {
	return Classify(KindUnauthorized, reason)
}

// PayloadTooLarge creates a payload-too-large error.
func PayloadTooLarge(limit string) *Error {
	e := Classify(KindPayloadTooLarge, "")
	if limit != "" {
		e = e.WithDetail("limit", limit)
	}
	return e
}

// --- Checks ---

// As extracts a taxonomy *Error from err, unwrapping as needed.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err carries the given kind. Kinds are compared by
// wire name, so distinct values with the same name are the same kind.
func IsKind(err error, k Kind) bool {
	e, ok := As(err)
	return ok && e.Kind.Name() == k.Name()
}

// Coerce returns err as a taxonomy error. Errors of unrecognized types become
// an ApplicationError with a safe generic message; the original error is kept
// as the cause and never reaches the wire.
func Coerce(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		return e
	}
	return Application("").WithCause(err)
}
