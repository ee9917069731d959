package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/skillsenselab/webcore/errors"
)

// Validator collects validation errors.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Validate returns a ValidationError if any check failed, nil otherwise.
func (v *Validator) Validate() *errors.Error {
	if !v.HasErrors() {
		return nil
	}

	messages := make([]string, len(v.errors))
	for i, e := range v.errors {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}

	return errors.Validation(strings.Join(messages, "; ")).
		WithDetail("fields", v.errors)
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// RequiredUUID checks if a string is a valid non-nil UUID.
func (v *Validator) RequiredUUID(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
		return v
	}

	parsed, err := uuid.Parse(value)
	if err != nil {
		v.AddError(field, "must be a valid UUID")
		return v
	}
	if parsed == uuid.Nil {
		v.AddError(field, "must not be the nil UUID")
	}
	return v
}

// MaxLength checks that a string does not exceed max characters.
func (v *Validator) MaxLength(field, value string, max int) *Validator {
	if len(value) > max {
		v.AddError(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return v
}

// OneOf checks that a value is one of the allowed options.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.AddError(field, "must be one of: "+strings.Join(allowed, ", "))
	return v
}

// MaxPageSize is the upper bound accepted by Pagination.
const MaxPageSize = 100

// Pagination validates page and pageSize query parameters, returning a
// PaginationError on the first violation.
func Pagination(page, pageSize int) *errors.Error {
	if page < 1 {
		return errors.Pagination("page must be >= 1").WithDetail("page", page)
	}
	if pageSize < 1 {
		return errors.Pagination("pageSize must be >= 1").WithDetail("pageSize", pageSize)
	}
	if pageSize > MaxPageSize {
		return errors.Pagination(fmt.Sprintf("pageSize must be <= %d", MaxPageSize)).
			WithDetail("pageSize", pageSize)
	}
	return nil
}
