package database

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/skillsenselab/webcore/errors"
)

// Custom taxonomy kinds raised by this package. They plug into the rendering
// boundary exactly like the built-in kinds.
var (
	// KindConflict indicates a uniqueness or state conflict in the engine.
	KindConflict = errors.NewKind("ConflictError", http.StatusConflict, "The resource already exists")
	// KindUnavailable indicates the engine is temporarily unreachable.
	KindUnavailable = errors.NewKind("ServiceUnavailableError", http.StatusServiceUnavailable, "The database is temporarily unavailable")
)

// IsConnectionError checks if a database error is a connection error
// that might be resolved by retrying.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	patterns := []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"i/o timeout",
		"no route to host",
		"network is unreachable",
		"connection closed",
		"connection lost",
		"driver: bad connection",
		"invalid connection",
	}
	for _, p := range patterns {
		if strings.Contains(errStr, p) {
			return true
		}
	}
	return false
}

// IsRetryableError determines if a database error is worth retrying with a
// fresh scope.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if IsConnectionError(err) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	patterns := []string{
		"deadlock",
		"lock timeout",
		"serialization failure",
		"too many connections",
	}
	for _, p := range patterns {
		if strings.Contains(errStr, p) {
			return true
		}
	}
	return false
}

// FromDatabase translates an engine error into a taxonomy error. Taxonomy
// errors pass through unchanged so handler-raised kinds survive the driver.
func FromDatabase(err error, resource string) error {
	if err == nil {
		return nil
	}

	if _, ok := errors.As(err); ok {
		return err
	}

	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NotFound(resource, "").WithCause(err)
	}

	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		e := errors.Classify(KindConflict, "")
		if resource != "" {
			e.Message = fmt.Sprintf("A %s with these details already exists.", resource)
			e = e.WithDetail("resource", resource)
		}
		return e.WithCause(err)
	}

	if IsConnectionError(err) || IsRetryableError(err) {
		return errors.Classify(KindUnavailable, "").WithCause(err)
	}

	return errors.Application("").WithCause(err)
}
