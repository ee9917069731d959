// Package validation builds ValidationError instances from field checks.
// It offers a fluent collector for hand-written checks and struct-tag
// validation via go-playground/validator. Both produce taxonomy errors whose
// details carry the failing fields.
package validation
