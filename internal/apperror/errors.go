// Package apperror defines the error kinds surfaced by services so handlers
// and tests can branch on errors.Is instead of string matching.
package apperror

import "errors"

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConfig       = errors.New("server configuration error")
	ErrStorage      = errors.New("storage error")
)

// FieldErrors indexes validation messages by field path.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// ValidationError carries field-level detail for a rejected payload. It
// matches ErrBadRequest under errors.Is.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrBadRequest
}
