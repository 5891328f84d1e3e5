// utils/errors.go
package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds surfaced to the caller. Match with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrPermission = errors.New("permission denied")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

type DomainError struct {
	kind    error
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.kind }

func ValidationError(format string, args ...interface{}) error {
	return &DomainError{kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func PermissionError(format string, args ...interface{}) error {
	return &DomainError{kind: ErrPermission, Message: fmt.Sprintf(format, args...)}
}

func ConflictError(format string, args ...interface{}) error {
	return &DomainError{kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func NotFoundError(format string, args ...interface{}) error {
	return &DomainError{kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// StatusForError maps a domain error to an HTTP status code.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
