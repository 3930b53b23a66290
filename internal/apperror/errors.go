package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel kinds. Every error the services return wraps exactly one of
// these, so callers can classify with errors.Is.
var (
	ErrValidation     = errors.New("validation failed")
	ErrAuthentication = errors.New("authentication required")
	ErrPermission     = errors.New("permission denied")
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("conflict")
	ErrStore          = errors.New("storage failure")
)

// Error carries a kind, a human-readable message and optionally the
// underlying cause (kept for logging, never shown to callers).
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind with a user-facing message.
func New(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Store wraps an underlying persistence failure. The cause is preserved for
// logs; UserMessage hides it from responses.
func Store(err error) *Error {
	return &Error{Kind: ErrStore, Message: "something went wrong, please try again", Err: err}
}

// Status maps an error kind to an HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns the message safe to surface to a caller. Storage-layer
// detail is replaced by a generic message.
func UserMessage(err error) string {
	if errors.Is(err, ErrStore) || Status(err) == http.StatusInternalServerError {
		return "something went wrong, please try again"
	}
	return err.Error()
}
