package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/williamjohngardner/items-api/internal/store"
)

// HTTPError pairs an HTTP status code and a client-safe message with an
// optional underlying cause. Handlers return it when a failure already has
// a known status; MapErrorToStatusCode and GetSafeErrorMessage honor it
// before falling back to sentinel checks.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

// Error implements the error interface for HTTPError.
func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (status %d): %v", e.Message, e.Status, e.Err)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(status int, message string, err error) *HTTPError {
	return &HTTPError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var httpErr *HTTPError

	switch {
	// Errors that already carry their status
	case errors.As(err, &httpErr):
		return httpErr.Status

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Internal Server Error"
	}

	var httpErr *HTTPError

	switch {
	// Errors that already carry their client-safe message
	case errors.As(err, &httpErr):
		return httpErr.Message

	// Not found errors
	case errors.Is(err, store.ErrItemNotFound):
		return "Item not found"

	case store.IsNotFoundError(err):
		return "Not found"

	// Default case for unknown errors
	default:
		return "Internal Server Error"
	}
}
