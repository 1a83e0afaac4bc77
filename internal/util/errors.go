// internal/util/errors.go
package util

import (
	"errors"
	"net/http"
)

// Sentinel errors used by the repository layer. Services translate these into
// *Error values carrying an HTTP status before they reach the handler boundary.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Error is a structured application error carrying the HTTP status and
// optional payload the response normalizer emits for it. Any error that is
// not an *Error is rendered as a 500 "Internal server error".
type Error struct {
	Status  int
	Message string
	Data    any
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidationError builds the 400 error produced when body validation
// fails. The per-field messages are carried in the response data.
func NewValidationError(fieldErrors []string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: "Invalid input",
		Data:    map[string]any{"errors": fieldErrors},
	}
}

// NewNotFoundError builds a 404 error with the given message.
func NewNotFoundError(message string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Message: message,
	}
}

// DatabaseConnectionError is fatal at startup: required store credentials are
// missing, so the process cannot come up even in degraded mode.
type DatabaseConnectionError struct {
	Reason string
}

func (e *DatabaseConnectionError) Error() string {
	return "database connection error: " + e.Reason
}
