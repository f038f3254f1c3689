// Package apierrors provides structured API errors surfaced to HTTP clients.
package apierrors

import (
	"errors"
	"net/http"
)

// Code is the machine-readable kind tag carried in error responses.
type Code string

const (
	// CodeNotFound indicates a referenced or targeted entity does not exist.
	CodeNotFound Code = "NOT_FOUND"
	// CodeConflict indicates a uniqueness constraint would be violated.
	CodeConflict Code = "CONFLICT"
)

// Error is a structured API error with an HTTP status, a kind tag and a
// human-readable message. It never carries stack traces.
type Error struct {
	Status  int
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is enables errors.Is comparison by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NotFound creates a 404 error with the given message.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

// Conflict creates a 409 error with the given message.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Code: CodeConflict, Message: message}
}

// FromError extracts a structured API error from err, if there is one.
func FromError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a structured not-found error.
func IsNotFound(err error) bool {
	apiErr, ok := FromError(err)
	return ok && apiErr.Code == CodeNotFound
}

// IsConflict reports whether err is a structured conflict error.
func IsConflict(err error) bool {
	apiErr, ok := FromError(err)
	return ok && apiErr.Code == CodeConflict
}
