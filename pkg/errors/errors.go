// Package errors provides structured error types for storygraph.
//
// This package defines the single error taxonomy shared by the API gateway,
// the relationship traversal, and the rasterizer. It enables:
//   - Consistent error handling across CLI and server
//   - Machine-readable error codes for programmatic handling
//   - A one-to-one mapping between error codes and HTTP status classes
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every failure in the core maps to exactly one Code. The gateway classifies
// remote status codes with [FromStatus]; the server layer maps codes back to
// responses with [HTTPStatus]. Nothing in between converts an error into a
// partial success.
//
// # Usage
//
//	err := errors.New(errors.CodeNotFound, "fragment %s not found", id)
//	if errors.Is(err, errors.CodeNotFound) {
//	    // Handle missing entity
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.CodeUnavailable, origErr, "send %s", url)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes covering the core. Each code corresponds to one HTTP status
// class on the serving side.
const (
	// CodeBadRequest marks client-side misuse: invalid URLs, malformed
	// parameters, unparseable identifiers. Never retried.
	CodeBadRequest Code = "BAD_REQUEST"

	// CodeAccessDenied marks missing or invalid credentials.
	CodeAccessDenied Code = "ACCESS_DENIED"

	// CodeForbidden marks an authenticated but unauthorized request.
	CodeForbidden Code = "FORBIDDEN"

	// CodeNotFound marks a missing root or child entity. A missing child
	// aborts the whole render; it is never silently skipped.
	CodeNotFound Code = "NOT_FOUND"

	// CodeUnprocessable marks a request the remote accepted syntactically
	// but rejected semantically.
	CodeUnprocessable Code = "UNPROCESSABLE"

	// CodeInternal marks remote 5xx responses and layout-engine failures.
	CodeInternal Code = "INTERNAL_ERROR"

	// CodeUnavailable marks transport failures: connection refused, DNS,
	// TLS, timeouts.
	CodeUnavailable Code = "UNAVAILABLE"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns CodeInternal for errors that carry no code, so unclassified
// failures surface as server errors rather than leaking details.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// FromStatus classifies a non-2xx HTTP status into an error code.
// Unrecognized 4xx statuses classify as CodeBadRequest; everything
// 500 and above classifies as CodeInternal.
func FromStatus(status int) Code {
	switch status {
	case http.StatusUnauthorized:
		return CodeAccessDenied
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusUnprocessableEntity:
		return CodeUnprocessable
	}
	if status >= 500 {
		return CodeInternal
	}
	return CodeBadRequest
}

// HTTPStatus maps an error code to the HTTP status the serving layer emits.
// The mapping is the inverse of [FromStatus] for every code except
// CodeUnavailable, which reports upstream failure as 502.
func HTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeAccessDenied:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnprocessable:
		return http.StatusUnprocessableEntity
	case CodeUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
