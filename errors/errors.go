package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is one raised occurrence of a Kind.
type Error struct {
	// StatusCode is the HTTP status sent to the client.
	StatusCode int `json:"statusCode"`
	// Code is the stable, machine-readable code of the kind.
	Code string `json:"code"`
	// Message is the rendered human-readable message.
	Message string `json:"message"`
	// Validation holds per-field failures of a validation error.
	Validation []ValidationItem `json:"validation,omitempty"`
	// ValidationContext names the validated request part ("body", "params", ...).
	ValidationContext string `json:"validationContext,omitempty"`
	// Cause is the underlying failure, kept for diagnostics only.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorCode returns the application code. It is the structural hook used by
// Kind.Matches.
func (e *Error) ErrorCode() string { return e.Code }

// HTTPStatus returns the HTTP status of the error.
func (e *Error) HTTPStatus() int { return e.StatusCode }

// Is reports whether target classifies as the same kind, so that
// errors.Is(err, NotFoundError) works for wrapped errors.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case *Kind:
		return t.code == e.Code
	case *Error:
		return t.Code == e.Code
	}
	return false
}

// HasValidation reports whether the error carries validation detail.
func (e *Error) HasValidation() bool { return len(e.Validation) > 0 }

// WithStatus overrides the status code declared by the kind and returns the receiver.
func (e *Error) WithStatus(statusCode int) *Error {
	e.StatusCode = statusCode
	return e
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// IsError checks if an error is, or wraps, an *Error.
func IsError(err error) bool {
	var e *Error
	return stderrors.As(err, &e)
}

// AsError converts an error to an *Error if possible. A bare *Kind is
// instantiated with its default message.
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	var k *Kind
	if stderrors.As(err, &k) {
		return k.New(), true
	}
	return nil, false
}
