// Package errors provides the failure taxonomy shared by every remote call site.
package errors

import (
	"errors"
	"fmt"
)

// TransportError is a network or protocol level failure: connection errors,
// timeouts, non-JSON error bodies, unexpected HTTP statuses with no parseable
// application error. Retryable in principle, never retried automatically.
type TransportError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport failure on %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("transport failure on %s", e.Op)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a transport failure for the given operation.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

// AppError is a well-formed rejection returned by the backend. Code is a
// stable backend identifier that flows may inspect for specific recovery.
type AppError struct {
	Op      string
	Code    string
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s rejected: %s (code=%s)", e.Op, e.Message, e.Code)
}

// NewAppError creates an application failure for the given operation.
func NewAppError(op, code, message string) *AppError {
	return &AppError{Op: op, Code: code, Message: message}
}

// ValidationError is a local input problem. It never leaves the dialog layer;
// handlers re-prompt in place instead of surfacing it as a system fault.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation failure for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsApp reports whether err is an application failure.
func IsApp(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// GetAppError extracts the application failure from err.
func GetAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AppCode returns the backend code carried by err, or "" if err is not an
// application failure.
func AppCode(err error) string {
	if ae, ok := GetAppError(err); ok {
		return ae.Code
	}
	return ""
}
