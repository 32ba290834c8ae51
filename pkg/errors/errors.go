// Package errors provides the structured error type used across autologger.
//
// Only configuration problems are surfaced from the instrumentation core;
// every other "cannot instrument this location" outcome is a plain skip.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a StructuredError.
type ErrorCode string

const (
	// ErrCodeConfiguration indicates malformed user configuration.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"
	// ErrCodeInvalidInput indicates an input file that could not be parsed.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates an I/O or rendering failure.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError carries a code for programmatic handling, a message,
// the underlying cause and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// NewWithContext creates a StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Context: context}
}

// Wrap wraps an existing error.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause, Context: context}
}

// Configuration builds a configuration error for the named parameter.
func Configuration(param, format string, args ...any) *StructuredError {
	return NewWithContext(ErrCodeConfiguration,
		fmt.Sprintf("[autologger] '%s' %s", param, fmt.Sprintf(format, args...)),
		map[string]any{"param": param})
}

// HasCode reports whether any error in err's chain is a StructuredError with code.
func HasCode(err error, code ErrorCode) bool {
	var se *StructuredError
	for err != nil {
		if !errors.As(err, &se) {
			return false
		}
		if se.Code == code {
			return true
		}
		err = se.Cause
	}
	return false
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool {
	return HasCode(err, ErrCodeConfiguration)
}
