// Package errors provides structured error types for superperm.
//
// Errors raised at the command-line boundary (bad flags, bad configuration,
// unreadable reports, searches that end without a path) carry a
// machine-readable [Code] so callers can branch on the category and print a
// short user-facing message. The search packages themselves signal contract
// violations by panicking and report "no path" through return values; they
// never construct these errors.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSymbols, "alphabet size %d outside [%d, %d]", n, lo, hi)
//	if errors.Is(err, errors.ErrCodeInvalidSymbols) {
//	    // Handle validation error
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidSymbols Code = "INVALID_SYMBOLS"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidPath    Code = "INVALID_PATH"
	ErrCodeInvalidReport  Code = "INVALID_REPORT"

	// Search outcomes
	ErrCodeNoPath Code = "NO_PATH"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
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

// NoPathError reports a search that exhausted its frontier.
type NoPathError struct {
	Goal         int // goal that could not be reached
	LastDistance int // distance of the last goal that was reached
}

// Error implements the error interface.
func (e *NoPathError) Error() string {
	return fmt.Sprintf("no path to %d permutations (last milestone at distance %d)", e.Goal, e.LastDistance)
}

// Code returns the error code for this error type.
func (e *NoPathError) Code() Code {
	return ErrCodeNoPath
}
