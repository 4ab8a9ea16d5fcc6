// Package errors provides structured error types for pacmaze.
//
// Every failure that crosses a package boundary carries a machine-readable
// [Code], so the CLI can print a friendly message and the HTTP server can
// choose a status code without string matching.
//
// # Error Codes
//
//   - INVALID_*: input validation failures, including the maze and compositor
//     preconditions (INVALID_DIMENSIONS, DIMENSION_MISMATCH, THEME_NOT_FOUND)
//   - *NOT_FOUND: the GitHub user or resource does not exist
//   - NETWORK_ERROR, TIMEOUT, RATE_LIMITED, UNAUTHORIZED: calendar retrieval
//   - INTERNAL_ERROR: unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDimensions, "rows must be positive, got %d", rows)
//	if errors.Is(err, errors.ErrCodeInvalidDimensions) {
//	    // Handle precondition violation
//	}
//
//	err = errors.Wrap(errors.ErrCodeNetwork, origErr, "fetch calendar for %s", login)
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
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeInvalidDimensions  Code = "INVALID_DIMENSIONS"
	ErrCodeDimensionMismatch  Code = "DIMENSION_MISMATCH"
	ErrCodeThemeNotFound      Code = "THEME_NOT_FOUND"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"
	ErrCodeInvalidLogin       Code = "INVALID_LOGIN"
	ErrCodeInvalidPath        Code = "INVALID_PATH"
	ErrCodeInvalidCalendar    Code = "INVALID_CALENDAR"
	ErrCodeUnsupportedPayload Code = "UNSUPPORTED_PAYLOAD"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeUserNotFound Code = "USER_NOT_FOUND"

	// Network errors
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeRateLimited Code = "RATE_LIMITED"

	// Authentication errors
	ErrCodeUnauthorized Code = "UNAUTHORIZED"

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

// IsPrecondition reports whether err is one of the input validation codes.
// Precondition failures are deterministic: retrying the same input fails the
// same way.
func IsPrecondition(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidDimensions, ErrCodeDimensionMismatch,
		ErrCodeThemeNotFound, ErrCodeInvalidFormat, ErrCodeInvalidLogin,
		ErrCodeInvalidPath, ErrCodeInvalidCalendar, ErrCodeUnsupportedPayload:
		return true
	}
	return false
}

// RateLimitedError provides additional information for rate-limited responses.
type RateLimitedError struct {
	RetryAfter int // Seconds to wait before retrying
	Message    string
}

// Error implements the error interface.
func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: retry after %d seconds", e.RetryAfter)
	}
	return "rate limited"
}

// Code returns the error code for this error type.
func (e *RateLimitedError) Code() Code {
	return ErrCodeRateLimited
}
