// Package errors provides unified error handling for pipekit.
// It implements structured error types with machine-readable codes and
// retryable detection, so callers can branch on the condition rather than
// on error strings.
package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// Timeout creates a new AppError for a blocking operation that timed out.
// The queue state is unchanged; the caller may retry or abandon.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("Operation %s timed out before the queue became ready.", operation),
		Retryable: true,
		Details:   map[string]any{"operation": operation},
	}
}

// InvalidConfig creates a new AppError for an invalid construction parameter.
func InvalidConfig(field, reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: fmt.Sprintf("Invalid configuration for %s: %s", field, reason),
		Retryable: false,
		Details:   map[string]any{"field": field},
	}
}

// SourceFailure creates a new AppError for a producer source that failed
// while being iterated.
func SourceFailure(cause error) *AppError {
	return &AppError{
		Code: ErrCodeSourceFailure, Message: "The producer's source failed mid-stream.",
		Retryable: false, Cause: cause,
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Retryable: false, Cause: cause,
	}
}

// --- Inspection helpers ---

// CodeOf returns the ErrorCode carried by err, or the empty string if err is
// not an AppError anywhere in its chain.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsTimeout reports whether err carries ErrCodeTimeout.
func IsTimeout(err error) bool {
	return CodeOf(err) == ErrCodeTimeout
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
