package styles

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for the style system
const (
	ErrUnknown ErrorCode = "UNKNOWN"

	// ErrUnknownProperty is returned when a default is requested for a
	// name that is not a table-level property.
	ErrUnknownProperty ErrorCode = "UNKNOWN_PROPERTY"

	// ErrInvalidStyle is returned when a document does not conform to
	// the style schema.
	ErrInvalidStyle ErrorCode = "INVALID_STYLE"
)

// StyleError represents a structured error with a code
type StyleError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface
func (e *StyleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StyleError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StyleError) Is(target error) bool {
	var targetErr *StyleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// NewError creates a new StyleError with the given code and message
func NewError(code ErrorCode, message string) *StyleError {
	return &StyleError{
		Code:    code,
		Message: message,
	}
}

// NewErrorf creates a new StyleError with a formatted message
func NewErrorf(code ErrorCode, format string, args ...interface{}) *StyleError {
	return &StyleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError wraps an existing error with a StyleError
func WrapError(err error, code ErrorCode, message string) *StyleError {
	if err == nil {
		return nil
	}
	return &StyleError{
		Code:    code,
		Message: message,
		Wrapped: err,
	}
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var styleErr *StyleError
	if errors.As(err, &styleErr) {
		return styleErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StyleError
func GetErrorCode(err error) ErrorCode {
	var styleErr *StyleError
	if errors.As(err, &styleErr) {
		return styleErr.Code
	}
	return ErrUnknown
}

// newValidationError builds the error returned for a schema mismatch. The
// checker's diagnostic is embedded as text; the causal error is deliberately
// not chained, so callers see a single report.
func newValidationError(diagnostic string) *StyleError {
	return &StyleError{
		Code:    ErrInvalidStyle,
		Message: fmt.Sprintf("invalid style\n\n%s\n\nsee the schema reference for recognized elements and shapes", diagnostic),
	}
}
