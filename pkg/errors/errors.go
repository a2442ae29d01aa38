package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Help rendering errors
	ErrBlockCapacity ErrorCode = "BLOCK_CAPACITY"
	ErrHelpWrite     ErrorCode = "HELP_WRITE"

	// Parse errors
	ErrUnknownFlag        ErrorCode = "UNKNOWN_FLAG"
	ErrUnexpectedValue    ErrorCode = "UNEXPECTED_VALUE"
	ErrMissingValue       ErrorCode = "MISSING_VALUE"
	ErrInvalidValue       ErrorCode = "INVALID_VALUE"
	ErrTooManyValues      ErrorCode = "TOO_MANY_VALUES"
	ErrMissingRequired    ErrorCode = "MISSING_REQUIRED_ARG"
	ErrMissingSubcommand  ErrorCode = "MISSING_REQUIRED_SUBCOMMAND"
	ErrUnexpectedArgument ErrorCode = "UNEXPECTED_ARGUMENT"

	// ErrHelpRequested is a sentinel, not a failure: parsing stopped because
	// the user asked for help.
	ErrHelpRequested ErrorCode = "HELP_REQUESTED"

	// Manifest errors
	ErrManifestLoad    ErrorCode = "MANIFEST_LOAD"
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"

	// Documentation generation errors
	ErrDocGenerate ErrorCode = "DOC_GENERATE"
)

// YazapError represents a structured error with code and details
type YazapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *YazapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *YazapError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *YazapError) Is(target error) bool {
	var targetErr *YazapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new YazapError with the given code and message
func New(code ErrorCode, message string) *YazapError {
	return &YazapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new YazapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *YazapError {
	return &YazapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a YazapError
func Wrap(err error, code ErrorCode, message string) *YazapError {
	if err == nil {
		return nil
	}
	return &YazapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *YazapError {
	if err == nil {
		return nil
	}
	return &YazapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *YazapError) WithDetail(key string, value interface{}) *YazapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *YazapError) WithDetails(details map[string]interface{}) *YazapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var yerr *YazapError
	if errors.As(err, &yerr) {
		return yerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a YazapError
func GetErrorCode(err error) ErrorCode {
	var yerr *YazapError
	if errors.As(err, &yerr) {
		return yerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a YazapError
func GetErrorDetails(err error) map[string]interface{} {
	var yerr *YazapError
	if errors.As(err, &yerr) {
		return yerr.Details
	}
	return nil
}

// IsHelpRequested reports whether err is the help-request sentinel.
func IsHelpRequested(err error) bool {
	return IsErrorCode(err, ErrHelpRequested)
}
