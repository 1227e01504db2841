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

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Input errors
	ErrNotFound         ErrorCode = "NOT_FOUND"
	ErrNotADirectory    ErrorCode = "NOT_A_DIRECTORY"
	ErrUnsupported      ErrorCode = "UNSUPPORTED_FORMAT"
	ErrParse            ErrorCode = "PARSE"
	ErrAlreadyInstalled ErrorCode = "ALREADY_INSTALLED"

	// Conversion errors
	ErrToolMissing ErrorCode = "TOOL_MISSING"
	ErrConversion  ErrorCode = "CONVERSION"

	// FileSystem errors
	ErrIO ErrorCode = "IO"

	// Cache errors
	ErrCacheClear ErrorCode = "CACHE_CLEAR"
)

// FontError represents a structured error with code and details
type FontError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FontError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FontError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FontError) Is(target error) bool {
	var targetErr *FontError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

func newError(err error, code ErrorCode, message string) *FontError {
	return &FontError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// New creates a FontError with the given code and message
func New(code ErrorCode, message string) *FontError {
	return newError(nil, code, message)
}

// Newf creates a FontError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FontError {
	return newError(nil, code, fmt.Sprintf(format, args...))
}

// Wrap classifies err under code. A nil err gives a nil *FontError, so
// only call it with a non-nil error when the result is returned as an
// error interface.
func Wrap(err error, code ErrorCode, message string) *FontError {
	if err == nil {
		return nil
	}
	return newError(err, code, message)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FontError {
	if err == nil {
		return nil
	}
	return newError(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *FontError) WithDetail(key string, value interface{}) *FontError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fontErr *FontError
	if errors.As(err, &fontErr) {
		return fontErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FontError
func GetErrorCode(err error) ErrorCode {
	var fontErr *FontError
	if errors.As(err, &fontErr) {
		return fontErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details attached with WithDetail, or nil
// if err is not a FontError. They are logged alongside failed installs.
func GetErrorDetails(err error) map[string]interface{} {
	var fontErr *FontError
	if errors.As(err, &fontErr) {
		return fontErr.Details
	}
	return nil
}

// Reason returns a human-readable message for err without the code
// prefix. Wrapped causes are appended after a colon.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var fontErr *FontError
	if errors.As(err, &fontErr) {
		if fontErr.Wrapped != nil {
			return fmt.Sprintf("%s: %s", fontErr.Message, Reason(fontErr.Wrapped))
		}
		return fontErr.Message
	}
	return err.Error()
}
