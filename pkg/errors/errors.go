// Package errors provides structured errors with stable codes.
// Codes identify the failure kind (validation, lookup, backend, write)
// so callers can branch on them without string matching; the CLI maps
// them to process exit codes.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category for stable testing and for the
// CLI exit-code mapping.
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Name validation errors
	ErrNameInvalid       ErrorCode = "NAME_INVALID"
	ErrDistroUnsupported ErrorCode = "DISTRO_UNSUPPORTED"

	// Package query errors
	ErrPackageNotFound ErrorCode = "PACKAGE_NOT_FOUND"
	ErrQueryBackend    ErrorCode = "QUERY_BACKEND"
	ErrQueryParse      ErrorCode = "QUERY_PARSE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Document emission errors
	ErrDocumentEncode ErrorCode = "DOCUMENT_ENCODE"
	ErrDocumentWrite  ErrorCode = "DOCUMENT_WRITE"
)

// RpmvarsError is a structured error with a code, message and optional
// wrapped cause.
type RpmvarsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface.
func (e *RpmvarsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap supports errors.Is/errors.As chains.
func (e *RpmvarsError) Unwrap() error {
	return e.Wrapped
}

// Is matches two RpmvarsErrors by code.
func (e *RpmvarsError) Is(target error) bool {
	var targetErr *RpmvarsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RpmvarsError with the given code and message.
func New(code ErrorCode, message string) *RpmvarsError {
	return &RpmvarsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RpmvarsError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *RpmvarsError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. Returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *RpmvarsError {
	if err == nil {
		return nil
	}
	return &RpmvarsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RpmvarsError {
	if err == nil {
		return nil
	}
	return &RpmvarsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail attaches a detail to the error and returns it.
func (e *RpmvarsError) WithDetail(key string, value interface{}) *RpmvarsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks whether err carries the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	var rerr *RpmvarsError
	if errors.As(err, &rerr) {
		return rerr.Code == code
	}
	return false
}

// GetErrorCode returns the code carried by err, or ErrUnknown when err
// is not an RpmvarsError.
func GetErrorCode(err error) ErrorCode {
	var rerr *RpmvarsError
	if errors.As(err, &rerr) {
		return rerr.Code
	}
	return ErrUnknown
}
