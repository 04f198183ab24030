// Package apperrors defines the error taxonomy shared by all scripts.
// Every failure a script can hit maps to one of four types, and every
// type terminates the run with exit code 1.
package apperrors

import "fmt"

type ErrorType string

const (
	ConfigMissingError  ErrorType = "CONFIG_MISSING"
	InputNotFoundError  ErrorType = "INPUT_NOT_FOUND"
	SchemaMismatchError ErrorType = "SCHEMA_MISMATCH"
	TransportError      ErrorType = "TRANSPORT_ERROR"
)

// AppError is a structured script error.
type AppError struct {
	Type    ErrorType
	Message string
	Detail  string
	Raw     error
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// Is matches on error type, so callers can test with errors.Is against a
// bare &AppError{Type: ...} sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// ConfigMissing reports a required configuration key that resolved to empty.
func ConfigMissing(key string) *AppError {
	return &AppError{
		Type:    ConfigMissingError,
		Message: fmt.Sprintf("%s not set in dev.env or environment", key),
	}
}

// InputNotFound reports a missing input file or directory.
func InputNotFound(path string) *AppError {
	return &AppError{
		Type:    InputNotFoundError,
		Message: "input not found",
		Detail:  path,
	}
}

// SchemaMismatch reports an input table whose headers cannot be resolved.
func SchemaMismatch(message string, detail string) *AppError {
	return &AppError{
		Type:    SchemaMismatchError,
		Message: message,
		Detail:  detail,
	}
}

// Transport wraps a network failure or a non-2xx API response. Status is 0
// when no response was received; body carries the response text when present.
func Transport(err error, status int, body string) *AppError {
	detail := ""
	if status != 0 {
		detail = fmt.Sprintf("status %d: %s", status, body)
	}
	return &AppError{
		Type:    TransportError,
		Message: "Pennsieve API request failed",
		Detail:  detail,
		Raw:     err,
	}
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	e, ok := err.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t
}
