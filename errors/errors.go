package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// AppError is the unified flowkit error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
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

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
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

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// AsAppError extracts an *AppError from the chain of err.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err carries an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// --- Common Error Constructors ---

// InvalidArgument creates an AppError for an unsupported argument value.
func InvalidArgument(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("Invalid argument: %s", reason),
		Details: details,
	}
}

// UnsupportedStrategy creates an AppError for an unknown strategy name.
func UnsupportedStrategy(kind, name string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("Unsupported %s strategy: %q", kind, name),
		Details: map[string]any{"field": "strategy", "strategy": name},
	}
}

// KeyNotFound creates an AppError for a missing key along a key path.
func KeyNotFound(key string, path []string) *AppError {
	return &AppError{
		Code: ErrCodeKeyNotFound, Message: fmt.Sprintf("Key %q not found", key),
		Details: map[string]any{"key": key, "path": strings.Join(path, ".")},
	}
}

// InvalidDocument creates an AppError for a document that cannot be loaded.
func InvalidDocument(path, reason string) *AppError {
	details := make(map[string]any)
	if path != "" {
		details["path"] = path
	}
	return &AppError{
		Code: ErrCodeInvalidDocument, Message: reason,
		Details: details,
	}
}

// EnvNotSet creates an AppError for a referenced but unset environment variable.
func EnvNotSet(name string) *AppError {
	return &AppError{
		Code: ErrCodeEnvNotSet, Message: fmt.Sprintf("Environment variable %s is not set", name),
		Details: map[string]any{"name": name},
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidationFailed, Message: message}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Cause: cause,
	}
}
