package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors
const (
	// ErrCodeInvalidArgument indicates a caller supplied an unsupported value.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeValidationFailed indicates a decoded struct failed tag validation.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
)

// Lookup errors
const (
	// ErrCodeKeyNotFound indicates a key path does not exist in a tree.
	ErrCodeKeyNotFound ErrorCode = "KEY_NOT_FOUND"
	// ErrCodeEnvNotSet indicates a referenced environment variable is unset.
	ErrCodeEnvNotSet ErrorCode = "ENV_NOT_SET"
)

// Document errors
const (
	// ErrCodeInvalidDocument indicates a YAML document could not be turned into a tree.
	ErrCodeInvalidDocument ErrorCode = "INVALID_DOCUMENT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
