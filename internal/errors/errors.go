package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies failures at the process boundary
type ErrorType string

const (
	// ErrorTypeConfig covers missing or invalid arguments, flags and config files
	ErrorTypeConfig ErrorType = "config"

	// ErrorTypeResource covers sources that cannot be loaded
	ErrorTypeResource ErrorType = "resource"
)

// Exit statuses used by the command line
const (
	ExitOK       = 0
	ExitResource = 1
	ExitConfig   = 2
)

var (
	ErrMissingArgument  = errors.New("missing required argument")
	ErrUnexpectedArg    = errors.New("unexpected argument")
	ErrConflictingFlags = errors.New("conflicting flags")
	ErrInvalidValue     = errors.New("invalid value")
	ErrTooLarge         = errors.New("source exceeds size limit")
	ErrExcluded         = errors.New("source matches an exclude pattern")
	ErrInvalidEncoding  = errors.New("source is not valid UTF-8")
)

// ConfigError represents a configuration error: a required value is missing
// or a provided value is unusable
type ConfigError struct {
	Field      string
	Value      string
	Message    string
	Underlying error
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
	}
}

// MissingArgument reports an absent positional argument with a human message
func MissingArgument(field, message string) *ConfigError {
	return &ConfigError{
		Field:      field,
		Message:    message,
		Underlying: ErrMissingArgument,
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Value != "" {
		return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
	}
	return fmt.Sprintf("config error for field %s: %v", e.Field, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// Type returns the error classification
func (e *ConfigError) Type() ErrorType {
	return ErrorTypeConfig
}

// ResourceError represents a source that could not be made available
type ResourceError struct {
	Op         string // stat, open, read, decode, policy, write
	Resource   string
	Underlying error
}

// NewResourceError creates a new resource error
func NewResourceError(op, resource string, err error) *ResourceError {
	return &ResourceError{
		Op:         op,
		Resource:   resource,
		Underlying: err,
	}
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ResourceError) Unwrap() error {
	return e.Underlying
}

// Type returns the error classification
func (e *ResourceError) Type() ErrorType {
	return ErrorTypeResource
}

// IsConfig reports whether err is, or wraps, a ConfigError
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsResource reports whether err is, or wraps, a ResourceError
func IsResource(err error) bool {
	var re *ResourceError
	return errors.As(err, &re)
}

// ExitCode maps an error to the process exit status.
// Errors outside the taxonomy are treated as resource failures.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsConfig(err):
		return ExitConfig
	default:
		return ExitResource
	}
}

// Prefix returns the user facing lead-in for a reported error
func Prefix(err error) string {
	if IsConfig(err) {
		return "Problem parsing arguments"
	}
	return "Application error"
}
