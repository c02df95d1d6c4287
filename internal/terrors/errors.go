// Package terrors provides typed errors for taku. The types carry an
// error code for programmatic handling and wrap their cause for
// errors.Is/As chains.
package terrors

import "fmt"

// TakuError is the base interface for all taku errors.
type TakuError interface {
	error
	// Code returns a stable error code for programmatic handling.
	Code() string
}

type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// NotFoundError reports a missing script, template or config file.
type NotFoundError struct {
	baseError
	Resource string
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{code: "NOT_FOUND", message: message},
		Resource:  resource,
	}
}

// AlreadyExistsError reports a script or file that already exists.
type AlreadyExistsError struct {
	baseError
	Resource string
}

// NewAlreadyExistsError creates a new already exists error.
func NewAlreadyExistsError(resource, message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		baseError: baseError{code: "ALREADY_EXISTS", message: message},
		Resource:  resource,
	}
}

// ValidationError reports an invalid script name or config value.
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{code: "VALIDATION_ERROR", message: message, cause: cause},
		Field:     field,
	}
}

// ExecutionError reports a failure while running a script or editor.
type ExecutionError struct {
	baseError
	Command string
}

// NewExecutionError creates a new execution error.
func NewExecutionError(command, message string, cause error) *ExecutionError {
	return &ExecutionError{
		baseError: baseError{code: "EXEC_ERROR", message: message, cause: cause},
		Command:   command,
	}
}

// ConfigurationError reports a broken configuration file.
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(path, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{code: "CONFIG_ERROR", message: message, cause: cause},
		Path:      path,
	}
}
