package config

import "fmt"

// ValidationError reports a configuration option that failed validation.
type ValidationError struct {
	Option  string
	Message string
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Option, e.Message)
}

// NewValidationError creates a validation error for one option.
func NewValidationError(option, message string) *ValidationError {
	return &ValidationError{Option: option, Message: message}
}
