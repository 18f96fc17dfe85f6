package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrFetchFailed is returned when the opportunity store cannot deliver
	// a candidate set. The engine performs no retry and substitutes no
	// cached results.
	ErrFetchFailed = errors.New("opportunity fetch failed")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// FetchError represents a store fetch failure with context
type FetchError struct {
	Source string // store implementation that failed, e.g. "sqlite"
	Err    error
}

func (e *FetchError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("fetching opportunities from %s store: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("fetching opportunities: %v", e.Err)
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(source string, err error) *FetchError {
	return &FetchError{Source: source, Err: err}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
