package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when a sequence-number race loses
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrSessionArchived is returned when writing into an archived session
	ErrSessionArchived = errors.New("session is archived")

	// ErrRetriesExhausted is returned when an ETL window has failed its
	// final attempt and will not be retried automatically
	ErrRetriesExhausted = errors.New("retries exhausted")

	// ErrWindowClaimed is returned when another worker holds the running
	// claim for an ETL window
	ErrWindowClaimed = errors.New("window already claimed")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
