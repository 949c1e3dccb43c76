package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStaleWrite is returned when an update carries a version that is no
	// longer current (optimistic locking conflict).
	ErrStaleWrite = errors.New("stale write: version conflict")

	// ErrBudgetExhausted is returned when a reservation would push
	// spent + reserved past the budget limit.
	ErrBudgetExhausted = errors.New("budget exhausted")

	// ErrCircularDependency is returned when a ticket/task mutation would
	// introduce a dependency cycle.
	ErrCircularDependency = errors.New("circular dependency")
)

// staleWriteRetries is how many times version-checked updates are retried
// internally before ErrStaleWrite surfaces to the caller.
const staleWriteRetries = 3

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
