package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition is returned for a status change the meeting
	// status machine does not allow
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInUse is returned when deleting a room or participant that
	// meetings still reference
	ErrInUse = errors.New("entity is referenced by meetings")

	// ErrSolverDisabled is returned by planning queries that require the
	// decision backend while it is toggled off
	ErrSolverDisabled = errors.New("constraint solver is disabled")
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

// SchedulingError carries the monitor violation messages that made a delete
// refusal. It surfaces as 409 at the API boundary.
type SchedulingError struct {
	Message    string
	Violations []string
}

func (e *SchedulingError) Error() string {
	if len(e.Violations) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Violations, "; "))
}
