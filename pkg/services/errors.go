package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every service. Handlers map these onto HTTP
// status codes in one place.
var (
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists covers fingerprint collisions on alerts and the
	// one-report-per-incident constraint.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidTransition is returned when an incident status change is
	// not allowed by the lifecycle state machine.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
