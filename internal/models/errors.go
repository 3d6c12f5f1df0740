package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced event, comment or
	// registration does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyRegistered is the alternate outcome of registering twice
	// for the same event with the same email. It is not a failure; callers
	// are redirected to their existing registrations.
	ErrAlreadyRegistered = errors.New("already registered for this event")

	// ErrUnauthorized is returned when the acting identity lacks the
	// capability for the requested operation.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError describes a missing or malformed user-supplied field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
