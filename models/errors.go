package models

import "errors"

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// ValidationError represents a rejected request field.
// Controllers map it to a 400 response with the message as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
