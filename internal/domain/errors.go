package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a referenced entity doesn't exist
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// NewNotFoundError creates a not-found error for the given entity and id
func NewNotFoundError(entity, id string) error {
	return &ErrNotFound{Entity: entity, ID: id}
}

// IsNotFound reports whether err is an ErrNotFound
func IsNotFound(err error) bool {
	var nf *ErrNotFound
	return errors.As(err, &nf)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// UnauthorizedError indicates a missing or invalid admin session
type UnauthorizedError struct {
	Message string
}

// Error implements the error interface
func (e *UnauthorizedError) Error() string {
	return e.Message
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// ErrAdminAuthRequired is returned by admin-gated operations without a valid session
var ErrAdminAuthRequired = NewUnauthorizedError("admin authentication required")

// ErrInvalidPassword is returned by login with a wrong shared secret
var ErrInvalidPassword = NewUnauthorizedError("Invalid password")
