package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by repositories, services and transport. Callers
// match them with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Conflict refinements. Each one matches ErrConflict with errors.Is.
var (
	ErrAlreadyVoted      = fmt.Errorf("already voted: %w", ErrConflict)
	ErrAlreadyAssigned   = fmt.Errorf("already assigned: %w", ErrConflict)
	ErrInvalidTransition = fmt.Errorf("invalid status transition: %w", ErrConflict)
)

// FieldError names a request field by its wire name and what is wrong with it.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string { return f.Field + ": " + f.Message }

// ValidationError reports every invalid field of one request. It matches
// ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, f := range e.Errors {
		parts[i] = f.String()
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError reports a single invalid field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors reports several invalid fields in order.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
