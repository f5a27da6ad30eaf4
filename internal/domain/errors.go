package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by stores, services and transport.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrBusinessRule  = errors.New("business rule violation")
)

// FieldError describes a problem with one input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects field problems. It matches ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Add records a problem with field.
func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// Err returns e, or nil when nothing was added.
func (e *ValidationError) Err() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// BusinessRuleError reports a write the store refused for reasons the
// caller cannot fix by retrying. It matches both ErrBusinessRule and Err.
type BusinessRuleError struct {
	Op  string
	Err error
}

func (e *BusinessRuleError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrBusinessRule, e.Op, e.Err)
}

func (e *BusinessRuleError) Unwrap() []error { return []error{ErrBusinessRule, e.Err} }
