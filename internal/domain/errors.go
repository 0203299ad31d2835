package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")

	// ErrProvider marks any failure talking to the matching provider:
	// network error, timeout, non-2xx status, or a malformed response body.
	ErrProvider = errors.New("matching provider error")

	// ErrInvalidTransition marks an illegal match or item status change.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAttachmentUnavailable marks an image attachment that could not be
	// opened. Callers degrade to a text-only request instead of failing.
	ErrAttachmentUnavailable = errors.New("attachment unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

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

// ProviderError wraps a matching-provider failure with the operation that
// produced it. All transport failures collapse into this one kind: the
// engine treats them identically (degrade, don't abort).
type ProviderError struct {
	Op    string // "index" or "search"
	Cause error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("matching provider: %s: %v", e.Op, e.Cause)
}

func (e *ProviderError) Unwrap() error { return ErrProvider }

// NewProviderError creates a ProviderError for the given operation.
func NewProviderError(op string, cause error) *ProviderError {
	return &ProviderError{Op: op, Cause: cause}
}

// InvalidTransitionError reports an attempt to move a match or item into a
// state the lifecycle does not permit. State is left unchanged.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot transition from %s to %s", e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// NewInvalidTransitionError creates an InvalidTransitionError.
func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}
