package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or missing input
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced entity that does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness violation
	ErrConflict = errors.New("conflict")
	// ErrStorage marks a failure of the underlying store
	ErrStorage = errors.New("storage failure")
)

// ValidationError names the first field that failed validation
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error for field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

type storageError struct {
	op  string
	err error
}

func (e *storageError) Error() string {
	return fmt.Sprintf("%s: %v", e.op, e.err)
}

func (e *storageError) Unwrap() []error {
	return []error{ErrStorage, e.err}
}

// StorageError wraps a store failure so callers can match ErrStorage
func StorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &storageError{op: op, err: err}
}

// kindError carries a client-facing message and unwraps to one of the sentinels
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}

// ProductNotFound reports a missing product id
func ProductNotFound(id uint) error {
	return &kindError{kind: ErrNotFound, msg: fmt.Sprintf("product %d not found", id)}
}

// NameConflict reports a product name that is already taken
func NameConflict(name string) error {
	return &kindError{kind: ErrConflict, msg: fmt.Sprintf("product with name %q already exists", name)}
}
