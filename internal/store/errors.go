package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a section with the same name).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidReference is returned when a foreign key points at a missing row,
	// or when a delete is blocked by rows that still reference the entity.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrConstraint is returned for check and not-null violations.
	ErrConstraint = errors.New("constraint violation")

	// Entity-specific "not found" errors

	ErrUserNotFound    = fmt.Errorf("%w: user", ErrNotFound)
	ErrAnimalNotFound  = fmt.Errorf("%w: animal", ErrNotFound)
	ErrSectionNotFound = fmt.Errorf("%w: section", ErrNotFound)
	ErrEventNotFound   = fmt.Errorf("%w: event", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)

	// Entity-specific "duplicate" errors

	ErrEmailExists      = fmt.Errorf("%w: email", ErrDuplicate)
	ErrNameExists       = fmt.Errorf("%w: name", ErrDuplicate)
	ErrCommentForTheDay = fmt.Errorf("%w: comment for the day", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "animal", "section")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
