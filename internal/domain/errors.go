// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is usually reached through a *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidRole is returned when a role is not USER or ADMIN.
	ErrInvalidRole = errors.New("invalid role")
)

// FieldError describes one failed rule on one field.
// Rule is a short machine-readable code ("required", "min", "future", ...)
// that the API layer turns into a localized message.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Key returns the message key for this error within entity, e.g. "animal.name.min".
func (f FieldError) Key(entity string) string {
	return entity + "." + f.Field + "." + f.Rule
}

// ValidationError collects every field-level failure for one entity.
type ValidationError struct {
	Entity string
	Fields []FieldError
}

// NewValidationError starts an empty error for entity.
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{Entity: entity}
}

// Add records a failed rule.
func (e *ValidationError) Add(field, rule, param string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Rule: rule, Param: param})
}

// HasErrors reports whether any rule failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns e when it holds failures and nil otherwise, so callers can
// `return v.OrNil()` without returning a typed nil.
func (e *ValidationError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

// Keys returns the message key of every failure, in insertion order.
func (e *ValidationError) Keys() []string {
	keys := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		keys = append(keys, f.Key(e.Entity))
	}
	return keys
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Keys(), ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
