package request

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no document matches the given identifier.
var ErrNotFound = errors.New("request not found")

// ValidationError reports a field that fails the schema constraints.
// The record is never persisted when one is returned.
type ValidationError struct {
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("field %q: %s (got %q)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

// NewEnumError creates an error for an enum field holding a value outside
// its closed vocabulary.
func NewEnumError(field, value string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: "value is not in the allowed set",
	}
}

// NewPatternError creates an error for a Concord ID that fails the
// structural pattern.
func NewPatternError(field, value string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: "must be 1-6 letters, a separator, digits, a separator, digits",
	}
}

// TransitionError reports an illegal status move.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal status transition %q -> %q", e.From, e.To)
}
