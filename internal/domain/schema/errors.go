package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is returned when a value fails its field's rule.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnknownField is returned when a name is not declared on the schema.
	ErrUnknownField = errors.New("unknown field")

	// ErrPrivateField is returned when a name carries the private prefix.
	ErrPrivateField = errors.New("private field")

	// ErrMissingField is returned when a required field is absent at construction.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidSchema is returned when a schema definition is malformed.
	ErrInvalidSchema = errors.New("invalid schema")
)

// FieldError describes a rejected field write.
type FieldError struct {
	Kind   error  // One of the Err* sentinels
	Entity string // Schema kind the write was aimed at
	Field  string // Field name as supplied
	Value  any    // Rejected value, nil for missing fields
	Reason string // Rule-specific message
	Err    error  // Nested cause (e.g. a failure inside a nested record)
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", e.Entity, e.Field, e.Kind)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and any nested cause.
func (e *FieldError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func invalidValue(entity, field string, value any, cause error) *FieldError {
	fe := &FieldError{Kind: ErrInvalidValue, Entity: entity, Field: field, Value: value}

	// Nested field errors stay reachable; plain rule errors become the reason.
	var nested *FieldError
	if errors.As(cause, &nested) {
		fe.Err = cause
	} else if cause != nil {
		fe.Reason = cause.Error()
	}
	return fe
}
