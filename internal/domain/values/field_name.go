package values

import (
	"fmt"
	"regexp"
	"strings"
)

// PrivatePrefix marks field names reserved for internal storage.
const PrivatePrefix = "_"

var fieldNamePattern = regexp.MustCompile(`^_?[a-zA-Z][a-zA-Z0-9_]*$`)

// FieldName names a field on an entity schema.
// Enforces identifier syntax; private names are representable so callers
// can reject them with a precise error.
type FieldName struct {
	value string
}

// NewFieldName creates a FieldName with validation
func NewFieldName(name string) (FieldName, error) {
	if name == "" {
		return FieldName{}, fmt.Errorf("field name cannot be empty")
	}
	if !fieldNamePattern.MatchString(name) {
		return FieldName{}, fmt.Errorf("field name %q is invalid (must be letters, digits and underscores, starting with a letter after at most one underscore)", name)
	}
	return FieldName{value: name}, nil
}

// String returns the string representation
func (f FieldName) String() string {
	return f.value
}

// IsPrivate reports whether the name carries the private prefix.
func (f FieldName) IsPrivate() bool {
	return IsPrivateName(f.value)
}

// IsPrivateName reports whether a raw name starts with the private prefix.
func IsPrivateName(name string) bool {
	return strings.HasPrefix(name, PrivatePrefix)
}
