// Package schema implements validated attributes: an entity kind declares an
// ordered list of named fields, each bound to a rule that validates and
// coerces raw input. Records built from a schema only ever hold values that
// passed their field's rule.
//
// # Construction
//
// [Schema.New] takes a map of field name to raw value. Names are checked in
// sorted order before any rule runs: a name with the private prefix fails
// with [ErrPrivateField], an undeclared name with [ErrUnknownField]. Fields
// are then visited in declaration order. The first failure aborts
// construction (fail-fast); no partially built record is returned.
//
// # Defaults
//
// Defaults are run through their field's rule once, when the schema is
// built, and the coerced value is what records receive.
//
// # Errors
//
//   - [ErrInvalidValue] - a value failed its field's rule
//   - [ErrUnknownField] - the name is not declared on the schema
//   - [ErrPrivateField] - the name starts with the private prefix
//   - [ErrMissingField] - a required field was not supplied
//
// Every failure is a [*FieldError] matching its sentinel through errors.Is.
// A failure inside a nested record is reported as [ErrInvalidValue] on the
// outer field with the inner error still reachable.
package schema
