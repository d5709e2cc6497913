package schema

import (
	"github.com/pyyyc/deckprops/internal/domain/values"
)

// Record is an instance of a schema: a mapping from field name to a value
// that passed the field's rule.
//
// Records are not safe for concurrent mutation.
type Record struct {
	schema *Schema
	values map[string]any
}

// New validates raw values against the schema and builds a record.
//
// Supplied names are checked in sorted order for the private prefix and
// for declaration; fields are then processed in schema order. The first
// failure is returned and no record is built.
func (s *Schema) New(raw map[string]any) (*Record, error) {
	for _, name := range sortedKeys(raw) {
		if err := s.checkName(name, raw[name]); err != nil {
			return nil, err
		}
	}

	r := &Record{
		schema: s,
		values: make(map[string]any, len(s.fields)),
	}

	for _, f := range s.fields {
		v, supplied := raw[f.Name]
		switch {
		case supplied:
			coerced, err := f.Rule(v)
			if err != nil {
				return nil, invalidValue(s.kind, f.Name, v, err)
			}
			r.values[f.Name] = coerced
		case f.Required:
			return nil, &FieldError{Kind: ErrMissingField, Entity: s.kind, Field: f.Name}
		case f.hasDefault:
			r.values[f.Name] = cloneValue(f.def)
		}
	}

	return r, nil
}

func (s *Schema) checkName(name string, v any) error {
	if values.IsPrivateName(name) {
		return &FieldError{Kind: ErrPrivateField, Entity: s.kind, Field: name, Value: v}
	}
	if _, ok := s.index[name]; !ok {
		return &FieldError{Kind: ErrUnknownField, Entity: s.kind, Field: name, Value: v}
	}
	return nil
}

// Set validates v against the named field and stores the coerced value.
// On failure the record is left unchanged.
func (r *Record) Set(name string, v any) error {
	if err := r.schema.checkName(name, v); err != nil {
		return err
	}

	f := r.schema.fields[r.schema.index[name]]
	coerced, err := f.Rule(v)
	if err != nil {
		return invalidValue(r.schema.kind, name, v, err)
	}
	r.values[name] = coerced
	return nil
}

// Schema returns the schema the record was built from.
func (r *Record) Schema() *Schema {
	return r.schema
}

// Kind returns the schema's kind name.
func (r *Record) Kind() string {
	return r.schema.kind
}

// Get returns the stored value of a field and whether it is set.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// IsSet reports whether the field holds a value.
func (r *Record) IsSet(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Text returns a text field, or "" when unset.
func (r *Record) Text(name string) string {
	s, _ := r.values[name].(string)
	return s
}

// Float returns a float field, or 0 when unset.
func (r *Record) Float(name string) float64 {
	f, _ := r.values[name].(float64)
	return f
}

// Int returns an integer field, or 0 when unset.
func (r *Record) Int(name string) int {
	n, _ := r.values[name].(int)
	return n
}

// Color returns a color field, or black when unset.
func (r *Record) Color(name string) values.Color {
	c, _ := r.values[name].(values.Color)
	return c
}

// Record returns a nested record field, or nil when unset.
func (r *Record) Record(name string) *Record {
	nested, _ := r.values[name].(*Record)
	return nested
}

// List returns a copy of a list field, or nil when unset.
func (r *Record) List(name string) []any {
	items, _ := r.values[name].([]any)
	if items == nil {
		return nil
	}
	out := make([]any, len(items))
	copy(out, items)
	return out
}

// Values returns the set fields as plain data. Nested records become maps
// and colors become channel slices.
func (r *Record) Values() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = plain(v)
	}
	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case *Record:
		return t.Values()
	case values.Color:
		return t.Channels()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plain(item)
		}
		return out
	default:
		return v
	}
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Record:
		c := &Record{schema: t.schema, values: make(map[string]any, len(t.values))}
		for k, item := range t.values {
			c.values[k] = cloneValue(item)
		}
		return c
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
