package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pyyyc/deckprops/internal/domain/values"
)

// reservedNames cannot be declared as fields.
var reservedNames = map[string]bool{
	"props": true,
}

// Schema is the ordered set of fields declared for an entity kind.
// It is immutable once built and shared by every record of the kind.
type Schema struct {
	kind   string
	fields []Field
	index  map[string]int
}

// NewSchema builds a schema, validating every field declaration and
// coercing declared defaults through their rules.
func NewSchema(kind string, fields ...Field) (*Schema, error) {
	if strings.TrimSpace(kind) == "" {
		return nil, fmt.Errorf("%w: kind cannot be empty", ErrInvalidSchema)
	}

	s := &Schema{
		kind:   kind,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		name, err := values.NewFieldName(f.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSchema, kind, err)
		}
		if name.IsPrivate() {
			return nil, fmt.Errorf("%w: %s: field %q uses the private prefix", ErrInvalidSchema, kind, f.Name)
		}
		if reservedNames[f.Name] {
			return nil, fmt.Errorf("%w: %s: field name %q is reserved", ErrInvalidSchema, kind, f.Name)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate field %q", ErrInvalidSchema, kind, f.Name)
		}
		if f.Rule == nil {
			return nil, fmt.Errorf("%w: %s: field %q has no rule", ErrInvalidSchema, kind, f.Name)
		}
		if f.Type == TypeRecord && f.Target == nil {
			return nil, fmt.Errorf("%w: %s: record field %q has no target schema", ErrInvalidSchema, kind, f.Name)
		}

		if f.hasDefault {
			def, err := f.Rule(f.def)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: default for %q: %v", ErrInvalidSchema, kind, f.Name, err)
			}
			f.def = def
		}

		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	return s, nil
}

// MustSchema builds a schema or panics (for package-level declarations)
func MustSchema(kind string, fields ...Field) *Schema {
	s, err := NewSchema(kind, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind returns the entity kind name.
func (s *Schema) Kind() string {
	return s.kind
}

// Fields returns the field declarations in order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a field declaration by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Names returns the declared field names in order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Doc renders a "Properties:" block describing every field.
func (s *Schema) Doc() string {
	width := 0
	for _, f := range s.fields {
		if len(f.Name) > width {
			width = len(f.Name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n    Properties:\n", s.kind)
	for _, f := range s.fields {
		fmt.Fprintf(&b, "        %-*s - %s (%s", width, f.Name, f.Doc, typeLabel(f))
		if f.Required {
			b.WriteString(", required")
		}
		if f.hasDefault {
			fmt.Fprintf(&b, ", default %s", formatDefault(f.def))
		}
		b.WriteString(")\n")
	}
	return b.String()
}

func typeLabel(f Field) string {
	switch f.Type {
	case TypeRecord:
		return "record of " + f.Target.Kind()
	case TypeList:
		if f.Elem == nil {
			return "list"
		}
		return "list of " + typeLabel(*f.Elem)
	default:
		return string(f.Type)
	}
}

func formatDefault(v any) string {
	switch d := v.(type) {
	case string:
		return fmt.Sprintf("%q", d)
	case values.Color:
		return fmt.Sprintf("%s %s", d, d.Hex())
	case []any:
		parts := make([]string, len(d))
		for i, item := range d {
			parts[i] = formatDefault(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(d)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
