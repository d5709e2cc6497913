package schema

// Type classifies a field for documentation and schema export.
type Type string

const (
	TypeString Type = "string"
	TypeFloat  Type = "float"
	TypeInt    Type = "int"
	TypeColor  Type = "color"
	TypeRecord Type = "record"
	TypeList   Type = "list"
	TypeAny    Type = "any"
)

// Field declares one validated attribute.
type Field struct {
	Name     string
	Doc      string
	Type     Type
	Rule     RuleFunc
	Required bool

	// Target is the nested schema of a TypeRecord field.
	Target *Schema
	// Elem describes the elements of a TypeList field.
	Elem *Field

	def        any
	hasDefault bool
}

// FieldOption configures a Field.
type FieldOption func(*Field)

// Required marks the field as mandatory at construction.
func Required() FieldOption {
	return func(f *Field) {
		f.Required = true
	}
}

// Default sets the value used when the field is not supplied.
// It is validated when the schema is built.
func Default(v any) FieldOption {
	return func(f *Field) {
		f.def = v
		f.hasDefault = true
	}
}

// HasDefault reports whether the field declares a default.
func (f Field) HasDefault() bool {
	return f.hasDefault
}

// Default returns the declared default, coerced by the field's rule once
// the field belongs to a schema.
func (f Field) Default() any {
	return f.def
}

func newField(name, doc string, typ Type, rule RuleFunc, opts []FieldOption) Field {
	f := Field{Name: name, Doc: doc, Type: typ, Rule: rule}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// String declares a text field.
func String(name, doc string, opts ...FieldOption) Field {
	return newField(name, doc, TypeString, StringRule, opts)
}

// Float declares a floating-point field.
func Float(name, doc string, opts ...FieldOption) Field {
	return newField(name, doc, TypeFloat, FloatRule, opts)
}

// Int declares an integer field.
func Int(name, doc string, opts ...FieldOption) Field {
	return newField(name, doc, TypeInt, IntRule, opts)
}

// Color declares an RGB color field.
func Color(name, doc string, opts ...FieldOption) Field {
	return newField(name, doc, TypeColor, ColorRule, opts)
}

// Nested declares a field holding a record of target.
func Nested(name, doc string, target *Schema, opts ...FieldOption) Field {
	f := newField(name, doc, TypeRecord, RecordRule(target), opts)
	f.Target = target
	return f
}

// List declares a repeated field whose elements follow elem.
// Only elem's Type, Rule and Target are used.
func List(name, doc string, elem Field, opts ...FieldOption) Field {
	f := newField(name, doc, TypeList, ListRule(elem.Rule), opts)
	f.Elem = &elem
	return f
}

// Custom declares a field validated by an arbitrary rule.
func Custom(name, doc string, rule RuleFunc, opts ...FieldOption) Field {
	return newField(name, doc, TypeAny, rule, opts)
}
