// Package validation renders entity schemas as JSON Schema and lints raw
// documents against them.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/pyyyc/deckprops/internal/domain/schema"
	"github.com/pyyyc/deckprops/internal/domain/values"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const draft2020 = "https://json-schema.org/draft/2020-12/schema"

// SchemaValidator lints field maps against the JSON Schema form of an
// entity schema. Unlike construction it reports every issue it finds.
// Compiled schemas are cached per schema.
type SchemaValidator struct {
	mu       sync.Mutex
	compiled map[*schema.Schema]*jsonschema.Schema
}

// NewSchemaValidator creates a validator with an empty compile cache.
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{
		compiled: make(map[*schema.Schema]*jsonschema.Schema),
	}
}

// Lint returns every issue found in fields. A nil slice means the fields
// pass the structural checks; construction is still authoritative.
func (v *SchemaValidator) Lint(s *schema.Schema, fields map[string]any) ([]string, error) {
	compiled, err := v.Compile(s)
	if err != nil {
		return nil, err
	}

	doc, err := toJSONValue(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize %s fields: %w", s.Kind(), err)
	}

	if err := compiled.Validate(doc); err != nil {
		validationErr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("%s validation failed: %w", s.Kind(), err)
		}
		return collectIssues(validationErr), nil
	}
	return nil, nil
}

// Compile returns the compiled JSON Schema of s, compiling it on first use.
func (v *SchemaValidator) Compile(s *schema.Schema) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if compiled, ok := v.compiled[s]; ok {
		return compiled, nil
	}

	data, err := MarshalJSONSchema(s)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	url := s.Kind() + ".schema.json"
	if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource for %s: %w", s.Kind(), err)
	}

	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema for %s: %w", s.Kind(), err)
	}

	v.compiled[s] = compiled
	return compiled, nil
}

// MarshalJSONSchema renders s as an indented JSON Schema document.
func MarshalJSONSchema(s *schema.Schema) ([]byte, error) {
	doc := JSONSchema(s)
	doc["$schema"] = draft2020

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema for %s: %w", s.Kind(), err)
	}
	return data, nil
}

// JSONSchema describes s as a JSON Schema object.
func JSONSchema(s *schema.Schema) map[string]any {
	properties := make(map[string]any, len(s.Fields()))
	required := []string{}

	for _, f := range s.Fields() {
		properties[f.Name] = fieldSchema(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}

	return map[string]any{
		"title":                s.Kind(),
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
		"propertyNames": map[string]any{
			"pattern": "^[^" + values.PrivatePrefix + "]",
		},
	}
}

func fieldSchema(f schema.Field) map[string]any {
	var out map[string]any

	switch f.Type {
	case schema.TypeString:
		out = map[string]any{"type": "string"}
	case schema.TypeFloat:
		out = map[string]any{"type": "number"}
	case schema.TypeInt:
		out = map[string]any{"type": "integer"}
	case schema.TypeColor:
		out = colorSchema()
	case schema.TypeRecord:
		if f.Target != nil {
			out = JSONSchema(f.Target)
		} else {
			out = map[string]any{"type": "object"}
		}
	case schema.TypeList:
		out = map[string]any{"type": "array"}
		if f.Elem != nil {
			out["items"] = fieldSchema(*f.Elem)
		}
	default:
		out = map[string]any{}
	}

	if f.Doc != "" {
		out["description"] = f.Doc
	}
	if f.HasDefault() {
		switch f.Type {
		case schema.TypeString, schema.TypeFloat, schema.TypeInt, schema.TypeColor:
			out["default"] = f.Default()
		}
	}
	return out
}

func colorSchema() map[string]any {
	return map[string]any{
		"oneOf": []any{
			map[string]any{
				"type": "string",
				"enum": values.PaletteNames(),
			},
			map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items": map[string]any{
					"type":    "integer",
					"minimum": 0,
					"maximum": 255,
				},
			},
		},
	}
}

// toJSONValue converts decoded YAML values into the plain JSON shapes
// the validator understands.
func toJSONValue(fields map[string]any) (any, error) {
	if fields == nil {
		fields = map[string]any{}
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var out any
	if err := decoder.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// collectIssues flattens a validation error tree into sorted leaf messages.
func collectIssues(err *jsonschema.ValidationError) []string {
	var issues []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			issues = append(issues, fmt.Sprintf("%s: %s", location, e.Message))
			return
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	slices.Sort(issues)
	return slices.Compact(issues)
}
