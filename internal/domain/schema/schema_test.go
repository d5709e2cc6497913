package schema

import (
	"testing"

	"github.com/pyyyc/deckprops/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchema_RejectsBadDeclarations(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		fields  []Field
		wantErr string
	}{
		{"empty kind", "", nil, "kind cannot be empty"},
		{"empty name", "k", []Field{String("", "doc")}, "field name cannot be empty"},
		{"bad name", "k", []Field{String("slide-color", "doc")}, "is invalid"},
		{"private name", "k", []Field{String("_secret", "doc")}, "private prefix"},
		{"double underscore", "k", []Field{String("__secret", "doc")}, "is invalid"},
		{"reserved name", "k", []Field{String("props", "doc")}, "reserved"},
		{"duplicate", "k", []Field{String("a", "doc"), Int("a", "doc")}, "duplicate field"},
		{"no rule", "k", []Field{{Name: "a", Type: TypeAny}}, "has no rule"},
		{"record without target", "k", []Field{{Name: "a", Type: TypeRecord, Rule: StringRule}}, "no target schema"},
		{"bad default", "k", []Field{Color("c", "doc", Default("mauve"))}, "default for \"c\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSchema(tt.kind, tt.fields...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSchema)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchema_Doc_ColorDefault(t *testing.T) {
	s := MustSchema("slide", Color("slide_color", "Color of slide", Default("white")))

	assert.Contains(t, s.Doc(), "slide_color - Color of slide (color, default [255, 255, 255] #ffffff)")
}

func TestNewSchema_CoercesDefaults(t *testing.T) {
	s, err := NewSchema("slide",
		String("topic", "Topic", Default("Python!")),
		Color("slide_color", "Color", Default("white")),
	)
	require.NoError(t, err)

	f, ok := s.Field("slide_color")
	require.True(t, ok)
	assert.True(t, f.HasDefault())
	assert.Equal(t, values.ColorWhite, f.Default())
}

func TestMustSchema_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustSchema("k", String("_x", "doc"))
	})
}

func TestSchema_Accessors(t *testing.T) {
	s := MustSchema("pres",
		String("presenter", "Name of the presenter", Required()),
		Int("nslides", "Number of slides"),
	)

	assert.Equal(t, "pres", s.Kind())
	assert.Equal(t, []string{"presenter", "nslides"}, s.Names())

	fields := s.Fields()
	require.Len(t, fields, 2)
	fields[0].Name = "mutated"
	assert.Equal(t, []string{"presenter", "nslides"}, s.Names(), "Fields must return a copy")

	_, ok := s.Field("topic")
	assert.False(t, ok)
}

func TestSchema_Doc(t *testing.T) {
	person := MustSchema("person", String("name", "Name of person", Required()))
	s := MustSchema("deck",
		Nested("presenter", "Presenter info", person, Required()),
		String("topic", "Topic of presentation", Default("Python!")),
		Float("time_limit", "Time limit in minutes", Default(90.0)),
		List("tags", "Tags", String("tag", "Tag"), Default([]any{})),
	)

	want := "deck\n\n    Properties:\n" +
		"        presenter  - Presenter info (record of person, required)\n" +
		"        topic      - Topic of presentation (string, default \"Python!\")\n" +
		"        time_limit - Time limit in minutes (float, default 90)\n" +
		"        tags       - Tags (list of string, default [])\n"
	assert.Equal(t, want, s.Doc())
}
