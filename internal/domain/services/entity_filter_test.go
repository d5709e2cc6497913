package services

import (
	"testing"

	"github.com/pyyyc/deckprops/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileEntityFilter_Invalid(t *testing.T) {
	tests := []string{
		"invalid syntax ((",
		"kind + 1",
		"unknown_var == 1",
	}

	for _, expression := range tests {
		t.Run(expression, func(t *testing.T) {
			_, err := CompileEntityFilter(expression)
			assert.ErrorContains(t, err, "invalid filter expression")
		})
	}
}

func TestEntityFilter_Matches(t *testing.T) {
	red := Inspect(buildEntity(t, entities.KindPyYYC, talk(9, "red")))
	grey := Inspect(buildEntity(t, entities.KindPyYYC, talk(45, []int{100, 100, 100})))
	js := Inspect(buildEntity(t, entities.KindYYCjs, talk(9, "red")))
	person := Inspect(buildEntity(t, entities.KindPerson, map[string]any{"name": "Ada"}))

	tests := []struct {
		expression string
		in         Insight
		want       bool
	}{
		{"", person, true},
		{"strains_eyes", red, true},
		{"strains_eyes", grey, false},
		{"strains_eyes", js, false},
		{"kind == 'pyyyc'", red, true},
		{"kind == 'pyyyc'", js, false},
		{"has_pace && time_per_slide < 5", grey, true},
		{"has_pace && time_per_slide < 5", red, false},
		{"has_pace", person, false},
		{"fields.presenter == 'Ada'", person, false},
		{"fields.name == 'Ada'", person, true},
		{"summary contains 'JavaScripter'", js, true},
	}

	for _, tt := range tests {
		t.Run(tt.in.Kind+"/"+tt.expression, func(t *testing.T) {
			f, err := CompileEntityFilter(tt.expression)
			require.NoError(t, err)

			got, err := f.Matches(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
