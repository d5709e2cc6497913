package schema

import (
	"encoding/json"
	"testing"

	"github.com/pyyyc/deckprops/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRules(t *testing.T) {
	tests := []struct {
		name    string
		rule    RuleFunc
		input   any
		want    any
		wantErr string
	}{
		{"string ok", StringRule, "Ada", "Ada", ""},
		{"string rejects int", StringRule, 5, nil, "must be string"},
		{"string rejects nil", StringRule, nil, nil, "must be string"},
		{"float ok", FloatRule, 90.0, 90.0, ""},
		{"float from float32", FloatRule, float32(2.5), 2.5, ""},
		{"float from json", FloatRule, json.Number("90.0"), 90.0, ""},
		{"float rejects int", FloatRule, 90, nil, "must be float"},
		{"float rejects string", FloatRule, "90.0", nil, "must be float"},
		{"int ok", IntRule, 9, 9, ""},
		{"int from uint64", IntRule, uint64(9), 9, ""},
		{"int from json", IntRule, json.Number("9"), 9, ""},
		{"int rejects float", IntRule, 9.0, nil, "must be int"},
		{"int rejects bool", IntRule, true, nil, "must be int"},
		{"color name", ColorRule, "green", values.ColorGreen, ""},
		{"color triple", ColorRule, []any{10, 20, 30}, values.MustParseColor([]int{10, 20, 30}), ""},
		{"color short", ColorRule, []int{1, 2}, nil, "must be rgb color"},
		{"color range", ColorRule, []int{300, 0, 0}, nil, "rgb must be 0-255"},
		{"color float", ColorRule, []any{1.5, 0, 0}, nil, "rgb must be ints"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rule(tt.input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListRule(t *testing.T) {
	rule := ListRule(StringRule)

	got, err := rule([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	got, err = rule([]any{})
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)

	_, err = rule([]any{"a", 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[1]: 2: must be string")

	_, err = rule("a")
	assert.ErrorContains(t, err, "must be list")
}

func TestRecordRule(t *testing.T) {
	person := MustSchema("person", String("name", "Name of person", Required()))
	other := MustSchema("other", String("name", "Name"))
	rule := RecordRule(person)

	got, err := rule(map[string]any{"name": "Ada"})
	require.NoError(t, err)
	rec, ok := got.(*Record)
	require.True(t, ok)
	assert.Equal(t, "Ada", rec.Text("name"))

	same, err := rule(rec)
	require.NoError(t, err)
	assert.Same(t, rec, same)

	foreign, err := other.New(map[string]any{"name": "Bob"})
	require.NoError(t, err)
	_, err = rule(foreign)
	assert.ErrorContains(t, err, "must be person")

	_, err = rule(map[string]any{})
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = rule("Ada")
	assert.ErrorContains(t, err, "must be person")
}
