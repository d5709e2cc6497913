package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pyyyc/deckprops/internal/domain/entities"
	"github.com/pyyyc/deckprops/internal/domain/schema"
	"github.com/pyyyc/deckprops/internal/domain/values"
	infraconfig "github.com/pyyyc/deckprops/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldInput(t *testing.T) {
	tests := []struct {
		name    string
		field   schema.Field
		input   string
		want    any
		wantErr string
	}{
		{"string", schema.String("topic", ""), " Generators ", "Generators", ""},
		{"float", schema.Float("time_limit", ""), "20", 20.0, ""},
		{"float text", schema.Float("time_limit", ""), "soon", nil, "not a number"},
		{"int", schema.Int("nslides", ""), "12", 12, ""},
		{"int fraction", schema.Int("nslides", ""), "1.5", nil, "not an integer"},
		{"color name", schema.Color("c", ""), "green", values.ColorGreen, ""},
		{"color triple", schema.Color("c", ""), "255, 0, 0", values.ColorRed, ""},
		{"color brackets", schema.Color("c", ""), "[0,0,255]", values.ColorBlue, ""},
		{"color unknown", schema.Color("c", ""), "purple", nil, "must be rgb color"},
		{"color range", schema.Color("c", ""), "1,2,300", nil, "rgb must be 0-255"},
		{"color non int", schema.Color("c", ""), "1,x,3", nil, "rgb must be ints"},
		{"record", schema.Nested("presenter", "", entities.PersonSchema), "Bob", nil, "cannot be entered as text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFieldInput(tt.field, tt.input)
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

func TestParseAssignments(t *testing.T) {
	raw, err := parseAssignments(entities.DeckSchema, []string{
		"presenter.name=Ann",
		"presenter.bio=Likes generators",
		"topic=Iterators",
		"time_limit=45",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"name": "Ann", "bio": "Likes generators"}, raw["presenter"])
	assert.Equal(t, "Iterators", raw["topic"])
	assert.Equal(t, 45.0, raw["time_limit"])

	for _, bad := range []string{"topic", "venue=hall", "topic.x=1", "slides=[]", "time_limit=x"} {
		_, err := parseAssignments(entities.DeckSchema, []string{bad})
		assert.Error(t, err, bad)
	}
}

func TestRenderDocument_RoundTrip(t *testing.T) {
	raw, err := parseAssignments(entities.DeckSchema, []string{"presenter.name=Ann"})
	require.NoError(t, err)

	data, err := renderDocument(entities.DeckSchema, raw)
	require.NoError(t, err)

	docs, err := infraconfig.NewDocumentLoader().LoadDocumentsFromReader(strings.NewReader(string(data)), "new.yaml")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "deck", docs[0].Kind)
	assert.Equal(t, infraconfig.DefaultDocumentVersion, docs[0].Version)

	e, err := entities.DefaultRegistry().Build(docs[0].Kind, docs[0].Fields)
	require.NoError(t, err)
	assert.Equal(t, "Pythonista Ann talking about Python!.", e.Summarize())
}

func TestNewCmd_NonInteractive(t *testing.T) {
	out, err := executeCommand(t, "new", "pyyyc", "--no-interactive",
		"--set", "presenter=Alice",
		"--set", "topic=Decorators",
		"--set", "time_limit=20",
		"--set", "nslides=10",
		"--set", "slide_color=255,0,0",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "kind: pyyyc")
	assert.Contains(t, out, "presenter: Alice")

	docs, err := infraconfig.NewDocumentLoader().LoadDocumentsFromReader(strings.NewReader(out), "stdout")
	require.NoError(t, err)
	e, err := entities.DefaultRegistry().Build("pyyyc", docs[0].Fields)
	require.NoError(t, err)
	assert.True(t, e.(entities.EyeStrainer).StrainsEyes())
}

func TestNewCmd_MissingRequired(t *testing.T) {
	_, err := executeCommand(t, "new", "person", "--no-interactive")
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrMissingField)
}

func TestNewCmd_OutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "slide.yaml")

	_, err := executeCommand(t, "new", "slide", "--no-interactive", "-o", outPath)
	require.NoError(t, err)

	docs, err := infraconfig.NewDocumentLoader().LoadDocuments(context.Background(), outPath)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Python!", docs[0].Fields["topic"])

	_, err = os.Stat(outPath)
	require.NoError(t, err)
}

func TestNewCmd_UnknownKind(t *testing.T) {
	_, err := executeCommand(t, "new", "robot", "--no-interactive")
	assert.ErrorIs(t, err, entities.ErrUnknownKind)
}
