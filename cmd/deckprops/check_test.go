package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pyyyc/deckprops/internal/infrastructure/system"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_Table(t *testing.T) {
	path := writeFile(t, "talks.yaml", talksYAML)

	out, err := executeCommand(t, "check", path, "--color=false")
	require.NoError(t, err)

	assert.Contains(t, out, "Summary: Pythonista Alice talking about Decorators.")
	assert.Contains(t, out, "Summary: JavaScripter Bob talking about Promises.")
	assert.Contains(t, out, "Time per slide: 2.00 min")
	assert.Contains(t, out, "Time per slide: 3.00 min")
	assert.Contains(t, out, "Valid:    2")
	assert.NotContains(t, out, "\033[")
}

func TestCheckCmd_InvalidDocumentFails(t *testing.T) {
	path := writeFile(t, "broken.yaml", brokenYAML)

	out, err := executeCommand(t, "check", path, "--color=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check failed: 1 valid, 1 invalid")

	assert.Contains(t, out, "Summary: Carol")
	assert.Contains(t, out, "Error (invalid_value)")
	assert.Contains(t, out, "favorite_color")
}

func TestCheckCmd_JSONWithFilter(t *testing.T) {
	path := writeFile(t, "talks.yaml", talksYAML)

	out, err := executeCommand(t, "check", path, "--format", "json", "--filter", "strains_eyes")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	results := report["results"].([]any)
	require.Len(t, results, 1)
	assert.Equal(t, "pyyyc", results[0].(map[string]any)["kind"])

	summary := report["summary"].(map[string]any)
	assert.EqualValues(t, 1, summary["filtered"])
}

func TestCheckCmd_Lint(t *testing.T) {
	path := writeFile(t, "broken.yaml", brokenYAML)

	out, err := executeCommand(t, "check", path, "--lint", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, out, "lint_issues:")
	assert.Contains(t, out, "/favorite_color")
}

func TestCheckCmd_OutputFile(t *testing.T) {
	path := writeFile(t, "talks.yaml", talksYAML)
	outPath := filepath.Join(t.TempDir(), "report.json")

	out, err := executeCommand(t, "check", path, "--format", "json", "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestCheckCmd_Errors(t *testing.T) {
	path := writeFile(t, "talks.yaml", talksYAML)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown format", []string{"check", path, "--format", "sarif"}, "unknown format: sarif"},
		{"bad filter", []string{"check", path, "--filter", "kind ==="}, "filter"},
		{"missing file", []string{"check", filepath.Join(t.TempDir(), "nope.yaml")}, "failed to load"},
		{"no args", []string{"check"}, "requires at least 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCheckCmd_EnvironmentOverride(t *testing.T) {
	path := writeFile(t, "talks.yaml", talksYAML)
	t.Setenv("DECKPROPS_OUTPUT_FORMAT", "yaml")

	out, err := executeCommand(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "summary:")
	assert.Contains(t, out, "kind: yycjs")
}

func TestCheckCmd_ConfigFile(t *testing.T) {
	path := writeFile(t, "talks.yaml", talksYAML)
	cfgPath := writeFile(t, "config.yaml", "output:\n  format: json\ncheck:\n  kinds: [yycjs]\n")

	out, err := executeCommand(t, "--config", cfgPath, "check", path)
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Len(t, report["results"], 1)
}

func TestResolveCheckOptions_Precedence(t *testing.T) {
	cfg := system.DefaultConfig()
	cfg.Output.Format = "yaml"
	cfg.Check.Lint = true

	t.Run("config defaults", func(t *testing.T) {
		cmd := newCheckCmd(&rootOptions{v: viper.New()})
		require.NoError(t, cmd.ParseFlags(nil))

		opts, err := resolveCheckOptions(viper.New(), cmd, cfg)
		require.NoError(t, err)
		assert.Equal(t, "yaml", opts.Format)
		assert.True(t, opts.Lint)
		assert.True(t, opts.Color)
	})

	t.Run("env beats config", func(t *testing.T) {
		t.Setenv("DECKPROPS_OUTPUT_FORMAT", "json")
		v := viper.New()
		configureEnv(v)

		cmd := newCheckCmd(&rootOptions{v: v})
		require.NoError(t, cmd.ParseFlags(nil))

		opts, err := resolveCheckOptions(v, cmd, cfg)
		require.NoError(t, err)
		assert.Equal(t, "json", opts.Format)
	})

	t.Run("flag beats env", func(t *testing.T) {
		t.Setenv("DECKPROPS_OUTPUT_FORMAT", "json")
		v := viper.New()
		configureEnv(v)

		cmd := newCheckCmd(&rootOptions{v: v})
		require.NoError(t, cmd.ParseFlags([]string{"--format", "table", "--kind", "deck,person", "--lint=false"}))

		opts, err := resolveCheckOptions(v, cmd, cfg)
		require.NoError(t, err)
		assert.Equal(t, "table", opts.Format)
		assert.Equal(t, []string{"deck", "person"}, opts.Kinds)
		assert.False(t, opts.Lint)
	})

	t.Run("nil config", func(t *testing.T) {
		cmd := newCheckCmd(&rootOptions{v: viper.New()})
		require.NoError(t, cmd.ParseFlags(nil))

		opts, err := resolveCheckOptions(viper.New(), cmd, nil)
		require.NoError(t, err)
		assert.Equal(t, "table", opts.Format)
	})
}

func TestResolveCheckOptions_EnvKinds(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want []string
	}{
		{"comma separated", "deck,person", []string{"deck", "person"}},
		{"spaces after commas", "deck, person", []string{"deck", "person"}},
		{"whitespace separated", "deck person", []string{"deck", "person"}},
		{"single", "slide", []string{"slide"}},
		{"trailing comma", "deck,", []string{"deck"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DECKPROPS_CHECK_KINDS", tt.env)
			v := viper.New()
			configureEnv(v)

			cmd := newCheckCmd(&rootOptions{v: v})
			require.NoError(t, cmd.ParseFlags(nil))

			opts, err := resolveCheckOptions(v, cmd, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, opts.Kinds)
		})
	}
}

func TestCheckCmd_EnvironmentKinds(t *testing.T) {
	path := writeFile(t, "talks.yaml", talksYAML)
	t.Setenv("DECKPROPS_CHECK_KINDS", "deck,pyyyc")

	out, err := executeCommand(t, "check", path, "--format", "json")
	require.NoError(t, err)

	var report struct {
		Results []struct {
			Kind string `json:"kind"`
		} `json:"results"`
		Summary struct {
			Filtered int `json:"filtered"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 1)
	assert.Equal(t, "pyyyc", report.Results[0].Kind)
	assert.Equal(t, 1, report.Summary.Filtered)
}
