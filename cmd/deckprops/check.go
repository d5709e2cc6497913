package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pyyyc/deckprops/internal/application/dto"
	"github.com/pyyyc/deckprops/internal/application/ports"
	"github.com/pyyyc/deckprops/internal/infrastructure/system"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// checkOptions are the resolved settings of one check run.
type checkOptions struct {
	Format  string
	OutFile string
	Filter  string
	Kinds   []string
	Lint    bool
	Color   bool
	Indent  bool
}

// newCheckCmd represents the check command
func newCheckCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file.yaml>...",
		Short: "Validate entity documents and report summaries",
		Long: `Load one or more YAML files of entity documents, build every document
through its kind's schema and report summaries and derived values.

Each document has the shape:

  version: 1.0.0      # optional, must be >= 1.0.0, < 2.0.0
  kind: pyyyc
  fields:
    presenter: Alice
    ...

Filtering:
  --kind deck,person                  Only report these kinds
  --filter "time_per_slide < 2.0"     Keep valid entities matching an expression
  Variables: kind, summary, time_per_slide, has_pace, strains_eyes, fields

Settings fall back to DECKPROPS_* environment variables and the config file.
The command fails when any document is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: withContainer(opts, runCheck),
	}

	cmd.Flags().String("format", "table", "Output format: table, json, yaml")
	cmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().String("filter", "", "Filter expression over valid entities (e.g. \"strains_eyes\")")
	cmd.Flags().StringSlice("kind", nil, "Only report these kinds (comma-separated)")
	cmd.Flags().Bool("lint", false, "List every schema issue of each document before building it")
	cmd.Flags().Bool("color", true, "Colorize table output")

	return cmd
}

// resolveCheckOptions merges flags, environment and config, in that order
// of precedence, over the system config defaults.
func resolveCheckOptions(v *viper.Viper, cmd *cobra.Command, cfg *system.Config) (checkOptions, error) {
	if cfg == nil {
		cfg = system.DefaultConfig()
	}

	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.color", cfg.Output.Color)
	v.SetDefault("output.indent", cfg.Output.Indent)
	v.SetDefault("check.filter", cfg.Check.Filter)
	v.SetDefault("check.kinds", cfg.Check.Kinds)
	v.SetDefault("check.lint", cfg.Check.Lint)

	bindings := map[string]string{
		"output.format": "format",
		"output.color":  "color",
		"check.filter":  "filter",
		"check.kinds":   "kind",
		"check.lint":    "lint",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return checkOptions{}, fmt.Errorf("failed to bind --%s: %w", flag, err)
		}
	}

	outFile, _ := cmd.Flags().GetString("output")

	return checkOptions{
		Format:  v.GetString("output.format"),
		OutFile: outFile,
		Filter:  v.GetString("check.filter"),
		Kinds:   splitList(v.GetStringSlice("check.kinds")),
		Lint:    v.GetBool("check.lint"),
		Color:   v.GetBool("output.color"),
		Indent:  v.GetBool("output.indent"),
	}, nil
}

// splitList flattens comma-separated items. Environment values reach viper
// as one string that it splits on whitespace only.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// runCheck implements the core logic for the check command
func runCheck(cc *CommandContext, cmd *cobra.Command, args []string) error {
	opts, err := resolveCheckOptions(cc.Viper, cmd, cc.Container.SystemConfig())
	if err != nil {
		return err
	}

	// Create the formatter first so a bad --format fails before any work
	var writer io.Writer = cmd.OutOrStdout()
	if opts.OutFile != "" {
		//nolint:gosec // G304: User-controlled output file path is intentional
		file, err := os.Create(opts.OutFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = file.Close() // Best-effort cleanup
		}()
		writer = file
		opts.Color = false
		cc.Logger.Info("writing output", "file", opts.OutFile, "format", opts.Format)
	}

	formatter, err := cc.Container.Formatters().Create(opts.Format, writer, ports.FormatterOptions{
		Indent: opts.Indent,
		Color:  opts.Color,
	})
	if err != nil {
		return err
	}

	report, err := cc.Container.CheckDocumentsUseCase().Execute(cc.Context, dto.CheckDocumentsRequest{
		Paths:   args,
		Options: dto.CheckOptions{Lint: opts.Lint},
		Filters: dto.FilterOptions{
			FilterExpression: opts.Filter,
			Kinds:            opts.Kinds,
		},
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	// Return non-zero exit code if any document was invalid
	if report.HasFailures() {
		return fmt.Errorf("check failed: %d valid, %d invalid",
			report.Summary.Valid,
			report.Summary.Invalid)
	}

	return nil
}
