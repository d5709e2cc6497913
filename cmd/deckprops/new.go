package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/goccy/go-yaml"
	"github.com/pyyyc/deckprops/internal/domain/schema"
	infraconfig "github.com/pyyyc/deckprops/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

// newDocument is the YAML shape written by the new command.
type newDocument struct {
	Version string         `yaml:"version"`
	Kind    string         `yaml:"kind"`
	Fields  map[string]any `yaml:"fields"`
}

type newOptions struct {
	sets          []string
	outFile       string
	noInteractive bool
}

// newNewCmd scaffolds a document for a kind.
func newNewCmd(opts *rootOptions) *cobra.Command {
	var nopts newOptions

	cmd := &cobra.Command{
		Use:   "new <kind>",
		Short: "Create an entity document interactively",
		Long: `Prompt for every text, number and color field of a kind, validating
each answer as it is typed, and print the resulting YAML document.

Values can be given up front with --set; nested fields use dots:

  deckprops new deck --set presenter.name=Ann --set topic=Generators
  deckprops new pyyyc --set slide_color=255,0,0 --no-interactive

List fields keep their defaults; edit the generated document to add items.`,
		Args: cobra.ExactArgs(1),
		RunE: withContainer(opts, func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			kind, err := cc.Container.Registry().Lookup(args[0])
			if err != nil {
				return err
			}

			raw, err := parseAssignments(kind.Schema, nopts.sets)
			if err != nil {
				return err
			}

			if !nopts.noInteractive {
				if err := promptFields(kind.Schema, raw, ""); err != nil {
					return err
				}
			}

			data, err := renderDocument(kind.Schema, raw)
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if nopts.outFile != "" {
				if err := os.WriteFile(nopts.outFile, data, 0o600); err != nil {
					return fmt.Errorf("failed to write document: %w", err)
				}
				cc.Logger.Info("document written", "file", nopts.outFile, "kind", kind.Name)
				return nil
			}
			_, err = out.Write(data)
			return err
		}),
	}

	cmd.Flags().StringArrayVar(&nopts.sets, "set", nil, "Set a field value (name=value, repeatable)")
	cmd.Flags().StringVarP(&nopts.outFile, "output", "o", "", "Write the document to a file instead of stdout")
	cmd.Flags().BoolVar(&nopts.noInteractive, "no-interactive", false, "Do not prompt; use only --set values and defaults")

	return cmd
}

// parseAssignments turns name=value pairs into raw field values.
func parseAssignments(s *schema.Schema, sets []string) (map[string]any, error) {
	raw := make(map[string]any)

	for _, set := range sets {
		path, text, ok := strings.Cut(set, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected name=value", set)
		}
		if err := assign(s, raw, strings.Split(path, "."), text); err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", set, err)
		}
	}

	return raw, nil
}

func assign(s *schema.Schema, raw map[string]any, path []string, text string) error {
	f, ok := s.Field(path[0])
	if !ok {
		return fmt.Errorf("%s: %w", path[0], schema.ErrUnknownField)
	}

	if len(path) > 1 {
		if f.Type != schema.TypeRecord {
			return fmt.Errorf("%s is not a record", f.Name)
		}
		sub, _ := raw[f.Name].(map[string]any)
		if sub == nil {
			sub = make(map[string]any)
			raw[f.Name] = sub
		}
		return assign(f.Target, sub, path[1:], text)
	}

	v, err := parseFieldInput(f, text)
	if err != nil {
		return err
	}
	raw[f.Name] = v
	return nil
}

// parseFieldInput converts typed text into a value accepted by the field's rule.
func parseFieldInput(f schema.Field, text string) (any, error) {
	text = strings.TrimSpace(text)

	var v any
	switch f.Type {
	case schema.TypeString:
		v = text
	case schema.TypeFloat:
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", f.Name, text)
		}
		v = n
	case schema.TypeInt:
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an integer", f.Name, text)
		}
		v = n
	case schema.TypeColor:
		c, err := parseColorInput(text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		v = c
	default:
		return nil, fmt.Errorf("%s: %s fields cannot be entered as text", f.Name, f.Type)
	}

	coerced, err := f.Rule(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	return coerced, nil
}

// parseColorInput accepts a palette name or "r,g,b" with optional brackets.
func parseColorInput(text string) (any, error) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(text, "["), "]")
	if !strings.Contains(trimmed, ",") {
		return text, nil
	}

	parts := strings.Split(trimmed, ",")
	channels := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.New("rgb must be ints")
		}
		channels = append(channels, n)
	}
	return channels, nil
}

// promptFields asks for every scalar field not already in raw.
func promptFields(s *schema.Schema, raw map[string]any, prefix string) error {
	for _, f := range s.Fields() {
		if _, done := raw[f.Name]; done && f.Type != schema.TypeRecord {
			continue
		}

		switch f.Type {
		case schema.TypeRecord:
			sub, _ := raw[f.Name].(map[string]any)
			if sub == nil {
				sub = make(map[string]any)
			}
			if err := promptFields(f.Target, sub, prefix+f.Name+"."); err != nil {
				return err
			}
			if len(sub) > 0 || f.Required {
				raw[f.Name] = sub
			}
		case schema.TypeString, schema.TypeFloat, schema.TypeInt, schema.TypeColor:
			v, err := promptField(f, prefix)
			if err != nil {
				return err
			}
			if v != nil {
				raw[f.Name] = v
			}
		}
	}
	return nil
}

func promptField(f schema.Field, prefix string) (any, error) {
	var text string

	input := huh.NewInput().
		Title(prefix + f.Name).
		Description(fieldHint(f)).
		Value(&text).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				if f.Required {
					return errors.New("required")
				}
				return nil
			}
			_, err := parseFieldInput(f, s)
			return err
		})
	if f.HasDefault() {
		input = input.Placeholder(fmt.Sprint(f.Default()))
	}

	if err := input.Run(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return parseFieldInput(f, text)
}

func fieldHint(f schema.Field) string {
	hint := f.Doc
	if f.Type == schema.TypeColor {
		hint += " (red, green, blue, white, black or r,g,b)"
	}
	if !f.Required {
		hint += " [optional]"
	}
	return hint
}

// renderDocument builds the record to validate it and renders it as YAML.
func renderDocument(s *schema.Schema, raw map[string]any) ([]byte, error) {
	rec, err := s.New(raw)
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(newDocument{
		Version: infraconfig.DefaultDocumentVersion,
		Kind:    s.Kind(),
		Fields:  rec.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}
	return data, nil
}
