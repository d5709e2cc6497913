package main

import (
	"fmt"

	"github.com/pyyyc/deckprops/internal/infrastructure/validation"
	"github.com/spf13/cobra"
)

// newSchemaCmd prints the property documentation of a kind.
func newSchemaCmd(opts *rootOptions) *cobra.Command {
	var jsonSchema bool

	cmd := &cobra.Command{
		Use:   "schema <kind>",
		Short: "Describe the fields of an entity kind",
		Long: `Print the properties of an entity kind with their docs, types,
required flags and defaults. With --json-schema, print the JSON Schema
(draft 2020-12) used by check --lint instead.`,
		Args: cobra.ExactArgs(1),
		RunE: withContainer(opts, func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			kind, err := cc.Container.Registry().Lookup(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !jsonSchema {
				_, err := fmt.Fprint(out, kind.Schema.Doc())
				return err
			}

			data, err := validation.MarshalJSONSchema(kind.Schema)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		}),
	}

	cmd.Flags().BoolVar(&jsonSchema, "json-schema", false, "Print the JSON Schema instead of property docs")

	return cmd
}
