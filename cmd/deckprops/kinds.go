package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newKindsCmd lists the registered entity kinds.
func newKindsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the registered entity kinds",
		Args:  cobra.NoArgs,
		RunE: withContainer(opts, func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
			registry := cc.Container.Registry()
			out := cmd.OutOrStdout()

			for _, name := range registry.Names() {
				kind, err := registry.Lookup(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "%-12s %s\n", name, strings.Join(kind.Schema.Names(), ", ")); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}
