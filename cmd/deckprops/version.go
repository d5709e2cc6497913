package main

import (
	"fmt"

	"github.com/pyyyc/deckprops/internal/version"
	"github.com/spf13/cobra"
)

// newVersionCmd implements the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of deckprops",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "deckprops version %s\n", info.Full())
		},
	}
}
