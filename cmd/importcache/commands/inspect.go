package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Preload every declared module and show the state of the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Inspect(cmd.Context(), cmd.OutOrStdout(), c.session)
		},
	}
}
