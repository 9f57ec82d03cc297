package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the declared modules without loading a runtime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Modules(cmd.OutOrStdout(), c.session)
		},
	}
}
