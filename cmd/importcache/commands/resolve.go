package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/importcache/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [paths...]",
		Short: "Resolve declared paths against the runtime",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			results, err := c.app.Resolve(cmd.Context(), args, c.session)
			if results != nil {
				if renderErr := app.RenderResolutions(cmd.OutOrStdout(), results); renderErr != nil {
					return renderErr
				}
			}
			return err
		},
	}
}
