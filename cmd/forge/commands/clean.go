package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the compiled resource ledger and compiled resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ledger, _ := cmd.Flags().GetBool("ledger")
			compiled, _ := cmd.Flags().GetBool("compiled")

			opts := app.CleanOptions{
				Ledger:   ledger,
				Compiled: compiled,
			}

			// Default behavior: clean both
			if !ledger && !compiled {
				opts.Ledger = true
				opts.Compiled = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("ledger", "l", false, "Remove only the compiled resource ledger")
	cmd.Flags().Bool("compiled", false, "Remove only the compiled resource tree")

	return cmd
}
