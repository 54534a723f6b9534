package commands

import "github.com/spf13/cobra"

func (c *CLI) newMapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maps",
		Short: "List the maps available for packaging",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Maps(cmd.Context())
		},
	}
}
