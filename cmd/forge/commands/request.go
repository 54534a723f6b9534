package commands

import "github.com/spf13/cobra"

func (c *CLI) newRequestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "request <resource>...",
		Short: "Ask a running server for resources",
		Long: "Connects to a running resource server, requests each resource " +
			"and waits until every request has been answered.",
		Example: "  forge request data://textures/stone.tex data://maps/level.map",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Request(cmd.Context(), args)
		},
	}
}
