package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/app"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <resource>...",
		Short: "Compile resources without starting a server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return c.app.Compile(cmd.Context(), args, app.CompileOptions{Force: force})
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Recompile even if the compiled resource is up to date")

	return cmd
}
