package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/app"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Build the packaged resource tree",
		Long: "Compiles the required resources and every resource reachable from the " +
			"selected maps into the packaged build directory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			maps, _ := cmd.Flags().GetStringArray("map")
			return c.app.Package(cmd.Context(), app.PackageOptions{Maps: maps})
		},
	}

	cmd.Flags().StringArrayP("map", "m", nil, "Add a map to the packaging list (repeatable)")

	return cmd
}
