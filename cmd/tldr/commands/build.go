package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tldr/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [entries...]",
		Short: "Bundle entry points, emitting imported diagrams as assets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			outdir, _ := cmd.Flags().GetString("outdir")
			minify, _ := cmd.Flags().GetBool("minify")
			return c.app.Build(cmd.Context(), args, app.BuildOptions{
				RunOptions: runOptions(cmd),
				Outdir:     outdir,
				Minify:     minify,
			})
		},
	}
	addRunFlags(cmd)
	cmd.Flags().StringP("outdir", "o", "", "Output directory (default \"dist\")")
	cmd.Flags().Bool("minify", false, "Minify the generated bundle")
	return cmd
}
