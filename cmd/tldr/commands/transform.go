package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [imports...]",
		Short: "Render imports and print the generated modules",
		Long: "Render each .tldr import, such as \"sketch.tldr?format=png&scale=4&tldr\",\n" +
			"and print the module that replaces it. Paths are served from the cache directory.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Transform(cmd.Context(), args, runOptions(cmd))
		},
	}
	addRunFlags(cmd)
	return cmd
}
