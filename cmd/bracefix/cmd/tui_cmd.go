package cmd

import (
	"github.com/spf13/cobra"

	"bracefix/internal/config"
	"bracefix/internal/tui"
)

// tuiCmd launches the interactive repair review.
var tuiCmd = &cobra.Command{
	Use:          "tui [file]",
	Short:        "Review proposed repairs interactively before applying them",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		target := resolveTarget(cfg, args)
		return tui.Run(target, buildOptions(cfg))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
