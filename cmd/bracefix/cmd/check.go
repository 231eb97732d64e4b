package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bracefix/internal/config"
	"bracefix/internal/core"
	"bracefix/internal/report"
)

// checkCmd reports needed repairs without touching the file, exiting
// non-zero when the file is malformed. Useful as a CI guard behind the
// generator.
var checkCmd = &cobra.Command{
	Use:          "check [file]",
	Short:        "Report needed repairs without modifying the file",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		target := resolveTarget(cfg, args)

		opts := buildOptions(cfg)
		opts.DryRun = true
		res, err := core.FixFile(target, opts)
		if err != nil {
			return err
		}
		if len(res.Repairs) == 0 {
			fmt.Println("No repairs needed.")
			return nil
		}
		report.PrintRepairs(os.Stdout, res.Repairs)
		fmt.Printf("%s needs repair\n", target)
		os.Exit(1)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
