package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bracefix/internal/config"
	"bracefix/internal/core"
	"bracefix/internal/journal"
	"bracefix/internal/report"
)

var (
	cfgPath  string
	dryRun   bool
	noBackup bool
)

// rootCmd represents the base command when called without any subcommands.
// Running it fixes the target file in place, the way the original one-off
// repair script did.
var rootCmd = &cobra.Command{
	Use:   "bracefix [file]",
	Short: "Repair missing block-closing markers in generated data files",
	Long: `bracefix scans a generated block-delimited data file for outer-block closing
markers that went missing (or drifted out of position) during an automated
edit, and rewrites the file with every marker restored to its place directly
after the last inner close of its block.

With no argument the target from bracefix.toml is used.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		target := resolveTarget(cfg, args)

		opts := buildOptions(cfg)
		opts.DryRun = dryRun
		res, err := core.FixFile(target, opts)
		if err != nil {
			return err
		}
		if dryRun {
			if len(res.Repairs) == 0 {
				fmt.Println("No repairs needed.")
				return nil
			}
			report.PrintRepairs(os.Stdout, res.Repairs)
			return nil
		}
		report.PrintFix(os.Stdout, res)
		return nil
	},
}

// resolveTarget picks the file to operate on: an explicit argument wins over
// the configured default.
func resolveTarget(cfg config.Config, args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return cfg.Target
}

// buildOptions translates the config into fix options shared by the
// subcommands.
func buildOptions(cfg config.Config) core.Options {
	opts := core.Options{
		Layout: cfg.ScanLayout(),
		Backup: cfg.Backup && !noBackup,
	}
	if cfg.Journal != "" {
		opts.Journal = journal.NewFileStore(cfg.Journal)
	}
	return opts
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to bracefix.toml (default: ./bracefix.toml if present)")
	rootCmd.PersistentFlags().BoolVar(&noBackup, "no-backup", false, "skip writing a .bak copy before overwriting")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report repairs without writing the file")
}
