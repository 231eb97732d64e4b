package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bracefix/internal/config"
	"bracefix/internal/core"
	"bracefix/internal/journal"
)

// undoCmd restores the most recent backup recorded for a file.
var undoCmd = &cobra.Command{
	Use:          "undo [file]",
	Short:        "Restore the target file from its most recent backup",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		target := resolveTarget(cfg, args)
		if cfg.Journal == "" {
			return fmt.Errorf("journaling is disabled in the config; nothing to undo")
		}
		entries, err := journal.NewFileStore(cfg.Journal).Load()
		if err != nil {
			return err
		}
		entry, ok := journal.LastFor(entries, target)
		if !ok || entry.Backup == "" {
			return fmt.Errorf("no backup recorded for %s", target)
		}
		if err := core.RestoreBackup(target, entry.Backup); err != nil {
			return err
		}
		fmt.Printf("Restored %s from %s\n", target, entry.Backup)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
