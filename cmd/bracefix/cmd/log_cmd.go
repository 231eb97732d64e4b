package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bracefix/internal/config"
	"bracefix/internal/journal"
)

// logCmd prints the journal of past repair runs.
var logCmd = &cobra.Command{
	Use:          "log",
	Short:        "Show past repair runs",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cfg.Journal == "" {
			return fmt.Errorf("journaling is disabled in the config")
		}
		entries, err := journal.NewFileStore(cfg.Journal).Load()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}
		for _, e := range entries {
			line := fmt.Sprintf("%s  %s  +%d -%d", e.FixedAt.Format("2006-01-02 15:04:05"), e.File, e.Inserts, e.Deletes)
			if e.Backup != "" {
				line += fmt.Sprintf("  (backup: %s)", e.Backup)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}
