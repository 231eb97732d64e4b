package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"bracefix/internal/config"
	"bracefix/internal/report"
	"bracefix/internal/watch"
)

var watchDebounce time.Duration

// watchCmd keeps the target file repaired while its generator is running.
var watchCmd = &cobra.Command{
	Use:          "watch [file]",
	Short:        "Watch the target file and re-apply the repair whenever it changes",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		target := resolveTarget(cfg, args)

		w := watch.New(target, buildOptions(cfg), watchDebounce)
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()
		fmt.Printf("Watching %s (ctrl+c to stop)\n", target)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		for {
			select {
			case <-sigCh:
				fmt.Println("\nStopped.")
				return nil
			case ev := <-w.Events():
				printWatchEvent(ev)
			}
		}
	},
}

func printWatchEvent(ev watch.Event) {
	switch ev.Kind {
	case watch.EventChanged:
		fmt.Println("File changed, re-checking...")
	case watch.EventFixed:
		report.PrintFix(os.Stdout, ev.Result)
	case watch.EventClean:
		fmt.Println("No repairs needed.")
	case watch.EventError:
		fmt.Fprintf(os.Stderr, "Error: %v\n", ev.Err)
	}
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "settle time after a change before re-checking")
	rootCmd.AddCommand(watchCmd)
}
