package core

import (
	"fmt"
	"os"
	"strings"

	"bracefix/internal/clock"
	"bracefix/internal/gitutil"
	"bracefix/internal/journal"
	"bracefix/internal/patch"
	"bracefix/internal/rewrite"
	"bracefix/internal/scan"
	"bracefix/pkg/repair"
)

// Options control how FixFile behaves.
type Options struct {
	Layout  scan.Layout   // zero value falls back to the default layout
	DryRun  bool          // detect only, never write
	Backup  bool          // write path.bak before overwriting
	Journal journal.Store // nil disables run history
	Clock   clock.Clock   // nil falls back to the real clock
}

// Result describes what FixFile did to one file.
type Result struct {
	Path       string
	Repairs    []repair.Repair
	Changed    bool   // the file on disk was rewritten
	BackupPath string // non-empty when a .bak copy was written
}

// FixFile reads the file at path, detects missing or misplaced outer closing
// markers, and rewrites the file in place with every marker restored. A file
// that needs no repair is never written. The backup is skipped when git
// already holds the current content of the file.
func FixFile(path string, opts Options) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	p := patch.New(opts.Layout)
	repairs := p.Detect(strings.Split(string(content), "\n"))
	res := &Result{Path: path, Repairs: repairs}
	if len(repairs) == 0 || opts.DryRun {
		return res, nil
	}

	if opts.Backup && !trackedClean(path) {
		backup := path + ".bak"
		if err := os.WriteFile(backup, content, 0644); err != nil {
			return nil, fmt.Errorf("failed to write backup %s: %w", backup, err)
		}
		res.BackupPath = backup
	}

	fixed := rewrite.ApplyRepairs(string(content), repairs)
	if err := os.WriteFile(path, []byte(fixed), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	res.Changed = true

	if opts.Journal != nil {
		clk := opts.Clock
		if clk == nil {
			clk = clock.RealClock{}
		}
		inserts, deletes := repair.Count(repairs)
		entry := journal.Entry{
			File:    path,
			FixedAt: clk.Now(),
			Inserts: inserts,
			Deletes: deletes,
			Backup:  res.BackupPath,
		}
		if err := opts.Journal.Append(entry); err != nil {
			return res, fmt.Errorf("file fixed, but failed to record journal entry: %w", err)
		}
	}
	return res, nil
}

// RestoreBackup copies a previously written backup over path.
func RestoreBackup(path, backup string) error {
	content, err := os.ReadFile(backup)
	if err != nil {
		return fmt.Errorf("failed to read backup %s: %w", backup, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to restore %s: %w", path, err)
	}
	return nil
}

func trackedClean(path string) bool {
	clean, err := gitutil.CleanInGit(path)
	return err == nil && clean
}
