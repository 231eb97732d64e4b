package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"bracefix/internal/core"
	"bracefix/pkg/repair"
)

var (
	okColor     = color.New(color.FgGreen)
	repairColor = color.New(color.FgCyan)
	noteColor   = color.New(color.FgYellow)
)

// PrintRepairs writes one line per repair.
func PrintRepairs(w io.Writer, repairs []repair.Repair) {
	for _, r := range repairs {
		repairColor.Fprintf(w, "  %s\n", r)
	}
}

// PrintFix summarizes a completed fix run. The closing "Fixed file" line is
// the tool's original completion message and is printed even when nothing
// needed repair.
func PrintFix(w io.Writer, res *core.Result) {
	if len(res.Repairs) == 0 {
		fmt.Fprintln(w, "No repairs needed.")
	} else {
		PrintRepairs(w, res.Repairs)
		if res.BackupPath != "" {
			noteColor.Fprintf(w, "Backup written to %s\n", res.BackupPath)
		}
	}
	okColor.Fprintln(w, "Fixed file")
}
