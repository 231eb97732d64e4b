package rewrite

import (
	"sort"
	"strings"

	"bracefix/pkg/repair"
)

// Rewriter builds an edited copy of line-delimited content while keeping a
// cursor into the original line sequence. It lets callers copy, skip, and
// insert at the granularity of whole lines; the original content is split on
// '\n' and the result rejoined the same way, so a trailing newline survives
// a rewrite untouched.
type Rewriter struct {
	lines []string // original lines
	out   []string
	pos   int // index of the next original line to consume
}

// NewRewriter constructs a Rewriter over the full file content.
func NewRewriter(content string) *Rewriter {
	return &Rewriter{lines: strings.Split(content, "\n")}
}

// CopyLinesUntil copies original lines up to (not including) lineIndex and
// positions the cursor there. Indices at or before the cursor are no-ops.
func (rw *Rewriter) CopyLinesUntil(lineIndex int) {
	if lineIndex > len(rw.lines) {
		lineIndex = len(rw.lines)
	}
	for rw.pos < lineIndex {
		rw.out = append(rw.out, rw.lines[rw.pos])
		rw.pos++
	}
}

// InsertLines writes new lines at the current cursor position without
// consuming any original lines.
func (rw *Rewriter) InsertLines(lines ...string) {
	rw.out = append(rw.out, lines...)
}

// SkipLines consumes n original lines without copying them.
func (rw *Rewriter) SkipLines(n int) {
	rw.pos += n
	if rw.pos > len(rw.lines) {
		rw.pos = len(rw.lines)
	}
}

// CopyRemainingLines copies every original line from the cursor through the
// end of the content.
func (rw *Rewriter) CopyRemainingLines() {
	rw.CopyLinesUntil(len(rw.lines))
}

// String returns the rewritten content.
func (rw *Rewriter) String() string {
	return strings.Join(rw.out, "\n")
}

// ApplyRepairs applies a set of line edits to content. Repairs carry indices
// into the original line sequence; they are applied in line order regardless
// of the order given. This is the write path used when fixing a file, and
// its output matches patch.Apply on the same input.
func ApplyRepairs(content string, repairs []repair.Repair) string {
	if len(repairs) == 0 {
		return content
	}
	sorted := make([]repair.Repair, len(repairs))
	copy(sorted, repairs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Line != sorted[j].Line {
			return sorted[i].Line < sorted[j].Line
		}
		// Insert before delete at the same index, matching patch.Apply.
		return sorted[i].Op == repair.OpInsert && sorted[j].Op == repair.OpDelete
	})

	rw := NewRewriter(content)
	for _, r := range sorted {
		rw.CopyLinesUntil(r.Line)
		switch r.Op {
		case repair.OpInsert:
			rw.InsertLines(r.Text)
		case repair.OpDelete:
			rw.SkipLines(1)
		}
	}
	rw.CopyRemainingLines()
	return rw.String()
}
