package repair

import "fmt"

// Op is the kind of line edit a Repair performs.
type Op int

const (
	OpInsert Op = iota // insert Text before the original line at Line
	OpDelete           // remove the original line at Line
)

// String returns a short verb for the operation.
func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Repair represents a single line edit decided by the detector.
// Line is a 0-based index into the ORIGINAL line sequence: an insert places
// Text before the original line at that index (so "insert after line n" is
// recorded as Line n+1), and a delete removes the original line at that index.
type Repair struct {
	Op   Op
	Line int
	Text string // the full line to insert; empty for deletes
}

// String returns a human-readable description, with 1-based line numbers
// for display.
func (r Repair) String() string {
	if r.Op == OpInsert {
		return fmt.Sprintf("line %d: insert %q", r.Line+1, r.Text)
	}
	return fmt.Sprintf("line %d: delete", r.Line+1)
}

// Count tallies the repairs by operation.
func Count(repairs []Repair) (inserts, deletes int) {
	for _, r := range repairs {
		switch r.Op {
		case OpInsert:
			inserts++
		case OpDelete:
			deletes++
		}
	}
	return inserts, deletes
}
