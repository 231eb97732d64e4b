package patch

import (
	"strings"

	"bracefix/internal/scan"
	"bracefix/pkg/repair"
)

// Patcher detects and repairs outer-block closing markers that went missing
// or drifted out of position between grouped record blocks.
//
// The detector is a single forward scan. Whenever it reaches an inner closing
// marker it looks ahead over the run of blank and comment lines (permitting
// at most one outer closing marker inside the run). If the run ends at a
// block-open line, the outer close for the block just finished must sit in a
// canonical position: either immediately after the inner close, or
// immediately before the open. A missing marker is inserted right after the
// inner close; a marker stranded between blanks/comments on both sides is
// moved there. An outer close that is not part of such a run is always
// retained, so a repair can never lose a marker.
type Patcher struct {
	Layout scan.Layout
}

// New returns a Patcher for the given layout. A zero layout falls back to
// the default one.
func New(layout scan.Layout) Patcher {
	if layout == (scan.Layout{}) {
		layout = scan.DefaultLayout()
	}
	return Patcher{Layout: layout}
}

// Detect scans lines and returns the edits needed to restore every outer
// closing marker, ordered by original line index. An empty result means the
// file is already well-formed with respect to the one pattern this tool
// repairs.
func (p Patcher) Detect(lines []string) []repair.Repair {
	layout := p.Layout
	closeLine := layout.OuterCloseLine()

	var repairs []repair.Repair
	i := 0
	for i < len(lines) {
		if layout.Classify(lines[i]) != scan.KindInnerClose {
			i++
			continue
		}

		// Look ahead over blank/comment lines, tracking whether an outer
		// close appears inside the run and whether more blanks/comments
		// follow it.
		closeAt := -1
		gapAfterClose := false
		openFound := false
		j := i + 1
	run:
		for j < len(lines) {
			switch layout.Classify(lines[j]) {
			case scan.KindBlank, scan.KindComment:
				if closeAt != -1 {
					gapAfterClose = true
				}
				j++
			case scan.KindOuterClose:
				if closeAt != -1 {
					// A second close ends the run; unbalanced input
					// beyond the one pattern is left alone.
					break run
				}
				closeAt = j
				j++
			case scan.KindBlockOpen:
				openFound = true
				break run
			default:
				break run
			}
		}

		if openFound {
			switch {
			case closeAt == -1:
				repairs = append(repairs, repair.Repair{
					Op:   repair.OpInsert,
					Line: i + 1,
					Text: closeLine,
				})
			case closeAt == i+1:
				// Already in canonical position.
			case !gapAfterClose:
				// The close sits directly before the open; acceptable.
			default:
				// Stranded between blanks/comments on both sides: move it
				// to directly after the inner close.
				repairs = append(repairs,
					repair.Repair{Op: repair.OpInsert, Line: i + 1, Text: closeLine},
					repair.Repair{Op: repair.OpDelete, Line: closeAt},
				)
			}
		}

		// Everything up to j is blank/comment/close; nothing there can
		// start another run.
		i = j
	}
	return repairs
}

// Apply produces the edited line sequence. Repairs refer to indices in the
// original lines slice, so application order does not matter.
func Apply(lines []string, repairs []repair.Repair) []string {
	if len(repairs) == 0 {
		return lines
	}
	inserts := make(map[int][]string)
	deletes := make(map[int]bool)
	for _, r := range repairs {
		switch r.Op {
		case repair.OpInsert:
			inserts[r.Line] = append(inserts[r.Line], r.Text)
		case repair.OpDelete:
			deletes[r.Line] = true
		}
	}

	out := make([]string, 0, len(lines)+len(repairs))
	for idx := 0; idx <= len(lines); idx++ {
		out = append(out, inserts[idx]...)
		if idx < len(lines) && !deletes[idx] {
			out = append(out, lines[idx])
		}
	}
	return out
}

// Fix is the pure entry point: it splits content on '\n', detects, applies,
// and rejoins. Content that needs no repair is returned unchanged, byte for
// byte (trailing newlines included).
func (p Patcher) Fix(content string) (string, []repair.Repair) {
	lines := strings.Split(content, "\n")
	repairs := p.Detect(lines)
	if len(repairs) == 0 {
		return content, nil
	}
	return strings.Join(Apply(lines, repairs), "\n"), repairs
}
