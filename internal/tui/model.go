package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"bracefix/internal/core"
	"bracefix/pkg/repair"
)

// repairItem represents one proposed repair in the review list.
type repairItem struct {
	title  string // the repair itself
	detail string // the original line it anchors to
}

func (r repairItem) Title() string       { return r.title }
func (r repairItem) Description() string { return r.detail }
func (r repairItem) FilterValue() string { return r.title }

// model is the Bubbletea model for the review TUI.
type model struct {
	list     list.Model
	path     string
	apply    func() (*core.Result, error)
	result   *core.Result
	err      error
	applied  bool
	quitting bool
	width    int
	height   int
}

// initialModel creates the review model for a file and its proposed repairs.
func initialModel(path string, lines []string, repairs []repair.Repair, apply func() (*core.Result, error)) model {
	items := make([]list.Item, 0, len(repairs))
	for _, r := range repairs {
		items = append(items, repairItem{
			title:  r.String(),
			detail: contextFor(lines, r),
		})
	}

	defaultWidth, defaultHeight := 80, 14
	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, defaultWidth, defaultHeight)
	l.Title = path
	l.SetShowStatusBar(false)

	return model{
		list:   l,
		path:   path,
		apply:  apply,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// contextFor describes the original line a repair anchors to.
func contextFor(lines []string, r repair.Repair) string {
	switch r.Op {
	case repair.OpInsert:
		if r.Line-1 >= 0 && r.Line-1 < len(lines) {
			return fmt.Sprintf("after: %q", lines[r.Line-1])
		}
	case repair.OpDelete:
		if r.Line >= 0 && r.Line < len(lines) {
			return fmt.Sprintf("removing: %q", lines[r.Line])
		}
	}
	return ""
}
