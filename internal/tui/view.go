package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	layoutStyle = lipgloss.NewStyle().Padding(1)
)

// ModelView renders the review TUI.
func ModelView(m model) string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("bracefix — %d proposed repair(s)", len(m.list.Items()))))
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q: quit"))
	case m.applied:
		line := "Fixed file"
		if m.result != nil && m.result.BackupPath != "" {
			line = fmt.Sprintf("Fixed file (backup: %s)", m.result.BackupPath)
		}
		b.WriteString(okStyle.Render(line))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/q: quit"))
	default:
		b.WriteString(helpStyle.Render("enter: apply all • q: quit without writing"))
	}

	return layoutStyle.Render(b.String())
}
