package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"bracefix/internal/core"
	"bracefix/internal/patch"
)

// Run launches the interactive review for the file at path. The file is only
// written if the user confirms; when it already needs no repair the TUI is
// skipped entirely.
func Run(path string, opts core.Options) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	lines := strings.Split(string(content), "\n")
	repairs := patch.New(opts.Layout).Detect(lines)
	if len(repairs) == 0 {
		fmt.Println("No repairs needed.")
		return nil
	}

	apply := func() (*core.Result, error) {
		return core.FixFile(path, opts)
	}
	m := initialModel(path, lines, repairs, apply)
	p := tea.NewProgram(&teaModelAdapter{m})
	_, err = p.Run()
	return err
}

// teaModelAdapter adapts our model to the tea.Model interface using Update
// and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return nil
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
