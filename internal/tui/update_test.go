package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"bracefix/internal/core"
	"bracefix/internal/patch"
	"bracefix/internal/scan"
)

func testModel(apply func() (*core.Result, error)) model {
	lines := []string{"    },", "", "// note", "  {"}
	repairs := patch.New(scan.DefaultLayout()).Detect(lines)
	return initialModel("chamber-members.ts", lines, repairs, apply)
}

func TestUpdateQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := testModel(func() (*core.Result, error) {
				t.Fatal("apply called on quit")
				return nil, nil
			})

			msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			if key == "ctrl+c" {
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			}
			m2, cmd := Update(m, msg)
			if !m2.quitting {
				t.Error("model not quitting after quit key")
			}
			if cmd == nil {
				t.Error("expected tea.Quit command")
			}
		})
	}
}

func TestUpdateEnterApplies(t *testing.T) {
	called := false
	m := testModel(func() (*core.Result, error) {
		called = true
		return &core.Result{Changed: true, BackupPath: "chamber-members.ts.bak"}, nil
	})

	m2, _ := Update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !called {
		t.Fatal("apply not called on enter")
	}
	if !m2.applied || m2.err != nil {
		t.Errorf("model after apply: applied=%v err=%v", m2.applied, m2.err)
	}

	view := ModelView(m2)
	if !strings.Contains(view, "Fixed file") {
		t.Errorf("view after apply missing confirmation:\n%s", view)
	}

	// A second enter quits.
	m3, cmd := Update(m2, tea.KeyMsg{Type: tea.KeyEnter})
	if !m3.quitting || cmd == nil {
		t.Error("second enter did not quit")
	}
}

func TestUpdateApplyError(t *testing.T) {
	m := testModel(func() (*core.Result, error) {
		return nil, errors.New("disk full")
	})

	m2, _ := Update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m2.err == nil {
		t.Fatal("error not recorded")
	}
	if view := ModelView(m2); !strings.Contains(view, "disk full") {
		t.Errorf("view missing error:\n%s", view)
	}
}

func TestUpdateWindowResize(t *testing.T) {
	m := testModel(nil)
	m2, _ := Update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m2.width != 120 || m2.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m2.width, m2.height)
	}
}

func TestContextFor(t *testing.T) {
	m := testModel(nil)
	items := m.list.Items()
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	it, ok := items[0].(repairItem)
	if !ok {
		t.Fatalf("item type %T", items[0])
	}
	if !strings.Contains(it.detail, "    },") {
		t.Errorf("item detail = %q, want anchor line", it.detail)
	}
}
