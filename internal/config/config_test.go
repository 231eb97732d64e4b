package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"bracefix/internal/config"
	"bracefix/internal/scan"
)

func TestLoadMissingDefaultFile(t *testing.T) {
	dir := t.TempDir()
	restore := chdir(t, dir)
	defer restore()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing default file", err)
	}
	if cfg.Target != "shared/chamber-members.ts" {
		t.Errorf("Target = %q, want default", cfg.Target)
	}
	if !cfg.Backup {
		t.Error("Backup = false, want default true")
	}
	if cfg.ScanLayout() != scan.DefaultLayout() {
		t.Errorf("ScanLayout() = %+v, want default", cfg.ScanLayout())
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() error = nil, want error for missing explicit file")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bracefix.toml")
	content := `
target = "data/members.ts"
backup = false
journal = ""

[layout]
outer_indent = 4
inner_indent = 8
comment_prefix = "#"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Target != "data/members.ts" {
		t.Errorf("Target = %q, want data/members.ts", cfg.Target)
	}
	if cfg.Backup {
		t.Error("Backup = true, want false")
	}
	if cfg.Journal != "" {
		t.Errorf("Journal = %q, want empty", cfg.Journal)
	}
	want := scan.Layout{OuterIndent: 4, InnerIndent: 8, CommentPrefix: "#"}
	if cfg.ScanLayout() != want {
		t.Errorf("ScanLayout() = %+v, want %+v", cfg.ScanLayout(), want)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bracefix.toml")
	if err := os.WriteFile(path, []byte(`target = "other.ts"`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Target != "other.ts" {
		t.Errorf("Target = %q, want other.ts", cfg.Target)
	}
	if cfg.ScanLayout() != scan.DefaultLayout() {
		t.Errorf("ScanLayout() = %+v, want default kept", cfg.ScanLayout())
	}
}

// chdir switches the working directory for a test and returns the restore
// function.
func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	return func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("Chdir back: %v", err)
		}
	}
}
