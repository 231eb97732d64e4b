package gitutil

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// CommandRunner is an interface for running external commands.
type CommandRunner interface {
	CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error)
}

// DefaultRunner implements CommandRunner using os/exec.Command.
type DefaultRunner struct{}

func (r DefaultRunner) CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, arg...)
	return cmd.CombinedOutput()
}

// We'll use a package-level variable for the runner
var runner CommandRunner = DefaultRunner{}

// SetRunner replaces the command runner, for testing.
func SetRunner(r CommandRunner) {
	runner = r
}

// CleanInGit reports whether path is tracked by git with no uncommitted
// changes. When it is, git already holds the pre-repair content and a .bak
// backup adds nothing. Untracked files, and files outside any repository,
// report false with no error.
func CleanInGit(path string) (bool, error) {
	// ls-files --error-unmatch exits non-zero for untracked paths and when
	// there is no repository at all; both simply mean "not covered by git".
	if _, err := runner.CombinedOutput(context.Background(), "git", "ls-files", "--error-unmatch", "--", path); err != nil {
		return false, nil
	}

	out, err := runner.CombinedOutput(context.Background(), "git", "status", "--porcelain", "--", path)
	if err != nil {
		return false, fmt.Errorf("error running git status: %w, output: %s", err, out)
	}
	return len(bytes.TrimSpace(out)) == 0, nil
}
