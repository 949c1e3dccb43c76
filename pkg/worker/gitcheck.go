package worker

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// GitStatus is the working-tree inspection used by continuous mode.
type GitStatus struct {
	Clean     bool
	Committed bool // HEAD moved since the run started
}

// GitInspector reports working-tree state. Abstracted so tests can stub it.
type GitInspector interface {
	Status(ctx context.Context, cwd string) (*GitStatus, error)
}

// ExecGitInspector shells out to git.
type ExecGitInspector struct {
	startHead string
}

// NewExecGitInspector snapshots HEAD so later Status calls can tell whether
// the agent committed anything.
func NewExecGitInspector(ctx context.Context, cwd string) (*ExecGitInspector, error) {
	head, err := gitOutput(ctx, cwd, "rev-parse", "HEAD")
	if err != nil {
		// Not a git repo or empty history: commit tracking disabled.
		head = ""
	}
	return &ExecGitInspector{startHead: head}, nil
}

func (g *ExecGitInspector) Status(ctx context.Context, cwd string) (*GitStatus, error) {
	porcelain, err := gitOutput(ctx, cwd, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("git status failed: %w", err)
	}

	committed := false
	if g.startHead != "" {
		head, err := gitOutput(ctx, cwd, "rev-parse", "HEAD")
		if err == nil && head != g.startHead {
			committed = true
		}
	}

	return &GitStatus{
		Clean:     strings.TrimSpace(porcelain) == "",
		Committed: committed,
	}, nil
}

func gitOutput(ctx context.Context, cwd string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = cwd
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.String()), nil
}
