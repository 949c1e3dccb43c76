package merge

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitVCS drives a real git checkout. The repo must have all incoming
// branches fetched locally before a convergence run.
type GitVCS struct {
	dir string
}

// NewGitVCS creates a VCS over the checkout at dir.
func NewGitVCS(dir string) *GitVCS {
	return &GitVCS{dir: dir}
}

func (g *GitVCS) DryRunMerge(ctx context.Context, target, branch string) ([]string, error) {
	if _, err := g.git(ctx, "checkout", target); err != nil {
		return nil, err
	}
	// --no-commit --no-ff pauses even a clean merge so it can be unwound.
	_, mergeErr := g.git(ctx, "merge", "--no-commit", "--no-ff", branch)
	conflicts, listErr := g.conflictedPaths(ctx)

	// Unwind regardless of outcome; "merge --abort" fails when the merge
	// fast-completed, so fall back to a hard reset.
	if _, err := g.git(ctx, "merge", "--abort"); err != nil {
		if _, err := g.git(ctx, "reset", "--hard", "HEAD"); err != nil {
			return nil, fmt.Errorf("failed to unwind dry-run merge of %s: %w", branch, err)
		}
	}

	if listErr != nil {
		return nil, listErr
	}
	if mergeErr != nil && len(conflicts) == 0 {
		return nil, fmt.Errorf("dry-run merge of %s: %w", branch, mergeErr)
	}
	return conflicts, nil
}

func (g *GitVCS) Merge(ctx context.Context, target, branch string) ([]Conflict, error) {
	if _, err := g.git(ctx, "checkout", target); err != nil {
		return nil, err
	}
	_, mergeErr := g.git(ctx, "merge", "--no-ff", branch, "-m", "Merge "+branch)
	if mergeErr == nil {
		return nil, nil
	}

	paths, err := g.conflictedPaths(ctx)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("merge of %s: %w", branch, mergeErr)
	}

	conflicts := make([]Conflict, 0, len(paths))
	for _, path := range paths {
		// Stage 2 is ours (target), stage 3 is theirs (incoming branch).
		ours, _ := g.git(ctx, "show", ":2:"+path)
		theirs, _ := g.git(ctx, "show", ":3:"+path)
		conflicts = append(conflicts, Conflict{Path: path, Ours: ours, Theirs: theirs})
	}
	return conflicts, nil
}

func (g *GitVCS) ResolveFile(ctx context.Context, path, content string) error {
	full := filepath.Join(g.dir, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write resolution for %s: %w", path, err)
	}
	_, err := g.git(ctx, "add", path)
	return err
}

func (g *GitVCS) CommitMerge(ctx context.Context, message string) error {
	_, err := g.git(ctx, "commit", "--no-edit", "-m", message)
	return err
}

func (g *GitVCS) AbortMerge(ctx context.Context) error {
	_, err := g.git(ctx, "merge", "--abort")
	return err
}

func (g *GitVCS) conflictedPaths(ctx context.Context) ([]string, error) {
	out, err := g.git(ctx, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

func (g *GitVCS) git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return strings.TrimSpace(stdout.String()),
			fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}
