// Package merge implements the convergence coordinator: when sibling tasks
// of a parent all succeed, their branches are merged into the target branch
// in conflict-score order, with a bounded LLM-assisted resolver for the
// conflicts that remain.
package merge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

// Conflict is one conflicted file during a merge.
type Conflict struct {
	Path   string
	Ours   string
	Theirs string
}

// VCS is the version-control surface the coordinator drives. Implemented by
// GitVCS over a real checkout and by a fake in tests.
type VCS interface {
	// DryRunMerge simulates merging branch into target and returns the
	// conflicted paths, leaving the tree untouched.
	DryRunMerge(ctx context.Context, target, branch string) ([]string, error)

	// Merge merges branch into target. A non-empty conflict list means the
	// merge is paused mid-way awaiting resolution.
	Merge(ctx context.Context, target, branch string) ([]Conflict, error)

	// ResolveFile stages resolved content for a conflicted path.
	ResolveFile(ctx context.Context, path, content string) error

	// CommitMerge concludes a paused merge with a commit.
	CommitMerge(ctx context.Context, message string) error

	// AbortMerge unwinds a paused merge, restoring the pre-merge tree.
	AbortMerge(ctx context.Context) error
}

// Resolver produces resolved file content for a conflict. Implemented by
// LLMResolver.
type Resolver interface {
	Resolve(ctx context.Context, target, branch string, conflict Conflict) (string, ResolveUsage, error)
}

// ResolveUsage is one resolver invocation's accounting.
type ResolveUsage struct {
	Tokens  int64
	CostUSD float64
}

// ErrResolverExhausted marks a resolver that hit its invocation, token, or
// cost cap; the merge fails and preserves partial state.
var ErrResolverExhausted = errors.New("conflict resolver budget exhausted")

// AttemptStore is the audit surface of services.MergeService.
type AttemptStore interface {
	StartAttempt(ctx context.Context, parentTaskID, ticketID, targetBranch string, sourceTaskIDs, incomingBranches []string) (*ent.MergeAttempt, error)
	Complete(ctx context.Context, attemptID string, outcome services.MergeOutcome) (*ent.MergeAttempt, error)
}

// Source is one incoming sibling branch.
type Source struct {
	TaskID string
	Branch string
}

// Request describes one convergence run.
type Request struct {
	ParentTaskID string
	TicketID     string
	TargetBranch string
	Sources      []Source
}

// Result is the outcome handed back to the caller, mirroring the audit row.
type Result struct {
	AttemptID      string
	Succeeded      bool
	MergeOrder     []string
	ConflictScores map[string]int
	LLMInvocations int
	TokensUsed     int64
	CostUSD        float64
	FailureReason  string
}

// Coordinator runs convergence merges.
type Coordinator struct {
	vcs      VCS
	resolver Resolver
	attempts AttemptStore
}

// NewCoordinator creates a coordinator. resolver may be nil, in which case
// any conflict during apply fails the merge immediately.
func NewCoordinator(vcs VCS, resolver Resolver, attempts AttemptStore) *Coordinator {
	return &Coordinator{vcs: vcs, resolver: resolver, attempts: attempts}
}

// Run executes the four convergence steps: dry-run scoring, ordering,
// sequential apply with bounded resolution, and the audit row. A failed
// merge leaves already-merged branches in place for manual resolution.
func (c *Coordinator) Run(ctx context.Context, req Request) (*Result, error) {
	if len(req.Sources) == 0 {
		return nil, fmt.Errorf("merge request for %s has no sources", req.ParentTaskID)
	}

	taskIDs := make([]string, len(req.Sources))
	branches := make([]string, len(req.Sources))
	for i, s := range req.Sources {
		taskIDs[i] = s.TaskID
		branches[i] = s.Branch
	}

	attempt, err := c.attempts.StartAttempt(ctx, req.ParentTaskID, req.TicketID, req.TargetBranch, taskIDs, branches)
	if err != nil {
		return nil, err
	}

	result := &Result{
		AttemptID:      attempt.ID,
		ConflictScores: make(map[string]int, len(req.Sources)),
	}
	resolutionLog := []map[string]interface{}{}

	// 1. Dry-run score each incoming branch against the target.
	for _, s := range req.Sources {
		conflicts, err := c.vcs.DryRunMerge(ctx, req.TargetBranch, s.Branch)
		if err != nil {
			return c.fail(ctx, result, resolutionLog, fmt.Sprintf("dry-run of %s failed: %v", s.Branch, err))
		}
		result.ConflictScores[s.TaskID] = len(conflicts)
	}

	// 2. Ascending by conflict score, ties broken by task id.
	ordered := append([]Source(nil), req.Sources...)
	sort.Slice(ordered, func(i, j int) bool {
		si, sj := result.ConflictScores[ordered[i].TaskID], result.ConflictScores[ordered[j].TaskID]
		if si != sj {
			return si < sj
		}
		return ordered[i].TaskID < ordered[j].TaskID
	})

	// 3. Sequential apply.
	for _, s := range ordered {
		conflicts, err := c.vcs.Merge(ctx, req.TargetBranch, s.Branch)
		if err != nil {
			return c.fail(ctx, result, resolutionLog, fmt.Sprintf("merge of %s failed: %v", s.Branch, err))
		}

		if len(conflicts) > 0 {
			if err := c.resolveAll(ctx, req, s, conflicts, result, &resolutionLog); err != nil {
				if abortErr := c.vcs.AbortMerge(ctx); abortErr != nil {
					slog.Error("Failed to abort conflicted merge", "branch", s.Branch, "error", abortErr)
				}
				return c.fail(ctx, result, resolutionLog,
					fmt.Sprintf("unresolvable conflict merging %s: %v", s.Branch, err))
			}
			if err := c.vcs.CommitMerge(ctx, fmt.Sprintf("Merge %s (resolved %d conflicts)", s.Branch, len(conflicts))); err != nil {
				return c.fail(ctx, result, resolutionLog, fmt.Sprintf("commit of %s failed: %v", s.Branch, err))
			}
		}
		result.MergeOrder = append(result.MergeOrder, s.TaskID)
	}

	// 4. Audit.
	result.Succeeded = true
	_, err = c.attempts.Complete(ctx, result.AttemptID, services.MergeOutcome{
		Succeeded:      true,
		MergeOrder:     result.MergeOrder,
		ConflictScores: result.ConflictScores,
		LLMInvocations: result.LLMInvocations,
		TokensUsed:     result.TokensUsed,
		CostUSD:        result.CostUSD,
		ResolutionLog:  resolutionLog,
	})
	if err != nil {
		return result, err
	}
	return result, nil
}

// resolveAll runs the resolver over every conflict of one branch merge.
func (c *Coordinator) resolveAll(ctx context.Context, req Request, s Source, conflicts []Conflict, result *Result, log *[]map[string]interface{}) error {
	if c.resolver == nil {
		return errors.New("no resolver configured")
	}
	for _, conflict := range conflicts {
		content, usage, err := c.resolver.Resolve(ctx, req.TargetBranch, s.Branch, conflict)
		result.LLMInvocations++
		result.TokensUsed += usage.Tokens
		result.CostUSD += usage.CostUSD
		if err != nil {
			return fmt.Errorf("resolving %s: %w", conflict.Path, err)
		}
		if err := c.vcs.ResolveFile(ctx, conflict.Path, content); err != nil {
			return fmt.Errorf("staging resolution of %s: %w", conflict.Path, err)
		}
		*log = append(*log, map[string]interface{}{
			"at":       time.Now().UTC().Format(time.RFC3339),
			"branch":   s.Branch,
			"path":     conflict.Path,
			"tokens":   usage.Tokens,
			"cost_usd": usage.CostUSD,
		})
	}
	return nil
}

// fail finalizes the attempt as failed, preserving whatever already merged.
func (c *Coordinator) fail(ctx context.Context, result *Result, log []map[string]interface{}, reason string) (*Result, error) {
	result.Succeeded = false
	result.FailureReason = reason
	slog.Error("Merge attempt failed", "attempt_id", result.AttemptID, "reason", reason, "merged_so_far", result.MergeOrder)
	_, err := c.attempts.Complete(ctx, result.AttemptID, services.MergeOutcome{
		Succeeded:      false,
		MergeOrder:     result.MergeOrder,
		ConflictScores: result.ConflictScores,
		LLMInvocations: result.LLMInvocations,
		TokensUsed:     result.TokensUsed,
		CostUSD:        result.CostUSD,
		ResolutionLog:  log,
		FailureReason:  reason,
	})
	if err != nil {
		return result, err
	}
	return result, nil
}
