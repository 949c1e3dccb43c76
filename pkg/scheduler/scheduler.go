// Package scheduler implements the dynamic score-based task queue:
// priority computation, dependency gating, capability matching,
// deadline-aware ordering, budget admission, and parallel/convergence
// coordination for sibling tasks.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/budget"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/ent/ticket"
	"github.com/helmsman-ai/helmsman/pkg/bus"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

// Assignment pairs a schedulable task with the idle agent chosen for it.
// The orchestrator commits it by claiming the task.
type Assignment struct {
	Task  *ent.Task
	Agent *ent.Agent
}

// Scheduler drains pending tasks in score order, subject to the admission
// gates of the dependency graph, capability matching, budgets, and ticket
// approval.
type Scheduler struct {
	tasks    *services.TaskService
	tickets  *services.TicketService
	agents   *services.AgentService
	budgets  *services.BudgetService
	eventBus *bus.Bus
	weights  ScoreWeights
	snapshot WorkspaceSnapshot
}

// New creates a scheduler. snapshot may be nil, in which case sibling
// ownership is judged by pattern equality only (no file expansion).
func New(tasks *services.TaskService, tickets *services.TicketService, agents *services.AgentService, budgets *services.BudgetService, eventBus *bus.Bus, weights ScoreWeights, snapshot WorkspaceSnapshot) *Scheduler {
	return &Scheduler{
		tasks:    tasks,
		tickets:  tickets,
		agents:   agents,
		budgets:  budgets,
		eventBus: eventBus,
		weights:  weights,
		snapshot: snapshot,
	}
}

// NextAssignment returns the highest-scored task that passes every
// admission gate, paired with an idle agent that satisfies its required
// capabilities. Returns (nil, nil) when nothing is schedulable this cycle.
// Tasks that fail a gate are left pending with a refreshed score.
func (s *Scheduler) NextAssignment(ctx context.Context) (*Assignment, error) {
	pending, err := s.tasks.ListByStatus(ctx, task.StatusPending, 0)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return nil, nil
	}

	now := time.Now()
	byID := make(map[string]*ent.Task, len(pending))
	downstream := make(map[string]int)
	for _, t := range pending {
		byID[t.ID] = t
		for _, dep := range t.DependsOn {
			downstream[dep]++
		}
	}

	items := make([]queueItem, 0, len(pending))
	for _, t := range pending {
		score := s.weights.Score(ScoreInput{
			PriorityBase:      t.PriorityBase,
			CreatedAt:         t.CreatedAt,
			Deadline:          t.Deadline,
			DownstreamBlocked: downstream[t.ID],
			RetryCount:        t.RetryCount,
		}, now)
		if score != t.Score {
			if err := s.tasks.SetScore(ctx, t.ID, score); err != nil {
				slog.Warn("Failed to refresh task score", "task_id", t.ID, "error", err)
			}
		}
		items = append(items, queueItem{TaskID: t.ID, Score: score, CreatedAt: t.CreatedAt})
	}

	q := newReadyQueue(items)
	for {
		head, ok := q.popNext()
		if !ok {
			return nil, nil
		}
		t := byID[head.TaskID]

		admitted, agent, err := s.admit(ctx, t)
		if err != nil {
			return nil, err
		}
		if admitted {
			return &Assignment{Task: t, Agent: agent}, nil
		}
	}
}

// admit runs the admission gates for one task. A failed gate logs the
// reason and leaves the task pending for a later cycle.
func (s *Scheduler) admit(ctx context.Context, t *ent.Task) (bool, *ent.Agent, error) {
	// (a) every dependency succeeded.
	for _, depID := range t.DependsOn {
		dep, err := s.tasks.GetTask(ctx, depID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				slog.Warn("Task depends on unknown task", "task_id", t.ID, "dep", depID)
				return false, nil, nil
			}
			return false, nil, err
		}
		if dep.Status != task.StatusSucceeded {
			return false, nil, nil
		}
	}

	// (d) referenced ticket must be approved and unblocked. Checked before
	// the agent gate so a blocked ticket never consumes an idle agent.
	if t.TicketID != nil && *t.TicketID != "" {
		tk, err := s.tickets.GetTicket(ctx, *t.TicketID)
		if err != nil {
			return false, nil, err
		}
		if tk.IsBlocked || tk.ApprovalStatus != ticket.ApprovalStatusApproved {
			return false, nil, nil
		}
	}

	// (c) budget admission: the task scope must have remaining > 0.
	remaining, exists, err := s.budgets.Remaining(ctx, services.BudgetScope{Type: budget.ScopeTypeTask, ID: t.ID})
	if err != nil {
		return false, nil, err
	}
	if exists && remaining <= 0 {
		slog.Info("Task skipped: budget exhausted", "task_id", t.ID)
		return false, nil, nil
	}

	// Sibling ownership: concurrently-running siblings must own disjoint
	// file sets under the workspace snapshot.
	if t.ParentTaskID != nil && *t.ParentTaskID != "" {
		ok, err := s.siblingsDisjoint(ctx, t)
		if err != nil {
			return false, nil, err
		}
		if !ok {
			return false, nil, nil
		}
	}

	// (b) at least one IDLE agent satisfies required_capabilities. An empty
	// requirement set matches any idle agent.
	idle, err := s.agents.ListIdle(ctx, t.RequiredCapabilities)
	if err != nil {
		return false, nil, err
	}
	if len(idle) == 0 {
		return false, nil, nil
	}

	return true, idle[0], nil
}

func (s *Scheduler) siblingsDisjoint(ctx context.Context, t *ent.Task) (bool, error) {
	siblings, err := s.tasks.ListSiblings(ctx, *t.ParentTaskID)
	if err != nil {
		return false, err
	}

	var files []string
	if s.snapshot != nil {
		files, err = s.snapshot()
		if err != nil {
			return false, fmt.Errorf("failed to snapshot workspace: %w", err)
		}
	}

	for _, sib := range siblings {
		if sib.ID == t.ID {
			continue
		}
		if sib.Status != task.StatusAssigned && sib.Status != task.StatusRunning {
			continue
		}
		if files == nil {
			// No snapshot available: conservatively require distinct
			// pattern lists.
			if samePatterns(t.OwnedFiles, sib.OwnedFiles) {
				return false, nil
			}
			continue
		}
		disjoint, overlap, err := OwnershipDisjoint(t.OwnedFiles, sib.OwnedFiles, files)
		if err != nil {
			return false, err
		}
		if !disjoint {
			slog.Info("Task skipped: owned_files overlap with running sibling",
				"task_id", t.ID, "sibling", sib.ID, "file", overlap)
			return false, nil
		}
	}
	return true, nil
}

// OnTaskSucceeded records convergence progress: when every sibling of the
// parent has succeeded, a merge_required event is published for the merge
// coordinator.
func (s *Scheduler) OnTaskSucceeded(ctx context.Context, t *ent.Task) error {
	if t.ParentTaskID == nil || *t.ParentTaskID == "" {
		return nil
	}
	siblings, err := s.tasks.ListSiblings(ctx, *t.ParentTaskID)
	if err != nil {
		return err
	}
	sourceIDs := make([]string, 0, len(siblings))
	for _, sib := range siblings {
		if sib.Status != task.StatusSucceeded {
			return nil
		}
		sourceIDs = append(sourceIDs, sib.ID)
	}

	ticketID := ""
	if t.TicketID != nil {
		ticketID = *t.TicketID
	}
	return s.eventBus.Publish(ctx, bus.Envelope{
		EventType:  models.EventTypeMergeRequired,
		EntityType: "task",
		EntityID:   *t.ParentTaskID,
		Payload: map[string]interface{}{
			"parent_task_id":  *t.ParentTaskID,
			"ticket_id":       ticketID,
			"source_task_ids": sourceIDs,
		},
	})
}

// OnTaskFailed applies the failure semantics: retryable failures below the
// retry budget return to pending with backoff; terminal failures propagate
// upstream_failed to every dependent task.
func (s *Scheduler) OnTaskFailed(ctx context.Context, taskID, reason string, retryable bool) error {
	disp, err := s.tasks.RecordFailure(ctx, taskID, reason, retryable)
	if err != nil {
		return err
	}
	if !disp.Terminal {
		slog.Info("Task requeued after failure",
			"task_id", taskID, "retry_count", disp.RetryCount, "backoff", Backoff(disp.RetryCount))
		return nil
	}

	failed, err := s.tasks.FailDownstream(ctx, taskID)
	if err != nil {
		return err
	}
	for _, id := range failed {
		if pubErr := s.eventBus.Publish(ctx, bus.Envelope{
			EventType:  models.EventTypeTaskStatus,
			EntityType: "task",
			EntityID:   id,
			Payload:    map[string]interface{}{"status": "failed", "reason": "upstream_failed"},
		}); pubErr != nil {
			slog.Warn("Failed to publish downstream failure", "task_id", id, "error", pubErr)
		}
	}
	return nil
}

// ExpireTimedOut cancels assigned/running tasks whose timeout elapsed since
// assignment, with reason deadline_exceeded.
func (s *Scheduler) ExpireTimedOut(ctx context.Context) ([]string, error) {
	var expired []string
	for _, status := range []task.Status{task.StatusAssigned, task.StatusRunning} {
		tasks, err := s.tasks.ListByStatus(ctx, status, 0)
		if err != nil {
			return expired, err
		}
		for _, t := range tasks {
			if t.AssignedAt == nil {
				continue
			}
			if time.Since(*t.AssignedAt) < time.Duration(t.TimeoutSeconds)*time.Second {
				continue
			}
			if err := s.tasks.MarkCanceled(ctx, t.ID, "deadline_exceeded"); err != nil {
				slog.Error("Failed to cancel timed-out task", "task_id", t.ID, "error", err)
				continue
			}
			expired = append(expired, t.ID)
		}
	}
	return expired, nil
}

// Backoff returns the requeue delay for the given retry count: exponential
// with full jitter, capped at five minutes.
func Backoff(retryCount int) time.Duration {
	base := time.Second * time.Duration(1<<min(retryCount, 8))
	if base > 5*time.Minute {
		base = 5 * time.Minute
	}
	return time.Duration(rand.Int64N(int64(base)) + int64(base)/2)
}

func samePatterns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, p := range a {
		set[p] = true
	}
	for _, p := range b {
		if !set[p] {
			return false
		}
	}
	return true
}
