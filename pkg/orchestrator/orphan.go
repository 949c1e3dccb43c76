package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/pkg/lifecycle"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tasks.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	interval := p.config.OrphanScanInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds assigned/running tasks whose sandbox worker
// stopped heartbeating and returns them to the queue.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphaned, err := p.tasks.ListOrphaned(ctx, threshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	if len(orphaned) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphaned))

	// Recovery is mostly sandbox teardown over the network; fan out so one
	// slow provider call does not stall the whole scan.
	var recovered atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, t := range orphaned {
		if p.CancelTask(t.ID) {
			// Supervised by this pod: the run loop resolves it.
			continue
		}
		g.Go(func() error {
			if err := p.recoverOrphanedTask(gctx, t); err != nil {
				slog.Error("Failed to recover orphaned task",
					"task_id", t.ID,
					"error", err)
				return nil
			}
			recovered.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += int(recovered.Load())
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedTask requeues one orphaned task and tears down its sandbox.
func (p *WorkerPool) recoverOrphanedTask(ctx context.Context, t *ent.Task) error {
	lastHeartbeat := "unknown"
	if t.LastHeartbeatAt != nil {
		lastHeartbeat = t.LastHeartbeatAt.Format(time.RFC3339)
	}
	log := slog.With("task_id", t.ID, "last_heartbeat", lastHeartbeat)

	reason := fmt.Sprintf("orphaned: no heartbeat since %s", lastHeartbeat)
	disp, err := p.tasks.RecordFailure(ctx, t.ID, reason, true)
	if err != nil {
		return fmt.Errorf("failed to requeue orphaned task: %w", err)
	}

	if t.SandboxID != nil && *t.SandboxID != "" {
		if err := p.provider.Delete(ctx, *t.SandboxID); err != nil {
			log.Warn("Failed to delete orphaned sandbox", "sandbox_id", *t.SandboxID, "error", err)
		}
	}
	if t.AssignedAgentID != nil && *t.AssignedAgentID != "" {
		p.releaseOrphanedAgent(ctx, *t.AssignedAgentID)
	}

	log.Warn("Orphaned task recovered", "terminal", disp.Terminal, "retry_count", disp.RetryCount)
	return nil
}

// releaseOrphanedAgent frees the agent an orphaned task was pinned to. The
// heartbeat monitor owns the agent's own escalation; this only clears the
// task binding when the agent is still nominally RUNNING.
func (p *WorkerPool) releaseOrphanedAgent(ctx context.Context, agentID string) {
	ag, err := p.agents.GetAgent(ctx, agentID)
	if err != nil {
		slog.Warn("Failed to load agent of orphaned task", "agent_id", agentID, "error", err)
		return
	}
	if lifecycle.Status(ag.Status) != lifecycle.StatusRunning {
		return
	}
	if _, err := p.agents.Transition(ctx, agentID, lifecycle.StatusIdle, func(u *ent.AgentUpdate) {
		u.ClearCurrentTaskID()
	}); err != nil {
		slog.Warn("Failed to release agent of orphaned task", "agent_id", agentID, "error", err)
	}
}

// CleanupStartupOrphans performs a one-time requeue of tasks this pod was
// supervising when it previously crashed. Other pods' in-flight tasks are
// untouched; their own restarts or the periodic scan cover them. Called once
// during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, tasks *services.TaskService, podID string) error {
	orphaned, err := client.Task.Query().
		Where(
			task.StatusIn(task.StatusAssigned, task.StatusRunning),
			task.ClaimedByPodEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphaned) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphaned))

	for _, t := range orphaned {
		if _, err := tasks.RecordFailure(ctx, t.ID,
			fmt.Sprintf("orphaned: pod %s restarted during run", podID), true); err != nil {
			slog.Error("Failed to requeue startup orphan",
				"task_id", t.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan requeued", "task_id", t.ID)
	}

	return nil
}
