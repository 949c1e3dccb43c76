package merge

import (
	"context"
	"log/slog"
	"sync"

	"github.com/helmsman-ai/helmsman/pkg/bus"
	"github.com/helmsman-ai/helmsman/pkg/models"
)

// DefaultTargetBranch is where converged work lands when the parent task
// has no branch of its own.
const DefaultTargetBranch = "main"

// BranchFor is the branch naming convention shared with the orchestrator:
// every task works on its own branch.
func BranchFor(taskID string) string {
	return "task/" + taskID
}

// Runner bridges the event bus and the coordinator: it consumes
// merge_required events and runs one convergence merge per event, serially.
// Merges mutate a single target checkout, so there is no parallelism to
// exploit.
type Runner struct {
	coord *Coordinator
	bus   *bus.Bus

	sub    *bus.Subscription
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewRunner creates a runner over the given coordinator.
func NewRunner(coord *Coordinator, b *bus.Bus) *Runner {
	return &Runner{coord: coord, bus: b}
}

// Start subscribes to merge_required events and begins processing.
func (r *Runner) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})
	r.sub = r.bus.Subscribe(bus.Filter{EventType: models.EventTypeMergeRequired})
	go r.loop(runCtx)
	slog.Info("Merge runner started")
}

// Stop unsubscribes and waits for the in-flight merge to finish.
func (r *Runner) Stop() {
	r.once.Do(func() {
		if r.cancel != nil {
			r.cancel()
		}
		if r.sub != nil {
			r.sub.Unsubscribe()
		}
		if r.done != nil {
			<-r.done
		}
	})
}

func (r *Runner) loop(ctx context.Context) {
	defer close(r.done)
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-r.sub.C:
			if !ok {
				return
			}
			r.handle(ctx, e)
		}
	}
}

func (r *Runner) handle(ctx context.Context, e bus.Envelope) {
	req, ok := requestFromEnvelope(e)
	if !ok {
		slog.Warn("Dropping malformed merge_required event", "event_id", e.ID)
		return
	}

	result, err := r.coord.Run(ctx, req)
	if err != nil {
		slog.Error("Convergence merge errored",
			"parent_task_id", req.ParentTaskID, "error", err)
		return
	}

	payload := map[string]interface{}{
		"attempt_id":      result.AttemptID,
		"succeeded":       result.Succeeded,
		"merge_order":     result.MergeOrder,
		"llm_invocations": result.LLMInvocations,
	}
	if result.FailureReason != "" {
		payload["failure_reason"] = result.FailureReason
	}
	if pubErr := r.bus.Publish(ctx, bus.Envelope{
		EventType:  models.EventTypeMergeDone,
		EntityType: "task",
		EntityID:   req.ParentTaskID,
		Payload:    payload,
	}); pubErr != nil {
		slog.Warn("Failed to publish merge outcome", "parent_task_id", req.ParentTaskID, "error", pubErr)
	}
}

// requestFromEnvelope reconstructs the merge request published by the
// scheduler's convergence detector.
func requestFromEnvelope(e bus.Envelope) (Request, bool) {
	parentID, _ := e.Payload["parent_task_id"].(string)
	if parentID == "" {
		parentID = e.EntityID
	}
	if parentID == "" {
		return Request{}, false
	}

	req := Request{
		ParentTaskID: parentID,
		TargetBranch: DefaultTargetBranch,
	}
	if ticketID, ok := e.Payload["ticket_id"].(string); ok {
		req.TicketID = ticketID
	}

	// Locally published payloads carry []string; relayed ones went through
	// JSON and carry []interface{}.
	var ids []string
	switch raw := e.Payload["source_task_ids"].(type) {
	case []string:
		ids = raw
	case []interface{}:
		for _, v := range raw {
			id, ok := v.(string)
			if !ok {
				return Request{}, false
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return Request{}, false
	}
	for _, id := range ids {
		if id == "" {
			return Request{}, false
		}
		req.Sources = append(req.Sources, Source{TaskID: id, Branch: BranchFor(id)})
	}
	return req, true
}
