package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/pkg/models"
)

// TaskService manages task lifecycle. All status mutations go through
// version-checked updates so concurrent schedulers and workers serialize on
// the row version.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTask creates a task in pending state.
func (s *TaskService) CreateTask(ctx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.TaskID == "" {
		req.TaskID = uuid.New().String()
	}

	builder := s.client.Task.Create().
		SetID(req.TaskID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetPriorityBase(req.PriorityBase).
		SetStatus(task.StatusPending)

	if req.TicketID != "" {
		builder.SetTicketID(req.TicketID)
	}
	if req.Deadline != nil {
		builder.SetDeadline(*req.Deadline)
	}
	if req.MaxRetries > 0 {
		builder.SetMaxRetries(req.MaxRetries)
	}
	if req.TimeoutSeconds > 0 {
		builder.SetTimeoutSeconds(req.TimeoutSeconds)
	}
	if len(req.RequiredCapabilities) > 0 {
		builder.SetRequiredCapabilities(req.RequiredCapabilities)
	}
	if len(req.DependsOn) > 0 {
		builder.SetDependsOn(req.DependsOn)
	}
	if req.ParentTaskID != "" {
		builder.SetParentTaskID(req.ParentTaskID)
	}
	if len(req.OwnedFiles) > 0 {
		builder.SetOwnedFiles(req.OwnedFiles)
	}
	if req.SynthesisContext != nil {
		builder.SetSynthesisContext(req.SynthesisContext)
	}
	if req.ExecutionConfig != nil {
		builder.SetExecutionConfig(req.ExecutionConfig)
	}
	if req.PersistenceDir != "" {
		builder.SetPersistenceDir(req.PersistenceDir)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("task %s: %w", req.TaskID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// GetTask fetches a task by id.
func (s *TaskService) GetTask(ctx context.Context, id string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListByStatus returns tasks in the given status ordered by creation time.
func (s *TaskService) ListByStatus(ctx context.Context, status task.Status, limit int) ([]*ent.Task, error) {
	q := s.client.Task.Query().
		Where(task.StatusEQ(status)).
		Order(ent.Asc(task.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	tasks, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by status %s: %w", status, err)
	}
	return tasks, nil
}

// ListSiblings returns all tasks sharing the given parent.
func (s *TaskService) ListSiblings(ctx context.Context, parentTaskID string) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.ParentTaskIDEQ(parentTaskID)).
		Order(ent.Asc(task.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list siblings of %s: %w", parentTaskID, err)
	}
	return tasks, nil
}

// UpdateStatusWithVersion transitions a task to the given status iff the
// supplied version is current. Returns ErrStaleWrite otherwise.
func (s *TaskService) UpdateStatusWithVersion(ctx context.Context, id string, version int, status task.Status, mutate func(*ent.TaskUpdate)) error {
	upd := s.client.Task.Update().
		Where(task.IDEQ(id), task.VersionEQ(version)).
		SetStatus(status).
		SetVersion(version + 1)
	if mutate != nil {
		mutate(upd)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("task %s version %d: %w", id, version, ErrStaleWrite)
	}
	return nil
}

// Claim atomically moves a pending task to assigned for the given sandbox
// and agent, recording the claiming pod for crash recovery. It is the
// scheduler's commit point: two orchestrator workers racing on the same task
// serialize on the version column and the loser gets ErrStaleWrite.
func (s *TaskService) Claim(ctx context.Context, t *ent.Task, sandboxID, agentID, podID string) error {
	if t.Status != task.StatusPending {
		return fmt.Errorf("task %s is %s, not pending: %w", t.ID, t.Status, ErrInvalidInput)
	}
	return s.UpdateStatusWithVersion(ctx, t.ID, t.Version, task.StatusAssigned, func(u *ent.TaskUpdate) {
		u.SetSandboxID(sandboxID).
			SetAssignedAgentID(agentID).
			SetAssignedAt(time.Now())
		if podID != "" {
			u.SetClaimedByPod(podID)
		}
	})
}

// SetSandbox records the sandbox backing an assigned task once acquisition
// succeeds. Retries stale writes since the heartbeat toucher races with it.
func (s *TaskService) SetSandbox(ctx context.Context, id, sandboxID string) error {
	for attempt := 0; attempt < staleWriteRetries; attempt++ {
		t, err := s.GetTask(ctx, id)
		if err != nil {
			return err
		}
		if t.Status != task.StatusAssigned {
			return fmt.Errorf("task %s is %s, not assigned: %w", id, t.Status, ErrInvalidInput)
		}
		err = s.UpdateStatusWithVersion(ctx, id, t.Version, task.StatusAssigned, func(u *ent.TaskUpdate) {
			u.SetSandboxID(sandboxID)
		})
		if err == nil || !isStale(err) {
			return err
		}
	}
	return fmt.Errorf("set sandbox on task %s: %w", id, ErrStaleWrite)
}

// MarkRunning transitions assigned → running.
func (s *TaskService) MarkRunning(ctx context.Context, id string) error {
	return s.transition(ctx, id, task.StatusAssigned, task.StatusRunning, nil)
}

// MarkSucceeded transitions running → succeeded.
func (s *TaskService) MarkSucceeded(ctx context.Context, id string) error {
	return s.transition(ctx, id, task.StatusRunning, task.StatusSucceeded, nil)
}

// MarkCanceled cancels a task with the given reason from any non-terminal state.
func (s *TaskService) MarkCanceled(ctx context.Context, id, reason string) error {
	for attempt := 0; attempt < staleWriteRetries; attempt++ {
		t, err := s.GetTask(ctx, id)
		if err != nil {
			return err
		}
		if isTerminal(t.Status) {
			return nil
		}
		err = s.UpdateStatusWithVersion(ctx, id, t.Version, task.StatusCanceled, func(u *ent.TaskUpdate) {
			u.SetFailureReason(reason)
		})
		if err == nil || !isStale(err) {
			return err
		}
	}
	return fmt.Errorf("cancel task %s: %w", id, ErrStaleWrite)
}

// FailureDisposition says what RecordFailure decided for a failed task.
type FailureDisposition struct {
	Terminal   bool
	RetryCount int
}

// RecordFailure handles a task failure. Retryable failures below the retry
// budget return the task to pending with an incremented retry_count;
// everything else is terminal failed with the reason recorded.
func (s *TaskService) RecordFailure(ctx context.Context, id, reason string, retryable bool) (FailureDisposition, error) {
	for attempt := 0; attempt < staleWriteRetries; attempt++ {
		t, err := s.GetTask(ctx, id)
		if err != nil {
			return FailureDisposition{}, err
		}
		if isTerminal(t.Status) {
			return FailureDisposition{Terminal: true, RetryCount: t.RetryCount}, nil
		}

		retries := t.RetryCount + 1
		if retryable && retries <= t.MaxRetries {
			err = s.UpdateStatusWithVersion(ctx, id, t.Version, task.StatusPending, func(u *ent.TaskUpdate) {
				u.SetRetryCount(retries).
					SetFailureReason(reason).
					ClearSandboxID().
					ClearAssignedAgentID().
					ClearClaimedByPod().
					ClearAssignedAt()
			})
			if err == nil {
				return FailureDisposition{Terminal: false, RetryCount: retries}, nil
			}
		} else {
			err = s.UpdateStatusWithVersion(ctx, id, t.Version, task.StatusFailed, func(u *ent.TaskUpdate) {
				u.SetRetryCount(retries).SetFailureReason(reason)
			})
			if err == nil {
				return FailureDisposition{Terminal: true, RetryCount: retries}, nil
			}
		}
		if !isStale(err) {
			return FailureDisposition{}, err
		}
	}
	return FailureDisposition{}, fmt.Errorf("record failure for task %s: %w", id, ErrStaleWrite)
}

// FailDownstream marks every non-terminal task that depends on failedID as
// failed with reason upstream_failed and returns the ids it failed.
// Propagation is transitive: a failed dependent fails its own dependents.
func (s *TaskService) FailDownstream(ctx context.Context, failedID string) ([]string, error) {
	var failed []string
	seen := map[string]bool{failedID: true}
	frontier := []string{failedID}

	for len(frontier) > 0 {
		upstream := frontier[0]
		frontier = frontier[1:]

		dependents, err := s.client.Task.Query().
			Where(
				task.StatusNotIn(task.StatusSucceeded, task.StatusFailed, task.StatusCanceled),
				func(sel *sql.Selector) {
					sel.Where(sqljson.ValueContains(task.FieldDependsOn, upstream))
				},
			).
			All(ctx)
		if err != nil {
			return failed, fmt.Errorf("failed to query dependents of %s: %w", upstream, err)
		}

		for _, dep := range dependents {
			if seen[dep.ID] {
				continue
			}
			seen[dep.ID] = true
			err := s.UpdateStatusWithVersion(ctx, dep.ID, dep.Version, task.StatusFailed, func(u *ent.TaskUpdate) {
				u.SetFailureReason("upstream_failed")
			})
			if err != nil && !isStale(err) {
				return failed, err
			}
			if err == nil {
				failed = append(failed, dep.ID)
				frontier = append(frontier, dep.ID)
			}
		}
	}
	return failed, nil
}

// SetScore updates the computed scheduling score.
func (s *TaskService) SetScore(ctx context.Context, id string, score float64) error {
	err := s.client.Task.UpdateOneID(id).SetScore(score).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to set score for task %s: %w", id, err)
	}
	return nil
}

// TouchHeartbeat records worker liveness for orphan detection.
func (s *TaskService) TouchHeartbeat(ctx context.Context, id string) error {
	err := s.client.Task.UpdateOneID(id).SetLastHeartbeatAt(time.Now()).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to touch heartbeat for task %s: %w", id, err)
	}
	return nil
}

// RegisterConversation binds a conversation id to the task's execution
// config for event/message correlation.
func (s *TaskService) RegisterConversation(ctx context.Context, taskID, sandboxID, conversationID string) error {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	cfg := t.ExecutionConfig
	if cfg == nil {
		cfg = map[string]interface{}{}
	}
	cfg["conversation_id"] = conversationID
	cfg["conversation_sandbox_id"] = sandboxID
	err = s.client.Task.UpdateOneID(taskID).SetExecutionConfig(cfg).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to register conversation for task %s: %w", taskID, err)
	}
	return nil
}

// ListOrphaned returns assigned/running tasks whose worker heartbeat is
// older than the threshold.
func (s *TaskService) ListOrphaned(ctx context.Context, threshold time.Time) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(
			task.StatusIn(task.StatusAssigned, task.StatusRunning),
			task.LastHeartbeatAtNotNil(),
			task.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orphaned tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) transition(ctx context.Context, id string, from, to task.Status, mutate func(*ent.TaskUpdate)) error {
	for attempt := 0; attempt < staleWriteRetries; attempt++ {
		t, err := s.GetTask(ctx, id)
		if err != nil {
			return err
		}
		if t.Status != from {
			return fmt.Errorf("task %s is %s, expected %s: %w", id, t.Status, from, ErrInvalidInput)
		}
		err = s.UpdateStatusWithVersion(ctx, id, t.Version, to, mutate)
		if err == nil || !isStale(err) {
			return err
		}
	}
	return fmt.Errorf("transition task %s %s → %s: %w", id, from, to, ErrStaleWrite)
}

func isTerminal(st task.Status) bool {
	return st == task.StatusSucceeded || st == task.StatusFailed || st == task.StatusCanceled
}

func isStale(err error) bool {
	return errors.Is(err, ErrStaleWrite)
}
