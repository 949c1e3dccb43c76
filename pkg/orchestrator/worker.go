package orchestrator

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/pkg/bus"
	"github.com/helmsman-ai/helmsman/pkg/lifecycle"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/sandbox"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

// Worker is a single orchestrator worker: it drains the scheduler and
// supervises one sandbox run at a time.
type Worker struct {
	id    string
	podID string
	pool  *WorkerPool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new orchestrator worker.
func NewWorker(id, podID string, pool *WorkerPool) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         w.status,
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Orchestrator worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, asks the scheduler for an assignment,
// claims it, and supervises the sandbox run to a terminal status.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity (best-effort; racy with concurrent workers but bounded
	// by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.pool.client.Task.Query().
		Where(task.StatusIn(task.StatusAssigned, task.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active tasks: %w", err)
	}
	if activeCount >= w.pool.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	assignment, err := w.pool.scheduler.NextAssignment(ctx)
	if err != nil {
		return fmt.Errorf("fetching next assignment: %w", err)
	}
	if assignment == nil {
		return ErrNoTasksAvailable
	}
	t, ag := assignment.Task, assignment.Agent

	// Claim is the commit point: the version check loses cleanly when another
	// pod got here first.
	if err := w.pool.tasks.Claim(ctx, t, "", ag.ID, w.podID); err != nil {
		if errors.Is(err, services.ErrStaleWrite) || errors.Is(err, services.ErrInvalidInput) {
			return nil
		}
		return fmt.Errorf("claiming task %s: %w", t.ID, err)
	}

	log := slog.With("task_id", t.ID, "agent_id", ag.ID, "worker_id", w.id)
	log.Info("Task claimed")

	if _, err := w.pool.agents.Transition(ctx, ag.ID, lifecycle.StatusRunning, func(u *ent.AgentUpdate) {
		u.SetCurrentTaskID(t.ID)
	}); err != nil {
		log.Warn("Failed to mark agent running", "error", err)
	}
	w.publishTaskStatus(ctx, t.ID, "assigned", "")

	w.setStatus(WorkerStatusWorking, t.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	sb, err := w.acquireSandbox(ctx, t)
	if err != nil {
		log.Error("Sandbox acquisition exhausted retries", "error", err)
		return w.failTask(ctx, t.ID, ag.ID, "sandbox_unavailable", false)
	}
	log = log.With("sandbox_id", sb.ID)

	if err := w.pool.tasks.SetSandbox(ctx, t.ID, sb.ID); err != nil {
		log.Error("Failed to record sandbox on task", "error", err)
		w.teardownSandbox(sb.ID)
		return w.failTask(ctx, t.ID, ag.ID, "sandbox_record_failed", true)
	}
	if _, err := w.pool.allocs.Record(ctx, sb.ID, resourceEnvelope(t), w.id); err != nil {
		log.Warn("Failed to record sandbox allocation", "error", err)
	}

	if err := w.launch(ctx, t, ag, sb, log); err != nil {
		w.teardownSandbox(sb.ID)
		return w.failTask(ctx, t.ID, ag.ID, err.Error(), true)
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()
	return nil
}

// launch uploads the task context, starts the sandbox worker, and blocks
// until it exits. The sandbox worker reports its own terminal status through
// the API; launch only resolves runs that die without reporting.
func (w *Worker) launch(ctx context.Context, t *ent.Task, ag *ent.Agent, sb *sandbox.Sandbox, log *slog.Logger) error {
	contextB64, err := encodeTaskContext(t)
	if err != nil {
		return fmt.Errorf("encoding task context: %w", err)
	}
	files := map[string][]byte{
		"/opt/helmsman/task_context.json": []byte(contextB64),
	}
	if err := w.pool.provider.UploadFiles(ctx, sb.ID, files); err != nil {
		return fmt.Errorf("uploading worker bundle: %w", err)
	}

	timeout := time.Duration(t.TimeoutSeconds) * time.Second
	runCtx, cancelRun := context.WithTimeout(ctx, timeout)
	defer cancelRun()

	w.pool.RegisterTask(t.ID, cancelRun)
	defer w.pool.UnregisterTask(t.ID)

	env := map[string]string{
		"CALLBACK_URL":       w.pool.config.CallbackURL,
		"SANDBOX_ID":         sb.ID,
		"TASK_ID":            t.ID,
		"AGENT_ID":           ag.ID,
		"MODEL":              w.pool.config.Model,
		"API_KEY":            w.pool.config.WorkerAPIKey,
		"TASK_CONTEXT_B64":   contextB64,
		"MAX_DURATION_S":     strconv.Itoa(t.TimeoutSeconds),
		"PERMISSION_MODE":    executionString(t, "permission_mode", "acceptEdits"),
		"CONTINUOUS_MODE":    executionString(t, "continuous_mode", "false"),
		"REQUIRE_SPEC_SKILL": executionString(t, "require_spec_skill", "false"),
	}

	log.Info("Starting sandbox worker")
	result, err := w.pool.provider.Exec(runCtx, sb.ID, w.pool.config.WorkerCommand, env)

	// Resolve terminal status from the store: the worker reports completion
	// itself, so by the time Exec returns the task is usually terminal.
	current, getErr := w.pool.tasks.GetTask(context.Background(), t.ID)
	if getErr != nil {
		return fmt.Errorf("reading task after run: %w", getErr)
	}

	switch {
	case isTerminalStatus(current.Status):
		w.finishRun(context.Background(), current, ag.ID, sb.ID, log)
		return nil
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		log.Warn("Sandbox run exceeded task timeout")
		w.teardownSandbox(sb.ID)
		return w.failTask(context.Background(), t.ID, ag.ID, "deadline_exceeded", false)
	case errors.Is(runCtx.Err(), context.Canceled):
		log.Info("Sandbox run cancelled")
		if mcErr := w.pool.tasks.MarkCanceled(context.Background(), t.ID, "canceled"); mcErr != nil {
			log.Error("Failed to mark task canceled", "error", mcErr)
		}
		w.publishTaskStatus(context.Background(), t.ID, "canceled", "canceled")
		w.releaseAgent(context.Background(), ag.ID)
		w.teardownSandbox(sb.ID)
		return nil
	case err != nil:
		return fmt.Errorf("sandbox exec failed: %w", err)
	case result.ExitCode != 0:
		log.Warn("Sandbox worker exited nonzero without reporting", "exit_code", result.ExitCode, "stderr", result.Stderr)
		w.teardownSandbox(sb.ID)
		return w.failTask(context.Background(), t.ID, ag.ID, "worker_exit", true)
	default:
		// Clean exit but no terminal status reported.
		w.teardownSandbox(sb.ID)
		return w.failTask(context.Background(), t.ID, ag.ID, "worker_silent_exit", true)
	}
}

// finishRun handles a task the sandbox worker already drove to a terminal
// status: release the agent, tear down the sandbox, and let the scheduler
// check sibling convergence.
func (w *Worker) finishRun(ctx context.Context, t *ent.Task, agentID, sandboxID string, log *slog.Logger) {
	reason := ""
	if t.FailureReason != nil {
		reason = *t.FailureReason
	}
	w.publishTaskStatus(ctx, t.ID, string(t.Status), reason)
	w.releaseAgent(ctx, agentID)
	w.teardownSandbox(sandboxID)

	if t.Status == task.StatusSucceeded {
		if err := w.pool.scheduler.OnTaskSucceeded(ctx, t); err != nil {
			log.Error("Failed to check sibling convergence", "error", err)
		}
	}
	log.Info("Task run complete", "status", t.Status)
}

// acquireSandbox creates a sandbox with capped exponential backoff + jitter.
func (w *Worker) acquireSandbox(ctx context.Context, t *ent.Task) (*sandbox.Sandbox, error) {
	labels := map[string]string{
		"helmsman/task_id": t.ID,
		"helmsman/pod_id":  w.podID,
	}

	var lastErr error
	for attempt := 0; attempt <= w.pool.config.SandboxAcquireRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-w.stopCh:
				return nil, errors.New("worker stopping")
			case <-time.After(w.acquireBackoff(attempt)):
			}
		}
		sb, err := w.pool.provider.CreateSandbox(ctx, w.pool.config.SandboxImage, resourceEnvelope(t), labels)
		if err == nil {
			return sb, nil
		}
		lastErr = err
		if !errors.Is(err, sandbox.ErrProviderUnavailable) {
			return nil, err
		}
		slog.Warn("Sandbox creation failed, will retry",
			"task_id", t.ID, "attempt", attempt+1, "error", err)
	}
	return nil, fmt.Errorf("sandbox acquisition failed after %d attempts: %w",
		w.pool.config.SandboxAcquireRetries+1, lastErr)
}

// acquireBackoff returns the delay before the given retry attempt:
// base·2^(attempt−1) with jitter in [0.5, 1.5), capped.
func (w *Worker) acquireBackoff(attempt int) time.Duration {
	base := w.pool.config.SandboxBackoffBase
	if base <= 0 {
		base = time.Second
	}
	d := base << min(attempt-1, 16)
	if maxD := w.pool.config.SandboxBackoffMax; maxD > 0 && d > maxD {
		d = maxD
	}
	return d/2 + time.Duration(rand.Int64N(int64(d)))
}

// failTask records a failure disposition, releases the agent, and publishes
// the resulting status.
func (w *Worker) failTask(ctx context.Context, taskID, agentID, reason string, retryable bool) error {
	if err := w.pool.scheduler.OnTaskFailed(ctx, taskID, reason, retryable); err != nil {
		return fmt.Errorf("recording task failure: %w", err)
	}
	w.releaseAgent(ctx, agentID)

	t, err := w.pool.tasks.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	w.publishTaskStatus(ctx, taskID, string(t.Status), reason)
	return nil
}

// releaseAgent returns a RUNNING agent to IDLE. Agents already escalated by
// the guardian keep their state.
func (w *Worker) releaseAgent(ctx context.Context, agentID string) {
	ag, err := w.pool.agents.GetAgent(ctx, agentID)
	if err != nil {
		slog.Warn("Failed to load agent for release", "agent_id", agentID, "error", err)
		return
	}
	if lifecycle.Status(ag.Status) != lifecycle.StatusRunning {
		return
	}
	if _, err := w.pool.agents.Transition(ctx, agentID, lifecycle.StatusIdle, func(u *ent.AgentUpdate) {
		u.ClearCurrentTaskID()
	}); err != nil {
		slog.Warn("Failed to release agent", "agent_id", agentID, "error", err)
	}
}

// teardownSandbox deletes the sandbox; delete is idempotent on the provider.
func (w *Worker) teardownSandbox(sandboxID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := w.pool.provider.Delete(ctx, sandboxID); err != nil {
		slog.Warn("Failed to delete sandbox", "sandbox_id", sandboxID, "error", err)
	}
}

// publishTaskStatus publishes a task lifecycle event. Non-blocking for the
// run path: errors are logged.
func (w *Worker) publishTaskStatus(ctx context.Context, taskID, status, reason string) {
	payload := map[string]interface{}{"status": status}
	if reason != "" {
		payload["reason"] = reason
	}
	if err := w.pool.eventBus.Publish(ctx, bus.Envelope{
		EventType:  models.EventTypeTaskStatus,
		EntityType: "task",
		EntityID:   taskID,
		Payload:    payload,
	}); err != nil {
		slog.Warn("Failed to publish task status",
			"task_id", taskID, "status", status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.pool.config.PollInterval
	jitter := w.pool.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}

// encodeTaskContext serializes the task's execution inputs as base64 JSON
// for injection into the sandbox worker environment.
func encodeTaskContext(t *ent.Task) (string, error) {
	ticketID := ""
	if t.TicketID != nil {
		ticketID = *t.TicketID
	}
	payload := map[string]interface{}{
		"task_id":           t.ID,
		"ticket_id":         ticketID,
		"title":             t.Title,
		"description":       t.Description,
		"synthesis_context": t.SynthesisContext,
		"execution_config":  t.ExecutionConfig,
		"persistence_dir":   t.PersistenceDir,
		"owned_files":       t.OwnedFiles,
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(encoded), nil
}

// resourceEnvelope reads the task's resource request from execution_config,
// falling back to a small default.
func resourceEnvelope(t *ent.Task) models.ResourceEnvelope {
	env := models.ResourceEnvelope{CPUCores: 2, MemoryMB: 4096, DiskMB: 20480}
	raw, ok := t.ExecutionConfig["resources"].(map[string]interface{})
	if !ok {
		return env
	}
	if v, ok := raw["cpu_cores"].(float64); ok && v > 0 {
		env.CPUCores = v
	}
	if v, ok := raw["memory_mb"].(float64); ok && v > 0 {
		env.MemoryMB = int(v)
	}
	if v, ok := raw["disk_mb"].(float64); ok && v > 0 {
		env.DiskMB = int(v)
	}
	return env
}

// executionString reads a string-ish option from execution_config.
func executionString(t *ent.Task, key, fallback string) string {
	switch v := t.ExecutionConfig[key].(type) {
	case string:
		if v != "" {
			return v
		}
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fallback
}

func isTerminalStatus(s task.Status) bool {
	return s == task.StatusSucceeded || s == task.StatusFailed || s == task.StatusCanceled
}
