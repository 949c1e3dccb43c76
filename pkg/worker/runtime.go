package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/helmsman-ai/helmsman/pkg/agentgw"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/session"
)

// TurnRunner drives one agent turn. Satisfied by *agentgw.Client.
type TurnRunner interface {
	RunTurn(ctx context.Context, sess *session.Session, opts agentgw.TurnOptions) (<-chan agentgw.Block, <-chan error)
}

// Runtime is the sandbox worker: a single-threaded cooperative loop around
// the agent. Exactly one turn proceeds at a time; message polling and
// heartbeats run as background tasks whose effects are applied only between
// turns.
type Runtime struct {
	cfg        *Config
	agent      TurnRunner
	reporter   Reporter
	client     *CallbackClient
	poller     *MessagePoller
	heartbeats *HeartbeatEmitter
	caps       *CapTracker
	estimator  *CostEstimator
	sessions   *session.Manager
	sess       *session.Session
	git        GitInspector

	cancelRequested  bool
	completionStreak int
	runsCompleted    int
	phaseData        map[string]interface{}
}

// NewRuntime wires a runtime from its parts. poller and heartbeats may be
// nil in tests; git may be nil outside continuous mode.
func NewRuntime(cfg *Config, agent TurnRunner, reporter Reporter, client *CallbackClient, poller *MessagePoller, heartbeats *HeartbeatEmitter, git GitInspector) *Runtime {
	return &Runtime{
		cfg:        cfg,
		agent:      agent,
		reporter:   reporter,
		client:     client,
		poller:     poller,
		heartbeats: heartbeats,
		caps:       NewCapTracker(cfg.MaxTurns, cfg.MaxBudgetUSD, cfg.MaxDuration),
		estimator:  NewCostEstimator(cfg.Model, cfg.PromptPricePerMTok, cfg.CompletionPricePerMTok),
		sessions:   session.NewManager(),
		git:        git,
		phaseData:  make(map[string]interface{}),
	}
}

// Boot prepares the session: resolve the working directory, hydrate or
// create the transcript, register the conversation, and report worker.boot.
func (r *Runtime) Boot(ctx context.Context) error {
	if err := os.MkdirAll(r.cfg.Cwd, 0o755); err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	var err error
	switch {
	case r.cfg.SessionTranscriptB64 != "":
		r.sess, err = r.sessions.Hydrate(r.cfg.SessionTranscriptB64)
		if err != nil {
			return fmt.Errorf("failed to hydrate session transcript: %w", err)
		}
		slog.Info("Session hydrated from transcript", "session_id", r.sess.ID, "messages", len(r.sess.Messages))
	default:
		r.sess, err = r.sessions.Create(r.systemPrompt(), r.taskPrompt())
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		if r.cfg.ResumeSessionID != "" {
			r.sess.ID = r.cfg.ResumeSessionID
		}
	}

	if r.client != nil {
		if err := r.client.RegisterConversation(ctx, models.RegisterConversationRequest{
			TaskID:         r.cfg.TaskContext.TaskID,
			SandboxID:      r.cfg.SandboxID,
			ConversationID: r.sess.ID,
		}); err != nil {
			slog.Warn("Failed to register conversation", "error", err)
		}
	}
	if r.heartbeats != nil {
		r.heartbeats.SetTask(r.cfg.TaskContext.TaskID)
	}

	return r.report(ctx, models.EventTypeWorkerBoot, map[string]interface{}{
		"task_id":    r.cfg.TaskContext.TaskID,
		"session_id": r.sess.ID,
		"model":      r.cfg.Model,
		"continuous": r.cfg.ContinuousMode,
	}, models.EventSourceWorker)
}

// Run drives the agent to a terminal status and reports it. The returned
// error covers runtime faults only; agent-level failure is reported as an
// event and returns nil.
func (r *Runtime) Run(ctx context.Context) error {
	r.sess.SetStatus(session.StatusProcessing)

	for {
		if reason, hit := r.caps.Exceeded(); hit {
			return r.finishExhausted(ctx, reason)
		}
		if projected := r.estimator.ProjectTurnCost(r.sess); r.caps.WouldExceed(projected) {
			return r.finishExhausted(ctx,
				fmt.Sprintf("projected turn cost $%.4f would exceed budget $%.2f", projected, r.cfg.MaxBudgetUSD))
		}

		turn, err := r.runTurn(ctx)
		if err != nil {
			return r.finishFailed(ctx, err.Error())
		}

		// A cancel delivered in an earlier drain got exactly one
		// continuation turn, which just ran.
		if r.cancelRequested {
			return r.finishCanceled(ctx)
		}

		if err := r.applyInjectedMessages(ctx); err != nil {
			slog.Warn("Failed to apply injected messages", "error", err)
		}

		done, err := r.checkCompletion(ctx, turn)
		if err != nil {
			return r.finishFailed(ctx, err.Error())
		}
		if done {
			return r.finishCompleted(ctx)
		}
	}
}

// turnOutcome summarizes one completed agent turn.
type turnOutcome struct {
	Text       string
	ToolUses   int
	StopReason string
}

// runTurn pumps one agent turn, reporting every block as a sandbox event.
// An interrupt observed mid-turn cancels the gateway stream at the next
// block boundary; everything produced before that point is still reported
// and folded into the session.
func (r *Runtime) runTurn(ctx context.Context) (*turnOutcome, error) {
	start := time.Now()
	turnCtx, cancelTurn := context.WithCancel(ctx)
	defer cancelTurn()
	blocks, errs := r.agent.RunTurn(turnCtx, r.sess, agentgw.TurnOptions{
		AllowedTools:   r.cfg.AllowedTools,
		PermissionMode: string(r.cfg.PermissionMode),
		Cwd:            r.cfg.Cwd,
	})

	outcome := &turnOutcome{}
	interrupted := false
	var text strings.Builder

	for block := range blocks {
		if !interrupted && r.poller != nil && r.poller.Interrupted() {
			interrupted = true
			cancelTurn()
		}
		switch block.Type {
		case agentgw.BlockText:
			text.WriteString(block.Content)
			r.reportBestEffort(ctx, models.EventTypeAgentText,
				map[string]interface{}{"content": block.Content}, models.EventSourceAgent)

		case agentgw.BlockThinking:
			r.reportBestEffort(ctx, models.EventTypeAgentThinking,
				map[string]interface{}{"content": block.Content}, models.EventSourceAgent)

		case agentgw.BlockToolUse:
			outcome.ToolUses++
			r.reportBestEffort(ctx, models.EventTypeAgentToolUse, map[string]interface{}{
				"tool_use_id": block.ToolUseID,
				"tool_name":   block.ToolName,
				"input":       json.RawMessage(orEmptyJSON(block.InputJSON)),
			}, models.EventSourceAgent)

		case agentgw.BlockToolResult:
			data := map[string]interface{}{
				"tool_use_id": block.ToolUseID,
				"content":     block.Content,
				"is_error":    block.IsError,
			}
			if block.FilePath != "" {
				if change := ComputeFileChange(block.FilePath, block.OldContent, block.NewContent); change != nil {
					data["file_change"] = change
				}
			}
			r.reportBestEffort(ctx, models.EventTypeAgentToolResult, data, models.EventSourceAgent)
			r.sess.AddToolResult(block.ToolName, block.ToolUseID, block.Content)

		case agentgw.BlockComplete:
			outcome.StopReason = block.StopReason
			if block.Usage != nil {
				r.caps.RecordTurn(block.Usage.PromptTokens, block.Usage.CompletionTokens, block.Usage.CostUSD)
			} else {
				r.caps.RecordTurn(0, 0, 0)
			}
		}
	}

	err := <-errs
	if interrupted && errors.Is(err, context.Canceled) {
		// The cut turn is not a fault: the between-turns drain delivers
		// the interrupt next.
		err = nil
		outcome.StopReason = "interrupted"
	}
	latency := time.Since(start)
	if r.heartbeats != nil {
		r.heartbeats.ObserveTurn(latency, err != nil)
	}
	if err != nil {
		r.reportBestEffort(ctx, models.EventTypeAgentError,
			map[string]interface{}{"error": err.Error()}, models.EventSourceWorker)
		return nil, fmt.Errorf("agent turn failed: %w", err)
	}

	outcome.Text = text.String()
	if outcome.Text != "" {
		r.sess.AddMessage(session.RoleAssistant, outcome.Text)
	}
	return outcome, nil
}

// applyInjectedMessages drains buffered messages, applies them to the
// session in cursor order, and acknowledges only after all are delivered.
func (r *Runtime) applyInjectedMessages(ctx context.Context) error {
	if r.poller == nil {
		return nil
	}
	msgs, cursor := r.poller.Drain()
	for _, msg := range msgs {
		switch msg.Type {
		case models.MessageTypeUser:
			r.sess.AddMessage(session.RoleUser, msg.Content)
		case models.MessageTypeSystem:
			r.sess.AddMessage(session.RoleSystem, msg.Content)
		case models.MessageTypeGuardianNudge:
			content := msg.Content
			if msg.Cancel {
				content = "Please stop working now, commit nothing further, and summarize the state of the task.\n\n" + content
				r.cancelRequested = true
			}
			r.sess.AddMessage(session.RoleUser, content)
		case models.MessageTypeInterrupt:
			r.sess.AddMessage(session.RoleUser,
				"Interrupt: pause the current approach and follow these instructions.\n\n"+msg.Content)
			if msg.Cancel {
				r.cancelRequested = true
			}
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return r.poller.Ack(ctx, cursor)
}

// checkCompletion decides whether the run is done after a turn.
func (r *Runtime) checkCompletion(ctx context.Context, turn *turnOutcome) (bool, error) {
	if r.cancelRequested {
		// Let the stop continuation run one more turn before termination.
		return false, nil
	}

	if !r.cfg.ContinuousMode {
		// The run ends when the agent stops using tools and yields its turn
		// with nothing queued for it.
		pending := 0
		if r.poller != nil {
			pending = r.poller.PendingCount()
		}
		return turn.ToolUses == 0 && turn.StopReason == "end_turn" && pending == 0, nil
	}

	if !strings.Contains(turn.Text, r.cfg.CompletionSignal) {
		r.completionStreak = 0
		return false, nil
	}

	// Completion signal seen: validate before counting it.
	if r.git != nil {
		status, err := r.git.Status(ctx, r.cfg.Cwd)
		if err != nil {
			return false, err
		}
		if !status.Clean && !status.Committed {
			slog.Info("Completion signal with dirty tree and no commit, re-prompting")
			r.completionStreak = 0
			r.reprompt("The working tree has uncommitted changes and no commit was made. The task is not complete: commit your work or finish the remaining changes.")
			return false, nil
		}
	}

	r.completionStreak++
	if r.completionStreak >= r.cfg.CompletionThreshold {
		return true, nil
	}

	r.runsCompleted++
	if r.cfg.ContinuousMaxRuns > 0 && r.runsCompleted >= r.cfg.ContinuousMaxRuns {
		return true, nil
	}

	r.reprompt(fmt.Sprintf(
		"Completion signal received (%d of %d needed). Re-verify the task end to end%s and emit the signal again if everything still holds.",
		r.completionStreak, r.cfg.CompletionThreshold, r.notesSuffix()))
	return false, nil
}

// reprompt queues a user continuation for the next turn.
func (r *Runtime) reprompt(content string) {
	r.sess.AddMessage(session.RoleUser, content)
}

// notesSuffix folds the contents of a NOTES.md in the workspace into the
// continuous-mode re-prompt, if one exists.
func (r *Runtime) notesSuffix() string {
	raw, err := os.ReadFile(filepath.Join(r.cfg.Cwd, "NOTES.md"))
	if err != nil || len(raw) == 0 {
		return ""
	}
	return ", taking into account these notes:\n\n" + string(raw)
}

func (r *Runtime) finishCompleted(ctx context.Context) error {
	if r.cfg.RequireSpecSkill {
		if err := ValidateSpecOutputs(filepath.Join(r.cfg.Cwd, r.cfg.SpecOutputDir)); err != nil {
			return r.finishFailed(ctx, err.Error())
		}
	}

	r.sess.SetStatus(session.StatusCompleted)
	r.pushSyncSummary(ctx)
	return r.report(ctx, models.EventTypeAgentCompleted, r.summaryPayload(), models.EventSourceWorker)
}

func (r *Runtime) finishFailed(ctx context.Context, reason string) error {
	r.sess.SetError(reason)
	payload := r.summaryPayload()
	payload["reason"] = reason
	return r.report(ctx, models.EventTypeAgentFailed, payload, models.EventSourceWorker)
}

func (r *Runtime) finishCanceled(ctx context.Context) error {
	r.sess.SetStatus(session.StatusCancelled)
	payload := r.summaryPayload()
	payload["reason"] = "canceled"
	return r.report(ctx, models.EventTypeAgentCompleted, payload, models.EventSourceWorker)
}

func (r *Runtime) finishExhausted(ctx context.Context, reason string) error {
	r.sess.SetStatus(session.StatusCompleted)
	payload := r.summaryPayload()
	payload["reason"] = reason
	return r.report(ctx, models.EventTypeAgentBudgetExhausted, payload, models.EventSourceWorker)
}

// summaryPayload is the terminal event body: spec linkage, phase data, cost
// totals, and the final session id.
func (r *Runtime) summaryPayload() map[string]interface{} {
	turns, promptTokens, completionTokens, cost := r.caps.Totals()
	return map[string]interface{}{
		"task_id":           r.cfg.TaskContext.TaskID,
		"spec_id":           r.cfg.TaskContext.SpecID,
		"session_id":        r.sess.ID,
		"phase_data":        r.phaseData,
		"turns":             turns,
		"prompt_tokens":     promptTokens,
		"completion_tokens": completionTokens,
		"total_cost_usd":    cost,
		"elapsed_s":         int(r.caps.Elapsed().Seconds()),
	}
}

func (r *Runtime) pushSyncSummary(ctx context.Context) {
	if r.client == nil || r.cfg.TaskContext.SpecID == "" {
		return
	}
	_, _, _, cost := r.caps.Totals()
	if err := r.client.PushSyncSummary(ctx, models.SyncSummary{
		SandboxID:    r.cfg.SandboxID,
		SpecID:       r.cfg.TaskContext.SpecID,
		PhaseData:    r.phaseData,
		TotalCostUSD: cost,
		SessionID:    r.sess.ID,
	}); err != nil {
		slog.Warn("Failed to push sync summary", "error", err)
	}
}

// SetPhaseData merges spec phase output into the terminal summary.
func (r *Runtime) SetPhaseData(data map[string]interface{}) {
	for k, v := range data {
		r.phaseData[k] = v
	}
}

// Session exposes the live session for the spec executor.
func (r *Runtime) Session() *session.Session { return r.sess }

// report sends an event through the reporter; failure is a runtime error.
func (r *Runtime) report(ctx context.Context, eventType string, data map[string]interface{}, source string) error {
	return r.reporter.Report(ctx, models.SandboxEventReport{
		SandboxID: r.cfg.SandboxID,
		EventType: eventType,
		EventData: data,
		Source:    source,
		SpecID:    r.cfg.TaskContext.SpecID,
	})
}

// reportBestEffort logs instead of failing; used for per-block streaming
// where the HTTP reporter already retried.
func (r *Runtime) reportBestEffort(ctx context.Context, eventType string, data map[string]interface{}, source string) {
	if err := r.report(ctx, eventType, data, source); err != nil {
		slog.Warn("Failed to report event", "event_type", eventType, "error", err)
	}
}

func (r *Runtime) systemPrompt() string {
	var b strings.Builder
	b.WriteString("You are an autonomous coding agent working inside an isolated sandbox. ")
	b.WriteString("Work only within the workspace, use the allowed tools, and be explicit about every change you make.")
	if r.cfg.ContinuousMode {
		fmt.Fprintf(&b, " When the task is fully complete, say %q on a line of its own.", r.cfg.CompletionSignal)
	}
	if len(r.cfg.TaskContext.OwnedFiles) > 0 {
		fmt.Fprintf(&b, " You own only these paths and must not modify anything else: %s.",
			strings.Join(r.cfg.TaskContext.OwnedFiles, ", "))
	}
	return b.String()
}

func (r *Runtime) taskPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.cfg.TaskContext.Title)
	if r.cfg.TaskContext.Description != "" {
		b.WriteString(r.cfg.TaskContext.Description)
		b.WriteString("\n\n")
	}
	if len(r.cfg.TaskContext.SynthesisContext) > 0 {
		if encoded, err := json.MarshalIndent(r.cfg.TaskContext.SynthesisContext, "", "  "); err == nil {
			b.WriteString("## Context\n\n```json\n")
			b.Write(encoded)
			b.WriteString("\n```\n")
		}
	}
	return b.String()
}

func orEmptyJSON(s string) []byte {
	if strings.TrimSpace(s) == "" {
		return []byte("{}")
	}
	return []byte(s)
}
