package guardian

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/budget"
	"github.com/helmsman-ai/helmsman/ent/guardianaction"
	"github.com/helmsman-ai/helmsman/pkg/bus"
	"github.com/helmsman-ai/helmsman/pkg/lifecycle"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/sandbox"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

// ActionStore is the audit-trail surface of services.GuardianService.
type ActionStore interface {
	RecordAction(ctx context.Context, req services.RecordActionRequest) (*ent.GuardianAction, error)
	Approve(ctx context.Context, actionID, approver string) (*ent.GuardianAction, error)
	MarkExecuted(ctx context.Context, actionID, actor string) error
	ExpirePending(ctx context.Context, now time.Time) ([]*ent.GuardianAction, error)
}

// AgentDirectory is the slice of services.AgentService the guardian uses.
type AgentDirectory interface {
	GetAgent(ctx context.Context, id string) (*ent.Agent, error)
	Transition(ctx context.Context, id string, to lifecycle.Status, mutate func(*ent.AgentUpdate)) (*ent.Agent, error)
}

// TaskControl is the slice of services.TaskService the guardian uses.
type TaskControl interface {
	GetTask(ctx context.Context, id string) (*ent.Task, error)
	MarkCanceled(ctx context.Context, id, reason string) error
	RecordFailure(ctx context.Context, id, reason string, retryable bool) (services.FailureDisposition, error)
}

// MessageQueue injects messages into a running sandbox.
type MessageQueue interface {
	Queue(ctx context.Context, sandboxID string, req models.QueueMessageRequest) (*ent.SandboxMessage, error)
}

// BudgetScanner surfaces budgets that crossed their alert threshold.
type BudgetScanner interface {
	OverAlertThreshold(ctx context.Context) ([]*ent.Budget, error)
}

// Guardian is the policy engine. It satisfies heartbeat.Intervener.
type Guardian struct {
	actions  ActionStore
	agents   AgentDirectory
	tasks    TaskControl
	messages MessageQueue
	budgets  BudgetScanner
	provider sandbox.Provider
	eventBus *bus.Bus
	cfg      PolicyConfig

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a guardian. eventBus and budgets may be nil (cost pressure
// disabled); provider may be nil (resize/restart degrade to pending review
// failures at execution time).
func New(actions ActionStore, agents AgentDirectory, tasks TaskControl, messages MessageQueue, budgets BudgetScanner, provider sandbox.Provider, eventBus *bus.Bus, cfg PolicyConfig) *Guardian {
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultPolicyConfig().SweepInterval
	}
	if cfg.ReviewTimeout <= 0 {
		cfg.ReviewTimeout = DefaultPolicyConfig().ReviewTimeout
	}
	return &Guardian{
		actions:  actions,
		agents:   agents,
		tasks:    tasks,
		messages: messages,
		budgets:  budgets,
		provider: provider,
		eventBus: eventBus,
		cfg:      cfg,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the background sweep loop for pending reviews and budgets.
func (g *Guardian) Start(ctx context.Context) {
	g.wg.Add(1)
	go g.run(ctx)
}

// Stop terminates the sweep loop.
func (g *Guardian) Stop() {
	g.stopOnce.Do(func() { close(g.stopCh) })
	g.wg.Wait()
}

// RequestIntervention handles an incident against an agent: it picks the
// remediation for the severity, records it, and either executes it (at or
// below auto_authority) or parks it pending review with a deadline.
func (g *Guardian) RequestIntervention(ctx context.Context, agentID, reason string, severity int) error {
	actionType := actionForSeverity(severity)
	_, err := g.propose(ctx, agentID, actionType, reason, "heartbeat_engine", severity)
	return err
}

// Propose records an action of an explicit type, applying the same
// auto-authority gate as RequestIntervention. Used by operators and the
// cost sweep.
func (g *Guardian) Propose(ctx context.Context, agentID string, actionType guardianaction.ActionType, reason, initiator string) (*ent.GuardianAction, error) {
	return g.propose(ctx, agentID, actionType, reason, initiator, actionAuthority[actionType]+3)
}

func (g *Guardian) propose(ctx context.Context, agentID string, actionType guardianaction.ActionType, reason, initiator string, severity int) (*ent.GuardianAction, error) {
	level := actionAuthority[actionType]
	auto := level <= g.cfg.AutoAuthority

	req := services.RecordActionRequest{
		ActionType:     actionType,
		TargetAgentID:  agentID,
		AuthorityLevel: level,
		Reason:         reason,
		Initiator:      initiator,
		AutoApproved:   auto,
		Params:         map[string]interface{}{"severity": severity},
	}
	if agent, err := g.agents.GetAgent(ctx, agentID); err == nil && agent.CurrentTaskID != nil {
		req.TargetTaskID = *agent.CurrentTaskID
	}
	if !auto {
		deadline := time.Now().Add(g.cfg.ReviewTimeout)
		req.ReviewDeadline = &deadline
	}

	action, err := g.actions.RecordAction(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to record intervention for agent %s: %w", agentID, err)
	}

	if !auto {
		slog.Info("Guardian action pending review",
			"action_id", action.ID,
			"action_type", actionType,
			"agent_id", agentID,
			"authority_level", level,
			"deadline", req.ReviewDeadline)
		g.publish(ctx, "guardian.pending_review", agentID, map[string]interface{}{
			"action_id":       action.ID,
			"action_type":     string(actionType),
			"authority_level": level,
			"reason":          reason,
		})
		return action, nil
	}

	if err := g.execute(ctx, action); err != nil {
		return action, err
	}
	return action, nil
}

// ApproveAndExecute approves a pending action and runs its remediation.
func (g *Guardian) ApproveAndExecute(ctx context.Context, actionID, approver string) error {
	action, err := g.actions.Approve(ctx, actionID, approver)
	if err != nil {
		return err
	}
	return g.execute(ctx, action)
}

// execute runs the remediation and marks the action executed.
func (g *Guardian) execute(ctx context.Context, action *ent.GuardianAction) error {
	agent, err := g.agents.GetAgent(ctx, action.TargetAgentID)
	if err != nil {
		return fmt.Errorf("failed to load target agent %s: %w", action.TargetAgentID, err)
	}

	switch action.ActionType {
	case guardianaction.ActionTypeNudge:
		err = g.nudge(ctx, agent, action.Reason, false)
	case guardianaction.ActionTypePauseAgent:
		err = g.pause(ctx, agent, action.Reason)
	case guardianaction.ActionTypeResizeResources:
		err = g.resize(ctx, agent, action.Params)
	case guardianaction.ActionTypeRestartSandbox:
		err = g.restart(ctx, agent, action.Reason)
	case guardianaction.ActionTypeTerminateAgent:
		err = g.terminate(ctx, agent, action.Reason)
	default:
		err = fmt.Errorf("unknown action type %q", action.ActionType)
	}
	if err != nil {
		return fmt.Errorf("guardian action %s (%s) failed: %w", action.ID, action.ActionType, err)
	}

	if err := g.actions.MarkExecuted(ctx, action.ID, "guardian"); err != nil {
		return err
	}
	g.publish(ctx, "guardian.action", action.TargetAgentID, map[string]interface{}{
		"action_id":       action.ID,
		"action_type":     string(action.ActionType),
		"authority_level": action.AuthorityLevel,
		"reason":          action.Reason,
	})
	return nil
}

// nudge injects a guardian message into the agent's sandbox.
func (g *Guardian) nudge(ctx context.Context, agent *ent.Agent, reason string, cancel bool) error {
	sandboxID := g.sandboxOf(ctx, agent)
	if sandboxID == "" {
		return fmt.Errorf("agent %s has no sandbox to nudge", agent.ID)
	}
	_, err := g.messages.Queue(ctx, sandboxID, models.QueueMessageRequest{
		Type:    models.MessageTypeGuardianNudge,
		Content: reason,
		Cancel:  cancel,
	})
	return err
}

// pause quarantines the agent and asks its sandbox to stop cleanly.
func (g *Guardian) pause(ctx context.Context, agent *ent.Agent, reason string) error {
	if _, err := g.agents.Transition(ctx, agent.ID, lifecycle.StatusQuarantined, nil); err != nil {
		return err
	}
	if err := g.nudge(ctx, agent, "Paused by guardian: "+reason, true); err != nil {
		slog.Warn("Pause nudge not delivered", "agent_id", agent.ID, "error", err)
	}
	return nil
}

// resize applies a new resource envelope to the agent's sandbox.
func (g *Guardian) resize(ctx context.Context, agent *ent.Agent, params map[string]interface{}) error {
	if g.provider == nil {
		return errors.New("no sandbox provider configured")
	}
	sandboxID := g.sandboxOf(ctx, agent)
	if sandboxID == "" {
		return fmt.Errorf("agent %s has no sandbox to resize", agent.ID)
	}
	return g.provider.Resize(ctx, sandboxID, envelopeFromParams(params))
}

// restart tears the sandbox down and re-queues the agent's task; the
// scheduler reassigns it to a fresh sandbox.
func (g *Guardian) restart(ctx context.Context, agent *ent.Agent, reason string) error {
	if g.provider == nil {
		return errors.New("no sandbox provider configured")
	}
	sandboxID := g.sandboxOf(ctx, agent)
	if sandboxID != "" {
		if err := g.provider.Delete(ctx, sandboxID); err != nil {
			return fmt.Errorf("failed to delete sandbox %s: %w", sandboxID, err)
		}
	}
	if agent.CurrentTaskID != nil {
		if _, err := g.tasks.RecordFailure(ctx, *agent.CurrentTaskID, "sandbox_restarted: "+reason, true); err != nil {
			return err
		}
	}
	_, err := g.agents.Transition(ctx, agent.ID, lifecycle.StatusIdle, func(u *ent.AgentUpdate) {
		u.ClearCurrentTaskID()
		u.ClearSandboxID()
	})
	return err
}

// terminate is the top of the ladder: the agent is removed from rotation for
// good. RUNNING agents pass through QUARANTINED since TERMINATED is not
// directly reachable from RUNNING.
func (g *Guardian) terminate(ctx context.Context, agent *ent.Agent, reason string) error {
	if agent.CurrentTaskID != nil {
		if err := g.tasks.MarkCanceled(ctx, *agent.CurrentTaskID, "agent_terminated: "+reason); err != nil {
			slog.Warn("Failed to cancel task of terminated agent",
				"agent_id", agent.ID, "task_id", *agent.CurrentTaskID, "error", err)
		}
	}
	if sandboxID := g.sandboxOf(ctx, agent); sandboxID != "" && g.provider != nil {
		if err := g.provider.Delete(ctx, sandboxID); err != nil && !errors.Is(err, sandbox.ErrSandboxNotFound) {
			slog.Warn("Failed to delete sandbox of terminated agent",
				"agent_id", agent.ID, "sandbox_id", sandboxID, "error", err)
		}
	}

	_, err := g.agents.Transition(ctx, agent.ID, lifecycle.StatusTerminated, nil)
	if errors.Is(err, lifecycle.ErrInvalidTransition) {
		if _, qerr := g.agents.Transition(ctx, agent.ID, lifecycle.StatusQuarantined, nil); qerr != nil {
			return qerr
		}
		_, err = g.agents.Transition(ctx, agent.ID, lifecycle.StatusTerminated, nil)
	}
	return err
}

// sandboxOf resolves the agent's sandbox, falling back to its current task.
func (g *Guardian) sandboxOf(ctx context.Context, agent *ent.Agent) string {
	if agent.SandboxID != nil && *agent.SandboxID != "" {
		return *agent.SandboxID
	}
	if agent.CurrentTaskID == nil {
		return ""
	}
	t, err := g.tasks.GetTask(ctx, *agent.CurrentTaskID)
	if err != nil || t.SandboxID == nil {
		return ""
	}
	return *t.SandboxID
}

func (g *Guardian) run(ctx context.Context) {
	defer g.wg.Done()

	ticker := time.NewTicker(g.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-g.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.SweepReviews(ctx)
			g.SweepBudgets(ctx)
		}
	}
}

// SweepReviews times out overdue pending actions and re-queues their
// incidents one severity higher. A timed-out action is never executed.
func (g *Guardian) SweepReviews(ctx context.Context) {
	expired, err := g.actions.ExpirePending(ctx, time.Now())
	if err != nil {
		slog.Error("Failed to expire pending guardian actions", "error", err)
		return
	}
	for _, action := range expired {
		severity := severityOf(action) + 1
		slog.Warn("Guardian review timed out, re-queuing at elevated severity",
			"action_id", action.ID,
			"agent_id", action.TargetAgentID,
			"severity", severity)
		if err := g.RequestIntervention(ctx, action.TargetAgentID,
			action.Reason+" (review timed out)", severity); err != nil {
			slog.Error("Failed to re-queue expired incident",
				"action_id", action.ID, "error", err)
		}
	}
}

// SweepBudgets emits cost_pressure for every budget past its alert threshold
// and pauses the spending scope once the limit itself is breached.
func (g *Guardian) SweepBudgets(ctx context.Context) {
	if g.budgets == nil {
		return
	}
	crossed, err := g.budgets.OverAlertThreshold(ctx)
	if err != nil {
		slog.Error("Failed to scan budgets", "error", err)
		return
	}
	for _, b := range crossed {
		g.publish(ctx, models.EventTypeCostPressure, b.ScopeID, map[string]interface{}{
			"scope_type": string(b.ScopeType),
			"scope_id":   b.ScopeID,
			"limit_usd":  b.LimitUsd,
			"spent_usd":  b.SpentUsd,
			"threshold":  b.AlertThreshold,
		})
		if b.SpentUsd+b.ReservedUsd >= b.LimitUsd {
			g.pauseScope(ctx, b)
		}
	}
}

// pauseScope pauses whatever is spending against a breached budget.
func (g *Guardian) pauseScope(ctx context.Context, b *ent.Budget) {
	reason := fmt.Sprintf("budget limit breached for %s/%s", b.ScopeType, b.ScopeID)
	switch b.ScopeType {
	case budget.ScopeTypeAgent:
		if _, err := g.propose(ctx, b.ScopeID, guardianaction.ActionTypePauseAgent, reason, "cost_accountant", 5); err != nil {
			slog.Error("Failed to pause over-budget agent", "agent_id", b.ScopeID, "error", err)
		}
	case budget.ScopeTypeTask:
		t, err := g.tasks.GetTask(ctx, b.ScopeID)
		if err != nil || t.AssignedAgentID == nil {
			return
		}
		if _, err := g.propose(ctx, *t.AssignedAgentID, guardianaction.ActionTypePauseAgent, reason, "cost_accountant", 5); err != nil {
			slog.Error("Failed to pause agent of over-budget task", "task_id", b.ScopeID, "error", err)
		}
	default:
		// Project/account scopes have no single agent to pause; the
		// cost_pressure event plus reservation rejection stops new spend.
		slog.Warn("Budget limit breached", "scope_type", b.ScopeType, "scope_id", b.ScopeID)
	}
}

func (g *Guardian) publish(ctx context.Context, eventType, entityID string, payload map[string]interface{}) {
	if g.eventBus == nil {
		return
	}
	if err := g.eventBus.Publish(ctx, bus.Envelope{
		EventType:  eventType,
		EntityType: "agent",
		EntityID:   entityID,
		Payload:    payload,
	}); err != nil {
		slog.Warn("Failed to publish guardian event", "event_type", eventType, "error", err)
	}
}

func severityOf(action *ent.GuardianAction) int {
	if action.Params != nil {
		if v, ok := action.Params["severity"].(float64); ok {
			return int(v)
		}
		if v, ok := action.Params["severity"].(int); ok {
			return v
		}
	}
	return actionAuthority[action.ActionType] + 3
}

func envelopeFromParams(params map[string]interface{}) models.ResourceEnvelope {
	envelope := models.ResourceEnvelope{CPUCores: 2, MemoryMB: 4096, DiskMB: 20480}
	if params == nil {
		return envelope
	}
	if v, ok := params["cpu_cores"].(float64); ok && v > 0 {
		envelope.CPUCores = v
	}
	if v, ok := params["memory_mb"].(float64); ok && v > 0 {
		envelope.MemoryMB = int(v)
	}
	if v, ok := params["disk_mb"].(float64); ok && v > 0 {
		envelope.DiskMB = int(v)
	}
	return envelope
}
