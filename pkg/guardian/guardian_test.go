package guardian

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent"
	entagent "github.com/helmsman-ai/helmsman/ent/agent"
	"github.com/helmsman-ai/helmsman/ent/guardianaction"
	"github.com/helmsman-ai/helmsman/pkg/lifecycle"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/sandbox"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

type fakeActions struct {
	actions []*ent.GuardianAction
	expired []*ent.GuardianAction
}

func (f *fakeActions) RecordAction(_ context.Context, req services.RecordActionRequest) (*ent.GuardianAction, error) {
	status := guardianaction.StatusPendingReview
	if req.AutoApproved {
		status = guardianaction.StatusApproved
	}
	a := &ent.GuardianAction{
		ID:             fmt.Sprintf("act-%d", len(f.actions)+1),
		ActionType:     req.ActionType,
		TargetAgentID:  req.TargetAgentID,
		AuthorityLevel: req.AuthorityLevel,
		Reason:         req.Reason,
		Initiator:      req.Initiator,
		Status:         status,
		Params:         req.Params,
		ReviewDeadline: req.ReviewDeadline,
	}
	f.actions = append(f.actions, a)
	return a, nil
}

func (f *fakeActions) Approve(_ context.Context, actionID, approver string) (*ent.GuardianAction, error) {
	for _, a := range f.actions {
		if a.ID == actionID {
			a.Status = guardianaction.StatusApproved
			a.ApprovedBy = &approver
			return a, nil
		}
	}
	return nil, services.ErrNotFound
}

func (f *fakeActions) MarkExecuted(_ context.Context, actionID, _ string) error {
	for _, a := range f.actions {
		if a.ID == actionID {
			a.Status = guardianaction.StatusExecuted
			return nil
		}
	}
	return services.ErrNotFound
}

func (f *fakeActions) ExpirePending(context.Context, time.Time) ([]*ent.GuardianAction, error) {
	out := f.expired
	f.expired = nil
	for _, a := range out {
		a.Status = guardianaction.StatusTimedOut
	}
	return out, nil
}

func (f *fakeActions) last() *ent.GuardianAction {
	if len(f.actions) == 0 {
		return nil
	}
	return f.actions[len(f.actions)-1]
}

type fakeAgents struct {
	agents map[string]*ent.Agent
}

func (f *fakeAgents) GetAgent(_ context.Context, id string) (*ent.Agent, error) {
	a, ok := f.agents[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return a, nil
}

func (f *fakeAgents) Transition(_ context.Context, id string, to lifecycle.Status, _ func(*ent.AgentUpdate)) (*ent.Agent, error) {
	a, ok := f.agents[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	if err := lifecycle.Validate(lifecycle.Status(a.Status), to); err != nil {
		return nil, err
	}
	a.Status = entagent.Status(to)
	return a, nil
}

type canceledCall struct{ id, reason string }
type failureCall struct {
	id, reason string
	retryable  bool
}

type fakeTasks struct {
	tasks    map[string]*ent.Task
	canceled []canceledCall
	failures []failureCall
}

func (f *fakeTasks) GetTask(_ context.Context, id string) (*ent.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return t, nil
}

func (f *fakeTasks) MarkCanceled(_ context.Context, id, reason string) error {
	f.canceled = append(f.canceled, canceledCall{id, reason})
	return nil
}

func (f *fakeTasks) RecordFailure(_ context.Context, id, reason string, retryable bool) (services.FailureDisposition, error) {
	f.failures = append(f.failures, failureCall{id, reason, retryable})
	return services.FailureDisposition{}, nil
}

type queuedMessage struct {
	sandboxID string
	req       models.QueueMessageRequest
}

type fakeMessages struct {
	queued []queuedMessage
}

func (f *fakeMessages) Queue(_ context.Context, sandboxID string, req models.QueueMessageRequest) (*ent.SandboxMessage, error) {
	f.queued = append(f.queued, queuedMessage{sandboxID, req})
	return &ent.SandboxMessage{}, nil
}

type fakeBudgets struct {
	crossed []*ent.Budget
}

func (f *fakeBudgets) OverAlertThreshold(context.Context) ([]*ent.Budget, error) {
	out := f.crossed
	f.crossed = nil
	return out, nil
}

func strPtr(s string) *string { return &s }

type fixture struct {
	guardian *Guardian
	actions  *fakeActions
	agents   *fakeAgents
	tasks    *fakeTasks
	messages *fakeMessages
	budgets  *fakeBudgets
	provider *sandbox.FakeProvider
}

func newFixture(t *testing.T, cfg PolicyConfig) *fixture {
	t.Helper()
	provider := sandbox.NewFakeProvider()
	sb, err := provider.CreateSandbox(context.Background(), "img", models.ResourceEnvelope{}, nil)
	require.NoError(t, err)

	f := &fixture{
		actions:  &fakeActions{},
		tasks:    &fakeTasks{tasks: map[string]*ent.Task{}},
		messages: &fakeMessages{},
		budgets:  &fakeBudgets{},
		provider: provider,
	}
	f.agents = &fakeAgents{agents: map[string]*ent.Agent{
		"ag-1": {
			ID:            "ag-1",
			Status:        entagent.StatusRUNNING,
			CurrentTaskID: strPtr("TSK-001"),
			SandboxID:     strPtr(sb.ID),
		},
	}}
	f.tasks.tasks["TSK-001"] = &ent.Task{
		ID:              "TSK-001",
		SandboxID:       strPtr(sb.ID),
		AssignedAgentID: strPtr("ag-1"),
	}
	f.guardian = New(f.actions, f.agents, f.tasks, f.messages, f.budgets, provider, nil, cfg)
	return f
}

func TestActionForSeverityLadder(t *testing.T) {
	assert.Equal(t, guardianaction.ActionTypeNudge, actionForSeverity(3))
	assert.Equal(t, guardianaction.ActionTypeNudge, actionForSeverity(4))
	assert.Equal(t, guardianaction.ActionTypePauseAgent, actionForSeverity(5))
	assert.Equal(t, guardianaction.ActionTypeResizeResources, actionForSeverity(6))
	assert.Equal(t, guardianaction.ActionTypeRestartSandbox, actionForSeverity(7))
	assert.Equal(t, guardianaction.ActionTypeTerminateAgent, actionForSeverity(8))
	assert.Equal(t, guardianaction.ActionTypeTerminateAgent, actionForSeverity(20))
}

func TestNudgeAutoExecutes(t *testing.T) {
	f := newFixture(t, DefaultPolicyConfig())

	require.NoError(t, f.guardian.RequestIntervention(context.Background(), "ag-1", "latency anomaly", 4))

	action := f.actions.last()
	require.NotNil(t, action)
	assert.Equal(t, guardianaction.ActionTypeNudge, action.ActionType)
	assert.Equal(t, guardianaction.StatusExecuted, action.Status)

	require.Len(t, f.messages.queued, 1)
	assert.Equal(t, models.MessageTypeGuardianNudge, f.messages.queued[0].req.Type)
	assert.False(t, f.messages.queued[0].req.Cancel)
}

func TestPauseQuarantinesAndNudgesCancel(t *testing.T) {
	f := newFixture(t, DefaultPolicyConfig())

	require.NoError(t, f.guardian.RequestIntervention(context.Background(), "ag-1", "repeated errors", 5))

	assert.Equal(t, entagent.StatusQUARANTINED, f.agents.agents["ag-1"].Status)
	require.Len(t, f.messages.queued, 1)
	assert.True(t, f.messages.queued[0].req.Cancel)
}

func TestActionAboveAutoAuthorityGoesPendingReview(t *testing.T) {
	f := newFixture(t, DefaultPolicyConfig()) // auto_authority = pause

	require.NoError(t, f.guardian.RequestIntervention(context.Background(), "ag-1", "stuck", 7))

	action := f.actions.last()
	require.NotNil(t, action)
	assert.Equal(t, guardianaction.ActionTypeRestartSandbox, action.ActionType)
	assert.Equal(t, guardianaction.StatusPendingReview, action.Status)
	require.NotNil(t, action.ReviewDeadline)

	// Nothing ran: sandbox alive, task untouched, agent still RUNNING.
	assert.True(t, f.provider.Exists(*f.agents.agents["ag-1"].SandboxID))
	assert.Empty(t, f.tasks.failures)
	assert.Equal(t, entagent.StatusRUNNING, f.agents.agents["ag-1"].Status)
}

func TestApproveAndExecuteRestart(t *testing.T) {
	f := newFixture(t, DefaultPolicyConfig())
	sandboxID := *f.agents.agents["ag-1"].SandboxID

	require.NoError(t, f.guardian.RequestIntervention(context.Background(), "ag-1", "stuck", 7))
	action := f.actions.last()
	require.Equal(t, guardianaction.StatusPendingReview, action.Status)

	require.NoError(t, f.guardian.ApproveAndExecute(context.Background(), action.ID, "oncall"))

	assert.Equal(t, guardianaction.StatusExecuted, action.Status)
	assert.False(t, f.provider.Exists(sandboxID), "sandbox torn down")
	require.Len(t, f.tasks.failures, 1)
	assert.True(t, f.tasks.failures[0].retryable, "task goes back to the queue")
	assert.Equal(t, entagent.StatusIDLE, f.agents.agents["ag-1"].Status)
}

func TestTerminatePassesThroughQuarantine(t *testing.T) {
	f := newFixture(t, PolicyConfig{AutoAuthority: AuthorityTerminate})

	require.NoError(t, f.guardian.RequestIntervention(context.Background(), "ag-1", "beyond recovery", 9))

	assert.Equal(t, entagent.StatusTERMINATED, f.agents.agents["ag-1"].Status,
		"RUNNING reaches TERMINATED via QUARANTINED")
	require.Len(t, f.tasks.canceled, 1)
	assert.Equal(t, "TSK-001", f.tasks.canceled[0].id)
}

func TestSweepReviewsRequeuesAtElevatedSeverity(t *testing.T) {
	f := newFixture(t, DefaultPolicyConfig())

	require.NoError(t, f.guardian.RequestIntervention(context.Background(), "ag-1", "stuck", 6))
	expired := f.actions.last()
	require.Equal(t, guardianaction.ActionTypeResizeResources, expired.ActionType)
	require.Equal(t, guardianaction.StatusPendingReview, expired.Status)
	f.actions.expired = []*ent.GuardianAction{expired}

	f.guardian.SweepReviews(context.Background())

	requeued := f.actions.last()
	require.NotSame(t, expired, requeued)
	assert.Equal(t, guardianaction.ActionTypeRestartSandbox, requeued.ActionType,
		"severity 6 re-queues as 7")
	assert.Equal(t, guardianaction.StatusPendingReview, requeued.Status)
	assert.Contains(t, requeued.Reason, "review timed out")
}

func TestSweepBudgetsPausesBreachedAgentScope(t *testing.T) {
	f := newFixture(t, DefaultPolicyConfig())
	f.budgets.crossed = []*ent.Budget{{
		ID:             "bud-1",
		ScopeType:      "agent",
		ScopeID:        "ag-1",
		LimitUsd:       10,
		SpentUsd:       10.5,
		AlertThreshold: 0.8,
	}}

	f.guardian.SweepBudgets(context.Background())

	action := f.actions.last()
	require.NotNil(t, action)
	assert.Equal(t, guardianaction.ActionTypePauseAgent, action.ActionType)
	assert.Equal(t, "cost_accountant", action.Initiator)
	assert.Equal(t, entagent.StatusQUARANTINED, f.agents.agents["ag-1"].Status)
}

func TestSweepBudgetsAlertOnlyBelowLimit(t *testing.T) {
	f := newFixture(t, DefaultPolicyConfig())
	f.budgets.crossed = []*ent.Budget{{
		ID:             "bud-1",
		ScopeType:      "agent",
		ScopeID:        "ag-1",
		LimitUsd:       10,
		SpentUsd:       8.5,
		AlertThreshold: 0.8,
	}}

	f.guardian.SweepBudgets(context.Background())

	assert.Nil(t, f.actions.last(), "alert threshold alone must not pause anything")
	assert.Equal(t, entagent.StatusRUNNING, f.agents.agents["ag-1"].Status)
}
