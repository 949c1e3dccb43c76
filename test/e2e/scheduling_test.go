// Package e2e exercises multi-component flows against a real PostgreSQL:
// scheduling gates, convergence merges, and cross-pod event relay.
package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent/budget"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/ent/ticket"
	"github.com/helmsman-ai/helmsman/pkg/bus"
	"github.com/helmsman-ai/helmsman/pkg/config"
	"github.com/helmsman-ai/helmsman/pkg/lifecycle"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/scheduler"
	"github.com/helmsman-ai/helmsman/pkg/services"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

// env bundles the DB-backed services a scheduling test needs.
type env struct {
	tasks   *services.TaskService
	tickets *services.TicketService
	agents  *services.AgentService
	budgets *services.BudgetService
	events  *services.EventService
	bus     *bus.Bus
	sched   *scheduler.Scheduler
}

func newEnv(t *testing.T) *env {
	t.Helper()
	client := testdb.NewTestClient(t)
	e := &env{
		tasks:   services.NewTaskService(client.Client),
		tickets: services.NewTicketService(client.Client),
		agents:  services.NewAgentService(client.Client),
		budgets: services.NewBudgetService(client.Client),
		events:  services.NewEventService(client.Client),
	}
	e.bus = bus.New(e.events, 64)
	t.Cleanup(e.bus.Stop)
	e.sched = scheduler.New(e.tasks, e.tickets, e.agents, e.budgets, e.bus, config.Default().Scheduler, nil)
	return e
}

// idleAgent registers an agent and walks it to IDLE.
func (e *env) idleAgent(t *testing.T, id string, caps ...string) {
	t.Helper()
	ctx := context.Background()
	_, err := e.agents.Register(ctx, models.RegisterAgentRequest{
		AgentID:      id,
		AgentType:    "coder",
		Capabilities: caps,
	})
	require.NoError(t, err)
	_, err = e.agents.Transition(ctx, id, lifecycle.StatusIdle, nil)
	require.NoError(t, err)
}

func TestSchedulingDependencyGate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.idleAgent(t, "agent-1")

	_, err := e.tasks.CreateTask(ctx, models.CreateTaskRequest{TaskID: "T-A", Title: "first"})
	require.NoError(t, err)
	_, err = e.tasks.CreateTask(ctx, models.CreateTaskRequest{
		TaskID:    "T-B",
		Title:     "second",
		DependsOn: []string{"T-A"},
		// Higher base priority: the gate, not the score, must hold B back.
		PriorityBase: 100,
	})
	require.NoError(t, err)

	// Only T-A is schedulable while its dependent waits.
	a, err := e.sched.NextAssignment(ctx)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "T-A", a.Task.ID)
	require.NoError(t, e.tasks.Claim(ctx, a.Task, "sb-a", a.Agent.ID, "pod-e2e"))

	// With T-A merely assigned, nothing else is ready.
	_, err = e.agents.Transition(ctx, "agent-1", lifecycle.StatusRunning, nil)
	require.NoError(t, err)
	a2, err := e.sched.NextAssignment(ctx)
	require.NoError(t, err)
	assert.Nil(t, a2)

	// Finish T-A; T-B becomes schedulable.
	require.NoError(t, e.tasks.MarkRunning(ctx, "T-A"))
	require.NoError(t, e.tasks.MarkSucceeded(ctx, "T-A"))
	_, err = e.agents.Transition(ctx, "agent-1", lifecycle.StatusIdle, nil)
	require.NoError(t, err)

	a3, err := e.sched.NextAssignment(ctx)
	require.NoError(t, err)
	require.NotNil(t, a3)
	assert.Equal(t, "T-B", a3.Task.ID)
}

func TestSchedulingBudgetAdmission(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.idleAgent(t, "agent-1")

	_, err := e.tasks.CreateTask(ctx, models.CreateTaskRequest{TaskID: "T-PAID", Title: "budgeted"})
	require.NoError(t, err)
	scope := services.BudgetScope{Type: budget.ScopeTypeTask, ID: "T-PAID"}
	_, err = e.budgets.CreateBudget(ctx, scope, 1.00, 0.8)
	require.NoError(t, err)

	// 0.40 + 0.40 settled, then a 0.30 hold is rejected and the task no
	// longer passes budget admission.
	for i := 0; i < 2; i++ {
		res, err := e.budgets.Reserve(ctx, scope, 0.40)
		require.NoError(t, err)
		_, err = e.budgets.Settle(ctx, res, services.CostUsage{TaskID: "T-PAID", PromptCost: 0.40})
		require.NoError(t, err)
	}
	_, err = e.budgets.Reserve(ctx, scope, 0.30)
	require.ErrorIs(t, err, services.ErrBudgetExhausted)

	a, err := e.sched.NextAssignment(ctx)
	require.NoError(t, err)
	require.NotNil(t, a, "0.20 of headroom is still admissible")
	assert.Equal(t, "T-PAID", a.Task.ID)

	// Spend the rest; the task is skipped entirely.
	res, err := e.budgets.Reserve(ctx, scope, 0.20)
	require.NoError(t, err)
	_, err = e.budgets.Settle(ctx, res, services.CostUsage{TaskID: "T-PAID", PromptCost: 0.20})
	require.NoError(t, err)

	a, err = e.sched.NextAssignment(ctx)
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestSchedulingTicketApprovalGate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.idleAgent(t, "agent-1")

	tk, err := e.tickets.CreateTicket(ctx, models.CreateTicketRequest{TicketID: "TKT-1", Title: "gated work"})
	require.NoError(t, err)
	assert.Equal(t, ticket.ApprovalStatusPending, tk.ApprovalStatus)

	_, err = e.tasks.CreateTask(ctx, models.CreateTaskRequest{TaskID: "T-G", Title: "gated", TicketID: "TKT-1"})
	require.NoError(t, err)

	a, err := e.sched.NextAssignment(ctx)
	require.NoError(t, err)
	assert.Nil(t, a, "unapproved ticket must hold its tasks back")

	require.NoError(t, e.tickets.SetApproval(ctx, "TKT-1", true))
	a, err = e.sched.NextAssignment(ctx)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "T-G", a.Task.ID)

	// Blocking the ticket pulls its tasks out of admission again.
	require.NoError(t, e.tickets.SetBlocked(ctx, "TKT-1", true, "design revision requested"))
	a, err = e.sched.NextAssignment(ctx)
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestSchedulingCapabilityMatch(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.idleAgent(t, "agent-py", "python")

	_, err := e.tasks.CreateTask(ctx, models.CreateTaskRequest{
		TaskID:               "T-GO",
		Title:                "needs a go agent",
		RequiredCapabilities: []string{"golang"},
	})
	require.NoError(t, err)

	a, err := e.sched.NextAssignment(ctx)
	require.NoError(t, err)
	assert.Nil(t, a)

	e.idleAgent(t, "agent-go", "golang", "git")
	a, err = e.sched.NextAssignment(ctx)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "agent-go", a.Agent.ID)
}

func TestConvergencePublishesMergeRequired(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	sub := e.bus.Subscribe(bus.Filter{EventType: models.EventTypeMergeRequired})
	defer sub.Unsubscribe()

	_, err := e.tasks.CreateTask(ctx, models.CreateTaskRequest{TaskID: "T-P", Title: "parent"})
	require.NoError(t, err)
	for _, id := range []string{"T-C1", "T-C2"} {
		created, err := e.tasks.CreateTask(ctx, models.CreateTaskRequest{
			TaskID:       id,
			Title:        id,
			ParentTaskID: "T-P",
		})
		require.NoError(t, err)
		require.NoError(t, e.tasks.Claim(ctx, created, "sb-"+id, "agent-"+id, "pod-e2e"))
		require.NoError(t, e.tasks.MarkRunning(ctx, id))
	}

	// First sibling finishing is not convergence yet.
	require.NoError(t, e.tasks.MarkSucceeded(ctx, "T-C1"))
	done, err := e.tasks.GetTask(ctx, "T-C1")
	require.NoError(t, err)
	require.NoError(t, e.sched.OnTaskSucceeded(ctx, done))
	select {
	case early := <-sub.C:
		t.Fatalf("merge_required published too early: %+v", early)
	default:
	}

	require.NoError(t, e.tasks.MarkSucceeded(ctx, "T-C2"))
	done, err = e.tasks.GetTask(ctx, "T-C2")
	require.NoError(t, err)
	require.NoError(t, e.sched.OnTaskSucceeded(ctx, done))

	got := <-sub.C
	assert.Equal(t, "T-P", got.EntityID)
	assert.ElementsMatch(t, []string{"T-C1", "T-C2"}, got.Payload["source_task_ids"])
}

func TestFailurePropagationFailsDownstream(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	created, err := e.tasks.CreateTask(ctx, models.CreateTaskRequest{TaskID: "T-UP", Title: "upstream"})
	require.NoError(t, err)
	_, err = e.tasks.CreateTask(ctx, models.CreateTaskRequest{TaskID: "T-DOWN", Title: "downstream", DependsOn: []string{"T-UP"}})
	require.NoError(t, err)

	require.NoError(t, e.tasks.Claim(ctx, created, "sb-u", "agent-u", "pod-e2e"))
	require.NoError(t, e.tasks.MarkRunning(ctx, "T-UP"))

	// Non-retryable failure is terminal and cascades.
	require.NoError(t, e.sched.OnTaskFailed(ctx, "T-UP", "compile error", false))

	down, err := e.tasks.GetTask(ctx, "T-DOWN")
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, down.Status)
	assert.Equal(t, "upstream_failed", down.FailureReason)
}
