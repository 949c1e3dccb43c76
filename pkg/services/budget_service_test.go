package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent/budget"
	"github.com/helmsman-ai/helmsman/pkg/models"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

func TestBudgetService_ReserveSettle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBudgetService(client.Client)
	taskSvc := NewTaskService(client.Client)
	ctx := context.Background()

	taskID := uuid.New().String()
	_, err := taskSvc.CreateTask(ctx, models.CreateTaskRequest{TaskID: taskID, Title: "billed task"})
	require.NoError(t, err)

	scope := BudgetScope{Type: budget.ScopeTypeTask, ID: taskID}
	_, err = service.CreateBudget(ctx, scope, 1.00, 0.8)
	require.NoError(t, err)

	t.Run("reserve holds against remaining", func(t *testing.T) {
		res, err := service.Reserve(ctx, scope, 0.40)
		require.NoError(t, err)
		require.NotEmpty(t, res.BudgetID)

		remaining, limited, err := service.Remaining(ctx, scope)
		require.NoError(t, err)
		assert.True(t, limited)
		assert.InDelta(t, 0.60, remaining, 1e-9)

		// Settle at a lower actual cost refunds the difference.
		_, err = service.Settle(ctx, res, CostUsage{
			TaskID:         taskID,
			AgentID:        "agent-1",
			Provider:       "anthropic",
			Model:          "large",
			PromptTokens:   1200,
			PromptCost:     0.20,
			CompletionCost: 0.05,
		})
		require.NoError(t, err)

		b, err := service.GetBudget(ctx, scope)
		require.NoError(t, err)
		assert.InDelta(t, 0.25, b.SpentUsd, 1e-9)
		assert.InDelta(t, 0.0, b.ReservedUsd, 1e-9)
	})

	t.Run("reservation past the limit is rejected before the call", func(t *testing.T) {
		// 0.25 already spent; two holds of 0.40 fit, a third does not.
		res1, err := service.Reserve(ctx, scope, 0.40)
		require.NoError(t, err)
		_, err = service.Reserve(ctx, scope, 0.40)
		require.ErrorIs(t, err, ErrBudgetExhausted)

		// Releasing the first hold without spending frees the headroom again.
		require.NoError(t, service.Release(ctx, res1))
		res2, err := service.Reserve(ctx, scope, 0.40)
		require.NoError(t, err)
		require.NoError(t, service.Release(ctx, res2))
	})

	t.Run("spent plus reserved never exceeds limit", func(t *testing.T) {
		b, err := service.GetBudget(ctx, scope)
		require.NoError(t, err)
		assert.LessOrEqual(t, b.SpentUsd+b.ReservedUsd, b.LimitUsd)
	})

	t.Run("scope without a budget row is unlimited", func(t *testing.T) {
		free := BudgetScope{Type: budget.ScopeTypeAgent, ID: uuid.New().String()}
		res, err := service.Reserve(ctx, free, 100.0)
		require.NoError(t, err)
		assert.Empty(t, res.BudgetID)

		_, limited, err := service.Remaining(ctx, free)
		require.NoError(t, err)
		assert.False(t, limited)
	})
}

func TestBudgetService_AlertThreshold(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBudgetService(client.Client)
	taskSvc := NewTaskService(client.Client)
	ctx := context.Background()

	taskID := uuid.New().String()
	_, err := taskSvc.CreateTask(ctx, models.CreateTaskRequest{TaskID: taskID, Title: "alerting task"})
	require.NoError(t, err)

	scope := BudgetScope{Type: budget.ScopeTypeTask, ID: taskID}
	_, err = service.CreateBudget(ctx, scope, 1.00, 0.8)
	require.NoError(t, err)

	crossed, err := service.OverAlertThreshold(ctx)
	require.NoError(t, err)
	assert.Empty(t, crossed)

	res, err := service.Reserve(ctx, scope, 0.85)
	require.NoError(t, err)
	_, err = service.Settle(ctx, res, CostUsage{TaskID: taskID, PromptCost: 0.85})
	require.NoError(t, err)

	crossed, err = service.OverAlertThreshold(ctx)
	require.NoError(t, err)
	require.Len(t, crossed, 1)
	assert.Equal(t, taskID, crossed[0].ScopeID)

	// Already alerted budgets are not reported twice.
	crossed, err = service.OverAlertThreshold(ctx)
	require.NoError(t, err)
	assert.Empty(t, crossed)
}

func TestBudgetService_SpentWithinReconciliation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBudgetService(client.Client)
	taskSvc := NewTaskService(client.Client)
	ctx := context.Background()

	taskID := uuid.New().String()
	_, err := taskSvc.CreateTask(ctx, models.CreateTaskRequest{TaskID: taskID, Title: "reconciled task"})
	require.NoError(t, err)

	for _, cost := range []float64{0.10, 0.25, 0.05} {
		_, err := service.Settle(ctx, nil, CostUsage{TaskID: taskID, PromptCost: cost})
		require.NoError(t, err)
	}

	total, err := service.SpentWithin(ctx, taskID, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.InDelta(t, 0.40, total, 1e-9)

	outside, err := service.SpentWithin(ctx, taskID, time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, outside)
}

func TestBudgetService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBudgetService(client.Client)
	ctx := context.Background()

	_, err := service.CreateBudget(ctx, BudgetScope{Type: budget.ScopeTypeProject, ID: "p1"}, 0, 0)
	assert.True(t, IsValidationError(err))

	_, err = service.Reserve(ctx, BudgetScope{Type: budget.ScopeTypeProject, ID: "p1"}, -1)
	assert.True(t, IsValidationError(err))

	_, err = service.Settle(ctx, nil, CostUsage{})
	assert.True(t, IsValidationError(err))

	scope := BudgetScope{Type: budget.ScopeTypeAccount, ID: "acct-1"}
	_, err = service.CreateBudget(ctx, scope, 5.0, 0)
	require.NoError(t, err)
	_, err = service.CreateBudget(ctx, scope, 5.0, 0)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}
