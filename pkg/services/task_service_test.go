package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/pkg/models"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

func TestTaskService_ClaimLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, models.CreateTaskRequest{
		TaskID: "TSK-100",
		Title:  "implement parser",
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, created.Status)

	require.NoError(t, service.Claim(ctx, created, "sb-1", "agent-1", "pod-1"))

	t.Run("losing claimant gets a stale write", func(t *testing.T) {
		// Same snapshot, same version: the row moved on already.
		err := service.Claim(ctx, created, "sb-2", "agent-2", "pod-1")
		assert.ErrorIs(t, err, ErrStaleWrite)
	})

	got, err := service.GetTask(ctx, "TSK-100")
	require.NoError(t, err)
	assert.Equal(t, task.StatusAssigned, got.Status)
	require.NotNil(t, got.SandboxID)
	assert.Equal(t, "sb-1", *got.SandboxID)
	require.NotNil(t, got.AssignedAgentID)
	assert.Equal(t, "agent-1", *got.AssignedAgentID)
	require.NotNil(t, got.ClaimedByPod)
	assert.Equal(t, "pod-1", *got.ClaimedByPod)

	require.NoError(t, service.MarkRunning(ctx, "TSK-100"))
	require.NoError(t, service.MarkSucceeded(ctx, "TSK-100"))

	t.Run("claiming a non-pending task is invalid", func(t *testing.T) {
		done, err := service.GetTask(ctx, "TSK-100")
		require.NoError(t, err)
		err = service.Claim(ctx, done, "sb-3", "agent-3", "pod-1")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestTaskService_RecordFailureRetryLadder(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, models.CreateTaskRequest{
		TaskID:     "TSK-RETRY",
		Title:      "flaky task",
		MaxRetries: 2,
	})
	require.NoError(t, err)

	claimAndRun := func() {
		t.Helper()
		pending, err := service.GetTask(ctx, created.ID)
		require.NoError(t, err)
		require.NoError(t, service.Claim(ctx, pending, "sb-r", "agent-r", "pod-1"))
		require.NoError(t, service.MarkRunning(ctx, created.ID))
	}

	// Two retryable failures go back to pending with the sandbox cleared.
	for want := 1; want <= 2; want++ {
		claimAndRun()
		disp, err := service.RecordFailure(ctx, created.ID, "sandbox crashed", true)
		require.NoError(t, err)
		assert.False(t, disp.Terminal)
		assert.Equal(t, want, disp.RetryCount)

		got, err := service.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, got.Status)
		assert.Empty(t, got.SandboxID)
	}

	// The third failure exhausts max_retries and is terminal.
	claimAndRun()
	disp, err := service.RecordFailure(ctx, created.ID, "sandbox crashed", true)
	require.NoError(t, err)
	assert.True(t, disp.Terminal)
	assert.Equal(t, 3, disp.RetryCount)

	got, err := service.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
	assert.Equal(t, "sandbox crashed", got.FailureReason)

	// Recording against a terminal task is a no-op.
	disp, err = service.RecordFailure(ctx, created.ID, "late report", true)
	require.NoError(t, err)
	assert.True(t, disp.Terminal)
}

func TestTaskService_NonRetryableFailureIsTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, models.CreateTaskRequest{
		TaskID:     "TSK-FATAL",
		Title:      "doomed task",
		MaxRetries: 5,
	})
	require.NoError(t, err)
	require.NoError(t, service.Claim(ctx, created, "sb-f", "agent-f", "pod-1"))

	disp, err := service.RecordFailure(ctx, created.ID, "invalid task definition", false)
	require.NoError(t, err)
	assert.True(t, disp.Terminal)

	got, err := service.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
}

func TestTaskService_FailDownstreamTransitive(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	// A <- B <- C, plus D depending on A directly and E independent.
	mk := func(id string, deps ...string) {
		t.Helper()
		_, err := service.CreateTask(ctx, models.CreateTaskRequest{
			TaskID:    id,
			Title:     id,
			DependsOn: deps,
		})
		require.NoError(t, err)
	}
	mk("TSK-A")
	mk("TSK-B", "TSK-A")
	mk("TSK-C", "TSK-B")
	mk("TSK-D", "TSK-A")
	mk("TSK-E")

	failed, err := service.FailDownstream(ctx, "TSK-A")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"TSK-B", "TSK-C", "TSK-D"}, failed)

	for _, id := range []string{"TSK-B", "TSK-C", "TSK-D"} {
		got, err := service.GetTask(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, got.Status)
		assert.Equal(t, "upstream_failed", got.FailureReason)
	}
	untouched, err := service.GetTask(ctx, "TSK-E")
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, untouched.Status)
}

func TestTaskService_OrphanDetection(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, models.CreateTaskRequest{TaskID: "TSK-ORPH", Title: "orphan"})
	require.NoError(t, err)
	require.NoError(t, service.Claim(ctx, created, "sb-o", "agent-o", "pod-1"))
	require.NoError(t, service.TouchHeartbeat(ctx, created.ID))

	orphans, err := service.ListOrphaned(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Empty(t, orphans)

	orphans, err = service.ListOrphaned(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, "TSK-ORPH", orphans[0].ID)
}

func TestTaskService_MarkCanceled(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, models.CreateTaskRequest{TaskID: "TSK-CXL", Title: "cancel me"})
	require.NoError(t, err)

	require.NoError(t, service.MarkCanceled(ctx, created.ID, "scope cut"))
	got, err := service.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCanceled, got.Status)
	assert.Equal(t, "scope cut", got.FailureReason)

	// Canceling a terminal task is idempotent.
	require.NoError(t, service.MarkCanceled(ctx, created.ID, "again"))
	got, err = service.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "scope cut", got.FailureReason)
}
