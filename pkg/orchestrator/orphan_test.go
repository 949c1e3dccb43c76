package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/services"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

func TestCleanupStartupOrphansRequeuesOwnPodOnly(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := services.NewTaskService(client.Client)
	ctx := context.Background()

	claim := func(id, pod string) {
		created, err := tasks.CreateTask(ctx, models.CreateTaskRequest{TaskID: id, Title: "run " + id})
		require.NoError(t, err)
		require.NoError(t, tasks.Claim(ctx, created, "sb-"+id, "agent-"+id, pod))
	}
	claim("T-mine", "pod-a")
	claim("T-theirs", "pod-b")

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, tasks, "pod-a"))

	// The crashed pod's task is back in the queue with its binding cleared.
	mine, err := tasks.GetTask(ctx, "T-mine")
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, mine.Status)
	assert.Nil(t, mine.SandboxID)
	assert.Nil(t, mine.ClaimedByPod)
	assert.Equal(t, 1, mine.RetryCount)

	// The other pod's in-flight task is untouched.
	theirs, err := tasks.GetTask(ctx, "T-theirs")
	require.NoError(t, err)
	assert.Equal(t, task.StatusAssigned, theirs.Status)
	require.NotNil(t, theirs.ClaimedByPod)
	assert.Equal(t, "pod-b", *theirs.ClaimedByPod)
}
