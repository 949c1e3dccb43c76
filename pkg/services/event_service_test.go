package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/pkg/bus"
	"github.com/helmsman-ai/helmsman/pkg/models"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

func TestEventService_AppendIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	report := models.SandboxEventReport{
		ID:        uuid.New().String(),
		SandboxID: "sb-1",
		EventType: "llm.response",
		EventData: map[string]interface{}{"tokens": float64(120)},
	}

	first, err := service.Append(ctx, report)
	require.NoError(t, err)
	assert.Equal(t, "sb-1", first.SandboxID)
	assert.Equal(t, "worker", string(first.Source))

	// Replayed delivery of the same report returns the original row.
	second, err := service.Append(ctx, report)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	events, err := service.Catchup(ctx, "sb-1", 0, 10)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestEventService_AppendValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	_, err := service.Append(ctx, models.SandboxEventReport{SandboxID: "sb", EventType: "x"})
	assert.True(t, IsValidationError(err))
	_, err = service.Append(ctx, models.SandboxEventReport{ID: "e1", EventType: "x"})
	assert.True(t, IsValidationError(err))
	_, err = service.Append(ctx, models.SandboxEventReport{ID: "e1", SandboxID: "sb"})
	assert.True(t, IsValidationError(err))
}

func TestEventService_CatchupCursor(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := service.Append(ctx, models.SandboxEventReport{
			ID:        fmt.Sprintf("evt-%d", i),
			SandboxID: "sb-cursor",
			EventType: "tool.call",
		})
		require.NoError(t, err)
	}

	all, err := service.Catchup(ctx, "sb-cursor", 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 5)

	// Resuming from the third row id yields only the remainder, in order.
	rest, err := service.Catchup(ctx, "sb-cursor", all[2].ID, 10)
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, "evt-3", rest[0].EventKey)
	assert.Equal(t, "evt-4", rest[1].EventKey)
}

func TestEventService_PersistBusEnvelopes(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	env := bus.Envelope{
		ID:         uuid.New().String(),
		EventType:  "task.status_changed",
		EntityType: "task",
		EntityID:   "TSK-001",
		Payload:    map[string]interface{}{"status": "running"},
	}
	require.NoError(t, service.Persist(ctx, env))
	// Duplicate publish is already durable, not an error.
	require.NoError(t, service.Persist(ctx, env))

	env2 := env
	env2.ID = uuid.New().String()
	env2.EventType = "task.status_changed"
	env2.Payload = map[string]interface{}{"status": "succeeded"}
	require.NoError(t, service.Persist(ctx, env2))

	// Replay order per entity is append order.
	stream, err := service.ListByEntity(ctx, "task", "TSK-001", 0)
	require.NoError(t, err)
	require.Len(t, stream, 2)
	assert.Equal(t, env.ID, stream[0].EventKey)
	assert.Equal(t, env2.ID, stream[1].EventKey)
	assert.Equal(t, "running", stream[0].EventData["status"])
	assert.Equal(t, "succeeded", stream[1].EventData["status"])
}

func TestEventService_PruneBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.Append(ctx, models.SandboxEventReport{
			ID:        uuid.New().String(),
			SandboxID: "sb-prune",
			EventType: "status",
		})
		require.NoError(t, err)
	}

	// Nothing is older than an hour ago.
	n, err := service.PruneBefore(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = service.PruneBefore(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	events, err := service.Catchup(ctx, "sb-prune", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
