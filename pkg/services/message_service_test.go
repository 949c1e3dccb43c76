package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/pkg/models"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

func TestMessageService_QueuePollAck(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()

	const sandboxID = "sb-msgs"

	first, err := service.Queue(ctx, sandboxID, models.QueueMessageRequest{
		Type:    models.MessageTypeUser,
		Content: "please also update the README",
	})
	require.NoError(t, err)
	second, err := service.Queue(ctx, sandboxID, models.QueueMessageRequest{
		Type:    models.MessageTypeGuardianNudge,
		Content: "no progress detected, summarize your plan",
	})
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)

	t.Run("poll returns messages after the cursor oldest first", func(t *testing.T) {
		resp, err := service.Poll(ctx, sandboxID, 0, 50)
		require.NoError(t, err)
		require.Len(t, resp.Messages, 2)
		assert.Equal(t, models.MessageTypeUser, resp.Messages[0].Type)
		assert.Equal(t, models.MessageTypeGuardianNudge, resp.Messages[1].Type)
		assert.Equal(t, second.ID, resp.NextCursor)
	})

	t.Run("unacked messages are redelivered on the same cursor", func(t *testing.T) {
		resp, err := service.Poll(ctx, sandboxID, 0, 50)
		require.NoError(t, err)
		assert.Len(t, resp.Messages, 2)
	})

	t.Run("ack advances the cursor past delivered messages", func(t *testing.T) {
		require.NoError(t, service.Ack(ctx, sandboxID, first.ID))

		pending, err := service.PendingCount(ctx, sandboxID)
		require.NoError(t, err)
		assert.Equal(t, 1, pending)

		resp, err := service.Poll(ctx, sandboxID, first.ID, 50)
		require.NoError(t, err)
		require.Len(t, resp.Messages, 1)
		assert.Equal(t, models.MessageTypeGuardianNudge, resp.Messages[0].Type)
	})

	t.Run("empty poll keeps the caller's cursor", func(t *testing.T) {
		resp, err := service.Poll(ctx, sandboxID, second.ID, 50)
		require.NoError(t, err)
		assert.Empty(t, resp.Messages)
		assert.Equal(t, second.ID, resp.NextCursor)
	})
}

func TestMessageService_InterruptCarriesCancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()

	_, err := service.Queue(ctx, "sb-int", models.QueueMessageRequest{
		Type:    models.MessageTypeInterrupt,
		Content: "stop: requirements changed",
		Cancel:  true,
	})
	require.NoError(t, err)

	resp, err := service.Poll(ctx, "sb-int", 0, 10)
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)
	assert.True(t, resp.Messages[0].Cancel)
}

func TestMessageService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()

	_, err := service.Queue(ctx, "", models.QueueMessageRequest{Type: models.MessageTypeUser})
	assert.True(t, IsValidationError(err))

	_, err = service.Queue(ctx, "sb", models.QueueMessageRequest{Type: "carrier_pigeon"})
	assert.True(t, IsValidationError(err))
}
