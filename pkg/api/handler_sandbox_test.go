package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/specdoc"
	"github.com/helmsman-ai/helmsman/pkg/models"
)

func TestAppendEventAccepted(t *testing.T) {
	f := newFixture()

	report := models.SandboxEventReport{
		ID:        "evt-1",
		SandboxID: "sbx-1",
		EventType: models.EventTypeAgentText,
		EventData: map[string]interface{}{"text": "hello"},
		Source:    models.EventSourceAgent,
		Timestamp: time.Now(),
	}
	rec := f.do(t, http.MethodPost, "/api/v1/sandbox/events", report)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, f.events.reports, 1)
	assert.Equal(t, "evt-1", f.events.reports[0].ID)
}

func TestAppendEventRejectsMalformedBody(t *testing.T) {
	f := newFixture()
	rec := f.do(t, http.MethodPost, "/api/v1/sandbox/events", "not an object")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQueueMessage(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/api/v1/sandbox/sbx-1/messages", models.QueueMessageRequest{
		Type:    models.MessageTypeGuardianNudge,
		Content: "wrap up",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, f.messages.queued, 1)
	assert.Equal(t, models.MessageTypeGuardianNudge, f.messages.queued[0].Type)
}

func TestPollMessagesAcksSuppliedCursor(t *testing.T) {
	f := newFixture()
	f.messages.responses = []models.MessagePollResponse{
		{Messages: []models.InjectedMessage{{ID: "m1", Cursor: 8}}, NextCursor: 8},
	}

	rec := f.do(t, http.MethodGet, "/api/v1/sandbox/sbx-1/messages?cursor=7", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Cursor 7 means everything up to 7 was delivered; it is acked before
	// new messages are fetched.
	assert.Equal(t, []int64{7}, f.messages.acked)

	var resp models.MessagePollResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, int64(8), resp.NextCursor)
}

func TestPollMessagesZeroCursorSkipsAck(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/api/v1/sandbox/sbx-1/messages?cursor=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, f.messages.acked)
	assert.Equal(t, 1, f.messages.polls, "wait=0 returns after a single poll")
}

func TestPollMessagesLongPollWaitsForArrival(t *testing.T) {
	f := newFixture()
	// First poll finds nothing; the second finds a message.
	f.messages.responses = []models.MessagePollResponse{
		{NextCursor: 0},
		{Messages: []models.InjectedMessage{{ID: "m1", Cursor: 1}}, NextCursor: 1},
	}

	rec := f.do(t, http.MethodGet, "/api/v1/sandbox/sbx-1/messages?cursor=0&wait=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MessagePollResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, 2, f.messages.polls)
}

func TestPollMessagesRejectsBadCursor(t *testing.T) {
	f := newFixture()
	rec := f.do(t, http.MethodGet, "/api/v1/sandbox/sbx-1/messages?cursor=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncSummaryCheckpointsCurrentPhase(t *testing.T) {
	f := newFixture()
	f.specs.specs["SPEC-001"] = &ent.SpecDoc{ID: "SPEC-001", CurrentPhase: specdoc.CurrentPhaseDesign}

	rec := f.do(t, http.MethodPost, "/api/v1/sandbox/sync-summary", models.SyncSummary{
		SandboxID: "sbx-1",
		SpecID:    "SPEC-001",
		PhaseData: map[string]interface{}{"artifact": "DESIGN.md"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, f.specs.checkpoints, 1)
	assert.Equal(t, "SPEC-001", f.specs.checkpoints[0].SpecID)
	assert.Equal(t, "design", f.specs.checkpoints[0].Phase)
	assert.Equal(t, "DESIGN.md", f.specs.checkpoints[0].Data["artifact"])
}

func TestSyncSummaryRequiresSpecID(t *testing.T) {
	f := newFixture()
	rec := f.do(t, http.MethodPost, "/api/v1/sandbox/sync-summary", models.SyncSummary{SandboxID: "sbx-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncSummaryUnknownSpec(t *testing.T) {
	f := newFixture()
	rec := f.do(t, http.MethodPost, "/api/v1/sandbox/sync-summary", models.SyncSummary{
		SandboxID: "sbx-1", SpecID: "SPEC-404",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterConversation(t *testing.T) {
	f := newFixture()
	f.tasks.tasks["TSK-001"] = &ent.Task{ID: "TSK-001"}

	rec := f.do(t, http.MethodPost, "/api/v1/conversations/register", models.RegisterConversationRequest{
		TaskID:         "TSK-001",
		SandboxID:      "sbx-1",
		ConversationID: "conv-1",
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, f.tasks.conversations, 1)
	assert.Equal(t, "TSK-001/sbx-1/conv-1", f.tasks.conversations[0])
}

func TestRegisterConversationRequiresAllFields(t *testing.T) {
	f := newFixture()
	rec := f.do(t, http.MethodPost, "/api/v1/conversations/register", models.RegisterConversationRequest{
		TaskID: "TSK-001",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
