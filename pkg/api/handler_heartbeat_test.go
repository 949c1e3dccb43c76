package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

func TestHeartbeatAcked(t *testing.T) {
	f := newFixture()

	hb := models.Heartbeat{
		AgentID:        "ag-1",
		SequenceNumber: 42,
		Status:         "RUNNING",
		Metrics:        models.HeartbeatMetrics{LatencyMS: 120, CPUPercent: 35},
		Timestamp:      time.Now(),
	}
	require.NoError(t, hb.Sign())

	rec := f.do(t, http.MethodPost, "/api/v1/heartbeats", hb)
	require.Equal(t, http.StatusOK, rec.Code)

	var ack models.HeartbeatAck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.Equal(t, "ag-1", ack.AgentID)
	assert.Equal(t, int64(42), ack.SequenceNumber)
	assert.True(t, ack.Received)

	require.Len(t, f.heartbeats.received, 1)
	assert.Equal(t, int64(42), f.heartbeats.received[0].SequenceNumber)
}

func TestHeartbeatRequiresAgentID(t *testing.T) {
	f := newFixture()
	rec := f.do(t, http.MethodPost, "/api/v1/heartbeats", models.Heartbeat{SequenceNumber: 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.heartbeats.received)
}
