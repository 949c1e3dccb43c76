package worker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// heartbeatServer records every heartbeat POSTed to the callback endpoint.
type heartbeatServer struct {
	mu       sync.Mutex
	received []models.Heartbeat
}

func (s *heartbeatServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var hb models.Heartbeat
		if err := json.NewDecoder(r.Body).Decode(&hb); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.received = append(s.received, hb)
		s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.HeartbeatAck{
			AgentID:        hb.AgentID,
			SequenceNumber: hb.SequenceNumber,
			Received:       true,
		})
	}
}

func (s *heartbeatServer) beats() []models.Heartbeat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Heartbeat(nil), s.received...)
}

func newTestEmitter(t *testing.T, interval time.Duration) (*HeartbeatEmitter, *heartbeatServer) {
	t.Helper()
	server := &heartbeatServer{}
	srv := httptest.NewServer(server.handler())
	t.Cleanup(srv.Close)

	client := NewCallbackClient(srv.URL, "key", 5*time.Second)
	return NewHeartbeatEmitter(client, "agent-1", interval, func() int { return 2 }), server
}

func TestEmitterStopSendsFinalBeat(t *testing.T) {
	// Interval far beyond the test's lifetime: the only heartbeat that can
	// arrive is the one Stop flushes.
	emitter, server := newTestEmitter(t, time.Hour)

	emitter.Start(context.Background())
	emitter.Stop()

	beats := server.beats()
	require.Len(t, beats, 1)
	assert.Equal(t, "agent-1", beats[0].AgentID)
	assert.Equal(t, int64(1), beats[0].SequenceNumber)
	assert.True(t, beats[0].VerifyChecksum())

	// Stop is idempotent.
	emitter.Stop()
	assert.Len(t, server.beats(), 1)
}

func TestEmitterBuildsVitals(t *testing.T) {
	emitter, _ := newTestEmitter(t, time.Hour)
	emitter.SetTask("TSK-001")
	emitter.SetPhase("build")
	emitter.ObserveTurn(1200*time.Millisecond, false)
	emitter.ObserveTurn(800*time.Millisecond, true)

	hb := emitter.buildHeartbeat()
	assert.Equal(t, int64(1), hb.SequenceNumber)
	assert.Equal(t, "TSK-001", hb.CurrentTaskID)
	assert.Equal(t, "build", hb.Metrics.Phase)
	assert.Equal(t, float64(800), hb.Metrics.LatencyMS)
	assert.InDelta(t, 0.5, hb.Metrics.ErrorRate, 1e-9)
	assert.Equal(t, 2, hb.Metrics.QueueDepth)
	assert.Equal(t, 2, hb.Metrics.TurnsActive)

	// Sequence numbers are strictly monotone across builds.
	hb = emitter.buildHeartbeat()
	assert.Equal(t, int64(2), hb.SequenceNumber)
}
