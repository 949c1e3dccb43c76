package heartbeat

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/agent"
	"github.com/helmsman-ai/helmsman/pkg/lifecycle"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/services"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

// interventionRecorder captures guardian requests without a real guardian.
type interventionRecorder struct {
	requests []string
}

func (r *interventionRecorder) RequestIntervention(_ context.Context, agentID, _ string, severity int) error {
	r.requests = append(r.requests, fmt.Sprintf("%s:%d", agentID, severity))
	return nil
}

type engineFixture struct {
	client    *ent.Client
	engine    *Engine
	agents    *services.AgentService
	baselines *services.BaselineService
	guardian  *interventionRecorder
}

func newEngineFixture(t *testing.T, cfg EscalationConfig) *engineFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	f := &engineFixture{
		client:    client.Client,
		agents:    services.NewAgentService(client.Client),
		baselines: services.NewBaselineService(client.Client),
		guardian:  &interventionRecorder{},
	}
	f.engine = NewEngine(f.agents, f.baselines, f.guardian, cfg)
	return f
}

// runningAgent registers an agent and walks it to RUNNING.
func (f *engineFixture) runningAgent(t *testing.T, id, agentType string) {
	t.Helper()
	ctx := context.Background()
	_, err := f.agents.Register(ctx, models.RegisterAgentRequest{AgentID: id, AgentType: agentType})
	require.NoError(t, err)
	_, err = f.agents.Transition(ctx, id, lifecycle.StatusIdle, nil)
	require.NoError(t, err)
	_, err = f.agents.Transition(ctx, id, lifecycle.StatusRunning, nil)
	require.NoError(t, err)
}

func signedHeartbeat(t *testing.T, agentID string, seq int64, metrics models.HeartbeatMetrics) models.Heartbeat {
	t.Helper()
	hb := models.Heartbeat{
		AgentID:        agentID,
		SequenceNumber: seq,
		Status:         "RUNNING",
		Metrics:        metrics,
		Timestamp:      time.Now().UTC(),
	}
	require.NoError(t, hb.Sign())
	return hb
}

func TestEngineRejectsCorruptHeartbeat(t *testing.T) {
	f := newEngineFixture(t, DefaultEscalationConfig())
	f.runningAgent(t, "ag-corrupt", "coder")
	ctx := context.Background()

	hb := signedHeartbeat(t, "ag-corrupt", 1, models.HeartbeatMetrics{LatencyMS: 100})
	hb.Checksum = "deadbeef"

	ack, err := f.engine.Process(ctx, hb)
	require.Error(t, err)
	assert.False(t, ack.Received)
	assert.Contains(t, ack.Message, "checksum")

	// Counted and dropped: the sequence never advances.
	a, err := f.agents.GetAgent(ctx, "ag-corrupt")
	require.NoError(t, err)
	assert.Equal(t, 1, a.CorruptHeartbeats)
	assert.Equal(t, int64(0), a.SequenceNumber)
}

func TestEngineDiscardsReplays(t *testing.T) {
	f := newEngineFixture(t, DefaultEscalationConfig())
	f.runningAgent(t, "ag-replay", "coder")
	ctx := context.Background()

	ack, err := f.engine.Process(ctx, signedHeartbeat(t, "ag-replay", 3, models.HeartbeatMetrics{}))
	require.NoError(t, err)
	assert.True(t, ack.Received)

	// Same sequence again: acknowledged but not applied.
	replay, err := f.engine.Process(ctx, signedHeartbeat(t, "ag-replay", 3, models.HeartbeatMetrics{}))
	require.NoError(t, err)
	assert.True(t, replay.Received)
	assert.Equal(t, "replay discarded", replay.Message)

	// An older sequence is also a replay.
	older, err := f.engine.Process(ctx, signedHeartbeat(t, "ag-replay", 1, models.HeartbeatMetrics{}))
	require.NoError(t, err)
	assert.Equal(t, "replay discarded", older.Message)

	a, err := f.agents.GetAgent(ctx, "ag-replay")
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.SequenceNumber)
}

func TestEngineGapAccountingClimbsLadder(t *testing.T) {
	f := newEngineFixture(t, DefaultEscalationConfig())
	f.runningAgent(t, "ag-gap", "coder")
	ctx := context.Background()

	_, err := f.engine.Process(ctx, signedHeartbeat(t, "ag-gap", 1, models.HeartbeatMetrics{}))
	require.NoError(t, err)

	// Sequence jumps 1 → 4: two heartbeats never arrived.
	ack, err := f.engine.Process(ctx, signedHeartbeat(t, "ag-gap", 4, models.HeartbeatMetrics{}))
	require.NoError(t, err)
	assert.Contains(t, ack.Message, "DEGRADED")

	a, err := f.agents.GetAgent(ctx, "ag-gap")
	require.NoError(t, err)
	assert.Equal(t, agent.StatusDEGRADED, a.Status)
	assert.Equal(t, 2, a.ConsecutiveMissedHeartbeats)

	// The next contiguous heartbeat resets the counter.
	_, err = f.engine.Process(ctx, signedHeartbeat(t, "ag-gap", 5, models.HeartbeatMetrics{}))
	require.NoError(t, err)
	a, err = f.agents.GetAgent(ctx, "ag-gap")
	require.NoError(t, err)
	assert.Equal(t, 0, a.ConsecutiveMissedHeartbeats)
}

func TestEngineGuardianAndFailThresholds(t *testing.T) {
	f := newEngineFixture(t, DefaultEscalationConfig())
	f.runningAgent(t, "ag-sick", "coder")
	ctx := context.Background()

	_, err := f.engine.Process(ctx, signedHeartbeat(t, "ag-sick", 1, models.HeartbeatMetrics{}))
	require.NoError(t, err)

	// Gap of 4: guardian intervention, no status change yet.
	ack, err := f.engine.Process(ctx, signedHeartbeat(t, "ag-sick", 6, models.HeartbeatMetrics{}))
	require.NoError(t, err)
	assert.Contains(t, ack.Message, "guardian")
	require.Len(t, f.guardian.requests, 1)
	assert.Equal(t, "ag-sick:4", f.guardian.requests[0])

	// Another gap pushes the consecutive count past the fail threshold.
	ack, err = f.engine.Process(ctx, signedHeartbeat(t, "ag-sick", 13, models.HeartbeatMetrics{}))
	require.NoError(t, err)
	assert.Contains(t, ack.Message, "FAILED")

	a, err := f.agents.GetAgent(ctx, "ag-sick")
	require.NoError(t, err)
	assert.Equal(t, agent.StatusFAILED, a.Status)
}

func TestEngineAnomalousReadingsEscalate(t *testing.T) {
	f := newEngineFixture(t, DefaultEscalationConfig())
	f.runningAgent(t, "ag-hot", "coder")
	ctx := context.Background()

	require.NoError(t, f.baselines.Put(ctx, "coder", "build", services.BaselineStats{
		LatencyMeanMS:   100,
		LatencyStddevMS: 10,
		ErrorRate:       0,
		CPUMean:         50,
		CPUStddev:       5,
		MemMean:         512,
		MemStddev:       32,
		SampleCount:     10,
	}))

	hot := models.HeartbeatMetrics{
		LatencyMS:  1000,
		ErrorRate:  0.9,
		CPUPercent: 100,
		MemoryMB:   2048,
		QueueDepth: 25,
		Phase:      "build",
	}

	ack, err := f.engine.Process(ctx, signedHeartbeat(t, "ag-hot", 1, hot))
	require.NoError(t, err)
	assert.Contains(t, ack.Message, "warning")

	a, err := f.agents.GetAgent(ctx, "ag-hot")
	require.NoError(t, err)
	assert.Equal(t, 1, a.ConsecutiveAnomalousReadings)
	assert.InDelta(t, 1.0, a.AnomalyScore, 0.05)

	// A second anomalous reading climbs to DEGRADED.
	ack, err = f.engine.Process(ctx, signedHeartbeat(t, "ag-hot", 2, hot))
	require.NoError(t, err)
	assert.Contains(t, ack.Message, "DEGRADED")

	// A reading back at baseline resets the anomalous streak.
	calm := models.HeartbeatMetrics{LatencyMS: 100, CPUPercent: 50, MemoryMB: 512, Phase: "build"}
	_, err = f.engine.Process(ctx, signedHeartbeat(t, "ag-hot", 3, calm))
	require.NoError(t, err)
	a, err = f.agents.GetAgent(ctx, "ag-hot")
	require.NoError(t, err)
	assert.Equal(t, 0, a.ConsecutiveAnomalousReadings)
}

func TestEngineUnknownAgent(t *testing.T) {
	f := newEngineFixture(t, DefaultEscalationConfig())

	ack, err := f.engine.Process(context.Background(),
		signedHeartbeat(t, "ag-ghost", 1, models.HeartbeatMetrics{}))
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.False(t, ack.Received)
	assert.Equal(t, "unknown agent", ack.Message)
}
