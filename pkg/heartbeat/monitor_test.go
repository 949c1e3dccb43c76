package heartbeat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent/agent"
	"github.com/helmsman-ai/helmsman/pkg/lifecycle"
)

// backdateHeartbeat pretends the agent last reported `ago` in the past.
func (f *engineFixture) backdateHeartbeat(t *testing.T, id string, ago time.Duration) {
	t.Helper()
	err := f.client.Agent.UpdateOneID(id).
		SetLastHeartbeatAt(time.Now().Add(-ago)).
		Exec(context.Background())
	require.NoError(t, err)
}

func (f *engineFixture) agentStatus(t *testing.T, id string) agent.Status {
	t.Helper()
	a, err := f.agents.GetAgent(context.Background(), id)
	require.NoError(t, err)
	return a.Status
}

func TestMonitorSilenceScanEscalates(t *testing.T) {
	f := newEngineFixture(t, DefaultEscalationConfig())
	mon := NewMonitor(f.engine, f.agents, time.Minute, time.Minute)
	ctx := context.Background()

	f.runningAgent(t, "ag-slow", "coder")
	f.backdateHeartbeat(t, "ag-slow", 3*time.Minute)

	f.runningAgent(t, "ag-quiet", "coder")
	f.backdateHeartbeat(t, "ag-quiet", 5*time.Minute+time.Second)

	f.runningAgent(t, "ag-gone", "coder")
	f.backdateHeartbeat(t, "ag-gone", 10*time.Minute)

	f.runningAgent(t, "ag-fresh", "coder")
	f.backdateHeartbeat(t, "ag-fresh", 10*time.Second)

	require.NoError(t, mon.ScanOnce(ctx))

	// Three minutes of silence at a one-minute cadence is three missed beats.
	assert.Equal(t, agent.StatusDEGRADED, f.agentStatus(t, "ag-slow"))

	// Five missed beats asks the guardian but leaves the status alone.
	assert.Equal(t, agent.StatusRUNNING, f.agentStatus(t, "ag-quiet"))
	require.Len(t, f.guardian.requests, 1)
	assert.Equal(t, "ag-quiet:5", f.guardian.requests[0])

	assert.Equal(t, agent.StatusFAILED, f.agentStatus(t, "ag-gone"))
	assert.Equal(t, agent.StatusRUNNING, f.agentStatus(t, "ag-fresh"))

	a, err := f.agents.GetAgent(ctx, "ag-slow")
	require.NoError(t, err)
	assert.Equal(t, 3, a.ConsecutiveMissedHeartbeats)

	// A rescan with no further drift records nothing new.
	require.NoError(t, mon.ScanOnce(ctx))
	assert.Len(t, f.guardian.requests, 1)
	assert.Equal(t, agent.StatusDEGRADED, f.agentStatus(t, "ag-slow"))
}

func TestMonitorSkipsAgentsThatNeverReported(t *testing.T) {
	f := newEngineFixture(t, DefaultEscalationConfig())
	mon := NewMonitor(f.engine, f.agents, time.Minute, time.Minute)
	ctx := context.Background()

	// Registered and idle but no heartbeat yet: there is no gap to measure.
	f.runningAgent(t, "ag-new", "coder")

	require.NoError(t, mon.ScanOnce(ctx))
	assert.Equal(t, agent.StatusRUNNING, f.agentStatus(t, "ag-new"))
	assert.Empty(t, f.guardian.requests)
}

func TestMonitorGraceWindow(t *testing.T) {
	cfg := DefaultEscalationConfig()
	cfg.GraceAfter = 10 * time.Millisecond
	f := newEngineFixture(t, cfg)
	mon := NewMonitor(f.engine, f.agents, time.Minute, time.Minute)
	ctx := context.Background()

	f.runningAgent(t, "ag-dead", "coder")
	_, err := f.agents.Transition(ctx, "ag-dead", lifecycle.StatusFailed, nil)
	require.NoError(t, err)

	// Quarantined but held for post-mortem inspection: never terminated.
	f.runningAgent(t, "ag-keep", "coder")
	_, err = f.agents.Transition(ctx, "ag-keep", lifecycle.StatusQuarantined, nil)
	require.NoError(t, err)
	require.NoError(t, f.client.Agent.UpdateOneID("ag-keep").
		SetKeptAliveForValidation(true).
		Exec(ctx))

	time.Sleep(25 * time.Millisecond)
	require.NoError(t, mon.ScanOnce(ctx))
	assert.Equal(t, agent.StatusQUARANTINED, f.agentStatus(t, "ag-dead"))
	assert.Equal(t, agent.StatusQUARANTINED, f.agentStatus(t, "ag-keep"))

	// Another full grace window of silence ends the quarantine.
	time.Sleep(25 * time.Millisecond)
	require.NoError(t, mon.ScanOnce(ctx))
	assert.Equal(t, agent.StatusTERMINATED, f.agentStatus(t, "ag-dead"))
	assert.Equal(t, agent.StatusQUARANTINED, f.agentStatus(t, "ag-keep"))
}
