package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeartbeat_ChecksumRoundTrip(t *testing.T) {
	hb := Heartbeat{
		AgentID:        "agent-1",
		SequenceNumber: 42,
		Status:         "RUNNING",
		CurrentTaskID:  "task-7",
		Metrics: HeartbeatMetrics{
			LatencyMS:  120.5,
			ErrorRate:  0.01,
			CPUPercent: 55,
			MemoryMB:   512,
			QueueDepth: 2,
			Phase:      "design",
		},
		Timestamp: time.Now(),
	}

	require.NoError(t, hb.Sign())
	assert.NotEmpty(t, hb.Checksum)
	assert.True(t, hb.VerifyChecksum())
}

func TestHeartbeat_ChecksumDetectsTampering(t *testing.T) {
	hb := Heartbeat{AgentID: "agent-1", SequenceNumber: 1, Status: "IDLE"}
	require.NoError(t, hb.Sign())

	hb.SequenceNumber = 2
	assert.False(t, hb.VerifyChecksum(), "sequence tampering must invalidate the checksum")

	require.NoError(t, hb.Sign())
	hb.Metrics.ErrorRate = 0.9
	assert.False(t, hb.VerifyChecksum(), "metrics tampering must invalidate the checksum")
}

func TestHeartbeat_ChecksumIgnoresTimestamp(t *testing.T) {
	// The timestamp is assigned at send time and excluded from the canonical
	// encoding, so re-stamping a signed heartbeat does not invalidate it.
	hb := Heartbeat{AgentID: "agent-1", SequenceNumber: 3, Status: "IDLE"}
	require.NoError(t, hb.Sign())
	hb.Timestamp = hb.Timestamp.Add(time.Hour)
	assert.True(t, hb.VerifyChecksum())
}

func TestHeartbeat_EmptyChecksumFailsVerify(t *testing.T) {
	hb := Heartbeat{AgentID: "agent-1", SequenceNumber: 1}
	assert.False(t, hb.VerifyChecksum())
}
