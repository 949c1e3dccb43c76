package models

import (
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Heartbeat is the periodic vitals message an agent sends to the
// orchestrator. Sequence numbers are strictly monotone per agent; a
// heartbeat whose sequence is not greater than the last accepted one is a
// replay and is acknowledged but not applied.
type Heartbeat struct {
	AgentID        string           `json:"agent_id"`
	SequenceNumber int64            `json:"sequence_number"`
	Status         string           `json:"status"`
	CurrentTaskID  string           `json:"current_task_id,omitempty"`
	Metrics        HeartbeatMetrics `json:"metrics"`
	Timestamp      time.Time        `json:"timestamp"`
	Checksum       string           `json:"checksum"`
}

// HeartbeatMetrics carries the vitals used for baseline and anomaly scoring.
type HeartbeatMetrics struct {
	LatencyMS   float64 `json:"latency_ms"`
	ErrorRate   float64 `json:"error_rate"`
	CPUPercent  float64 `json:"cpu_percent"`
	MemoryMB    float64 `json:"memory_mb"`
	QueueDepth  int     `json:"queue_depth"`
	TurnsActive int     `json:"turns_active"`
	Phase       string  `json:"phase,omitempty"`
}

// HeartbeatAck is the orchestrator's reply to a heartbeat.
type HeartbeatAck struct {
	AgentID        string    `json:"agent_id"`
	SequenceNumber int64     `json:"sequence_number"`
	Timestamp      time.Time `json:"timestamp"`
	Received       bool      `json:"received"`
	Message        string    `json:"message,omitempty"`
}

// ComputeChecksum returns the hex blake2b-256 digest of the heartbeat's
// payload fields. Both the worker (when sending) and the engine (when
// verifying) derive the digest from the same canonical encoding.
func (h Heartbeat) ComputeChecksum() (string, error) {
	canonical := struct {
		AgentID        string           `json:"agent_id"`
		SequenceNumber int64            `json:"sequence_number"`
		Status         string           `json:"status"`
		CurrentTaskID  string           `json:"current_task_id,omitempty"`
		Metrics        HeartbeatMetrics `json:"metrics"`
	}{h.AgentID, h.SequenceNumber, h.Status, h.CurrentTaskID, h.Metrics}

	data, err := json.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("failed to marshal heartbeat for checksum: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Sign fills in the Checksum field.
func (h *Heartbeat) Sign() error {
	sum, err := h.ComputeChecksum()
	if err != nil {
		return err
	}
	h.Checksum = sum
	return nil
}

// VerifyChecksum reports whether the carried checksum matches the payload.
func (h Heartbeat) VerifyChecksum() bool {
	expected, err := h.ComputeChecksum()
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(h.Checksum)) == 1
}
