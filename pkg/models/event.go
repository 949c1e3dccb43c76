package models

import "time"

// Event source values for SandboxEventReport.
const (
	EventSourceAgent  = "agent"
	EventSourceWorker = "worker"
	EventSourceSystem = "system"
)

// Sandbox event types emitted by the worker runtime. Dotted namespaces:
// agent.* for artifacts of the coding agent, worker.* for runtime
// bookkeeping.
const (
	EventTypeAgentText            = "agent.text"
	EventTypeAgentThinking        = "agent.thinking"
	EventTypeAgentToolUse         = "agent.tool_use"
	EventTypeAgentToolResult      = "agent.tool_result"
	EventTypeAgentCompleted       = "agent.completed"
	EventTypeAgentFailed          = "agent.failed"
	EventTypeAgentBudgetExhausted = "agent.budget_exhausted"
	EventTypeAgentError           = "agent.error"
	EventTypeHeartbeat            = "heartbeat"
	EventTypeWorkerBoot           = "worker.boot"
	EventTypeWorkerIterationDone  = "worker.iteration_done"
)

// Orchestrator-side lifecycle event types published on the bus.
const (
	EventTypeTaskStatus    = "task.status"
	EventTypeAgentStatus   = "agent.status"
	EventTypeMergeRequired = "merge_required"
	EventTypeMergeDone     = "merge.completed"
	EventTypeCostPressure  = "cost_pressure"
	EventTypeSpecPhase     = "spec.phase"
)

// SandboxEventReport is the body of POST /sandbox/events. Idempotent by ID:
// replaying the same id never creates a duplicate row.
type SandboxEventReport struct {
	ID        string                 `json:"id"`
	SandboxID string                 `json:"sandbox_id"`
	EventType string                 `json:"event_type"`
	EventData map[string]interface{} `json:"event_data,omitempty"`
	Source    string                 `json:"source"`
	SpecID    string                 `json:"spec_id,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// SyncSummary is the final phase_data upload at the end of a spec run
// (POST /sandbox/sync-summary).
type SyncSummary struct {
	SandboxID    string                 `json:"sandbox_id"`
	SpecID       string                 `json:"spec_id"`
	PhaseData    map[string]interface{} `json:"phase_data"`
	TotalCostUSD float64                `json:"total_cost_usd"`
	SessionID    string                 `json:"session_id,omitempty"`
}
