package models

import "time"

// CreateTicketRequest creates a ticket (human-authored or spec-generated).
type CreateTicketRequest struct {
	TicketID    string     `json:"ticket_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    int        `json:"priority"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Owner       string     `json:"owner,omitempty"`
	ProjectID   string     `json:"project_id,omitempty"`
	BlockedBy   []string   `json:"blocked_by,omitempty"`
	Blocks      []string   `json:"blocks,omitempty"`
	SpecID      string     `json:"spec_id,omitempty"`
	Phase       string     `json:"phase,omitempty"`
}

// CreateTaskRequest creates a task under a ticket.
type CreateTaskRequest struct {
	TaskID               string                 `json:"task_id"`
	TicketID             string                 `json:"ticket_id,omitempty"`
	Title                string                 `json:"title"`
	Description          string                 `json:"description,omitempty"`
	PriorityBase         int                    `json:"priority_base"`
	Deadline             *time.Time             `json:"deadline,omitempty"`
	MaxRetries           int                    `json:"max_retries,omitempty"`
	TimeoutSeconds       int                    `json:"timeout_seconds,omitempty"`
	RequiredCapabilities []string               `json:"required_capabilities,omitempty"`
	DependsOn            []string               `json:"depends_on,omitempty"`
	ParentTaskID         string                 `json:"parent_task_id,omitempty"`
	OwnedFiles           []string               `json:"owned_files,omitempty"`
	SynthesisContext     map[string]interface{} `json:"synthesis_context,omitempty"`
	ExecutionConfig      map[string]interface{} `json:"execution_config,omitempty"`
	PersistenceDir       string                 `json:"persistence_dir,omitempty"`
}

// CreateSpecRequest creates a spec in the explore phase.
type CreateSpecRequest struct {
	SpecID      string `json:"spec_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Owner       string `json:"owner,omitempty"`
}

// RegisterAgentRequest registers an agent in SPAWNING.
type RegisterAgentRequest struct {
	AgentID         string                 `json:"agent_id"`
	Name            string                 `json:"name"`
	AgentType       string                 `json:"agent_type"`
	Capabilities    []string               `json:"capabilities,omitempty"`
	Capacity        int                    `json:"capacity,omitempty"`
	SandboxID       string                 `json:"sandbox_id,omitempty"`
	CryptoPublicKey string                 `json:"crypto_public_key,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
}

// RegisterConversationRequest binds (task_id, sandbox_id, conversation_id)
// so injected messages and events can be correlated.
type RegisterConversationRequest struct {
	TaskID         string `json:"task_id"`
	SandboxID      string `json:"sandbox_id"`
	ConversationID string `json:"conversation_id"`
}

// ResourceEnvelope is the resource request handed to the sandbox provider
// and recorded as a SandboxAllocation.
type ResourceEnvelope struct {
	CPUCores float64 `json:"cpu_cores"`
	MemoryMB int     `json:"memory_mb"`
	DiskMB   int     `json:"disk_mb"`
}
