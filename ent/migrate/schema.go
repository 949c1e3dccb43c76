// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"SPAWNING", "IDLE", "RUNNING", "DEGRADED", "FAILED", "QUARANTINED", "TERMINATED"}, Default: "SPAWNING"},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "capacity", Type: field.TypeInt, Default: 1},
		{Name: "health_metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "anomaly_score", Type: field.TypeFloat64, Default: 0},
		{Name: "consecutive_anomalous_readings", Type: field.TypeInt, Default: 0},
		{Name: "sequence_number", Type: field.TypeInt64, Default: 0},
		{Name: "consecutive_missed_heartbeats", Type: field.TypeInt, Default: 0},
		{Name: "corrupt_heartbeats", Type: field.TypeInt, Default: 0},
		{Name: "crypto_public_key", Type: field.TypeString, Nullable: true},
		{Name: "current_task_id", Type: field.TypeString, Nullable: true},
		{Name: "sandbox_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "kept_alive_for_validation", Type: field.TypeBool, Default: false},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "registered_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[3]},
			},
			{
				Name:    "agent_agent_type",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[2]},
			},
			{
				Name:    "agent_sandbox_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[14]},
			},
			{
				Name:    "agent_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[3], AgentsColumns[18]},
			},
		},
	}
	// AgentBaselinesColumns holds the columns for the "agent_baselines" table.
	AgentBaselinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "latency_mean_ms", Type: field.TypeFloat64, Default: 0},
		{Name: "latency_stddev_ms", Type: field.TypeFloat64, Default: 0},
		{Name: "error_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "cpu_mean", Type: field.TypeFloat64, Default: 0},
		{Name: "cpu_stddev", Type: field.TypeFloat64, Default: 0},
		{Name: "mem_mean", Type: field.TypeFloat64, Default: 0},
		{Name: "mem_stddev", Type: field.TypeFloat64, Default: 0},
		{Name: "sample_count", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentBaselinesTable holds the schema information for the "agent_baselines" table.
	AgentBaselinesTable = &schema.Table{
		Name:       "agent_baselines",
		Columns:    AgentBaselinesColumns,
		PrimaryKey: []*schema.Column{AgentBaselinesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentbaseline_agent_type_phase",
				Unique:  true,
				Columns: []*schema.Column{AgentBaselinesColumns[1], AgentBaselinesColumns[2]},
			},
		},
	}
	// BudgetsColumns holds the columns for the "budgets" table.
	BudgetsColumns = []*schema.Column{
		{Name: "budget_id", Type: field.TypeString, Unique: true},
		{Name: "scope_type", Type: field.TypeEnum, Enums: []string{"task", "agent", "project", "account"}},
		{Name: "scope_id", Type: field.TypeString},
		{Name: "limit_usd", Type: field.TypeFloat64},
		{Name: "spent_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "reserved_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "period", Type: field.TypeString, Default: "total"},
		{Name: "alert_threshold", Type: field.TypeFloat64, Default: 0.8},
		{Name: "alerted", Type: field.TypeBool, Default: false},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BudgetsTable holds the schema information for the "budgets" table.
	BudgetsTable = &schema.Table{
		Name:       "budgets",
		Columns:    BudgetsColumns,
		PrimaryKey: []*schema.Column{BudgetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "budget_scope_type_scope_id_period",
				Unique:  true,
				Columns: []*schema.Column{BudgetsColumns[1], BudgetsColumns[2], BudgetsColumns[6]},
			},
		},
	}
	// CostRecordsColumns holds the columns for the "cost_records" table.
	CostRecordsColumns = []*schema.Column{
		{Name: "cost_record_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "prompt_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "prompt_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "completion_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "total_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "sandbox_id", Type: field.TypeString, Nullable: true},
		{Name: "billing_account", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// CostRecordsTable holds the schema information for the "cost_records" table.
	CostRecordsTable = &schema.Table{
		Name:       "cost_records",
		Columns:    CostRecordsColumns,
		PrimaryKey: []*schema.Column{CostRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cost_records_tasks_cost_records",
				Columns:    []*schema.Column{CostRecordsColumns[12]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "costrecord_task_id",
				Unique:  false,
				Columns: []*schema.Column{CostRecordsColumns[12]},
			},
			{
				Name:    "costrecord_agent_id",
				Unique:  false,
				Columns: []*schema.Column{CostRecordsColumns[1]},
			},
			{
				Name:    "costrecord_billing_account_created_at",
				Unique:  false,
				Columns: []*schema.Column{CostRecordsColumns[10], CostRecordsColumns[11]},
			},
		},
	}
	// GuardianActionsColumns holds the columns for the "guardian_actions" table.
	GuardianActionsColumns = []*schema.Column{
		{Name: "action_id", Type: field.TypeString, Unique: true},
		{Name: "action_type", Type: field.TypeEnum, Enums: []string{"nudge", "pause_agent", "resize_resources", "restart_sandbox", "terminate_agent"}},
		{Name: "target_agent_id", Type: field.TypeString},
		{Name: "target_task_id", Type: field.TypeString, Nullable: true},
		{Name: "authority_level", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "initiator", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_review", "approved", "executed", "rejected", "timed_out", "reverted"}, Default: "pending_review"},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "executed_at", Type: field.TypeTime, Nullable: true},
		{Name: "reverted_at", Type: field.TypeTime, Nullable: true},
		{Name: "review_deadline", Type: field.TypeTime, Nullable: true},
		{Name: "audit_log", Type: field.TypeJSON, Nullable: true},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GuardianActionsTable holds the schema information for the "guardian_actions" table.
	GuardianActionsTable = &schema.Table{
		Name:       "guardian_actions",
		Columns:    GuardianActionsColumns,
		PrimaryKey: []*schema.Column{GuardianActionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "guardianaction_target_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{GuardianActionsColumns[2], GuardianActionsColumns[14]},
			},
			{
				Name:    "guardianaction_status",
				Unique:  false,
				Columns: []*schema.Column{GuardianActionsColumns[7]},
			},
			{
				Name:    "guardianaction_status_review_deadline",
				Unique:  false,
				Columns: []*schema.Column{GuardianActionsColumns[7], GuardianActionsColumns[11]},
			},
		},
	}
	// MergeAttemptsColumns holds the columns for the "merge_attempts" table.
	MergeAttemptsColumns = []*schema.Column{
		{Name: "merge_attempt_id", Type: field.TypeString, Unique: true},
		{Name: "parent_task_id", Type: field.TypeString},
		{Name: "ticket_id", Type: field.TypeString, Nullable: true},
		{Name: "source_task_ids", Type: field.TypeJSON},
		{Name: "incoming_branches", Type: field.TypeJSON},
		{Name: "target_branch", Type: field.TypeString},
		{Name: "merge_order", Type: field.TypeJSON, Nullable: true},
		{Name: "conflict_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "succeeded", "failed"}, Default: "pending"},
		{Name: "llm_invocations", Type: field.TypeInt, Default: 0},
		{Name: "tokens_used", Type: field.TypeInt64, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "resolution_log", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// MergeAttemptsTable holds the schema information for the "merge_attempts" table.
	MergeAttemptsTable = &schema.Table{
		Name:       "merge_attempts",
		Columns:    MergeAttemptsColumns,
		PrimaryKey: []*schema.Column{MergeAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mergeattempt_parent_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MergeAttemptsColumns[1], MergeAttemptsColumns[14]},
			},
			{
				Name:    "mergeattempt_status",
				Unique:  false,
				Columns: []*schema.Column{MergeAttemptsColumns[8]},
			},
		},
	}
	// SandboxAllocationsColumns holds the columns for the "sandbox_allocations" table.
	SandboxAllocationsColumns = []*schema.Column{
		{Name: "sandbox_id", Type: field.TypeString, Unique: true},
		{Name: "cpu_cores", Type: field.TypeFloat64},
		{Name: "memory_mb", Type: field.TypeInt},
		{Name: "disk_mb", Type: field.TypeInt},
		{Name: "pending_cpu_cores", Type: field.TypeFloat64, Nullable: true},
		{Name: "pending_memory_mb", Type: field.TypeInt, Nullable: true},
		{Name: "pending_disk_mb", Type: field.TypeInt, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SandboxAllocationsTable holds the schema information for the "sandbox_allocations" table.
	SandboxAllocationsTable = &schema.Table{
		Name:       "sandbox_allocations",
		Columns:    SandboxAllocationsColumns,
		PrimaryKey: []*schema.Column{SandboxAllocationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sandboxallocation_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SandboxAllocationsColumns[10]},
			},
		},
	}
	// SandboxEventsColumns holds the columns for the "sandbox_events" table.
	SandboxEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "event_key", Type: field.TypeString, Unique: true},
		{Name: "sandbox_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "event_data", Type: field.TypeJSON, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"agent", "worker", "system"}, Default: "worker"},
		{Name: "entity_type", Type: field.TypeString, Nullable: true},
		{Name: "entity_id", Type: field.TypeString, Nullable: true},
		{Name: "spec_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SandboxEventsTable holds the schema information for the "sandbox_events" table.
	SandboxEventsTable = &schema.Table{
		Name:       "sandbox_events",
		Columns:    SandboxEventsColumns,
		PrimaryKey: []*schema.Column{SandboxEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sandboxevent_sandbox_id_id",
				Unique:  false,
				Columns: []*schema.Column{SandboxEventsColumns[2], SandboxEventsColumns[0]},
			},
			{
				Name:    "sandboxevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{SandboxEventsColumns[3]},
			},
			{
				Name:    "sandboxevent_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{SandboxEventsColumns[6], SandboxEventsColumns[7]},
			},
			{
				Name:    "sandboxevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{SandboxEventsColumns[9]},
			},
		},
	}
	// SandboxMessagesColumns holds the columns for the "sandbox_messages" table.
	SandboxMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "sandbox_id", Type: field.TypeString},
		{Name: "message_type", Type: field.TypeEnum, Enums: []string{"user_message", "interrupt", "guardian_nudge", "system"}},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancel", Type: field.TypeBool, Default: false},
		{Name: "acked", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SandboxMessagesTable holds the schema information for the "sandbox_messages" table.
	SandboxMessagesTable = &schema.Table{
		Name:       "sandbox_messages",
		Columns:    SandboxMessagesColumns,
		PrimaryKey: []*schema.Column{SandboxMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sandboxmessage_sandbox_id_id",
				Unique:  false,
				Columns: []*schema.Column{SandboxMessagesColumns[1], SandboxMessagesColumns[0]},
			},
			{
				Name:    "sandboxmessage_sandbox_id_acked",
				Unique:  false,
				Columns: []*schema.Column{SandboxMessagesColumns[1], SandboxMessagesColumns[5]},
			},
		},
	}
	// SpecDocsColumns holds the columns for the "spec_docs" table.
	SpecDocsColumns = []*schema.Column{
		{Name: "spec_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "current_phase", Type: field.TypeEnum, Enums: []string{"explore", "requirements", "design", "tasks", "sync", "complete"}, Default: "explore"},
		{Name: "phase_data", Type: field.TypeJSON, Nullable: true},
		{Name: "session_transcripts", Type: field.TypeJSON, Nullable: true},
		{Name: "phase_attempts", Type: field.TypeJSON, Nullable: true},
		{Name: "last_checkpoint_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "share_token", Type: field.TypeString, Nullable: true},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "owner", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SpecDocsTable holds the schema information for the "spec_docs" table.
	SpecDocsTable = &schema.Table{
		Name:       "spec_docs",
		Columns:    SpecDocsColumns,
		PrimaryKey: []*schema.Column{SpecDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "specdoc_current_phase",
				Unique:  false,
				Columns: []*schema.Column{SpecDocsColumns[3]},
			},
			{
				Name:    "specdoc_archived",
				Unique:  false,
				Columns: []*schema.Column{SpecDocsColumns[10]},
			},
			{
				Name:    "specdoc_current_phase_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SpecDocsColumns[3], SpecDocsColumns[14]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "assigned", "running", "succeeded", "failed", "canceled"}, Default: "pending"},
		{Name: "priority_base", Type: field.TypeInt, Default: 0},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "deadline", Type: field.TypeTime, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "timeout_seconds", Type: field.TypeInt, Default: 3600},
		{Name: "required_capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "depends_on", Type: field.TypeJSON, Nullable: true},
		{Name: "parent_task_id", Type: field.TypeString, Nullable: true},
		{Name: "owned_files", Type: field.TypeJSON, Nullable: true},
		{Name: "synthesis_context", Type: field.TypeJSON, Nullable: true},
		{Name: "sandbox_id", Type: field.TypeString, Nullable: true},
		{Name: "assigned_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_by_pod", Type: field.TypeString, Nullable: true},
		{Name: "execution_config", Type: field.TypeJSON, Nullable: true},
		{Name: "persistence_dir", Type: field.TypeString, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "assigned_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeString, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_tickets_tasks",
				Columns:    []*schema.Column{TasksColumns[27]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3]},
			},
			{
				Name:    "task_parent_task_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[12]},
			},
			{
				Name:    "task_sandbox_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[15]},
			},
			{
				Name:    "task_assigned_agent_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[16]},
			},
			{
				Name:    "task_status_score",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3], TasksColumns[5]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3], TasksColumns[25]},
			},
			{
				Name:    "task_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3], TasksColumns[24]},
			},
		},
	}
	// TicketsColumns holds the columns for the "tickets" table.
	TicketsColumns = []*schema.Column{
		{Name: "ticket_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "phase", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "review", "approved", "in_progress", "done", "archived"}, Default: "draft"},
		{Name: "approval_status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "deadline", Type: field.TypeTime, Nullable: true},
		{Name: "is_blocked", Type: field.TypeBool, Default: false},
		{Name: "blocked_reason", Type: field.TypeString, Nullable: true},
		{Name: "owner", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "blocked_by", Type: field.TypeJSON, Nullable: true},
		{Name: "blocks", Type: field.TypeJSON, Nullable: true},
		{Name: "spec_id", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TicketsTable holds the schema information for the "tickets" table.
	TicketsTable = &schema.Table{
		Name:       "tickets",
		Columns:    TicketsColumns,
		PrimaryKey: []*schema.Column{TicketsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ticket_status",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[4]},
			},
			{
				Name:    "ticket_approval_status",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[5]},
			},
			{
				Name:    "ticket_project_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[11]},
			},
			{
				Name:    "ticket_spec_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[14]},
			},
			{
				Name:    "ticket_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[4], TicketsColumns[16]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentBaselinesTable,
		BudgetsTable,
		CostRecordsTable,
		GuardianActionsTable,
		MergeAttemptsTable,
		SandboxAllocationsTable,
		SandboxEventsTable,
		SandboxMessagesTable,
		SpecDocsTable,
		TasksTable,
		TicketsTable,
	}
)

func init() {
	CostRecordsTable.ForeignKeys[0].RefTable = TasksTable
	TasksTable.ForeignKeys[0].RefTable = TicketsTable
}
