package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GuardianAction holds the schema definition for the GuardianAction entity —
// the audit trail of every intervention the guardian takes or proposes
// against a misbehaving agent.
type GuardianAction struct {
	ent.Schema
}

// Fields of the GuardianAction.
func (GuardianAction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("action_id").
			Unique().
			Immutable(),
		field.Enum("action_type").
			Values("nudge", "pause_agent", "resize_resources", "restart_sandbox", "terminate_agent"),
		field.String("target_agent_id"),
		field.String("target_task_id").
			Optional().
			Nillable(),
		field.Int("authority_level").
			Comment("Severity rank; actions above auto_authority require an approver"),
		field.String("reason"),
		field.String("initiator").
			Comment("guardian, heartbeat_engine, cost_accountant, or a user id"),
		field.Enum("status").
			Values("pending_review", "approved", "executed", "rejected", "timed_out", "reverted").
			Default("pending_review"),
		field.String("approved_by").
			Optional().
			Nillable(),
		field.Time("executed_at").
			Optional().
			Nillable(),
		field.Time("reverted_at").
			Optional().
			Nillable(),
		field.Time("review_deadline").
			Optional().
			Nillable(),
		field.JSON("audit_log", []map[string]interface{}{}).
			Optional().
			Comment("Append-only entries: {at, actor, note}"),
		field.JSON("params", map[string]interface{}{}).
			Optional().
			Comment("Action parameters, e.g. resize envelope or nudge text"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the GuardianAction.
func (GuardianAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("target_agent_id", "created_at"),
		index.Fields("status"),
		index.Fields("status", "review_deadline"),
	}
}
