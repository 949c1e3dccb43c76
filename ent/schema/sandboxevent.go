package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SandboxEvent holds the schema definition for the SandboxEvent entity —
// the append-only stream of everything a sandbox worker reports
// (agent.text, agent.tool_use, agent.completed, heartbeat, ...).
//
// The row id is a BIGSERIAL: globally monotone, so it doubles as the
// per-sandbox replay cursor for catchup queries. The worker-supplied event
// id lives in event_key; appends are idempotent on it, so replaying the
// same (sandbox_id, event id) never creates a duplicate row.
type SandboxEvent struct {
	ent.Schema
}

// Fields of the SandboxEvent.
func (SandboxEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.String("event_key").
			Unique().
			Immutable().
			Comment("Worker-assigned event id; idempotency key"),
		field.String("sandbox_id"),
		field.String("event_type").
			Comment("Dotted namespace, e.g. agent.tool_use"),
		field.JSON("event_data", map[string]interface{}{}).
			Optional(),
		field.Enum("source").
			Values("agent", "worker", "system").
			Default("worker"),
		field.String("entity_type").
			Optional().
			Comment("Bus routing: entity kind this event concerns (task, agent, spec, ...)"),
		field.String("entity_id").
			Optional(),
		field.String("spec_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SandboxEvent.
func (SandboxEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sandbox_id", "id"),
		index.Fields("event_type"),
		index.Fields("entity_type", "entity_id"),
		index.Fields("created_at"),
	}
}
