package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SandboxMessage holds the schema definition for the SandboxMessage entity —
// a message queued for injection into a running sandbox (user messages,
// interrupts, guardian nudges). The BIGSERIAL row id is the per-sandbox
// monotone poll cursor: a poll with cursor C returns only rows with id > C.
type SandboxMessage struct {
	ent.Schema
}

// Fields of the SandboxMessage.
func (SandboxMessage) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.String("sandbox_id"),
		field.Enum("message_type").
			Values("user_message", "interrupt", "guardian_nudge", "system"),
		field.Text("content").
			Optional(),
		field.Bool("cancel").
			Default(false),
		field.Bool("acked").
			Default(false).
			Comment("Set once the worker acknowledges a cursor at or past this row"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SandboxMessage.
func (SandboxMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sandbox_id", "id"),
		index.Fields("sandbox_id", "acked"),
	}
}
