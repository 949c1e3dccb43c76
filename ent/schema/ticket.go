package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ticket holds the schema definition for the Ticket entity.
// Tickets are the human-facing unit of work; the task planner and the spec
// SYNC phase decompose them into executable tasks.
type Ticket struct {
	ent.Schema
}

// Fields of the Ticket.
func (Ticket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Comment("Full-text searchable (GIN index created by migration)"),
		field.String("phase").
			Optional().
			Comment("Originating spec phase, if spawned by spec sync"),
		field.Enum("status").
			Values("draft", "review", "approved", "in_progress", "done", "archived").
			Default("draft"),
		field.Enum("approval_status").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.Int("priority").
			Default(0),
		field.Time("deadline").
			Optional().
			Nillable(),
		field.Bool("is_blocked").
			Default(false),
		field.String("blocked_reason").
			Optional().
			Nillable(),
		field.String("owner").
			Optional().
			Comment("User or project that owns this ticket"),
		field.String("project_id").
			Optional(),
		field.JSON("blocked_by", []string{}).
			Optional().
			Comment("Ticket ids this ticket waits on (adjacency list, SCC-checked on mutation)"),
		field.JSON("blocks", []string{}).
			Optional(),
		field.String("spec_id").
			Optional().
			Nillable().
			Comment("Spec that generated this ticket"),
		field.Int("version").
			Default(1).
			Comment("Optimistic locking counter"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Ticket.
func (Ticket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", Task.Type),
	}
}

// Indexes of the Ticket.
func (Ticket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("approval_status"),
		index.Fields("project_id"),
		index.Fields("spec_id"),
		index.Fields("status", "created_at"),
	}
}
