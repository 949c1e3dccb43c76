package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity — the executable
// decomposition of a ticket, scheduled by score and gated by dependencies.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Optional().
			Nillable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("pending", "assigned", "running", "succeeded", "failed", "canceled").
			Default("pending"),
		field.Int("priority_base").
			Default(0),
		field.Float("score").
			Default(0).
			Comment("Computed scheduling score; recomputed at admission and on dependency change"),
		field.Time("deadline").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.Int("max_retries").
			Default(3),
		field.Int("timeout_seconds").
			Default(3600).
			Comment("Starts counting at assignment; expiry cancels with deadline_exceeded"),
		field.JSON("required_capabilities", []string{}).
			Optional(),
		field.JSON("depends_on", []string{}).
			Optional().
			Comment("Task ids that must be succeeded before this task is schedulable"),
		field.String("parent_task_id").
			Optional().
			Nillable().
			Comment("Parent for parallel sibling groups converging on one branch"),
		field.JSON("owned_files", []string{}).
			Optional().
			Comment("Glob patterns; concurrent siblings must expand to disjoint file sets"),
		field.JSON("synthesis_context", map[string]interface{}{}).
			Optional(),
		field.String("sandbox_id").
			Optional().
			Nillable(),
		field.String("assigned_agent_id").
			Optional().
			Nillable(),
		field.String("claimed_by_pod").
			Optional().
			Nillable().
			Comment("Pod that claimed the task; startup recovery requeues this pod's runs after a crash"),
		field.JSON("execution_config", map[string]interface{}{}).
			Optional().
			Comment("Opaque worker configuration (model, caps, allowed tools)"),
		field.String("persistence_dir").
			Optional(),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.JSON("embedding", []float64{}).
			Optional().
			Comment("Similarity hint only; dedup requires an exact rule"),
		field.Int("version").
			Default(1),
		field.Time("assigned_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("tasks").
			Field("ticket_id").
			Unique(),
		edge.To("cost_records", CostRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("parent_task_id"),
		index.Fields("sandbox_id"),
		index.Fields("assigned_agent_id"),
		index.Fields("status", "score"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
