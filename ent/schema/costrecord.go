package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CostRecord holds the schema definition for the CostRecord entity — one
// row per LLM call made by a worker, append-only. Budget.spent is always
// reconcilable as the sum of total_cost within the budget period.
type CostRecord struct {
	ent.Schema
}

// Fields of the CostRecord.
func (CostRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cost_record_id").
			Unique().
			Immutable(),
		field.String("task_id"),
		field.String("agent_id").
			Optional(),
		field.String("provider"),
		field.String("model"),
		field.Int64("prompt_tokens").
			Default(0),
		field.Int64("completion_tokens").
			Default(0),
		field.Float("prompt_cost").
			Default(0),
		field.Float("completion_cost").
			Default(0),
		field.Float("total_cost").
			Default(0),
		field.String("sandbox_id").
			Optional(),
		field.String("billing_account").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CostRecord.
func (CostRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("cost_records").
			Field("task_id").
			Unique().
			Required(),
	}
}

// Indexes of the CostRecord.
func (CostRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("agent_id"),
		index.Fields("billing_account", "created_at"),
	}
}
