package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MergeAttempt holds the schema definition for the MergeAttempt entity —
// the audit record of one convergence run merging sibling task branches
// into the target branch.
type MergeAttempt struct {
	ent.Schema
}

// Fields of the MergeAttempt.
func (MergeAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("merge_attempt_id").
			Unique().
			Immutable(),
		field.String("parent_task_id").
			Comment("The convergence task whose siblings are being merged"),
		field.String("ticket_id").
			Optional(),
		field.JSON("source_task_ids", []string{}),
		field.JSON("incoming_branches", []string{}),
		field.String("target_branch"),
		field.JSON("merge_order", []string{}).
			Optional().
			Comment("Task ids in the order branches were applied (ascending conflict score)"),
		field.JSON("conflict_scores", map[string]int{}).
			Optional(),
		field.Enum("status").
			Values("pending", "in_progress", "succeeded", "failed").
			Default("pending"),
		field.Int("llm_invocations").
			Default(0),
		field.Int64("tokens_used").
			Default(0),
		field.Float("cost_usd").
			Default(0),
		field.JSON("resolution_log", []map[string]interface{}{}).
			Optional(),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the MergeAttempt.
func (MergeAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_task_id", "created_at"),
		index.Fields("status"),
	}
}
