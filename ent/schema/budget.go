package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Budget holds the schema definition for the Budget entity. One row per
// (scope_type, scope_id, period). Invariant: spent + reserved <= limit.
type Budget struct {
	ent.Schema
}

// Fields of the Budget.
func (Budget) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("budget_id").
			Unique().
			Immutable(),
		field.Enum("scope_type").
			Values("task", "agent", "project", "account"),
		field.String("scope_id"),
		field.Float("limit_usd"),
		field.Float("spent_usd").
			Default(0),
		field.Float("reserved_usd").
			Default(0).
			Comment("Outstanding pre-call reservations, refunded on settlement"),
		field.String("period").
			Default("total").
			Comment("Billing period key, e.g. 2026-08 or total"),
		field.Float("alert_threshold").
			Default(0.8).
			Comment("Fraction of limit at which the guardian emits cost_pressure"),
		field.Bool("alerted").
			Default(false),
		field.Int("version").
			Default(1),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Budget.
func (Budget) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scope_type", "scope_id", "period").
			Unique(),
	}
}
