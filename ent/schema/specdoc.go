package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SpecDoc holds the schema definition for the SpecDoc entity, a structured
// design artifact advanced through the phased workflow
// (explore, requirements, design, tasks, sync, complete).
type SpecDoc struct {
	ent.Schema
}

// Fields of the SpecDoc.
func (SpecDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("spec_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Comment("Full-text searchable (GIN index created by migration)"),
		field.Enum("current_phase").
			Values("explore", "requirements", "design", "tasks", "sync", "complete").
			Default("explore"),
		field.JSON("phase_data", map[string]interface{}{}).
			Optional().
			Comment("phase → accumulated context; a phase's entry is frozen once the next phase begins"),
		field.JSON("session_transcripts", map[string]string{}).
			Optional().
			Comment("phase → base64 transcript blob, for resuming in a fresh sandbox"),
		field.JSON("phase_attempts", map[string]int{}).
			Optional(),
		field.Time("last_checkpoint_at").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("share_token").
			Optional().
			Nillable(),
		field.Bool("archived").
			Default(false),
		field.String("owner").
			Optional(),
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

// Indexes of the SpecDoc.
func (SpecDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("current_phase"),
		index.Fields("archived"),
		index.Fields("current_phase", "updated_at"),
	}
}
