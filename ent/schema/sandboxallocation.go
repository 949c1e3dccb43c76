package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SandboxAllocation holds the schema definition for the SandboxAllocation
// entity — the resource envelope of a sandbox, with pending values while a
// guardian resize is in flight.
type SandboxAllocation struct {
	ent.Schema
}

// Fields of the SandboxAllocation.
func (SandboxAllocation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sandbox_id").
			Unique().
			Immutable(),
		field.Float("cpu_cores"),
		field.Int("memory_mb"),
		field.Int("disk_mb"),
		field.Float("pending_cpu_cores").
			Optional().
			Nillable(),
		field.Int("pending_memory_mb").
			Optional().
			Nillable(),
		field.Int("pending_disk_mb").
			Optional().
			Nillable(),
		field.Int("version").
			Default(1),
		field.String("updated_by").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SandboxAllocation.
func (SandboxAllocation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
