package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentBaseline holds rolling per-(agent_type, phase) statistics against
// which heartbeat readings are scored for anomaly deviation. Updated with
// exponentially weighted moving estimates by the heartbeat engine.
type AgentBaseline struct {
	ent.Schema
}

// Fields of the AgentBaseline.
func (AgentBaseline) Fields() []ent.Field {
	return []ent.Field{
		field.String("agent_type"),
		field.String("phase"),
		field.Float("latency_mean_ms").
			Default(0),
		field.Float("latency_stddev_ms").
			Default(0),
		field.Float("error_rate").
			Default(0),
		field.Float("cpu_mean").
			Default(0),
		field.Float("cpu_stddev").
			Default(0),
		field.Float("mem_mean").
			Default(0),
		field.Float("mem_stddev").
			Default(0),
		field.Int64("sample_count").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AgentBaseline.
func (AgentBaseline) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_type", "phase").
			Unique(),
	}
}
