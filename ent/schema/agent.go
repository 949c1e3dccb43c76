package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity — a coding agent
// running inside a sandbox, tracked by the heartbeat and anomaly engine.
//
// Status transitions are enforced by pkg/lifecycle; the store never accepts
// an update that skips the state machine.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("agent_type").
			Comment("Baseline statistics are keyed by (agent_type, phase)"),
		field.Enum("status").
			Values("SPAWNING", "IDLE", "RUNNING", "DEGRADED", "FAILED", "QUARANTINED", "TERMINATED").
			Default("SPAWNING"),
		field.JSON("capabilities", []string{}).
			Optional(),
		field.Int("capacity").
			Default(1),
		field.JSON("health_metrics", map[string]interface{}{}).
			Optional(),
		field.Float("anomaly_score").
			Default(0),
		field.Int("consecutive_anomalous_readings").
			Default(0),
		field.Int64("sequence_number").
			Default(0).
			Comment("Last accepted heartbeat sequence; replays (seq <= this) are discarded"),
		field.Int("consecutive_missed_heartbeats").
			Default(0),
		field.Int("corrupt_heartbeats").
			Default(0).
			Comment("Heartbeats dropped on checksum failure"),
		field.String("crypto_public_key").
			Optional(),
		field.String("current_task_id").
			Optional().
			Nillable(),
		field.String("sandbox_id").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Bool("kept_alive_for_validation").
			Default(false),
		field.Int("version").
			Default(1),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable(),
		field.Time("registered_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("agent_type"),
		index.Fields("sandbox_id"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
