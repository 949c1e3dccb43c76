// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/agent"
)

// Agent is the model entity for the Agent schema.
type Agent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Baseline statistics are keyed by (agent_type, phase)
	AgentType string `json:"agent_type,omitempty"`
	// Status holds the value of the "status" field.
	Status agent.Status `json:"status,omitempty"`
	// Capabilities holds the value of the "capabilities" field.
	Capabilities []string `json:"capabilities,omitempty"`
	// Capacity holds the value of the "capacity" field.
	Capacity int `json:"capacity,omitempty"`
	// HealthMetrics holds the value of the "health_metrics" field.
	HealthMetrics map[string]interface{} `json:"health_metrics,omitempty"`
	// AnomalyScore holds the value of the "anomaly_score" field.
	AnomalyScore float64 `json:"anomaly_score,omitempty"`
	// ConsecutiveAnomalousReadings holds the value of the "consecutive_anomalous_readings" field.
	ConsecutiveAnomalousReadings int `json:"consecutive_anomalous_readings,omitempty"`
	// Last accepted heartbeat sequence; replays (seq <= this) are discarded
	SequenceNumber int64 `json:"sequence_number,omitempty"`
	// ConsecutiveMissedHeartbeats holds the value of the "consecutive_missed_heartbeats" field.
	ConsecutiveMissedHeartbeats int `json:"consecutive_missed_heartbeats,omitempty"`
	// Heartbeats dropped on checksum failure
	CorruptHeartbeats int `json:"corrupt_heartbeats,omitempty"`
	// CryptoPublicKey holds the value of the "crypto_public_key" field.
	CryptoPublicKey string `json:"crypto_public_key,omitempty"`
	// CurrentTaskID holds the value of the "current_task_id" field.
	CurrentTaskID *string `json:"current_task_id,omitempty"`
	// SandboxID holds the value of the "sandbox_id" field.
	SandboxID *string `json:"sandbox_id,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// KeptAliveForValidation holds the value of the "kept_alive_for_validation" field.
	KeptAliveForValidation bool `json:"kept_alive_for_validation,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// LastHeartbeatAt holds the value of the "last_heartbeat_at" field.
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// RegisteredAt holds the value of the "registered_at" field.
	RegisteredAt time.Time `json:"registered_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Agent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agent.FieldCapabilities, agent.FieldHealthMetrics, agent.FieldMetadata:
			values[i] = new([]byte)
		case agent.FieldKeptAliveForValidation:
			values[i] = new(sql.NullBool)
		case agent.FieldAnomalyScore:
			values[i] = new(sql.NullFloat64)
		case agent.FieldCapacity, agent.FieldConsecutiveAnomalousReadings, agent.FieldSequenceNumber, agent.FieldConsecutiveMissedHeartbeats, agent.FieldCorruptHeartbeats, agent.FieldVersion:
			values[i] = new(sql.NullInt64)
		case agent.FieldID, agent.FieldName, agent.FieldAgentType, agent.FieldStatus, agent.FieldCryptoPublicKey, agent.FieldCurrentTaskID, agent.FieldSandboxID:
			values[i] = new(sql.NullString)
		case agent.FieldLastHeartbeatAt, agent.FieldRegisteredAt, agent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Agent fields.
func (_m *Agent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case agent.FieldAgentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_type", values[i])
			} else if value.Valid {
				_m.AgentType = value.String
			}
		case agent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agent.Status(value.String)
			}
		case agent.FieldCapabilities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field capabilities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Capabilities); err != nil {
					return fmt.Errorf("unmarshal field capabilities: %w", err)
				}
			}
		case agent.FieldCapacity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field capacity", values[i])
			} else if value.Valid {
				_m.Capacity = int(value.Int64)
			}
		case agent.FieldHealthMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field health_metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.HealthMetrics); err != nil {
					return fmt.Errorf("unmarshal field health_metrics: %w", err)
				}
			}
		case agent.FieldAnomalyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field anomaly_score", values[i])
			} else if value.Valid {
				_m.AnomalyScore = value.Float64
			}
		case agent.FieldConsecutiveAnomalousReadings:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_anomalous_readings", values[i])
			} else if value.Valid {
				_m.ConsecutiveAnomalousReadings = int(value.Int64)
			}
		case agent.FieldSequenceNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_number", values[i])
			} else if value.Valid {
				_m.SequenceNumber = value.Int64
			}
		case agent.FieldConsecutiveMissedHeartbeats:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_missed_heartbeats", values[i])
			} else if value.Valid {
				_m.ConsecutiveMissedHeartbeats = int(value.Int64)
			}
		case agent.FieldCorruptHeartbeats:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field corrupt_heartbeats", values[i])
			} else if value.Valid {
				_m.CorruptHeartbeats = int(value.Int64)
			}
		case agent.FieldCryptoPublicKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field crypto_public_key", values[i])
			} else if value.Valid {
				_m.CryptoPublicKey = value.String
			}
		case agent.FieldCurrentTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_task_id", values[i])
			} else if value.Valid {
				_m.CurrentTaskID = new(string)
				*_m.CurrentTaskID = value.String
			}
		case agent.FieldSandboxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sandbox_id", values[i])
			} else if value.Valid {
				_m.SandboxID = new(string)
				*_m.SandboxID = value.String
			}
		case agent.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case agent.FieldKeptAliveForValidation:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field kept_alive_for_validation", values[i])
			} else if value.Valid {
				_m.KeptAliveForValidation = value.Bool
			}
		case agent.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case agent.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case agent.FieldRegisteredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field registered_at", values[i])
			} else if value.Valid {
				_m.RegisteredAt = value.Time
			}
		case agent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Agent.
// This includes values selected through modifiers, order, etc.
func (_m *Agent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Agent.
// Note that you need to call Agent.Unwrap() before calling this method if this Agent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Agent) Update() *AgentUpdateOne {
	return NewAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Agent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Agent) Unwrap() *Agent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Agent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Agent) String() string {
	var builder strings.Builder
	builder.WriteString("Agent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("agent_type=")
	builder.WriteString(_m.AgentType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("capabilities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Capabilities))
	builder.WriteString(", ")
	builder.WriteString("capacity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Capacity))
	builder.WriteString(", ")
	builder.WriteString("health_metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.HealthMetrics))
	builder.WriteString(", ")
	builder.WriteString("anomaly_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnomalyScore))
	builder.WriteString(", ")
	builder.WriteString("consecutive_anomalous_readings=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveAnomalousReadings))
	builder.WriteString(", ")
	builder.WriteString("sequence_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceNumber))
	builder.WriteString(", ")
	builder.WriteString("consecutive_missed_heartbeats=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveMissedHeartbeats))
	builder.WriteString(", ")
	builder.WriteString("corrupt_heartbeats=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorruptHeartbeats))
	builder.WriteString(", ")
	builder.WriteString("crypto_public_key=")
	builder.WriteString(_m.CryptoPublicKey)
	builder.WriteString(", ")
	if v := _m.CurrentTaskID; v != nil {
		builder.WriteString("current_task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SandboxID; v != nil {
		builder.WriteString("sandbox_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("kept_alive_for_validation=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeptAliveForValidation))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("registered_at=")
	builder.WriteString(_m.RegisteredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Agents is a parsable slice of Agent.
type Agents []*Agent
