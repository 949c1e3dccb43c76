// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/sandboxevent"
)

// SandboxEvent is the model entity for the SandboxEvent schema.
type SandboxEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// Worker-assigned event id; idempotency key
	EventKey string `json:"event_key,omitempty"`
	// SandboxID holds the value of the "sandbox_id" field.
	SandboxID string `json:"sandbox_id,omitempty"`
	// Dotted namespace, e.g. agent.tool_use
	EventType string `json:"event_type,omitempty"`
	// EventData holds the value of the "event_data" field.
	EventData map[string]interface{} `json:"event_data,omitempty"`
	// Source holds the value of the "source" field.
	Source sandboxevent.Source `json:"source,omitempty"`
	// Bus routing: entity kind this event concerns (task, agent, spec, ...)
	EntityType string `json:"entity_type,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID string `json:"entity_id,omitempty"`
	// SpecID holds the value of the "spec_id" field.
	SpecID *string `json:"spec_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SandboxEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sandboxevent.FieldEventData:
			values[i] = new([]byte)
		case sandboxevent.FieldID:
			values[i] = new(sql.NullInt64)
		case sandboxevent.FieldEventKey, sandboxevent.FieldSandboxID, sandboxevent.FieldEventType, sandboxevent.FieldSource, sandboxevent.FieldEntityType, sandboxevent.FieldEntityID, sandboxevent.FieldSpecID:
			values[i] = new(sql.NullString)
		case sandboxevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SandboxEvent fields.
func (_m *SandboxEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sandboxevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case sandboxevent.FieldEventKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_key", values[i])
			} else if value.Valid {
				_m.EventKey = value.String
			}
		case sandboxevent.FieldSandboxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sandbox_id", values[i])
			} else if value.Valid {
				_m.SandboxID = value.String
			}
		case sandboxevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case sandboxevent.FieldEventData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field event_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EventData); err != nil {
					return fmt.Errorf("unmarshal field event_data: %w", err)
				}
			}
		case sandboxevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = sandboxevent.Source(value.String)
			}
		case sandboxevent.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = value.String
			}
		case sandboxevent.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = value.String
			}
		case sandboxevent.FieldSpecID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spec_id", values[i])
			} else if value.Valid {
				_m.SpecID = new(string)
				*_m.SpecID = value.String
			}
		case sandboxevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SandboxEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SandboxEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SandboxEvent.
// Note that you need to call SandboxEvent.Unwrap() before calling this method if this SandboxEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SandboxEvent) Update() *SandboxEventUpdateOne {
	return NewSandboxEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SandboxEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SandboxEvent) Unwrap() *SandboxEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SandboxEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SandboxEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SandboxEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_key=")
	builder.WriteString(_m.EventKey)
	builder.WriteString(", ")
	builder.WriteString("sandbox_id=")
	builder.WriteString(_m.SandboxID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("event_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventData))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(_m.EntityType)
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(_m.EntityID)
	builder.WriteString(", ")
	if v := _m.SpecID; v != nil {
		builder.WriteString("spec_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SandboxEvents is a parsable slice of SandboxEvent.
type SandboxEvents []*SandboxEvent
