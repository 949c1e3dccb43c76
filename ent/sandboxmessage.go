// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/sandboxmessage"
)

// SandboxMessage is the model entity for the SandboxMessage schema.
type SandboxMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// SandboxID holds the value of the "sandbox_id" field.
	SandboxID string `json:"sandbox_id,omitempty"`
	// MessageType holds the value of the "message_type" field.
	MessageType sandboxmessage.MessageType `json:"message_type,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Cancel holds the value of the "cancel" field.
	Cancel bool `json:"cancel,omitempty"`
	// Set once the worker acknowledges a cursor at or past this row
	Acked bool `json:"acked,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SandboxMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sandboxmessage.FieldCancel, sandboxmessage.FieldAcked:
			values[i] = new(sql.NullBool)
		case sandboxmessage.FieldID:
			values[i] = new(sql.NullInt64)
		case sandboxmessage.FieldSandboxID, sandboxmessage.FieldMessageType, sandboxmessage.FieldContent:
			values[i] = new(sql.NullString)
		case sandboxmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SandboxMessage fields.
func (_m *SandboxMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sandboxmessage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case sandboxmessage.FieldSandboxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sandbox_id", values[i])
			} else if value.Valid {
				_m.SandboxID = value.String
			}
		case sandboxmessage.FieldMessageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_type", values[i])
			} else if value.Valid {
				_m.MessageType = sandboxmessage.MessageType(value.String)
			}
		case sandboxmessage.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case sandboxmessage.FieldCancel:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel", values[i])
			} else if value.Valid {
				_m.Cancel = value.Bool
			}
		case sandboxmessage.FieldAcked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field acked", values[i])
			} else if value.Valid {
				_m.Acked = value.Bool
			}
		case sandboxmessage.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SandboxMessage.
// This includes values selected through modifiers, order, etc.
func (_m *SandboxMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SandboxMessage.
// Note that you need to call SandboxMessage.Unwrap() before calling this method if this SandboxMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SandboxMessage) Update() *SandboxMessageUpdateOne {
	return NewSandboxMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SandboxMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SandboxMessage) Unwrap() *SandboxMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SandboxMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SandboxMessage) String() string {
	var builder strings.Builder
	builder.WriteString("SandboxMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sandbox_id=")
	builder.WriteString(_m.SandboxID)
	builder.WriteString(", ")
	builder.WriteString("message_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("cancel=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cancel))
	builder.WriteString(", ")
	builder.WriteString("acked=")
	builder.WriteString(fmt.Sprintf("%v", _m.Acked))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SandboxMessages is a parsable slice of SandboxMessage.
type SandboxMessages []*SandboxMessage
