// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/costrecord"
	"github.com/helmsman-ai/helmsman/ent/task"
)

// CostRecord is the model entity for the CostRecord schema.
type CostRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens int64 `json:"prompt_tokens,omitempty"`
	// CompletionTokens holds the value of the "completion_tokens" field.
	CompletionTokens int64 `json:"completion_tokens,omitempty"`
	// PromptCost holds the value of the "prompt_cost" field.
	PromptCost float64 `json:"prompt_cost,omitempty"`
	// CompletionCost holds the value of the "completion_cost" field.
	CompletionCost float64 `json:"completion_cost,omitempty"`
	// TotalCost holds the value of the "total_cost" field.
	TotalCost float64 `json:"total_cost,omitempty"`
	// SandboxID holds the value of the "sandbox_id" field.
	SandboxID string `json:"sandbox_id,omitempty"`
	// BillingAccount holds the value of the "billing_account" field.
	BillingAccount string `json:"billing_account,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CostRecordQuery when eager-loading is set.
	Edges        CostRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CostRecordEdges holds the relations/edges for other nodes in the graph.
type CostRecordEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CostRecordEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CostRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case costrecord.FieldPromptCost, costrecord.FieldCompletionCost, costrecord.FieldTotalCost:
			values[i] = new(sql.NullFloat64)
		case costrecord.FieldPromptTokens, costrecord.FieldCompletionTokens:
			values[i] = new(sql.NullInt64)
		case costrecord.FieldID, costrecord.FieldTaskID, costrecord.FieldAgentID, costrecord.FieldProvider, costrecord.FieldModel, costrecord.FieldSandboxID, costrecord.FieldBillingAccount:
			values[i] = new(sql.NullString)
		case costrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CostRecord fields.
func (_m *CostRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case costrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case costrecord.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case costrecord.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case costrecord.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case costrecord.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case costrecord.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = value.Int64
			}
		case costrecord.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = value.Int64
			}
		case costrecord.FieldPromptCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_cost", values[i])
			} else if value.Valid {
				_m.PromptCost = value.Float64
			}
		case costrecord.FieldCompletionCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_cost", values[i])
			} else if value.Valid {
				_m.CompletionCost = value.Float64
			}
		case costrecord.FieldTotalCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost", values[i])
			} else if value.Valid {
				_m.TotalCost = value.Float64
			}
		case costrecord.FieldSandboxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sandbox_id", values[i])
			} else if value.Valid {
				_m.SandboxID = value.String
			}
		case costrecord.FieldBillingAccount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field billing_account", values[i])
			} else if value.Valid {
				_m.BillingAccount = value.String
			}
		case costrecord.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CostRecord.
// This includes values selected through modifiers, order, etc.
func (_m *CostRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the CostRecord entity.
func (_m *CostRecord) QueryTask() *TaskQuery {
	return NewCostRecordClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this CostRecord.
// Note that you need to call CostRecord.Unwrap() before calling this method if this CostRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CostRecord) Update() *CostRecordUpdateOne {
	return NewCostRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CostRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CostRecord) Unwrap() *CostRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CostRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CostRecord) String() string {
	var builder strings.Builder
	builder.WriteString("CostRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("prompt_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptTokens))
	builder.WriteString(", ")
	builder.WriteString("completion_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionTokens))
	builder.WriteString(", ")
	builder.WriteString("prompt_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptCost))
	builder.WriteString(", ")
	builder.WriteString("completion_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionCost))
	builder.WriteString(", ")
	builder.WriteString("total_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCost))
	builder.WriteString(", ")
	builder.WriteString("sandbox_id=")
	builder.WriteString(_m.SandboxID)
	builder.WriteString(", ")
	builder.WriteString("billing_account=")
	builder.WriteString(_m.BillingAccount)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CostRecords is a parsable slice of CostRecord.
type CostRecords []*CostRecord
