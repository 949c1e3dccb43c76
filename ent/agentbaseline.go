// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/agentbaseline"
)

// AgentBaseline is the model entity for the AgentBaseline schema.
type AgentBaseline struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AgentType holds the value of the "agent_type" field.
	AgentType string `json:"agent_type,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase string `json:"phase,omitempty"`
	// LatencyMeanMs holds the value of the "latency_mean_ms" field.
	LatencyMeanMs float64 `json:"latency_mean_ms,omitempty"`
	// LatencyStddevMs holds the value of the "latency_stddev_ms" field.
	LatencyStddevMs float64 `json:"latency_stddev_ms,omitempty"`
	// ErrorRate holds the value of the "error_rate" field.
	ErrorRate float64 `json:"error_rate,omitempty"`
	// CPUMean holds the value of the "cpu_mean" field.
	CPUMean float64 `json:"cpu_mean,omitempty"`
	// CPUStddev holds the value of the "cpu_stddev" field.
	CPUStddev float64 `json:"cpu_stddev,omitempty"`
	// MemMean holds the value of the "mem_mean" field.
	MemMean float64 `json:"mem_mean,omitempty"`
	// MemStddev holds the value of the "mem_stddev" field.
	MemStddev float64 `json:"mem_stddev,omitempty"`
	// SampleCount holds the value of the "sample_count" field.
	SampleCount int64 `json:"sample_count,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentBaseline) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentbaseline.FieldLatencyMeanMs, agentbaseline.FieldLatencyStddevMs, agentbaseline.FieldErrorRate, agentbaseline.FieldCPUMean, agentbaseline.FieldCPUStddev, agentbaseline.FieldMemMean, agentbaseline.FieldMemStddev:
			values[i] = new(sql.NullFloat64)
		case agentbaseline.FieldID, agentbaseline.FieldSampleCount:
			values[i] = new(sql.NullInt64)
		case agentbaseline.FieldAgentType, agentbaseline.FieldPhase:
			values[i] = new(sql.NullString)
		case agentbaseline.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentBaseline fields.
func (_m *AgentBaseline) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentbaseline.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agentbaseline.FieldAgentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_type", values[i])
			} else if value.Valid {
				_m.AgentType = value.String
			}
		case agentbaseline.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case agentbaseline.FieldLatencyMeanMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_mean_ms", values[i])
			} else if value.Valid {
				_m.LatencyMeanMs = value.Float64
			}
		case agentbaseline.FieldLatencyStddevMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_stddev_ms", values[i])
			} else if value.Valid {
				_m.LatencyStddevMs = value.Float64
			}
		case agentbaseline.FieldErrorRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field error_rate", values[i])
			} else if value.Valid {
				_m.ErrorRate = value.Float64
			}
		case agentbaseline.FieldCPUMean:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cpu_mean", values[i])
			} else if value.Valid {
				_m.CPUMean = value.Float64
			}
		case agentbaseline.FieldCPUStddev:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cpu_stddev", values[i])
			} else if value.Valid {
				_m.CPUStddev = value.Float64
			}
		case agentbaseline.FieldMemMean:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mem_mean", values[i])
			} else if value.Valid {
				_m.MemMean = value.Float64
			}
		case agentbaseline.FieldMemStddev:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mem_stddev", values[i])
			} else if value.Valid {
				_m.MemStddev = value.Float64
			}
		case agentbaseline.FieldSampleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sample_count", values[i])
			} else if value.Valid {
				_m.SampleCount = value.Int64
			}
		case agentbaseline.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentBaseline.
// This includes values selected through modifiers, order, etc.
func (_m *AgentBaseline) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentBaseline.
// Note that you need to call AgentBaseline.Unwrap() before calling this method if this AgentBaseline
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentBaseline) Update() *AgentBaselineUpdateOne {
	return NewAgentBaselineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentBaseline entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentBaseline) Unwrap() *AgentBaseline {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentBaseline is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentBaseline) String() string {
	var builder strings.Builder
	builder.WriteString("AgentBaseline(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_type=")
	builder.WriteString(_m.AgentType)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("latency_mean_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMeanMs))
	builder.WriteString(", ")
	builder.WriteString("latency_stddev_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyStddevMs))
	builder.WriteString(", ")
	builder.WriteString("error_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorRate))
	builder.WriteString(", ")
	builder.WriteString("cpu_mean=")
	builder.WriteString(fmt.Sprintf("%v", _m.CPUMean))
	builder.WriteString(", ")
	builder.WriteString("cpu_stddev=")
	builder.WriteString(fmt.Sprintf("%v", _m.CPUStddev))
	builder.WriteString(", ")
	builder.WriteString("mem_mean=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemMean))
	builder.WriteString(", ")
	builder.WriteString("mem_stddev=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemStddev))
	builder.WriteString(", ")
	builder.WriteString("sample_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SampleCount))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentBaselines is a parsable slice of AgentBaseline.
type AgentBaselines []*AgentBaseline
