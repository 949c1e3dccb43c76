// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/sandboxallocation"
)

// SandboxAllocation is the model entity for the SandboxAllocation schema.
type SandboxAllocation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CPUCores holds the value of the "cpu_cores" field.
	CPUCores float64 `json:"cpu_cores,omitempty"`
	// MemoryMB holds the value of the "memory_mb" field.
	MemoryMB int `json:"memory_mb,omitempty"`
	// DiskMB holds the value of the "disk_mb" field.
	DiskMB int `json:"disk_mb,omitempty"`
	// PendingCPUCores holds the value of the "pending_cpu_cores" field.
	PendingCPUCores *float64 `json:"pending_cpu_cores,omitempty"`
	// PendingMemoryMB holds the value of the "pending_memory_mb" field.
	PendingMemoryMB *int `json:"pending_memory_mb,omitempty"`
	// PendingDiskMB holds the value of the "pending_disk_mb" field.
	PendingDiskMB *int `json:"pending_disk_mb,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// UpdatedBy holds the value of the "updated_by" field.
	UpdatedBy string `json:"updated_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SandboxAllocation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sandboxallocation.FieldCPUCores, sandboxallocation.FieldPendingCPUCores:
			values[i] = new(sql.NullFloat64)
		case sandboxallocation.FieldMemoryMB, sandboxallocation.FieldDiskMB, sandboxallocation.FieldPendingMemoryMB, sandboxallocation.FieldPendingDiskMB, sandboxallocation.FieldVersion:
			values[i] = new(sql.NullInt64)
		case sandboxallocation.FieldID, sandboxallocation.FieldUpdatedBy:
			values[i] = new(sql.NullString)
		case sandboxallocation.FieldCreatedAt, sandboxallocation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SandboxAllocation fields.
func (_m *SandboxAllocation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sandboxallocation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sandboxallocation.FieldCPUCores:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cpu_cores", values[i])
			} else if value.Valid {
				_m.CPUCores = value.Float64
			}
		case sandboxallocation.FieldMemoryMB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memory_mb", values[i])
			} else if value.Valid {
				_m.MemoryMB = int(value.Int64)
			}
		case sandboxallocation.FieldDiskMB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field disk_mb", values[i])
			} else if value.Valid {
				_m.DiskMB = int(value.Int64)
			}
		case sandboxallocation.FieldPendingCPUCores:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pending_cpu_cores", values[i])
			} else if value.Valid {
				_m.PendingCPUCores = new(float64)
				*_m.PendingCPUCores = value.Float64
			}
		case sandboxallocation.FieldPendingMemoryMB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pending_memory_mb", values[i])
			} else if value.Valid {
				_m.PendingMemoryMB = new(int)
				*_m.PendingMemoryMB = int(value.Int64)
			}
		case sandboxallocation.FieldPendingDiskMB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pending_disk_mb", values[i])
			} else if value.Valid {
				_m.PendingDiskMB = new(int)
				*_m.PendingDiskMB = int(value.Int64)
			}
		case sandboxallocation.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case sandboxallocation.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				_m.UpdatedBy = value.String
			}
		case sandboxallocation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sandboxallocation.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SandboxAllocation.
// This includes values selected through modifiers, order, etc.
func (_m *SandboxAllocation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SandboxAllocation.
// Note that you need to call SandboxAllocation.Unwrap() before calling this method if this SandboxAllocation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SandboxAllocation) Update() *SandboxAllocationUpdateOne {
	return NewSandboxAllocationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SandboxAllocation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SandboxAllocation) Unwrap() *SandboxAllocation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SandboxAllocation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SandboxAllocation) String() string {
	var builder strings.Builder
	builder.WriteString("SandboxAllocation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("cpu_cores=")
	builder.WriteString(fmt.Sprintf("%v", _m.CPUCores))
	builder.WriteString(", ")
	builder.WriteString("memory_mb=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoryMB))
	builder.WriteString(", ")
	builder.WriteString("disk_mb=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiskMB))
	builder.WriteString(", ")
	if v := _m.PendingCPUCores; v != nil {
		builder.WriteString("pending_cpu_cores=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PendingMemoryMB; v != nil {
		builder.WriteString("pending_memory_mb=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PendingDiskMB; v != nil {
		builder.WriteString("pending_disk_mb=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(_m.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SandboxAllocations is a parsable slice of SandboxAllocation.
type SandboxAllocations []*SandboxAllocation
