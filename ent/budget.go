// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/budget"
)

// Budget is the model entity for the Budget schema.
type Budget struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ScopeType holds the value of the "scope_type" field.
	ScopeType budget.ScopeType `json:"scope_type,omitempty"`
	// ScopeID holds the value of the "scope_id" field.
	ScopeID string `json:"scope_id,omitempty"`
	// LimitUsd holds the value of the "limit_usd" field.
	LimitUsd float64 `json:"limit_usd,omitempty"`
	// SpentUsd holds the value of the "spent_usd" field.
	SpentUsd float64 `json:"spent_usd,omitempty"`
	// Outstanding pre-call reservations, refunded on settlement
	ReservedUsd float64 `json:"reserved_usd,omitempty"`
	// Billing period key, e.g. 2026-08 or total
	Period string `json:"period,omitempty"`
	// Fraction of limit at which the guardian emits cost_pressure
	AlertThreshold float64 `json:"alert_threshold,omitempty"`
	// Alerted holds the value of the "alerted" field.
	Alerted bool `json:"alerted,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Budget) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case budget.FieldAlerted:
			values[i] = new(sql.NullBool)
		case budget.FieldLimitUsd, budget.FieldSpentUsd, budget.FieldReservedUsd, budget.FieldAlertThreshold:
			values[i] = new(sql.NullFloat64)
		case budget.FieldVersion:
			values[i] = new(sql.NullInt64)
		case budget.FieldID, budget.FieldScopeType, budget.FieldScopeID, budget.FieldPeriod:
			values[i] = new(sql.NullString)
		case budget.FieldCreatedAt, budget.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Budget fields.
func (_m *Budget) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case budget.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case budget.FieldScopeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_type", values[i])
			} else if value.Valid {
				_m.ScopeType = budget.ScopeType(value.String)
			}
		case budget.FieldScopeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_id", values[i])
			} else if value.Valid {
				_m.ScopeID = value.String
			}
		case budget.FieldLimitUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field limit_usd", values[i])
			} else if value.Valid {
				_m.LimitUsd = value.Float64
			}
		case budget.FieldSpentUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field spent_usd", values[i])
			} else if value.Valid {
				_m.SpentUsd = value.Float64
			}
		case budget.FieldReservedUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reserved_usd", values[i])
			} else if value.Valid {
				_m.ReservedUsd = value.Float64
			}
		case budget.FieldPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period", values[i])
			} else if value.Valid {
				_m.Period = value.String
			}
		case budget.FieldAlertThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field alert_threshold", values[i])
			} else if value.Valid {
				_m.AlertThreshold = value.Float64
			}
		case budget.FieldAlerted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field alerted", values[i])
			} else if value.Valid {
				_m.Alerted = value.Bool
			}
		case budget.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case budget.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case budget.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Budget.
// This includes values selected through modifiers, order, etc.
func (_m *Budget) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Budget.
// Note that you need to call Budget.Unwrap() before calling this method if this Budget
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Budget) Update() *BudgetUpdateOne {
	return NewBudgetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Budget entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Budget) Unwrap() *Budget {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Budget is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Budget) String() string {
	var builder strings.Builder
	builder.WriteString("Budget(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scope_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScopeType))
	builder.WriteString(", ")
	builder.WriteString("scope_id=")
	builder.WriteString(_m.ScopeID)
	builder.WriteString(", ")
	builder.WriteString("limit_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.LimitUsd))
	builder.WriteString(", ")
	builder.WriteString("spent_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpentUsd))
	builder.WriteString(", ")
	builder.WriteString("reserved_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReservedUsd))
	builder.WriteString(", ")
	builder.WriteString("period=")
	builder.WriteString(_m.Period)
	builder.WriteString(", ")
	builder.WriteString("alert_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertThreshold))
	builder.WriteString(", ")
	builder.WriteString("alerted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Alerted))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Budgets is a parsable slice of Budget.
type Budgets []*Budget
