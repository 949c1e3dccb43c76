// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/guardianaction"
)

// GuardianAction is the model entity for the GuardianAction schema.
type GuardianAction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ActionType holds the value of the "action_type" field.
	ActionType guardianaction.ActionType `json:"action_type,omitempty"`
	// TargetAgentID holds the value of the "target_agent_id" field.
	TargetAgentID string `json:"target_agent_id,omitempty"`
	// TargetTaskID holds the value of the "target_task_id" field.
	TargetTaskID *string `json:"target_task_id,omitempty"`
	// Severity rank; actions above auto_authority require an approver
	AuthorityLevel int `json:"authority_level,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// guardian, heartbeat_engine, cost_accountant, or a user id
	Initiator string `json:"initiator,omitempty"`
	// Status holds the value of the "status" field.
	Status guardianaction.Status `json:"status,omitempty"`
	// ApprovedBy holds the value of the "approved_by" field.
	ApprovedBy *string `json:"approved_by,omitempty"`
	// ExecutedAt holds the value of the "executed_at" field.
	ExecutedAt *time.Time `json:"executed_at,omitempty"`
	// RevertedAt holds the value of the "reverted_at" field.
	RevertedAt *time.Time `json:"reverted_at,omitempty"`
	// ReviewDeadline holds the value of the "review_deadline" field.
	ReviewDeadline *time.Time `json:"review_deadline,omitempty"`
	// Append-only entries: {at, actor, note}
	AuditLog []map[string]interface{} `json:"audit_log,omitempty"`
	// Action parameters, e.g. resize envelope or nudge text
	Params map[string]interface{} `json:"params,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GuardianAction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case guardianaction.FieldAuditLog, guardianaction.FieldParams:
			values[i] = new([]byte)
		case guardianaction.FieldAuthorityLevel:
			values[i] = new(sql.NullInt64)
		case guardianaction.FieldID, guardianaction.FieldActionType, guardianaction.FieldTargetAgentID, guardianaction.FieldTargetTaskID, guardianaction.FieldReason, guardianaction.FieldInitiator, guardianaction.FieldStatus, guardianaction.FieldApprovedBy:
			values[i] = new(sql.NullString)
		case guardianaction.FieldExecutedAt, guardianaction.FieldRevertedAt, guardianaction.FieldReviewDeadline, guardianaction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GuardianAction fields.
func (_m *GuardianAction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case guardianaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case guardianaction.FieldActionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_type", values[i])
			} else if value.Valid {
				_m.ActionType = guardianaction.ActionType(value.String)
			}
		case guardianaction.FieldTargetAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_agent_id", values[i])
			} else if value.Valid {
				_m.TargetAgentID = value.String
			}
		case guardianaction.FieldTargetTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_task_id", values[i])
			} else if value.Valid {
				_m.TargetTaskID = new(string)
				*_m.TargetTaskID = value.String
			}
		case guardianaction.FieldAuthorityLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field authority_level", values[i])
			} else if value.Valid {
				_m.AuthorityLevel = int(value.Int64)
			}
		case guardianaction.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case guardianaction.FieldInitiator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initiator", values[i])
			} else if value.Valid {
				_m.Initiator = value.String
			}
		case guardianaction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = guardianaction.Status(value.String)
			}
		case guardianaction.FieldApprovedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approved_by", values[i])
			} else if value.Valid {
				_m.ApprovedBy = new(string)
				*_m.ApprovedBy = value.String
			}
		case guardianaction.FieldExecutedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field executed_at", values[i])
			} else if value.Valid {
				_m.ExecutedAt = new(time.Time)
				*_m.ExecutedAt = value.Time
			}
		case guardianaction.FieldRevertedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reverted_at", values[i])
			} else if value.Valid {
				_m.RevertedAt = new(time.Time)
				*_m.RevertedAt = value.Time
			}
		case guardianaction.FieldReviewDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field review_deadline", values[i])
			} else if value.Valid {
				_m.ReviewDeadline = new(time.Time)
				*_m.ReviewDeadline = value.Time
			}
		case guardianaction.FieldAuditLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field audit_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AuditLog); err != nil {
					return fmt.Errorf("unmarshal field audit_log: %w", err)
				}
			}
		case guardianaction.FieldParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Params); err != nil {
					return fmt.Errorf("unmarshal field params: %w", err)
				}
			}
		case guardianaction.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GuardianAction.
// This includes values selected through modifiers, order, etc.
func (_m *GuardianAction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GuardianAction.
// Note that you need to call GuardianAction.Unwrap() before calling this method if this GuardianAction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GuardianAction) Update() *GuardianActionUpdateOne {
	return NewGuardianActionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GuardianAction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GuardianAction) Unwrap() *GuardianAction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GuardianAction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GuardianAction) String() string {
	var builder strings.Builder
	builder.WriteString("GuardianAction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("action_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionType))
	builder.WriteString(", ")
	builder.WriteString("target_agent_id=")
	builder.WriteString(_m.TargetAgentID)
	builder.WriteString(", ")
	if v := _m.TargetTaskID; v != nil {
		builder.WriteString("target_task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("authority_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuthorityLevel))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("initiator=")
	builder.WriteString(_m.Initiator)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ApprovedBy; v != nil {
		builder.WriteString("approved_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExecutedAt; v != nil {
		builder.WriteString("executed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RevertedAt; v != nil {
		builder.WriteString("reverted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReviewDeadline; v != nil {
		builder.WriteString("review_deadline=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("audit_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuditLog))
	builder.WriteString(", ")
	builder.WriteString("params=")
	builder.WriteString(fmt.Sprintf("%v", _m.Params))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GuardianActions is a parsable slice of GuardianAction.
type GuardianActions []*GuardianAction
