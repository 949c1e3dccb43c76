// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/mergeattempt"
)

// MergeAttempt is the model entity for the MergeAttempt schema.
type MergeAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// The convergence task whose siblings are being merged
	ParentTaskID string `json:"parent_task_id,omitempty"`
	// TicketID holds the value of the "ticket_id" field.
	TicketID string `json:"ticket_id,omitempty"`
	// SourceTaskIds holds the value of the "source_task_ids" field.
	SourceTaskIds []string `json:"source_task_ids,omitempty"`
	// IncomingBranches holds the value of the "incoming_branches" field.
	IncomingBranches []string `json:"incoming_branches,omitempty"`
	// TargetBranch holds the value of the "target_branch" field.
	TargetBranch string `json:"target_branch,omitempty"`
	// Task ids in the order branches were applied (ascending conflict score)
	MergeOrder []string `json:"merge_order,omitempty"`
	// ConflictScores holds the value of the "conflict_scores" field.
	ConflictScores map[string]int `json:"conflict_scores,omitempty"`
	// Status holds the value of the "status" field.
	Status mergeattempt.Status `json:"status,omitempty"`
	// LlmInvocations holds the value of the "llm_invocations" field.
	LlmInvocations int `json:"llm_invocations,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int64 `json:"tokens_used,omitempty"`
	// CostUsd holds the value of the "cost_usd" field.
	CostUsd float64 `json:"cost_usd,omitempty"`
	// ResolutionLog holds the value of the "resolution_log" field.
	ResolutionLog []map[string]interface{} `json:"resolution_log,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MergeAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mergeattempt.FieldSourceTaskIds, mergeattempt.FieldIncomingBranches, mergeattempt.FieldMergeOrder, mergeattempt.FieldConflictScores, mergeattempt.FieldResolutionLog:
			values[i] = new([]byte)
		case mergeattempt.FieldCostUsd:
			values[i] = new(sql.NullFloat64)
		case mergeattempt.FieldLlmInvocations, mergeattempt.FieldTokensUsed:
			values[i] = new(sql.NullInt64)
		case mergeattempt.FieldID, mergeattempt.FieldParentTaskID, mergeattempt.FieldTicketID, mergeattempt.FieldTargetBranch, mergeattempt.FieldStatus, mergeattempt.FieldFailureReason:
			values[i] = new(sql.NullString)
		case mergeattempt.FieldCreatedAt, mergeattempt.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MergeAttempt fields.
func (_m *MergeAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mergeattempt.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case mergeattempt.FieldParentTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_task_id", values[i])
			} else if value.Valid {
				_m.ParentTaskID = value.String
			}
		case mergeattempt.FieldTicketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = value.String
			}
		case mergeattempt.FieldSourceTaskIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_task_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourceTaskIds); err != nil {
					return fmt.Errorf("unmarshal field source_task_ids: %w", err)
				}
			}
		case mergeattempt.FieldIncomingBranches:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field incoming_branches", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IncomingBranches); err != nil {
					return fmt.Errorf("unmarshal field incoming_branches: %w", err)
				}
			}
		case mergeattempt.FieldTargetBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_branch", values[i])
			} else if value.Valid {
				_m.TargetBranch = value.String
			}
		case mergeattempt.FieldMergeOrder:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field merge_order", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MergeOrder); err != nil {
					return fmt.Errorf("unmarshal field merge_order: %w", err)
				}
			}
		case mergeattempt.FieldConflictScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conflict_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConflictScores); err != nil {
					return fmt.Errorf("unmarshal field conflict_scores: %w", err)
				}
			}
		case mergeattempt.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = mergeattempt.Status(value.String)
			}
		case mergeattempt.FieldLlmInvocations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field llm_invocations", values[i])
			} else if value.Valid {
				_m.LlmInvocations = int(value.Int64)
			}
		case mergeattempt.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = value.Int64
			}
		case mergeattempt.FieldCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_usd", values[i])
			} else if value.Valid {
				_m.CostUsd = value.Float64
			}
		case mergeattempt.FieldResolutionLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResolutionLog); err != nil {
					return fmt.Errorf("unmarshal field resolution_log: %w", err)
				}
			}
		case mergeattempt.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case mergeattempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mergeattempt.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MergeAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *MergeAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MergeAttempt.
// Note that you need to call MergeAttempt.Unwrap() before calling this method if this MergeAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MergeAttempt) Update() *MergeAttemptUpdateOne {
	return NewMergeAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MergeAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MergeAttempt) Unwrap() *MergeAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MergeAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MergeAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("MergeAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("parent_task_id=")
	builder.WriteString(_m.ParentTaskID)
	builder.WriteString(", ")
	builder.WriteString("ticket_id=")
	builder.WriteString(_m.TicketID)
	builder.WriteString(", ")
	builder.WriteString("source_task_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceTaskIds))
	builder.WriteString(", ")
	builder.WriteString("incoming_branches=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncomingBranches))
	builder.WriteString(", ")
	builder.WriteString("target_branch=")
	builder.WriteString(_m.TargetBranch)
	builder.WriteString(", ")
	builder.WriteString("merge_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.MergeOrder))
	builder.WriteString(", ")
	builder.WriteString("conflict_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConflictScores))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("llm_invocations=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmInvocations))
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostUsd))
	builder.WriteString(", ")
	builder.WriteString("resolution_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResolutionLog))
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// MergeAttempts is a parsable slice of MergeAttempt.
type MergeAttempts []*MergeAttempt
