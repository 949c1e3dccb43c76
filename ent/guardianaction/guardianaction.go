// Code generated by ent, DO NOT EDIT.

package guardianaction

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the guardianaction type in the database.
	Label = "guardian_action"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "action_id"
	// FieldActionType holds the string denoting the action_type field in the database.
	FieldActionType = "action_type"
	// FieldTargetAgentID holds the string denoting the target_agent_id field in the database.
	FieldTargetAgentID = "target_agent_id"
	// FieldTargetTaskID holds the string denoting the target_task_id field in the database.
	FieldTargetTaskID = "target_task_id"
	// FieldAuthorityLevel holds the string denoting the authority_level field in the database.
	FieldAuthorityLevel = "authority_level"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldInitiator holds the string denoting the initiator field in the database.
	FieldInitiator = "initiator"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldApprovedBy holds the string denoting the approved_by field in the database.
	FieldApprovedBy = "approved_by"
	// FieldExecutedAt holds the string denoting the executed_at field in the database.
	FieldExecutedAt = "executed_at"
	// FieldRevertedAt holds the string denoting the reverted_at field in the database.
	FieldRevertedAt = "reverted_at"
	// FieldReviewDeadline holds the string denoting the review_deadline field in the database.
	FieldReviewDeadline = "review_deadline"
	// FieldAuditLog holds the string denoting the audit_log field in the database.
	FieldAuditLog = "audit_log"
	// FieldParams holds the string denoting the params field in the database.
	FieldParams = "params"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the guardianaction in the database.
	Table = "guardian_actions"
)

// Columns holds all SQL columns for guardianaction fields.
var Columns = []string{
	FieldID,
	FieldActionType,
	FieldTargetAgentID,
	FieldTargetTaskID,
	FieldAuthorityLevel,
	FieldReason,
	FieldInitiator,
	FieldStatus,
	FieldApprovedBy,
	FieldExecutedAt,
	FieldRevertedAt,
	FieldReviewDeadline,
	FieldAuditLog,
	FieldParams,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ActionType defines the type for the "action_type" enum field.
type ActionType string

// ActionType values.
const (
	ActionTypeNudge           ActionType = "nudge"
	ActionTypePauseAgent      ActionType = "pause_agent"
	ActionTypeResizeResources ActionType = "resize_resources"
	ActionTypeRestartSandbox  ActionType = "restart_sandbox"
	ActionTypeTerminateAgent  ActionType = "terminate_agent"
)

func (at ActionType) String() string {
	return string(at)
}

// ActionTypeValidator is a validator for the "action_type" field enum values. It is called by the builders before save.
func ActionTypeValidator(at ActionType) error {
	switch at {
	case ActionTypeNudge, ActionTypePauseAgent, ActionTypeResizeResources, ActionTypeRestartSandbox, ActionTypeTerminateAgent:
		return nil
	default:
		return fmt.Errorf("guardianaction: invalid enum value for action_type field: %q", at)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPendingReview is the default value of the Status enum.
const DefaultStatus = StatusPendingReview

// Status values.
const (
	StatusPendingReview Status = "pending_review"
	StatusApproved      Status = "approved"
	StatusExecuted      Status = "executed"
	StatusRejected      Status = "rejected"
	StatusTimedOut      Status = "timed_out"
	StatusReverted      Status = "reverted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPendingReview, StatusApproved, StatusExecuted, StatusRejected, StatusTimedOut, StatusReverted:
		return nil
	default:
		return fmt.Errorf("guardianaction: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the GuardianAction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByActionType orders the results by the action_type field.
func ByActionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionType, opts...).ToFunc()
}

// ByTargetAgentID orders the results by the target_agent_id field.
func ByTargetAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetAgentID, opts...).ToFunc()
}

// ByTargetTaskID orders the results by the target_task_id field.
func ByTargetTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetTaskID, opts...).ToFunc()
}

// ByAuthorityLevel orders the results by the authority_level field.
func ByAuthorityLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorityLevel, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByInitiator orders the results by the initiator field.
func ByInitiator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitiator, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByApprovedBy orders the results by the approved_by field.
func ByApprovedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedBy, opts...).ToFunc()
}

// ByExecutedAt orders the results by the executed_at field.
func ByExecutedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutedAt, opts...).ToFunc()
}

// ByRevertedAt orders the results by the reverted_at field.
func ByRevertedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevertedAt, opts...).ToFunc()
}

// ByReviewDeadline orders the results by the review_deadline field.
func ByReviewDeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewDeadline, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
