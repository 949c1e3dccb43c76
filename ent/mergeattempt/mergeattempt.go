// Code generated by ent, DO NOT EDIT.

package mergeattempt

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mergeattempt type in the database.
	Label = "merge_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "merge_attempt_id"
	// FieldParentTaskID holds the string denoting the parent_task_id field in the database.
	FieldParentTaskID = "parent_task_id"
	// FieldTicketID holds the string denoting the ticket_id field in the database.
	FieldTicketID = "ticket_id"
	// FieldSourceTaskIds holds the string denoting the source_task_ids field in the database.
	FieldSourceTaskIds = "source_task_ids"
	// FieldIncomingBranches holds the string denoting the incoming_branches field in the database.
	FieldIncomingBranches = "incoming_branches"
	// FieldTargetBranch holds the string denoting the target_branch field in the database.
	FieldTargetBranch = "target_branch"
	// FieldMergeOrder holds the string denoting the merge_order field in the database.
	FieldMergeOrder = "merge_order"
	// FieldConflictScores holds the string denoting the conflict_scores field in the database.
	FieldConflictScores = "conflict_scores"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLlmInvocations holds the string denoting the llm_invocations field in the database.
	FieldLlmInvocations = "llm_invocations"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldCostUsd holds the string denoting the cost_usd field in the database.
	FieldCostUsd = "cost_usd"
	// FieldResolutionLog holds the string denoting the resolution_log field in the database.
	FieldResolutionLog = "resolution_log"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the mergeattempt in the database.
	Table = "merge_attempts"
)

// Columns holds all SQL columns for mergeattempt fields.
var Columns = []string{
	FieldID,
	FieldParentTaskID,
	FieldTicketID,
	FieldSourceTaskIds,
	FieldIncomingBranches,
	FieldTargetBranch,
	FieldMergeOrder,
	FieldConflictScores,
	FieldStatus,
	FieldLlmInvocations,
	FieldTokensUsed,
	FieldCostUsd,
	FieldResolutionLog,
	FieldFailureReason,
	FieldCreatedAt,
	FieldCompletedAt,
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
	// DefaultLlmInvocations holds the default value on creation for the "llm_invocations" field.
	DefaultLlmInvocations int
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int64
	// DefaultCostUsd holds the default value on creation for the "cost_usd" field.
	DefaultCostUsd float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusSucceeded, StatusFailed:
		return nil
	default:
		return fmt.Errorf("mergeattempt: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the MergeAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParentTaskID orders the results by the parent_task_id field.
func ByParentTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTaskID, opts...).ToFunc()
}

// ByTicketID orders the results by the ticket_id field.
func ByTicketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketID, opts...).ToFunc()
}

// ByTargetBranch orders the results by the target_branch field.
func ByTargetBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetBranch, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLlmInvocations orders the results by the llm_invocations field.
func ByLlmInvocations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmInvocations, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByCostUsd orders the results by the cost_usd field.
func ByCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostUsd, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
