// Code generated by ent, DO NOT EDIT.

package mergeattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldContainsFold(FieldID, id))
}

// ParentTaskID applies equality check predicate on the "parent_task_id" field. It's identical to ParentTaskIDEQ.
func ParentTaskID(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldParentTaskID, v))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldTicketID, v))
}

// TargetBranch applies equality check predicate on the "target_branch" field. It's identical to TargetBranchEQ.
func TargetBranch(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldTargetBranch, v))
}

// LlmInvocations applies equality check predicate on the "llm_invocations" field. It's identical to LlmInvocationsEQ.
func LlmInvocations(v int) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldLlmInvocations, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldTokensUsed, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldCostUsd, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldFailureReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldCompletedAt, v))
}

// ParentTaskIDEQ applies the EQ predicate on the "parent_task_id" field.
func ParentTaskIDEQ(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldParentTaskID, v))
}

// ParentTaskIDNEQ applies the NEQ predicate on the "parent_task_id" field.
func ParentTaskIDNEQ(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNEQ(FieldParentTaskID, v))
}

// ParentTaskIDIn applies the In predicate on the "parent_task_id" field.
func ParentTaskIDIn(vs ...string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIn(FieldParentTaskID, vs...))
}

// ParentTaskIDNotIn applies the NotIn predicate on the "parent_task_id" field.
func ParentTaskIDNotIn(vs ...string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotIn(FieldParentTaskID, vs...))
}

// ParentTaskIDGT applies the GT predicate on the "parent_task_id" field.
func ParentTaskIDGT(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGT(FieldParentTaskID, v))
}

// ParentTaskIDGTE applies the GTE predicate on the "parent_task_id" field.
func ParentTaskIDGTE(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGTE(FieldParentTaskID, v))
}

// ParentTaskIDLT applies the LT predicate on the "parent_task_id" field.
func ParentTaskIDLT(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLT(FieldParentTaskID, v))
}

// ParentTaskIDLTE applies the LTE predicate on the "parent_task_id" field.
func ParentTaskIDLTE(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLTE(FieldParentTaskID, v))
}

// ParentTaskIDContains applies the Contains predicate on the "parent_task_id" field.
func ParentTaskIDContains(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldContains(FieldParentTaskID, v))
}

// ParentTaskIDHasPrefix applies the HasPrefix predicate on the "parent_task_id" field.
func ParentTaskIDHasPrefix(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldHasPrefix(FieldParentTaskID, v))
}

// ParentTaskIDHasSuffix applies the HasSuffix predicate on the "parent_task_id" field.
func ParentTaskIDHasSuffix(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldHasSuffix(FieldParentTaskID, v))
}

// ParentTaskIDEqualFold applies the EqualFold predicate on the "parent_task_id" field.
func ParentTaskIDEqualFold(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEqualFold(FieldParentTaskID, v))
}

// ParentTaskIDContainsFold applies the ContainsFold predicate on the "parent_task_id" field.
func ParentTaskIDContainsFold(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldContainsFold(FieldParentTaskID, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotIn(FieldTicketID, vs...))
}

// TicketIDGT applies the GT predicate on the "ticket_id" field.
func TicketIDGT(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGT(FieldTicketID, v))
}

// TicketIDGTE applies the GTE predicate on the "ticket_id" field.
func TicketIDGTE(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGTE(FieldTicketID, v))
}

// TicketIDLT applies the LT predicate on the "ticket_id" field.
func TicketIDLT(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLT(FieldTicketID, v))
}

// TicketIDLTE applies the LTE predicate on the "ticket_id" field.
func TicketIDLTE(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLTE(FieldTicketID, v))
}

// TicketIDContains applies the Contains predicate on the "ticket_id" field.
func TicketIDContains(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldContains(FieldTicketID, v))
}

// TicketIDHasPrefix applies the HasPrefix predicate on the "ticket_id" field.
func TicketIDHasPrefix(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldHasPrefix(FieldTicketID, v))
}

// TicketIDHasSuffix applies the HasSuffix predicate on the "ticket_id" field.
func TicketIDHasSuffix(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldHasSuffix(FieldTicketID, v))
}

// TicketIDIsNil applies the IsNil predicate on the "ticket_id" field.
func TicketIDIsNil() predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIsNull(FieldTicketID))
}

// TicketIDNotNil applies the NotNil predicate on the "ticket_id" field.
func TicketIDNotNil() predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotNull(FieldTicketID))
}

// TicketIDEqualFold applies the EqualFold predicate on the "ticket_id" field.
func TicketIDEqualFold(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEqualFold(FieldTicketID, v))
}

// TicketIDContainsFold applies the ContainsFold predicate on the "ticket_id" field.
func TicketIDContainsFold(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldContainsFold(FieldTicketID, v))
}

// TargetBranchEQ applies the EQ predicate on the "target_branch" field.
func TargetBranchEQ(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldTargetBranch, v))
}

// TargetBranchNEQ applies the NEQ predicate on the "target_branch" field.
func TargetBranchNEQ(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNEQ(FieldTargetBranch, v))
}

// TargetBranchIn applies the In predicate on the "target_branch" field.
func TargetBranchIn(vs ...string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIn(FieldTargetBranch, vs...))
}

// TargetBranchNotIn applies the NotIn predicate on the "target_branch" field.
func TargetBranchNotIn(vs ...string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotIn(FieldTargetBranch, vs...))
}

// TargetBranchGT applies the GT predicate on the "target_branch" field.
func TargetBranchGT(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGT(FieldTargetBranch, v))
}

// TargetBranchGTE applies the GTE predicate on the "target_branch" field.
func TargetBranchGTE(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGTE(FieldTargetBranch, v))
}

// TargetBranchLT applies the LT predicate on the "target_branch" field.
func TargetBranchLT(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLT(FieldTargetBranch, v))
}

// TargetBranchLTE applies the LTE predicate on the "target_branch" field.
func TargetBranchLTE(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLTE(FieldTargetBranch, v))
}

// TargetBranchContains applies the Contains predicate on the "target_branch" field.
func TargetBranchContains(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldContains(FieldTargetBranch, v))
}

// TargetBranchHasPrefix applies the HasPrefix predicate on the "target_branch" field.
func TargetBranchHasPrefix(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldHasPrefix(FieldTargetBranch, v))
}

// TargetBranchHasSuffix applies the HasSuffix predicate on the "target_branch" field.
func TargetBranchHasSuffix(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldHasSuffix(FieldTargetBranch, v))
}

// TargetBranchEqualFold applies the EqualFold predicate on the "target_branch" field.
func TargetBranchEqualFold(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEqualFold(FieldTargetBranch, v))
}

// TargetBranchContainsFold applies the ContainsFold predicate on the "target_branch" field.
func TargetBranchContainsFold(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldContainsFold(FieldTargetBranch, v))
}

// MergeOrderIsNil applies the IsNil predicate on the "merge_order" field.
func MergeOrderIsNil() predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIsNull(FieldMergeOrder))
}

// MergeOrderNotNil applies the NotNil predicate on the "merge_order" field.
func MergeOrderNotNil() predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotNull(FieldMergeOrder))
}

// ConflictScoresIsNil applies the IsNil predicate on the "conflict_scores" field.
func ConflictScoresIsNil() predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIsNull(FieldConflictScores))
}

// ConflictScoresNotNil applies the NotNil predicate on the "conflict_scores" field.
func ConflictScoresNotNil() predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotNull(FieldConflictScores))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotIn(FieldStatus, vs...))
}

// LlmInvocationsEQ applies the EQ predicate on the "llm_invocations" field.
func LlmInvocationsEQ(v int) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldLlmInvocations, v))
}

// LlmInvocationsNEQ applies the NEQ predicate on the "llm_invocations" field.
func LlmInvocationsNEQ(v int) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNEQ(FieldLlmInvocations, v))
}

// LlmInvocationsIn applies the In predicate on the "llm_invocations" field.
func LlmInvocationsIn(vs ...int) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIn(FieldLlmInvocations, vs...))
}

// LlmInvocationsNotIn applies the NotIn predicate on the "llm_invocations" field.
func LlmInvocationsNotIn(vs ...int) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotIn(FieldLlmInvocations, vs...))
}

// LlmInvocationsGT applies the GT predicate on the "llm_invocations" field.
func LlmInvocationsGT(v int) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGT(FieldLlmInvocations, v))
}

// LlmInvocationsGTE applies the GTE predicate on the "llm_invocations" field.
func LlmInvocationsGTE(v int) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGTE(FieldLlmInvocations, v))
}

// LlmInvocationsLT applies the LT predicate on the "llm_invocations" field.
func LlmInvocationsLT(v int) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLT(FieldLlmInvocations, v))
}

// LlmInvocationsLTE applies the LTE predicate on the "llm_invocations" field.
func LlmInvocationsLTE(v int) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLTE(FieldLlmInvocations, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLTE(FieldTokensUsed, v))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLTE(FieldCostUsd, v))
}

// ResolutionLogIsNil applies the IsNil predicate on the "resolution_log" field.
func ResolutionLogIsNil() predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIsNull(FieldResolutionLog))
}

// ResolutionLogNotNil applies the NotNil predicate on the "resolution_log" field.
func ResolutionLogNotNil() predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotNull(FieldResolutionLog))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldContainsFold(FieldFailureReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MergeAttempt) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MergeAttempt) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MergeAttempt) predicate.MergeAttempt {
	return predicate.MergeAttempt(sql.NotPredicates(p))
}
