// Code generated by ent, DO NOT EDIT.

package guardianaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldContainsFold(FieldID, id))
}

// TargetAgentID applies equality check predicate on the "target_agent_id" field. It's identical to TargetAgentIDEQ.
func TargetAgentID(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldTargetAgentID, v))
}

// TargetTaskID applies equality check predicate on the "target_task_id" field. It's identical to TargetTaskIDEQ.
func TargetTaskID(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldTargetTaskID, v))
}

// AuthorityLevel applies equality check predicate on the "authority_level" field. It's identical to AuthorityLevelEQ.
func AuthorityLevel(v int) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldAuthorityLevel, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldReason, v))
}

// Initiator applies equality check predicate on the "initiator" field. It's identical to InitiatorEQ.
func Initiator(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldInitiator, v))
}

// ApprovedBy applies equality check predicate on the "approved_by" field. It's identical to ApprovedByEQ.
func ApprovedBy(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldApprovedBy, v))
}

// ExecutedAt applies equality check predicate on the "executed_at" field. It's identical to ExecutedAtEQ.
func ExecutedAt(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldExecutedAt, v))
}

// RevertedAt applies equality check predicate on the "reverted_at" field. It's identical to RevertedAtEQ.
func RevertedAt(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldRevertedAt, v))
}

// ReviewDeadline applies equality check predicate on the "review_deadline" field. It's identical to ReviewDeadlineEQ.
func ReviewDeadline(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldReviewDeadline, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldCreatedAt, v))
}

// ActionTypeEQ applies the EQ predicate on the "action_type" field.
func ActionTypeEQ(v ActionType) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldActionType, v))
}

// ActionTypeNEQ applies the NEQ predicate on the "action_type" field.
func ActionTypeNEQ(v ActionType) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNEQ(FieldActionType, v))
}

// ActionTypeIn applies the In predicate on the "action_type" field.
func ActionTypeIn(vs ...ActionType) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIn(FieldActionType, vs...))
}

// ActionTypeNotIn applies the NotIn predicate on the "action_type" field.
func ActionTypeNotIn(vs ...ActionType) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotIn(FieldActionType, vs...))
}

// TargetAgentIDEQ applies the EQ predicate on the "target_agent_id" field.
func TargetAgentIDEQ(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldTargetAgentID, v))
}

// TargetAgentIDNEQ applies the NEQ predicate on the "target_agent_id" field.
func TargetAgentIDNEQ(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNEQ(FieldTargetAgentID, v))
}

// TargetAgentIDIn applies the In predicate on the "target_agent_id" field.
func TargetAgentIDIn(vs ...string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIn(FieldTargetAgentID, vs...))
}

// TargetAgentIDNotIn applies the NotIn predicate on the "target_agent_id" field.
func TargetAgentIDNotIn(vs ...string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotIn(FieldTargetAgentID, vs...))
}

// TargetAgentIDGT applies the GT predicate on the "target_agent_id" field.
func TargetAgentIDGT(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGT(FieldTargetAgentID, v))
}

// TargetAgentIDGTE applies the GTE predicate on the "target_agent_id" field.
func TargetAgentIDGTE(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGTE(FieldTargetAgentID, v))
}

// TargetAgentIDLT applies the LT predicate on the "target_agent_id" field.
func TargetAgentIDLT(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLT(FieldTargetAgentID, v))
}

// TargetAgentIDLTE applies the LTE predicate on the "target_agent_id" field.
func TargetAgentIDLTE(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLTE(FieldTargetAgentID, v))
}

// TargetAgentIDContains applies the Contains predicate on the "target_agent_id" field.
func TargetAgentIDContains(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldContains(FieldTargetAgentID, v))
}

// TargetAgentIDHasPrefix applies the HasPrefix predicate on the "target_agent_id" field.
func TargetAgentIDHasPrefix(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldHasPrefix(FieldTargetAgentID, v))
}

// TargetAgentIDHasSuffix applies the HasSuffix predicate on the "target_agent_id" field.
func TargetAgentIDHasSuffix(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldHasSuffix(FieldTargetAgentID, v))
}

// TargetAgentIDEqualFold applies the EqualFold predicate on the "target_agent_id" field.
func TargetAgentIDEqualFold(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEqualFold(FieldTargetAgentID, v))
}

// TargetAgentIDContainsFold applies the ContainsFold predicate on the "target_agent_id" field.
func TargetAgentIDContainsFold(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldContainsFold(FieldTargetAgentID, v))
}

// TargetTaskIDEQ applies the EQ predicate on the "target_task_id" field.
func TargetTaskIDEQ(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldTargetTaskID, v))
}

// TargetTaskIDNEQ applies the NEQ predicate on the "target_task_id" field.
func TargetTaskIDNEQ(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNEQ(FieldTargetTaskID, v))
}

// TargetTaskIDIn applies the In predicate on the "target_task_id" field.
func TargetTaskIDIn(vs ...string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIn(FieldTargetTaskID, vs...))
}

// TargetTaskIDNotIn applies the NotIn predicate on the "target_task_id" field.
func TargetTaskIDNotIn(vs ...string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotIn(FieldTargetTaskID, vs...))
}

// TargetTaskIDGT applies the GT predicate on the "target_task_id" field.
func TargetTaskIDGT(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGT(FieldTargetTaskID, v))
}

// TargetTaskIDGTE applies the GTE predicate on the "target_task_id" field.
func TargetTaskIDGTE(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGTE(FieldTargetTaskID, v))
}

// TargetTaskIDLT applies the LT predicate on the "target_task_id" field.
func TargetTaskIDLT(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLT(FieldTargetTaskID, v))
}

// TargetTaskIDLTE applies the LTE predicate on the "target_task_id" field.
func TargetTaskIDLTE(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLTE(FieldTargetTaskID, v))
}

// TargetTaskIDContains applies the Contains predicate on the "target_task_id" field.
func TargetTaskIDContains(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldContains(FieldTargetTaskID, v))
}

// TargetTaskIDHasPrefix applies the HasPrefix predicate on the "target_task_id" field.
func TargetTaskIDHasPrefix(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldHasPrefix(FieldTargetTaskID, v))
}

// TargetTaskIDHasSuffix applies the HasSuffix predicate on the "target_task_id" field.
func TargetTaskIDHasSuffix(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldHasSuffix(FieldTargetTaskID, v))
}

// TargetTaskIDIsNil applies the IsNil predicate on the "target_task_id" field.
func TargetTaskIDIsNil() predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIsNull(FieldTargetTaskID))
}

// TargetTaskIDNotNil applies the NotNil predicate on the "target_task_id" field.
func TargetTaskIDNotNil() predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotNull(FieldTargetTaskID))
}

// TargetTaskIDEqualFold applies the EqualFold predicate on the "target_task_id" field.
func TargetTaskIDEqualFold(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEqualFold(FieldTargetTaskID, v))
}

// TargetTaskIDContainsFold applies the ContainsFold predicate on the "target_task_id" field.
func TargetTaskIDContainsFold(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldContainsFold(FieldTargetTaskID, v))
}

// AuthorityLevelEQ applies the EQ predicate on the "authority_level" field.
func AuthorityLevelEQ(v int) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldAuthorityLevel, v))
}

// AuthorityLevelNEQ applies the NEQ predicate on the "authority_level" field.
func AuthorityLevelNEQ(v int) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNEQ(FieldAuthorityLevel, v))
}

// AuthorityLevelIn applies the In predicate on the "authority_level" field.
func AuthorityLevelIn(vs ...int) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIn(FieldAuthorityLevel, vs...))
}

// AuthorityLevelNotIn applies the NotIn predicate on the "authority_level" field.
func AuthorityLevelNotIn(vs ...int) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotIn(FieldAuthorityLevel, vs...))
}

// AuthorityLevelGT applies the GT predicate on the "authority_level" field.
func AuthorityLevelGT(v int) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGT(FieldAuthorityLevel, v))
}

// AuthorityLevelGTE applies the GTE predicate on the "authority_level" field.
func AuthorityLevelGTE(v int) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGTE(FieldAuthorityLevel, v))
}

// AuthorityLevelLT applies the LT predicate on the "authority_level" field.
func AuthorityLevelLT(v int) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLT(FieldAuthorityLevel, v))
}

// AuthorityLevelLTE applies the LTE predicate on the "authority_level" field.
func AuthorityLevelLTE(v int) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLTE(FieldAuthorityLevel, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldContainsFold(FieldReason, v))
}

// InitiatorEQ applies the EQ predicate on the "initiator" field.
func InitiatorEQ(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldInitiator, v))
}

// InitiatorNEQ applies the NEQ predicate on the "initiator" field.
func InitiatorNEQ(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNEQ(FieldInitiator, v))
}

// InitiatorIn applies the In predicate on the "initiator" field.
func InitiatorIn(vs ...string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIn(FieldInitiator, vs...))
}

// InitiatorNotIn applies the NotIn predicate on the "initiator" field.
func InitiatorNotIn(vs ...string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotIn(FieldInitiator, vs...))
}

// InitiatorGT applies the GT predicate on the "initiator" field.
func InitiatorGT(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGT(FieldInitiator, v))
}

// InitiatorGTE applies the GTE predicate on the "initiator" field.
func InitiatorGTE(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGTE(FieldInitiator, v))
}

// InitiatorLT applies the LT predicate on the "initiator" field.
func InitiatorLT(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLT(FieldInitiator, v))
}

// InitiatorLTE applies the LTE predicate on the "initiator" field.
func InitiatorLTE(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLTE(FieldInitiator, v))
}

// InitiatorContains applies the Contains predicate on the "initiator" field.
func InitiatorContains(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldContains(FieldInitiator, v))
}

// InitiatorHasPrefix applies the HasPrefix predicate on the "initiator" field.
func InitiatorHasPrefix(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldHasPrefix(FieldInitiator, v))
}

// InitiatorHasSuffix applies the HasSuffix predicate on the "initiator" field.
func InitiatorHasSuffix(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldHasSuffix(FieldInitiator, v))
}

// InitiatorEqualFold applies the EqualFold predicate on the "initiator" field.
func InitiatorEqualFold(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEqualFold(FieldInitiator, v))
}

// InitiatorContainsFold applies the ContainsFold predicate on the "initiator" field.
func InitiatorContainsFold(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldContainsFold(FieldInitiator, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotIn(FieldStatus, vs...))
}

// ApprovedByEQ applies the EQ predicate on the "approved_by" field.
func ApprovedByEQ(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovedByNEQ applies the NEQ predicate on the "approved_by" field.
func ApprovedByNEQ(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNEQ(FieldApprovedBy, v))
}

// ApprovedByIn applies the In predicate on the "approved_by" field.
func ApprovedByIn(vs ...string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIn(FieldApprovedBy, vs...))
}

// ApprovedByNotIn applies the NotIn predicate on the "approved_by" field.
func ApprovedByNotIn(vs ...string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotIn(FieldApprovedBy, vs...))
}

// ApprovedByGT applies the GT predicate on the "approved_by" field.
func ApprovedByGT(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGT(FieldApprovedBy, v))
}

// ApprovedByGTE applies the GTE predicate on the "approved_by" field.
func ApprovedByGTE(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGTE(FieldApprovedBy, v))
}

// ApprovedByLT applies the LT predicate on the "approved_by" field.
func ApprovedByLT(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLT(FieldApprovedBy, v))
}

// ApprovedByLTE applies the LTE predicate on the "approved_by" field.
func ApprovedByLTE(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLTE(FieldApprovedBy, v))
}

// ApprovedByContains applies the Contains predicate on the "approved_by" field.
func ApprovedByContains(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldContains(FieldApprovedBy, v))
}

// ApprovedByHasPrefix applies the HasPrefix predicate on the "approved_by" field.
func ApprovedByHasPrefix(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldHasPrefix(FieldApprovedBy, v))
}

// ApprovedByHasSuffix applies the HasSuffix predicate on the "approved_by" field.
func ApprovedByHasSuffix(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldHasSuffix(FieldApprovedBy, v))
}

// ApprovedByIsNil applies the IsNil predicate on the "approved_by" field.
func ApprovedByIsNil() predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIsNull(FieldApprovedBy))
}

// ApprovedByNotNil applies the NotNil predicate on the "approved_by" field.
func ApprovedByNotNil() predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotNull(FieldApprovedBy))
}

// ApprovedByEqualFold applies the EqualFold predicate on the "approved_by" field.
func ApprovedByEqualFold(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEqualFold(FieldApprovedBy, v))
}

// ApprovedByContainsFold applies the ContainsFold predicate on the "approved_by" field.
func ApprovedByContainsFold(v string) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldContainsFold(FieldApprovedBy, v))
}

// ExecutedAtEQ applies the EQ predicate on the "executed_at" field.
func ExecutedAtEQ(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldExecutedAt, v))
}

// ExecutedAtNEQ applies the NEQ predicate on the "executed_at" field.
func ExecutedAtNEQ(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNEQ(FieldExecutedAt, v))
}

// ExecutedAtIn applies the In predicate on the "executed_at" field.
func ExecutedAtIn(vs ...time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIn(FieldExecutedAt, vs...))
}

// ExecutedAtNotIn applies the NotIn predicate on the "executed_at" field.
func ExecutedAtNotIn(vs ...time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotIn(FieldExecutedAt, vs...))
}

// ExecutedAtGT applies the GT predicate on the "executed_at" field.
func ExecutedAtGT(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGT(FieldExecutedAt, v))
}

// ExecutedAtGTE applies the GTE predicate on the "executed_at" field.
func ExecutedAtGTE(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGTE(FieldExecutedAt, v))
}

// ExecutedAtLT applies the LT predicate on the "executed_at" field.
func ExecutedAtLT(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLT(FieldExecutedAt, v))
}

// ExecutedAtLTE applies the LTE predicate on the "executed_at" field.
func ExecutedAtLTE(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLTE(FieldExecutedAt, v))
}

// ExecutedAtIsNil applies the IsNil predicate on the "executed_at" field.
func ExecutedAtIsNil() predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIsNull(FieldExecutedAt))
}

// ExecutedAtNotNil applies the NotNil predicate on the "executed_at" field.
func ExecutedAtNotNil() predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotNull(FieldExecutedAt))
}

// RevertedAtEQ applies the EQ predicate on the "reverted_at" field.
func RevertedAtEQ(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldRevertedAt, v))
}

// RevertedAtNEQ applies the NEQ predicate on the "reverted_at" field.
func RevertedAtNEQ(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNEQ(FieldRevertedAt, v))
}

// RevertedAtIn applies the In predicate on the "reverted_at" field.
func RevertedAtIn(vs ...time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIn(FieldRevertedAt, vs...))
}

// RevertedAtNotIn applies the NotIn predicate on the "reverted_at" field.
func RevertedAtNotIn(vs ...time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotIn(FieldRevertedAt, vs...))
}

// RevertedAtGT applies the GT predicate on the "reverted_at" field.
func RevertedAtGT(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGT(FieldRevertedAt, v))
}

// RevertedAtGTE applies the GTE predicate on the "reverted_at" field.
func RevertedAtGTE(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGTE(FieldRevertedAt, v))
}

// RevertedAtLT applies the LT predicate on the "reverted_at" field.
func RevertedAtLT(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLT(FieldRevertedAt, v))
}

// RevertedAtLTE applies the LTE predicate on the "reverted_at" field.
func RevertedAtLTE(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLTE(FieldRevertedAt, v))
}

// RevertedAtIsNil applies the IsNil predicate on the "reverted_at" field.
func RevertedAtIsNil() predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIsNull(FieldRevertedAt))
}

// RevertedAtNotNil applies the NotNil predicate on the "reverted_at" field.
func RevertedAtNotNil() predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotNull(FieldRevertedAt))
}

// ReviewDeadlineEQ applies the EQ predicate on the "review_deadline" field.
func ReviewDeadlineEQ(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldReviewDeadline, v))
}

// ReviewDeadlineNEQ applies the NEQ predicate on the "review_deadline" field.
func ReviewDeadlineNEQ(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNEQ(FieldReviewDeadline, v))
}

// ReviewDeadlineIn applies the In predicate on the "review_deadline" field.
func ReviewDeadlineIn(vs ...time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIn(FieldReviewDeadline, vs...))
}

// ReviewDeadlineNotIn applies the NotIn predicate on the "review_deadline" field.
func ReviewDeadlineNotIn(vs ...time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotIn(FieldReviewDeadline, vs...))
}

// ReviewDeadlineGT applies the GT predicate on the "review_deadline" field.
func ReviewDeadlineGT(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGT(FieldReviewDeadline, v))
}

// ReviewDeadlineGTE applies the GTE predicate on the "review_deadline" field.
func ReviewDeadlineGTE(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGTE(FieldReviewDeadline, v))
}

// ReviewDeadlineLT applies the LT predicate on the "review_deadline" field.
func ReviewDeadlineLT(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLT(FieldReviewDeadline, v))
}

// ReviewDeadlineLTE applies the LTE predicate on the "review_deadline" field.
func ReviewDeadlineLTE(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLTE(FieldReviewDeadline, v))
}

// ReviewDeadlineIsNil applies the IsNil predicate on the "review_deadline" field.
func ReviewDeadlineIsNil() predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIsNull(FieldReviewDeadline))
}

// ReviewDeadlineNotNil applies the NotNil predicate on the "review_deadline" field.
func ReviewDeadlineNotNil() predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotNull(FieldReviewDeadline))
}

// AuditLogIsNil applies the IsNil predicate on the "audit_log" field.
func AuditLogIsNil() predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIsNull(FieldAuditLog))
}

// AuditLogNotNil applies the NotNil predicate on the "audit_log" field.
func AuditLogNotNil() predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotNull(FieldAuditLog))
}

// ParamsIsNil applies the IsNil predicate on the "params" field.
func ParamsIsNil() predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIsNull(FieldParams))
}

// ParamsNotNil applies the NotNil predicate on the "params" field.
func ParamsNotNil() predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotNull(FieldParams))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GuardianAction {
	return predicate.GuardianAction(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GuardianAction) predicate.GuardianAction {
	return predicate.GuardianAction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GuardianAction) predicate.GuardianAction {
	return predicate.GuardianAction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GuardianAction) predicate.GuardianAction {
	return predicate.GuardianAction(sql.NotPredicates(p))
}
