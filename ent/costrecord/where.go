// Code generated by ent, DO NOT EDIT.

package costrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldTaskID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldAgentID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldModel, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldCompletionTokens, v))
}

// PromptCost applies equality check predicate on the "prompt_cost" field. It's identical to PromptCostEQ.
func PromptCost(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldPromptCost, v))
}

// CompletionCost applies equality check predicate on the "completion_cost" field. It's identical to CompletionCostEQ.
func CompletionCost(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldCompletionCost, v))
}

// TotalCost applies equality check predicate on the "total_cost" field. It's identical to TotalCostEQ.
func TotalCost(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldTotalCost, v))
}

// SandboxID applies equality check predicate on the "sandbox_id" field. It's identical to SandboxIDEQ.
func SandboxID(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldSandboxID, v))
}

// BillingAccount applies equality check predicate on the "billing_account" field. It's identical to BillingAccountEQ.
func BillingAccount(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldBillingAccount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldContainsFold(FieldTaskID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldContainsFold(FieldAgentID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldContainsFold(FieldModel, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLTE(FieldPromptTokens, v))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLTE(FieldCompletionTokens, v))
}

// PromptCostEQ applies the EQ predicate on the "prompt_cost" field.
func PromptCostEQ(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldPromptCost, v))
}

// PromptCostNEQ applies the NEQ predicate on the "prompt_cost" field.
func PromptCostNEQ(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNEQ(FieldPromptCost, v))
}

// PromptCostIn applies the In predicate on the "prompt_cost" field.
func PromptCostIn(vs ...float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIn(FieldPromptCost, vs...))
}

// PromptCostNotIn applies the NotIn predicate on the "prompt_cost" field.
func PromptCostNotIn(vs ...float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotIn(FieldPromptCost, vs...))
}

// PromptCostGT applies the GT predicate on the "prompt_cost" field.
func PromptCostGT(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGT(FieldPromptCost, v))
}

// PromptCostGTE applies the GTE predicate on the "prompt_cost" field.
func PromptCostGTE(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGTE(FieldPromptCost, v))
}

// PromptCostLT applies the LT predicate on the "prompt_cost" field.
func PromptCostLT(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLT(FieldPromptCost, v))
}

// PromptCostLTE applies the LTE predicate on the "prompt_cost" field.
func PromptCostLTE(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLTE(FieldPromptCost, v))
}

// CompletionCostEQ applies the EQ predicate on the "completion_cost" field.
func CompletionCostEQ(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldCompletionCost, v))
}

// CompletionCostNEQ applies the NEQ predicate on the "completion_cost" field.
func CompletionCostNEQ(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNEQ(FieldCompletionCost, v))
}

// CompletionCostIn applies the In predicate on the "completion_cost" field.
func CompletionCostIn(vs ...float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIn(FieldCompletionCost, vs...))
}

// CompletionCostNotIn applies the NotIn predicate on the "completion_cost" field.
func CompletionCostNotIn(vs ...float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotIn(FieldCompletionCost, vs...))
}

// CompletionCostGT applies the GT predicate on the "completion_cost" field.
func CompletionCostGT(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGT(FieldCompletionCost, v))
}

// CompletionCostGTE applies the GTE predicate on the "completion_cost" field.
func CompletionCostGTE(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGTE(FieldCompletionCost, v))
}

// CompletionCostLT applies the LT predicate on the "completion_cost" field.
func CompletionCostLT(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLT(FieldCompletionCost, v))
}

// CompletionCostLTE applies the LTE predicate on the "completion_cost" field.
func CompletionCostLTE(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLTE(FieldCompletionCost, v))
}

// TotalCostEQ applies the EQ predicate on the "total_cost" field.
func TotalCostEQ(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldTotalCost, v))
}

// TotalCostNEQ applies the NEQ predicate on the "total_cost" field.
func TotalCostNEQ(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNEQ(FieldTotalCost, v))
}

// TotalCostIn applies the In predicate on the "total_cost" field.
func TotalCostIn(vs ...float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIn(FieldTotalCost, vs...))
}

// TotalCostNotIn applies the NotIn predicate on the "total_cost" field.
func TotalCostNotIn(vs ...float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotIn(FieldTotalCost, vs...))
}

// TotalCostGT applies the GT predicate on the "total_cost" field.
func TotalCostGT(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGT(FieldTotalCost, v))
}

// TotalCostGTE applies the GTE predicate on the "total_cost" field.
func TotalCostGTE(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGTE(FieldTotalCost, v))
}

// TotalCostLT applies the LT predicate on the "total_cost" field.
func TotalCostLT(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLT(FieldTotalCost, v))
}

// TotalCostLTE applies the LTE predicate on the "total_cost" field.
func TotalCostLTE(v float64) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLTE(FieldTotalCost, v))
}

// SandboxIDEQ applies the EQ predicate on the "sandbox_id" field.
func SandboxIDEQ(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldSandboxID, v))
}

// SandboxIDNEQ applies the NEQ predicate on the "sandbox_id" field.
func SandboxIDNEQ(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNEQ(FieldSandboxID, v))
}

// SandboxIDIn applies the In predicate on the "sandbox_id" field.
func SandboxIDIn(vs ...string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIn(FieldSandboxID, vs...))
}

// SandboxIDNotIn applies the NotIn predicate on the "sandbox_id" field.
func SandboxIDNotIn(vs ...string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotIn(FieldSandboxID, vs...))
}

// SandboxIDGT applies the GT predicate on the "sandbox_id" field.
func SandboxIDGT(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGT(FieldSandboxID, v))
}

// SandboxIDGTE applies the GTE predicate on the "sandbox_id" field.
func SandboxIDGTE(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGTE(FieldSandboxID, v))
}

// SandboxIDLT applies the LT predicate on the "sandbox_id" field.
func SandboxIDLT(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLT(FieldSandboxID, v))
}

// SandboxIDLTE applies the LTE predicate on the "sandbox_id" field.
func SandboxIDLTE(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLTE(FieldSandboxID, v))
}

// SandboxIDContains applies the Contains predicate on the "sandbox_id" field.
func SandboxIDContains(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldContains(FieldSandboxID, v))
}

// SandboxIDHasPrefix applies the HasPrefix predicate on the "sandbox_id" field.
func SandboxIDHasPrefix(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldHasPrefix(FieldSandboxID, v))
}

// SandboxIDHasSuffix applies the HasSuffix predicate on the "sandbox_id" field.
func SandboxIDHasSuffix(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldHasSuffix(FieldSandboxID, v))
}

// SandboxIDIsNil applies the IsNil predicate on the "sandbox_id" field.
func SandboxIDIsNil() predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIsNull(FieldSandboxID))
}

// SandboxIDNotNil applies the NotNil predicate on the "sandbox_id" field.
func SandboxIDNotNil() predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotNull(FieldSandboxID))
}

// SandboxIDEqualFold applies the EqualFold predicate on the "sandbox_id" field.
func SandboxIDEqualFold(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEqualFold(FieldSandboxID, v))
}

// SandboxIDContainsFold applies the ContainsFold predicate on the "sandbox_id" field.
func SandboxIDContainsFold(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldContainsFold(FieldSandboxID, v))
}

// BillingAccountEQ applies the EQ predicate on the "billing_account" field.
func BillingAccountEQ(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldBillingAccount, v))
}

// BillingAccountNEQ applies the NEQ predicate on the "billing_account" field.
func BillingAccountNEQ(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNEQ(FieldBillingAccount, v))
}

// BillingAccountIn applies the In predicate on the "billing_account" field.
func BillingAccountIn(vs ...string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIn(FieldBillingAccount, vs...))
}

// BillingAccountNotIn applies the NotIn predicate on the "billing_account" field.
func BillingAccountNotIn(vs ...string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotIn(FieldBillingAccount, vs...))
}

// BillingAccountGT applies the GT predicate on the "billing_account" field.
func BillingAccountGT(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGT(FieldBillingAccount, v))
}

// BillingAccountGTE applies the GTE predicate on the "billing_account" field.
func BillingAccountGTE(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGTE(FieldBillingAccount, v))
}

// BillingAccountLT applies the LT predicate on the "billing_account" field.
func BillingAccountLT(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLT(FieldBillingAccount, v))
}

// BillingAccountLTE applies the LTE predicate on the "billing_account" field.
func BillingAccountLTE(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLTE(FieldBillingAccount, v))
}

// BillingAccountContains applies the Contains predicate on the "billing_account" field.
func BillingAccountContains(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldContains(FieldBillingAccount, v))
}

// BillingAccountHasPrefix applies the HasPrefix predicate on the "billing_account" field.
func BillingAccountHasPrefix(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldHasPrefix(FieldBillingAccount, v))
}

// BillingAccountHasSuffix applies the HasSuffix predicate on the "billing_account" field.
func BillingAccountHasSuffix(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldHasSuffix(FieldBillingAccount, v))
}

// BillingAccountIsNil applies the IsNil predicate on the "billing_account" field.
func BillingAccountIsNil() predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIsNull(FieldBillingAccount))
}

// BillingAccountNotNil applies the NotNil predicate on the "billing_account" field.
func BillingAccountNotNil() predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotNull(FieldBillingAccount))
}

// BillingAccountEqualFold applies the EqualFold predicate on the "billing_account" field.
func BillingAccountEqualFold(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEqualFold(FieldBillingAccount, v))
}

// BillingAccountContainsFold applies the ContainsFold predicate on the "billing_account" field.
func BillingAccountContainsFold(v string) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldContainsFold(FieldBillingAccount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CostRecord {
	return predicate.CostRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.CostRecord {
	return predicate.CostRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.CostRecord {
	return predicate.CostRecord(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CostRecord) predicate.CostRecord {
	return predicate.CostRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CostRecord) predicate.CostRecord {
	return predicate.CostRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CostRecord) predicate.CostRecord {
	return predicate.CostRecord(sql.NotPredicates(p))
}
