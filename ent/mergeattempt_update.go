// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/helmsman-ai/helmsman/ent/mergeattempt"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// MergeAttemptUpdate is the builder for updating MergeAttempt entities.
type MergeAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *MergeAttemptMutation
}

// Where appends a list predicates to the MergeAttemptUpdate builder.
func (_u *MergeAttemptUpdate) Where(ps ...predicate.MergeAttempt) *MergeAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *MergeAttemptUpdate) SetParentTaskID(v string) *MergeAttemptUpdate {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *MergeAttemptUpdate) SetNillableParentTaskID(v *string) *MergeAttemptUpdate {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// SetTicketID sets the "ticket_id" field.
func (_u *MergeAttemptUpdate) SetTicketID(v string) *MergeAttemptUpdate {
	_u.mutation.SetTicketID(v)
	return _u
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_u *MergeAttemptUpdate) SetNillableTicketID(v *string) *MergeAttemptUpdate {
	if v != nil {
		_u.SetTicketID(*v)
	}
	return _u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (_u *MergeAttemptUpdate) ClearTicketID() *MergeAttemptUpdate {
	_u.mutation.ClearTicketID()
	return _u
}

// SetSourceTaskIds sets the "source_task_ids" field.
func (_u *MergeAttemptUpdate) SetSourceTaskIds(v []string) *MergeAttemptUpdate {
	_u.mutation.SetSourceTaskIds(v)
	return _u
}

// AppendSourceTaskIds appends value to the "source_task_ids" field.
func (_u *MergeAttemptUpdate) AppendSourceTaskIds(v []string) *MergeAttemptUpdate {
	_u.mutation.AppendSourceTaskIds(v)
	return _u
}

// SetIncomingBranches sets the "incoming_branches" field.
func (_u *MergeAttemptUpdate) SetIncomingBranches(v []string) *MergeAttemptUpdate {
	_u.mutation.SetIncomingBranches(v)
	return _u
}

// AppendIncomingBranches appends value to the "incoming_branches" field.
func (_u *MergeAttemptUpdate) AppendIncomingBranches(v []string) *MergeAttemptUpdate {
	_u.mutation.AppendIncomingBranches(v)
	return _u
}

// SetTargetBranch sets the "target_branch" field.
func (_u *MergeAttemptUpdate) SetTargetBranch(v string) *MergeAttemptUpdate {
	_u.mutation.SetTargetBranch(v)
	return _u
}

// SetNillableTargetBranch sets the "target_branch" field if the given value is not nil.
func (_u *MergeAttemptUpdate) SetNillableTargetBranch(v *string) *MergeAttemptUpdate {
	if v != nil {
		_u.SetTargetBranch(*v)
	}
	return _u
}

// SetMergeOrder sets the "merge_order" field.
func (_u *MergeAttemptUpdate) SetMergeOrder(v []string) *MergeAttemptUpdate {
	_u.mutation.SetMergeOrder(v)
	return _u
}

// AppendMergeOrder appends value to the "merge_order" field.
func (_u *MergeAttemptUpdate) AppendMergeOrder(v []string) *MergeAttemptUpdate {
	_u.mutation.AppendMergeOrder(v)
	return _u
}

// ClearMergeOrder clears the value of the "merge_order" field.
func (_u *MergeAttemptUpdate) ClearMergeOrder() *MergeAttemptUpdate {
	_u.mutation.ClearMergeOrder()
	return _u
}

// SetConflictScores sets the "conflict_scores" field.
func (_u *MergeAttemptUpdate) SetConflictScores(v map[string]int) *MergeAttemptUpdate {
	_u.mutation.SetConflictScores(v)
	return _u
}

// ClearConflictScores clears the value of the "conflict_scores" field.
func (_u *MergeAttemptUpdate) ClearConflictScores() *MergeAttemptUpdate {
	_u.mutation.ClearConflictScores()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MergeAttemptUpdate) SetStatus(v mergeattempt.Status) *MergeAttemptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MergeAttemptUpdate) SetNillableStatus(v *mergeattempt.Status) *MergeAttemptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLlmInvocations sets the "llm_invocations" field.
func (_u *MergeAttemptUpdate) SetLlmInvocations(v int) *MergeAttemptUpdate {
	_u.mutation.ResetLlmInvocations()
	_u.mutation.SetLlmInvocations(v)
	return _u
}

// SetNillableLlmInvocations sets the "llm_invocations" field if the given value is not nil.
func (_u *MergeAttemptUpdate) SetNillableLlmInvocations(v *int) *MergeAttemptUpdate {
	if v != nil {
		_u.SetLlmInvocations(*v)
	}
	return _u
}

// AddLlmInvocations adds value to the "llm_invocations" field.
func (_u *MergeAttemptUpdate) AddLlmInvocations(v int) *MergeAttemptUpdate {
	_u.mutation.AddLlmInvocations(v)
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *MergeAttemptUpdate) SetTokensUsed(v int64) *MergeAttemptUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *MergeAttemptUpdate) SetNillableTokensUsed(v *int64) *MergeAttemptUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *MergeAttemptUpdate) AddTokensUsed(v int64) *MergeAttemptUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *MergeAttemptUpdate) SetCostUsd(v float64) *MergeAttemptUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *MergeAttemptUpdate) SetNillableCostUsd(v *float64) *MergeAttemptUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *MergeAttemptUpdate) AddCostUsd(v float64) *MergeAttemptUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetResolutionLog sets the "resolution_log" field.
func (_u *MergeAttemptUpdate) SetResolutionLog(v []map[string]interface{}) *MergeAttemptUpdate {
	_u.mutation.SetResolutionLog(v)
	return _u
}

// AppendResolutionLog appends value to the "resolution_log" field.
func (_u *MergeAttemptUpdate) AppendResolutionLog(v []map[string]interface{}) *MergeAttemptUpdate {
	_u.mutation.AppendResolutionLog(v)
	return _u
}

// ClearResolutionLog clears the value of the "resolution_log" field.
func (_u *MergeAttemptUpdate) ClearResolutionLog() *MergeAttemptUpdate {
	_u.mutation.ClearResolutionLog()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *MergeAttemptUpdate) SetFailureReason(v string) *MergeAttemptUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *MergeAttemptUpdate) SetNillableFailureReason(v *string) *MergeAttemptUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *MergeAttemptUpdate) ClearFailureReason() *MergeAttemptUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MergeAttemptUpdate) SetCompletedAt(v time.Time) *MergeAttemptUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MergeAttemptUpdate) SetNillableCompletedAt(v *time.Time) *MergeAttemptUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MergeAttemptUpdate) ClearCompletedAt() *MergeAttemptUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the MergeAttemptMutation object of the builder.
func (_u *MergeAttemptUpdate) Mutation() *MergeAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MergeAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MergeAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MergeAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MergeAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MergeAttemptUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mergeattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MergeAttempt.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MergeAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mergeattempt.Table, mergeattempt.Columns, sqlgraph.NewFieldSpec(mergeattempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(mergeattempt.FieldParentTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TicketID(); ok {
		_spec.SetField(mergeattempt.FieldTicketID, field.TypeString, value)
	}
	if _u.mutation.TicketIDCleared() {
		_spec.ClearField(mergeattempt.FieldTicketID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceTaskIds(); ok {
		_spec.SetField(mergeattempt.FieldSourceTaskIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceTaskIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mergeattempt.FieldSourceTaskIds, value)
		})
	}
	if value, ok := _u.mutation.IncomingBranches(); ok {
		_spec.SetField(mergeattempt.FieldIncomingBranches, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIncomingBranches(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mergeattempt.FieldIncomingBranches, value)
		})
	}
	if value, ok := _u.mutation.TargetBranch(); ok {
		_spec.SetField(mergeattempt.FieldTargetBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.MergeOrder(); ok {
		_spec.SetField(mergeattempt.FieldMergeOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMergeOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mergeattempt.FieldMergeOrder, value)
		})
	}
	if _u.mutation.MergeOrderCleared() {
		_spec.ClearField(mergeattempt.FieldMergeOrder, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConflictScores(); ok {
		_spec.SetField(mergeattempt.FieldConflictScores, field.TypeJSON, value)
	}
	if _u.mutation.ConflictScoresCleared() {
		_spec.ClearField(mergeattempt.FieldConflictScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mergeattempt.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LlmInvocations(); ok {
		_spec.SetField(mergeattempt.FieldLlmInvocations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLlmInvocations(); ok {
		_spec.AddField(mergeattempt.FieldLlmInvocations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(mergeattempt.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(mergeattempt.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(mergeattempt.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(mergeattempt.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ResolutionLog(); ok {
		_spec.SetField(mergeattempt.FieldResolutionLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResolutionLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mergeattempt.FieldResolutionLog, value)
		})
	}
	if _u.mutation.ResolutionLogCleared() {
		_spec.ClearField(mergeattempt.FieldResolutionLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(mergeattempt.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(mergeattempt.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(mergeattempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(mergeattempt.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mergeattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MergeAttemptUpdateOne is the builder for updating a single MergeAttempt entity.
type MergeAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MergeAttemptMutation
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *MergeAttemptUpdateOne) SetParentTaskID(v string) *MergeAttemptUpdateOne {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *MergeAttemptUpdateOne) SetNillableParentTaskID(v *string) *MergeAttemptUpdateOne {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// SetTicketID sets the "ticket_id" field.
func (_u *MergeAttemptUpdateOne) SetTicketID(v string) *MergeAttemptUpdateOne {
	_u.mutation.SetTicketID(v)
	return _u
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_u *MergeAttemptUpdateOne) SetNillableTicketID(v *string) *MergeAttemptUpdateOne {
	if v != nil {
		_u.SetTicketID(*v)
	}
	return _u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (_u *MergeAttemptUpdateOne) ClearTicketID() *MergeAttemptUpdateOne {
	_u.mutation.ClearTicketID()
	return _u
}

// SetSourceTaskIds sets the "source_task_ids" field.
func (_u *MergeAttemptUpdateOne) SetSourceTaskIds(v []string) *MergeAttemptUpdateOne {
	_u.mutation.SetSourceTaskIds(v)
	return _u
}

// AppendSourceTaskIds appends value to the "source_task_ids" field.
func (_u *MergeAttemptUpdateOne) AppendSourceTaskIds(v []string) *MergeAttemptUpdateOne {
	_u.mutation.AppendSourceTaskIds(v)
	return _u
}

// SetIncomingBranches sets the "incoming_branches" field.
func (_u *MergeAttemptUpdateOne) SetIncomingBranches(v []string) *MergeAttemptUpdateOne {
	_u.mutation.SetIncomingBranches(v)
	return _u
}

// AppendIncomingBranches appends value to the "incoming_branches" field.
func (_u *MergeAttemptUpdateOne) AppendIncomingBranches(v []string) *MergeAttemptUpdateOne {
	_u.mutation.AppendIncomingBranches(v)
	return _u
}

// SetTargetBranch sets the "target_branch" field.
func (_u *MergeAttemptUpdateOne) SetTargetBranch(v string) *MergeAttemptUpdateOne {
	_u.mutation.SetTargetBranch(v)
	return _u
}

// SetNillableTargetBranch sets the "target_branch" field if the given value is not nil.
func (_u *MergeAttemptUpdateOne) SetNillableTargetBranch(v *string) *MergeAttemptUpdateOne {
	if v != nil {
		_u.SetTargetBranch(*v)
	}
	return _u
}

// SetMergeOrder sets the "merge_order" field.
func (_u *MergeAttemptUpdateOne) SetMergeOrder(v []string) *MergeAttemptUpdateOne {
	_u.mutation.SetMergeOrder(v)
	return _u
}

// AppendMergeOrder appends value to the "merge_order" field.
func (_u *MergeAttemptUpdateOne) AppendMergeOrder(v []string) *MergeAttemptUpdateOne {
	_u.mutation.AppendMergeOrder(v)
	return _u
}

// ClearMergeOrder clears the value of the "merge_order" field.
func (_u *MergeAttemptUpdateOne) ClearMergeOrder() *MergeAttemptUpdateOne {
	_u.mutation.ClearMergeOrder()
	return _u
}

// SetConflictScores sets the "conflict_scores" field.
func (_u *MergeAttemptUpdateOne) SetConflictScores(v map[string]int) *MergeAttemptUpdateOne {
	_u.mutation.SetConflictScores(v)
	return _u
}

// ClearConflictScores clears the value of the "conflict_scores" field.
func (_u *MergeAttemptUpdateOne) ClearConflictScores() *MergeAttemptUpdateOne {
	_u.mutation.ClearConflictScores()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MergeAttemptUpdateOne) SetStatus(v mergeattempt.Status) *MergeAttemptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MergeAttemptUpdateOne) SetNillableStatus(v *mergeattempt.Status) *MergeAttemptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLlmInvocations sets the "llm_invocations" field.
func (_u *MergeAttemptUpdateOne) SetLlmInvocations(v int) *MergeAttemptUpdateOne {
	_u.mutation.ResetLlmInvocations()
	_u.mutation.SetLlmInvocations(v)
	return _u
}

// SetNillableLlmInvocations sets the "llm_invocations" field if the given value is not nil.
func (_u *MergeAttemptUpdateOne) SetNillableLlmInvocations(v *int) *MergeAttemptUpdateOne {
	if v != nil {
		_u.SetLlmInvocations(*v)
	}
	return _u
}

// AddLlmInvocations adds value to the "llm_invocations" field.
func (_u *MergeAttemptUpdateOne) AddLlmInvocations(v int) *MergeAttemptUpdateOne {
	_u.mutation.AddLlmInvocations(v)
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *MergeAttemptUpdateOne) SetTokensUsed(v int64) *MergeAttemptUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *MergeAttemptUpdateOne) SetNillableTokensUsed(v *int64) *MergeAttemptUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *MergeAttemptUpdateOne) AddTokensUsed(v int64) *MergeAttemptUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *MergeAttemptUpdateOne) SetCostUsd(v float64) *MergeAttemptUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *MergeAttemptUpdateOne) SetNillableCostUsd(v *float64) *MergeAttemptUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *MergeAttemptUpdateOne) AddCostUsd(v float64) *MergeAttemptUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetResolutionLog sets the "resolution_log" field.
func (_u *MergeAttemptUpdateOne) SetResolutionLog(v []map[string]interface{}) *MergeAttemptUpdateOne {
	_u.mutation.SetResolutionLog(v)
	return _u
}

// AppendResolutionLog appends value to the "resolution_log" field.
func (_u *MergeAttemptUpdateOne) AppendResolutionLog(v []map[string]interface{}) *MergeAttemptUpdateOne {
	_u.mutation.AppendResolutionLog(v)
	return _u
}

// ClearResolutionLog clears the value of the "resolution_log" field.
func (_u *MergeAttemptUpdateOne) ClearResolutionLog() *MergeAttemptUpdateOne {
	_u.mutation.ClearResolutionLog()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *MergeAttemptUpdateOne) SetFailureReason(v string) *MergeAttemptUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *MergeAttemptUpdateOne) SetNillableFailureReason(v *string) *MergeAttemptUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *MergeAttemptUpdateOne) ClearFailureReason() *MergeAttemptUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MergeAttemptUpdateOne) SetCompletedAt(v time.Time) *MergeAttemptUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MergeAttemptUpdateOne) SetNillableCompletedAt(v *time.Time) *MergeAttemptUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MergeAttemptUpdateOne) ClearCompletedAt() *MergeAttemptUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the MergeAttemptMutation object of the builder.
func (_u *MergeAttemptUpdateOne) Mutation() *MergeAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the MergeAttemptUpdate builder.
func (_u *MergeAttemptUpdateOne) Where(ps ...predicate.MergeAttempt) *MergeAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MergeAttemptUpdateOne) Select(field string, fields ...string) *MergeAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MergeAttempt entity.
func (_u *MergeAttemptUpdateOne) Save(ctx context.Context) (*MergeAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MergeAttemptUpdateOne) SaveX(ctx context.Context) *MergeAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MergeAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MergeAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MergeAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mergeattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MergeAttempt.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MergeAttemptUpdateOne) sqlSave(ctx context.Context) (_node *MergeAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mergeattempt.Table, mergeattempt.Columns, sqlgraph.NewFieldSpec(mergeattempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MergeAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mergeattempt.FieldID)
		for _, f := range fields {
			if !mergeattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mergeattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(mergeattempt.FieldParentTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TicketID(); ok {
		_spec.SetField(mergeattempt.FieldTicketID, field.TypeString, value)
	}
	if _u.mutation.TicketIDCleared() {
		_spec.ClearField(mergeattempt.FieldTicketID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceTaskIds(); ok {
		_spec.SetField(mergeattempt.FieldSourceTaskIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceTaskIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mergeattempt.FieldSourceTaskIds, value)
		})
	}
	if value, ok := _u.mutation.IncomingBranches(); ok {
		_spec.SetField(mergeattempt.FieldIncomingBranches, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIncomingBranches(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mergeattempt.FieldIncomingBranches, value)
		})
	}
	if value, ok := _u.mutation.TargetBranch(); ok {
		_spec.SetField(mergeattempt.FieldTargetBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.MergeOrder(); ok {
		_spec.SetField(mergeattempt.FieldMergeOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMergeOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mergeattempt.FieldMergeOrder, value)
		})
	}
	if _u.mutation.MergeOrderCleared() {
		_spec.ClearField(mergeattempt.FieldMergeOrder, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConflictScores(); ok {
		_spec.SetField(mergeattempt.FieldConflictScores, field.TypeJSON, value)
	}
	if _u.mutation.ConflictScoresCleared() {
		_spec.ClearField(mergeattempt.FieldConflictScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mergeattempt.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LlmInvocations(); ok {
		_spec.SetField(mergeattempt.FieldLlmInvocations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLlmInvocations(); ok {
		_spec.AddField(mergeattempt.FieldLlmInvocations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(mergeattempt.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(mergeattempt.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(mergeattempt.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(mergeattempt.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ResolutionLog(); ok {
		_spec.SetField(mergeattempt.FieldResolutionLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResolutionLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mergeattempt.FieldResolutionLog, value)
		})
	}
	if _u.mutation.ResolutionLogCleared() {
		_spec.ClearField(mergeattempt.FieldResolutionLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(mergeattempt.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(mergeattempt.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(mergeattempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(mergeattempt.FieldCompletedAt, field.TypeTime)
	}
	_node = &MergeAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mergeattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
