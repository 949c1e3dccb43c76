// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/helmsman-ai/helmsman/ent/mergeattempt"
)

// MergeAttemptCreate is the builder for creating a MergeAttempt entity.
type MergeAttemptCreate struct {
	config
	mutation *MergeAttemptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetParentTaskID sets the "parent_task_id" field.
func (_c *MergeAttemptCreate) SetParentTaskID(v string) *MergeAttemptCreate {
	_c.mutation.SetParentTaskID(v)
	return _c
}

// SetTicketID sets the "ticket_id" field.
func (_c *MergeAttemptCreate) SetTicketID(v string) *MergeAttemptCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_c *MergeAttemptCreate) SetNillableTicketID(v *string) *MergeAttemptCreate {
	if v != nil {
		_c.SetTicketID(*v)
	}
	return _c
}

// SetSourceTaskIds sets the "source_task_ids" field.
func (_c *MergeAttemptCreate) SetSourceTaskIds(v []string) *MergeAttemptCreate {
	_c.mutation.SetSourceTaskIds(v)
	return _c
}

// SetIncomingBranches sets the "incoming_branches" field.
func (_c *MergeAttemptCreate) SetIncomingBranches(v []string) *MergeAttemptCreate {
	_c.mutation.SetIncomingBranches(v)
	return _c
}

// SetTargetBranch sets the "target_branch" field.
func (_c *MergeAttemptCreate) SetTargetBranch(v string) *MergeAttemptCreate {
	_c.mutation.SetTargetBranch(v)
	return _c
}

// SetMergeOrder sets the "merge_order" field.
func (_c *MergeAttemptCreate) SetMergeOrder(v []string) *MergeAttemptCreate {
	_c.mutation.SetMergeOrder(v)
	return _c
}

// SetConflictScores sets the "conflict_scores" field.
func (_c *MergeAttemptCreate) SetConflictScores(v map[string]int) *MergeAttemptCreate {
	_c.mutation.SetConflictScores(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MergeAttemptCreate) SetStatus(v mergeattempt.Status) *MergeAttemptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MergeAttemptCreate) SetNillableStatus(v *mergeattempt.Status) *MergeAttemptCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLlmInvocations sets the "llm_invocations" field.
func (_c *MergeAttemptCreate) SetLlmInvocations(v int) *MergeAttemptCreate {
	_c.mutation.SetLlmInvocations(v)
	return _c
}

// SetNillableLlmInvocations sets the "llm_invocations" field if the given value is not nil.
func (_c *MergeAttemptCreate) SetNillableLlmInvocations(v *int) *MergeAttemptCreate {
	if v != nil {
		_c.SetLlmInvocations(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *MergeAttemptCreate) SetTokensUsed(v int64) *MergeAttemptCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *MergeAttemptCreate) SetNillableTokensUsed(v *int64) *MergeAttemptCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *MergeAttemptCreate) SetCostUsd(v float64) *MergeAttemptCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *MergeAttemptCreate) SetNillableCostUsd(v *float64) *MergeAttemptCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetResolutionLog sets the "resolution_log" field.
func (_c *MergeAttemptCreate) SetResolutionLog(v []map[string]interface{}) *MergeAttemptCreate {
	_c.mutation.SetResolutionLog(v)
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *MergeAttemptCreate) SetFailureReason(v string) *MergeAttemptCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *MergeAttemptCreate) SetNillableFailureReason(v *string) *MergeAttemptCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MergeAttemptCreate) SetCreatedAt(v time.Time) *MergeAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MergeAttemptCreate) SetNillableCreatedAt(v *time.Time) *MergeAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MergeAttemptCreate) SetCompletedAt(v time.Time) *MergeAttemptCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MergeAttemptCreate) SetNillableCompletedAt(v *time.Time) *MergeAttemptCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MergeAttemptCreate) SetID(v string) *MergeAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MergeAttemptMutation object of the builder.
func (_c *MergeAttemptCreate) Mutation() *MergeAttemptMutation {
	return _c.mutation
}

// Save creates the MergeAttempt in the database.
func (_c *MergeAttemptCreate) Save(ctx context.Context) (*MergeAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MergeAttemptCreate) SaveX(ctx context.Context) *MergeAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergeAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergeAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MergeAttemptCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := mergeattempt.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LlmInvocations(); !ok {
		v := mergeattempt.DefaultLlmInvocations
		_c.mutation.SetLlmInvocations(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := mergeattempt.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := mergeattempt.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mergeattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MergeAttemptCreate) check() error {
	if _, ok := _c.mutation.ParentTaskID(); !ok {
		return &ValidationError{Name: "parent_task_id", err: errors.New(`ent: missing required field "MergeAttempt.parent_task_id"`)}
	}
	if _, ok := _c.mutation.SourceTaskIds(); !ok {
		return &ValidationError{Name: "source_task_ids", err: errors.New(`ent: missing required field "MergeAttempt.source_task_ids"`)}
	}
	if _, ok := _c.mutation.IncomingBranches(); !ok {
		return &ValidationError{Name: "incoming_branches", err: errors.New(`ent: missing required field "MergeAttempt.incoming_branches"`)}
	}
	if _, ok := _c.mutation.TargetBranch(); !ok {
		return &ValidationError{Name: "target_branch", err: errors.New(`ent: missing required field "MergeAttempt.target_branch"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MergeAttempt.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := mergeattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MergeAttempt.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LlmInvocations(); !ok {
		return &ValidationError{Name: "llm_invocations", err: errors.New(`ent: missing required field "MergeAttempt.llm_invocations"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "MergeAttempt.tokens_used"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "MergeAttempt.cost_usd"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MergeAttempt.created_at"`)}
	}
	return nil
}

func (_c *MergeAttemptCreate) sqlSave(ctx context.Context) (*MergeAttempt, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected MergeAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MergeAttemptCreate) createSpec() (*MergeAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &MergeAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mergeattempt.Table, sqlgraph.NewFieldSpec(mergeattempt.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParentTaskID(); ok {
		_spec.SetField(mergeattempt.FieldParentTaskID, field.TypeString, value)
		_node.ParentTaskID = value
	}
	if value, ok := _c.mutation.TicketID(); ok {
		_spec.SetField(mergeattempt.FieldTicketID, field.TypeString, value)
		_node.TicketID = value
	}
	if value, ok := _c.mutation.SourceTaskIds(); ok {
		_spec.SetField(mergeattempt.FieldSourceTaskIds, field.TypeJSON, value)
		_node.SourceTaskIds = value
	}
	if value, ok := _c.mutation.IncomingBranches(); ok {
		_spec.SetField(mergeattempt.FieldIncomingBranches, field.TypeJSON, value)
		_node.IncomingBranches = value
	}
	if value, ok := _c.mutation.TargetBranch(); ok {
		_spec.SetField(mergeattempt.FieldTargetBranch, field.TypeString, value)
		_node.TargetBranch = value
	}
	if value, ok := _c.mutation.MergeOrder(); ok {
		_spec.SetField(mergeattempt.FieldMergeOrder, field.TypeJSON, value)
		_node.MergeOrder = value
	}
	if value, ok := _c.mutation.ConflictScores(); ok {
		_spec.SetField(mergeattempt.FieldConflictScores, field.TypeJSON, value)
		_node.ConflictScores = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(mergeattempt.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LlmInvocations(); ok {
		_spec.SetField(mergeattempt.FieldLlmInvocations, field.TypeInt, value)
		_node.LlmInvocations = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(mergeattempt.FieldTokensUsed, field.TypeInt64, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(mergeattempt.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.ResolutionLog(); ok {
		_spec.SetField(mergeattempt.FieldResolutionLog, field.TypeJSON, value)
		_node.ResolutionLog = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(mergeattempt.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mergeattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(mergeattempt.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MergeAttempt.Create().
//		SetParentTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MergeAttemptUpsert) {
//			SetParentTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *MergeAttemptCreate) OnConflict(opts ...sql.ConflictOption) *MergeAttemptUpsertOne {
	_c.conflict = opts
	return &MergeAttemptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MergeAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MergeAttemptCreate) OnConflictColumns(columns ...string) *MergeAttemptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MergeAttemptUpsertOne{
		create: _c,
	}
}

type (
	// MergeAttemptUpsertOne is the builder for "upsert"-ing
	//  one MergeAttempt node.
	MergeAttemptUpsertOne struct {
		create *MergeAttemptCreate
	}

	// MergeAttemptUpsert is the "OnConflict" setter.
	MergeAttemptUpsert struct {
		*sql.UpdateSet
	}
)

// SetParentTaskID sets the "parent_task_id" field.
func (u *MergeAttemptUpsert) SetParentTaskID(v string) *MergeAttemptUpsert {
	u.Set(mergeattempt.FieldParentTaskID, v)
	return u
}

// UpdateParentTaskID sets the "parent_task_id" field to the value that was provided on create.
func (u *MergeAttemptUpsert) UpdateParentTaskID() *MergeAttemptUpsert {
	u.SetExcluded(mergeattempt.FieldParentTaskID)
	return u
}

// SetTicketID sets the "ticket_id" field.
func (u *MergeAttemptUpsert) SetTicketID(v string) *MergeAttemptUpsert {
	u.Set(mergeattempt.FieldTicketID, v)
	return u
}

// UpdateTicketID sets the "ticket_id" field to the value that was provided on create.
func (u *MergeAttemptUpsert) UpdateTicketID() *MergeAttemptUpsert {
	u.SetExcluded(mergeattempt.FieldTicketID)
	return u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (u *MergeAttemptUpsert) ClearTicketID() *MergeAttemptUpsert {
	u.SetNull(mergeattempt.FieldTicketID)
	return u
}

// SetSourceTaskIds sets the "source_task_ids" field.
func (u *MergeAttemptUpsert) SetSourceTaskIds(v []string) *MergeAttemptUpsert {
	u.Set(mergeattempt.FieldSourceTaskIds, v)
	return u
}

// UpdateSourceTaskIds sets the "source_task_ids" field to the value that was provided on create.
func (u *MergeAttemptUpsert) UpdateSourceTaskIds() *MergeAttemptUpsert {
	u.SetExcluded(mergeattempt.FieldSourceTaskIds)
	return u
}

// SetIncomingBranches sets the "incoming_branches" field.
func (u *MergeAttemptUpsert) SetIncomingBranches(v []string) *MergeAttemptUpsert {
	u.Set(mergeattempt.FieldIncomingBranches, v)
	return u
}

// UpdateIncomingBranches sets the "incoming_branches" field to the value that was provided on create.
func (u *MergeAttemptUpsert) UpdateIncomingBranches() *MergeAttemptUpsert {
	u.SetExcluded(mergeattempt.FieldIncomingBranches)
	return u
}

// SetTargetBranch sets the "target_branch" field.
func (u *MergeAttemptUpsert) SetTargetBranch(v string) *MergeAttemptUpsert {
	u.Set(mergeattempt.FieldTargetBranch, v)
	return u
}

// UpdateTargetBranch sets the "target_branch" field to the value that was provided on create.
func (u *MergeAttemptUpsert) UpdateTargetBranch() *MergeAttemptUpsert {
	u.SetExcluded(mergeattempt.FieldTargetBranch)
	return u
}

// SetMergeOrder sets the "merge_order" field.
func (u *MergeAttemptUpsert) SetMergeOrder(v []string) *MergeAttemptUpsert {
	u.Set(mergeattempt.FieldMergeOrder, v)
	return u
}

// UpdateMergeOrder sets the "merge_order" field to the value that was provided on create.
func (u *MergeAttemptUpsert) UpdateMergeOrder() *MergeAttemptUpsert {
	u.SetExcluded(mergeattempt.FieldMergeOrder)
	return u
}

// ClearMergeOrder clears the value of the "merge_order" field.
func (u *MergeAttemptUpsert) ClearMergeOrder() *MergeAttemptUpsert {
	u.SetNull(mergeattempt.FieldMergeOrder)
	return u
}

// SetConflictScores sets the "conflict_scores" field.
func (u *MergeAttemptUpsert) SetConflictScores(v map[string]int) *MergeAttemptUpsert {
	u.Set(mergeattempt.FieldConflictScores, v)
	return u
}

// UpdateConflictScores sets the "conflict_scores" field to the value that was provided on create.
func (u *MergeAttemptUpsert) UpdateConflictScores() *MergeAttemptUpsert {
	u.SetExcluded(mergeattempt.FieldConflictScores)
	return u
}

// ClearConflictScores clears the value of the "conflict_scores" field.
func (u *MergeAttemptUpsert) ClearConflictScores() *MergeAttemptUpsert {
	u.SetNull(mergeattempt.FieldConflictScores)
	return u
}

// SetStatus sets the "status" field.
func (u *MergeAttemptUpsert) SetStatus(v mergeattempt.Status) *MergeAttemptUpsert {
	u.Set(mergeattempt.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MergeAttemptUpsert) UpdateStatus() *MergeAttemptUpsert {
	u.SetExcluded(mergeattempt.FieldStatus)
	return u
}

// SetLlmInvocations sets the "llm_invocations" field.
func (u *MergeAttemptUpsert) SetLlmInvocations(v int) *MergeAttemptUpsert {
	u.Set(mergeattempt.FieldLlmInvocations, v)
	return u
}

// UpdateLlmInvocations sets the "llm_invocations" field to the value that was provided on create.
func (u *MergeAttemptUpsert) UpdateLlmInvocations() *MergeAttemptUpsert {
	u.SetExcluded(mergeattempt.FieldLlmInvocations)
	return u
}

// AddLlmInvocations adds v to the "llm_invocations" field.
func (u *MergeAttemptUpsert) AddLlmInvocations(v int) *MergeAttemptUpsert {
	u.Add(mergeattempt.FieldLlmInvocations, v)
	return u
}

// SetTokensUsed sets the "tokens_used" field.
func (u *MergeAttemptUpsert) SetTokensUsed(v int64) *MergeAttemptUpsert {
	u.Set(mergeattempt.FieldTokensUsed, v)
	return u
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *MergeAttemptUpsert) UpdateTokensUsed() *MergeAttemptUpsert {
	u.SetExcluded(mergeattempt.FieldTokensUsed)
	return u
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *MergeAttemptUpsert) AddTokensUsed(v int64) *MergeAttemptUpsert {
	u.Add(mergeattempt.FieldTokensUsed, v)
	return u
}

// SetCostUsd sets the "cost_usd" field.
func (u *MergeAttemptUpsert) SetCostUsd(v float64) *MergeAttemptUpsert {
	u.Set(mergeattempt.FieldCostUsd, v)
	return u
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *MergeAttemptUpsert) UpdateCostUsd() *MergeAttemptUpsert {
	u.SetExcluded(mergeattempt.FieldCostUsd)
	return u
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *MergeAttemptUpsert) AddCostUsd(v float64) *MergeAttemptUpsert {
	u.Add(mergeattempt.FieldCostUsd, v)
	return u
}

// SetResolutionLog sets the "resolution_log" field.
func (u *MergeAttemptUpsert) SetResolutionLog(v []map[string]interface{}) *MergeAttemptUpsert {
	u.Set(mergeattempt.FieldResolutionLog, v)
	return u
}

// UpdateResolutionLog sets the "resolution_log" field to the value that was provided on create.
func (u *MergeAttemptUpsert) UpdateResolutionLog() *MergeAttemptUpsert {
	u.SetExcluded(mergeattempt.FieldResolutionLog)
	return u
}

// ClearResolutionLog clears the value of the "resolution_log" field.
func (u *MergeAttemptUpsert) ClearResolutionLog() *MergeAttemptUpsert {
	u.SetNull(mergeattempt.FieldResolutionLog)
	return u
}

// SetFailureReason sets the "failure_reason" field.
func (u *MergeAttemptUpsert) SetFailureReason(v string) *MergeAttemptUpsert {
	u.Set(mergeattempt.FieldFailureReason, v)
	return u
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *MergeAttemptUpsert) UpdateFailureReason() *MergeAttemptUpsert {
	u.SetExcluded(mergeattempt.FieldFailureReason)
	return u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *MergeAttemptUpsert) ClearFailureReason() *MergeAttemptUpsert {
	u.SetNull(mergeattempt.FieldFailureReason)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *MergeAttemptUpsert) SetCompletedAt(v time.Time) *MergeAttemptUpsert {
	u.Set(mergeattempt.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MergeAttemptUpsert) UpdateCompletedAt() *MergeAttemptUpsert {
	u.SetExcluded(mergeattempt.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MergeAttemptUpsert) ClearCompletedAt() *MergeAttemptUpsert {
	u.SetNull(mergeattempt.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MergeAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mergeattempt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MergeAttemptUpsertOne) UpdateNewValues() *MergeAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mergeattempt.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mergeattempt.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MergeAttempt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MergeAttemptUpsertOne) Ignore() *MergeAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MergeAttemptUpsertOne) DoNothing() *MergeAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MergeAttemptCreate.OnConflict
// documentation for more info.
func (u *MergeAttemptUpsertOne) Update(set func(*MergeAttemptUpsert)) *MergeAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MergeAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// SetParentTaskID sets the "parent_task_id" field.
func (u *MergeAttemptUpsertOne) SetParentTaskID(v string) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetParentTaskID(v)
	})
}

// UpdateParentTaskID sets the "parent_task_id" field to the value that was provided on create.
func (u *MergeAttemptUpsertOne) UpdateParentTaskID() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateParentTaskID()
	})
}

// SetTicketID sets the "ticket_id" field.
func (u *MergeAttemptUpsertOne) SetTicketID(v string) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetTicketID(v)
	})
}

// UpdateTicketID sets the "ticket_id" field to the value that was provided on create.
func (u *MergeAttemptUpsertOne) UpdateTicketID() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateTicketID()
	})
}

// ClearTicketID clears the value of the "ticket_id" field.
func (u *MergeAttemptUpsertOne) ClearTicketID() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.ClearTicketID()
	})
}

// SetSourceTaskIds sets the "source_task_ids" field.
func (u *MergeAttemptUpsertOne) SetSourceTaskIds(v []string) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetSourceTaskIds(v)
	})
}

// UpdateSourceTaskIds sets the "source_task_ids" field to the value that was provided on create.
func (u *MergeAttemptUpsertOne) UpdateSourceTaskIds() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateSourceTaskIds()
	})
}

// SetIncomingBranches sets the "incoming_branches" field.
func (u *MergeAttemptUpsertOne) SetIncomingBranches(v []string) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetIncomingBranches(v)
	})
}

// UpdateIncomingBranches sets the "incoming_branches" field to the value that was provided on create.
func (u *MergeAttemptUpsertOne) UpdateIncomingBranches() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateIncomingBranches()
	})
}

// SetTargetBranch sets the "target_branch" field.
func (u *MergeAttemptUpsertOne) SetTargetBranch(v string) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetTargetBranch(v)
	})
}

// UpdateTargetBranch sets the "target_branch" field to the value that was provided on create.
func (u *MergeAttemptUpsertOne) UpdateTargetBranch() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateTargetBranch()
	})
}

// SetMergeOrder sets the "merge_order" field.
func (u *MergeAttemptUpsertOne) SetMergeOrder(v []string) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetMergeOrder(v)
	})
}

// UpdateMergeOrder sets the "merge_order" field to the value that was provided on create.
func (u *MergeAttemptUpsertOne) UpdateMergeOrder() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateMergeOrder()
	})
}

// ClearMergeOrder clears the value of the "merge_order" field.
func (u *MergeAttemptUpsertOne) ClearMergeOrder() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.ClearMergeOrder()
	})
}

// SetConflictScores sets the "conflict_scores" field.
func (u *MergeAttemptUpsertOne) SetConflictScores(v map[string]int) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetConflictScores(v)
	})
}

// UpdateConflictScores sets the "conflict_scores" field to the value that was provided on create.
func (u *MergeAttemptUpsertOne) UpdateConflictScores() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateConflictScores()
	})
}

// ClearConflictScores clears the value of the "conflict_scores" field.
func (u *MergeAttemptUpsertOne) ClearConflictScores() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.ClearConflictScores()
	})
}

// SetStatus sets the "status" field.
func (u *MergeAttemptUpsertOne) SetStatus(v mergeattempt.Status) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MergeAttemptUpsertOne) UpdateStatus() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateStatus()
	})
}

// SetLlmInvocations sets the "llm_invocations" field.
func (u *MergeAttemptUpsertOne) SetLlmInvocations(v int) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetLlmInvocations(v)
	})
}

// AddLlmInvocations adds v to the "llm_invocations" field.
func (u *MergeAttemptUpsertOne) AddLlmInvocations(v int) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.AddLlmInvocations(v)
	})
}

// UpdateLlmInvocations sets the "llm_invocations" field to the value that was provided on create.
func (u *MergeAttemptUpsertOne) UpdateLlmInvocations() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateLlmInvocations()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *MergeAttemptUpsertOne) SetTokensUsed(v int64) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *MergeAttemptUpsertOne) AddTokensUsed(v int64) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *MergeAttemptUpsertOne) UpdateTokensUsed() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetCostUsd sets the "cost_usd" field.
func (u *MergeAttemptUpsertOne) SetCostUsd(v float64) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetCostUsd(v)
	})
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *MergeAttemptUpsertOne) AddCostUsd(v float64) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.AddCostUsd(v)
	})
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *MergeAttemptUpsertOne) UpdateCostUsd() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateCostUsd()
	})
}

// SetResolutionLog sets the "resolution_log" field.
func (u *MergeAttemptUpsertOne) SetResolutionLog(v []map[string]interface{}) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetResolutionLog(v)
	})
}

// UpdateResolutionLog sets the "resolution_log" field to the value that was provided on create.
func (u *MergeAttemptUpsertOne) UpdateResolutionLog() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateResolutionLog()
	})
}

// ClearResolutionLog clears the value of the "resolution_log" field.
func (u *MergeAttemptUpsertOne) ClearResolutionLog() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.ClearResolutionLog()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *MergeAttemptUpsertOne) SetFailureReason(v string) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *MergeAttemptUpsertOne) UpdateFailureReason() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *MergeAttemptUpsertOne) ClearFailureReason() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.ClearFailureReason()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *MergeAttemptUpsertOne) SetCompletedAt(v time.Time) *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MergeAttemptUpsertOne) UpdateCompletedAt() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MergeAttemptUpsertOne) ClearCompletedAt() *MergeAttemptUpsertOne {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *MergeAttemptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MergeAttemptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MergeAttemptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MergeAttemptUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MergeAttemptUpsertOne.ID is not supported by MySQL driver. Use MergeAttemptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MergeAttemptUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MergeAttemptCreateBulk is the builder for creating many MergeAttempt entities in bulk.
type MergeAttemptCreateBulk struct {
	config
	err      error
	builders []*MergeAttemptCreate
	conflict []sql.ConflictOption
}

// Save creates the MergeAttempt entities in the database.
func (_c *MergeAttemptCreateBulk) Save(ctx context.Context) ([]*MergeAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MergeAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MergeAttemptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MergeAttemptCreateBulk) SaveX(ctx context.Context) []*MergeAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergeAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergeAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MergeAttempt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MergeAttemptUpsert) {
//			SetParentTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *MergeAttemptCreateBulk) OnConflict(opts ...sql.ConflictOption) *MergeAttemptUpsertBulk {
	_c.conflict = opts
	return &MergeAttemptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MergeAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MergeAttemptCreateBulk) OnConflictColumns(columns ...string) *MergeAttemptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MergeAttemptUpsertBulk{
		create: _c,
	}
}

// MergeAttemptUpsertBulk is the builder for "upsert"-ing
// a bulk of MergeAttempt nodes.
type MergeAttemptUpsertBulk struct {
	create *MergeAttemptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MergeAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mergeattempt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MergeAttemptUpsertBulk) UpdateNewValues() *MergeAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mergeattempt.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mergeattempt.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MergeAttempt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MergeAttemptUpsertBulk) Ignore() *MergeAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MergeAttemptUpsertBulk) DoNothing() *MergeAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MergeAttemptCreateBulk.OnConflict
// documentation for more info.
func (u *MergeAttemptUpsertBulk) Update(set func(*MergeAttemptUpsert)) *MergeAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MergeAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// SetParentTaskID sets the "parent_task_id" field.
func (u *MergeAttemptUpsertBulk) SetParentTaskID(v string) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetParentTaskID(v)
	})
}

// UpdateParentTaskID sets the "parent_task_id" field to the value that was provided on create.
func (u *MergeAttemptUpsertBulk) UpdateParentTaskID() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateParentTaskID()
	})
}

// SetTicketID sets the "ticket_id" field.
func (u *MergeAttemptUpsertBulk) SetTicketID(v string) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetTicketID(v)
	})
}

// UpdateTicketID sets the "ticket_id" field to the value that was provided on create.
func (u *MergeAttemptUpsertBulk) UpdateTicketID() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateTicketID()
	})
}

// ClearTicketID clears the value of the "ticket_id" field.
func (u *MergeAttemptUpsertBulk) ClearTicketID() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.ClearTicketID()
	})
}

// SetSourceTaskIds sets the "source_task_ids" field.
func (u *MergeAttemptUpsertBulk) SetSourceTaskIds(v []string) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetSourceTaskIds(v)
	})
}

// UpdateSourceTaskIds sets the "source_task_ids" field to the value that was provided on create.
func (u *MergeAttemptUpsertBulk) UpdateSourceTaskIds() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateSourceTaskIds()
	})
}

// SetIncomingBranches sets the "incoming_branches" field.
func (u *MergeAttemptUpsertBulk) SetIncomingBranches(v []string) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetIncomingBranches(v)
	})
}

// UpdateIncomingBranches sets the "incoming_branches" field to the value that was provided on create.
func (u *MergeAttemptUpsertBulk) UpdateIncomingBranches() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateIncomingBranches()
	})
}

// SetTargetBranch sets the "target_branch" field.
func (u *MergeAttemptUpsertBulk) SetTargetBranch(v string) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetTargetBranch(v)
	})
}

// UpdateTargetBranch sets the "target_branch" field to the value that was provided on create.
func (u *MergeAttemptUpsertBulk) UpdateTargetBranch() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateTargetBranch()
	})
}

// SetMergeOrder sets the "merge_order" field.
func (u *MergeAttemptUpsertBulk) SetMergeOrder(v []string) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetMergeOrder(v)
	})
}

// UpdateMergeOrder sets the "merge_order" field to the value that was provided on create.
func (u *MergeAttemptUpsertBulk) UpdateMergeOrder() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateMergeOrder()
	})
}

// ClearMergeOrder clears the value of the "merge_order" field.
func (u *MergeAttemptUpsertBulk) ClearMergeOrder() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.ClearMergeOrder()
	})
}

// SetConflictScores sets the "conflict_scores" field.
func (u *MergeAttemptUpsertBulk) SetConflictScores(v map[string]int) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetConflictScores(v)
	})
}

// UpdateConflictScores sets the "conflict_scores" field to the value that was provided on create.
func (u *MergeAttemptUpsertBulk) UpdateConflictScores() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateConflictScores()
	})
}

// ClearConflictScores clears the value of the "conflict_scores" field.
func (u *MergeAttemptUpsertBulk) ClearConflictScores() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.ClearConflictScores()
	})
}

// SetStatus sets the "status" field.
func (u *MergeAttemptUpsertBulk) SetStatus(v mergeattempt.Status) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MergeAttemptUpsertBulk) UpdateStatus() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateStatus()
	})
}

// SetLlmInvocations sets the "llm_invocations" field.
func (u *MergeAttemptUpsertBulk) SetLlmInvocations(v int) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetLlmInvocations(v)
	})
}

// AddLlmInvocations adds v to the "llm_invocations" field.
func (u *MergeAttemptUpsertBulk) AddLlmInvocations(v int) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.AddLlmInvocations(v)
	})
}

// UpdateLlmInvocations sets the "llm_invocations" field to the value that was provided on create.
func (u *MergeAttemptUpsertBulk) UpdateLlmInvocations() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateLlmInvocations()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *MergeAttemptUpsertBulk) SetTokensUsed(v int64) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *MergeAttemptUpsertBulk) AddTokensUsed(v int64) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *MergeAttemptUpsertBulk) UpdateTokensUsed() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetCostUsd sets the "cost_usd" field.
func (u *MergeAttemptUpsertBulk) SetCostUsd(v float64) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetCostUsd(v)
	})
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *MergeAttemptUpsertBulk) AddCostUsd(v float64) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.AddCostUsd(v)
	})
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *MergeAttemptUpsertBulk) UpdateCostUsd() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateCostUsd()
	})
}

// SetResolutionLog sets the "resolution_log" field.
func (u *MergeAttemptUpsertBulk) SetResolutionLog(v []map[string]interface{}) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetResolutionLog(v)
	})
}

// UpdateResolutionLog sets the "resolution_log" field to the value that was provided on create.
func (u *MergeAttemptUpsertBulk) UpdateResolutionLog() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateResolutionLog()
	})
}

// ClearResolutionLog clears the value of the "resolution_log" field.
func (u *MergeAttemptUpsertBulk) ClearResolutionLog() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.ClearResolutionLog()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *MergeAttemptUpsertBulk) SetFailureReason(v string) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *MergeAttemptUpsertBulk) UpdateFailureReason() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *MergeAttemptUpsertBulk) ClearFailureReason() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.ClearFailureReason()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *MergeAttemptUpsertBulk) SetCompletedAt(v time.Time) *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MergeAttemptUpsertBulk) UpdateCompletedAt() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MergeAttemptUpsertBulk) ClearCompletedAt() *MergeAttemptUpsertBulk {
	return u.Update(func(s *MergeAttemptUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *MergeAttemptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MergeAttemptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MergeAttemptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MergeAttemptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
