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
	"github.com/helmsman-ai/helmsman/ent/guardianaction"
)

// GuardianActionCreate is the builder for creating a GuardianAction entity.
type GuardianActionCreate struct {
	config
	mutation *GuardianActionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetActionType sets the "action_type" field.
func (_c *GuardianActionCreate) SetActionType(v guardianaction.ActionType) *GuardianActionCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetTargetAgentID sets the "target_agent_id" field.
func (_c *GuardianActionCreate) SetTargetAgentID(v string) *GuardianActionCreate {
	_c.mutation.SetTargetAgentID(v)
	return _c
}

// SetTargetTaskID sets the "target_task_id" field.
func (_c *GuardianActionCreate) SetTargetTaskID(v string) *GuardianActionCreate {
	_c.mutation.SetTargetTaskID(v)
	return _c
}

// SetNillableTargetTaskID sets the "target_task_id" field if the given value is not nil.
func (_c *GuardianActionCreate) SetNillableTargetTaskID(v *string) *GuardianActionCreate {
	if v != nil {
		_c.SetTargetTaskID(*v)
	}
	return _c
}

// SetAuthorityLevel sets the "authority_level" field.
func (_c *GuardianActionCreate) SetAuthorityLevel(v int) *GuardianActionCreate {
	_c.mutation.SetAuthorityLevel(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *GuardianActionCreate) SetReason(v string) *GuardianActionCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetInitiator sets the "initiator" field.
func (_c *GuardianActionCreate) SetInitiator(v string) *GuardianActionCreate {
	_c.mutation.SetInitiator(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *GuardianActionCreate) SetStatus(v guardianaction.Status) *GuardianActionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GuardianActionCreate) SetNillableStatus(v *guardianaction.Status) *GuardianActionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *GuardianActionCreate) SetApprovedBy(v string) *GuardianActionCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *GuardianActionCreate) SetNillableApprovedBy(v *string) *GuardianActionCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetExecutedAt sets the "executed_at" field.
func (_c *GuardianActionCreate) SetExecutedAt(v time.Time) *GuardianActionCreate {
	_c.mutation.SetExecutedAt(v)
	return _c
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_c *GuardianActionCreate) SetNillableExecutedAt(v *time.Time) *GuardianActionCreate {
	if v != nil {
		_c.SetExecutedAt(*v)
	}
	return _c
}

// SetRevertedAt sets the "reverted_at" field.
func (_c *GuardianActionCreate) SetRevertedAt(v time.Time) *GuardianActionCreate {
	_c.mutation.SetRevertedAt(v)
	return _c
}

// SetNillableRevertedAt sets the "reverted_at" field if the given value is not nil.
func (_c *GuardianActionCreate) SetNillableRevertedAt(v *time.Time) *GuardianActionCreate {
	if v != nil {
		_c.SetRevertedAt(*v)
	}
	return _c
}

// SetReviewDeadline sets the "review_deadline" field.
func (_c *GuardianActionCreate) SetReviewDeadline(v time.Time) *GuardianActionCreate {
	_c.mutation.SetReviewDeadline(v)
	return _c
}

// SetNillableReviewDeadline sets the "review_deadline" field if the given value is not nil.
func (_c *GuardianActionCreate) SetNillableReviewDeadline(v *time.Time) *GuardianActionCreate {
	if v != nil {
		_c.SetReviewDeadline(*v)
	}
	return _c
}

// SetAuditLog sets the "audit_log" field.
func (_c *GuardianActionCreate) SetAuditLog(v []map[string]interface{}) *GuardianActionCreate {
	_c.mutation.SetAuditLog(v)
	return _c
}

// SetParams sets the "params" field.
func (_c *GuardianActionCreate) SetParams(v map[string]interface{}) *GuardianActionCreate {
	_c.mutation.SetParams(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GuardianActionCreate) SetCreatedAt(v time.Time) *GuardianActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GuardianActionCreate) SetNillableCreatedAt(v *time.Time) *GuardianActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GuardianActionCreate) SetID(v string) *GuardianActionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GuardianActionMutation object of the builder.
func (_c *GuardianActionCreate) Mutation() *GuardianActionMutation {
	return _c.mutation
}

// Save creates the GuardianAction in the database.
func (_c *GuardianActionCreate) Save(ctx context.Context) (*GuardianAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GuardianActionCreate) SaveX(ctx context.Context) *GuardianAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GuardianActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GuardianActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GuardianActionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := guardianaction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := guardianaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GuardianActionCreate) check() error {
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "GuardianAction.action_type"`)}
	}
	if v, ok := _c.mutation.ActionType(); ok {
		if err := guardianaction.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "GuardianAction.action_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetAgentID(); !ok {
		return &ValidationError{Name: "target_agent_id", err: errors.New(`ent: missing required field "GuardianAction.target_agent_id"`)}
	}
	if _, ok := _c.mutation.AuthorityLevel(); !ok {
		return &ValidationError{Name: "authority_level", err: errors.New(`ent: missing required field "GuardianAction.authority_level"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "GuardianAction.reason"`)}
	}
	if _, ok := _c.mutation.Initiator(); !ok {
		return &ValidationError{Name: "initiator", err: errors.New(`ent: missing required field "GuardianAction.initiator"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GuardianAction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := guardianaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GuardianAction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GuardianAction.created_at"`)}
	}
	return nil
}

func (_c *GuardianActionCreate) sqlSave(ctx context.Context) (*GuardianAction, error) {
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
			return nil, fmt.Errorf("unexpected GuardianAction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GuardianActionCreate) createSpec() (*GuardianAction, *sqlgraph.CreateSpec) {
	var (
		_node = &GuardianAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(guardianaction.Table, sqlgraph.NewFieldSpec(guardianaction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(guardianaction.FieldActionType, field.TypeEnum, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.TargetAgentID(); ok {
		_spec.SetField(guardianaction.FieldTargetAgentID, field.TypeString, value)
		_node.TargetAgentID = value
	}
	if value, ok := _c.mutation.TargetTaskID(); ok {
		_spec.SetField(guardianaction.FieldTargetTaskID, field.TypeString, value)
		_node.TargetTaskID = &value
	}
	if value, ok := _c.mutation.AuthorityLevel(); ok {
		_spec.SetField(guardianaction.FieldAuthorityLevel, field.TypeInt, value)
		_node.AuthorityLevel = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(guardianaction.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Initiator(); ok {
		_spec.SetField(guardianaction.FieldInitiator, field.TypeString, value)
		_node.Initiator = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(guardianaction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(guardianaction.FieldApprovedBy, field.TypeString, value)
		_node.ApprovedBy = &value
	}
	if value, ok := _c.mutation.ExecutedAt(); ok {
		_spec.SetField(guardianaction.FieldExecutedAt, field.TypeTime, value)
		_node.ExecutedAt = &value
	}
	if value, ok := _c.mutation.RevertedAt(); ok {
		_spec.SetField(guardianaction.FieldRevertedAt, field.TypeTime, value)
		_node.RevertedAt = &value
	}
	if value, ok := _c.mutation.ReviewDeadline(); ok {
		_spec.SetField(guardianaction.FieldReviewDeadline, field.TypeTime, value)
		_node.ReviewDeadline = &value
	}
	if value, ok := _c.mutation.AuditLog(); ok {
		_spec.SetField(guardianaction.FieldAuditLog, field.TypeJSON, value)
		_node.AuditLog = value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(guardianaction.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(guardianaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GuardianAction.Create().
//		SetActionType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GuardianActionUpsert) {
//			SetActionType(v+v).
//		}).
//		Exec(ctx)
func (_c *GuardianActionCreate) OnConflict(opts ...sql.ConflictOption) *GuardianActionUpsertOne {
	_c.conflict = opts
	return &GuardianActionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GuardianAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GuardianActionCreate) OnConflictColumns(columns ...string) *GuardianActionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GuardianActionUpsertOne{
		create: _c,
	}
}

type (
	// GuardianActionUpsertOne is the builder for "upsert"-ing
	//  one GuardianAction node.
	GuardianActionUpsertOne struct {
		create *GuardianActionCreate
	}

	// GuardianActionUpsert is the "OnConflict" setter.
	GuardianActionUpsert struct {
		*sql.UpdateSet
	}
)

// SetActionType sets the "action_type" field.
func (u *GuardianActionUpsert) SetActionType(v guardianaction.ActionType) *GuardianActionUpsert {
	u.Set(guardianaction.FieldActionType, v)
	return u
}

// UpdateActionType sets the "action_type" field to the value that was provided on create.
func (u *GuardianActionUpsert) UpdateActionType() *GuardianActionUpsert {
	u.SetExcluded(guardianaction.FieldActionType)
	return u
}

// SetTargetAgentID sets the "target_agent_id" field.
func (u *GuardianActionUpsert) SetTargetAgentID(v string) *GuardianActionUpsert {
	u.Set(guardianaction.FieldTargetAgentID, v)
	return u
}

// UpdateTargetAgentID sets the "target_agent_id" field to the value that was provided on create.
func (u *GuardianActionUpsert) UpdateTargetAgentID() *GuardianActionUpsert {
	u.SetExcluded(guardianaction.FieldTargetAgentID)
	return u
}

// SetTargetTaskID sets the "target_task_id" field.
func (u *GuardianActionUpsert) SetTargetTaskID(v string) *GuardianActionUpsert {
	u.Set(guardianaction.FieldTargetTaskID, v)
	return u
}

// UpdateTargetTaskID sets the "target_task_id" field to the value that was provided on create.
func (u *GuardianActionUpsert) UpdateTargetTaskID() *GuardianActionUpsert {
	u.SetExcluded(guardianaction.FieldTargetTaskID)
	return u
}

// ClearTargetTaskID clears the value of the "target_task_id" field.
func (u *GuardianActionUpsert) ClearTargetTaskID() *GuardianActionUpsert {
	u.SetNull(guardianaction.FieldTargetTaskID)
	return u
}

// SetAuthorityLevel sets the "authority_level" field.
func (u *GuardianActionUpsert) SetAuthorityLevel(v int) *GuardianActionUpsert {
	u.Set(guardianaction.FieldAuthorityLevel, v)
	return u
}

// UpdateAuthorityLevel sets the "authority_level" field to the value that was provided on create.
func (u *GuardianActionUpsert) UpdateAuthorityLevel() *GuardianActionUpsert {
	u.SetExcluded(guardianaction.FieldAuthorityLevel)
	return u
}

// AddAuthorityLevel adds v to the "authority_level" field.
func (u *GuardianActionUpsert) AddAuthorityLevel(v int) *GuardianActionUpsert {
	u.Add(guardianaction.FieldAuthorityLevel, v)
	return u
}

// SetReason sets the "reason" field.
func (u *GuardianActionUpsert) SetReason(v string) *GuardianActionUpsert {
	u.Set(guardianaction.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *GuardianActionUpsert) UpdateReason() *GuardianActionUpsert {
	u.SetExcluded(guardianaction.FieldReason)
	return u
}

// SetInitiator sets the "initiator" field.
func (u *GuardianActionUpsert) SetInitiator(v string) *GuardianActionUpsert {
	u.Set(guardianaction.FieldInitiator, v)
	return u
}

// UpdateInitiator sets the "initiator" field to the value that was provided on create.
func (u *GuardianActionUpsert) UpdateInitiator() *GuardianActionUpsert {
	u.SetExcluded(guardianaction.FieldInitiator)
	return u
}

// SetStatus sets the "status" field.
func (u *GuardianActionUpsert) SetStatus(v guardianaction.Status) *GuardianActionUpsert {
	u.Set(guardianaction.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GuardianActionUpsert) UpdateStatus() *GuardianActionUpsert {
	u.SetExcluded(guardianaction.FieldStatus)
	return u
}

// SetApprovedBy sets the "approved_by" field.
func (u *GuardianActionUpsert) SetApprovedBy(v string) *GuardianActionUpsert {
	u.Set(guardianaction.FieldApprovedBy, v)
	return u
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *GuardianActionUpsert) UpdateApprovedBy() *GuardianActionUpsert {
	u.SetExcluded(guardianaction.FieldApprovedBy)
	return u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *GuardianActionUpsert) ClearApprovedBy() *GuardianActionUpsert {
	u.SetNull(guardianaction.FieldApprovedBy)
	return u
}

// SetExecutedAt sets the "executed_at" field.
func (u *GuardianActionUpsert) SetExecutedAt(v time.Time) *GuardianActionUpsert {
	u.Set(guardianaction.FieldExecutedAt, v)
	return u
}

// UpdateExecutedAt sets the "executed_at" field to the value that was provided on create.
func (u *GuardianActionUpsert) UpdateExecutedAt() *GuardianActionUpsert {
	u.SetExcluded(guardianaction.FieldExecutedAt)
	return u
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (u *GuardianActionUpsert) ClearExecutedAt() *GuardianActionUpsert {
	u.SetNull(guardianaction.FieldExecutedAt)
	return u
}

// SetRevertedAt sets the "reverted_at" field.
func (u *GuardianActionUpsert) SetRevertedAt(v time.Time) *GuardianActionUpsert {
	u.Set(guardianaction.FieldRevertedAt, v)
	return u
}

// UpdateRevertedAt sets the "reverted_at" field to the value that was provided on create.
func (u *GuardianActionUpsert) UpdateRevertedAt() *GuardianActionUpsert {
	u.SetExcluded(guardianaction.FieldRevertedAt)
	return u
}

// ClearRevertedAt clears the value of the "reverted_at" field.
func (u *GuardianActionUpsert) ClearRevertedAt() *GuardianActionUpsert {
	u.SetNull(guardianaction.FieldRevertedAt)
	return u
}

// SetReviewDeadline sets the "review_deadline" field.
func (u *GuardianActionUpsert) SetReviewDeadline(v time.Time) *GuardianActionUpsert {
	u.Set(guardianaction.FieldReviewDeadline, v)
	return u
}

// UpdateReviewDeadline sets the "review_deadline" field to the value that was provided on create.
func (u *GuardianActionUpsert) UpdateReviewDeadline() *GuardianActionUpsert {
	u.SetExcluded(guardianaction.FieldReviewDeadline)
	return u
}

// ClearReviewDeadline clears the value of the "review_deadline" field.
func (u *GuardianActionUpsert) ClearReviewDeadline() *GuardianActionUpsert {
	u.SetNull(guardianaction.FieldReviewDeadline)
	return u
}

// SetAuditLog sets the "audit_log" field.
func (u *GuardianActionUpsert) SetAuditLog(v []map[string]interface{}) *GuardianActionUpsert {
	u.Set(guardianaction.FieldAuditLog, v)
	return u
}

// UpdateAuditLog sets the "audit_log" field to the value that was provided on create.
func (u *GuardianActionUpsert) UpdateAuditLog() *GuardianActionUpsert {
	u.SetExcluded(guardianaction.FieldAuditLog)
	return u
}

// ClearAuditLog clears the value of the "audit_log" field.
func (u *GuardianActionUpsert) ClearAuditLog() *GuardianActionUpsert {
	u.SetNull(guardianaction.FieldAuditLog)
	return u
}

// SetParams sets the "params" field.
func (u *GuardianActionUpsert) SetParams(v map[string]interface{}) *GuardianActionUpsert {
	u.Set(guardianaction.FieldParams, v)
	return u
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *GuardianActionUpsert) UpdateParams() *GuardianActionUpsert {
	u.SetExcluded(guardianaction.FieldParams)
	return u
}

// ClearParams clears the value of the "params" field.
func (u *GuardianActionUpsert) ClearParams() *GuardianActionUpsert {
	u.SetNull(guardianaction.FieldParams)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GuardianAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(guardianaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GuardianActionUpsertOne) UpdateNewValues() *GuardianActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(guardianaction.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(guardianaction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GuardianAction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GuardianActionUpsertOne) Ignore() *GuardianActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GuardianActionUpsertOne) DoNothing() *GuardianActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GuardianActionCreate.OnConflict
// documentation for more info.
func (u *GuardianActionUpsertOne) Update(set func(*GuardianActionUpsert)) *GuardianActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GuardianActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetActionType sets the "action_type" field.
func (u *GuardianActionUpsertOne) SetActionType(v guardianaction.ActionType) *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetActionType(v)
	})
}

// UpdateActionType sets the "action_type" field to the value that was provided on create.
func (u *GuardianActionUpsertOne) UpdateActionType() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateActionType()
	})
}

// SetTargetAgentID sets the "target_agent_id" field.
func (u *GuardianActionUpsertOne) SetTargetAgentID(v string) *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetTargetAgentID(v)
	})
}

// UpdateTargetAgentID sets the "target_agent_id" field to the value that was provided on create.
func (u *GuardianActionUpsertOne) UpdateTargetAgentID() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateTargetAgentID()
	})
}

// SetTargetTaskID sets the "target_task_id" field.
func (u *GuardianActionUpsertOne) SetTargetTaskID(v string) *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetTargetTaskID(v)
	})
}

// UpdateTargetTaskID sets the "target_task_id" field to the value that was provided on create.
func (u *GuardianActionUpsertOne) UpdateTargetTaskID() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateTargetTaskID()
	})
}

// ClearTargetTaskID clears the value of the "target_task_id" field.
func (u *GuardianActionUpsertOne) ClearTargetTaskID() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.ClearTargetTaskID()
	})
}

// SetAuthorityLevel sets the "authority_level" field.
func (u *GuardianActionUpsertOne) SetAuthorityLevel(v int) *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetAuthorityLevel(v)
	})
}

// AddAuthorityLevel adds v to the "authority_level" field.
func (u *GuardianActionUpsertOne) AddAuthorityLevel(v int) *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.AddAuthorityLevel(v)
	})
}

// UpdateAuthorityLevel sets the "authority_level" field to the value that was provided on create.
func (u *GuardianActionUpsertOne) UpdateAuthorityLevel() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateAuthorityLevel()
	})
}

// SetReason sets the "reason" field.
func (u *GuardianActionUpsertOne) SetReason(v string) *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *GuardianActionUpsertOne) UpdateReason() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateReason()
	})
}

// SetInitiator sets the "initiator" field.
func (u *GuardianActionUpsertOne) SetInitiator(v string) *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetInitiator(v)
	})
}

// UpdateInitiator sets the "initiator" field to the value that was provided on create.
func (u *GuardianActionUpsertOne) UpdateInitiator() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateInitiator()
	})
}

// SetStatus sets the "status" field.
func (u *GuardianActionUpsertOne) SetStatus(v guardianaction.Status) *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GuardianActionUpsertOne) UpdateStatus() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateStatus()
	})
}

// SetApprovedBy sets the "approved_by" field.
func (u *GuardianActionUpsertOne) SetApprovedBy(v string) *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetApprovedBy(v)
	})
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *GuardianActionUpsertOne) UpdateApprovedBy() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateApprovedBy()
	})
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *GuardianActionUpsertOne) ClearApprovedBy() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.ClearApprovedBy()
	})
}

// SetExecutedAt sets the "executed_at" field.
func (u *GuardianActionUpsertOne) SetExecutedAt(v time.Time) *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetExecutedAt(v)
	})
}

// UpdateExecutedAt sets the "executed_at" field to the value that was provided on create.
func (u *GuardianActionUpsertOne) UpdateExecutedAt() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateExecutedAt()
	})
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (u *GuardianActionUpsertOne) ClearExecutedAt() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.ClearExecutedAt()
	})
}

// SetRevertedAt sets the "reverted_at" field.
func (u *GuardianActionUpsertOne) SetRevertedAt(v time.Time) *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetRevertedAt(v)
	})
}

// UpdateRevertedAt sets the "reverted_at" field to the value that was provided on create.
func (u *GuardianActionUpsertOne) UpdateRevertedAt() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateRevertedAt()
	})
}

// ClearRevertedAt clears the value of the "reverted_at" field.
func (u *GuardianActionUpsertOne) ClearRevertedAt() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.ClearRevertedAt()
	})
}

// SetReviewDeadline sets the "review_deadline" field.
func (u *GuardianActionUpsertOne) SetReviewDeadline(v time.Time) *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetReviewDeadline(v)
	})
}

// UpdateReviewDeadline sets the "review_deadline" field to the value that was provided on create.
func (u *GuardianActionUpsertOne) UpdateReviewDeadline() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateReviewDeadline()
	})
}

// ClearReviewDeadline clears the value of the "review_deadline" field.
func (u *GuardianActionUpsertOne) ClearReviewDeadline() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.ClearReviewDeadline()
	})
}

// SetAuditLog sets the "audit_log" field.
func (u *GuardianActionUpsertOne) SetAuditLog(v []map[string]interface{}) *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetAuditLog(v)
	})
}

// UpdateAuditLog sets the "audit_log" field to the value that was provided on create.
func (u *GuardianActionUpsertOne) UpdateAuditLog() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateAuditLog()
	})
}

// ClearAuditLog clears the value of the "audit_log" field.
func (u *GuardianActionUpsertOne) ClearAuditLog() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.ClearAuditLog()
	})
}

// SetParams sets the "params" field.
func (u *GuardianActionUpsertOne) SetParams(v map[string]interface{}) *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetParams(v)
	})
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *GuardianActionUpsertOne) UpdateParams() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateParams()
	})
}

// ClearParams clears the value of the "params" field.
func (u *GuardianActionUpsertOne) ClearParams() *GuardianActionUpsertOne {
	return u.Update(func(s *GuardianActionUpsert) {
		s.ClearParams()
	})
}

// Exec executes the query.
func (u *GuardianActionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GuardianActionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GuardianActionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GuardianActionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GuardianActionUpsertOne.ID is not supported by MySQL driver. Use GuardianActionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GuardianActionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GuardianActionCreateBulk is the builder for creating many GuardianAction entities in bulk.
type GuardianActionCreateBulk struct {
	config
	err      error
	builders []*GuardianActionCreate
	conflict []sql.ConflictOption
}

// Save creates the GuardianAction entities in the database.
func (_c *GuardianActionCreateBulk) Save(ctx context.Context) ([]*GuardianAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GuardianAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GuardianActionMutation)
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
func (_c *GuardianActionCreateBulk) SaveX(ctx context.Context) []*GuardianAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GuardianActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GuardianActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GuardianAction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GuardianActionUpsert) {
//			SetActionType(v+v).
//		}).
//		Exec(ctx)
func (_c *GuardianActionCreateBulk) OnConflict(opts ...sql.ConflictOption) *GuardianActionUpsertBulk {
	_c.conflict = opts
	return &GuardianActionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GuardianAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GuardianActionCreateBulk) OnConflictColumns(columns ...string) *GuardianActionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GuardianActionUpsertBulk{
		create: _c,
	}
}

// GuardianActionUpsertBulk is the builder for "upsert"-ing
// a bulk of GuardianAction nodes.
type GuardianActionUpsertBulk struct {
	create *GuardianActionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GuardianAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(guardianaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GuardianActionUpsertBulk) UpdateNewValues() *GuardianActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(guardianaction.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(guardianaction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GuardianAction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GuardianActionUpsertBulk) Ignore() *GuardianActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GuardianActionUpsertBulk) DoNothing() *GuardianActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GuardianActionCreateBulk.OnConflict
// documentation for more info.
func (u *GuardianActionUpsertBulk) Update(set func(*GuardianActionUpsert)) *GuardianActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GuardianActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetActionType sets the "action_type" field.
func (u *GuardianActionUpsertBulk) SetActionType(v guardianaction.ActionType) *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetActionType(v)
	})
}

// UpdateActionType sets the "action_type" field to the value that was provided on create.
func (u *GuardianActionUpsertBulk) UpdateActionType() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateActionType()
	})
}

// SetTargetAgentID sets the "target_agent_id" field.
func (u *GuardianActionUpsertBulk) SetTargetAgentID(v string) *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetTargetAgentID(v)
	})
}

// UpdateTargetAgentID sets the "target_agent_id" field to the value that was provided on create.
func (u *GuardianActionUpsertBulk) UpdateTargetAgentID() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateTargetAgentID()
	})
}

// SetTargetTaskID sets the "target_task_id" field.
func (u *GuardianActionUpsertBulk) SetTargetTaskID(v string) *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetTargetTaskID(v)
	})
}

// UpdateTargetTaskID sets the "target_task_id" field to the value that was provided on create.
func (u *GuardianActionUpsertBulk) UpdateTargetTaskID() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateTargetTaskID()
	})
}

// ClearTargetTaskID clears the value of the "target_task_id" field.
func (u *GuardianActionUpsertBulk) ClearTargetTaskID() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.ClearTargetTaskID()
	})
}

// SetAuthorityLevel sets the "authority_level" field.
func (u *GuardianActionUpsertBulk) SetAuthorityLevel(v int) *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetAuthorityLevel(v)
	})
}

// AddAuthorityLevel adds v to the "authority_level" field.
func (u *GuardianActionUpsertBulk) AddAuthorityLevel(v int) *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.AddAuthorityLevel(v)
	})
}

// UpdateAuthorityLevel sets the "authority_level" field to the value that was provided on create.
func (u *GuardianActionUpsertBulk) UpdateAuthorityLevel() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateAuthorityLevel()
	})
}

// SetReason sets the "reason" field.
func (u *GuardianActionUpsertBulk) SetReason(v string) *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *GuardianActionUpsertBulk) UpdateReason() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateReason()
	})
}

// SetInitiator sets the "initiator" field.
func (u *GuardianActionUpsertBulk) SetInitiator(v string) *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetInitiator(v)
	})
}

// UpdateInitiator sets the "initiator" field to the value that was provided on create.
func (u *GuardianActionUpsertBulk) UpdateInitiator() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateInitiator()
	})
}

// SetStatus sets the "status" field.
func (u *GuardianActionUpsertBulk) SetStatus(v guardianaction.Status) *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GuardianActionUpsertBulk) UpdateStatus() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateStatus()
	})
}

// SetApprovedBy sets the "approved_by" field.
func (u *GuardianActionUpsertBulk) SetApprovedBy(v string) *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetApprovedBy(v)
	})
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *GuardianActionUpsertBulk) UpdateApprovedBy() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateApprovedBy()
	})
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *GuardianActionUpsertBulk) ClearApprovedBy() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.ClearApprovedBy()
	})
}

// SetExecutedAt sets the "executed_at" field.
func (u *GuardianActionUpsertBulk) SetExecutedAt(v time.Time) *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetExecutedAt(v)
	})
}

// UpdateExecutedAt sets the "executed_at" field to the value that was provided on create.
func (u *GuardianActionUpsertBulk) UpdateExecutedAt() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateExecutedAt()
	})
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (u *GuardianActionUpsertBulk) ClearExecutedAt() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.ClearExecutedAt()
	})
}

// SetRevertedAt sets the "reverted_at" field.
func (u *GuardianActionUpsertBulk) SetRevertedAt(v time.Time) *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetRevertedAt(v)
	})
}

// UpdateRevertedAt sets the "reverted_at" field to the value that was provided on create.
func (u *GuardianActionUpsertBulk) UpdateRevertedAt() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateRevertedAt()
	})
}

// ClearRevertedAt clears the value of the "reverted_at" field.
func (u *GuardianActionUpsertBulk) ClearRevertedAt() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.ClearRevertedAt()
	})
}

// SetReviewDeadline sets the "review_deadline" field.
func (u *GuardianActionUpsertBulk) SetReviewDeadline(v time.Time) *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetReviewDeadline(v)
	})
}

// UpdateReviewDeadline sets the "review_deadline" field to the value that was provided on create.
func (u *GuardianActionUpsertBulk) UpdateReviewDeadline() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateReviewDeadline()
	})
}

// ClearReviewDeadline clears the value of the "review_deadline" field.
func (u *GuardianActionUpsertBulk) ClearReviewDeadline() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.ClearReviewDeadline()
	})
}

// SetAuditLog sets the "audit_log" field.
func (u *GuardianActionUpsertBulk) SetAuditLog(v []map[string]interface{}) *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetAuditLog(v)
	})
}

// UpdateAuditLog sets the "audit_log" field to the value that was provided on create.
func (u *GuardianActionUpsertBulk) UpdateAuditLog() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateAuditLog()
	})
}

// ClearAuditLog clears the value of the "audit_log" field.
func (u *GuardianActionUpsertBulk) ClearAuditLog() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.ClearAuditLog()
	})
}

// SetParams sets the "params" field.
func (u *GuardianActionUpsertBulk) SetParams(v map[string]interface{}) *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.SetParams(v)
	})
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *GuardianActionUpsertBulk) UpdateParams() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.UpdateParams()
	})
}

// ClearParams clears the value of the "params" field.
func (u *GuardianActionUpsertBulk) ClearParams() *GuardianActionUpsertBulk {
	return u.Update(func(s *GuardianActionUpsert) {
		s.ClearParams()
	})
}

// Exec executes the query.
func (u *GuardianActionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GuardianActionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GuardianActionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GuardianActionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
