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
	"github.com/helmsman-ai/helmsman/ent/guardianaction"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// GuardianActionUpdate is the builder for updating GuardianAction entities.
type GuardianActionUpdate struct {
	config
	hooks    []Hook
	mutation *GuardianActionMutation
}

// Where appends a list predicates to the GuardianActionUpdate builder.
func (_u *GuardianActionUpdate) Where(ps ...predicate.GuardianAction) *GuardianActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *GuardianActionUpdate) SetActionType(v guardianaction.ActionType) *GuardianActionUpdate {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *GuardianActionUpdate) SetNillableActionType(v *guardianaction.ActionType) *GuardianActionUpdate {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetTargetAgentID sets the "target_agent_id" field.
func (_u *GuardianActionUpdate) SetTargetAgentID(v string) *GuardianActionUpdate {
	_u.mutation.SetTargetAgentID(v)
	return _u
}

// SetNillableTargetAgentID sets the "target_agent_id" field if the given value is not nil.
func (_u *GuardianActionUpdate) SetNillableTargetAgentID(v *string) *GuardianActionUpdate {
	if v != nil {
		_u.SetTargetAgentID(*v)
	}
	return _u
}

// SetTargetTaskID sets the "target_task_id" field.
func (_u *GuardianActionUpdate) SetTargetTaskID(v string) *GuardianActionUpdate {
	_u.mutation.SetTargetTaskID(v)
	return _u
}

// SetNillableTargetTaskID sets the "target_task_id" field if the given value is not nil.
func (_u *GuardianActionUpdate) SetNillableTargetTaskID(v *string) *GuardianActionUpdate {
	if v != nil {
		_u.SetTargetTaskID(*v)
	}
	return _u
}

// ClearTargetTaskID clears the value of the "target_task_id" field.
func (_u *GuardianActionUpdate) ClearTargetTaskID() *GuardianActionUpdate {
	_u.mutation.ClearTargetTaskID()
	return _u
}

// SetAuthorityLevel sets the "authority_level" field.
func (_u *GuardianActionUpdate) SetAuthorityLevel(v int) *GuardianActionUpdate {
	_u.mutation.ResetAuthorityLevel()
	_u.mutation.SetAuthorityLevel(v)
	return _u
}

// SetNillableAuthorityLevel sets the "authority_level" field if the given value is not nil.
func (_u *GuardianActionUpdate) SetNillableAuthorityLevel(v *int) *GuardianActionUpdate {
	if v != nil {
		_u.SetAuthorityLevel(*v)
	}
	return _u
}

// AddAuthorityLevel adds value to the "authority_level" field.
func (_u *GuardianActionUpdate) AddAuthorityLevel(v int) *GuardianActionUpdate {
	_u.mutation.AddAuthorityLevel(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *GuardianActionUpdate) SetReason(v string) *GuardianActionUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *GuardianActionUpdate) SetNillableReason(v *string) *GuardianActionUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetInitiator sets the "initiator" field.
func (_u *GuardianActionUpdate) SetInitiator(v string) *GuardianActionUpdate {
	_u.mutation.SetInitiator(v)
	return _u
}

// SetNillableInitiator sets the "initiator" field if the given value is not nil.
func (_u *GuardianActionUpdate) SetNillableInitiator(v *string) *GuardianActionUpdate {
	if v != nil {
		_u.SetInitiator(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GuardianActionUpdate) SetStatus(v guardianaction.Status) *GuardianActionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GuardianActionUpdate) SetNillableStatus(v *guardianaction.Status) *GuardianActionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *GuardianActionUpdate) SetApprovedBy(v string) *GuardianActionUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *GuardianActionUpdate) SetNillableApprovedBy(v *string) *GuardianActionUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *GuardianActionUpdate) ClearApprovedBy() *GuardianActionUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *GuardianActionUpdate) SetExecutedAt(v time.Time) *GuardianActionUpdate {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *GuardianActionUpdate) SetNillableExecutedAt(v *time.Time) *GuardianActionUpdate {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (_u *GuardianActionUpdate) ClearExecutedAt() *GuardianActionUpdate {
	_u.mutation.ClearExecutedAt()
	return _u
}

// SetRevertedAt sets the "reverted_at" field.
func (_u *GuardianActionUpdate) SetRevertedAt(v time.Time) *GuardianActionUpdate {
	_u.mutation.SetRevertedAt(v)
	return _u
}

// SetNillableRevertedAt sets the "reverted_at" field if the given value is not nil.
func (_u *GuardianActionUpdate) SetNillableRevertedAt(v *time.Time) *GuardianActionUpdate {
	if v != nil {
		_u.SetRevertedAt(*v)
	}
	return _u
}

// ClearRevertedAt clears the value of the "reverted_at" field.
func (_u *GuardianActionUpdate) ClearRevertedAt() *GuardianActionUpdate {
	_u.mutation.ClearRevertedAt()
	return _u
}

// SetReviewDeadline sets the "review_deadline" field.
func (_u *GuardianActionUpdate) SetReviewDeadline(v time.Time) *GuardianActionUpdate {
	_u.mutation.SetReviewDeadline(v)
	return _u
}

// SetNillableReviewDeadline sets the "review_deadline" field if the given value is not nil.
func (_u *GuardianActionUpdate) SetNillableReviewDeadline(v *time.Time) *GuardianActionUpdate {
	if v != nil {
		_u.SetReviewDeadline(*v)
	}
	return _u
}

// ClearReviewDeadline clears the value of the "review_deadline" field.
func (_u *GuardianActionUpdate) ClearReviewDeadline() *GuardianActionUpdate {
	_u.mutation.ClearReviewDeadline()
	return _u
}

// SetAuditLog sets the "audit_log" field.
func (_u *GuardianActionUpdate) SetAuditLog(v []map[string]interface{}) *GuardianActionUpdate {
	_u.mutation.SetAuditLog(v)
	return _u
}

// AppendAuditLog appends value to the "audit_log" field.
func (_u *GuardianActionUpdate) AppendAuditLog(v []map[string]interface{}) *GuardianActionUpdate {
	_u.mutation.AppendAuditLog(v)
	return _u
}

// ClearAuditLog clears the value of the "audit_log" field.
func (_u *GuardianActionUpdate) ClearAuditLog() *GuardianActionUpdate {
	_u.mutation.ClearAuditLog()
	return _u
}

// SetParams sets the "params" field.
func (_u *GuardianActionUpdate) SetParams(v map[string]interface{}) *GuardianActionUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *GuardianActionUpdate) ClearParams() *GuardianActionUpdate {
	_u.mutation.ClearParams()
	return _u
}

// Mutation returns the GuardianActionMutation object of the builder.
func (_u *GuardianActionUpdate) Mutation() *GuardianActionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GuardianActionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GuardianActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GuardianActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GuardianActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GuardianActionUpdate) check() error {
	if v, ok := _u.mutation.ActionType(); ok {
		if err := guardianaction.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "GuardianAction.action_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := guardianaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GuardianAction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GuardianActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(guardianaction.Table, guardianaction.Columns, sqlgraph.NewFieldSpec(guardianaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(guardianaction.FieldActionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetAgentID(); ok {
		_spec.SetField(guardianaction.FieldTargetAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetTaskID(); ok {
		_spec.SetField(guardianaction.FieldTargetTaskID, field.TypeString, value)
	}
	if _u.mutation.TargetTaskIDCleared() {
		_spec.ClearField(guardianaction.FieldTargetTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.AuthorityLevel(); ok {
		_spec.SetField(guardianaction.FieldAuthorityLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAuthorityLevel(); ok {
		_spec.AddField(guardianaction.FieldAuthorityLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(guardianaction.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Initiator(); ok {
		_spec.SetField(guardianaction.FieldInitiator, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(guardianaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(guardianaction.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(guardianaction.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(guardianaction.FieldExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutedAtCleared() {
		_spec.ClearField(guardianaction.FieldExecutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RevertedAt(); ok {
		_spec.SetField(guardianaction.FieldRevertedAt, field.TypeTime, value)
	}
	if _u.mutation.RevertedAtCleared() {
		_spec.ClearField(guardianaction.FieldRevertedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewDeadline(); ok {
		_spec.SetField(guardianaction.FieldReviewDeadline, field.TypeTime, value)
	}
	if _u.mutation.ReviewDeadlineCleared() {
		_spec.ClearField(guardianaction.FieldReviewDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.AuditLog(); ok {
		_spec.SetField(guardianaction.FieldAuditLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAuditLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, guardianaction.FieldAuditLog, value)
		})
	}
	if _u.mutation.AuditLogCleared() {
		_spec.ClearField(guardianaction.FieldAuditLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(guardianaction.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(guardianaction.FieldParams, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{guardianaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GuardianActionUpdateOne is the builder for updating a single GuardianAction entity.
type GuardianActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GuardianActionMutation
}

// SetActionType sets the "action_type" field.
func (_u *GuardianActionUpdateOne) SetActionType(v guardianaction.ActionType) *GuardianActionUpdateOne {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *GuardianActionUpdateOne) SetNillableActionType(v *guardianaction.ActionType) *GuardianActionUpdateOne {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetTargetAgentID sets the "target_agent_id" field.
func (_u *GuardianActionUpdateOne) SetTargetAgentID(v string) *GuardianActionUpdateOne {
	_u.mutation.SetTargetAgentID(v)
	return _u
}

// SetNillableTargetAgentID sets the "target_agent_id" field if the given value is not nil.
func (_u *GuardianActionUpdateOne) SetNillableTargetAgentID(v *string) *GuardianActionUpdateOne {
	if v != nil {
		_u.SetTargetAgentID(*v)
	}
	return _u
}

// SetTargetTaskID sets the "target_task_id" field.
func (_u *GuardianActionUpdateOne) SetTargetTaskID(v string) *GuardianActionUpdateOne {
	_u.mutation.SetTargetTaskID(v)
	return _u
}

// SetNillableTargetTaskID sets the "target_task_id" field if the given value is not nil.
func (_u *GuardianActionUpdateOne) SetNillableTargetTaskID(v *string) *GuardianActionUpdateOne {
	if v != nil {
		_u.SetTargetTaskID(*v)
	}
	return _u
}

// ClearTargetTaskID clears the value of the "target_task_id" field.
func (_u *GuardianActionUpdateOne) ClearTargetTaskID() *GuardianActionUpdateOne {
	_u.mutation.ClearTargetTaskID()
	return _u
}

// SetAuthorityLevel sets the "authority_level" field.
func (_u *GuardianActionUpdateOne) SetAuthorityLevel(v int) *GuardianActionUpdateOne {
	_u.mutation.ResetAuthorityLevel()
	_u.mutation.SetAuthorityLevel(v)
	return _u
}

// SetNillableAuthorityLevel sets the "authority_level" field if the given value is not nil.
func (_u *GuardianActionUpdateOne) SetNillableAuthorityLevel(v *int) *GuardianActionUpdateOne {
	if v != nil {
		_u.SetAuthorityLevel(*v)
	}
	return _u
}

// AddAuthorityLevel adds value to the "authority_level" field.
func (_u *GuardianActionUpdateOne) AddAuthorityLevel(v int) *GuardianActionUpdateOne {
	_u.mutation.AddAuthorityLevel(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *GuardianActionUpdateOne) SetReason(v string) *GuardianActionUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *GuardianActionUpdateOne) SetNillableReason(v *string) *GuardianActionUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetInitiator sets the "initiator" field.
func (_u *GuardianActionUpdateOne) SetInitiator(v string) *GuardianActionUpdateOne {
	_u.mutation.SetInitiator(v)
	return _u
}

// SetNillableInitiator sets the "initiator" field if the given value is not nil.
func (_u *GuardianActionUpdateOne) SetNillableInitiator(v *string) *GuardianActionUpdateOne {
	if v != nil {
		_u.SetInitiator(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GuardianActionUpdateOne) SetStatus(v guardianaction.Status) *GuardianActionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GuardianActionUpdateOne) SetNillableStatus(v *guardianaction.Status) *GuardianActionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *GuardianActionUpdateOne) SetApprovedBy(v string) *GuardianActionUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *GuardianActionUpdateOne) SetNillableApprovedBy(v *string) *GuardianActionUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *GuardianActionUpdateOne) ClearApprovedBy() *GuardianActionUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *GuardianActionUpdateOne) SetExecutedAt(v time.Time) *GuardianActionUpdateOne {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *GuardianActionUpdateOne) SetNillableExecutedAt(v *time.Time) *GuardianActionUpdateOne {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (_u *GuardianActionUpdateOne) ClearExecutedAt() *GuardianActionUpdateOne {
	_u.mutation.ClearExecutedAt()
	return _u
}

// SetRevertedAt sets the "reverted_at" field.
func (_u *GuardianActionUpdateOne) SetRevertedAt(v time.Time) *GuardianActionUpdateOne {
	_u.mutation.SetRevertedAt(v)
	return _u
}

// SetNillableRevertedAt sets the "reverted_at" field if the given value is not nil.
func (_u *GuardianActionUpdateOne) SetNillableRevertedAt(v *time.Time) *GuardianActionUpdateOne {
	if v != nil {
		_u.SetRevertedAt(*v)
	}
	return _u
}

// ClearRevertedAt clears the value of the "reverted_at" field.
func (_u *GuardianActionUpdateOne) ClearRevertedAt() *GuardianActionUpdateOne {
	_u.mutation.ClearRevertedAt()
	return _u
}

// SetReviewDeadline sets the "review_deadline" field.
func (_u *GuardianActionUpdateOne) SetReviewDeadline(v time.Time) *GuardianActionUpdateOne {
	_u.mutation.SetReviewDeadline(v)
	return _u
}

// SetNillableReviewDeadline sets the "review_deadline" field if the given value is not nil.
func (_u *GuardianActionUpdateOne) SetNillableReviewDeadline(v *time.Time) *GuardianActionUpdateOne {
	if v != nil {
		_u.SetReviewDeadline(*v)
	}
	return _u
}

// ClearReviewDeadline clears the value of the "review_deadline" field.
func (_u *GuardianActionUpdateOne) ClearReviewDeadline() *GuardianActionUpdateOne {
	_u.mutation.ClearReviewDeadline()
	return _u
}

// SetAuditLog sets the "audit_log" field.
func (_u *GuardianActionUpdateOne) SetAuditLog(v []map[string]interface{}) *GuardianActionUpdateOne {
	_u.mutation.SetAuditLog(v)
	return _u
}

// AppendAuditLog appends value to the "audit_log" field.
func (_u *GuardianActionUpdateOne) AppendAuditLog(v []map[string]interface{}) *GuardianActionUpdateOne {
	_u.mutation.AppendAuditLog(v)
	return _u
}

// ClearAuditLog clears the value of the "audit_log" field.
func (_u *GuardianActionUpdateOne) ClearAuditLog() *GuardianActionUpdateOne {
	_u.mutation.ClearAuditLog()
	return _u
}

// SetParams sets the "params" field.
func (_u *GuardianActionUpdateOne) SetParams(v map[string]interface{}) *GuardianActionUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *GuardianActionUpdateOne) ClearParams() *GuardianActionUpdateOne {
	_u.mutation.ClearParams()
	return _u
}

// Mutation returns the GuardianActionMutation object of the builder.
func (_u *GuardianActionUpdateOne) Mutation() *GuardianActionMutation {
	return _u.mutation
}

// Where appends a list predicates to the GuardianActionUpdate builder.
func (_u *GuardianActionUpdateOne) Where(ps ...predicate.GuardianAction) *GuardianActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GuardianActionUpdateOne) Select(field string, fields ...string) *GuardianActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GuardianAction entity.
func (_u *GuardianActionUpdateOne) Save(ctx context.Context) (*GuardianAction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GuardianActionUpdateOne) SaveX(ctx context.Context) *GuardianAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GuardianActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GuardianActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GuardianActionUpdateOne) check() error {
	if v, ok := _u.mutation.ActionType(); ok {
		if err := guardianaction.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "GuardianAction.action_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := guardianaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GuardianAction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GuardianActionUpdateOne) sqlSave(ctx context.Context) (_node *GuardianAction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(guardianaction.Table, guardianaction.Columns, sqlgraph.NewFieldSpec(guardianaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GuardianAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, guardianaction.FieldID)
		for _, f := range fields {
			if !guardianaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != guardianaction.FieldID {
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
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(guardianaction.FieldActionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetAgentID(); ok {
		_spec.SetField(guardianaction.FieldTargetAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetTaskID(); ok {
		_spec.SetField(guardianaction.FieldTargetTaskID, field.TypeString, value)
	}
	if _u.mutation.TargetTaskIDCleared() {
		_spec.ClearField(guardianaction.FieldTargetTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.AuthorityLevel(); ok {
		_spec.SetField(guardianaction.FieldAuthorityLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAuthorityLevel(); ok {
		_spec.AddField(guardianaction.FieldAuthorityLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(guardianaction.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Initiator(); ok {
		_spec.SetField(guardianaction.FieldInitiator, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(guardianaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(guardianaction.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(guardianaction.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(guardianaction.FieldExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutedAtCleared() {
		_spec.ClearField(guardianaction.FieldExecutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RevertedAt(); ok {
		_spec.SetField(guardianaction.FieldRevertedAt, field.TypeTime, value)
	}
	if _u.mutation.RevertedAtCleared() {
		_spec.ClearField(guardianaction.FieldRevertedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewDeadline(); ok {
		_spec.SetField(guardianaction.FieldReviewDeadline, field.TypeTime, value)
	}
	if _u.mutation.ReviewDeadlineCleared() {
		_spec.ClearField(guardianaction.FieldReviewDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.AuditLog(); ok {
		_spec.SetField(guardianaction.FieldAuditLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAuditLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, guardianaction.FieldAuditLog, value)
		})
	}
	if _u.mutation.AuditLogCleared() {
		_spec.ClearField(guardianaction.FieldAuditLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(guardianaction.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(guardianaction.FieldParams, field.TypeJSON)
	}
	_node = &GuardianAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{guardianaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
