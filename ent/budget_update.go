// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/helmsman-ai/helmsman/ent/budget"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// BudgetUpdate is the builder for updating Budget entities.
type BudgetUpdate struct {
	config
	hooks    []Hook
	mutation *BudgetMutation
}

// Where appends a list predicates to the BudgetUpdate builder.
func (_u *BudgetUpdate) Where(ps ...predicate.Budget) *BudgetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScopeType sets the "scope_type" field.
func (_u *BudgetUpdate) SetScopeType(v budget.ScopeType) *BudgetUpdate {
	_u.mutation.SetScopeType(v)
	return _u
}

// SetNillableScopeType sets the "scope_type" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableScopeType(v *budget.ScopeType) *BudgetUpdate {
	if v != nil {
		_u.SetScopeType(*v)
	}
	return _u
}

// SetScopeID sets the "scope_id" field.
func (_u *BudgetUpdate) SetScopeID(v string) *BudgetUpdate {
	_u.mutation.SetScopeID(v)
	return _u
}

// SetNillableScopeID sets the "scope_id" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableScopeID(v *string) *BudgetUpdate {
	if v != nil {
		_u.SetScopeID(*v)
	}
	return _u
}

// SetLimitUsd sets the "limit_usd" field.
func (_u *BudgetUpdate) SetLimitUsd(v float64) *BudgetUpdate {
	_u.mutation.ResetLimitUsd()
	_u.mutation.SetLimitUsd(v)
	return _u
}

// SetNillableLimitUsd sets the "limit_usd" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableLimitUsd(v *float64) *BudgetUpdate {
	if v != nil {
		_u.SetLimitUsd(*v)
	}
	return _u
}

// AddLimitUsd adds value to the "limit_usd" field.
func (_u *BudgetUpdate) AddLimitUsd(v float64) *BudgetUpdate {
	_u.mutation.AddLimitUsd(v)
	return _u
}

// SetSpentUsd sets the "spent_usd" field.
func (_u *BudgetUpdate) SetSpentUsd(v float64) *BudgetUpdate {
	_u.mutation.ResetSpentUsd()
	_u.mutation.SetSpentUsd(v)
	return _u
}

// SetNillableSpentUsd sets the "spent_usd" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableSpentUsd(v *float64) *BudgetUpdate {
	if v != nil {
		_u.SetSpentUsd(*v)
	}
	return _u
}

// AddSpentUsd adds value to the "spent_usd" field.
func (_u *BudgetUpdate) AddSpentUsd(v float64) *BudgetUpdate {
	_u.mutation.AddSpentUsd(v)
	return _u
}

// SetReservedUsd sets the "reserved_usd" field.
func (_u *BudgetUpdate) SetReservedUsd(v float64) *BudgetUpdate {
	_u.mutation.ResetReservedUsd()
	_u.mutation.SetReservedUsd(v)
	return _u
}

// SetNillableReservedUsd sets the "reserved_usd" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableReservedUsd(v *float64) *BudgetUpdate {
	if v != nil {
		_u.SetReservedUsd(*v)
	}
	return _u
}

// AddReservedUsd adds value to the "reserved_usd" field.
func (_u *BudgetUpdate) AddReservedUsd(v float64) *BudgetUpdate {
	_u.mutation.AddReservedUsd(v)
	return _u
}

// SetPeriod sets the "period" field.
func (_u *BudgetUpdate) SetPeriod(v string) *BudgetUpdate {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillablePeriod(v *string) *BudgetUpdate {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetAlertThreshold sets the "alert_threshold" field.
func (_u *BudgetUpdate) SetAlertThreshold(v float64) *BudgetUpdate {
	_u.mutation.ResetAlertThreshold()
	_u.mutation.SetAlertThreshold(v)
	return _u
}

// SetNillableAlertThreshold sets the "alert_threshold" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableAlertThreshold(v *float64) *BudgetUpdate {
	if v != nil {
		_u.SetAlertThreshold(*v)
	}
	return _u
}

// AddAlertThreshold adds value to the "alert_threshold" field.
func (_u *BudgetUpdate) AddAlertThreshold(v float64) *BudgetUpdate {
	_u.mutation.AddAlertThreshold(v)
	return _u
}

// SetAlerted sets the "alerted" field.
func (_u *BudgetUpdate) SetAlerted(v bool) *BudgetUpdate {
	_u.mutation.SetAlerted(v)
	return _u
}

// SetNillableAlerted sets the "alerted" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableAlerted(v *bool) *BudgetUpdate {
	if v != nil {
		_u.SetAlerted(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *BudgetUpdate) SetVersion(v int) *BudgetUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableVersion(v *int) *BudgetUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *BudgetUpdate) AddVersion(v int) *BudgetUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetUpdate) SetUpdatedAt(v time.Time) *BudgetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BudgetMutation object of the builder.
func (_u *BudgetUpdate) Mutation() *BudgetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BudgetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BudgetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budget.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetUpdate) check() error {
	if v, ok := _u.mutation.ScopeType(); ok {
		if err := budget.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "Budget.scope_type": %w`, err)}
		}
	}
	return nil
}

func (_u *BudgetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budget.Table, budget.Columns, sqlgraph.NewFieldSpec(budget.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ScopeType(); ok {
		_spec.SetField(budget.FieldScopeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScopeID(); ok {
		_spec.SetField(budget.FieldScopeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LimitUsd(); ok {
		_spec.SetField(budget.FieldLimitUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLimitUsd(); ok {
		_spec.AddField(budget.FieldLimitUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SpentUsd(); ok {
		_spec.SetField(budget.FieldSpentUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpentUsd(); ok {
		_spec.AddField(budget.FieldSpentUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReservedUsd(); ok {
		_spec.SetField(budget.FieldReservedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReservedUsd(); ok {
		_spec.AddField(budget.FieldReservedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(budget.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlertThreshold(); ok {
		_spec.SetField(budget.FieldAlertThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAlertThreshold(); ok {
		_spec.AddField(budget.FieldAlertThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Alerted(); ok {
		_spec.SetField(budget.FieldAlerted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(budget.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(budget.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budget.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BudgetUpdateOne is the builder for updating a single Budget entity.
type BudgetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BudgetMutation
}

// SetScopeType sets the "scope_type" field.
func (_u *BudgetUpdateOne) SetScopeType(v budget.ScopeType) *BudgetUpdateOne {
	_u.mutation.SetScopeType(v)
	return _u
}

// SetNillableScopeType sets the "scope_type" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableScopeType(v *budget.ScopeType) *BudgetUpdateOne {
	if v != nil {
		_u.SetScopeType(*v)
	}
	return _u
}

// SetScopeID sets the "scope_id" field.
func (_u *BudgetUpdateOne) SetScopeID(v string) *BudgetUpdateOne {
	_u.mutation.SetScopeID(v)
	return _u
}

// SetNillableScopeID sets the "scope_id" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableScopeID(v *string) *BudgetUpdateOne {
	if v != nil {
		_u.SetScopeID(*v)
	}
	return _u
}

// SetLimitUsd sets the "limit_usd" field.
func (_u *BudgetUpdateOne) SetLimitUsd(v float64) *BudgetUpdateOne {
	_u.mutation.ResetLimitUsd()
	_u.mutation.SetLimitUsd(v)
	return _u
}

// SetNillableLimitUsd sets the "limit_usd" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableLimitUsd(v *float64) *BudgetUpdateOne {
	if v != nil {
		_u.SetLimitUsd(*v)
	}
	return _u
}

// AddLimitUsd adds value to the "limit_usd" field.
func (_u *BudgetUpdateOne) AddLimitUsd(v float64) *BudgetUpdateOne {
	_u.mutation.AddLimitUsd(v)
	return _u
}

// SetSpentUsd sets the "spent_usd" field.
func (_u *BudgetUpdateOne) SetSpentUsd(v float64) *BudgetUpdateOne {
	_u.mutation.ResetSpentUsd()
	_u.mutation.SetSpentUsd(v)
	return _u
}

// SetNillableSpentUsd sets the "spent_usd" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableSpentUsd(v *float64) *BudgetUpdateOne {
	if v != nil {
		_u.SetSpentUsd(*v)
	}
	return _u
}

// AddSpentUsd adds value to the "spent_usd" field.
func (_u *BudgetUpdateOne) AddSpentUsd(v float64) *BudgetUpdateOne {
	_u.mutation.AddSpentUsd(v)
	return _u
}

// SetReservedUsd sets the "reserved_usd" field.
func (_u *BudgetUpdateOne) SetReservedUsd(v float64) *BudgetUpdateOne {
	_u.mutation.ResetReservedUsd()
	_u.mutation.SetReservedUsd(v)
	return _u
}

// SetNillableReservedUsd sets the "reserved_usd" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableReservedUsd(v *float64) *BudgetUpdateOne {
	if v != nil {
		_u.SetReservedUsd(*v)
	}
	return _u
}

// AddReservedUsd adds value to the "reserved_usd" field.
func (_u *BudgetUpdateOne) AddReservedUsd(v float64) *BudgetUpdateOne {
	_u.mutation.AddReservedUsd(v)
	return _u
}

// SetPeriod sets the "period" field.
func (_u *BudgetUpdateOne) SetPeriod(v string) *BudgetUpdateOne {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillablePeriod(v *string) *BudgetUpdateOne {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetAlertThreshold sets the "alert_threshold" field.
func (_u *BudgetUpdateOne) SetAlertThreshold(v float64) *BudgetUpdateOne {
	_u.mutation.ResetAlertThreshold()
	_u.mutation.SetAlertThreshold(v)
	return _u
}

// SetNillableAlertThreshold sets the "alert_threshold" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableAlertThreshold(v *float64) *BudgetUpdateOne {
	if v != nil {
		_u.SetAlertThreshold(*v)
	}
	return _u
}

// AddAlertThreshold adds value to the "alert_threshold" field.
func (_u *BudgetUpdateOne) AddAlertThreshold(v float64) *BudgetUpdateOne {
	_u.mutation.AddAlertThreshold(v)
	return _u
}

// SetAlerted sets the "alerted" field.
func (_u *BudgetUpdateOne) SetAlerted(v bool) *BudgetUpdateOne {
	_u.mutation.SetAlerted(v)
	return _u
}

// SetNillableAlerted sets the "alerted" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableAlerted(v *bool) *BudgetUpdateOne {
	if v != nil {
		_u.SetAlerted(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *BudgetUpdateOne) SetVersion(v int) *BudgetUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableVersion(v *int) *BudgetUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *BudgetUpdateOne) AddVersion(v int) *BudgetUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetUpdateOne) SetUpdatedAt(v time.Time) *BudgetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BudgetMutation object of the builder.
func (_u *BudgetUpdateOne) Mutation() *BudgetMutation {
	return _u.mutation
}

// Where appends a list predicates to the BudgetUpdate builder.
func (_u *BudgetUpdateOne) Where(ps ...predicate.Budget) *BudgetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BudgetUpdateOne) Select(field string, fields ...string) *BudgetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Budget entity.
func (_u *BudgetUpdateOne) Save(ctx context.Context) (*Budget, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetUpdateOne) SaveX(ctx context.Context) *Budget {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BudgetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budget.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetUpdateOne) check() error {
	if v, ok := _u.mutation.ScopeType(); ok {
		if err := budget.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "Budget.scope_type": %w`, err)}
		}
	}
	return nil
}

func (_u *BudgetUpdateOne) sqlSave(ctx context.Context) (_node *Budget, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budget.Table, budget.Columns, sqlgraph.NewFieldSpec(budget.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Budget.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, budget.FieldID)
		for _, f := range fields {
			if !budget.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != budget.FieldID {
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
	if value, ok := _u.mutation.ScopeType(); ok {
		_spec.SetField(budget.FieldScopeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScopeID(); ok {
		_spec.SetField(budget.FieldScopeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LimitUsd(); ok {
		_spec.SetField(budget.FieldLimitUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLimitUsd(); ok {
		_spec.AddField(budget.FieldLimitUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SpentUsd(); ok {
		_spec.SetField(budget.FieldSpentUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpentUsd(); ok {
		_spec.AddField(budget.FieldSpentUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReservedUsd(); ok {
		_spec.SetField(budget.FieldReservedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReservedUsd(); ok {
		_spec.AddField(budget.FieldReservedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(budget.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlertThreshold(); ok {
		_spec.SetField(budget.FieldAlertThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAlertThreshold(); ok {
		_spec.AddField(budget.FieldAlertThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Alerted(); ok {
		_spec.SetField(budget.FieldAlerted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(budget.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(budget.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budget.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Budget{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
