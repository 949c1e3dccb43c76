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
	"github.com/helmsman-ai/helmsman/ent/budget"
)

// BudgetCreate is the builder for creating a Budget entity.
type BudgetCreate struct {
	config
	mutation *BudgetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetScopeType sets the "scope_type" field.
func (_c *BudgetCreate) SetScopeType(v budget.ScopeType) *BudgetCreate {
	_c.mutation.SetScopeType(v)
	return _c
}

// SetScopeID sets the "scope_id" field.
func (_c *BudgetCreate) SetScopeID(v string) *BudgetCreate {
	_c.mutation.SetScopeID(v)
	return _c
}

// SetLimitUsd sets the "limit_usd" field.
func (_c *BudgetCreate) SetLimitUsd(v float64) *BudgetCreate {
	_c.mutation.SetLimitUsd(v)
	return _c
}

// SetSpentUsd sets the "spent_usd" field.
func (_c *BudgetCreate) SetSpentUsd(v float64) *BudgetCreate {
	_c.mutation.SetSpentUsd(v)
	return _c
}

// SetNillableSpentUsd sets the "spent_usd" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableSpentUsd(v *float64) *BudgetCreate {
	if v != nil {
		_c.SetSpentUsd(*v)
	}
	return _c
}

// SetReservedUsd sets the "reserved_usd" field.
func (_c *BudgetCreate) SetReservedUsd(v float64) *BudgetCreate {
	_c.mutation.SetReservedUsd(v)
	return _c
}

// SetNillableReservedUsd sets the "reserved_usd" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableReservedUsd(v *float64) *BudgetCreate {
	if v != nil {
		_c.SetReservedUsd(*v)
	}
	return _c
}

// SetPeriod sets the "period" field.
func (_c *BudgetCreate) SetPeriod(v string) *BudgetCreate {
	_c.mutation.SetPeriod(v)
	return _c
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_c *BudgetCreate) SetNillablePeriod(v *string) *BudgetCreate {
	if v != nil {
		_c.SetPeriod(*v)
	}
	return _c
}

// SetAlertThreshold sets the "alert_threshold" field.
func (_c *BudgetCreate) SetAlertThreshold(v float64) *BudgetCreate {
	_c.mutation.SetAlertThreshold(v)
	return _c
}

// SetNillableAlertThreshold sets the "alert_threshold" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableAlertThreshold(v *float64) *BudgetCreate {
	if v != nil {
		_c.SetAlertThreshold(*v)
	}
	return _c
}

// SetAlerted sets the "alerted" field.
func (_c *BudgetCreate) SetAlerted(v bool) *BudgetCreate {
	_c.mutation.SetAlerted(v)
	return _c
}

// SetNillableAlerted sets the "alerted" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableAlerted(v *bool) *BudgetCreate {
	if v != nil {
		_c.SetAlerted(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *BudgetCreate) SetVersion(v int) *BudgetCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableVersion(v *int) *BudgetCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BudgetCreate) SetCreatedAt(v time.Time) *BudgetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableCreatedAt(v *time.Time) *BudgetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BudgetCreate) SetUpdatedAt(v time.Time) *BudgetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableUpdatedAt(v *time.Time) *BudgetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BudgetCreate) SetID(v string) *BudgetCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BudgetMutation object of the builder.
func (_c *BudgetCreate) Mutation() *BudgetMutation {
	return _c.mutation
}

// Save creates the Budget in the database.
func (_c *BudgetCreate) Save(ctx context.Context) (*Budget, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BudgetCreate) SaveX(ctx context.Context) *Budget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BudgetCreate) defaults() {
	if _, ok := _c.mutation.SpentUsd(); !ok {
		v := budget.DefaultSpentUsd
		_c.mutation.SetSpentUsd(v)
	}
	if _, ok := _c.mutation.ReservedUsd(); !ok {
		v := budget.DefaultReservedUsd
		_c.mutation.SetReservedUsd(v)
	}
	if _, ok := _c.mutation.Period(); !ok {
		v := budget.DefaultPeriod
		_c.mutation.SetPeriod(v)
	}
	if _, ok := _c.mutation.AlertThreshold(); !ok {
		v := budget.DefaultAlertThreshold
		_c.mutation.SetAlertThreshold(v)
	}
	if _, ok := _c.mutation.Alerted(); !ok {
		v := budget.DefaultAlerted
		_c.mutation.SetAlerted(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := budget.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := budget.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := budget.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BudgetCreate) check() error {
	if _, ok := _c.mutation.ScopeType(); !ok {
		return &ValidationError{Name: "scope_type", err: errors.New(`ent: missing required field "Budget.scope_type"`)}
	}
	if v, ok := _c.mutation.ScopeType(); ok {
		if err := budget.ScopeTypeValidator(v); err != nil {
			return &ValidationError{Name: "scope_type", err: fmt.Errorf(`ent: validator failed for field "Budget.scope_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScopeID(); !ok {
		return &ValidationError{Name: "scope_id", err: errors.New(`ent: missing required field "Budget.scope_id"`)}
	}
	if _, ok := _c.mutation.LimitUsd(); !ok {
		return &ValidationError{Name: "limit_usd", err: errors.New(`ent: missing required field "Budget.limit_usd"`)}
	}
	if _, ok := _c.mutation.SpentUsd(); !ok {
		return &ValidationError{Name: "spent_usd", err: errors.New(`ent: missing required field "Budget.spent_usd"`)}
	}
	if _, ok := _c.mutation.ReservedUsd(); !ok {
		return &ValidationError{Name: "reserved_usd", err: errors.New(`ent: missing required field "Budget.reserved_usd"`)}
	}
	if _, ok := _c.mutation.Period(); !ok {
		return &ValidationError{Name: "period", err: errors.New(`ent: missing required field "Budget.period"`)}
	}
	if _, ok := _c.mutation.AlertThreshold(); !ok {
		return &ValidationError{Name: "alert_threshold", err: errors.New(`ent: missing required field "Budget.alert_threshold"`)}
	}
	if _, ok := _c.mutation.Alerted(); !ok {
		return &ValidationError{Name: "alerted", err: errors.New(`ent: missing required field "Budget.alerted"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Budget.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Budget.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Budget.updated_at"`)}
	}
	return nil
}

func (_c *BudgetCreate) sqlSave(ctx context.Context) (*Budget, error) {
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
			return nil, fmt.Errorf("unexpected Budget.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BudgetCreate) createSpec() (*Budget, *sqlgraph.CreateSpec) {
	var (
		_node = &Budget{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(budget.Table, sqlgraph.NewFieldSpec(budget.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ScopeType(); ok {
		_spec.SetField(budget.FieldScopeType, field.TypeEnum, value)
		_node.ScopeType = value
	}
	if value, ok := _c.mutation.ScopeID(); ok {
		_spec.SetField(budget.FieldScopeID, field.TypeString, value)
		_node.ScopeID = value
	}
	if value, ok := _c.mutation.LimitUsd(); ok {
		_spec.SetField(budget.FieldLimitUsd, field.TypeFloat64, value)
		_node.LimitUsd = value
	}
	if value, ok := _c.mutation.SpentUsd(); ok {
		_spec.SetField(budget.FieldSpentUsd, field.TypeFloat64, value)
		_node.SpentUsd = value
	}
	if value, ok := _c.mutation.ReservedUsd(); ok {
		_spec.SetField(budget.FieldReservedUsd, field.TypeFloat64, value)
		_node.ReservedUsd = value
	}
	if value, ok := _c.mutation.Period(); ok {
		_spec.SetField(budget.FieldPeriod, field.TypeString, value)
		_node.Period = value
	}
	if value, ok := _c.mutation.AlertThreshold(); ok {
		_spec.SetField(budget.FieldAlertThreshold, field.TypeFloat64, value)
		_node.AlertThreshold = value
	}
	if value, ok := _c.mutation.Alerted(); ok {
		_spec.SetField(budget.FieldAlerted, field.TypeBool, value)
		_node.Alerted = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(budget.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(budget.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(budget.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Budget.Create().
//		SetScopeType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BudgetUpsert) {
//			SetScopeType(v+v).
//		}).
//		Exec(ctx)
func (_c *BudgetCreate) OnConflict(opts ...sql.ConflictOption) *BudgetUpsertOne {
	_c.conflict = opts
	return &BudgetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BudgetCreate) OnConflictColumns(columns ...string) *BudgetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BudgetUpsertOne{
		create: _c,
	}
}

type (
	// BudgetUpsertOne is the builder for "upsert"-ing
	//  one Budget node.
	BudgetUpsertOne struct {
		create *BudgetCreate
	}

	// BudgetUpsert is the "OnConflict" setter.
	BudgetUpsert struct {
		*sql.UpdateSet
	}
)

// SetScopeType sets the "scope_type" field.
func (u *BudgetUpsert) SetScopeType(v budget.ScopeType) *BudgetUpsert {
	u.Set(budget.FieldScopeType, v)
	return u
}

// UpdateScopeType sets the "scope_type" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateScopeType() *BudgetUpsert {
	u.SetExcluded(budget.FieldScopeType)
	return u
}

// SetScopeID sets the "scope_id" field.
func (u *BudgetUpsert) SetScopeID(v string) *BudgetUpsert {
	u.Set(budget.FieldScopeID, v)
	return u
}

// UpdateScopeID sets the "scope_id" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateScopeID() *BudgetUpsert {
	u.SetExcluded(budget.FieldScopeID)
	return u
}

// SetLimitUsd sets the "limit_usd" field.
func (u *BudgetUpsert) SetLimitUsd(v float64) *BudgetUpsert {
	u.Set(budget.FieldLimitUsd, v)
	return u
}

// UpdateLimitUsd sets the "limit_usd" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateLimitUsd() *BudgetUpsert {
	u.SetExcluded(budget.FieldLimitUsd)
	return u
}

// AddLimitUsd adds v to the "limit_usd" field.
func (u *BudgetUpsert) AddLimitUsd(v float64) *BudgetUpsert {
	u.Add(budget.FieldLimitUsd, v)
	return u
}

// SetSpentUsd sets the "spent_usd" field.
func (u *BudgetUpsert) SetSpentUsd(v float64) *BudgetUpsert {
	u.Set(budget.FieldSpentUsd, v)
	return u
}

// UpdateSpentUsd sets the "spent_usd" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateSpentUsd() *BudgetUpsert {
	u.SetExcluded(budget.FieldSpentUsd)
	return u
}

// AddSpentUsd adds v to the "spent_usd" field.
func (u *BudgetUpsert) AddSpentUsd(v float64) *BudgetUpsert {
	u.Add(budget.FieldSpentUsd, v)
	return u
}

// SetReservedUsd sets the "reserved_usd" field.
func (u *BudgetUpsert) SetReservedUsd(v float64) *BudgetUpsert {
	u.Set(budget.FieldReservedUsd, v)
	return u
}

// UpdateReservedUsd sets the "reserved_usd" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateReservedUsd() *BudgetUpsert {
	u.SetExcluded(budget.FieldReservedUsd)
	return u
}

// AddReservedUsd adds v to the "reserved_usd" field.
func (u *BudgetUpsert) AddReservedUsd(v float64) *BudgetUpsert {
	u.Add(budget.FieldReservedUsd, v)
	return u
}

// SetPeriod sets the "period" field.
func (u *BudgetUpsert) SetPeriod(v string) *BudgetUpsert {
	u.Set(budget.FieldPeriod, v)
	return u
}

// UpdatePeriod sets the "period" field to the value that was provided on create.
func (u *BudgetUpsert) UpdatePeriod() *BudgetUpsert {
	u.SetExcluded(budget.FieldPeriod)
	return u
}

// SetAlertThreshold sets the "alert_threshold" field.
func (u *BudgetUpsert) SetAlertThreshold(v float64) *BudgetUpsert {
	u.Set(budget.FieldAlertThreshold, v)
	return u
}

// UpdateAlertThreshold sets the "alert_threshold" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateAlertThreshold() *BudgetUpsert {
	u.SetExcluded(budget.FieldAlertThreshold)
	return u
}

// AddAlertThreshold adds v to the "alert_threshold" field.
func (u *BudgetUpsert) AddAlertThreshold(v float64) *BudgetUpsert {
	u.Add(budget.FieldAlertThreshold, v)
	return u
}

// SetAlerted sets the "alerted" field.
func (u *BudgetUpsert) SetAlerted(v bool) *BudgetUpsert {
	u.Set(budget.FieldAlerted, v)
	return u
}

// UpdateAlerted sets the "alerted" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateAlerted() *BudgetUpsert {
	u.SetExcluded(budget.FieldAlerted)
	return u
}

// SetVersion sets the "version" field.
func (u *BudgetUpsert) SetVersion(v int) *BudgetUpsert {
	u.Set(budget.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateVersion() *BudgetUpsert {
	u.SetExcluded(budget.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *BudgetUpsert) AddVersion(v int) *BudgetUpsert {
	u.Add(budget.FieldVersion, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BudgetUpsert) SetUpdatedAt(v time.Time) *BudgetUpsert {
	u.Set(budget.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateUpdatedAt() *BudgetUpsert {
	u.SetExcluded(budget.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(budget.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BudgetUpsertOne) UpdateNewValues() *BudgetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(budget.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(budget.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Budget.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BudgetUpsertOne) Ignore() *BudgetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BudgetUpsertOne) DoNothing() *BudgetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BudgetCreate.OnConflict
// documentation for more info.
func (u *BudgetUpsertOne) Update(set func(*BudgetUpsert)) *BudgetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BudgetUpsert{UpdateSet: update})
	}))
	return u
}

// SetScopeType sets the "scope_type" field.
func (u *BudgetUpsertOne) SetScopeType(v budget.ScopeType) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetScopeType(v)
	})
}

// UpdateScopeType sets the "scope_type" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateScopeType() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateScopeType()
	})
}

// SetScopeID sets the "scope_id" field.
func (u *BudgetUpsertOne) SetScopeID(v string) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetScopeID(v)
	})
}

// UpdateScopeID sets the "scope_id" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateScopeID() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateScopeID()
	})
}

// SetLimitUsd sets the "limit_usd" field.
func (u *BudgetUpsertOne) SetLimitUsd(v float64) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetLimitUsd(v)
	})
}

// AddLimitUsd adds v to the "limit_usd" field.
func (u *BudgetUpsertOne) AddLimitUsd(v float64) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.AddLimitUsd(v)
	})
}

// UpdateLimitUsd sets the "limit_usd" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateLimitUsd() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateLimitUsd()
	})
}

// SetSpentUsd sets the "spent_usd" field.
func (u *BudgetUpsertOne) SetSpentUsd(v float64) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetSpentUsd(v)
	})
}

// AddSpentUsd adds v to the "spent_usd" field.
func (u *BudgetUpsertOne) AddSpentUsd(v float64) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.AddSpentUsd(v)
	})
}

// UpdateSpentUsd sets the "spent_usd" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateSpentUsd() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateSpentUsd()
	})
}

// SetReservedUsd sets the "reserved_usd" field.
func (u *BudgetUpsertOne) SetReservedUsd(v float64) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetReservedUsd(v)
	})
}

// AddReservedUsd adds v to the "reserved_usd" field.
func (u *BudgetUpsertOne) AddReservedUsd(v float64) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.AddReservedUsd(v)
	})
}

// UpdateReservedUsd sets the "reserved_usd" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateReservedUsd() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateReservedUsd()
	})
}

// SetPeriod sets the "period" field.
func (u *BudgetUpsertOne) SetPeriod(v string) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetPeriod(v)
	})
}

// UpdatePeriod sets the "period" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdatePeriod() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdatePeriod()
	})
}

// SetAlertThreshold sets the "alert_threshold" field.
func (u *BudgetUpsertOne) SetAlertThreshold(v float64) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetAlertThreshold(v)
	})
}

// AddAlertThreshold adds v to the "alert_threshold" field.
func (u *BudgetUpsertOne) AddAlertThreshold(v float64) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.AddAlertThreshold(v)
	})
}

// UpdateAlertThreshold sets the "alert_threshold" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateAlertThreshold() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateAlertThreshold()
	})
}

// SetAlerted sets the "alerted" field.
func (u *BudgetUpsertOne) SetAlerted(v bool) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetAlerted(v)
	})
}

// UpdateAlerted sets the "alerted" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateAlerted() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateAlerted()
	})
}

// SetVersion sets the "version" field.
func (u *BudgetUpsertOne) SetVersion(v int) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *BudgetUpsertOne) AddVersion(v int) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateVersion() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BudgetUpsertOne) SetUpdatedAt(v time.Time) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateUpdatedAt() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BudgetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BudgetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BudgetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BudgetUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BudgetUpsertOne.ID is not supported by MySQL driver. Use BudgetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BudgetUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BudgetCreateBulk is the builder for creating many Budget entities in bulk.
type BudgetCreateBulk struct {
	config
	err      error
	builders []*BudgetCreate
	conflict []sql.ConflictOption
}

// Save creates the Budget entities in the database.
func (_c *BudgetCreateBulk) Save(ctx context.Context) ([]*Budget, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Budget, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BudgetMutation)
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
func (_c *BudgetCreateBulk) SaveX(ctx context.Context) []*Budget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Budget.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BudgetUpsert) {
//			SetScopeType(v+v).
//		}).
//		Exec(ctx)
func (_c *BudgetCreateBulk) OnConflict(opts ...sql.ConflictOption) *BudgetUpsertBulk {
	_c.conflict = opts
	return &BudgetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BudgetCreateBulk) OnConflictColumns(columns ...string) *BudgetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BudgetUpsertBulk{
		create: _c,
	}
}

// BudgetUpsertBulk is the builder for "upsert"-ing
// a bulk of Budget nodes.
type BudgetUpsertBulk struct {
	create *BudgetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(budget.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BudgetUpsertBulk) UpdateNewValues() *BudgetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(budget.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(budget.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BudgetUpsertBulk) Ignore() *BudgetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BudgetUpsertBulk) DoNothing() *BudgetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BudgetCreateBulk.OnConflict
// documentation for more info.
func (u *BudgetUpsertBulk) Update(set func(*BudgetUpsert)) *BudgetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BudgetUpsert{UpdateSet: update})
	}))
	return u
}

// SetScopeType sets the "scope_type" field.
func (u *BudgetUpsertBulk) SetScopeType(v budget.ScopeType) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetScopeType(v)
	})
}

// UpdateScopeType sets the "scope_type" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateScopeType() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateScopeType()
	})
}

// SetScopeID sets the "scope_id" field.
func (u *BudgetUpsertBulk) SetScopeID(v string) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetScopeID(v)
	})
}

// UpdateScopeID sets the "scope_id" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateScopeID() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateScopeID()
	})
}

// SetLimitUsd sets the "limit_usd" field.
func (u *BudgetUpsertBulk) SetLimitUsd(v float64) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetLimitUsd(v)
	})
}

// AddLimitUsd adds v to the "limit_usd" field.
func (u *BudgetUpsertBulk) AddLimitUsd(v float64) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.AddLimitUsd(v)
	})
}

// UpdateLimitUsd sets the "limit_usd" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateLimitUsd() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateLimitUsd()
	})
}

// SetSpentUsd sets the "spent_usd" field.
func (u *BudgetUpsertBulk) SetSpentUsd(v float64) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetSpentUsd(v)
	})
}

// AddSpentUsd adds v to the "spent_usd" field.
func (u *BudgetUpsertBulk) AddSpentUsd(v float64) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.AddSpentUsd(v)
	})
}

// UpdateSpentUsd sets the "spent_usd" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateSpentUsd() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateSpentUsd()
	})
}

// SetReservedUsd sets the "reserved_usd" field.
func (u *BudgetUpsertBulk) SetReservedUsd(v float64) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetReservedUsd(v)
	})
}

// AddReservedUsd adds v to the "reserved_usd" field.
func (u *BudgetUpsertBulk) AddReservedUsd(v float64) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.AddReservedUsd(v)
	})
}

// UpdateReservedUsd sets the "reserved_usd" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateReservedUsd() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateReservedUsd()
	})
}

// SetPeriod sets the "period" field.
func (u *BudgetUpsertBulk) SetPeriod(v string) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetPeriod(v)
	})
}

// UpdatePeriod sets the "period" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdatePeriod() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdatePeriod()
	})
}

// SetAlertThreshold sets the "alert_threshold" field.
func (u *BudgetUpsertBulk) SetAlertThreshold(v float64) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetAlertThreshold(v)
	})
}

// AddAlertThreshold adds v to the "alert_threshold" field.
func (u *BudgetUpsertBulk) AddAlertThreshold(v float64) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.AddAlertThreshold(v)
	})
}

// UpdateAlertThreshold sets the "alert_threshold" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateAlertThreshold() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateAlertThreshold()
	})
}

// SetAlerted sets the "alerted" field.
func (u *BudgetUpsertBulk) SetAlerted(v bool) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetAlerted(v)
	})
}

// UpdateAlerted sets the "alerted" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateAlerted() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateAlerted()
	})
}

// SetVersion sets the "version" field.
func (u *BudgetUpsertBulk) SetVersion(v int) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *BudgetUpsertBulk) AddVersion(v int) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateVersion() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BudgetUpsertBulk) SetUpdatedAt(v time.Time) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateUpdatedAt() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BudgetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BudgetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BudgetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BudgetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
