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
	"github.com/helmsman-ai/helmsman/ent/costrecord"
	"github.com/helmsman-ai/helmsman/ent/task"
)

// CostRecordCreate is the builder for creating a CostRecord entity.
type CostRecordCreate struct {
	config
	mutation *CostRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *CostRecordCreate) SetTaskID(v string) *CostRecordCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *CostRecordCreate) SetAgentID(v string) *CostRecordCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *CostRecordCreate) SetNillableAgentID(v *string) *CostRecordCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *CostRecordCreate) SetProvider(v string) *CostRecordCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *CostRecordCreate) SetModel(v string) *CostRecordCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *CostRecordCreate) SetPromptTokens(v int64) *CostRecordCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *CostRecordCreate) SetNillablePromptTokens(v *int64) *CostRecordCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *CostRecordCreate) SetCompletionTokens(v int64) *CostRecordCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *CostRecordCreate) SetNillableCompletionTokens(v *int64) *CostRecordCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetPromptCost sets the "prompt_cost" field.
func (_c *CostRecordCreate) SetPromptCost(v float64) *CostRecordCreate {
	_c.mutation.SetPromptCost(v)
	return _c
}

// SetNillablePromptCost sets the "prompt_cost" field if the given value is not nil.
func (_c *CostRecordCreate) SetNillablePromptCost(v *float64) *CostRecordCreate {
	if v != nil {
		_c.SetPromptCost(*v)
	}
	return _c
}

// SetCompletionCost sets the "completion_cost" field.
func (_c *CostRecordCreate) SetCompletionCost(v float64) *CostRecordCreate {
	_c.mutation.SetCompletionCost(v)
	return _c
}

// SetNillableCompletionCost sets the "completion_cost" field if the given value is not nil.
func (_c *CostRecordCreate) SetNillableCompletionCost(v *float64) *CostRecordCreate {
	if v != nil {
		_c.SetCompletionCost(*v)
	}
	return _c
}

// SetTotalCost sets the "total_cost" field.
func (_c *CostRecordCreate) SetTotalCost(v float64) *CostRecordCreate {
	_c.mutation.SetTotalCost(v)
	return _c
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_c *CostRecordCreate) SetNillableTotalCost(v *float64) *CostRecordCreate {
	if v != nil {
		_c.SetTotalCost(*v)
	}
	return _c
}

// SetSandboxID sets the "sandbox_id" field.
func (_c *CostRecordCreate) SetSandboxID(v string) *CostRecordCreate {
	_c.mutation.SetSandboxID(v)
	return _c
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_c *CostRecordCreate) SetNillableSandboxID(v *string) *CostRecordCreate {
	if v != nil {
		_c.SetSandboxID(*v)
	}
	return _c
}

// SetBillingAccount sets the "billing_account" field.
func (_c *CostRecordCreate) SetBillingAccount(v string) *CostRecordCreate {
	_c.mutation.SetBillingAccount(v)
	return _c
}

// SetNillableBillingAccount sets the "billing_account" field if the given value is not nil.
func (_c *CostRecordCreate) SetNillableBillingAccount(v *string) *CostRecordCreate {
	if v != nil {
		_c.SetBillingAccount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CostRecordCreate) SetCreatedAt(v time.Time) *CostRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CostRecordCreate) SetNillableCreatedAt(v *time.Time) *CostRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CostRecordCreate) SetID(v string) *CostRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *CostRecordCreate) SetTask(v *Task) *CostRecordCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the CostRecordMutation object of the builder.
func (_c *CostRecordCreate) Mutation() *CostRecordMutation {
	return _c.mutation
}

// Save creates the CostRecord in the database.
func (_c *CostRecordCreate) Save(ctx context.Context) (*CostRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CostRecordCreate) SaveX(ctx context.Context) *CostRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CostRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CostRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CostRecordCreate) defaults() {
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := costrecord.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := costrecord.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.PromptCost(); !ok {
		v := costrecord.DefaultPromptCost
		_c.mutation.SetPromptCost(v)
	}
	if _, ok := _c.mutation.CompletionCost(); !ok {
		v := costrecord.DefaultCompletionCost
		_c.mutation.SetCompletionCost(v)
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		v := costrecord.DefaultTotalCost
		_c.mutation.SetTotalCost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := costrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CostRecordCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "CostRecord.task_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "CostRecord.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "CostRecord.model"`)}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "CostRecord.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "CostRecord.completion_tokens"`)}
	}
	if _, ok := _c.mutation.PromptCost(); !ok {
		return &ValidationError{Name: "prompt_cost", err: errors.New(`ent: missing required field "CostRecord.prompt_cost"`)}
	}
	if _, ok := _c.mutation.CompletionCost(); !ok {
		return &ValidationError{Name: "completion_cost", err: errors.New(`ent: missing required field "CostRecord.completion_cost"`)}
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		return &ValidationError{Name: "total_cost", err: errors.New(`ent: missing required field "CostRecord.total_cost"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CostRecord.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "CostRecord.task"`)}
	}
	return nil
}

func (_c *CostRecordCreate) sqlSave(ctx context.Context) (*CostRecord, error) {
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
			return nil, fmt.Errorf("unexpected CostRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CostRecordCreate) createSpec() (*CostRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CostRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(costrecord.Table, sqlgraph.NewFieldSpec(costrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(costrecord.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(costrecord.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(costrecord.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(costrecord.FieldPromptTokens, field.TypeInt64, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(costrecord.FieldCompletionTokens, field.TypeInt64, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.PromptCost(); ok {
		_spec.SetField(costrecord.FieldPromptCost, field.TypeFloat64, value)
		_node.PromptCost = value
	}
	if value, ok := _c.mutation.CompletionCost(); ok {
		_spec.SetField(costrecord.FieldCompletionCost, field.TypeFloat64, value)
		_node.CompletionCost = value
	}
	if value, ok := _c.mutation.TotalCost(); ok {
		_spec.SetField(costrecord.FieldTotalCost, field.TypeFloat64, value)
		_node.TotalCost = value
	}
	if value, ok := _c.mutation.SandboxID(); ok {
		_spec.SetField(costrecord.FieldSandboxID, field.TypeString, value)
		_node.SandboxID = value
	}
	if value, ok := _c.mutation.BillingAccount(); ok {
		_spec.SetField(costrecord.FieldBillingAccount, field.TypeString, value)
		_node.BillingAccount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(costrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   costrecord.TaskTable,
			Columns: []string{costrecord.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CostRecord.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CostRecordUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *CostRecordCreate) OnConflict(opts ...sql.ConflictOption) *CostRecordUpsertOne {
	_c.conflict = opts
	return &CostRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CostRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CostRecordCreate) OnConflictColumns(columns ...string) *CostRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CostRecordUpsertOne{
		create: _c,
	}
}

type (
	// CostRecordUpsertOne is the builder for "upsert"-ing
	//  one CostRecord node.
	CostRecordUpsertOne struct {
		create *CostRecordCreate
	}

	// CostRecordUpsert is the "OnConflict" setter.
	CostRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskID sets the "task_id" field.
func (u *CostRecordUpsert) SetTaskID(v string) *CostRecordUpsert {
	u.Set(costrecord.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *CostRecordUpsert) UpdateTaskID() *CostRecordUpsert {
	u.SetExcluded(costrecord.FieldTaskID)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *CostRecordUpsert) SetAgentID(v string) *CostRecordUpsert {
	u.Set(costrecord.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *CostRecordUpsert) UpdateAgentID() *CostRecordUpsert {
	u.SetExcluded(costrecord.FieldAgentID)
	return u
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *CostRecordUpsert) ClearAgentID() *CostRecordUpsert {
	u.SetNull(costrecord.FieldAgentID)
	return u
}

// SetProvider sets the "provider" field.
func (u *CostRecordUpsert) SetProvider(v string) *CostRecordUpsert {
	u.Set(costrecord.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *CostRecordUpsert) UpdateProvider() *CostRecordUpsert {
	u.SetExcluded(costrecord.FieldProvider)
	return u
}

// SetModel sets the "model" field.
func (u *CostRecordUpsert) SetModel(v string) *CostRecordUpsert {
	u.Set(costrecord.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *CostRecordUpsert) UpdateModel() *CostRecordUpsert {
	u.SetExcluded(costrecord.FieldModel)
	return u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *CostRecordUpsert) SetPromptTokens(v int64) *CostRecordUpsert {
	u.Set(costrecord.FieldPromptTokens, v)
	return u
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *CostRecordUpsert) UpdatePromptTokens() *CostRecordUpsert {
	u.SetExcluded(costrecord.FieldPromptTokens)
	return u
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *CostRecordUpsert) AddPromptTokens(v int64) *CostRecordUpsert {
	u.Add(costrecord.FieldPromptTokens, v)
	return u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *CostRecordUpsert) SetCompletionTokens(v int64) *CostRecordUpsert {
	u.Set(costrecord.FieldCompletionTokens, v)
	return u
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *CostRecordUpsert) UpdateCompletionTokens() *CostRecordUpsert {
	u.SetExcluded(costrecord.FieldCompletionTokens)
	return u
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *CostRecordUpsert) AddCompletionTokens(v int64) *CostRecordUpsert {
	u.Add(costrecord.FieldCompletionTokens, v)
	return u
}

// SetPromptCost sets the "prompt_cost" field.
func (u *CostRecordUpsert) SetPromptCost(v float64) *CostRecordUpsert {
	u.Set(costrecord.FieldPromptCost, v)
	return u
}

// UpdatePromptCost sets the "prompt_cost" field to the value that was provided on create.
func (u *CostRecordUpsert) UpdatePromptCost() *CostRecordUpsert {
	u.SetExcluded(costrecord.FieldPromptCost)
	return u
}

// AddPromptCost adds v to the "prompt_cost" field.
func (u *CostRecordUpsert) AddPromptCost(v float64) *CostRecordUpsert {
	u.Add(costrecord.FieldPromptCost, v)
	return u
}

// SetCompletionCost sets the "completion_cost" field.
func (u *CostRecordUpsert) SetCompletionCost(v float64) *CostRecordUpsert {
	u.Set(costrecord.FieldCompletionCost, v)
	return u
}

// UpdateCompletionCost sets the "completion_cost" field to the value that was provided on create.
func (u *CostRecordUpsert) UpdateCompletionCost() *CostRecordUpsert {
	u.SetExcluded(costrecord.FieldCompletionCost)
	return u
}

// AddCompletionCost adds v to the "completion_cost" field.
func (u *CostRecordUpsert) AddCompletionCost(v float64) *CostRecordUpsert {
	u.Add(costrecord.FieldCompletionCost, v)
	return u
}

// SetTotalCost sets the "total_cost" field.
func (u *CostRecordUpsert) SetTotalCost(v float64) *CostRecordUpsert {
	u.Set(costrecord.FieldTotalCost, v)
	return u
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *CostRecordUpsert) UpdateTotalCost() *CostRecordUpsert {
	u.SetExcluded(costrecord.FieldTotalCost)
	return u
}

// AddTotalCost adds v to the "total_cost" field.
func (u *CostRecordUpsert) AddTotalCost(v float64) *CostRecordUpsert {
	u.Add(costrecord.FieldTotalCost, v)
	return u
}

// SetSandboxID sets the "sandbox_id" field.
func (u *CostRecordUpsert) SetSandboxID(v string) *CostRecordUpsert {
	u.Set(costrecord.FieldSandboxID, v)
	return u
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *CostRecordUpsert) UpdateSandboxID() *CostRecordUpsert {
	u.SetExcluded(costrecord.FieldSandboxID)
	return u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *CostRecordUpsert) ClearSandboxID() *CostRecordUpsert {
	u.SetNull(costrecord.FieldSandboxID)
	return u
}

// SetBillingAccount sets the "billing_account" field.
func (u *CostRecordUpsert) SetBillingAccount(v string) *CostRecordUpsert {
	u.Set(costrecord.FieldBillingAccount, v)
	return u
}

// UpdateBillingAccount sets the "billing_account" field to the value that was provided on create.
func (u *CostRecordUpsert) UpdateBillingAccount() *CostRecordUpsert {
	u.SetExcluded(costrecord.FieldBillingAccount)
	return u
}

// ClearBillingAccount clears the value of the "billing_account" field.
func (u *CostRecordUpsert) ClearBillingAccount() *CostRecordUpsert {
	u.SetNull(costrecord.FieldBillingAccount)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CostRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(costrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CostRecordUpsertOne) UpdateNewValues() *CostRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(costrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(costrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CostRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CostRecordUpsertOne) Ignore() *CostRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CostRecordUpsertOne) DoNothing() *CostRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CostRecordCreate.OnConflict
// documentation for more info.
func (u *CostRecordUpsertOne) Update(set func(*CostRecordUpsert)) *CostRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CostRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *CostRecordUpsertOne) SetTaskID(v string) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *CostRecordUpsertOne) UpdateTaskID() *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateTaskID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *CostRecordUpsertOne) SetAgentID(v string) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *CostRecordUpsertOne) UpdateAgentID() *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *CostRecordUpsertOne) ClearAgentID() *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.ClearAgentID()
	})
}

// SetProvider sets the "provider" field.
func (u *CostRecordUpsertOne) SetProvider(v string) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *CostRecordUpsertOne) UpdateProvider() *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *CostRecordUpsertOne) SetModel(v string) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *CostRecordUpsertOne) UpdateModel() *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateModel()
	})
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *CostRecordUpsertOne) SetPromptTokens(v int64) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetPromptTokens(v)
	})
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *CostRecordUpsertOne) AddPromptTokens(v int64) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.AddPromptTokens(v)
	})
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *CostRecordUpsertOne) UpdatePromptTokens() *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdatePromptTokens()
	})
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *CostRecordUpsertOne) SetCompletionTokens(v int64) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetCompletionTokens(v)
	})
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *CostRecordUpsertOne) AddCompletionTokens(v int64) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.AddCompletionTokens(v)
	})
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *CostRecordUpsertOne) UpdateCompletionTokens() *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateCompletionTokens()
	})
}

// SetPromptCost sets the "prompt_cost" field.
func (u *CostRecordUpsertOne) SetPromptCost(v float64) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetPromptCost(v)
	})
}

// AddPromptCost adds v to the "prompt_cost" field.
func (u *CostRecordUpsertOne) AddPromptCost(v float64) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.AddPromptCost(v)
	})
}

// UpdatePromptCost sets the "prompt_cost" field to the value that was provided on create.
func (u *CostRecordUpsertOne) UpdatePromptCost() *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdatePromptCost()
	})
}

// SetCompletionCost sets the "completion_cost" field.
func (u *CostRecordUpsertOne) SetCompletionCost(v float64) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetCompletionCost(v)
	})
}

// AddCompletionCost adds v to the "completion_cost" field.
func (u *CostRecordUpsertOne) AddCompletionCost(v float64) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.AddCompletionCost(v)
	})
}

// UpdateCompletionCost sets the "completion_cost" field to the value that was provided on create.
func (u *CostRecordUpsertOne) UpdateCompletionCost() *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateCompletionCost()
	})
}

// SetTotalCost sets the "total_cost" field.
func (u *CostRecordUpsertOne) SetTotalCost(v float64) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetTotalCost(v)
	})
}

// AddTotalCost adds v to the "total_cost" field.
func (u *CostRecordUpsertOne) AddTotalCost(v float64) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.AddTotalCost(v)
	})
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *CostRecordUpsertOne) UpdateTotalCost() *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateTotalCost()
	})
}

// SetSandboxID sets the "sandbox_id" field.
func (u *CostRecordUpsertOne) SetSandboxID(v string) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetSandboxID(v)
	})
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *CostRecordUpsertOne) UpdateSandboxID() *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateSandboxID()
	})
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *CostRecordUpsertOne) ClearSandboxID() *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.ClearSandboxID()
	})
}

// SetBillingAccount sets the "billing_account" field.
func (u *CostRecordUpsertOne) SetBillingAccount(v string) *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetBillingAccount(v)
	})
}

// UpdateBillingAccount sets the "billing_account" field to the value that was provided on create.
func (u *CostRecordUpsertOne) UpdateBillingAccount() *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateBillingAccount()
	})
}

// ClearBillingAccount clears the value of the "billing_account" field.
func (u *CostRecordUpsertOne) ClearBillingAccount() *CostRecordUpsertOne {
	return u.Update(func(s *CostRecordUpsert) {
		s.ClearBillingAccount()
	})
}

// Exec executes the query.
func (u *CostRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CostRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CostRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CostRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CostRecordUpsertOne.ID is not supported by MySQL driver. Use CostRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CostRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CostRecordCreateBulk is the builder for creating many CostRecord entities in bulk.
type CostRecordCreateBulk struct {
	config
	err      error
	builders []*CostRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the CostRecord entities in the database.
func (_c *CostRecordCreateBulk) Save(ctx context.Context) ([]*CostRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CostRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CostRecordMutation)
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
func (_c *CostRecordCreateBulk) SaveX(ctx context.Context) []*CostRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CostRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CostRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CostRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CostRecordUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *CostRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *CostRecordUpsertBulk {
	_c.conflict = opts
	return &CostRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CostRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CostRecordCreateBulk) OnConflictColumns(columns ...string) *CostRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CostRecordUpsertBulk{
		create: _c,
	}
}

// CostRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of CostRecord nodes.
type CostRecordUpsertBulk struct {
	create *CostRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CostRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(costrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CostRecordUpsertBulk) UpdateNewValues() *CostRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(costrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(costrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CostRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CostRecordUpsertBulk) Ignore() *CostRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CostRecordUpsertBulk) DoNothing() *CostRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CostRecordCreateBulk.OnConflict
// documentation for more info.
func (u *CostRecordUpsertBulk) Update(set func(*CostRecordUpsert)) *CostRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CostRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *CostRecordUpsertBulk) SetTaskID(v string) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *CostRecordUpsertBulk) UpdateTaskID() *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateTaskID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *CostRecordUpsertBulk) SetAgentID(v string) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *CostRecordUpsertBulk) UpdateAgentID() *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *CostRecordUpsertBulk) ClearAgentID() *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.ClearAgentID()
	})
}

// SetProvider sets the "provider" field.
func (u *CostRecordUpsertBulk) SetProvider(v string) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *CostRecordUpsertBulk) UpdateProvider() *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *CostRecordUpsertBulk) SetModel(v string) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *CostRecordUpsertBulk) UpdateModel() *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateModel()
	})
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *CostRecordUpsertBulk) SetPromptTokens(v int64) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetPromptTokens(v)
	})
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *CostRecordUpsertBulk) AddPromptTokens(v int64) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.AddPromptTokens(v)
	})
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *CostRecordUpsertBulk) UpdatePromptTokens() *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdatePromptTokens()
	})
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *CostRecordUpsertBulk) SetCompletionTokens(v int64) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetCompletionTokens(v)
	})
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *CostRecordUpsertBulk) AddCompletionTokens(v int64) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.AddCompletionTokens(v)
	})
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *CostRecordUpsertBulk) UpdateCompletionTokens() *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateCompletionTokens()
	})
}

// SetPromptCost sets the "prompt_cost" field.
func (u *CostRecordUpsertBulk) SetPromptCost(v float64) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetPromptCost(v)
	})
}

// AddPromptCost adds v to the "prompt_cost" field.
func (u *CostRecordUpsertBulk) AddPromptCost(v float64) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.AddPromptCost(v)
	})
}

// UpdatePromptCost sets the "prompt_cost" field to the value that was provided on create.
func (u *CostRecordUpsertBulk) UpdatePromptCost() *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdatePromptCost()
	})
}

// SetCompletionCost sets the "completion_cost" field.
func (u *CostRecordUpsertBulk) SetCompletionCost(v float64) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetCompletionCost(v)
	})
}

// AddCompletionCost adds v to the "completion_cost" field.
func (u *CostRecordUpsertBulk) AddCompletionCost(v float64) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.AddCompletionCost(v)
	})
}

// UpdateCompletionCost sets the "completion_cost" field to the value that was provided on create.
func (u *CostRecordUpsertBulk) UpdateCompletionCost() *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateCompletionCost()
	})
}

// SetTotalCost sets the "total_cost" field.
func (u *CostRecordUpsertBulk) SetTotalCost(v float64) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetTotalCost(v)
	})
}

// AddTotalCost adds v to the "total_cost" field.
func (u *CostRecordUpsertBulk) AddTotalCost(v float64) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.AddTotalCost(v)
	})
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *CostRecordUpsertBulk) UpdateTotalCost() *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateTotalCost()
	})
}

// SetSandboxID sets the "sandbox_id" field.
func (u *CostRecordUpsertBulk) SetSandboxID(v string) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetSandboxID(v)
	})
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *CostRecordUpsertBulk) UpdateSandboxID() *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateSandboxID()
	})
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *CostRecordUpsertBulk) ClearSandboxID() *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.ClearSandboxID()
	})
}

// SetBillingAccount sets the "billing_account" field.
func (u *CostRecordUpsertBulk) SetBillingAccount(v string) *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.SetBillingAccount(v)
	})
}

// UpdateBillingAccount sets the "billing_account" field to the value that was provided on create.
func (u *CostRecordUpsertBulk) UpdateBillingAccount() *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.UpdateBillingAccount()
	})
}

// ClearBillingAccount clears the value of the "billing_account" field.
func (u *CostRecordUpsertBulk) ClearBillingAccount() *CostRecordUpsertBulk {
	return u.Update(func(s *CostRecordUpsert) {
		s.ClearBillingAccount()
	})
}

// Exec executes the query.
func (u *CostRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CostRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CostRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CostRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
