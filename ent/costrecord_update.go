// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/helmsman-ai/helmsman/ent/costrecord"
	"github.com/helmsman-ai/helmsman/ent/predicate"
	"github.com/helmsman-ai/helmsman/ent/task"
)

// CostRecordUpdate is the builder for updating CostRecord entities.
type CostRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CostRecordMutation
}

// Where appends a list predicates to the CostRecordUpdate builder.
func (_u *CostRecordUpdate) Where(ps ...predicate.CostRecord) *CostRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *CostRecordUpdate) SetTaskID(v string) *CostRecordUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *CostRecordUpdate) SetNillableTaskID(v *string) *CostRecordUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CostRecordUpdate) SetAgentID(v string) *CostRecordUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CostRecordUpdate) SetNillableAgentID(v *string) *CostRecordUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *CostRecordUpdate) ClearAgentID() *CostRecordUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CostRecordUpdate) SetProvider(v string) *CostRecordUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CostRecordUpdate) SetNillableProvider(v *string) *CostRecordUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *CostRecordUpdate) SetModel(v string) *CostRecordUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *CostRecordUpdate) SetNillableModel(v *string) *CostRecordUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *CostRecordUpdate) SetPromptTokens(v int64) *CostRecordUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *CostRecordUpdate) SetNillablePromptTokens(v *int64) *CostRecordUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *CostRecordUpdate) AddPromptTokens(v int64) *CostRecordUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *CostRecordUpdate) SetCompletionTokens(v int64) *CostRecordUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *CostRecordUpdate) SetNillableCompletionTokens(v *int64) *CostRecordUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *CostRecordUpdate) AddCompletionTokens(v int64) *CostRecordUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetPromptCost sets the "prompt_cost" field.
func (_u *CostRecordUpdate) SetPromptCost(v float64) *CostRecordUpdate {
	_u.mutation.ResetPromptCost()
	_u.mutation.SetPromptCost(v)
	return _u
}

// SetNillablePromptCost sets the "prompt_cost" field if the given value is not nil.
func (_u *CostRecordUpdate) SetNillablePromptCost(v *float64) *CostRecordUpdate {
	if v != nil {
		_u.SetPromptCost(*v)
	}
	return _u
}

// AddPromptCost adds value to the "prompt_cost" field.
func (_u *CostRecordUpdate) AddPromptCost(v float64) *CostRecordUpdate {
	_u.mutation.AddPromptCost(v)
	return _u
}

// SetCompletionCost sets the "completion_cost" field.
func (_u *CostRecordUpdate) SetCompletionCost(v float64) *CostRecordUpdate {
	_u.mutation.ResetCompletionCost()
	_u.mutation.SetCompletionCost(v)
	return _u
}

// SetNillableCompletionCost sets the "completion_cost" field if the given value is not nil.
func (_u *CostRecordUpdate) SetNillableCompletionCost(v *float64) *CostRecordUpdate {
	if v != nil {
		_u.SetCompletionCost(*v)
	}
	return _u
}

// AddCompletionCost adds value to the "completion_cost" field.
func (_u *CostRecordUpdate) AddCompletionCost(v float64) *CostRecordUpdate {
	_u.mutation.AddCompletionCost(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *CostRecordUpdate) SetTotalCost(v float64) *CostRecordUpdate {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *CostRecordUpdate) SetNillableTotalCost(v *float64) *CostRecordUpdate {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *CostRecordUpdate) AddTotalCost(v float64) *CostRecordUpdate {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetSandboxID sets the "sandbox_id" field.
func (_u *CostRecordUpdate) SetSandboxID(v string) *CostRecordUpdate {
	_u.mutation.SetSandboxID(v)
	return _u
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_u *CostRecordUpdate) SetNillableSandboxID(v *string) *CostRecordUpdate {
	if v != nil {
		_u.SetSandboxID(*v)
	}
	return _u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (_u *CostRecordUpdate) ClearSandboxID() *CostRecordUpdate {
	_u.mutation.ClearSandboxID()
	return _u
}

// SetBillingAccount sets the "billing_account" field.
func (_u *CostRecordUpdate) SetBillingAccount(v string) *CostRecordUpdate {
	_u.mutation.SetBillingAccount(v)
	return _u
}

// SetNillableBillingAccount sets the "billing_account" field if the given value is not nil.
func (_u *CostRecordUpdate) SetNillableBillingAccount(v *string) *CostRecordUpdate {
	if v != nil {
		_u.SetBillingAccount(*v)
	}
	return _u
}

// ClearBillingAccount clears the value of the "billing_account" field.
func (_u *CostRecordUpdate) ClearBillingAccount() *CostRecordUpdate {
	_u.mutation.ClearBillingAccount()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *CostRecordUpdate) SetTask(v *Task) *CostRecordUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the CostRecordMutation object of the builder.
func (_u *CostRecordUpdate) Mutation() *CostRecordMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *CostRecordUpdate) ClearTask() *CostRecordUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CostRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CostRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CostRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CostRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CostRecordUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CostRecord.task"`)
	}
	return nil
}

func (_u *CostRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(costrecord.Table, costrecord.Columns, sqlgraph.NewFieldSpec(costrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(costrecord.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(costrecord.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(costrecord.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(costrecord.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(costrecord.FieldPromptTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(costrecord.FieldPromptTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(costrecord.FieldCompletionTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(costrecord.FieldCompletionTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PromptCost(); ok {
		_spec.SetField(costrecord.FieldPromptCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPromptCost(); ok {
		_spec.AddField(costrecord.FieldPromptCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletionCost(); ok {
		_spec.SetField(costrecord.FieldCompletionCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionCost(); ok {
		_spec.AddField(costrecord.FieldCompletionCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(costrecord.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(costrecord.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SandboxID(); ok {
		_spec.SetField(costrecord.FieldSandboxID, field.TypeString, value)
	}
	if _u.mutation.SandboxIDCleared() {
		_spec.ClearField(costrecord.FieldSandboxID, field.TypeString)
	}
	if value, ok := _u.mutation.BillingAccount(); ok {
		_spec.SetField(costrecord.FieldBillingAccount, field.TypeString, value)
	}
	if _u.mutation.BillingAccountCleared() {
		_spec.ClearField(costrecord.FieldBillingAccount, field.TypeString)
	}
	if _u.mutation.TaskCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{costrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CostRecordUpdateOne is the builder for updating a single CostRecord entity.
type CostRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CostRecordMutation
}

// SetTaskID sets the "task_id" field.
func (_u *CostRecordUpdateOne) SetTaskID(v string) *CostRecordUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *CostRecordUpdateOne) SetNillableTaskID(v *string) *CostRecordUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CostRecordUpdateOne) SetAgentID(v string) *CostRecordUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CostRecordUpdateOne) SetNillableAgentID(v *string) *CostRecordUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *CostRecordUpdateOne) ClearAgentID() *CostRecordUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CostRecordUpdateOne) SetProvider(v string) *CostRecordUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CostRecordUpdateOne) SetNillableProvider(v *string) *CostRecordUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *CostRecordUpdateOne) SetModel(v string) *CostRecordUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *CostRecordUpdateOne) SetNillableModel(v *string) *CostRecordUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *CostRecordUpdateOne) SetPromptTokens(v int64) *CostRecordUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *CostRecordUpdateOne) SetNillablePromptTokens(v *int64) *CostRecordUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *CostRecordUpdateOne) AddPromptTokens(v int64) *CostRecordUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *CostRecordUpdateOne) SetCompletionTokens(v int64) *CostRecordUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *CostRecordUpdateOne) SetNillableCompletionTokens(v *int64) *CostRecordUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *CostRecordUpdateOne) AddCompletionTokens(v int64) *CostRecordUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetPromptCost sets the "prompt_cost" field.
func (_u *CostRecordUpdateOne) SetPromptCost(v float64) *CostRecordUpdateOne {
	_u.mutation.ResetPromptCost()
	_u.mutation.SetPromptCost(v)
	return _u
}

// SetNillablePromptCost sets the "prompt_cost" field if the given value is not nil.
func (_u *CostRecordUpdateOne) SetNillablePromptCost(v *float64) *CostRecordUpdateOne {
	if v != nil {
		_u.SetPromptCost(*v)
	}
	return _u
}

// AddPromptCost adds value to the "prompt_cost" field.
func (_u *CostRecordUpdateOne) AddPromptCost(v float64) *CostRecordUpdateOne {
	_u.mutation.AddPromptCost(v)
	return _u
}

// SetCompletionCost sets the "completion_cost" field.
func (_u *CostRecordUpdateOne) SetCompletionCost(v float64) *CostRecordUpdateOne {
	_u.mutation.ResetCompletionCost()
	_u.mutation.SetCompletionCost(v)
	return _u
}

// SetNillableCompletionCost sets the "completion_cost" field if the given value is not nil.
func (_u *CostRecordUpdateOne) SetNillableCompletionCost(v *float64) *CostRecordUpdateOne {
	if v != nil {
		_u.SetCompletionCost(*v)
	}
	return _u
}

// AddCompletionCost adds value to the "completion_cost" field.
func (_u *CostRecordUpdateOne) AddCompletionCost(v float64) *CostRecordUpdateOne {
	_u.mutation.AddCompletionCost(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *CostRecordUpdateOne) SetTotalCost(v float64) *CostRecordUpdateOne {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *CostRecordUpdateOne) SetNillableTotalCost(v *float64) *CostRecordUpdateOne {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *CostRecordUpdateOne) AddTotalCost(v float64) *CostRecordUpdateOne {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetSandboxID sets the "sandbox_id" field.
func (_u *CostRecordUpdateOne) SetSandboxID(v string) *CostRecordUpdateOne {
	_u.mutation.SetSandboxID(v)
	return _u
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_u *CostRecordUpdateOne) SetNillableSandboxID(v *string) *CostRecordUpdateOne {
	if v != nil {
		_u.SetSandboxID(*v)
	}
	return _u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (_u *CostRecordUpdateOne) ClearSandboxID() *CostRecordUpdateOne {
	_u.mutation.ClearSandboxID()
	return _u
}

// SetBillingAccount sets the "billing_account" field.
func (_u *CostRecordUpdateOne) SetBillingAccount(v string) *CostRecordUpdateOne {
	_u.mutation.SetBillingAccount(v)
	return _u
}

// SetNillableBillingAccount sets the "billing_account" field if the given value is not nil.
func (_u *CostRecordUpdateOne) SetNillableBillingAccount(v *string) *CostRecordUpdateOne {
	if v != nil {
		_u.SetBillingAccount(*v)
	}
	return _u
}

// ClearBillingAccount clears the value of the "billing_account" field.
func (_u *CostRecordUpdateOne) ClearBillingAccount() *CostRecordUpdateOne {
	_u.mutation.ClearBillingAccount()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *CostRecordUpdateOne) SetTask(v *Task) *CostRecordUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the CostRecordMutation object of the builder.
func (_u *CostRecordUpdateOne) Mutation() *CostRecordMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *CostRecordUpdateOne) ClearTask() *CostRecordUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the CostRecordUpdate builder.
func (_u *CostRecordUpdateOne) Where(ps ...predicate.CostRecord) *CostRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CostRecordUpdateOne) Select(field string, fields ...string) *CostRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CostRecord entity.
func (_u *CostRecordUpdateOne) Save(ctx context.Context) (*CostRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CostRecordUpdateOne) SaveX(ctx context.Context) *CostRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CostRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CostRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CostRecordUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CostRecord.task"`)
	}
	return nil
}

func (_u *CostRecordUpdateOne) sqlSave(ctx context.Context) (_node *CostRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(costrecord.Table, costrecord.Columns, sqlgraph.NewFieldSpec(costrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CostRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, costrecord.FieldID)
		for _, f := range fields {
			if !costrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != costrecord.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(costrecord.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(costrecord.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(costrecord.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(costrecord.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(costrecord.FieldPromptTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(costrecord.FieldPromptTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(costrecord.FieldCompletionTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(costrecord.FieldCompletionTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PromptCost(); ok {
		_spec.SetField(costrecord.FieldPromptCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPromptCost(); ok {
		_spec.AddField(costrecord.FieldPromptCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletionCost(); ok {
		_spec.SetField(costrecord.FieldCompletionCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionCost(); ok {
		_spec.AddField(costrecord.FieldCompletionCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(costrecord.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(costrecord.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SandboxID(); ok {
		_spec.SetField(costrecord.FieldSandboxID, field.TypeString, value)
	}
	if _u.mutation.SandboxIDCleared() {
		_spec.ClearField(costrecord.FieldSandboxID, field.TypeString)
	}
	if value, ok := _u.mutation.BillingAccount(); ok {
		_spec.SetField(costrecord.FieldBillingAccount, field.TypeString, value)
	}
	if _u.mutation.BillingAccountCleared() {
		_spec.ClearField(costrecord.FieldBillingAccount, field.TypeString)
	}
	if _u.mutation.TaskCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CostRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{costrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
