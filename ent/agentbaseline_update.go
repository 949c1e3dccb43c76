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
	"github.com/helmsman-ai/helmsman/ent/agentbaseline"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// AgentBaselineUpdate is the builder for updating AgentBaseline entities.
type AgentBaselineUpdate struct {
	config
	hooks    []Hook
	mutation *AgentBaselineMutation
}

// Where appends a list predicates to the AgentBaselineUpdate builder.
func (_u *AgentBaselineUpdate) Where(ps ...predicate.AgentBaseline) *AgentBaselineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentBaselineUpdate) SetAgentType(v string) *AgentBaselineUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableAgentType(v *string) *AgentBaselineUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AgentBaselineUpdate) SetPhase(v string) *AgentBaselineUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillablePhase(v *string) *AgentBaselineUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetLatencyMeanMs sets the "latency_mean_ms" field.
func (_u *AgentBaselineUpdate) SetLatencyMeanMs(v float64) *AgentBaselineUpdate {
	_u.mutation.ResetLatencyMeanMs()
	_u.mutation.SetLatencyMeanMs(v)
	return _u
}

// SetNillableLatencyMeanMs sets the "latency_mean_ms" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableLatencyMeanMs(v *float64) *AgentBaselineUpdate {
	if v != nil {
		_u.SetLatencyMeanMs(*v)
	}
	return _u
}

// AddLatencyMeanMs adds value to the "latency_mean_ms" field.
func (_u *AgentBaselineUpdate) AddLatencyMeanMs(v float64) *AgentBaselineUpdate {
	_u.mutation.AddLatencyMeanMs(v)
	return _u
}

// SetLatencyStddevMs sets the "latency_stddev_ms" field.
func (_u *AgentBaselineUpdate) SetLatencyStddevMs(v float64) *AgentBaselineUpdate {
	_u.mutation.ResetLatencyStddevMs()
	_u.mutation.SetLatencyStddevMs(v)
	return _u
}

// SetNillableLatencyStddevMs sets the "latency_stddev_ms" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableLatencyStddevMs(v *float64) *AgentBaselineUpdate {
	if v != nil {
		_u.SetLatencyStddevMs(*v)
	}
	return _u
}

// AddLatencyStddevMs adds value to the "latency_stddev_ms" field.
func (_u *AgentBaselineUpdate) AddLatencyStddevMs(v float64) *AgentBaselineUpdate {
	_u.mutation.AddLatencyStddevMs(v)
	return _u
}

// SetErrorRate sets the "error_rate" field.
func (_u *AgentBaselineUpdate) SetErrorRate(v float64) *AgentBaselineUpdate {
	_u.mutation.ResetErrorRate()
	_u.mutation.SetErrorRate(v)
	return _u
}

// SetNillableErrorRate sets the "error_rate" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableErrorRate(v *float64) *AgentBaselineUpdate {
	if v != nil {
		_u.SetErrorRate(*v)
	}
	return _u
}

// AddErrorRate adds value to the "error_rate" field.
func (_u *AgentBaselineUpdate) AddErrorRate(v float64) *AgentBaselineUpdate {
	_u.mutation.AddErrorRate(v)
	return _u
}

// SetCPUMean sets the "cpu_mean" field.
func (_u *AgentBaselineUpdate) SetCPUMean(v float64) *AgentBaselineUpdate {
	_u.mutation.ResetCPUMean()
	_u.mutation.SetCPUMean(v)
	return _u
}

// SetNillableCPUMean sets the "cpu_mean" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableCPUMean(v *float64) *AgentBaselineUpdate {
	if v != nil {
		_u.SetCPUMean(*v)
	}
	return _u
}

// AddCPUMean adds value to the "cpu_mean" field.
func (_u *AgentBaselineUpdate) AddCPUMean(v float64) *AgentBaselineUpdate {
	_u.mutation.AddCPUMean(v)
	return _u
}

// SetCPUStddev sets the "cpu_stddev" field.
func (_u *AgentBaselineUpdate) SetCPUStddev(v float64) *AgentBaselineUpdate {
	_u.mutation.ResetCPUStddev()
	_u.mutation.SetCPUStddev(v)
	return _u
}

// SetNillableCPUStddev sets the "cpu_stddev" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableCPUStddev(v *float64) *AgentBaselineUpdate {
	if v != nil {
		_u.SetCPUStddev(*v)
	}
	return _u
}

// AddCPUStddev adds value to the "cpu_stddev" field.
func (_u *AgentBaselineUpdate) AddCPUStddev(v float64) *AgentBaselineUpdate {
	_u.mutation.AddCPUStddev(v)
	return _u
}

// SetMemMean sets the "mem_mean" field.
func (_u *AgentBaselineUpdate) SetMemMean(v float64) *AgentBaselineUpdate {
	_u.mutation.ResetMemMean()
	_u.mutation.SetMemMean(v)
	return _u
}

// SetNillableMemMean sets the "mem_mean" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableMemMean(v *float64) *AgentBaselineUpdate {
	if v != nil {
		_u.SetMemMean(*v)
	}
	return _u
}

// AddMemMean adds value to the "mem_mean" field.
func (_u *AgentBaselineUpdate) AddMemMean(v float64) *AgentBaselineUpdate {
	_u.mutation.AddMemMean(v)
	return _u
}

// SetMemStddev sets the "mem_stddev" field.
func (_u *AgentBaselineUpdate) SetMemStddev(v float64) *AgentBaselineUpdate {
	_u.mutation.ResetMemStddev()
	_u.mutation.SetMemStddev(v)
	return _u
}

// SetNillableMemStddev sets the "mem_stddev" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableMemStddev(v *float64) *AgentBaselineUpdate {
	if v != nil {
		_u.SetMemStddev(*v)
	}
	return _u
}

// AddMemStddev adds value to the "mem_stddev" field.
func (_u *AgentBaselineUpdate) AddMemStddev(v float64) *AgentBaselineUpdate {
	_u.mutation.AddMemStddev(v)
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *AgentBaselineUpdate) SetSampleCount(v int64) *AgentBaselineUpdate {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *AgentBaselineUpdate) SetNillableSampleCount(v *int64) *AgentBaselineUpdate {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *AgentBaselineUpdate) AddSampleCount(v int64) *AgentBaselineUpdate {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentBaselineUpdate) SetUpdatedAt(v time.Time) *AgentBaselineUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentBaselineMutation object of the builder.
func (_u *AgentBaselineUpdate) Mutation() *AgentBaselineMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentBaselineUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentBaselineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentBaselineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentBaselineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentBaselineUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentbaseline.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentBaselineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentbaseline.Table, agentbaseline.Columns, sqlgraph.NewFieldSpec(agentbaseline.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agentbaseline.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(agentbaseline.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMeanMs(); ok {
		_spec.SetField(agentbaseline.FieldLatencyMeanMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMeanMs(); ok {
		_spec.AddField(agentbaseline.FieldLatencyMeanMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyStddevMs(); ok {
		_spec.SetField(agentbaseline.FieldLatencyStddevMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatencyStddevMs(); ok {
		_spec.AddField(agentbaseline.FieldLatencyStddevMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorRate(); ok {
		_spec.SetField(agentbaseline.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorRate(); ok {
		_spec.AddField(agentbaseline.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CPUMean(); ok {
		_spec.SetField(agentbaseline.FieldCPUMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPUMean(); ok {
		_spec.AddField(agentbaseline.FieldCPUMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CPUStddev(); ok {
		_spec.SetField(agentbaseline.FieldCPUStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPUStddev(); ok {
		_spec.AddField(agentbaseline.FieldCPUStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MemMean(); ok {
		_spec.SetField(agentbaseline.FieldMemMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMemMean(); ok {
		_spec.AddField(agentbaseline.FieldMemMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MemStddev(); ok {
		_spec.SetField(agentbaseline.FieldMemStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMemStddev(); ok {
		_spec.AddField(agentbaseline.FieldMemStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(agentbaseline.FieldSampleCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(agentbaseline.FieldSampleCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentbaseline.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentbaseline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentBaselineUpdateOne is the builder for updating a single AgentBaseline entity.
type AgentBaselineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentBaselineMutation
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentBaselineUpdateOne) SetAgentType(v string) *AgentBaselineUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableAgentType(v *string) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AgentBaselineUpdateOne) SetPhase(v string) *AgentBaselineUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillablePhase(v *string) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetLatencyMeanMs sets the "latency_mean_ms" field.
func (_u *AgentBaselineUpdateOne) SetLatencyMeanMs(v float64) *AgentBaselineUpdateOne {
	_u.mutation.ResetLatencyMeanMs()
	_u.mutation.SetLatencyMeanMs(v)
	return _u
}

// SetNillableLatencyMeanMs sets the "latency_mean_ms" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableLatencyMeanMs(v *float64) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetLatencyMeanMs(*v)
	}
	return _u
}

// AddLatencyMeanMs adds value to the "latency_mean_ms" field.
func (_u *AgentBaselineUpdateOne) AddLatencyMeanMs(v float64) *AgentBaselineUpdateOne {
	_u.mutation.AddLatencyMeanMs(v)
	return _u
}

// SetLatencyStddevMs sets the "latency_stddev_ms" field.
func (_u *AgentBaselineUpdateOne) SetLatencyStddevMs(v float64) *AgentBaselineUpdateOne {
	_u.mutation.ResetLatencyStddevMs()
	_u.mutation.SetLatencyStddevMs(v)
	return _u
}

// SetNillableLatencyStddevMs sets the "latency_stddev_ms" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableLatencyStddevMs(v *float64) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetLatencyStddevMs(*v)
	}
	return _u
}

// AddLatencyStddevMs adds value to the "latency_stddev_ms" field.
func (_u *AgentBaselineUpdateOne) AddLatencyStddevMs(v float64) *AgentBaselineUpdateOne {
	_u.mutation.AddLatencyStddevMs(v)
	return _u
}

// SetErrorRate sets the "error_rate" field.
func (_u *AgentBaselineUpdateOne) SetErrorRate(v float64) *AgentBaselineUpdateOne {
	_u.mutation.ResetErrorRate()
	_u.mutation.SetErrorRate(v)
	return _u
}

// SetNillableErrorRate sets the "error_rate" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableErrorRate(v *float64) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetErrorRate(*v)
	}
	return _u
}

// AddErrorRate adds value to the "error_rate" field.
func (_u *AgentBaselineUpdateOne) AddErrorRate(v float64) *AgentBaselineUpdateOne {
	_u.mutation.AddErrorRate(v)
	return _u
}

// SetCPUMean sets the "cpu_mean" field.
func (_u *AgentBaselineUpdateOne) SetCPUMean(v float64) *AgentBaselineUpdateOne {
	_u.mutation.ResetCPUMean()
	_u.mutation.SetCPUMean(v)
	return _u
}

// SetNillableCPUMean sets the "cpu_mean" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableCPUMean(v *float64) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetCPUMean(*v)
	}
	return _u
}

// AddCPUMean adds value to the "cpu_mean" field.
func (_u *AgentBaselineUpdateOne) AddCPUMean(v float64) *AgentBaselineUpdateOne {
	_u.mutation.AddCPUMean(v)
	return _u
}

// SetCPUStddev sets the "cpu_stddev" field.
func (_u *AgentBaselineUpdateOne) SetCPUStddev(v float64) *AgentBaselineUpdateOne {
	_u.mutation.ResetCPUStddev()
	_u.mutation.SetCPUStddev(v)
	return _u
}

// SetNillableCPUStddev sets the "cpu_stddev" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableCPUStddev(v *float64) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetCPUStddev(*v)
	}
	return _u
}

// AddCPUStddev adds value to the "cpu_stddev" field.
func (_u *AgentBaselineUpdateOne) AddCPUStddev(v float64) *AgentBaselineUpdateOne {
	_u.mutation.AddCPUStddev(v)
	return _u
}

// SetMemMean sets the "mem_mean" field.
func (_u *AgentBaselineUpdateOne) SetMemMean(v float64) *AgentBaselineUpdateOne {
	_u.mutation.ResetMemMean()
	_u.mutation.SetMemMean(v)
	return _u
}

// SetNillableMemMean sets the "mem_mean" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableMemMean(v *float64) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetMemMean(*v)
	}
	return _u
}

// AddMemMean adds value to the "mem_mean" field.
func (_u *AgentBaselineUpdateOne) AddMemMean(v float64) *AgentBaselineUpdateOne {
	_u.mutation.AddMemMean(v)
	return _u
}

// SetMemStddev sets the "mem_stddev" field.
func (_u *AgentBaselineUpdateOne) SetMemStddev(v float64) *AgentBaselineUpdateOne {
	_u.mutation.ResetMemStddev()
	_u.mutation.SetMemStddev(v)
	return _u
}

// SetNillableMemStddev sets the "mem_stddev" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableMemStddev(v *float64) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetMemStddev(*v)
	}
	return _u
}

// AddMemStddev adds value to the "mem_stddev" field.
func (_u *AgentBaselineUpdateOne) AddMemStddev(v float64) *AgentBaselineUpdateOne {
	_u.mutation.AddMemStddev(v)
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *AgentBaselineUpdateOne) SetSampleCount(v int64) *AgentBaselineUpdateOne {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *AgentBaselineUpdateOne) SetNillableSampleCount(v *int64) *AgentBaselineUpdateOne {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *AgentBaselineUpdateOne) AddSampleCount(v int64) *AgentBaselineUpdateOne {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentBaselineUpdateOne) SetUpdatedAt(v time.Time) *AgentBaselineUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentBaselineMutation object of the builder.
func (_u *AgentBaselineUpdateOne) Mutation() *AgentBaselineMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentBaselineUpdate builder.
func (_u *AgentBaselineUpdateOne) Where(ps ...predicate.AgentBaseline) *AgentBaselineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentBaselineUpdateOne) Select(field string, fields ...string) *AgentBaselineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentBaseline entity.
func (_u *AgentBaselineUpdateOne) Save(ctx context.Context) (*AgentBaseline, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentBaselineUpdateOne) SaveX(ctx context.Context) *AgentBaseline {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentBaselineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentBaselineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentBaselineUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentbaseline.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentBaselineUpdateOne) sqlSave(ctx context.Context) (_node *AgentBaseline, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentbaseline.Table, agentbaseline.Columns, sqlgraph.NewFieldSpec(agentbaseline.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentBaseline.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentbaseline.FieldID)
		for _, f := range fields {
			if !agentbaseline.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentbaseline.FieldID {
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
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agentbaseline.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(agentbaseline.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMeanMs(); ok {
		_spec.SetField(agentbaseline.FieldLatencyMeanMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMeanMs(); ok {
		_spec.AddField(agentbaseline.FieldLatencyMeanMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyStddevMs(); ok {
		_spec.SetField(agentbaseline.FieldLatencyStddevMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatencyStddevMs(); ok {
		_spec.AddField(agentbaseline.FieldLatencyStddevMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorRate(); ok {
		_spec.SetField(agentbaseline.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorRate(); ok {
		_spec.AddField(agentbaseline.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CPUMean(); ok {
		_spec.SetField(agentbaseline.FieldCPUMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPUMean(); ok {
		_spec.AddField(agentbaseline.FieldCPUMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CPUStddev(); ok {
		_spec.SetField(agentbaseline.FieldCPUStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPUStddev(); ok {
		_spec.AddField(agentbaseline.FieldCPUStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MemMean(); ok {
		_spec.SetField(agentbaseline.FieldMemMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMemMean(); ok {
		_spec.AddField(agentbaseline.FieldMemMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MemStddev(); ok {
		_spec.SetField(agentbaseline.FieldMemStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMemStddev(); ok {
		_spec.AddField(agentbaseline.FieldMemStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(agentbaseline.FieldSampleCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(agentbaseline.FieldSampleCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentbaseline.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentBaseline{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentbaseline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
