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
)

// AgentBaselineCreate is the builder for creating a AgentBaseline entity.
type AgentBaselineCreate struct {
	config
	mutation *AgentBaselineMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentType sets the "agent_type" field.
func (_c *AgentBaselineCreate) SetAgentType(v string) *AgentBaselineCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *AgentBaselineCreate) SetPhase(v string) *AgentBaselineCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetLatencyMeanMs sets the "latency_mean_ms" field.
func (_c *AgentBaselineCreate) SetLatencyMeanMs(v float64) *AgentBaselineCreate {
	_c.mutation.SetLatencyMeanMs(v)
	return _c
}

// SetNillableLatencyMeanMs sets the "latency_mean_ms" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableLatencyMeanMs(v *float64) *AgentBaselineCreate {
	if v != nil {
		_c.SetLatencyMeanMs(*v)
	}
	return _c
}

// SetLatencyStddevMs sets the "latency_stddev_ms" field.
func (_c *AgentBaselineCreate) SetLatencyStddevMs(v float64) *AgentBaselineCreate {
	_c.mutation.SetLatencyStddevMs(v)
	return _c
}

// SetNillableLatencyStddevMs sets the "latency_stddev_ms" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableLatencyStddevMs(v *float64) *AgentBaselineCreate {
	if v != nil {
		_c.SetLatencyStddevMs(*v)
	}
	return _c
}

// SetErrorRate sets the "error_rate" field.
func (_c *AgentBaselineCreate) SetErrorRate(v float64) *AgentBaselineCreate {
	_c.mutation.SetErrorRate(v)
	return _c
}

// SetNillableErrorRate sets the "error_rate" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableErrorRate(v *float64) *AgentBaselineCreate {
	if v != nil {
		_c.SetErrorRate(*v)
	}
	return _c
}

// SetCPUMean sets the "cpu_mean" field.
func (_c *AgentBaselineCreate) SetCPUMean(v float64) *AgentBaselineCreate {
	_c.mutation.SetCPUMean(v)
	return _c
}

// SetNillableCPUMean sets the "cpu_mean" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableCPUMean(v *float64) *AgentBaselineCreate {
	if v != nil {
		_c.SetCPUMean(*v)
	}
	return _c
}

// SetCPUStddev sets the "cpu_stddev" field.
func (_c *AgentBaselineCreate) SetCPUStddev(v float64) *AgentBaselineCreate {
	_c.mutation.SetCPUStddev(v)
	return _c
}

// SetNillableCPUStddev sets the "cpu_stddev" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableCPUStddev(v *float64) *AgentBaselineCreate {
	if v != nil {
		_c.SetCPUStddev(*v)
	}
	return _c
}

// SetMemMean sets the "mem_mean" field.
func (_c *AgentBaselineCreate) SetMemMean(v float64) *AgentBaselineCreate {
	_c.mutation.SetMemMean(v)
	return _c
}

// SetNillableMemMean sets the "mem_mean" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableMemMean(v *float64) *AgentBaselineCreate {
	if v != nil {
		_c.SetMemMean(*v)
	}
	return _c
}

// SetMemStddev sets the "mem_stddev" field.
func (_c *AgentBaselineCreate) SetMemStddev(v float64) *AgentBaselineCreate {
	_c.mutation.SetMemStddev(v)
	return _c
}

// SetNillableMemStddev sets the "mem_stddev" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableMemStddev(v *float64) *AgentBaselineCreate {
	if v != nil {
		_c.SetMemStddev(*v)
	}
	return _c
}

// SetSampleCount sets the "sample_count" field.
func (_c *AgentBaselineCreate) SetSampleCount(v int64) *AgentBaselineCreate {
	_c.mutation.SetSampleCount(v)
	return _c
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableSampleCount(v *int64) *AgentBaselineCreate {
	if v != nil {
		_c.SetSampleCount(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentBaselineCreate) SetUpdatedAt(v time.Time) *AgentBaselineCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentBaselineCreate) SetNillableUpdatedAt(v *time.Time) *AgentBaselineCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the AgentBaselineMutation object of the builder.
func (_c *AgentBaselineCreate) Mutation() *AgentBaselineMutation {
	return _c.mutation
}

// Save creates the AgentBaseline in the database.
func (_c *AgentBaselineCreate) Save(ctx context.Context) (*AgentBaseline, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentBaselineCreate) SaveX(ctx context.Context) *AgentBaseline {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentBaselineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentBaselineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentBaselineCreate) defaults() {
	if _, ok := _c.mutation.LatencyMeanMs(); !ok {
		v := agentbaseline.DefaultLatencyMeanMs
		_c.mutation.SetLatencyMeanMs(v)
	}
	if _, ok := _c.mutation.LatencyStddevMs(); !ok {
		v := agentbaseline.DefaultLatencyStddevMs
		_c.mutation.SetLatencyStddevMs(v)
	}
	if _, ok := _c.mutation.ErrorRate(); !ok {
		v := agentbaseline.DefaultErrorRate
		_c.mutation.SetErrorRate(v)
	}
	if _, ok := _c.mutation.CPUMean(); !ok {
		v := agentbaseline.DefaultCPUMean
		_c.mutation.SetCPUMean(v)
	}
	if _, ok := _c.mutation.CPUStddev(); !ok {
		v := agentbaseline.DefaultCPUStddev
		_c.mutation.SetCPUStddev(v)
	}
	if _, ok := _c.mutation.MemMean(); !ok {
		v := agentbaseline.DefaultMemMean
		_c.mutation.SetMemMean(v)
	}
	if _, ok := _c.mutation.MemStddev(); !ok {
		v := agentbaseline.DefaultMemStddev
		_c.mutation.SetMemStddev(v)
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		v := agentbaseline.DefaultSampleCount
		_c.mutation.SetSampleCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentbaseline.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentBaselineCreate) check() error {
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "AgentBaseline.agent_type"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "AgentBaseline.phase"`)}
	}
	if _, ok := _c.mutation.LatencyMeanMs(); !ok {
		return &ValidationError{Name: "latency_mean_ms", err: errors.New(`ent: missing required field "AgentBaseline.latency_mean_ms"`)}
	}
	if _, ok := _c.mutation.LatencyStddevMs(); !ok {
		return &ValidationError{Name: "latency_stddev_ms", err: errors.New(`ent: missing required field "AgentBaseline.latency_stddev_ms"`)}
	}
	if _, ok := _c.mutation.ErrorRate(); !ok {
		return &ValidationError{Name: "error_rate", err: errors.New(`ent: missing required field "AgentBaseline.error_rate"`)}
	}
	if _, ok := _c.mutation.CPUMean(); !ok {
		return &ValidationError{Name: "cpu_mean", err: errors.New(`ent: missing required field "AgentBaseline.cpu_mean"`)}
	}
	if _, ok := _c.mutation.CPUStddev(); !ok {
		return &ValidationError{Name: "cpu_stddev", err: errors.New(`ent: missing required field "AgentBaseline.cpu_stddev"`)}
	}
	if _, ok := _c.mutation.MemMean(); !ok {
		return &ValidationError{Name: "mem_mean", err: errors.New(`ent: missing required field "AgentBaseline.mem_mean"`)}
	}
	if _, ok := _c.mutation.MemStddev(); !ok {
		return &ValidationError{Name: "mem_stddev", err: errors.New(`ent: missing required field "AgentBaseline.mem_stddev"`)}
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		return &ValidationError{Name: "sample_count", err: errors.New(`ent: missing required field "AgentBaseline.sample_count"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentBaseline.updated_at"`)}
	}
	return nil
}

func (_c *AgentBaselineCreate) sqlSave(ctx context.Context) (*AgentBaseline, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentBaselineCreate) createSpec() (*AgentBaseline, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentBaseline{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentbaseline.Table, sqlgraph.NewFieldSpec(agentbaseline.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(agentbaseline.FieldAgentType, field.TypeString, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(agentbaseline.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.LatencyMeanMs(); ok {
		_spec.SetField(agentbaseline.FieldLatencyMeanMs, field.TypeFloat64, value)
		_node.LatencyMeanMs = value
	}
	if value, ok := _c.mutation.LatencyStddevMs(); ok {
		_spec.SetField(agentbaseline.FieldLatencyStddevMs, field.TypeFloat64, value)
		_node.LatencyStddevMs = value
	}
	if value, ok := _c.mutation.ErrorRate(); ok {
		_spec.SetField(agentbaseline.FieldErrorRate, field.TypeFloat64, value)
		_node.ErrorRate = value
	}
	if value, ok := _c.mutation.CPUMean(); ok {
		_spec.SetField(agentbaseline.FieldCPUMean, field.TypeFloat64, value)
		_node.CPUMean = value
	}
	if value, ok := _c.mutation.CPUStddev(); ok {
		_spec.SetField(agentbaseline.FieldCPUStddev, field.TypeFloat64, value)
		_node.CPUStddev = value
	}
	if value, ok := _c.mutation.MemMean(); ok {
		_spec.SetField(agentbaseline.FieldMemMean, field.TypeFloat64, value)
		_node.MemMean = value
	}
	if value, ok := _c.mutation.MemStddev(); ok {
		_spec.SetField(agentbaseline.FieldMemStddev, field.TypeFloat64, value)
		_node.MemStddev = value
	}
	if value, ok := _c.mutation.SampleCount(); ok {
		_spec.SetField(agentbaseline.FieldSampleCount, field.TypeInt64, value)
		_node.SampleCount = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentbaseline.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentBaseline.Create().
//		SetAgentType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentBaselineUpsert) {
//			SetAgentType(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentBaselineCreate) OnConflict(opts ...sql.ConflictOption) *AgentBaselineUpsertOne {
	_c.conflict = opts
	return &AgentBaselineUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentBaseline.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentBaselineCreate) OnConflictColumns(columns ...string) *AgentBaselineUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentBaselineUpsertOne{
		create: _c,
	}
}

type (
	// AgentBaselineUpsertOne is the builder for "upsert"-ing
	//  one AgentBaseline node.
	AgentBaselineUpsertOne struct {
		create *AgentBaselineCreate
	}

	// AgentBaselineUpsert is the "OnConflict" setter.
	AgentBaselineUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentType sets the "agent_type" field.
func (u *AgentBaselineUpsert) SetAgentType(v string) *AgentBaselineUpsert {
	u.Set(agentbaseline.FieldAgentType, v)
	return u
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *AgentBaselineUpsert) UpdateAgentType() *AgentBaselineUpsert {
	u.SetExcluded(agentbaseline.FieldAgentType)
	return u
}

// SetPhase sets the "phase" field.
func (u *AgentBaselineUpsert) SetPhase(v string) *AgentBaselineUpsert {
	u.Set(agentbaseline.FieldPhase, v)
	return u
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *AgentBaselineUpsert) UpdatePhase() *AgentBaselineUpsert {
	u.SetExcluded(agentbaseline.FieldPhase)
	return u
}

// SetLatencyMeanMs sets the "latency_mean_ms" field.
func (u *AgentBaselineUpsert) SetLatencyMeanMs(v float64) *AgentBaselineUpsert {
	u.Set(agentbaseline.FieldLatencyMeanMs, v)
	return u
}

// UpdateLatencyMeanMs sets the "latency_mean_ms" field to the value that was provided on create.
func (u *AgentBaselineUpsert) UpdateLatencyMeanMs() *AgentBaselineUpsert {
	u.SetExcluded(agentbaseline.FieldLatencyMeanMs)
	return u
}

// AddLatencyMeanMs adds v to the "latency_mean_ms" field.
func (u *AgentBaselineUpsert) AddLatencyMeanMs(v float64) *AgentBaselineUpsert {
	u.Add(agentbaseline.FieldLatencyMeanMs, v)
	return u
}

// SetLatencyStddevMs sets the "latency_stddev_ms" field.
func (u *AgentBaselineUpsert) SetLatencyStddevMs(v float64) *AgentBaselineUpsert {
	u.Set(agentbaseline.FieldLatencyStddevMs, v)
	return u
}

// UpdateLatencyStddevMs sets the "latency_stddev_ms" field to the value that was provided on create.
func (u *AgentBaselineUpsert) UpdateLatencyStddevMs() *AgentBaselineUpsert {
	u.SetExcluded(agentbaseline.FieldLatencyStddevMs)
	return u
}

// AddLatencyStddevMs adds v to the "latency_stddev_ms" field.
func (u *AgentBaselineUpsert) AddLatencyStddevMs(v float64) *AgentBaselineUpsert {
	u.Add(agentbaseline.FieldLatencyStddevMs, v)
	return u
}

// SetErrorRate sets the "error_rate" field.
func (u *AgentBaselineUpsert) SetErrorRate(v float64) *AgentBaselineUpsert {
	u.Set(agentbaseline.FieldErrorRate, v)
	return u
}

// UpdateErrorRate sets the "error_rate" field to the value that was provided on create.
func (u *AgentBaselineUpsert) UpdateErrorRate() *AgentBaselineUpsert {
	u.SetExcluded(agentbaseline.FieldErrorRate)
	return u
}

// AddErrorRate adds v to the "error_rate" field.
func (u *AgentBaselineUpsert) AddErrorRate(v float64) *AgentBaselineUpsert {
	u.Add(agentbaseline.FieldErrorRate, v)
	return u
}

// SetCPUMean sets the "cpu_mean" field.
func (u *AgentBaselineUpsert) SetCPUMean(v float64) *AgentBaselineUpsert {
	u.Set(agentbaseline.FieldCPUMean, v)
	return u
}

// UpdateCPUMean sets the "cpu_mean" field to the value that was provided on create.
func (u *AgentBaselineUpsert) UpdateCPUMean() *AgentBaselineUpsert {
	u.SetExcluded(agentbaseline.FieldCPUMean)
	return u
}

// AddCPUMean adds v to the "cpu_mean" field.
func (u *AgentBaselineUpsert) AddCPUMean(v float64) *AgentBaselineUpsert {
	u.Add(agentbaseline.FieldCPUMean, v)
	return u
}

// SetCPUStddev sets the "cpu_stddev" field.
func (u *AgentBaselineUpsert) SetCPUStddev(v float64) *AgentBaselineUpsert {
	u.Set(agentbaseline.FieldCPUStddev, v)
	return u
}

// UpdateCPUStddev sets the "cpu_stddev" field to the value that was provided on create.
func (u *AgentBaselineUpsert) UpdateCPUStddev() *AgentBaselineUpsert {
	u.SetExcluded(agentbaseline.FieldCPUStddev)
	return u
}

// AddCPUStddev adds v to the "cpu_stddev" field.
func (u *AgentBaselineUpsert) AddCPUStddev(v float64) *AgentBaselineUpsert {
	u.Add(agentbaseline.FieldCPUStddev, v)
	return u
}

// SetMemMean sets the "mem_mean" field.
func (u *AgentBaselineUpsert) SetMemMean(v float64) *AgentBaselineUpsert {
	u.Set(agentbaseline.FieldMemMean, v)
	return u
}

// UpdateMemMean sets the "mem_mean" field to the value that was provided on create.
func (u *AgentBaselineUpsert) UpdateMemMean() *AgentBaselineUpsert {
	u.SetExcluded(agentbaseline.FieldMemMean)
	return u
}

// AddMemMean adds v to the "mem_mean" field.
func (u *AgentBaselineUpsert) AddMemMean(v float64) *AgentBaselineUpsert {
	u.Add(agentbaseline.FieldMemMean, v)
	return u
}

// SetMemStddev sets the "mem_stddev" field.
func (u *AgentBaselineUpsert) SetMemStddev(v float64) *AgentBaselineUpsert {
	u.Set(agentbaseline.FieldMemStddev, v)
	return u
}

// UpdateMemStddev sets the "mem_stddev" field to the value that was provided on create.
func (u *AgentBaselineUpsert) UpdateMemStddev() *AgentBaselineUpsert {
	u.SetExcluded(agentbaseline.FieldMemStddev)
	return u
}

// AddMemStddev adds v to the "mem_stddev" field.
func (u *AgentBaselineUpsert) AddMemStddev(v float64) *AgentBaselineUpsert {
	u.Add(agentbaseline.FieldMemStddev, v)
	return u
}

// SetSampleCount sets the "sample_count" field.
func (u *AgentBaselineUpsert) SetSampleCount(v int64) *AgentBaselineUpsert {
	u.Set(agentbaseline.FieldSampleCount, v)
	return u
}

// UpdateSampleCount sets the "sample_count" field to the value that was provided on create.
func (u *AgentBaselineUpsert) UpdateSampleCount() *AgentBaselineUpsert {
	u.SetExcluded(agentbaseline.FieldSampleCount)
	return u
}

// AddSampleCount adds v to the "sample_count" field.
func (u *AgentBaselineUpsert) AddSampleCount(v int64) *AgentBaselineUpsert {
	u.Add(agentbaseline.FieldSampleCount, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentBaselineUpsert) SetUpdatedAt(v time.Time) *AgentBaselineUpsert {
	u.Set(agentbaseline.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentBaselineUpsert) UpdateUpdatedAt() *AgentBaselineUpsert {
	u.SetExcluded(agentbaseline.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AgentBaseline.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentBaselineUpsertOne) UpdateNewValues() *AgentBaselineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentBaseline.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentBaselineUpsertOne) Ignore() *AgentBaselineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentBaselineUpsertOne) DoNothing() *AgentBaselineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentBaselineCreate.OnConflict
// documentation for more info.
func (u *AgentBaselineUpsertOne) Update(set func(*AgentBaselineUpsert)) *AgentBaselineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentBaselineUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentType sets the "agent_type" field.
func (u *AgentBaselineUpsertOne) SetAgentType(v string) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetAgentType(v)
	})
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *AgentBaselineUpsertOne) UpdateAgentType() *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateAgentType()
	})
}

// SetPhase sets the "phase" field.
func (u *AgentBaselineUpsertOne) SetPhase(v string) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *AgentBaselineUpsertOne) UpdatePhase() *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdatePhase()
	})
}

// SetLatencyMeanMs sets the "latency_mean_ms" field.
func (u *AgentBaselineUpsertOne) SetLatencyMeanMs(v float64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetLatencyMeanMs(v)
	})
}

// AddLatencyMeanMs adds v to the "latency_mean_ms" field.
func (u *AgentBaselineUpsertOne) AddLatencyMeanMs(v float64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddLatencyMeanMs(v)
	})
}

// UpdateLatencyMeanMs sets the "latency_mean_ms" field to the value that was provided on create.
func (u *AgentBaselineUpsertOne) UpdateLatencyMeanMs() *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateLatencyMeanMs()
	})
}

// SetLatencyStddevMs sets the "latency_stddev_ms" field.
func (u *AgentBaselineUpsertOne) SetLatencyStddevMs(v float64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetLatencyStddevMs(v)
	})
}

// AddLatencyStddevMs adds v to the "latency_stddev_ms" field.
func (u *AgentBaselineUpsertOne) AddLatencyStddevMs(v float64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddLatencyStddevMs(v)
	})
}

// UpdateLatencyStddevMs sets the "latency_stddev_ms" field to the value that was provided on create.
func (u *AgentBaselineUpsertOne) UpdateLatencyStddevMs() *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateLatencyStddevMs()
	})
}

// SetErrorRate sets the "error_rate" field.
func (u *AgentBaselineUpsertOne) SetErrorRate(v float64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetErrorRate(v)
	})
}

// AddErrorRate adds v to the "error_rate" field.
func (u *AgentBaselineUpsertOne) AddErrorRate(v float64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddErrorRate(v)
	})
}

// UpdateErrorRate sets the "error_rate" field to the value that was provided on create.
func (u *AgentBaselineUpsertOne) UpdateErrorRate() *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateErrorRate()
	})
}

// SetCPUMean sets the "cpu_mean" field.
func (u *AgentBaselineUpsertOne) SetCPUMean(v float64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetCPUMean(v)
	})
}

// AddCPUMean adds v to the "cpu_mean" field.
func (u *AgentBaselineUpsertOne) AddCPUMean(v float64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddCPUMean(v)
	})
}

// UpdateCPUMean sets the "cpu_mean" field to the value that was provided on create.
func (u *AgentBaselineUpsertOne) UpdateCPUMean() *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateCPUMean()
	})
}

// SetCPUStddev sets the "cpu_stddev" field.
func (u *AgentBaselineUpsertOne) SetCPUStddev(v float64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetCPUStddev(v)
	})
}

// AddCPUStddev adds v to the "cpu_stddev" field.
func (u *AgentBaselineUpsertOne) AddCPUStddev(v float64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddCPUStddev(v)
	})
}

// UpdateCPUStddev sets the "cpu_stddev" field to the value that was provided on create.
func (u *AgentBaselineUpsertOne) UpdateCPUStddev() *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateCPUStddev()
	})
}

// SetMemMean sets the "mem_mean" field.
func (u *AgentBaselineUpsertOne) SetMemMean(v float64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetMemMean(v)
	})
}

// AddMemMean adds v to the "mem_mean" field.
func (u *AgentBaselineUpsertOne) AddMemMean(v float64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddMemMean(v)
	})
}

// UpdateMemMean sets the "mem_mean" field to the value that was provided on create.
func (u *AgentBaselineUpsertOne) UpdateMemMean() *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateMemMean()
	})
}

// SetMemStddev sets the "mem_stddev" field.
func (u *AgentBaselineUpsertOne) SetMemStddev(v float64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetMemStddev(v)
	})
}

// AddMemStddev adds v to the "mem_stddev" field.
func (u *AgentBaselineUpsertOne) AddMemStddev(v float64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddMemStddev(v)
	})
}

// UpdateMemStddev sets the "mem_stddev" field to the value that was provided on create.
func (u *AgentBaselineUpsertOne) UpdateMemStddev() *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateMemStddev()
	})
}

// SetSampleCount sets the "sample_count" field.
func (u *AgentBaselineUpsertOne) SetSampleCount(v int64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetSampleCount(v)
	})
}

// AddSampleCount adds v to the "sample_count" field.
func (u *AgentBaselineUpsertOne) AddSampleCount(v int64) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddSampleCount(v)
	})
}

// UpdateSampleCount sets the "sample_count" field to the value that was provided on create.
func (u *AgentBaselineUpsertOne) UpdateSampleCount() *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateSampleCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentBaselineUpsertOne) SetUpdatedAt(v time.Time) *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentBaselineUpsertOne) UpdateUpdatedAt() *AgentBaselineUpsertOne {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentBaselineUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentBaselineCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentBaselineUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentBaselineUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentBaselineUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentBaselineCreateBulk is the builder for creating many AgentBaseline entities in bulk.
type AgentBaselineCreateBulk struct {
	config
	err      error
	builders []*AgentBaselineCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentBaseline entities in the database.
func (_c *AgentBaselineCreateBulk) Save(ctx context.Context) ([]*AgentBaseline, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentBaseline, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentBaselineMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *AgentBaselineCreateBulk) SaveX(ctx context.Context) []*AgentBaseline {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentBaselineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentBaselineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentBaseline.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentBaselineUpsert) {
//			SetAgentType(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentBaselineCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentBaselineUpsertBulk {
	_c.conflict = opts
	return &AgentBaselineUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentBaseline.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentBaselineCreateBulk) OnConflictColumns(columns ...string) *AgentBaselineUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentBaselineUpsertBulk{
		create: _c,
	}
}

// AgentBaselineUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentBaseline nodes.
type AgentBaselineUpsertBulk struct {
	create *AgentBaselineCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentBaseline.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentBaselineUpsertBulk) UpdateNewValues() *AgentBaselineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentBaseline.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentBaselineUpsertBulk) Ignore() *AgentBaselineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentBaselineUpsertBulk) DoNothing() *AgentBaselineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentBaselineCreateBulk.OnConflict
// documentation for more info.
func (u *AgentBaselineUpsertBulk) Update(set func(*AgentBaselineUpsert)) *AgentBaselineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentBaselineUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentType sets the "agent_type" field.
func (u *AgentBaselineUpsertBulk) SetAgentType(v string) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetAgentType(v)
	})
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *AgentBaselineUpsertBulk) UpdateAgentType() *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateAgentType()
	})
}

// SetPhase sets the "phase" field.
func (u *AgentBaselineUpsertBulk) SetPhase(v string) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *AgentBaselineUpsertBulk) UpdatePhase() *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdatePhase()
	})
}

// SetLatencyMeanMs sets the "latency_mean_ms" field.
func (u *AgentBaselineUpsertBulk) SetLatencyMeanMs(v float64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetLatencyMeanMs(v)
	})
}

// AddLatencyMeanMs adds v to the "latency_mean_ms" field.
func (u *AgentBaselineUpsertBulk) AddLatencyMeanMs(v float64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddLatencyMeanMs(v)
	})
}

// UpdateLatencyMeanMs sets the "latency_mean_ms" field to the value that was provided on create.
func (u *AgentBaselineUpsertBulk) UpdateLatencyMeanMs() *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateLatencyMeanMs()
	})
}

// SetLatencyStddevMs sets the "latency_stddev_ms" field.
func (u *AgentBaselineUpsertBulk) SetLatencyStddevMs(v float64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetLatencyStddevMs(v)
	})
}

// AddLatencyStddevMs adds v to the "latency_stddev_ms" field.
func (u *AgentBaselineUpsertBulk) AddLatencyStddevMs(v float64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddLatencyStddevMs(v)
	})
}

// UpdateLatencyStddevMs sets the "latency_stddev_ms" field to the value that was provided on create.
func (u *AgentBaselineUpsertBulk) UpdateLatencyStddevMs() *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateLatencyStddevMs()
	})
}

// SetErrorRate sets the "error_rate" field.
func (u *AgentBaselineUpsertBulk) SetErrorRate(v float64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetErrorRate(v)
	})
}

// AddErrorRate adds v to the "error_rate" field.
func (u *AgentBaselineUpsertBulk) AddErrorRate(v float64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddErrorRate(v)
	})
}

// UpdateErrorRate sets the "error_rate" field to the value that was provided on create.
func (u *AgentBaselineUpsertBulk) UpdateErrorRate() *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateErrorRate()
	})
}

// SetCPUMean sets the "cpu_mean" field.
func (u *AgentBaselineUpsertBulk) SetCPUMean(v float64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetCPUMean(v)
	})
}

// AddCPUMean adds v to the "cpu_mean" field.
func (u *AgentBaselineUpsertBulk) AddCPUMean(v float64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddCPUMean(v)
	})
}

// UpdateCPUMean sets the "cpu_mean" field to the value that was provided on create.
func (u *AgentBaselineUpsertBulk) UpdateCPUMean() *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateCPUMean()
	})
}

// SetCPUStddev sets the "cpu_stddev" field.
func (u *AgentBaselineUpsertBulk) SetCPUStddev(v float64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetCPUStddev(v)
	})
}

// AddCPUStddev adds v to the "cpu_stddev" field.
func (u *AgentBaselineUpsertBulk) AddCPUStddev(v float64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddCPUStddev(v)
	})
}

// UpdateCPUStddev sets the "cpu_stddev" field to the value that was provided on create.
func (u *AgentBaselineUpsertBulk) UpdateCPUStddev() *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateCPUStddev()
	})
}

// SetMemMean sets the "mem_mean" field.
func (u *AgentBaselineUpsertBulk) SetMemMean(v float64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetMemMean(v)
	})
}

// AddMemMean adds v to the "mem_mean" field.
func (u *AgentBaselineUpsertBulk) AddMemMean(v float64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddMemMean(v)
	})
}

// UpdateMemMean sets the "mem_mean" field to the value that was provided on create.
func (u *AgentBaselineUpsertBulk) UpdateMemMean() *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateMemMean()
	})
}

// SetMemStddev sets the "mem_stddev" field.
func (u *AgentBaselineUpsertBulk) SetMemStddev(v float64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetMemStddev(v)
	})
}

// AddMemStddev adds v to the "mem_stddev" field.
func (u *AgentBaselineUpsertBulk) AddMemStddev(v float64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddMemStddev(v)
	})
}

// UpdateMemStddev sets the "mem_stddev" field to the value that was provided on create.
func (u *AgentBaselineUpsertBulk) UpdateMemStddev() *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateMemStddev()
	})
}

// SetSampleCount sets the "sample_count" field.
func (u *AgentBaselineUpsertBulk) SetSampleCount(v int64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetSampleCount(v)
	})
}

// AddSampleCount adds v to the "sample_count" field.
func (u *AgentBaselineUpsertBulk) AddSampleCount(v int64) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.AddSampleCount(v)
	})
}

// UpdateSampleCount sets the "sample_count" field to the value that was provided on create.
func (u *AgentBaselineUpsertBulk) UpdateSampleCount() *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateSampleCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentBaselineUpsertBulk) SetUpdatedAt(v time.Time) *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentBaselineUpsertBulk) UpdateUpdatedAt() *AgentBaselineUpsertBulk {
	return u.Update(func(s *AgentBaselineUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentBaselineUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentBaselineCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentBaselineCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentBaselineUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
