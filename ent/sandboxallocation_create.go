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
	"github.com/helmsman-ai/helmsman/ent/sandboxallocation"
)

// SandboxAllocationCreate is the builder for creating a SandboxAllocation entity.
type SandboxAllocationCreate struct {
	config
	mutation *SandboxAllocationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCPUCores sets the "cpu_cores" field.
func (_c *SandboxAllocationCreate) SetCPUCores(v float64) *SandboxAllocationCreate {
	_c.mutation.SetCPUCores(v)
	return _c
}

// SetMemoryMB sets the "memory_mb" field.
func (_c *SandboxAllocationCreate) SetMemoryMB(v int) *SandboxAllocationCreate {
	_c.mutation.SetMemoryMB(v)
	return _c
}

// SetDiskMB sets the "disk_mb" field.
func (_c *SandboxAllocationCreate) SetDiskMB(v int) *SandboxAllocationCreate {
	_c.mutation.SetDiskMB(v)
	return _c
}

// SetPendingCPUCores sets the "pending_cpu_cores" field.
func (_c *SandboxAllocationCreate) SetPendingCPUCores(v float64) *SandboxAllocationCreate {
	_c.mutation.SetPendingCPUCores(v)
	return _c
}

// SetNillablePendingCPUCores sets the "pending_cpu_cores" field if the given value is not nil.
func (_c *SandboxAllocationCreate) SetNillablePendingCPUCores(v *float64) *SandboxAllocationCreate {
	if v != nil {
		_c.SetPendingCPUCores(*v)
	}
	return _c
}

// SetPendingMemoryMB sets the "pending_memory_mb" field.
func (_c *SandboxAllocationCreate) SetPendingMemoryMB(v int) *SandboxAllocationCreate {
	_c.mutation.SetPendingMemoryMB(v)
	return _c
}

// SetNillablePendingMemoryMB sets the "pending_memory_mb" field if the given value is not nil.
func (_c *SandboxAllocationCreate) SetNillablePendingMemoryMB(v *int) *SandboxAllocationCreate {
	if v != nil {
		_c.SetPendingMemoryMB(*v)
	}
	return _c
}

// SetPendingDiskMB sets the "pending_disk_mb" field.
func (_c *SandboxAllocationCreate) SetPendingDiskMB(v int) *SandboxAllocationCreate {
	_c.mutation.SetPendingDiskMB(v)
	return _c
}

// SetNillablePendingDiskMB sets the "pending_disk_mb" field if the given value is not nil.
func (_c *SandboxAllocationCreate) SetNillablePendingDiskMB(v *int) *SandboxAllocationCreate {
	if v != nil {
		_c.SetPendingDiskMB(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *SandboxAllocationCreate) SetVersion(v int) *SandboxAllocationCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *SandboxAllocationCreate) SetNillableVersion(v *int) *SandboxAllocationCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *SandboxAllocationCreate) SetUpdatedBy(v string) *SandboxAllocationCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *SandboxAllocationCreate) SetNillableUpdatedBy(v *string) *SandboxAllocationCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SandboxAllocationCreate) SetCreatedAt(v time.Time) *SandboxAllocationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SandboxAllocationCreate) SetNillableCreatedAt(v *time.Time) *SandboxAllocationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SandboxAllocationCreate) SetUpdatedAt(v time.Time) *SandboxAllocationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SandboxAllocationCreate) SetNillableUpdatedAt(v *time.Time) *SandboxAllocationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SandboxAllocationCreate) SetID(v string) *SandboxAllocationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SandboxAllocationMutation object of the builder.
func (_c *SandboxAllocationCreate) Mutation() *SandboxAllocationMutation {
	return _c.mutation
}

// Save creates the SandboxAllocation in the database.
func (_c *SandboxAllocationCreate) Save(ctx context.Context) (*SandboxAllocation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SandboxAllocationCreate) SaveX(ctx context.Context) *SandboxAllocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SandboxAllocationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SandboxAllocationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SandboxAllocationCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := sandboxallocation.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sandboxallocation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sandboxallocation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SandboxAllocationCreate) check() error {
	if _, ok := _c.mutation.CPUCores(); !ok {
		return &ValidationError{Name: "cpu_cores", err: errors.New(`ent: missing required field "SandboxAllocation.cpu_cores"`)}
	}
	if _, ok := _c.mutation.MemoryMB(); !ok {
		return &ValidationError{Name: "memory_mb", err: errors.New(`ent: missing required field "SandboxAllocation.memory_mb"`)}
	}
	if _, ok := _c.mutation.DiskMB(); !ok {
		return &ValidationError{Name: "disk_mb", err: errors.New(`ent: missing required field "SandboxAllocation.disk_mb"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "SandboxAllocation.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SandboxAllocation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SandboxAllocation.updated_at"`)}
	}
	return nil
}

func (_c *SandboxAllocationCreate) sqlSave(ctx context.Context) (*SandboxAllocation, error) {
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
			return nil, fmt.Errorf("unexpected SandboxAllocation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SandboxAllocationCreate) createSpec() (*SandboxAllocation, *sqlgraph.CreateSpec) {
	var (
		_node = &SandboxAllocation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sandboxallocation.Table, sqlgraph.NewFieldSpec(sandboxallocation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CPUCores(); ok {
		_spec.SetField(sandboxallocation.FieldCPUCores, field.TypeFloat64, value)
		_node.CPUCores = value
	}
	if value, ok := _c.mutation.MemoryMB(); ok {
		_spec.SetField(sandboxallocation.FieldMemoryMB, field.TypeInt, value)
		_node.MemoryMB = value
	}
	if value, ok := _c.mutation.DiskMB(); ok {
		_spec.SetField(sandboxallocation.FieldDiskMB, field.TypeInt, value)
		_node.DiskMB = value
	}
	if value, ok := _c.mutation.PendingCPUCores(); ok {
		_spec.SetField(sandboxallocation.FieldPendingCPUCores, field.TypeFloat64, value)
		_node.PendingCPUCores = &value
	}
	if value, ok := _c.mutation.PendingMemoryMB(); ok {
		_spec.SetField(sandboxallocation.FieldPendingMemoryMB, field.TypeInt, value)
		_node.PendingMemoryMB = &value
	}
	if value, ok := _c.mutation.PendingDiskMB(); ok {
		_spec.SetField(sandboxallocation.FieldPendingDiskMB, field.TypeInt, value)
		_node.PendingDiskMB = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(sandboxallocation.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(sandboxallocation.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sandboxallocation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sandboxallocation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SandboxAllocation.Create().
//		SetCPUCores(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SandboxAllocationUpsert) {
//			SetCPUCores(v+v).
//		}).
//		Exec(ctx)
func (_c *SandboxAllocationCreate) OnConflict(opts ...sql.ConflictOption) *SandboxAllocationUpsertOne {
	_c.conflict = opts
	return &SandboxAllocationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SandboxAllocation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SandboxAllocationCreate) OnConflictColumns(columns ...string) *SandboxAllocationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SandboxAllocationUpsertOne{
		create: _c,
	}
}

type (
	// SandboxAllocationUpsertOne is the builder for "upsert"-ing
	//  one SandboxAllocation node.
	SandboxAllocationUpsertOne struct {
		create *SandboxAllocationCreate
	}

	// SandboxAllocationUpsert is the "OnConflict" setter.
	SandboxAllocationUpsert struct {
		*sql.UpdateSet
	}
)

// SetCPUCores sets the "cpu_cores" field.
func (u *SandboxAllocationUpsert) SetCPUCores(v float64) *SandboxAllocationUpsert {
	u.Set(sandboxallocation.FieldCPUCores, v)
	return u
}

// UpdateCPUCores sets the "cpu_cores" field to the value that was provided on create.
func (u *SandboxAllocationUpsert) UpdateCPUCores() *SandboxAllocationUpsert {
	u.SetExcluded(sandboxallocation.FieldCPUCores)
	return u
}

// AddCPUCores adds v to the "cpu_cores" field.
func (u *SandboxAllocationUpsert) AddCPUCores(v float64) *SandboxAllocationUpsert {
	u.Add(sandboxallocation.FieldCPUCores, v)
	return u
}

// SetMemoryMB sets the "memory_mb" field.
func (u *SandboxAllocationUpsert) SetMemoryMB(v int) *SandboxAllocationUpsert {
	u.Set(sandboxallocation.FieldMemoryMB, v)
	return u
}

// UpdateMemoryMB sets the "memory_mb" field to the value that was provided on create.
func (u *SandboxAllocationUpsert) UpdateMemoryMB() *SandboxAllocationUpsert {
	u.SetExcluded(sandboxallocation.FieldMemoryMB)
	return u
}

// AddMemoryMB adds v to the "memory_mb" field.
func (u *SandboxAllocationUpsert) AddMemoryMB(v int) *SandboxAllocationUpsert {
	u.Add(sandboxallocation.FieldMemoryMB, v)
	return u
}

// SetDiskMB sets the "disk_mb" field.
func (u *SandboxAllocationUpsert) SetDiskMB(v int) *SandboxAllocationUpsert {
	u.Set(sandboxallocation.FieldDiskMB, v)
	return u
}

// UpdateDiskMB sets the "disk_mb" field to the value that was provided on create.
func (u *SandboxAllocationUpsert) UpdateDiskMB() *SandboxAllocationUpsert {
	u.SetExcluded(sandboxallocation.FieldDiskMB)
	return u
}

// AddDiskMB adds v to the "disk_mb" field.
func (u *SandboxAllocationUpsert) AddDiskMB(v int) *SandboxAllocationUpsert {
	u.Add(sandboxallocation.FieldDiskMB, v)
	return u
}

// SetPendingCPUCores sets the "pending_cpu_cores" field.
func (u *SandboxAllocationUpsert) SetPendingCPUCores(v float64) *SandboxAllocationUpsert {
	u.Set(sandboxallocation.FieldPendingCPUCores, v)
	return u
}

// UpdatePendingCPUCores sets the "pending_cpu_cores" field to the value that was provided on create.
func (u *SandboxAllocationUpsert) UpdatePendingCPUCores() *SandboxAllocationUpsert {
	u.SetExcluded(sandboxallocation.FieldPendingCPUCores)
	return u
}

// AddPendingCPUCores adds v to the "pending_cpu_cores" field.
func (u *SandboxAllocationUpsert) AddPendingCPUCores(v float64) *SandboxAllocationUpsert {
	u.Add(sandboxallocation.FieldPendingCPUCores, v)
	return u
}

// ClearPendingCPUCores clears the value of the "pending_cpu_cores" field.
func (u *SandboxAllocationUpsert) ClearPendingCPUCores() *SandboxAllocationUpsert {
	u.SetNull(sandboxallocation.FieldPendingCPUCores)
	return u
}

// SetPendingMemoryMB sets the "pending_memory_mb" field.
func (u *SandboxAllocationUpsert) SetPendingMemoryMB(v int) *SandboxAllocationUpsert {
	u.Set(sandboxallocation.FieldPendingMemoryMB, v)
	return u
}

// UpdatePendingMemoryMB sets the "pending_memory_mb" field to the value that was provided on create.
func (u *SandboxAllocationUpsert) UpdatePendingMemoryMB() *SandboxAllocationUpsert {
	u.SetExcluded(sandboxallocation.FieldPendingMemoryMB)
	return u
}

// AddPendingMemoryMB adds v to the "pending_memory_mb" field.
func (u *SandboxAllocationUpsert) AddPendingMemoryMB(v int) *SandboxAllocationUpsert {
	u.Add(sandboxallocation.FieldPendingMemoryMB, v)
	return u
}

// ClearPendingMemoryMB clears the value of the "pending_memory_mb" field.
func (u *SandboxAllocationUpsert) ClearPendingMemoryMB() *SandboxAllocationUpsert {
	u.SetNull(sandboxallocation.FieldPendingMemoryMB)
	return u
}

// SetPendingDiskMB sets the "pending_disk_mb" field.
func (u *SandboxAllocationUpsert) SetPendingDiskMB(v int) *SandboxAllocationUpsert {
	u.Set(sandboxallocation.FieldPendingDiskMB, v)
	return u
}

// UpdatePendingDiskMB sets the "pending_disk_mb" field to the value that was provided on create.
func (u *SandboxAllocationUpsert) UpdatePendingDiskMB() *SandboxAllocationUpsert {
	u.SetExcluded(sandboxallocation.FieldPendingDiskMB)
	return u
}

// AddPendingDiskMB adds v to the "pending_disk_mb" field.
func (u *SandboxAllocationUpsert) AddPendingDiskMB(v int) *SandboxAllocationUpsert {
	u.Add(sandboxallocation.FieldPendingDiskMB, v)
	return u
}

// ClearPendingDiskMB clears the value of the "pending_disk_mb" field.
func (u *SandboxAllocationUpsert) ClearPendingDiskMB() *SandboxAllocationUpsert {
	u.SetNull(sandboxallocation.FieldPendingDiskMB)
	return u
}

// SetVersion sets the "version" field.
func (u *SandboxAllocationUpsert) SetVersion(v int) *SandboxAllocationUpsert {
	u.Set(sandboxallocation.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *SandboxAllocationUpsert) UpdateVersion() *SandboxAllocationUpsert {
	u.SetExcluded(sandboxallocation.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *SandboxAllocationUpsert) AddVersion(v int) *SandboxAllocationUpsert {
	u.Add(sandboxallocation.FieldVersion, v)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *SandboxAllocationUpsert) SetUpdatedBy(v string) *SandboxAllocationUpsert {
	u.Set(sandboxallocation.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *SandboxAllocationUpsert) UpdateUpdatedBy() *SandboxAllocationUpsert {
	u.SetExcluded(sandboxallocation.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *SandboxAllocationUpsert) ClearUpdatedBy() *SandboxAllocationUpsert {
	u.SetNull(sandboxallocation.FieldUpdatedBy)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SandboxAllocationUpsert) SetUpdatedAt(v time.Time) *SandboxAllocationUpsert {
	u.Set(sandboxallocation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SandboxAllocationUpsert) UpdateUpdatedAt() *SandboxAllocationUpsert {
	u.SetExcluded(sandboxallocation.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SandboxAllocation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sandboxallocation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SandboxAllocationUpsertOne) UpdateNewValues() *SandboxAllocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sandboxallocation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sandboxallocation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SandboxAllocation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SandboxAllocationUpsertOne) Ignore() *SandboxAllocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SandboxAllocationUpsertOne) DoNothing() *SandboxAllocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SandboxAllocationCreate.OnConflict
// documentation for more info.
func (u *SandboxAllocationUpsertOne) Update(set func(*SandboxAllocationUpsert)) *SandboxAllocationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SandboxAllocationUpsert{UpdateSet: update})
	}))
	return u
}

// SetCPUCores sets the "cpu_cores" field.
func (u *SandboxAllocationUpsertOne) SetCPUCores(v float64) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetCPUCores(v)
	})
}

// AddCPUCores adds v to the "cpu_cores" field.
func (u *SandboxAllocationUpsertOne) AddCPUCores(v float64) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.AddCPUCores(v)
	})
}

// UpdateCPUCores sets the "cpu_cores" field to the value that was provided on create.
func (u *SandboxAllocationUpsertOne) UpdateCPUCores() *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdateCPUCores()
	})
}

// SetMemoryMB sets the "memory_mb" field.
func (u *SandboxAllocationUpsertOne) SetMemoryMB(v int) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetMemoryMB(v)
	})
}

// AddMemoryMB adds v to the "memory_mb" field.
func (u *SandboxAllocationUpsertOne) AddMemoryMB(v int) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.AddMemoryMB(v)
	})
}

// UpdateMemoryMB sets the "memory_mb" field to the value that was provided on create.
func (u *SandboxAllocationUpsertOne) UpdateMemoryMB() *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdateMemoryMB()
	})
}

// SetDiskMB sets the "disk_mb" field.
func (u *SandboxAllocationUpsertOne) SetDiskMB(v int) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetDiskMB(v)
	})
}

// AddDiskMB adds v to the "disk_mb" field.
func (u *SandboxAllocationUpsertOne) AddDiskMB(v int) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.AddDiskMB(v)
	})
}

// UpdateDiskMB sets the "disk_mb" field to the value that was provided on create.
func (u *SandboxAllocationUpsertOne) UpdateDiskMB() *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdateDiskMB()
	})
}

// SetPendingCPUCores sets the "pending_cpu_cores" field.
func (u *SandboxAllocationUpsertOne) SetPendingCPUCores(v float64) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetPendingCPUCores(v)
	})
}

// AddPendingCPUCores adds v to the "pending_cpu_cores" field.
func (u *SandboxAllocationUpsertOne) AddPendingCPUCores(v float64) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.AddPendingCPUCores(v)
	})
}

// UpdatePendingCPUCores sets the "pending_cpu_cores" field to the value that was provided on create.
func (u *SandboxAllocationUpsertOne) UpdatePendingCPUCores() *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdatePendingCPUCores()
	})
}

// ClearPendingCPUCores clears the value of the "pending_cpu_cores" field.
func (u *SandboxAllocationUpsertOne) ClearPendingCPUCores() *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.ClearPendingCPUCores()
	})
}

// SetPendingMemoryMB sets the "pending_memory_mb" field.
func (u *SandboxAllocationUpsertOne) SetPendingMemoryMB(v int) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetPendingMemoryMB(v)
	})
}

// AddPendingMemoryMB adds v to the "pending_memory_mb" field.
func (u *SandboxAllocationUpsertOne) AddPendingMemoryMB(v int) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.AddPendingMemoryMB(v)
	})
}

// UpdatePendingMemoryMB sets the "pending_memory_mb" field to the value that was provided on create.
func (u *SandboxAllocationUpsertOne) UpdatePendingMemoryMB() *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdatePendingMemoryMB()
	})
}

// ClearPendingMemoryMB clears the value of the "pending_memory_mb" field.
func (u *SandboxAllocationUpsertOne) ClearPendingMemoryMB() *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.ClearPendingMemoryMB()
	})
}

// SetPendingDiskMB sets the "pending_disk_mb" field.
func (u *SandboxAllocationUpsertOne) SetPendingDiskMB(v int) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetPendingDiskMB(v)
	})
}

// AddPendingDiskMB adds v to the "pending_disk_mb" field.
func (u *SandboxAllocationUpsertOne) AddPendingDiskMB(v int) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.AddPendingDiskMB(v)
	})
}

// UpdatePendingDiskMB sets the "pending_disk_mb" field to the value that was provided on create.
func (u *SandboxAllocationUpsertOne) UpdatePendingDiskMB() *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdatePendingDiskMB()
	})
}

// ClearPendingDiskMB clears the value of the "pending_disk_mb" field.
func (u *SandboxAllocationUpsertOne) ClearPendingDiskMB() *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.ClearPendingDiskMB()
	})
}

// SetVersion sets the "version" field.
func (u *SandboxAllocationUpsertOne) SetVersion(v int) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *SandboxAllocationUpsertOne) AddVersion(v int) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *SandboxAllocationUpsertOne) UpdateVersion() *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *SandboxAllocationUpsertOne) SetUpdatedBy(v string) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *SandboxAllocationUpsertOne) UpdateUpdatedBy() *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *SandboxAllocationUpsertOne) ClearUpdatedBy() *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SandboxAllocationUpsertOne) SetUpdatedAt(v time.Time) *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SandboxAllocationUpsertOne) UpdateUpdatedAt() *SandboxAllocationUpsertOne {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SandboxAllocationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SandboxAllocationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SandboxAllocationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SandboxAllocationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SandboxAllocationUpsertOne.ID is not supported by MySQL driver. Use SandboxAllocationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SandboxAllocationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SandboxAllocationCreateBulk is the builder for creating many SandboxAllocation entities in bulk.
type SandboxAllocationCreateBulk struct {
	config
	err      error
	builders []*SandboxAllocationCreate
	conflict []sql.ConflictOption
}

// Save creates the SandboxAllocation entities in the database.
func (_c *SandboxAllocationCreateBulk) Save(ctx context.Context) ([]*SandboxAllocation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SandboxAllocation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SandboxAllocationMutation)
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
func (_c *SandboxAllocationCreateBulk) SaveX(ctx context.Context) []*SandboxAllocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SandboxAllocationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SandboxAllocationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SandboxAllocation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SandboxAllocationUpsert) {
//			SetCPUCores(v+v).
//		}).
//		Exec(ctx)
func (_c *SandboxAllocationCreateBulk) OnConflict(opts ...sql.ConflictOption) *SandboxAllocationUpsertBulk {
	_c.conflict = opts
	return &SandboxAllocationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SandboxAllocation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SandboxAllocationCreateBulk) OnConflictColumns(columns ...string) *SandboxAllocationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SandboxAllocationUpsertBulk{
		create: _c,
	}
}

// SandboxAllocationUpsertBulk is the builder for "upsert"-ing
// a bulk of SandboxAllocation nodes.
type SandboxAllocationUpsertBulk struct {
	create *SandboxAllocationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SandboxAllocation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sandboxallocation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SandboxAllocationUpsertBulk) UpdateNewValues() *SandboxAllocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sandboxallocation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sandboxallocation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SandboxAllocation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SandboxAllocationUpsertBulk) Ignore() *SandboxAllocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SandboxAllocationUpsertBulk) DoNothing() *SandboxAllocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SandboxAllocationCreateBulk.OnConflict
// documentation for more info.
func (u *SandboxAllocationUpsertBulk) Update(set func(*SandboxAllocationUpsert)) *SandboxAllocationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SandboxAllocationUpsert{UpdateSet: update})
	}))
	return u
}

// SetCPUCores sets the "cpu_cores" field.
func (u *SandboxAllocationUpsertBulk) SetCPUCores(v float64) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetCPUCores(v)
	})
}

// AddCPUCores adds v to the "cpu_cores" field.
func (u *SandboxAllocationUpsertBulk) AddCPUCores(v float64) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.AddCPUCores(v)
	})
}

// UpdateCPUCores sets the "cpu_cores" field to the value that was provided on create.
func (u *SandboxAllocationUpsertBulk) UpdateCPUCores() *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdateCPUCores()
	})
}

// SetMemoryMB sets the "memory_mb" field.
func (u *SandboxAllocationUpsertBulk) SetMemoryMB(v int) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetMemoryMB(v)
	})
}

// AddMemoryMB adds v to the "memory_mb" field.
func (u *SandboxAllocationUpsertBulk) AddMemoryMB(v int) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.AddMemoryMB(v)
	})
}

// UpdateMemoryMB sets the "memory_mb" field to the value that was provided on create.
func (u *SandboxAllocationUpsertBulk) UpdateMemoryMB() *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdateMemoryMB()
	})
}

// SetDiskMB sets the "disk_mb" field.
func (u *SandboxAllocationUpsertBulk) SetDiskMB(v int) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetDiskMB(v)
	})
}

// AddDiskMB adds v to the "disk_mb" field.
func (u *SandboxAllocationUpsertBulk) AddDiskMB(v int) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.AddDiskMB(v)
	})
}

// UpdateDiskMB sets the "disk_mb" field to the value that was provided on create.
func (u *SandboxAllocationUpsertBulk) UpdateDiskMB() *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdateDiskMB()
	})
}

// SetPendingCPUCores sets the "pending_cpu_cores" field.
func (u *SandboxAllocationUpsertBulk) SetPendingCPUCores(v float64) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetPendingCPUCores(v)
	})
}

// AddPendingCPUCores adds v to the "pending_cpu_cores" field.
func (u *SandboxAllocationUpsertBulk) AddPendingCPUCores(v float64) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.AddPendingCPUCores(v)
	})
}

// UpdatePendingCPUCores sets the "pending_cpu_cores" field to the value that was provided on create.
func (u *SandboxAllocationUpsertBulk) UpdatePendingCPUCores() *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdatePendingCPUCores()
	})
}

// ClearPendingCPUCores clears the value of the "pending_cpu_cores" field.
func (u *SandboxAllocationUpsertBulk) ClearPendingCPUCores() *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.ClearPendingCPUCores()
	})
}

// SetPendingMemoryMB sets the "pending_memory_mb" field.
func (u *SandboxAllocationUpsertBulk) SetPendingMemoryMB(v int) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetPendingMemoryMB(v)
	})
}

// AddPendingMemoryMB adds v to the "pending_memory_mb" field.
func (u *SandboxAllocationUpsertBulk) AddPendingMemoryMB(v int) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.AddPendingMemoryMB(v)
	})
}

// UpdatePendingMemoryMB sets the "pending_memory_mb" field to the value that was provided on create.
func (u *SandboxAllocationUpsertBulk) UpdatePendingMemoryMB() *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdatePendingMemoryMB()
	})
}

// ClearPendingMemoryMB clears the value of the "pending_memory_mb" field.
func (u *SandboxAllocationUpsertBulk) ClearPendingMemoryMB() *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.ClearPendingMemoryMB()
	})
}

// SetPendingDiskMB sets the "pending_disk_mb" field.
func (u *SandboxAllocationUpsertBulk) SetPendingDiskMB(v int) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetPendingDiskMB(v)
	})
}

// AddPendingDiskMB adds v to the "pending_disk_mb" field.
func (u *SandboxAllocationUpsertBulk) AddPendingDiskMB(v int) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.AddPendingDiskMB(v)
	})
}

// UpdatePendingDiskMB sets the "pending_disk_mb" field to the value that was provided on create.
func (u *SandboxAllocationUpsertBulk) UpdatePendingDiskMB() *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdatePendingDiskMB()
	})
}

// ClearPendingDiskMB clears the value of the "pending_disk_mb" field.
func (u *SandboxAllocationUpsertBulk) ClearPendingDiskMB() *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.ClearPendingDiskMB()
	})
}

// SetVersion sets the "version" field.
func (u *SandboxAllocationUpsertBulk) SetVersion(v int) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *SandboxAllocationUpsertBulk) AddVersion(v int) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *SandboxAllocationUpsertBulk) UpdateVersion() *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *SandboxAllocationUpsertBulk) SetUpdatedBy(v string) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *SandboxAllocationUpsertBulk) UpdateUpdatedBy() *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *SandboxAllocationUpsertBulk) ClearUpdatedBy() *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SandboxAllocationUpsertBulk) SetUpdatedAt(v time.Time) *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SandboxAllocationUpsertBulk) UpdateUpdatedAt() *SandboxAllocationUpsertBulk {
	return u.Update(func(s *SandboxAllocationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SandboxAllocationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SandboxAllocationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SandboxAllocationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SandboxAllocationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
