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
	"github.com/helmsman-ai/helmsman/ent/predicate"
	"github.com/helmsman-ai/helmsman/ent/sandboxallocation"
)

// SandboxAllocationUpdate is the builder for updating SandboxAllocation entities.
type SandboxAllocationUpdate struct {
	config
	hooks    []Hook
	mutation *SandboxAllocationMutation
}

// Where appends a list predicates to the SandboxAllocationUpdate builder.
func (_u *SandboxAllocationUpdate) Where(ps ...predicate.SandboxAllocation) *SandboxAllocationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCPUCores sets the "cpu_cores" field.
func (_u *SandboxAllocationUpdate) SetCPUCores(v float64) *SandboxAllocationUpdate {
	_u.mutation.ResetCPUCores()
	_u.mutation.SetCPUCores(v)
	return _u
}

// SetNillableCPUCores sets the "cpu_cores" field if the given value is not nil.
func (_u *SandboxAllocationUpdate) SetNillableCPUCores(v *float64) *SandboxAllocationUpdate {
	if v != nil {
		_u.SetCPUCores(*v)
	}
	return _u
}

// AddCPUCores adds value to the "cpu_cores" field.
func (_u *SandboxAllocationUpdate) AddCPUCores(v float64) *SandboxAllocationUpdate {
	_u.mutation.AddCPUCores(v)
	return _u
}

// SetMemoryMB sets the "memory_mb" field.
func (_u *SandboxAllocationUpdate) SetMemoryMB(v int) *SandboxAllocationUpdate {
	_u.mutation.ResetMemoryMB()
	_u.mutation.SetMemoryMB(v)
	return _u
}

// SetNillableMemoryMB sets the "memory_mb" field if the given value is not nil.
func (_u *SandboxAllocationUpdate) SetNillableMemoryMB(v *int) *SandboxAllocationUpdate {
	if v != nil {
		_u.SetMemoryMB(*v)
	}
	return _u
}

// AddMemoryMB adds value to the "memory_mb" field.
func (_u *SandboxAllocationUpdate) AddMemoryMB(v int) *SandboxAllocationUpdate {
	_u.mutation.AddMemoryMB(v)
	return _u
}

// SetDiskMB sets the "disk_mb" field.
func (_u *SandboxAllocationUpdate) SetDiskMB(v int) *SandboxAllocationUpdate {
	_u.mutation.ResetDiskMB()
	_u.mutation.SetDiskMB(v)
	return _u
}

// SetNillableDiskMB sets the "disk_mb" field if the given value is not nil.
func (_u *SandboxAllocationUpdate) SetNillableDiskMB(v *int) *SandboxAllocationUpdate {
	if v != nil {
		_u.SetDiskMB(*v)
	}
	return _u
}

// AddDiskMB adds value to the "disk_mb" field.
func (_u *SandboxAllocationUpdate) AddDiskMB(v int) *SandboxAllocationUpdate {
	_u.mutation.AddDiskMB(v)
	return _u
}

// SetPendingCPUCores sets the "pending_cpu_cores" field.
func (_u *SandboxAllocationUpdate) SetPendingCPUCores(v float64) *SandboxAllocationUpdate {
	_u.mutation.ResetPendingCPUCores()
	_u.mutation.SetPendingCPUCores(v)
	return _u
}

// SetNillablePendingCPUCores sets the "pending_cpu_cores" field if the given value is not nil.
func (_u *SandboxAllocationUpdate) SetNillablePendingCPUCores(v *float64) *SandboxAllocationUpdate {
	if v != nil {
		_u.SetPendingCPUCores(*v)
	}
	return _u
}

// AddPendingCPUCores adds value to the "pending_cpu_cores" field.
func (_u *SandboxAllocationUpdate) AddPendingCPUCores(v float64) *SandboxAllocationUpdate {
	_u.mutation.AddPendingCPUCores(v)
	return _u
}

// ClearPendingCPUCores clears the value of the "pending_cpu_cores" field.
func (_u *SandboxAllocationUpdate) ClearPendingCPUCores() *SandboxAllocationUpdate {
	_u.mutation.ClearPendingCPUCores()
	return _u
}

// SetPendingMemoryMB sets the "pending_memory_mb" field.
func (_u *SandboxAllocationUpdate) SetPendingMemoryMB(v int) *SandboxAllocationUpdate {
	_u.mutation.ResetPendingMemoryMB()
	_u.mutation.SetPendingMemoryMB(v)
	return _u
}

// SetNillablePendingMemoryMB sets the "pending_memory_mb" field if the given value is not nil.
func (_u *SandboxAllocationUpdate) SetNillablePendingMemoryMB(v *int) *SandboxAllocationUpdate {
	if v != nil {
		_u.SetPendingMemoryMB(*v)
	}
	return _u
}

// AddPendingMemoryMB adds value to the "pending_memory_mb" field.
func (_u *SandboxAllocationUpdate) AddPendingMemoryMB(v int) *SandboxAllocationUpdate {
	_u.mutation.AddPendingMemoryMB(v)
	return _u
}

// ClearPendingMemoryMB clears the value of the "pending_memory_mb" field.
func (_u *SandboxAllocationUpdate) ClearPendingMemoryMB() *SandboxAllocationUpdate {
	_u.mutation.ClearPendingMemoryMB()
	return _u
}

// SetPendingDiskMB sets the "pending_disk_mb" field.
func (_u *SandboxAllocationUpdate) SetPendingDiskMB(v int) *SandboxAllocationUpdate {
	_u.mutation.ResetPendingDiskMB()
	_u.mutation.SetPendingDiskMB(v)
	return _u
}

// SetNillablePendingDiskMB sets the "pending_disk_mb" field if the given value is not nil.
func (_u *SandboxAllocationUpdate) SetNillablePendingDiskMB(v *int) *SandboxAllocationUpdate {
	if v != nil {
		_u.SetPendingDiskMB(*v)
	}
	return _u
}

// AddPendingDiskMB adds value to the "pending_disk_mb" field.
func (_u *SandboxAllocationUpdate) AddPendingDiskMB(v int) *SandboxAllocationUpdate {
	_u.mutation.AddPendingDiskMB(v)
	return _u
}

// ClearPendingDiskMB clears the value of the "pending_disk_mb" field.
func (_u *SandboxAllocationUpdate) ClearPendingDiskMB() *SandboxAllocationUpdate {
	_u.mutation.ClearPendingDiskMB()
	return _u
}

// SetVersion sets the "version" field.
func (_u *SandboxAllocationUpdate) SetVersion(v int) *SandboxAllocationUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SandboxAllocationUpdate) SetNillableVersion(v *int) *SandboxAllocationUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SandboxAllocationUpdate) AddVersion(v int) *SandboxAllocationUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *SandboxAllocationUpdate) SetUpdatedBy(v string) *SandboxAllocationUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *SandboxAllocationUpdate) SetNillableUpdatedBy(v *string) *SandboxAllocationUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *SandboxAllocationUpdate) ClearUpdatedBy() *SandboxAllocationUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SandboxAllocationUpdate) SetUpdatedAt(v time.Time) *SandboxAllocationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SandboxAllocationMutation object of the builder.
func (_u *SandboxAllocationUpdate) Mutation() *SandboxAllocationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SandboxAllocationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SandboxAllocationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SandboxAllocationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SandboxAllocationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SandboxAllocationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sandboxallocation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SandboxAllocationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sandboxallocation.Table, sandboxallocation.Columns, sqlgraph.NewFieldSpec(sandboxallocation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CPUCores(); ok {
		_spec.SetField(sandboxallocation.FieldCPUCores, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPUCores(); ok {
		_spec.AddField(sandboxallocation.FieldCPUCores, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MemoryMB(); ok {
		_spec.SetField(sandboxallocation.FieldMemoryMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoryMB(); ok {
		_spec.AddField(sandboxallocation.FieldMemoryMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DiskMB(); ok {
		_spec.SetField(sandboxallocation.FieldDiskMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDiskMB(); ok {
		_spec.AddField(sandboxallocation.FieldDiskMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PendingCPUCores(); ok {
		_spec.SetField(sandboxallocation.FieldPendingCPUCores, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPendingCPUCores(); ok {
		_spec.AddField(sandboxallocation.FieldPendingCPUCores, field.TypeFloat64, value)
	}
	if _u.mutation.PendingCPUCoresCleared() {
		_spec.ClearField(sandboxallocation.FieldPendingCPUCores, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PendingMemoryMB(); ok {
		_spec.SetField(sandboxallocation.FieldPendingMemoryMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPendingMemoryMB(); ok {
		_spec.AddField(sandboxallocation.FieldPendingMemoryMB, field.TypeInt, value)
	}
	if _u.mutation.PendingMemoryMBCleared() {
		_spec.ClearField(sandboxallocation.FieldPendingMemoryMB, field.TypeInt)
	}
	if value, ok := _u.mutation.PendingDiskMB(); ok {
		_spec.SetField(sandboxallocation.FieldPendingDiskMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPendingDiskMB(); ok {
		_spec.AddField(sandboxallocation.FieldPendingDiskMB, field.TypeInt, value)
	}
	if _u.mutation.PendingDiskMBCleared() {
		_spec.ClearField(sandboxallocation.FieldPendingDiskMB, field.TypeInt)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(sandboxallocation.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(sandboxallocation.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(sandboxallocation.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(sandboxallocation.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sandboxallocation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxallocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SandboxAllocationUpdateOne is the builder for updating a single SandboxAllocation entity.
type SandboxAllocationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SandboxAllocationMutation
}

// SetCPUCores sets the "cpu_cores" field.
func (_u *SandboxAllocationUpdateOne) SetCPUCores(v float64) *SandboxAllocationUpdateOne {
	_u.mutation.ResetCPUCores()
	_u.mutation.SetCPUCores(v)
	return _u
}

// SetNillableCPUCores sets the "cpu_cores" field if the given value is not nil.
func (_u *SandboxAllocationUpdateOne) SetNillableCPUCores(v *float64) *SandboxAllocationUpdateOne {
	if v != nil {
		_u.SetCPUCores(*v)
	}
	return _u
}

// AddCPUCores adds value to the "cpu_cores" field.
func (_u *SandboxAllocationUpdateOne) AddCPUCores(v float64) *SandboxAllocationUpdateOne {
	_u.mutation.AddCPUCores(v)
	return _u
}

// SetMemoryMB sets the "memory_mb" field.
func (_u *SandboxAllocationUpdateOne) SetMemoryMB(v int) *SandboxAllocationUpdateOne {
	_u.mutation.ResetMemoryMB()
	_u.mutation.SetMemoryMB(v)
	return _u
}

// SetNillableMemoryMB sets the "memory_mb" field if the given value is not nil.
func (_u *SandboxAllocationUpdateOne) SetNillableMemoryMB(v *int) *SandboxAllocationUpdateOne {
	if v != nil {
		_u.SetMemoryMB(*v)
	}
	return _u
}

// AddMemoryMB adds value to the "memory_mb" field.
func (_u *SandboxAllocationUpdateOne) AddMemoryMB(v int) *SandboxAllocationUpdateOne {
	_u.mutation.AddMemoryMB(v)
	return _u
}

// SetDiskMB sets the "disk_mb" field.
func (_u *SandboxAllocationUpdateOne) SetDiskMB(v int) *SandboxAllocationUpdateOne {
	_u.mutation.ResetDiskMB()
	_u.mutation.SetDiskMB(v)
	return _u
}

// SetNillableDiskMB sets the "disk_mb" field if the given value is not nil.
func (_u *SandboxAllocationUpdateOne) SetNillableDiskMB(v *int) *SandboxAllocationUpdateOne {
	if v != nil {
		_u.SetDiskMB(*v)
	}
	return _u
}

// AddDiskMB adds value to the "disk_mb" field.
func (_u *SandboxAllocationUpdateOne) AddDiskMB(v int) *SandboxAllocationUpdateOne {
	_u.mutation.AddDiskMB(v)
	return _u
}

// SetPendingCPUCores sets the "pending_cpu_cores" field.
func (_u *SandboxAllocationUpdateOne) SetPendingCPUCores(v float64) *SandboxAllocationUpdateOne {
	_u.mutation.ResetPendingCPUCores()
	_u.mutation.SetPendingCPUCores(v)
	return _u
}

// SetNillablePendingCPUCores sets the "pending_cpu_cores" field if the given value is not nil.
func (_u *SandboxAllocationUpdateOne) SetNillablePendingCPUCores(v *float64) *SandboxAllocationUpdateOne {
	if v != nil {
		_u.SetPendingCPUCores(*v)
	}
	return _u
}

// AddPendingCPUCores adds value to the "pending_cpu_cores" field.
func (_u *SandboxAllocationUpdateOne) AddPendingCPUCores(v float64) *SandboxAllocationUpdateOne {
	_u.mutation.AddPendingCPUCores(v)
	return _u
}

// ClearPendingCPUCores clears the value of the "pending_cpu_cores" field.
func (_u *SandboxAllocationUpdateOne) ClearPendingCPUCores() *SandboxAllocationUpdateOne {
	_u.mutation.ClearPendingCPUCores()
	return _u
}

// SetPendingMemoryMB sets the "pending_memory_mb" field.
func (_u *SandboxAllocationUpdateOne) SetPendingMemoryMB(v int) *SandboxAllocationUpdateOne {
	_u.mutation.ResetPendingMemoryMB()
	_u.mutation.SetPendingMemoryMB(v)
	return _u
}

// SetNillablePendingMemoryMB sets the "pending_memory_mb" field if the given value is not nil.
func (_u *SandboxAllocationUpdateOne) SetNillablePendingMemoryMB(v *int) *SandboxAllocationUpdateOne {
	if v != nil {
		_u.SetPendingMemoryMB(*v)
	}
	return _u
}

// AddPendingMemoryMB adds value to the "pending_memory_mb" field.
func (_u *SandboxAllocationUpdateOne) AddPendingMemoryMB(v int) *SandboxAllocationUpdateOne {
	_u.mutation.AddPendingMemoryMB(v)
	return _u
}

// ClearPendingMemoryMB clears the value of the "pending_memory_mb" field.
func (_u *SandboxAllocationUpdateOne) ClearPendingMemoryMB() *SandboxAllocationUpdateOne {
	_u.mutation.ClearPendingMemoryMB()
	return _u
}

// SetPendingDiskMB sets the "pending_disk_mb" field.
func (_u *SandboxAllocationUpdateOne) SetPendingDiskMB(v int) *SandboxAllocationUpdateOne {
	_u.mutation.ResetPendingDiskMB()
	_u.mutation.SetPendingDiskMB(v)
	return _u
}

// SetNillablePendingDiskMB sets the "pending_disk_mb" field if the given value is not nil.
func (_u *SandboxAllocationUpdateOne) SetNillablePendingDiskMB(v *int) *SandboxAllocationUpdateOne {
	if v != nil {
		_u.SetPendingDiskMB(*v)
	}
	return _u
}

// AddPendingDiskMB adds value to the "pending_disk_mb" field.
func (_u *SandboxAllocationUpdateOne) AddPendingDiskMB(v int) *SandboxAllocationUpdateOne {
	_u.mutation.AddPendingDiskMB(v)
	return _u
}

// ClearPendingDiskMB clears the value of the "pending_disk_mb" field.
func (_u *SandboxAllocationUpdateOne) ClearPendingDiskMB() *SandboxAllocationUpdateOne {
	_u.mutation.ClearPendingDiskMB()
	return _u
}

// SetVersion sets the "version" field.
func (_u *SandboxAllocationUpdateOne) SetVersion(v int) *SandboxAllocationUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SandboxAllocationUpdateOne) SetNillableVersion(v *int) *SandboxAllocationUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SandboxAllocationUpdateOne) AddVersion(v int) *SandboxAllocationUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *SandboxAllocationUpdateOne) SetUpdatedBy(v string) *SandboxAllocationUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *SandboxAllocationUpdateOne) SetNillableUpdatedBy(v *string) *SandboxAllocationUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *SandboxAllocationUpdateOne) ClearUpdatedBy() *SandboxAllocationUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SandboxAllocationUpdateOne) SetUpdatedAt(v time.Time) *SandboxAllocationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SandboxAllocationMutation object of the builder.
func (_u *SandboxAllocationUpdateOne) Mutation() *SandboxAllocationMutation {
	return _u.mutation
}

// Where appends a list predicates to the SandboxAllocationUpdate builder.
func (_u *SandboxAllocationUpdateOne) Where(ps ...predicate.SandboxAllocation) *SandboxAllocationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SandboxAllocationUpdateOne) Select(field string, fields ...string) *SandboxAllocationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SandboxAllocation entity.
func (_u *SandboxAllocationUpdateOne) Save(ctx context.Context) (*SandboxAllocation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SandboxAllocationUpdateOne) SaveX(ctx context.Context) *SandboxAllocation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SandboxAllocationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SandboxAllocationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SandboxAllocationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sandboxallocation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SandboxAllocationUpdateOne) sqlSave(ctx context.Context) (_node *SandboxAllocation, err error) {
	_spec := sqlgraph.NewUpdateSpec(sandboxallocation.Table, sandboxallocation.Columns, sqlgraph.NewFieldSpec(sandboxallocation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SandboxAllocation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sandboxallocation.FieldID)
		for _, f := range fields {
			if !sandboxallocation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sandboxallocation.FieldID {
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
	if value, ok := _u.mutation.CPUCores(); ok {
		_spec.SetField(sandboxallocation.FieldCPUCores, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPUCores(); ok {
		_spec.AddField(sandboxallocation.FieldCPUCores, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MemoryMB(); ok {
		_spec.SetField(sandboxallocation.FieldMemoryMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoryMB(); ok {
		_spec.AddField(sandboxallocation.FieldMemoryMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DiskMB(); ok {
		_spec.SetField(sandboxallocation.FieldDiskMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDiskMB(); ok {
		_spec.AddField(sandboxallocation.FieldDiskMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PendingCPUCores(); ok {
		_spec.SetField(sandboxallocation.FieldPendingCPUCores, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPendingCPUCores(); ok {
		_spec.AddField(sandboxallocation.FieldPendingCPUCores, field.TypeFloat64, value)
	}
	if _u.mutation.PendingCPUCoresCleared() {
		_spec.ClearField(sandboxallocation.FieldPendingCPUCores, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PendingMemoryMB(); ok {
		_spec.SetField(sandboxallocation.FieldPendingMemoryMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPendingMemoryMB(); ok {
		_spec.AddField(sandboxallocation.FieldPendingMemoryMB, field.TypeInt, value)
	}
	if _u.mutation.PendingMemoryMBCleared() {
		_spec.ClearField(sandboxallocation.FieldPendingMemoryMB, field.TypeInt)
	}
	if value, ok := _u.mutation.PendingDiskMB(); ok {
		_spec.SetField(sandboxallocation.FieldPendingDiskMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPendingDiskMB(); ok {
		_spec.AddField(sandboxallocation.FieldPendingDiskMB, field.TypeInt, value)
	}
	if _u.mutation.PendingDiskMBCleared() {
		_spec.ClearField(sandboxallocation.FieldPendingDiskMB, field.TypeInt)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(sandboxallocation.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(sandboxallocation.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(sandboxallocation.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(sandboxallocation.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sandboxallocation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SandboxAllocation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxallocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
