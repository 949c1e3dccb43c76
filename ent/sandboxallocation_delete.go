// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/helmsman-ai/helmsman/ent/predicate"
	"github.com/helmsman-ai/helmsman/ent/sandboxallocation"
)

// SandboxAllocationDelete is the builder for deleting a SandboxAllocation entity.
type SandboxAllocationDelete struct {
	config
	hooks    []Hook
	mutation *SandboxAllocationMutation
}

// Where appends a list predicates to the SandboxAllocationDelete builder.
func (_d *SandboxAllocationDelete) Where(ps ...predicate.SandboxAllocation) *SandboxAllocationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SandboxAllocationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SandboxAllocationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SandboxAllocationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(sandboxallocation.Table, sqlgraph.NewFieldSpec(sandboxallocation.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SandboxAllocationDeleteOne is the builder for deleting a single SandboxAllocation entity.
type SandboxAllocationDeleteOne struct {
	_d *SandboxAllocationDelete
}

// Where appends a list predicates to the SandboxAllocationDelete builder.
func (_d *SandboxAllocationDeleteOne) Where(ps ...predicate.SandboxAllocation) *SandboxAllocationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SandboxAllocationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{sandboxallocation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SandboxAllocationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
