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
	"github.com/helmsman-ai/helmsman/ent/predicate"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/ent/ticket"
)

// TicketUpdate is the builder for updating Ticket entities.
type TicketUpdate struct {
	config
	hooks    []Hook
	mutation *TicketMutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdate) Where(ps ...predicate.Ticket) *TicketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TicketUpdate) SetTitle(v string) *TicketUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableTitle(v *string) *TicketUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdate) SetDescription(v string) *TicketUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableDescription(v *string) *TicketUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *TicketUpdate) SetPhase(v string) *TicketUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *TicketUpdate) SetNillablePhase(v *string) *TicketUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// ClearPhase clears the value of the "phase" field.
func (_u *TicketUpdate) ClearPhase() *TicketUpdate {
	_u.mutation.ClearPhase()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketUpdate) SetStatus(v ticket.Status) *TicketUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableStatus(v *ticket.Status) *TicketUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApprovalStatus sets the "approval_status" field.
func (_u *TicketUpdate) SetApprovalStatus(v ticket.ApprovalStatus) *TicketUpdate {
	_u.mutation.SetApprovalStatus(v)
	return _u
}

// SetNillableApprovalStatus sets the "approval_status" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableApprovalStatus(v *ticket.ApprovalStatus) *TicketUpdate {
	if v != nil {
		_u.SetApprovalStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TicketUpdate) SetPriority(v int) *TicketUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TicketUpdate) SetNillablePriority(v *int) *TicketUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TicketUpdate) AddPriority(v int) *TicketUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *TicketUpdate) SetDeadline(v time.Time) *TicketUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableDeadline(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *TicketUpdate) ClearDeadline() *TicketUpdate {
	_u.mutation.ClearDeadline()
	return _u
}

// SetIsBlocked sets the "is_blocked" field.
func (_u *TicketUpdate) SetIsBlocked(v bool) *TicketUpdate {
	_u.mutation.SetIsBlocked(v)
	return _u
}

// SetNillableIsBlocked sets the "is_blocked" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableIsBlocked(v *bool) *TicketUpdate {
	if v != nil {
		_u.SetIsBlocked(*v)
	}
	return _u
}

// SetBlockedReason sets the "blocked_reason" field.
func (_u *TicketUpdate) SetBlockedReason(v string) *TicketUpdate {
	_u.mutation.SetBlockedReason(v)
	return _u
}

// SetNillableBlockedReason sets the "blocked_reason" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableBlockedReason(v *string) *TicketUpdate {
	if v != nil {
		_u.SetBlockedReason(*v)
	}
	return _u
}

// ClearBlockedReason clears the value of the "blocked_reason" field.
func (_u *TicketUpdate) ClearBlockedReason() *TicketUpdate {
	_u.mutation.ClearBlockedReason()
	return _u
}

// SetOwner sets the "owner" field.
func (_u *TicketUpdate) SetOwner(v string) *TicketUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableOwner(v *string) *TicketUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *TicketUpdate) ClearOwner() *TicketUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TicketUpdate) SetProjectID(v string) *TicketUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableProjectID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *TicketUpdate) ClearProjectID() *TicketUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetBlockedBy sets the "blocked_by" field.
func (_u *TicketUpdate) SetBlockedBy(v []string) *TicketUpdate {
	_u.mutation.SetBlockedBy(v)
	return _u
}

// AppendBlockedBy appends value to the "blocked_by" field.
func (_u *TicketUpdate) AppendBlockedBy(v []string) *TicketUpdate {
	_u.mutation.AppendBlockedBy(v)
	return _u
}

// ClearBlockedBy clears the value of the "blocked_by" field.
func (_u *TicketUpdate) ClearBlockedBy() *TicketUpdate {
	_u.mutation.ClearBlockedBy()
	return _u
}

// SetBlocks sets the "blocks" field.
func (_u *TicketUpdate) SetBlocks(v []string) *TicketUpdate {
	_u.mutation.SetBlocks(v)
	return _u
}

// AppendBlocks appends value to the "blocks" field.
func (_u *TicketUpdate) AppendBlocks(v []string) *TicketUpdate {
	_u.mutation.AppendBlocks(v)
	return _u
}

// ClearBlocks clears the value of the "blocks" field.
func (_u *TicketUpdate) ClearBlocks() *TicketUpdate {
	_u.mutation.ClearBlocks()
	return _u
}

// SetSpecID sets the "spec_id" field.
func (_u *TicketUpdate) SetSpecID(v string) *TicketUpdate {
	_u.mutation.SetSpecID(v)
	return _u
}

// SetNillableSpecID sets the "spec_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableSpecID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetSpecID(*v)
	}
	return _u
}

// ClearSpecID clears the value of the "spec_id" field.
func (_u *TicketUpdate) ClearSpecID() *TicketUpdate {
	_u.mutation.ClearSpecID()
	return _u
}

// SetVersion sets the "version" field.
func (_u *TicketUpdate) SetVersion(v int) *TicketUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableVersion(v *int) *TicketUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TicketUpdate) AddVersion(v int) *TicketUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdate) SetUpdatedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *TicketUpdate) AddTaskIDs(ids ...string) *TicketUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *TicketUpdate) AddTasks(v ...*Task) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdate) Mutation() *TicketMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *TicketUpdate) ClearTasks() *TicketUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *TicketUpdate) RemoveTaskIDs(ids ...string) *TicketUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *TicketUpdate) RemoveTasks(v ...*Task) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovalStatus(); ok {
		if err := ticket.ApprovalStatusValidator(v); err != nil {
			return &ValidationError{Name: "approval_status", err: fmt.Errorf(`ent: validator failed for field "Ticket.approval_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(ticket.FieldPhase, field.TypeString, value)
	}
	if _u.mutation.PhaseCleared() {
		_spec.ClearField(ticket.FieldPhase, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovalStatus(); ok {
		_spec.SetField(ticket.FieldApprovalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(ticket.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(ticket.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(ticket.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.IsBlocked(); ok {
		_spec.SetField(ticket.FieldIsBlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BlockedReason(); ok {
		_spec.SetField(ticket.FieldBlockedReason, field.TypeString, value)
	}
	if _u.mutation.BlockedReasonCleared() {
		_spec.ClearField(ticket.FieldBlockedReason, field.TypeString)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(ticket.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(ticket.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(ticket.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(ticket.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.BlockedBy(); ok {
		_spec.SetField(ticket.FieldBlockedBy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlockedBy(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldBlockedBy, value)
		})
	}
	if _u.mutation.BlockedByCleared() {
		_spec.ClearField(ticket.FieldBlockedBy, field.TypeJSON)
	}
	if value, ok := _u.mutation.Blocks(); ok {
		_spec.SetField(ticket.FieldBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldBlocks, value)
		})
	}
	if _u.mutation.BlocksCleared() {
		_spec.ClearField(ticket.FieldBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpecID(); ok {
		_spec.SetField(ticket.FieldSpecID, field.TypeString, value)
	}
	if _u.mutation.SpecIDCleared() {
		_spec.ClearField(ticket.FieldSpecID, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(ticket.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(ticket.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.TasksTable,
			Columns: []string{ticket.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.TasksTable,
			Columns: []string{ticket.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.TasksTable,
			Columns: []string{ticket.TasksColumn},
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
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketUpdateOne is the builder for updating a single Ticket entity.
type TicketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketMutation
}

// SetTitle sets the "title" field.
func (_u *TicketUpdateOne) SetTitle(v string) *TicketUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableTitle(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdateOne) SetDescription(v string) *TicketUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableDescription(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *TicketUpdateOne) SetPhase(v string) *TicketUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillablePhase(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// ClearPhase clears the value of the "phase" field.
func (_u *TicketUpdateOne) ClearPhase() *TicketUpdateOne {
	_u.mutation.ClearPhase()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketUpdateOne) SetStatus(v ticket.Status) *TicketUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableStatus(v *ticket.Status) *TicketUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApprovalStatus sets the "approval_status" field.
func (_u *TicketUpdateOne) SetApprovalStatus(v ticket.ApprovalStatus) *TicketUpdateOne {
	_u.mutation.SetApprovalStatus(v)
	return _u
}

// SetNillableApprovalStatus sets the "approval_status" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableApprovalStatus(v *ticket.ApprovalStatus) *TicketUpdateOne {
	if v != nil {
		_u.SetApprovalStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TicketUpdateOne) SetPriority(v int) *TicketUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillablePriority(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TicketUpdateOne) AddPriority(v int) *TicketUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *TicketUpdateOne) SetDeadline(v time.Time) *TicketUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableDeadline(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *TicketUpdateOne) ClearDeadline() *TicketUpdateOne {
	_u.mutation.ClearDeadline()
	return _u
}

// SetIsBlocked sets the "is_blocked" field.
func (_u *TicketUpdateOne) SetIsBlocked(v bool) *TicketUpdateOne {
	_u.mutation.SetIsBlocked(v)
	return _u
}

// SetNillableIsBlocked sets the "is_blocked" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableIsBlocked(v *bool) *TicketUpdateOne {
	if v != nil {
		_u.SetIsBlocked(*v)
	}
	return _u
}

// SetBlockedReason sets the "blocked_reason" field.
func (_u *TicketUpdateOne) SetBlockedReason(v string) *TicketUpdateOne {
	_u.mutation.SetBlockedReason(v)
	return _u
}

// SetNillableBlockedReason sets the "blocked_reason" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableBlockedReason(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetBlockedReason(*v)
	}
	return _u
}

// ClearBlockedReason clears the value of the "blocked_reason" field.
func (_u *TicketUpdateOne) ClearBlockedReason() *TicketUpdateOne {
	_u.mutation.ClearBlockedReason()
	return _u
}

// SetOwner sets the "owner" field.
func (_u *TicketUpdateOne) SetOwner(v string) *TicketUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableOwner(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *TicketUpdateOne) ClearOwner() *TicketUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TicketUpdateOne) SetProjectID(v string) *TicketUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableProjectID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *TicketUpdateOne) ClearProjectID() *TicketUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetBlockedBy sets the "blocked_by" field.
func (_u *TicketUpdateOne) SetBlockedBy(v []string) *TicketUpdateOne {
	_u.mutation.SetBlockedBy(v)
	return _u
}

// AppendBlockedBy appends value to the "blocked_by" field.
func (_u *TicketUpdateOne) AppendBlockedBy(v []string) *TicketUpdateOne {
	_u.mutation.AppendBlockedBy(v)
	return _u
}

// ClearBlockedBy clears the value of the "blocked_by" field.
func (_u *TicketUpdateOne) ClearBlockedBy() *TicketUpdateOne {
	_u.mutation.ClearBlockedBy()
	return _u
}

// SetBlocks sets the "blocks" field.
func (_u *TicketUpdateOne) SetBlocks(v []string) *TicketUpdateOne {
	_u.mutation.SetBlocks(v)
	return _u
}

// AppendBlocks appends value to the "blocks" field.
func (_u *TicketUpdateOne) AppendBlocks(v []string) *TicketUpdateOne {
	_u.mutation.AppendBlocks(v)
	return _u
}

// ClearBlocks clears the value of the "blocks" field.
func (_u *TicketUpdateOne) ClearBlocks() *TicketUpdateOne {
	_u.mutation.ClearBlocks()
	return _u
}

// SetSpecID sets the "spec_id" field.
func (_u *TicketUpdateOne) SetSpecID(v string) *TicketUpdateOne {
	_u.mutation.SetSpecID(v)
	return _u
}

// SetNillableSpecID sets the "spec_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableSpecID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetSpecID(*v)
	}
	return _u
}

// ClearSpecID clears the value of the "spec_id" field.
func (_u *TicketUpdateOne) ClearSpecID() *TicketUpdateOne {
	_u.mutation.ClearSpecID()
	return _u
}

// SetVersion sets the "version" field.
func (_u *TicketUpdateOne) SetVersion(v int) *TicketUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableVersion(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TicketUpdateOne) AddVersion(v int) *TicketUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdateOne) SetUpdatedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *TicketUpdateOne) AddTaskIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *TicketUpdateOne) AddTasks(v ...*Task) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdateOne) Mutation() *TicketMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *TicketUpdateOne) ClearTasks() *TicketUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *TicketUpdateOne) RemoveTaskIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *TicketUpdateOne) RemoveTasks(v ...*Task) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdateOne) Where(ps ...predicate.Ticket) *TicketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketUpdateOne) Select(field string, fields ...string) *TicketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Ticket entity.
func (_u *TicketUpdateOne) Save(ctx context.Context) (*Ticket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdateOne) SaveX(ctx context.Context) *Ticket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovalStatus(); ok {
		if err := ticket.ApprovalStatusValidator(v); err != nil {
			return &ValidationError{Name: "approval_status", err: fmt.Errorf(`ent: validator failed for field "Ticket.approval_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketUpdateOne) sqlSave(ctx context.Context) (_node *Ticket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Ticket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticket.FieldID)
		for _, f := range fields {
			if !ticket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticket.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(ticket.FieldPhase, field.TypeString, value)
	}
	if _u.mutation.PhaseCleared() {
		_spec.ClearField(ticket.FieldPhase, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovalStatus(); ok {
		_spec.SetField(ticket.FieldApprovalStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(ticket.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(ticket.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(ticket.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.IsBlocked(); ok {
		_spec.SetField(ticket.FieldIsBlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BlockedReason(); ok {
		_spec.SetField(ticket.FieldBlockedReason, field.TypeString, value)
	}
	if _u.mutation.BlockedReasonCleared() {
		_spec.ClearField(ticket.FieldBlockedReason, field.TypeString)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(ticket.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(ticket.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(ticket.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(ticket.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.BlockedBy(); ok {
		_spec.SetField(ticket.FieldBlockedBy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlockedBy(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldBlockedBy, value)
		})
	}
	if _u.mutation.BlockedByCleared() {
		_spec.ClearField(ticket.FieldBlockedBy, field.TypeJSON)
	}
	if value, ok := _u.mutation.Blocks(); ok {
		_spec.SetField(ticket.FieldBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldBlocks, value)
		})
	}
	if _u.mutation.BlocksCleared() {
		_spec.ClearField(ticket.FieldBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpecID(); ok {
		_spec.SetField(ticket.FieldSpecID, field.TypeString, value)
	}
	if _u.mutation.SpecIDCleared() {
		_spec.ClearField(ticket.FieldSpecID, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(ticket.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(ticket.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.TasksTable,
			Columns: []string{ticket.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.TasksTable,
			Columns: []string{ticket.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.TasksTable,
			Columns: []string{ticket.TasksColumn},
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
	_node = &Ticket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
