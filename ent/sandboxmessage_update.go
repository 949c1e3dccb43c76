// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/helmsman-ai/helmsman/ent/predicate"
	"github.com/helmsman-ai/helmsman/ent/sandboxmessage"
)

// SandboxMessageUpdate is the builder for updating SandboxMessage entities.
type SandboxMessageUpdate struct {
	config
	hooks    []Hook
	mutation *SandboxMessageMutation
}

// Where appends a list predicates to the SandboxMessageUpdate builder.
func (_u *SandboxMessageUpdate) Where(ps ...predicate.SandboxMessage) *SandboxMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSandboxID sets the "sandbox_id" field.
func (_u *SandboxMessageUpdate) SetSandboxID(v string) *SandboxMessageUpdate {
	_u.mutation.SetSandboxID(v)
	return _u
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_u *SandboxMessageUpdate) SetNillableSandboxID(v *string) *SandboxMessageUpdate {
	if v != nil {
		_u.SetSandboxID(*v)
	}
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *SandboxMessageUpdate) SetMessageType(v sandboxmessage.MessageType) *SandboxMessageUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *SandboxMessageUpdate) SetNillableMessageType(v *sandboxmessage.MessageType) *SandboxMessageUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *SandboxMessageUpdate) SetContent(v string) *SandboxMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SandboxMessageUpdate) SetNillableContent(v *string) *SandboxMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *SandboxMessageUpdate) ClearContent() *SandboxMessageUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetCancel sets the "cancel" field.
func (_u *SandboxMessageUpdate) SetCancel(v bool) *SandboxMessageUpdate {
	_u.mutation.SetCancel(v)
	return _u
}

// SetNillableCancel sets the "cancel" field if the given value is not nil.
func (_u *SandboxMessageUpdate) SetNillableCancel(v *bool) *SandboxMessageUpdate {
	if v != nil {
		_u.SetCancel(*v)
	}
	return _u
}

// SetAcked sets the "acked" field.
func (_u *SandboxMessageUpdate) SetAcked(v bool) *SandboxMessageUpdate {
	_u.mutation.SetAcked(v)
	return _u
}

// SetNillableAcked sets the "acked" field if the given value is not nil.
func (_u *SandboxMessageUpdate) SetNillableAcked(v *bool) *SandboxMessageUpdate {
	if v != nil {
		_u.SetAcked(*v)
	}
	return _u
}

// Mutation returns the SandboxMessageMutation object of the builder.
func (_u *SandboxMessageUpdate) Mutation() *SandboxMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SandboxMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SandboxMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SandboxMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SandboxMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SandboxMessageUpdate) check() error {
	if v, ok := _u.mutation.MessageType(); ok {
		if err := sandboxmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "SandboxMessage.message_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SandboxMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sandboxmessage.Table, sandboxmessage.Columns, sqlgraph.NewFieldSpec(sandboxmessage.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SandboxID(); ok {
		_spec.SetField(sandboxmessage.FieldSandboxID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(sandboxmessage.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(sandboxmessage.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(sandboxmessage.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Cancel(); ok {
		_spec.SetField(sandboxmessage.FieldCancel, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Acked(); ok {
		_spec.SetField(sandboxmessage.FieldAcked, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SandboxMessageUpdateOne is the builder for updating a single SandboxMessage entity.
type SandboxMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SandboxMessageMutation
}

// SetSandboxID sets the "sandbox_id" field.
func (_u *SandboxMessageUpdateOne) SetSandboxID(v string) *SandboxMessageUpdateOne {
	_u.mutation.SetSandboxID(v)
	return _u
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_u *SandboxMessageUpdateOne) SetNillableSandboxID(v *string) *SandboxMessageUpdateOne {
	if v != nil {
		_u.SetSandboxID(*v)
	}
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *SandboxMessageUpdateOne) SetMessageType(v sandboxmessage.MessageType) *SandboxMessageUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *SandboxMessageUpdateOne) SetNillableMessageType(v *sandboxmessage.MessageType) *SandboxMessageUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *SandboxMessageUpdateOne) SetContent(v string) *SandboxMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SandboxMessageUpdateOne) SetNillableContent(v *string) *SandboxMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *SandboxMessageUpdateOne) ClearContent() *SandboxMessageUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetCancel sets the "cancel" field.
func (_u *SandboxMessageUpdateOne) SetCancel(v bool) *SandboxMessageUpdateOne {
	_u.mutation.SetCancel(v)
	return _u
}

// SetNillableCancel sets the "cancel" field if the given value is not nil.
func (_u *SandboxMessageUpdateOne) SetNillableCancel(v *bool) *SandboxMessageUpdateOne {
	if v != nil {
		_u.SetCancel(*v)
	}
	return _u
}

// SetAcked sets the "acked" field.
func (_u *SandboxMessageUpdateOne) SetAcked(v bool) *SandboxMessageUpdateOne {
	_u.mutation.SetAcked(v)
	return _u
}

// SetNillableAcked sets the "acked" field if the given value is not nil.
func (_u *SandboxMessageUpdateOne) SetNillableAcked(v *bool) *SandboxMessageUpdateOne {
	if v != nil {
		_u.SetAcked(*v)
	}
	return _u
}

// Mutation returns the SandboxMessageMutation object of the builder.
func (_u *SandboxMessageUpdateOne) Mutation() *SandboxMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the SandboxMessageUpdate builder.
func (_u *SandboxMessageUpdateOne) Where(ps ...predicate.SandboxMessage) *SandboxMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SandboxMessageUpdateOne) Select(field string, fields ...string) *SandboxMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SandboxMessage entity.
func (_u *SandboxMessageUpdateOne) Save(ctx context.Context) (*SandboxMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SandboxMessageUpdateOne) SaveX(ctx context.Context) *SandboxMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SandboxMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SandboxMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SandboxMessageUpdateOne) check() error {
	if v, ok := _u.mutation.MessageType(); ok {
		if err := sandboxmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "SandboxMessage.message_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SandboxMessageUpdateOne) sqlSave(ctx context.Context) (_node *SandboxMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sandboxmessage.Table, sandboxmessage.Columns, sqlgraph.NewFieldSpec(sandboxmessage.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SandboxMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sandboxmessage.FieldID)
		for _, f := range fields {
			if !sandboxmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sandboxmessage.FieldID {
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
	if value, ok := _u.mutation.SandboxID(); ok {
		_spec.SetField(sandboxmessage.FieldSandboxID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(sandboxmessage.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(sandboxmessage.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(sandboxmessage.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Cancel(); ok {
		_spec.SetField(sandboxmessage.FieldCancel, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Acked(); ok {
		_spec.SetField(sandboxmessage.FieldAcked, field.TypeBool, value)
	}
	_node = &SandboxMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
