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
	"github.com/helmsman-ai/helmsman/ent/sandboxevent"
)

// SandboxEventUpdate is the builder for updating SandboxEvent entities.
type SandboxEventUpdate struct {
	config
	hooks    []Hook
	mutation *SandboxEventMutation
}

// Where appends a list predicates to the SandboxEventUpdate builder.
func (_u *SandboxEventUpdate) Where(ps ...predicate.SandboxEvent) *SandboxEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSandboxID sets the "sandbox_id" field.
func (_u *SandboxEventUpdate) SetSandboxID(v string) *SandboxEventUpdate {
	_u.mutation.SetSandboxID(v)
	return _u
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableSandboxID(v *string) *SandboxEventUpdate {
	if v != nil {
		_u.SetSandboxID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *SandboxEventUpdate) SetEventType(v string) *SandboxEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableEventType(v *string) *SandboxEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetEventData sets the "event_data" field.
func (_u *SandboxEventUpdate) SetEventData(v map[string]interface{}) *SandboxEventUpdate {
	_u.mutation.SetEventData(v)
	return _u
}

// ClearEventData clears the value of the "event_data" field.
func (_u *SandboxEventUpdate) ClearEventData() *SandboxEventUpdate {
	_u.mutation.ClearEventData()
	return _u
}

// SetSource sets the "source" field.
func (_u *SandboxEventUpdate) SetSource(v sandboxevent.Source) *SandboxEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableSource(v *sandboxevent.Source) *SandboxEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *SandboxEventUpdate) SetEntityType(v string) *SandboxEventUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableEntityType(v *string) *SandboxEventUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// ClearEntityType clears the value of the "entity_type" field.
func (_u *SandboxEventUpdate) ClearEntityType() *SandboxEventUpdate {
	_u.mutation.ClearEntityType()
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *SandboxEventUpdate) SetEntityID(v string) *SandboxEventUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableEntityID(v *string) *SandboxEventUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// ClearEntityID clears the value of the "entity_id" field.
func (_u *SandboxEventUpdate) ClearEntityID() *SandboxEventUpdate {
	_u.mutation.ClearEntityID()
	return _u
}

// SetSpecID sets the "spec_id" field.
func (_u *SandboxEventUpdate) SetSpecID(v string) *SandboxEventUpdate {
	_u.mutation.SetSpecID(v)
	return _u
}

// SetNillableSpecID sets the "spec_id" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableSpecID(v *string) *SandboxEventUpdate {
	if v != nil {
		_u.SetSpecID(*v)
	}
	return _u
}

// ClearSpecID clears the value of the "spec_id" field.
func (_u *SandboxEventUpdate) ClearSpecID() *SandboxEventUpdate {
	_u.mutation.ClearSpecID()
	return _u
}

// Mutation returns the SandboxEventMutation object of the builder.
func (_u *SandboxEventUpdate) Mutation() *SandboxEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SandboxEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SandboxEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SandboxEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SandboxEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SandboxEventUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := sandboxevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SandboxEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *SandboxEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sandboxevent.Table, sandboxevent.Columns, sqlgraph.NewFieldSpec(sandboxevent.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SandboxID(); ok {
		_spec.SetField(sandboxevent.FieldSandboxID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(sandboxevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventData(); ok {
		_spec.SetField(sandboxevent.FieldEventData, field.TypeJSON, value)
	}
	if _u.mutation.EventDataCleared() {
		_spec.ClearField(sandboxevent.FieldEventData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(sandboxevent.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(sandboxevent.FieldEntityType, field.TypeString, value)
	}
	if _u.mutation.EntityTypeCleared() {
		_spec.ClearField(sandboxevent.FieldEntityType, field.TypeString)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(sandboxevent.FieldEntityID, field.TypeString, value)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(sandboxevent.FieldEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.SpecID(); ok {
		_spec.SetField(sandboxevent.FieldSpecID, field.TypeString, value)
	}
	if _u.mutation.SpecIDCleared() {
		_spec.ClearField(sandboxevent.FieldSpecID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SandboxEventUpdateOne is the builder for updating a single SandboxEvent entity.
type SandboxEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SandboxEventMutation
}

// SetSandboxID sets the "sandbox_id" field.
func (_u *SandboxEventUpdateOne) SetSandboxID(v string) *SandboxEventUpdateOne {
	_u.mutation.SetSandboxID(v)
	return _u
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableSandboxID(v *string) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetSandboxID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *SandboxEventUpdateOne) SetEventType(v string) *SandboxEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableEventType(v *string) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetEventData sets the "event_data" field.
func (_u *SandboxEventUpdateOne) SetEventData(v map[string]interface{}) *SandboxEventUpdateOne {
	_u.mutation.SetEventData(v)
	return _u
}

// ClearEventData clears the value of the "event_data" field.
func (_u *SandboxEventUpdateOne) ClearEventData() *SandboxEventUpdateOne {
	_u.mutation.ClearEventData()
	return _u
}

// SetSource sets the "source" field.
func (_u *SandboxEventUpdateOne) SetSource(v sandboxevent.Source) *SandboxEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableSource(v *sandboxevent.Source) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *SandboxEventUpdateOne) SetEntityType(v string) *SandboxEventUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableEntityType(v *string) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// ClearEntityType clears the value of the "entity_type" field.
func (_u *SandboxEventUpdateOne) ClearEntityType() *SandboxEventUpdateOne {
	_u.mutation.ClearEntityType()
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *SandboxEventUpdateOne) SetEntityID(v string) *SandboxEventUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableEntityID(v *string) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// ClearEntityID clears the value of the "entity_id" field.
func (_u *SandboxEventUpdateOne) ClearEntityID() *SandboxEventUpdateOne {
	_u.mutation.ClearEntityID()
	return _u
}

// SetSpecID sets the "spec_id" field.
func (_u *SandboxEventUpdateOne) SetSpecID(v string) *SandboxEventUpdateOne {
	_u.mutation.SetSpecID(v)
	return _u
}

// SetNillableSpecID sets the "spec_id" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableSpecID(v *string) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetSpecID(*v)
	}
	return _u
}

// ClearSpecID clears the value of the "spec_id" field.
func (_u *SandboxEventUpdateOne) ClearSpecID() *SandboxEventUpdateOne {
	_u.mutation.ClearSpecID()
	return _u
}

// Mutation returns the SandboxEventMutation object of the builder.
func (_u *SandboxEventUpdateOne) Mutation() *SandboxEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SandboxEventUpdate builder.
func (_u *SandboxEventUpdateOne) Where(ps ...predicate.SandboxEvent) *SandboxEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SandboxEventUpdateOne) Select(field string, fields ...string) *SandboxEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SandboxEvent entity.
func (_u *SandboxEventUpdateOne) Save(ctx context.Context) (*SandboxEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SandboxEventUpdateOne) SaveX(ctx context.Context) *SandboxEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SandboxEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SandboxEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SandboxEventUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := sandboxevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SandboxEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *SandboxEventUpdateOne) sqlSave(ctx context.Context) (_node *SandboxEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sandboxevent.Table, sandboxevent.Columns, sqlgraph.NewFieldSpec(sandboxevent.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SandboxEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sandboxevent.FieldID)
		for _, f := range fields {
			if !sandboxevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sandboxevent.FieldID {
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
		_spec.SetField(sandboxevent.FieldSandboxID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(sandboxevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventData(); ok {
		_spec.SetField(sandboxevent.FieldEventData, field.TypeJSON, value)
	}
	if _u.mutation.EventDataCleared() {
		_spec.ClearField(sandboxevent.FieldEventData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(sandboxevent.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(sandboxevent.FieldEntityType, field.TypeString, value)
	}
	if _u.mutation.EntityTypeCleared() {
		_spec.ClearField(sandboxevent.FieldEntityType, field.TypeString)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(sandboxevent.FieldEntityID, field.TypeString, value)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(sandboxevent.FieldEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.SpecID(); ok {
		_spec.SetField(sandboxevent.FieldSpecID, field.TypeString, value)
	}
	if _u.mutation.SpecIDCleared() {
		_spec.ClearField(sandboxevent.FieldSpecID, field.TypeString)
	}
	_node = &SandboxEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
