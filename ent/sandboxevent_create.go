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
	"github.com/helmsman-ai/helmsman/ent/sandboxevent"
)

// SandboxEventCreate is the builder for creating a SandboxEvent entity.
type SandboxEventCreate struct {
	config
	mutation *SandboxEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventKey sets the "event_key" field.
func (_c *SandboxEventCreate) SetEventKey(v string) *SandboxEventCreate {
	_c.mutation.SetEventKey(v)
	return _c
}

// SetSandboxID sets the "sandbox_id" field.
func (_c *SandboxEventCreate) SetSandboxID(v string) *SandboxEventCreate {
	_c.mutation.SetSandboxID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *SandboxEventCreate) SetEventType(v string) *SandboxEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetEventData sets the "event_data" field.
func (_c *SandboxEventCreate) SetEventData(v map[string]interface{}) *SandboxEventCreate {
	_c.mutation.SetEventData(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *SandboxEventCreate) SetSource(v sandboxevent.Source) *SandboxEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *SandboxEventCreate) SetNillableSource(v *sandboxevent.Source) *SandboxEventCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *SandboxEventCreate) SetEntityType(v string) *SandboxEventCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_c *SandboxEventCreate) SetNillableEntityType(v *string) *SandboxEventCreate {
	if v != nil {
		_c.SetEntityType(*v)
	}
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *SandboxEventCreate) SetEntityID(v string) *SandboxEventCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_c *SandboxEventCreate) SetNillableEntityID(v *string) *SandboxEventCreate {
	if v != nil {
		_c.SetEntityID(*v)
	}
	return _c
}

// SetSpecID sets the "spec_id" field.
func (_c *SandboxEventCreate) SetSpecID(v string) *SandboxEventCreate {
	_c.mutation.SetSpecID(v)
	return _c
}

// SetNillableSpecID sets the "spec_id" field if the given value is not nil.
func (_c *SandboxEventCreate) SetNillableSpecID(v *string) *SandboxEventCreate {
	if v != nil {
		_c.SetSpecID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SandboxEventCreate) SetCreatedAt(v time.Time) *SandboxEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SandboxEventCreate) SetNillableCreatedAt(v *time.Time) *SandboxEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SandboxEventCreate) SetID(v int64) *SandboxEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SandboxEventMutation object of the builder.
func (_c *SandboxEventCreate) Mutation() *SandboxEventMutation {
	return _c.mutation
}

// Save creates the SandboxEvent in the database.
func (_c *SandboxEventCreate) Save(ctx context.Context) (*SandboxEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SandboxEventCreate) SaveX(ctx context.Context) *SandboxEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SandboxEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SandboxEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SandboxEventCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := sandboxevent.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sandboxevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SandboxEventCreate) check() error {
	if _, ok := _c.mutation.EventKey(); !ok {
		return &ValidationError{Name: "event_key", err: errors.New(`ent: missing required field "SandboxEvent.event_key"`)}
	}
	if _, ok := _c.mutation.SandboxID(); !ok {
		return &ValidationError{Name: "sandbox_id", err: errors.New(`ent: missing required field "SandboxEvent.sandbox_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "SandboxEvent.event_type"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "SandboxEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := sandboxevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SandboxEvent.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SandboxEvent.created_at"`)}
	}
	return nil
}

func (_c *SandboxEventCreate) sqlSave(ctx context.Context) (*SandboxEvent, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SandboxEventCreate) createSpec() (*SandboxEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SandboxEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sandboxevent.Table, sqlgraph.NewFieldSpec(sandboxevent.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventKey(); ok {
		_spec.SetField(sandboxevent.FieldEventKey, field.TypeString, value)
		_node.EventKey = value
	}
	if value, ok := _c.mutation.SandboxID(); ok {
		_spec.SetField(sandboxevent.FieldSandboxID, field.TypeString, value)
		_node.SandboxID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(sandboxevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.EventData(); ok {
		_spec.SetField(sandboxevent.FieldEventData, field.TypeJSON, value)
		_node.EventData = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(sandboxevent.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(sandboxevent.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(sandboxevent.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.SpecID(); ok {
		_spec.SetField(sandboxevent.FieldSpecID, field.TypeString, value)
		_node.SpecID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sandboxevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SandboxEvent.Create().
//		SetEventKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SandboxEventUpsert) {
//			SetEventKey(v+v).
//		}).
//		Exec(ctx)
func (_c *SandboxEventCreate) OnConflict(opts ...sql.ConflictOption) *SandboxEventUpsertOne {
	_c.conflict = opts
	return &SandboxEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SandboxEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SandboxEventCreate) OnConflictColumns(columns ...string) *SandboxEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SandboxEventUpsertOne{
		create: _c,
	}
}

type (
	// SandboxEventUpsertOne is the builder for "upsert"-ing
	//  one SandboxEvent node.
	SandboxEventUpsertOne struct {
		create *SandboxEventCreate
	}

	// SandboxEventUpsert is the "OnConflict" setter.
	SandboxEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSandboxID sets the "sandbox_id" field.
func (u *SandboxEventUpsert) SetSandboxID(v string) *SandboxEventUpsert {
	u.Set(sandboxevent.FieldSandboxID, v)
	return u
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *SandboxEventUpsert) UpdateSandboxID() *SandboxEventUpsert {
	u.SetExcluded(sandboxevent.FieldSandboxID)
	return u
}

// SetEventType sets the "event_type" field.
func (u *SandboxEventUpsert) SetEventType(v string) *SandboxEventUpsert {
	u.Set(sandboxevent.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *SandboxEventUpsert) UpdateEventType() *SandboxEventUpsert {
	u.SetExcluded(sandboxevent.FieldEventType)
	return u
}

// SetEventData sets the "event_data" field.
func (u *SandboxEventUpsert) SetEventData(v map[string]interface{}) *SandboxEventUpsert {
	u.Set(sandboxevent.FieldEventData, v)
	return u
}

// UpdateEventData sets the "event_data" field to the value that was provided on create.
func (u *SandboxEventUpsert) UpdateEventData() *SandboxEventUpsert {
	u.SetExcluded(sandboxevent.FieldEventData)
	return u
}

// ClearEventData clears the value of the "event_data" field.
func (u *SandboxEventUpsert) ClearEventData() *SandboxEventUpsert {
	u.SetNull(sandboxevent.FieldEventData)
	return u
}

// SetSource sets the "source" field.
func (u *SandboxEventUpsert) SetSource(v sandboxevent.Source) *SandboxEventUpsert {
	u.Set(sandboxevent.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *SandboxEventUpsert) UpdateSource() *SandboxEventUpsert {
	u.SetExcluded(sandboxevent.FieldSource)
	return u
}

// SetEntityType sets the "entity_type" field.
func (u *SandboxEventUpsert) SetEntityType(v string) *SandboxEventUpsert {
	u.Set(sandboxevent.FieldEntityType, v)
	return u
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *SandboxEventUpsert) UpdateEntityType() *SandboxEventUpsert {
	u.SetExcluded(sandboxevent.FieldEntityType)
	return u
}

// ClearEntityType clears the value of the "entity_type" field.
func (u *SandboxEventUpsert) ClearEntityType() *SandboxEventUpsert {
	u.SetNull(sandboxevent.FieldEntityType)
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *SandboxEventUpsert) SetEntityID(v string) *SandboxEventUpsert {
	u.Set(sandboxevent.FieldEntityID, v)
	return u
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *SandboxEventUpsert) UpdateEntityID() *SandboxEventUpsert {
	u.SetExcluded(sandboxevent.FieldEntityID)
	return u
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *SandboxEventUpsert) ClearEntityID() *SandboxEventUpsert {
	u.SetNull(sandboxevent.FieldEntityID)
	return u
}

// SetSpecID sets the "spec_id" field.
func (u *SandboxEventUpsert) SetSpecID(v string) *SandboxEventUpsert {
	u.Set(sandboxevent.FieldSpecID, v)
	return u
}

// UpdateSpecID sets the "spec_id" field to the value that was provided on create.
func (u *SandboxEventUpsert) UpdateSpecID() *SandboxEventUpsert {
	u.SetExcluded(sandboxevent.FieldSpecID)
	return u
}

// ClearSpecID clears the value of the "spec_id" field.
func (u *SandboxEventUpsert) ClearSpecID() *SandboxEventUpsert {
	u.SetNull(sandboxevent.FieldSpecID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SandboxEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sandboxevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SandboxEventUpsertOne) UpdateNewValues() *SandboxEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sandboxevent.FieldID)
		}
		if _, exists := u.create.mutation.EventKey(); exists {
			s.SetIgnore(sandboxevent.FieldEventKey)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sandboxevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SandboxEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SandboxEventUpsertOne) Ignore() *SandboxEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SandboxEventUpsertOne) DoNothing() *SandboxEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SandboxEventCreate.OnConflict
// documentation for more info.
func (u *SandboxEventUpsertOne) Update(set func(*SandboxEventUpsert)) *SandboxEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SandboxEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSandboxID sets the "sandbox_id" field.
func (u *SandboxEventUpsertOne) SetSandboxID(v string) *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.SetSandboxID(v)
	})
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *SandboxEventUpsertOne) UpdateSandboxID() *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.UpdateSandboxID()
	})
}

// SetEventType sets the "event_type" field.
func (u *SandboxEventUpsertOne) SetEventType(v string) *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *SandboxEventUpsertOne) UpdateEventType() *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.UpdateEventType()
	})
}

// SetEventData sets the "event_data" field.
func (u *SandboxEventUpsertOne) SetEventData(v map[string]interface{}) *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.SetEventData(v)
	})
}

// UpdateEventData sets the "event_data" field to the value that was provided on create.
func (u *SandboxEventUpsertOne) UpdateEventData() *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.UpdateEventData()
	})
}

// ClearEventData clears the value of the "event_data" field.
func (u *SandboxEventUpsertOne) ClearEventData() *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.ClearEventData()
	})
}

// SetSource sets the "source" field.
func (u *SandboxEventUpsertOne) SetSource(v sandboxevent.Source) *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *SandboxEventUpsertOne) UpdateSource() *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.UpdateSource()
	})
}

// SetEntityType sets the "entity_type" field.
func (u *SandboxEventUpsertOne) SetEntityType(v string) *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *SandboxEventUpsertOne) UpdateEntityType() *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.UpdateEntityType()
	})
}

// ClearEntityType clears the value of the "entity_type" field.
func (u *SandboxEventUpsertOne) ClearEntityType() *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.ClearEntityType()
	})
}

// SetEntityID sets the "entity_id" field.
func (u *SandboxEventUpsertOne) SetEntityID(v string) *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *SandboxEventUpsertOne) UpdateEntityID() *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.UpdateEntityID()
	})
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *SandboxEventUpsertOne) ClearEntityID() *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.ClearEntityID()
	})
}

// SetSpecID sets the "spec_id" field.
func (u *SandboxEventUpsertOne) SetSpecID(v string) *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.SetSpecID(v)
	})
}

// UpdateSpecID sets the "spec_id" field to the value that was provided on create.
func (u *SandboxEventUpsertOne) UpdateSpecID() *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.UpdateSpecID()
	})
}

// ClearSpecID clears the value of the "spec_id" field.
func (u *SandboxEventUpsertOne) ClearSpecID() *SandboxEventUpsertOne {
	return u.Update(func(s *SandboxEventUpsert) {
		s.ClearSpecID()
	})
}

// Exec executes the query.
func (u *SandboxEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SandboxEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SandboxEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SandboxEventUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SandboxEventUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SandboxEventCreateBulk is the builder for creating many SandboxEvent entities in bulk.
type SandboxEventCreateBulk struct {
	config
	err      error
	builders []*SandboxEventCreate
	conflict []sql.ConflictOption
}

// Save creates the SandboxEvent entities in the database.
func (_c *SandboxEventCreateBulk) Save(ctx context.Context) ([]*SandboxEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SandboxEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SandboxEventMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
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
func (_c *SandboxEventCreateBulk) SaveX(ctx context.Context) []*SandboxEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SandboxEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SandboxEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SandboxEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SandboxEventUpsert) {
//			SetEventKey(v+v).
//		}).
//		Exec(ctx)
func (_c *SandboxEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *SandboxEventUpsertBulk {
	_c.conflict = opts
	return &SandboxEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SandboxEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SandboxEventCreateBulk) OnConflictColumns(columns ...string) *SandboxEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SandboxEventUpsertBulk{
		create: _c,
	}
}

// SandboxEventUpsertBulk is the builder for "upsert"-ing
// a bulk of SandboxEvent nodes.
type SandboxEventUpsertBulk struct {
	create *SandboxEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SandboxEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sandboxevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SandboxEventUpsertBulk) UpdateNewValues() *SandboxEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sandboxevent.FieldID)
			}
			if _, exists := b.mutation.EventKey(); exists {
				s.SetIgnore(sandboxevent.FieldEventKey)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sandboxevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SandboxEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SandboxEventUpsertBulk) Ignore() *SandboxEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SandboxEventUpsertBulk) DoNothing() *SandboxEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SandboxEventCreateBulk.OnConflict
// documentation for more info.
func (u *SandboxEventUpsertBulk) Update(set func(*SandboxEventUpsert)) *SandboxEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SandboxEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSandboxID sets the "sandbox_id" field.
func (u *SandboxEventUpsertBulk) SetSandboxID(v string) *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.SetSandboxID(v)
	})
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *SandboxEventUpsertBulk) UpdateSandboxID() *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.UpdateSandboxID()
	})
}

// SetEventType sets the "event_type" field.
func (u *SandboxEventUpsertBulk) SetEventType(v string) *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *SandboxEventUpsertBulk) UpdateEventType() *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.UpdateEventType()
	})
}

// SetEventData sets the "event_data" field.
func (u *SandboxEventUpsertBulk) SetEventData(v map[string]interface{}) *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.SetEventData(v)
	})
}

// UpdateEventData sets the "event_data" field to the value that was provided on create.
func (u *SandboxEventUpsertBulk) UpdateEventData() *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.UpdateEventData()
	})
}

// ClearEventData clears the value of the "event_data" field.
func (u *SandboxEventUpsertBulk) ClearEventData() *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.ClearEventData()
	})
}

// SetSource sets the "source" field.
func (u *SandboxEventUpsertBulk) SetSource(v sandboxevent.Source) *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *SandboxEventUpsertBulk) UpdateSource() *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.UpdateSource()
	})
}

// SetEntityType sets the "entity_type" field.
func (u *SandboxEventUpsertBulk) SetEntityType(v string) *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *SandboxEventUpsertBulk) UpdateEntityType() *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.UpdateEntityType()
	})
}

// ClearEntityType clears the value of the "entity_type" field.
func (u *SandboxEventUpsertBulk) ClearEntityType() *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.ClearEntityType()
	})
}

// SetEntityID sets the "entity_id" field.
func (u *SandboxEventUpsertBulk) SetEntityID(v string) *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *SandboxEventUpsertBulk) UpdateEntityID() *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.UpdateEntityID()
	})
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *SandboxEventUpsertBulk) ClearEntityID() *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.ClearEntityID()
	})
}

// SetSpecID sets the "spec_id" field.
func (u *SandboxEventUpsertBulk) SetSpecID(v string) *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.SetSpecID(v)
	})
}

// UpdateSpecID sets the "spec_id" field to the value that was provided on create.
func (u *SandboxEventUpsertBulk) UpdateSpecID() *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.UpdateSpecID()
	})
}

// ClearSpecID clears the value of the "spec_id" field.
func (u *SandboxEventUpsertBulk) ClearSpecID() *SandboxEventUpsertBulk {
	return u.Update(func(s *SandboxEventUpsert) {
		s.ClearSpecID()
	})
}

// Exec executes the query.
func (u *SandboxEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SandboxEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SandboxEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SandboxEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
