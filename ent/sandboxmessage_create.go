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
	"github.com/helmsman-ai/helmsman/ent/sandboxmessage"
)

// SandboxMessageCreate is the builder for creating a SandboxMessage entity.
type SandboxMessageCreate struct {
	config
	mutation *SandboxMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSandboxID sets the "sandbox_id" field.
func (_c *SandboxMessageCreate) SetSandboxID(v string) *SandboxMessageCreate {
	_c.mutation.SetSandboxID(v)
	return _c
}

// SetMessageType sets the "message_type" field.
func (_c *SandboxMessageCreate) SetMessageType(v sandboxmessage.MessageType) *SandboxMessageCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *SandboxMessageCreate) SetContent(v string) *SandboxMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *SandboxMessageCreate) SetNillableContent(v *string) *SandboxMessageCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetCancel sets the "cancel" field.
func (_c *SandboxMessageCreate) SetCancel(v bool) *SandboxMessageCreate {
	_c.mutation.SetCancel(v)
	return _c
}

// SetNillableCancel sets the "cancel" field if the given value is not nil.
func (_c *SandboxMessageCreate) SetNillableCancel(v *bool) *SandboxMessageCreate {
	if v != nil {
		_c.SetCancel(*v)
	}
	return _c
}

// SetAcked sets the "acked" field.
func (_c *SandboxMessageCreate) SetAcked(v bool) *SandboxMessageCreate {
	_c.mutation.SetAcked(v)
	return _c
}

// SetNillableAcked sets the "acked" field if the given value is not nil.
func (_c *SandboxMessageCreate) SetNillableAcked(v *bool) *SandboxMessageCreate {
	if v != nil {
		_c.SetAcked(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SandboxMessageCreate) SetCreatedAt(v time.Time) *SandboxMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SandboxMessageCreate) SetNillableCreatedAt(v *time.Time) *SandboxMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SandboxMessageCreate) SetID(v int64) *SandboxMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SandboxMessageMutation object of the builder.
func (_c *SandboxMessageCreate) Mutation() *SandboxMessageMutation {
	return _c.mutation
}

// Save creates the SandboxMessage in the database.
func (_c *SandboxMessageCreate) Save(ctx context.Context) (*SandboxMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SandboxMessageCreate) SaveX(ctx context.Context) *SandboxMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SandboxMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SandboxMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SandboxMessageCreate) defaults() {
	if _, ok := _c.mutation.Cancel(); !ok {
		v := sandboxmessage.DefaultCancel
		_c.mutation.SetCancel(v)
	}
	if _, ok := _c.mutation.Acked(); !ok {
		v := sandboxmessage.DefaultAcked
		_c.mutation.SetAcked(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sandboxmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SandboxMessageCreate) check() error {
	if _, ok := _c.mutation.SandboxID(); !ok {
		return &ValidationError{Name: "sandbox_id", err: errors.New(`ent: missing required field "SandboxMessage.sandbox_id"`)}
	}
	if _, ok := _c.mutation.MessageType(); !ok {
		return &ValidationError{Name: "message_type", err: errors.New(`ent: missing required field "SandboxMessage.message_type"`)}
	}
	if v, ok := _c.mutation.MessageType(); ok {
		if err := sandboxmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "SandboxMessage.message_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cancel(); !ok {
		return &ValidationError{Name: "cancel", err: errors.New(`ent: missing required field "SandboxMessage.cancel"`)}
	}
	if _, ok := _c.mutation.Acked(); !ok {
		return &ValidationError{Name: "acked", err: errors.New(`ent: missing required field "SandboxMessage.acked"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SandboxMessage.created_at"`)}
	}
	return nil
}

func (_c *SandboxMessageCreate) sqlSave(ctx context.Context) (*SandboxMessage, error) {
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

func (_c *SandboxMessageCreate) createSpec() (*SandboxMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &SandboxMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sandboxmessage.Table, sqlgraph.NewFieldSpec(sandboxmessage.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SandboxID(); ok {
		_spec.SetField(sandboxmessage.FieldSandboxID, field.TypeString, value)
		_node.SandboxID = value
	}
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(sandboxmessage.FieldMessageType, field.TypeEnum, value)
		_node.MessageType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(sandboxmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Cancel(); ok {
		_spec.SetField(sandboxmessage.FieldCancel, field.TypeBool, value)
		_node.Cancel = value
	}
	if value, ok := _c.mutation.Acked(); ok {
		_spec.SetField(sandboxmessage.FieldAcked, field.TypeBool, value)
		_node.Acked = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sandboxmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SandboxMessage.Create().
//		SetSandboxID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SandboxMessageUpsert) {
//			SetSandboxID(v+v).
//		}).
//		Exec(ctx)
func (_c *SandboxMessageCreate) OnConflict(opts ...sql.ConflictOption) *SandboxMessageUpsertOne {
	_c.conflict = opts
	return &SandboxMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SandboxMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SandboxMessageCreate) OnConflictColumns(columns ...string) *SandboxMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SandboxMessageUpsertOne{
		create: _c,
	}
}

type (
	// SandboxMessageUpsertOne is the builder for "upsert"-ing
	//  one SandboxMessage node.
	SandboxMessageUpsertOne struct {
		create *SandboxMessageCreate
	}

	// SandboxMessageUpsert is the "OnConflict" setter.
	SandboxMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetSandboxID sets the "sandbox_id" field.
func (u *SandboxMessageUpsert) SetSandboxID(v string) *SandboxMessageUpsert {
	u.Set(sandboxmessage.FieldSandboxID, v)
	return u
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *SandboxMessageUpsert) UpdateSandboxID() *SandboxMessageUpsert {
	u.SetExcluded(sandboxmessage.FieldSandboxID)
	return u
}

// SetMessageType sets the "message_type" field.
func (u *SandboxMessageUpsert) SetMessageType(v sandboxmessage.MessageType) *SandboxMessageUpsert {
	u.Set(sandboxmessage.FieldMessageType, v)
	return u
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *SandboxMessageUpsert) UpdateMessageType() *SandboxMessageUpsert {
	u.SetExcluded(sandboxmessage.FieldMessageType)
	return u
}

// SetContent sets the "content" field.
func (u *SandboxMessageUpsert) SetContent(v string) *SandboxMessageUpsert {
	u.Set(sandboxmessage.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *SandboxMessageUpsert) UpdateContent() *SandboxMessageUpsert {
	u.SetExcluded(sandboxmessage.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *SandboxMessageUpsert) ClearContent() *SandboxMessageUpsert {
	u.SetNull(sandboxmessage.FieldContent)
	return u
}

// SetCancel sets the "cancel" field.
func (u *SandboxMessageUpsert) SetCancel(v bool) *SandboxMessageUpsert {
	u.Set(sandboxmessage.FieldCancel, v)
	return u
}

// UpdateCancel sets the "cancel" field to the value that was provided on create.
func (u *SandboxMessageUpsert) UpdateCancel() *SandboxMessageUpsert {
	u.SetExcluded(sandboxmessage.FieldCancel)
	return u
}

// SetAcked sets the "acked" field.
func (u *SandboxMessageUpsert) SetAcked(v bool) *SandboxMessageUpsert {
	u.Set(sandboxmessage.FieldAcked, v)
	return u
}

// UpdateAcked sets the "acked" field to the value that was provided on create.
func (u *SandboxMessageUpsert) UpdateAcked() *SandboxMessageUpsert {
	u.SetExcluded(sandboxmessage.FieldAcked)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SandboxMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sandboxmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SandboxMessageUpsertOne) UpdateNewValues() *SandboxMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sandboxmessage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sandboxmessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SandboxMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SandboxMessageUpsertOne) Ignore() *SandboxMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SandboxMessageUpsertOne) DoNothing() *SandboxMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SandboxMessageCreate.OnConflict
// documentation for more info.
func (u *SandboxMessageUpsertOne) Update(set func(*SandboxMessageUpsert)) *SandboxMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SandboxMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSandboxID sets the "sandbox_id" field.
func (u *SandboxMessageUpsertOne) SetSandboxID(v string) *SandboxMessageUpsertOne {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.SetSandboxID(v)
	})
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *SandboxMessageUpsertOne) UpdateSandboxID() *SandboxMessageUpsertOne {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.UpdateSandboxID()
	})
}

// SetMessageType sets the "message_type" field.
func (u *SandboxMessageUpsertOne) SetMessageType(v sandboxmessage.MessageType) *SandboxMessageUpsertOne {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *SandboxMessageUpsertOne) UpdateMessageType() *SandboxMessageUpsertOne {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.UpdateMessageType()
	})
}

// SetContent sets the "content" field.
func (u *SandboxMessageUpsertOne) SetContent(v string) *SandboxMessageUpsertOne {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *SandboxMessageUpsertOne) UpdateContent() *SandboxMessageUpsertOne {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *SandboxMessageUpsertOne) ClearContent() *SandboxMessageUpsertOne {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.ClearContent()
	})
}

// SetCancel sets the "cancel" field.
func (u *SandboxMessageUpsertOne) SetCancel(v bool) *SandboxMessageUpsertOne {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.SetCancel(v)
	})
}

// UpdateCancel sets the "cancel" field to the value that was provided on create.
func (u *SandboxMessageUpsertOne) UpdateCancel() *SandboxMessageUpsertOne {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.UpdateCancel()
	})
}

// SetAcked sets the "acked" field.
func (u *SandboxMessageUpsertOne) SetAcked(v bool) *SandboxMessageUpsertOne {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.SetAcked(v)
	})
}

// UpdateAcked sets the "acked" field to the value that was provided on create.
func (u *SandboxMessageUpsertOne) UpdateAcked() *SandboxMessageUpsertOne {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.UpdateAcked()
	})
}

// Exec executes the query.
func (u *SandboxMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SandboxMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SandboxMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SandboxMessageUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SandboxMessageUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SandboxMessageCreateBulk is the builder for creating many SandboxMessage entities in bulk.
type SandboxMessageCreateBulk struct {
	config
	err      error
	builders []*SandboxMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the SandboxMessage entities in the database.
func (_c *SandboxMessageCreateBulk) Save(ctx context.Context) ([]*SandboxMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SandboxMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SandboxMessageMutation)
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
func (_c *SandboxMessageCreateBulk) SaveX(ctx context.Context) []*SandboxMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SandboxMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SandboxMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SandboxMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SandboxMessageUpsert) {
//			SetSandboxID(v+v).
//		}).
//		Exec(ctx)
func (_c *SandboxMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *SandboxMessageUpsertBulk {
	_c.conflict = opts
	return &SandboxMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SandboxMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SandboxMessageCreateBulk) OnConflictColumns(columns ...string) *SandboxMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SandboxMessageUpsertBulk{
		create: _c,
	}
}

// SandboxMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of SandboxMessage nodes.
type SandboxMessageUpsertBulk struct {
	create *SandboxMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SandboxMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sandboxmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SandboxMessageUpsertBulk) UpdateNewValues() *SandboxMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sandboxmessage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sandboxmessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SandboxMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SandboxMessageUpsertBulk) Ignore() *SandboxMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SandboxMessageUpsertBulk) DoNothing() *SandboxMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SandboxMessageCreateBulk.OnConflict
// documentation for more info.
func (u *SandboxMessageUpsertBulk) Update(set func(*SandboxMessageUpsert)) *SandboxMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SandboxMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSandboxID sets the "sandbox_id" field.
func (u *SandboxMessageUpsertBulk) SetSandboxID(v string) *SandboxMessageUpsertBulk {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.SetSandboxID(v)
	})
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *SandboxMessageUpsertBulk) UpdateSandboxID() *SandboxMessageUpsertBulk {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.UpdateSandboxID()
	})
}

// SetMessageType sets the "message_type" field.
func (u *SandboxMessageUpsertBulk) SetMessageType(v sandboxmessage.MessageType) *SandboxMessageUpsertBulk {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *SandboxMessageUpsertBulk) UpdateMessageType() *SandboxMessageUpsertBulk {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.UpdateMessageType()
	})
}

// SetContent sets the "content" field.
func (u *SandboxMessageUpsertBulk) SetContent(v string) *SandboxMessageUpsertBulk {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *SandboxMessageUpsertBulk) UpdateContent() *SandboxMessageUpsertBulk {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *SandboxMessageUpsertBulk) ClearContent() *SandboxMessageUpsertBulk {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.ClearContent()
	})
}

// SetCancel sets the "cancel" field.
func (u *SandboxMessageUpsertBulk) SetCancel(v bool) *SandboxMessageUpsertBulk {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.SetCancel(v)
	})
}

// UpdateCancel sets the "cancel" field to the value that was provided on create.
func (u *SandboxMessageUpsertBulk) UpdateCancel() *SandboxMessageUpsertBulk {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.UpdateCancel()
	})
}

// SetAcked sets the "acked" field.
func (u *SandboxMessageUpsertBulk) SetAcked(v bool) *SandboxMessageUpsertBulk {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.SetAcked(v)
	})
}

// UpdateAcked sets the "acked" field to the value that was provided on create.
func (u *SandboxMessageUpsertBulk) UpdateAcked() *SandboxMessageUpsertBulk {
	return u.Update(func(s *SandboxMessageUpsert) {
		s.UpdateAcked()
	})
}

// Exec executes the query.
func (u *SandboxMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SandboxMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SandboxMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SandboxMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
