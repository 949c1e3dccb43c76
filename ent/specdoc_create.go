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
	"github.com/helmsman-ai/helmsman/ent/specdoc"
)

// SpecDocCreate is the builder for creating a SpecDoc entity.
type SpecDocCreate struct {
	config
	mutation *SpecDocMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *SpecDocCreate) SetTitle(v string) *SpecDocCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SpecDocCreate) SetDescription(v string) *SpecDocCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetCurrentPhase sets the "current_phase" field.
func (_c *SpecDocCreate) SetCurrentPhase(v specdoc.CurrentPhase) *SpecDocCreate {
	_c.mutation.SetCurrentPhase(v)
	return _c
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_c *SpecDocCreate) SetNillableCurrentPhase(v *specdoc.CurrentPhase) *SpecDocCreate {
	if v != nil {
		_c.SetCurrentPhase(*v)
	}
	return _c
}

// SetPhaseData sets the "phase_data" field.
func (_c *SpecDocCreate) SetPhaseData(v map[string]interface{}) *SpecDocCreate {
	_c.mutation.SetPhaseData(v)
	return _c
}

// SetSessionTranscripts sets the "session_transcripts" field.
func (_c *SpecDocCreate) SetSessionTranscripts(v map[string]string) *SpecDocCreate {
	_c.mutation.SetSessionTranscripts(v)
	return _c
}

// SetPhaseAttempts sets the "phase_attempts" field.
func (_c *SpecDocCreate) SetPhaseAttempts(v map[string]int) *SpecDocCreate {
	_c.mutation.SetPhaseAttempts(v)
	return _c
}

// SetLastCheckpointAt sets the "last_checkpoint_at" field.
func (_c *SpecDocCreate) SetLastCheckpointAt(v time.Time) *SpecDocCreate {
	_c.mutation.SetLastCheckpointAt(v)
	return _c
}

// SetNillableLastCheckpointAt sets the "last_checkpoint_at" field if the given value is not nil.
func (_c *SpecDocCreate) SetNillableLastCheckpointAt(v *time.Time) *SpecDocCreate {
	if v != nil {
		_c.SetLastCheckpointAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *SpecDocCreate) SetLastError(v string) *SpecDocCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *SpecDocCreate) SetNillableLastError(v *string) *SpecDocCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetShareToken sets the "share_token" field.
func (_c *SpecDocCreate) SetShareToken(v string) *SpecDocCreate {
	_c.mutation.SetShareToken(v)
	return _c
}

// SetNillableShareToken sets the "share_token" field if the given value is not nil.
func (_c *SpecDocCreate) SetNillableShareToken(v *string) *SpecDocCreate {
	if v != nil {
		_c.SetShareToken(*v)
	}
	return _c
}

// SetArchived sets the "archived" field.
func (_c *SpecDocCreate) SetArchived(v bool) *SpecDocCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *SpecDocCreate) SetNillableArchived(v *bool) *SpecDocCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetOwner sets the "owner" field.
func (_c *SpecDocCreate) SetOwner(v string) *SpecDocCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_c *SpecDocCreate) SetNillableOwner(v *string) *SpecDocCreate {
	if v != nil {
		_c.SetOwner(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *SpecDocCreate) SetVersion(v int) *SpecDocCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *SpecDocCreate) SetNillableVersion(v *int) *SpecDocCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpecDocCreate) SetCreatedAt(v time.Time) *SpecDocCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpecDocCreate) SetNillableCreatedAt(v *time.Time) *SpecDocCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SpecDocCreate) SetUpdatedAt(v time.Time) *SpecDocCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SpecDocCreate) SetNillableUpdatedAt(v *time.Time) *SpecDocCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SpecDocCreate) SetID(v string) *SpecDocCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SpecDocMutation object of the builder.
func (_c *SpecDocCreate) Mutation() *SpecDocMutation {
	return _c.mutation
}

// Save creates the SpecDoc in the database.
func (_c *SpecDocCreate) Save(ctx context.Context) (*SpecDoc, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpecDocCreate) SaveX(ctx context.Context) *SpecDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecDocCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecDocCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpecDocCreate) defaults() {
	if _, ok := _c.mutation.CurrentPhase(); !ok {
		v := specdoc.DefaultCurrentPhase
		_c.mutation.SetCurrentPhase(v)
	}
	if _, ok := _c.mutation.Archived(); !ok {
		v := specdoc.DefaultArchived
		_c.mutation.SetArchived(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := specdoc.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := specdoc.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := specdoc.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpecDocCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "SpecDoc.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "SpecDoc.description"`)}
	}
	if _, ok := _c.mutation.CurrentPhase(); !ok {
		return &ValidationError{Name: "current_phase", err: errors.New(`ent: missing required field "SpecDoc.current_phase"`)}
	}
	if v, ok := _c.mutation.CurrentPhase(); ok {
		if err := specdoc.CurrentPhaseValidator(v); err != nil {
			return &ValidationError{Name: "current_phase", err: fmt.Errorf(`ent: validator failed for field "SpecDoc.current_phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "SpecDoc.archived"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "SpecDoc.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SpecDoc.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SpecDoc.updated_at"`)}
	}
	return nil
}

func (_c *SpecDocCreate) sqlSave(ctx context.Context) (*SpecDoc, error) {
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
			return nil, fmt.Errorf("unexpected SpecDoc.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpecDocCreate) createSpec() (*SpecDoc, *sqlgraph.CreateSpec) {
	var (
		_node = &SpecDoc{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(specdoc.Table, sqlgraph.NewFieldSpec(specdoc.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(specdoc.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(specdoc.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CurrentPhase(); ok {
		_spec.SetField(specdoc.FieldCurrentPhase, field.TypeEnum, value)
		_node.CurrentPhase = value
	}
	if value, ok := _c.mutation.PhaseData(); ok {
		_spec.SetField(specdoc.FieldPhaseData, field.TypeJSON, value)
		_node.PhaseData = value
	}
	if value, ok := _c.mutation.SessionTranscripts(); ok {
		_spec.SetField(specdoc.FieldSessionTranscripts, field.TypeJSON, value)
		_node.SessionTranscripts = value
	}
	if value, ok := _c.mutation.PhaseAttempts(); ok {
		_spec.SetField(specdoc.FieldPhaseAttempts, field.TypeJSON, value)
		_node.PhaseAttempts = value
	}
	if value, ok := _c.mutation.LastCheckpointAt(); ok {
		_spec.SetField(specdoc.FieldLastCheckpointAt, field.TypeTime, value)
		_node.LastCheckpointAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(specdoc.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.ShareToken(); ok {
		_spec.SetField(specdoc.FieldShareToken, field.TypeString, value)
		_node.ShareToken = &value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(specdoc.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(specdoc.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(specdoc.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(specdoc.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(specdoc.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SpecDoc.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SpecDocUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *SpecDocCreate) OnConflict(opts ...sql.ConflictOption) *SpecDocUpsertOne {
	_c.conflict = opts
	return &SpecDocUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SpecDoc.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SpecDocCreate) OnConflictColumns(columns ...string) *SpecDocUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SpecDocUpsertOne{
		create: _c,
	}
}

type (
	// SpecDocUpsertOne is the builder for "upsert"-ing
	//  one SpecDoc node.
	SpecDocUpsertOne struct {
		create *SpecDocCreate
	}

	// SpecDocUpsert is the "OnConflict" setter.
	SpecDocUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *SpecDocUpsert) SetTitle(v string) *SpecDocUpsert {
	u.Set(specdoc.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SpecDocUpsert) UpdateTitle() *SpecDocUpsert {
	u.SetExcluded(specdoc.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *SpecDocUpsert) SetDescription(v string) *SpecDocUpsert {
	u.Set(specdoc.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *SpecDocUpsert) UpdateDescription() *SpecDocUpsert {
	u.SetExcluded(specdoc.FieldDescription)
	return u
}

// SetCurrentPhase sets the "current_phase" field.
func (u *SpecDocUpsert) SetCurrentPhase(v specdoc.CurrentPhase) *SpecDocUpsert {
	u.Set(specdoc.FieldCurrentPhase, v)
	return u
}

// UpdateCurrentPhase sets the "current_phase" field to the value that was provided on create.
func (u *SpecDocUpsert) UpdateCurrentPhase() *SpecDocUpsert {
	u.SetExcluded(specdoc.FieldCurrentPhase)
	return u
}

// SetPhaseData sets the "phase_data" field.
func (u *SpecDocUpsert) SetPhaseData(v map[string]interface{}) *SpecDocUpsert {
	u.Set(specdoc.FieldPhaseData, v)
	return u
}

// UpdatePhaseData sets the "phase_data" field to the value that was provided on create.
func (u *SpecDocUpsert) UpdatePhaseData() *SpecDocUpsert {
	u.SetExcluded(specdoc.FieldPhaseData)
	return u
}

// ClearPhaseData clears the value of the "phase_data" field.
func (u *SpecDocUpsert) ClearPhaseData() *SpecDocUpsert {
	u.SetNull(specdoc.FieldPhaseData)
	return u
}

// SetSessionTranscripts sets the "session_transcripts" field.
func (u *SpecDocUpsert) SetSessionTranscripts(v map[string]string) *SpecDocUpsert {
	u.Set(specdoc.FieldSessionTranscripts, v)
	return u
}

// UpdateSessionTranscripts sets the "session_transcripts" field to the value that was provided on create.
func (u *SpecDocUpsert) UpdateSessionTranscripts() *SpecDocUpsert {
	u.SetExcluded(specdoc.FieldSessionTranscripts)
	return u
}

// ClearSessionTranscripts clears the value of the "session_transcripts" field.
func (u *SpecDocUpsert) ClearSessionTranscripts() *SpecDocUpsert {
	u.SetNull(specdoc.FieldSessionTranscripts)
	return u
}

// SetPhaseAttempts sets the "phase_attempts" field.
func (u *SpecDocUpsert) SetPhaseAttempts(v map[string]int) *SpecDocUpsert {
	u.Set(specdoc.FieldPhaseAttempts, v)
	return u
}

// UpdatePhaseAttempts sets the "phase_attempts" field to the value that was provided on create.
func (u *SpecDocUpsert) UpdatePhaseAttempts() *SpecDocUpsert {
	u.SetExcluded(specdoc.FieldPhaseAttempts)
	return u
}

// ClearPhaseAttempts clears the value of the "phase_attempts" field.
func (u *SpecDocUpsert) ClearPhaseAttempts() *SpecDocUpsert {
	u.SetNull(specdoc.FieldPhaseAttempts)
	return u
}

// SetLastCheckpointAt sets the "last_checkpoint_at" field.
func (u *SpecDocUpsert) SetLastCheckpointAt(v time.Time) *SpecDocUpsert {
	u.Set(specdoc.FieldLastCheckpointAt, v)
	return u
}

// UpdateLastCheckpointAt sets the "last_checkpoint_at" field to the value that was provided on create.
func (u *SpecDocUpsert) UpdateLastCheckpointAt() *SpecDocUpsert {
	u.SetExcluded(specdoc.FieldLastCheckpointAt)
	return u
}

// ClearLastCheckpointAt clears the value of the "last_checkpoint_at" field.
func (u *SpecDocUpsert) ClearLastCheckpointAt() *SpecDocUpsert {
	u.SetNull(specdoc.FieldLastCheckpointAt)
	return u
}

// SetLastError sets the "last_error" field.
func (u *SpecDocUpsert) SetLastError(v string) *SpecDocUpsert {
	u.Set(specdoc.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *SpecDocUpsert) UpdateLastError() *SpecDocUpsert {
	u.SetExcluded(specdoc.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *SpecDocUpsert) ClearLastError() *SpecDocUpsert {
	u.SetNull(specdoc.FieldLastError)
	return u
}

// SetShareToken sets the "share_token" field.
func (u *SpecDocUpsert) SetShareToken(v string) *SpecDocUpsert {
	u.Set(specdoc.FieldShareToken, v)
	return u
}

// UpdateShareToken sets the "share_token" field to the value that was provided on create.
func (u *SpecDocUpsert) UpdateShareToken() *SpecDocUpsert {
	u.SetExcluded(specdoc.FieldShareToken)
	return u
}

// ClearShareToken clears the value of the "share_token" field.
func (u *SpecDocUpsert) ClearShareToken() *SpecDocUpsert {
	u.SetNull(specdoc.FieldShareToken)
	return u
}

// SetArchived sets the "archived" field.
func (u *SpecDocUpsert) SetArchived(v bool) *SpecDocUpsert {
	u.Set(specdoc.FieldArchived, v)
	return u
}

// UpdateArchived sets the "archived" field to the value that was provided on create.
func (u *SpecDocUpsert) UpdateArchived() *SpecDocUpsert {
	u.SetExcluded(specdoc.FieldArchived)
	return u
}

// SetOwner sets the "owner" field.
func (u *SpecDocUpsert) SetOwner(v string) *SpecDocUpsert {
	u.Set(specdoc.FieldOwner, v)
	return u
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *SpecDocUpsert) UpdateOwner() *SpecDocUpsert {
	u.SetExcluded(specdoc.FieldOwner)
	return u
}

// ClearOwner clears the value of the "owner" field.
func (u *SpecDocUpsert) ClearOwner() *SpecDocUpsert {
	u.SetNull(specdoc.FieldOwner)
	return u
}

// SetVersion sets the "version" field.
func (u *SpecDocUpsert) SetVersion(v int) *SpecDocUpsert {
	u.Set(specdoc.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *SpecDocUpsert) UpdateVersion() *SpecDocUpsert {
	u.SetExcluded(specdoc.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *SpecDocUpsert) AddVersion(v int) *SpecDocUpsert {
	u.Add(specdoc.FieldVersion, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SpecDocUpsert) SetUpdatedAt(v time.Time) *SpecDocUpsert {
	u.Set(specdoc.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SpecDocUpsert) UpdateUpdatedAt() *SpecDocUpsert {
	u.SetExcluded(specdoc.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SpecDoc.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(specdoc.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SpecDocUpsertOne) UpdateNewValues() *SpecDocUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(specdoc.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(specdoc.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SpecDoc.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SpecDocUpsertOne) Ignore() *SpecDocUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SpecDocUpsertOne) DoNothing() *SpecDocUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SpecDocCreate.OnConflict
// documentation for more info.
func (u *SpecDocUpsertOne) Update(set func(*SpecDocUpsert)) *SpecDocUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SpecDocUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *SpecDocUpsertOne) SetTitle(v string) *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SpecDocUpsertOne) UpdateTitle() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *SpecDocUpsertOne) SetDescription(v string) *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *SpecDocUpsertOne) UpdateDescription() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateDescription()
	})
}

// SetCurrentPhase sets the "current_phase" field.
func (u *SpecDocUpsertOne) SetCurrentPhase(v specdoc.CurrentPhase) *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetCurrentPhase(v)
	})
}

// UpdateCurrentPhase sets the "current_phase" field to the value that was provided on create.
func (u *SpecDocUpsertOne) UpdateCurrentPhase() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateCurrentPhase()
	})
}

// SetPhaseData sets the "phase_data" field.
func (u *SpecDocUpsertOne) SetPhaseData(v map[string]interface{}) *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetPhaseData(v)
	})
}

// UpdatePhaseData sets the "phase_data" field to the value that was provided on create.
func (u *SpecDocUpsertOne) UpdatePhaseData() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdatePhaseData()
	})
}

// ClearPhaseData clears the value of the "phase_data" field.
func (u *SpecDocUpsertOne) ClearPhaseData() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.ClearPhaseData()
	})
}

// SetSessionTranscripts sets the "session_transcripts" field.
func (u *SpecDocUpsertOne) SetSessionTranscripts(v map[string]string) *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetSessionTranscripts(v)
	})
}

// UpdateSessionTranscripts sets the "session_transcripts" field to the value that was provided on create.
func (u *SpecDocUpsertOne) UpdateSessionTranscripts() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateSessionTranscripts()
	})
}

// ClearSessionTranscripts clears the value of the "session_transcripts" field.
func (u *SpecDocUpsertOne) ClearSessionTranscripts() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.ClearSessionTranscripts()
	})
}

// SetPhaseAttempts sets the "phase_attempts" field.
func (u *SpecDocUpsertOne) SetPhaseAttempts(v map[string]int) *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetPhaseAttempts(v)
	})
}

// UpdatePhaseAttempts sets the "phase_attempts" field to the value that was provided on create.
func (u *SpecDocUpsertOne) UpdatePhaseAttempts() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdatePhaseAttempts()
	})
}

// ClearPhaseAttempts clears the value of the "phase_attempts" field.
func (u *SpecDocUpsertOne) ClearPhaseAttempts() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.ClearPhaseAttempts()
	})
}

// SetLastCheckpointAt sets the "last_checkpoint_at" field.
func (u *SpecDocUpsertOne) SetLastCheckpointAt(v time.Time) *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetLastCheckpointAt(v)
	})
}

// UpdateLastCheckpointAt sets the "last_checkpoint_at" field to the value that was provided on create.
func (u *SpecDocUpsertOne) UpdateLastCheckpointAt() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateLastCheckpointAt()
	})
}

// ClearLastCheckpointAt clears the value of the "last_checkpoint_at" field.
func (u *SpecDocUpsertOne) ClearLastCheckpointAt() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.ClearLastCheckpointAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *SpecDocUpsertOne) SetLastError(v string) *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *SpecDocUpsertOne) UpdateLastError() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *SpecDocUpsertOne) ClearLastError() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.ClearLastError()
	})
}

// SetShareToken sets the "share_token" field.
func (u *SpecDocUpsertOne) SetShareToken(v string) *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetShareToken(v)
	})
}

// UpdateShareToken sets the "share_token" field to the value that was provided on create.
func (u *SpecDocUpsertOne) UpdateShareToken() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateShareToken()
	})
}

// ClearShareToken clears the value of the "share_token" field.
func (u *SpecDocUpsertOne) ClearShareToken() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.ClearShareToken()
	})
}

// SetArchived sets the "archived" field.
func (u *SpecDocUpsertOne) SetArchived(v bool) *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetArchived(v)
	})
}

// UpdateArchived sets the "archived" field to the value that was provided on create.
func (u *SpecDocUpsertOne) UpdateArchived() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateArchived()
	})
}

// SetOwner sets the "owner" field.
func (u *SpecDocUpsertOne) SetOwner(v string) *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *SpecDocUpsertOne) UpdateOwner() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateOwner()
	})
}

// ClearOwner clears the value of the "owner" field.
func (u *SpecDocUpsertOne) ClearOwner() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.ClearOwner()
	})
}

// SetVersion sets the "version" field.
func (u *SpecDocUpsertOne) SetVersion(v int) *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *SpecDocUpsertOne) AddVersion(v int) *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *SpecDocUpsertOne) UpdateVersion() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SpecDocUpsertOne) SetUpdatedAt(v time.Time) *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SpecDocUpsertOne) UpdateUpdatedAt() *SpecDocUpsertOne {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SpecDocUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SpecDocCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SpecDocUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SpecDocUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SpecDocUpsertOne.ID is not supported by MySQL driver. Use SpecDocUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SpecDocUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SpecDocCreateBulk is the builder for creating many SpecDoc entities in bulk.
type SpecDocCreateBulk struct {
	config
	err      error
	builders []*SpecDocCreate
	conflict []sql.ConflictOption
}

// Save creates the SpecDoc entities in the database.
func (_c *SpecDocCreateBulk) Save(ctx context.Context) ([]*SpecDoc, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SpecDoc, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpecDocMutation)
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
func (_c *SpecDocCreateBulk) SaveX(ctx context.Context) []*SpecDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpecDocCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpecDocCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SpecDoc.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SpecDocUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *SpecDocCreateBulk) OnConflict(opts ...sql.ConflictOption) *SpecDocUpsertBulk {
	_c.conflict = opts
	return &SpecDocUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SpecDoc.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SpecDocCreateBulk) OnConflictColumns(columns ...string) *SpecDocUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SpecDocUpsertBulk{
		create: _c,
	}
}

// SpecDocUpsertBulk is the builder for "upsert"-ing
// a bulk of SpecDoc nodes.
type SpecDocUpsertBulk struct {
	create *SpecDocCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SpecDoc.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(specdoc.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SpecDocUpsertBulk) UpdateNewValues() *SpecDocUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(specdoc.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(specdoc.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SpecDoc.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SpecDocUpsertBulk) Ignore() *SpecDocUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SpecDocUpsertBulk) DoNothing() *SpecDocUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SpecDocCreateBulk.OnConflict
// documentation for more info.
func (u *SpecDocUpsertBulk) Update(set func(*SpecDocUpsert)) *SpecDocUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SpecDocUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *SpecDocUpsertBulk) SetTitle(v string) *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SpecDocUpsertBulk) UpdateTitle() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *SpecDocUpsertBulk) SetDescription(v string) *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *SpecDocUpsertBulk) UpdateDescription() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateDescription()
	})
}

// SetCurrentPhase sets the "current_phase" field.
func (u *SpecDocUpsertBulk) SetCurrentPhase(v specdoc.CurrentPhase) *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetCurrentPhase(v)
	})
}

// UpdateCurrentPhase sets the "current_phase" field to the value that was provided on create.
func (u *SpecDocUpsertBulk) UpdateCurrentPhase() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateCurrentPhase()
	})
}

// SetPhaseData sets the "phase_data" field.
func (u *SpecDocUpsertBulk) SetPhaseData(v map[string]interface{}) *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetPhaseData(v)
	})
}

// UpdatePhaseData sets the "phase_data" field to the value that was provided on create.
func (u *SpecDocUpsertBulk) UpdatePhaseData() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdatePhaseData()
	})
}

// ClearPhaseData clears the value of the "phase_data" field.
func (u *SpecDocUpsertBulk) ClearPhaseData() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.ClearPhaseData()
	})
}

// SetSessionTranscripts sets the "session_transcripts" field.
func (u *SpecDocUpsertBulk) SetSessionTranscripts(v map[string]string) *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetSessionTranscripts(v)
	})
}

// UpdateSessionTranscripts sets the "session_transcripts" field to the value that was provided on create.
func (u *SpecDocUpsertBulk) UpdateSessionTranscripts() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateSessionTranscripts()
	})
}

// ClearSessionTranscripts clears the value of the "session_transcripts" field.
func (u *SpecDocUpsertBulk) ClearSessionTranscripts() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.ClearSessionTranscripts()
	})
}

// SetPhaseAttempts sets the "phase_attempts" field.
func (u *SpecDocUpsertBulk) SetPhaseAttempts(v map[string]int) *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetPhaseAttempts(v)
	})
}

// UpdatePhaseAttempts sets the "phase_attempts" field to the value that was provided on create.
func (u *SpecDocUpsertBulk) UpdatePhaseAttempts() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdatePhaseAttempts()
	})
}

// ClearPhaseAttempts clears the value of the "phase_attempts" field.
func (u *SpecDocUpsertBulk) ClearPhaseAttempts() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.ClearPhaseAttempts()
	})
}

// SetLastCheckpointAt sets the "last_checkpoint_at" field.
func (u *SpecDocUpsertBulk) SetLastCheckpointAt(v time.Time) *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetLastCheckpointAt(v)
	})
}

// UpdateLastCheckpointAt sets the "last_checkpoint_at" field to the value that was provided on create.
func (u *SpecDocUpsertBulk) UpdateLastCheckpointAt() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateLastCheckpointAt()
	})
}

// ClearLastCheckpointAt clears the value of the "last_checkpoint_at" field.
func (u *SpecDocUpsertBulk) ClearLastCheckpointAt() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.ClearLastCheckpointAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *SpecDocUpsertBulk) SetLastError(v string) *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *SpecDocUpsertBulk) UpdateLastError() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *SpecDocUpsertBulk) ClearLastError() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.ClearLastError()
	})
}

// SetShareToken sets the "share_token" field.
func (u *SpecDocUpsertBulk) SetShareToken(v string) *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetShareToken(v)
	})
}

// UpdateShareToken sets the "share_token" field to the value that was provided on create.
func (u *SpecDocUpsertBulk) UpdateShareToken() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateShareToken()
	})
}

// ClearShareToken clears the value of the "share_token" field.
func (u *SpecDocUpsertBulk) ClearShareToken() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.ClearShareToken()
	})
}

// SetArchived sets the "archived" field.
func (u *SpecDocUpsertBulk) SetArchived(v bool) *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetArchived(v)
	})
}

// UpdateArchived sets the "archived" field to the value that was provided on create.
func (u *SpecDocUpsertBulk) UpdateArchived() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateArchived()
	})
}

// SetOwner sets the "owner" field.
func (u *SpecDocUpsertBulk) SetOwner(v string) *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *SpecDocUpsertBulk) UpdateOwner() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateOwner()
	})
}

// ClearOwner clears the value of the "owner" field.
func (u *SpecDocUpsertBulk) ClearOwner() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.ClearOwner()
	})
}

// SetVersion sets the "version" field.
func (u *SpecDocUpsertBulk) SetVersion(v int) *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *SpecDocUpsertBulk) AddVersion(v int) *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *SpecDocUpsertBulk) UpdateVersion() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SpecDocUpsertBulk) SetUpdatedAt(v time.Time) *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SpecDocUpsertBulk) UpdateUpdatedAt() *SpecDocUpsertBulk {
	return u.Update(func(s *SpecDocUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SpecDocUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SpecDocCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SpecDocCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SpecDocUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
