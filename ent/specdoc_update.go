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
	"github.com/helmsman-ai/helmsman/ent/specdoc"
)

// SpecDocUpdate is the builder for updating SpecDoc entities.
type SpecDocUpdate struct {
	config
	hooks    []Hook
	mutation *SpecDocMutation
}

// Where appends a list predicates to the SpecDocUpdate builder.
func (_u *SpecDocUpdate) Where(ps ...predicate.SpecDoc) *SpecDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SpecDocUpdate) SetTitle(v string) *SpecDocUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SpecDocUpdate) SetNillableTitle(v *string) *SpecDocUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SpecDocUpdate) SetDescription(v string) *SpecDocUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SpecDocUpdate) SetNillableDescription(v *string) *SpecDocUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *SpecDocUpdate) SetCurrentPhase(v specdoc.CurrentPhase) *SpecDocUpdate {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *SpecDocUpdate) SetNillableCurrentPhase(v *specdoc.CurrentPhase) *SpecDocUpdate {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// SetPhaseData sets the "phase_data" field.
func (_u *SpecDocUpdate) SetPhaseData(v map[string]interface{}) *SpecDocUpdate {
	_u.mutation.SetPhaseData(v)
	return _u
}

// ClearPhaseData clears the value of the "phase_data" field.
func (_u *SpecDocUpdate) ClearPhaseData() *SpecDocUpdate {
	_u.mutation.ClearPhaseData()
	return _u
}

// SetSessionTranscripts sets the "session_transcripts" field.
func (_u *SpecDocUpdate) SetSessionTranscripts(v map[string]string) *SpecDocUpdate {
	_u.mutation.SetSessionTranscripts(v)
	return _u
}

// ClearSessionTranscripts clears the value of the "session_transcripts" field.
func (_u *SpecDocUpdate) ClearSessionTranscripts() *SpecDocUpdate {
	_u.mutation.ClearSessionTranscripts()
	return _u
}

// SetPhaseAttempts sets the "phase_attempts" field.
func (_u *SpecDocUpdate) SetPhaseAttempts(v map[string]int) *SpecDocUpdate {
	_u.mutation.SetPhaseAttempts(v)
	return _u
}

// ClearPhaseAttempts clears the value of the "phase_attempts" field.
func (_u *SpecDocUpdate) ClearPhaseAttempts() *SpecDocUpdate {
	_u.mutation.ClearPhaseAttempts()
	return _u
}

// SetLastCheckpointAt sets the "last_checkpoint_at" field.
func (_u *SpecDocUpdate) SetLastCheckpointAt(v time.Time) *SpecDocUpdate {
	_u.mutation.SetLastCheckpointAt(v)
	return _u
}

// SetNillableLastCheckpointAt sets the "last_checkpoint_at" field if the given value is not nil.
func (_u *SpecDocUpdate) SetNillableLastCheckpointAt(v *time.Time) *SpecDocUpdate {
	if v != nil {
		_u.SetLastCheckpointAt(*v)
	}
	return _u
}

// ClearLastCheckpointAt clears the value of the "last_checkpoint_at" field.
func (_u *SpecDocUpdate) ClearLastCheckpointAt() *SpecDocUpdate {
	_u.mutation.ClearLastCheckpointAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SpecDocUpdate) SetLastError(v string) *SpecDocUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SpecDocUpdate) SetNillableLastError(v *string) *SpecDocUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SpecDocUpdate) ClearLastError() *SpecDocUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetShareToken sets the "share_token" field.
func (_u *SpecDocUpdate) SetShareToken(v string) *SpecDocUpdate {
	_u.mutation.SetShareToken(v)
	return _u
}

// SetNillableShareToken sets the "share_token" field if the given value is not nil.
func (_u *SpecDocUpdate) SetNillableShareToken(v *string) *SpecDocUpdate {
	if v != nil {
		_u.SetShareToken(*v)
	}
	return _u
}

// ClearShareToken clears the value of the "share_token" field.
func (_u *SpecDocUpdate) ClearShareToken() *SpecDocUpdate {
	_u.mutation.ClearShareToken()
	return _u
}

// SetArchived sets the "archived" field.
func (_u *SpecDocUpdate) SetArchived(v bool) *SpecDocUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *SpecDocUpdate) SetNillableArchived(v *bool) *SpecDocUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetOwner sets the "owner" field.
func (_u *SpecDocUpdate) SetOwner(v string) *SpecDocUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *SpecDocUpdate) SetNillableOwner(v *string) *SpecDocUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *SpecDocUpdate) ClearOwner() *SpecDocUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// SetVersion sets the "version" field.
func (_u *SpecDocUpdate) SetVersion(v int) *SpecDocUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SpecDocUpdate) SetNillableVersion(v *int) *SpecDocUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SpecDocUpdate) AddVersion(v int) *SpecDocUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpecDocUpdate) SetUpdatedAt(v time.Time) *SpecDocUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SpecDocMutation object of the builder.
func (_u *SpecDocUpdate) Mutation() *SpecDocMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpecDocUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpecDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpecDocUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := specdoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecDocUpdate) check() error {
	if v, ok := _u.mutation.CurrentPhase(); ok {
		if err := specdoc.CurrentPhaseValidator(v); err != nil {
			return &ValidationError{Name: "current_phase", err: fmt.Errorf(`ent: validator failed for field "SpecDoc.current_phase": %w`, err)}
		}
	}
	return nil
}

func (_u *SpecDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(specdoc.Table, specdoc.Columns, sqlgraph.NewFieldSpec(specdoc.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(specdoc.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(specdoc.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(specdoc.FieldCurrentPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PhaseData(); ok {
		_spec.SetField(specdoc.FieldPhaseData, field.TypeJSON, value)
	}
	if _u.mutation.PhaseDataCleared() {
		_spec.ClearField(specdoc.FieldPhaseData, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionTranscripts(); ok {
		_spec.SetField(specdoc.FieldSessionTranscripts, field.TypeJSON, value)
	}
	if _u.mutation.SessionTranscriptsCleared() {
		_spec.ClearField(specdoc.FieldSessionTranscripts, field.TypeJSON)
	}
	if value, ok := _u.mutation.PhaseAttempts(); ok {
		_spec.SetField(specdoc.FieldPhaseAttempts, field.TypeJSON, value)
	}
	if _u.mutation.PhaseAttemptsCleared() {
		_spec.ClearField(specdoc.FieldPhaseAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastCheckpointAt(); ok {
		_spec.SetField(specdoc.FieldLastCheckpointAt, field.TypeTime, value)
	}
	if _u.mutation.LastCheckpointAtCleared() {
		_spec.ClearField(specdoc.FieldLastCheckpointAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(specdoc.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(specdoc.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ShareToken(); ok {
		_spec.SetField(specdoc.FieldShareToken, field.TypeString, value)
	}
	if _u.mutation.ShareTokenCleared() {
		_spec.ClearField(specdoc.FieldShareToken, field.TypeString)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(specdoc.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(specdoc.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(specdoc.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(specdoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(specdoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(specdoc.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{specdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpecDocUpdateOne is the builder for updating a single SpecDoc entity.
type SpecDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpecDocMutation
}

// SetTitle sets the "title" field.
func (_u *SpecDocUpdateOne) SetTitle(v string) *SpecDocUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SpecDocUpdateOne) SetNillableTitle(v *string) *SpecDocUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SpecDocUpdateOne) SetDescription(v string) *SpecDocUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SpecDocUpdateOne) SetNillableDescription(v *string) *SpecDocUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *SpecDocUpdateOne) SetCurrentPhase(v specdoc.CurrentPhase) *SpecDocUpdateOne {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *SpecDocUpdateOne) SetNillableCurrentPhase(v *specdoc.CurrentPhase) *SpecDocUpdateOne {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// SetPhaseData sets the "phase_data" field.
func (_u *SpecDocUpdateOne) SetPhaseData(v map[string]interface{}) *SpecDocUpdateOne {
	_u.mutation.SetPhaseData(v)
	return _u
}

// ClearPhaseData clears the value of the "phase_data" field.
func (_u *SpecDocUpdateOne) ClearPhaseData() *SpecDocUpdateOne {
	_u.mutation.ClearPhaseData()
	return _u
}

// SetSessionTranscripts sets the "session_transcripts" field.
func (_u *SpecDocUpdateOne) SetSessionTranscripts(v map[string]string) *SpecDocUpdateOne {
	_u.mutation.SetSessionTranscripts(v)
	return _u
}

// ClearSessionTranscripts clears the value of the "session_transcripts" field.
func (_u *SpecDocUpdateOne) ClearSessionTranscripts() *SpecDocUpdateOne {
	_u.mutation.ClearSessionTranscripts()
	return _u
}

// SetPhaseAttempts sets the "phase_attempts" field.
func (_u *SpecDocUpdateOne) SetPhaseAttempts(v map[string]int) *SpecDocUpdateOne {
	_u.mutation.SetPhaseAttempts(v)
	return _u
}

// ClearPhaseAttempts clears the value of the "phase_attempts" field.
func (_u *SpecDocUpdateOne) ClearPhaseAttempts() *SpecDocUpdateOne {
	_u.mutation.ClearPhaseAttempts()
	return _u
}

// SetLastCheckpointAt sets the "last_checkpoint_at" field.
func (_u *SpecDocUpdateOne) SetLastCheckpointAt(v time.Time) *SpecDocUpdateOne {
	_u.mutation.SetLastCheckpointAt(v)
	return _u
}

// SetNillableLastCheckpointAt sets the "last_checkpoint_at" field if the given value is not nil.
func (_u *SpecDocUpdateOne) SetNillableLastCheckpointAt(v *time.Time) *SpecDocUpdateOne {
	if v != nil {
		_u.SetLastCheckpointAt(*v)
	}
	return _u
}

// ClearLastCheckpointAt clears the value of the "last_checkpoint_at" field.
func (_u *SpecDocUpdateOne) ClearLastCheckpointAt() *SpecDocUpdateOne {
	_u.mutation.ClearLastCheckpointAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SpecDocUpdateOne) SetLastError(v string) *SpecDocUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SpecDocUpdateOne) SetNillableLastError(v *string) *SpecDocUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SpecDocUpdateOne) ClearLastError() *SpecDocUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetShareToken sets the "share_token" field.
func (_u *SpecDocUpdateOne) SetShareToken(v string) *SpecDocUpdateOne {
	_u.mutation.SetShareToken(v)
	return _u
}

// SetNillableShareToken sets the "share_token" field if the given value is not nil.
func (_u *SpecDocUpdateOne) SetNillableShareToken(v *string) *SpecDocUpdateOne {
	if v != nil {
		_u.SetShareToken(*v)
	}
	return _u
}

// ClearShareToken clears the value of the "share_token" field.
func (_u *SpecDocUpdateOne) ClearShareToken() *SpecDocUpdateOne {
	_u.mutation.ClearShareToken()
	return _u
}

// SetArchived sets the "archived" field.
func (_u *SpecDocUpdateOne) SetArchived(v bool) *SpecDocUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *SpecDocUpdateOne) SetNillableArchived(v *bool) *SpecDocUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetOwner sets the "owner" field.
func (_u *SpecDocUpdateOne) SetOwner(v string) *SpecDocUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *SpecDocUpdateOne) SetNillableOwner(v *string) *SpecDocUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *SpecDocUpdateOne) ClearOwner() *SpecDocUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// SetVersion sets the "version" field.
func (_u *SpecDocUpdateOne) SetVersion(v int) *SpecDocUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SpecDocUpdateOne) SetNillableVersion(v *int) *SpecDocUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SpecDocUpdateOne) AddVersion(v int) *SpecDocUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpecDocUpdateOne) SetUpdatedAt(v time.Time) *SpecDocUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SpecDocMutation object of the builder.
func (_u *SpecDocUpdateOne) Mutation() *SpecDocMutation {
	return _u.mutation
}

// Where appends a list predicates to the SpecDocUpdate builder.
func (_u *SpecDocUpdateOne) Where(ps ...predicate.SpecDoc) *SpecDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpecDocUpdateOne) Select(field string, fields ...string) *SpecDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SpecDoc entity.
func (_u *SpecDocUpdateOne) Save(ctx context.Context) (*SpecDoc, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpecDocUpdateOne) SaveX(ctx context.Context) *SpecDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpecDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpecDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpecDocUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := specdoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpecDocUpdateOne) check() error {
	if v, ok := _u.mutation.CurrentPhase(); ok {
		if err := specdoc.CurrentPhaseValidator(v); err != nil {
			return &ValidationError{Name: "current_phase", err: fmt.Errorf(`ent: validator failed for field "SpecDoc.current_phase": %w`, err)}
		}
	}
	return nil
}

func (_u *SpecDocUpdateOne) sqlSave(ctx context.Context) (_node *SpecDoc, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(specdoc.Table, specdoc.Columns, sqlgraph.NewFieldSpec(specdoc.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SpecDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, specdoc.FieldID)
		for _, f := range fields {
			if !specdoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != specdoc.FieldID {
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
		_spec.SetField(specdoc.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(specdoc.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(specdoc.FieldCurrentPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PhaseData(); ok {
		_spec.SetField(specdoc.FieldPhaseData, field.TypeJSON, value)
	}
	if _u.mutation.PhaseDataCleared() {
		_spec.ClearField(specdoc.FieldPhaseData, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionTranscripts(); ok {
		_spec.SetField(specdoc.FieldSessionTranscripts, field.TypeJSON, value)
	}
	if _u.mutation.SessionTranscriptsCleared() {
		_spec.ClearField(specdoc.FieldSessionTranscripts, field.TypeJSON)
	}
	if value, ok := _u.mutation.PhaseAttempts(); ok {
		_spec.SetField(specdoc.FieldPhaseAttempts, field.TypeJSON, value)
	}
	if _u.mutation.PhaseAttemptsCleared() {
		_spec.ClearField(specdoc.FieldPhaseAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastCheckpointAt(); ok {
		_spec.SetField(specdoc.FieldLastCheckpointAt, field.TypeTime, value)
	}
	if _u.mutation.LastCheckpointAtCleared() {
		_spec.ClearField(specdoc.FieldLastCheckpointAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(specdoc.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(specdoc.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ShareToken(); ok {
		_spec.SetField(specdoc.FieldShareToken, field.TypeString, value)
	}
	if _u.mutation.ShareTokenCleared() {
		_spec.ClearField(specdoc.FieldShareToken, field.TypeString)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(specdoc.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(specdoc.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(specdoc.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(specdoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(specdoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(specdoc.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SpecDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{specdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
