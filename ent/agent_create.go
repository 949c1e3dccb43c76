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
	"github.com/helmsman-ai/helmsman/ent/agent"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *AgentCreate) SetName(v string) *AgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAgentType sets the "agent_type" field.
func (_c *AgentCreate) SetAgentType(v string) *AgentCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentCreate) SetStatus(v agent.Status) *AgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStatus(v *agent.Status) *AgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *AgentCreate) SetCapabilities(v []string) *AgentCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetCapacity sets the "capacity" field.
func (_c *AgentCreate) SetCapacity(v int) *AgentCreate {
	_c.mutation.SetCapacity(v)
	return _c
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCapacity(v *int) *AgentCreate {
	if v != nil {
		_c.SetCapacity(*v)
	}
	return _c
}

// SetHealthMetrics sets the "health_metrics" field.
func (_c *AgentCreate) SetHealthMetrics(v map[string]interface{}) *AgentCreate {
	_c.mutation.SetHealthMetrics(v)
	return _c
}

// SetAnomalyScore sets the "anomaly_score" field.
func (_c *AgentCreate) SetAnomalyScore(v float64) *AgentCreate {
	_c.mutation.SetAnomalyScore(v)
	return _c
}

// SetNillableAnomalyScore sets the "anomaly_score" field if the given value is not nil.
func (_c *AgentCreate) SetNillableAnomalyScore(v *float64) *AgentCreate {
	if v != nil {
		_c.SetAnomalyScore(*v)
	}
	return _c
}

// SetConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field.
func (_c *AgentCreate) SetConsecutiveAnomalousReadings(v int) *AgentCreate {
	_c.mutation.SetConsecutiveAnomalousReadings(v)
	return _c
}

// SetNillableConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field if the given value is not nil.
func (_c *AgentCreate) SetNillableConsecutiveAnomalousReadings(v *int) *AgentCreate {
	if v != nil {
		_c.SetConsecutiveAnomalousReadings(*v)
	}
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *AgentCreate) SetSequenceNumber(v int64) *AgentCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_c *AgentCreate) SetNillableSequenceNumber(v *int64) *AgentCreate {
	if v != nil {
		_c.SetSequenceNumber(*v)
	}
	return _c
}

// SetConsecutiveMissedHeartbeats sets the "consecutive_missed_heartbeats" field.
func (_c *AgentCreate) SetConsecutiveMissedHeartbeats(v int) *AgentCreate {
	_c.mutation.SetConsecutiveMissedHeartbeats(v)
	return _c
}

// SetNillableConsecutiveMissedHeartbeats sets the "consecutive_missed_heartbeats" field if the given value is not nil.
func (_c *AgentCreate) SetNillableConsecutiveMissedHeartbeats(v *int) *AgentCreate {
	if v != nil {
		_c.SetConsecutiveMissedHeartbeats(*v)
	}
	return _c
}

// SetCorruptHeartbeats sets the "corrupt_heartbeats" field.
func (_c *AgentCreate) SetCorruptHeartbeats(v int) *AgentCreate {
	_c.mutation.SetCorruptHeartbeats(v)
	return _c
}

// SetNillableCorruptHeartbeats sets the "corrupt_heartbeats" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCorruptHeartbeats(v *int) *AgentCreate {
	if v != nil {
		_c.SetCorruptHeartbeats(*v)
	}
	return _c
}

// SetCryptoPublicKey sets the "crypto_public_key" field.
func (_c *AgentCreate) SetCryptoPublicKey(v string) *AgentCreate {
	_c.mutation.SetCryptoPublicKey(v)
	return _c
}

// SetNillableCryptoPublicKey sets the "crypto_public_key" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCryptoPublicKey(v *string) *AgentCreate {
	if v != nil {
		_c.SetCryptoPublicKey(*v)
	}
	return _c
}

// SetCurrentTaskID sets the "current_task_id" field.
func (_c *AgentCreate) SetCurrentTaskID(v string) *AgentCreate {
	_c.mutation.SetCurrentTaskID(v)
	return _c
}

// SetNillableCurrentTaskID sets the "current_task_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCurrentTaskID(v *string) *AgentCreate {
	if v != nil {
		_c.SetCurrentTaskID(*v)
	}
	return _c
}

// SetSandboxID sets the "sandbox_id" field.
func (_c *AgentCreate) SetSandboxID(v string) *AgentCreate {
	_c.mutation.SetSandboxID(v)
	return _c
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableSandboxID(v *string) *AgentCreate {
	if v != nil {
		_c.SetSandboxID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AgentCreate) SetMetadata(v map[string]interface{}) *AgentCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetKeptAliveForValidation sets the "kept_alive_for_validation" field.
func (_c *AgentCreate) SetKeptAliveForValidation(v bool) *AgentCreate {
	_c.mutation.SetKeptAliveForValidation(v)
	return _c
}

// SetNillableKeptAliveForValidation sets the "kept_alive_for_validation" field if the given value is not nil.
func (_c *AgentCreate) SetNillableKeptAliveForValidation(v *bool) *AgentCreate {
	if v != nil {
		_c.SetKeptAliveForValidation(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *AgentCreate) SetVersion(v int) *AgentCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *AgentCreate) SetNillableVersion(v *int) *AgentCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *AgentCreate) SetLastHeartbeatAt(v time.Time) *AgentCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastHeartbeatAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetRegisteredAt sets the "registered_at" field.
func (_c *AgentCreate) SetRegisteredAt(v time.Time) *AgentCreate {
	_c.mutation.SetRegisteredAt(v)
	return _c
}

// SetNillableRegisteredAt sets the "registered_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableRegisteredAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetRegisteredAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentCreate) SetUpdatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableUpdatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Capacity(); !ok {
		v := agent.DefaultCapacity
		_c.mutation.SetCapacity(v)
	}
	if _, ok := _c.mutation.AnomalyScore(); !ok {
		v := agent.DefaultAnomalyScore
		_c.mutation.SetAnomalyScore(v)
	}
	if _, ok := _c.mutation.ConsecutiveAnomalousReadings(); !ok {
		v := agent.DefaultConsecutiveAnomalousReadings
		_c.mutation.SetConsecutiveAnomalousReadings(v)
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		v := agent.DefaultSequenceNumber
		_c.mutation.SetSequenceNumber(v)
	}
	if _, ok := _c.mutation.ConsecutiveMissedHeartbeats(); !ok {
		v := agent.DefaultConsecutiveMissedHeartbeats
		_c.mutation.SetConsecutiveMissedHeartbeats(v)
	}
	if _, ok := _c.mutation.CorruptHeartbeats(); !ok {
		v := agent.DefaultCorruptHeartbeats
		_c.mutation.SetCorruptHeartbeats(v)
	}
	if _, ok := _c.mutation.KeptAliveForValidation(); !ok {
		v := agent.DefaultKeptAliveForValidation
		_c.mutation.SetKeptAliveForValidation(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := agent.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.RegisteredAt(); !ok {
		v := agent.DefaultRegisteredAt()
		_c.mutation.SetRegisteredAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Agent.name"`)}
	}
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "Agent.agent_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Capacity(); !ok {
		return &ValidationError{Name: "capacity", err: errors.New(`ent: missing required field "Agent.capacity"`)}
	}
	if _, ok := _c.mutation.AnomalyScore(); !ok {
		return &ValidationError{Name: "anomaly_score", err: errors.New(`ent: missing required field "Agent.anomaly_score"`)}
	}
	if _, ok := _c.mutation.ConsecutiveAnomalousReadings(); !ok {
		return &ValidationError{Name: "consecutive_anomalous_readings", err: errors.New(`ent: missing required field "Agent.consecutive_anomalous_readings"`)}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "Agent.sequence_number"`)}
	}
	if _, ok := _c.mutation.ConsecutiveMissedHeartbeats(); !ok {
		return &ValidationError{Name: "consecutive_missed_heartbeats", err: errors.New(`ent: missing required field "Agent.consecutive_missed_heartbeats"`)}
	}
	if _, ok := _c.mutation.CorruptHeartbeats(); !ok {
		return &ValidationError{Name: "corrupt_heartbeats", err: errors.New(`ent: missing required field "Agent.corrupt_heartbeats"`)}
	}
	if _, ok := _c.mutation.KeptAliveForValidation(); !ok {
		return &ValidationError{Name: "kept_alive_for_validation", err: errors.New(`ent: missing required field "Agent.kept_alive_for_validation"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Agent.version"`)}
	}
	if _, ok := _c.mutation.RegisteredAt(); !ok {
		return &ValidationError{Name: "registered_at", err: errors.New(`ent: missing required field "Agent.registered_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Agent.updated_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(agent.FieldAgentType, field.TypeString, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.Capacity(); ok {
		_spec.SetField(agent.FieldCapacity, field.TypeInt, value)
		_node.Capacity = value
	}
	if value, ok := _c.mutation.HealthMetrics(); ok {
		_spec.SetField(agent.FieldHealthMetrics, field.TypeJSON, value)
		_node.HealthMetrics = value
	}
	if value, ok := _c.mutation.AnomalyScore(); ok {
		_spec.SetField(agent.FieldAnomalyScore, field.TypeFloat64, value)
		_node.AnomalyScore = value
	}
	if value, ok := _c.mutation.ConsecutiveAnomalousReadings(); ok {
		_spec.SetField(agent.FieldConsecutiveAnomalousReadings, field.TypeInt, value)
		_node.ConsecutiveAnomalousReadings = value
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(agent.FieldSequenceNumber, field.TypeInt64, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.ConsecutiveMissedHeartbeats(); ok {
		_spec.SetField(agent.FieldConsecutiveMissedHeartbeats, field.TypeInt, value)
		_node.ConsecutiveMissedHeartbeats = value
	}
	if value, ok := _c.mutation.CorruptHeartbeats(); ok {
		_spec.SetField(agent.FieldCorruptHeartbeats, field.TypeInt, value)
		_node.CorruptHeartbeats = value
	}
	if value, ok := _c.mutation.CryptoPublicKey(); ok {
		_spec.SetField(agent.FieldCryptoPublicKey, field.TypeString, value)
		_node.CryptoPublicKey = value
	}
	if value, ok := _c.mutation.CurrentTaskID(); ok {
		_spec.SetField(agent.FieldCurrentTaskID, field.TypeString, value)
		_node.CurrentTaskID = &value
	}
	if value, ok := _c.mutation.SandboxID(); ok {
		_spec.SetField(agent.FieldSandboxID, field.TypeString, value)
		_node.SandboxID = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(agent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.KeptAliveForValidation(); ok {
		_spec.SetField(agent.FieldKeptAliveForValidation, field.TypeBool, value)
		_node.KeptAliveForValidation = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(agent.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(agent.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.RegisteredAt(); ok {
		_spec.SetField(agent.FieldRegisteredAt, field.TypeTime, value)
		_node.RegisteredAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreate) OnConflict(opts ...sql.ConflictOption) *AgentUpsertOne {
	_c.conflict = opts
	return &AgentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreate) OnConflictColumns(columns ...string) *AgentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertOne{
		create: _c,
	}
}

type (
	// AgentUpsertOne is the builder for "upsert"-ing
	//  one Agent node.
	AgentUpsertOne struct {
		create *AgentCreate
	}

	// AgentUpsert is the "OnConflict" setter.
	AgentUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *AgentUpsert) SetName(v string) *AgentUpsert {
	u.Set(agent.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsert) UpdateName() *AgentUpsert {
	u.SetExcluded(agent.FieldName)
	return u
}

// SetAgentType sets the "agent_type" field.
func (u *AgentUpsert) SetAgentType(v string) *AgentUpsert {
	u.Set(agent.FieldAgentType, v)
	return u
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *AgentUpsert) UpdateAgentType() *AgentUpsert {
	u.SetExcluded(agent.FieldAgentType)
	return u
}

// SetStatus sets the "status" field.
func (u *AgentUpsert) SetStatus(v agent.Status) *AgentUpsert {
	u.Set(agent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsert) UpdateStatus() *AgentUpsert {
	u.SetExcluded(agent.FieldStatus)
	return u
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsert) SetCapabilities(v []string) *AgentUpsert {
	u.Set(agent.FieldCapabilities, v)
	return u
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsert) UpdateCapabilities() *AgentUpsert {
	u.SetExcluded(agent.FieldCapabilities)
	return u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *AgentUpsert) ClearCapabilities() *AgentUpsert {
	u.SetNull(agent.FieldCapabilities)
	return u
}

// SetCapacity sets the "capacity" field.
func (u *AgentUpsert) SetCapacity(v int) *AgentUpsert {
	u.Set(agent.FieldCapacity, v)
	return u
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *AgentUpsert) UpdateCapacity() *AgentUpsert {
	u.SetExcluded(agent.FieldCapacity)
	return u
}

// AddCapacity adds v to the "capacity" field.
func (u *AgentUpsert) AddCapacity(v int) *AgentUpsert {
	u.Add(agent.FieldCapacity, v)
	return u
}

// SetHealthMetrics sets the "health_metrics" field.
func (u *AgentUpsert) SetHealthMetrics(v map[string]interface{}) *AgentUpsert {
	u.Set(agent.FieldHealthMetrics, v)
	return u
}

// UpdateHealthMetrics sets the "health_metrics" field to the value that was provided on create.
func (u *AgentUpsert) UpdateHealthMetrics() *AgentUpsert {
	u.SetExcluded(agent.FieldHealthMetrics)
	return u
}

// ClearHealthMetrics clears the value of the "health_metrics" field.
func (u *AgentUpsert) ClearHealthMetrics() *AgentUpsert {
	u.SetNull(agent.FieldHealthMetrics)
	return u
}

// SetAnomalyScore sets the "anomaly_score" field.
func (u *AgentUpsert) SetAnomalyScore(v float64) *AgentUpsert {
	u.Set(agent.FieldAnomalyScore, v)
	return u
}

// UpdateAnomalyScore sets the "anomaly_score" field to the value that was provided on create.
func (u *AgentUpsert) UpdateAnomalyScore() *AgentUpsert {
	u.SetExcluded(agent.FieldAnomalyScore)
	return u
}

// AddAnomalyScore adds v to the "anomaly_score" field.
func (u *AgentUpsert) AddAnomalyScore(v float64) *AgentUpsert {
	u.Add(agent.FieldAnomalyScore, v)
	return u
}

// SetConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field.
func (u *AgentUpsert) SetConsecutiveAnomalousReadings(v int) *AgentUpsert {
	u.Set(agent.FieldConsecutiveAnomalousReadings, v)
	return u
}

// UpdateConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field to the value that was provided on create.
func (u *AgentUpsert) UpdateConsecutiveAnomalousReadings() *AgentUpsert {
	u.SetExcluded(agent.FieldConsecutiveAnomalousReadings)
	return u
}

// AddConsecutiveAnomalousReadings adds v to the "consecutive_anomalous_readings" field.
func (u *AgentUpsert) AddConsecutiveAnomalousReadings(v int) *AgentUpsert {
	u.Add(agent.FieldConsecutiveAnomalousReadings, v)
	return u
}

// SetSequenceNumber sets the "sequence_number" field.
func (u *AgentUpsert) SetSequenceNumber(v int64) *AgentUpsert {
	u.Set(agent.FieldSequenceNumber, v)
	return u
}

// UpdateSequenceNumber sets the "sequence_number" field to the value that was provided on create.
func (u *AgentUpsert) UpdateSequenceNumber() *AgentUpsert {
	u.SetExcluded(agent.FieldSequenceNumber)
	return u
}

// AddSequenceNumber adds v to the "sequence_number" field.
func (u *AgentUpsert) AddSequenceNumber(v int64) *AgentUpsert {
	u.Add(agent.FieldSequenceNumber, v)
	return u
}

// SetConsecutiveMissedHeartbeats sets the "consecutive_missed_heartbeats" field.
func (u *AgentUpsert) SetConsecutiveMissedHeartbeats(v int) *AgentUpsert {
	u.Set(agent.FieldConsecutiveMissedHeartbeats, v)
	return u
}

// UpdateConsecutiveMissedHeartbeats sets the "consecutive_missed_heartbeats" field to the value that was provided on create.
func (u *AgentUpsert) UpdateConsecutiveMissedHeartbeats() *AgentUpsert {
	u.SetExcluded(agent.FieldConsecutiveMissedHeartbeats)
	return u
}

// AddConsecutiveMissedHeartbeats adds v to the "consecutive_missed_heartbeats" field.
func (u *AgentUpsert) AddConsecutiveMissedHeartbeats(v int) *AgentUpsert {
	u.Add(agent.FieldConsecutiveMissedHeartbeats, v)
	return u
}

// SetCorruptHeartbeats sets the "corrupt_heartbeats" field.
func (u *AgentUpsert) SetCorruptHeartbeats(v int) *AgentUpsert {
	u.Set(agent.FieldCorruptHeartbeats, v)
	return u
}

// UpdateCorruptHeartbeats sets the "corrupt_heartbeats" field to the value that was provided on create.
func (u *AgentUpsert) UpdateCorruptHeartbeats() *AgentUpsert {
	u.SetExcluded(agent.FieldCorruptHeartbeats)
	return u
}

// AddCorruptHeartbeats adds v to the "corrupt_heartbeats" field.
func (u *AgentUpsert) AddCorruptHeartbeats(v int) *AgentUpsert {
	u.Add(agent.FieldCorruptHeartbeats, v)
	return u
}

// SetCryptoPublicKey sets the "crypto_public_key" field.
func (u *AgentUpsert) SetCryptoPublicKey(v string) *AgentUpsert {
	u.Set(agent.FieldCryptoPublicKey, v)
	return u
}

// UpdateCryptoPublicKey sets the "crypto_public_key" field to the value that was provided on create.
func (u *AgentUpsert) UpdateCryptoPublicKey() *AgentUpsert {
	u.SetExcluded(agent.FieldCryptoPublicKey)
	return u
}

// ClearCryptoPublicKey clears the value of the "crypto_public_key" field.
func (u *AgentUpsert) ClearCryptoPublicKey() *AgentUpsert {
	u.SetNull(agent.FieldCryptoPublicKey)
	return u
}

// SetCurrentTaskID sets the "current_task_id" field.
func (u *AgentUpsert) SetCurrentTaskID(v string) *AgentUpsert {
	u.Set(agent.FieldCurrentTaskID, v)
	return u
}

// UpdateCurrentTaskID sets the "current_task_id" field to the value that was provided on create.
func (u *AgentUpsert) UpdateCurrentTaskID() *AgentUpsert {
	u.SetExcluded(agent.FieldCurrentTaskID)
	return u
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (u *AgentUpsert) ClearCurrentTaskID() *AgentUpsert {
	u.SetNull(agent.FieldCurrentTaskID)
	return u
}

// SetSandboxID sets the "sandbox_id" field.
func (u *AgentUpsert) SetSandboxID(v string) *AgentUpsert {
	u.Set(agent.FieldSandboxID, v)
	return u
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *AgentUpsert) UpdateSandboxID() *AgentUpsert {
	u.SetExcluded(agent.FieldSandboxID)
	return u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *AgentUpsert) ClearSandboxID() *AgentUpsert {
	u.SetNull(agent.FieldSandboxID)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *AgentUpsert) SetMetadata(v map[string]interface{}) *AgentUpsert {
	u.Set(agent.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AgentUpsert) UpdateMetadata() *AgentUpsert {
	u.SetExcluded(agent.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AgentUpsert) ClearMetadata() *AgentUpsert {
	u.SetNull(agent.FieldMetadata)
	return u
}

// SetKeptAliveForValidation sets the "kept_alive_for_validation" field.
func (u *AgentUpsert) SetKeptAliveForValidation(v bool) *AgentUpsert {
	u.Set(agent.FieldKeptAliveForValidation, v)
	return u
}

// UpdateKeptAliveForValidation sets the "kept_alive_for_validation" field to the value that was provided on create.
func (u *AgentUpsert) UpdateKeptAliveForValidation() *AgentUpsert {
	u.SetExcluded(agent.FieldKeptAliveForValidation)
	return u
}

// SetVersion sets the "version" field.
func (u *AgentUpsert) SetVersion(v int) *AgentUpsert {
	u.Set(agent.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentUpsert) UpdateVersion() *AgentUpsert {
	u.SetExcluded(agent.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *AgentUpsert) AddVersion(v int) *AgentUpsert {
	u.Add(agent.FieldVersion, v)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *AgentUpsert) SetLastHeartbeatAt(v time.Time) *AgentUpsert {
	u.Set(agent.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *AgentUpsert) UpdateLastHeartbeatAt() *AgentUpsert {
	u.SetExcluded(agent.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *AgentUpsert) ClearLastHeartbeatAt() *AgentUpsert {
	u.SetNull(agent.FieldLastHeartbeatAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentUpsert) SetUpdatedAt(v time.Time) *AgentUpsert {
	u.Set(agent.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentUpsert) UpdateUpdatedAt() *AgentUpsert {
	u.SetExcluded(agent.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertOne) UpdateNewValues() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agent.FieldID)
		}
		if _, exists := u.create.mutation.RegisteredAt(); exists {
			s.SetIgnore(agent.FieldRegisteredAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentUpsertOne) Ignore() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertOne) DoNothing() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreate.OnConflict
// documentation for more info.
func (u *AgentUpsertOne) Update(set func(*AgentUpsert)) *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *AgentUpsertOne) SetName(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateName() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateName()
	})
}

// SetAgentType sets the "agent_type" field.
func (u *AgentUpsertOne) SetAgentType(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetAgentType(v)
	})
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateAgentType() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAgentType()
	})
}

// SetStatus sets the "status" field.
func (u *AgentUpsertOne) SetStatus(v agent.Status) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateStatus() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateStatus()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsertOne) SetCapabilities(v []string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateCapabilities() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCapabilities()
	})
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *AgentUpsertOne) ClearCapabilities() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCapabilities()
	})
}

// SetCapacity sets the "capacity" field.
func (u *AgentUpsertOne) SetCapacity(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetCapacity(v)
	})
}

// AddCapacity adds v to the "capacity" field.
func (u *AgentUpsertOne) AddCapacity(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddCapacity(v)
	})
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateCapacity() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCapacity()
	})
}

// SetHealthMetrics sets the "health_metrics" field.
func (u *AgentUpsertOne) SetHealthMetrics(v map[string]interface{}) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetHealthMetrics(v)
	})
}

// UpdateHealthMetrics sets the "health_metrics" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateHealthMetrics() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateHealthMetrics()
	})
}

// ClearHealthMetrics clears the value of the "health_metrics" field.
func (u *AgentUpsertOne) ClearHealthMetrics() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearHealthMetrics()
	})
}

// SetAnomalyScore sets the "anomaly_score" field.
func (u *AgentUpsertOne) SetAnomalyScore(v float64) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetAnomalyScore(v)
	})
}

// AddAnomalyScore adds v to the "anomaly_score" field.
func (u *AgentUpsertOne) AddAnomalyScore(v float64) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddAnomalyScore(v)
	})
}

// UpdateAnomalyScore sets the "anomaly_score" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateAnomalyScore() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAnomalyScore()
	})
}

// SetConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field.
func (u *AgentUpsertOne) SetConsecutiveAnomalousReadings(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetConsecutiveAnomalousReadings(v)
	})
}

// AddConsecutiveAnomalousReadings adds v to the "consecutive_anomalous_readings" field.
func (u *AgentUpsertOne) AddConsecutiveAnomalousReadings(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddConsecutiveAnomalousReadings(v)
	})
}

// UpdateConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateConsecutiveAnomalousReadings() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateConsecutiveAnomalousReadings()
	})
}

// SetSequenceNumber sets the "sequence_number" field.
func (u *AgentUpsertOne) SetSequenceNumber(v int64) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetSequenceNumber(v)
	})
}

// AddSequenceNumber adds v to the "sequence_number" field.
func (u *AgentUpsertOne) AddSequenceNumber(v int64) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddSequenceNumber(v)
	})
}

// UpdateSequenceNumber sets the "sequence_number" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateSequenceNumber() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateSequenceNumber()
	})
}

// SetConsecutiveMissedHeartbeats sets the "consecutive_missed_heartbeats" field.
func (u *AgentUpsertOne) SetConsecutiveMissedHeartbeats(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetConsecutiveMissedHeartbeats(v)
	})
}

// AddConsecutiveMissedHeartbeats adds v to the "consecutive_missed_heartbeats" field.
func (u *AgentUpsertOne) AddConsecutiveMissedHeartbeats(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddConsecutiveMissedHeartbeats(v)
	})
}

// UpdateConsecutiveMissedHeartbeats sets the "consecutive_missed_heartbeats" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateConsecutiveMissedHeartbeats() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateConsecutiveMissedHeartbeats()
	})
}

// SetCorruptHeartbeats sets the "corrupt_heartbeats" field.
func (u *AgentUpsertOne) SetCorruptHeartbeats(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetCorruptHeartbeats(v)
	})
}

// AddCorruptHeartbeats adds v to the "corrupt_heartbeats" field.
func (u *AgentUpsertOne) AddCorruptHeartbeats(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddCorruptHeartbeats(v)
	})
}

// UpdateCorruptHeartbeats sets the "corrupt_heartbeats" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateCorruptHeartbeats() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCorruptHeartbeats()
	})
}

// SetCryptoPublicKey sets the "crypto_public_key" field.
func (u *AgentUpsertOne) SetCryptoPublicKey(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetCryptoPublicKey(v)
	})
}

// UpdateCryptoPublicKey sets the "crypto_public_key" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateCryptoPublicKey() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCryptoPublicKey()
	})
}

// ClearCryptoPublicKey clears the value of the "crypto_public_key" field.
func (u *AgentUpsertOne) ClearCryptoPublicKey() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCryptoPublicKey()
	})
}

// SetCurrentTaskID sets the "current_task_id" field.
func (u *AgentUpsertOne) SetCurrentTaskID(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetCurrentTaskID(v)
	})
}

// UpdateCurrentTaskID sets the "current_task_id" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateCurrentTaskID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCurrentTaskID()
	})
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (u *AgentUpsertOne) ClearCurrentTaskID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCurrentTaskID()
	})
}

// SetSandboxID sets the "sandbox_id" field.
func (u *AgentUpsertOne) SetSandboxID(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetSandboxID(v)
	})
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateSandboxID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateSandboxID()
	})
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *AgentUpsertOne) ClearSandboxID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearSandboxID()
	})
}

// SetMetadata sets the "metadata" field.
func (u *AgentUpsertOne) SetMetadata(v map[string]interface{}) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateMetadata() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AgentUpsertOne) ClearMetadata() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearMetadata()
	})
}

// SetKeptAliveForValidation sets the "kept_alive_for_validation" field.
func (u *AgentUpsertOne) SetKeptAliveForValidation(v bool) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetKeptAliveForValidation(v)
	})
}

// UpdateKeptAliveForValidation sets the "kept_alive_for_validation" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateKeptAliveForValidation() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateKeptAliveForValidation()
	})
}

// SetVersion sets the "version" field.
func (u *AgentUpsertOne) SetVersion(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *AgentUpsertOne) AddVersion(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateVersion() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateVersion()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *AgentUpsertOne) SetLastHeartbeatAt(v time.Time) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateLastHeartbeatAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *AgentUpsertOne) ClearLastHeartbeatAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentUpsertOne) SetUpdatedAt(v time.Time) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateUpdatedAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentUpsertOne.ID is not supported by MySQL driver. Use AgentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
	conflict []sql.ConflictOption
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentUpsertBulk {
	_c.conflict = opts
	return &AgentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflictColumns(columns ...string) *AgentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertBulk{
		create: _c,
	}
}

// AgentUpsertBulk is the builder for "upsert"-ing
// a bulk of Agent nodes.
type AgentUpsertBulk struct {
	create *AgentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertBulk) UpdateNewValues() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agent.FieldID)
			}
			if _, exists := b.mutation.RegisteredAt(); exists {
				s.SetIgnore(agent.FieldRegisteredAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentUpsertBulk) Ignore() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertBulk) DoNothing() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreateBulk.OnConflict
// documentation for more info.
func (u *AgentUpsertBulk) Update(set func(*AgentUpsert)) *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *AgentUpsertBulk) SetName(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateName() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateName()
	})
}

// SetAgentType sets the "agent_type" field.
func (u *AgentUpsertBulk) SetAgentType(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetAgentType(v)
	})
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateAgentType() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAgentType()
	})
}

// SetStatus sets the "status" field.
func (u *AgentUpsertBulk) SetStatus(v agent.Status) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateStatus() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateStatus()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsertBulk) SetCapabilities(v []string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateCapabilities() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCapabilities()
	})
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *AgentUpsertBulk) ClearCapabilities() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCapabilities()
	})
}

// SetCapacity sets the "capacity" field.
func (u *AgentUpsertBulk) SetCapacity(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetCapacity(v)
	})
}

// AddCapacity adds v to the "capacity" field.
func (u *AgentUpsertBulk) AddCapacity(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddCapacity(v)
	})
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateCapacity() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCapacity()
	})
}

// SetHealthMetrics sets the "health_metrics" field.
func (u *AgentUpsertBulk) SetHealthMetrics(v map[string]interface{}) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetHealthMetrics(v)
	})
}

// UpdateHealthMetrics sets the "health_metrics" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateHealthMetrics() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateHealthMetrics()
	})
}

// ClearHealthMetrics clears the value of the "health_metrics" field.
func (u *AgentUpsertBulk) ClearHealthMetrics() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearHealthMetrics()
	})
}

// SetAnomalyScore sets the "anomaly_score" field.
func (u *AgentUpsertBulk) SetAnomalyScore(v float64) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetAnomalyScore(v)
	})
}

// AddAnomalyScore adds v to the "anomaly_score" field.
func (u *AgentUpsertBulk) AddAnomalyScore(v float64) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddAnomalyScore(v)
	})
}

// UpdateAnomalyScore sets the "anomaly_score" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateAnomalyScore() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAnomalyScore()
	})
}

// SetConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field.
func (u *AgentUpsertBulk) SetConsecutiveAnomalousReadings(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetConsecutiveAnomalousReadings(v)
	})
}

// AddConsecutiveAnomalousReadings adds v to the "consecutive_anomalous_readings" field.
func (u *AgentUpsertBulk) AddConsecutiveAnomalousReadings(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddConsecutiveAnomalousReadings(v)
	})
}

// UpdateConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateConsecutiveAnomalousReadings() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateConsecutiveAnomalousReadings()
	})
}

// SetSequenceNumber sets the "sequence_number" field.
func (u *AgentUpsertBulk) SetSequenceNumber(v int64) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetSequenceNumber(v)
	})
}

// AddSequenceNumber adds v to the "sequence_number" field.
func (u *AgentUpsertBulk) AddSequenceNumber(v int64) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddSequenceNumber(v)
	})
}

// UpdateSequenceNumber sets the "sequence_number" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateSequenceNumber() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateSequenceNumber()
	})
}

// SetConsecutiveMissedHeartbeats sets the "consecutive_missed_heartbeats" field.
func (u *AgentUpsertBulk) SetConsecutiveMissedHeartbeats(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetConsecutiveMissedHeartbeats(v)
	})
}

// AddConsecutiveMissedHeartbeats adds v to the "consecutive_missed_heartbeats" field.
func (u *AgentUpsertBulk) AddConsecutiveMissedHeartbeats(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddConsecutiveMissedHeartbeats(v)
	})
}

// UpdateConsecutiveMissedHeartbeats sets the "consecutive_missed_heartbeats" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateConsecutiveMissedHeartbeats() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateConsecutiveMissedHeartbeats()
	})
}

// SetCorruptHeartbeats sets the "corrupt_heartbeats" field.
func (u *AgentUpsertBulk) SetCorruptHeartbeats(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetCorruptHeartbeats(v)
	})
}

// AddCorruptHeartbeats adds v to the "corrupt_heartbeats" field.
func (u *AgentUpsertBulk) AddCorruptHeartbeats(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddCorruptHeartbeats(v)
	})
}

// UpdateCorruptHeartbeats sets the "corrupt_heartbeats" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateCorruptHeartbeats() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCorruptHeartbeats()
	})
}

// SetCryptoPublicKey sets the "crypto_public_key" field.
func (u *AgentUpsertBulk) SetCryptoPublicKey(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetCryptoPublicKey(v)
	})
}

// UpdateCryptoPublicKey sets the "crypto_public_key" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateCryptoPublicKey() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCryptoPublicKey()
	})
}

// ClearCryptoPublicKey clears the value of the "crypto_public_key" field.
func (u *AgentUpsertBulk) ClearCryptoPublicKey() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCryptoPublicKey()
	})
}

// SetCurrentTaskID sets the "current_task_id" field.
func (u *AgentUpsertBulk) SetCurrentTaskID(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetCurrentTaskID(v)
	})
}

// UpdateCurrentTaskID sets the "current_task_id" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateCurrentTaskID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCurrentTaskID()
	})
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (u *AgentUpsertBulk) ClearCurrentTaskID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCurrentTaskID()
	})
}

// SetSandboxID sets the "sandbox_id" field.
func (u *AgentUpsertBulk) SetSandboxID(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetSandboxID(v)
	})
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateSandboxID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateSandboxID()
	})
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *AgentUpsertBulk) ClearSandboxID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearSandboxID()
	})
}

// SetMetadata sets the "metadata" field.
func (u *AgentUpsertBulk) SetMetadata(v map[string]interface{}) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateMetadata() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AgentUpsertBulk) ClearMetadata() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearMetadata()
	})
}

// SetKeptAliveForValidation sets the "kept_alive_for_validation" field.
func (u *AgentUpsertBulk) SetKeptAliveForValidation(v bool) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetKeptAliveForValidation(v)
	})
}

// UpdateKeptAliveForValidation sets the "kept_alive_for_validation" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateKeptAliveForValidation() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateKeptAliveForValidation()
	})
}

// SetVersion sets the "version" field.
func (u *AgentUpsertBulk) SetVersion(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *AgentUpsertBulk) AddVersion(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateVersion() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateVersion()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *AgentUpsertBulk) SetLastHeartbeatAt(v time.Time) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateLastHeartbeatAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *AgentUpsertBulk) ClearLastHeartbeatAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentUpsertBulk) SetUpdatedAt(v time.Time) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateUpdatedAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
