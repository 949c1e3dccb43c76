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
	"github.com/helmsman-ai/helmsman/ent/agent"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdate) SetName(v string) *AgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentUpdate) SetAgentType(v string) *AgentUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAgentType(v *string) *AgentUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v agent.Status) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *agent.Status) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentUpdate) SetCapabilities(v []string) *AgentUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentUpdate) AppendCapabilities(v []string) *AgentUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *AgentUpdate) ClearCapabilities() *AgentUpdate {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *AgentUpdate) SetCapacity(v int) *AgentUpdate {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCapacity(v *int) *AgentUpdate {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *AgentUpdate) AddCapacity(v int) *AgentUpdate {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetHealthMetrics sets the "health_metrics" field.
func (_u *AgentUpdate) SetHealthMetrics(v map[string]interface{}) *AgentUpdate {
	_u.mutation.SetHealthMetrics(v)
	return _u
}

// ClearHealthMetrics clears the value of the "health_metrics" field.
func (_u *AgentUpdate) ClearHealthMetrics() *AgentUpdate {
	_u.mutation.ClearHealthMetrics()
	return _u
}

// SetAnomalyScore sets the "anomaly_score" field.
func (_u *AgentUpdate) SetAnomalyScore(v float64) *AgentUpdate {
	_u.mutation.ResetAnomalyScore()
	_u.mutation.SetAnomalyScore(v)
	return _u
}

// SetNillableAnomalyScore sets the "anomaly_score" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAnomalyScore(v *float64) *AgentUpdate {
	if v != nil {
		_u.SetAnomalyScore(*v)
	}
	return _u
}

// AddAnomalyScore adds value to the "anomaly_score" field.
func (_u *AgentUpdate) AddAnomalyScore(v float64) *AgentUpdate {
	_u.mutation.AddAnomalyScore(v)
	return _u
}

// SetConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field.
func (_u *AgentUpdate) SetConsecutiveAnomalousReadings(v int) *AgentUpdate {
	_u.mutation.ResetConsecutiveAnomalousReadings()
	_u.mutation.SetConsecutiveAnomalousReadings(v)
	return _u
}

// SetNillableConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableConsecutiveAnomalousReadings(v *int) *AgentUpdate {
	if v != nil {
		_u.SetConsecutiveAnomalousReadings(*v)
	}
	return _u
}

// AddConsecutiveAnomalousReadings adds value to the "consecutive_anomalous_readings" field.
func (_u *AgentUpdate) AddConsecutiveAnomalousReadings(v int) *AgentUpdate {
	_u.mutation.AddConsecutiveAnomalousReadings(v)
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *AgentUpdate) SetSequenceNumber(v int64) *AgentUpdate {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSequenceNumber(v *int64) *AgentUpdate {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *AgentUpdate) AddSequenceNumber(v int64) *AgentUpdate {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetConsecutiveMissedHeartbeats sets the "consecutive_missed_heartbeats" field.
func (_u *AgentUpdate) SetConsecutiveMissedHeartbeats(v int) *AgentUpdate {
	_u.mutation.ResetConsecutiveMissedHeartbeats()
	_u.mutation.SetConsecutiveMissedHeartbeats(v)
	return _u
}

// SetNillableConsecutiveMissedHeartbeats sets the "consecutive_missed_heartbeats" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableConsecutiveMissedHeartbeats(v *int) *AgentUpdate {
	if v != nil {
		_u.SetConsecutiveMissedHeartbeats(*v)
	}
	return _u
}

// AddConsecutiveMissedHeartbeats adds value to the "consecutive_missed_heartbeats" field.
func (_u *AgentUpdate) AddConsecutiveMissedHeartbeats(v int) *AgentUpdate {
	_u.mutation.AddConsecutiveMissedHeartbeats(v)
	return _u
}

// SetCorruptHeartbeats sets the "corrupt_heartbeats" field.
func (_u *AgentUpdate) SetCorruptHeartbeats(v int) *AgentUpdate {
	_u.mutation.ResetCorruptHeartbeats()
	_u.mutation.SetCorruptHeartbeats(v)
	return _u
}

// SetNillableCorruptHeartbeats sets the "corrupt_heartbeats" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCorruptHeartbeats(v *int) *AgentUpdate {
	if v != nil {
		_u.SetCorruptHeartbeats(*v)
	}
	return _u
}

// AddCorruptHeartbeats adds value to the "corrupt_heartbeats" field.
func (_u *AgentUpdate) AddCorruptHeartbeats(v int) *AgentUpdate {
	_u.mutation.AddCorruptHeartbeats(v)
	return _u
}

// SetCryptoPublicKey sets the "crypto_public_key" field.
func (_u *AgentUpdate) SetCryptoPublicKey(v string) *AgentUpdate {
	_u.mutation.SetCryptoPublicKey(v)
	return _u
}

// SetNillableCryptoPublicKey sets the "crypto_public_key" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCryptoPublicKey(v *string) *AgentUpdate {
	if v != nil {
		_u.SetCryptoPublicKey(*v)
	}
	return _u
}

// ClearCryptoPublicKey clears the value of the "crypto_public_key" field.
func (_u *AgentUpdate) ClearCryptoPublicKey() *AgentUpdate {
	_u.mutation.ClearCryptoPublicKey()
	return _u
}

// SetCurrentTaskID sets the "current_task_id" field.
func (_u *AgentUpdate) SetCurrentTaskID(v string) *AgentUpdate {
	_u.mutation.SetCurrentTaskID(v)
	return _u
}

// SetNillableCurrentTaskID sets the "current_task_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCurrentTaskID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetCurrentTaskID(*v)
	}
	return _u
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (_u *AgentUpdate) ClearCurrentTaskID() *AgentUpdate {
	_u.mutation.ClearCurrentTaskID()
	return _u
}

// SetSandboxID sets the "sandbox_id" field.
func (_u *AgentUpdate) SetSandboxID(v string) *AgentUpdate {
	_u.mutation.SetSandboxID(v)
	return _u
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSandboxID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetSandboxID(*v)
	}
	return _u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (_u *AgentUpdate) ClearSandboxID() *AgentUpdate {
	_u.mutation.ClearSandboxID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentUpdate) SetMetadata(v map[string]interface{}) *AgentUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentUpdate) ClearMetadata() *AgentUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetKeptAliveForValidation sets the "kept_alive_for_validation" field.
func (_u *AgentUpdate) SetKeptAliveForValidation(v bool) *AgentUpdate {
	_u.mutation.SetKeptAliveForValidation(v)
	return _u
}

// SetNillableKeptAliveForValidation sets the "kept_alive_for_validation" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableKeptAliveForValidation(v *bool) *AgentUpdate {
	if v != nil {
		_u.SetKeptAliveForValidation(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentUpdate) SetVersion(v int) *AgentUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableVersion(v *int) *AgentUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AgentUpdate) AddVersion(v int) *AgentUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *AgentUpdate) SetLastHeartbeatAt(v time.Time) *AgentUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastHeartbeatAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *AgentUpdate) ClearLastHeartbeatAt() *AgentUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agent.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(agent.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(agent.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(agent.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HealthMetrics(); ok {
		_spec.SetField(agent.FieldHealthMetrics, field.TypeJSON, value)
	}
	if _u.mutation.HealthMetricsCleared() {
		_spec.ClearField(agent.FieldHealthMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnomalyScore(); ok {
		_spec.SetField(agent.FieldAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnomalyScore(); ok {
		_spec.AddField(agent.FieldAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsecutiveAnomalousReadings(); ok {
		_spec.SetField(agent.FieldConsecutiveAnomalousReadings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveAnomalousReadings(); ok {
		_spec.AddField(agent.FieldConsecutiveAnomalousReadings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(agent.FieldSequenceNumber, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(agent.FieldSequenceNumber, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ConsecutiveMissedHeartbeats(); ok {
		_spec.SetField(agent.FieldConsecutiveMissedHeartbeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveMissedHeartbeats(); ok {
		_spec.AddField(agent.FieldConsecutiveMissedHeartbeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorruptHeartbeats(); ok {
		_spec.SetField(agent.FieldCorruptHeartbeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorruptHeartbeats(); ok {
		_spec.AddField(agent.FieldCorruptHeartbeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CryptoPublicKey(); ok {
		_spec.SetField(agent.FieldCryptoPublicKey, field.TypeString, value)
	}
	if _u.mutation.CryptoPublicKeyCleared() {
		_spec.ClearField(agent.FieldCryptoPublicKey, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentTaskID(); ok {
		_spec.SetField(agent.FieldCurrentTaskID, field.TypeString, value)
	}
	if _u.mutation.CurrentTaskIDCleared() {
		_spec.ClearField(agent.FieldCurrentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.SandboxID(); ok {
		_spec.SetField(agent.FieldSandboxID, field.TypeString, value)
	}
	if _u.mutation.SandboxIDCleared() {
		_spec.ClearField(agent.FieldSandboxID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.KeptAliveForValidation(); ok {
		_spec.SetField(agent.FieldKeptAliveForValidation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agent.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(agent.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(agent.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(agent.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetName sets the "name" field.
func (_u *AgentUpdateOne) SetName(v string) *AgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentUpdateOne) SetAgentType(v string) *AgentUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAgentType(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v agent.Status) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *agent.Status) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *AgentUpdateOne) SetCapabilities(v []string) *AgentUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *AgentUpdateOne) AppendCapabilities(v []string) *AgentUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *AgentUpdateOne) ClearCapabilities() *AgentUpdateOne {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *AgentUpdateOne) SetCapacity(v int) *AgentUpdateOne {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCapacity(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *AgentUpdateOne) AddCapacity(v int) *AgentUpdateOne {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetHealthMetrics sets the "health_metrics" field.
func (_u *AgentUpdateOne) SetHealthMetrics(v map[string]interface{}) *AgentUpdateOne {
	_u.mutation.SetHealthMetrics(v)
	return _u
}

// ClearHealthMetrics clears the value of the "health_metrics" field.
func (_u *AgentUpdateOne) ClearHealthMetrics() *AgentUpdateOne {
	_u.mutation.ClearHealthMetrics()
	return _u
}

// SetAnomalyScore sets the "anomaly_score" field.
func (_u *AgentUpdateOne) SetAnomalyScore(v float64) *AgentUpdateOne {
	_u.mutation.ResetAnomalyScore()
	_u.mutation.SetAnomalyScore(v)
	return _u
}

// SetNillableAnomalyScore sets the "anomaly_score" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAnomalyScore(v *float64) *AgentUpdateOne {
	if v != nil {
		_u.SetAnomalyScore(*v)
	}
	return _u
}

// AddAnomalyScore adds value to the "anomaly_score" field.
func (_u *AgentUpdateOne) AddAnomalyScore(v float64) *AgentUpdateOne {
	_u.mutation.AddAnomalyScore(v)
	return _u
}

// SetConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field.
func (_u *AgentUpdateOne) SetConsecutiveAnomalousReadings(v int) *AgentUpdateOne {
	_u.mutation.ResetConsecutiveAnomalousReadings()
	_u.mutation.SetConsecutiveAnomalousReadings(v)
	return _u
}

// SetNillableConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableConsecutiveAnomalousReadings(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetConsecutiveAnomalousReadings(*v)
	}
	return _u
}

// AddConsecutiveAnomalousReadings adds value to the "consecutive_anomalous_readings" field.
func (_u *AgentUpdateOne) AddConsecutiveAnomalousReadings(v int) *AgentUpdateOne {
	_u.mutation.AddConsecutiveAnomalousReadings(v)
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *AgentUpdateOne) SetSequenceNumber(v int64) *AgentUpdateOne {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSequenceNumber(v *int64) *AgentUpdateOne {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *AgentUpdateOne) AddSequenceNumber(v int64) *AgentUpdateOne {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetConsecutiveMissedHeartbeats sets the "consecutive_missed_heartbeats" field.
func (_u *AgentUpdateOne) SetConsecutiveMissedHeartbeats(v int) *AgentUpdateOne {
	_u.mutation.ResetConsecutiveMissedHeartbeats()
	_u.mutation.SetConsecutiveMissedHeartbeats(v)
	return _u
}

// SetNillableConsecutiveMissedHeartbeats sets the "consecutive_missed_heartbeats" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableConsecutiveMissedHeartbeats(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetConsecutiveMissedHeartbeats(*v)
	}
	return _u
}

// AddConsecutiveMissedHeartbeats adds value to the "consecutive_missed_heartbeats" field.
func (_u *AgentUpdateOne) AddConsecutiveMissedHeartbeats(v int) *AgentUpdateOne {
	_u.mutation.AddConsecutiveMissedHeartbeats(v)
	return _u
}

// SetCorruptHeartbeats sets the "corrupt_heartbeats" field.
func (_u *AgentUpdateOne) SetCorruptHeartbeats(v int) *AgentUpdateOne {
	_u.mutation.ResetCorruptHeartbeats()
	_u.mutation.SetCorruptHeartbeats(v)
	return _u
}

// SetNillableCorruptHeartbeats sets the "corrupt_heartbeats" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCorruptHeartbeats(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetCorruptHeartbeats(*v)
	}
	return _u
}

// AddCorruptHeartbeats adds value to the "corrupt_heartbeats" field.
func (_u *AgentUpdateOne) AddCorruptHeartbeats(v int) *AgentUpdateOne {
	_u.mutation.AddCorruptHeartbeats(v)
	return _u
}

// SetCryptoPublicKey sets the "crypto_public_key" field.
func (_u *AgentUpdateOne) SetCryptoPublicKey(v string) *AgentUpdateOne {
	_u.mutation.SetCryptoPublicKey(v)
	return _u
}

// SetNillableCryptoPublicKey sets the "crypto_public_key" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCryptoPublicKey(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetCryptoPublicKey(*v)
	}
	return _u
}

// ClearCryptoPublicKey clears the value of the "crypto_public_key" field.
func (_u *AgentUpdateOne) ClearCryptoPublicKey() *AgentUpdateOne {
	_u.mutation.ClearCryptoPublicKey()
	return _u
}

// SetCurrentTaskID sets the "current_task_id" field.
func (_u *AgentUpdateOne) SetCurrentTaskID(v string) *AgentUpdateOne {
	_u.mutation.SetCurrentTaskID(v)
	return _u
}

// SetNillableCurrentTaskID sets the "current_task_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCurrentTaskID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetCurrentTaskID(*v)
	}
	return _u
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (_u *AgentUpdateOne) ClearCurrentTaskID() *AgentUpdateOne {
	_u.mutation.ClearCurrentTaskID()
	return _u
}

// SetSandboxID sets the "sandbox_id" field.
func (_u *AgentUpdateOne) SetSandboxID(v string) *AgentUpdateOne {
	_u.mutation.SetSandboxID(v)
	return _u
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSandboxID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetSandboxID(*v)
	}
	return _u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (_u *AgentUpdateOne) ClearSandboxID() *AgentUpdateOne {
	_u.mutation.ClearSandboxID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentUpdateOne) SetMetadata(v map[string]interface{}) *AgentUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentUpdateOne) ClearMetadata() *AgentUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetKeptAliveForValidation sets the "kept_alive_for_validation" field.
func (_u *AgentUpdateOne) SetKeptAliveForValidation(v bool) *AgentUpdateOne {
	_u.mutation.SetKeptAliveForValidation(v)
	return _u
}

// SetNillableKeptAliveForValidation sets the "kept_alive_for_validation" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableKeptAliveForValidation(v *bool) *AgentUpdateOne {
	if v != nil {
		_u.SetKeptAliveForValidation(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentUpdateOne) SetVersion(v int) *AgentUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableVersion(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AgentUpdateOne) AddVersion(v int) *AgentUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *AgentUpdateOne) SetLastHeartbeatAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *AgentUpdateOne) ClearLastHeartbeatAt() *AgentUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agent.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(agent.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(agent.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(agent.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HealthMetrics(); ok {
		_spec.SetField(agent.FieldHealthMetrics, field.TypeJSON, value)
	}
	if _u.mutation.HealthMetricsCleared() {
		_spec.ClearField(agent.FieldHealthMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnomalyScore(); ok {
		_spec.SetField(agent.FieldAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnomalyScore(); ok {
		_spec.AddField(agent.FieldAnomalyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsecutiveAnomalousReadings(); ok {
		_spec.SetField(agent.FieldConsecutiveAnomalousReadings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveAnomalousReadings(); ok {
		_spec.AddField(agent.FieldConsecutiveAnomalousReadings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(agent.FieldSequenceNumber, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(agent.FieldSequenceNumber, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ConsecutiveMissedHeartbeats(); ok {
		_spec.SetField(agent.FieldConsecutiveMissedHeartbeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveMissedHeartbeats(); ok {
		_spec.AddField(agent.FieldConsecutiveMissedHeartbeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorruptHeartbeats(); ok {
		_spec.SetField(agent.FieldCorruptHeartbeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorruptHeartbeats(); ok {
		_spec.AddField(agent.FieldCorruptHeartbeats, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CryptoPublicKey(); ok {
		_spec.SetField(agent.FieldCryptoPublicKey, field.TypeString, value)
	}
	if _u.mutation.CryptoPublicKeyCleared() {
		_spec.ClearField(agent.FieldCryptoPublicKey, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentTaskID(); ok {
		_spec.SetField(agent.FieldCurrentTaskID, field.TypeString, value)
	}
	if _u.mutation.CurrentTaskIDCleared() {
		_spec.ClearField(agent.FieldCurrentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.SandboxID(); ok {
		_spec.SetField(agent.FieldSandboxID, field.TypeString, value)
	}
	if _u.mutation.SandboxIDCleared() {
		_spec.ClearField(agent.FieldSandboxID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.KeptAliveForValidation(); ok {
		_spec.SetField(agent.FieldKeptAliveForValidation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agent.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(agent.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(agent.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(agent.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
