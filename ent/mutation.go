// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/agent"
	"github.com/helmsman-ai/helmsman/ent/agentbaseline"
	"github.com/helmsman-ai/helmsman/ent/budget"
	"github.com/helmsman-ai/helmsman/ent/costrecord"
	"github.com/helmsman-ai/helmsman/ent/guardianaction"
	"github.com/helmsman-ai/helmsman/ent/mergeattempt"
	"github.com/helmsman-ai/helmsman/ent/predicate"
	"github.com/helmsman-ai/helmsman/ent/sandboxallocation"
	"github.com/helmsman-ai/helmsman/ent/sandboxevent"
	"github.com/helmsman-ai/helmsman/ent/sandboxmessage"
	"github.com/helmsman-ai/helmsman/ent/specdoc"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/ent/ticket"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent             = "Agent"
	TypeAgentBaseline     = "AgentBaseline"
	TypeBudget            = "Budget"
	TypeCostRecord        = "CostRecord"
	TypeGuardianAction    = "GuardianAction"
	TypeMergeAttempt      = "MergeAttempt"
	TypeSandboxAllocation = "SandboxAllocation"
	TypeSandboxEvent      = "SandboxEvent"
	TypeSandboxMessage    = "SandboxMessage"
	TypeSpecDoc           = "SpecDoc"
	TypeTask              = "Task"
	TypeTicket            = "Ticket"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                                Op
	typ                               string
	id                                *string
	name                              *string
	agent_type                        *string
	status                            *agent.Status
	capabilities                      *[]string
	appendcapabilities                []string
	capacity                          *int
	addcapacity                       *int
	health_metrics                    *map[string]interface{}
	anomaly_score                     *float64
	addanomaly_score                  *float64
	consecutive_anomalous_readings    *int
	addconsecutive_anomalous_readings *int
	sequence_number                   *int64
	addsequence_number                *int64
	consecutive_missed_heartbeats     *int
	addconsecutive_missed_heartbeats  *int
	corrupt_heartbeats                *int
	addcorrupt_heartbeats             *int
	crypto_public_key                 *string
	current_task_id                   *string
	sandbox_id                        *string
	metadata                          *map[string]interface{}
	kept_alive_for_validation         *bool
	version                           *int
	addversion                        *int
	last_heartbeat_at                 *time.Time
	registered_at                     *time.Time
	updated_at                        *time.Time
	clearedFields                     map[string]struct{}
	done                              bool
	oldValue                          func(context.Context) (*Agent, error)
	predicates                        []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetAgentType sets the "agent_type" field.
func (m *AgentMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *AgentMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *AgentMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *AgentMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *AgentMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *AgentMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *AgentMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *AgentMutation) ClearCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	m.clearedFields[agent.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *AgentMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[agent.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *AgentMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	delete(m.clearedFields, agent.FieldCapabilities)
}

// SetCapacity sets the "capacity" field.
func (m *AgentMutation) SetCapacity(i int) {
	m.capacity = &i
	m.addcapacity = nil
}

// Capacity returns the value of the "capacity" field in the mutation.
func (m *AgentMutation) Capacity() (r int, exists bool) {
	v := m.capacity
	if v == nil {
		return
	}
	return *v, true
}

// OldCapacity returns the old "capacity" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCapacity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapacity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapacity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapacity: %w", err)
	}
	return oldValue.Capacity, nil
}

// AddCapacity adds i to the "capacity" field.
func (m *AgentMutation) AddCapacity(i int) {
	if m.addcapacity != nil {
		*m.addcapacity += i
	} else {
		m.addcapacity = &i
	}
}

// AddedCapacity returns the value that was added to the "capacity" field in this mutation.
func (m *AgentMutation) AddedCapacity() (r int, exists bool) {
	v := m.addcapacity
	if v == nil {
		return
	}
	return *v, true
}

// ResetCapacity resets all changes to the "capacity" field.
func (m *AgentMutation) ResetCapacity() {
	m.capacity = nil
	m.addcapacity = nil
}

// SetHealthMetrics sets the "health_metrics" field.
func (m *AgentMutation) SetHealthMetrics(value map[string]interface{}) {
	m.health_metrics = &value
}

// HealthMetrics returns the value of the "health_metrics" field in the mutation.
func (m *AgentMutation) HealthMetrics() (r map[string]interface{}, exists bool) {
	v := m.health_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthMetrics returns the old "health_metrics" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldHealthMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthMetrics: %w", err)
	}
	return oldValue.HealthMetrics, nil
}

// ClearHealthMetrics clears the value of the "health_metrics" field.
func (m *AgentMutation) ClearHealthMetrics() {
	m.health_metrics = nil
	m.clearedFields[agent.FieldHealthMetrics] = struct{}{}
}

// HealthMetricsCleared returns if the "health_metrics" field was cleared in this mutation.
func (m *AgentMutation) HealthMetricsCleared() bool {
	_, ok := m.clearedFields[agent.FieldHealthMetrics]
	return ok
}

// ResetHealthMetrics resets all changes to the "health_metrics" field.
func (m *AgentMutation) ResetHealthMetrics() {
	m.health_metrics = nil
	delete(m.clearedFields, agent.FieldHealthMetrics)
}

// SetAnomalyScore sets the "anomaly_score" field.
func (m *AgentMutation) SetAnomalyScore(f float64) {
	m.anomaly_score = &f
	m.addanomaly_score = nil
}

// AnomalyScore returns the value of the "anomaly_score" field in the mutation.
func (m *AgentMutation) AnomalyScore() (r float64, exists bool) {
	v := m.anomaly_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAnomalyScore returns the old "anomaly_score" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAnomalyScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnomalyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnomalyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnomalyScore: %w", err)
	}
	return oldValue.AnomalyScore, nil
}

// AddAnomalyScore adds f to the "anomaly_score" field.
func (m *AgentMutation) AddAnomalyScore(f float64) {
	if m.addanomaly_score != nil {
		*m.addanomaly_score += f
	} else {
		m.addanomaly_score = &f
	}
}

// AddedAnomalyScore returns the value that was added to the "anomaly_score" field in this mutation.
func (m *AgentMutation) AddedAnomalyScore() (r float64, exists bool) {
	v := m.addanomaly_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnomalyScore resets all changes to the "anomaly_score" field.
func (m *AgentMutation) ResetAnomalyScore() {
	m.anomaly_score = nil
	m.addanomaly_score = nil
}

// SetConsecutiveAnomalousReadings sets the "consecutive_anomalous_readings" field.
func (m *AgentMutation) SetConsecutiveAnomalousReadings(i int) {
	m.consecutive_anomalous_readings = &i
	m.addconsecutive_anomalous_readings = nil
}

// ConsecutiveAnomalousReadings returns the value of the "consecutive_anomalous_readings" field in the mutation.
func (m *AgentMutation) ConsecutiveAnomalousReadings() (r int, exists bool) {
	v := m.consecutive_anomalous_readings
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveAnomalousReadings returns the old "consecutive_anomalous_readings" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldConsecutiveAnomalousReadings(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveAnomalousReadings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveAnomalousReadings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveAnomalousReadings: %w", err)
	}
	return oldValue.ConsecutiveAnomalousReadings, nil
}

// AddConsecutiveAnomalousReadings adds i to the "consecutive_anomalous_readings" field.
func (m *AgentMutation) AddConsecutiveAnomalousReadings(i int) {
	if m.addconsecutive_anomalous_readings != nil {
		*m.addconsecutive_anomalous_readings += i
	} else {
		m.addconsecutive_anomalous_readings = &i
	}
}

// AddedConsecutiveAnomalousReadings returns the value that was added to the "consecutive_anomalous_readings" field in this mutation.
func (m *AgentMutation) AddedConsecutiveAnomalousReadings() (r int, exists bool) {
	v := m.addconsecutive_anomalous_readings
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveAnomalousReadings resets all changes to the "consecutive_anomalous_readings" field.
func (m *AgentMutation) ResetConsecutiveAnomalousReadings() {
	m.consecutive_anomalous_readings = nil
	m.addconsecutive_anomalous_readings = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *AgentMutation) SetSequenceNumber(i int64) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *AgentMutation) SequenceNumber() (r int64, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSequenceNumber(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *AgentMutation) AddSequenceNumber(i int64) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *AgentMutation) AddedSequenceNumber() (r int64, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *AgentMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetConsecutiveMissedHeartbeats sets the "consecutive_missed_heartbeats" field.
func (m *AgentMutation) SetConsecutiveMissedHeartbeats(i int) {
	m.consecutive_missed_heartbeats = &i
	m.addconsecutive_missed_heartbeats = nil
}

// ConsecutiveMissedHeartbeats returns the value of the "consecutive_missed_heartbeats" field in the mutation.
func (m *AgentMutation) ConsecutiveMissedHeartbeats() (r int, exists bool) {
	v := m.consecutive_missed_heartbeats
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveMissedHeartbeats returns the old "consecutive_missed_heartbeats" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldConsecutiveMissedHeartbeats(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveMissedHeartbeats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveMissedHeartbeats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveMissedHeartbeats: %w", err)
	}
	return oldValue.ConsecutiveMissedHeartbeats, nil
}

// AddConsecutiveMissedHeartbeats adds i to the "consecutive_missed_heartbeats" field.
func (m *AgentMutation) AddConsecutiveMissedHeartbeats(i int) {
	if m.addconsecutive_missed_heartbeats != nil {
		*m.addconsecutive_missed_heartbeats += i
	} else {
		m.addconsecutive_missed_heartbeats = &i
	}
}

// AddedConsecutiveMissedHeartbeats returns the value that was added to the "consecutive_missed_heartbeats" field in this mutation.
func (m *AgentMutation) AddedConsecutiveMissedHeartbeats() (r int, exists bool) {
	v := m.addconsecutive_missed_heartbeats
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveMissedHeartbeats resets all changes to the "consecutive_missed_heartbeats" field.
func (m *AgentMutation) ResetConsecutiveMissedHeartbeats() {
	m.consecutive_missed_heartbeats = nil
	m.addconsecutive_missed_heartbeats = nil
}

// SetCorruptHeartbeats sets the "corrupt_heartbeats" field.
func (m *AgentMutation) SetCorruptHeartbeats(i int) {
	m.corrupt_heartbeats = &i
	m.addcorrupt_heartbeats = nil
}

// CorruptHeartbeats returns the value of the "corrupt_heartbeats" field in the mutation.
func (m *AgentMutation) CorruptHeartbeats() (r int, exists bool) {
	v := m.corrupt_heartbeats
	if v == nil {
		return
	}
	return *v, true
}

// OldCorruptHeartbeats returns the old "corrupt_heartbeats" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCorruptHeartbeats(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorruptHeartbeats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorruptHeartbeats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorruptHeartbeats: %w", err)
	}
	return oldValue.CorruptHeartbeats, nil
}

// AddCorruptHeartbeats adds i to the "corrupt_heartbeats" field.
func (m *AgentMutation) AddCorruptHeartbeats(i int) {
	if m.addcorrupt_heartbeats != nil {
		*m.addcorrupt_heartbeats += i
	} else {
		m.addcorrupt_heartbeats = &i
	}
}

// AddedCorruptHeartbeats returns the value that was added to the "corrupt_heartbeats" field in this mutation.
func (m *AgentMutation) AddedCorruptHeartbeats() (r int, exists bool) {
	v := m.addcorrupt_heartbeats
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorruptHeartbeats resets all changes to the "corrupt_heartbeats" field.
func (m *AgentMutation) ResetCorruptHeartbeats() {
	m.corrupt_heartbeats = nil
	m.addcorrupt_heartbeats = nil
}

// SetCryptoPublicKey sets the "crypto_public_key" field.
func (m *AgentMutation) SetCryptoPublicKey(s string) {
	m.crypto_public_key = &s
}

// CryptoPublicKey returns the value of the "crypto_public_key" field in the mutation.
func (m *AgentMutation) CryptoPublicKey() (r string, exists bool) {
	v := m.crypto_public_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCryptoPublicKey returns the old "crypto_public_key" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCryptoPublicKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCryptoPublicKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCryptoPublicKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCryptoPublicKey: %w", err)
	}
	return oldValue.CryptoPublicKey, nil
}

// ClearCryptoPublicKey clears the value of the "crypto_public_key" field.
func (m *AgentMutation) ClearCryptoPublicKey() {
	m.crypto_public_key = nil
	m.clearedFields[agent.FieldCryptoPublicKey] = struct{}{}
}

// CryptoPublicKeyCleared returns if the "crypto_public_key" field was cleared in this mutation.
func (m *AgentMutation) CryptoPublicKeyCleared() bool {
	_, ok := m.clearedFields[agent.FieldCryptoPublicKey]
	return ok
}

// ResetCryptoPublicKey resets all changes to the "crypto_public_key" field.
func (m *AgentMutation) ResetCryptoPublicKey() {
	m.crypto_public_key = nil
	delete(m.clearedFields, agent.FieldCryptoPublicKey)
}

// SetCurrentTaskID sets the "current_task_id" field.
func (m *AgentMutation) SetCurrentTaskID(s string) {
	m.current_task_id = &s
}

// CurrentTaskID returns the value of the "current_task_id" field in the mutation.
func (m *AgentMutation) CurrentTaskID() (r string, exists bool) {
	v := m.current_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentTaskID returns the old "current_task_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCurrentTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentTaskID: %w", err)
	}
	return oldValue.CurrentTaskID, nil
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (m *AgentMutation) ClearCurrentTaskID() {
	m.current_task_id = nil
	m.clearedFields[agent.FieldCurrentTaskID] = struct{}{}
}

// CurrentTaskIDCleared returns if the "current_task_id" field was cleared in this mutation.
func (m *AgentMutation) CurrentTaskIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldCurrentTaskID]
	return ok
}

// ResetCurrentTaskID resets all changes to the "current_task_id" field.
func (m *AgentMutation) ResetCurrentTaskID() {
	m.current_task_id = nil
	delete(m.clearedFields, agent.FieldCurrentTaskID)
}

// SetSandboxID sets the "sandbox_id" field.
func (m *AgentMutation) SetSandboxID(s string) {
	m.sandbox_id = &s
}

// SandboxID returns the value of the "sandbox_id" field in the mutation.
func (m *AgentMutation) SandboxID() (r string, exists bool) {
	v := m.sandbox_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxID returns the old "sandbox_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSandboxID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxID: %w", err)
	}
	return oldValue.SandboxID, nil
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (m *AgentMutation) ClearSandboxID() {
	m.sandbox_id = nil
	m.clearedFields[agent.FieldSandboxID] = struct{}{}
}

// SandboxIDCleared returns if the "sandbox_id" field was cleared in this mutation.
func (m *AgentMutation) SandboxIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldSandboxID]
	return ok
}

// ResetSandboxID resets all changes to the "sandbox_id" field.
func (m *AgentMutation) ResetSandboxID() {
	m.sandbox_id = nil
	delete(m.clearedFields, agent.FieldSandboxID)
}

// SetMetadata sets the "metadata" field.
func (m *AgentMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AgentMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AgentMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[agent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AgentMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[agent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AgentMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, agent.FieldMetadata)
}

// SetKeptAliveForValidation sets the "kept_alive_for_validation" field.
func (m *AgentMutation) SetKeptAliveForValidation(b bool) {
	m.kept_alive_for_validation = &b
}

// KeptAliveForValidation returns the value of the "kept_alive_for_validation" field in the mutation.
func (m *AgentMutation) KeptAliveForValidation() (r bool, exists bool) {
	v := m.kept_alive_for_validation
	if v == nil {
		return
	}
	return *v, true
}

// OldKeptAliveForValidation returns the old "kept_alive_for_validation" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldKeptAliveForValidation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeptAliveForValidation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeptAliveForValidation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeptAliveForValidation: %w", err)
	}
	return oldValue.KeptAliveForValidation, nil
}

// ResetKeptAliveForValidation resets all changes to the "kept_alive_for_validation" field.
func (m *AgentMutation) ResetKeptAliveForValidation() {
	m.kept_alive_for_validation = nil
}

// SetVersion sets the "version" field.
func (m *AgentMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *AgentMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *AgentMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *AgentMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *AgentMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *AgentMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *AgentMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *AgentMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[agent.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *AgentMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *AgentMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, agent.FieldLastHeartbeatAt)
}

// SetRegisteredAt sets the "registered_at" field.
func (m *AgentMutation) SetRegisteredAt(t time.Time) {
	m.registered_at = &t
}

// RegisteredAt returns the value of the "registered_at" field in the mutation.
func (m *AgentMutation) RegisteredAt() (r time.Time, exists bool) {
	v := m.registered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRegisteredAt returns the old "registered_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRegisteredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegisteredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegisteredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegisteredAt: %w", err)
	}
	return oldValue.RegisteredAt, nil
}

// ResetRegisteredAt resets all changes to the "registered_at" field.
func (m *AgentMutation) ResetRegisteredAt() {
	m.registered_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.agent_type != nil {
		fields = append(fields, agent.FieldAgentType)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.capabilities != nil {
		fields = append(fields, agent.FieldCapabilities)
	}
	if m.capacity != nil {
		fields = append(fields, agent.FieldCapacity)
	}
	if m.health_metrics != nil {
		fields = append(fields, agent.FieldHealthMetrics)
	}
	if m.anomaly_score != nil {
		fields = append(fields, agent.FieldAnomalyScore)
	}
	if m.consecutive_anomalous_readings != nil {
		fields = append(fields, agent.FieldConsecutiveAnomalousReadings)
	}
	if m.sequence_number != nil {
		fields = append(fields, agent.FieldSequenceNumber)
	}
	if m.consecutive_missed_heartbeats != nil {
		fields = append(fields, agent.FieldConsecutiveMissedHeartbeats)
	}
	if m.corrupt_heartbeats != nil {
		fields = append(fields, agent.FieldCorruptHeartbeats)
	}
	if m.crypto_public_key != nil {
		fields = append(fields, agent.FieldCryptoPublicKey)
	}
	if m.current_task_id != nil {
		fields = append(fields, agent.FieldCurrentTaskID)
	}
	if m.sandbox_id != nil {
		fields = append(fields, agent.FieldSandboxID)
	}
	if m.metadata != nil {
		fields = append(fields, agent.FieldMetadata)
	}
	if m.kept_alive_for_validation != nil {
		fields = append(fields, agent.FieldKeptAliveForValidation)
	}
	if m.version != nil {
		fields = append(fields, agent.FieldVersion)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, agent.FieldLastHeartbeatAt)
	}
	if m.registered_at != nil {
		fields = append(fields, agent.FieldRegisteredAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldName:
		return m.Name()
	case agent.FieldAgentType:
		return m.AgentType()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldCapabilities:
		return m.Capabilities()
	case agent.FieldCapacity:
		return m.Capacity()
	case agent.FieldHealthMetrics:
		return m.HealthMetrics()
	case agent.FieldAnomalyScore:
		return m.AnomalyScore()
	case agent.FieldConsecutiveAnomalousReadings:
		return m.ConsecutiveAnomalousReadings()
	case agent.FieldSequenceNumber:
		return m.SequenceNumber()
	case agent.FieldConsecutiveMissedHeartbeats:
		return m.ConsecutiveMissedHeartbeats()
	case agent.FieldCorruptHeartbeats:
		return m.CorruptHeartbeats()
	case agent.FieldCryptoPublicKey:
		return m.CryptoPublicKey()
	case agent.FieldCurrentTaskID:
		return m.CurrentTaskID()
	case agent.FieldSandboxID:
		return m.SandboxID()
	case agent.FieldMetadata:
		return m.Metadata()
	case agent.FieldKeptAliveForValidation:
		return m.KeptAliveForValidation()
	case agent.FieldVersion:
		return m.Version()
	case agent.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case agent.FieldRegisteredAt:
		return m.RegisteredAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldAgentType:
		return m.OldAgentType(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case agent.FieldCapacity:
		return m.OldCapacity(ctx)
	case agent.FieldHealthMetrics:
		return m.OldHealthMetrics(ctx)
	case agent.FieldAnomalyScore:
		return m.OldAnomalyScore(ctx)
	case agent.FieldConsecutiveAnomalousReadings:
		return m.OldConsecutiveAnomalousReadings(ctx)
	case agent.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case agent.FieldConsecutiveMissedHeartbeats:
		return m.OldConsecutiveMissedHeartbeats(ctx)
	case agent.FieldCorruptHeartbeats:
		return m.OldCorruptHeartbeats(ctx)
	case agent.FieldCryptoPublicKey:
		return m.OldCryptoPublicKey(ctx)
	case agent.FieldCurrentTaskID:
		return m.OldCurrentTaskID(ctx)
	case agent.FieldSandboxID:
		return m.OldSandboxID(ctx)
	case agent.FieldMetadata:
		return m.OldMetadata(ctx)
	case agent.FieldKeptAliveForValidation:
		return m.OldKeptAliveForValidation(ctx)
	case agent.FieldVersion:
		return m.OldVersion(ctx)
	case agent.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case agent.FieldRegisteredAt:
		return m.OldRegisteredAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case agent.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapacity(v)
		return nil
	case agent.FieldHealthMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthMetrics(v)
		return nil
	case agent.FieldAnomalyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnomalyScore(v)
		return nil
	case agent.FieldConsecutiveAnomalousReadings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveAnomalousReadings(v)
		return nil
	case agent.FieldSequenceNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case agent.FieldConsecutiveMissedHeartbeats:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveMissedHeartbeats(v)
		return nil
	case agent.FieldCorruptHeartbeats:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorruptHeartbeats(v)
		return nil
	case agent.FieldCryptoPublicKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCryptoPublicKey(v)
		return nil
	case agent.FieldCurrentTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentTaskID(v)
		return nil
	case agent.FieldSandboxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxID(v)
		return nil
	case agent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case agent.FieldKeptAliveForValidation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeptAliveForValidation(v)
		return nil
	case agent.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case agent.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case agent.FieldRegisteredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegisteredAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addcapacity != nil {
		fields = append(fields, agent.FieldCapacity)
	}
	if m.addanomaly_score != nil {
		fields = append(fields, agent.FieldAnomalyScore)
	}
	if m.addconsecutive_anomalous_readings != nil {
		fields = append(fields, agent.FieldConsecutiveAnomalousReadings)
	}
	if m.addsequence_number != nil {
		fields = append(fields, agent.FieldSequenceNumber)
	}
	if m.addconsecutive_missed_heartbeats != nil {
		fields = append(fields, agent.FieldConsecutiveMissedHeartbeats)
	}
	if m.addcorrupt_heartbeats != nil {
		fields = append(fields, agent.FieldCorruptHeartbeats)
	}
	if m.addversion != nil {
		fields = append(fields, agent.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldCapacity:
		return m.AddedCapacity()
	case agent.FieldAnomalyScore:
		return m.AddedAnomalyScore()
	case agent.FieldConsecutiveAnomalousReadings:
		return m.AddedConsecutiveAnomalousReadings()
	case agent.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	case agent.FieldConsecutiveMissedHeartbeats:
		return m.AddedConsecutiveMissedHeartbeats()
	case agent.FieldCorruptHeartbeats:
		return m.AddedCorruptHeartbeats()
	case agent.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCapacity(v)
		return nil
	case agent.FieldAnomalyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnomalyScore(v)
		return nil
	case agent.FieldConsecutiveAnomalousReadings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveAnomalousReadings(v)
		return nil
	case agent.FieldSequenceNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	case agent.FieldConsecutiveMissedHeartbeats:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveMissedHeartbeats(v)
		return nil
	case agent.FieldCorruptHeartbeats:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorruptHeartbeats(v)
		return nil
	case agent.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldCapabilities) {
		fields = append(fields, agent.FieldCapabilities)
	}
	if m.FieldCleared(agent.FieldHealthMetrics) {
		fields = append(fields, agent.FieldHealthMetrics)
	}
	if m.FieldCleared(agent.FieldCryptoPublicKey) {
		fields = append(fields, agent.FieldCryptoPublicKey)
	}
	if m.FieldCleared(agent.FieldCurrentTaskID) {
		fields = append(fields, agent.FieldCurrentTaskID)
	}
	if m.FieldCleared(agent.FieldSandboxID) {
		fields = append(fields, agent.FieldSandboxID)
	}
	if m.FieldCleared(agent.FieldMetadata) {
		fields = append(fields, agent.FieldMetadata)
	}
	if m.FieldCleared(agent.FieldLastHeartbeatAt) {
		fields = append(fields, agent.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case agent.FieldHealthMetrics:
		m.ClearHealthMetrics()
		return nil
	case agent.FieldCryptoPublicKey:
		m.ClearCryptoPublicKey()
		return nil
	case agent.FieldCurrentTaskID:
		m.ClearCurrentTaskID()
		return nil
	case agent.FieldSandboxID:
		m.ClearSandboxID()
		return nil
	case agent.FieldMetadata:
		m.ClearMetadata()
		return nil
	case agent.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldAgentType:
		m.ResetAgentType()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case agent.FieldCapacity:
		m.ResetCapacity()
		return nil
	case agent.FieldHealthMetrics:
		m.ResetHealthMetrics()
		return nil
	case agent.FieldAnomalyScore:
		m.ResetAnomalyScore()
		return nil
	case agent.FieldConsecutiveAnomalousReadings:
		m.ResetConsecutiveAnomalousReadings()
		return nil
	case agent.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case agent.FieldConsecutiveMissedHeartbeats:
		m.ResetConsecutiveMissedHeartbeats()
		return nil
	case agent.FieldCorruptHeartbeats:
		m.ResetCorruptHeartbeats()
		return nil
	case agent.FieldCryptoPublicKey:
		m.ResetCryptoPublicKey()
		return nil
	case agent.FieldCurrentTaskID:
		m.ResetCurrentTaskID()
		return nil
	case agent.FieldSandboxID:
		m.ResetSandboxID()
		return nil
	case agent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case agent.FieldKeptAliveForValidation:
		m.ResetKeptAliveForValidation()
		return nil
	case agent.FieldVersion:
		m.ResetVersion()
		return nil
	case agent.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case agent.FieldRegisteredAt:
		m.ResetRegisteredAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AgentBaselineMutation represents an operation that mutates the AgentBaseline nodes in the graph.
type AgentBaselineMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	agent_type           *string
	phase                *string
	latency_mean_ms      *float64
	addlatency_mean_ms   *float64
	latency_stddev_ms    *float64
	addlatency_stddev_ms *float64
	error_rate           *float64
	adderror_rate        *float64
	cpu_mean             *float64
	addcpu_mean          *float64
	cpu_stddev           *float64
	addcpu_stddev        *float64
	mem_mean             *float64
	addmem_mean          *float64
	mem_stddev           *float64
	addmem_stddev        *float64
	sample_count         *int64
	addsample_count      *int64
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*AgentBaseline, error)
	predicates           []predicate.AgentBaseline
}

var _ ent.Mutation = (*AgentBaselineMutation)(nil)

// agentbaselineOption allows management of the mutation configuration using functional options.
type agentbaselineOption func(*AgentBaselineMutation)

// newAgentBaselineMutation creates new mutation for the AgentBaseline entity.
func newAgentBaselineMutation(c config, op Op, opts ...agentbaselineOption) *AgentBaselineMutation {
	m := &AgentBaselineMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentBaseline,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentBaselineID sets the ID field of the mutation.
func withAgentBaselineID(id int) agentbaselineOption {
	return func(m *AgentBaselineMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentBaseline
		)
		m.oldValue = func(ctx context.Context) (*AgentBaseline, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentBaseline.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentBaseline sets the old AgentBaseline of the mutation.
func withAgentBaseline(node *AgentBaseline) agentbaselineOption {
	return func(m *AgentBaselineMutation) {
		m.oldValue = func(context.Context) (*AgentBaseline, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentBaselineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentBaselineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentBaselineMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentBaselineMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentBaseline.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentType sets the "agent_type" field.
func (m *AgentBaselineMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *AgentBaselineMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *AgentBaselineMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetPhase sets the "phase" field.
func (m *AgentBaselineMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *AgentBaselineMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *AgentBaselineMutation) ResetPhase() {
	m.phase = nil
}

// SetLatencyMeanMs sets the "latency_mean_ms" field.
func (m *AgentBaselineMutation) SetLatencyMeanMs(f float64) {
	m.latency_mean_ms = &f
	m.addlatency_mean_ms = nil
}

// LatencyMeanMs returns the value of the "latency_mean_ms" field in the mutation.
func (m *AgentBaselineMutation) LatencyMeanMs() (r float64, exists bool) {
	v := m.latency_mean_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMeanMs returns the old "latency_mean_ms" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldLatencyMeanMs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMeanMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMeanMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMeanMs: %w", err)
	}
	return oldValue.LatencyMeanMs, nil
}

// AddLatencyMeanMs adds f to the "latency_mean_ms" field.
func (m *AgentBaselineMutation) AddLatencyMeanMs(f float64) {
	if m.addlatency_mean_ms != nil {
		*m.addlatency_mean_ms += f
	} else {
		m.addlatency_mean_ms = &f
	}
}

// AddedLatencyMeanMs returns the value that was added to the "latency_mean_ms" field in this mutation.
func (m *AgentBaselineMutation) AddedLatencyMeanMs() (r float64, exists bool) {
	v := m.addlatency_mean_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMeanMs resets all changes to the "latency_mean_ms" field.
func (m *AgentBaselineMutation) ResetLatencyMeanMs() {
	m.latency_mean_ms = nil
	m.addlatency_mean_ms = nil
}

// SetLatencyStddevMs sets the "latency_stddev_ms" field.
func (m *AgentBaselineMutation) SetLatencyStddevMs(f float64) {
	m.latency_stddev_ms = &f
	m.addlatency_stddev_ms = nil
}

// LatencyStddevMs returns the value of the "latency_stddev_ms" field in the mutation.
func (m *AgentBaselineMutation) LatencyStddevMs() (r float64, exists bool) {
	v := m.latency_stddev_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyStddevMs returns the old "latency_stddev_ms" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldLatencyStddevMs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyStddevMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyStddevMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyStddevMs: %w", err)
	}
	return oldValue.LatencyStddevMs, nil
}

// AddLatencyStddevMs adds f to the "latency_stddev_ms" field.
func (m *AgentBaselineMutation) AddLatencyStddevMs(f float64) {
	if m.addlatency_stddev_ms != nil {
		*m.addlatency_stddev_ms += f
	} else {
		m.addlatency_stddev_ms = &f
	}
}

// AddedLatencyStddevMs returns the value that was added to the "latency_stddev_ms" field in this mutation.
func (m *AgentBaselineMutation) AddedLatencyStddevMs() (r float64, exists bool) {
	v := m.addlatency_stddev_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyStddevMs resets all changes to the "latency_stddev_ms" field.
func (m *AgentBaselineMutation) ResetLatencyStddevMs() {
	m.latency_stddev_ms = nil
	m.addlatency_stddev_ms = nil
}

// SetErrorRate sets the "error_rate" field.
func (m *AgentBaselineMutation) SetErrorRate(f float64) {
	m.error_rate = &f
	m.adderror_rate = nil
}

// ErrorRate returns the value of the "error_rate" field in the mutation.
func (m *AgentBaselineMutation) ErrorRate() (r float64, exists bool) {
	v := m.error_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorRate returns the old "error_rate" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldErrorRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorRate: %w", err)
	}
	return oldValue.ErrorRate, nil
}

// AddErrorRate adds f to the "error_rate" field.
func (m *AgentBaselineMutation) AddErrorRate(f float64) {
	if m.adderror_rate != nil {
		*m.adderror_rate += f
	} else {
		m.adderror_rate = &f
	}
}

// AddedErrorRate returns the value that was added to the "error_rate" field in this mutation.
func (m *AgentBaselineMutation) AddedErrorRate() (r float64, exists bool) {
	v := m.adderror_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorRate resets all changes to the "error_rate" field.
func (m *AgentBaselineMutation) ResetErrorRate() {
	m.error_rate = nil
	m.adderror_rate = nil
}

// SetCPUMean sets the "cpu_mean" field.
func (m *AgentBaselineMutation) SetCPUMean(f float64) {
	m.cpu_mean = &f
	m.addcpu_mean = nil
}

// CPUMean returns the value of the "cpu_mean" field in the mutation.
func (m *AgentBaselineMutation) CPUMean() (r float64, exists bool) {
	v := m.cpu_mean
	if v == nil {
		return
	}
	return *v, true
}

// OldCPUMean returns the old "cpu_mean" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldCPUMean(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCPUMean is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCPUMean requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCPUMean: %w", err)
	}
	return oldValue.CPUMean, nil
}

// AddCPUMean adds f to the "cpu_mean" field.
func (m *AgentBaselineMutation) AddCPUMean(f float64) {
	if m.addcpu_mean != nil {
		*m.addcpu_mean += f
	} else {
		m.addcpu_mean = &f
	}
}

// AddedCPUMean returns the value that was added to the "cpu_mean" field in this mutation.
func (m *AgentBaselineMutation) AddedCPUMean() (r float64, exists bool) {
	v := m.addcpu_mean
	if v == nil {
		return
	}
	return *v, true
}

// ResetCPUMean resets all changes to the "cpu_mean" field.
func (m *AgentBaselineMutation) ResetCPUMean() {
	m.cpu_mean = nil
	m.addcpu_mean = nil
}

// SetCPUStddev sets the "cpu_stddev" field.
func (m *AgentBaselineMutation) SetCPUStddev(f float64) {
	m.cpu_stddev = &f
	m.addcpu_stddev = nil
}

// CPUStddev returns the value of the "cpu_stddev" field in the mutation.
func (m *AgentBaselineMutation) CPUStddev() (r float64, exists bool) {
	v := m.cpu_stddev
	if v == nil {
		return
	}
	return *v, true
}

// OldCPUStddev returns the old "cpu_stddev" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldCPUStddev(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCPUStddev is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCPUStddev requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCPUStddev: %w", err)
	}
	return oldValue.CPUStddev, nil
}

// AddCPUStddev adds f to the "cpu_stddev" field.
func (m *AgentBaselineMutation) AddCPUStddev(f float64) {
	if m.addcpu_stddev != nil {
		*m.addcpu_stddev += f
	} else {
		m.addcpu_stddev = &f
	}
}

// AddedCPUStddev returns the value that was added to the "cpu_stddev" field in this mutation.
func (m *AgentBaselineMutation) AddedCPUStddev() (r float64, exists bool) {
	v := m.addcpu_stddev
	if v == nil {
		return
	}
	return *v, true
}

// ResetCPUStddev resets all changes to the "cpu_stddev" field.
func (m *AgentBaselineMutation) ResetCPUStddev() {
	m.cpu_stddev = nil
	m.addcpu_stddev = nil
}

// SetMemMean sets the "mem_mean" field.
func (m *AgentBaselineMutation) SetMemMean(f float64) {
	m.mem_mean = &f
	m.addmem_mean = nil
}

// MemMean returns the value of the "mem_mean" field in the mutation.
func (m *AgentBaselineMutation) MemMean() (r float64, exists bool) {
	v := m.mem_mean
	if v == nil {
		return
	}
	return *v, true
}

// OldMemMean returns the old "mem_mean" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldMemMean(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemMean is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemMean requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemMean: %w", err)
	}
	return oldValue.MemMean, nil
}

// AddMemMean adds f to the "mem_mean" field.
func (m *AgentBaselineMutation) AddMemMean(f float64) {
	if m.addmem_mean != nil {
		*m.addmem_mean += f
	} else {
		m.addmem_mean = &f
	}
}

// AddedMemMean returns the value that was added to the "mem_mean" field in this mutation.
func (m *AgentBaselineMutation) AddedMemMean() (r float64, exists bool) {
	v := m.addmem_mean
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemMean resets all changes to the "mem_mean" field.
func (m *AgentBaselineMutation) ResetMemMean() {
	m.mem_mean = nil
	m.addmem_mean = nil
}

// SetMemStddev sets the "mem_stddev" field.
func (m *AgentBaselineMutation) SetMemStddev(f float64) {
	m.mem_stddev = &f
	m.addmem_stddev = nil
}

// MemStddev returns the value of the "mem_stddev" field in the mutation.
func (m *AgentBaselineMutation) MemStddev() (r float64, exists bool) {
	v := m.mem_stddev
	if v == nil {
		return
	}
	return *v, true
}

// OldMemStddev returns the old "mem_stddev" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldMemStddev(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemStddev is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemStddev requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemStddev: %w", err)
	}
	return oldValue.MemStddev, nil
}

// AddMemStddev adds f to the "mem_stddev" field.
func (m *AgentBaselineMutation) AddMemStddev(f float64) {
	if m.addmem_stddev != nil {
		*m.addmem_stddev += f
	} else {
		m.addmem_stddev = &f
	}
}

// AddedMemStddev returns the value that was added to the "mem_stddev" field in this mutation.
func (m *AgentBaselineMutation) AddedMemStddev() (r float64, exists bool) {
	v := m.addmem_stddev
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemStddev resets all changes to the "mem_stddev" field.
func (m *AgentBaselineMutation) ResetMemStddev() {
	m.mem_stddev = nil
	m.addmem_stddev = nil
}

// SetSampleCount sets the "sample_count" field.
func (m *AgentBaselineMutation) SetSampleCount(i int64) {
	m.sample_count = &i
	m.addsample_count = nil
}

// SampleCount returns the value of the "sample_count" field in the mutation.
func (m *AgentBaselineMutation) SampleCount() (r int64, exists bool) {
	v := m.sample_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleCount returns the old "sample_count" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldSampleCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleCount: %w", err)
	}
	return oldValue.SampleCount, nil
}

// AddSampleCount adds i to the "sample_count" field.
func (m *AgentBaselineMutation) AddSampleCount(i int64) {
	if m.addsample_count != nil {
		*m.addsample_count += i
	} else {
		m.addsample_count = &i
	}
}

// AddedSampleCount returns the value that was added to the "sample_count" field in this mutation.
func (m *AgentBaselineMutation) AddedSampleCount() (r int64, exists bool) {
	v := m.addsample_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSampleCount resets all changes to the "sample_count" field.
func (m *AgentBaselineMutation) ResetSampleCount() {
	m.sample_count = nil
	m.addsample_count = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentBaselineMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentBaselineMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentBaseline entity.
// If the AgentBaseline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentBaselineMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentBaselineMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentBaselineMutation builder.
func (m *AgentBaselineMutation) Where(ps ...predicate.AgentBaseline) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentBaselineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentBaselineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentBaseline, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentBaselineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentBaselineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentBaseline).
func (m *AgentBaselineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentBaselineMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.agent_type != nil {
		fields = append(fields, agentbaseline.FieldAgentType)
	}
	if m.phase != nil {
		fields = append(fields, agentbaseline.FieldPhase)
	}
	if m.latency_mean_ms != nil {
		fields = append(fields, agentbaseline.FieldLatencyMeanMs)
	}
	if m.latency_stddev_ms != nil {
		fields = append(fields, agentbaseline.FieldLatencyStddevMs)
	}
	if m.error_rate != nil {
		fields = append(fields, agentbaseline.FieldErrorRate)
	}
	if m.cpu_mean != nil {
		fields = append(fields, agentbaseline.FieldCPUMean)
	}
	if m.cpu_stddev != nil {
		fields = append(fields, agentbaseline.FieldCPUStddev)
	}
	if m.mem_mean != nil {
		fields = append(fields, agentbaseline.FieldMemMean)
	}
	if m.mem_stddev != nil {
		fields = append(fields, agentbaseline.FieldMemStddev)
	}
	if m.sample_count != nil {
		fields = append(fields, agentbaseline.FieldSampleCount)
	}
	if m.updated_at != nil {
		fields = append(fields, agentbaseline.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentBaselineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentbaseline.FieldAgentType:
		return m.AgentType()
	case agentbaseline.FieldPhase:
		return m.Phase()
	case agentbaseline.FieldLatencyMeanMs:
		return m.LatencyMeanMs()
	case agentbaseline.FieldLatencyStddevMs:
		return m.LatencyStddevMs()
	case agentbaseline.FieldErrorRate:
		return m.ErrorRate()
	case agentbaseline.FieldCPUMean:
		return m.CPUMean()
	case agentbaseline.FieldCPUStddev:
		return m.CPUStddev()
	case agentbaseline.FieldMemMean:
		return m.MemMean()
	case agentbaseline.FieldMemStddev:
		return m.MemStddev()
	case agentbaseline.FieldSampleCount:
		return m.SampleCount()
	case agentbaseline.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentBaselineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentbaseline.FieldAgentType:
		return m.OldAgentType(ctx)
	case agentbaseline.FieldPhase:
		return m.OldPhase(ctx)
	case agentbaseline.FieldLatencyMeanMs:
		return m.OldLatencyMeanMs(ctx)
	case agentbaseline.FieldLatencyStddevMs:
		return m.OldLatencyStddevMs(ctx)
	case agentbaseline.FieldErrorRate:
		return m.OldErrorRate(ctx)
	case agentbaseline.FieldCPUMean:
		return m.OldCPUMean(ctx)
	case agentbaseline.FieldCPUStddev:
		return m.OldCPUStddev(ctx)
	case agentbaseline.FieldMemMean:
		return m.OldMemMean(ctx)
	case agentbaseline.FieldMemStddev:
		return m.OldMemStddev(ctx)
	case agentbaseline.FieldSampleCount:
		return m.OldSampleCount(ctx)
	case agentbaseline.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentBaseline field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentBaselineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentbaseline.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case agentbaseline.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case agentbaseline.FieldLatencyMeanMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMeanMs(v)
		return nil
	case agentbaseline.FieldLatencyStddevMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyStddevMs(v)
		return nil
	case agentbaseline.FieldErrorRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorRate(v)
		return nil
	case agentbaseline.FieldCPUMean:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCPUMean(v)
		return nil
	case agentbaseline.FieldCPUStddev:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCPUStddev(v)
		return nil
	case agentbaseline.FieldMemMean:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemMean(v)
		return nil
	case agentbaseline.FieldMemStddev:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemStddev(v)
		return nil
	case agentbaseline.FieldSampleCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleCount(v)
		return nil
	case agentbaseline.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentBaseline field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentBaselineMutation) AddedFields() []string {
	var fields []string
	if m.addlatency_mean_ms != nil {
		fields = append(fields, agentbaseline.FieldLatencyMeanMs)
	}
	if m.addlatency_stddev_ms != nil {
		fields = append(fields, agentbaseline.FieldLatencyStddevMs)
	}
	if m.adderror_rate != nil {
		fields = append(fields, agentbaseline.FieldErrorRate)
	}
	if m.addcpu_mean != nil {
		fields = append(fields, agentbaseline.FieldCPUMean)
	}
	if m.addcpu_stddev != nil {
		fields = append(fields, agentbaseline.FieldCPUStddev)
	}
	if m.addmem_mean != nil {
		fields = append(fields, agentbaseline.FieldMemMean)
	}
	if m.addmem_stddev != nil {
		fields = append(fields, agentbaseline.FieldMemStddev)
	}
	if m.addsample_count != nil {
		fields = append(fields, agentbaseline.FieldSampleCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentBaselineMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentbaseline.FieldLatencyMeanMs:
		return m.AddedLatencyMeanMs()
	case agentbaseline.FieldLatencyStddevMs:
		return m.AddedLatencyStddevMs()
	case agentbaseline.FieldErrorRate:
		return m.AddedErrorRate()
	case agentbaseline.FieldCPUMean:
		return m.AddedCPUMean()
	case agentbaseline.FieldCPUStddev:
		return m.AddedCPUStddev()
	case agentbaseline.FieldMemMean:
		return m.AddedMemMean()
	case agentbaseline.FieldMemStddev:
		return m.AddedMemStddev()
	case agentbaseline.FieldSampleCount:
		return m.AddedSampleCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentBaselineMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentbaseline.FieldLatencyMeanMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMeanMs(v)
		return nil
	case agentbaseline.FieldLatencyStddevMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyStddevMs(v)
		return nil
	case agentbaseline.FieldErrorRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorRate(v)
		return nil
	case agentbaseline.FieldCPUMean:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCPUMean(v)
		return nil
	case agentbaseline.FieldCPUStddev:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCPUStddev(v)
		return nil
	case agentbaseline.FieldMemMean:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemMean(v)
		return nil
	case agentbaseline.FieldMemStddev:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemStddev(v)
		return nil
	case agentbaseline.FieldSampleCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSampleCount(v)
		return nil
	}
	return fmt.Errorf("unknown AgentBaseline numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentBaselineMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentBaselineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentBaselineMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AgentBaseline nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentBaselineMutation) ResetField(name string) error {
	switch name {
	case agentbaseline.FieldAgentType:
		m.ResetAgentType()
		return nil
	case agentbaseline.FieldPhase:
		m.ResetPhase()
		return nil
	case agentbaseline.FieldLatencyMeanMs:
		m.ResetLatencyMeanMs()
		return nil
	case agentbaseline.FieldLatencyStddevMs:
		m.ResetLatencyStddevMs()
		return nil
	case agentbaseline.FieldErrorRate:
		m.ResetErrorRate()
		return nil
	case agentbaseline.FieldCPUMean:
		m.ResetCPUMean()
		return nil
	case agentbaseline.FieldCPUStddev:
		m.ResetCPUStddev()
		return nil
	case agentbaseline.FieldMemMean:
		m.ResetMemMean()
		return nil
	case agentbaseline.FieldMemStddev:
		m.ResetMemStddev()
		return nil
	case agentbaseline.FieldSampleCount:
		m.ResetSampleCount()
		return nil
	case agentbaseline.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentBaseline field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentBaselineMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentBaselineMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentBaselineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentBaselineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentBaselineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentBaselineMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentBaselineMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentBaseline unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentBaselineMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentBaseline edge %s", name)
}

// BudgetMutation represents an operation that mutates the Budget nodes in the graph.
type BudgetMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	scope_type         *budget.ScopeType
	scope_id           *string
	limit_usd          *float64
	addlimit_usd       *float64
	spent_usd          *float64
	addspent_usd       *float64
	reserved_usd       *float64
	addreserved_usd    *float64
	period             *string
	alert_threshold    *float64
	addalert_threshold *float64
	alerted            *bool
	version            *int
	addversion         *int
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Budget, error)
	predicates         []predicate.Budget
}

var _ ent.Mutation = (*BudgetMutation)(nil)

// budgetOption allows management of the mutation configuration using functional options.
type budgetOption func(*BudgetMutation)

// newBudgetMutation creates new mutation for the Budget entity.
func newBudgetMutation(c config, op Op, opts ...budgetOption) *BudgetMutation {
	m := &BudgetMutation{
		config:        c,
		op:            op,
		typ:           TypeBudget,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBudgetID sets the ID field of the mutation.
func withBudgetID(id string) budgetOption {
	return func(m *BudgetMutation) {
		var (
			err   error
			once  sync.Once
			value *Budget
		)
		m.oldValue = func(ctx context.Context) (*Budget, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Budget.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBudget sets the old Budget of the mutation.
func withBudget(node *Budget) budgetOption {
	return func(m *BudgetMutation) {
		m.oldValue = func(context.Context) (*Budget, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BudgetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BudgetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Budget entities.
func (m *BudgetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BudgetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BudgetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Budget.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScopeType sets the "scope_type" field.
func (m *BudgetMutation) SetScopeType(bt budget.ScopeType) {
	m.scope_type = &bt
}

// ScopeType returns the value of the "scope_type" field in the mutation.
func (m *BudgetMutation) ScopeType() (r budget.ScopeType, exists bool) {
	v := m.scope_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeType returns the old "scope_type" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldScopeType(ctx context.Context) (v budget.ScopeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeType: %w", err)
	}
	return oldValue.ScopeType, nil
}

// ResetScopeType resets all changes to the "scope_type" field.
func (m *BudgetMutation) ResetScopeType() {
	m.scope_type = nil
}

// SetScopeID sets the "scope_id" field.
func (m *BudgetMutation) SetScopeID(s string) {
	m.scope_id = &s
}

// ScopeID returns the value of the "scope_id" field in the mutation.
func (m *BudgetMutation) ScopeID() (r string, exists bool) {
	v := m.scope_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeID returns the old "scope_id" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldScopeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeID: %w", err)
	}
	return oldValue.ScopeID, nil
}

// ResetScopeID resets all changes to the "scope_id" field.
func (m *BudgetMutation) ResetScopeID() {
	m.scope_id = nil
}

// SetLimitUsd sets the "limit_usd" field.
func (m *BudgetMutation) SetLimitUsd(f float64) {
	m.limit_usd = &f
	m.addlimit_usd = nil
}

// LimitUsd returns the value of the "limit_usd" field in the mutation.
func (m *BudgetMutation) LimitUsd() (r float64, exists bool) {
	v := m.limit_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldLimitUsd returns the old "limit_usd" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldLimitUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLimitUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLimitUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLimitUsd: %w", err)
	}
	return oldValue.LimitUsd, nil
}

// AddLimitUsd adds f to the "limit_usd" field.
func (m *BudgetMutation) AddLimitUsd(f float64) {
	if m.addlimit_usd != nil {
		*m.addlimit_usd += f
	} else {
		m.addlimit_usd = &f
	}
}

// AddedLimitUsd returns the value that was added to the "limit_usd" field in this mutation.
func (m *BudgetMutation) AddedLimitUsd() (r float64, exists bool) {
	v := m.addlimit_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetLimitUsd resets all changes to the "limit_usd" field.
func (m *BudgetMutation) ResetLimitUsd() {
	m.limit_usd = nil
	m.addlimit_usd = nil
}

// SetSpentUsd sets the "spent_usd" field.
func (m *BudgetMutation) SetSpentUsd(f float64) {
	m.spent_usd = &f
	m.addspent_usd = nil
}

// SpentUsd returns the value of the "spent_usd" field in the mutation.
func (m *BudgetMutation) SpentUsd() (r float64, exists bool) {
	v := m.spent_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldSpentUsd returns the old "spent_usd" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldSpentUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpentUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpentUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpentUsd: %w", err)
	}
	return oldValue.SpentUsd, nil
}

// AddSpentUsd adds f to the "spent_usd" field.
func (m *BudgetMutation) AddSpentUsd(f float64) {
	if m.addspent_usd != nil {
		*m.addspent_usd += f
	} else {
		m.addspent_usd = &f
	}
}

// AddedSpentUsd returns the value that was added to the "spent_usd" field in this mutation.
func (m *BudgetMutation) AddedSpentUsd() (r float64, exists bool) {
	v := m.addspent_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpentUsd resets all changes to the "spent_usd" field.
func (m *BudgetMutation) ResetSpentUsd() {
	m.spent_usd = nil
	m.addspent_usd = nil
}

// SetReservedUsd sets the "reserved_usd" field.
func (m *BudgetMutation) SetReservedUsd(f float64) {
	m.reserved_usd = &f
	m.addreserved_usd = nil
}

// ReservedUsd returns the value of the "reserved_usd" field in the mutation.
func (m *BudgetMutation) ReservedUsd() (r float64, exists bool) {
	v := m.reserved_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldReservedUsd returns the old "reserved_usd" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldReservedUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReservedUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReservedUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReservedUsd: %w", err)
	}
	return oldValue.ReservedUsd, nil
}

// AddReservedUsd adds f to the "reserved_usd" field.
func (m *BudgetMutation) AddReservedUsd(f float64) {
	if m.addreserved_usd != nil {
		*m.addreserved_usd += f
	} else {
		m.addreserved_usd = &f
	}
}

// AddedReservedUsd returns the value that was added to the "reserved_usd" field in this mutation.
func (m *BudgetMutation) AddedReservedUsd() (r float64, exists bool) {
	v := m.addreserved_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetReservedUsd resets all changes to the "reserved_usd" field.
func (m *BudgetMutation) ResetReservedUsd() {
	m.reserved_usd = nil
	m.addreserved_usd = nil
}

// SetPeriod sets the "period" field.
func (m *BudgetMutation) SetPeriod(s string) {
	m.period = &s
}

// Period returns the value of the "period" field in the mutation.
func (m *BudgetMutation) Period() (r string, exists bool) {
	v := m.period
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriod returns the old "period" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldPeriod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriod: %w", err)
	}
	return oldValue.Period, nil
}

// ResetPeriod resets all changes to the "period" field.
func (m *BudgetMutation) ResetPeriod() {
	m.period = nil
}

// SetAlertThreshold sets the "alert_threshold" field.
func (m *BudgetMutation) SetAlertThreshold(f float64) {
	m.alert_threshold = &f
	m.addalert_threshold = nil
}

// AlertThreshold returns the value of the "alert_threshold" field in the mutation.
func (m *BudgetMutation) AlertThreshold() (r float64, exists bool) {
	v := m.alert_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertThreshold returns the old "alert_threshold" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldAlertThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertThreshold: %w", err)
	}
	return oldValue.AlertThreshold, nil
}

// AddAlertThreshold adds f to the "alert_threshold" field.
func (m *BudgetMutation) AddAlertThreshold(f float64) {
	if m.addalert_threshold != nil {
		*m.addalert_threshold += f
	} else {
		m.addalert_threshold = &f
	}
}

// AddedAlertThreshold returns the value that was added to the "alert_threshold" field in this mutation.
func (m *BudgetMutation) AddedAlertThreshold() (r float64, exists bool) {
	v := m.addalert_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetAlertThreshold resets all changes to the "alert_threshold" field.
func (m *BudgetMutation) ResetAlertThreshold() {
	m.alert_threshold = nil
	m.addalert_threshold = nil
}

// SetAlerted sets the "alerted" field.
func (m *BudgetMutation) SetAlerted(b bool) {
	m.alerted = &b
}

// Alerted returns the value of the "alerted" field in the mutation.
func (m *BudgetMutation) Alerted() (r bool, exists bool) {
	v := m.alerted
	if v == nil {
		return
	}
	return *v, true
}

// OldAlerted returns the old "alerted" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldAlerted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlerted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlerted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlerted: %w", err)
	}
	return oldValue.Alerted, nil
}

// ResetAlerted resets all changes to the "alerted" field.
func (m *BudgetMutation) ResetAlerted() {
	m.alerted = nil
}

// SetVersion sets the "version" field.
func (m *BudgetMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *BudgetMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *BudgetMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *BudgetMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *BudgetMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BudgetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BudgetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BudgetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BudgetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BudgetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BudgetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BudgetMutation builder.
func (m *BudgetMutation) Where(ps ...predicate.Budget) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BudgetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BudgetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Budget, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BudgetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BudgetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Budget).
func (m *BudgetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BudgetMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.scope_type != nil {
		fields = append(fields, budget.FieldScopeType)
	}
	if m.scope_id != nil {
		fields = append(fields, budget.FieldScopeID)
	}
	if m.limit_usd != nil {
		fields = append(fields, budget.FieldLimitUsd)
	}
	if m.spent_usd != nil {
		fields = append(fields, budget.FieldSpentUsd)
	}
	if m.reserved_usd != nil {
		fields = append(fields, budget.FieldReservedUsd)
	}
	if m.period != nil {
		fields = append(fields, budget.FieldPeriod)
	}
	if m.alert_threshold != nil {
		fields = append(fields, budget.FieldAlertThreshold)
	}
	if m.alerted != nil {
		fields = append(fields, budget.FieldAlerted)
	}
	if m.version != nil {
		fields = append(fields, budget.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, budget.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, budget.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BudgetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case budget.FieldScopeType:
		return m.ScopeType()
	case budget.FieldScopeID:
		return m.ScopeID()
	case budget.FieldLimitUsd:
		return m.LimitUsd()
	case budget.FieldSpentUsd:
		return m.SpentUsd()
	case budget.FieldReservedUsd:
		return m.ReservedUsd()
	case budget.FieldPeriod:
		return m.Period()
	case budget.FieldAlertThreshold:
		return m.AlertThreshold()
	case budget.FieldAlerted:
		return m.Alerted()
	case budget.FieldVersion:
		return m.Version()
	case budget.FieldCreatedAt:
		return m.CreatedAt()
	case budget.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BudgetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case budget.FieldScopeType:
		return m.OldScopeType(ctx)
	case budget.FieldScopeID:
		return m.OldScopeID(ctx)
	case budget.FieldLimitUsd:
		return m.OldLimitUsd(ctx)
	case budget.FieldSpentUsd:
		return m.OldSpentUsd(ctx)
	case budget.FieldReservedUsd:
		return m.OldReservedUsd(ctx)
	case budget.FieldPeriod:
		return m.OldPeriod(ctx)
	case budget.FieldAlertThreshold:
		return m.OldAlertThreshold(ctx)
	case budget.FieldAlerted:
		return m.OldAlerted(ctx)
	case budget.FieldVersion:
		return m.OldVersion(ctx)
	case budget.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case budget.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Budget field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case budget.FieldScopeType:
		v, ok := value.(budget.ScopeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeType(v)
		return nil
	case budget.FieldScopeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeID(v)
		return nil
	case budget.FieldLimitUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLimitUsd(v)
		return nil
	case budget.FieldSpentUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpentUsd(v)
		return nil
	case budget.FieldReservedUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReservedUsd(v)
		return nil
	case budget.FieldPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriod(v)
		return nil
	case budget.FieldAlertThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertThreshold(v)
		return nil
	case budget.FieldAlerted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlerted(v)
		return nil
	case budget.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case budget.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case budget.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Budget field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BudgetMutation) AddedFields() []string {
	var fields []string
	if m.addlimit_usd != nil {
		fields = append(fields, budget.FieldLimitUsd)
	}
	if m.addspent_usd != nil {
		fields = append(fields, budget.FieldSpentUsd)
	}
	if m.addreserved_usd != nil {
		fields = append(fields, budget.FieldReservedUsd)
	}
	if m.addalert_threshold != nil {
		fields = append(fields, budget.FieldAlertThreshold)
	}
	if m.addversion != nil {
		fields = append(fields, budget.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BudgetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case budget.FieldLimitUsd:
		return m.AddedLimitUsd()
	case budget.FieldSpentUsd:
		return m.AddedSpentUsd()
	case budget.FieldReservedUsd:
		return m.AddedReservedUsd()
	case budget.FieldAlertThreshold:
		return m.AddedAlertThreshold()
	case budget.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case budget.FieldLimitUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLimitUsd(v)
		return nil
	case budget.FieldSpentUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpentUsd(v)
		return nil
	case budget.FieldReservedUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReservedUsd(v)
		return nil
	case budget.FieldAlertThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAlertThreshold(v)
		return nil
	case budget.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Budget numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BudgetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BudgetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BudgetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Budget nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BudgetMutation) ResetField(name string) error {
	switch name {
	case budget.FieldScopeType:
		m.ResetScopeType()
		return nil
	case budget.FieldScopeID:
		m.ResetScopeID()
		return nil
	case budget.FieldLimitUsd:
		m.ResetLimitUsd()
		return nil
	case budget.FieldSpentUsd:
		m.ResetSpentUsd()
		return nil
	case budget.FieldReservedUsd:
		m.ResetReservedUsd()
		return nil
	case budget.FieldPeriod:
		m.ResetPeriod()
		return nil
	case budget.FieldAlertThreshold:
		m.ResetAlertThreshold()
		return nil
	case budget.FieldAlerted:
		m.ResetAlerted()
		return nil
	case budget.FieldVersion:
		m.ResetVersion()
		return nil
	case budget.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case budget.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Budget field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BudgetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BudgetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BudgetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BudgetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BudgetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BudgetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BudgetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Budget unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BudgetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Budget edge %s", name)
}

// CostRecordMutation represents an operation that mutates the CostRecord nodes in the graph.
type CostRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	agent_id             *string
	provider             *string
	model                *string
	prompt_tokens        *int64
	addprompt_tokens     *int64
	completion_tokens    *int64
	addcompletion_tokens *int64
	prompt_cost          *float64
	addprompt_cost       *float64
	completion_cost      *float64
	addcompletion_cost   *float64
	total_cost           *float64
	addtotal_cost        *float64
	sandbox_id           *string
	billing_account      *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	task                 *string
	clearedtask          bool
	done                 bool
	oldValue             func(context.Context) (*CostRecord, error)
	predicates           []predicate.CostRecord
}

var _ ent.Mutation = (*CostRecordMutation)(nil)

// costrecordOption allows management of the mutation configuration using functional options.
type costrecordOption func(*CostRecordMutation)

// newCostRecordMutation creates new mutation for the CostRecord entity.
func newCostRecordMutation(c config, op Op, opts ...costrecordOption) *CostRecordMutation {
	m := &CostRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeCostRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCostRecordID sets the ID field of the mutation.
func withCostRecordID(id string) costrecordOption {
	return func(m *CostRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *CostRecord
		)
		m.oldValue = func(ctx context.Context) (*CostRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CostRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCostRecord sets the old CostRecord of the mutation.
func withCostRecord(node *CostRecord) costrecordOption {
	return func(m *CostRecordMutation) {
		m.oldValue = func(context.Context) (*CostRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CostRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CostRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CostRecord entities.
func (m *CostRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CostRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CostRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CostRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *CostRecordMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *CostRecordMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *CostRecordMutation) ResetTaskID() {
	m.task = nil
}

// SetAgentID sets the "agent_id" field.
func (m *CostRecordMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *CostRecordMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *CostRecordMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[costrecord.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *CostRecordMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[costrecord.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *CostRecordMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, costrecord.FieldAgentID)
}

// SetProvider sets the "provider" field.
func (m *CostRecordMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *CostRecordMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *CostRecordMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *CostRecordMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *CostRecordMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *CostRecordMutation) ResetModel() {
	m.model = nil
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *CostRecordMutation) SetPromptTokens(i int64) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *CostRecordMutation) PromptTokens() (r int64, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldPromptTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *CostRecordMutation) AddPromptTokens(i int64) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *CostRecordMutation) AddedPromptTokens() (r int64, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *CostRecordMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *CostRecordMutation) SetCompletionTokens(i int64) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *CostRecordMutation) CompletionTokens() (r int64, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldCompletionTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *CostRecordMutation) AddCompletionTokens(i int64) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *CostRecordMutation) AddedCompletionTokens() (r int64, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *CostRecordMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetPromptCost sets the "prompt_cost" field.
func (m *CostRecordMutation) SetPromptCost(f float64) {
	m.prompt_cost = &f
	m.addprompt_cost = nil
}

// PromptCost returns the value of the "prompt_cost" field in the mutation.
func (m *CostRecordMutation) PromptCost() (r float64, exists bool) {
	v := m.prompt_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptCost returns the old "prompt_cost" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldPromptCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptCost: %w", err)
	}
	return oldValue.PromptCost, nil
}

// AddPromptCost adds f to the "prompt_cost" field.
func (m *CostRecordMutation) AddPromptCost(f float64) {
	if m.addprompt_cost != nil {
		*m.addprompt_cost += f
	} else {
		m.addprompt_cost = &f
	}
}

// AddedPromptCost returns the value that was added to the "prompt_cost" field in this mutation.
func (m *CostRecordMutation) AddedPromptCost() (r float64, exists bool) {
	v := m.addprompt_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptCost resets all changes to the "prompt_cost" field.
func (m *CostRecordMutation) ResetPromptCost() {
	m.prompt_cost = nil
	m.addprompt_cost = nil
}

// SetCompletionCost sets the "completion_cost" field.
func (m *CostRecordMutation) SetCompletionCost(f float64) {
	m.completion_cost = &f
	m.addcompletion_cost = nil
}

// CompletionCost returns the value of the "completion_cost" field in the mutation.
func (m *CostRecordMutation) CompletionCost() (r float64, exists bool) {
	v := m.completion_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionCost returns the old "completion_cost" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldCompletionCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionCost: %w", err)
	}
	return oldValue.CompletionCost, nil
}

// AddCompletionCost adds f to the "completion_cost" field.
func (m *CostRecordMutation) AddCompletionCost(f float64) {
	if m.addcompletion_cost != nil {
		*m.addcompletion_cost += f
	} else {
		m.addcompletion_cost = &f
	}
}

// AddedCompletionCost returns the value that was added to the "completion_cost" field in this mutation.
func (m *CostRecordMutation) AddedCompletionCost() (r float64, exists bool) {
	v := m.addcompletion_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionCost resets all changes to the "completion_cost" field.
func (m *CostRecordMutation) ResetCompletionCost() {
	m.completion_cost = nil
	m.addcompletion_cost = nil
}

// SetTotalCost sets the "total_cost" field.
func (m *CostRecordMutation) SetTotalCost(f float64) {
	m.total_cost = &f
	m.addtotal_cost = nil
}

// TotalCost returns the value of the "total_cost" field in the mutation.
func (m *CostRecordMutation) TotalCost() (r float64, exists bool) {
	v := m.total_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCost returns the old "total_cost" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldTotalCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCost: %w", err)
	}
	return oldValue.TotalCost, nil
}

// AddTotalCost adds f to the "total_cost" field.
func (m *CostRecordMutation) AddTotalCost(f float64) {
	if m.addtotal_cost != nil {
		*m.addtotal_cost += f
	} else {
		m.addtotal_cost = &f
	}
}

// AddedTotalCost returns the value that was added to the "total_cost" field in this mutation.
func (m *CostRecordMutation) AddedTotalCost() (r float64, exists bool) {
	v := m.addtotal_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCost resets all changes to the "total_cost" field.
func (m *CostRecordMutation) ResetTotalCost() {
	m.total_cost = nil
	m.addtotal_cost = nil
}

// SetSandboxID sets the "sandbox_id" field.
func (m *CostRecordMutation) SetSandboxID(s string) {
	m.sandbox_id = &s
}

// SandboxID returns the value of the "sandbox_id" field in the mutation.
func (m *CostRecordMutation) SandboxID() (r string, exists bool) {
	v := m.sandbox_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxID returns the old "sandbox_id" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldSandboxID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxID: %w", err)
	}
	return oldValue.SandboxID, nil
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (m *CostRecordMutation) ClearSandboxID() {
	m.sandbox_id = nil
	m.clearedFields[costrecord.FieldSandboxID] = struct{}{}
}

// SandboxIDCleared returns if the "sandbox_id" field was cleared in this mutation.
func (m *CostRecordMutation) SandboxIDCleared() bool {
	_, ok := m.clearedFields[costrecord.FieldSandboxID]
	return ok
}

// ResetSandboxID resets all changes to the "sandbox_id" field.
func (m *CostRecordMutation) ResetSandboxID() {
	m.sandbox_id = nil
	delete(m.clearedFields, costrecord.FieldSandboxID)
}

// SetBillingAccount sets the "billing_account" field.
func (m *CostRecordMutation) SetBillingAccount(s string) {
	m.billing_account = &s
}

// BillingAccount returns the value of the "billing_account" field in the mutation.
func (m *CostRecordMutation) BillingAccount() (r string, exists bool) {
	v := m.billing_account
	if v == nil {
		return
	}
	return *v, true
}

// OldBillingAccount returns the old "billing_account" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldBillingAccount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillingAccount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillingAccount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillingAccount: %w", err)
	}
	return oldValue.BillingAccount, nil
}

// ClearBillingAccount clears the value of the "billing_account" field.
func (m *CostRecordMutation) ClearBillingAccount() {
	m.billing_account = nil
	m.clearedFields[costrecord.FieldBillingAccount] = struct{}{}
}

// BillingAccountCleared returns if the "billing_account" field was cleared in this mutation.
func (m *CostRecordMutation) BillingAccountCleared() bool {
	_, ok := m.clearedFields[costrecord.FieldBillingAccount]
	return ok
}

// ResetBillingAccount resets all changes to the "billing_account" field.
func (m *CostRecordMutation) ResetBillingAccount() {
	m.billing_account = nil
	delete(m.clearedFields, costrecord.FieldBillingAccount)
}

// SetCreatedAt sets the "created_at" field.
func (m *CostRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CostRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CostRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *CostRecordMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[costrecord.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *CostRecordMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *CostRecordMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *CostRecordMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the CostRecordMutation builder.
func (m *CostRecordMutation) Where(ps ...predicate.CostRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CostRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CostRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CostRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CostRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CostRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CostRecord).
func (m *CostRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CostRecordMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.task != nil {
		fields = append(fields, costrecord.FieldTaskID)
	}
	if m.agent_id != nil {
		fields = append(fields, costrecord.FieldAgentID)
	}
	if m.provider != nil {
		fields = append(fields, costrecord.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, costrecord.FieldModel)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, costrecord.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, costrecord.FieldCompletionTokens)
	}
	if m.prompt_cost != nil {
		fields = append(fields, costrecord.FieldPromptCost)
	}
	if m.completion_cost != nil {
		fields = append(fields, costrecord.FieldCompletionCost)
	}
	if m.total_cost != nil {
		fields = append(fields, costrecord.FieldTotalCost)
	}
	if m.sandbox_id != nil {
		fields = append(fields, costrecord.FieldSandboxID)
	}
	if m.billing_account != nil {
		fields = append(fields, costrecord.FieldBillingAccount)
	}
	if m.created_at != nil {
		fields = append(fields, costrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CostRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case costrecord.FieldTaskID:
		return m.TaskID()
	case costrecord.FieldAgentID:
		return m.AgentID()
	case costrecord.FieldProvider:
		return m.Provider()
	case costrecord.FieldModel:
		return m.Model()
	case costrecord.FieldPromptTokens:
		return m.PromptTokens()
	case costrecord.FieldCompletionTokens:
		return m.CompletionTokens()
	case costrecord.FieldPromptCost:
		return m.PromptCost()
	case costrecord.FieldCompletionCost:
		return m.CompletionCost()
	case costrecord.FieldTotalCost:
		return m.TotalCost()
	case costrecord.FieldSandboxID:
		return m.SandboxID()
	case costrecord.FieldBillingAccount:
		return m.BillingAccount()
	case costrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CostRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case costrecord.FieldTaskID:
		return m.OldTaskID(ctx)
	case costrecord.FieldAgentID:
		return m.OldAgentID(ctx)
	case costrecord.FieldProvider:
		return m.OldProvider(ctx)
	case costrecord.FieldModel:
		return m.OldModel(ctx)
	case costrecord.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case costrecord.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case costrecord.FieldPromptCost:
		return m.OldPromptCost(ctx)
	case costrecord.FieldCompletionCost:
		return m.OldCompletionCost(ctx)
	case costrecord.FieldTotalCost:
		return m.OldTotalCost(ctx)
	case costrecord.FieldSandboxID:
		return m.OldSandboxID(ctx)
	case costrecord.FieldBillingAccount:
		return m.OldBillingAccount(ctx)
	case costrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CostRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CostRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case costrecord.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case costrecord.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case costrecord.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case costrecord.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case costrecord.FieldPromptTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case costrecord.FieldCompletionTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case costrecord.FieldPromptCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptCost(v)
		return nil
	case costrecord.FieldCompletionCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionCost(v)
		return nil
	case costrecord.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCost(v)
		return nil
	case costrecord.FieldSandboxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxID(v)
		return nil
	case costrecord.FieldBillingAccount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillingAccount(v)
		return nil
	case costrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CostRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CostRecordMutation) AddedFields() []string {
	var fields []string
	if m.addprompt_tokens != nil {
		fields = append(fields, costrecord.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, costrecord.FieldCompletionTokens)
	}
	if m.addprompt_cost != nil {
		fields = append(fields, costrecord.FieldPromptCost)
	}
	if m.addcompletion_cost != nil {
		fields = append(fields, costrecord.FieldCompletionCost)
	}
	if m.addtotal_cost != nil {
		fields = append(fields, costrecord.FieldTotalCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CostRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case costrecord.FieldPromptTokens:
		return m.AddedPromptTokens()
	case costrecord.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case costrecord.FieldPromptCost:
		return m.AddedPromptCost()
	case costrecord.FieldCompletionCost:
		return m.AddedCompletionCost()
	case costrecord.FieldTotalCost:
		return m.AddedTotalCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CostRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case costrecord.FieldPromptTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case costrecord.FieldCompletionTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case costrecord.FieldPromptCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptCost(v)
		return nil
	case costrecord.FieldCompletionCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionCost(v)
		return nil
	case costrecord.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCost(v)
		return nil
	}
	return fmt.Errorf("unknown CostRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CostRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(costrecord.FieldAgentID) {
		fields = append(fields, costrecord.FieldAgentID)
	}
	if m.FieldCleared(costrecord.FieldSandboxID) {
		fields = append(fields, costrecord.FieldSandboxID)
	}
	if m.FieldCleared(costrecord.FieldBillingAccount) {
		fields = append(fields, costrecord.FieldBillingAccount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CostRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CostRecordMutation) ClearField(name string) error {
	switch name {
	case costrecord.FieldAgentID:
		m.ClearAgentID()
		return nil
	case costrecord.FieldSandboxID:
		m.ClearSandboxID()
		return nil
	case costrecord.FieldBillingAccount:
		m.ClearBillingAccount()
		return nil
	}
	return fmt.Errorf("unknown CostRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CostRecordMutation) ResetField(name string) error {
	switch name {
	case costrecord.FieldTaskID:
		m.ResetTaskID()
		return nil
	case costrecord.FieldAgentID:
		m.ResetAgentID()
		return nil
	case costrecord.FieldProvider:
		m.ResetProvider()
		return nil
	case costrecord.FieldModel:
		m.ResetModel()
		return nil
	case costrecord.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case costrecord.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case costrecord.FieldPromptCost:
		m.ResetPromptCost()
		return nil
	case costrecord.FieldCompletionCost:
		m.ResetCompletionCost()
		return nil
	case costrecord.FieldTotalCost:
		m.ResetTotalCost()
		return nil
	case costrecord.FieldSandboxID:
		m.ResetSandboxID()
		return nil
	case costrecord.FieldBillingAccount:
		m.ResetBillingAccount()
		return nil
	case costrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CostRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CostRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, costrecord.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CostRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case costrecord.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CostRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CostRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CostRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, costrecord.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CostRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case costrecord.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CostRecordMutation) ClearEdge(name string) error {
	switch name {
	case costrecord.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown CostRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CostRecordMutation) ResetEdge(name string) error {
	switch name {
	case costrecord.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown CostRecord edge %s", name)
}

// GuardianActionMutation represents an operation that mutates the GuardianAction nodes in the graph.
type GuardianActionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	action_type        *guardianaction.ActionType
	target_agent_id    *string
	target_task_id     *string
	authority_level    *int
	addauthority_level *int
	reason             *string
	initiator          *string
	status             *guardianaction.Status
	approved_by        *string
	executed_at        *time.Time
	reverted_at        *time.Time
	review_deadline    *time.Time
	audit_log          *[]map[string]interface{}
	appendaudit_log    []map[string]interface{}
	params             *map[string]interface{}
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*GuardianAction, error)
	predicates         []predicate.GuardianAction
}

var _ ent.Mutation = (*GuardianActionMutation)(nil)

// guardianactionOption allows management of the mutation configuration using functional options.
type guardianactionOption func(*GuardianActionMutation)

// newGuardianActionMutation creates new mutation for the GuardianAction entity.
func newGuardianActionMutation(c config, op Op, opts ...guardianactionOption) *GuardianActionMutation {
	m := &GuardianActionMutation{
		config:        c,
		op:            op,
		typ:           TypeGuardianAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGuardianActionID sets the ID field of the mutation.
func withGuardianActionID(id string) guardianactionOption {
	return func(m *GuardianActionMutation) {
		var (
			err   error
			once  sync.Once
			value *GuardianAction
		)
		m.oldValue = func(ctx context.Context) (*GuardianAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GuardianAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGuardianAction sets the old GuardianAction of the mutation.
func withGuardianAction(node *GuardianAction) guardianactionOption {
	return func(m *GuardianActionMutation) {
		m.oldValue = func(context.Context) (*GuardianAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GuardianActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GuardianActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GuardianAction entities.
func (m *GuardianActionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GuardianActionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GuardianActionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GuardianAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActionType sets the "action_type" field.
func (m *GuardianActionMutation) SetActionType(gt guardianaction.ActionType) {
	m.action_type = &gt
}

// ActionType returns the value of the "action_type" field in the mutation.
func (m *GuardianActionMutation) ActionType() (r guardianaction.ActionType, exists bool) {
	v := m.action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionType returns the old "action_type" field's value of the GuardianAction entity.
// If the GuardianAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianActionMutation) OldActionType(ctx context.Context) (v guardianaction.ActionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionType: %w", err)
	}
	return oldValue.ActionType, nil
}

// ResetActionType resets all changes to the "action_type" field.
func (m *GuardianActionMutation) ResetActionType() {
	m.action_type = nil
}

// SetTargetAgentID sets the "target_agent_id" field.
func (m *GuardianActionMutation) SetTargetAgentID(s string) {
	m.target_agent_id = &s
}

// TargetAgentID returns the value of the "target_agent_id" field in the mutation.
func (m *GuardianActionMutation) TargetAgentID() (r string, exists bool) {
	v := m.target_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAgentID returns the old "target_agent_id" field's value of the GuardianAction entity.
// If the GuardianAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianActionMutation) OldTargetAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAgentID: %w", err)
	}
	return oldValue.TargetAgentID, nil
}

// ResetTargetAgentID resets all changes to the "target_agent_id" field.
func (m *GuardianActionMutation) ResetTargetAgentID() {
	m.target_agent_id = nil
}

// SetTargetTaskID sets the "target_task_id" field.
func (m *GuardianActionMutation) SetTargetTaskID(s string) {
	m.target_task_id = &s
}

// TargetTaskID returns the value of the "target_task_id" field in the mutation.
func (m *GuardianActionMutation) TargetTaskID() (r string, exists bool) {
	v := m.target_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetTaskID returns the old "target_task_id" field's value of the GuardianAction entity.
// If the GuardianAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianActionMutation) OldTargetTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetTaskID: %w", err)
	}
	return oldValue.TargetTaskID, nil
}

// ClearTargetTaskID clears the value of the "target_task_id" field.
func (m *GuardianActionMutation) ClearTargetTaskID() {
	m.target_task_id = nil
	m.clearedFields[guardianaction.FieldTargetTaskID] = struct{}{}
}

// TargetTaskIDCleared returns if the "target_task_id" field was cleared in this mutation.
func (m *GuardianActionMutation) TargetTaskIDCleared() bool {
	_, ok := m.clearedFields[guardianaction.FieldTargetTaskID]
	return ok
}

// ResetTargetTaskID resets all changes to the "target_task_id" field.
func (m *GuardianActionMutation) ResetTargetTaskID() {
	m.target_task_id = nil
	delete(m.clearedFields, guardianaction.FieldTargetTaskID)
}

// SetAuthorityLevel sets the "authority_level" field.
func (m *GuardianActionMutation) SetAuthorityLevel(i int) {
	m.authority_level = &i
	m.addauthority_level = nil
}

// AuthorityLevel returns the value of the "authority_level" field in the mutation.
func (m *GuardianActionMutation) AuthorityLevel() (r int, exists bool) {
	v := m.authority_level
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorityLevel returns the old "authority_level" field's value of the GuardianAction entity.
// If the GuardianAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianActionMutation) OldAuthorityLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorityLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorityLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorityLevel: %w", err)
	}
	return oldValue.AuthorityLevel, nil
}

// AddAuthorityLevel adds i to the "authority_level" field.
func (m *GuardianActionMutation) AddAuthorityLevel(i int) {
	if m.addauthority_level != nil {
		*m.addauthority_level += i
	} else {
		m.addauthority_level = &i
	}
}

// AddedAuthorityLevel returns the value that was added to the "authority_level" field in this mutation.
func (m *GuardianActionMutation) AddedAuthorityLevel() (r int, exists bool) {
	v := m.addauthority_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetAuthorityLevel resets all changes to the "authority_level" field.
func (m *GuardianActionMutation) ResetAuthorityLevel() {
	m.authority_level = nil
	m.addauthority_level = nil
}

// SetReason sets the "reason" field.
func (m *GuardianActionMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *GuardianActionMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the GuardianAction entity.
// If the GuardianAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianActionMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *GuardianActionMutation) ResetReason() {
	m.reason = nil
}

// SetInitiator sets the "initiator" field.
func (m *GuardianActionMutation) SetInitiator(s string) {
	m.initiator = &s
}

// Initiator returns the value of the "initiator" field in the mutation.
func (m *GuardianActionMutation) Initiator() (r string, exists bool) {
	v := m.initiator
	if v == nil {
		return
	}
	return *v, true
}

// OldInitiator returns the old "initiator" field's value of the GuardianAction entity.
// If the GuardianAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianActionMutation) OldInitiator(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitiator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitiator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitiator: %w", err)
	}
	return oldValue.Initiator, nil
}

// ResetInitiator resets all changes to the "initiator" field.
func (m *GuardianActionMutation) ResetInitiator() {
	m.initiator = nil
}

// SetStatus sets the "status" field.
func (m *GuardianActionMutation) SetStatus(gu guardianaction.Status) {
	m.status = &gu
}

// Status returns the value of the "status" field in the mutation.
func (m *GuardianActionMutation) Status() (r guardianaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GuardianAction entity.
// If the GuardianAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianActionMutation) OldStatus(ctx context.Context) (v guardianaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GuardianActionMutation) ResetStatus() {
	m.status = nil
}

// SetApprovedBy sets the "approved_by" field.
func (m *GuardianActionMutation) SetApprovedBy(s string) {
	m.approved_by = &s
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *GuardianActionMutation) ApprovedBy() (r string, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the GuardianAction entity.
// If the GuardianAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianActionMutation) OldApprovedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *GuardianActionMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[guardianaction.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *GuardianActionMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[guardianaction.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *GuardianActionMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, guardianaction.FieldApprovedBy)
}

// SetExecutedAt sets the "executed_at" field.
func (m *GuardianActionMutation) SetExecutedAt(t time.Time) {
	m.executed_at = &t
}

// ExecutedAt returns the value of the "executed_at" field in the mutation.
func (m *GuardianActionMutation) ExecutedAt() (r time.Time, exists bool) {
	v := m.executed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutedAt returns the old "executed_at" field's value of the GuardianAction entity.
// If the GuardianAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianActionMutation) OldExecutedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutedAt: %w", err)
	}
	return oldValue.ExecutedAt, nil
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (m *GuardianActionMutation) ClearExecutedAt() {
	m.executed_at = nil
	m.clearedFields[guardianaction.FieldExecutedAt] = struct{}{}
}

// ExecutedAtCleared returns if the "executed_at" field was cleared in this mutation.
func (m *GuardianActionMutation) ExecutedAtCleared() bool {
	_, ok := m.clearedFields[guardianaction.FieldExecutedAt]
	return ok
}

// ResetExecutedAt resets all changes to the "executed_at" field.
func (m *GuardianActionMutation) ResetExecutedAt() {
	m.executed_at = nil
	delete(m.clearedFields, guardianaction.FieldExecutedAt)
}

// SetRevertedAt sets the "reverted_at" field.
func (m *GuardianActionMutation) SetRevertedAt(t time.Time) {
	m.reverted_at = &t
}

// RevertedAt returns the value of the "reverted_at" field in the mutation.
func (m *GuardianActionMutation) RevertedAt() (r time.Time, exists bool) {
	v := m.reverted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevertedAt returns the old "reverted_at" field's value of the GuardianAction entity.
// If the GuardianAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianActionMutation) OldRevertedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevertedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevertedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevertedAt: %w", err)
	}
	return oldValue.RevertedAt, nil
}

// ClearRevertedAt clears the value of the "reverted_at" field.
func (m *GuardianActionMutation) ClearRevertedAt() {
	m.reverted_at = nil
	m.clearedFields[guardianaction.FieldRevertedAt] = struct{}{}
}

// RevertedAtCleared returns if the "reverted_at" field was cleared in this mutation.
func (m *GuardianActionMutation) RevertedAtCleared() bool {
	_, ok := m.clearedFields[guardianaction.FieldRevertedAt]
	return ok
}

// ResetRevertedAt resets all changes to the "reverted_at" field.
func (m *GuardianActionMutation) ResetRevertedAt() {
	m.reverted_at = nil
	delete(m.clearedFields, guardianaction.FieldRevertedAt)
}

// SetReviewDeadline sets the "review_deadline" field.
func (m *GuardianActionMutation) SetReviewDeadline(t time.Time) {
	m.review_deadline = &t
}

// ReviewDeadline returns the value of the "review_deadline" field in the mutation.
func (m *GuardianActionMutation) ReviewDeadline() (r time.Time, exists bool) {
	v := m.review_deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewDeadline returns the old "review_deadline" field's value of the GuardianAction entity.
// If the GuardianAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianActionMutation) OldReviewDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewDeadline: %w", err)
	}
	return oldValue.ReviewDeadline, nil
}

// ClearReviewDeadline clears the value of the "review_deadline" field.
func (m *GuardianActionMutation) ClearReviewDeadline() {
	m.review_deadline = nil
	m.clearedFields[guardianaction.FieldReviewDeadline] = struct{}{}
}

// ReviewDeadlineCleared returns if the "review_deadline" field was cleared in this mutation.
func (m *GuardianActionMutation) ReviewDeadlineCleared() bool {
	_, ok := m.clearedFields[guardianaction.FieldReviewDeadline]
	return ok
}

// ResetReviewDeadline resets all changes to the "review_deadline" field.
func (m *GuardianActionMutation) ResetReviewDeadline() {
	m.review_deadline = nil
	delete(m.clearedFields, guardianaction.FieldReviewDeadline)
}

// SetAuditLog sets the "audit_log" field.
func (m *GuardianActionMutation) SetAuditLog(value []map[string]interface{}) {
	m.audit_log = &value
	m.appendaudit_log = nil
}

// AuditLog returns the value of the "audit_log" field in the mutation.
func (m *GuardianActionMutation) AuditLog() (r []map[string]interface{}, exists bool) {
	v := m.audit_log
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditLog returns the old "audit_log" field's value of the GuardianAction entity.
// If the GuardianAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianActionMutation) OldAuditLog(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditLog: %w", err)
	}
	return oldValue.AuditLog, nil
}

// AppendAuditLog adds value to the "audit_log" field.
func (m *GuardianActionMutation) AppendAuditLog(value []map[string]interface{}) {
	m.appendaudit_log = append(m.appendaudit_log, value...)
}

// AppendedAuditLog returns the list of values that were appended to the "audit_log" field in this mutation.
func (m *GuardianActionMutation) AppendedAuditLog() ([]map[string]interface{}, bool) {
	if len(m.appendaudit_log) == 0 {
		return nil, false
	}
	return m.appendaudit_log, true
}

// ClearAuditLog clears the value of the "audit_log" field.
func (m *GuardianActionMutation) ClearAuditLog() {
	m.audit_log = nil
	m.appendaudit_log = nil
	m.clearedFields[guardianaction.FieldAuditLog] = struct{}{}
}

// AuditLogCleared returns if the "audit_log" field was cleared in this mutation.
func (m *GuardianActionMutation) AuditLogCleared() bool {
	_, ok := m.clearedFields[guardianaction.FieldAuditLog]
	return ok
}

// ResetAuditLog resets all changes to the "audit_log" field.
func (m *GuardianActionMutation) ResetAuditLog() {
	m.audit_log = nil
	m.appendaudit_log = nil
	delete(m.clearedFields, guardianaction.FieldAuditLog)
}

// SetParams sets the "params" field.
func (m *GuardianActionMutation) SetParams(value map[string]interface{}) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *GuardianActionMutation) Params() (r map[string]interface{}, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the GuardianAction entity.
// If the GuardianAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianActionMutation) OldParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ClearParams clears the value of the "params" field.
func (m *GuardianActionMutation) ClearParams() {
	m.params = nil
	m.clearedFields[guardianaction.FieldParams] = struct{}{}
}

// ParamsCleared returns if the "params" field was cleared in this mutation.
func (m *GuardianActionMutation) ParamsCleared() bool {
	_, ok := m.clearedFields[guardianaction.FieldParams]
	return ok
}

// ResetParams resets all changes to the "params" field.
func (m *GuardianActionMutation) ResetParams() {
	m.params = nil
	delete(m.clearedFields, guardianaction.FieldParams)
}

// SetCreatedAt sets the "created_at" field.
func (m *GuardianActionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GuardianActionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GuardianAction entity.
// If the GuardianAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardianActionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GuardianActionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the GuardianActionMutation builder.
func (m *GuardianActionMutation) Where(ps ...predicate.GuardianAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GuardianActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GuardianActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GuardianAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GuardianActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GuardianActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GuardianAction).
func (m *GuardianActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GuardianActionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.action_type != nil {
		fields = append(fields, guardianaction.FieldActionType)
	}
	if m.target_agent_id != nil {
		fields = append(fields, guardianaction.FieldTargetAgentID)
	}
	if m.target_task_id != nil {
		fields = append(fields, guardianaction.FieldTargetTaskID)
	}
	if m.authority_level != nil {
		fields = append(fields, guardianaction.FieldAuthorityLevel)
	}
	if m.reason != nil {
		fields = append(fields, guardianaction.FieldReason)
	}
	if m.initiator != nil {
		fields = append(fields, guardianaction.FieldInitiator)
	}
	if m.status != nil {
		fields = append(fields, guardianaction.FieldStatus)
	}
	if m.approved_by != nil {
		fields = append(fields, guardianaction.FieldApprovedBy)
	}
	if m.executed_at != nil {
		fields = append(fields, guardianaction.FieldExecutedAt)
	}
	if m.reverted_at != nil {
		fields = append(fields, guardianaction.FieldRevertedAt)
	}
	if m.review_deadline != nil {
		fields = append(fields, guardianaction.FieldReviewDeadline)
	}
	if m.audit_log != nil {
		fields = append(fields, guardianaction.FieldAuditLog)
	}
	if m.params != nil {
		fields = append(fields, guardianaction.FieldParams)
	}
	if m.created_at != nil {
		fields = append(fields, guardianaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GuardianActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case guardianaction.FieldActionType:
		return m.ActionType()
	case guardianaction.FieldTargetAgentID:
		return m.TargetAgentID()
	case guardianaction.FieldTargetTaskID:
		return m.TargetTaskID()
	case guardianaction.FieldAuthorityLevel:
		return m.AuthorityLevel()
	case guardianaction.FieldReason:
		return m.Reason()
	case guardianaction.FieldInitiator:
		return m.Initiator()
	case guardianaction.FieldStatus:
		return m.Status()
	case guardianaction.FieldApprovedBy:
		return m.ApprovedBy()
	case guardianaction.FieldExecutedAt:
		return m.ExecutedAt()
	case guardianaction.FieldRevertedAt:
		return m.RevertedAt()
	case guardianaction.FieldReviewDeadline:
		return m.ReviewDeadline()
	case guardianaction.FieldAuditLog:
		return m.AuditLog()
	case guardianaction.FieldParams:
		return m.Params()
	case guardianaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GuardianActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case guardianaction.FieldActionType:
		return m.OldActionType(ctx)
	case guardianaction.FieldTargetAgentID:
		return m.OldTargetAgentID(ctx)
	case guardianaction.FieldTargetTaskID:
		return m.OldTargetTaskID(ctx)
	case guardianaction.FieldAuthorityLevel:
		return m.OldAuthorityLevel(ctx)
	case guardianaction.FieldReason:
		return m.OldReason(ctx)
	case guardianaction.FieldInitiator:
		return m.OldInitiator(ctx)
	case guardianaction.FieldStatus:
		return m.OldStatus(ctx)
	case guardianaction.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case guardianaction.FieldExecutedAt:
		return m.OldExecutedAt(ctx)
	case guardianaction.FieldRevertedAt:
		return m.OldRevertedAt(ctx)
	case guardianaction.FieldReviewDeadline:
		return m.OldReviewDeadline(ctx)
	case guardianaction.FieldAuditLog:
		return m.OldAuditLog(ctx)
	case guardianaction.FieldParams:
		return m.OldParams(ctx)
	case guardianaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GuardianAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GuardianActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case guardianaction.FieldActionType:
		v, ok := value.(guardianaction.ActionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionType(v)
		return nil
	case guardianaction.FieldTargetAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAgentID(v)
		return nil
	case guardianaction.FieldTargetTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetTaskID(v)
		return nil
	case guardianaction.FieldAuthorityLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorityLevel(v)
		return nil
	case guardianaction.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case guardianaction.FieldInitiator:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitiator(v)
		return nil
	case guardianaction.FieldStatus:
		v, ok := value.(guardianaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case guardianaction.FieldApprovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case guardianaction.FieldExecutedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutedAt(v)
		return nil
	case guardianaction.FieldRevertedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevertedAt(v)
		return nil
	case guardianaction.FieldReviewDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewDeadline(v)
		return nil
	case guardianaction.FieldAuditLog:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditLog(v)
		return nil
	case guardianaction.FieldParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case guardianaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GuardianAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GuardianActionMutation) AddedFields() []string {
	var fields []string
	if m.addauthority_level != nil {
		fields = append(fields, guardianaction.FieldAuthorityLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GuardianActionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case guardianaction.FieldAuthorityLevel:
		return m.AddedAuthorityLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GuardianActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case guardianaction.FieldAuthorityLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAuthorityLevel(v)
		return nil
	}
	return fmt.Errorf("unknown GuardianAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GuardianActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(guardianaction.FieldTargetTaskID) {
		fields = append(fields, guardianaction.FieldTargetTaskID)
	}
	if m.FieldCleared(guardianaction.FieldApprovedBy) {
		fields = append(fields, guardianaction.FieldApprovedBy)
	}
	if m.FieldCleared(guardianaction.FieldExecutedAt) {
		fields = append(fields, guardianaction.FieldExecutedAt)
	}
	if m.FieldCleared(guardianaction.FieldRevertedAt) {
		fields = append(fields, guardianaction.FieldRevertedAt)
	}
	if m.FieldCleared(guardianaction.FieldReviewDeadline) {
		fields = append(fields, guardianaction.FieldReviewDeadline)
	}
	if m.FieldCleared(guardianaction.FieldAuditLog) {
		fields = append(fields, guardianaction.FieldAuditLog)
	}
	if m.FieldCleared(guardianaction.FieldParams) {
		fields = append(fields, guardianaction.FieldParams)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GuardianActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GuardianActionMutation) ClearField(name string) error {
	switch name {
	case guardianaction.FieldTargetTaskID:
		m.ClearTargetTaskID()
		return nil
	case guardianaction.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case guardianaction.FieldExecutedAt:
		m.ClearExecutedAt()
		return nil
	case guardianaction.FieldRevertedAt:
		m.ClearRevertedAt()
		return nil
	case guardianaction.FieldReviewDeadline:
		m.ClearReviewDeadline()
		return nil
	case guardianaction.FieldAuditLog:
		m.ClearAuditLog()
		return nil
	case guardianaction.FieldParams:
		m.ClearParams()
		return nil
	}
	return fmt.Errorf("unknown GuardianAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GuardianActionMutation) ResetField(name string) error {
	switch name {
	case guardianaction.FieldActionType:
		m.ResetActionType()
		return nil
	case guardianaction.FieldTargetAgentID:
		m.ResetTargetAgentID()
		return nil
	case guardianaction.FieldTargetTaskID:
		m.ResetTargetTaskID()
		return nil
	case guardianaction.FieldAuthorityLevel:
		m.ResetAuthorityLevel()
		return nil
	case guardianaction.FieldReason:
		m.ResetReason()
		return nil
	case guardianaction.FieldInitiator:
		m.ResetInitiator()
		return nil
	case guardianaction.FieldStatus:
		m.ResetStatus()
		return nil
	case guardianaction.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case guardianaction.FieldExecutedAt:
		m.ResetExecutedAt()
		return nil
	case guardianaction.FieldRevertedAt:
		m.ResetRevertedAt()
		return nil
	case guardianaction.FieldReviewDeadline:
		m.ResetReviewDeadline()
		return nil
	case guardianaction.FieldAuditLog:
		m.ResetAuditLog()
		return nil
	case guardianaction.FieldParams:
		m.ResetParams()
		return nil
	case guardianaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GuardianAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GuardianActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GuardianActionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GuardianActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GuardianActionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GuardianActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GuardianActionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GuardianActionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GuardianAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GuardianActionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GuardianAction edge %s", name)
}

// MergeAttemptMutation represents an operation that mutates the MergeAttempt nodes in the graph.
type MergeAttemptMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	parent_task_id          *string
	ticket_id               *string
	source_task_ids         *[]string
	appendsource_task_ids   []string
	incoming_branches       *[]string
	appendincoming_branches []string
	target_branch           *string
	merge_order             *[]string
	appendmerge_order       []string
	conflict_scores         *map[string]int
	status                  *mergeattempt.Status
	llm_invocations         *int
	addllm_invocations      *int
	tokens_used             *int64
	addtokens_used          *int64
	cost_usd                *float64
	addcost_usd             *float64
	resolution_log          *[]map[string]interface{}
	appendresolution_log    []map[string]interface{}
	failure_reason          *string
	created_at              *time.Time
	completed_at            *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*MergeAttempt, error)
	predicates              []predicate.MergeAttempt
}

var _ ent.Mutation = (*MergeAttemptMutation)(nil)

// mergeattemptOption allows management of the mutation configuration using functional options.
type mergeattemptOption func(*MergeAttemptMutation)

// newMergeAttemptMutation creates new mutation for the MergeAttempt entity.
func newMergeAttemptMutation(c config, op Op, opts ...mergeattemptOption) *MergeAttemptMutation {
	m := &MergeAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeMergeAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMergeAttemptID sets the ID field of the mutation.
func withMergeAttemptID(id string) mergeattemptOption {
	return func(m *MergeAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *MergeAttempt
		)
		m.oldValue = func(ctx context.Context) (*MergeAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MergeAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMergeAttempt sets the old MergeAttempt of the mutation.
func withMergeAttempt(node *MergeAttempt) mergeattemptOption {
	return func(m *MergeAttemptMutation) {
		m.oldValue = func(context.Context) (*MergeAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MergeAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MergeAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MergeAttempt entities.
func (m *MergeAttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MergeAttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MergeAttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MergeAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParentTaskID sets the "parent_task_id" field.
func (m *MergeAttemptMutation) SetParentTaskID(s string) {
	m.parent_task_id = &s
}

// ParentTaskID returns the value of the "parent_task_id" field in the mutation.
func (m *MergeAttemptMutation) ParentTaskID() (r string, exists bool) {
	v := m.parent_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTaskID returns the old "parent_task_id" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldParentTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTaskID: %w", err)
	}
	return oldValue.ParentTaskID, nil
}

// ResetParentTaskID resets all changes to the "parent_task_id" field.
func (m *MergeAttemptMutation) ResetParentTaskID() {
	m.parent_task_id = nil
}

// SetTicketID sets the "ticket_id" field.
func (m *MergeAttemptMutation) SetTicketID(s string) {
	m.ticket_id = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *MergeAttemptMutation) TicketID() (r string, exists bool) {
	v := m.ticket_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldTicketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ClearTicketID clears the value of the "ticket_id" field.
func (m *MergeAttemptMutation) ClearTicketID() {
	m.ticket_id = nil
	m.clearedFields[mergeattempt.FieldTicketID] = struct{}{}
}

// TicketIDCleared returns if the "ticket_id" field was cleared in this mutation.
func (m *MergeAttemptMutation) TicketIDCleared() bool {
	_, ok := m.clearedFields[mergeattempt.FieldTicketID]
	return ok
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *MergeAttemptMutation) ResetTicketID() {
	m.ticket_id = nil
	delete(m.clearedFields, mergeattempt.FieldTicketID)
}

// SetSourceTaskIds sets the "source_task_ids" field.
func (m *MergeAttemptMutation) SetSourceTaskIds(s []string) {
	m.source_task_ids = &s
	m.appendsource_task_ids = nil
}

// SourceTaskIds returns the value of the "source_task_ids" field in the mutation.
func (m *MergeAttemptMutation) SourceTaskIds() (r []string, exists bool) {
	v := m.source_task_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceTaskIds returns the old "source_task_ids" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldSourceTaskIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceTaskIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceTaskIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceTaskIds: %w", err)
	}
	return oldValue.SourceTaskIds, nil
}

// AppendSourceTaskIds adds s to the "source_task_ids" field.
func (m *MergeAttemptMutation) AppendSourceTaskIds(s []string) {
	m.appendsource_task_ids = append(m.appendsource_task_ids, s...)
}

// AppendedSourceTaskIds returns the list of values that were appended to the "source_task_ids" field in this mutation.
func (m *MergeAttemptMutation) AppendedSourceTaskIds() ([]string, bool) {
	if len(m.appendsource_task_ids) == 0 {
		return nil, false
	}
	return m.appendsource_task_ids, true
}

// ResetSourceTaskIds resets all changes to the "source_task_ids" field.
func (m *MergeAttemptMutation) ResetSourceTaskIds() {
	m.source_task_ids = nil
	m.appendsource_task_ids = nil
}

// SetIncomingBranches sets the "incoming_branches" field.
func (m *MergeAttemptMutation) SetIncomingBranches(s []string) {
	m.incoming_branches = &s
	m.appendincoming_branches = nil
}

// IncomingBranches returns the value of the "incoming_branches" field in the mutation.
func (m *MergeAttemptMutation) IncomingBranches() (r []string, exists bool) {
	v := m.incoming_branches
	if v == nil {
		return
	}
	return *v, true
}

// OldIncomingBranches returns the old "incoming_branches" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldIncomingBranches(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncomingBranches is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncomingBranches requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncomingBranches: %w", err)
	}
	return oldValue.IncomingBranches, nil
}

// AppendIncomingBranches adds s to the "incoming_branches" field.
func (m *MergeAttemptMutation) AppendIncomingBranches(s []string) {
	m.appendincoming_branches = append(m.appendincoming_branches, s...)
}

// AppendedIncomingBranches returns the list of values that were appended to the "incoming_branches" field in this mutation.
func (m *MergeAttemptMutation) AppendedIncomingBranches() ([]string, bool) {
	if len(m.appendincoming_branches) == 0 {
		return nil, false
	}
	return m.appendincoming_branches, true
}

// ResetIncomingBranches resets all changes to the "incoming_branches" field.
func (m *MergeAttemptMutation) ResetIncomingBranches() {
	m.incoming_branches = nil
	m.appendincoming_branches = nil
}

// SetTargetBranch sets the "target_branch" field.
func (m *MergeAttemptMutation) SetTargetBranch(s string) {
	m.target_branch = &s
}

// TargetBranch returns the value of the "target_branch" field in the mutation.
func (m *MergeAttemptMutation) TargetBranch() (r string, exists bool) {
	v := m.target_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetBranch returns the old "target_branch" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldTargetBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetBranch: %w", err)
	}
	return oldValue.TargetBranch, nil
}

// ResetTargetBranch resets all changes to the "target_branch" field.
func (m *MergeAttemptMutation) ResetTargetBranch() {
	m.target_branch = nil
}

// SetMergeOrder sets the "merge_order" field.
func (m *MergeAttemptMutation) SetMergeOrder(s []string) {
	m.merge_order = &s
	m.appendmerge_order = nil
}

// MergeOrder returns the value of the "merge_order" field in the mutation.
func (m *MergeAttemptMutation) MergeOrder() (r []string, exists bool) {
	v := m.merge_order
	if v == nil {
		return
	}
	return *v, true
}

// OldMergeOrder returns the old "merge_order" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldMergeOrder(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergeOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergeOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergeOrder: %w", err)
	}
	return oldValue.MergeOrder, nil
}

// AppendMergeOrder adds s to the "merge_order" field.
func (m *MergeAttemptMutation) AppendMergeOrder(s []string) {
	m.appendmerge_order = append(m.appendmerge_order, s...)
}

// AppendedMergeOrder returns the list of values that were appended to the "merge_order" field in this mutation.
func (m *MergeAttemptMutation) AppendedMergeOrder() ([]string, bool) {
	if len(m.appendmerge_order) == 0 {
		return nil, false
	}
	return m.appendmerge_order, true
}

// ClearMergeOrder clears the value of the "merge_order" field.
func (m *MergeAttemptMutation) ClearMergeOrder() {
	m.merge_order = nil
	m.appendmerge_order = nil
	m.clearedFields[mergeattempt.FieldMergeOrder] = struct{}{}
}

// MergeOrderCleared returns if the "merge_order" field was cleared in this mutation.
func (m *MergeAttemptMutation) MergeOrderCleared() bool {
	_, ok := m.clearedFields[mergeattempt.FieldMergeOrder]
	return ok
}

// ResetMergeOrder resets all changes to the "merge_order" field.
func (m *MergeAttemptMutation) ResetMergeOrder() {
	m.merge_order = nil
	m.appendmerge_order = nil
	delete(m.clearedFields, mergeattempt.FieldMergeOrder)
}

// SetConflictScores sets the "conflict_scores" field.
func (m *MergeAttemptMutation) SetConflictScores(value map[string]int) {
	m.conflict_scores = &value
}

// ConflictScores returns the value of the "conflict_scores" field in the mutation.
func (m *MergeAttemptMutation) ConflictScores() (r map[string]int, exists bool) {
	v := m.conflict_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictScores returns the old "conflict_scores" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldConflictScores(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictScores: %w", err)
	}
	return oldValue.ConflictScores, nil
}

// ClearConflictScores clears the value of the "conflict_scores" field.
func (m *MergeAttemptMutation) ClearConflictScores() {
	m.conflict_scores = nil
	m.clearedFields[mergeattempt.FieldConflictScores] = struct{}{}
}

// ConflictScoresCleared returns if the "conflict_scores" field was cleared in this mutation.
func (m *MergeAttemptMutation) ConflictScoresCleared() bool {
	_, ok := m.clearedFields[mergeattempt.FieldConflictScores]
	return ok
}

// ResetConflictScores resets all changes to the "conflict_scores" field.
func (m *MergeAttemptMutation) ResetConflictScores() {
	m.conflict_scores = nil
	delete(m.clearedFields, mergeattempt.FieldConflictScores)
}

// SetStatus sets the "status" field.
func (m *MergeAttemptMutation) SetStatus(value mergeattempt.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MergeAttemptMutation) Status() (r mergeattempt.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldStatus(ctx context.Context) (v mergeattempt.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MergeAttemptMutation) ResetStatus() {
	m.status = nil
}

// SetLlmInvocations sets the "llm_invocations" field.
func (m *MergeAttemptMutation) SetLlmInvocations(i int) {
	m.llm_invocations = &i
	m.addllm_invocations = nil
}

// LlmInvocations returns the value of the "llm_invocations" field in the mutation.
func (m *MergeAttemptMutation) LlmInvocations() (r int, exists bool) {
	v := m.llm_invocations
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmInvocations returns the old "llm_invocations" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldLlmInvocations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmInvocations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmInvocations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmInvocations: %w", err)
	}
	return oldValue.LlmInvocations, nil
}

// AddLlmInvocations adds i to the "llm_invocations" field.
func (m *MergeAttemptMutation) AddLlmInvocations(i int) {
	if m.addllm_invocations != nil {
		*m.addllm_invocations += i
	} else {
		m.addllm_invocations = &i
	}
}

// AddedLlmInvocations returns the value that was added to the "llm_invocations" field in this mutation.
func (m *MergeAttemptMutation) AddedLlmInvocations() (r int, exists bool) {
	v := m.addllm_invocations
	if v == nil {
		return
	}
	return *v, true
}

// ResetLlmInvocations resets all changes to the "llm_invocations" field.
func (m *MergeAttemptMutation) ResetLlmInvocations() {
	m.llm_invocations = nil
	m.addllm_invocations = nil
}

// SetTokensUsed sets the "tokens_used" field.
func (m *MergeAttemptMutation) SetTokensUsed(i int64) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *MergeAttemptMutation) TokensUsed() (r int64, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldTokensUsed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *MergeAttemptMutation) AddTokensUsed(i int64) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *MergeAttemptMutation) AddedTokensUsed() (r int64, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *MergeAttemptMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *MergeAttemptMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *MergeAttemptMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *MergeAttemptMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *MergeAttemptMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *MergeAttemptMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetResolutionLog sets the "resolution_log" field.
func (m *MergeAttemptMutation) SetResolutionLog(value []map[string]interface{}) {
	m.resolution_log = &value
	m.appendresolution_log = nil
}

// ResolutionLog returns the value of the "resolution_log" field in the mutation.
func (m *MergeAttemptMutation) ResolutionLog() (r []map[string]interface{}, exists bool) {
	v := m.resolution_log
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionLog returns the old "resolution_log" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldResolutionLog(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionLog: %w", err)
	}
	return oldValue.ResolutionLog, nil
}

// AppendResolutionLog adds value to the "resolution_log" field.
func (m *MergeAttemptMutation) AppendResolutionLog(value []map[string]interface{}) {
	m.appendresolution_log = append(m.appendresolution_log, value...)
}

// AppendedResolutionLog returns the list of values that were appended to the "resolution_log" field in this mutation.
func (m *MergeAttemptMutation) AppendedResolutionLog() ([]map[string]interface{}, bool) {
	if len(m.appendresolution_log) == 0 {
		return nil, false
	}
	return m.appendresolution_log, true
}

// ClearResolutionLog clears the value of the "resolution_log" field.
func (m *MergeAttemptMutation) ClearResolutionLog() {
	m.resolution_log = nil
	m.appendresolution_log = nil
	m.clearedFields[mergeattempt.FieldResolutionLog] = struct{}{}
}

// ResolutionLogCleared returns if the "resolution_log" field was cleared in this mutation.
func (m *MergeAttemptMutation) ResolutionLogCleared() bool {
	_, ok := m.clearedFields[mergeattempt.FieldResolutionLog]
	return ok
}

// ResetResolutionLog resets all changes to the "resolution_log" field.
func (m *MergeAttemptMutation) ResetResolutionLog() {
	m.resolution_log = nil
	m.appendresolution_log = nil
	delete(m.clearedFields, mergeattempt.FieldResolutionLog)
}

// SetFailureReason sets the "failure_reason" field.
func (m *MergeAttemptMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *MergeAttemptMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *MergeAttemptMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[mergeattempt.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *MergeAttemptMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[mergeattempt.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *MergeAttemptMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, mergeattempt.FieldFailureReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *MergeAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MergeAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MergeAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *MergeAttemptMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MergeAttemptMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the MergeAttempt entity.
// If the MergeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAttemptMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *MergeAttemptMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[mergeattempt.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *MergeAttemptMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[mergeattempt.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MergeAttemptMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, mergeattempt.FieldCompletedAt)
}

// Where appends a list predicates to the MergeAttemptMutation builder.
func (m *MergeAttemptMutation) Where(ps ...predicate.MergeAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MergeAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MergeAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MergeAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MergeAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MergeAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MergeAttempt).
func (m *MergeAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MergeAttemptMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.parent_task_id != nil {
		fields = append(fields, mergeattempt.FieldParentTaskID)
	}
	if m.ticket_id != nil {
		fields = append(fields, mergeattempt.FieldTicketID)
	}
	if m.source_task_ids != nil {
		fields = append(fields, mergeattempt.FieldSourceTaskIds)
	}
	if m.incoming_branches != nil {
		fields = append(fields, mergeattempt.FieldIncomingBranches)
	}
	if m.target_branch != nil {
		fields = append(fields, mergeattempt.FieldTargetBranch)
	}
	if m.merge_order != nil {
		fields = append(fields, mergeattempt.FieldMergeOrder)
	}
	if m.conflict_scores != nil {
		fields = append(fields, mergeattempt.FieldConflictScores)
	}
	if m.status != nil {
		fields = append(fields, mergeattempt.FieldStatus)
	}
	if m.llm_invocations != nil {
		fields = append(fields, mergeattempt.FieldLlmInvocations)
	}
	if m.tokens_used != nil {
		fields = append(fields, mergeattempt.FieldTokensUsed)
	}
	if m.cost_usd != nil {
		fields = append(fields, mergeattempt.FieldCostUsd)
	}
	if m.resolution_log != nil {
		fields = append(fields, mergeattempt.FieldResolutionLog)
	}
	if m.failure_reason != nil {
		fields = append(fields, mergeattempt.FieldFailureReason)
	}
	if m.created_at != nil {
		fields = append(fields, mergeattempt.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, mergeattempt.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MergeAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mergeattempt.FieldParentTaskID:
		return m.ParentTaskID()
	case mergeattempt.FieldTicketID:
		return m.TicketID()
	case mergeattempt.FieldSourceTaskIds:
		return m.SourceTaskIds()
	case mergeattempt.FieldIncomingBranches:
		return m.IncomingBranches()
	case mergeattempt.FieldTargetBranch:
		return m.TargetBranch()
	case mergeattempt.FieldMergeOrder:
		return m.MergeOrder()
	case mergeattempt.FieldConflictScores:
		return m.ConflictScores()
	case mergeattempt.FieldStatus:
		return m.Status()
	case mergeattempt.FieldLlmInvocations:
		return m.LlmInvocations()
	case mergeattempt.FieldTokensUsed:
		return m.TokensUsed()
	case mergeattempt.FieldCostUsd:
		return m.CostUsd()
	case mergeattempt.FieldResolutionLog:
		return m.ResolutionLog()
	case mergeattempt.FieldFailureReason:
		return m.FailureReason()
	case mergeattempt.FieldCreatedAt:
		return m.CreatedAt()
	case mergeattempt.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MergeAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mergeattempt.FieldParentTaskID:
		return m.OldParentTaskID(ctx)
	case mergeattempt.FieldTicketID:
		return m.OldTicketID(ctx)
	case mergeattempt.FieldSourceTaskIds:
		return m.OldSourceTaskIds(ctx)
	case mergeattempt.FieldIncomingBranches:
		return m.OldIncomingBranches(ctx)
	case mergeattempt.FieldTargetBranch:
		return m.OldTargetBranch(ctx)
	case mergeattempt.FieldMergeOrder:
		return m.OldMergeOrder(ctx)
	case mergeattempt.FieldConflictScores:
		return m.OldConflictScores(ctx)
	case mergeattempt.FieldStatus:
		return m.OldStatus(ctx)
	case mergeattempt.FieldLlmInvocations:
		return m.OldLlmInvocations(ctx)
	case mergeattempt.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case mergeattempt.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case mergeattempt.FieldResolutionLog:
		return m.OldResolutionLog(ctx)
	case mergeattempt.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case mergeattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mergeattempt.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MergeAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MergeAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mergeattempt.FieldParentTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTaskID(v)
		return nil
	case mergeattempt.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case mergeattempt.FieldSourceTaskIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceTaskIds(v)
		return nil
	case mergeattempt.FieldIncomingBranches:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncomingBranches(v)
		return nil
	case mergeattempt.FieldTargetBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetBranch(v)
		return nil
	case mergeattempt.FieldMergeOrder:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergeOrder(v)
		return nil
	case mergeattempt.FieldConflictScores:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictScores(v)
		return nil
	case mergeattempt.FieldStatus:
		v, ok := value.(mergeattempt.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case mergeattempt.FieldLlmInvocations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmInvocations(v)
		return nil
	case mergeattempt.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case mergeattempt.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case mergeattempt.FieldResolutionLog:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionLog(v)
		return nil
	case mergeattempt.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case mergeattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mergeattempt.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MergeAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MergeAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addllm_invocations != nil {
		fields = append(fields, mergeattempt.FieldLlmInvocations)
	}
	if m.addtokens_used != nil {
		fields = append(fields, mergeattempt.FieldTokensUsed)
	}
	if m.addcost_usd != nil {
		fields = append(fields, mergeattempt.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MergeAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mergeattempt.FieldLlmInvocations:
		return m.AddedLlmInvocations()
	case mergeattempt.FieldTokensUsed:
		return m.AddedTokensUsed()
	case mergeattempt.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MergeAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mergeattempt.FieldLlmInvocations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLlmInvocations(v)
		return nil
	case mergeattempt.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case mergeattempt.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown MergeAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MergeAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mergeattempt.FieldTicketID) {
		fields = append(fields, mergeattempt.FieldTicketID)
	}
	if m.FieldCleared(mergeattempt.FieldMergeOrder) {
		fields = append(fields, mergeattempt.FieldMergeOrder)
	}
	if m.FieldCleared(mergeattempt.FieldConflictScores) {
		fields = append(fields, mergeattempt.FieldConflictScores)
	}
	if m.FieldCleared(mergeattempt.FieldResolutionLog) {
		fields = append(fields, mergeattempt.FieldResolutionLog)
	}
	if m.FieldCleared(mergeattempt.FieldFailureReason) {
		fields = append(fields, mergeattempt.FieldFailureReason)
	}
	if m.FieldCleared(mergeattempt.FieldCompletedAt) {
		fields = append(fields, mergeattempt.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MergeAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MergeAttemptMutation) ClearField(name string) error {
	switch name {
	case mergeattempt.FieldTicketID:
		m.ClearTicketID()
		return nil
	case mergeattempt.FieldMergeOrder:
		m.ClearMergeOrder()
		return nil
	case mergeattempt.FieldConflictScores:
		m.ClearConflictScores()
		return nil
	case mergeattempt.FieldResolutionLog:
		m.ClearResolutionLog()
		return nil
	case mergeattempt.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case mergeattempt.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown MergeAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MergeAttemptMutation) ResetField(name string) error {
	switch name {
	case mergeattempt.FieldParentTaskID:
		m.ResetParentTaskID()
		return nil
	case mergeattempt.FieldTicketID:
		m.ResetTicketID()
		return nil
	case mergeattempt.FieldSourceTaskIds:
		m.ResetSourceTaskIds()
		return nil
	case mergeattempt.FieldIncomingBranches:
		m.ResetIncomingBranches()
		return nil
	case mergeattempt.FieldTargetBranch:
		m.ResetTargetBranch()
		return nil
	case mergeattempt.FieldMergeOrder:
		m.ResetMergeOrder()
		return nil
	case mergeattempt.FieldConflictScores:
		m.ResetConflictScores()
		return nil
	case mergeattempt.FieldStatus:
		m.ResetStatus()
		return nil
	case mergeattempt.FieldLlmInvocations:
		m.ResetLlmInvocations()
		return nil
	case mergeattempt.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case mergeattempt.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case mergeattempt.FieldResolutionLog:
		m.ResetResolutionLog()
		return nil
	case mergeattempt.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case mergeattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mergeattempt.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown MergeAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MergeAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MergeAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MergeAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MergeAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MergeAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MergeAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MergeAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MergeAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MergeAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MergeAttempt edge %s", name)
}

// SandboxAllocationMutation represents an operation that mutates the SandboxAllocation nodes in the graph.
type SandboxAllocationMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	cpu_cores            *float64
	addcpu_cores         *float64
	memory_mb            *int
	addmemory_mb         *int
	disk_mb              *int
	adddisk_mb           *int
	pending_cpu_cores    *float64
	addpending_cpu_cores *float64
	pending_memory_mb    *int
	addpending_memory_mb *int
	pending_disk_mb      *int
	addpending_disk_mb   *int
	version              *int
	addversion           *int
	updated_by           *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SandboxAllocation, error)
	predicates           []predicate.SandboxAllocation
}

var _ ent.Mutation = (*SandboxAllocationMutation)(nil)

// sandboxallocationOption allows management of the mutation configuration using functional options.
type sandboxallocationOption func(*SandboxAllocationMutation)

// newSandboxAllocationMutation creates new mutation for the SandboxAllocation entity.
func newSandboxAllocationMutation(c config, op Op, opts ...sandboxallocationOption) *SandboxAllocationMutation {
	m := &SandboxAllocationMutation{
		config:        c,
		op:            op,
		typ:           TypeSandboxAllocation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSandboxAllocationID sets the ID field of the mutation.
func withSandboxAllocationID(id string) sandboxallocationOption {
	return func(m *SandboxAllocationMutation) {
		var (
			err   error
			once  sync.Once
			value *SandboxAllocation
		)
		m.oldValue = func(ctx context.Context) (*SandboxAllocation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SandboxAllocation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSandboxAllocation sets the old SandboxAllocation of the mutation.
func withSandboxAllocation(node *SandboxAllocation) sandboxallocationOption {
	return func(m *SandboxAllocationMutation) {
		m.oldValue = func(context.Context) (*SandboxAllocation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SandboxAllocationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SandboxAllocationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SandboxAllocation entities.
func (m *SandboxAllocationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SandboxAllocationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SandboxAllocationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SandboxAllocation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCPUCores sets the "cpu_cores" field.
func (m *SandboxAllocationMutation) SetCPUCores(f float64) {
	m.cpu_cores = &f
	m.addcpu_cores = nil
}

// CPUCores returns the value of the "cpu_cores" field in the mutation.
func (m *SandboxAllocationMutation) CPUCores() (r float64, exists bool) {
	v := m.cpu_cores
	if v == nil {
		return
	}
	return *v, true
}

// OldCPUCores returns the old "cpu_cores" field's value of the SandboxAllocation entity.
// If the SandboxAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxAllocationMutation) OldCPUCores(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCPUCores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCPUCores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCPUCores: %w", err)
	}
	return oldValue.CPUCores, nil
}

// AddCPUCores adds f to the "cpu_cores" field.
func (m *SandboxAllocationMutation) AddCPUCores(f float64) {
	if m.addcpu_cores != nil {
		*m.addcpu_cores += f
	} else {
		m.addcpu_cores = &f
	}
}

// AddedCPUCores returns the value that was added to the "cpu_cores" field in this mutation.
func (m *SandboxAllocationMutation) AddedCPUCores() (r float64, exists bool) {
	v := m.addcpu_cores
	if v == nil {
		return
	}
	return *v, true
}

// ResetCPUCores resets all changes to the "cpu_cores" field.
func (m *SandboxAllocationMutation) ResetCPUCores() {
	m.cpu_cores = nil
	m.addcpu_cores = nil
}

// SetMemoryMB sets the "memory_mb" field.
func (m *SandboxAllocationMutation) SetMemoryMB(i int) {
	m.memory_mb = &i
	m.addmemory_mb = nil
}

// MemoryMB returns the value of the "memory_mb" field in the mutation.
func (m *SandboxAllocationMutation) MemoryMB() (r int, exists bool) {
	v := m.memory_mb
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryMB returns the old "memory_mb" field's value of the SandboxAllocation entity.
// If the SandboxAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxAllocationMutation) OldMemoryMB(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryMB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryMB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryMB: %w", err)
	}
	return oldValue.MemoryMB, nil
}

// AddMemoryMB adds i to the "memory_mb" field.
func (m *SandboxAllocationMutation) AddMemoryMB(i int) {
	if m.addmemory_mb != nil {
		*m.addmemory_mb += i
	} else {
		m.addmemory_mb = &i
	}
}

// AddedMemoryMB returns the value that was added to the "memory_mb" field in this mutation.
func (m *SandboxAllocationMutation) AddedMemoryMB() (r int, exists bool) {
	v := m.addmemory_mb
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemoryMB resets all changes to the "memory_mb" field.
func (m *SandboxAllocationMutation) ResetMemoryMB() {
	m.memory_mb = nil
	m.addmemory_mb = nil
}

// SetDiskMB sets the "disk_mb" field.
func (m *SandboxAllocationMutation) SetDiskMB(i int) {
	m.disk_mb = &i
	m.adddisk_mb = nil
}

// DiskMB returns the value of the "disk_mb" field in the mutation.
func (m *SandboxAllocationMutation) DiskMB() (r int, exists bool) {
	v := m.disk_mb
	if v == nil {
		return
	}
	return *v, true
}

// OldDiskMB returns the old "disk_mb" field's value of the SandboxAllocation entity.
// If the SandboxAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxAllocationMutation) OldDiskMB(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiskMB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiskMB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiskMB: %w", err)
	}
	return oldValue.DiskMB, nil
}

// AddDiskMB adds i to the "disk_mb" field.
func (m *SandboxAllocationMutation) AddDiskMB(i int) {
	if m.adddisk_mb != nil {
		*m.adddisk_mb += i
	} else {
		m.adddisk_mb = &i
	}
}

// AddedDiskMB returns the value that was added to the "disk_mb" field in this mutation.
func (m *SandboxAllocationMutation) AddedDiskMB() (r int, exists bool) {
	v := m.adddisk_mb
	if v == nil {
		return
	}
	return *v, true
}

// ResetDiskMB resets all changes to the "disk_mb" field.
func (m *SandboxAllocationMutation) ResetDiskMB() {
	m.disk_mb = nil
	m.adddisk_mb = nil
}

// SetPendingCPUCores sets the "pending_cpu_cores" field.
func (m *SandboxAllocationMutation) SetPendingCPUCores(f float64) {
	m.pending_cpu_cores = &f
	m.addpending_cpu_cores = nil
}

// PendingCPUCores returns the value of the "pending_cpu_cores" field in the mutation.
func (m *SandboxAllocationMutation) PendingCPUCores() (r float64, exists bool) {
	v := m.pending_cpu_cores
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingCPUCores returns the old "pending_cpu_cores" field's value of the SandboxAllocation entity.
// If the SandboxAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxAllocationMutation) OldPendingCPUCores(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingCPUCores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingCPUCores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingCPUCores: %w", err)
	}
	return oldValue.PendingCPUCores, nil
}

// AddPendingCPUCores adds f to the "pending_cpu_cores" field.
func (m *SandboxAllocationMutation) AddPendingCPUCores(f float64) {
	if m.addpending_cpu_cores != nil {
		*m.addpending_cpu_cores += f
	} else {
		m.addpending_cpu_cores = &f
	}
}

// AddedPendingCPUCores returns the value that was added to the "pending_cpu_cores" field in this mutation.
func (m *SandboxAllocationMutation) AddedPendingCPUCores() (r float64, exists bool) {
	v := m.addpending_cpu_cores
	if v == nil {
		return
	}
	return *v, true
}

// ClearPendingCPUCores clears the value of the "pending_cpu_cores" field.
func (m *SandboxAllocationMutation) ClearPendingCPUCores() {
	m.pending_cpu_cores = nil
	m.addpending_cpu_cores = nil
	m.clearedFields[sandboxallocation.FieldPendingCPUCores] = struct{}{}
}

// PendingCPUCoresCleared returns if the "pending_cpu_cores" field was cleared in this mutation.
func (m *SandboxAllocationMutation) PendingCPUCoresCleared() bool {
	_, ok := m.clearedFields[sandboxallocation.FieldPendingCPUCores]
	return ok
}

// ResetPendingCPUCores resets all changes to the "pending_cpu_cores" field.
func (m *SandboxAllocationMutation) ResetPendingCPUCores() {
	m.pending_cpu_cores = nil
	m.addpending_cpu_cores = nil
	delete(m.clearedFields, sandboxallocation.FieldPendingCPUCores)
}

// SetPendingMemoryMB sets the "pending_memory_mb" field.
func (m *SandboxAllocationMutation) SetPendingMemoryMB(i int) {
	m.pending_memory_mb = &i
	m.addpending_memory_mb = nil
}

// PendingMemoryMB returns the value of the "pending_memory_mb" field in the mutation.
func (m *SandboxAllocationMutation) PendingMemoryMB() (r int, exists bool) {
	v := m.pending_memory_mb
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingMemoryMB returns the old "pending_memory_mb" field's value of the SandboxAllocation entity.
// If the SandboxAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxAllocationMutation) OldPendingMemoryMB(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingMemoryMB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingMemoryMB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingMemoryMB: %w", err)
	}
	return oldValue.PendingMemoryMB, nil
}

// AddPendingMemoryMB adds i to the "pending_memory_mb" field.
func (m *SandboxAllocationMutation) AddPendingMemoryMB(i int) {
	if m.addpending_memory_mb != nil {
		*m.addpending_memory_mb += i
	} else {
		m.addpending_memory_mb = &i
	}
}

// AddedPendingMemoryMB returns the value that was added to the "pending_memory_mb" field in this mutation.
func (m *SandboxAllocationMutation) AddedPendingMemoryMB() (r int, exists bool) {
	v := m.addpending_memory_mb
	if v == nil {
		return
	}
	return *v, true
}

// ClearPendingMemoryMB clears the value of the "pending_memory_mb" field.
func (m *SandboxAllocationMutation) ClearPendingMemoryMB() {
	m.pending_memory_mb = nil
	m.addpending_memory_mb = nil
	m.clearedFields[sandboxallocation.FieldPendingMemoryMB] = struct{}{}
}

// PendingMemoryMBCleared returns if the "pending_memory_mb" field was cleared in this mutation.
func (m *SandboxAllocationMutation) PendingMemoryMBCleared() bool {
	_, ok := m.clearedFields[sandboxallocation.FieldPendingMemoryMB]
	return ok
}

// ResetPendingMemoryMB resets all changes to the "pending_memory_mb" field.
func (m *SandboxAllocationMutation) ResetPendingMemoryMB() {
	m.pending_memory_mb = nil
	m.addpending_memory_mb = nil
	delete(m.clearedFields, sandboxallocation.FieldPendingMemoryMB)
}

// SetPendingDiskMB sets the "pending_disk_mb" field.
func (m *SandboxAllocationMutation) SetPendingDiskMB(i int) {
	m.pending_disk_mb = &i
	m.addpending_disk_mb = nil
}

// PendingDiskMB returns the value of the "pending_disk_mb" field in the mutation.
func (m *SandboxAllocationMutation) PendingDiskMB() (r int, exists bool) {
	v := m.pending_disk_mb
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingDiskMB returns the old "pending_disk_mb" field's value of the SandboxAllocation entity.
// If the SandboxAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxAllocationMutation) OldPendingDiskMB(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingDiskMB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingDiskMB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingDiskMB: %w", err)
	}
	return oldValue.PendingDiskMB, nil
}

// AddPendingDiskMB adds i to the "pending_disk_mb" field.
func (m *SandboxAllocationMutation) AddPendingDiskMB(i int) {
	if m.addpending_disk_mb != nil {
		*m.addpending_disk_mb += i
	} else {
		m.addpending_disk_mb = &i
	}
}

// AddedPendingDiskMB returns the value that was added to the "pending_disk_mb" field in this mutation.
func (m *SandboxAllocationMutation) AddedPendingDiskMB() (r int, exists bool) {
	v := m.addpending_disk_mb
	if v == nil {
		return
	}
	return *v, true
}

// ClearPendingDiskMB clears the value of the "pending_disk_mb" field.
func (m *SandboxAllocationMutation) ClearPendingDiskMB() {
	m.pending_disk_mb = nil
	m.addpending_disk_mb = nil
	m.clearedFields[sandboxallocation.FieldPendingDiskMB] = struct{}{}
}

// PendingDiskMBCleared returns if the "pending_disk_mb" field was cleared in this mutation.
func (m *SandboxAllocationMutation) PendingDiskMBCleared() bool {
	_, ok := m.clearedFields[sandboxallocation.FieldPendingDiskMB]
	return ok
}

// ResetPendingDiskMB resets all changes to the "pending_disk_mb" field.
func (m *SandboxAllocationMutation) ResetPendingDiskMB() {
	m.pending_disk_mb = nil
	m.addpending_disk_mb = nil
	delete(m.clearedFields, sandboxallocation.FieldPendingDiskMB)
}

// SetVersion sets the "version" field.
func (m *SandboxAllocationMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *SandboxAllocationMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the SandboxAllocation entity.
// If the SandboxAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxAllocationMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *SandboxAllocationMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *SandboxAllocationMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *SandboxAllocationMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *SandboxAllocationMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *SandboxAllocationMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the SandboxAllocation entity.
// If the SandboxAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxAllocationMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *SandboxAllocationMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[sandboxallocation.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *SandboxAllocationMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[sandboxallocation.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *SandboxAllocationMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, sandboxallocation.FieldUpdatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *SandboxAllocationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SandboxAllocationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SandboxAllocation entity.
// If the SandboxAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxAllocationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SandboxAllocationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SandboxAllocationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SandboxAllocationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SandboxAllocation entity.
// If the SandboxAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxAllocationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SandboxAllocationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SandboxAllocationMutation builder.
func (m *SandboxAllocationMutation) Where(ps ...predicate.SandboxAllocation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SandboxAllocationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SandboxAllocationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SandboxAllocation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SandboxAllocationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SandboxAllocationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SandboxAllocation).
func (m *SandboxAllocationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SandboxAllocationMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.cpu_cores != nil {
		fields = append(fields, sandboxallocation.FieldCPUCores)
	}
	if m.memory_mb != nil {
		fields = append(fields, sandboxallocation.FieldMemoryMB)
	}
	if m.disk_mb != nil {
		fields = append(fields, sandboxallocation.FieldDiskMB)
	}
	if m.pending_cpu_cores != nil {
		fields = append(fields, sandboxallocation.FieldPendingCPUCores)
	}
	if m.pending_memory_mb != nil {
		fields = append(fields, sandboxallocation.FieldPendingMemoryMB)
	}
	if m.pending_disk_mb != nil {
		fields = append(fields, sandboxallocation.FieldPendingDiskMB)
	}
	if m.version != nil {
		fields = append(fields, sandboxallocation.FieldVersion)
	}
	if m.updated_by != nil {
		fields = append(fields, sandboxallocation.FieldUpdatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, sandboxallocation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sandboxallocation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SandboxAllocationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sandboxallocation.FieldCPUCores:
		return m.CPUCores()
	case sandboxallocation.FieldMemoryMB:
		return m.MemoryMB()
	case sandboxallocation.FieldDiskMB:
		return m.DiskMB()
	case sandboxallocation.FieldPendingCPUCores:
		return m.PendingCPUCores()
	case sandboxallocation.FieldPendingMemoryMB:
		return m.PendingMemoryMB()
	case sandboxallocation.FieldPendingDiskMB:
		return m.PendingDiskMB()
	case sandboxallocation.FieldVersion:
		return m.Version()
	case sandboxallocation.FieldUpdatedBy:
		return m.UpdatedBy()
	case sandboxallocation.FieldCreatedAt:
		return m.CreatedAt()
	case sandboxallocation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SandboxAllocationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sandboxallocation.FieldCPUCores:
		return m.OldCPUCores(ctx)
	case sandboxallocation.FieldMemoryMB:
		return m.OldMemoryMB(ctx)
	case sandboxallocation.FieldDiskMB:
		return m.OldDiskMB(ctx)
	case sandboxallocation.FieldPendingCPUCores:
		return m.OldPendingCPUCores(ctx)
	case sandboxallocation.FieldPendingMemoryMB:
		return m.OldPendingMemoryMB(ctx)
	case sandboxallocation.FieldPendingDiskMB:
		return m.OldPendingDiskMB(ctx)
	case sandboxallocation.FieldVersion:
		return m.OldVersion(ctx)
	case sandboxallocation.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case sandboxallocation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sandboxallocation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SandboxAllocation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SandboxAllocationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sandboxallocation.FieldCPUCores:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCPUCores(v)
		return nil
	case sandboxallocation.FieldMemoryMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryMB(v)
		return nil
	case sandboxallocation.FieldDiskMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiskMB(v)
		return nil
	case sandboxallocation.FieldPendingCPUCores:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingCPUCores(v)
		return nil
	case sandboxallocation.FieldPendingMemoryMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingMemoryMB(v)
		return nil
	case sandboxallocation.FieldPendingDiskMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingDiskMB(v)
		return nil
	case sandboxallocation.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case sandboxallocation.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case sandboxallocation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sandboxallocation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SandboxAllocation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SandboxAllocationMutation) AddedFields() []string {
	var fields []string
	if m.addcpu_cores != nil {
		fields = append(fields, sandboxallocation.FieldCPUCores)
	}
	if m.addmemory_mb != nil {
		fields = append(fields, sandboxallocation.FieldMemoryMB)
	}
	if m.adddisk_mb != nil {
		fields = append(fields, sandboxallocation.FieldDiskMB)
	}
	if m.addpending_cpu_cores != nil {
		fields = append(fields, sandboxallocation.FieldPendingCPUCores)
	}
	if m.addpending_memory_mb != nil {
		fields = append(fields, sandboxallocation.FieldPendingMemoryMB)
	}
	if m.addpending_disk_mb != nil {
		fields = append(fields, sandboxallocation.FieldPendingDiskMB)
	}
	if m.addversion != nil {
		fields = append(fields, sandboxallocation.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SandboxAllocationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sandboxallocation.FieldCPUCores:
		return m.AddedCPUCores()
	case sandboxallocation.FieldMemoryMB:
		return m.AddedMemoryMB()
	case sandboxallocation.FieldDiskMB:
		return m.AddedDiskMB()
	case sandboxallocation.FieldPendingCPUCores:
		return m.AddedPendingCPUCores()
	case sandboxallocation.FieldPendingMemoryMB:
		return m.AddedPendingMemoryMB()
	case sandboxallocation.FieldPendingDiskMB:
		return m.AddedPendingDiskMB()
	case sandboxallocation.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SandboxAllocationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sandboxallocation.FieldCPUCores:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCPUCores(v)
		return nil
	case sandboxallocation.FieldMemoryMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoryMB(v)
		return nil
	case sandboxallocation.FieldDiskMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDiskMB(v)
		return nil
	case sandboxallocation.FieldPendingCPUCores:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPendingCPUCores(v)
		return nil
	case sandboxallocation.FieldPendingMemoryMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPendingMemoryMB(v)
		return nil
	case sandboxallocation.FieldPendingDiskMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPendingDiskMB(v)
		return nil
	case sandboxallocation.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown SandboxAllocation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SandboxAllocationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sandboxallocation.FieldPendingCPUCores) {
		fields = append(fields, sandboxallocation.FieldPendingCPUCores)
	}
	if m.FieldCleared(sandboxallocation.FieldPendingMemoryMB) {
		fields = append(fields, sandboxallocation.FieldPendingMemoryMB)
	}
	if m.FieldCleared(sandboxallocation.FieldPendingDiskMB) {
		fields = append(fields, sandboxallocation.FieldPendingDiskMB)
	}
	if m.FieldCleared(sandboxallocation.FieldUpdatedBy) {
		fields = append(fields, sandboxallocation.FieldUpdatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SandboxAllocationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SandboxAllocationMutation) ClearField(name string) error {
	switch name {
	case sandboxallocation.FieldPendingCPUCores:
		m.ClearPendingCPUCores()
		return nil
	case sandboxallocation.FieldPendingMemoryMB:
		m.ClearPendingMemoryMB()
		return nil
	case sandboxallocation.FieldPendingDiskMB:
		m.ClearPendingDiskMB()
		return nil
	case sandboxallocation.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown SandboxAllocation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SandboxAllocationMutation) ResetField(name string) error {
	switch name {
	case sandboxallocation.FieldCPUCores:
		m.ResetCPUCores()
		return nil
	case sandboxallocation.FieldMemoryMB:
		m.ResetMemoryMB()
		return nil
	case sandboxallocation.FieldDiskMB:
		m.ResetDiskMB()
		return nil
	case sandboxallocation.FieldPendingCPUCores:
		m.ResetPendingCPUCores()
		return nil
	case sandboxallocation.FieldPendingMemoryMB:
		m.ResetPendingMemoryMB()
		return nil
	case sandboxallocation.FieldPendingDiskMB:
		m.ResetPendingDiskMB()
		return nil
	case sandboxallocation.FieldVersion:
		m.ResetVersion()
		return nil
	case sandboxallocation.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case sandboxallocation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sandboxallocation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SandboxAllocation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SandboxAllocationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SandboxAllocationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SandboxAllocationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SandboxAllocationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SandboxAllocationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SandboxAllocationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SandboxAllocationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SandboxAllocation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SandboxAllocationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SandboxAllocation edge %s", name)
}

// SandboxEventMutation represents an operation that mutates the SandboxEvent nodes in the graph.
type SandboxEventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	event_key     *string
	sandbox_id    *string
	event_type    *string
	event_data    *map[string]interface{}
	source        *sandboxevent.Source
	entity_type   *string
	entity_id     *string
	spec_id       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SandboxEvent, error)
	predicates    []predicate.SandboxEvent
}

var _ ent.Mutation = (*SandboxEventMutation)(nil)

// sandboxeventOption allows management of the mutation configuration using functional options.
type sandboxeventOption func(*SandboxEventMutation)

// newSandboxEventMutation creates new mutation for the SandboxEvent entity.
func newSandboxEventMutation(c config, op Op, opts ...sandboxeventOption) *SandboxEventMutation {
	m := &SandboxEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSandboxEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSandboxEventID sets the ID field of the mutation.
func withSandboxEventID(id int64) sandboxeventOption {
	return func(m *SandboxEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SandboxEvent
		)
		m.oldValue = func(ctx context.Context) (*SandboxEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SandboxEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSandboxEvent sets the old SandboxEvent of the mutation.
func withSandboxEvent(node *SandboxEvent) sandboxeventOption {
	return func(m *SandboxEventMutation) {
		m.oldValue = func(context.Context) (*SandboxEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SandboxEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SandboxEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SandboxEvent entities.
func (m *SandboxEventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SandboxEventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SandboxEventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SandboxEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventKey sets the "event_key" field.
func (m *SandboxEventMutation) SetEventKey(s string) {
	m.event_key = &s
}

// EventKey returns the value of the "event_key" field in the mutation.
func (m *SandboxEventMutation) EventKey() (r string, exists bool) {
	v := m.event_key
	if v == nil {
		return
	}
	return *v, true
}

// OldEventKey returns the old "event_key" field's value of the SandboxEvent entity.
// If the SandboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxEventMutation) OldEventKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventKey: %w", err)
	}
	return oldValue.EventKey, nil
}

// ResetEventKey resets all changes to the "event_key" field.
func (m *SandboxEventMutation) ResetEventKey() {
	m.event_key = nil
}

// SetSandboxID sets the "sandbox_id" field.
func (m *SandboxEventMutation) SetSandboxID(s string) {
	m.sandbox_id = &s
}

// SandboxID returns the value of the "sandbox_id" field in the mutation.
func (m *SandboxEventMutation) SandboxID() (r string, exists bool) {
	v := m.sandbox_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxID returns the old "sandbox_id" field's value of the SandboxEvent entity.
// If the SandboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxEventMutation) OldSandboxID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxID: %w", err)
	}
	return oldValue.SandboxID, nil
}

// ResetSandboxID resets all changes to the "sandbox_id" field.
func (m *SandboxEventMutation) ResetSandboxID() {
	m.sandbox_id = nil
}

// SetEventType sets the "event_type" field.
func (m *SandboxEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *SandboxEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the SandboxEvent entity.
// If the SandboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *SandboxEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetEventData sets the "event_data" field.
func (m *SandboxEventMutation) SetEventData(value map[string]interface{}) {
	m.event_data = &value
}

// EventData returns the value of the "event_data" field in the mutation.
func (m *SandboxEventMutation) EventData() (r map[string]interface{}, exists bool) {
	v := m.event_data
	if v == nil {
		return
	}
	return *v, true
}

// OldEventData returns the old "event_data" field's value of the SandboxEvent entity.
// If the SandboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxEventMutation) OldEventData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventData: %w", err)
	}
	return oldValue.EventData, nil
}

// ClearEventData clears the value of the "event_data" field.
func (m *SandboxEventMutation) ClearEventData() {
	m.event_data = nil
	m.clearedFields[sandboxevent.FieldEventData] = struct{}{}
}

// EventDataCleared returns if the "event_data" field was cleared in this mutation.
func (m *SandboxEventMutation) EventDataCleared() bool {
	_, ok := m.clearedFields[sandboxevent.FieldEventData]
	return ok
}

// ResetEventData resets all changes to the "event_data" field.
func (m *SandboxEventMutation) ResetEventData() {
	m.event_data = nil
	delete(m.clearedFields, sandboxevent.FieldEventData)
}

// SetSource sets the "source" field.
func (m *SandboxEventMutation) SetSource(s sandboxevent.Source) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *SandboxEventMutation) Source() (r sandboxevent.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the SandboxEvent entity.
// If the SandboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxEventMutation) OldSource(ctx context.Context) (v sandboxevent.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *SandboxEventMutation) ResetSource() {
	m.source = nil
}

// SetEntityType sets the "entity_type" field.
func (m *SandboxEventMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *SandboxEventMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the SandboxEvent entity.
// If the SandboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxEventMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ClearEntityType clears the value of the "entity_type" field.
func (m *SandboxEventMutation) ClearEntityType() {
	m.entity_type = nil
	m.clearedFields[sandboxevent.FieldEntityType] = struct{}{}
}

// EntityTypeCleared returns if the "entity_type" field was cleared in this mutation.
func (m *SandboxEventMutation) EntityTypeCleared() bool {
	_, ok := m.clearedFields[sandboxevent.FieldEntityType]
	return ok
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *SandboxEventMutation) ResetEntityType() {
	m.entity_type = nil
	delete(m.clearedFields, sandboxevent.FieldEntityType)
}

// SetEntityID sets the "entity_id" field.
func (m *SandboxEventMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *SandboxEventMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the SandboxEvent entity.
// If the SandboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxEventMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ClearEntityID clears the value of the "entity_id" field.
func (m *SandboxEventMutation) ClearEntityID() {
	m.entity_id = nil
	m.clearedFields[sandboxevent.FieldEntityID] = struct{}{}
}

// EntityIDCleared returns if the "entity_id" field was cleared in this mutation.
func (m *SandboxEventMutation) EntityIDCleared() bool {
	_, ok := m.clearedFields[sandboxevent.FieldEntityID]
	return ok
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *SandboxEventMutation) ResetEntityID() {
	m.entity_id = nil
	delete(m.clearedFields, sandboxevent.FieldEntityID)
}

// SetSpecID sets the "spec_id" field.
func (m *SandboxEventMutation) SetSpecID(s string) {
	m.spec_id = &s
}

// SpecID returns the value of the "spec_id" field in the mutation.
func (m *SandboxEventMutation) SpecID() (r string, exists bool) {
	v := m.spec_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecID returns the old "spec_id" field's value of the SandboxEvent entity.
// If the SandboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxEventMutation) OldSpecID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecID: %w", err)
	}
	return oldValue.SpecID, nil
}

// ClearSpecID clears the value of the "spec_id" field.
func (m *SandboxEventMutation) ClearSpecID() {
	m.spec_id = nil
	m.clearedFields[sandboxevent.FieldSpecID] = struct{}{}
}

// SpecIDCleared returns if the "spec_id" field was cleared in this mutation.
func (m *SandboxEventMutation) SpecIDCleared() bool {
	_, ok := m.clearedFields[sandboxevent.FieldSpecID]
	return ok
}

// ResetSpecID resets all changes to the "spec_id" field.
func (m *SandboxEventMutation) ResetSpecID() {
	m.spec_id = nil
	delete(m.clearedFields, sandboxevent.FieldSpecID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SandboxEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SandboxEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SandboxEvent entity.
// If the SandboxEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SandboxEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SandboxEventMutation builder.
func (m *SandboxEventMutation) Where(ps ...predicate.SandboxEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SandboxEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SandboxEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SandboxEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SandboxEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SandboxEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SandboxEvent).
func (m *SandboxEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SandboxEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.event_key != nil {
		fields = append(fields, sandboxevent.FieldEventKey)
	}
	if m.sandbox_id != nil {
		fields = append(fields, sandboxevent.FieldSandboxID)
	}
	if m.event_type != nil {
		fields = append(fields, sandboxevent.FieldEventType)
	}
	if m.event_data != nil {
		fields = append(fields, sandboxevent.FieldEventData)
	}
	if m.source != nil {
		fields = append(fields, sandboxevent.FieldSource)
	}
	if m.entity_type != nil {
		fields = append(fields, sandboxevent.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, sandboxevent.FieldEntityID)
	}
	if m.spec_id != nil {
		fields = append(fields, sandboxevent.FieldSpecID)
	}
	if m.created_at != nil {
		fields = append(fields, sandboxevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SandboxEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sandboxevent.FieldEventKey:
		return m.EventKey()
	case sandboxevent.FieldSandboxID:
		return m.SandboxID()
	case sandboxevent.FieldEventType:
		return m.EventType()
	case sandboxevent.FieldEventData:
		return m.EventData()
	case sandboxevent.FieldSource:
		return m.Source()
	case sandboxevent.FieldEntityType:
		return m.EntityType()
	case sandboxevent.FieldEntityID:
		return m.EntityID()
	case sandboxevent.FieldSpecID:
		return m.SpecID()
	case sandboxevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SandboxEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sandboxevent.FieldEventKey:
		return m.OldEventKey(ctx)
	case sandboxevent.FieldSandboxID:
		return m.OldSandboxID(ctx)
	case sandboxevent.FieldEventType:
		return m.OldEventType(ctx)
	case sandboxevent.FieldEventData:
		return m.OldEventData(ctx)
	case sandboxevent.FieldSource:
		return m.OldSource(ctx)
	case sandboxevent.FieldEntityType:
		return m.OldEntityType(ctx)
	case sandboxevent.FieldEntityID:
		return m.OldEntityID(ctx)
	case sandboxevent.FieldSpecID:
		return m.OldSpecID(ctx)
	case sandboxevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SandboxEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SandboxEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sandboxevent.FieldEventKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventKey(v)
		return nil
	case sandboxevent.FieldSandboxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxID(v)
		return nil
	case sandboxevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case sandboxevent.FieldEventData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventData(v)
		return nil
	case sandboxevent.FieldSource:
		v, ok := value.(sandboxevent.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case sandboxevent.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case sandboxevent.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case sandboxevent.FieldSpecID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecID(v)
		return nil
	case sandboxevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SandboxEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SandboxEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SandboxEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SandboxEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SandboxEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SandboxEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sandboxevent.FieldEventData) {
		fields = append(fields, sandboxevent.FieldEventData)
	}
	if m.FieldCleared(sandboxevent.FieldEntityType) {
		fields = append(fields, sandboxevent.FieldEntityType)
	}
	if m.FieldCleared(sandboxevent.FieldEntityID) {
		fields = append(fields, sandboxevent.FieldEntityID)
	}
	if m.FieldCleared(sandboxevent.FieldSpecID) {
		fields = append(fields, sandboxevent.FieldSpecID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SandboxEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SandboxEventMutation) ClearField(name string) error {
	switch name {
	case sandboxevent.FieldEventData:
		m.ClearEventData()
		return nil
	case sandboxevent.FieldEntityType:
		m.ClearEntityType()
		return nil
	case sandboxevent.FieldEntityID:
		m.ClearEntityID()
		return nil
	case sandboxevent.FieldSpecID:
		m.ClearSpecID()
		return nil
	}
	return fmt.Errorf("unknown SandboxEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SandboxEventMutation) ResetField(name string) error {
	switch name {
	case sandboxevent.FieldEventKey:
		m.ResetEventKey()
		return nil
	case sandboxevent.FieldSandboxID:
		m.ResetSandboxID()
		return nil
	case sandboxevent.FieldEventType:
		m.ResetEventType()
		return nil
	case sandboxevent.FieldEventData:
		m.ResetEventData()
		return nil
	case sandboxevent.FieldSource:
		m.ResetSource()
		return nil
	case sandboxevent.FieldEntityType:
		m.ResetEntityType()
		return nil
	case sandboxevent.FieldEntityID:
		m.ResetEntityID()
		return nil
	case sandboxevent.FieldSpecID:
		m.ResetSpecID()
		return nil
	case sandboxevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SandboxEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SandboxEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SandboxEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SandboxEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SandboxEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SandboxEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SandboxEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SandboxEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SandboxEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SandboxEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SandboxEvent edge %s", name)
}

// SandboxMessageMutation represents an operation that mutates the SandboxMessage nodes in the graph.
type SandboxMessageMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	sandbox_id    *string
	message_type  *sandboxmessage.MessageType
	content       *string
	cancel        *bool
	acked         *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SandboxMessage, error)
	predicates    []predicate.SandboxMessage
}

var _ ent.Mutation = (*SandboxMessageMutation)(nil)

// sandboxmessageOption allows management of the mutation configuration using functional options.
type sandboxmessageOption func(*SandboxMessageMutation)

// newSandboxMessageMutation creates new mutation for the SandboxMessage entity.
func newSandboxMessageMutation(c config, op Op, opts ...sandboxmessageOption) *SandboxMessageMutation {
	m := &SandboxMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeSandboxMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSandboxMessageID sets the ID field of the mutation.
func withSandboxMessageID(id int64) sandboxmessageOption {
	return func(m *SandboxMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *SandboxMessage
		)
		m.oldValue = func(ctx context.Context) (*SandboxMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SandboxMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSandboxMessage sets the old SandboxMessage of the mutation.
func withSandboxMessage(node *SandboxMessage) sandboxmessageOption {
	return func(m *SandboxMessageMutation) {
		m.oldValue = func(context.Context) (*SandboxMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SandboxMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SandboxMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SandboxMessage entities.
func (m *SandboxMessageMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SandboxMessageMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SandboxMessageMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SandboxMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSandboxID sets the "sandbox_id" field.
func (m *SandboxMessageMutation) SetSandboxID(s string) {
	m.sandbox_id = &s
}

// SandboxID returns the value of the "sandbox_id" field in the mutation.
func (m *SandboxMessageMutation) SandboxID() (r string, exists bool) {
	v := m.sandbox_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxID returns the old "sandbox_id" field's value of the SandboxMessage entity.
// If the SandboxMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxMessageMutation) OldSandboxID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxID: %w", err)
	}
	return oldValue.SandboxID, nil
}

// ResetSandboxID resets all changes to the "sandbox_id" field.
func (m *SandboxMessageMutation) ResetSandboxID() {
	m.sandbox_id = nil
}

// SetMessageType sets the "message_type" field.
func (m *SandboxMessageMutation) SetMessageType(st sandboxmessage.MessageType) {
	m.message_type = &st
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *SandboxMessageMutation) MessageType() (r sandboxmessage.MessageType, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the SandboxMessage entity.
// If the SandboxMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxMessageMutation) OldMessageType(ctx context.Context) (v sandboxmessage.MessageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *SandboxMessageMutation) ResetMessageType() {
	m.message_type = nil
}

// SetContent sets the "content" field.
func (m *SandboxMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SandboxMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the SandboxMessage entity.
// If the SandboxMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *SandboxMessageMutation) ClearContent() {
	m.content = nil
	m.clearedFields[sandboxmessage.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *SandboxMessageMutation) ContentCleared() bool {
	_, ok := m.clearedFields[sandboxmessage.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *SandboxMessageMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, sandboxmessage.FieldContent)
}

// SetCancel sets the "cancel" field.
func (m *SandboxMessageMutation) SetCancel(b bool) {
	m.cancel = &b
}

// Cancel returns the value of the "cancel" field in the mutation.
func (m *SandboxMessageMutation) Cancel() (r bool, exists bool) {
	v := m.cancel
	if v == nil {
		return
	}
	return *v, true
}

// OldCancel returns the old "cancel" field's value of the SandboxMessage entity.
// If the SandboxMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxMessageMutation) OldCancel(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancel: %w", err)
	}
	return oldValue.Cancel, nil
}

// ResetCancel resets all changes to the "cancel" field.
func (m *SandboxMessageMutation) ResetCancel() {
	m.cancel = nil
}

// SetAcked sets the "acked" field.
func (m *SandboxMessageMutation) SetAcked(b bool) {
	m.acked = &b
}

// Acked returns the value of the "acked" field in the mutation.
func (m *SandboxMessageMutation) Acked() (r bool, exists bool) {
	v := m.acked
	if v == nil {
		return
	}
	return *v, true
}

// OldAcked returns the old "acked" field's value of the SandboxMessage entity.
// If the SandboxMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxMessageMutation) OldAcked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcked: %w", err)
	}
	return oldValue.Acked, nil
}

// ResetAcked resets all changes to the "acked" field.
func (m *SandboxMessageMutation) ResetAcked() {
	m.acked = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SandboxMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SandboxMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SandboxMessage entity.
// If the SandboxMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SandboxMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SandboxMessageMutation builder.
func (m *SandboxMessageMutation) Where(ps ...predicate.SandboxMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SandboxMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SandboxMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SandboxMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SandboxMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SandboxMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SandboxMessage).
func (m *SandboxMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SandboxMessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sandbox_id != nil {
		fields = append(fields, sandboxmessage.FieldSandboxID)
	}
	if m.message_type != nil {
		fields = append(fields, sandboxmessage.FieldMessageType)
	}
	if m.content != nil {
		fields = append(fields, sandboxmessage.FieldContent)
	}
	if m.cancel != nil {
		fields = append(fields, sandboxmessage.FieldCancel)
	}
	if m.acked != nil {
		fields = append(fields, sandboxmessage.FieldAcked)
	}
	if m.created_at != nil {
		fields = append(fields, sandboxmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SandboxMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sandboxmessage.FieldSandboxID:
		return m.SandboxID()
	case sandboxmessage.FieldMessageType:
		return m.MessageType()
	case sandboxmessage.FieldContent:
		return m.Content()
	case sandboxmessage.FieldCancel:
		return m.Cancel()
	case sandboxmessage.FieldAcked:
		return m.Acked()
	case sandboxmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SandboxMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sandboxmessage.FieldSandboxID:
		return m.OldSandboxID(ctx)
	case sandboxmessage.FieldMessageType:
		return m.OldMessageType(ctx)
	case sandboxmessage.FieldContent:
		return m.OldContent(ctx)
	case sandboxmessage.FieldCancel:
		return m.OldCancel(ctx)
	case sandboxmessage.FieldAcked:
		return m.OldAcked(ctx)
	case sandboxmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SandboxMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SandboxMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sandboxmessage.FieldSandboxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxID(v)
		return nil
	case sandboxmessage.FieldMessageType:
		v, ok := value.(sandboxmessage.MessageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case sandboxmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case sandboxmessage.FieldCancel:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancel(v)
		return nil
	case sandboxmessage.FieldAcked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcked(v)
		return nil
	case sandboxmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SandboxMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SandboxMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SandboxMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SandboxMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SandboxMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SandboxMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sandboxmessage.FieldContent) {
		fields = append(fields, sandboxmessage.FieldContent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SandboxMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SandboxMessageMutation) ClearField(name string) error {
	switch name {
	case sandboxmessage.FieldContent:
		m.ClearContent()
		return nil
	}
	return fmt.Errorf("unknown SandboxMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SandboxMessageMutation) ResetField(name string) error {
	switch name {
	case sandboxmessage.FieldSandboxID:
		m.ResetSandboxID()
		return nil
	case sandboxmessage.FieldMessageType:
		m.ResetMessageType()
		return nil
	case sandboxmessage.FieldContent:
		m.ResetContent()
		return nil
	case sandboxmessage.FieldCancel:
		m.ResetCancel()
		return nil
	case sandboxmessage.FieldAcked:
		m.ResetAcked()
		return nil
	case sandboxmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SandboxMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SandboxMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SandboxMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SandboxMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SandboxMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SandboxMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SandboxMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SandboxMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SandboxMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SandboxMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SandboxMessage edge %s", name)
}

// SpecDocMutation represents an operation that mutates the SpecDoc nodes in the graph.
type SpecDocMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	title               *string
	description         *string
	current_phase       *specdoc.CurrentPhase
	phase_data          *map[string]interface{}
	session_transcripts *map[string]string
	phase_attempts      *map[string]int
	last_checkpoint_at  *time.Time
	last_error          *string
	share_token         *string
	archived            *bool
	owner               *string
	version             *int
	addversion          *int
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*SpecDoc, error)
	predicates          []predicate.SpecDoc
}

var _ ent.Mutation = (*SpecDocMutation)(nil)

// specdocOption allows management of the mutation configuration using functional options.
type specdocOption func(*SpecDocMutation)

// newSpecDocMutation creates new mutation for the SpecDoc entity.
func newSpecDocMutation(c config, op Op, opts ...specdocOption) *SpecDocMutation {
	m := &SpecDocMutation{
		config:        c,
		op:            op,
		typ:           TypeSpecDoc,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpecDocID sets the ID field of the mutation.
func withSpecDocID(id string) specdocOption {
	return func(m *SpecDocMutation) {
		var (
			err   error
			once  sync.Once
			value *SpecDoc
		)
		m.oldValue = func(ctx context.Context) (*SpecDoc, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SpecDoc.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpecDoc sets the old SpecDoc of the mutation.
func withSpecDoc(node *SpecDoc) specdocOption {
	return func(m *SpecDocMutation) {
		m.oldValue = func(context.Context) (*SpecDoc, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpecDocMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpecDocMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SpecDoc entities.
func (m *SpecDocMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpecDocMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpecDocMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SpecDoc.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *SpecDocMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SpecDocMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the SpecDoc entity.
// If the SpecDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecDocMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SpecDocMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *SpecDocMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SpecDocMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SpecDoc entity.
// If the SpecDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecDocMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *SpecDocMutation) ResetDescription() {
	m.description = nil
}

// SetCurrentPhase sets the "current_phase" field.
func (m *SpecDocMutation) SetCurrentPhase(sp specdoc.CurrentPhase) {
	m.current_phase = &sp
}

// CurrentPhase returns the value of the "current_phase" field in the mutation.
func (m *SpecDocMutation) CurrentPhase() (r specdoc.CurrentPhase, exists bool) {
	v := m.current_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhase returns the old "current_phase" field's value of the SpecDoc entity.
// If the SpecDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecDocMutation) OldCurrentPhase(ctx context.Context) (v specdoc.CurrentPhase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhase: %w", err)
	}
	return oldValue.CurrentPhase, nil
}

// ResetCurrentPhase resets all changes to the "current_phase" field.
func (m *SpecDocMutation) ResetCurrentPhase() {
	m.current_phase = nil
}

// SetPhaseData sets the "phase_data" field.
func (m *SpecDocMutation) SetPhaseData(value map[string]interface{}) {
	m.phase_data = &value
}

// PhaseData returns the value of the "phase_data" field in the mutation.
func (m *SpecDocMutation) PhaseData() (r map[string]interface{}, exists bool) {
	v := m.phase_data
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseData returns the old "phase_data" field's value of the SpecDoc entity.
// If the SpecDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecDocMutation) OldPhaseData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseData: %w", err)
	}
	return oldValue.PhaseData, nil
}

// ClearPhaseData clears the value of the "phase_data" field.
func (m *SpecDocMutation) ClearPhaseData() {
	m.phase_data = nil
	m.clearedFields[specdoc.FieldPhaseData] = struct{}{}
}

// PhaseDataCleared returns if the "phase_data" field was cleared in this mutation.
func (m *SpecDocMutation) PhaseDataCleared() bool {
	_, ok := m.clearedFields[specdoc.FieldPhaseData]
	return ok
}

// ResetPhaseData resets all changes to the "phase_data" field.
func (m *SpecDocMutation) ResetPhaseData() {
	m.phase_data = nil
	delete(m.clearedFields, specdoc.FieldPhaseData)
}

// SetSessionTranscripts sets the "session_transcripts" field.
func (m *SpecDocMutation) SetSessionTranscripts(value map[string]string) {
	m.session_transcripts = &value
}

// SessionTranscripts returns the value of the "session_transcripts" field in the mutation.
func (m *SpecDocMutation) SessionTranscripts() (r map[string]string, exists bool) {
	v := m.session_transcripts
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionTranscripts returns the old "session_transcripts" field's value of the SpecDoc entity.
// If the SpecDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecDocMutation) OldSessionTranscripts(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionTranscripts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionTranscripts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionTranscripts: %w", err)
	}
	return oldValue.SessionTranscripts, nil
}

// ClearSessionTranscripts clears the value of the "session_transcripts" field.
func (m *SpecDocMutation) ClearSessionTranscripts() {
	m.session_transcripts = nil
	m.clearedFields[specdoc.FieldSessionTranscripts] = struct{}{}
}

// SessionTranscriptsCleared returns if the "session_transcripts" field was cleared in this mutation.
func (m *SpecDocMutation) SessionTranscriptsCleared() bool {
	_, ok := m.clearedFields[specdoc.FieldSessionTranscripts]
	return ok
}

// ResetSessionTranscripts resets all changes to the "session_transcripts" field.
func (m *SpecDocMutation) ResetSessionTranscripts() {
	m.session_transcripts = nil
	delete(m.clearedFields, specdoc.FieldSessionTranscripts)
}

// SetPhaseAttempts sets the "phase_attempts" field.
func (m *SpecDocMutation) SetPhaseAttempts(value map[string]int) {
	m.phase_attempts = &value
}

// PhaseAttempts returns the value of the "phase_attempts" field in the mutation.
func (m *SpecDocMutation) PhaseAttempts() (r map[string]int, exists bool) {
	v := m.phase_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseAttempts returns the old "phase_attempts" field's value of the SpecDoc entity.
// If the SpecDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecDocMutation) OldPhaseAttempts(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseAttempts: %w", err)
	}
	return oldValue.PhaseAttempts, nil
}

// ClearPhaseAttempts clears the value of the "phase_attempts" field.
func (m *SpecDocMutation) ClearPhaseAttempts() {
	m.phase_attempts = nil
	m.clearedFields[specdoc.FieldPhaseAttempts] = struct{}{}
}

// PhaseAttemptsCleared returns if the "phase_attempts" field was cleared in this mutation.
func (m *SpecDocMutation) PhaseAttemptsCleared() bool {
	_, ok := m.clearedFields[specdoc.FieldPhaseAttempts]
	return ok
}

// ResetPhaseAttempts resets all changes to the "phase_attempts" field.
func (m *SpecDocMutation) ResetPhaseAttempts() {
	m.phase_attempts = nil
	delete(m.clearedFields, specdoc.FieldPhaseAttempts)
}

// SetLastCheckpointAt sets the "last_checkpoint_at" field.
func (m *SpecDocMutation) SetLastCheckpointAt(t time.Time) {
	m.last_checkpoint_at = &t
}

// LastCheckpointAt returns the value of the "last_checkpoint_at" field in the mutation.
func (m *SpecDocMutation) LastCheckpointAt() (r time.Time, exists bool) {
	v := m.last_checkpoint_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCheckpointAt returns the old "last_checkpoint_at" field's value of the SpecDoc entity.
// If the SpecDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecDocMutation) OldLastCheckpointAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCheckpointAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCheckpointAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCheckpointAt: %w", err)
	}
	return oldValue.LastCheckpointAt, nil
}

// ClearLastCheckpointAt clears the value of the "last_checkpoint_at" field.
func (m *SpecDocMutation) ClearLastCheckpointAt() {
	m.last_checkpoint_at = nil
	m.clearedFields[specdoc.FieldLastCheckpointAt] = struct{}{}
}

// LastCheckpointAtCleared returns if the "last_checkpoint_at" field was cleared in this mutation.
func (m *SpecDocMutation) LastCheckpointAtCleared() bool {
	_, ok := m.clearedFields[specdoc.FieldLastCheckpointAt]
	return ok
}

// ResetLastCheckpointAt resets all changes to the "last_checkpoint_at" field.
func (m *SpecDocMutation) ResetLastCheckpointAt() {
	m.last_checkpoint_at = nil
	delete(m.clearedFields, specdoc.FieldLastCheckpointAt)
}

// SetLastError sets the "last_error" field.
func (m *SpecDocMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *SpecDocMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the SpecDoc entity.
// If the SpecDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecDocMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *SpecDocMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[specdoc.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *SpecDocMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[specdoc.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *SpecDocMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, specdoc.FieldLastError)
}

// SetShareToken sets the "share_token" field.
func (m *SpecDocMutation) SetShareToken(s string) {
	m.share_token = &s
}

// ShareToken returns the value of the "share_token" field in the mutation.
func (m *SpecDocMutation) ShareToken() (r string, exists bool) {
	v := m.share_token
	if v == nil {
		return
	}
	return *v, true
}

// OldShareToken returns the old "share_token" field's value of the SpecDoc entity.
// If the SpecDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecDocMutation) OldShareToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShareToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShareToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShareToken: %w", err)
	}
	return oldValue.ShareToken, nil
}

// ClearShareToken clears the value of the "share_token" field.
func (m *SpecDocMutation) ClearShareToken() {
	m.share_token = nil
	m.clearedFields[specdoc.FieldShareToken] = struct{}{}
}

// ShareTokenCleared returns if the "share_token" field was cleared in this mutation.
func (m *SpecDocMutation) ShareTokenCleared() bool {
	_, ok := m.clearedFields[specdoc.FieldShareToken]
	return ok
}

// ResetShareToken resets all changes to the "share_token" field.
func (m *SpecDocMutation) ResetShareToken() {
	m.share_token = nil
	delete(m.clearedFields, specdoc.FieldShareToken)
}

// SetArchived sets the "archived" field.
func (m *SpecDocMutation) SetArchived(b bool) {
	m.archived = &b
}

// Archived returns the value of the "archived" field in the mutation.
func (m *SpecDocMutation) Archived() (r bool, exists bool) {
	v := m.archived
	if v == nil {
		return
	}
	return *v, true
}

// OldArchived returns the old "archived" field's value of the SpecDoc entity.
// If the SpecDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecDocMutation) OldArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchived: %w", err)
	}
	return oldValue.Archived, nil
}

// ResetArchived resets all changes to the "archived" field.
func (m *SpecDocMutation) ResetArchived() {
	m.archived = nil
}

// SetOwner sets the "owner" field.
func (m *SpecDocMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *SpecDocMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the SpecDoc entity.
// If the SpecDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecDocMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ClearOwner clears the value of the "owner" field.
func (m *SpecDocMutation) ClearOwner() {
	m.owner = nil
	m.clearedFields[specdoc.FieldOwner] = struct{}{}
}

// OwnerCleared returns if the "owner" field was cleared in this mutation.
func (m *SpecDocMutation) OwnerCleared() bool {
	_, ok := m.clearedFields[specdoc.FieldOwner]
	return ok
}

// ResetOwner resets all changes to the "owner" field.
func (m *SpecDocMutation) ResetOwner() {
	m.owner = nil
	delete(m.clearedFields, specdoc.FieldOwner)
}

// SetVersion sets the "version" field.
func (m *SpecDocMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *SpecDocMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the SpecDoc entity.
// If the SpecDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecDocMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *SpecDocMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *SpecDocMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *SpecDocMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SpecDocMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpecDocMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SpecDoc entity.
// If the SpecDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecDocMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SpecDocMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SpecDocMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SpecDocMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SpecDoc entity.
// If the SpecDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecDocMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SpecDocMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SpecDocMutation builder.
func (m *SpecDocMutation) Where(ps ...predicate.SpecDoc) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpecDocMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpecDocMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SpecDoc, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpecDocMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpecDocMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SpecDoc).
func (m *SpecDocMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpecDocMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.title != nil {
		fields = append(fields, specdoc.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, specdoc.FieldDescription)
	}
	if m.current_phase != nil {
		fields = append(fields, specdoc.FieldCurrentPhase)
	}
	if m.phase_data != nil {
		fields = append(fields, specdoc.FieldPhaseData)
	}
	if m.session_transcripts != nil {
		fields = append(fields, specdoc.FieldSessionTranscripts)
	}
	if m.phase_attempts != nil {
		fields = append(fields, specdoc.FieldPhaseAttempts)
	}
	if m.last_checkpoint_at != nil {
		fields = append(fields, specdoc.FieldLastCheckpointAt)
	}
	if m.last_error != nil {
		fields = append(fields, specdoc.FieldLastError)
	}
	if m.share_token != nil {
		fields = append(fields, specdoc.FieldShareToken)
	}
	if m.archived != nil {
		fields = append(fields, specdoc.FieldArchived)
	}
	if m.owner != nil {
		fields = append(fields, specdoc.FieldOwner)
	}
	if m.version != nil {
		fields = append(fields, specdoc.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, specdoc.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, specdoc.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpecDocMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case specdoc.FieldTitle:
		return m.Title()
	case specdoc.FieldDescription:
		return m.Description()
	case specdoc.FieldCurrentPhase:
		return m.CurrentPhase()
	case specdoc.FieldPhaseData:
		return m.PhaseData()
	case specdoc.FieldSessionTranscripts:
		return m.SessionTranscripts()
	case specdoc.FieldPhaseAttempts:
		return m.PhaseAttempts()
	case specdoc.FieldLastCheckpointAt:
		return m.LastCheckpointAt()
	case specdoc.FieldLastError:
		return m.LastError()
	case specdoc.FieldShareToken:
		return m.ShareToken()
	case specdoc.FieldArchived:
		return m.Archived()
	case specdoc.FieldOwner:
		return m.Owner()
	case specdoc.FieldVersion:
		return m.Version()
	case specdoc.FieldCreatedAt:
		return m.CreatedAt()
	case specdoc.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpecDocMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case specdoc.FieldTitle:
		return m.OldTitle(ctx)
	case specdoc.FieldDescription:
		return m.OldDescription(ctx)
	case specdoc.FieldCurrentPhase:
		return m.OldCurrentPhase(ctx)
	case specdoc.FieldPhaseData:
		return m.OldPhaseData(ctx)
	case specdoc.FieldSessionTranscripts:
		return m.OldSessionTranscripts(ctx)
	case specdoc.FieldPhaseAttempts:
		return m.OldPhaseAttempts(ctx)
	case specdoc.FieldLastCheckpointAt:
		return m.OldLastCheckpointAt(ctx)
	case specdoc.FieldLastError:
		return m.OldLastError(ctx)
	case specdoc.FieldShareToken:
		return m.OldShareToken(ctx)
	case specdoc.FieldArchived:
		return m.OldArchived(ctx)
	case specdoc.FieldOwner:
		return m.OldOwner(ctx)
	case specdoc.FieldVersion:
		return m.OldVersion(ctx)
	case specdoc.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case specdoc.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SpecDoc field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecDocMutation) SetField(name string, value ent.Value) error {
	switch name {
	case specdoc.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case specdoc.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case specdoc.FieldCurrentPhase:
		v, ok := value.(specdoc.CurrentPhase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhase(v)
		return nil
	case specdoc.FieldPhaseData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseData(v)
		return nil
	case specdoc.FieldSessionTranscripts:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionTranscripts(v)
		return nil
	case specdoc.FieldPhaseAttempts:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseAttempts(v)
		return nil
	case specdoc.FieldLastCheckpointAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCheckpointAt(v)
		return nil
	case specdoc.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case specdoc.FieldShareToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShareToken(v)
		return nil
	case specdoc.FieldArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchived(v)
		return nil
	case specdoc.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case specdoc.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case specdoc.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case specdoc.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SpecDoc field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpecDocMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, specdoc.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpecDocMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case specdoc.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecDocMutation) AddField(name string, value ent.Value) error {
	switch name {
	case specdoc.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown SpecDoc numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpecDocMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(specdoc.FieldPhaseData) {
		fields = append(fields, specdoc.FieldPhaseData)
	}
	if m.FieldCleared(specdoc.FieldSessionTranscripts) {
		fields = append(fields, specdoc.FieldSessionTranscripts)
	}
	if m.FieldCleared(specdoc.FieldPhaseAttempts) {
		fields = append(fields, specdoc.FieldPhaseAttempts)
	}
	if m.FieldCleared(specdoc.FieldLastCheckpointAt) {
		fields = append(fields, specdoc.FieldLastCheckpointAt)
	}
	if m.FieldCleared(specdoc.FieldLastError) {
		fields = append(fields, specdoc.FieldLastError)
	}
	if m.FieldCleared(specdoc.FieldShareToken) {
		fields = append(fields, specdoc.FieldShareToken)
	}
	if m.FieldCleared(specdoc.FieldOwner) {
		fields = append(fields, specdoc.FieldOwner)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpecDocMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpecDocMutation) ClearField(name string) error {
	switch name {
	case specdoc.FieldPhaseData:
		m.ClearPhaseData()
		return nil
	case specdoc.FieldSessionTranscripts:
		m.ClearSessionTranscripts()
		return nil
	case specdoc.FieldPhaseAttempts:
		m.ClearPhaseAttempts()
		return nil
	case specdoc.FieldLastCheckpointAt:
		m.ClearLastCheckpointAt()
		return nil
	case specdoc.FieldLastError:
		m.ClearLastError()
		return nil
	case specdoc.FieldShareToken:
		m.ClearShareToken()
		return nil
	case specdoc.FieldOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown SpecDoc nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpecDocMutation) ResetField(name string) error {
	switch name {
	case specdoc.FieldTitle:
		m.ResetTitle()
		return nil
	case specdoc.FieldDescription:
		m.ResetDescription()
		return nil
	case specdoc.FieldCurrentPhase:
		m.ResetCurrentPhase()
		return nil
	case specdoc.FieldPhaseData:
		m.ResetPhaseData()
		return nil
	case specdoc.FieldSessionTranscripts:
		m.ResetSessionTranscripts()
		return nil
	case specdoc.FieldPhaseAttempts:
		m.ResetPhaseAttempts()
		return nil
	case specdoc.FieldLastCheckpointAt:
		m.ResetLastCheckpointAt()
		return nil
	case specdoc.FieldLastError:
		m.ResetLastError()
		return nil
	case specdoc.FieldShareToken:
		m.ResetShareToken()
		return nil
	case specdoc.FieldArchived:
		m.ResetArchived()
		return nil
	case specdoc.FieldOwner:
		m.ResetOwner()
		return nil
	case specdoc.FieldVersion:
		m.ResetVersion()
		return nil
	case specdoc.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case specdoc.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SpecDoc field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpecDocMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpecDocMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpecDocMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpecDocMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpecDocMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpecDocMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpecDocMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SpecDoc unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpecDocMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SpecDoc edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	title                       *string
	description                 *string
	status                      *task.Status
	priority_base               *int
	addpriority_base            *int
	score                       *float64
	addscore                    *float64
	deadline                    *time.Time
	retry_count                 *int
	addretry_count              *int
	max_retries                 *int
	addmax_retries              *int
	timeout_seconds             *int
	addtimeout_seconds          *int
	required_capabilities       *[]string
	appendrequired_capabilities []string
	depends_on                  *[]string
	appenddepends_on            []string
	parent_task_id              *string
	owned_files                 *[]string
	appendowned_files           []string
	synthesis_context           *map[string]interface{}
	sandbox_id                  *string
	assigned_agent_id           *string
	claimed_by_pod              *string
	execution_config            *map[string]interface{}
	persistence_dir             *string
	failure_reason              *string
	embedding                   *[]float64
	appendembedding             []float64
	version                     *int
	addversion                  *int
	assigned_at                 *time.Time
	last_heartbeat_at           *time.Time
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	ticket                      *string
	clearedticket               bool
	cost_records                map[string]struct{}
	removedcost_records         map[string]struct{}
	clearedcost_records         bool
	done                        bool
	oldValue                    func(context.Context) (*Task, error)
	predicates                  []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *TaskMutation) SetTicketID(s string) {
	m.ticket = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *TaskMutation) TicketID() (r string, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTicketID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ClearTicketID clears the value of the "ticket_id" field.
func (m *TaskMutation) ClearTicketID() {
	m.ticket = nil
	m.clearedFields[task.FieldTicketID] = struct{}{}
}

// TicketIDCleared returns if the "ticket_id" field was cleared in this mutation.
func (m *TaskMutation) TicketIDCleared() bool {
	_, ok := m.clearedFields[task.FieldTicketID]
	return ok
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *TaskMutation) ResetTicketID() {
	m.ticket = nil
	delete(m.clearedFields, task.FieldTicketID)
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetPriorityBase sets the "priority_base" field.
func (m *TaskMutation) SetPriorityBase(i int) {
	m.priority_base = &i
	m.addpriority_base = nil
}

// PriorityBase returns the value of the "priority_base" field in the mutation.
func (m *TaskMutation) PriorityBase() (r int, exists bool) {
	v := m.priority_base
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityBase returns the old "priority_base" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriorityBase(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityBase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityBase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityBase: %w", err)
	}
	return oldValue.PriorityBase, nil
}

// AddPriorityBase adds i to the "priority_base" field.
func (m *TaskMutation) AddPriorityBase(i int) {
	if m.addpriority_base != nil {
		*m.addpriority_base += i
	} else {
		m.addpriority_base = &i
	}
}

// AddedPriorityBase returns the value that was added to the "priority_base" field in this mutation.
func (m *TaskMutation) AddedPriorityBase() (r int, exists bool) {
	v := m.addpriority_base
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriorityBase resets all changes to the "priority_base" field.
func (m *TaskMutation) ResetPriorityBase() {
	m.priority_base = nil
	m.addpriority_base = nil
}

// SetScore sets the "score" field.
func (m *TaskMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *TaskMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *TaskMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *TaskMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *TaskMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetDeadline sets the "deadline" field.
func (m *TaskMutation) SetDeadline(t time.Time) {
	m.deadline = &t
}

// Deadline returns the value of the "deadline" field in the mutation.
func (m *TaskMutation) Deadline() (r time.Time, exists bool) {
	v := m.deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadline returns the old "deadline" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadline: %w", err)
	}
	return oldValue.Deadline, nil
}

// ClearDeadline clears the value of the "deadline" field.
func (m *TaskMutation) ClearDeadline() {
	m.deadline = nil
	m.clearedFields[task.FieldDeadline] = struct{}{}
}

// DeadlineCleared returns if the "deadline" field was cleared in this mutation.
func (m *TaskMutation) DeadlineCleared() bool {
	_, ok := m.clearedFields[task.FieldDeadline]
	return ok
}

// ResetDeadline resets all changes to the "deadline" field.
func (m *TaskMutation) ResetDeadline() {
	m.deadline = nil
	delete(m.clearedFields, task.FieldDeadline)
}

// SetRetryCount sets the "retry_count" field.
func (m *TaskMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *TaskMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *TaskMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *TaskMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *TaskMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *TaskMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *TaskMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *TaskMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *TaskMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *TaskMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *TaskMutation) SetTimeoutSeconds(i int) {
	m.timeout_seconds = &i
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *TaskMutation) TimeoutSeconds() (r int, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTimeoutSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds i to the "timeout_seconds" field.
func (m *TaskMutation) AddTimeoutSeconds(i int) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += i
	} else {
		m.addtimeout_seconds = &i
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *TaskMutation) AddedTimeoutSeconds() (r int, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *TaskMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (m *TaskMutation) SetRequiredCapabilities(s []string) {
	m.required_capabilities = &s
	m.appendrequired_capabilities = nil
}

// RequiredCapabilities returns the value of the "required_capabilities" field in the mutation.
func (m *TaskMutation) RequiredCapabilities() (r []string, exists bool) {
	v := m.required_capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredCapabilities returns the old "required_capabilities" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRequiredCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredCapabilities: %w", err)
	}
	return oldValue.RequiredCapabilities, nil
}

// AppendRequiredCapabilities adds s to the "required_capabilities" field.
func (m *TaskMutation) AppendRequiredCapabilities(s []string) {
	m.appendrequired_capabilities = append(m.appendrequired_capabilities, s...)
}

// AppendedRequiredCapabilities returns the list of values that were appended to the "required_capabilities" field in this mutation.
func (m *TaskMutation) AppendedRequiredCapabilities() ([]string, bool) {
	if len(m.appendrequired_capabilities) == 0 {
		return nil, false
	}
	return m.appendrequired_capabilities, true
}

// ClearRequiredCapabilities clears the value of the "required_capabilities" field.
func (m *TaskMutation) ClearRequiredCapabilities() {
	m.required_capabilities = nil
	m.appendrequired_capabilities = nil
	m.clearedFields[task.FieldRequiredCapabilities] = struct{}{}
}

// RequiredCapabilitiesCleared returns if the "required_capabilities" field was cleared in this mutation.
func (m *TaskMutation) RequiredCapabilitiesCleared() bool {
	_, ok := m.clearedFields[task.FieldRequiredCapabilities]
	return ok
}

// ResetRequiredCapabilities resets all changes to the "required_capabilities" field.
func (m *TaskMutation) ResetRequiredCapabilities() {
	m.required_capabilities = nil
	m.appendrequired_capabilities = nil
	delete(m.clearedFields, task.FieldRequiredCapabilities)
}

// SetDependsOn sets the "depends_on" field.
func (m *TaskMutation) SetDependsOn(s []string) {
	m.depends_on = &s
	m.appenddepends_on = nil
}

// DependsOn returns the value of the "depends_on" field in the mutation.
func (m *TaskMutation) DependsOn() (r []string, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOn returns the old "depends_on" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDependsOn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOn: %w", err)
	}
	return oldValue.DependsOn, nil
}

// AppendDependsOn adds s to the "depends_on" field.
func (m *TaskMutation) AppendDependsOn(s []string) {
	m.appenddepends_on = append(m.appenddepends_on, s...)
}

// AppendedDependsOn returns the list of values that were appended to the "depends_on" field in this mutation.
func (m *TaskMutation) AppendedDependsOn() ([]string, bool) {
	if len(m.appenddepends_on) == 0 {
		return nil, false
	}
	return m.appenddepends_on, true
}

// ClearDependsOn clears the value of the "depends_on" field.
func (m *TaskMutation) ClearDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	m.clearedFields[task.FieldDependsOn] = struct{}{}
}

// DependsOnCleared returns if the "depends_on" field was cleared in this mutation.
func (m *TaskMutation) DependsOnCleared() bool {
	_, ok := m.clearedFields[task.FieldDependsOn]
	return ok
}

// ResetDependsOn resets all changes to the "depends_on" field.
func (m *TaskMutation) ResetDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	delete(m.clearedFields, task.FieldDependsOn)
}

// SetParentTaskID sets the "parent_task_id" field.
func (m *TaskMutation) SetParentTaskID(s string) {
	m.parent_task_id = &s
}

// ParentTaskID returns the value of the "parent_task_id" field in the mutation.
func (m *TaskMutation) ParentTaskID() (r string, exists bool) {
	v := m.parent_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTaskID returns the old "parent_task_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParentTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTaskID: %w", err)
	}
	return oldValue.ParentTaskID, nil
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (m *TaskMutation) ClearParentTaskID() {
	m.parent_task_id = nil
	m.clearedFields[task.FieldParentTaskID] = struct{}{}
}

// ParentTaskIDCleared returns if the "parent_task_id" field was cleared in this mutation.
func (m *TaskMutation) ParentTaskIDCleared() bool {
	_, ok := m.clearedFields[task.FieldParentTaskID]
	return ok
}

// ResetParentTaskID resets all changes to the "parent_task_id" field.
func (m *TaskMutation) ResetParentTaskID() {
	m.parent_task_id = nil
	delete(m.clearedFields, task.FieldParentTaskID)
}

// SetOwnedFiles sets the "owned_files" field.
func (m *TaskMutation) SetOwnedFiles(s []string) {
	m.owned_files = &s
	m.appendowned_files = nil
}

// OwnedFiles returns the value of the "owned_files" field in the mutation.
func (m *TaskMutation) OwnedFiles() (r []string, exists bool) {
	v := m.owned_files
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnedFiles returns the old "owned_files" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOwnedFiles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnedFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnedFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnedFiles: %w", err)
	}
	return oldValue.OwnedFiles, nil
}

// AppendOwnedFiles adds s to the "owned_files" field.
func (m *TaskMutation) AppendOwnedFiles(s []string) {
	m.appendowned_files = append(m.appendowned_files, s...)
}

// AppendedOwnedFiles returns the list of values that were appended to the "owned_files" field in this mutation.
func (m *TaskMutation) AppendedOwnedFiles() ([]string, bool) {
	if len(m.appendowned_files) == 0 {
		return nil, false
	}
	return m.appendowned_files, true
}

// ClearOwnedFiles clears the value of the "owned_files" field.
func (m *TaskMutation) ClearOwnedFiles() {
	m.owned_files = nil
	m.appendowned_files = nil
	m.clearedFields[task.FieldOwnedFiles] = struct{}{}
}

// OwnedFilesCleared returns if the "owned_files" field was cleared in this mutation.
func (m *TaskMutation) OwnedFilesCleared() bool {
	_, ok := m.clearedFields[task.FieldOwnedFiles]
	return ok
}

// ResetOwnedFiles resets all changes to the "owned_files" field.
func (m *TaskMutation) ResetOwnedFiles() {
	m.owned_files = nil
	m.appendowned_files = nil
	delete(m.clearedFields, task.FieldOwnedFiles)
}

// SetSynthesisContext sets the "synthesis_context" field.
func (m *TaskMutation) SetSynthesisContext(value map[string]interface{}) {
	m.synthesis_context = &value
}

// SynthesisContext returns the value of the "synthesis_context" field in the mutation.
func (m *TaskMutation) SynthesisContext() (r map[string]interface{}, exists bool) {
	v := m.synthesis_context
	if v == nil {
		return
	}
	return *v, true
}

// OldSynthesisContext returns the old "synthesis_context" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSynthesisContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSynthesisContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSynthesisContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSynthesisContext: %w", err)
	}
	return oldValue.SynthesisContext, nil
}

// ClearSynthesisContext clears the value of the "synthesis_context" field.
func (m *TaskMutation) ClearSynthesisContext() {
	m.synthesis_context = nil
	m.clearedFields[task.FieldSynthesisContext] = struct{}{}
}

// SynthesisContextCleared returns if the "synthesis_context" field was cleared in this mutation.
func (m *TaskMutation) SynthesisContextCleared() bool {
	_, ok := m.clearedFields[task.FieldSynthesisContext]
	return ok
}

// ResetSynthesisContext resets all changes to the "synthesis_context" field.
func (m *TaskMutation) ResetSynthesisContext() {
	m.synthesis_context = nil
	delete(m.clearedFields, task.FieldSynthesisContext)
}

// SetSandboxID sets the "sandbox_id" field.
func (m *TaskMutation) SetSandboxID(s string) {
	m.sandbox_id = &s
}

// SandboxID returns the value of the "sandbox_id" field in the mutation.
func (m *TaskMutation) SandboxID() (r string, exists bool) {
	v := m.sandbox_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxID returns the old "sandbox_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSandboxID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxID: %w", err)
	}
	return oldValue.SandboxID, nil
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (m *TaskMutation) ClearSandboxID() {
	m.sandbox_id = nil
	m.clearedFields[task.FieldSandboxID] = struct{}{}
}

// SandboxIDCleared returns if the "sandbox_id" field was cleared in this mutation.
func (m *TaskMutation) SandboxIDCleared() bool {
	_, ok := m.clearedFields[task.FieldSandboxID]
	return ok
}

// ResetSandboxID resets all changes to the "sandbox_id" field.
func (m *TaskMutation) ResetSandboxID() {
	m.sandbox_id = nil
	delete(m.clearedFields, task.FieldSandboxID)
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (m *TaskMutation) SetAssignedAgentID(s string) {
	m.assigned_agent_id = &s
}

// AssignedAgentID returns the value of the "assigned_agent_id" field in the mutation.
func (m *TaskMutation) AssignedAgentID() (r string, exists bool) {
	v := m.assigned_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAgentID returns the old "assigned_agent_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssignedAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAgentID: %w", err)
	}
	return oldValue.AssignedAgentID, nil
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (m *TaskMutation) ClearAssignedAgentID() {
	m.assigned_agent_id = nil
	m.clearedFields[task.FieldAssignedAgentID] = struct{}{}
}

// AssignedAgentIDCleared returns if the "assigned_agent_id" field was cleared in this mutation.
func (m *TaskMutation) AssignedAgentIDCleared() bool {
	_, ok := m.clearedFields[task.FieldAssignedAgentID]
	return ok
}

// ResetAssignedAgentID resets all changes to the "assigned_agent_id" field.
func (m *TaskMutation) ResetAssignedAgentID() {
	m.assigned_agent_id = nil
	delete(m.clearedFields, task.FieldAssignedAgentID)
}

// SetClaimedByPod sets the "claimed_by_pod" field.
func (m *TaskMutation) SetClaimedByPod(s string) {
	m.claimed_by_pod = &s
}

// ClaimedByPod returns the value of the "claimed_by_pod" field in the mutation.
func (m *TaskMutation) ClaimedByPod() (r string, exists bool) {
	v := m.claimed_by_pod
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedByPod returns the old "claimed_by_pod" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClaimedByPod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedByPod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedByPod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedByPod: %w", err)
	}
	return oldValue.ClaimedByPod, nil
}

// ClearClaimedByPod clears the value of the "claimed_by_pod" field.
func (m *TaskMutation) ClearClaimedByPod() {
	m.claimed_by_pod = nil
	m.clearedFields[task.FieldClaimedByPod] = struct{}{}
}

// ClaimedByPodCleared returns if the "claimed_by_pod" field was cleared in this mutation.
func (m *TaskMutation) ClaimedByPodCleared() bool {
	_, ok := m.clearedFields[task.FieldClaimedByPod]
	return ok
}

// ResetClaimedByPod resets all changes to the "claimed_by_pod" field.
func (m *TaskMutation) ResetClaimedByPod() {
	m.claimed_by_pod = nil
	delete(m.clearedFields, task.FieldClaimedByPod)
}

// SetExecutionConfig sets the "execution_config" field.
func (m *TaskMutation) SetExecutionConfig(value map[string]interface{}) {
	m.execution_config = &value
}

// ExecutionConfig returns the value of the "execution_config" field in the mutation.
func (m *TaskMutation) ExecutionConfig() (r map[string]interface{}, exists bool) {
	v := m.execution_config
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionConfig returns the old "execution_config" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldExecutionConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionConfig: %w", err)
	}
	return oldValue.ExecutionConfig, nil
}

// ClearExecutionConfig clears the value of the "execution_config" field.
func (m *TaskMutation) ClearExecutionConfig() {
	m.execution_config = nil
	m.clearedFields[task.FieldExecutionConfig] = struct{}{}
}

// ExecutionConfigCleared returns if the "execution_config" field was cleared in this mutation.
func (m *TaskMutation) ExecutionConfigCleared() bool {
	_, ok := m.clearedFields[task.FieldExecutionConfig]
	return ok
}

// ResetExecutionConfig resets all changes to the "execution_config" field.
func (m *TaskMutation) ResetExecutionConfig() {
	m.execution_config = nil
	delete(m.clearedFields, task.FieldExecutionConfig)
}

// SetPersistenceDir sets the "persistence_dir" field.
func (m *TaskMutation) SetPersistenceDir(s string) {
	m.persistence_dir = &s
}

// PersistenceDir returns the value of the "persistence_dir" field in the mutation.
func (m *TaskMutation) PersistenceDir() (r string, exists bool) {
	v := m.persistence_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldPersistenceDir returns the old "persistence_dir" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPersistenceDir(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersistenceDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersistenceDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersistenceDir: %w", err)
	}
	return oldValue.PersistenceDir, nil
}

// ClearPersistenceDir clears the value of the "persistence_dir" field.
func (m *TaskMutation) ClearPersistenceDir() {
	m.persistence_dir = nil
	m.clearedFields[task.FieldPersistenceDir] = struct{}{}
}

// PersistenceDirCleared returns if the "persistence_dir" field was cleared in this mutation.
func (m *TaskMutation) PersistenceDirCleared() bool {
	_, ok := m.clearedFields[task.FieldPersistenceDir]
	return ok
}

// ResetPersistenceDir resets all changes to the "persistence_dir" field.
func (m *TaskMutation) ResetPersistenceDir() {
	m.persistence_dir = nil
	delete(m.clearedFields, task.FieldPersistenceDir)
}

// SetFailureReason sets the "failure_reason" field.
func (m *TaskMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *TaskMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *TaskMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[task.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *TaskMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[task.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *TaskMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, task.FieldFailureReason)
}

// SetEmbedding sets the "embedding" field.
func (m *TaskMutation) SetEmbedding(f []float64) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *TaskMutation) Embedding() (r []float64, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEmbedding(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *TaskMutation) AppendEmbedding(f []float64) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *TaskMutation) AppendedEmbedding() ([]float64, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *TaskMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[task.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *TaskMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[task.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *TaskMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, task.FieldEmbedding)
}

// SetVersion sets the "version" field.
func (m *TaskMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *TaskMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *TaskMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *TaskMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *TaskMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetAssignedAt sets the "assigned_at" field.
func (m *TaskMutation) SetAssignedAt(t time.Time) {
	m.assigned_at = &t
}

// AssignedAt returns the value of the "assigned_at" field in the mutation.
func (m *TaskMutation) AssignedAt() (r time.Time, exists bool) {
	v := m.assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAt returns the old "assigned_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAt: %w", err)
	}
	return oldValue.AssignedAt, nil
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (m *TaskMutation) ClearAssignedAt() {
	m.assigned_at = nil
	m.clearedFields[task.FieldAssignedAt] = struct{}{}
}

// AssignedAtCleared returns if the "assigned_at" field was cleared in this mutation.
func (m *TaskMutation) AssignedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldAssignedAt]
	return ok
}

// ResetAssignedAt resets all changes to the "assigned_at" field.
func (m *TaskMutation) ResetAssignedAt() {
	m.assigned_at = nil
	delete(m.clearedFields, task.FieldAssignedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *TaskMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *TaskMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *TaskMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[task.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *TaskMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *TaskMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, task.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *TaskMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[task.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *TaskMutation) TicketCleared() bool {
	return m.TicketIDCleared() || m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *TaskMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// AddCostRecordIDs adds the "cost_records" edge to the CostRecord entity by ids.
func (m *TaskMutation) AddCostRecordIDs(ids ...string) {
	if m.cost_records == nil {
		m.cost_records = make(map[string]struct{})
	}
	for i := range ids {
		m.cost_records[ids[i]] = struct{}{}
	}
}

// ClearCostRecords clears the "cost_records" edge to the CostRecord entity.
func (m *TaskMutation) ClearCostRecords() {
	m.clearedcost_records = true
}

// CostRecordsCleared reports if the "cost_records" edge to the CostRecord entity was cleared.
func (m *TaskMutation) CostRecordsCleared() bool {
	return m.clearedcost_records
}

// RemoveCostRecordIDs removes the "cost_records" edge to the CostRecord entity by IDs.
func (m *TaskMutation) RemoveCostRecordIDs(ids ...string) {
	if m.removedcost_records == nil {
		m.removedcost_records = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.cost_records, ids[i])
		m.removedcost_records[ids[i]] = struct{}{}
	}
}

// RemovedCostRecords returns the removed IDs of the "cost_records" edge to the CostRecord entity.
func (m *TaskMutation) RemovedCostRecordsIDs() (ids []string) {
	for id := range m.removedcost_records {
		ids = append(ids, id)
	}
	return
}

// CostRecordsIDs returns the "cost_records" edge IDs in the mutation.
func (m *TaskMutation) CostRecordsIDs() (ids []string) {
	for id := range m.cost_records {
		ids = append(ids, id)
	}
	return
}

// ResetCostRecords resets all changes to the "cost_records" edge.
func (m *TaskMutation) ResetCostRecords() {
	m.cost_records = nil
	m.clearedcost_records = false
	m.removedcost_records = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 27)
	if m.ticket != nil {
		fields = append(fields, task.FieldTicketID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.priority_base != nil {
		fields = append(fields, task.FieldPriorityBase)
	}
	if m.score != nil {
		fields = append(fields, task.FieldScore)
	}
	if m.deadline != nil {
		fields = append(fields, task.FieldDeadline)
	}
	if m.retry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, task.FieldMaxRetries)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, task.FieldTimeoutSeconds)
	}
	if m.required_capabilities != nil {
		fields = append(fields, task.FieldRequiredCapabilities)
	}
	if m.depends_on != nil {
		fields = append(fields, task.FieldDependsOn)
	}
	if m.parent_task_id != nil {
		fields = append(fields, task.FieldParentTaskID)
	}
	if m.owned_files != nil {
		fields = append(fields, task.FieldOwnedFiles)
	}
	if m.synthesis_context != nil {
		fields = append(fields, task.FieldSynthesisContext)
	}
	if m.sandbox_id != nil {
		fields = append(fields, task.FieldSandboxID)
	}
	if m.assigned_agent_id != nil {
		fields = append(fields, task.FieldAssignedAgentID)
	}
	if m.claimed_by_pod != nil {
		fields = append(fields, task.FieldClaimedByPod)
	}
	if m.execution_config != nil {
		fields = append(fields, task.FieldExecutionConfig)
	}
	if m.persistence_dir != nil {
		fields = append(fields, task.FieldPersistenceDir)
	}
	if m.failure_reason != nil {
		fields = append(fields, task.FieldFailureReason)
	}
	if m.embedding != nil {
		fields = append(fields, task.FieldEmbedding)
	}
	if m.version != nil {
		fields = append(fields, task.FieldVersion)
	}
	if m.assigned_at != nil {
		fields = append(fields, task.FieldAssignedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTicketID:
		return m.TicketID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldStatus:
		return m.Status()
	case task.FieldPriorityBase:
		return m.PriorityBase()
	case task.FieldScore:
		return m.Score()
	case task.FieldDeadline:
		return m.Deadline()
	case task.FieldRetryCount:
		return m.RetryCount()
	case task.FieldMaxRetries:
		return m.MaxRetries()
	case task.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	case task.FieldRequiredCapabilities:
		return m.RequiredCapabilities()
	case task.FieldDependsOn:
		return m.DependsOn()
	case task.FieldParentTaskID:
		return m.ParentTaskID()
	case task.FieldOwnedFiles:
		return m.OwnedFiles()
	case task.FieldSynthesisContext:
		return m.SynthesisContext()
	case task.FieldSandboxID:
		return m.SandboxID()
	case task.FieldAssignedAgentID:
		return m.AssignedAgentID()
	case task.FieldClaimedByPod:
		return m.ClaimedByPod()
	case task.FieldExecutionConfig:
		return m.ExecutionConfig()
	case task.FieldPersistenceDir:
		return m.PersistenceDir()
	case task.FieldFailureReason:
		return m.FailureReason()
	case task.FieldEmbedding:
		return m.Embedding()
	case task.FieldVersion:
		return m.Version()
	case task.FieldAssignedAt:
		return m.AssignedAt()
	case task.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTicketID:
		return m.OldTicketID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldPriorityBase:
		return m.OldPriorityBase(ctx)
	case task.FieldScore:
		return m.OldScore(ctx)
	case task.FieldDeadline:
		return m.OldDeadline(ctx)
	case task.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case task.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case task.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	case task.FieldRequiredCapabilities:
		return m.OldRequiredCapabilities(ctx)
	case task.FieldDependsOn:
		return m.OldDependsOn(ctx)
	case task.FieldParentTaskID:
		return m.OldParentTaskID(ctx)
	case task.FieldOwnedFiles:
		return m.OldOwnedFiles(ctx)
	case task.FieldSynthesisContext:
		return m.OldSynthesisContext(ctx)
	case task.FieldSandboxID:
		return m.OldSandboxID(ctx)
	case task.FieldAssignedAgentID:
		return m.OldAssignedAgentID(ctx)
	case task.FieldClaimedByPod:
		return m.OldClaimedByPod(ctx)
	case task.FieldExecutionConfig:
		return m.OldExecutionConfig(ctx)
	case task.FieldPersistenceDir:
		return m.OldPersistenceDir(ctx)
	case task.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case task.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case task.FieldVersion:
		return m.OldVersion(ctx)
	case task.FieldAssignedAt:
		return m.OldAssignedAt(ctx)
	case task.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldPriorityBase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityBase(v)
		return nil
	case task.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case task.FieldDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadline(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case task.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case task.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	case task.FieldRequiredCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredCapabilities(v)
		return nil
	case task.FieldDependsOn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOn(v)
		return nil
	case task.FieldParentTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTaskID(v)
		return nil
	case task.FieldOwnedFiles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnedFiles(v)
		return nil
	case task.FieldSynthesisContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSynthesisContext(v)
		return nil
	case task.FieldSandboxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxID(v)
		return nil
	case task.FieldAssignedAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAgentID(v)
		return nil
	case task.FieldClaimedByPod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedByPod(v)
		return nil
	case task.FieldExecutionConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionConfig(v)
		return nil
	case task.FieldPersistenceDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersistenceDir(v)
		return nil
	case task.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case task.FieldEmbedding:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case task.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case task.FieldAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAt(v)
		return nil
	case task.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority_base != nil {
		fields = append(fields, task.FieldPriorityBase)
	}
	if m.addscore != nil {
		fields = append(fields, task.FieldScore)
	}
	if m.addretry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, task.FieldMaxRetries)
	}
	if m.addtimeout_seconds != nil {
		fields = append(fields, task.FieldTimeoutSeconds)
	}
	if m.addversion != nil {
		fields = append(fields, task.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPriorityBase:
		return m.AddedPriorityBase()
	case task.FieldScore:
		return m.AddedScore()
	case task.FieldRetryCount:
		return m.AddedRetryCount()
	case task.FieldMaxRetries:
		return m.AddedMaxRetries()
	case task.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	case task.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldPriorityBase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityBase(v)
		return nil
	case task.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case task.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case task.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	case task.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldTicketID) {
		fields = append(fields, task.FieldTicketID)
	}
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldDeadline) {
		fields = append(fields, task.FieldDeadline)
	}
	if m.FieldCleared(task.FieldRequiredCapabilities) {
		fields = append(fields, task.FieldRequiredCapabilities)
	}
	if m.FieldCleared(task.FieldDependsOn) {
		fields = append(fields, task.FieldDependsOn)
	}
	if m.FieldCleared(task.FieldParentTaskID) {
		fields = append(fields, task.FieldParentTaskID)
	}
	if m.FieldCleared(task.FieldOwnedFiles) {
		fields = append(fields, task.FieldOwnedFiles)
	}
	if m.FieldCleared(task.FieldSynthesisContext) {
		fields = append(fields, task.FieldSynthesisContext)
	}
	if m.FieldCleared(task.FieldSandboxID) {
		fields = append(fields, task.FieldSandboxID)
	}
	if m.FieldCleared(task.FieldAssignedAgentID) {
		fields = append(fields, task.FieldAssignedAgentID)
	}
	if m.FieldCleared(task.FieldClaimedByPod) {
		fields = append(fields, task.FieldClaimedByPod)
	}
	if m.FieldCleared(task.FieldExecutionConfig) {
		fields = append(fields, task.FieldExecutionConfig)
	}
	if m.FieldCleared(task.FieldPersistenceDir) {
		fields = append(fields, task.FieldPersistenceDir)
	}
	if m.FieldCleared(task.FieldFailureReason) {
		fields = append(fields, task.FieldFailureReason)
	}
	if m.FieldCleared(task.FieldEmbedding) {
		fields = append(fields, task.FieldEmbedding)
	}
	if m.FieldCleared(task.FieldAssignedAt) {
		fields = append(fields, task.FieldAssignedAt)
	}
	if m.FieldCleared(task.FieldLastHeartbeatAt) {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldTicketID:
		m.ClearTicketID()
		return nil
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldDeadline:
		m.ClearDeadline()
		return nil
	case task.FieldRequiredCapabilities:
		m.ClearRequiredCapabilities()
		return nil
	case task.FieldDependsOn:
		m.ClearDependsOn()
		return nil
	case task.FieldParentTaskID:
		m.ClearParentTaskID()
		return nil
	case task.FieldOwnedFiles:
		m.ClearOwnedFiles()
		return nil
	case task.FieldSynthesisContext:
		m.ClearSynthesisContext()
		return nil
	case task.FieldSandboxID:
		m.ClearSandboxID()
		return nil
	case task.FieldAssignedAgentID:
		m.ClearAssignedAgentID()
		return nil
	case task.FieldClaimedByPod:
		m.ClearClaimedByPod()
		return nil
	case task.FieldExecutionConfig:
		m.ClearExecutionConfig()
		return nil
	case task.FieldPersistenceDir:
		m.ClearPersistenceDir()
		return nil
	case task.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case task.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case task.FieldAssignedAt:
		m.ClearAssignedAt()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTicketID:
		m.ResetTicketID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldPriorityBase:
		m.ResetPriorityBase()
		return nil
	case task.FieldScore:
		m.ResetScore()
		return nil
	case task.FieldDeadline:
		m.ResetDeadline()
		return nil
	case task.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case task.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case task.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	case task.FieldRequiredCapabilities:
		m.ResetRequiredCapabilities()
		return nil
	case task.FieldDependsOn:
		m.ResetDependsOn()
		return nil
	case task.FieldParentTaskID:
		m.ResetParentTaskID()
		return nil
	case task.FieldOwnedFiles:
		m.ResetOwnedFiles()
		return nil
	case task.FieldSynthesisContext:
		m.ResetSynthesisContext()
		return nil
	case task.FieldSandboxID:
		m.ResetSandboxID()
		return nil
	case task.FieldAssignedAgentID:
		m.ResetAssignedAgentID()
		return nil
	case task.FieldClaimedByPod:
		m.ResetClaimedByPod()
		return nil
	case task.FieldExecutionConfig:
		m.ResetExecutionConfig()
		return nil
	case task.FieldPersistenceDir:
		m.ResetPersistenceDir()
		return nil
	case task.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case task.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case task.FieldVersion:
		m.ResetVersion()
		return nil
	case task.FieldAssignedAt:
		m.ResetAssignedAt()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.ticket != nil {
		edges = append(edges, task.EdgeTicket)
	}
	if m.cost_records != nil {
		edges = append(edges, task.EdgeCostRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeCostRecords:
		ids := make([]ent.Value, 0, len(m.cost_records))
		for id := range m.cost_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcost_records != nil {
		edges = append(edges, task.EdgeCostRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeCostRecords:
		ids := make([]ent.Value, 0, len(m.removedcost_records))
		for id := range m.removedcost_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedticket {
		edges = append(edges, task.EdgeTicket)
	}
	if m.clearedcost_records {
		edges = append(edges, task.EdgeCostRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeTicket:
		return m.clearedticket
	case task.EdgeCostRecords:
		return m.clearedcost_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeTicket:
		m.ResetTicket()
		return nil
	case task.EdgeCostRecords:
		m.ResetCostRecords()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TicketMutation represents an operation that mutates the Ticket nodes in the graph.
type TicketMutation struct {
	config
	op               Op
	typ              string
	id               *string
	title            *string
	description      *string
	phase            *string
	status           *ticket.Status
	approval_status  *ticket.ApprovalStatus
	priority         *int
	addpriority      *int
	deadline         *time.Time
	is_blocked       *bool
	blocked_reason   *string
	owner            *string
	project_id       *string
	blocked_by       *[]string
	appendblocked_by []string
	blocks           *[]string
	appendblocks     []string
	spec_id          *string
	version          *int
	addversion       *int
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	tasks            map[string]struct{}
	removedtasks     map[string]struct{}
	clearedtasks     bool
	done             bool
	oldValue         func(context.Context) (*Ticket, error)
	predicates       []predicate.Ticket
}

var _ ent.Mutation = (*TicketMutation)(nil)

// ticketOption allows management of the mutation configuration using functional options.
type ticketOption func(*TicketMutation)

// newTicketMutation creates new mutation for the Ticket entity.
func newTicketMutation(c config, op Op, opts ...ticketOption) *TicketMutation {
	m := &TicketMutation{
		config:        c,
		op:            op,
		typ:           TypeTicket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketID sets the ID field of the mutation.
func withTicketID(id string) ticketOption {
	return func(m *TicketMutation) {
		var (
			err   error
			once  sync.Once
			value *Ticket
		)
		m.oldValue = func(ctx context.Context) (*Ticket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Ticket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicket sets the old Ticket of the mutation.
func withTicket(node *Ticket) ticketOption {
	return func(m *TicketMutation) {
		m.oldValue = func(context.Context) (*Ticket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Ticket entities.
func (m *TicketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Ticket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *TicketMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TicketMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TicketMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TicketMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TicketMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TicketMutation) ResetDescription() {
	m.description = nil
}

// SetPhase sets the "phase" field.
func (m *TicketMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *TicketMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ClearPhase clears the value of the "phase" field.
func (m *TicketMutation) ClearPhase() {
	m.phase = nil
	m.clearedFields[ticket.FieldPhase] = struct{}{}
}

// PhaseCleared returns if the "phase" field was cleared in this mutation.
func (m *TicketMutation) PhaseCleared() bool {
	_, ok := m.clearedFields[ticket.FieldPhase]
	return ok
}

// ResetPhase resets all changes to the "phase" field.
func (m *TicketMutation) ResetPhase() {
	m.phase = nil
	delete(m.clearedFields, ticket.FieldPhase)
}

// SetStatus sets the "status" field.
func (m *TicketMutation) SetStatus(t ticket.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TicketMutation) Status() (r ticket.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldStatus(ctx context.Context) (v ticket.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TicketMutation) ResetStatus() {
	m.status = nil
}

// SetApprovalStatus sets the "approval_status" field.
func (m *TicketMutation) SetApprovalStatus(ts ticket.ApprovalStatus) {
	m.approval_status = &ts
}

// ApprovalStatus returns the value of the "approval_status" field in the mutation.
func (m *TicketMutation) ApprovalStatus() (r ticket.ApprovalStatus, exists bool) {
	v := m.approval_status
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalStatus returns the old "approval_status" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldApprovalStatus(ctx context.Context) (v ticket.ApprovalStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalStatus: %w", err)
	}
	return oldValue.ApprovalStatus, nil
}

// ResetApprovalStatus resets all changes to the "approval_status" field.
func (m *TicketMutation) ResetApprovalStatus() {
	m.approval_status = nil
}

// SetPriority sets the "priority" field.
func (m *TicketMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TicketMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *TicketMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TicketMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TicketMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetDeadline sets the "deadline" field.
func (m *TicketMutation) SetDeadline(t time.Time) {
	m.deadline = &t
}

// Deadline returns the value of the "deadline" field in the mutation.
func (m *TicketMutation) Deadline() (r time.Time, exists bool) {
	v := m.deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadline returns the old "deadline" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadline: %w", err)
	}
	return oldValue.Deadline, nil
}

// ClearDeadline clears the value of the "deadline" field.
func (m *TicketMutation) ClearDeadline() {
	m.deadline = nil
	m.clearedFields[ticket.FieldDeadline] = struct{}{}
}

// DeadlineCleared returns if the "deadline" field was cleared in this mutation.
func (m *TicketMutation) DeadlineCleared() bool {
	_, ok := m.clearedFields[ticket.FieldDeadline]
	return ok
}

// ResetDeadline resets all changes to the "deadline" field.
func (m *TicketMutation) ResetDeadline() {
	m.deadline = nil
	delete(m.clearedFields, ticket.FieldDeadline)
}

// SetIsBlocked sets the "is_blocked" field.
func (m *TicketMutation) SetIsBlocked(b bool) {
	m.is_blocked = &b
}

// IsBlocked returns the value of the "is_blocked" field in the mutation.
func (m *TicketMutation) IsBlocked() (r bool, exists bool) {
	v := m.is_blocked
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBlocked returns the old "is_blocked" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldIsBlocked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBlocked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBlocked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBlocked: %w", err)
	}
	return oldValue.IsBlocked, nil
}

// ResetIsBlocked resets all changes to the "is_blocked" field.
func (m *TicketMutation) ResetIsBlocked() {
	m.is_blocked = nil
}

// SetBlockedReason sets the "blocked_reason" field.
func (m *TicketMutation) SetBlockedReason(s string) {
	m.blocked_reason = &s
}

// BlockedReason returns the value of the "blocked_reason" field in the mutation.
func (m *TicketMutation) BlockedReason() (r string, exists bool) {
	v := m.blocked_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedReason returns the old "blocked_reason" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldBlockedReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedReason: %w", err)
	}
	return oldValue.BlockedReason, nil
}

// ClearBlockedReason clears the value of the "blocked_reason" field.
func (m *TicketMutation) ClearBlockedReason() {
	m.blocked_reason = nil
	m.clearedFields[ticket.FieldBlockedReason] = struct{}{}
}

// BlockedReasonCleared returns if the "blocked_reason" field was cleared in this mutation.
func (m *TicketMutation) BlockedReasonCleared() bool {
	_, ok := m.clearedFields[ticket.FieldBlockedReason]
	return ok
}

// ResetBlockedReason resets all changes to the "blocked_reason" field.
func (m *TicketMutation) ResetBlockedReason() {
	m.blocked_reason = nil
	delete(m.clearedFields, ticket.FieldBlockedReason)
}

// SetOwner sets the "owner" field.
func (m *TicketMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *TicketMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ClearOwner clears the value of the "owner" field.
func (m *TicketMutation) ClearOwner() {
	m.owner = nil
	m.clearedFields[ticket.FieldOwner] = struct{}{}
}

// OwnerCleared returns if the "owner" field was cleared in this mutation.
func (m *TicketMutation) OwnerCleared() bool {
	_, ok := m.clearedFields[ticket.FieldOwner]
	return ok
}

// ResetOwner resets all changes to the "owner" field.
func (m *TicketMutation) ResetOwner() {
	m.owner = nil
	delete(m.clearedFields, ticket.FieldOwner)
}

// SetProjectID sets the "project_id" field.
func (m *TicketMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TicketMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *TicketMutation) ClearProjectID() {
	m.project_id = nil
	m.clearedFields[ticket.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *TicketMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TicketMutation) ResetProjectID() {
	m.project_id = nil
	delete(m.clearedFields, ticket.FieldProjectID)
}

// SetBlockedBy sets the "blocked_by" field.
func (m *TicketMutation) SetBlockedBy(s []string) {
	m.blocked_by = &s
	m.appendblocked_by = nil
}

// BlockedBy returns the value of the "blocked_by" field in the mutation.
func (m *TicketMutation) BlockedBy() (r []string, exists bool) {
	v := m.blocked_by
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedBy returns the old "blocked_by" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldBlockedBy(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedBy: %w", err)
	}
	return oldValue.BlockedBy, nil
}

// AppendBlockedBy adds s to the "blocked_by" field.
func (m *TicketMutation) AppendBlockedBy(s []string) {
	m.appendblocked_by = append(m.appendblocked_by, s...)
}

// AppendedBlockedBy returns the list of values that were appended to the "blocked_by" field in this mutation.
func (m *TicketMutation) AppendedBlockedBy() ([]string, bool) {
	if len(m.appendblocked_by) == 0 {
		return nil, false
	}
	return m.appendblocked_by, true
}

// ClearBlockedBy clears the value of the "blocked_by" field.
func (m *TicketMutation) ClearBlockedBy() {
	m.blocked_by = nil
	m.appendblocked_by = nil
	m.clearedFields[ticket.FieldBlockedBy] = struct{}{}
}

// BlockedByCleared returns if the "blocked_by" field was cleared in this mutation.
func (m *TicketMutation) BlockedByCleared() bool {
	_, ok := m.clearedFields[ticket.FieldBlockedBy]
	return ok
}

// ResetBlockedBy resets all changes to the "blocked_by" field.
func (m *TicketMutation) ResetBlockedBy() {
	m.blocked_by = nil
	m.appendblocked_by = nil
	delete(m.clearedFields, ticket.FieldBlockedBy)
}

// SetBlocks sets the "blocks" field.
func (m *TicketMutation) SetBlocks(s []string) {
	m.blocks = &s
	m.appendblocks = nil
}

// Blocks returns the value of the "blocks" field in the mutation.
func (m *TicketMutation) Blocks() (r []string, exists bool) {
	v := m.blocks
	if v == nil {
		return
	}
	return *v, true
}

// OldBlocks returns the old "blocks" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldBlocks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlocks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlocks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlocks: %w", err)
	}
	return oldValue.Blocks, nil
}

// AppendBlocks adds s to the "blocks" field.
func (m *TicketMutation) AppendBlocks(s []string) {
	m.appendblocks = append(m.appendblocks, s...)
}

// AppendedBlocks returns the list of values that were appended to the "blocks" field in this mutation.
func (m *TicketMutation) AppendedBlocks() ([]string, bool) {
	if len(m.appendblocks) == 0 {
		return nil, false
	}
	return m.appendblocks, true
}

// ClearBlocks clears the value of the "blocks" field.
func (m *TicketMutation) ClearBlocks() {
	m.blocks = nil
	m.appendblocks = nil
	m.clearedFields[ticket.FieldBlocks] = struct{}{}
}

// BlocksCleared returns if the "blocks" field was cleared in this mutation.
func (m *TicketMutation) BlocksCleared() bool {
	_, ok := m.clearedFields[ticket.FieldBlocks]
	return ok
}

// ResetBlocks resets all changes to the "blocks" field.
func (m *TicketMutation) ResetBlocks() {
	m.blocks = nil
	m.appendblocks = nil
	delete(m.clearedFields, ticket.FieldBlocks)
}

// SetSpecID sets the "spec_id" field.
func (m *TicketMutation) SetSpecID(s string) {
	m.spec_id = &s
}

// SpecID returns the value of the "spec_id" field in the mutation.
func (m *TicketMutation) SpecID() (r string, exists bool) {
	v := m.spec_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecID returns the old "spec_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldSpecID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecID: %w", err)
	}
	return oldValue.SpecID, nil
}

// ClearSpecID clears the value of the "spec_id" field.
func (m *TicketMutation) ClearSpecID() {
	m.spec_id = nil
	m.clearedFields[ticket.FieldSpecID] = struct{}{}
}

// SpecIDCleared returns if the "spec_id" field was cleared in this mutation.
func (m *TicketMutation) SpecIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldSpecID]
	return ok
}

// ResetSpecID resets all changes to the "spec_id" field.
func (m *TicketMutation) ResetSpecID() {
	m.spec_id = nil
	delete(m.clearedFields, ticket.FieldSpecID)
}

// SetVersion sets the "version" field.
func (m *TicketMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *TicketMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *TicketMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *TicketMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *TicketMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TicketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TicketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TicketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TicketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *TicketMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *TicketMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *TicketMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *TicketMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *TicketMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *TicketMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *TicketMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the TicketMutation builder.
func (m *TicketMutation) Where(ps ...predicate.Ticket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Ticket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Ticket).
func (m *TicketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.title != nil {
		fields = append(fields, ticket.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, ticket.FieldDescription)
	}
	if m.phase != nil {
		fields = append(fields, ticket.FieldPhase)
	}
	if m.status != nil {
		fields = append(fields, ticket.FieldStatus)
	}
	if m.approval_status != nil {
		fields = append(fields, ticket.FieldApprovalStatus)
	}
	if m.priority != nil {
		fields = append(fields, ticket.FieldPriority)
	}
	if m.deadline != nil {
		fields = append(fields, ticket.FieldDeadline)
	}
	if m.is_blocked != nil {
		fields = append(fields, ticket.FieldIsBlocked)
	}
	if m.blocked_reason != nil {
		fields = append(fields, ticket.FieldBlockedReason)
	}
	if m.owner != nil {
		fields = append(fields, ticket.FieldOwner)
	}
	if m.project_id != nil {
		fields = append(fields, ticket.FieldProjectID)
	}
	if m.blocked_by != nil {
		fields = append(fields, ticket.FieldBlockedBy)
	}
	if m.blocks != nil {
		fields = append(fields, ticket.FieldBlocks)
	}
	if m.spec_id != nil {
		fields = append(fields, ticket.FieldSpecID)
	}
	if m.version != nil {
		fields = append(fields, ticket.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, ticket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ticket.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticket.FieldTitle:
		return m.Title()
	case ticket.FieldDescription:
		return m.Description()
	case ticket.FieldPhase:
		return m.Phase()
	case ticket.FieldStatus:
		return m.Status()
	case ticket.FieldApprovalStatus:
		return m.ApprovalStatus()
	case ticket.FieldPriority:
		return m.Priority()
	case ticket.FieldDeadline:
		return m.Deadline()
	case ticket.FieldIsBlocked:
		return m.IsBlocked()
	case ticket.FieldBlockedReason:
		return m.BlockedReason()
	case ticket.FieldOwner:
		return m.Owner()
	case ticket.FieldProjectID:
		return m.ProjectID()
	case ticket.FieldBlockedBy:
		return m.BlockedBy()
	case ticket.FieldBlocks:
		return m.Blocks()
	case ticket.FieldSpecID:
		return m.SpecID()
	case ticket.FieldVersion:
		return m.Version()
	case ticket.FieldCreatedAt:
		return m.CreatedAt()
	case ticket.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticket.FieldTitle:
		return m.OldTitle(ctx)
	case ticket.FieldDescription:
		return m.OldDescription(ctx)
	case ticket.FieldPhase:
		return m.OldPhase(ctx)
	case ticket.FieldStatus:
		return m.OldStatus(ctx)
	case ticket.FieldApprovalStatus:
		return m.OldApprovalStatus(ctx)
	case ticket.FieldPriority:
		return m.OldPriority(ctx)
	case ticket.FieldDeadline:
		return m.OldDeadline(ctx)
	case ticket.FieldIsBlocked:
		return m.OldIsBlocked(ctx)
	case ticket.FieldBlockedReason:
		return m.OldBlockedReason(ctx)
	case ticket.FieldOwner:
		return m.OldOwner(ctx)
	case ticket.FieldProjectID:
		return m.OldProjectID(ctx)
	case ticket.FieldBlockedBy:
		return m.OldBlockedBy(ctx)
	case ticket.FieldBlocks:
		return m.OldBlocks(ctx)
	case ticket.FieldSpecID:
		return m.OldSpecID(ctx)
	case ticket.FieldVersion:
		return m.OldVersion(ctx)
	case ticket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ticket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Ticket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticket.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case ticket.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case ticket.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case ticket.FieldStatus:
		v, ok := value.(ticket.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ticket.FieldApprovalStatus:
		v, ok := value.(ticket.ApprovalStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalStatus(v)
		return nil
	case ticket.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case ticket.FieldDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadline(v)
		return nil
	case ticket.FieldIsBlocked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBlocked(v)
		return nil
	case ticket.FieldBlockedReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedReason(v)
		return nil
	case ticket.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case ticket.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case ticket.FieldBlockedBy:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedBy(v)
		return nil
	case ticket.FieldBlocks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlocks(v)
		return nil
	case ticket.FieldSpecID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecID(v)
		return nil
	case ticket.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case ticket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ticket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, ticket.FieldPriority)
	}
	if m.addversion != nil {
		fields = append(fields, ticket.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ticket.FieldPriority:
		return m.AddedPriority()
	case ticket.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ticket.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case ticket.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Ticket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ticket.FieldPhase) {
		fields = append(fields, ticket.FieldPhase)
	}
	if m.FieldCleared(ticket.FieldDeadline) {
		fields = append(fields, ticket.FieldDeadline)
	}
	if m.FieldCleared(ticket.FieldBlockedReason) {
		fields = append(fields, ticket.FieldBlockedReason)
	}
	if m.FieldCleared(ticket.FieldOwner) {
		fields = append(fields, ticket.FieldOwner)
	}
	if m.FieldCleared(ticket.FieldProjectID) {
		fields = append(fields, ticket.FieldProjectID)
	}
	if m.FieldCleared(ticket.FieldBlockedBy) {
		fields = append(fields, ticket.FieldBlockedBy)
	}
	if m.FieldCleared(ticket.FieldBlocks) {
		fields = append(fields, ticket.FieldBlocks)
	}
	if m.FieldCleared(ticket.FieldSpecID) {
		fields = append(fields, ticket.FieldSpecID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketMutation) ClearField(name string) error {
	switch name {
	case ticket.FieldPhase:
		m.ClearPhase()
		return nil
	case ticket.FieldDeadline:
		m.ClearDeadline()
		return nil
	case ticket.FieldBlockedReason:
		m.ClearBlockedReason()
		return nil
	case ticket.FieldOwner:
		m.ClearOwner()
		return nil
	case ticket.FieldProjectID:
		m.ClearProjectID()
		return nil
	case ticket.FieldBlockedBy:
		m.ClearBlockedBy()
		return nil
	case ticket.FieldBlocks:
		m.ClearBlocks()
		return nil
	case ticket.FieldSpecID:
		m.ClearSpecID()
		return nil
	}
	return fmt.Errorf("unknown Ticket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketMutation) ResetField(name string) error {
	switch name {
	case ticket.FieldTitle:
		m.ResetTitle()
		return nil
	case ticket.FieldDescription:
		m.ResetDescription()
		return nil
	case ticket.FieldPhase:
		m.ResetPhase()
		return nil
	case ticket.FieldStatus:
		m.ResetStatus()
		return nil
	case ticket.FieldApprovalStatus:
		m.ResetApprovalStatus()
		return nil
	case ticket.FieldPriority:
		m.ResetPriority()
		return nil
	case ticket.FieldDeadline:
		m.ResetDeadline()
		return nil
	case ticket.FieldIsBlocked:
		m.ResetIsBlocked()
		return nil
	case ticket.FieldBlockedReason:
		m.ResetBlockedReason()
		return nil
	case ticket.FieldOwner:
		m.ResetOwner()
		return nil
	case ticket.FieldProjectID:
		m.ResetProjectID()
		return nil
	case ticket.FieldBlockedBy:
		m.ResetBlockedBy()
		return nil
	case ticket.FieldBlocks:
		m.ResetBlocks()
		return nil
	case ticket.FieldSpecID:
		m.ResetSpecID()
		return nil
	case ticket.FieldVersion:
		m.ResetVersion()
		return nil
	case ticket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ticket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tasks != nil {
		edges = append(edges, ticket.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtasks != nil {
		edges = append(edges, ticket.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtasks {
		edges = append(edges, ticket.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketMutation) EdgeCleared(name string) bool {
	switch name {
	case ticket.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Ticket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketMutation) ResetEdge(name string) error {
	switch name {
	case ticket.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Ticket edge %s", name)
}
