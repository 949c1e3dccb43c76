// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// AgentType applies equality check predicate on the "agent_type" field. It's identical to AgentTypeEQ.
func AgentType(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAgentType, v))
}

// Capacity applies equality check predicate on the "capacity" field. It's identical to CapacityEQ.
func Capacity(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCapacity, v))
}

// AnomalyScore applies equality check predicate on the "anomaly_score" field. It's identical to AnomalyScoreEQ.
func AnomalyScore(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAnomalyScore, v))
}

// ConsecutiveAnomalousReadings applies equality check predicate on the "consecutive_anomalous_readings" field. It's identical to ConsecutiveAnomalousReadingsEQ.
func ConsecutiveAnomalousReadings(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldConsecutiveAnomalousReadings, v))
}

// SequenceNumber applies equality check predicate on the "sequence_number" field. It's identical to SequenceNumberEQ.
func SequenceNumber(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSequenceNumber, v))
}

// ConsecutiveMissedHeartbeats applies equality check predicate on the "consecutive_missed_heartbeats" field. It's identical to ConsecutiveMissedHeartbeatsEQ.
func ConsecutiveMissedHeartbeats(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldConsecutiveMissedHeartbeats, v))
}

// CorruptHeartbeats applies equality check predicate on the "corrupt_heartbeats" field. It's identical to CorruptHeartbeatsEQ.
func CorruptHeartbeats(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCorruptHeartbeats, v))
}

// CryptoPublicKey applies equality check predicate on the "crypto_public_key" field. It's identical to CryptoPublicKeyEQ.
func CryptoPublicKey(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCryptoPublicKey, v))
}

// CurrentTaskID applies equality check predicate on the "current_task_id" field. It's identical to CurrentTaskIDEQ.
func CurrentTaskID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCurrentTaskID, v))
}

// SandboxID applies equality check predicate on the "sandbox_id" field. It's identical to SandboxIDEQ.
func SandboxID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSandboxID, v))
}

// KeptAliveForValidation applies equality check predicate on the "kept_alive_for_validation" field. It's identical to KeptAliveForValidationEQ.
func KeptAliveForValidation(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldKeptAliveForValidation, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldVersion, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// RegisteredAt applies equality check predicate on the "registered_at" field. It's identical to RegisteredAtEQ.
func RegisteredAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRegisteredAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldName, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAgentType, vs...))
}

// AgentTypeGT applies the GT predicate on the "agent_type" field.
func AgentTypeGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldAgentType, v))
}

// AgentTypeGTE applies the GTE predicate on the "agent_type" field.
func AgentTypeGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldAgentType, v))
}

// AgentTypeLT applies the LT predicate on the "agent_type" field.
func AgentTypeLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldAgentType, v))
}

// AgentTypeLTE applies the LTE predicate on the "agent_type" field.
func AgentTypeLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldAgentType, v))
}

// AgentTypeContains applies the Contains predicate on the "agent_type" field.
func AgentTypeContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldAgentType, v))
}

// AgentTypeHasPrefix applies the HasPrefix predicate on the "agent_type" field.
func AgentTypeHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldAgentType, v))
}

// AgentTypeHasSuffix applies the HasSuffix predicate on the "agent_type" field.
func AgentTypeHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldAgentType, v))
}

// AgentTypeEqualFold applies the EqualFold predicate on the "agent_type" field.
func AgentTypeEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldAgentType, v))
}

// AgentTypeContainsFold applies the ContainsFold predicate on the "agent_type" field.
func AgentTypeContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldAgentType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStatus, vs...))
}

// CapabilitiesIsNil applies the IsNil predicate on the "capabilities" field.
func CapabilitiesIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldCapabilities))
}

// CapabilitiesNotNil applies the NotNil predicate on the "capabilities" field.
func CapabilitiesNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldCapabilities))
}

// CapacityEQ applies the EQ predicate on the "capacity" field.
func CapacityEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCapacity, v))
}

// CapacityNEQ applies the NEQ predicate on the "capacity" field.
func CapacityNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCapacity, v))
}

// CapacityIn applies the In predicate on the "capacity" field.
func CapacityIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCapacity, vs...))
}

// CapacityNotIn applies the NotIn predicate on the "capacity" field.
func CapacityNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCapacity, vs...))
}

// CapacityGT applies the GT predicate on the "capacity" field.
func CapacityGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCapacity, v))
}

// CapacityGTE applies the GTE predicate on the "capacity" field.
func CapacityGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCapacity, v))
}

// CapacityLT applies the LT predicate on the "capacity" field.
func CapacityLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCapacity, v))
}

// CapacityLTE applies the LTE predicate on the "capacity" field.
func CapacityLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCapacity, v))
}

// HealthMetricsIsNil applies the IsNil predicate on the "health_metrics" field.
func HealthMetricsIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldHealthMetrics))
}

// HealthMetricsNotNil applies the NotNil predicate on the "health_metrics" field.
func HealthMetricsNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldHealthMetrics))
}

// AnomalyScoreEQ applies the EQ predicate on the "anomaly_score" field.
func AnomalyScoreEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAnomalyScore, v))
}

// AnomalyScoreNEQ applies the NEQ predicate on the "anomaly_score" field.
func AnomalyScoreNEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAnomalyScore, v))
}

// AnomalyScoreIn applies the In predicate on the "anomaly_score" field.
func AnomalyScoreIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAnomalyScore, vs...))
}

// AnomalyScoreNotIn applies the NotIn predicate on the "anomaly_score" field.
func AnomalyScoreNotIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAnomalyScore, vs...))
}

// AnomalyScoreGT applies the GT predicate on the "anomaly_score" field.
func AnomalyScoreGT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldAnomalyScore, v))
}

// AnomalyScoreGTE applies the GTE predicate on the "anomaly_score" field.
func AnomalyScoreGTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldAnomalyScore, v))
}

// AnomalyScoreLT applies the LT predicate on the "anomaly_score" field.
func AnomalyScoreLT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldAnomalyScore, v))
}

// AnomalyScoreLTE applies the LTE predicate on the "anomaly_score" field.
func AnomalyScoreLTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldAnomalyScore, v))
}

// ConsecutiveAnomalousReadingsEQ applies the EQ predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldConsecutiveAnomalousReadings, v))
}

// ConsecutiveAnomalousReadingsNEQ applies the NEQ predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldConsecutiveAnomalousReadings, v))
}

// ConsecutiveAnomalousReadingsIn applies the In predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldConsecutiveAnomalousReadings, vs...))
}

// ConsecutiveAnomalousReadingsNotIn applies the NotIn predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldConsecutiveAnomalousReadings, vs...))
}

// ConsecutiveAnomalousReadingsGT applies the GT predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldConsecutiveAnomalousReadings, v))
}

// ConsecutiveAnomalousReadingsGTE applies the GTE predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldConsecutiveAnomalousReadings, v))
}

// ConsecutiveAnomalousReadingsLT applies the LT predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldConsecutiveAnomalousReadings, v))
}

// ConsecutiveAnomalousReadingsLTE applies the LTE predicate on the "consecutive_anomalous_readings" field.
func ConsecutiveAnomalousReadingsLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldConsecutiveAnomalousReadings, v))
}

// SequenceNumberEQ applies the EQ predicate on the "sequence_number" field.
func SequenceNumberEQ(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSequenceNumber, v))
}

// SequenceNumberNEQ applies the NEQ predicate on the "sequence_number" field.
func SequenceNumberNEQ(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldSequenceNumber, v))
}

// SequenceNumberIn applies the In predicate on the "sequence_number" field.
func SequenceNumberIn(vs ...int64) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldSequenceNumber, vs...))
}

// SequenceNumberNotIn applies the NotIn predicate on the "sequence_number" field.
func SequenceNumberNotIn(vs ...int64) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldSequenceNumber, vs...))
}

// SequenceNumberGT applies the GT predicate on the "sequence_number" field.
func SequenceNumberGT(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldSequenceNumber, v))
}

// SequenceNumberGTE applies the GTE predicate on the "sequence_number" field.
func SequenceNumberGTE(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldSequenceNumber, v))
}

// SequenceNumberLT applies the LT predicate on the "sequence_number" field.
func SequenceNumberLT(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldSequenceNumber, v))
}

// SequenceNumberLTE applies the LTE predicate on the "sequence_number" field.
func SequenceNumberLTE(v int64) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldSequenceNumber, v))
}

// ConsecutiveMissedHeartbeatsEQ applies the EQ predicate on the "consecutive_missed_heartbeats" field.
func ConsecutiveMissedHeartbeatsEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldConsecutiveMissedHeartbeats, v))
}

// ConsecutiveMissedHeartbeatsNEQ applies the NEQ predicate on the "consecutive_missed_heartbeats" field.
func ConsecutiveMissedHeartbeatsNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldConsecutiveMissedHeartbeats, v))
}

// ConsecutiveMissedHeartbeatsIn applies the In predicate on the "consecutive_missed_heartbeats" field.
func ConsecutiveMissedHeartbeatsIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldConsecutiveMissedHeartbeats, vs...))
}

// ConsecutiveMissedHeartbeatsNotIn applies the NotIn predicate on the "consecutive_missed_heartbeats" field.
func ConsecutiveMissedHeartbeatsNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldConsecutiveMissedHeartbeats, vs...))
}

// ConsecutiveMissedHeartbeatsGT applies the GT predicate on the "consecutive_missed_heartbeats" field.
func ConsecutiveMissedHeartbeatsGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldConsecutiveMissedHeartbeats, v))
}

// ConsecutiveMissedHeartbeatsGTE applies the GTE predicate on the "consecutive_missed_heartbeats" field.
func ConsecutiveMissedHeartbeatsGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldConsecutiveMissedHeartbeats, v))
}

// ConsecutiveMissedHeartbeatsLT applies the LT predicate on the "consecutive_missed_heartbeats" field.
func ConsecutiveMissedHeartbeatsLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldConsecutiveMissedHeartbeats, v))
}

// ConsecutiveMissedHeartbeatsLTE applies the LTE predicate on the "consecutive_missed_heartbeats" field.
func ConsecutiveMissedHeartbeatsLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldConsecutiveMissedHeartbeats, v))
}

// CorruptHeartbeatsEQ applies the EQ predicate on the "corrupt_heartbeats" field.
func CorruptHeartbeatsEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCorruptHeartbeats, v))
}

// CorruptHeartbeatsNEQ applies the NEQ predicate on the "corrupt_heartbeats" field.
func CorruptHeartbeatsNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCorruptHeartbeats, v))
}

// CorruptHeartbeatsIn applies the In predicate on the "corrupt_heartbeats" field.
func CorruptHeartbeatsIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCorruptHeartbeats, vs...))
}

// CorruptHeartbeatsNotIn applies the NotIn predicate on the "corrupt_heartbeats" field.
func CorruptHeartbeatsNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCorruptHeartbeats, vs...))
}

// CorruptHeartbeatsGT applies the GT predicate on the "corrupt_heartbeats" field.
func CorruptHeartbeatsGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCorruptHeartbeats, v))
}

// CorruptHeartbeatsGTE applies the GTE predicate on the "corrupt_heartbeats" field.
func CorruptHeartbeatsGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCorruptHeartbeats, v))
}

// CorruptHeartbeatsLT applies the LT predicate on the "corrupt_heartbeats" field.
func CorruptHeartbeatsLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCorruptHeartbeats, v))
}

// CorruptHeartbeatsLTE applies the LTE predicate on the "corrupt_heartbeats" field.
func CorruptHeartbeatsLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCorruptHeartbeats, v))
}

// CryptoPublicKeyEQ applies the EQ predicate on the "crypto_public_key" field.
func CryptoPublicKeyEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCryptoPublicKey, v))
}

// CryptoPublicKeyNEQ applies the NEQ predicate on the "crypto_public_key" field.
func CryptoPublicKeyNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCryptoPublicKey, v))
}

// CryptoPublicKeyIn applies the In predicate on the "crypto_public_key" field.
func CryptoPublicKeyIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCryptoPublicKey, vs...))
}

// CryptoPublicKeyNotIn applies the NotIn predicate on the "crypto_public_key" field.
func CryptoPublicKeyNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCryptoPublicKey, vs...))
}

// CryptoPublicKeyGT applies the GT predicate on the "crypto_public_key" field.
func CryptoPublicKeyGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCryptoPublicKey, v))
}

// CryptoPublicKeyGTE applies the GTE predicate on the "crypto_public_key" field.
func CryptoPublicKeyGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCryptoPublicKey, v))
}

// CryptoPublicKeyLT applies the LT predicate on the "crypto_public_key" field.
func CryptoPublicKeyLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCryptoPublicKey, v))
}

// CryptoPublicKeyLTE applies the LTE predicate on the "crypto_public_key" field.
func CryptoPublicKeyLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCryptoPublicKey, v))
}

// CryptoPublicKeyContains applies the Contains predicate on the "crypto_public_key" field.
func CryptoPublicKeyContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldCryptoPublicKey, v))
}

// CryptoPublicKeyHasPrefix applies the HasPrefix predicate on the "crypto_public_key" field.
func CryptoPublicKeyHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldCryptoPublicKey, v))
}

// CryptoPublicKeyHasSuffix applies the HasSuffix predicate on the "crypto_public_key" field.
func CryptoPublicKeyHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldCryptoPublicKey, v))
}

// CryptoPublicKeyIsNil applies the IsNil predicate on the "crypto_public_key" field.
func CryptoPublicKeyIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldCryptoPublicKey))
}

// CryptoPublicKeyNotNil applies the NotNil predicate on the "crypto_public_key" field.
func CryptoPublicKeyNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldCryptoPublicKey))
}

// CryptoPublicKeyEqualFold applies the EqualFold predicate on the "crypto_public_key" field.
func CryptoPublicKeyEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldCryptoPublicKey, v))
}

// CryptoPublicKeyContainsFold applies the ContainsFold predicate on the "crypto_public_key" field.
func CryptoPublicKeyContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldCryptoPublicKey, v))
}

// CurrentTaskIDEQ applies the EQ predicate on the "current_task_id" field.
func CurrentTaskIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCurrentTaskID, v))
}

// CurrentTaskIDNEQ applies the NEQ predicate on the "current_task_id" field.
func CurrentTaskIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCurrentTaskID, v))
}

// CurrentTaskIDIn applies the In predicate on the "current_task_id" field.
func CurrentTaskIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCurrentTaskID, vs...))
}

// CurrentTaskIDNotIn applies the NotIn predicate on the "current_task_id" field.
func CurrentTaskIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCurrentTaskID, vs...))
}

// CurrentTaskIDGT applies the GT predicate on the "current_task_id" field.
func CurrentTaskIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCurrentTaskID, v))
}

// CurrentTaskIDGTE applies the GTE predicate on the "current_task_id" field.
func CurrentTaskIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCurrentTaskID, v))
}

// CurrentTaskIDLT applies the LT predicate on the "current_task_id" field.
func CurrentTaskIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCurrentTaskID, v))
}

// CurrentTaskIDLTE applies the LTE predicate on the "current_task_id" field.
func CurrentTaskIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCurrentTaskID, v))
}

// CurrentTaskIDContains applies the Contains predicate on the "current_task_id" field.
func CurrentTaskIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldCurrentTaskID, v))
}

// CurrentTaskIDHasPrefix applies the HasPrefix predicate on the "current_task_id" field.
func CurrentTaskIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldCurrentTaskID, v))
}

// CurrentTaskIDHasSuffix applies the HasSuffix predicate on the "current_task_id" field.
func CurrentTaskIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldCurrentTaskID, v))
}

// CurrentTaskIDIsNil applies the IsNil predicate on the "current_task_id" field.
func CurrentTaskIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldCurrentTaskID))
}

// CurrentTaskIDNotNil applies the NotNil predicate on the "current_task_id" field.
func CurrentTaskIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldCurrentTaskID))
}

// CurrentTaskIDEqualFold applies the EqualFold predicate on the "current_task_id" field.
func CurrentTaskIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldCurrentTaskID, v))
}

// CurrentTaskIDContainsFold applies the ContainsFold predicate on the "current_task_id" field.
func CurrentTaskIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldCurrentTaskID, v))
}

// SandboxIDEQ applies the EQ predicate on the "sandbox_id" field.
func SandboxIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSandboxID, v))
}

// SandboxIDNEQ applies the NEQ predicate on the "sandbox_id" field.
func SandboxIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldSandboxID, v))
}

// SandboxIDIn applies the In predicate on the "sandbox_id" field.
func SandboxIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldSandboxID, vs...))
}

// SandboxIDNotIn applies the NotIn predicate on the "sandbox_id" field.
func SandboxIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldSandboxID, vs...))
}

// SandboxIDGT applies the GT predicate on the "sandbox_id" field.
func SandboxIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldSandboxID, v))
}

// SandboxIDGTE applies the GTE predicate on the "sandbox_id" field.
func SandboxIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldSandboxID, v))
}

// SandboxIDLT applies the LT predicate on the "sandbox_id" field.
func SandboxIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldSandboxID, v))
}

// SandboxIDLTE applies the LTE predicate on the "sandbox_id" field.
func SandboxIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldSandboxID, v))
}

// SandboxIDContains applies the Contains predicate on the "sandbox_id" field.
func SandboxIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldSandboxID, v))
}

// SandboxIDHasPrefix applies the HasPrefix predicate on the "sandbox_id" field.
func SandboxIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldSandboxID, v))
}

// SandboxIDHasSuffix applies the HasSuffix predicate on the "sandbox_id" field.
func SandboxIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldSandboxID, v))
}

// SandboxIDIsNil applies the IsNil predicate on the "sandbox_id" field.
func SandboxIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldSandboxID))
}

// SandboxIDNotNil applies the NotNil predicate on the "sandbox_id" field.
func SandboxIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldSandboxID))
}

// SandboxIDEqualFold applies the EqualFold predicate on the "sandbox_id" field.
func SandboxIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldSandboxID, v))
}

// SandboxIDContainsFold applies the ContainsFold predicate on the "sandbox_id" field.
func SandboxIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldSandboxID, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldMetadata))
}

// KeptAliveForValidationEQ applies the EQ predicate on the "kept_alive_for_validation" field.
func KeptAliveForValidationEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldKeptAliveForValidation, v))
}

// KeptAliveForValidationNEQ applies the NEQ predicate on the "kept_alive_for_validation" field.
func KeptAliveForValidationNEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldKeptAliveForValidation, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldVersion, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// RegisteredAtEQ applies the EQ predicate on the "registered_at" field.
func RegisteredAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRegisteredAt, v))
}

// RegisteredAtNEQ applies the NEQ predicate on the "registered_at" field.
func RegisteredAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldRegisteredAt, v))
}

// RegisteredAtIn applies the In predicate on the "registered_at" field.
func RegisteredAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldRegisteredAt, vs...))
}

// RegisteredAtNotIn applies the NotIn predicate on the "registered_at" field.
func RegisteredAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldRegisteredAt, vs...))
}

// RegisteredAtGT applies the GT predicate on the "registered_at" field.
func RegisteredAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldRegisteredAt, v))
}

// RegisteredAtGTE applies the GTE predicate on the "registered_at" field.
func RegisteredAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldRegisteredAt, v))
}

// RegisteredAtLT applies the LT predicate on the "registered_at" field.
func RegisteredAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldRegisteredAt, v))
}

// RegisteredAtLTE applies the LTE predicate on the "registered_at" field.
func RegisteredAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldRegisteredAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
