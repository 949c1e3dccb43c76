// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAgentType holds the string denoting the agent_type field in the database.
	FieldAgentType = "agent_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCapabilities holds the string denoting the capabilities field in the database.
	FieldCapabilities = "capabilities"
	// FieldCapacity holds the string denoting the capacity field in the database.
	FieldCapacity = "capacity"
	// FieldHealthMetrics holds the string denoting the health_metrics field in the database.
	FieldHealthMetrics = "health_metrics"
	// FieldAnomalyScore holds the string denoting the anomaly_score field in the database.
	FieldAnomalyScore = "anomaly_score"
	// FieldConsecutiveAnomalousReadings holds the string denoting the consecutive_anomalous_readings field in the database.
	FieldConsecutiveAnomalousReadings = "consecutive_anomalous_readings"
	// FieldSequenceNumber holds the string denoting the sequence_number field in the database.
	FieldSequenceNumber = "sequence_number"
	// FieldConsecutiveMissedHeartbeats holds the string denoting the consecutive_missed_heartbeats field in the database.
	FieldConsecutiveMissedHeartbeats = "consecutive_missed_heartbeats"
	// FieldCorruptHeartbeats holds the string denoting the corrupt_heartbeats field in the database.
	FieldCorruptHeartbeats = "corrupt_heartbeats"
	// FieldCryptoPublicKey holds the string denoting the crypto_public_key field in the database.
	FieldCryptoPublicKey = "crypto_public_key"
	// FieldCurrentTaskID holds the string denoting the current_task_id field in the database.
	FieldCurrentTaskID = "current_task_id"
	// FieldSandboxID holds the string denoting the sandbox_id field in the database.
	FieldSandboxID = "sandbox_id"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldKeptAliveForValidation holds the string denoting the kept_alive_for_validation field in the database.
	FieldKeptAliveForValidation = "kept_alive_for_validation"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldRegisteredAt holds the string denoting the registered_at field in the database.
	FieldRegisteredAt = "registered_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the agent in the database.
	Table = "agents"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldAgentType,
	FieldStatus,
	FieldCapabilities,
	FieldCapacity,
	FieldHealthMetrics,
	FieldAnomalyScore,
	FieldConsecutiveAnomalousReadings,
	FieldSequenceNumber,
	FieldConsecutiveMissedHeartbeats,
	FieldCorruptHeartbeats,
	FieldCryptoPublicKey,
	FieldCurrentTaskID,
	FieldSandboxID,
	FieldMetadata,
	FieldKeptAliveForValidation,
	FieldVersion,
	FieldLastHeartbeatAt,
	FieldRegisteredAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCapacity holds the default value on creation for the "capacity" field.
	DefaultCapacity int
	// DefaultAnomalyScore holds the default value on creation for the "anomaly_score" field.
	DefaultAnomalyScore float64
	// DefaultConsecutiveAnomalousReadings holds the default value on creation for the "consecutive_anomalous_readings" field.
	DefaultConsecutiveAnomalousReadings int
	// DefaultSequenceNumber holds the default value on creation for the "sequence_number" field.
	DefaultSequenceNumber int64
	// DefaultConsecutiveMissedHeartbeats holds the default value on creation for the "consecutive_missed_heartbeats" field.
	DefaultConsecutiveMissedHeartbeats int
	// DefaultCorruptHeartbeats holds the default value on creation for the "corrupt_heartbeats" field.
	DefaultCorruptHeartbeats int
	// DefaultKeptAliveForValidation holds the default value on creation for the "kept_alive_for_validation" field.
	DefaultKeptAliveForValidation bool
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultRegisteredAt holds the default value on creation for the "registered_at" field.
	DefaultRegisteredAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusSPAWNING is the default value of the Status enum.
const DefaultStatus = StatusSPAWNING

// Status values.
const (
	StatusSPAWNING    Status = "SPAWNING"
	StatusIDLE        Status = "IDLE"
	StatusRUNNING     Status = "RUNNING"
	StatusDEGRADED    Status = "DEGRADED"
	StatusFAILED      Status = "FAILED"
	StatusQUARANTINED Status = "QUARANTINED"
	StatusTERMINATED  Status = "TERMINATED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSPAWNING, StatusIDLE, StatusRUNNING, StatusDEGRADED, StatusFAILED, StatusQUARANTINED, StatusTERMINATED:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAgentType orders the results by the agent_type field.
func ByAgentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCapacity orders the results by the capacity field.
func ByCapacity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapacity, opts...).ToFunc()
}

// ByAnomalyScore orders the results by the anomaly_score field.
func ByAnomalyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnomalyScore, opts...).ToFunc()
}

// ByConsecutiveAnomalousReadings orders the results by the consecutive_anomalous_readings field.
func ByConsecutiveAnomalousReadings(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveAnomalousReadings, opts...).ToFunc()
}

// BySequenceNumber orders the results by the sequence_number field.
func BySequenceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceNumber, opts...).ToFunc()
}

// ByConsecutiveMissedHeartbeats orders the results by the consecutive_missed_heartbeats field.
func ByConsecutiveMissedHeartbeats(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveMissedHeartbeats, opts...).ToFunc()
}

// ByCorruptHeartbeats orders the results by the corrupt_heartbeats field.
func ByCorruptHeartbeats(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorruptHeartbeats, opts...).ToFunc()
}

// ByCryptoPublicKey orders the results by the crypto_public_key field.
func ByCryptoPublicKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCryptoPublicKey, opts...).ToFunc()
}

// ByCurrentTaskID orders the results by the current_task_id field.
func ByCurrentTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentTaskID, opts...).ToFunc()
}

// BySandboxID orders the results by the sandbox_id field.
func BySandboxID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSandboxID, opts...).ToFunc()
}

// ByKeptAliveForValidation orders the results by the kept_alive_for_validation field.
func ByKeptAliveForValidation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeptAliveForValidation, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByRegisteredAt orders the results by the registered_at field.
func ByRegisteredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegisteredAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
