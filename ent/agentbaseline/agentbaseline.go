// Code generated by ent, DO NOT EDIT.

package agentbaseline

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentbaseline type in the database.
	Label = "agent_baseline"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentType holds the string denoting the agent_type field in the database.
	FieldAgentType = "agent_type"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldLatencyMeanMs holds the string denoting the latency_mean_ms field in the database.
	FieldLatencyMeanMs = "latency_mean_ms"
	// FieldLatencyStddevMs holds the string denoting the latency_stddev_ms field in the database.
	FieldLatencyStddevMs = "latency_stddev_ms"
	// FieldErrorRate holds the string denoting the error_rate field in the database.
	FieldErrorRate = "error_rate"
	// FieldCPUMean holds the string denoting the cpu_mean field in the database.
	FieldCPUMean = "cpu_mean"
	// FieldCPUStddev holds the string denoting the cpu_stddev field in the database.
	FieldCPUStddev = "cpu_stddev"
	// FieldMemMean holds the string denoting the mem_mean field in the database.
	FieldMemMean = "mem_mean"
	// FieldMemStddev holds the string denoting the mem_stddev field in the database.
	FieldMemStddev = "mem_stddev"
	// FieldSampleCount holds the string denoting the sample_count field in the database.
	FieldSampleCount = "sample_count"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the agentbaseline in the database.
	Table = "agent_baselines"
)

// Columns holds all SQL columns for agentbaseline fields.
var Columns = []string{
	FieldID,
	FieldAgentType,
	FieldPhase,
	FieldLatencyMeanMs,
	FieldLatencyStddevMs,
	FieldErrorRate,
	FieldCPUMean,
	FieldCPUStddev,
	FieldMemMean,
	FieldMemStddev,
	FieldSampleCount,
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
	// DefaultLatencyMeanMs holds the default value on creation for the "latency_mean_ms" field.
	DefaultLatencyMeanMs float64
	// DefaultLatencyStddevMs holds the default value on creation for the "latency_stddev_ms" field.
	DefaultLatencyStddevMs float64
	// DefaultErrorRate holds the default value on creation for the "error_rate" field.
	DefaultErrorRate float64
	// DefaultCPUMean holds the default value on creation for the "cpu_mean" field.
	DefaultCPUMean float64
	// DefaultCPUStddev holds the default value on creation for the "cpu_stddev" field.
	DefaultCPUStddev float64
	// DefaultMemMean holds the default value on creation for the "mem_mean" field.
	DefaultMemMean float64
	// DefaultMemStddev holds the default value on creation for the "mem_stddev" field.
	DefaultMemStddev float64
	// DefaultSampleCount holds the default value on creation for the "sample_count" field.
	DefaultSampleCount int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the AgentBaseline queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentType orders the results by the agent_type field.
func ByAgentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentType, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByLatencyMeanMs orders the results by the latency_mean_ms field.
func ByLatencyMeanMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMeanMs, opts...).ToFunc()
}

// ByLatencyStddevMs orders the results by the latency_stddev_ms field.
func ByLatencyStddevMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyStddevMs, opts...).ToFunc()
}

// ByErrorRate orders the results by the error_rate field.
func ByErrorRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorRate, opts...).ToFunc()
}

// ByCPUMean orders the results by the cpu_mean field.
func ByCPUMean(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCPUMean, opts...).ToFunc()
}

// ByCPUStddev orders the results by the cpu_stddev field.
func ByCPUStddev(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCPUStddev, opts...).ToFunc()
}

// ByMemMean orders the results by the mem_mean field.
func ByMemMean(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemMean, opts...).ToFunc()
}

// ByMemStddev orders the results by the mem_stddev field.
func ByMemStddev(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemStddev, opts...).ToFunc()
}

// BySampleCount orders the results by the sample_count field.
func BySampleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleCount, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
