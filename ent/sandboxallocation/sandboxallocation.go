// Code generated by ent, DO NOT EDIT.

package sandboxallocation

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sandboxallocation type in the database.
	Label = "sandbox_allocation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "sandbox_id"
	// FieldCPUCores holds the string denoting the cpu_cores field in the database.
	FieldCPUCores = "cpu_cores"
	// FieldMemoryMB holds the string denoting the memory_mb field in the database.
	FieldMemoryMB = "memory_mb"
	// FieldDiskMB holds the string denoting the disk_mb field in the database.
	FieldDiskMB = "disk_mb"
	// FieldPendingCPUCores holds the string denoting the pending_cpu_cores field in the database.
	FieldPendingCPUCores = "pending_cpu_cores"
	// FieldPendingMemoryMB holds the string denoting the pending_memory_mb field in the database.
	FieldPendingMemoryMB = "pending_memory_mb"
	// FieldPendingDiskMB holds the string denoting the pending_disk_mb field in the database.
	FieldPendingDiskMB = "pending_disk_mb"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldUpdatedBy holds the string denoting the updated_by field in the database.
	FieldUpdatedBy = "updated_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the sandboxallocation in the database.
	Table = "sandbox_allocations"
)

// Columns holds all SQL columns for sandboxallocation fields.
var Columns = []string{
	FieldID,
	FieldCPUCores,
	FieldMemoryMB,
	FieldDiskMB,
	FieldPendingCPUCores,
	FieldPendingMemoryMB,
	FieldPendingDiskMB,
	FieldVersion,
	FieldUpdatedBy,
	FieldCreatedAt,
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
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SandboxAllocation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCPUCores orders the results by the cpu_cores field.
func ByCPUCores(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCPUCores, opts...).ToFunc()
}

// ByMemoryMB orders the results by the memory_mb field.
func ByMemoryMB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryMB, opts...).ToFunc()
}

// ByDiskMB orders the results by the disk_mb field.
func ByDiskMB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiskMB, opts...).ToFunc()
}

// ByPendingCPUCores orders the results by the pending_cpu_cores field.
func ByPendingCPUCores(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingCPUCores, opts...).ToFunc()
}

// ByPendingMemoryMB orders the results by the pending_memory_mb field.
func ByPendingMemoryMB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingMemoryMB, opts...).ToFunc()
}

// ByPendingDiskMB orders the results by the pending_disk_mb field.
func ByPendingDiskMB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingDiskMB, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByUpdatedBy orders the results by the updated_by field.
func ByUpdatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
