// Code generated by ent, DO NOT EDIT.

package budget

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the budget type in the database.
	Label = "budget"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "budget_id"
	// FieldScopeType holds the string denoting the scope_type field in the database.
	FieldScopeType = "scope_type"
	// FieldScopeID holds the string denoting the scope_id field in the database.
	FieldScopeID = "scope_id"
	// FieldLimitUsd holds the string denoting the limit_usd field in the database.
	FieldLimitUsd = "limit_usd"
	// FieldSpentUsd holds the string denoting the spent_usd field in the database.
	FieldSpentUsd = "spent_usd"
	// FieldReservedUsd holds the string denoting the reserved_usd field in the database.
	FieldReservedUsd = "reserved_usd"
	// FieldPeriod holds the string denoting the period field in the database.
	FieldPeriod = "period"
	// FieldAlertThreshold holds the string denoting the alert_threshold field in the database.
	FieldAlertThreshold = "alert_threshold"
	// FieldAlerted holds the string denoting the alerted field in the database.
	FieldAlerted = "alerted"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the budget in the database.
	Table = "budgets"
)

// Columns holds all SQL columns for budget fields.
var Columns = []string{
	FieldID,
	FieldScopeType,
	FieldScopeID,
	FieldLimitUsd,
	FieldSpentUsd,
	FieldReservedUsd,
	FieldPeriod,
	FieldAlertThreshold,
	FieldAlerted,
	FieldVersion,
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
	// DefaultSpentUsd holds the default value on creation for the "spent_usd" field.
	DefaultSpentUsd float64
	// DefaultReservedUsd holds the default value on creation for the "reserved_usd" field.
	DefaultReservedUsd float64
	// DefaultPeriod holds the default value on creation for the "period" field.
	DefaultPeriod string
	// DefaultAlertThreshold holds the default value on creation for the "alert_threshold" field.
	DefaultAlertThreshold float64
	// DefaultAlerted holds the default value on creation for the "alerted" field.
	DefaultAlerted bool
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ScopeType defines the type for the "scope_type" enum field.
type ScopeType string

// ScopeType values.
const (
	ScopeTypeTask    ScopeType = "task"
	ScopeTypeAgent   ScopeType = "agent"
	ScopeTypeProject ScopeType = "project"
	ScopeTypeAccount ScopeType = "account"
)

func (st ScopeType) String() string {
	return string(st)
}

// ScopeTypeValidator is a validator for the "scope_type" field enum values. It is called by the builders before save.
func ScopeTypeValidator(st ScopeType) error {
	switch st {
	case ScopeTypeTask, ScopeTypeAgent, ScopeTypeProject, ScopeTypeAccount:
		return nil
	default:
		return fmt.Errorf("budget: invalid enum value for scope_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the Budget queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScopeType orders the results by the scope_type field.
func ByScopeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeType, opts...).ToFunc()
}

// ByScopeID orders the results by the scope_id field.
func ByScopeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScopeID, opts...).ToFunc()
}

// ByLimitUsd orders the results by the limit_usd field.
func ByLimitUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLimitUsd, opts...).ToFunc()
}

// BySpentUsd orders the results by the spent_usd field.
func BySpentUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpentUsd, opts...).ToFunc()
}

// ByReservedUsd orders the results by the reserved_usd field.
func ByReservedUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReservedUsd, opts...).ToFunc()
}

// ByPeriod orders the results by the period field.
func ByPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriod, opts...).ToFunc()
}

// ByAlertThreshold orders the results by the alert_threshold field.
func ByAlertThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertThreshold, opts...).ToFunc()
}

// ByAlerted orders the results by the alerted field.
func ByAlerted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlerted, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
