// Code generated by ent, DO NOT EDIT.

package sandboxmessage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sandboxmessage type in the database.
	Label = "sandbox_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSandboxID holds the string denoting the sandbox_id field in the database.
	FieldSandboxID = "sandbox_id"
	// FieldMessageType holds the string denoting the message_type field in the database.
	FieldMessageType = "message_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldCancel holds the string denoting the cancel field in the database.
	FieldCancel = "cancel"
	// FieldAcked holds the string denoting the acked field in the database.
	FieldAcked = "acked"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the sandboxmessage in the database.
	Table = "sandbox_messages"
)

// Columns holds all SQL columns for sandboxmessage fields.
var Columns = []string{
	FieldID,
	FieldSandboxID,
	FieldMessageType,
	FieldContent,
	FieldCancel,
	FieldAcked,
	FieldCreatedAt,
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
	// DefaultCancel holds the default value on creation for the "cancel" field.
	DefaultCancel bool
	// DefaultAcked holds the default value on creation for the "acked" field.
	DefaultAcked bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// MessageType defines the type for the "message_type" enum field.
type MessageType string

// MessageType values.
const (
	MessageTypeUserMessage   MessageType = "user_message"
	MessageTypeInterrupt     MessageType = "interrupt"
	MessageTypeGuardianNudge MessageType = "guardian_nudge"
	MessageTypeSystem        MessageType = "system"
)

func (mt MessageType) String() string {
	return string(mt)
}

// MessageTypeValidator is a validator for the "message_type" field enum values. It is called by the builders before save.
func MessageTypeValidator(mt MessageType) error {
	switch mt {
	case MessageTypeUserMessage, MessageTypeInterrupt, MessageTypeGuardianNudge, MessageTypeSystem:
		return nil
	default:
		return fmt.Errorf("sandboxmessage: invalid enum value for message_type field: %q", mt)
	}
}

// OrderOption defines the ordering options for the SandboxMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySandboxID orders the results by the sandbox_id field.
func BySandboxID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSandboxID, opts...).ToFunc()
}

// ByMessageType orders the results by the message_type field.
func ByMessageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCancel orders the results by the cancel field.
func ByCancel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancel, opts...).ToFunc()
}

// ByAcked orders the results by the acked field.
func ByAcked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcked, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
