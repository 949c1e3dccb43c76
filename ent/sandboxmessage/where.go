// Code generated by ent, DO NOT EDIT.

package sandboxmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldLTE(FieldID, id))
}

// SandboxID applies equality check predicate on the "sandbox_id" field. It's identical to SandboxIDEQ.
func SandboxID(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEQ(FieldSandboxID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEQ(FieldContent, v))
}

// Cancel applies equality check predicate on the "cancel" field. It's identical to CancelEQ.
func Cancel(v bool) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEQ(FieldCancel, v))
}

// Acked applies equality check predicate on the "acked" field. It's identical to AckedEQ.
func Acked(v bool) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEQ(FieldAcked, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// SandboxIDEQ applies the EQ predicate on the "sandbox_id" field.
func SandboxIDEQ(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEQ(FieldSandboxID, v))
}

// SandboxIDNEQ applies the NEQ predicate on the "sandbox_id" field.
func SandboxIDNEQ(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldNEQ(FieldSandboxID, v))
}

// SandboxIDIn applies the In predicate on the "sandbox_id" field.
func SandboxIDIn(vs ...string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldIn(FieldSandboxID, vs...))
}

// SandboxIDNotIn applies the NotIn predicate on the "sandbox_id" field.
func SandboxIDNotIn(vs ...string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldNotIn(FieldSandboxID, vs...))
}

// SandboxIDGT applies the GT predicate on the "sandbox_id" field.
func SandboxIDGT(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldGT(FieldSandboxID, v))
}

// SandboxIDGTE applies the GTE predicate on the "sandbox_id" field.
func SandboxIDGTE(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldGTE(FieldSandboxID, v))
}

// SandboxIDLT applies the LT predicate on the "sandbox_id" field.
func SandboxIDLT(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldLT(FieldSandboxID, v))
}

// SandboxIDLTE applies the LTE predicate on the "sandbox_id" field.
func SandboxIDLTE(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldLTE(FieldSandboxID, v))
}

// SandboxIDContains applies the Contains predicate on the "sandbox_id" field.
func SandboxIDContains(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldContains(FieldSandboxID, v))
}

// SandboxIDHasPrefix applies the HasPrefix predicate on the "sandbox_id" field.
func SandboxIDHasPrefix(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldHasPrefix(FieldSandboxID, v))
}

// SandboxIDHasSuffix applies the HasSuffix predicate on the "sandbox_id" field.
func SandboxIDHasSuffix(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldHasSuffix(FieldSandboxID, v))
}

// SandboxIDEqualFold applies the EqualFold predicate on the "sandbox_id" field.
func SandboxIDEqualFold(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEqualFold(FieldSandboxID, v))
}

// SandboxIDContainsFold applies the ContainsFold predicate on the "sandbox_id" field.
func SandboxIDContainsFold(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldContainsFold(FieldSandboxID, v))
}

// MessageTypeEQ applies the EQ predicate on the "message_type" field.
func MessageTypeEQ(v MessageType) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEQ(FieldMessageType, v))
}

// MessageTypeNEQ applies the NEQ predicate on the "message_type" field.
func MessageTypeNEQ(v MessageType) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldNEQ(FieldMessageType, v))
}

// MessageTypeIn applies the In predicate on the "message_type" field.
func MessageTypeIn(vs ...MessageType) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldIn(FieldMessageType, vs...))
}

// MessageTypeNotIn applies the NotIn predicate on the "message_type" field.
func MessageTypeNotIn(vs ...MessageType) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldNotIn(FieldMessageType, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldContainsFold(FieldContent, v))
}

// CancelEQ applies the EQ predicate on the "cancel" field.
func CancelEQ(v bool) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEQ(FieldCancel, v))
}

// CancelNEQ applies the NEQ predicate on the "cancel" field.
func CancelNEQ(v bool) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldNEQ(FieldCancel, v))
}

// AckedEQ applies the EQ predicate on the "acked" field.
func AckedEQ(v bool) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEQ(FieldAcked, v))
}

// AckedNEQ applies the NEQ predicate on the "acked" field.
func AckedNEQ(v bool) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldNEQ(FieldAcked, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SandboxMessage) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SandboxMessage) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SandboxMessage) predicate.SandboxMessage {
	return predicate.SandboxMessage(sql.NotPredicates(p))
}
