// Code generated by ent, DO NOT EDIT.

package sandboxevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldID, id))
}

// EventKey applies equality check predicate on the "event_key" field. It's identical to EventKeyEQ.
func EventKey(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldEventKey, v))
}

// SandboxID applies equality check predicate on the "sandbox_id" field. It's identical to SandboxIDEQ.
func SandboxID(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldSandboxID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldEventType, v))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldEntityType, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldEntityID, v))
}

// SpecID applies equality check predicate on the "spec_id" field. It's identical to SpecIDEQ.
func SpecID(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldSpecID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// EventKeyEQ applies the EQ predicate on the "event_key" field.
func EventKeyEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldEventKey, v))
}

// EventKeyNEQ applies the NEQ predicate on the "event_key" field.
func EventKeyNEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldEventKey, v))
}

// EventKeyIn applies the In predicate on the "event_key" field.
func EventKeyIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldEventKey, vs...))
}

// EventKeyNotIn applies the NotIn predicate on the "event_key" field.
func EventKeyNotIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldEventKey, vs...))
}

// EventKeyGT applies the GT predicate on the "event_key" field.
func EventKeyGT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldEventKey, v))
}

// EventKeyGTE applies the GTE predicate on the "event_key" field.
func EventKeyGTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldEventKey, v))
}

// EventKeyLT applies the LT predicate on the "event_key" field.
func EventKeyLT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldEventKey, v))
}

// EventKeyLTE applies the LTE predicate on the "event_key" field.
func EventKeyLTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldEventKey, v))
}

// EventKeyContains applies the Contains predicate on the "event_key" field.
func EventKeyContains(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContains(FieldEventKey, v))
}

// EventKeyHasPrefix applies the HasPrefix predicate on the "event_key" field.
func EventKeyHasPrefix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasPrefix(FieldEventKey, v))
}

// EventKeyHasSuffix applies the HasSuffix predicate on the "event_key" field.
func EventKeyHasSuffix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasSuffix(FieldEventKey, v))
}

// EventKeyEqualFold applies the EqualFold predicate on the "event_key" field.
func EventKeyEqualFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEqualFold(FieldEventKey, v))
}

// EventKeyContainsFold applies the ContainsFold predicate on the "event_key" field.
func EventKeyContainsFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContainsFold(FieldEventKey, v))
}

// SandboxIDEQ applies the EQ predicate on the "sandbox_id" field.
func SandboxIDEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldSandboxID, v))
}

// SandboxIDNEQ applies the NEQ predicate on the "sandbox_id" field.
func SandboxIDNEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldSandboxID, v))
}

// SandboxIDIn applies the In predicate on the "sandbox_id" field.
func SandboxIDIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldSandboxID, vs...))
}

// SandboxIDNotIn applies the NotIn predicate on the "sandbox_id" field.
func SandboxIDNotIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldSandboxID, vs...))
}

// SandboxIDGT applies the GT predicate on the "sandbox_id" field.
func SandboxIDGT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldSandboxID, v))
}

// SandboxIDGTE applies the GTE predicate on the "sandbox_id" field.
func SandboxIDGTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldSandboxID, v))
}

// SandboxIDLT applies the LT predicate on the "sandbox_id" field.
func SandboxIDLT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldSandboxID, v))
}

// SandboxIDLTE applies the LTE predicate on the "sandbox_id" field.
func SandboxIDLTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldSandboxID, v))
}

// SandboxIDContains applies the Contains predicate on the "sandbox_id" field.
func SandboxIDContains(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContains(FieldSandboxID, v))
}

// SandboxIDHasPrefix applies the HasPrefix predicate on the "sandbox_id" field.
func SandboxIDHasPrefix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasPrefix(FieldSandboxID, v))
}

// SandboxIDHasSuffix applies the HasSuffix predicate on the "sandbox_id" field.
func SandboxIDHasSuffix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasSuffix(FieldSandboxID, v))
}

// SandboxIDEqualFold applies the EqualFold predicate on the "sandbox_id" field.
func SandboxIDEqualFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEqualFold(FieldSandboxID, v))
}

// SandboxIDContainsFold applies the ContainsFold predicate on the "sandbox_id" field.
func SandboxIDContainsFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContainsFold(FieldSandboxID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContainsFold(FieldEventType, v))
}

// EventDataIsNil applies the IsNil predicate on the "event_data" field.
func EventDataIsNil() predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIsNull(FieldEventData))
}

// EventDataNotNil applies the NotNil predicate on the "event_data" field.
func EventDataNotNil() predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotNull(FieldEventData))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldSource, vs...))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeIsNil applies the IsNil predicate on the "entity_type" field.
func EntityTypeIsNil() predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIsNull(FieldEntityType))
}

// EntityTypeNotNil applies the NotNil predicate on the "entity_type" field.
func EntityTypeNotNil() predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotNull(FieldEntityType))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContainsFold(FieldEntityType, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDIsNil applies the IsNil predicate on the "entity_id" field.
func EntityIDIsNil() predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIsNull(FieldEntityID))
}

// EntityIDNotNil applies the NotNil predicate on the "entity_id" field.
func EntityIDNotNil() predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotNull(FieldEntityID))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContainsFold(FieldEntityID, v))
}

// SpecIDEQ applies the EQ predicate on the "spec_id" field.
func SpecIDEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldSpecID, v))
}

// SpecIDNEQ applies the NEQ predicate on the "spec_id" field.
func SpecIDNEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldSpecID, v))
}

// SpecIDIn applies the In predicate on the "spec_id" field.
func SpecIDIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldSpecID, vs...))
}

// SpecIDNotIn applies the NotIn predicate on the "spec_id" field.
func SpecIDNotIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldSpecID, vs...))
}

// SpecIDGT applies the GT predicate on the "spec_id" field.
func SpecIDGT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldSpecID, v))
}

// SpecIDGTE applies the GTE predicate on the "spec_id" field.
func SpecIDGTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldSpecID, v))
}

// SpecIDLT applies the LT predicate on the "spec_id" field.
func SpecIDLT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldSpecID, v))
}

// SpecIDLTE applies the LTE predicate on the "spec_id" field.
func SpecIDLTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldSpecID, v))
}

// SpecIDContains applies the Contains predicate on the "spec_id" field.
func SpecIDContains(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContains(FieldSpecID, v))
}

// SpecIDHasPrefix applies the HasPrefix predicate on the "spec_id" field.
func SpecIDHasPrefix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasPrefix(FieldSpecID, v))
}

// SpecIDHasSuffix applies the HasSuffix predicate on the "spec_id" field.
func SpecIDHasSuffix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasSuffix(FieldSpecID, v))
}

// SpecIDIsNil applies the IsNil predicate on the "spec_id" field.
func SpecIDIsNil() predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIsNull(FieldSpecID))
}

// SpecIDNotNil applies the NotNil predicate on the "spec_id" field.
func SpecIDNotNil() predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotNull(FieldSpecID))
}

// SpecIDEqualFold applies the EqualFold predicate on the "spec_id" field.
func SpecIDEqualFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEqualFold(FieldSpecID, v))
}

// SpecIDContainsFold applies the ContainsFold predicate on the "spec_id" field.
func SpecIDContainsFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContainsFold(FieldSpecID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SandboxEvent) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SandboxEvent) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SandboxEvent) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.NotPredicates(p))
}
