// Code generated by ent, DO NOT EDIT.

package budget

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Budget {
	return predicate.Budget(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Budget {
	return predicate.Budget(sql.FieldContainsFold(FieldID, id))
}

// ScopeID applies equality check predicate on the "scope_id" field. It's identical to ScopeIDEQ.
func ScopeID(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldScopeID, v))
}

// LimitUsd applies equality check predicate on the "limit_usd" field. It's identical to LimitUsdEQ.
func LimitUsd(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldLimitUsd, v))
}

// SpentUsd applies equality check predicate on the "spent_usd" field. It's identical to SpentUsdEQ.
func SpentUsd(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldSpentUsd, v))
}

// ReservedUsd applies equality check predicate on the "reserved_usd" field. It's identical to ReservedUsdEQ.
func ReservedUsd(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldReservedUsd, v))
}

// Period applies equality check predicate on the "period" field. It's identical to PeriodEQ.
func Period(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldPeriod, v))
}

// AlertThreshold applies equality check predicate on the "alert_threshold" field. It's identical to AlertThresholdEQ.
func AlertThreshold(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAlertThreshold, v))
}

// Alerted applies equality check predicate on the "alerted" field. It's identical to AlertedEQ.
func Alerted(v bool) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAlerted, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldUpdatedAt, v))
}

// ScopeTypeEQ applies the EQ predicate on the "scope_type" field.
func ScopeTypeEQ(v ScopeType) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldScopeType, v))
}

// ScopeTypeNEQ applies the NEQ predicate on the "scope_type" field.
func ScopeTypeNEQ(v ScopeType) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldScopeType, v))
}

// ScopeTypeIn applies the In predicate on the "scope_type" field.
func ScopeTypeIn(vs ...ScopeType) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldScopeType, vs...))
}

// ScopeTypeNotIn applies the NotIn predicate on the "scope_type" field.
func ScopeTypeNotIn(vs ...ScopeType) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldScopeType, vs...))
}

// ScopeIDEQ applies the EQ predicate on the "scope_id" field.
func ScopeIDEQ(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldScopeID, v))
}

// ScopeIDNEQ applies the NEQ predicate on the "scope_id" field.
func ScopeIDNEQ(v string) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldScopeID, v))
}

// ScopeIDIn applies the In predicate on the "scope_id" field.
func ScopeIDIn(vs ...string) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldScopeID, vs...))
}

// ScopeIDNotIn applies the NotIn predicate on the "scope_id" field.
func ScopeIDNotIn(vs ...string) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldScopeID, vs...))
}

// ScopeIDGT applies the GT predicate on the "scope_id" field.
func ScopeIDGT(v string) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldScopeID, v))
}

// ScopeIDGTE applies the GTE predicate on the "scope_id" field.
func ScopeIDGTE(v string) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldScopeID, v))
}

// ScopeIDLT applies the LT predicate on the "scope_id" field.
func ScopeIDLT(v string) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldScopeID, v))
}

// ScopeIDLTE applies the LTE predicate on the "scope_id" field.
func ScopeIDLTE(v string) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldScopeID, v))
}

// ScopeIDContains applies the Contains predicate on the "scope_id" field.
func ScopeIDContains(v string) predicate.Budget {
	return predicate.Budget(sql.FieldContains(FieldScopeID, v))
}

// ScopeIDHasPrefix applies the HasPrefix predicate on the "scope_id" field.
func ScopeIDHasPrefix(v string) predicate.Budget {
	return predicate.Budget(sql.FieldHasPrefix(FieldScopeID, v))
}

// ScopeIDHasSuffix applies the HasSuffix predicate on the "scope_id" field.
func ScopeIDHasSuffix(v string) predicate.Budget {
	return predicate.Budget(sql.FieldHasSuffix(FieldScopeID, v))
}

// ScopeIDEqualFold applies the EqualFold predicate on the "scope_id" field.
func ScopeIDEqualFold(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEqualFold(FieldScopeID, v))
}

// ScopeIDContainsFold applies the ContainsFold predicate on the "scope_id" field.
func ScopeIDContainsFold(v string) predicate.Budget {
	return predicate.Budget(sql.FieldContainsFold(FieldScopeID, v))
}

// LimitUsdEQ applies the EQ predicate on the "limit_usd" field.
func LimitUsdEQ(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldLimitUsd, v))
}

// LimitUsdNEQ applies the NEQ predicate on the "limit_usd" field.
func LimitUsdNEQ(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldLimitUsd, v))
}

// LimitUsdIn applies the In predicate on the "limit_usd" field.
func LimitUsdIn(vs ...float64) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldLimitUsd, vs...))
}

// LimitUsdNotIn applies the NotIn predicate on the "limit_usd" field.
func LimitUsdNotIn(vs ...float64) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldLimitUsd, vs...))
}

// LimitUsdGT applies the GT predicate on the "limit_usd" field.
func LimitUsdGT(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldLimitUsd, v))
}

// LimitUsdGTE applies the GTE predicate on the "limit_usd" field.
func LimitUsdGTE(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldLimitUsd, v))
}

// LimitUsdLT applies the LT predicate on the "limit_usd" field.
func LimitUsdLT(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldLimitUsd, v))
}

// LimitUsdLTE applies the LTE predicate on the "limit_usd" field.
func LimitUsdLTE(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldLimitUsd, v))
}

// SpentUsdEQ applies the EQ predicate on the "spent_usd" field.
func SpentUsdEQ(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldSpentUsd, v))
}

// SpentUsdNEQ applies the NEQ predicate on the "spent_usd" field.
func SpentUsdNEQ(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldSpentUsd, v))
}

// SpentUsdIn applies the In predicate on the "spent_usd" field.
func SpentUsdIn(vs ...float64) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldSpentUsd, vs...))
}

// SpentUsdNotIn applies the NotIn predicate on the "spent_usd" field.
func SpentUsdNotIn(vs ...float64) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldSpentUsd, vs...))
}

// SpentUsdGT applies the GT predicate on the "spent_usd" field.
func SpentUsdGT(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldSpentUsd, v))
}

// SpentUsdGTE applies the GTE predicate on the "spent_usd" field.
func SpentUsdGTE(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldSpentUsd, v))
}

// SpentUsdLT applies the LT predicate on the "spent_usd" field.
func SpentUsdLT(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldSpentUsd, v))
}

// SpentUsdLTE applies the LTE predicate on the "spent_usd" field.
func SpentUsdLTE(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldSpentUsd, v))
}

// ReservedUsdEQ applies the EQ predicate on the "reserved_usd" field.
func ReservedUsdEQ(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldReservedUsd, v))
}

// ReservedUsdNEQ applies the NEQ predicate on the "reserved_usd" field.
func ReservedUsdNEQ(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldReservedUsd, v))
}

// ReservedUsdIn applies the In predicate on the "reserved_usd" field.
func ReservedUsdIn(vs ...float64) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldReservedUsd, vs...))
}

// ReservedUsdNotIn applies the NotIn predicate on the "reserved_usd" field.
func ReservedUsdNotIn(vs ...float64) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldReservedUsd, vs...))
}

// ReservedUsdGT applies the GT predicate on the "reserved_usd" field.
func ReservedUsdGT(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldReservedUsd, v))
}

// ReservedUsdGTE applies the GTE predicate on the "reserved_usd" field.
func ReservedUsdGTE(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldReservedUsd, v))
}

// ReservedUsdLT applies the LT predicate on the "reserved_usd" field.
func ReservedUsdLT(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldReservedUsd, v))
}

// ReservedUsdLTE applies the LTE predicate on the "reserved_usd" field.
func ReservedUsdLTE(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldReservedUsd, v))
}

// PeriodEQ applies the EQ predicate on the "period" field.
func PeriodEQ(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldPeriod, v))
}

// PeriodNEQ applies the NEQ predicate on the "period" field.
func PeriodNEQ(v string) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldPeriod, v))
}

// PeriodIn applies the In predicate on the "period" field.
func PeriodIn(vs ...string) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldPeriod, vs...))
}

// PeriodNotIn applies the NotIn predicate on the "period" field.
func PeriodNotIn(vs ...string) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldPeriod, vs...))
}

// PeriodGT applies the GT predicate on the "period" field.
func PeriodGT(v string) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldPeriod, v))
}

// PeriodGTE applies the GTE predicate on the "period" field.
func PeriodGTE(v string) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldPeriod, v))
}

// PeriodLT applies the LT predicate on the "period" field.
func PeriodLT(v string) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldPeriod, v))
}

// PeriodLTE applies the LTE predicate on the "period" field.
func PeriodLTE(v string) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldPeriod, v))
}

// PeriodContains applies the Contains predicate on the "period" field.
func PeriodContains(v string) predicate.Budget {
	return predicate.Budget(sql.FieldContains(FieldPeriod, v))
}

// PeriodHasPrefix applies the HasPrefix predicate on the "period" field.
func PeriodHasPrefix(v string) predicate.Budget {
	return predicate.Budget(sql.FieldHasPrefix(FieldPeriod, v))
}

// PeriodHasSuffix applies the HasSuffix predicate on the "period" field.
func PeriodHasSuffix(v string) predicate.Budget {
	return predicate.Budget(sql.FieldHasSuffix(FieldPeriod, v))
}

// PeriodEqualFold applies the EqualFold predicate on the "period" field.
func PeriodEqualFold(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEqualFold(FieldPeriod, v))
}

// PeriodContainsFold applies the ContainsFold predicate on the "period" field.
func PeriodContainsFold(v string) predicate.Budget {
	return predicate.Budget(sql.FieldContainsFold(FieldPeriod, v))
}

// AlertThresholdEQ applies the EQ predicate on the "alert_threshold" field.
func AlertThresholdEQ(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAlertThreshold, v))
}

// AlertThresholdNEQ applies the NEQ predicate on the "alert_threshold" field.
func AlertThresholdNEQ(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldAlertThreshold, v))
}

// AlertThresholdIn applies the In predicate on the "alert_threshold" field.
func AlertThresholdIn(vs ...float64) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldAlertThreshold, vs...))
}

// AlertThresholdNotIn applies the NotIn predicate on the "alert_threshold" field.
func AlertThresholdNotIn(vs ...float64) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldAlertThreshold, vs...))
}

// AlertThresholdGT applies the GT predicate on the "alert_threshold" field.
func AlertThresholdGT(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldAlertThreshold, v))
}

// AlertThresholdGTE applies the GTE predicate on the "alert_threshold" field.
func AlertThresholdGTE(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldAlertThreshold, v))
}

// AlertThresholdLT applies the LT predicate on the "alert_threshold" field.
func AlertThresholdLT(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldAlertThreshold, v))
}

// AlertThresholdLTE applies the LTE predicate on the "alert_threshold" field.
func AlertThresholdLTE(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldAlertThreshold, v))
}

// AlertedEQ applies the EQ predicate on the "alerted" field.
func AlertedEQ(v bool) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAlerted, v))
}

// AlertedNEQ applies the NEQ predicate on the "alerted" field.
func AlertedNEQ(v bool) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldAlerted, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Budget) predicate.Budget {
	return predicate.Budget(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Budget) predicate.Budget {
	return predicate.Budget(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Budget) predicate.Budget {
	return predicate.Budget(sql.NotPredicates(p))
}
