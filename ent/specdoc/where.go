// Code generated by ent, DO NOT EDIT.

package specdoc

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldDescription, v))
}

// LastCheckpointAt applies equality check predicate on the "last_checkpoint_at" field. It's identical to LastCheckpointAtEQ.
func LastCheckpointAt(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldLastCheckpointAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldLastError, v))
}

// ShareToken applies equality check predicate on the "share_token" field. It's identical to ShareTokenEQ.
func ShareToken(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldShareToken, v))
}

// Archived applies equality check predicate on the "archived" field. It's identical to ArchivedEQ.
func Archived(v bool) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldArchived, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldOwner, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldContainsFold(FieldDescription, v))
}

// CurrentPhaseEQ applies the EQ predicate on the "current_phase" field.
func CurrentPhaseEQ(v CurrentPhase) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldCurrentPhase, v))
}

// CurrentPhaseNEQ applies the NEQ predicate on the "current_phase" field.
func CurrentPhaseNEQ(v CurrentPhase) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNEQ(FieldCurrentPhase, v))
}

// CurrentPhaseIn applies the In predicate on the "current_phase" field.
func CurrentPhaseIn(vs ...CurrentPhase) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseNotIn applies the NotIn predicate on the "current_phase" field.
func CurrentPhaseNotIn(vs ...CurrentPhase) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotIn(FieldCurrentPhase, vs...))
}

// PhaseDataIsNil applies the IsNil predicate on the "phase_data" field.
func PhaseDataIsNil() predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIsNull(FieldPhaseData))
}

// PhaseDataNotNil applies the NotNil predicate on the "phase_data" field.
func PhaseDataNotNil() predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotNull(FieldPhaseData))
}

// SessionTranscriptsIsNil applies the IsNil predicate on the "session_transcripts" field.
func SessionTranscriptsIsNil() predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIsNull(FieldSessionTranscripts))
}

// SessionTranscriptsNotNil applies the NotNil predicate on the "session_transcripts" field.
func SessionTranscriptsNotNil() predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotNull(FieldSessionTranscripts))
}

// PhaseAttemptsIsNil applies the IsNil predicate on the "phase_attempts" field.
func PhaseAttemptsIsNil() predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIsNull(FieldPhaseAttempts))
}

// PhaseAttemptsNotNil applies the NotNil predicate on the "phase_attempts" field.
func PhaseAttemptsNotNil() predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotNull(FieldPhaseAttempts))
}

// LastCheckpointAtEQ applies the EQ predicate on the "last_checkpoint_at" field.
func LastCheckpointAtEQ(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldLastCheckpointAt, v))
}

// LastCheckpointAtNEQ applies the NEQ predicate on the "last_checkpoint_at" field.
func LastCheckpointAtNEQ(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNEQ(FieldLastCheckpointAt, v))
}

// LastCheckpointAtIn applies the In predicate on the "last_checkpoint_at" field.
func LastCheckpointAtIn(vs ...time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIn(FieldLastCheckpointAt, vs...))
}

// LastCheckpointAtNotIn applies the NotIn predicate on the "last_checkpoint_at" field.
func LastCheckpointAtNotIn(vs ...time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotIn(FieldLastCheckpointAt, vs...))
}

// LastCheckpointAtGT applies the GT predicate on the "last_checkpoint_at" field.
func LastCheckpointAtGT(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGT(FieldLastCheckpointAt, v))
}

// LastCheckpointAtGTE applies the GTE predicate on the "last_checkpoint_at" field.
func LastCheckpointAtGTE(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGTE(FieldLastCheckpointAt, v))
}

// LastCheckpointAtLT applies the LT predicate on the "last_checkpoint_at" field.
func LastCheckpointAtLT(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLT(FieldLastCheckpointAt, v))
}

// LastCheckpointAtLTE applies the LTE predicate on the "last_checkpoint_at" field.
func LastCheckpointAtLTE(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLTE(FieldLastCheckpointAt, v))
}

// LastCheckpointAtIsNil applies the IsNil predicate on the "last_checkpoint_at" field.
func LastCheckpointAtIsNil() predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIsNull(FieldLastCheckpointAt))
}

// LastCheckpointAtNotNil applies the NotNil predicate on the "last_checkpoint_at" field.
func LastCheckpointAtNotNil() predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotNull(FieldLastCheckpointAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldContainsFold(FieldLastError, v))
}

// ShareTokenEQ applies the EQ predicate on the "share_token" field.
func ShareTokenEQ(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldShareToken, v))
}

// ShareTokenNEQ applies the NEQ predicate on the "share_token" field.
func ShareTokenNEQ(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNEQ(FieldShareToken, v))
}

// ShareTokenIn applies the In predicate on the "share_token" field.
func ShareTokenIn(vs ...string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIn(FieldShareToken, vs...))
}

// ShareTokenNotIn applies the NotIn predicate on the "share_token" field.
func ShareTokenNotIn(vs ...string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotIn(FieldShareToken, vs...))
}

// ShareTokenGT applies the GT predicate on the "share_token" field.
func ShareTokenGT(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGT(FieldShareToken, v))
}

// ShareTokenGTE applies the GTE predicate on the "share_token" field.
func ShareTokenGTE(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGTE(FieldShareToken, v))
}

// ShareTokenLT applies the LT predicate on the "share_token" field.
func ShareTokenLT(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLT(FieldShareToken, v))
}

// ShareTokenLTE applies the LTE predicate on the "share_token" field.
func ShareTokenLTE(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLTE(FieldShareToken, v))
}

// ShareTokenContains applies the Contains predicate on the "share_token" field.
func ShareTokenContains(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldContains(FieldShareToken, v))
}

// ShareTokenHasPrefix applies the HasPrefix predicate on the "share_token" field.
func ShareTokenHasPrefix(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldHasPrefix(FieldShareToken, v))
}

// ShareTokenHasSuffix applies the HasSuffix predicate on the "share_token" field.
func ShareTokenHasSuffix(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldHasSuffix(FieldShareToken, v))
}

// ShareTokenIsNil applies the IsNil predicate on the "share_token" field.
func ShareTokenIsNil() predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIsNull(FieldShareToken))
}

// ShareTokenNotNil applies the NotNil predicate on the "share_token" field.
func ShareTokenNotNil() predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotNull(FieldShareToken))
}

// ShareTokenEqualFold applies the EqualFold predicate on the "share_token" field.
func ShareTokenEqualFold(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEqualFold(FieldShareToken, v))
}

// ShareTokenContainsFold applies the ContainsFold predicate on the "share_token" field.
func ShareTokenContainsFold(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldContainsFold(FieldShareToken, v))
}

// ArchivedEQ applies the EQ predicate on the "archived" field.
func ArchivedEQ(v bool) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldArchived, v))
}

// ArchivedNEQ applies the NEQ predicate on the "archived" field.
func ArchivedNEQ(v bool) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNEQ(FieldArchived, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerIsNil applies the IsNil predicate on the "owner" field.
func OwnerIsNil() predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIsNull(FieldOwner))
}

// OwnerNotNil applies the NotNil predicate on the "owner" field.
func OwnerNotNil() predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotNull(FieldOwner))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldContainsFold(FieldOwner, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SpecDoc {
	return predicate.SpecDoc(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SpecDoc) predicate.SpecDoc {
	return predicate.SpecDoc(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SpecDoc) predicate.SpecDoc {
	return predicate.SpecDoc(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SpecDoc) predicate.SpecDoc {
	return predicate.SpecDoc(sql.NotPredicates(p))
}
