// Code generated by ent, DO NOT EDIT.

package specdoc

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the specdoc type in the database.
	Label = "spec_doc"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "spec_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCurrentPhase holds the string denoting the current_phase field in the database.
	FieldCurrentPhase = "current_phase"
	// FieldPhaseData holds the string denoting the phase_data field in the database.
	FieldPhaseData = "phase_data"
	// FieldSessionTranscripts holds the string denoting the session_transcripts field in the database.
	FieldSessionTranscripts = "session_transcripts"
	// FieldPhaseAttempts holds the string denoting the phase_attempts field in the database.
	FieldPhaseAttempts = "phase_attempts"
	// FieldLastCheckpointAt holds the string denoting the last_checkpoint_at field in the database.
	FieldLastCheckpointAt = "last_checkpoint_at"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldShareToken holds the string denoting the share_token field in the database.
	FieldShareToken = "share_token"
	// FieldArchived holds the string denoting the archived field in the database.
	FieldArchived = "archived"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the specdoc in the database.
	Table = "spec_docs"
)

// Columns holds all SQL columns for specdoc fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldCurrentPhase,
	FieldPhaseData,
	FieldSessionTranscripts,
	FieldPhaseAttempts,
	FieldLastCheckpointAt,
	FieldLastError,
	FieldShareToken,
	FieldArchived,
	FieldOwner,
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
	// DefaultArchived holds the default value on creation for the "archived" field.
	DefaultArchived bool
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// CurrentPhase defines the type for the "current_phase" enum field.
type CurrentPhase string

// CurrentPhaseExplore is the default value of the CurrentPhase enum.
const DefaultCurrentPhase = CurrentPhaseExplore

// CurrentPhase values.
const (
	CurrentPhaseExplore      CurrentPhase = "explore"
	CurrentPhaseRequirements CurrentPhase = "requirements"
	CurrentPhaseDesign       CurrentPhase = "design"
	CurrentPhaseTasks        CurrentPhase = "tasks"
	CurrentPhaseSync         CurrentPhase = "sync"
	CurrentPhaseComplete     CurrentPhase = "complete"
)

func (cp CurrentPhase) String() string {
	return string(cp)
}

// CurrentPhaseValidator is a validator for the "current_phase" field enum values. It is called by the builders before save.
func CurrentPhaseValidator(cp CurrentPhase) error {
	switch cp {
	case CurrentPhaseExplore, CurrentPhaseRequirements, CurrentPhaseDesign, CurrentPhaseTasks, CurrentPhaseSync, CurrentPhaseComplete:
		return nil
	default:
		return fmt.Errorf("specdoc: invalid enum value for current_phase field: %q", cp)
	}
}

// OrderOption defines the ordering options for the SpecDoc queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCurrentPhase orders the results by the current_phase field.
func ByCurrentPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPhase, opts...).ToFunc()
}

// ByLastCheckpointAt orders the results by the last_checkpoint_at field.
func ByLastCheckpointAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCheckpointAt, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByShareToken orders the results by the share_token field.
func ByShareToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShareToken, opts...).ToFunc()
}

// ByArchived orders the results by the archived field.
func ByArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchived, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
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
