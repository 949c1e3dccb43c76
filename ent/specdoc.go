// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/helmsman-ai/helmsman/ent/specdoc"
)

// SpecDoc is the model entity for the SpecDoc schema.
type SpecDoc struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Full-text searchable (GIN index created by migration)
	Description string `json:"description,omitempty"`
	// CurrentPhase holds the value of the "current_phase" field.
	CurrentPhase specdoc.CurrentPhase `json:"current_phase,omitempty"`
	// phase → accumulated context; a phase's entry is frozen once the next phase begins
	PhaseData map[string]interface{} `json:"phase_data,omitempty"`
	// phase → base64 transcript blob, for resuming in a fresh sandbox
	SessionTranscripts map[string]string `json:"session_transcripts,omitempty"`
	// PhaseAttempts holds the value of the "phase_attempts" field.
	PhaseAttempts map[string]int `json:"phase_attempts,omitempty"`
	// LastCheckpointAt holds the value of the "last_checkpoint_at" field.
	LastCheckpointAt *time.Time `json:"last_checkpoint_at,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// ShareToken holds the value of the "share_token" field.
	ShareToken *string `json:"share_token,omitempty"`
	// Archived holds the value of the "archived" field.
	Archived bool `json:"archived,omitempty"`
	// Owner holds the value of the "owner" field.
	Owner string `json:"owner,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SpecDoc) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case specdoc.FieldPhaseData, specdoc.FieldSessionTranscripts, specdoc.FieldPhaseAttempts:
			values[i] = new([]byte)
		case specdoc.FieldArchived:
			values[i] = new(sql.NullBool)
		case specdoc.FieldVersion:
			values[i] = new(sql.NullInt64)
		case specdoc.FieldID, specdoc.FieldTitle, specdoc.FieldDescription, specdoc.FieldCurrentPhase, specdoc.FieldLastError, specdoc.FieldShareToken, specdoc.FieldOwner:
			values[i] = new(sql.NullString)
		case specdoc.FieldLastCheckpointAt, specdoc.FieldCreatedAt, specdoc.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SpecDoc fields.
func (_m *SpecDoc) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case specdoc.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case specdoc.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case specdoc.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case specdoc.FieldCurrentPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_phase", values[i])
			} else if value.Valid {
				_m.CurrentPhase = specdoc.CurrentPhase(value.String)
			}
		case specdoc.FieldPhaseData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field phase_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PhaseData); err != nil {
					return fmt.Errorf("unmarshal field phase_data: %w", err)
				}
			}
		case specdoc.FieldSessionTranscripts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field session_transcripts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SessionTranscripts); err != nil {
					return fmt.Errorf("unmarshal field session_transcripts: %w", err)
				}
			}
		case specdoc.FieldPhaseAttempts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field phase_attempts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PhaseAttempts); err != nil {
					return fmt.Errorf("unmarshal field phase_attempts: %w", err)
				}
			}
		case specdoc.FieldLastCheckpointAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_checkpoint_at", values[i])
			} else if value.Valid {
				_m.LastCheckpointAt = new(time.Time)
				*_m.LastCheckpointAt = value.Time
			}
		case specdoc.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case specdoc.FieldShareToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field share_token", values[i])
			} else if value.Valid {
				_m.ShareToken = new(string)
				*_m.ShareToken = value.String
			}
		case specdoc.FieldArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field archived", values[i])
			} else if value.Valid {
				_m.Archived = value.Bool
			}
		case specdoc.FieldOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner", values[i])
			} else if value.Valid {
				_m.Owner = value.String
			}
		case specdoc.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case specdoc.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case specdoc.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SpecDoc.
// This includes values selected through modifiers, order, etc.
func (_m *SpecDoc) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SpecDoc.
// Note that you need to call SpecDoc.Unwrap() before calling this method if this SpecDoc
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SpecDoc) Update() *SpecDocUpdateOne {
	return NewSpecDocClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SpecDoc entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SpecDoc) Unwrap() *SpecDoc {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SpecDoc is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SpecDoc) String() string {
	var builder strings.Builder
	builder.WriteString("SpecDoc(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("current_phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentPhase))
	builder.WriteString(", ")
	builder.WriteString("phase_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhaseData))
	builder.WriteString(", ")
	builder.WriteString("session_transcripts=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionTranscripts))
	builder.WriteString(", ")
	builder.WriteString("phase_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhaseAttempts))
	builder.WriteString(", ")
	if v := _m.LastCheckpointAt; v != nil {
		builder.WriteString("last_checkpoint_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ShareToken; v != nil {
		builder.WriteString("share_token=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.Archived))
	builder.WriteString(", ")
	builder.WriteString("owner=")
	builder.WriteString(_m.Owner)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SpecDocs is a parsable slice of SpecDoc.
type SpecDocs []*SpecDoc
