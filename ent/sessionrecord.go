// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aulalab/aula/ent/sessionrecord"
)

// SessionRecord is the model entity for the SessionRecord schema.
type SessionRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionKey holds the value of the "session_key" field.
	SessionKey string `json:"session_key,omitempty"`
	// SessionState serialized as JSON
	State string `json:"state,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case sessionrecord.FieldSessionKey, sessionrecord.FieldState:
			values[i] = new(sql.NullString)
		case sessionrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionRecord fields.
func (_m *SessionRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionrecord.FieldSessionKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_key", values[i])
			} else if value.Valid {
				_m.SessionKey = value.String
			}
		case sessionrecord.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case sessionrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SessionRecord.
// This includes values selected through modifiers, order, etc.
func (_m *SessionRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionRecord.
// Note that you need to call SessionRecord.Unwrap() before calling this method if this SessionRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionRecord) Update() *SessionRecordUpdateOne {
	return NewSessionRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionRecord) Unwrap() *SessionRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionRecord) String() string {
	var builder strings.Builder
	builder.WriteString("SessionRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_key=")
	builder.WriteString(_m.SessionKey)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionRecords is a parsable slice of SessionRecord.
type SessionRecords []*SessionRecord
