// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aulalab/aula/ent/traceevent"
)

// TraceEvent is the model entity for the TraceEvent schema.
type TraceEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionKey holds the value of the "session_key" field.
	SessionKey string `json:"session_key,omitempty"`
	// StepCode holds the value of the "step_code" field.
	StepCode string `json:"step_code,omitempty"`
	// Feedback sequence label: F0, F1, F2
	Label string `json:"label,omitempty"`
	// Classification verdict: ACCEPT, PARTIAL, HINT, REFOCUS
	Kind string `json:"kind,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// Response holds the value of the "response" field.
	Response string `json:"response,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback string `json:"feedback,omitempty"`
	// Attempt holds the value of the "attempt" field.
	Attempt int `json:"attempt,omitempty"`
	// HintsUsed holds the value of the "hints_used" field.
	HintsUsed    int `json:"hints_used,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TraceEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case traceevent.FieldID, traceevent.FieldSequence, traceevent.FieldAttempt, traceevent.FieldHintsUsed:
			values[i] = new(sql.NullInt64)
		case traceevent.FieldSessionKey, traceevent.FieldStepCode, traceevent.FieldLabel, traceevent.FieldKind, traceevent.FieldPrompt, traceevent.FieldResponse, traceevent.FieldFeedback:
			values[i] = new(sql.NullString)
		case traceevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TraceEvent fields.
func (_m *TraceEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case traceevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case traceevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case traceevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case traceevent.FieldSessionKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_key", values[i])
			} else if value.Valid {
				_m.SessionKey = value.String
			}
		case traceevent.FieldStepCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_code", values[i])
			} else if value.Valid {
				_m.StepCode = value.String
			}
		case traceevent.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case traceevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case traceevent.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case traceevent.FieldResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value.Valid {
				_m.Response = value.String
			}
		case traceevent.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		case traceevent.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case traceevent.FieldHintsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hints_used", values[i])
			} else if value.Valid {
				_m.HintsUsed = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TraceEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TraceEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TraceEvent.
// Note that you need to call TraceEvent.Unwrap() before calling this method if this TraceEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TraceEvent) Update() *TraceEventUpdateOne {
	return NewTraceEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TraceEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TraceEvent) Unwrap() *TraceEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TraceEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TraceEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TraceEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_key=")
	builder.WriteString(_m.SessionKey)
	builder.WriteString(", ")
	builder.WriteString("step_code=")
	builder.WriteString(_m.StepCode)
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("response=")
	builder.WriteString(_m.Response)
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("hints_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintsUsed))
	builder.WriteByte(')')
	return builder.String()
}

// TraceEvents is a parsable slice of TraceEvent.
type TraceEvents []*TraceEvent
