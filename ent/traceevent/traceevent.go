// Code generated by ent, DO NOT EDIT.

package traceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the traceevent type in the database.
	Label = "trace_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionKey holds the string denoting the session_key field in the database.
	FieldSessionKey = "session_key"
	// FieldStepCode holds the string denoting the step_code field in the database.
	FieldStepCode = "step_code"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldResponse holds the string denoting the response field in the database.
	FieldResponse = "response"
	// FieldFeedback holds the string denoting the feedback field in the database.
	FieldFeedback = "feedback"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldHintsUsed holds the string denoting the hints_used field in the database.
	FieldHintsUsed = "hints_used"
	// Table holds the table name of the traceevent in the database.
	Table = "trace_events"
)

// Columns holds all SQL columns for traceevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionKey,
	FieldStepCode,
	FieldLabel,
	FieldKind,
	FieldPrompt,
	FieldResponse,
	FieldFeedback,
	FieldAttempt,
	FieldHintsUsed,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionKeyValidator is a validator for the "session_key" field. It is called by the builders before save.
	SessionKeyValidator func(string) error
	// StepCodeValidator is a validator for the "step_code" field. It is called by the builders before save.
	StepCodeValidator func(string) error
	// DefaultPrompt holds the default value on creation for the "prompt" field.
	DefaultPrompt string
	// DefaultResponse holds the default value on creation for the "response" field.
	DefaultResponse string
	// DefaultFeedback holds the default value on creation for the "feedback" field.
	DefaultFeedback string
	// DefaultAttempt holds the default value on creation for the "attempt" field.
	DefaultAttempt int
	// DefaultHintsUsed holds the default value on creation for the "hints_used" field.
	DefaultHintsUsed int
)

// OrderOption defines the ordering options for the TraceEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionKey orders the results by the session_key field.
func BySessionKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionKey, opts...).ToFunc()
}

// ByStepCode orders the results by the step_code field.
func ByStepCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepCode, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByResponse orders the results by the response field.
func ByResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponse, opts...).ToFunc()
}

// ByFeedback orders the results by the feedback field.
func ByFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedback, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByHintsUsed orders the results by the hints_used field.
func ByHintsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintsUsed, opts...).ToFunc()
}
