// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost_cents", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_key", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_session_key",
				Unique:  true,
				Columns: []*schema.Column{SessionRecordsColumns[1]},
			},
		},
	}
	// TraceEventsColumns holds the columns for the "trace_events" table.
	TraceEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_key", Type: field.TypeString},
		{Name: "step_code", Type: field.TypeString},
		{Name: "label", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
	}
	// TraceEventsTable holds the schema information for the "trace_events" table.
	TraceEventsTable = &schema.Table{
		Name:       "trace_events",
		Columns:    TraceEventsColumns,
		PrimaryKey: []*schema.Column{TraceEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "traceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TraceEventsColumns[1]},
			},
			{
				Name:    "traceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TraceEventsColumns[2]},
			},
			{
				Name:    "traceevent_session_key",
				Unique:  false,
				Columns: []*schema.Column{TraceEventsColumns[3]},
			},
			{
				Name:    "traceevent_step_code",
				Unique:  false,
				Columns: []*schema.Column{TraceEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		SessionRecordsTable,
		TraceEventsTable,
	}
)

func init() {
}
