// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// SessionRecord is the predicate function for sessionrecord builders.
type SessionRecord func(*sql.Selector)

// TraceEvent is the predicate function for traceevent builders.
type TraceEvent func(*sql.Selector)
