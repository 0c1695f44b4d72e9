package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TraceEvent is one immutable audit record of a question-answer-feedback
// exchange.
type TraceEvent struct {
	ent.Schema
}

func (TraceEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TraceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_key").NotEmpty(),
		field.String("step_code").NotEmpty(),
		field.String("label").
			Comment("Feedback sequence label: F0, F1, F2"),
		field.String("kind").
			Comment("Classification verdict: ACCEPT, PARTIAL, HINT, REFOCUS"),
		field.Text("prompt").Default(""),
		field.Text("response").Default(""),
		field.Text("feedback").Default(""),
		field.Int("attempt").Default(0),
		field.Int("hints_used").Default(0),
	}
}

func (TraceEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_key"),
		index.Fields("step_code"),
	}
}
