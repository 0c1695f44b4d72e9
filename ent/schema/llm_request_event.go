package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records every phrasing/embedding API call for cost
// tracking and debugging.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Provider name: anthropic, openai, gemini"),
		field.String("model").
			Comment("Actual model ID used"),
		field.String("purpose").
			Comment("Consumer-provided label: hint, feedback, explain, bridge"),
		field.Int("input_tokens").Default(0),
		field.Int("output_tokens").Default(0),
		field.Int("cost_cents").
			Default(0).
			Comment("Whole-cent cost charged against the session budget"),
		field.Int64("latency_ms").Default(0),
		field.Bool("success"),
		field.String("error_message").Default(""),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
