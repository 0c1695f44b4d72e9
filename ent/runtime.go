// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/aulalab/aula/ent/llmrequestevent"
	"github.com/aulalab/aula/ent/schema"
	"github.com/aulalab/aula/ent/sessionrecord"
	"github.com/aulalab/aula/ent/traceevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescCostCents is the schema descriptor for cost_cents field.
	llmrequesteventDescCostCents := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultCostCents holds the default value on creation for the cost_cents field.
	llmrequestevent.DefaultCostCents = llmrequesteventDescCostCents.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescSessionKey is the schema descriptor for session_key field.
	sessionrecordDescSessionKey := sessionrecordFields[0].Descriptor()
	// sessionrecord.SessionKeyValidator is a validator for the "session_key" field. It is called by the builders before save.
	sessionrecord.SessionKeyValidator = sessionrecordDescSessionKey.Validators[0].(func(string) error)
	// sessionrecordDescUpdatedAt is the schema descriptor for updated_at field.
	sessionrecordDescUpdatedAt := sessionrecordFields[2].Descriptor()
	// sessionrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionrecord.DefaultUpdatedAt = sessionrecordDescUpdatedAt.Default.(func() time.Time)
	// sessionrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionrecord.UpdateDefaultUpdatedAt = sessionrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	traceeventMixin := schema.TraceEvent{}.Mixin()
	traceeventMixinFields0 := traceeventMixin[0].Fields()
	_ = traceeventMixinFields0
	traceeventFields := schema.TraceEvent{}.Fields()
	_ = traceeventFields
	// traceeventDescTimestamp is the schema descriptor for timestamp field.
	traceeventDescTimestamp := traceeventMixinFields0[1].Descriptor()
	// traceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	traceevent.DefaultTimestamp = traceeventDescTimestamp.Default.(func() time.Time)
	// traceeventDescSessionKey is the schema descriptor for session_key field.
	traceeventDescSessionKey := traceeventFields[0].Descriptor()
	// traceevent.SessionKeyValidator is a validator for the "session_key" field. It is called by the builders before save.
	traceevent.SessionKeyValidator = traceeventDescSessionKey.Validators[0].(func(string) error)
	// traceeventDescStepCode is the schema descriptor for step_code field.
	traceeventDescStepCode := traceeventFields[1].Descriptor()
	// traceevent.StepCodeValidator is a validator for the "step_code" field. It is called by the builders before save.
	traceevent.StepCodeValidator = traceeventDescStepCode.Validators[0].(func(string) error)
	// traceeventDescPrompt is the schema descriptor for prompt field.
	traceeventDescPrompt := traceeventFields[4].Descriptor()
	// traceevent.DefaultPrompt holds the default value on creation for the prompt field.
	traceevent.DefaultPrompt = traceeventDescPrompt.Default.(string)
	// traceeventDescResponse is the schema descriptor for response field.
	traceeventDescResponse := traceeventFields[5].Descriptor()
	// traceevent.DefaultResponse holds the default value on creation for the response field.
	traceevent.DefaultResponse = traceeventDescResponse.Default.(string)
	// traceeventDescFeedback is the schema descriptor for feedback field.
	traceeventDescFeedback := traceeventFields[6].Descriptor()
	// traceevent.DefaultFeedback holds the default value on creation for the feedback field.
	traceevent.DefaultFeedback = traceeventDescFeedback.Default.(string)
	// traceeventDescAttempt is the schema descriptor for attempt field.
	traceeventDescAttempt := traceeventFields[7].Descriptor()
	// traceevent.DefaultAttempt holds the default value on creation for the attempt field.
	traceevent.DefaultAttempt = traceeventDescAttempt.Default.(int)
	// traceeventDescHintsUsed is the schema descriptor for hints_used field.
	traceeventDescHintsUsed := traceeventFields[8].Descriptor()
	// traceevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	traceevent.DefaultHintsUsed = traceeventDescHintsUsed.Default.(int)
}
