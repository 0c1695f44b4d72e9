// Code generated by ent, DO NOT EDIT.

package traceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aulalab/aula/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionKey applies equality check predicate on the "session_key" field. It's identical to SessionKeyEQ.
func SessionKey(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldSessionKey, v))
}

// StepCode applies equality check predicate on the "step_code" field. It's identical to StepCodeEQ.
func StepCode(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldStepCode, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldKind, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldPrompt, v))
}

// Response applies equality check predicate on the "response" field. It's identical to ResponseEQ.
func Response(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldResponse, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldFeedback, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldAttempt, v))
}

// HintsUsed applies equality check predicate on the "hints_used" field. It's identical to HintsUsedEQ.
func HintsUsed(v int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionKeyEQ applies the EQ predicate on the "session_key" field.
func SessionKeyEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldSessionKey, v))
}

// SessionKeyNEQ applies the NEQ predicate on the "session_key" field.
func SessionKeyNEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldSessionKey, v))
}

// SessionKeyIn applies the In predicate on the "session_key" field.
func SessionKeyIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldSessionKey, vs...))
}

// SessionKeyNotIn applies the NotIn predicate on the "session_key" field.
func SessionKeyNotIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldSessionKey, vs...))
}

// SessionKeyGT applies the GT predicate on the "session_key" field.
func SessionKeyGT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldSessionKey, v))
}

// SessionKeyGTE applies the GTE predicate on the "session_key" field.
func SessionKeyGTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldSessionKey, v))
}

// SessionKeyLT applies the LT predicate on the "session_key" field.
func SessionKeyLT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldSessionKey, v))
}

// SessionKeyLTE applies the LTE predicate on the "session_key" field.
func SessionKeyLTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldSessionKey, v))
}

// SessionKeyContains applies the Contains predicate on the "session_key" field.
func SessionKeyContains(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContains(FieldSessionKey, v))
}

// SessionKeyHasPrefix applies the HasPrefix predicate on the "session_key" field.
func SessionKeyHasPrefix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasPrefix(FieldSessionKey, v))
}

// SessionKeyHasSuffix applies the HasSuffix predicate on the "session_key" field.
func SessionKeyHasSuffix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasSuffix(FieldSessionKey, v))
}

// SessionKeyEqualFold applies the EqualFold predicate on the "session_key" field.
func SessionKeyEqualFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEqualFold(FieldSessionKey, v))
}

// SessionKeyContainsFold applies the ContainsFold predicate on the "session_key" field.
func SessionKeyContainsFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContainsFold(FieldSessionKey, v))
}

// StepCodeEQ applies the EQ predicate on the "step_code" field.
func StepCodeEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldStepCode, v))
}

// StepCodeNEQ applies the NEQ predicate on the "step_code" field.
func StepCodeNEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldStepCode, v))
}

// StepCodeIn applies the In predicate on the "step_code" field.
func StepCodeIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldStepCode, vs...))
}

// StepCodeNotIn applies the NotIn predicate on the "step_code" field.
func StepCodeNotIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldStepCode, vs...))
}

// StepCodeGT applies the GT predicate on the "step_code" field.
func StepCodeGT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldStepCode, v))
}

// StepCodeGTE applies the GTE predicate on the "step_code" field.
func StepCodeGTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldStepCode, v))
}

// StepCodeLT applies the LT predicate on the "step_code" field.
func StepCodeLT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldStepCode, v))
}

// StepCodeLTE applies the LTE predicate on the "step_code" field.
func StepCodeLTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldStepCode, v))
}

// StepCodeContains applies the Contains predicate on the "step_code" field.
func StepCodeContains(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContains(FieldStepCode, v))
}

// StepCodeHasPrefix applies the HasPrefix predicate on the "step_code" field.
func StepCodeHasPrefix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasPrefix(FieldStepCode, v))
}

// StepCodeHasSuffix applies the HasSuffix predicate on the "step_code" field.
func StepCodeHasSuffix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasSuffix(FieldStepCode, v))
}

// StepCodeEqualFold applies the EqualFold predicate on the "step_code" field.
func StepCodeEqualFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEqualFold(FieldStepCode, v))
}

// StepCodeContainsFold applies the ContainsFold predicate on the "step_code" field.
func StepCodeContainsFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContainsFold(FieldStepCode, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContainsFold(FieldLabel, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContainsFold(FieldKind, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContainsFold(FieldPrompt, v))
}

// ResponseEQ applies the EQ predicate on the "response" field.
func ResponseEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldResponse, v))
}

// ResponseNEQ applies the NEQ predicate on the "response" field.
func ResponseNEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldResponse, v))
}

// ResponseIn applies the In predicate on the "response" field.
func ResponseIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldResponse, vs...))
}

// ResponseNotIn applies the NotIn predicate on the "response" field.
func ResponseNotIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldResponse, vs...))
}

// ResponseGT applies the GT predicate on the "response" field.
func ResponseGT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldResponse, v))
}

// ResponseGTE applies the GTE predicate on the "response" field.
func ResponseGTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldResponse, v))
}

// ResponseLT applies the LT predicate on the "response" field.
func ResponseLT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldResponse, v))
}

// ResponseLTE applies the LTE predicate on the "response" field.
func ResponseLTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldResponse, v))
}

// ResponseContains applies the Contains predicate on the "response" field.
func ResponseContains(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContains(FieldResponse, v))
}

// ResponseHasPrefix applies the HasPrefix predicate on the "response" field.
func ResponseHasPrefix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasPrefix(FieldResponse, v))
}

// ResponseHasSuffix applies the HasSuffix predicate on the "response" field.
func ResponseHasSuffix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasSuffix(FieldResponse, v))
}

// ResponseEqualFold applies the EqualFold predicate on the "response" field.
func ResponseEqualFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEqualFold(FieldResponse, v))
}

// ResponseContainsFold applies the ContainsFold predicate on the "response" field.
func ResponseContainsFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContainsFold(FieldResponse, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldContainsFold(FieldFeedback, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldAttempt, v))
}

// HintsUsedEQ applies the EQ predicate on the "hints_used" field.
func HintsUsedEQ(v int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// HintsUsedNEQ applies the NEQ predicate on the "hints_used" field.
func HintsUsedNEQ(v int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNEQ(FieldHintsUsed, v))
}

// HintsUsedIn applies the In predicate on the "hints_used" field.
func HintsUsedIn(vs ...int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldIn(FieldHintsUsed, vs...))
}

// HintsUsedNotIn applies the NotIn predicate on the "hints_used" field.
func HintsUsedNotIn(vs ...int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldNotIn(FieldHintsUsed, vs...))
}

// HintsUsedGT applies the GT predicate on the "hints_used" field.
func HintsUsedGT(v int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGT(FieldHintsUsed, v))
}

// HintsUsedGTE applies the GTE predicate on the "hints_used" field.
func HintsUsedGTE(v int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldGTE(FieldHintsUsed, v))
}

// HintsUsedLT applies the LT predicate on the "hints_used" field.
func HintsUsedLT(v int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLT(FieldHintsUsed, v))
}

// HintsUsedLTE applies the LTE predicate on the "hints_used" field.
func HintsUsedLTE(v int) predicate.TraceEvent {
	return predicate.TraceEvent(sql.FieldLTE(FieldHintsUsed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TraceEvent) predicate.TraceEvent {
	return predicate.TraceEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TraceEvent) predicate.TraceEvent {
	return predicate.TraceEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TraceEvent) predicate.TraceEvent {
	return predicate.TraceEvent(sql.NotPredicates(p))
}
