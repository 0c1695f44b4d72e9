// Code generated by ent, DO NOT EDIT.

package llmrequestevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aulalab/aula/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldModel, v))
}

// Purpose applies equality check predicate on the "purpose" field. It's identical to PurposeEQ.
func Purpose(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldPurpose, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldOutputTokens, v))
}

// CostCents applies equality check predicate on the "cost_cents" field. It's identical to CostCentsEQ.
func CostCents(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldCostCents, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldContainsFold(FieldModel, v))
}

// PurposeEQ applies the EQ predicate on the "purpose" field.
func PurposeEQ(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldPurpose, v))
}

// PurposeNEQ applies the NEQ predicate on the "purpose" field.
func PurposeNEQ(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNEQ(FieldPurpose, v))
}

// PurposeIn applies the In predicate on the "purpose" field.
func PurposeIn(vs ...string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldIn(FieldPurpose, vs...))
}

// PurposeNotIn applies the NotIn predicate on the "purpose" field.
func PurposeNotIn(vs ...string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNotIn(FieldPurpose, vs...))
}

// PurposeGT applies the GT predicate on the "purpose" field.
func PurposeGT(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGT(FieldPurpose, v))
}

// PurposeGTE applies the GTE predicate on the "purpose" field.
func PurposeGTE(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGTE(FieldPurpose, v))
}

// PurposeLT applies the LT predicate on the "purpose" field.
func PurposeLT(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLT(FieldPurpose, v))
}

// PurposeLTE applies the LTE predicate on the "purpose" field.
func PurposeLTE(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLTE(FieldPurpose, v))
}

// PurposeContains applies the Contains predicate on the "purpose" field.
func PurposeContains(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldContains(FieldPurpose, v))
}

// PurposeHasPrefix applies the HasPrefix predicate on the "purpose" field.
func PurposeHasPrefix(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldHasPrefix(FieldPurpose, v))
}

// PurposeHasSuffix applies the HasSuffix predicate on the "purpose" field.
func PurposeHasSuffix(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldHasSuffix(FieldPurpose, v))
}

// PurposeEqualFold applies the EqualFold predicate on the "purpose" field.
func PurposeEqualFold(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEqualFold(FieldPurpose, v))
}

// PurposeContainsFold applies the ContainsFold predicate on the "purpose" field.
func PurposeContainsFold(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldContainsFold(FieldPurpose, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLTE(FieldOutputTokens, v))
}

// CostCentsEQ applies the EQ predicate on the "cost_cents" field.
func CostCentsEQ(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldCostCents, v))
}

// CostCentsNEQ applies the NEQ predicate on the "cost_cents" field.
func CostCentsNEQ(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNEQ(FieldCostCents, v))
}

// CostCentsIn applies the In predicate on the "cost_cents" field.
func CostCentsIn(vs ...int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldIn(FieldCostCents, vs...))
}

// CostCentsNotIn applies the NotIn predicate on the "cost_cents" field.
func CostCentsNotIn(vs ...int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNotIn(FieldCostCents, vs...))
}

// CostCentsGT applies the GT predicate on the "cost_cents" field.
func CostCentsGT(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGT(FieldCostCents, v))
}

// CostCentsGTE applies the GTE predicate on the "cost_cents" field.
func CostCentsGTE(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGTE(FieldCostCents, v))
}

// CostCentsLT applies the LT predicate on the "cost_cents" field.
func CostCentsLT(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLT(FieldCostCents, v))
}

// CostCentsLTE applies the LTE predicate on the "cost_cents" field.
func CostCentsLTE(v int) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLTE(FieldCostCents, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMRequestEvent) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMRequestEvent) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMRequestEvent) predicate.LLMRequestEvent {
	return predicate.LLMRequestEvent(sql.NotPredicates(p))
}
