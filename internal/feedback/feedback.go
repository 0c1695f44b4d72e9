// Package feedback labels attempts and builds the audit trace. Both
// operations are pure; persistence belongs to the store.
package feedback

import (
	"time"

	"github.com/aulalab/aula/internal/classify"
)

// Label is the feedback sequence tag attached to each attempt.
type Label string

const (
	LabelF0 Label = "F0"
	LabelF1 Label = "F1"
	LabelF2 Label = "F2"
)

// ComputeLabel maps a classification kind and attempt number to a
// feedback label: first-pass hints are F0, repeated hints F1, everything
// else F2.
func ComputeLabel(kind classify.Kind, attempt int) Label {
	if kind == classify.Hint {
		if attempt <= 1 {
			return LabelF0
		}
		return LabelF1
	}
	return LabelF2
}

// TraceEntry is one immutable audit record of a question-answer-feedback
// exchange.
type TraceEntry struct {
	SessionKey string
	StepCode   string
	Label      Label
	Kind       classify.Kind
	Prompt     string
	Response   string
	Feedback   string
	Attempt    int
	HintsUsed  int
	At         time.Time
}

// BuildTraceEntry packages one attempt into a TraceEntry. It never
// mutates caller state.
func BuildTraceEntry(sessionKey, stepCode, prompt, response, feedbackText string,
	kind classify.Kind, attempt, hintsUsed int, at time.Time) TraceEntry {
	return TraceEntry{
		SessionKey: sessionKey,
		StepCode:   stepCode,
		Label:      ComputeLabel(kind, attempt),
		Kind:       kind,
		Prompt:     prompt,
		Response:   response,
		Feedback:   feedbackText,
		Attempt:    attempt,
		HintsUsed:  hintsUsed,
		At:         at,
	}
}
