// Package turn orchestrates one tutoring exchange: it reads the session
// cursor, classifies the learner's utterance, applies the escalation
// policy, renders remediation or advances the plan, and persists the
// updated state. The store's Set is the single commit point per turn.
//
// Turns must be serialized per session key by the caller; the engine
// provides no internal locking for session state.
package turn

import (
	"context"
	"os"
)

// Request is one incoming turn.
type Request struct {
	SessionKey string `json:"sessionKey"`
	PlanURL    string `json:"planUrl"`
	UserInput  string `json:"userInput"`

	// Reset discards prior state for the key and recompiles the plan.
	Reset bool `json:"reset,omitempty"`
}

// Assessment reports how a settled question was scored.
type Assessment struct {
	Level string  `json:"level"`
	Score float64 `json:"score"`
}

// StateView is the cursor snapshot returned with every response.
type StateView struct {
	MomentIdx int    `json:"momentIdx"`
	StepIdx   int    `json:"stepIdx"`
	Done      bool   `json:"done"`
	StepCode  string `json:"stepCode,omitempty"`
}

// Response is the orchestrator's answer to one turn. Message is never
// empty: any processing failure degrades to a generic continuation
// prompt rather than leaving the learner without a next step.
type Response struct {
	Message    string      `json:"message,omitempty"`
	FollowUp   string      `json:"followUp,omitempty"`
	Assessment *Assessment `json:"assessment,omitempty"`
	State      StateView   `json:"state"`
}

// ScriptLoader fetches the raw lesson-script document behind a plan URL.
type ScriptLoader interface {
	Load(ctx context.Context, url string) ([]byte, error)
}

// FileLoader resolves plan URLs as filesystem paths.
type FileLoader struct{}

func (FileLoader) Load(_ context.Context, url string) ([]byte, error) {
	return os.ReadFile(url)
}
