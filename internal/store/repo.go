package store

import (
	"context"

	"github.com/aulalab/aula/internal/feedback"
	"github.com/aulalab/aula/internal/llm"
)

// TraceRepo is the append-only trace sink consumed by the orchestrator
// and read back by the stats command.
type TraceRepo interface {
	// Append stores one trace entry.
	Append(ctx context.Context, entry feedback.TraceEntry) error

	// BySession returns all trace entries for a session key in sequence
	// order.
	BySession(ctx context.Context, sessionKey string) ([]feedback.TraceEntry, error)

	// Counts aggregates attempt/hint totals per session.
	Counts(ctx context.Context, sessionKey string) (TraceCounts, error)
}

// TraceCounts summarizes a session's trace for reporting.
type TraceCounts struct {
	Attempts int
	Hints    int
	Accepts  int
}

// LLMRepo records provider calls and aggregates their cost.
type LLMRepo interface {
	llm.RequestRecorder

	// Totals aggregates request count, token usage and cost.
	Totals(ctx context.Context) (LLMTotals, error)
}

// LLMTotals summarizes provider usage for reporting.
type LLMTotals struct {
	Requests     int
	InputTokens  int
	OutputTokens int
	CostCents    int
}
