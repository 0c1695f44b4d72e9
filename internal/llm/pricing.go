package llm

import "math"

// ModelCost holds per-million-token pricing for a model, USD per 1M
// tokens, sourced from models.dev.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// CostCents converts a request's usage into whole cents, rounded up so
// the session budget always decreases on a costed call. Unknown models
// charge one cent.
func CostCents(modelID string, usage Usage) int {
	c := LookupCost(modelID)
	if c == nil {
		return 1
	}
	cents := int(math.Ceil(c.Cost(usage.InputTokens, usage.OutputTokens) * 100))
	if cents < 1 {
		cents = 1
	}
	return cents
}

// modelCosts is the embedded pricing table. Last updated: 2026-02-15.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-3-5-haiku-latest":    {0.8, 4},
	"claude-haiku-4-5":           {1, 5},
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-20250514":   {3, 15},
	"claude-sonnet-4-5":          {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},

	// OpenAI
	"gpt-4o":                 {2.5, 10},
	"gpt-4o-mini":            {0.15, 0.6},
	"gpt-4.1-mini":           {0.4, 1.6},
	"gpt-4.1-nano":           {0.1, 0.4},
	"gpt-5-mini":             {0.25, 2},
	"gpt-5-nano":             {0.05, 0.4},
	"text-embedding-3-small": {0.02, 0},
	"text-embedding-3-large": {0.13, 0},

	// Google (Gemini)
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"text-embedding-004":    {0.025, 0},
}
