package llm

import (
	"context"
	"encoding/json"
)

// Provider is the language-generation collaborator used to phrase hints,
// feedback and explanations in natural language. The engine core never
// depends on it being present: every phrased message has a template
// fallback.
type Provider interface {
	// Generate sends a prompt and returns structured output. When the
	// request carries a Schema, the response Content is JSON validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Purpose labels what a request was for, carried on the context for
// event logging and budget attribution.
type Purpose string

const (
	PurposeHint     Purpose = "hint"
	PurposeFeedback Purpose = "feedback"
	PurposeExplain  Purpose = "explain"
	PurposeBridge   Purpose = "bridge"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label to the context.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey, p)
}

// PurposeFrom extracts the purpose label, defaulting to "unknown".
func PurposeFrom(ctx context.Context) Purpose {
	if v, ok := ctx.Value(purposeKey).(Purpose); ok {
		return v
	}
	return "unknown"
}

// Request describes what to send.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

// Message is one turn in the prompt.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected back.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// raw text otherwise.
	Content json.RawMessage

	Usage Usage
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
