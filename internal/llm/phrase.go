package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// PhraseSchema constrains phrasing output to a single bounded message.
var PhraseSchema = &Schema{
	Name:        "tutor-message",
	Description: "A short tutoring message for the learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "The message to show the learner, in the lesson language",
			},
		},
		"required":             []any{"message"},
		"additionalProperties": false,
	},
}

const phraseSystemPrompt = `Eres un tutor paciente que acompaña a una persona a través de una lección.
Reformula el mensaje dado con calidez y claridad, sin revelar respuestas que el mensaje no contenga.
Mantente dentro del límite de palabras indicado y responde en el idioma del mensaje.`

// Phrase rewrites a template message in natural language, bounded by
// wordLimit. On any provider error the caller keeps the template text.
func Phrase(ctx context.Context, p Provider, purpose Purpose, template string, wordLimit int) (string, error) {
	ctx = WithPurpose(ctx, purpose)

	req := Request{
		System: phraseSystemPrompt,
		Messages: []Message{{
			Role:    RoleUser,
			Content: fmt.Sprintf("Límite: %d palabras.\nMensaje: %s", wordLimit, template),
		}},
		Schema:      PhraseSchema,
		MaxTokens:   256,
		Temperature: 0.4,
	}

	resp, err := p.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse phrase response: %w", err)
	}
	if out.Message == "" {
		return "", &ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("empty message")}
	}
	return out.Message, nil
}
