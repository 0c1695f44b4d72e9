package embed

import (
	"context"
	"errors"
	"os"
)

// ErrNoEmbedder reports that no embedding backend is configured.
var ErrNoEmbedder = errors.New("no embedding provider configured")

// NewEmbedderFromEnv builds an embedder from AULA_* environment
// variables, preferring OpenAI over Gemini when both keys are present.
func NewEmbedderFromEnv(ctx context.Context) (Embedder, error) {
	if key := os.Getenv("AULA_OPENAI_API_KEY"); key != "" {
		return NewOpenAIEmbedder(OpenAIEmbedderConfig{
			APIKey:  key,
			Model:   os.Getenv("AULA_EMBED_MODEL"),
			BaseURL: os.Getenv("AULA_OPENAI_BASE_URL"),
		})
	}
	if key := os.Getenv("AULA_GEMINI_API_KEY"); key != "" {
		return NewGeminiEmbedder(ctx, GeminiEmbedderConfig{
			APIKey: key,
			Model:  os.Getenv("AULA_EMBED_MODEL"),
		})
	}
	return nil, ErrNoEmbedder
}
