package embed

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiEmbedder implements Embedder using the Google Gemini SDK.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// GeminiEmbedderConfig configures the Gemini backend.
type GeminiEmbedderConfig struct {
	APIKey string
	Model  string // Default: "text-embedding-004"
}

// NewGeminiEmbedder creates the Gemini embedding backend.
func NewGeminiEmbedder(ctx context.Context, cfg GeminiEmbedderConfig) (*GeminiEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "text-embedding-004"
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

func (e *GeminiEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	contents := make([]*genai.Content, len(texts))
	for i, t := range texts {
		contents[i] = &genai.Content{Parts: []*genai.Part{{Text: t}}}
	}

	resp, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, errVectorCount
	}

	out := make([][]float64, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		vec := make([]float64, len(emb.Values))
		for j, x := range emb.Values {
			vec[j] = float64(x)
		}
		out[i] = vec
	}
	return out, nil
}

func (e *GeminiEmbedder) ModelID() string {
	return e.model
}
