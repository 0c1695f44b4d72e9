package embed

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

var errVectorCount = errors.New("embedding count mismatch")

// OpenAIEmbedder implements Embedder using the OpenAI embeddings API.
// Works against OpenAI-compatible endpoints via BaseURL.
type OpenAIEmbedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// OpenAIEmbedderConfig configures the OpenAI backend.
type OpenAIEmbedderConfig struct {
	APIKey  string
	Model   string // Default: "text-embedding-3-small"
	BaseURL string
}

// NewOpenAIEmbedder creates the OpenAI embedding backend.
func NewOpenAIEmbedder(cfg OpenAIEmbedderConfig) (*OpenAIEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := openai.EmbeddingModel(cfg.Model)
	if cfg.Model == "" {
		model = openai.SmallEmbedding3
	}

	return &OpenAIEmbedder{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: e.model,
	})
	if err != nil {
		return nil, fmt.Errorf("create embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, errVectorCount
	}

	out := make([][]float64, len(resp.Data))
	for i, d := range resp.Data {
		vec := make([]float64, len(d.Embedding))
		for j, x := range d.Embedding {
			vec[j] = float64(x)
		}
		out[i] = vec
	}
	return out, nil
}

func (e *OpenAIEmbedder) ModelID() string {
	return string(e.model)
}
