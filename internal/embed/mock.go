package embed

import (
	"context"
	"sync"
)

// MockEmbedder is a deterministic Embedder for tests. Vectors are served
// from a fixed text→vector table; unknown texts get the zero vector unless
// Err is set, in which case every call fails.
type MockEmbedder struct {
	mu      sync.Mutex
	Vectors map[string][]float64
	Dim     int
	Err     error
	Calls   [][]string
}

// NewMockEmbedder creates a MockEmbedder with the given vector table.
func NewMockEmbedder(dim int, vectors map[string][]float64) *MockEmbedder {
	return &MockEmbedder{Vectors: vectors, Dim: dim}
}

func (m *MockEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, texts)
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([][]float64, len(texts))
	for i, t := range texts {
		if v, ok := m.Vectors[t]; ok {
			out[i] = v
		} else {
			out[i] = make([]float64, m.Dim)
		}
	}
	return out, nil
}

func (m *MockEmbedder) ModelID() string { return "mock" }
