package embed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 0}, []float64{1, 0}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"zero vector", []float64{0, 0}, []float64{1, 0}, 0},
		{"dimension mismatch", []float64{1, 0}, []float64{1, 0, 0}, 0},
		{"empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestBuildIndex(t *testing.T) {
	m := NewMockEmbedder(2, map[string][]float64{
		"casco":   {1, 0},
		"guantes": {0, 1},
	})

	ix, err := BuildIndex(context.Background(), m, []string{"casco", "guantes"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, ix.Centroid)

	text, score := ix.Best([]float64{1, 0.1})
	assert.Equal(t, "casco", text)
	assert.Greater(t, score, 0.9)

	_, err = BuildIndex(context.Background(), m, nil)
	require.Error(t, err)
}

func TestScorerScoresAgainstReferences(t *testing.T) {
	m := NewMockEmbedder(2, map[string][]float64{
		"casco":     {1, 0},
		"guantes":   {0, 1},
		"el casco":  {0.9, 0.1},
		"zapatos":   {0.1, 0.9},
		"sin señal": {0, 0},
	})
	s := NewScorer(m)
	refs := []string{"casco", "guantes"}

	got, err := s.Score(context.Background(), "el casco", refs)
	require.NoError(t, err)
	assert.Equal(t, "casco", got.BestText)
	assert.Greater(t, got.BestScore, 0.9)
	assert.Greater(t, got.Centroid, 0.5)

	// Zero utterance vector scores zero everywhere.
	got, err = s.Score(context.Background(), "sin señal", refs)
	require.NoError(t, err)
	assert.Zero(t, got.Centroid)
	assert.Zero(t, got.BestScore)
}

func TestScorerCachesReferenceIndex(t *testing.T) {
	m := NewMockEmbedder(2, map[string][]float64{"casco": {1, 0}})
	s := NewScorer(m)
	refs := []string{"casco"}

	_, err := s.Score(context.Background(), "a", refs)
	require.NoError(t, err)
	_, err = s.Score(context.Background(), "b", refs)
	require.NoError(t, err)

	// One call embeds the references, then one per utterance.
	assert.Len(t, m.Calls, 3)
	assert.Equal(t, refs, m.Calls[0])
}

func TestScorerPropagatesEmbedderErrors(t *testing.T) {
	m := NewMockEmbedder(2, nil)
	m.Err = errors.New("backend down")
	s := NewScorer(m)

	_, err := s.Score(context.Background(), "algo", []string{"casco"})
	require.Error(t, err)
}

func TestNewEmbedderFromEnv(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		t.Setenv("AULA_OPENAI_API_KEY", "")
		t.Setenv("AULA_GEMINI_API_KEY", "")
		_, err := NewEmbedderFromEnv(context.Background())
		require.ErrorIs(t, err, ErrNoEmbedder)
	})

	t.Run("openai preferred", func(t *testing.T) {
		t.Setenv("AULA_OPENAI_API_KEY", "test-key")
		t.Setenv("AULA_GEMINI_API_KEY", "")
		t.Setenv("AULA_EMBED_MODEL", "")
		e, err := NewEmbedderFromEnv(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "text-embedding-3-small", e.ModelID())
	})

	t.Run("model override", func(t *testing.T) {
		t.Setenv("AULA_OPENAI_API_KEY", "test-key")
		t.Setenv("AULA_EMBED_MODEL", "text-embedding-3-large")
		e, err := NewEmbedderFromEnv(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "text-embedding-3-large", e.ModelID())
	})
}
