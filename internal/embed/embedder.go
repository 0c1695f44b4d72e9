// Package embed provides the embedding-backed similarity scorer used by
// the classifier's semantic fallback. The engine treats every failure
// here as "no semantic signal", never as fatal.
package embed

import (
	"context"
	"fmt"
	"math"
)

// Embedder turns texts into vectors. Backends wrap external APIs, so
// callers must bound calls with a context deadline.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
	ModelID() string
}

// Index is a prebuilt reference-text index: one vector per reference plus
// their centroid. Immutable once built.
type Index struct {
	Texts    []string
	Vectors  [][]float64
	Centroid []float64
}

// BuildIndex embeds the reference texts and computes their centroid.
func BuildIndex(ctx context.Context, e Embedder, texts []string) (*Index, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no reference texts")
	}
	vecs, err := e.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed references: %w", err)
	}
	if len(vecs) != len(texts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(vecs), len(texts))
	}

	dim := len(vecs[0])
	centroid := make([]float64, dim)
	for _, v := range vecs {
		if len(v) != dim {
			return nil, fmt.Errorf("inconsistent vector dimensions")
		}
		for i, x := range v {
			centroid[i] += x
		}
	}
	for i := range centroid {
		centroid[i] /= float64(len(vecs))
	}

	return &Index{Texts: texts, Vectors: vecs, Centroid: centroid}, nil
}

// Cosine computes cosine similarity between two vectors. Mismatched or
// zero vectors score 0.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Best returns the highest-similarity reference for a query vector.
func (ix *Index) Best(query []float64) (text string, score float64) {
	for i, v := range ix.Vectors {
		if s := Cosine(query, v); s > score {
			score = s
			text = ix.Texts[i]
		}
	}
	return text, score
}
