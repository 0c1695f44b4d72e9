package embed

import (
	"context"
	"strings"
	"sync"

	"github.com/aulalab/aula/internal/classify"
)

// Scorer implements classify.SemanticScorer on top of an Embedder. It
// caches one Index per distinct reference set, so repeated attempts on the
// same question only pay for embedding the utterance.
type Scorer struct {
	embedder Embedder

	mu      sync.Mutex
	indexes map[string]*Index
}

var _ classify.SemanticScorer = (*Scorer)(nil)

// NewScorer creates a Scorer backed by the given embedder.
func NewScorer(e Embedder) *Scorer {
	return &Scorer{embedder: e, indexes: make(map[string]*Index)}
}

// Score embeds the utterance and reports centroid plus best-item cosine
// similarity against the reference set.
func (s *Scorer) Score(ctx context.Context, utterance string, refs []string) (classify.SemanticScore, error) {
	ix, err := s.index(ctx, refs)
	if err != nil {
		return classify.SemanticScore{}, err
	}

	vecs, err := s.embedder.Embed(ctx, []string{utterance})
	if err != nil || len(vecs) != 1 {
		if err == nil {
			err = errVectorCount
		}
		return classify.SemanticScore{}, err
	}

	best, bestScore := ix.Best(vecs[0])
	return classify.SemanticScore{
		Centroid:  Cosine(vecs[0], ix.Centroid),
		BestText:  best,
		BestScore: bestScore,
	}, nil
}

func (s *Scorer) index(ctx context.Context, refs []string) (*Index, error) {
	key := strings.Join(refs, "\x1f")

	s.mu.Lock()
	ix, ok := s.indexes[key]
	s.mu.Unlock()
	if ok {
		return ix, nil
	}

	ix, err := BuildIndex(ctx, s.embedder, refs)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.indexes[key] = ix
	s.mu.Unlock()
	return ix, nil
}
