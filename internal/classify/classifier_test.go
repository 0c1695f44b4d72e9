package classify

import (
	"context"
	"errors"
	"testing"
)

func newTest(opts ...Option) *Classifier {
	return New(DefaultConfig(), opts...)
}

func TestClassify_ExactAcceptableIsAccept(t *testing.T) {
	c := newTest()

	for _, answer := range []string{"casco", "guantes", "el andamio certificado"} {
		res := c.Classify(context.Background(), Input{
			Utterance:  answer,
			Acceptable: []string{answer},
			Shape:      ShapeConceptual,
		})
		if res.Kind != Accept {
			t.Errorf("Classify(%q) = %s/%s, want ACCEPT", answer, res.Kind, res.Reason)
		}
		if len(res.Matched) == 0 || Normalize(res.Matched[0]) != Normalize(answer) {
			t.Errorf("Classify(%q) Matched = %v", answer, res.Matched)
		}
	}
}

func TestClassify_DontKnow(t *testing.T) {
	c := newTest()

	inputs := []string{
		"", "no sé", "no se", "no lo se", "nose", "ni idea",
		"n/a", "paso", "no entiendo", "i dont know", "no idea",
		"hmm ok", // two tokens, below the floor
	}
	for _, in := range inputs {
		res := c.Classify(context.Background(), Input{
			Utterance:  in,
			Acceptable: []string{"la fotosíntesis convierte luz en energía"},
			Expected:   []string{"fotosintesis", "luz", "energia"},
			Shape:      ShapeConceptual,
		})
		if res.Kind != Hint || res.Reason != ReasonDontKnow {
			t.Errorf("Classify(%q) = %s/%s, want HINT/DONT_KNOW", in, res.Kind, res.Reason)
		}
	}
}

func TestClassify_ShortExactAnswerBeatsDontKnowFloor(t *testing.T) {
	c := newTest()

	// "casco" is one token, below the don't-know floor, but it is the
	// literal acceptable answer.
	res := c.Classify(context.Background(), Input{
		Utterance:  "casco",
		Acceptable: []string{"casco", "guantes"},
		Shape:      ShapeConceptual,
	})
	if res.Kind != Accept {
		t.Errorf("Classify(casco) = %s/%s, want ACCEPT", res.Kind, res.Reason)
	}
}

func TestClassify_EchoAndRepeat(t *testing.T) {
	c := newTest()

	echo := c.Classify(context.Background(), Input{
		Utterance:  "qué elementos de protección existen",
		Question:   "¿Qué elementos de protección existen?",
		Acceptable: []string{"casco", "guantes"},
		Shape:      ShapeList,
	})
	if echo.Kind != Hint || echo.Reason != ReasonEcho {
		t.Errorf("echo = %s/%s, want HINT/ECHO", echo.Kind, echo.Reason)
	}

	repeat := c.Classify(context.Background(), Input{
		Utterance:  "las herramientas grandes del taller",
		PrevAnswer: "las herramientas grandes del taller",
		Question:   "¿Qué elementos de protección existen?",
		Acceptable: []string{"casco", "guantes"},
		Shape:      ShapeList,
	})
	if repeat.Kind != Hint || repeat.Reason != ReasonRepeat {
		t.Errorf("repeat = %s/%s, want HINT/REPEAT", repeat.Kind, repeat.Reason)
	}
}

func TestClassify_ListThreshold(t *testing.T) {
	c := newTest()
	acceptable := []string{"casco", "guantes", "lentes"}

	tests := []struct {
		utterance string
		wantKind  Kind
	}{
		{"casco y guantes obligatorios", Accept},           // 2 of 3 ≥ k
		{"hay que llevar siempre el casco puesto", Partial}, // exactly 1
		{"hay que llegar temprano al trabajo", Hint},        // 0 matches
	}
	for _, tc := range tests {
		res := c.Classify(context.Background(), Input{
			Utterance:  tc.utterance,
			Question:   "¿Qué equipo de protección es obligatorio?",
			Acceptable: acceptable,
			Shape:      ShapeList,
		})
		if res.Kind != tc.wantKind {
			t.Errorf("Classify(%q) = %s/%s, want %s", tc.utterance, res.Kind, res.Reason, tc.wantKind)
		}
	}
}

func TestClassify_ApplicationNeedsJustification(t *testing.T) {
	c := newTest()
	in := Input{
		Question:   "¿Qué harías ante un derrame y por qué?",
		Acceptable: []string{"señalizar la zona"},
		Shape:      ShapeApplication,
	}

	in.Utterance = "primero hay que señalizar la zona porque alguien podria resbalar"
	if res := c.Classify(context.Background(), in); res.Kind != Accept {
		t.Errorf("with justification = %s/%s, want ACCEPT", res.Kind, res.Reason)
	}

	in.Utterance = "primero hay que señalizar la zona del derrame"
	res := c.Classify(context.Background(), in)
	if res.Kind != Partial || res.Reason != ReasonNoJustification {
		t.Errorf("without justification = %s/%s, want PARTIAL/NO_JUSTIFICATION", res.Kind, res.Reason)
	}
}

func TestClassify_ExpectedOnlyIsPartial(t *testing.T) {
	c := newTest()

	res := c.Classify(context.Background(), Input{
		Utterance:  "creo que tiene que ver con la energia del sol",
		Question:   "¿Qué es la fotosíntesis?",
		Acceptable: []string{"la planta convierte luz en alimento"},
		Expected:   []string{"energia", "luz", "planta"},
		Shape:      ShapeConceptual,
	})
	if res.Kind != Partial || res.Reason != ReasonExpectedOnly {
		t.Errorf("expected-only = %s/%s, want PARTIAL/EXPECTED_ONLY", res.Kind, res.Reason)
	}
}

func TestClassify_FuzzyTypo(t *testing.T) {
	c := newTest()

	// "evaporasion" is one edit away from the strong reference token.
	res := c.Classify(context.Background(), Input{
		Utterance:  "la evaporasion del agua",
		Question:   "¿Cómo sube el agua a la atmósfera?",
		Acceptable: []string{"evaporación del agua"},
		Shape:      ShapeConceptual,
	})
	if res.Kind != Accept {
		t.Errorf("fuzzy = %s/%s, want ACCEPT", res.Kind, res.Reason)
	}
}

func TestClassify_MissingTruncated(t *testing.T) {
	c := newTest()

	res := c.Classify(context.Background(), Input{
		Utterance:  "no tengo idea clara de esto todavia",
		Question:   "¿Qué normas recuerdas?",
		Acceptable: []string{"señalización", "extintores", "salidas de emergencia", "botiquín", "alarmas"},
		Shape:      ShapeList,
	})
	if len(res.Missing) > DefaultConfig().MaxMissingShown {
		t.Errorf("Missing has %d entries, cap is %d", len(res.Missing), DefaultConfig().MaxMissingShown)
	}
}

// fakeScorer is a canned SemanticScorer.
type fakeScorer struct {
	score SemanticScore
	err   error
	calls int
}

func (f *fakeScorer) Score(_ context.Context, _ string, _ []string) (SemanticScore, error) {
	f.calls++
	return f.score, f.err
}

func semanticConfig() Config {
	cfg := DefaultConfig()
	cfg.SemanticEnabled = true
	return cfg
}

func TestClassify_SemanticFallback(t *testing.T) {
	tests := []struct {
		name       string
		score      SemanticScore
		shape      Shape
		wantKind   Kind
		wantReason Reason
	}{
		{"centroid accept", SemanticScore{Centroid: 0.91, BestScore: 0.9}, ShapeConceptual, Accept, ReasonSemanticCentroid},
		{"centroid on list is partial", SemanticScore{Centroid: 0.91, BestScore: 0.9}, ShapeList, Partial, ReasonSemanticCentroid},
		{"best item partial", SemanticScore{Centroid: 0.4, BestScore: 0.7}, ShapeConceptual, Partial, ReasonSemanticItem},
		{"nothing stays hint", SemanticScore{Centroid: 0.1, BestScore: 0.2}, ShapeConceptual, Hint, ReasonNoMatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(semanticConfig(), WithSemanticScorer(&fakeScorer{score: tc.score}))
			res := c.Classify(context.Background(), Input{
				Utterance:  "el proceso transforma la radiacion en sustancias utiles",
				Question:   "¿Qué es la fotosíntesis?",
				Acceptable: []string{"convierte luz en alimento"},
				Shape:      tc.shape,
			})
			if res.Kind != tc.wantKind || res.Reason != tc.wantReason {
				t.Errorf("got %s/%s, want %s/%s", res.Kind, res.Reason, tc.wantKind, tc.wantReason)
			}
			if res.Semantic == nil {
				t.Error("semantic evidence missing from result")
			}
		})
	}
}

func TestClassify_SemanticErrorDegradesToHint(t *testing.T) {
	scorer := &fakeScorer{err: errors.New("embedding service down")}
	c := New(semanticConfig(), WithSemanticScorer(scorer))

	res := c.Classify(context.Background(), Input{
		Utterance:  "el proceso transforma la radiacion en sustancias utiles",
		Question:   "¿Qué es la fotosíntesis?",
		Acceptable: []string{"convierte luz en alimento"},
		Shape:      ShapeConceptual,
	})
	if res.Kind != Hint || res.Reason != ReasonSemanticUnavailable {
		t.Errorf("got %s/%s, want HINT/SEMANTIC_UNAVAILABLE", res.Kind, res.Reason)
	}
	if scorer.calls != 1 {
		t.Errorf("scorer called %d times, want 1", scorer.calls)
	}
}

func TestClassify_RefocusAfterHintsExhausted(t *testing.T) {
	scorer := &fakeScorer{score: SemanticScore{Centroid: 0.1, BestScore: 0.1}}
	c := New(semanticConfig(), WithSemanticScorer(scorer))

	res := c.Classify(context.Background(), Input{
		Utterance:      "ayer fuimos al partido con mis primos",
		Question:       "¿Qué es la fotosíntesis?",
		Acceptable:     []string{"convierte luz en alimento"},
		Shape:          ShapeConceptual,
		HintsExhausted: true,
	})
	if res.Kind != Refocus || res.Reason != ReasonHintsExhausted {
		t.Errorf("got %s/%s, want REFOCUS/HINTS_EXHAUSTED", res.Kind, res.Reason)
	}
}
