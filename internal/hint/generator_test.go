package hint

import (
	"strings"
	"testing"

	"github.com/aulalab/aula/internal/plan"
)

func TestTier(t *testing.T) {
	tests := []struct {
		attempts, hintsUsed, want int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{2, 0, 1},
		{2, 1, 1},
		{3, 2, 2},
		{1, 3, 2},
	}
	for _, tc := range tests {
		if got := Tier(tc.attempts, tc.hintsUsed); got != tc.want {
			t.Errorf("Tier(%d, %d) = %d, want %d", tc.attempts, tc.hintsUsed, got, tc.want)
		}
	}
}

func baseInput() Input {
	return Input{
		Question:  "¿Qué equipo de protección es obligatorio?",
		Objective: "Reconocer el equipo de protección personal básico",
		Expected:  []string{"casco", "guantes", "lentes"},
		Missing:   []string{"guantes"},
		Shape:     plan.ShapeList,
	}
}

func TestHint_OpenerRotatesByHintsUsed(t *testing.T) {
	g := New(DefaultConfig())

	in := baseInput()
	var openers []string
	for hints := 0; hints < 4; hints++ {
		in.HintsUsed = hints
		msg := g.Hint(in)
		openers = append(openers, strings.SplitN(msg, " ", 2)[0])
	}

	if openers[0] == openers[1] {
		t.Errorf("consecutive hints used the same opener: %v", openers)
	}
	// Three openers configured: the fourth hint wraps to the first.
	if openers[0] != openers[3] {
		t.Errorf("opener rotation should wrap: %v", openers)
	}
}

func TestHint_CarriesMissingCue(t *testing.T) {
	g := New(DefaultConfig())
	msg := g.Hint(baseInput())
	if !strings.Contains(msg, "guantes") {
		t.Errorf("hint lacks the missing cue: %q", msg)
	}
}

func TestHint_TruncatesToTierBudget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CharBudgets = [3]int{40, 60, 80}
	g := New(cfg)

	in := baseInput()
	in.Missing = []string{"guantes de nitrilo", "lentes de seguridad", "casco dieléctrico"}

	msg := g.Hint(in) // attempts 0, hints 0 -> tier 0
	if n := len([]rune(msg)); n > 40 {
		t.Errorf("tier-0 hint is %d chars, budget 40", n)
	}
}

func TestHint_OpenShapeSkipsTruncation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CharBudgets = [3]int{10, 10, 10}
	g := New(cfg)

	in := baseInput()
	in.Shape = plan.ShapeOpen

	msg := g.Hint(in)
	if len([]rune(msg)) <= 10 {
		t.Errorf("open-shape hint was truncated: %q", msg)
	}
}

func TestReask_ShapeTemplates(t *testing.T) {
	g := New(DefaultConfig())
	in := baseInput()

	tests := []struct {
		shape plan.AnswerShape
		want  string
	}{
		{plan.ShapeList, "dos elementos"},
		{plan.ShapeApplication, "porqué"},
		{plan.ShapeOpen, "palabras"},
		{plan.ShapeConceptual, "Intenta otra vez"},
	}
	for _, tc := range tests {
		in.Shape = tc.shape
		msg := g.Reask(in)
		if !strings.Contains(msg, tc.want) {
			t.Errorf("Reask(%s) = %q, want substring %q", tc.shape, msg, tc.want)
		}
		if !strings.Contains(msg, in.Question) {
			t.Errorf("Reask(%s) dropped the question", tc.shape)
		}
	}
}

func TestReask_OpenIncludesWordBounds(t *testing.T) {
	g := New(DefaultConfig())
	in := baseInput()
	in.Shape = plan.ShapeOpen

	msg := g.Reask(in)
	if !strings.Contains(msg, "10") || !strings.Contains(msg, "60") {
		t.Errorf("open re-ask lacks word bounds: %q", msg)
	}
}

func TestAskSimple_UsesKeywordCue(t *testing.T) {
	g := New(DefaultConfig())
	msg := g.AskSimple(baseInput())
	if !strings.Contains(msg, "más fácil") {
		t.Errorf("AskSimple = %q", msg)
	}
	if !strings.Contains(msg, "casco") && !strings.Contains(msg, "equipo") {
		t.Errorf("AskSimple lacks a keyword cue: %q", msg)
	}
}

func TestAskOptions(t *testing.T) {
	g := New(DefaultConfig())
	in := baseInput()

	msg := g.AskOptions(in, "casco")
	if !strings.Contains(msg, `"casco"`) || !strings.Contains(msg, "sí o no") {
		t.Errorf("AskOptions = %q", msg)
	}

	// Empty correct option falls back to the first expected token.
	msg = g.AskOptions(in, "")
	if !strings.Contains(msg, `"casco"`) {
		t.Errorf("AskOptions fallback = %q", msg)
	}
}

func TestKeywords(t *testing.T) {
	got := Keywords("el casco y los guantes de seguridad para la obra con seguridad", 4, 3)
	want := []string{"casco", "guantes", "seguridad"}
	if len(got) != len(want) {
		t.Fatalf("Keywords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keywords[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
