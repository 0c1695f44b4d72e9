package turn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aulalab/aula/internal/classify"
	"github.com/aulalab/aula/internal/feedback"
	"github.com/aulalab/aula/internal/llm"
	"github.com/aulalab/aula/internal/state"
)

const lessonScript = `{
	"meta": {"title": "Seguridad en obra", "code": "seg01", "language": "es"},
	"moments": [
		{
			"title": "El casco",
			"kind": "practice",
			"steps": [
				{"type": "content", "body": "El casco protege tu cabeza de golpes y caídas de objetos."},
				{
					"type": "question",
					"question": "¿Qué elemento protege tu cabeza en la obra?",
					"objective": "Identificar el casco como protección de la cabeza",
					"acceptable_answers": ["el casco", "casco"],
					"answer_type": "identification"
				}
			]
		},
		{
			"title": "Repaso del equipo",
			"kind": "review",
			"steps": [
				{"type": "content", "body": "Repasemos el equipo de protección personal completo."},
				{
					"type": "question",
					"question": "¿Qué elementos de protección recuerdas?",
					"acceptable_answers": ["casco", "guantes", "lentes"],
					"answer_type": "list"
				}
			]
		}
	]
}`

// memLoader serves scripts from memory so tests never touch the disk.
type memLoader map[string]string

func (m memLoader) Load(_ context.Context, url string) ([]byte, error) {
	raw, ok := m[url]
	if !ok {
		return nil, fmt.Errorf("no script at %q", url)
	}
	return []byte(raw), nil
}

type traceRecorder struct {
	entries []feedback.TraceEntry
}

func (r *traceRecorder) Append(_ context.Context, entry feedback.TraceEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

type stubScorer struct {
	score classify.SemanticScore
}

func (s *stubScorer) Score(_ context.Context, _ string, _ []string) (classify.SemanticScore, error) {
	return s.score, nil
}

func newTestEngine(t *testing.T, opts ...Option) (*Engine, state.Store) {
	t.Helper()
	st := state.NewMemoryStore()
	opts = append([]Option{WithLoader(memLoader{"lesson.json": lessonScript})}, opts...)
	return New(st, DefaultConfig(), opts...), st
}

func play(t *testing.T, e *Engine, req Request) *Response {
	t.Helper()
	resp, err := e.Play(context.Background(), req)
	if err != nil {
		t.Fatalf("Play(%+v): %v", req, err)
	}
	return resp
}

func startSession(t *testing.T, e *Engine, key string) *Response {
	t.Helper()
	return play(t, e, Request{SessionKey: key, PlanURL: "lesson.json", Reset: true})
}

func TestPlay_FirstTurnPresentsAndAsks(t *testing.T) {
	e, store := newTestEngine(t)

	resp := startSession(t, e, "s1")

	if !strings.Contains(resp.Message, "El casco protege tu cabeza") {
		t.Errorf("first turn did not present the content: %q", resp.Message)
	}
	if resp.FollowUp != "¿Qué elemento protege tu cabeza en la obra?" {
		t.Errorf("FollowUp = %q", resp.FollowUp)
	}
	if resp.State.MomentIdx != 0 || resp.State.StepIdx != 1 || resp.State.Done {
		t.Errorf("cursor = %+v", resp.State)
	}
	if resp.Assessment != nil {
		t.Error("presentation turn must not carry an assessment")
	}

	saved, err := store.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("state not persisted: %v", err)
	}
	if !saved.Asked[resp.State.StepCode] {
		t.Errorf("asked flag not persisted for %q", resp.State.StepCode)
	}
}

func TestPlay_MissingStateWithoutReset(t *testing.T) {
	e, _ := newTestEngine(t)

	_, err := e.Play(context.Background(), Request{SessionKey: "ghost", PlanURL: "lesson.json"})
	if !errors.Is(err, state.ErrNotFound) {
		t.Fatalf("err = %v, want state.ErrNotFound", err)
	}
}

func TestPlay_EmptySessionKey(t *testing.T) {
	e, _ := newTestEngine(t)
	if _, err := e.Play(context.Background(), Request{PlanURL: "lesson.json", Reset: true}); err == nil {
		t.Fatal("empty session key accepted")
	}
}

func TestPlay_AcceptAdvancesToNextMoment(t *testing.T) {
	e, store := newTestEngine(t)
	startSession(t, e, "s1")

	resp := play(t, e, Request{SessionKey: "s1", UserInput: "casco"})

	if resp.Assessment == nil {
		t.Fatal("settled turn carries no assessment")
	}
	if resp.Assessment.Level != string(classify.Accept) || resp.Assessment.Score != 1 {
		t.Errorf("assessment = %+v", resp.Assessment)
	}
	if !strings.Contains(resp.Message, "Repasemos el equipo") {
		t.Errorf("next moment's content missing: %q", resp.Message)
	}
	if resp.FollowUp != "¿Qué elementos de protección recuerdas?" {
		t.Errorf("FollowUp = %q", resp.FollowUp)
	}
	if resp.State.MomentIdx != 1 || resp.State.StepIdx != 1 {
		t.Errorf("cursor = %+v", resp.State)
	}

	saved, _ := store.Get(context.Background(), "s1")
	if len(saved.Answered) != 1 {
		t.Errorf("Answered = %v", saved.Answered)
	}
}

func TestPlay_ListAnswerFinishesLesson(t *testing.T) {
	e, _ := newTestEngine(t)
	startSession(t, e, "s1")
	play(t, e, Request{SessionKey: "s1", UserInput: "casco"})

	resp := play(t, e, Request{SessionKey: "s1", UserInput: "casco y guantes obligatorios"})

	if resp.Assessment == nil || resp.Assessment.Score != 1 {
		t.Fatalf("assessment = %+v", resp.Assessment)
	}
	if !resp.State.Done {
		t.Error("lesson should be done after the last question settles")
	}
	if !strings.Contains(resp.Message, closingMessage) {
		t.Errorf("closing message missing: %q", resp.Message)
	}

	// A turn on a finished session stays closed and non-empty.
	again := play(t, e, Request{SessionKey: "s1", UserInput: "hola"})
	if again.Message != closingMessage || !again.State.Done {
		t.Errorf("post-completion turn = %+v", again)
	}
}

func TestPlay_ThreeDontKnowForcesAdvance(t *testing.T) {
	rec := &traceRecorder{}
	e, store := newTestEngine(t, WithTrace(rec))
	startSession(t, e, "s1")

	first := play(t, e, Request{SessionKey: "s1", UserInput: "no sé"})
	if first.Assessment != nil {
		t.Fatal("first no-understanding turn must not settle")
	}
	if first.Message == "" || first.FollowUp == "" {
		t.Errorf("hint turn = %+v", first)
	}

	second := play(t, e, Request{SessionKey: "s1", UserInput: "no sé"})
	if second.Assessment != nil {
		t.Fatal("second no-understanding turn must not settle")
	}
	if second.State.MomentIdx != 0 {
		t.Errorf("cursor moved early: %+v", second.State)
	}

	third := play(t, e, Request{SessionKey: "s1", UserInput: "no sé"})
	if third.Assessment == nil {
		t.Fatal("third no-understanding turn on a practice moment must settle")
	}
	if third.Assessment.Score != 0 {
		t.Errorf("forced advance score = %v, want 0", third.Assessment.Score)
	}
	if !strings.Contains(third.Message, "Te lo explico") {
		t.Errorf("forced advance should explain before moving on: %q", third.Message)
	}
	if third.State.MomentIdx != 1 || third.State.StepIdx != 1 {
		t.Errorf("cursor = %+v, want next moment's question", third.State)
	}

	if len(rec.entries) != 3 {
		t.Fatalf("trace entries = %d, want 3", len(rec.entries))
	}
	if rec.entries[0].Label != feedback.LabelF0 || rec.entries[1].Label != feedback.LabelF1 {
		t.Errorf("trace labels = %s, %s", rec.entries[0].Label, rec.entries[1].Label)
	}

	saved, _ := store.Get(context.Background(), "s1")
	if saved.EscalationsUsed == 0 {
		t.Error("escalations counter never moved")
	}
}

func TestPlay_SemanticCallSpendsBudget(t *testing.T) {
	scorer := &stubScorer{score: classify.SemanticScore{Centroid: 0.9, BestScore: 0.9}}
	e, store := newTestEngine(t, WithScorer(scorer))
	startSession(t, e, "s1")

	resp := play(t, e, Request{SessionKey: "s1",
		UserInput: "es un objeto rigido que usamos arriba del cuerpo"})

	if resp.Assessment == nil || resp.Assessment.Level != string(classify.Accept) {
		t.Fatalf("semantic accept expected, got %+v", resp.Assessment)
	}

	saved, _ := store.Get(context.Background(), "s1")
	if saved.BudgetCentsLeft != state.DefaultBudgetCents-1 {
		t.Errorf("budget = %d, want %d", saved.BudgetCentsLeft, state.DefaultBudgetCents-1)
	}
}

func TestPlay_BudgetExhaustedUsesCheapClassifier(t *testing.T) {
	scorer := &stubScorer{score: classify.SemanticScore{Centroid: 0.9, BestScore: 0.9}}
	e, store := newTestEngine(t, WithScorer(scorer))
	startSession(t, e, "s1")

	drained, _ := store.Get(context.Background(), "s1")
	drained.BudgetCentsLeft = 0
	if err := store.Set(context.Background(), "s1", drained); err != nil {
		t.Fatal(err)
	}

	resp := play(t, e, Request{SessionKey: "s1",
		UserInput: "es un objeto rigido que usamos arriba del cuerpo"})

	// Without the semantic fallback this utterance matches nothing.
	if resp.Assessment != nil {
		t.Fatalf("exhausted budget still reached the semantic path: %+v", resp.Assessment)
	}
	saved, _ := store.Get(context.Background(), "s1")
	if saved.BudgetCentsLeft != 0 {
		t.Errorf("budget = %d, want 0 (never spends below zero)", saved.BudgetCentsLeft)
	}
}

func TestPlay_PhraseRewritesTemplates(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"message":"Tranquilo, pensemos juntos en lo que cubre tu cabeza."}`),
	})
	e, store := newTestEngine(t, WithProvider(provider))
	startSession(t, e, "s1")

	resp := play(t, e, Request{SessionKey: "s1", UserInput: "no sé"})

	if resp.Message != "Tranquilo, pensemos juntos en lo que cubre tu cabeza." {
		t.Errorf("message = %q", resp.Message)
	}
	saved, _ := store.Get(context.Background(), "s1")
	if saved.BudgetCentsLeft != state.DefaultBudgetCents-1 {
		t.Errorf("budget = %d, want %d", saved.BudgetCentsLeft, state.DefaultBudgetCents-1)
	}

	// Provider queue drained: next phrasing attempt fails and the
	// template text survives.
	next := play(t, e, Request{SessionKey: "s1", UserInput: "no sé"})
	if next.Message == "" {
		t.Error("template must survive a phrasing failure")
	}
}

func TestPlay_RefocusReteachesNextTurn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HintBudget = 1
	scorer := &stubScorer{score: classify.SemanticScore{Centroid: 0.1, BestScore: 0.1}}
	store := state.NewMemoryStore()
	e := New(store, cfg,
		WithLoader(memLoader{"lesson.json": lessonScript}),
		WithScorer(scorer))
	startSession(t, e, "s1")

	// First off-topic answer earns the one budgeted hint.
	hintTurn := play(t, e, Request{SessionKey: "s1",
		UserInput: "es un objeto rigido que usamos arriba del cuerpo"})
	if hintTurn.FollowUp == "" {
		t.Fatalf("hint turn = %+v", hintTurn)
	}

	// Second one exhausts the hints: refocus, scheduling a re-teach.
	refocusTurn := play(t, e, Request{SessionKey: "s1",
		UserInput: "sirve cuando hay mucho ruido en los pasillos grandes"})
	if !strings.Contains(refocusTurn.Message, "alejando") {
		t.Fatalf("refocus message missing: %q", refocusTurn.Message)
	}

	saved, _ := store.Get(context.Background(), "s1")
	if len(saved.Queue) != 1 || saved.Queue[0].Kind != state.OpRepeat {
		t.Fatalf("queued ops = %+v", saved.Queue)
	}

	// The next turn re-teaches the feeding content and re-asks.
	reteach := play(t, e, Request{SessionKey: "s1"})
	if !strings.Contains(reteach.Message, "El casco protege tu cabeza") {
		t.Errorf("re-teach content missing: %q", reteach.Message)
	}
	if reteach.FollowUp != "¿Qué elemento protege tu cabeza en la obra?" {
		t.Errorf("FollowUp = %q", reteach.FollowUp)
	}
}

func TestPlay_ResponseNeverEmpty(t *testing.T) {
	e, _ := newTestEngine(t)
	startSession(t, e, "s1")

	// Empty input on a pending question re-presents rather than stalls.
	resp := play(t, e, Request{SessionKey: "s1"})
	if resp.Message == "" && resp.FollowUp == "" {
		t.Fatalf("empty response: %+v", resp)
	}
}
