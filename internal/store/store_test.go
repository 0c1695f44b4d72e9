package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aulalab/aula/internal/classify"
	"github.com/aulalab/aula/internal/feedback"
	"github.com/aulalab/aula/internal/llm"
	"github.com/aulalab/aula/internal/state"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestSessionStoreRoundtrip(t *testing.T) {
	repo := openTestStore(t).SessionStore()
	ctx := context.Background()

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, state.ErrNotFound) {
		t.Fatalf("Get on missing key: err = %v, want state.ErrNotFound", err)
	}

	st := state.New("s1", "lesson.json", nil)
	st.MomentIdx = 1
	st.Asked["m02_s01"] = true
	if err := repo.Set(ctx, "s1", st); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.MomentIdx != 1 || !got.Asked["m02_s01"] {
		t.Errorf("roundtrip lost fields: %+v", got)
	}

	// Set over an existing row updates in place.
	got.MomentIdx = 2
	if err := repo.Set(ctx, "s1", got); err != nil {
		t.Fatalf("second Set: %v", err)
	}
	got2, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got2.MomentIdx != 2 {
		t.Errorf("update lost: MomentIdx = %d", got2.MomentIdx)
	}

	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, "s1"); !errors.Is(err, state.ErrNotFound) {
		t.Fatalf("Get after delete: err = %v, want state.ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete must be idempotent: %v", err)
	}
}

func TestTraceRepoAppendAndCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.TraceRepo()
	ctx := context.Background()
	at := time.Now().UTC().Truncate(time.Second)

	entries := []feedback.TraceEntry{
		feedback.BuildTraceEntry("s1", "m01_s02", "¿Qué es?", "no sé", "Pista", classify.Hint, 1, 0, at),
		feedback.BuildTraceEntry("s1", "m01_s02", "¿Qué es?", "algo", "Vas bien", classify.Partial, 2, 1, at),
		feedback.BuildTraceEntry("s1", "m01_s02", "¿Qué es?", "el casco", "¡Muy bien!", classify.Accept, 3, 1, at),
		feedback.BuildTraceEntry("other", "m01_s02", "¿Qué es?", "x", "y", classify.Hint, 1, 0, at),
	}
	for i, e := range entries {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.BySession(ctx, "s1")
	if err != nil {
		t.Fatalf("BySession: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	// Sequence order is insertion order.
	if got[0].Kind != classify.Hint || got[2].Kind != classify.Accept {
		t.Errorf("entries out of order: %v, %v", got[0].Kind, got[2].Kind)
	}
	if got[0].Label != feedback.LabelF0 || got[0].Prompt != "¿Qué es?" {
		t.Errorf("first entry = %+v", got[0])
	}
	if !got[0].At.Equal(at) {
		t.Errorf("At = %v, want %v", got[0].At, at)
	}

	counts, err := repo.Counts(ctx, "s1")
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if counts.Attempts != 3 || counts.Hints != 2 || counts.Accepts != 1 {
		t.Errorf("counts = %+v", counts)
	}
}

func TestLLMRepoTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMRepo()
	ctx := context.Background()

	events := []llm.RequestEvent{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "hint",
			InputTokens: 100, OutputTokens: 40, CostCents: 1, LatencyMs: 220, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "feedback",
			InputTokens: 80, OutputTokens: 30, CostCents: 1, LatencyMs: 190, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "hint",
			Success: false, ErrorMessage: "rate limited"},
	}
	for i, ev := range events {
		if err := repo.RecordLLMRequest(ctx, ev); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	totals, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if totals.Requests != 3 {
		t.Errorf("Requests = %d, want 3", totals.Requests)
	}
	if totals.InputTokens != 180 || totals.OutputTokens != 70 {
		t.Errorf("tokens = %d/%d", totals.InputTokens, totals.OutputTokens)
	}
	if totals.CostCents != 2 {
		t.Errorf("CostCents = %d, want 2", totals.CostCents)
	}
}

func TestSequenceOrdersAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	at := time.Now().UTC()

	if err := s.TraceRepo().Append(ctx,
		feedback.BuildTraceEntry("s1", "m01_s01", "q", "a", "f", classify.Accept, 1, 0, at)); err != nil {
		t.Fatal(err)
	}
	if err := s.LLMRepo().RecordLLMRequest(ctx, llm.RequestEvent{Provider: "mock", Model: "mock"}); err != nil {
		t.Fatal(err)
	}

	next, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if next != 3 {
		t.Errorf("next sequence = %d, want 3 (two events consumed 1 and 2)", next)
	}
}
