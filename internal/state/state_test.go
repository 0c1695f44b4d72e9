package state

import (
	"testing"

	"github.com/aulalab/aula/internal/escalate"
)

func TestNewSessionState(t *testing.T) {
	s := New("s1", "file://lesson.json", nil)

	if s.SessionKey != "s1" || s.PlanURL != "file://lesson.json" {
		t.Fatalf("identity fields = %+v", s)
	}
	if s.MomentIdx != 0 || s.StepIdx != 0 {
		t.Fatalf("cursor not at origin: (%d,%d)", s.MomentIdx, s.StepIdx)
	}
	if s.BudgetCentsLeft != DefaultBudgetCents {
		t.Fatalf("BudgetCentsLeft = %d, want %d", s.BudgetCentsLeft, DefaultBudgetCents)
	}
	if !s.AdaptiveMode {
		t.Fatal("AdaptiveMode should default to true")
	}
	if s.Done {
		t.Fatal("fresh session must not be done")
	}
}

func TestQuestionFor(t *testing.T) {
	s := New("s1", "u", nil)

	q := s.QuestionFor("m01_s02")
	if q.Rung != escalate.RungAsk {
		t.Fatalf("fresh progress rung = %s, want ask", q.Rung)
	}
	q.Attempts = 3

	again := s.QuestionFor("m01_s02")
	if again.Attempts != 3 {
		t.Fatalf("QuestionFor did not return the same record: attempts = %d", again.Attempts)
	}

	// Survives a nil map (state loaded from an older record).
	s.Questions = nil
	if got := s.QuestionFor("m02_s01"); got == nil {
		t.Fatal("QuestionFor on nil map returned nil")
	}
}

func TestSpendCents(t *testing.T) {
	s := New("s1", "u", nil)
	s.BudgetCentsLeft = 3

	s.SpendCents(1)
	if s.BudgetCentsLeft != 2 {
		t.Fatalf("after spend 1: %d", s.BudgetCentsLeft)
	}
	s.SpendCents(0)
	s.SpendCents(-5)
	if s.BudgetCentsLeft != 2 {
		t.Fatalf("non-positive spends must be no-ops: %d", s.BudgetCentsLeft)
	}

	s.SpendCents(10)
	if s.BudgetCentsLeft != 0 {
		t.Fatalf("budget must clamp at zero: %d", s.BudgetCentsLeft)
	}
	if !s.BudgetExhausted() {
		t.Fatal("BudgetExhausted = false at zero")
	}

	// Monotone: no spend path increases the budget back.
	s.SpendCents(1)
	if s.BudgetCentsLeft != 0 {
		t.Fatalf("budget rose after exhaustion: %d", s.BudgetCentsLeft)
	}
}

func TestRecordEscalation(t *testing.T) {
	s := New("s1", "u", nil)
	for i := 1; i <= 3; i++ {
		s.RecordEscalation()
		if s.EscalationsUsed != i {
			t.Fatalf("EscalationsUsed = %d, want %d", s.EscalationsUsed, i)
		}
	}
}

func TestQueueFIFO(t *testing.T) {
	s := New("s1", "u", nil)

	if _, ok := s.Dequeue(); ok {
		t.Fatal("Dequeue on empty queue reported ok")
	}

	s.Enqueue(QueuedOp{Kind: OpRepeat, MomentIdx: 1, StepIdx: 0})
	s.Enqueue(QueuedOp{Kind: OpMicroStep, Text: "un ejemplo"})

	op, ok := s.Dequeue()
	if !ok || op.Kind != OpRepeat || op.MomentIdx != 1 {
		t.Fatalf("first dequeue = %+v ok=%v", op, ok)
	}
	op, ok = s.Dequeue()
	if !ok || op.Kind != OpMicroStep || op.Text != "un ejemplo" {
		t.Fatalf("second dequeue = %+v ok=%v", op, ok)
	}
	if _, ok := s.Dequeue(); ok {
		t.Fatal("queue should be drained")
	}
}
