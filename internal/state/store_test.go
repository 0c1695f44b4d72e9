package state

import (
	"context"
	"errors"
	"testing"
)

// storeUnderTest exercises the Store contract shared by every backend.
func storeUnderTest(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on missing key: err = %v, want ErrNotFound", err)
	}

	st := New("s1", "file://lesson.json", nil)
	st.MomentIdx = 2
	st.StepIdx = 1
	st.Asked["m03_s02"] = true
	st.QuestionFor("m03_s02").Attempts = 2
	st.Enqueue(QueuedOp{Kind: OpRepeat, MomentIdx: 2})
	st.SpendCents(7)

	if err := s.Set(ctx, "s1", st); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.MomentIdx != 2 || got.StepIdx != 1 {
		t.Errorf("cursor = (%d,%d), want (2,1)", got.MomentIdx, got.StepIdx)
	}
	if !got.Asked["m03_s02"] {
		t.Error("Asked flag lost in roundtrip")
	}
	if q := got.QuestionFor("m03_s02"); q.Attempts != 2 {
		t.Errorf("question attempts = %d, want 2", q.Attempts)
	}
	if len(got.Queue) != 1 || got.Queue[0].Kind != OpRepeat {
		t.Errorf("queue = %+v", got.Queue)
	}
	if got.BudgetCentsLeft != DefaultBudgetCents-7 {
		t.Errorf("budget = %d, want %d", got.BudgetCentsLeft, DefaultBudgetCents-7)
	}
	if got.Plan != nil {
		t.Error("compiled plan must not survive serialization")
	}

	// Last write wins.
	got.MomentIdx = 3
	if err := s.Set(ctx, "s1", got); err != nil {
		t.Fatalf("second Set: %v", err)
	}
	got2, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get after overwrite: %v", err)
	}
	if got2.MomentIdx != 3 {
		t.Errorf("overwrite lost: MomentIdx = %d", got2.MomentIdx)
	}

	// Mutating the caller's copy after Set must not affect the stored record.
	got2.StepIdx = 99
	fresh, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get after caller mutation: %v", err)
	}
	if fresh.StepIdx == 99 {
		t.Error("store aliased the caller's state")
	}

	if err := s.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete: err = %v, want ErrNotFound", err)
	}

	// Delete is idempotent.
	if err := s.Delete(ctx, "s1"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	storeUnderTest(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	storeUnderTest(t, fs)
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	key := "../escape/../../etc"
	if err := fs.Set(ctx, key, New(key, "u", nil)); err != nil {
		t.Fatalf("Set with hostile key: %v", err)
	}
	got, err := fs.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get with hostile key: %v", err)
	}
	if got.SessionKey != key {
		t.Errorf("SessionKey = %q", got.SessionKey)
	}
}
