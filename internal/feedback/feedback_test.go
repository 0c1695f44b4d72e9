package feedback

import (
	"testing"
	"time"

	"github.com/aulalab/aula/internal/classify"
)

func TestComputeLabel(t *testing.T) {
	tests := []struct {
		kind    classify.Kind
		attempt int
		want    Label
	}{
		{classify.Hint, 0, LabelF0},
		{classify.Hint, 1, LabelF0},
		{classify.Hint, 2, LabelF1},
		{classify.Hint, 7, LabelF1},
		{classify.Partial, 0, LabelF2},
		{classify.Accept, 5, LabelF2},
		{classify.Refocus, 1, LabelF2},
	}
	for _, tc := range tests {
		if got := ComputeLabel(tc.kind, tc.attempt); got != tc.want {
			t.Errorf("ComputeLabel(%s, %d) = %s, want %s", tc.kind, tc.attempt, got, tc.want)
		}
	}
}

func TestBuildTraceEntry(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	entry := BuildTraceEntry("s1", "m01_s02", "¿Qué es?", "no sé", "Pista: ...",
		classify.Hint, 1, 0, at)

	if entry.Label != LabelF0 {
		t.Errorf("Label = %s, want F0", entry.Label)
	}
	if entry.SessionKey != "s1" || entry.StepCode != "m01_s02" {
		t.Errorf("identity fields = %+v", entry)
	}
	if entry.Kind != classify.Hint || entry.Attempt != 1 || entry.HintsUsed != 0 {
		t.Errorf("counters = %+v", entry)
	}
	if !entry.At.Equal(at) {
		t.Errorf("At = %v, want %v", entry.At, at)
	}
}
