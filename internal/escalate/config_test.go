package escalate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_Precedence(t *testing.T) {
	base := DefaultPolicy()

	two, four := 2, 4
	lesson := &Overrides{ForceAdvanceAfter: &two, MaxAttempts: &four}
	course := &Overrides{ForceAdvanceAfter: &four}

	// Later scopes win: course overrides lesson, lesson overrides base.
	got := Resolve(base, lesson, course)
	if got.ForceAdvanceAfter != 4 {
		t.Errorf("ForceAdvanceAfter = %d, want 4 (course scope)", got.ForceAdvanceAfter)
	}
	if got.MaxAttempts != 4 {
		t.Errorf("MaxAttempts = %d, want 4 (lesson scope)", got.MaxAttempts)
	}
	if got.ConvergeMinMatched != base.ConvergeMinMatched {
		t.Errorf("untouched field changed: %d", got.ConvergeMinMatched)
	}
}

func TestResolve_NilScopesIgnored(t *testing.T) {
	base := DefaultPolicy()
	got := Resolve(base, nil, nil)
	if got.ForceAdvanceAfter != base.ForceAdvanceAfter || got.MaxAttempts != base.MaxAttempts {
		t.Errorf("nil scopes changed the policy: %+v", got)
	}
}

func TestLoadOverrides_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.yaml")
	raw := []byte(`
thresholds:
  ask: 2
  hint: 1
force_advance_after: 2
force_advance_kinds: [practice]
max_attempts: 4
`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	ov, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides() error = %v", err)
	}
	if ov.Thresholds[RungAsk] != 2 || ov.Thresholds[RungHint] != 1 {
		t.Errorf("Thresholds = %v", ov.Thresholds)
	}
	if ov.ForceAdvanceAfter == nil || *ov.ForceAdvanceAfter != 2 {
		t.Errorf("ForceAdvanceAfter = %v", ov.ForceAdvanceAfter)
	}
	if ov.ConvergeMinMatched != nil {
		t.Error("absent field should stay nil")
	}

	merged := Resolve(DefaultPolicy(), ov)
	if merged.ForceAdvanceAfter != 2 || merged.MaxAttempts != 4 {
		t.Errorf("merged = %+v", merged)
	}
}

func TestLoadOverrides_MissingFile(t *testing.T) {
	if _, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadOverrides() accepted a missing file")
	}
}
