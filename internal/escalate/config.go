package escalate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy holds every escalation threshold. Nothing here is hard-coded at
// decision sites; scopes override these values with later scopes winning
// (request > course > lesson > built-in default).
type Policy struct {
	// Thresholds holds per-rung no-understanding counts required before
	// the ladder advances past that rung. Empty means unconfigured: any
	// non-ACCEPT advances one rung per turn (PARTIAL included).
	Thresholds map[Rung]int `yaml:"thresholds"`

	// ForceAdvanceAfter forces progression to the next plan step once the
	// no-understanding count reaches it, provided the current moment kind
	// is allow-listed. Zero disables.
	ForceAdvanceAfter int      `yaml:"force_advance_after"`
	ForceAdvanceKinds []string `yaml:"force_advance_kinds"`

	// MaxAttempts caps accumulated attempts per question; reaching it
	// forces advancement with credit set by whether a PARTIAL was seen.
	MaxAttempts int `yaml:"max_attempts"`

	// Early-convergence bounds: mark the question answered with partial
	// credit once matched/missing counts or semantic similarity cross
	// these, without further turns.
	ConvergeMinMatched  int     `yaml:"converge_min_matched"`
	ConvergeMaxMissing  int     `yaml:"converge_max_missing"`
	ConvergeSemanticMin float64 `yaml:"converge_semantic_min"`
}

// DefaultPolicy returns the built-in escalation defaults.
func DefaultPolicy() Policy {
	return Policy{
		Thresholds:          nil, // unconfigured: symmetric one-rung advance
		ForceAdvanceAfter:   3,
		ForceAdvanceKinds:   []string{"practice", "case", "review"},
		MaxAttempts:         5,
		ConvergeMinMatched:  2,
		ConvergeMaxMissing:  1,
		ConvergeSemanticMin: 0.85,
	}
}

// Overrides is a partial Policy: nil fields inherit from the next scope
// down. Explicit optional fields, not loose maps, so precedence stays
// auditable.
type Overrides struct {
	Thresholds          map[Rung]int `yaml:"thresholds"`
	ForceAdvanceAfter   *int         `yaml:"force_advance_after"`
	ForceAdvanceKinds   []string     `yaml:"force_advance_kinds"`
	MaxAttempts         *int         `yaml:"max_attempts"`
	ConvergeMinMatched  *int         `yaml:"converge_min_matched"`
	ConvergeMaxMissing  *int         `yaml:"converge_max_missing"`
	ConvergeSemanticMin *float64     `yaml:"converge_semantic_min"`
}

// Resolve merges override scopes onto the default policy. Scopes apply in
// argument order, so callers pass lesson, course, request — later wins.
func Resolve(base Policy, scopes ...*Overrides) Policy {
	out := base
	for _, o := range scopes {
		if o == nil {
			continue
		}
		if o.Thresholds != nil {
			out.Thresholds = o.Thresholds
		}
		if o.ForceAdvanceAfter != nil {
			out.ForceAdvanceAfter = *o.ForceAdvanceAfter
		}
		if o.ForceAdvanceKinds != nil {
			out.ForceAdvanceKinds = o.ForceAdvanceKinds
		}
		if o.MaxAttempts != nil {
			out.MaxAttempts = *o.MaxAttempts
		}
		if o.ConvergeMinMatched != nil {
			out.ConvergeMinMatched = *o.ConvergeMinMatched
		}
		if o.ConvergeMaxMissing != nil {
			out.ConvergeMaxMissing = *o.ConvergeMaxMissing
		}
		if o.ConvergeSemanticMin != nil {
			out.ConvergeSemanticMin = *o.ConvergeSemanticMin
		}
	}
	return out
}

// LoadOverrides reads a YAML override file (course or lesson scope).
func LoadOverrides(path string) (*Overrides, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}
	var o Overrides
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("parse policy file %s: %w", path, err)
	}
	return &o, nil
}
