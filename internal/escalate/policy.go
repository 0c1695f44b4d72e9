package escalate

import "github.com/aulalab/aula/internal/classify"

// Credit is the score a question settles with.
type Credit float64

const (
	CreditZero    Credit = 0
	CreditPartial Credit = 0.5
	CreditFull    Credit = 1
)

// History is the per-question counter snapshot the policy decides over.
type History struct {
	Rung            Rung
	Attempts        int
	HintsUsed       int
	NoUnderstanding int
	SawPartial      bool
	MomentKind      string
}

// Decision is the policy output for one turn.
type Decision struct {
	Rung Rung

	// Advance forces progression to the next plan step this turn,
	// settling the question with Credit.
	Advance bool
	Credit  Credit

	// Converged marks early partial-credit convergence (question
	// answered without further turns, no forced plan jump).
	Converged bool
}

// Decide maps a classification plus per-question history onto the next
// ladder position and any forced-advance outcome. Pure: no state here.
//
// An ACCEPT transitions to ok unconditionally, whatever the ladder says.
// Forced advancement is decided independently of ladder movement.
func Decide(p Policy, res classify.Result, h History) Decision {
	if res.Kind == classify.Accept {
		return Decision{Rung: RungOK, Advance: true, Credit: CreditFull}
	}

	// Early convergence on strong partial evidence.
	if res.Kind == classify.Partial && converged(p, res) {
		return Decision{Rung: RungOK, Credit: CreditPartial, Converged: true, Advance: true}
	}

	rung := climb(p, h)

	// No-understanding forced advance, gated by moment kind.
	if p.ForceAdvanceAfter > 0 &&
		h.NoUnderstanding >= p.ForceAdvanceAfter &&
		kindAllowed(p.ForceAdvanceKinds, h.MomentKind) {
		return Decision{Rung: rung, Advance: true, Credit: exhaustedCredit(h, res)}
	}

	// Attempt-cap forced advance.
	if p.MaxAttempts > 0 && h.Attempts >= p.MaxAttempts {
		return Decision{Rung: rung, Advance: true, Credit: exhaustedCredit(h, res)}
	}

	// Explain is terminal remediation: show it, settle, move on.
	if rung == RungExplain && h.Rung == RungExplain {
		return Decision{Rung: rung, Advance: true, Credit: exhaustedCredit(h, res)}
	}

	return Decision{Rung: rung}
}

// climb computes the next ladder position for a non-ACCEPT turn. The
// ladder never regresses.
func climb(p Policy, h History) Rung {
	cur := h.Rung
	if cur == "" {
		cur = RungAsk
	}
	if cur == RungOK {
		return RungOK
	}

	if len(p.Thresholds) == 0 {
		// Unconfigured: one rung per non-ACCEPT turn, PARTIAL and weaker
		// alike (deliberate symmetry; configure Thresholds to slow
		// PARTIAL escalation).
		return Next(cur)
	}

	need, ok := p.Thresholds[cur]
	if !ok || h.NoUnderstanding >= need {
		return Next(cur)
	}
	return cur
}

func converged(p Policy, res classify.Result) bool {
	if p.ConvergeMinMatched > 0 &&
		len(res.Matched) >= p.ConvergeMinMatched &&
		len(res.Missing) <= p.ConvergeMaxMissing {
		return true
	}
	if res.Semantic != nil && p.ConvergeSemanticMin > 0 &&
		res.Semantic.Centroid >= p.ConvergeSemanticMin {
		return true
	}
	return false
}

func exhaustedCredit(h History, res classify.Result) Credit {
	if h.SawPartial || res.Kind == classify.Partial {
		return CreditPartial
	}
	return CreditZero
}

func kindAllowed(kinds []string, kind string) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
