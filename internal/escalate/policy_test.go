package escalate

import (
	"testing"

	"github.com/aulalab/aula/internal/classify"
)

func TestLadder_NextNeverRegresses(t *testing.T) {
	cur := RungAsk
	for i := 0; i < 10; i++ {
		next := Next(cur)
		if Index(next) < Index(cur) {
			t.Fatalf("ladder regressed: %s -> %s", cur, next)
		}
		cur = next
	}
	if cur != RungExplain {
		t.Errorf("ladder should hold at explain, got %s", cur)
	}
}

func TestDecide_AcceptAlwaysWins(t *testing.T) {
	res := classify.Result{Kind: classify.Accept}
	for _, rung := range []Rung{RungAsk, RungHint, RungAskOptions, RungExplain} {
		dec := Decide(DefaultPolicy(), res, History{Rung: rung, Attempts: 4})
		if dec.Rung != RungOK || !dec.Advance || dec.Credit != CreditFull {
			t.Errorf("from %s: got %+v, want ok/advance/full", rung, dec)
		}
	}
}

func TestDecide_UnconfiguredClimbsOneRungPerTurn(t *testing.T) {
	p := DefaultPolicy() // Thresholds empty

	h := History{Rung: RungAsk, MomentKind: "intro"}
	res := classify.Result{Kind: classify.Hint, Reason: classify.ReasonNoMatch}

	want := []Rung{RungHint, RungAskSimple, RungAskOptions, RungExplain}
	for i, w := range want {
		h.Attempts++
		dec := Decide(p, res, h)
		if dec.Rung != w {
			t.Fatalf("turn %d: rung = %s, want %s", i+1, dec.Rung, w)
		}
		if Index(dec.Rung) < Index(h.Rung) {
			t.Fatalf("turn %d: ladder regressed", i+1)
		}
		h.Rung = dec.Rung
	}
}

func TestDecide_PartialClimbsSameAsHintWhenUnconfigured(t *testing.T) {
	p := DefaultPolicy()
	p.ConvergeMinMatched = 0
	p.ConvergeSemanticMin = 0

	hint := Decide(p, classify.Result{Kind: classify.Hint}, History{Rung: RungAsk, Attempts: 1})
	partial := Decide(p, classify.Result{Kind: classify.Partial}, History{Rung: RungAsk, Attempts: 1})
	if hint.Rung != partial.Rung {
		t.Errorf("unconfigured climb differs: hint=%s partial=%s", hint.Rung, partial.Rung)
	}
}

func TestDecide_ConfiguredThresholdHolds(t *testing.T) {
	p := DefaultPolicy()
	p.Thresholds = map[Rung]int{RungAsk: 2}

	res := classify.Result{Kind: classify.Hint}

	hold := Decide(p, res, History{Rung: RungAsk, Attempts: 1, NoUnderstanding: 1})
	if hold.Rung != RungAsk {
		t.Errorf("below threshold: rung = %s, want ask", hold.Rung)
	}

	move := Decide(p, res, History{Rung: RungAsk, Attempts: 2, NoUnderstanding: 2})
	if move.Rung != RungHint {
		t.Errorf("at threshold: rung = %s, want hint", move.Rung)
	}
}

func TestDecide_ForcedAdvanceOnNoUnderstanding(t *testing.T) {
	p := DefaultPolicy() // ForceAdvanceAfter: 3, kinds include "practice"
	res := classify.Result{Kind: classify.Hint, Reason: classify.ReasonDontKnow}

	// Moment kind not in the allow-list: no forced advance.
	dec := Decide(p, res, History{Rung: RungAskSimple, Attempts: 3, NoUnderstanding: 3, MomentKind: "intro"})
	if dec.Advance {
		t.Error("forced advance fired for a non-allow-listed moment kind")
	}

	// Allow-listed kind: forced advance with zero credit.
	dec = Decide(p, res, History{Rung: RungAskSimple, Attempts: 3, NoUnderstanding: 3, MomentKind: "practice"})
	if !dec.Advance || dec.Credit != CreditZero {
		t.Errorf("got %+v, want advance with zero credit", dec)
	}
}

func TestDecide_AttemptCapCreditFollowsPartialHistory(t *testing.T) {
	p := DefaultPolicy() // MaxAttempts: 5
	res := classify.Result{Kind: classify.Hint}

	zero := Decide(p, res, History{Rung: RungExplain, Attempts: 5, MomentKind: "intro"})
	if !zero.Advance || zero.Credit != CreditZero {
		t.Errorf("no partial seen: got %+v, want advance/zero", zero)
	}

	partial := Decide(p, res, History{Rung: RungExplain, Attempts: 5, SawPartial: true, MomentKind: "intro"})
	if !partial.Advance || partial.Credit != CreditPartial {
		t.Errorf("partial seen: got %+v, want advance/partial", partial)
	}
}

func TestDecide_ExplainIsTerminalRemediation(t *testing.T) {
	p := DefaultPolicy()
	res := classify.Result{Kind: classify.Hint}

	dec := Decide(p, res, History{Rung: RungExplain, Attempts: 2, MomentKind: "intro"})
	if !dec.Advance {
		t.Errorf("second turn at explain should settle and advance, got %+v", dec)
	}
}

func TestDecide_EarlyConvergence(t *testing.T) {
	p := DefaultPolicy() // ConvergeMinMatched: 2, ConvergeMaxMissing: 1

	res := classify.Result{
		Kind:    classify.Partial,
		Matched: []string{"casco", "guantes"},
		Missing: []string{"lentes"},
	}
	dec := Decide(p, res, History{Rung: RungHint, Attempts: 2})
	if !dec.Converged || !dec.Advance || dec.Credit != CreditPartial {
		t.Errorf("got %+v, want converged partial-credit advance", dec)
	}

	semantic := classify.Result{
		Kind:     classify.Partial,
		Matched:  []string{"casco"},
		Missing:  []string{"guantes", "lentes"},
		Semantic: &classify.SemanticScore{Centroid: 0.9},
	}
	dec = Decide(p, semantic, History{Rung: RungHint, Attempts: 2})
	if !dec.Converged {
		t.Errorf("semantic convergence missed: %+v", dec)
	}
}
