package escalate

// Rung is a position on the per-question escalation ladder.
type Rung string

const (
	RungAsk        Rung = "ask"
	RungHint       Rung = "hint"
	RungAskSimple  Rung = "ask_simple"
	RungAskOptions Rung = "ask_options"
	RungExplain    Rung = "explain"
	RungOK         Rung = "ok"
)

// ladder is the fixed rung order. RungOK is terminal success and sits
// outside the remediation sequence.
var ladder = []Rung{RungAsk, RungHint, RungAskSimple, RungAskOptions, RungExplain}

// Index returns a rung's ladder position. RungOK and unknown rungs map to
// the end so the non-regression invariant holds trivially.
func Index(r Rung) int {
	for i, l := range ladder {
		if l == r {
			return i
		}
	}
	return len(ladder)
}

// Next returns the rung one step further down the ladder. RungExplain is
// terminal remediation and holds.
func Next(r Rung) Rung {
	i := Index(r)
	if i+1 < len(ladder) {
		return ladder[i+1]
	}
	return RungExplain
}

// Terminal reports whether the rung ends the question's remediation.
func Terminal(r Rung) bool {
	return r == RungExplain || r == RungOK
}
