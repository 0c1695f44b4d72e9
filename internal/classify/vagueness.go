package classify

import "regexp"

// dontKnowPatterns match explicit "I don't know" utterances after
// normalization (so "no sé" arrives as "no se").
var dontKnowPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^no (lo )?se$`),
	regexp.MustCompile(`^no (lo )?entiendo$`),
	regexp.MustCompile(`^ni idea$`),
	regexp.MustCompile(`^n ?a$`),
	regexp.MustCompile(`^(i )?(dont|don t) know$`),
	regexp.MustCompile(`^no idea$`),
	regexp.MustCompile(`^nose$`),
	regexp.MustCompile(`^paso$`),
}

// IsDontKnow reports whether a normalized utterance is an explicit
// no-understanding signal.
func IsDontKnow(normalized string) bool {
	for _, p := range dontKnowPatterns {
		if p.MatchString(normalized) {
			return true
		}
	}
	return false
}

// VaguenessGate decides whether an utterance carries enough signal to be
// worth matching. Heuristic by nature, so it is pluggable: swap the default
// token/ratio implementation for a learned model without touching the
// pipeline.
type VaguenessGate interface {
	// IsVague returns (true, reason) when the utterance should be
	// rejected before matching.
	IsVague(utterance, question, prevAnswer string, cfg Config) (bool, Reason)
}

// TokenVaguenessGate is the default gate: useful-token floor, stopword
// ratio ceiling, question-echo and answer-repeat overlap ceilings.
type TokenVaguenessGate struct{}

func (TokenVaguenessGate) IsVague(utterance, question, prevAnswer string, cfg Config) (bool, Reason) {
	toks := Tokens(utterance)
	if len(toks) == 0 {
		return true, ReasonVague
	}

	useful := UsefulTokens(toks)
	if len(useful) < cfg.MinUsefulTokens {
		return true, ReasonVague
	}

	ratio := float64(len(toks)-len(useful)) / float64(len(toks))
	if ratio > cfg.StopwordRatioMax {
		return true, ReasonVague
	}

	if question != "" && Jaccard(toks, Tokens(question)) > cfg.EchoJaccardMax {
		return true, ReasonEcho
	}

	if prevAnswer != "" && Jaccard(toks, Tokens(prevAnswer)) > cfg.RepeatJaccardMax {
		return true, ReasonRepeat
	}

	return false, ""
}
