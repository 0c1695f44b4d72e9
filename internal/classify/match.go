package classify

import (
	"strings"

	"github.com/agext/levenshtein"
)

// matchReference reports whether a normalized utterance matches one
// reference answer string. Checks run cheapest first: equality, mutual
// containment, then (when enabled) edit distance, token Jaccard, and
// finally substring containment of any strong token.
func matchReference(utterance, ref string, cfg Config) bool {
	ref = Normalize(ref)
	if ref == "" {
		return false
	}

	if utterance == ref ||
		strings.Contains(utterance, ref) ||
		strings.Contains(ref, utterance) {
		return true
	}

	if !cfg.FuzzyEnabled {
		return false
	}

	if levenshtein.Distance(utterance, ref, nil) <= cfg.MaxEditDistance {
		return true
	}

	uToks := strings.Fields(utterance)
	rToks := strings.Fields(ref)
	if Jaccard(uToks, rToks) >= cfg.TokenJaccardMin {
		return true
	}

	// Last resort: any strong reference token present in the utterance.
	for _, t := range rToks {
		if len([]rune(t)) >= cfg.StrongTokenMinLen && containsToken(uToks, t, cfg.MaxEditDistance) {
			return true
		}
	}
	return false
}

func containsToken(toks []string, want string, maxDist int) bool {
	for _, t := range toks {
		if t == want || strings.Contains(t, want) {
			return true
		}
		if len(t) >= 4 && levenshtein.Distance(t, want, nil) <= maxDist {
			return true
		}
	}
	return false
}

// matchAll partitions references into matched and missing for a normalized
// utterance. limit > 0 caps the number of matches collected.
func matchAll(utterance string, refs []string, cfg Config, limit int) (matched, missing []string) {
	for _, ref := range refs {
		if strings.TrimSpace(ref) == "" {
			continue
		}
		if (limit <= 0 || len(matched) < limit) && matchReference(utterance, ref, cfg) {
			matched = append(matched, ref)
		} else {
			missing = append(missing, ref)
		}
	}
	return matched, missing
}
