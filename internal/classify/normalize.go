package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics and punctuation, collapses
// character runs of 3+ down to 2 ("siiii" → "sii"), and collapses
// whitespace. Every comparison in the classifier runs on this form.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(deaccent, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	run := 0
	space := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if r == prev {
				run++
			} else {
				run = 1
				prev = r
			}
			if run > 2 {
				continue
			}
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		default:
			// Punctuation and whitespace both act as token separators.
			space = true
			prev = 0
			run = 0
		}
	}
	return b.String()
}

// Tokens splits a normalized string into tokens.
func Tokens(s string) []string {
	return strings.Fields(Normalize(s))
}

// stopwords covers Spanish and English function words. Lesson scripts in
// the field are Spanish-first, but learners mix languages freely.
var stopwords = map[string]bool{
	// Spanish
	"el": true, "la": true, "los": true, "las": true, "un": true, "una": true,
	"unos": true, "unas": true, "de": true, "del": true, "al": true, "a": true,
	"en": true, "con": true, "por": true, "para": true, "que": true, "se": true,
	"su": true, "sus": true, "es": true, "son": true, "lo": true, "le": true,
	"y": true, "o": true, "u": true, "e": true, "no": true, "si": true,
	"mas": true, "pero": true, "como": true, "cuando": true, "donde": true,
	"este": true, "esta": true, "esto": true, "ese": true, "esa": true,
	"eso": true, "hay": true, "ser": true, "estar": true, "muy": true,
	"ya": true, "me": true, "mi": true, "tu": true, "te": true, "nos": true,
	// English
	"the": true, "an": true, "of": true, "to": true, "in": true, "on": true,
	"at": true, "and": true, "or": true, "is": true, "are": true, "it": true,
	"that": true, "this": true, "for": true, "with": true, "be": true,
	"was": true, "were": true, "i": true, "you": true, "we": true,
	"they": true, "my": true, "your": true, "not": true, "do": true,
	"does": true, "can": true, "will": true, "have": true, "has": true,
}

// IsStopword reports whether a normalized token is a function word.
func IsStopword(tok string) bool { return stopwords[tok] }

// UsefulTokens returns tokens with stopwords removed.
func UsefulTokens(toks []string) []string {
	var out []string
	for _, t := range toks {
		if !stopwords[t] {
			out = append(out, t)
		}
	}
	return out
}

// Jaccard computes token-set Jaccard similarity between two token slices.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	setA := make(map[string]bool, len(a))
	for _, t := range a {
		setA[t] = true
	}
	setB := make(map[string]bool, len(b))
	for _, t := range b {
		setB[t] = true
	}
	inter := 0
	for t := range setA {
		if setB[t] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
