package classify

// Config holds every classifier threshold. All values are overridable per
// lesson/course/request scope; these are the built-in defaults.
type Config struct {
	// Don't-know detection.
	DontKnowMaxTokens int // utterances at or below this token count read as "I don't know"

	// Vagueness gate.
	MinUsefulTokens  int     // minimum non-stopword tokens
	StopwordRatioMax float64 // reject above this stopword share
	EchoJaccardMax   float64 // reject when overlapping the question this much
	RepeatJaccardMax float64 // reject when overlapping the previous answer this much

	// Literal/fuzzy matching.
	FuzzyEnabled       bool
	MaxEditDistance    int     // levenshtein bound for near-misses
	TokenJaccardMin    float64 // token-overlap bound for multi-word answers
	StrongTokenMinLen  int     // tokens at least this long count as strong evidence
	MaxExpectedMatches int     // cap on expected-token matches (weaker signal)

	// Shape rules.
	ListThresholdK  int // acceptable matches needed for list ACCEPT
	MaxMissingShown int // missing evidence truncation for hint rendering

	// Semantic fallback.
	SemanticEnabled   bool
	CentroidAcceptMin float64 // centroid cosine for ACCEPT
	ItemPartialMin    float64 // best single-reference cosine for PARTIAL
}

// DefaultConfig returns the built-in thresholds.
func DefaultConfig() Config {
	return Config{
		DontKnowMaxTokens:  2,
		MinUsefulTokens:    2,
		StopwordRatioMax:   0.8,
		EchoJaccardMax:     0.8,
		RepeatJaccardMax:   0.9,
		FuzzyEnabled:       true,
		MaxEditDistance:    2,
		TokenJaccardMin:    0.6,
		StrongTokenMinLen:  4,
		MaxExpectedMatches: 2,
		ListThresholdK:     2,
		MaxMissingShown:    3,
		SemanticEnabled:    false,
		CentroidAcceptMin:  0.78,
		ItemPartialMin:     0.62,
	}
}
