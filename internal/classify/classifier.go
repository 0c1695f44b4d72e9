package classify

import (
	"context"
	"regexp"
)

// Kind is the classification verdict for one learner utterance.
type Kind string

const (
	Accept  Kind = "ACCEPT"
	Partial Kind = "PARTIAL"
	Hint    Kind = "HINT"
	Refocus Kind = "REFOCUS"
)

// Reason tags the cause behind a verdict.
type Reason string

const (
	ReasonDontKnow            Reason = "DONT_KNOW"
	ReasonVague               Reason = "VAGUE"
	ReasonEcho                Reason = "ECHO"
	ReasonRepeat              Reason = "REPEAT"
	ReasonMatched             Reason = "MATCHED"
	ReasonListThreshold       Reason = "LIST_THRESHOLD"
	ReasonExpectedOnly        Reason = "EXPECTED_ONLY"
	ReasonNoJustification     Reason = "NO_JUSTIFICATION"
	ReasonNoMatch             Reason = "NO_MATCH"
	ReasonSemanticCentroid    Reason = "SEMANTIC_CENTROID"
	ReasonSemanticItem        Reason = "SEMANTIC_ITEM"
	ReasonSemanticUnavailable Reason = "SEMANTIC_UNAVAILABLE"
	ReasonHintsExhausted      Reason = "HINTS_EXHAUSTED"
)

// SemanticScore carries the semantic-fallback evidence.
type SemanticScore struct {
	Centroid  float64
	BestText  string
	BestScore float64
}

// SemanticScorer is the pluggable embedding-backed similarity stage.
// Implementations embed the utterance and the reference texts and report
// centroid plus best-item cosine similarity. The classifier treats any
// error as "no semantic signal available".
type SemanticScorer interface {
	Score(ctx context.Context, utterance string, refs []string) (SemanticScore, error)
}

// Input is everything the classifier needs for one utterance.
type Input struct {
	Utterance  string
	Question   string
	Acceptable []string
	Expected   []string
	Shape      Shape
	PrevAnswer string

	// HintsExhausted selects REFOCUS over HINT when the semantic
	// fallback also finds nothing.
	HintsExhausted bool
}

// Shape mirrors the plan's answer-shape tags without importing the plan
// package (the classifier is a leaf).
type Shape string

const (
	ShapeConceptual     Shape = "conceptual"
	ShapeList           Shape = "list"
	ShapeApplication    Shape = "application"
	ShapeIdentification Shape = "identification"
	ShapeOpen           Shape = "open"
)

// Result is the per-turn classification outcome. Matched/Missing always
// carry evidence for hint rendering; Missing is truncated.
type Result struct {
	Kind     Kind
	Reason   Reason
	Matched  []string
	Missing  []string
	Semantic *SemanticScore
}

// justificationMarkers detect causal/purposive connectives that count as
// justification for application-shaped answers.
var justificationMarkers = regexp.MustCompile(
	`\b(porque|ya que|puesto que|debido a|para que|para (poder|evitar)|because|since|in order to|so that)\b`)

// HasJustification reports whether a normalized utterance carries a
// justification marker.
func HasJustification(normalized string) bool {
	return justificationMarkers.MatchString(normalized)
}

// Classifier runs the layered answer-classification pipeline.
type Classifier struct {
	cfg      Config
	gate     VaguenessGate
	semantic SemanticScorer
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithVaguenessGate swaps the default token-based gate.
func WithVaguenessGate(g VaguenessGate) Option {
	return func(c *Classifier) { c.gate = g }
}

// WithSemanticScorer enables the semantic fallback stage.
func WithSemanticScorer(s SemanticScorer) Option {
	return func(c *Classifier) { c.semantic = s }
}

// New creates a Classifier with the given thresholds.
func New(cfg Config, opts ...Option) *Classifier {
	c := &Classifier{cfg: cfg, gate: TokenVaguenessGate{}}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Classify decides ACCEPT / PARTIAL / HINT / REFOCUS for an utterance.
// Stages 1-5 are pure; only the semantic fallback touches the network,
// and its failures degrade to HINT.
func (c *Classifier) Classify(ctx context.Context, in Input) Result {
	normalized := Normalize(in.Utterance)

	// An utterance that literally equals an acceptable answer is never
	// "I don't know", however short ("casco" is a full answer).
	exact := false
	for _, a := range in.Acceptable {
		if normalized != "" && normalized == Normalize(a) {
			exact = true
			break
		}
	}

	if !exact {
		if normalized == "" || IsDontKnow(normalized) || len(Tokens(in.Utterance)) <= c.cfg.DontKnowMaxTokens {
			return c.finish(in, Result{Kind: Hint, Reason: ReasonDontKnow})
		}

		if vague, why := c.gate.IsVague(in.Utterance, in.Question, in.PrevAnswer, c.cfg); vague {
			return c.finish(in, Result{Kind: Hint, Reason: why})
		}
	}

	matched, missing := matchAll(normalized, in.Acceptable, c.cfg, 0)

	expectedOnly := false
	if len(matched) == 0 {
		expMatched, _ := matchAll(normalized, in.Expected, c.cfg, c.cfg.MaxExpectedMatches)
		if len(expMatched) > 0 {
			matched = expMatched
			missing = in.Acceptable
			expectedOnly = true
		}
	}

	res := c.decide(normalized, in, matched, missing, expectedOnly)
	if res.Kind == Hint && res.Reason == ReasonNoMatch {
		res = c.semanticFallback(ctx, normalized, in, res)
	}
	return c.finish(in, res)
}

// decide applies the shape-specific rule over match evidence.
func (c *Classifier) decide(normalized string, in Input, matched, missing []string, expectedOnly bool) Result {
	res := Result{Matched: matched, Missing: missing}

	switch in.Shape {
	case ShapeList:
		switch {
		case !expectedOnly && len(matched) >= c.cfg.ListThresholdK:
			res.Kind, res.Reason = Accept, ReasonMatched
		case len(matched) >= 1:
			res.Kind, res.Reason = Partial, ReasonListThreshold
		default:
			res.Kind, res.Reason = Hint, ReasonNoMatch
		}

	case ShapeApplication:
		switch {
		case !expectedOnly && len(matched) > 0 && HasJustification(normalized):
			res.Kind, res.Reason = Accept, ReasonMatched
		case len(matched) > 0:
			res.Kind, res.Reason = Partial, ReasonNoJustification
		default:
			res.Kind, res.Reason = Hint, ReasonNoMatch
		}

	default: // conceptual, identification, open
		switch {
		case !expectedOnly && len(matched) > 0:
			res.Kind, res.Reason = Accept, ReasonMatched
		case len(matched) > 0:
			res.Kind, res.Reason = Partial, ReasonExpectedOnly
		default:
			res.Kind, res.Reason = Hint, ReasonNoMatch
		}
	}
	return res
}

// semanticFallback runs only when literal/fuzzy matching found nothing.
func (c *Classifier) semanticFallback(ctx context.Context, normalized string, in Input, prior Result) Result {
	if !c.cfg.SemanticEnabled || c.semantic == nil {
		return prior
	}

	refs := append(append([]string{}, in.Acceptable...), in.Expected...)
	if len(refs) == 0 {
		return prior
	}

	score, err := c.semantic.Score(ctx, normalized, refs)
	if err != nil {
		prior.Reason = ReasonSemanticUnavailable
		return prior
	}
	prior.Semantic = &score

	switch {
	case score.Centroid >= c.cfg.CentroidAcceptMin:
		switch in.Shape {
		case ShapeApplication:
			if HasJustification(normalized) {
				prior.Kind, prior.Reason = Accept, ReasonSemanticCentroid
			} else {
				prior.Kind, prior.Reason = Partial, ReasonNoJustification
			}
		case ShapeList:
			// A centroid hit can't prove k distinct items.
			prior.Kind, prior.Reason = Partial, ReasonSemanticCentroid
		default:
			prior.Kind, prior.Reason = Accept, ReasonSemanticCentroid
		}
	case score.BestScore >= c.cfg.ItemPartialMin:
		prior.Kind, prior.Reason = Partial, ReasonSemanticItem
	case in.HintsExhausted:
		prior.Kind, prior.Reason = Refocus, ReasonHintsExhausted
	}
	return prior
}

// finish guarantees the matched/missing evidence contract: missing is
// truncated for display, and a no-evidence result still lists what was
// expected so hint rendering has material.
func (c *Classifier) finish(in Input, res Result) Result {
	if len(res.Matched) == 0 && len(res.Missing) == 0 {
		res.Missing = append(res.Missing, in.Acceptable...)
	}
	if len(res.Missing) > c.cfg.MaxMissingShown {
		res.Missing = res.Missing[:c.cfg.MaxMissingShown]
	}
	return res
}
