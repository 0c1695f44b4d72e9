// Package hint renders bounded remediation text: tiered hints and
// shape-specific re-asks. Pure rendering — word caps and opener rotation
// are deterministic so two identical sessions read identically.
package hint

import (
	"fmt"
	"strings"

	"github.com/aulalab/aula/internal/classify"
	"github.com/aulalab/aula/internal/plan"
)

// Config holds the template configuration for hint rendering.
type Config struct {
	// CharBudgets caps the rendered hint per severity tier (0, 1, 2).
	CharBudgets [3]int

	// MaxKeywords caps extracted objective/expected keywords.
	MaxKeywords int

	// MinKeywordLen drops short tokens during keyword extraction.
	MinKeywordLen int

	// Openers rotate deterministically by hints-used count.
	Openers []string

	// OpenMinWords / OpenMaxWords bound the re-ask instruction for
	// open-shaped answers.
	OpenMinWords int
	OpenMaxWords int
}

// DefaultConfig returns the built-in hint templates.
func DefaultConfig() Config {
	return Config{
		CharBudgets:   [3]int{120, 200, 320},
		MaxKeywords:   6,
		MinKeywordLen: 4,
		Openers: []string{
			"Pista:",
			"Piensa en esto:",
			"Vamos por partes:",
		},
		OpenMinWords: 10,
		OpenMaxWords: 60,
	}
}

// Input is everything hint rendering needs for one question.
type Input struct {
	Question  string
	Objective string
	Expected  []string
	Missing   []string
	Shape     plan.AnswerShape
	Attempts  int
	HintsUsed int
}

// Tier derives the severity tier from attempt/hint history: tier 0 on a
// fresh question, tier 1 while at most one hint has been used, tier 2
// after that.
func Tier(attempts, hintsUsed int) int {
	switch {
	case attempts <= 1 && hintsUsed == 0:
		return 0
	case hintsUsed <= 1:
		return 1
	default:
		return 2
	}
}

// Generator renders hints and re-asks from a template configuration.
type Generator struct {
	cfg Config
}

// New creates a Generator.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Hint composes an opener, extracted keywords and a missing-answer cue,
// truncated to the tier's character budget. Open-shaped answers skip
// truncation so sentences never cut mid-word.
func (g *Generator) Hint(in Input) string {
	tier := Tier(in.Attempts, in.HintsUsed)

	opener := ""
	if len(g.cfg.Openers) > 0 {
		opener = g.cfg.Openers[in.HintsUsed%len(g.cfg.Openers)]
	}

	keywords := Keywords(in.Objective+" "+strings.Join(in.Expected, " "), g.cfg.MinKeywordLen, g.cfg.MaxKeywords)

	var b strings.Builder
	b.WriteString(opener)
	if len(keywords) > 0 {
		b.WriteString(" piensa en ")
		b.WriteString(strings.Join(keywords, ", "))
		b.WriteString(".")
	}
	if len(in.Missing) > 0 {
		b.WriteString(fmt.Sprintf(" Falta mencionar: %s.", strings.Join(in.Missing, ", ")))
	}

	msg := strings.TrimSpace(b.String())
	if in.Shape == plan.ShapeOpen {
		return msg
	}

	budget := g.cfg.CharBudgets[tier]
	if budget > 0 && len([]rune(msg)) > budget {
		msg = string([]rune(msg)[:budget])
	}
	return msg
}

// Reask renders the shape-specific re-ask message.
func (g *Generator) Reask(in Input) string {
	switch in.Shape {
	case plan.ShapeList:
		return fmt.Sprintf("Intenta de nuevo: nombra al menos dos elementos. %s", in.Question)
	case plan.ShapeApplication:
		return fmt.Sprintf("Intenta de nuevo y explica el porqué de tu respuesta. %s", in.Question)
	case plan.ShapeOpen:
		return fmt.Sprintf("Cuéntamelo con tus palabras, entre %d y %d palabras. %s",
			g.cfg.OpenMinWords, g.cfg.OpenMaxWords, in.Question)
	default:
		return fmt.Sprintf("Intenta otra vez: %s", in.Question)
	}
}

// AskSimple renders the lower-difficulty re-ask used by the ask_simple
// ladder rung: the question plus its strongest cue.
func (g *Generator) AskSimple(in Input) string {
	keywords := Keywords(in.Objective+" "+strings.Join(in.Expected, " "), g.cfg.MinKeywordLen, 2)
	if len(keywords) == 0 {
		return g.Reask(in)
	}
	return fmt.Sprintf("Te lo pregunto más fácil: %s (tiene que ver con %s)",
		in.Question, strings.Join(keywords, " y "))
}

// AskOptions renders the binary-choice re-ask for the ask_options rung.
// The correct option comes first in the statement but the learner answers
// free-text, so no option index bookkeeping is needed.
func (g *Generator) AskOptions(in Input, correct string) string {
	if correct == "" && len(in.Expected) > 0 {
		correct = in.Expected[0]
	}
	if correct == "" {
		return g.AskSimple(in)
	}
	return fmt.Sprintf("%s ¿Tiene que ver con \"%s\", sí o no?", in.Question, correct)
}

// Keywords tokenizes, strips stopwords and short tokens, deduplicates and
// caps the result.
func Keywords(text string, minLen, max int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range classify.Tokens(text) {
		if len([]rune(tok)) < minLen || classify.IsStopword(tok) || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out
}
