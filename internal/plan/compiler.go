package plan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aulalab/aula/internal/script"
)

// stepTypeTags maps script type tags to the closed enumeration. Tags are
// matched after lowercasing; anything unlisted becomes content.
var stepTypeTags = map[string]StepType{
	"narration":  StepNarration,
	"narrative":  StepNarration,
	"content":    StepContent,
	"question":   StepQuestion,
	"pregunta":   StepQuestion,
	"case":       StepCase,
	"caso":       StepCase,
	"key_point":  StepKeyPoint,
	"keypoint":   StepKeyPoint,
	"summary":    StepKeyPoint,
	"key-points": StepKeyPoint,
}

// NormalizeStepType maps a raw script tag to a StepType.
func NormalizeStepType(tag string) StepType {
	if t, ok := stepTypeTags[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return t
	}
	return StepContent
}

func normalizeShape(tag string) AnswerShape {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "list":
		return ShapeList
	case "application":
		return ShapeApplication
	case "identification":
		return ShapeIdentification
	case "open":
		return ShapeOpen
	default:
		return ShapeConceptual
	}
}

// Compile turns a validated lesson script into an indexed LessonPlan.
// Deterministic: the same document always compiles to the same plan.
func Compile(doc *script.Document) *LessonPlan {
	p := &LessonPlan{
		Title:    doc.Meta.Title,
		Code:     doc.Meta.Code,
		Language: doc.Meta.Language,
	}

	moments := make([]script.Moment, len(doc.Moments))
	copy(moments, doc.Moments)
	sort.SliceStable(moments, func(i, j int) bool {
		return moments[i].Order < moments[j].Order
	})

	global := 0
	for mi, sm := range moments {
		m := &Moment{
			Title: sm.Title,
			Code:  sm.Code,
			Kind:  sm.Kind,
		}
		if m.Code == "" {
			m.Code = fmt.Sprintf("m%02d", mi+1)
		}

		steps := make([]script.Step, len(sm.Steps))
		copy(steps, sm.Steps)
		sort.SliceStable(steps, func(i, j int) bool {
			return steps[i].Order < steps[j].Order
		})

		for li, ss := range steps {
			st := &Step{
				Type:              NormalizeStepType(ss.Type),
				Code:              ss.Code,
				GlobalIndex:       global,
				MomentIndex:       mi,
				LocalIndex:        li,
				Question:          ss.Question,
				Objective:         ss.Objective,
				Expected:          ss.Expected,
				AcceptableAnswers: ss.AcceptableAnswers,
				Shape:             normalizeShape(ss.AnswerType),
				Body:              firstNonEmpty(ss.Body, ss.Text),
				Items:             ss.Items,
			}
			if st.Code == "" {
				st.Code = fmt.Sprintf("%s_s%02d", m.Code, li+1)
			}
			m.Steps = append(m.Steps, st)
			p.AllSteps = append(p.AllSteps, st)
			global++
		}
		p.Moments = append(p.Moments, m)
	}

	p.ContentCycles = deriveContentCycles(p.AllSteps)
	p.AskCatalog = deriveAskCatalog(p.AllSteps)
	return p
}

// deriveContentCycles scans the flat sequence pairing each content step
// with the question steps that follow it until the next content step.
// Questions before the first content step land in a NoContent cycle.
func deriveContentCycles(steps []*Step) []ContentCycle {
	var cycles []ContentCycle
	current := ContentCycle{ContentIndex: NoContent}
	open := false

	for _, st := range steps {
		switch {
		case st.Type == StepContent:
			if open {
				cycles = append(cycles, current)
			}
			current = ContentCycle{ContentIndex: st.GlobalIndex}
			open = true
		case st.IsQuestion():
			current.Questions = append(current.Questions, st.GlobalIndex)
			open = true
		}
	}
	if open {
		cycles = append(cycles, current)
	}
	return cycles
}

func deriveAskCatalog(steps []*Step) []Ask {
	var catalog []Ask
	for _, st := range steps {
		if !st.IsQuestion() {
			continue
		}
		catalog = append(catalog, Ask{
			StepCode:          st.Code,
			GlobalIndex:       st.GlobalIndex,
			Question:          st.Question,
			AcceptableAnswers: st.AcceptableAnswers,
			Shape:             st.Shape,
		})
	}
	return catalog
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
