package plan

// StepType is the closed enumeration of step kinds. Unknown script tags
// compile to StepContent.
type StepType string

const (
	StepNarration StepType = "narration"
	StepContent   StepType = "content"
	StepQuestion  StepType = "question"
	StepCase      StepType = "case"
	StepKeyPoint  StepType = "key_point"
)

// AnswerShape selects the shape-specific decision rule in the classifier.
type AnswerShape string

const (
	ShapeConceptual     AnswerShape = "conceptual"
	ShapeList           AnswerShape = "list"
	ShapeApplication    AnswerShape = "application"
	ShapeIdentification AnswerShape = "identification"
	ShapeOpen           AnswerShape = "open"
)

// Step is one compiled lesson unit, addressable by its global index.
type Step struct {
	Type        StepType
	Code        string
	GlobalIndex int
	MomentIndex int
	LocalIndex  int

	Question          string
	Objective         string
	Expected          []string
	AcceptableAnswers []string
	Shape             AnswerShape
	Body              string
	Items             []string
}

// IsQuestion reports whether the step expects a learner answer.
func (s *Step) IsQuestion() bool {
	return s.Type == StepQuestion && s.Question != ""
}

// Moment is a compiled lesson chapter.
type Moment struct {
	Title string
	Code  string
	Kind  string
	Steps []*Step
}

// NoContent is the sentinel content index for a leading question group
// with no preceding content step.
const NoContent = -1

// ContentCycle pairs a content step with the question steps that
// immediately follow it in the flat sequence.
type ContentCycle struct {
	ContentIndex int // global index of the content step, or NoContent
	Questions    []int
}

// Ask is one entry in the question catalog.
type Ask struct {
	StepCode          string
	GlobalIndex       int
	Question          string
	AcceptableAnswers []string
	Shape             AnswerShape
}

// LessonPlan is the immutable, indexed form of a lesson script. Built once
// per session and never mutated afterwards.
type LessonPlan struct {
	Title    string
	Code     string
	Language string

	Moments       []*Moment
	AllSteps      []*Step
	ContentCycles []ContentCycle
	AskCatalog    []Ask
}

// StepAt returns the step at (momentIdx, stepIdx), or nil when the cursor
// is out of range.
func (p *LessonPlan) StepAt(momentIdx, stepIdx int) *Step {
	if momentIdx < 0 || momentIdx >= len(p.Moments) {
		return nil
	}
	m := p.Moments[momentIdx]
	if stepIdx < 0 || stepIdx >= len(m.Steps) {
		return nil
	}
	return m.Steps[stepIdx]
}

// Advance returns the cursor after (momentIdx, stepIdx), plus done=true
// once the cursor walks off the last step of the last moment.
func (p *LessonPlan) Advance(momentIdx, stepIdx int) (nextMoment, nextStep int, done bool) {
	if momentIdx < 0 || momentIdx >= len(p.Moments) {
		return momentIdx, stepIdx, true
	}
	if stepIdx+1 < len(p.Moments[momentIdx].Steps) {
		return momentIdx, stepIdx + 1, false
	}
	if momentIdx+1 < len(p.Moments) {
		return momentIdx + 1, 0, false
	}
	return momentIdx, stepIdx, true
}

// FindAsk returns the ask-catalog entry for a step code.
func (p *LessonPlan) FindAsk(stepCode string) (Ask, bool) {
	for _, a := range p.AskCatalog {
		if a.StepCode == stepCode {
			return a, true
		}
	}
	return Ask{}, false
}
