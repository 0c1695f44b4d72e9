package plan

import (
	"reflect"
	"testing"

	"github.com/aulalab/aula/internal/script"
)

func sampleDoc() *script.Document {
	return &script.Document{
		Meta: script.Meta{Title: "Seguridad", Code: "seg01", Language: "es"},
		Moments: []script.Moment{
			{
				Title: "Introducción",
				Kind:  "intro",
				Order: 1,
				Steps: []script.Step{
					{Type: "question", Order: 1, Question: "¿Qué sabes del tema?", AnswerType: "open"},
					{Type: "narration", Order: 0, Text: "Bienvenida."},
				},
			},
			{
				Title: "Protección",
				Kind:  "practice",
				Order: 2,
				Steps: []script.Step{
					{Type: "content", Order: 0, Body: "El equipo es obligatorio."},
					{
						Type: "pregunta", Order: 1,
						Question:          "¿Qué elementos conoces?",
						AcceptableAnswers: []string{"casco", "guantes", "lentes"},
						AnswerType:        "list",
					},
					{Type: "summary", Order: 2, Items: []string{"usa casco", "usa guantes"}},
				},
			},
		},
	}
}

func TestCompile_OrderingAndIndexes(t *testing.T) {
	p := Compile(sampleDoc())

	if len(p.AllSteps) != 5 {
		t.Fatalf("AllSteps = %d, want 5", len(p.AllSteps))
	}

	// Steps sort by declared order within each moment: the narration
	// (order 0) precedes the question (order 1).
	if p.AllSteps[0].Type != StepNarration {
		t.Errorf("first step type = %s, want narration", p.AllSteps[0].Type)
	}

	for i, st := range p.AllSteps {
		if st.GlobalIndex != i {
			t.Errorf("step %d GlobalIndex = %d", i, st.GlobalIndex)
		}
	}

	// Spanish tags normalize into the closed enumeration.
	if p.AllSteps[3].Type != StepQuestion {
		t.Errorf("pregunta normalized to %s", p.AllSteps[3].Type)
	}
	if p.AllSteps[4].Type != StepKeyPoint {
		t.Errorf("summary normalized to %s", p.AllSteps[4].Type)
	}
}

func TestCompile_AutoCodes(t *testing.T) {
	p := Compile(sampleDoc())

	if p.Moments[0].Code != "m01" {
		t.Errorf("moment code = %q, want m01", p.Moments[0].Code)
	}
	if got := p.Moments[0].Steps[0].Code; got != "m01_s01" {
		t.Errorf("step code = %q, want m01_s01", got)
	}
}

func TestCompile_ContentCycles(t *testing.T) {
	p := Compile(sampleDoc())

	if len(p.ContentCycles) != 2 {
		t.Fatalf("ContentCycles = %d, want 2", len(p.ContentCycles))
	}

	// The leading question group has no preceding content step.
	first := p.ContentCycles[0]
	if first.ContentIndex != NoContent {
		t.Errorf("first cycle ContentIndex = %d, want NoContent", first.ContentIndex)
	}
	if len(first.Questions) != 1 || first.Questions[0] != 1 {
		t.Errorf("first cycle Questions = %v, want [1]", first.Questions)
	}

	second := p.ContentCycles[1]
	if second.ContentIndex != 2 {
		t.Errorf("second cycle ContentIndex = %d, want 2", second.ContentIndex)
	}
	if len(second.Questions) != 1 || second.Questions[0] != 3 {
		t.Errorf("second cycle Questions = %v, want [3]", second.Questions)
	}
}

func TestCompile_AskCatalog(t *testing.T) {
	p := Compile(sampleDoc())

	if len(p.AskCatalog) != 2 {
		t.Fatalf("AskCatalog = %d, want 2", len(p.AskCatalog))
	}
	if p.AskCatalog[1].Shape != ShapeList {
		t.Errorf("second ask shape = %s, want list", p.AskCatalog[1].Shape)
	}
	if ask, ok := p.FindAsk(p.AskCatalog[1].StepCode); !ok || len(ask.AcceptableAnswers) != 3 {
		t.Errorf("FindAsk(%q) = %+v, %v", p.AskCatalog[1].StepCode, ask, ok)
	}
}

func TestCompile_Idempotent(t *testing.T) {
	a := Compile(sampleDoc())
	b := Compile(sampleDoc())

	if !reflect.DeepEqual(a, b) {
		t.Error("compiling the same document twice produced different plans")
	}
}

func TestAdvance_WalksOffTheEnd(t *testing.T) {
	p := Compile(sampleDoc())

	m, s := 0, 0
	seen := 0
	for {
		if p.StepAt(m, s) == nil {
			t.Fatalf("cursor (%d,%d) points at no step", m, s)
		}
		seen++
		nm, ns, done := p.Advance(m, s)
		if done {
			break
		}
		m, s = nm, ns
	}
	if seen != len(p.AllSteps) {
		t.Errorf("walked %d steps, want %d", seen, len(p.AllSteps))
	}
}

func TestNormalizeStepType_UnknownDefaultsToContent(t *testing.T) {
	if got := NormalizeStepType("interlude"); got != StepContent {
		t.Errorf("NormalizeStepType(interlude) = %s, want content", got)
	}
}
