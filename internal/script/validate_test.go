package script

import (
	"errors"
	"testing"
)

const validScript = `{
	"meta": {"title": "Seguridad en obra", "code": "seg01", "language": "es"},
	"moments": [
		{
			"title": "Equipo de protección",
			"kind": "practice",
			"steps": [
				{"type": "content", "body": "El equipo de protección personal es obligatorio."},
				{
					"type": "question",
					"question": "¿Qué elementos de protección conoces?",
					"acceptable_answers": ["casco", "guantes", "lentes"],
					"answer_type": "list"
				}
			]
		}
	]
}`

func TestParse_Valid(t *testing.T) {
	doc, err := Parse([]byte(validScript))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.Meta.Title != "Seguridad en obra" {
		t.Errorf("Meta.Title = %q", doc.Meta.Title)
	}
	if len(doc.Moments) != 1 || len(doc.Moments[0].Steps) != 2 {
		t.Fatalf("got %d moments, want 1 with 2 steps", len(doc.Moments))
	}
	q := doc.Moments[0].Steps[1]
	if q.AnswerType != "list" || len(q.AcceptableAnswers) != 3 {
		t.Errorf("question step = %+v", q)
	}
}

func TestParse_SchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid json", `{"meta": `},
		{"missing meta", `{"moments": [{"title": "m", "steps": [{"type": "content"}]}]}`},
		{"missing moments", `{"meta": {"title": "t"}}`},
		{"empty moments", `{"meta": {"title": "t"}, "moments": []}`},
		{"moment without steps", `{"meta": {"title": "t"}, "moments": [{"title": "m"}]}`},
		{"step without type", `{"meta": {"title": "t"}, "moments": [{"title": "m", "steps": [{"body": "x"}]}]}`},
		{"bad answer_type", `{"meta": {"title": "t"}, "moments": [{"title": "m", "steps": [{"type": "question", "question": "q", "answer_type": "essay"}]}]}`},
		{"unknown field", `{"meta": {"title": "t"}, "moments": [{"title": "m", "steps": [{"type": "content", "bogus": 1}]}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.raw))
			if err == nil {
				t.Fatal("Parse() accepted a malformed document")
			}
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Errorf("error = %v, want *SchemaError", err)
			}
		})
	}
}

func TestParse_UnknownStepTypeAllowed(t *testing.T) {
	raw := `{"meta": {"title": "t"}, "moments": [{"title": "m", "steps": [{"type": "interlude", "body": "x"}]}]}`
	if _, err := Parse([]byte(raw)); err != nil {
		t.Errorf("Parse() rejected unknown step type: %v", err)
	}
}
