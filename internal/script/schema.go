package script

// documentSchema is the JSON Schema every lesson script must satisfy
// before compilation. Unknown step types are allowed (the compiler
// defaults them to content); missing required structure is not.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"meta": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":    map[string]any{"type": "string", "minLength": 1},
				"code":     map[string]any{"type": "string"},
				"course":   map[string]any{"type": "string"},
				"language": map[string]any{"type": "string"},
				"version":  map[string]any{"type": "integer"},
			},
			"required":             []any{"title"},
			"additionalProperties": false,
		},
		"moments": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{"type": "string", "minLength": 1},
					"code":  map[string]any{"type": "string"},
					"kind":  map[string]any{"type": "string"},
					"order": map[string]any{"type": "integer"},
					"steps": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    stepSchema,
					},
				},
				"required":             []any{"title", "steps"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"meta", "moments"},
	"additionalProperties": false,
}

var stepSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type":      map[string]any{"type": "string", "minLength": 1},
		"code":      map[string]any{"type": "string"},
		"order":     map[string]any{"type": "integer"},
		"question":  map[string]any{"type": "string"},
		"objective": map[string]any{"type": "string"},
		"expected": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"acceptable_answers": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"answer_type": map[string]any{
			"type": "string",
			"enum": []any{"conceptual", "list", "application", "identification", "open"},
		},
		"body":  map[string]any{"type": "string"},
		"text":  map[string]any{"type": "string"},
		"items": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
	"required":             []any{"type"},
	"additionalProperties": false,
}
