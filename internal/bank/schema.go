package bank

// bankSchema is the JSON Schema every question-bank document must satisfy.
// The cross-field rule (correct_index must point into options) cannot be
// expressed here and is enforced by Question.check during Parse.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"categories": map[string]any{
			"type":                 "object",
			"minProperties":        1,
			"additionalProperties": categorySchema,
		},
	},
	"required":             []any{"categories"},
	"additionalProperties": false,
}

var categorySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"questions": map[string]any{
			"type":  "array",
			"items": questionSchema,
		},
	},
	"required":             []any{"name", "questions"},
	"additionalProperties": false,
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"prompt": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"options": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"minItems": 2,
		},
		"correct_index": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
		"explanation": map[string]any{
			"type": "string",
		},
	},
	"required":             []any{"prompt", "options", "correct_index"},
	"additionalProperties": false,
}
