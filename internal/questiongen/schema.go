package questiongen

import "github.com/shlvgit07/basmach/internal/llm"

// QuestionsSchema is the structured-output contract for a batch of
// questions. Optional fields are required and sent as "" when unused, as
// strict OpenAI structured outputs demand. Ranges and option counts are
// checked per item during normalization.
var QuestionsSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A batch of multiple-choice exam practice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": questionItemSchema,
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

var questionItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "The question text in Hebrew",
		},
		"code": map[string]any{
			"type":        "string",
			"description": "Code block, numbered instruction listing or English paragraph the question refers to. Empty string when not needed.",
		},
		"illustration": map[string]any{
			"type":        "string",
			"description": "Inline <svg> markup for a shape or diagram question. Empty string when not needed.",
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Exactly 4 answer options, either all plain text or all <svg> markup",
		},
		"options_kind": map[string]any{
			"type":        "string",
			"description": `"svg" when every option is <svg> markup, otherwise "text"`,
		},
		"correct_index": map[string]any{
			"type":        "integer",
			"description": "Zero-based index (0-3) of the correct option",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Detailed step-by-step solution in Hebrew; trace the code when there is code",
		},
		"difficulty": map[string]any{
			"type":        "string",
			"description": `One of "Easy", "Medium", "Hard"`,
		},
	},
	"required":             []any{"question", "code", "illustration", "options", "options_kind", "correct_index", "explanation", "difficulty"},
	"additionalProperties": false,
}
