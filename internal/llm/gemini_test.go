package llm

import "testing"

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-flash-lite", "gemini-2.5-flash-lite"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": float64(10),
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":      map[string]any{"type": "string"},
						"correct_index": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
						"difficulty":    map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
					},
					"required": []any{"question", "correct_index"},
				},
			},
		},
		"required": []any{"questions"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	questions := schema.Properties["questions"]
	if questions.Type != "ARRAY" {
		t.Fatalf("expected ARRAY for questions, got %s", questions.Type)
	}
	if questions.MinItems == nil || *questions.MinItems != 1 || questions.MaxItems == nil || *questions.MaxItems != 10 {
		t.Fatalf("item bounds not carried: %v %v", questions.MinItems, questions.MaxItems)
	}

	item := questions.Items
	if item.Type != "OBJECT" || len(item.Required) != 2 {
		t.Fatalf("unexpected item schema: %+v", item)
	}
	idx := item.Properties["correct_index"]
	if idx.Type != "INTEGER" || idx.Minimum == nil || *idx.Minimum != 0 || idx.Maximum == nil || *idx.Maximum != 3 {
		t.Fatalf("unexpected correct_index schema: %+v", idx)
	}
	if len(item.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(item.Properties["difficulty"].Enum))
	}
}

func TestSchemaInt(t *testing.T) {
	for _, v := range []any{4, int64(4), float64(4)} {
		if n, ok := schemaInt(v); !ok || n != 4 {
			t.Errorf("schemaInt(%T) = %d, %v", v, n, ok)
		}
	}
	if _, ok := schemaInt("4"); ok {
		t.Error("strings are not schema integers")
	}
}
