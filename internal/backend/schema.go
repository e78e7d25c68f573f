package backend

// Schema names a JSON Schema definition for a backend reply.
type Schema struct {
	Name       string
	Definition map[string]any
}

var converseSchema = &Schema{
	Name: "converse-reply",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"response"},
		"properties": map[string]any{
			"response": map[string]any{"type": "string"},
		},
	},
}

var assistSchema = &Schema{
	Name: "assist-reply",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"response"},
		"properties": map[string]any{
			"response": map[string]any{"type": "string"},
			"words_affected": map[string]any{
				"type":  []any{"array", "null"},
				"items": map[string]any{"type": "string"},
			},
			"updated_mastery": map[string]any{
				"type": []any{"object", "null"},
				"additionalProperties": map[string]any{
					"type": []any{"number", "null"},
				},
			},
		},
	},
}

var progressSchema = &Schema{
	Name: "progress-reply",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"stats"},
		"properties": map[string]any{
			"stats": map[string]any{
				"type": "object",
				"required": []any{
					"total_words", "mastered_words", "reinforcement_words",
				},
				"properties": map[string]any{
					"total_words":           map[string]any{"type": "integer"},
					"mastered_words":        map[string]any{"type": "integer"},
					"reinforcement_words":   map[string]any{"type": "integer"},
					"current_position":      map[string]any{"type": "integer"},
					"completion_percentage": map[string]any{"type": "number"},
				},
			},
			"word_status": map[string]any{"type": "object"},
		},
	},
}
