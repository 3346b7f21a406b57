package api

// questionsSchema validates the getPracticeQuestionsBySkill response
// before any question enters the session flow. The service is trusted
// but versioned independently of this client; catching a drifted
// payload here turns a confusing mid-session failure into the single
// "no questions found" empty state.
var questionsSchema = &responseSchema{
	Name: "practice-questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":     map[string]any{"type": "string", "minLength": 1},
						"prompt": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"answer": map[string]any{"type": "string"},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"Easy", "Medium", "Hard"},
						},
						"explanation": map[string]any{"type": "string"},
						"template_id": map[string]any{"type": "string"},
						"skill_id":    map[string]any{"type": "string"},
					},
					"required": []any{"id", "prompt", "answer", "difficulty"},
				},
			},
			"template_metadata": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"difficulty": map[string]any{"type": "string"},
					"skill_name": map[string]any{"type": "string"},
					"grade":      map[string]any{"type": "string"},
				},
			},
		},
		"required": []any{"questions"},
	},
}
