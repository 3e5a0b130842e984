package advice

import "github.com/abhisek/dermatype/internal/llm"

// AdviceSchema defines the JSON schema for generated skincare guidance.
var AdviceSchema = &llm.Schema{
	Name:        "skincare-advice",
	Description: "Personalized skincare guidance for a classified skin profile",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-4 sentence summary of what this skin profile means day to day",
			},
			"morning_routine": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 ordered morning routine steps, product types not brands",
			},
			"evening_routine": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 ordered evening routine steps, product types not brands",
			},
			"ingredient_cautions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 ingredients or habits to be careful with, each with a short reason",
			},
		},
		"required":             []any{"summary", "morning_routine", "evening_routine", "ingredient_cautions"},
		"additionalProperties": false,
	},
}
