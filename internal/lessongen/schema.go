package lessongen

import "github.com/kosmi-edu/kosmi/internal/llm"

// VariantSchema defines the JSON schema for one generated lesson variant.
var VariantSchema = &llm.Schema{
	Name:        "lesson-variant",
	Description: "Lesson content for one Dutch primary-school grade (groep)",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"introText": map[string]any{
				"type":        "string",
				"description": "Korte introductie (1-2 zinnen) die voorgelezen wordt",
			},
			"coreContent": map[string]any{
				"type":        "string",
				"description": "Hoofdtekst in HTML, educatief en boeiend, 2-3 paragrafen",
			},
			"depthContent": map[string]any{
				"type":        "string",
				"description": "Extra verdieping voor nieuwsgierige kinderen, 1-2 paragrafen",
			},
			"reflectionQuestion": map[string]any{
				"type":        "string",
				"description": "Een open vraag die nadenken stimuleert",
			},
			"pointsBase": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
			"pointsDepthBonus": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
		},
		"required":             []any{"introText", "coreContent", "depthContent", "reflectionQuestion", "pointsBase", "pointsDepthBonus"},
		"additionalProperties": false,
	},
}
