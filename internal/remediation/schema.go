package remediation

import "github.com/okanta/memloop/internal/llm"

// NoteSchema defines the JSON schema for remediation note generation.
var NoteSchema = &llm.Schema{
	Name:        "remediation-note",
	Description: "A short remediation note targeted at a diagnosed failure mode",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title for the note (3-8 words)",
			},
			"body": map[string]any{
				"type":        "string",
				"description": "The note text, under 150 words, plain text",
			},
			"contrasted_with": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concept names contrasted against; empty unless the note is contrastive",
			},
		},
		"required":             []any{"title", "body", "contrasted_with"},
		"additionalProperties": false,
	},
}
