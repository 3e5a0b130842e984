package questionbank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON schema for custom question bank files. Structural
// rules that a schema cannot express (skip rules pointing at earlier
// questions, deltas naming real archetypes) are enforced by New().
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"format_version": map[string]any{
			"type":        "string",
			"description": "Semantic version of the bank file format, e.g. v1.0.0",
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":     map[string]any{"type": "string", "minLength": 1},
					"phase":  map[string]any{"type": "string", "enum": []any{"oil", "sensitivity", "differentiators", "demographics"}},
					"prompt": map[string]any{"type": "string", "minLength": 1},
					"skip_if_any": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"question_id": map[string]any{"type": "string", "minLength": 1},
								"option_id":   map[string]any{"type": "string", "minLength": 1},
							},
							"required":             []any{"question_id", "option_id"},
							"additionalProperties": false,
						},
					},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":    map[string]any{"type": "string", "minLength": 1},
								"label": map[string]any{"type": "string", "minLength": 1},
								"deltas": map[string]any{
									"type":                 "object",
									"additionalProperties": map[string]any{"type": "number"},
								},
								"medical_flag": map[string]any{"type": "string"},
								"demographic": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"field": map[string]any{"type": "string", "minLength": 1},
										"value": map[string]any{"type": "string", "minLength": 1},
									},
									"required":             []any{"field", "value"},
									"additionalProperties": false,
								},
							},
							"required":             []any{"id", "label"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "phase", "prompt", "options"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"format_version", "questions"},
	"additionalProperties": false,
}

var compileBankSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(bankSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal bank schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse bank schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://question-bank.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// validateBankJSON validates raw bank JSON against the bank file schema.
func validateBankJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := compileBankSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
