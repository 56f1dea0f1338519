package content

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema is the JSON Schema every content pack must satisfy before
// the app will serve it. Structural rules the Go types can't express
// (non-empty question lists, scores in [0,1], known enum values) live here.
var catalogSchema = map[string]any{
	"type":     "object",
	"required": []any{"modules", "assets"},
	"properties": map[string]any{
		"modules": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "title", "status", "required_score", "lessons"},
				"properties": map[string]any{
					"id":     map[string]any{"type": "string", "minLength": 1},
					"title":  map[string]any{"type": "string", "minLength": 1},
					"icon":   map[string]any{"type": "string"},
					"status": map[string]any{"enum": []any{"LOCKED", "AVAILABLE", "COMPLETED"}},
					"required_score": map[string]any{
						"type":    "number",
						"minimum": 0,
						"maximum": 1,
					},
					"lessons": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"id", "title", "xp_reward", "questions"},
							"properties": map[string]any{
								"id":        map[string]any{"type": "string", "minLength": 1},
								"title":     map[string]any{"type": "string", "minLength": 1},
								"xp_reward": map[string]any{"type": "integer", "minimum": 1},
								"questions": map[string]any{
									"type":     "array",
									"minItems": 1,
									"items": map[string]any{
										"type":     "object",
										"required": []any{"id", "kind", "prompt", "explanation"},
										"properties": map[string]any{
											"id":     map[string]any{"type": "string", "minLength": 1},
											"kind":   map[string]any{"enum": []any{"multiple-choice", "match", "order"}},
											"prompt": map[string]any{"type": "string", "minLength": 1},
											"options": map[string]any{
												"type":  "array",
												"items": map[string]any{"type": "string"},
											},
											"answer":      map[string]any{"type": "string"},
											"explanation": map[string]any{"type": "string"},
										},
									},
								},
							},
						},
					},
				},
			},
		},
		"assets": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"symbol", "name", "price", "class", "level_required"},
				"properties": map[string]any{
					"symbol":         map[string]any{"type": "string", "minLength": 1},
					"name":           map[string]any{"type": "string", "minLength": 1},
					"price":          map[string]any{"type": "number", "exclusiveMinimum": 0},
					"change":         map[string]any{"type": "number"},
					"class":          map[string]any{"enum": []any{"Stock", "Crypto", "ETF"}},
					"level_required": map[string]any{"type": "integer", "minimum": 1},
				},
			},
		},
	},
}

// validateCatalog checks raw catalog JSON against the schema.
func validateCatalog(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compileCatalogSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}

func compileCatalogSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://catalog.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
