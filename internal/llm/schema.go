package llm

// BuildOfferJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// generation call's payload, as a generic map. Applied after unwrapping and
// normalization; only the item list is structurally required, everything
// else gets a typed default afterwards.
func BuildOfferJSONSchema() map[string]any {
	itemProps := map[string]any{
		"task":         map[string]any{"type": "string", "minLength": 1},
		"category":     map[string]any{"type": "string"},
		"unit":         map[string]any{"type": "string"},
		"quantity":     map[string]any{"type": "number", "minimum": 0.0},
		"source":       map[string]any{"type": "string", "enum": []string{"tenant", "global", "custom"}},
		"customTask":   map[string]any{"type": "boolean"},
		"customReason": map[string]any{"type": "string"},
	}

	props := map[string]any{
		"title":         map[string]any{"type": "string"},
		"location":      map[string]any{"type": "string"},
		"customerName":  map[string]any{"type": "string"},
		"estimatedTime": map[string]any{"type": "string"},
		"offerSummary":  map[string]any{"type": "string"},
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           itemProps,
				"required":             []string{"task"},
			},
		},
		"questions": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"items"},
	}
}

// BuildPriceListJSONSchema returns the schema for the estimation call's
// payload: a "prices" array of task/laborCost/materialCost rows.
func BuildPriceListJSONSchema() map[string]any {
	rowProps := map[string]any{
		"task":         map[string]any{"type": "string", "minLength": 1},
		"laborCost":    map[string]any{"type": "number"},
		"materialCost": map[string]any{"type": "number"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"prices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties":           rowProps,
					"required":             []string{"task"},
				},
			},
		},
		"required": []string{"prices"},
	}
}
