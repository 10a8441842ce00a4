package estimaterates

import (
	"deal-advisor-workers/internal/common/validation"
	"deal-advisor-workers/internal/models"
)

func GetInputSchema(currentYear int) validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"query"},
		Properties: map[string]validation.Property{
			"query": models.VehicleQueryProperty(currentYear),
		},
		AdditionalProperties: true,
	}
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"rates"},
		Properties: map[string]validation.Property{
			"rates": {
				Type: "array",
				Items: &validation.Property{
					Type:     "object",
					Required: []string{"scoreTier", "aprLow", "aprHigh"},
					Properties: map[string]validation.Property{
						"scoreTier": {Type: "string", MinLength: validation.IntPtr(1)},
						"aprLow":    {Type: "number", Minimum: validation.FloatPtr(0)},
						"aprHigh":   {Type: "number", Minimum: validation.FloatPtr(0)},
					},
				},
			},
			"baseApr": {Type: "number"},
		},
		AdditionalProperties: false,
	}
}
