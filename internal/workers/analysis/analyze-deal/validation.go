package analyzedeal

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
		Required: []string{"analysis"},
		Properties: map[string]validation.Property{
			"analysis": {
				Type:     "object",
				Required: []string{"query", "pricing", "fees", "rates", "incentives", "tips"},
				Properties: map[string]validation.Property{
					"query":      {Type: "object"},
					"pricing":    {Type: "object", Required: []string{"low", "median", "high", "fairPrice"}},
					"fees":       {Type: "array", Items: &validation.Property{Type: "object"}},
					"rates":      {Type: "array", Items: &validation.Property{Type: "object"}},
					"incentives": {Type: "array", Items: &validation.Property{Type: "object"}},
					"tips":       {Type: "array", Items: &validation.Property{Type: "object"}},
				},
			},
		},
		AdditionalProperties: false,
	}
}
