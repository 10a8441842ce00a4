package breakdownfees

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
		Required: []string{"fees"},
		Properties: map[string]validation.Property{
			"fees": {
				Type: "array",
				Items: &validation.Property{
					Type:     "object",
					Required: []string{"name", "amountLow", "amountHigh", "type", "description"},
					Properties: map[string]validation.Property{
						"name":        {Type: "string", MinLength: validation.IntPtr(1)},
						"amountLow":   {Type: "number", Minimum: validation.FloatPtr(0)},
						"amountHigh":  {Type: "number", Minimum: validation.FloatPtr(0)},
						"type":        {Type: "string", Enum: []string{string(models.FeeTypeNegotiable), string(models.FeeTypeNonNegotiable)}},
						"description": {Type: "string"},
					},
				},
			},
			"negotiableHigh":    {Type: "number"},
			"nonNegotiableHigh": {Type: "number"},
		},
		AdditionalProperties: false,
	}
}
