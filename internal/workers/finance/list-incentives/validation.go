package listincentives

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
		Required: []string{"incentives"},
		Properties: map[string]validation.Property{
			"incentives": {
				Type: "array",
				Items: &validation.Property{
					Type:     "object",
					Required: []string{"title", "description", "type"},
					Properties: map[string]validation.Property{
						"title":       {Type: "string", MinLength: validation.IntPtr(1)},
						"description": {Type: "string"},
						"type": {
							Type: "string",
							Enum: []string{
								string(models.IncentiveCashBack),
								string(models.IncentiveFinance),
								string(models.IncentiveLease),
							},
						},
						"amount": {Type: "number", Minimum: validation.FloatPtr(0)},
					},
				},
			},
			"cashBack": {Type: "number"},
		},
		AdditionalProperties: false,
	}
}
