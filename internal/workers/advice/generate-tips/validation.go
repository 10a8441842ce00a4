package generatetips

import (
	"deal-advisor-workers/internal/common/validation"
	"deal-advisor-workers/internal/models"
)

func pricingProperty() validation.Property {
	return validation.Property{
		Type:     "object",
		Required: []string{"low", "median", "high", "fairPrice"},
		Properties: map[string]validation.Property{
			"low":       {Type: "integer", Minimum: validation.FloatPtr(0)},
			"median":    {Type: "integer", Minimum: validation.FloatPtr(0)},
			"high":      {Type: "integer", Minimum: validation.FloatPtr(0)},
			"fairPrice": {Type: "integer", Minimum: validation.FloatPtr(0)},
			"msrp":      {Type: "integer", Minimum: validation.FloatPtr(0)},
			"invoice":   {Type: "integer", Minimum: validation.FloatPtr(0)},
		},
	}
}

// GetInputSchema expects the estimate-price output merged alongside the query.
func GetInputSchema(currentYear int) validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"query", "pricing"},
		Properties: map[string]validation.Property{
			"query":   models.VehicleQueryProperty(currentYear),
			"pricing": pricingProperty(),
		},
		AdditionalProperties: true,
	}
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"tips"},
		Properties: map[string]validation.Property{
			"tips": {
				Type: "array",
				Items: &validation.Property{
					Type:     "object",
					Required: []string{"id", "title", "content", "category"},
					Properties: map[string]validation.Property{
						"id":      {Type: "string", MinLength: validation.IntPtr(1)},
						"title":   {Type: "string", MinLength: validation.IntPtr(1)},
						"content": {Type: "string", MinLength: validation.IntPtr(1)},
						"category": {
							Type: "string",
							Enum: []string{
								string(models.TipCategoryPrice),
								string(models.TipCategoryFees),
								string(models.TipCategoryFinance),
							},
						},
					},
				},
			},
		},
		AdditionalProperties: false,
	}
}
