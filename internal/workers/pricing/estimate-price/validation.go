package estimateprice

import (
	"deal-advisor-workers/internal/common/validation"
	"deal-advisor-workers/internal/models"
)

// GetInputSchema validates the job variables. Other process variables may be present.
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
		Required: []string{"pricing"},
		Properties: map[string]validation.Property{
			"pricing": {
				Type:     "object",
				Required: []string{"low", "median", "high", "fairPrice"},
				Properties: map[string]validation.Property{
					"low":       {Type: "integer", Minimum: validation.FloatPtr(0)},
					"median":    {Type: "integer", Minimum: validation.FloatPtr(0)},
					"high":      {Type: "integer", Minimum: validation.FloatPtr(0)},
					"fairPrice": {Type: "integer", Minimum: validation.FloatPtr(0)},
					"msrp":      {Type: "integer"},
					"invoice":   {Type: "integer"},
				},
			},
			"depreciationBucket": {
				Type: "string",
				Enum: []string{
					string(BucketValueHolder), string(BucketStrongHolder),
					string(BucketLuxury), string(BucketEV), string(BucketAverage),
				},
			},
			"basePrice":       {Type: "number"},
			"basePriceSource": {Type: "string"},
		},
		AdditionalProperties: false,
	}
}
