package models

import "deal-advisor-workers/internal/common/validation"

// MinModelYear is the oldest model year accepted at the external boundary.
const MinModelYear = 1980

// VehicleQueryProperty describes a VehicleQuery for job-variable and request validation.
// Model years up to currentYear+1 are accepted.
func VehicleQueryProperty(currentYear int) validation.Property {
	return validation.Property{
		Type:        "object",
		Description: "Vehicle to analyze",
		Required:    []string{"year", "make", "model", "condition", "zipCode"},
		Properties: map[string]validation.Property{
			"year": {
				Type:    "integer",
				Minimum: validation.FloatPtr(MinModelYear),
				Maximum: validation.FloatPtr(float64(currentYear + 1)),
			},
			"make": {
				Type:      "string",
				MinLength: validation.IntPtr(1),
				MaxLength: validation.IntPtr(64),
				Pattern:   validation.StringPtr(`\S`),
			},
			"model": {
				Type:      "string",
				MinLength: validation.IntPtr(1),
				MaxLength: validation.IntPtr(64),
				Pattern:   validation.StringPtr(`\S`),
			},
			"condition": {
				Type: "string",
				Enum: []string{string(ConditionNew), string(ConditionUsed)},
			},
			"zipCode": {
				Type:    "string",
				Pattern: validation.StringPtr(`^[0-9]{5}$`),
			},
		},
	}
}

// VehicleQuerySchema validates a bare VehicleQuery document.
func VehicleQuerySchema(currentYear int) validation.JSONSchema {
	p := VehicleQueryProperty(currentYear)
	return validation.JSONSchema{
		Type:                 "object",
		Properties:           p.Properties,
		Required:             p.Required,
		AdditionalProperties: false,
	}
}
