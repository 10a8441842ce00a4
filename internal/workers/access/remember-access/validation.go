package rememberaccess

import "deal-advisor-workers/internal/common/validation"

// GetInputSchema accepts either a real email or the literal guest marker.
func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"email", "rememberMe"},
		Properties: map[string]validation.Property{
			"visitorId": {
				Type:      "string",
				MinLength: validation.IntPtr(1),
				MaxLength: validation.IntPtr(64),
				Pattern:   validation.StringPtr(`^[A-Za-z0-9-]+$`),
			},
			"email": {
				Type:      "string",
				MinLength: validation.IntPtr(1),
				MaxLength: validation.IntPtr(254),
				Pattern:   validation.StringPtr(`^([^@\s]+@[^@\s]+\.[^@\s]+|[Gg][Uu][Ee][Ss][Tt])$`),
			},
			"guest":      {Type: "boolean"},
			"rememberMe": {Type: "boolean"},
		},
		AdditionalProperties: true,
	}
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"access"},
		Properties: map[string]validation.Property{
			"access": {
				Type:     "object",
				Required: []string{"visitorId", "hasAccess", "remembered"},
				Properties: map[string]validation.Property{
					"visitorId":  {Type: "string", MinLength: validation.IntPtr(1)},
					"hasAccess":  {Type: "boolean"},
					"remembered": {Type: "boolean"},
				},
			},
		},
		AdditionalProperties: false,
	}
}
