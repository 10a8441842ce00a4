package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSONSchema is the subset of draft-07 used to describe job variables and request bodies.
type JSONSchema struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties,omitempty"`
	Required             []string            `json:"required,omitempty"`
	AdditionalProperties bool                `json:"additionalProperties"`
}

type Property struct {
	Type        string              `json:"type,omitempty"`
	Description string              `json:"description,omitempty"`
	Minimum     *float64            `json:"minimum,omitempty"`
	Maximum     *float64            `json:"maximum,omitempty"`
	Enum        []string            `json:"enum,omitempty"`
	Pattern     *string             `json:"pattern,omitempty"`
	MinLength   *int                `json:"minLength,omitempty"`
	MaxLength   *int                `json:"maxLength,omitempty"`
	Items       *Property           `json:"items,omitempty"`
	Properties  map[string]Property `json:"properties,omitempty"`
	Required    []string            `json:"required,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidateInput checks a decoded document (map, struct or raw JSON bytes) against schema.
func ValidateInput(input interface{}, schema JSONSchema) *ValidationResult {
	var docLoader gojsonschema.JSONLoader
	switch v := input.(type) {
	case []byte:
		docLoader = gojsonschema.NewBytesLoader(v)
	case string:
		docLoader = gojsonschema.NewStringLoader(v)
	default:
		// Round-trip through JSON so struct tags and numeric types match the wire form.
		raw, err := json.Marshal(v)
		if err != nil {
			return invalid("(root)", err.Error(), "INVALID_DOCUMENT")
		}
		docLoader = gojsonschema.NewBytesLoader(raw)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), docLoader)
	if err != nil {
		return invalid("(root)", err.Error(), "INVALID_DOCUMENT")
	}
	if result.Valid() {
		return &ValidationResult{Valid: true}
	}

	out := &ValidationResult{Valid: false}
	for _, re := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fieldOf(re),
			Message: re.Description(),
			Code:    strings.ToUpper(re.Type()),
		})
	}
	return out
}

func invalid(field, msg, code string) *ValidationResult {
	return &ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Field: field, Message: msg, Code: code}},
	}
}

// fieldOf reports the offending property. Required-property errors are raised on the
// parent object, so the missing name is appended from the error details.
func fieldOf(re gojsonschema.ResultError) string {
	field := re.Field()
	if re.Type() == "required" {
		if prop, ok := re.Details()["property"].(string); ok {
			if field == "(root)" || field == "" {
				return prop
			}
			return field + "." + prop
		}
	}
	return field
}

// GetErrorMessages returns "field: message" lines.
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// Summary joins all messages into one line, suitable for error details.
func (vr *ValidationResult) Summary() string {
	return strings.Join(vr.GetErrorMessages(), "; ")
}

// HasErrors checks if validation has errors for a specific field or its children.
func (vr *ValidationResult) HasErrors(field string) bool {
	return len(vr.GetErrorsForField(field)) > 0
}

func (vr *ValidationResult) GetErrorsForField(field string) []ValidationError {
	var fieldErrors []ValidationError
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}

func IntPtr(i int) *int { return &i }

func FloatPtr(f float64) *float64 { return &f }

func StringPtr(s string) *string { return &s }
