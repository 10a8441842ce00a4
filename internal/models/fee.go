package models

type FeeType string

const (
	FeeTypeNegotiable    FeeType = "Negotiable"
	FeeTypeNonNegotiable FeeType = "Non-Negotiable"
)

type Fee struct {
	Name        string  `json:"name"`
	AmountLow   float64 `json:"amountLow"`
	AmountHigh  float64 `json:"amountHigh"`
	Type        FeeType `json:"type"`
	Description string  `json:"description"`
}
