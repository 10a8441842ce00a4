package models

// InterestRate is the APR range quoted for one credit score tier.
type InterestRate struct {
	ScoreTier string  `json:"scoreTier"`
	APRLow    float64 `json:"aprLow"`
	APRHigh   float64 `json:"aprHigh"`
}

type IncentiveType string

const (
	IncentiveCashBack IncentiveType = "Cash Back"
	IncentiveFinance  IncentiveType = "Finance"
	IncentiveLease    IncentiveType = "Lease"
)

type Incentive struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        IncentiveType `json:"type"`
	Amount      *float64      `json:"amount,omitempty"`
}
