package models

// DealAnalysisResult bundles every generator's output for one query.
type DealAnalysisResult struct {
	Query      VehicleQuery     `json:"query"`
	Pricing    PriceBands       `json:"pricing"`
	Fees       []Fee            `json:"fees"`
	Rates      []InterestRate   `json:"rates"`
	Incentives []Incentive      `json:"incentives"`
	Tips       []NegotiationTip `json:"tips"`
}
