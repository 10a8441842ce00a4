package models

// PriceBands is the estimated market range for one vehicle. MSRP and Invoice are only
// set for vehicles at most three model years old.
type PriceBands struct {
	Low       int  `json:"low"`
	Median    int  `json:"median"`
	High      int  `json:"high"`
	MSRP      *int `json:"msrp,omitempty"`
	Invoice   *int `json:"invoice,omitempty"`
	FairPrice int  `json:"fairPrice"`
}

func (p PriceBands) HasInvoice() bool {
	return p.Invoice != nil
}
