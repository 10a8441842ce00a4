package models

type TipCategory string

const (
	TipCategoryPrice   TipCategory = "Price"
	TipCategoryFees    TipCategory = "Fees"
	TipCategoryFinance TipCategory = "Finance"
)

// NegotiationTip is one piece of advice. IDs are unique within a single analysis.
type NegotiationTip struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Content  string      `json:"content"`
	Category TipCategory `json:"category"`
}
