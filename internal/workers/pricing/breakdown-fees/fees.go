package breakdownfees

import "deal-advisor-workers/internal/models"

// feeCatalog is the fixed dealer fee list. Non-negotiable fees come first. Sales tax is
// carried as a zero placeholder until it is computed per ZIP code.
var feeCatalog = []models.Fee{
	{
		Name:        "Sales Tax",
		AmountLow:   0,
		AmountHigh:  0,
		Type:        models.FeeTypeNonNegotiable,
		Description: "State and local government tax. Non-negotiable.",
	},
	{
		Name:        "Title & Registration",
		AmountLow:   50,
		AmountHigh:  200,
		Type:        models.FeeTypeNonNegotiable,
		Description: "State DMV fees for vehicle registration.",
	},
	{
		Name:        "Destination Charge",
		AmountLow:   995,
		AmountHigh:  1695,
		Type:        models.FeeTypeNonNegotiable,
		Description: "Manufacturer's delivery fee. Rarely negotiable on new cars.",
	},
	{
		Name:        "Doc Fee (Documentation)",
		AmountLow:   85,
		AmountHigh:  899,
		Type:        models.FeeTypeNegotiable,
		Description: "Dealer profit center. Capped by law in some states, unlimited in others. ASK TO REDUCE.",
	},
	{
		Name:        "Dealer Prep / Admin",
		AmountLow:   0,
		AmountHigh:  500,
		Type:        models.FeeTypeNegotiable,
		Description: "Often a junk fee for cleaning the car. Highly negotiable.",
	},
	{
		Name:        "Add-ons (Nitrogen, Etch)",
		AmountLow:   0,
		AmountHigh:  1200,
		Type:        models.FeeTypeNegotiable,
		Description: "Optional dealer-installed accessories. Usually can be removed or refused.",
	},
}

// Breakdown returns the fee list for q. The list does not currently vary by vehicle.
func Breakdown(_ models.VehicleQuery) []models.Fee {
	out := make([]models.Fee, len(feeCatalog))
	copy(out, feeCatalog)
	return out
}

// Totals sums the upper bound of each fee category.
func Totals(fees []models.Fee) (negotiable, nonNegotiable float64) {
	for _, f := range fees {
		if f.Type == models.FeeTypeNegotiable {
			negotiable += f.AmountHigh
		} else {
			nonNegotiable += f.AmountHigh
		}
	}
	return negotiable, nonNegotiable
}
