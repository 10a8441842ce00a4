package generatetips

import (
	"fmt"

	"deal-advisor-workers/internal/models"

	"github.com/dustin/go-humanize"
)

// OldVehicleAge is the age past which condition dominates the valuation.
const OldVehicleAge = 5

var (
	tipOutTheDoor = models.NegotiationTip{
		ID:       "price-new-1",
		Category: models.TipCategoryPrice,
		Title:    `Focus on "Out-the-Door" Price`,
		Content:  "Dealers often mix monthly payments with vehicle price. Negotiate the total check you will write, including all fees and taxes.",
	}
	tipMarketComps = models.NegotiationTip{
		ID:       "price-used-1",
		Category: models.TipCategoryPrice,
		Title:    "Use Market Comps",
		Content:  "Print out 3 listing listing of similar cars within 50 miles priced lower than this dealer. Use them as leverage.",
	}
	tipConditionIsKing = models.NegotiationTip{
		ID:       "age-old",
		Category: models.TipCategoryPrice,
		Title:    "Condition is King",
		Content:  "For older vehicles, KBB values fluctuate wildly based on condition. Point out every flaw (tires, scratches) to justify a lower offer.",
	}
	tipDocFee = models.NegotiationTip{
		ID:       "fee-doc",
		Category: models.TipCategoryFees,
		Title:    "Challenge the Doc Fee",
		Content:  "If the Doc Fee is over $400, ask them to reduce the selling price of the car by the difference to offset it.",
	}
	tipAddOns = models.NegotiationTip{
		ID:       "fee-addon",
		Category: models.TipCategoryFees,
		Title:    "Refuse Nitrogen & Etching",
		Content:  "These are high-profit items. Tell them you did not ask for them and will not pay for them. They will often waive the cost.",
	}
	tipPreApproval = models.NegotiationTip{
		ID:       "fin-preapproval",
		Category: models.TipCategoryFinance,
		Title:    "Get Pre-Approved First",
		Content:  "Walk in with a loan offer from your bank or credit union. Ask the dealer to beat that rate. If they can't, use your own financing.",
	}
)

func invoiceTip(invoice int) models.NegotiationTip {
	return models.NegotiationTip{
		ID:       "price-new-2",
		Category: models.TipCategoryPrice,
		Title:    "Target Invoice Price",
		Content:  fmt.Sprintf("The invoice price is ~$%s. Start your offer near here, not the MSRP.", humanize.Comma(int64(invoice))),
	}
}

// Generate applies the advice rules in order: price strategy, vehicle age, fees, financing.
func Generate(q models.VehicleQuery, pricing models.PriceBands, currentYear int) []models.NegotiationTip {
	tips := make([]models.NegotiationTip, 0, 6)

	if q.Condition == models.ConditionNew {
		tips = append(tips, tipOutTheDoor)
		if pricing.HasInvoice() {
			tips = append(tips, invoiceTip(*pricing.Invoice))
		}
	} else {
		tips = append(tips, tipMarketComps)
	}

	if q.Age(currentYear) > OldVehicleAge {
		tips = append(tips, tipConditionIsKing)
	}

	tips = append(tips, tipDocFee, tipAddOns, tipPreApproval)
	return tips
}
