package listincentives

import (
	"fmt"

	"deal-advisor-workers/internal/models"
)

// ManufacturerRebate is the cash-back amount offered on new vehicles.
const ManufacturerRebate = 1500.0

// ListIncentives returns the offers available for q. New vehicles get a rebate and a
// promotional APR, used vehicles the CPO financing offer.
func ListIncentives(q models.VehicleQuery) []models.Incentive {
	if q.Condition == models.ConditionNew {
		rebate := ManufacturerRebate
		return []models.Incentive{
			{
				Title:       "Manufacturer Rebate",
				Description: fmt.Sprintf("Customer cash back on select %d %s models.", q.Year, q.Make),
				Type:        models.IncentiveCashBack,
				Amount:      &rebate,
			},
			{
				Title:       "Low APR Special",
				Description: "Qualified buyers can get 2.9% APR for 36 months.",
				Type:        models.IncentiveFinance,
			},
		}
	}

	return []models.Incentive{
		{
			Title:       "Certified Pre-Owned Rate",
			Description: "Special financing for CPO vehicles.",
			Type:        models.IncentiveFinance,
		},
	}
}

// CashBack sums the amounts of all cash-back offers.
func CashBack(incentives []models.Incentive) float64 {
	var total float64
	for _, inc := range incentives {
		if inc.Type == models.IncentiveCashBack && inc.Amount != nil {
			total += *inc.Amount
		}
	}
	return total
}
