package estimaterates

import (
	"deal-advisor-workers/internal/models"

	"github.com/shopspring/decimal"
)

const (
	BaseAPRNew  = 5.9
	BaseAPRUsed = 7.5
)

// tier offsets are added to the base APR. The Good and Average tiers leave a gap on purpose.
type tier struct {
	name      string
	lowDelta  float64
	highDelta float64
}

var tiers = []tier{
	{name: "Excellent (750+)", lowDelta: 0, highDelta: 1.5},
	{name: "Good (700-749)", lowDelta: 1.5, highDelta: 3.0},
	{name: "Average (650-699)", lowDelta: 4.0, highDelta: 7.0},
}

// BaseAPR returns the best-tier APR for the sale condition.
func BaseAPR(q models.VehicleQuery) float64 {
	if q.Condition == models.ConditionNew {
		return BaseAPRNew
	}
	return BaseAPRUsed
}

// EstimateRates returns the APR band for each credit tier, best tier first.
func EstimateRates(q models.VehicleQuery) []models.InterestRate {
	base := decimal.NewFromFloat(BaseAPR(q))

	out := make([]models.InterestRate, 0, len(tiers))
	for _, t := range tiers {
		low, _ := base.Add(decimal.NewFromFloat(t.lowDelta)).Round(2).Float64()
		high, _ := base.Add(decimal.NewFromFloat(t.highDelta)).Round(2).Float64()
		out = append(out, models.InterestRate{
			ScoreTier: t.name,
			APRLow:    low,
			APRHigh:   high,
		})
	}
	return out
}
