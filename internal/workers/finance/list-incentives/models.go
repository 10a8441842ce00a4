package listincentives

import "deal-advisor-workers/internal/models"

type Input struct {
	Query models.VehicleQuery `json:"query"`
}

type Output struct {
	Incentives []models.Incentive `json:"incentives"`
	CashBack   float64            `json:"cashBack"`
}
