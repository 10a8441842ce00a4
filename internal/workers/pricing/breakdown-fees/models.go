package breakdownfees

import "deal-advisor-workers/internal/models"

type Input struct {
	Query models.VehicleQuery `json:"query"`
}

type Output struct {
	Fees              []models.Fee `json:"fees"`
	NegotiableHigh    float64      `json:"negotiableHigh"`
	NonNegotiableHigh float64      `json:"nonNegotiableHigh"`
}
