package generatetips

import "deal-advisor-workers/internal/models"

type Input struct {
	Query   models.VehicleQuery `json:"query"`
	Pricing models.PriceBands   `json:"pricing"`
}

type Output struct {
	Tips []models.NegotiationTip `json:"tips"`
}
