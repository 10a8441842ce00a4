package estimateprice

import "deal-advisor-workers/internal/models"

type Input struct {
	Query models.VehicleQuery `json:"query"`
}

type Output struct {
	Pricing            models.PriceBands `json:"pricing"`
	DepreciationBucket Bucket            `json:"depreciationBucket"`
	BasePrice          float64           `json:"basePrice"`
	BasePriceSource    string            `json:"basePriceSource"`
}
