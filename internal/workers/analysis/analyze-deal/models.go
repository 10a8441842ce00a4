package analyzedeal

import "deal-advisor-workers/internal/models"

type Input struct {
	Query models.VehicleQuery `json:"query"`
}

type Output struct {
	Analysis models.DealAnalysisResult `json:"analysis"`
}
