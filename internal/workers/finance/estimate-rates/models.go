package estimaterates

import "deal-advisor-workers/internal/models"

type Input struct {
	Query models.VehicleQuery `json:"query"`
}

type Output struct {
	Rates   []models.InterestRate `json:"rates"`
	BaseAPR float64               `json:"baseApr"`
}
