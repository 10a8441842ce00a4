package models

// Condition is the sale condition of the vehicle being priced.
type Condition string

const (
	ConditionNew  Condition = "New"
	ConditionUsed Condition = "Used"
)

func (c Condition) IsValid() bool {
	return c == ConditionNew || c == ConditionUsed
}

func (c Condition) String() string {
	return string(c)
}

// VehicleQuery is the single input of every analysis.
type VehicleQuery struct {
	Year      int       `json:"year"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	Condition Condition `json:"condition"`
	ZipCode   string    `json:"zipCode"`
}

// Age is the whole number of model years between the vehicle and currentYear. It is
// negative for next year's models.
func (q VehicleQuery) Age(currentYear int) int {
	return currentYear - q.Year
}

// IsUsed reports whether the vehicle should be priced off a depreciation curve.
func (q VehicleQuery) IsUsed(currentYear int) bool {
	return q.Condition == ConditionUsed || q.Age(currentYear) > 0
}
