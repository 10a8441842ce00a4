package estimateprice

import (
	"slices"
	"strings"
)

// Bucket names a depreciation class.
type Bucket string

const (
	BucketValueHolder  Bucket = "value_holder"
	BucketStrongHolder Bucket = "strong_holder"
	BucketLuxury       Bucket = "luxury"
	BucketEV           Bucket = "ev"
	BucketAverage      Bucket = "average"
)

// Depreciation is the annual rate applied to a vehicle's base price.
type Depreciation struct {
	Bucket Bucket
	Rate   float64
}

type depreciationRule struct {
	bucket  Bucket
	rate    float64
	matches func(makeName, model string) bool
}

var (
	valueHolderModels = []string{"4Runner", "Tacoma", "Tundra", "Wrangler", "Bronco", "Land Cruiser", "911", "Corvette"}
	valueHolderMakes  = []string{"Ferrari", "Lamborghini"}

	// Matched as a substring of the model or exactly against the make.
	strongHolderKeys = []string{"F-150", "Silverado 1500", "Sierra 1500", "Ram", "Civic", "Corolla", "CR-V", "RAV4", "Subaru"}

	luxuryMakes = []string{"BMW", "Mercedes-Benz", "Audi", "Maserati", "Jaguar", "Land Rover", "Alfa Romeo"}
	evMakes     = []string{"Tesla", "Polestar", "Rivian", "Lucid"}
)

const averageRate = 0.13

// depreciationRules is evaluated in order; the first match wins.
var depreciationRules = []depreciationRule{
	{
		bucket: BucketValueHolder,
		rate:   0.06,
		matches: func(makeName, model string) bool {
			return slices.Contains(valueHolderModels, model) || slices.Contains(valueHolderMakes, makeName)
		},
	},
	{
		bucket: BucketStrongHolder,
		rate:   0.09,
		matches: func(makeName, model string) bool {
			for _, k := range strongHolderKeys {
				if strings.Contains(model, k) || makeName == k {
					return true
				}
			}
			return false
		},
	},
	{
		bucket: BucketLuxury,
		rate:   0.18,
		matches: func(makeName, _ string) bool {
			return slices.Contains(luxuryMakes, makeName)
		},
	},
	{
		bucket: BucketEV,
		rate:   0.15,
		matches: func(makeName, _ string) bool {
			return slices.Contains(evMakes, makeName)
		},
	},
}

// ClassifyDepreciation picks the annual depreciation for a make and model.
func ClassifyDepreciation(makeName, model string) Depreciation {
	for _, r := range depreciationRules {
		if r.matches(makeName, model) {
			return Depreciation{Bucket: r.bucket, Rate: r.rate}
		}
	}
	return Depreciation{Bucket: BucketAverage, Rate: averageRate}
}

// Apply compounds the rate over age years. The first year costs 1.5x the annual rate.
func (d Depreciation) Apply(value float64, age int) float64 {
	if age < 1 {
		return value
	}
	value *= 1 - 1.5*d.Rate
	for i := 1; i < age; i++ {
		value *= 1 - d.Rate
	}
	return value
}
