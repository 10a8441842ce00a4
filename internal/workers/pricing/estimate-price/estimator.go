package estimateprice

import (
	"context"
	stderrors "errors"
	"time"

	"deal-advisor-workers/internal/catalog"
	"deal-advisor-workers/internal/common/clock"
	"deal-advisor-workers/internal/common/errors"
	"deal-advisor-workers/internal/common/metrics"
	"deal-advisor-workers/internal/models"

	"github.com/shopspring/decimal"
)

const (
	usedSpread       = 0.12
	newSpread        = 0.06
	slightlyUsedCut  = 0.90
	hotNewMarkup     = 1.05
	hotNewRateCutoff = 0.08
	msrpYearlyDrift  = 0.02
	invoiceRatio     = 0.92
	msrpMaxAge       = 3
)

var hundred = decimal.NewFromInt(100)

// Delay simulates the latency of an upstream market lookup. Returning an error fails the
// estimate.
type Delay func(ctx context.Context, d time.Duration) error

// SleepContext waits for d or until ctx is done.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Estimate is a price band together with how it was derived.
type Estimate struct {
	Pricing      models.PriceBands
	Depreciation Depreciation
	BasePrice    float64
	BaseSource   catalog.PriceSource
}

// Estimator turns a VehicleQuery into a price band from the static tables.
type Estimator struct {
	config *Config
	noise  NoiseSource
	delay  Delay
	clock  clock.Clock
}

type EstimatorOption func(*Estimator)

func WithNoise(n NoiseSource) EstimatorOption {
	return func(e *Estimator) { e.noise = n }
}

func WithDelay(d Delay) EstimatorOption {
	return func(e *Estimator) { e.delay = d }
}

func WithClock(c clock.Clock) EstimatorOption {
	return func(e *Estimator) { e.clock = c }
}

func NewEstimator(cfg *Config, opts ...EstimatorOption) *Estimator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Estimator{
		config: cfg,
		noise:  NewRandomNoise(cfg.Seed),
		delay:  SleepContext,
		clock:  clock.System(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate returns the price band for q. Unknown makes and models fall back to tier and
// default prices; the only failures come from the simulated upstream lookup.
func (e *Estimator) Estimate(ctx context.Context, q models.VehicleQuery) (models.PriceBands, error) {
	est, err := e.EstimateDetailed(ctx, q)
	if err != nil {
		return models.PriceBands{}, err
	}
	return est.Pricing, nil
}

func (e *Estimator) EstimateDetailed(ctx context.Context, q models.VehicleQuery) (*Estimate, error) {
	if err := e.delay(ctx, e.config.SimulatedLatency); err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
			return nil, errors.NewPricingTimeoutError(err)
		}
		return nil, errors.NewPricingFetchFailedError(err)
	}

	currentYear := clock.Year(e.clock)
	est := e.compute(q, currentYear, e.noise.Noise(e.config.NoiseAmplitude))

	metrics.PriceEstimates.WithLabelValues(q.Condition.String(), string(est.Depreciation.Bucket)).Inc()
	metrics.EstimatedMedianPrice.WithLabelValues(q.Condition.String()).Observe(float64(est.Pricing.Median))

	return est, nil
}

// compute is the pure part of the estimate: everything except latency and the noise draw.
func (e *Estimator) compute(q models.VehicleQuery, currentYear int, noise float64) *Estimate {
	age := q.Age(currentYear)
	if age < 0 {
		age = 0
	}

	base, source := catalog.BasePrice(q.Make, q.Model)
	dep := ClassifyDepreciation(q.Make, q.Model)

	value := base
	switch {
	case age >= 1:
		value = dep.Apply(base, age)
	case q.Condition == models.ConditionUsed:
		value *= slightlyUsedCut
	case dep.Rate < hotNewRateCutoff:
		value *= hotNewMarkup
	}

	spread := newSpread
	if q.IsUsed(currentYear) {
		spread = usedSpread
	}

	median := float64(roundInt(value)) + noise
	if median < e.config.MinimumPrice {
		median = e.config.MinimumPrice
	}
	low := roundInt(median * (1 - spread))
	high := roundInt(median * (1 + spread))

	bands := models.PriceBands{
		Low:    roundToHundred(float64(low)),
		Median: roundToHundred(median),
		High:   roundToHundred(float64(high)),
	}
	bands.FairPrice = bands.Median

	if q.Age(currentYear) <= msrpMaxAge {
		msrp := roundInt(base * (1 - float64(age)*msrpYearlyDrift))
		invoice := roundInt(float64(msrp) * invoiceRatio)
		bands.MSRP = &msrp
		bands.Invoice = &invoice
	}

	return &Estimate{
		Pricing:      bands,
		Depreciation: dep,
		BasePrice:    base,
		BaseSource:   source,
	}
}

func roundInt(v float64) int {
	return int(decimal.NewFromFloat(v).Round(0).IntPart())
}

func roundToHundred(v float64) int {
	return int(decimal.NewFromFloat(v).Div(hundred).Round(0).Mul(hundred).IntPart())
}
