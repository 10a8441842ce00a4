package analyzedeal

import (
	"context"

	"deal-advisor-workers/internal/common/errors"
	"deal-advisor-workers/internal/common/metrics"
	"deal-advisor-workers/internal/models"
)

// Stage names reported on ANALYSIS_FAILED errors and the failure metric.
const (
	StagePricing    = "pricing"
	StageFees       = "fees"
	StageRates      = "rates"
	StageIncentives = "incentives"
	StageTips       = "tips"
)

type PriceEstimator interface {
	Estimate(ctx context.Context, q models.VehicleQuery) (models.PriceBands, error)
}

type FeeSource interface {
	Fees(ctx context.Context, q models.VehicleQuery) ([]models.Fee, error)
}

type RateSource interface {
	Rates(ctx context.Context, q models.VehicleQuery) ([]models.InterestRate, error)
}

type IncentiveSource interface {
	Incentives(ctx context.Context, q models.VehicleQuery) ([]models.Incentive, error)
}

type TipSource interface {
	Tips(ctx context.Context, q models.VehicleQuery, pricing models.PriceBands) ([]models.NegotiationTip, error)
}

// Dependencies groups the generators an Analyzer fans out to.
type Dependencies struct {
	Pricing    PriceEstimator
	Fees       FeeSource
	Rates      RateSource
	Incentives IncentiveSource
	Tips       TipSource
}

// Analyzer assembles a DealAnalysisResult. It holds no per-request state and is safe for
// concurrent use as long as its dependencies are.
type Analyzer struct {
	deps Dependencies
}

func NewAnalyzer(deps Dependencies) *Analyzer {
	return &Analyzer{deps: deps}
}

// Analyze prices the vehicle first, since the advice rules read the price bands, then
// collects fees, rates, incentives and tips. Any failure aborts the whole analysis.
func (a *Analyzer) Analyze(ctx context.Context, q models.VehicleQuery) (models.DealAnalysisResult, error) {
	pricing, err := a.deps.Pricing.Estimate(ctx, q)
	if err != nil {
		return models.DealAnalysisResult{}, fail(StagePricing, err)
	}

	fees, err := a.deps.Fees.Fees(ctx, q)
	if err != nil {
		return models.DealAnalysisResult{}, fail(StageFees, err)
	}

	rates, err := a.deps.Rates.Rates(ctx, q)
	if err != nil {
		return models.DealAnalysisResult{}, fail(StageRates, err)
	}

	incentives, err := a.deps.Incentives.Incentives(ctx, q)
	if err != nil {
		return models.DealAnalysisResult{}, fail(StageIncentives, err)
	}

	tips, err := a.deps.Tips.Tips(ctx, q, pricing)
	if err != nil {
		return models.DealAnalysisResult{}, fail(StageTips, err)
	}

	return models.DealAnalysisResult{
		Query:      q,
		Pricing:    pricing,
		Fees:       fees,
		Rates:      rates,
		Incentives: incentives,
		Tips:       tips,
	}, nil
}

func fail(stage string, err error) error {
	metrics.AnalysesFailed.WithLabelValues(stage).Inc()
	return errors.NewAnalysisFailedError(stage, err)
}
