package analyzedeal

import (
	"context"
	stderrors "errors"
	"testing"

	"deal-advisor-workers/internal/common/errors"
	"deal-advisor-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==========================
// Mock Dependencies
// ==========================

type MockPricing struct{ mock.Mock }

func (m *MockPricing) Estimate(ctx context.Context, q models.VehicleQuery) (models.PriceBands, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(models.PriceBands), args.Error(1)
}

type MockFees struct{ mock.Mock }

func (m *MockFees) Fees(ctx context.Context, q models.VehicleQuery) ([]models.Fee, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Fee), args.Error(1)
}

type MockRates struct{ mock.Mock }

func (m *MockRates) Rates(ctx context.Context, q models.VehicleQuery) ([]models.InterestRate, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InterestRate), args.Error(1)
}

type MockIncentives struct{ mock.Mock }

func (m *MockIncentives) Incentives(ctx context.Context, q models.VehicleQuery) ([]models.Incentive, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Incentive), args.Error(1)
}

type MockTips struct{ mock.Mock }

func (m *MockTips) Tips(ctx context.Context, q models.VehicleQuery, p models.PriceBands) ([]models.NegotiationTip, error) {
	args := m.Called(ctx, q, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NegotiationTip), args.Error(1)
}

type mocks struct {
	pricing    *MockPricing
	fees       *MockFees
	rates      *MockRates
	incentives *MockIncentives
	tips       *MockTips
}

func newMocks() *mocks {
	return &mocks{
		pricing:    &MockPricing{},
		fees:       &MockFees{},
		rates:      &MockRates{},
		incentives: &MockIncentives{},
		tips:       &MockTips{},
	}
}

func (m *mocks) deps() Dependencies {
	return Dependencies{Pricing: m.pricing, Fees: m.fees, Rates: m.rates, Incentives: m.incentives, Tips: m.tips}
}

func (m *mocks) assertExpectations(t *testing.T) {
	m.pricing.AssertExpectations(t)
	m.fees.AssertExpectations(t)
	m.rates.AssertExpectations(t)
	m.incentives.AssertExpectations(t)
	m.tips.AssertExpectations(t)
}

// ==========================
// Fixtures
// ==========================

var (
	testQuery = models.VehicleQuery{Year: 2026, Make: "Toyota", Model: "4Runner", Condition: models.ConditionNew, ZipCode: "10001"}

	testPricing = models.PriceBands{Low: 45400, Median: 48300, High: 51200, FairPrice: 48300}
	testFees    = []models.Fee{{Name: "Doc Fee (Documentation)", AmountLow: 85, AmountHigh: 899, Type: models.FeeTypeNegotiable}}
	testRates   = []models.InterestRate{{ScoreTier: "Excellent (750+)", APRLow: 5.9, APRHigh: 7.4}}
	testIncent  = []models.Incentive{{Title: "Low APR Special", Type: models.IncentiveFinance}}
	testTips    = []models.NegotiationTip{{ID: "fee-doc", Title: "Challenge the Doc Fee", Category: models.TipCategoryFees}}
)

// ==========================
// Analyze Tests
// ==========================

func TestAnalyzer_Analyze_Success(t *testing.T) {
	m := newMocks()
	m.pricing.On("Estimate", mock.Anything, testQuery).Return(testPricing, nil).Once()
	m.fees.On("Fees", mock.Anything, testQuery).Return(testFees, nil).Once()
	m.rates.On("Rates", mock.Anything, testQuery).Return(testRates, nil).Once()
	m.incentives.On("Incentives", mock.Anything, testQuery).Return(testIncent, nil).Once()
	m.tips.On("Tips", mock.Anything, testQuery, testPricing).Return(testTips, nil).Once()

	result, err := NewAnalyzer(m.deps()).Analyze(context.Background(), testQuery)
	require.NoError(t, err)

	assert.Equal(t, models.DealAnalysisResult{
		Query:      testQuery,
		Pricing:    testPricing,
		Fees:       testFees,
		Rates:      testRates,
		Incentives: testIncent,
		Tips:       testTips,
	}, result)
	m.assertExpectations(t)
}

func TestAnalyzer_Analyze_StageFailures(t *testing.T) {
	upstream := errors.NewPricingFetchFailedError(stderrors.New("connection reset"))
	plain := stderrors.New("boom")

	tests := []struct {
		name          string
		setup         func(m *mocks)
		wantStage     string
		wantRetryable bool
		wantCause     error
	}{
		{
			name: "pricing fails",
			setup: func(m *mocks) {
				m.pricing.On("Estimate", mock.Anything, testQuery).Return(models.PriceBands{}, upstream)
			},
			wantStage:     StagePricing,
			wantRetryable: true,
			wantCause:     upstream,
		},
		{
			name: "fees fail",
			setup: func(m *mocks) {
				m.pricing.On("Estimate", mock.Anything, testQuery).Return(testPricing, nil)
				m.fees.On("Fees", mock.Anything, testQuery).Return(nil, plain)
			},
			wantStage: StageFees,
			wantCause: plain,
		},
		{
			name: "rates fail",
			setup: func(m *mocks) {
				m.pricing.On("Estimate", mock.Anything, testQuery).Return(testPricing, nil)
				m.fees.On("Fees", mock.Anything, testQuery).Return(testFees, nil)
				m.rates.On("Rates", mock.Anything, testQuery).Return(nil, plain)
			},
			wantStage: StageRates,
			wantCause: plain,
		},
		{
			name: "incentives fail",
			setup: func(m *mocks) {
				m.pricing.On("Estimate", mock.Anything, testQuery).Return(testPricing, nil)
				m.fees.On("Fees", mock.Anything, testQuery).Return(testFees, nil)
				m.rates.On("Rates", mock.Anything, testQuery).Return(testRates, nil)
				m.incentives.On("Incentives", mock.Anything, testQuery).Return(nil, plain)
			},
			wantStage: StageIncentives,
			wantCause: plain,
		},
		{
			name: "tips fail",
			setup: func(m *mocks) {
				m.pricing.On("Estimate", mock.Anything, testQuery).Return(testPricing, nil)
				m.fees.On("Fees", mock.Anything, testQuery).Return(testFees, nil)
				m.rates.On("Rates", mock.Anything, testQuery).Return(testRates, nil)
				m.incentives.On("Incentives", mock.Anything, testQuery).Return(testIncent, nil)
				m.tips.On("Tips", mock.Anything, testQuery, testPricing).Return(nil, plain)
			},
			wantStage: StageTips,
			wantCause: plain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMocks()
			tt.setup(m)

			result, err := NewAnalyzer(m.deps()).Analyze(context.Background(), testQuery)
			require.Error(t, err)
			assert.Equal(t, models.DealAnalysisResult{}, result)

			stdErr := errors.Normalize(err)
			assert.Equal(t, errors.ErrCodeAnalysisFailed, stdErr.Code)
			assert.Equal(t, tt.wantStage, stdErr.Metadata["stage"])
			assert.Equal(t, tt.wantRetryable, stdErr.Retryable)
			assert.ErrorIs(t, err, tt.wantCause)

			m.assertExpectations(t)
		})
	}
}

func TestAnalyzer_Analyze_PricingFailureSkipsRest(t *testing.T) {
	m := newMocks()
	m.pricing.On("Estimate", mock.Anything, testQuery).Return(models.PriceBands{}, context.DeadlineExceeded)

	_, err := NewAnalyzer(m.deps()).Analyze(context.Background(), testQuery)
	require.Error(t, err)

	m.fees.AssertNotCalled(t, "Fees", mock.Anything, mock.Anything)
	m.tips.AssertNotCalled(t, "Tips", mock.Anything, mock.Anything, mock.Anything)
}
