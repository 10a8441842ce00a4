package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"deal-advisor-workers/internal/common/clock"
	"deal-advisor-workers/internal/common/errors"
	"deal-advisor-workers/internal/common/logger"
	"deal-advisor-workers/internal/models"
	rememberaccess "deal-advisor-workers/internal/workers/access/remember-access"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Doubles
// ==========================

type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, q models.VehicleQuery) (models.DealAnalysisResult, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(models.DealAnalysisResult), args.Error(1)
}

type testEnv struct {
	analyzer *MockAnalyzer
	redis    *miniredis.Miniredis
	handler  http.Handler
}

func newTestEnv(t *testing.T, checks map[string]ReadinessCheck) *testEnv {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	analyzer := &MockAnalyzer{}
	srv := NewServer(Options{
		ServiceName: "deal-advisor-workers",
		Version:     "test",
		Analyzer:    analyzer,
		Access:      rememberaccess.NewStore(client, "access:granted:", 0),
		Clock:       clock.FixedYear(2026),
		Checks:      checks,
	}, logger.NewTestLogger(t))

	return &testEnv{analyzer: analyzer, redis: mr, handler: srv.Router()}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

// ==========================
// Analyze
// ==========================

func TestAnalyze_Success(t *testing.T) {
	env := newTestEnv(t, nil)

	want := models.VehicleQuery{Year: 2024, Make: "Toyota", Model: "Camry", Condition: models.ConditionUsed, ZipCode: "10001"}
	result := models.DealAnalysisResult{
		Query:   want,
		Pricing: models.PriceBands{Low: 20000, Median: 22000, High: 24000, FairPrice: 22000},
	}
	env.analyzer.On("Analyze", mock.Anything, want).Return(result, nil).Once()

	// Make spelling is normalized to the catalog entry.
	rr := env.do(t, http.MethodPost, "/api/v1/deals/analyze",
		`{"year":2024,"make":"toyota","model":"Camry","condition":"Used","zipCode":"10001"}`)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var got models.DealAnalysisResult
	decode(t, rr, &got)
	assert.Equal(t, result.Pricing, got.Pricing)
	env.analyzer.AssertExpectations(t)
}

func TestAnalyze_ValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  string
		wantField string
	}{
		{name: "not json", body: `{`, wantCode: "INVALID_VEHICLE_QUERY"},
		{
			name:      "short zip",
			body:      `{"year":2024,"make":"Toyota","model":"Camry","condition":"Used","zipCode":"1234"}`,
			wantCode:  "INVALID_VEHICLE_QUERY",
			wantField: "zipCode",
		},
		{
			name:      "blank model",
			body:      `{"year":2024,"make":"Toyota","model":"  ","condition":"Used","zipCode":"10001"}`,
			wantCode:  "INVALID_VEHICLE_QUERY",
			wantField: "model",
		},
		{
			name:      "unknown condition",
			body:      `{"year":2024,"make":"Toyota","model":"Camry","condition":"CPO","zipCode":"10001"}`,
			wantCode:  "INVALID_VEHICLE_QUERY",
			wantField: "condition",
		},
		{
			name:      "year beyond next model year",
			body:      `{"year":2028,"make":"Toyota","model":"Camry","condition":"New","zipCode":"10001"}`,
			wantCode:  "INVALID_VEHICLE_QUERY",
			wantField: "year",
		},
		{
			name:      "missing make",
			body:      `{"year":2024,"model":"Camry","condition":"New","zipCode":"10001"}`,
			wantCode:  "INVALID_VEHICLE_QUERY",
			wantField: "make",
		},
		{
			name:      "unknown make",
			body:      `{"year":2024,"make":"DeLorean","model":"DMC-12","condition":"Used","zipCode":"10001"}`,
			wantCode:  "UNKNOWN_MAKE",
			wantField: "make",
		},
		{
			name:      "model not offered by make",
			body:      `{"year":2024,"make":"Toyota","model":"Civic","condition":"Used","zipCode":"10001"}`,
			wantCode:  "INVALID_VEHICLE_QUERY",
			wantField: "model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)

			rr := env.do(t, http.MethodPost, "/api/v1/deals/analyze", tt.body)
			require.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())

			var body errorBody
			decode(t, rr, &body)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.False(t, body.Error.Retryable)
			if tt.wantField != "" {
				assert.Contains(t, body.Error.Fields, tt.wantField)
			}
			env.analyzer.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
		})
	}
}

func TestAnalyze_UpstreamFailure(t *testing.T) {
	env := newTestEnv(t, nil)

	cause := errors.NewPricingFetchFailedError(stderrors.New("market feed unavailable"))
	env.analyzer.On("Analyze", mock.Anything, mock.Anything).
		Return(models.DealAnalysisResult{}, errors.NewAnalysisFailedError("pricing", cause))

	rr := env.do(t, http.MethodPost, "/api/v1/deals/analyze",
		`{"year":2024,"make":"Toyota","model":"Camry","condition":"Used","zipCode":"10001"}`)

	require.Equal(t, http.StatusBadGateway, rr.Code)

	var body errorBody
	decode(t, rr, &body)
	assert.Equal(t, "ANALYSIS_FAILED", body.Error.Code)
	assert.True(t, body.Error.Retryable)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want int
	}{
		{errors.ErrCodeInvalidVehicleQuery, http.StatusBadRequest},
		{errors.ErrCodeUnknownMake, http.StatusBadRequest},
		{errors.ErrCodeAccessNotFound, http.StatusNotFound},
		{errors.ErrCodeAnalysisFailed, http.StatusBadGateway},
		{errors.ErrCodeAccessStoreFailed, http.StatusBadGateway},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.code))
		})
	}
}

// ==========================
// Catalog
// ==========================

func TestCatalogRoutes(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("makes", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/api/v1/catalog/makes", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct{ Makes []string }
		decode(t, rr, &body)
		assert.Len(t, body.Makes, 38)
		assert.Contains(t, body.Makes, "Toyota")
	})

	t.Run("models", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/api/v1/catalog/makes/honda/models", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Make   string
			Models []string
		}
		decode(t, rr, &body)
		assert.Equal(t, "Honda", body.Make)
		assert.Contains(t, body.Models, "Civic")
	})

	t.Run("unknown make", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/api/v1/catalog/makes/DeLorean/models", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("years", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/api/v1/catalog/years", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct{ Years []int }
		decode(t, rr, &body)
		require.Len(t, body.Years, 15)
		assert.Equal(t, 2026, body.Years[0])
		assert.Equal(t, 2012, body.Years[14])
	})
}

// ==========================
// Access
// ==========================

func TestAccess_RememberedRoundTrip(t *testing.T) {
	env := newTestEnv(t, nil)

	rr := env.do(t, http.MethodPost, "/api/v1/access/", `{"email":"buyer@example.com","rememberMe":true}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var granted models.AccessStatus
	decode(t, rr, &granted)
	require.NotEmpty(t, granted.VisitorID)
	assert.True(t, granted.HasAccess)
	assert.True(t, granted.Remembered)

	rr = env.do(t, http.MethodGet, "/api/v1/access/"+granted.VisitorID, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var status models.AccessStatus
	decode(t, rr, &status)
	assert.True(t, status.HasAccess)

	rr = env.do(t, http.MethodDelete, "/api/v1/access/"+granted.VisitorID, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = env.do(t, http.MethodDelete, "/api/v1/access/"+granted.VisitorID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAccess_GuestNotRemembered(t *testing.T) {
	env := newTestEnv(t, nil)

	rr := env.do(t, http.MethodPost, "/api/v1/access/", `{"visitorId":"guest-1","email":"guest","rememberMe":true}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var granted models.AccessStatus
	decode(t, rr, &granted)
	assert.True(t, granted.HasAccess)
	assert.False(t, granted.Remembered)
	assert.False(t, env.redis.Exists("access:granted:guest-1"))

	rr = env.do(t, http.MethodGet, "/api/v1/access/guest-1", "")
	var status models.AccessStatus
	decode(t, rr, &status)
	assert.False(t, status.HasAccess)
}

func TestAccess_InvalidBody(t *testing.T) {
	env := newTestEnv(t, nil)

	rr := env.do(t, http.MethodPost, "/api/v1/access/", `{"email":"not-an-email","rememberMe":true}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAccess_StoreDown(t *testing.T) {
	env := newTestEnv(t, nil)
	env.redis.Close()

	rr := env.do(t, http.MethodGet, "/api/v1/access/v-1", "")
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

// ==========================
// Health
// ==========================

func TestHealthAndReady(t *testing.T) {
	failing := false
	env := newTestEnv(t, map[string]ReadinessCheck{
		"redis": func(context.Context) error {
			if failing {
				return stderrors.New("connection refused")
			}
			return nil
		},
	})

	rr := env.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "healthy")

	rr = env.do(t, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	failing = true
	rr = env.do(t, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "connection refused")
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)
	env.do(t, http.MethodGet, "/api/v1/catalog/years", "")

	rr := env.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "http_request_duration_seconds")
}
