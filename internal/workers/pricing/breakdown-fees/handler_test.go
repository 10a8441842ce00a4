package breakdownfees

import (
	"context"
	"encoding/json"
	"testing"

	"deal-advisor-workers/internal/common/camunda/camundatest"
	"deal-advisor-workers/internal/common/clock"
	"deal-advisor-workers/internal/common/errors"
	"deal-advisor-workers/internal/common/logger"
	"deal-advisor-workers/internal/common/validation"
	"deal-advisor-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMockJob(key int64, variables string) entities.Job {
	return entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:                key,
		Type:               TaskType,
		ProcessInstanceKey: key * 10,
		BpmnProcessId:      "deal-analysis",
		ElementId:          "Activity_BreakdownFees",
		CustomHeaders:      "{}",
		Worker:             "test-worker",
		Retries:            3,
		Variables:          variables,
	}}
}

func newTestHandler(t *testing.T) *Handler {
	h := NewHandler(DefaultConfig(), logger.NewTestLogger(t))
	h.clock = clock.FixedYear(2026)
	return h
}

var testQuery = models.VehicleQuery{
	Year: 2025, Make: "Honda", Model: "Civic", Condition: models.ConditionUsed, ZipCode: "94107",
}

func TestBreakdown_FixedList(t *testing.T) {
	fees := Breakdown(testQuery)
	require.Len(t, fees, 6)

	expected := []struct {
		name string
		low  float64
		high float64
		typ  models.FeeType
	}{
		{"Sales Tax", 0, 0, models.FeeTypeNonNegotiable},
		{"Title & Registration", 50, 200, models.FeeTypeNonNegotiable},
		{"Destination Charge", 995, 1695, models.FeeTypeNonNegotiable},
		{"Doc Fee (Documentation)", 85, 899, models.FeeTypeNegotiable},
		{"Dealer Prep / Admin", 0, 500, models.FeeTypeNegotiable},
		{"Add-ons (Nitrogen, Etch)", 0, 1200, models.FeeTypeNegotiable},
	}
	for i, want := range expected {
		t.Run(want.name, func(t *testing.T) {
			assert.Equal(t, want.name, fees[i].Name)
			assert.Equal(t, want.low, fees[i].AmountLow)
			assert.Equal(t, want.high, fees[i].AmountHigh)
			assert.Equal(t, want.typ, fees[i].Type)
			assert.NotEmpty(t, fees[i].Description)
			assert.LessOrEqual(t, fees[i].AmountLow, fees[i].AmountHigh)
		})
	}
}

func TestBreakdown_IndependentOfQuery(t *testing.T) {
	other := models.VehicleQuery{
		Year: 2010, Make: "Ford", Model: "F-150", Condition: models.ConditionNew, ZipCode: "10001",
	}
	assert.Equal(t, Breakdown(testQuery), Breakdown(other))
}

func TestBreakdown_ReturnsCopy(t *testing.T) {
	fees := Breakdown(testQuery)
	fees[0].Name = "changed"

	assert.Equal(t, "Sales Tax", Breakdown(testQuery)[0].Name)
}

func TestTotals(t *testing.T) {
	negotiable, nonNegotiable := Totals(Breakdown(testQuery))

	assert.Equal(t, 2599.0, negotiable)
	assert.Equal(t, 1895.0, nonNegotiable)
}

func TestHandler_ParseInput(t *testing.T) {
	h := newTestHandler(t)

	valid, err := json.Marshal(map[string]interface{}{"query": testQuery})
	require.NoError(t, err)

	tests := []struct {
		name      string
		variables string
		wantErr   errors.ErrorCode
	}{
		{name: "valid", variables: string(valid)},
		{name: "malformed json", variables: `{"query":`, wantErr: errors.ErrCodeInvalidJobInput},
		{name: "missing query", variables: `{}`, wantErr: errors.ErrCodeInvalidVehicleQuery},
		{
			name:      "bad zip",
			variables: `{"query":{"year":2024,"make":"Honda","model":"Civic","condition":"Used","zipCode":"941"}}`,
			wantErr:   errors.ErrCodeInvalidVehicleQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := h.parseInput(createMockJob(1, tt.variables))
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, testQuery, input.Query)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, errors.Normalize(err).Code)
		})
	}
}

func TestHandler_Execute(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{Query: testQuery})
	require.NoError(t, err)

	assert.Len(t, out.Fees, 6)
	assert.Equal(t, 2599.0, out.NegotiableHigh)

	result := validation.ValidateInput(out, GetOutputSchema())
	assert.True(t, result.Valid, result.GetErrorMessages())
}

func TestHandler_Fees(t *testing.T) {
	h := newTestHandler(t)

	fees, err := h.Fees(context.Background(), testQuery)
	require.NoError(t, err)
	assert.Equal(t, Breakdown(testQuery), fees)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Timeout = 0
	assert.Error(t, cfg.Validate())
}

// ==========================
// Handle
// ==========================

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name        string
		variables   string
		wantCommand string
		wantCode    errors.ErrorCode
	}{
		{name: "valid query completes", variables: `{"query":{"year":2025,"make":"Honda","model":"Civic","condition":"Used","zipCode":"94107"}}`, wantCommand: camundatest.CompleteJob},
		{name: "invalid query is thrown", variables: `{"query":{"year":2025,"make":"Honda","model":"Civic","condition":"Used","zipCode":"94107"}}`, wantCommand: camundatest.ThrowError, wantCode: errors.ErrCodeInvalidVehicleQuery},
		{name: "malformed variables are thrown", variables: `{"query":`, wantCommand: camundatest.ThrowError, wantCode: errors.ErrCodeInvalidJobInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := camundatest.NewJobClient()

			newTestHandler(t).Handle(client, createMockJob(77, tt.variables))

			calls := client.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantCommand, calls[0].Command)
			assert.Equal(t, int64(77), calls[0].JobKey)
			assert.Equal(t, string(tt.wantCode), calls[0].ErrorCode)
			if tt.wantCommand != camundatest.CompleteJob {
				return
			}

			var out Output
			require.NoError(t, json.Unmarshal([]byte(calls[0].Variables), &out))
			assert.Equal(t, Breakdown(testQuery), out.Fees)
			assert.Equal(t, 2599.0, out.NegotiableHigh)
		})
	}
}
