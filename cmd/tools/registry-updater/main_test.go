package main

import (
	"testing"
	"time"

	"deal-advisor-workers/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var syncTime = time.Date(2026, time.May, 4, 8, 30, 0, 0, time.UTC)

func TestSyncRegistry_CoversEveryWorker(t *testing.T) {
	reg, err := syncRegistry(&registry.ActivityRegistry{Version: "1.0.0"}, syncTime, "1.2.0")
	require.NoError(t, err)

	require.Len(t, reg.Activities, 7)
	for _, id := range []string{
		"estimate-price", "breakdown-fees", "estimate-rates", "list-incentives",
		"generate-tips", "analyze-deal", "remember-access",
	} {
		a := reg.Find(id)
		require.NotNil(t, a, id)
		assert.Equal(t, "1.2.0", a.Version)
		assert.Equal(t, registry.StatusCompleted, a.ImplementationStatus)
		assert.Equal(t, "object", a.InputSchema["type"])
		assert.NotEmpty(t, a.ErrorCodes)
	}

	price := reg.Find("estimate-price")
	assert.Equal(t, 3, price.Retries)
	assert.Contains(t, price.ErrorCodes, "PRICING_FETCH_FAILED")

	fees := reg.Find("breakdown-fees")
	assert.Equal(t, 0, fees.Retries)
}

func TestSyncRegistry_PreservesStatusAndWorkflows(t *testing.T) {
	reg := &registry.ActivityRegistry{
		Version: "1.0.0",
		Activities: []registry.Activity{{
			ID:                   "analyze-deal",
			DisplayName:          "old",
			Category:             "analysis",
			TaskType:             "analyze-deal",
			ImplementationStatus: registry.StatusVerified,
			Workflows:            []string{"deal-analysis"},
		}},
	}

	reg, err := syncRegistry(reg, syncTime, "1.0.0")
	require.NoError(t, err)

	a := reg.Find("analyze-deal")
	assert.Equal(t, "Analyze Deal", a.DisplayName)
	assert.Equal(t, registry.StatusVerified, a.ImplementationStatus)
	assert.Equal(t, []string{"deal-analysis"}, a.Workflows)
}

func TestUpdateActivity(t *testing.T) {
	reg, err := syncRegistry(&registry.ActivityRegistry{}, syncTime, "1.0.0")
	require.NoError(t, err)

	require.NoError(t, updateActivity(reg, "estimate-price", "retries", "5", syncTime))
	assert.Equal(t, 5, reg.Find("estimate-price").Retries)

	require.NoError(t, updateActivity(reg, "estimate-price", "workflow", "deal-analysis", syncTime))
	assert.Contains(t, reg.Find("estimate-price").Workflows, "deal-analysis")

	assert.Error(t, updateActivity(reg, "estimate-price", "retries", "many", syncTime))
	assert.Error(t, updateActivity(reg, "estimate-price", "color", "red", syncTime))
	assert.Error(t, updateActivity(reg, "missing", "status", "completed", syncTime))
}
