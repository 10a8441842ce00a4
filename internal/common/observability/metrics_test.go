package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservability_NilIsNoOp(t *testing.T) {
	var obs *Observability
	assert.NotPanics(t, func() {
		obs.RecordJobProcessed(context.Background(), "estimate-price", "completed")
		obs.RecordJobDuration(context.Background(), "estimate-price", time.Second, "completed")
		obs.Shutdown()
	})

	empty := &Observability{}
	assert.NotPanics(t, func() {
		empty.RecordJobProcessed(context.Background(), "estimate-price", "completed")
		empty.Shutdown()
	})
}

func TestNew_RecordsJobs(t *testing.T) {
	obs, err := New("deal-advisor-workers-test")
	require.NoError(t, err)
	defer obs.Shutdown()

	assert.NotPanics(t, func() {
		obs.RecordJobProcessed(context.Background(), "analyze-deal", "completed")
		obs.RecordJobDuration(context.Background(), "analyze-deal", 15*time.Millisecond, "completed")
	})
}
