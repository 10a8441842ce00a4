package errors

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"deal-advisor-workers/internal/common/camunda/camundatest"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu      sync.Mutex
	entries []string
	fields  []map[string]interface{}
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, msg)
	l.fields = append(l.fields, fields)
}

func jobWithRetries(key int64, retries int32) entities.Job {
	return entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:     key,
		Type:    "estimate-price",
		Retries: retries,
	}}
}

// ==========================
// HandleJobError
// ==========================

func TestHandleJobError_ReportsOutcome(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		jobRetries  int32
		wantCommand string
		wantRetries int32
		wantCode    string
	}{
		{"retryable capped by job budget", NewPricingFetchFailedError(stderrors.New("503")), 3, camundatest.FailJob, 2, ""},
		{"retryable below job budget", NewPricingTimeoutError(context.DeadlineExceeded), 5, camundatest.FailJob, 2, ""},
		{"last retry fails with zero", NewAccessStoreFailedError(stderrors.New("down")), 1, camundatest.FailJob, 0, ""},
		{"retryable without budget is thrown", NewPricingFetchFailedError(stderrors.New("503")), 0, camundatest.ThrowError, 0, "PRICING_FETCH_FAILED"},
		{"validation is thrown", NewInvalidVehicleQueryError("zipCode"), 3, camundatest.ThrowError, 0, "INVALID_VEHICLE_QUERY"},
		{"plain error is internal", stderrors.New("nil map"), 3, camundatest.ThrowError, 0, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := camundatest.NewJobClient()
			h := NewErrorHandler(&recordingLogger{})

			h.HandleJobError(context.Background(), client, jobWithRetries(42, tt.jobRetries), tt.err)

			calls := client.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantCommand, calls[0].Command)
			assert.Equal(t, int64(42), calls[0].JobKey)
			assert.Equal(t, tt.wantRetries, calls[0].Retries)
			assert.Equal(t, tt.wantCode, calls[0].ErrorCode)
			assert.Contains(t, calls[0].Variables, `"errorCode"`)
		})
	}
}

func TestHandleJobError_LogsSendFailure(t *testing.T) {
	client := camundatest.NewJobClient()
	client.FailSends(stderrors.New("gateway unavailable"))
	log := &recordingLogger{}
	h := NewErrorHandler(log)

	h.HandleJobError(context.Background(), client, jobWithRetries(9, 3), NewInvalidVehicleQueryError("make"))

	require.Len(t, log.entries, 2)
	assert.Equal(t, "Job failed", log.entries[0])
	assert.Equal(t, "failed to report job outcome", log.entries[1])
	assert.Equal(t, "throw error", log.fields[1]["command"])
	assert.Equal(t, "gateway unavailable", log.fields[1]["error"])
}

func TestReportContext_OutlivesExpiredExecution(t *testing.T) {
	execCtx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-execCtx.Done()

	ctx, done := ReportContext()
	defer done()

	require.NoError(t, ctx.Err())
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(ReportTimeout), deadline, time.Second)

	client := camundatest.NewJobClient()
	NewErrorHandler(&recordingLogger{}).HandleJobError(ctx, client, jobWithRetries(1, 3), NewPricingTimeoutError(execCtx.Err()))

	calls := client.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, camundatest.FailJob, calls[0].Command)
	assert.NoError(t, calls[0].CtxErr)
}
