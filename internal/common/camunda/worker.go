package camunda

import (
	"context"
	"time"

	"deal-advisor-workers/internal/common/config"
	"deal-advisor-workers/internal/common/logger"
	"deal-advisor-workers/internal/common/metrics"
	"deal-advisor-workers/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/commands"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// JobHandler is the signature every task handler exposes.
type JobHandler func(client worker.JobClient, job entities.Job)

// Registry opens job workers on a shared client and keeps them for shutdown.
type Registry struct {
	client  *Client
	obs     *observability.Observability
	logger  logger.Logger
	workers map[string]worker.JobWorker
}

func NewRegistry(client *Client, obs *observability.Observability, log logger.Logger) *Registry {
	return &Registry{
		client:  client,
		obs:     obs,
		logger:  log,
		workers: make(map[string]worker.JobWorker),
	}
}

// Register opens a job worker for taskType unless the worker is disabled in config.
func (r *Registry) Register(taskType string, wcfg config.WorkerConfig, handler JobHandler) {
	if !wcfg.Enabled {
		r.logger.Info("worker disabled", map[string]interface{}{"taskType": taskType})
		return
	}

	r.workers[taskType] = r.client.Zeebe().NewJobWorker().
		JobType(taskType).
		Handler(Instrument(taskType, r.obs, handler)).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(config.GetDuration(wcfg.Timeout)).
		Open()

	r.logger.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": wcfg.MaxJobsActive,
		"timeout_ms":    wcfg.Timeout,
	})
}

// Count returns the number of opened workers.
func (r *Registry) Count() int {
	return len(r.workers)
}

// Close stops polling on every worker and waits for in-flight jobs.
func (r *Registry) Close() {
	for taskType, w := range r.workers {
		r.logger.Info("stopping worker", map[string]interface{}{"taskType": taskType})
		w.Close()
		w.AwaitClose()
	}
}

// Job outcomes recorded as the otel status attribute.
const (
	OutcomeCompleted   = "completed"
	OutcomeFailed      = "failed"
	OutcomeErrorThrown = "error_thrown"
	OutcomeUnreported  = "unreported"
)

// outcomeClient remembers the last command a handler built on the client.
type outcomeClient struct {
	worker.JobClient
	outcome string
}

func (c *outcomeClient) NewCompleteJobCommand() commands.CompleteJobCommandStep1 {
	c.outcome = OutcomeCompleted
	return c.JobClient.NewCompleteJobCommand()
}

func (c *outcomeClient) NewFailJobCommand() commands.FailJobCommandStep1 {
	c.outcome = OutcomeFailed
	return c.JobClient.NewFailJobCommand()
}

func (c *outcomeClient) NewThrowErrorCommand() commands.ThrowErrorCommandStep1 {
	c.outcome = OutcomeErrorThrown
	return c.JobClient.NewThrowErrorCommand()
}

// Instrument wraps handler with the active-job gauge, duration histogram and otel counters.
// The otel status is the outcome the handler reported for the job.
func Instrument(taskType string, obs *observability.Observability, handler JobHandler) worker.JobHandler {
	return func(client worker.JobClient, job entities.Job) {
		oc := &outcomeClient{JobClient: client, outcome: OutcomeUnreported}
		start := time.Now()
		metrics.WorkerJobsActive.WithLabelValues(taskType).Inc()
		defer func() {
			elapsed := time.Since(start)
			metrics.WorkerJobsActive.WithLabelValues(taskType).Dec()
			metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(elapsed.Seconds())
			obs.RecordJobProcessed(context.Background(), taskType, oc.outcome)
			obs.RecordJobDuration(context.Background(), taskType, elapsed, oc.outcome)
		}()
		handler(oc, job)
	}
}
