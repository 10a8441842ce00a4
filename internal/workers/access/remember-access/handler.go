package rememberaccess

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"deal-advisor-workers/internal/common/errors"
	"deal-advisor-workers/internal/common/logger"
	"deal-advisor-workers/internal/common/metrics"
	"deal-advisor-workers/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "remember-access"
)

type Handler struct {
	config       *Config
	store        *Store
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

func NewHandler(config *Config, store *Store, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		store:        store,
		logger:       l,
		errorHandler: errors.NewErrorHandler(l),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	input, err := h.parseInput(job)
	if err != nil {
		h.failJob(client, job, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	output, err := h.Execute(ctx, input)
	cancel()
	if err != nil {
		h.failJob(client, job, err)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) parseInput(job entities.Job) (*Input, error) {
	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		return nil, errors.NewInvalidJobInputError(err)
	}

	result := validation.ValidateInput([]byte(job.Variables), GetInputSchema())
	if !result.Valid {
		return nil, errors.NewInvalidJobInputError(stderrors.New(result.Summary()))
	}
	return &input, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	status, err := h.store.Grant(ctx, input.toGrant())
	if err != nil {
		return nil, err
	}

	h.logger.Info("access granted", map[string]interface{}{
		"visitorId":  status.VisitorID,
		"remembered": status.Remembered,
	})

	return &Output{Access: status}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	ctx, cancel := errors.ReportContext()
	defer cancel()
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, err error) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(errors.Normalize(err).Code)).Inc()

	ctx, cancel := errors.ReportContext()
	defer cancel()
	h.errorHandler.HandleJobError(ctx, client, job, err)
}

func (h *Handler) GetTaskType() string {
	return TaskType
}
