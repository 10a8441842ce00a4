package errors

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// ErrorHandler fails or throws a job depending on the error's retry policy.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// ReportTimeout bounds a complete, fail or throw command sent after a job has run.
const ReportTimeout = 5 * time.Second

// ReportContext returns the context job outcomes are sent on. It is independent of the
// execution deadline, so a job that ran out of time can still be failed.
func ReportContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), ReportTimeout)
}

// HandleJobError reports err back to the broker. Retryable errors fail the job with the
// remaining retries, everything else is thrown as a BPMN error.
func (h *ErrorHandler) HandleJobError(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	stdErr := Normalize(err)
	bpmnErr := ConvertToBPMNError(stdErr)

	h.logError(job, stdErr, bpmnErr)

	if bpmnErr.Retries > 0 && job.Retries > 0 {
		h.failJobWithRetries(ctx, client, job, bpmnErr)
		return
	}
	h.throwBPMNError(ctx, client, job, bpmnErr)
}

// Normalize returns the StandardError in err's chain, or wraps err as INTERNAL_ERROR.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

func (h *ErrorHandler) failJobWithRetries(ctx context.Context, client worker.JobClient, job entities.Job, bpmnErr *BPMNError) {
	// job.Retries is the broker's remaining budget; never raise it.
	retries := bpmnErr.Retries
	if int(job.Retries)-1 < retries {
		retries = int(job.Retries) - 1
	}
	if retries < 0 {
		retries = 0
	}

	cmd := client.NewFailJobCommand().
		JobKey(job.Key).
		Retries(int32(retries)).
		ErrorMessage(bpmnErr.Message)

	var err error
	if withVars, verr := cmd.VariablesFromObject(bpmnErr.ToErrorVariables()); verr == nil {
		_, err = withVars.Send(ctx)
	} else {
		_, err = cmd.Send(ctx)
	}
	if err != nil {
		h.logSendError("fail job", job, bpmnErr, err)
	}
}

func (h *ErrorHandler) throwBPMNError(ctx context.Context, client worker.JobClient, job entities.Job, bpmnErr *BPMNError) {
	cmd := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(bpmnErr.Code).
		ErrorMessage(bpmnErr.Message)

	var err error
	if withVars, verr := cmd.VariablesFromObject(bpmnErr.ToErrorVariables()); verr == nil {
		_, err = withVars.Send(ctx)
	} else {
		_, err = cmd.Send(ctx)
	}
	if err != nil {
		h.logSendError("throw error", job, bpmnErr, err)
	}
}

func (h *ErrorHandler) logSendError(command string, job entities.Job, bpmnErr *BPMNError, err error) {
	h.logger.Error("failed to report job outcome", map[string]interface{}{
		"command":       command,
		"jobKey":        job.Key,
		"jobType":       job.Type,
		"bpmnErrorCode": bpmnErr.Code,
		"error":         err.Error(),
	})
}

func (h *ErrorHandler) logError(job entities.Job, stdErr *StandardError, bpmnErr *BPMNError) {
	h.logger.Error("Job failed", map[string]interface{}{
		"jobKey":           job.Key,
		"jobType":          job.Type,
		"errorCode":        string(stdErr.Code),
		"bpmnErrorCode":    bpmnErr.Code,
		"details":          stdErr.Details,
		"retryable":        stdErr.Retryable,
		"retries":          bpmnErr.Retries,
		"errorCategory":    GetErrorCategory(stdErr.Code),
		"workflowInstance": job.ProcessInstanceKey,
	})
}
