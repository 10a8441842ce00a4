// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidVehicleQuery ErrorCode = "INVALID_VEHICLE_QUERY"
	ErrCodeInvalidJobInput     ErrorCode = "INVALID_JOB_INPUT"
	ErrCodeUnknownMake         ErrorCode = "UNKNOWN_MAKE"

	ErrCodePricingFetchFailed ErrorCode = "PRICING_FETCH_FAILED"
	ErrCodePricingTimeout     ErrorCode = "PRICING_TIMEOUT"
	ErrCodeAnalysisFailed     ErrorCode = "ANALYSIS_FAILED"

	ErrCodeAccessStoreFailed ErrorCode = "ACCESS_STORE_FAILED"
	ErrCodeAccessNotFound    ErrorCode = "ACCESS_NOT_FOUND"

	ErrCodeBrokerUnavailable ErrorCode = "BROKER_UNAVAILABLE"
	ErrCodeBrokerTimeout     ErrorCode = "BROKER_TIMEOUT"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause, if any, to errors.Is / errors.As.
func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithMetadata returns the error after attaching a metadata key.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// NewInvalidVehicleQueryError rejects a query before it reaches the pricing engine.
func NewInvalidVehicleQueryError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidVehicleQuery,
		Message:   "Vehicle query failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidJobInputError is returned when job variables cannot be decoded.
func NewInvalidJobInputError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidJobInput,
		Message:   "Job variables could not be parsed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewUnknownMakeError(makeName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownMake,
		Message:   "Make is not in the vehicle catalog",
		Details:   fmt.Sprintf("make: %s", makeName),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPricingFetchFailedError wraps a failure of the upstream price lookup.
func NewPricingFetchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePricingFetchFailed,
		Message:   "Price lookup failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewPricingTimeoutError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePricingTimeout,
		Message:   "Price lookup timed out",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewAnalysisFailedError is the single error surfaced when any stage of a deal analysis
// fails. Retryability follows the failing stage.
func NewAnalysisFailedError(stage string, err error) *StandardError {
	retryable := false
	if se, ok := err.(*StandardError); ok {
		retryable = se.Retryable
	}
	return &StandardError{
		Code:      ErrCodeAnalysisFailed,
		Message:   "Deal analysis failed",
		Details:   fmt.Sprintf("stage: %s, error: %s", stage, err.Error()),
		Retryable: retryable,
		Metadata:  map[string]interface{}{"stage": stage},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewAccessStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAccessStoreFailed,
		Message:   "Access store unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewAccessNotFoundError(visitorID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAccessNotFound,
		Message:   "No remembered access for visitor",
		Details:   fmt.Sprintf("visitorId: %s", visitorID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBrokerUnavailableError wraps a Zeebe gateway connectivity failure.
func NewBrokerUnavailableError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBrokerUnavailable,
		Message:   fmt.Sprintf("Zeebe operation '%s' failed", operation),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewBrokerTimeoutError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBrokerTimeout,
		Message:   fmt.Sprintf("Zeebe operation '%s' timed out", operation),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewInternalError normalizes an arbitrary error.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// BPMNErrorMapping maps internal error codes to the error codes caught by boundary events.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeInvalidVehicleQuery: "INVALID_VEHICLE_QUERY",
	ErrCodeInvalidJobInput:     "INVALID_JOB_INPUT",
	ErrCodeUnknownMake:         "UNKNOWN_MAKE",
	ErrCodePricingFetchFailed:  "PRICING_FETCH_FAILED",
	ErrCodePricingTimeout:      "PRICING_TIMEOUT",
	ErrCodeAnalysisFailed:      "ANALYSIS_FAILED",
	ErrCodeAccessStoreFailed:   "ACCESS_STORE_FAILED",
	ErrCodeAccessNotFound:      "ACCESS_NOT_FOUND",
}

// GetRetryCount returns the recommended retry count for an error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodePricingFetchFailed,
		ErrCodeAccessStoreFailed,
		ErrCodeBrokerUnavailable:
		return 3

	case ErrCodePricingTimeout,
		ErrCodeAnalysisFailed,
		ErrCodeBrokerTimeout:
		return 2

	default:
		return 0
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "UNKNOWN"):
		return "VALIDATION"
	case strings.Contains(codeStr, "PRICING"):
		return "PRICING"
	case strings.Contains(codeStr, "ANALYSIS"):
		return "ANALYSIS"
	case strings.Contains(codeStr, "ACCESS"):
		return "ACCESS"
	case strings.Contains(codeStr, "BROKER"):
		return "WORKFLOW"
	default:
		return "OTHER"
	}
}
