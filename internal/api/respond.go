package api

import (
	"encoding/json"
	"net/http"

	"deal-advisor-workers/internal/common/errors"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      string   `json:"code"`
	Message   string   `json:"message"`
	Details   string   `json:"details,omitempty"`
	Fields    []string `json:"fields,omitempty"`
	Retryable bool     `json:"retryable"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// statusFor maps an error code to the HTTP status returned to callers.
func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidVehicleQuery, errors.ErrCodeInvalidJobInput, errors.ErrCodeUnknownMake:
		return http.StatusBadRequest
	case errors.ErrCodeAccessNotFound:
		return http.StatusNotFound
	case errors.ErrCodeAnalysisFailed,
		errors.ErrCodePricingFetchFailed,
		errors.ErrCodePricingTimeout,
		errors.ErrCodeAccessStoreFailed,
		errors.ErrCodeBrokerUnavailable,
		errors.ErrCodeBrokerTimeout:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error, fields ...string) {
	s.writeErrorStatus(w, 0, err, fields...)
}

// writeErrorStatus writes err with status, or the code's default status when status is 0.
func (s *Server) writeErrorStatus(w http.ResponseWriter, status int, err error, fields ...string) {
	stdErr := errors.Normalize(err)
	if status == 0 {
		status = statusFor(stdErr.Code)
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", map[string]interface{}{
			"code":    stdErr.Code,
			"details": stdErr.Details,
		})
	}

	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:      string(stdErr.Code),
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Fields:    fields,
		Retryable: stdErr.Retryable,
	}})
}
