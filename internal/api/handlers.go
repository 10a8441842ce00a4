package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"deal-advisor-workers/internal/catalog"
	"deal-advisor-workers/internal/common/clock"
	"deal-advisor-workers/internal/common/errors"
	"deal-advisor-workers/internal/common/validation"
	"deal-advisor-workers/internal/models"
	rememberaccess "deal-advisor-workers/internal/workers/access/remember-access"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 64 << 10

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, stderrors.New("request body is not valid JSON")
	}
	return raw, nil
}

func fieldsOf(result *validation.ValidationResult) []string {
	fields := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		fields = append(fields, e.Field)
	}
	return fields
}

// ==========================
// Deal analysis
// ==========================

// parseQuery validates a VehicleQuery body and resolves the make to its catalog spelling.
func (s *Server) parseQuery(raw []byte) (models.VehicleQuery, []string, error) {
	result := validation.ValidateInput(raw, models.VehicleQuerySchema(clock.Year(s.opts.Clock)))
	if !result.Valid {
		return models.VehicleQuery{}, fieldsOf(result), errors.NewInvalidVehicleQueryError(result.Summary())
	}

	var q models.VehicleQuery
	if err := json.Unmarshal(raw, &q); err != nil {
		return models.VehicleQuery{}, nil, errors.NewInvalidVehicleQueryError(err.Error())
	}

	makeName, ok := catalog.FindMake(q.Make)
	if !ok {
		return models.VehicleQuery{}, []string{"make"}, errors.NewUnknownMakeError(q.Make)
	}
	q.Make = makeName
	if !catalog.IsKnownModel(q.Make, q.Model) {
		return models.VehicleQuery{}, []string{"model"},
			errors.NewInvalidVehicleQueryError(fmt.Sprintf("model %q is not offered by %s", q.Model, q.Make))
	}
	return q, nil, nil
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(w, r)
	if err != nil {
		s.writeError(w, errors.NewInvalidVehicleQueryError(err.Error()))
		return
	}

	q, fields, err := s.parseQuery(raw)
	if err != nil {
		s.writeError(w, err, fields...)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.opts.RequestTimeout)
	defer cancel()

	result, err := s.opts.Analyzer.Analyze(ctx, q)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ==========================
// Catalog
// ==========================

func (s *Server) handleMakes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"makes": catalog.Makes()})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	requested := chi.URLParam(r, "make")
	makeName, ok := catalog.FindMake(requested)
	if !ok {
		s.writeErrorStatus(w, http.StatusNotFound, errors.NewUnknownMakeError(requested))
		return
	}
	list, _ := catalog.Models(makeName)
	writeJSON(w, http.StatusOK, map[string]interface{}{"make": makeName, "models": list})
}

func (s *Server) handleYears(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"years": catalog.Years(clock.Year(s.opts.Clock))})
}

// ==========================
// Remembered access
// ==========================

func (s *Server) handleGrantAccess(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(w, r)
	if err != nil {
		s.writeError(w, errors.NewInvalidJobInputError(err))
		return
	}

	result := validation.ValidateInput(raw, rememberaccess.GetInputSchema())
	if !result.Valid {
		s.writeError(w, errors.NewInvalidJobInputError(stderrors.New(result.Summary())), fieldsOf(result)...)
		return
	}

	var grant models.AccessGrant
	if err := json.Unmarshal(raw, &grant); err != nil {
		s.writeError(w, errors.NewInvalidJobInputError(err))
		return
	}

	status, err := s.opts.Access.Grant(r.Context(), grant)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleAccessStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.opts.Access.Status(r.Context(), chi.URLParam(r, "visitorId"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleForgetAccess(w http.ResponseWriter, r *http.Request) {
	if err := s.opts.Access.Forget(r.Context(), chi.URLParam(r, "visitorId")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ==========================
// Health
// ==========================

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": s.opts.ServiceName,
		"version": s.opts.Version,
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.opts.CheckTimeout)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(s.opts.Checks))
	for name, check := range s.opts.Checks {
		if err := check(ctx); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	state := "ready"
	if status != http.StatusOK {
		state = "not ready"
	}
	writeJSON(w, status, map[string]interface{}{"status": state, "checks": checks})
}
