// Package api serves deal analyses, the vehicle catalog and the remembered-access flag over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"deal-advisor-workers/internal/common/clock"
	"deal-advisor-workers/internal/common/logger"
	"deal-advisor-workers/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type DealAnalyzer interface {
	Analyze(ctx context.Context, q models.VehicleQuery) (models.DealAnalysisResult, error)
}

type AccessStore interface {
	Grant(ctx context.Context, g models.AccessGrant) (models.AccessStatus, error)
	Status(ctx context.Context, visitorID string) (models.AccessStatus, error)
	Forget(ctx context.Context, visitorID string) error
}

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

type Options struct {
	ServiceName  string
	Version      string
	Analyzer     DealAnalyzer
	Access       AccessStore
	Clock        clock.Clock
	Checks       map[string]ReadinessCheck
	CheckTimeout time.Duration
	// RequestTimeout bounds a single analysis, including the simulated price lookup.
	RequestTimeout time.Duration
}

type Server struct {
	opts   Options
	logger logger.Logger
}

func NewServer(opts Options, log logger.Logger) *Server {
	if opts.Clock == nil {
		opts.Clock = clock.System()
	}
	if opts.CheckTimeout <= 0 {
		opts.CheckTimeout = 2 * time.Second
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	return &Server{
		opts:   opts,
		logger: log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// Router builds the chi router with every route mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/deals/analyze", s.handleAnalyze)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/makes", s.handleMakes)
			r.Get("/makes/{make}/models", s.handleModels)
			r.Get("/years", s.handleYears)
		})

		r.Route("/access", func(r chi.Router) {
			r.Post("/", s.handleGrantAccess)
			r.Get("/{visitorId}", s.handleAccessStatus)
			r.Delete("/{visitorId}", s.handleForgetAccess)
		})
	})

	return r
}

// NewHTTPServer wraps the router with the configured timeouts.
func NewHTTPServer(addr string, handler http.Handler, readTimeout, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      writeTimeout,
	}
}
