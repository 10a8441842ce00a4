package api

import (
	"net/http"
	"strconv"
	"time"

	"deal-advisor-workers/internal/common/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// instrument records request duration by route pattern and logs each request.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		elapsed := time.Since(start)
		metrics.HTTPRequestDuration.
			WithLabelValues(route, r.Method, strconv.Itoa(status)).
			Observe(elapsed.Seconds())

		if route == "/metrics" || route == "/health" {
			return
		}
		s.logger.Debug("request served", map[string]interface{}{
			"method":     r.Method,
			"route":      route,
			"status":     status,
			"durationMs": elapsed.Milliseconds(),
			"requestId":  middleware.GetReqID(r.Context()),
		})
	})
}
