package router

import (
	"net/http"
	"time"

	"github.com/bsecades/comment-rating/internal/domain"
	"github.com/bsecades/comment-rating/internal/metrics"
	"github.com/gorilla/mux"
)

// unmatchedRoute labels requests that matched no route or no method.
const unmatchedRoute = "unmatched"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// metricsMiddleware counts requests by route template, so comment IDs do not
// become label values. The /metrics route itself is not counted.
func metricsMiddleware(next http.Handler) http.Handler {
	return instrument(next, func(r *http.Request) string {
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				return tmpl
			}
		}
		return unmatchedRoute
	})
}

// unmatchedHandler answers requests mux could not route. Router middleware
// only runs for matched routes, so request IDs and metrics are applied here.
func unmatchedHandler(status int) http.Handler {
	respond := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(status), status)
	})
	return requestIDMiddleware(instrument(respond, func(*http.Request) string {
		return unmatchedRoute
	}))
}

func instrument(next http.Handler, routeOf func(*http.Request) string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := routeOf(r)
		if route == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		metrics.ObserveRequest(r.Method, route, rec.status, elapsed)

		ctx := r.Context()
		domain.LoggerFromContext(ctx).DebugContext(ctx, "handled request",
			"method", r.Method,
			"route", route,
			"status", rec.status,
			"duration", elapsed,
		)
	})
}
