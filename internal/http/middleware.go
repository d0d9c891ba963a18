package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/clinicdesk/clinic-service/internal/telemetry"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware records a count and duration per request, labelled by
// the route template rather than the raw path.
func MetricsMiddleware(metrics *telemetry.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}

			durationMs := float64(time.Since(start)) / float64(time.Millisecond)
			metrics.RecordHTTPRequest(r.Context(), r.Method, route, rec.status, durationMs)
		})
	}
}
