package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/ideabank-backend/internal/metrics"
)

// Metrics records request counts and latency per route. It must wrap the
// ServeMux directly so the matched pattern is visible after the call.
func Metrics(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
