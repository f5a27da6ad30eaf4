package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/servicehub-backend/internal/metrics"
)

// Metrics records request counts and latency per route pattern. It must be
// the innermost middleware so the router's matched pattern is visible on the
// same request value.
func Metrics(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
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
