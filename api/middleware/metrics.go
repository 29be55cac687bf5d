// ABOUTME: Prometheus request metrics middleware
// ABOUTME: Labels requests by chi route pattern so slugs do not explode cardinality

package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// RequestObserver records served requests
type RequestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// MetricsMiddleware reports every request to observer
func MetricsMiddleware(observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrapResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			observer.ObserveRequest(r.Method, route, wrapped.statusCode, time.Since(start))
		})
	}
}
