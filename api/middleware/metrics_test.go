package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	observer := &mockObserver{}
	router := chi.NewRouter()
	router.Use(MetricsMiddleware(observer))
	router.Get("/api/drugs/{slug}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/drugs/aspirin", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/nowhere", nil))

	require.Len(t, observer.observed, 2)
	assert.Equal(t, observation{"GET", "/api/drugs/{slug}", http.StatusNotFound}, observer.observed[0])
	assert.Equal(t, "unmatched", observer.observed[1].route)
	assert.Equal(t, http.StatusNotFound, observer.observed[1].status)
}
