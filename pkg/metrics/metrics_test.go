package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New("gateway")

	m.ObserveRequest("GET", "/api/news/{slug}", 200, 15*time.Millisecond)
	m.ObserveRequest("GET", "/api/news/{slug}", 200, 5*time.Millisecond)
	m.ObserveRequest("GET", "/api/news/{slug}", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/news/{slug}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/news/{slug}", "404")))
}

func TestMetrics_RecordFallback(t *testing.T) {
	m := New("gateway")

	m.RecordFallback("News", "unavailable")
	m.RecordFallback("News", "unavailable")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.fallbacksTotal.WithLabelValues("News", "unavailable")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("content")
	m.RecordFallback("Drugs", "unexpected")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.True(t, strings.Contains(string(body), `content_mock_fallbacks_total{reason="unexpected",resource="Drugs"} 1`))
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("gateway")
		New("gateway")
	})
}
