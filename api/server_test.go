package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthinfo-api/api/middleware"
	"healthinfo-api/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

func TestNewAPI_HasTitleAndVersion(t *testing.T) {
	api, router := NewAPI("HealthInfo Gateway")

	require.NotNil(t, router)
	info := api.OpenAPI().Info
	assert.Equal(t, "HealthInfo Gateway", info.Title)
	assert.Equal(t, Version, info.Version)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI("HealthInfo Gateway")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.oai.openapi+json", w.Header().Get("Content-Type"))
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI("HealthInfo Gateway")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/docs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html", w.Header().Get("Content-Type"))
}

func TestNewAPIWithMiddleware_CORSAllowList(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{
		Title:          "HealthInfo Gateway",
		AllowedOrigins: []string{"http://localhost:3000"},
	})

	allowed := httptest.NewRequest("GET", "/openapi.json", nil)
	allowed.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, allowed)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest("GET", "/openapi.json", nil)
	denied.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, denied)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewAPIWithMiddleware_MetricsAndRequestID(t *testing.T) {
	m := metrics.New("test")
	_, router := NewAPIWithMiddleware(APIConfig{
		Title:       "HealthInfo Content",
		Logger:      nopLogger{},
		RateLimiter: middleware.NewRateLimiter(100, 100),
		Metrics:     m,
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/openapi.json", nil))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "100", w.Header().Get("X-RateLimit-Burst"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `test_http_requests_total{method="GET",route="/openapi.json",status="200"} 1`), body)
}

func TestRun_StopsWhenContextIsDone(t *testing.T) {
	router := http.NewServeMux()
	srv := NewServer("0", router, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, srv, nopLogger{}) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
