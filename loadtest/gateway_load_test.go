// ABOUTME: Load tests for the gateway backed by a seeded content service
// ABOUTME: Measures latency percentiles under concurrent reads and search fan-out

package loadtest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"healthinfo-api/api"
	"healthinfo-api/api/handlers"
	"healthinfo-api/core/content"
	"healthinfo-api/core/gateway"
	"healthinfo-api/core/interfaces"
	"healthinfo-api/core/proxy"
	"healthinfo-api/infrastructure/cache/memory"
	stdhttp "healthinfo-api/infrastructure/http/standard"
	applog "healthinfo-api/infrastructure/logger/logrus"
	"healthinfo-api/infrastructure/storage/sqlite"
	"healthinfo-api/pkg/config"
	"healthinfo-api/pkg/contentapi"
)

// LoadTestMetrics tracks performance metrics
type LoadTestMetrics struct {
	TotalRequests  int64
	SuccessfulReqs int64
	FailedReqs     int64
	TotalDuration  time.Duration
	MinLatency     time.Duration
	MaxLatency     time.Duration
	AvgLatency     time.Duration
	P95Latency     time.Duration
	P99Latency     time.Duration
	RequestsPerSec float64
}

var gatewayPaths = []string{
	"/api/news/latest",
	"/api/articles/latest",
	"/api/articles/top-stories",
	"/api/conditions/index",
	"/api/drugs/paths",
	"/api/news/paths",
	"/api/search?q=blood",
	"/api/search?q=flu",
}

// newStack starts a seeded content service and a gateway in front of it
func newStack(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	logger, err := applog.New(config.LogConfig{Level: "error", Format: "json"}, "loadtest")
	require.NoError(t, err)

	store, err := sqlite.NewStore(filepath.Join(t.TempDir(), "content.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = content.Seed(ctx, store, time.Now())
	require.NoError(t, err)

	contentDeps := interfaces.Dependencies{
		Store:  store,
		Cache:  memory.NewMemoryCache(time.Minute),
		Logger: logger,
	}
	contentAPI, contentRouter := api.NewAPIWithMiddleware(api.APIConfig{Title: "content", Logger: logger})
	handlers.NewContentHandler(content.NewService(contentDeps), contentDeps, config.Development).RegisterRoutes(contentAPI)
	contentSrv := httptest.NewServer(contentRouter)
	t.Cleanup(contentSrv.Close)

	httpClient := stdhttp.NewStandardHTTPClient(5*time.Second, stdhttp.WithMaxAttempts(1))
	upstream, err := contentapi.NewClient(contentSrv.URL+"/api", httpClient, contentapi.WithLogger(logger))
	require.NoError(t, err)

	p := proxy.New(upstream, config.Development, logger, proxy.WithMockFallback(false))
	gw := gateway.New(p, interfaces.Dependencies{HTTPClient: httpClient, Logger: logger})

	gatewayAPI, gatewayRouter := api.NewAPIWithMiddleware(api.APIConfig{Title: "gateway", Logger: logger})
	handlers.NewGatewayHandler(gw, config.Development).RegisterRoutes(gatewayAPI)
	gatewaySrv := httptest.NewServer(gatewayRouter)
	t.Cleanup(gatewaySrv.Close)

	return gatewaySrv
}

func TestGateway_50ConcurrentClients(t *testing.T) {
	if testing.Short() {
		t.Skip("load test")
	}

	server := newStack(t)

	concurrency := 50
	requestsPerWorker := 10
	totalRequests := concurrency * requestsPerWorker

	var (
		successCount int64
		failCount    int64
		latencies    []time.Duration
		mu           sync.Mutex
		wg           sync.WaitGroup
	)

	startTime := time.Now()
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func(workerID int) {
			defer wg.Done()

			client := &http.Client{Timeout: 30 * time.Second}
			for j := 0; j < requestsPerWorker; j++ {
				path := gatewayPaths[(workerID+j)%len(gatewayPaths)]

				reqStart := time.Now()
				resp, err := client.Get(server.URL + path)
				latency := time.Since(reqStart)

				mu.Lock()
				latencies = append(latencies, latency)
				mu.Unlock()

				if err != nil {
					atomic.AddInt64(&failCount, 1)
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()

				if resp.StatusCode == http.StatusOK {
					atomic.AddInt64(&successCount, 1)
				} else {
					atomic.AddInt64(&failCount, 1)
				}
			}
		}(i)
	}
	wg.Wait()

	metrics := calculateMetrics(latencies, time.Since(startTime), totalRequests)
	metrics.SuccessfulReqs = successCount
	metrics.FailedReqs = failCount

	t.Logf("Load Test Results - %d concurrent clients", concurrency)
	t.Logf("Total Requests: %d", metrics.TotalRequests)
	t.Logf("Successful: %d", metrics.SuccessfulReqs)
	t.Logf("Failed: %d", metrics.FailedReqs)
	t.Logf("Requests/sec: %.2f", metrics.RequestsPerSec)
	t.Logf("Avg Latency: %v", metrics.AvgLatency)
	t.Logf("P95 Latency: %v", metrics.P95Latency)
	t.Logf("P99 Latency: %v", metrics.P99Latency)
	t.Logf("Max Latency: %v", metrics.MaxLatency)

	if metrics.FailedReqs > 0 {
		t.Errorf("Had %d failed requests", metrics.FailedReqs)
	}
	if metrics.P95Latency > 2*time.Second {
		t.Errorf("P95 latency too high: %v", metrics.P95Latency)
	}
}

// calculateMetrics computes performance metrics from latency data
func calculateMetrics(latencies []time.Duration, totalDuration time.Duration, totalRequests int) LoadTestMetrics {
	if len(latencies) == 0 {
		return LoadTestMetrics{}
	}

	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	return LoadTestMetrics{
		TotalRequests:  int64(totalRequests),
		TotalDuration:  totalDuration,
		MinLatency:     sorted[0],
		MaxLatency:     sorted[len(sorted)-1],
		AvgLatency:     sum / time.Duration(len(latencies)),
		P95Latency:     sorted[int(float64(len(sorted))*0.95)],
		P99Latency:     sorted[int(float64(len(sorted))*0.99)],
		RequestsPerSec: float64(totalRequests) / totalDuration.Seconds(),
	}
}

func TestCalculateMetrics(t *testing.T) {
	var latencies []time.Duration
	for i := 1; i <= 100; i++ {
		latencies = append(latencies, time.Duration(101-i)*time.Millisecond)
	}

	m := calculateMetrics(latencies, 2*time.Second, 100)
	if m.MinLatency != time.Millisecond || m.MaxLatency != 100*time.Millisecond {
		t.Errorf("min/max = %v/%v", m.MinLatency, m.MaxLatency)
	}
	if m.P95Latency != 96*time.Millisecond {
		t.Errorf("P95Latency = %v, want 96ms", m.P95Latency)
	}
	if m.RequestsPerSec != 50 {
		t.Errorf("RequestsPerSec = %v, want 50", m.RequestsPerSec)
	}
	if empty := calculateMetrics(nil, time.Second, 0); empty.TotalRequests != 0 {
		t.Errorf("empty metrics = %+v", empty)
	}
}
