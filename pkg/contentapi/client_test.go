package contentapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "healthinfo-api/core/errors"
	"healthinfo-api/infrastructure/http/standard"
)

func newTestClient(t *testing.T, baseURL string, timeout time.Duration) *Client {
	t.Helper()
	client, err := NewClient(baseURL, standard.NewStandardHTTPClient(timeout, standard.WithMaxAttempts(1)))
	require.NoError(t, err)
	return client
}

func TestNewClient_Validation(t *testing.T) {
	httpClient := standard.NewStandardHTTPClient(time.Second)

	_, err := NewClient("http://localhost:8001/api", nil)
	assert.Error(t, err)

	_, err = NewClient("localhost:8001", httpClient)
	assert.Error(t, err)

	client, err := NewClient("http://localhost:8001/api/", httpClient, WithServiceName("cms"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8001/api", client.baseURL)
	assert.Equal(t, "cms", client.Service())
}

func TestClient_GetJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/news/search", r.URL.Path)
		assert.Equal(t, "sepsis", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"Sepsis alerts","slug":"sepsis-alerts","featured":false}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/api", time.Second)

	var got []Preview
	err := client.GetJSON(context.Background(), "/news/search", url.Values{"q": {"sepsis"}}, &got)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "sepsis-alerts", got[0].Slug)
}

func TestClient_GetJSON_UpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"News article not found"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, time.Second)

	var got Preview
	err := client.GetJSON(context.Background(), "/news/missing", nil, &got)

	upstreamErr, ok := coreerrors.AsUpstream(err)
	require.True(t, ok, "expected UpstreamError, got %v", err)
	assert.Equal(t, http.StatusNotFound, upstreamErr.StatusCode)
	assert.JSONEq(t, `{"message":"News article not found"}`, string(upstreamErr.Body))
	assert.True(t, coreerrors.IsUpstreamNotFound(err))
}

func TestClient_GetJSON_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := newTestClient(t, baseURL, time.Second)

	var got []string
	err := client.GetJSON(context.Background(), "/news/paths", nil, &got)
	assert.True(t, coreerrors.IsUnavailable(err), "expected UnavailableError, got %v", err)
}

func TestClient_GetJSON_TimeoutIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 20*time.Millisecond)

	var got []string
	err := client.GetJSON(context.Background(), "/news/paths", nil, &got)
	assert.True(t, coreerrors.IsUnavailable(err), "expected UnavailableError, got %v", err)
}

func TestClient_GetJSON_DecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, time.Second)

	var got []string
	err := client.GetJSON(context.Background(), "/news/paths", nil, &got)
	require.Error(t, err)
	assert.False(t, coreerrors.IsUnavailable(err))
	_, isUpstream := coreerrors.AsUpstream(err)
	assert.False(t, isUpstream)
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/news/latest", Path("news", "latest"))
	assert.Equal(t, "/news/flu%20season/related", Path("news", "flu season", "related"))
	assert.Equal(t, "/drugs/a%2Fb", Path("drugs", "a/b"))
}
