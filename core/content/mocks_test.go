package content

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"healthinfo-api/core/domain"
	"healthinfo-api/core/interfaces"
)

// mockStore is a func-field implementation of interfaces.ContentStore.
// Save and SaveCategory record their arguments when no func is set.
type mockStore struct {
	mu         sync.Mutex
	saved      []*domain.Content
	categories []domain.CategoryCount
	listCalls  []interfaces.ListQuery
	slugsCalls int

	listFunc           func(ctx context.Context, q interfaces.ListQuery) ([]*domain.Content, error)
	getBySlugFunc      func(ctx context.Context, kind domain.Kind, slug string) (*domain.Content, error)
	relatedFunc        func(ctx context.Context, kind domain.Kind, slug string, limit int) ([]*domain.Content, error)
	searchFunc         func(ctx context.Context, kind domain.Kind, query string, limit int) ([]*domain.Content, error)
	slugsFunc          func(ctx context.Context, kind domain.Kind) ([]string, error)
	categoriesFunc     func(ctx context.Context, kind domain.Kind) ([]domain.CategoryCount, error)
	incrementViewsFunc func(ctx context.Context, kind domain.Kind, slug string) error
	saveFunc           func(ctx context.Context, c *domain.Content) error
}

func (m *mockStore) List(ctx context.Context, q interfaces.ListQuery) ([]*domain.Content, error) {
	m.mu.Lock()
	m.listCalls = append(m.listCalls, q)
	m.mu.Unlock()
	if m.listFunc != nil {
		return m.listFunc(ctx, q)
	}
	return []*domain.Content{}, nil
}

func (m *mockStore) GetBySlug(ctx context.Context, kind domain.Kind, slug string) (*domain.Content, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, kind, slug)
	}
	return nil, errors.New("not implemented")
}

func (m *mockStore) Related(ctx context.Context, kind domain.Kind, slug string, limit int) ([]*domain.Content, error) {
	if m.relatedFunc != nil {
		return m.relatedFunc(ctx, kind, slug, limit)
	}
	return []*domain.Content{}, nil
}

func (m *mockStore) Search(ctx context.Context, kind domain.Kind, query string, limit int) ([]*domain.Content, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, kind, query, limit)
	}
	return []*domain.Content{}, nil
}

func (m *mockStore) Slugs(ctx context.Context, kind domain.Kind) ([]string, error) {
	m.mu.Lock()
	m.slugsCalls++
	m.mu.Unlock()
	if m.slugsFunc != nil {
		return m.slugsFunc(ctx, kind)
	}
	return []string{}, nil
}

func (m *mockStore) Categories(ctx context.Context, kind domain.Kind) ([]domain.CategoryCount, error) {
	if m.categoriesFunc != nil {
		return m.categoriesFunc(ctx, kind)
	}
	return []domain.CategoryCount{}, nil
}

func (m *mockStore) IncrementViews(ctx context.Context, kind domain.Kind, slug string) error {
	if m.incrementViewsFunc != nil {
		return m.incrementViewsFunc(ctx, kind, slug)
	}
	return nil
}

func (m *mockStore) Save(ctx context.Context, c *domain.Content) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, c)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, c)
	return nil
}

func (m *mockStore) SaveCategory(ctx context.Context, kind domain.Kind, category domain.CategoryCount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append(m.categories, category)
	return nil
}

// mockCache is an in-memory interfaces.Cache
type mockCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
	setErr  error
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return data, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	m.deleted = append(m.deleted, key)
	return nil
}

// mockLogger records warnings
type mockLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, msg)
}

// mockHTTPClient serves canned responses
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return m.getFunc(ctx, url)
}

type mockResponse struct {
	status int
	body   string
}

func (r *mockResponse) StatusCode() int          { return r.status }
func (r *mockResponse) Body() io.ReadCloser      { return io.NopCloser(bytes.NewBufferString(r.body)) }
func (r *mockResponse) Header(key string) string { return "" }
