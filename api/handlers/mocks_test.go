package handlers

import (
	"context"
	"net/url"
	"sync"

	"github.com/danielgtaylor/huma/v2"

	"healthinfo-api/core/content"
	"healthinfo-api/core/domain"
)

// testConfig matches the server config: plain JSON bodies without $schema links
func testConfig() huma.Config {
	config := huma.DefaultConfig("Test API", "1.0.0")
	config.CreateHooks = nil
	return config
}

// staticEnv is a fixed production switch
type staticEnv struct {
	production bool
}

func (e staticEnv) IsProduction() bool { return e.production }

// nopLogger discards log entries
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

// fakeUpstream answers GetJSON through getFunc and records requested paths
type fakeUpstream struct {
	mu      sync.Mutex
	paths   []string
	getFunc func(path string, query url.Values, dst interface{}) error
}

func (f *fakeUpstream) GetJSON(ctx context.Context, path string, query url.Values, dst interface{}) error {
	f.mu.Lock()
	f.paths = append(f.paths, path)
	f.mu.Unlock()
	return f.getFunc(path, query, dst)
}

func (f *fakeUpstream) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

// mockContentService is a mock implementation of ContentService
type mockContentService struct {
	latestFunc       func(ctx context.Context, kind domain.Kind, opts content.LatestOptions) ([]*domain.Content, error)
	topStoriesFunc   func(ctx context.Context) ([]*domain.Content, error)
	indexFunc        func(ctx context.Context, kind domain.Kind) ([]*domain.Content, error)
	detailFunc       func(ctx context.Context, kind domain.Kind, slug string) (*domain.Content, error)
	relatedFunc      func(ctx context.Context, kind domain.Kind, slug string) ([]*domain.Content, error)
	searchFunc       func(ctx context.Context, kind domain.Kind, q string) ([]*domain.Content, error)
	pathsFunc        func(ctx context.Context, kind domain.Kind) ([]string, error)
	categoriesFunc   func(ctx context.Context, kind domain.Kind) ([]domain.CategoryCount, error)
	healthTopicsFunc func(ctx context.Context) ([]content.Topic, error)
	wellBeingFunc    func(ctx context.Context) (content.WellBeing, error)
	authorsFunc      func(ctx context.Context) ([]content.AuthorProfile, error)
	authorFunc       func(ctx context.Context, slug string) (*content.AuthorProfile, error)
}

func (m *mockContentService) Latest(ctx context.Context, kind domain.Kind, opts content.LatestOptions) ([]*domain.Content, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, kind, opts)
	}
	return nil, nil
}

func (m *mockContentService) TopStories(ctx context.Context) ([]*domain.Content, error) {
	if m.topStoriesFunc != nil {
		return m.topStoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockContentService) Index(ctx context.Context, kind domain.Kind) ([]*domain.Content, error) {
	if m.indexFunc != nil {
		return m.indexFunc(ctx, kind)
	}
	return nil, nil
}

func (m *mockContentService) Detail(ctx context.Context, kind domain.Kind, slug string) (*domain.Content, error) {
	if m.detailFunc != nil {
		return m.detailFunc(ctx, kind, slug)
	}
	return nil, nil
}

func (m *mockContentService) Related(ctx context.Context, kind domain.Kind, slug string) ([]*domain.Content, error) {
	if m.relatedFunc != nil {
		return m.relatedFunc(ctx, kind, slug)
	}
	return nil, nil
}

func (m *mockContentService) Search(ctx context.Context, kind domain.Kind, q string) ([]*domain.Content, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, kind, q)
	}
	return nil, nil
}

func (m *mockContentService) Paths(ctx context.Context, kind domain.Kind) ([]string, error) {
	if m.pathsFunc != nil {
		return m.pathsFunc(ctx, kind)
	}
	return nil, nil
}

func (m *mockContentService) Categories(ctx context.Context, kind domain.Kind) ([]domain.CategoryCount, error) {
	if m.categoriesFunc != nil {
		return m.categoriesFunc(ctx, kind)
	}
	return nil, nil
}

func (m *mockContentService) HealthTopics(ctx context.Context) ([]content.Topic, error) {
	if m.healthTopicsFunc != nil {
		return m.healthTopicsFunc(ctx)
	}
	return nil, nil
}

func (m *mockContentService) WellBeing(ctx context.Context) (content.WellBeing, error) {
	if m.wellBeingFunc != nil {
		return m.wellBeingFunc(ctx)
	}
	return content.WellBeing{}, nil
}

func (m *mockContentService) Authors(ctx context.Context) ([]content.AuthorProfile, error) {
	if m.authorsFunc != nil {
		return m.authorsFunc(ctx)
	}
	return nil, nil
}

func (m *mockContentService) Author(ctx context.Context, slug string) (*content.AuthorProfile, error) {
	if m.authorFunc != nil {
		return m.authorFunc(ctx, slug)
	}
	return nil, nil
}
