package search

import (
	"context"
	"sync"
	"sync/atomic"

	"healthinfo-api/pkg/contentapi"
)

// mockSearcher is a mock implementation of the Searcher interface
type mockSearcher struct {
	calls int32

	searchArticlesFunc   func(ctx context.Context, q string) ([]contentapi.Preview, error)
	searchConditionsFunc func(ctx context.Context, q string) ([]contentapi.ConditionSummary, error)
	searchDrugsFunc      func(ctx context.Context, q string) ([]contentapi.DrugSummary, error)
	searchNewsFunc       func(ctx context.Context, q string) ([]contentapi.Preview, error)
}

func (m *mockSearcher) SearchArticles(ctx context.Context, q string) ([]contentapi.Preview, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.searchArticlesFunc != nil {
		return m.searchArticlesFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockSearcher) SearchConditions(ctx context.Context, q string) ([]contentapi.ConditionSummary, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.searchConditionsFunc != nil {
		return m.searchConditionsFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockSearcher) SearchDrugs(ctx context.Context, q string) ([]contentapi.DrugSummary, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.searchDrugsFunc != nil {
		return m.searchDrugsFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockSearcher) SearchNews(ctx context.Context, q string) ([]contentapi.Preview, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.searchNewsFunc != nil {
		return m.searchNewsFunc(ctx, q)
	}
	return nil, nil
}

// mockLogger counts error entries
type mockLogger struct {
	mu     sync.Mutex
	errors []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}
