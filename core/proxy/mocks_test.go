package proxy

import (
	"context"
	"net/url"
	"sync"
)

// mockUpstream is a mock implementation of the Upstream interface
type mockUpstream struct {
	getJSONFunc func(ctx context.Context, path string, query url.Values, dst interface{}) error
}

func (m *mockUpstream) GetJSON(ctx context.Context, path string, query url.Values, dst interface{}) error {
	if m.getJSONFunc != nil {
		return m.getJSONFunc(ctx, path, query, dst)
	}
	return nil
}

type mockEnvironment struct {
	production bool
	reads      int
}

func (m *mockEnvironment) IsProduction() bool {
	m.reads++
	return m.production
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// mockLogger records every entry
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) log(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.log("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.log("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.log("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.log("error", msg, fields) }

func (m *mockLogger) count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

type fallbackRecord struct {
	resource string
	reason   string
}

type mockObserver struct {
	records []fallbackRecord
}

func (m *mockObserver) RecordFallback(resource, reason string) {
	m.records = append(m.records, fallbackRecord{resource: resource, reason: reason})
}
