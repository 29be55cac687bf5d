package middleware

import (
	"sync"
	"time"
)

// MockLogger records log entries for assertions
type MockLogger struct {
	mu   sync.Mutex
	logs []LogEntry
}

type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (m *MockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, LogEntry{Level: level, Message: msg, Fields: fields})
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields map[string]interface{})  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields map[string]interface{})  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields map[string]interface{}) { m.record("ERROR", msg, fields) }

// observation is one ObserveRequest call
type observation struct {
	method string
	route  string
	status int
}

// mockObserver records observed requests
type mockObserver struct {
	observed []observation
}

func (m *mockObserver) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.observed = append(m.observed, observation{method, route, status})
}
