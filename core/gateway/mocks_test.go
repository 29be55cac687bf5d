package gateway

import "sync"

type testEnvironment struct {
	production bool
}

func (e testEnvironment) IsProduction() bool {
	return e.production
}

// nopLogger discards every entry
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

// pathRecorder collects request paths from concurrent handlers
type pathRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *pathRecorder) add(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *pathRecorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.paths)
}
