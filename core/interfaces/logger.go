package interfaces

// Logger is the structured logging contract used by core code.
//
// Example usage:
//
//	logger.Warn("Content service unavailable, serving mock data", map[string]interface{}{
//		"resource": "news",
//		"error":    err.Error(),
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general operational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs degraded operation, such as serving mock data.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}
