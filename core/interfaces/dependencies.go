// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Each binary fills in the parts it uses; unused parts stay nil

package interfaces

// Dependencies holds the external collaborators of the core packages
type Dependencies struct {
	// Cache holds listing payloads on the content service
	Cache Cache

	// HTTPClient reaches the content service from the gateway
	HTTPClient HTTPClient

	// Store is the canonical content store of the content service
	Store ContentStore

	// Logger provides structured logging
	Logger Logger
}
