// Package core contains the business logic of the HealthInfo services.
// It does not depend on the HTTP framework or on any concrete storage.
//
// The core package is organized into several sub-packages:
//
// - domain: content pages, kinds, categories and slug/query rules
// - content: the content service reads, seeding and feed import
// - proxy: upstream calls with mock fallback for the gateway
// - gateway: per-kind proxied resources and their mock datasets
// - search: concurrent fan-out over the four searchable kinds
// - workers: bounded pool for importing several feeds at once
// - errors: typed errors mapped to HTTP statuses by the handlers
// - interfaces: contracts for the store, cache, HTTP client and logger
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Store:  store,  // implements interfaces.ContentStore
//	    Cache:  cache,  // implements interfaces.Cache, may be nil
//	    Logger: logger, // implements interfaces.Logger
//	}
//
//	service := content.NewService(deps)
//	latest, err := service.Latest(ctx, domain.KindNews, content.LatestOptions{Limit: 6})
package core
