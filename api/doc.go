// Package api provides the HTTP API layer shared by the HealthInfo gateway
// and content service. It uses the Huma framework on a chi router for
// automatic OpenAPI documentation and request validation.
//
// # Architecture
//
// - server.go: Huma configuration and the middleware chain
// - handlers/: route registration for both services
// - dto/mappers/: domain records to wire types
// - middleware/: request IDs, logging, rate limiting and metrics
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Title:          "HealthInfo Gateway",
//	    Logger:         logger,
//	    AllowedOrigins: cfg.Server.AllowedOrigins,
//	    Metrics:        metrics.New("gateway"),
//	})
//	handlers.NewGatewayHandler(gw, cfg.Env).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Client errors are {"message": "..."} and server errors {"error": "..."},
// both with an optional "detail". Domain errors from core/errors are mapped
// to status codes in handlers/errors.go.
package api
