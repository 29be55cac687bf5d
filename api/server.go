// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS and the shared middleware chain

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"healthinfo-api/api/middleware"
	"healthinfo-api/core/interfaces"
	"healthinfo-api/pkg/metrics"
)

// Version is reported in the OpenAPI document
const Version = "1.0.0"

// APIConfig holds configuration for the API
type APIConfig struct {
	Title          string
	Description    string
	Logger         interfaces.Logger
	AllowedOrigins []string

	// RateLimiter throttles clients when set
	RateLimiter *middleware.RateLimiter

	// Metrics records requests and is served on /metrics when set
	Metrics *metrics.Metrics
}

// NewConfig returns the huma configuration shared by both services.
// Bodies are plain JSON without $schema links.
func NewConfig(title, description string) huma.Config {
	config := huma.DefaultConfig(title, Version)
	config.Info.Description = description
	config.CreateHooks = nil
	return config
}

// NewAPI creates an API without middleware
func NewAPI(title string) (huma.API, chi.Router) {
	router := chi.NewRouter()
	return humachi.New(router, NewConfig(title, "")), router
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS goes first so preflight requests are never rate limited
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(cfg.Metrics))
	}
	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}
	if cfg.RateLimiter != nil {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimiter))
	}

	api := humachi.New(router, NewConfig(cfg.Title, cfg.Description))

	if cfg.Metrics != nil {
		router.Handle("/metrics", cfg.Metrics.Handler())
	}

	return api, router
}
