// ABOUTME: Main entry point for the HealthInfo gateway API
// ABOUTME: Wires the content service client, fallback proxy and handlers, then serves

package main

import (
	"context"
	"log"
	"time"

	"healthinfo-api/api"
	"healthinfo-api/api/handlers"
	"healthinfo-api/api/middleware"
	"healthinfo-api/core/gateway"
	"healthinfo-api/core/interfaces"
	"healthinfo-api/core/proxy"
	stdhttp "healthinfo-api/infrastructure/http/standard"
	applog "healthinfo-api/infrastructure/logger/logrus"
	"healthinfo-api/pkg/config"
	"healthinfo-api/pkg/contentapi"
	"healthinfo-api/pkg/featureflags"
	"healthinfo-api/pkg/metrics"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env file: %v", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := applog.New(cfg.Log, "gateway")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	ctx := context.Background()
	flags := featureflags.NewEnvManager("FEATURE_")

	logger.Info("Starting HealthInfo gateway", map[string]interface{}{
		"port":        cfg.Server.Port,
		"env":         string(cfg.Env),
		"content_api": cfg.Upstream.BaseURL,
		"flags":       flags.GetAllFlags(),
	})

	// One bounded attempt per upstream call; an expired wait degrades to mock data
	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.Upstream.Timeout,
		stdhttp.WithMaxAttempts(1),
		stdhttp.WithTransport(&middleware.LoggingRoundTripper{Logger: logger}),
	)

	upstream, err := contentapi.NewClient(cfg.Upstream.BaseURL, httpClient, contentapi.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create content service client: %v", err)
	}

	var m *metrics.Metrics
	if flags.IsEnabled(ctx, featureflags.MetricsEnabled) {
		m = metrics.New("gateway")
	}

	proxyOpts := []proxy.Option{
		proxy.WithMockFallback(flags.IsEnabled(ctx, featureflags.MockFallbackEnabled)),
	}
	if m != nil {
		proxyOpts = append(proxyOpts, proxy.WithObserver(m))
	}
	p := proxy.New(upstream, cfg.Env, logger, proxyOpts...)

	gw := gateway.New(p, interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	})

	var limiter *middleware.RateLimiter
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Title:          "HealthInfo Gateway API",
		Description:    "Public API for health news, articles, conditions and drugs",
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimiter:    limiter,
		Metrics:        m,
	})
	handlers.NewGatewayHandler(gw, cfg.Env).RegisterRoutes(humaAPI)

	srv := api.NewServer(cfg.Server.Port, router, cfg.Upstream.Timeout+15*time.Second)
	if err := api.Run(ctx, srv, logger); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
