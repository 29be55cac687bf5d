package main

import (
	"time"

	"github.com/spf13/cobra"

	"healthinfo-api/api"
	"healthinfo-api/api/handlers"
	"healthinfo-api/api/middleware"
	"healthinfo-api/pkg/featureflags"
	"healthinfo-api/pkg/metrics"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the content API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if port != "" {
				a.cfg.Server.ContentPort = port
			}

			a.logger.Info("Starting HealthInfo content service", map[string]interface{}{
				"port":     a.cfg.Server.ContentPort,
				"env":      string(a.cfg.Env),
				"database": a.cfg.Database.Path,
				"flags":    a.flags.GetAllFlags(),
			})

			var m *metrics.Metrics
			if a.flags.IsEnabled(ctx, featureflags.MetricsEnabled) {
				m = metrics.New("content")
			}

			var limiter *middleware.RateLimiter
			if a.flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
				limiter = middleware.NewRateLimiter(a.cfg.RateLimit.RequestsPerSecond, a.cfg.RateLimit.Burst)
			}

			humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
				Title:          "HealthInfo Content API",
				Description:    "Canonical store of published health content",
				Logger:         a.logger,
				AllowedOrigins: a.cfg.Server.AllowedOrigins,
				RateLimiter:    limiter,
				Metrics:        m,
			})
			handlers.NewContentHandler(a.service, a.deps(nil), a.cfg.Env).RegisterRoutes(humaAPI)

			srv := api.NewServer(a.cfg.Server.ContentPort, router, 30*time.Second)
			return api.Run(ctx, srv, a.logger)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides CONTENT_PORT)")
	return cmd
}
