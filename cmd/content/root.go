// ABOUTME: Root command and the dependencies every subcommand shares
// ABOUTME: Opens configuration, logger, content store and listing cache

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"healthinfo-api/core/content"
	"healthinfo-api/core/interfaces"
	"healthinfo-api/infrastructure/cache/memory"
	"healthinfo-api/infrastructure/cache/redis"
	applog "healthinfo-api/infrastructure/logger/logrus"
	"healthinfo-api/infrastructure/storage/sqlite"
	"healthinfo-api/pkg/config"
	"healthinfo-api/pkg/featureflags"
)

// globalOptions are the persistent flags of the root command
type globalOptions struct {
	dbPath  string
	envFile string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "content",
		Short: "HealthInfo content service",
		Long: `The content service owns the canonical store of articles, news,
conditions, drugs, remedies, social posts and videos and serves them
as a read-only JSON API.

Examples:
  content serve --port 8001
  content seed
  content import https://example.com/health/rss.xml`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite database file (overrides DATABASE_PATH)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "optional .env file to load")

	root.AddCommand(newServeCmd(opts), newSeedCmd(opts), newImportCmd(opts))
	return root
}

// app holds what the subcommands share
type app struct {
	cfg     *config.Config
	logger  *applog.Logger
	store   *sqlite.Store
	cache   interfaces.Cache
	flags   featureflags.Manager
	service *content.Service
	closers []func() error
}

// newApp loads configuration and opens the store and cache
func newApp(ctx context.Context, opts *globalOptions) (*app, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return nil, fmt.Errorf("load %s: %w", opts.envFile, err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if opts.dbPath != "" {
		cfg.Database.Path = opts.dbPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := applog.New(cfg.Log, "content")
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		flags:   featureflags.NewEnvManager("FEATURE_"),
		closers: []func() error{logger.Close},
	}

	store, err := sqlite.NewStore(cfg.Database.Path, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.store = store
	a.closers = append(a.closers, store.Close)

	if a.flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		a.cache = a.openCache()
	}

	a.service = content.NewService(a.deps(nil), content.WithListCacheTTL(cfg.Cache.ListTTL))
	return a, nil
}

// openCache picks the configured cache, falling back to memory when Redis is unreachable
func (a *app) openCache() interfaces.Cache {
	if a.cfg.Cache.Type == "redis" {
		redisCache, err := redis.NewRedisCache(a.cfg.Cache.Redis)
		if err == nil {
			a.closers = append(a.closers, redisCache.Close)
			a.logger.Info("Using Redis cache", map[string]interface{}{
				"address": a.cfg.Cache.Redis.Address,
			})
			return redisCache
		}
		a.logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}
	a.logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(a.cfg.Cache.Memory.CleanupInterval)
}

func (a *app) deps(httpClient interfaces.HTTPClient) interfaces.Dependencies {
	return interfaces.Dependencies{
		Cache:      a.cache,
		HTTPClient: httpClient,
		Store:      a.store,
		Logger:     a.logger,
	}
}

// invalidate drops cached listings after the store changed
func (a *app) invalidate(ctx context.Context) {
	if err := a.service.Invalidate(ctx); err != nil {
		a.logger.Warn("Failed to invalidate listing cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Close releases resources in reverse order of acquisition
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}
