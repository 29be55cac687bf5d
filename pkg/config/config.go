// ABOUTME: Configuration for the gateway and content service from environment variables
// ABOUTME: An optional .env file is loaded first; real environment variables win over it

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment names the deployment environment
type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
)

// IsProduction reports whether mock substitution of unexpected failures is off
func (e Environment) IsProduction() bool {
	return strings.EqualFold(string(e), string(Production))
}

// Config holds all application configuration
type Config struct {
	// Env is read from ENV and defaults to development
	Env Environment

	// Server contains HTTP server configuration
	Server ServerConfig

	// Upstream configures how the gateway reaches the content service
	Upstream UpstreamConfig

	// Cache contains listing cache configuration
	Cache CacheConfig

	// Database contains content store configuration
	Database DatabaseConfig

	// RateLimit configures per-client request throttling
	RateLimit RateLimitConfig

	// Log configures the logger
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the gateway port
	Port string

	// ContentPort is the content service port
	ContentPort string

	// AllowedOrigins is the CORS allow-list
	AllowedOrigins []string
}

// UpstreamConfig holds content service client configuration
type UpstreamConfig struct {
	// BaseURL is the content service API root, e.g. http://localhost:8001/api
	BaseURL string

	// Timeout bounds each upstream call
	Timeout time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// ListTTL is how long slug lists and category counts stay cached
	ListTTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix namespaces cache keys
	KeyPrefix string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged
	CleanupInterval time.Duration
}

// DatabaseConfig holds content store configuration
type DatabaseConfig struct {
	// Path is the SQLite file
	Path string
}

// RateLimitConfig holds token bucket settings per client IP
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate
	RequestsPerSecond float64

	// Burst is the bucket size
	Burst int
}

// LogConfig holds logger settings
type LogConfig struct {
	// Level is a logrus level name
	Level string

	// Format is json or text
	Format string

	// File enables rotated file output when set
	File string
}

// LoadDotEnv loads variables from the given .env files (default ".env").
// Missing files are ignored; variables already set are not overridden.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Env: Environment(strings.ToLower(getEnvOrDefault("ENV", string(Development)))),
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			ContentPort:    getEnvOrDefault("CONTENT_PORT", "8001"),
			AllowedOrigins: splitList(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5000")),
		},
		Upstream: UpstreamConfig{
			BaseURL: strings.TrimRight(getEnvOrDefault("CMS_API_URL", "http://localhost:8001/api"), "/"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "healthinfo:"),
			},
		},
		Database: DatabaseConfig{
			Path: getEnvOrDefault("DATABASE_PATH", "content.db"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloatOrDefault("RATE_LIMIT", 20),
			Burst:             getEnvAsIntOrDefault("RATE_BURST", 40),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	var err error
	if cfg.Upstream.Timeout, err = getEnvAsDurationOrDefault("UPSTREAM_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.Cache.ListTTL, err = getEnvAsDurationOrDefault("LIST_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Cache.Memory.CleanupInterval, err = getEnvAsDurationOrDefault("MEMORY_CACHE_EXPIRATION", time.Hour); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("1m30s") or whole seconds ("90")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, value)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" || c.Server.ContentPort == "" {
		return errors.New("port cannot be empty")
	}

	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("CMS_API_URL must be an absolute URL")
	}

	if c.Upstream.Timeout <= 0 {
		return errors.New("upstream timeout must be positive")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1 {
		return errors.New("rate limit and burst must be positive")
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	return nil
}
