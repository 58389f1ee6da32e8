package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bikram/internal/bs"
	"bikram/internal/log"
)

type Config struct {
	// HTTP Server
	Port            string
	ShutdownTimeout time.Duration

	// Logging
	LogLevel  string
	LogFormat string

	// Conversion cache
	CacheSize            int
	CacheTTL             time.Duration
	CacheCleanupInterval time.Duration

	// Rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int

	// Calendar
	FallbackYear    int
	DefaultLanguage string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8081"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		CacheSize:            getEnvInt("CACHE_SIZE", 1024),
		CacheTTL:             getEnvDuration("CACHE_TTL", time.Hour),
		CacheCleanupInterval: getEnvDuration("CACHE_CLEANUP_INTERVAL", 10*time.Minute),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),

		FallbackYear:    getEnvInt("FALLBACK_YEAR", bs.DefaultFallbackYear),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", string(bs.English)),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.ShutdownTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must be at least 1 second", c.ShutdownTimeout))
	}

	// Validate logging
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of [text json]", c.LogFormat))
	}

	// Validate cache
	if c.CacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid cache size %d: must be at least 1", c.CacheSize))
	} else if c.CacheSize > 1_000_000 {
		errors = append(errors, fmt.Sprintf("invalid cache size %d: must be at most 1000000", c.CacheSize))
	}
	if c.CacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("invalid cache TTL %v: must not be negative", c.CacheTTL))
	}
	if c.CacheCleanupInterval < time.Second {
		errors = append(errors, fmt.Sprintf("invalid cache cleanup interval %v: must be at least 1 second", c.CacheCleanupInterval))
	} else if c.CacheCleanupInterval > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid cache cleanup interval %v: must be at most 24 hours", c.CacheCleanupInterval))
	}

	// Validate rate limiting
	if c.RateLimitPerMinute < 1 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be at least 1 request per minute", c.RateLimitPerMinute))
	}
	if c.RateLimitBurst < 1 {
		errors = append(errors, fmt.Sprintf("invalid rate limit burst %d: must be at least 1", c.RateLimitBurst))
	}

	// Validate calendar
	if !bs.Default.Supports(c.FallbackYear) {
		first, last := bs.Default.Bounds()
		errors = append(errors, fmt.Sprintf("invalid fallback year %d: must be between %d and %d", c.FallbackYear, first.Year, last.Year))
	}
	switch bs.Language(c.DefaultLanguage) {
	case bs.English, bs.Nepali:
	default:
		errors = append(errors, fmt.Sprintf("invalid default language '%s': must be one of [en ne]", c.DefaultLanguage))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Calendar builds the conversion calendar described by the configuration.
func (c *Config) Calendar() (*bs.Calendar, error) {
	return bs.New(bs.WithFallbackYear(c.FallbackYear))
}

// Logger builds the root application logger.
func (c *Config) Logger() *log.Logger {
	level, _ := log.ParseLevel(c.LogLevel)
	return log.New(log.Config{
		Level:     level,
		Format:    c.LogFormat,
		Component: log.ComponentApp,
		Output:    os.Stdout,
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
