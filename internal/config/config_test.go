package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:                 "8081",
		ShutdownTimeout:      30 * time.Second,
		LogLevel:             "info",
		LogFormat:            "text",
		CacheSize:            1024,
		CacheTTL:             time.Hour,
		CacheCleanupInterval: 10 * time.Minute,
		RateLimitPerMinute:   120,
		RateLimitBurst:       20,
		FallbackYear:         2082,
		DefaultLanguage:      "en",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid default config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "valid json logging in nepali",
			mutate:  func(c *Config) { c.LogFormat = "json"; c.DefaultLanguage = "ne"; c.LogLevel = "debug" },
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range low",
			mutate:      func(c *Config) { c.Port = "0" },
			wantErr:     true,
			errorString: "invalid port 0: must be between 1 and 65535",
		},
		{
			name:        "invalid port - out of range high",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "shutdown timeout too short",
			mutate:      func(c *Config) { c.ShutdownTimeout = 10 * time.Millisecond },
			wantErr:     true,
			errorString: "invalid shutdown timeout 10ms: must be at least 1 second",
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.LogLevel = "verbose" },
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name:        "unknown log format",
			mutate:      func(c *Config) { c.LogFormat = "xml" },
			wantErr:     true,
			errorString: "invalid log format 'xml'",
		},
		{
			name:        "cache size too small",
			mutate:      func(c *Config) { c.CacheSize = 0 },
			wantErr:     true,
			errorString: "invalid cache size 0: must be at least 1",
		},
		{
			name:        "cache size too large",
			mutate:      func(c *Config) { c.CacheSize = 2_000_000 },
			wantErr:     true,
			errorString: "invalid cache size 2000000: must be at most 1000000",
		},
		{
			name:        "negative cache TTL",
			mutate:      func(c *Config) { c.CacheTTL = -time.Second },
			wantErr:     true,
			errorString: "invalid cache TTL -1s",
		},
		{
			name:        "cleanup interval too short",
			mutate:      func(c *Config) { c.CacheCleanupInterval = 500 * time.Millisecond },
			wantErr:     true,
			errorString: "invalid cache cleanup interval 500ms: must be at least 1 second",
		},
		{
			name:        "cleanup interval too long",
			mutate:      func(c *Config) { c.CacheCleanupInterval = 25 * time.Hour },
			wantErr:     true,
			errorString: "invalid cache cleanup interval 25h0m0s: must be at most 24 hours",
		},
		{
			name:        "rate limit zero",
			mutate:      func(c *Config) { c.RateLimitPerMinute = 0 },
			wantErr:     true,
			errorString: "invalid rate limit 0",
		},
		{
			name:        "rate limit burst zero",
			mutate:      func(c *Config) { c.RateLimitBurst = 0 },
			wantErr:     true,
			errorString: "invalid rate limit burst 0",
		},
		{
			name:        "fallback year outside table",
			mutate:      func(c *Config) { c.FallbackYear = 2200 },
			wantErr:     true,
			errorString: "invalid fallback year 2200: must be between 2000 and 2100",
		},
		{
			name:        "unsupported language",
			mutate:      func(c *Config) { c.DefaultLanguage = "fr" },
			wantErr:     true,
			errorString: "invalid default language 'fr'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else if err != nil {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateCombinesErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "abc"
	cfg.CacheSize = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if got := strings.Count(err.Error(), "\n- "); got != 2 {
		t.Fatalf("expected 2 combined errors, got %d: %v", got, err)
	}
}

func TestLoad(t *testing.T) {
	keys := []string{
		"PORT", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
		"CACHE_SIZE", "CACHE_TTL", "CACHE_CLEANUP_INTERVAL",
		"RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_BURST",
		"FALLBACK_YEAR", "DEFAULT_LANGUAGE",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.Port != "8081" {
			t.Errorf("Load() Port = %v, want 8081", cfg.Port)
		}
		if cfg.CacheSize != 1024 {
			t.Errorf("Load() CacheSize = %v, want 1024", cfg.CacheSize)
		}
		if cfg.CacheTTL != time.Hour {
			t.Errorf("Load() CacheTTL = %v, want 1h", cfg.CacheTTL)
		}
		if cfg.FallbackYear != 2082 {
			t.Errorf("Load() FallbackYear = %v, want 2082", cfg.FallbackYear)
		}
		if cfg.DefaultLanguage != "en" {
			t.Errorf("Load() DefaultLanguage = %v, want en", cfg.DefaultLanguage)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("defaults should validate: %v", err)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("CACHE_SIZE", "64")
		t.Setenv("CACHE_TTL", "45s")
		t.Setenv("FALLBACK_YEAR", "2081")
		t.Setenv("DEFAULT_LANGUAGE", "ne")

		cfg := Load()

		if cfg.Port != "9090" {
			t.Errorf("Load() Port = %v, want 9090", cfg.Port)
		}
		if cfg.LogFormat != "json" {
			t.Errorf("Load() LogFormat = %v, want json", cfg.LogFormat)
		}
		if cfg.CacheSize != 64 {
			t.Errorf("Load() CacheSize = %v, want 64", cfg.CacheSize)
		}
		if cfg.CacheTTL != 45*time.Second {
			t.Errorf("Load() CacheTTL = %v, want 45s", cfg.CacheTTL)
		}
		if cfg.FallbackYear != 2081 {
			t.Errorf("Load() FallbackYear = %v, want 2081", cfg.FallbackYear)
		}

		cal, err := cfg.Calendar()
		if err != nil {
			t.Fatalf("Calendar() error = %v", err)
		}
		if cal.FallbackYear() != 2081 {
			t.Errorf("Calendar().FallbackYear() = %v, want 2081", cal.FallbackYear())
		}
	})

	t.Run("invalid environment variables use defaults", func(t *testing.T) {
		t.Setenv("CACHE_SIZE", "invalid")
		t.Setenv("CACHE_TTL", "invalid")

		cfg := Load()

		if cfg.CacheSize != 1024 {
			t.Errorf("Load() CacheSize = %v, want 1024 (default for invalid input)", cfg.CacheSize)
		}
		if cfg.CacheTTL != time.Hour {
			t.Errorf("Load() CacheTTL = %v, want 1h (default for invalid input)", cfg.CacheTTL)
		}
	})
}
