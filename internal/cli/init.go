// Package cli provides the bikram command tree and the initialization
// shared by its commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"bikram/internal/config"
	"bikram/internal/log"
	"bikram/internal/services"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it, logging
// validation failures to logger before returning them.
func LoadAndValidateConfig(logger *log.Logger) (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.WithComponent(log.ComponentCLI).Error("Configuration validation failed",
			log.FieldOperation, log.OpValidate,
			log.FieldErrorType, log.ErrorTypeConfiguration,
			log.FieldError, err)
		return nil, err
	}
	return cfg, nil
}

// SetupLogger builds the root logger from cfg, writing to out, and makes
// it the process default.
func SetupLogger(cfg *config.Config, out io.Writer) *log.Logger {
	level, _ := log.ParseLevel(cfg.LogLevel)
	logger := log.New(log.Config{
		Level:     level,
		Format:    cfg.LogFormat,
		Component: log.ComponentApp,
		Output:    out,
	})
	log.SetDefault(logger)
	return logger
}

// NewService wires the calendar described by cfg into a service.
func NewService(cfg *config.Config, logger *log.Logger, opts services.Options) (*services.CalendarService, error) {
	cal, err := cfg.Calendar()
	if err != nil {
		return nil, fmt.Errorf("build calendar: %w", err)
	}
	if opts.CacheSize == 0 {
		opts.CacheSize = cfg.CacheSize
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = cfg.CacheTTL
	}
	return services.NewCalendarService(cal, logger, opts), nil
}

// GracefulShutdown returns a context cancelled on SIGINT or SIGTERM.
func GracefulShutdown(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
