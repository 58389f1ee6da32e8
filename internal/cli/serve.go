package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bikram/internal/bs"
	"bikram/internal/cache"
	apphttp "bikram/internal/http"
	"bikram/internal/log"
	"bikram/internal/middleware/ratelimit"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the calendar API server",
		Long:  "Start the JSON calendar API with tracing, security headers and rate limiting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := GracefulShutdown(cmd.Context())
			defer stop()
			return runServer(ctx, a)
		},
	}
}

// runServer serves until ctx is cancelled, then drains connections within
// the configured shutdown timeout.
func runServer(ctx context.Context, a *app) error {
	cfg := a.cfg
	logger := a.logger

	srv := apphttp.NewServer(":"+cfg.Port, a.svc, apphttp.Options{
		Logger: logger,
		RateLimit: ratelimit.Config{
			RequestsPerMinute: cfg.RateLimitPerMinute,
			Burst:             cfg.RateLimitBurst,
		},
		DefaultLanguage: bs.Language(cfg.DefaultLanguage),
	})

	caches := cache.NewManager(logger)
	a.svc.RegisterCaches(caches)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		first, last := a.svc.Calendar().Bounds()
		logger.Info("Starting server",
			log.FieldOperation, log.OpStartup,
			"addr", srv.Addr,
			"bs_range", first.String()+".."+last.String(),
			"fallback_year", a.svc.Calendar().FallbackYear())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		caches.Run(cfg.CacheCleanupInterval)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received", log.FieldOperation, log.OpShutdown)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		caches.Stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("Server shutdown complete", "metrics", srv.GetMetrics())
		return nil
	})

	return g.Wait()
}
