package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"bikram/internal/bs"
	"bikram/internal/log"
	"bikram/internal/middleware/ratelimit"
	"bikram/internal/middleware/security"
	"bikram/internal/middleware/trace"
	"bikram/internal/services"
)

// Options configures the API server.
type Options struct {
	Logger          *log.Logger
	RateLimit       ratelimit.Config
	DefaultLanguage bs.Language
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}

type Server struct {
	http.Server
	svc         *services.CalendarService
	logger      *log.Logger
	defaultLang bs.Language

	detector    *security.Detector
	tracer      *trace.Middleware
	rateLimiter *ratelimit.Limiter

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run http.Server.
func NewServer(addr string, svc *services.CalendarService, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = bs.English
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 10 * time.Second
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 10 * time.Second
	}

	logger := opts.Logger.WithComponent(log.ComponentHTTP)
	s := &Server{
		svc:         svc,
		logger:      logger,
		defaultLang: opts.DefaultLanguage,
		detector:    security.NewDetector(logger),
		rateLimiter: ratelimit.NewLimiter(opts.RateLimit),
	}
	s.tracer = trace.NewMiddleware(logger, s.detector.ExtractClientIP)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.HandleFunc("GET /api/v1/today", s.handleToday)
	mux.HandleFunc("GET /api/v1/convert/ad-to-bs", s.handleADToBS)
	mux.HandleFunc("GET /api/v1/convert/bs-to-ad", s.handleBSToAD)
	mux.HandleFunc("GET /api/v1/months/{year}/{month}", s.handleMonth)
	mux.HandleFunc("GET /api/v1/numerals", s.handleNumerals)
	mux.HandleFunc("GET /api/v1/currency", s.handleCurrency)

	s.Server = http.Server{
		Addr:              addr,
		Handler:           s.chain(mux),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// chain wraps h so that tracing runs outermost and the request logger is
// attached last.
func (s *Server) chain(h http.Handler) http.Handler {
	h = log.RequestIDMiddleware(trace.RequestIDFromRequest)(h)
	h = log.Middleware(s.logger)(h)
	h = s.rateLimiter.Middleware(s.detector.ExtractClientIP, s.logger)(h)
	h = s.detector.Middleware(h)
	h = security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware(h)
	return s.tracer.Middleware(h)
}

// Metrics summarises request, rate limit and security counters.
type Metrics struct {
	Trace     trace.Metrics
	RateLimit ratelimit.Metrics
	Security  security.DetectionMetrics
}

// GetMetrics returns the server's middleware counters.
func (s *Server) GetMetrics() Metrics {
	return Metrics{
		Trace:     s.tracer.GetMetrics(),
		RateLimit: s.rateLimiter.GetMetrics(),
		Security:  s.detector.GetMetrics(),
	}
}

// Shutdown gracefully shuts down the server and cleanup routines
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.rateLimiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}
