package ratelimit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"bikram/internal/log"
)

// Limiter provides per-client token bucket rate limiting
type Limiter struct {
	mu           sync.Mutex
	clients      map[string]*clientInfo
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
	now          func() time.Time

	limit           rate.Limit
	burst           int
	cleanupInterval time.Duration
	idleTimeout     time.Duration

	hits     int64
	rejected int64
}

type clientInfo struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Config holds rate limiter configuration
type Config struct {
	RequestsPerMinute int
	Burst             int
	CleanupInterval   time.Duration
	IdleTimeout       time.Duration
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		RequestsPerMinute: 120,
		Burst:             20,
		CleanupInterval:   5 * time.Minute,
		IdleTimeout:       10 * time.Minute,
	}
}

// NewLimiter creates a new rate limiter and starts its cleanup loop
func NewLimiter(config Config) *Limiter {
	defaults := DefaultConfig()
	if config.RequestsPerMinute <= 0 {
		config.RequestsPerMinute = defaults.RequestsPerMinute
	}
	if config.Burst <= 0 {
		config.Burst = defaults.Burst
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = defaults.CleanupInterval
	}
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = defaults.IdleTimeout
	}

	rl := &Limiter{
		clients:         make(map[string]*clientInfo),
		stopCleanup:     make(chan struct{}),
		now:             time.Now,
		limit:           rate.Every(time.Minute / time.Duration(config.RequestsPerMinute)),
		burst:           config.Burst,
		cleanupInterval: config.CleanupInterval,
		idleTimeout:     config.IdleTimeout,
	}
	go rl.startCleanup()
	return rl
}

// Allow checks if a request from the given client should be allowed
func (rl *Limiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	now := rl.now()
	client, exists := rl.clients[clientIP]
	if !exists {
		client = &clientInfo{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[clientIP] = client
	}
	client.lastSeen = now
	rl.mu.Unlock()

	atomic.AddInt64(&rl.hits, 1)
	if client.limiter.AllowN(now, 1) {
		return true
	}
	atomic.AddInt64(&rl.rejected, 1)
	return false
}

// RetryAfter estimates how long clientIP has to wait for the next token
func (rl *Limiter) RetryAfter(clientIP string) time.Duration {
	rl.mu.Lock()
	client, exists := rl.clients[clientIP]
	rl.mu.Unlock()
	if !exists {
		return 0
	}
	now := rl.now()
	r := client.limiter.ReserveN(now, 1)
	defer r.CancelAt(now)
	return r.DelayFrom(now)
}

// Middleware rejects requests over the limit with 429 and a JSON error body.
func (rl *Limiter) Middleware(extractIP func(*http.Request) string, logger *log.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent(log.ComponentRateLimit)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := extractIP(r)
			if rl.Allow(clientIP) {
				next.ServeHTTP(w, r)
				return
			}

			logger.WarnContext(r.Context(), "Rate limit exceeded",
				log.FieldClientIP, clientIP,
				log.FieldPath, r.URL.Path)

			retry := int(rl.RetryAfter(clientIP).Round(time.Second) / time.Second)
			if retry < 1 {
				retry = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"})
		})
	}
}

// startCleanup runs periodic cleanup to remove stale client entries
func (rl *Limiter) startCleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupStaleEntries()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanupStaleEntries drops clients idle for longer than the idle timeout
func (rl *Limiter) cleanupStaleEntries() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.idleTimeout)
	removed := 0
	for ip, client := range rl.clients {
		if client.lastSeen.Before(cutoff) {
			delete(rl.clients, ip)
			removed++
		}
	}
	return removed
}

// ActiveClients returns the number of currently tracked clients
func (rl *Limiter) ActiveClients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Stop gracefully shuts down the rate limiter cleanup goroutine
func (rl *Limiter) Stop() {
	rl.shutdownOnce.Do(func() {
		close(rl.stopCleanup)
	})
}

// GetMetrics returns current rate limiting metrics
func (rl *Limiter) GetMetrics() Metrics {
	return Metrics{
		TotalHits:   atomic.LoadInt64(&rl.hits),
		Rejected:    atomic.LoadInt64(&rl.rejected),
		ClientCount: int64(rl.ActiveClients()),
	}
}

// Metrics for monitoring rate limit performance
type Metrics struct {
	TotalHits   int64
	Rejected    int64
	ClientCount int64
}
