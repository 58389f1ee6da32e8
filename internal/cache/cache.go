package cache

import (
	"sync"
	"time"

	"bikram/internal/log"
)

// Cache defines a generic cache interface
type Cache[K comparable, V any] interface {
	// Get retrieves a value from the cache
	Get(key K) (V, bool)

	// Set stores a value in the cache
	Set(key K, value V)

	// Delete removes a key from the cache
	Delete(key K)

	// Size returns the current number of items in the cache
	Size() int
}

// Stats reports cache effectiveness
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
}

// Cleaner interface for caches that support cleanup
type Cleaner interface {
	CleanExpired() int
}

// Manager handles cache lifecycle and cleanup
type Manager struct {
	mu       sync.Mutex
	caches   map[string]Cleaner
	logger   *log.Logger
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewManager creates a new cache manager
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Discard()
	}
	return &Manager{
		caches: make(map[string]Cleaner),
		logger: logger.WithComponent(log.ComponentCache),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Register adds a named cache to the manager for cleanup
func (m *Manager) Register(name string, cache Cleaner) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.caches[name] = cache
}

// CleanAll runs one cleanup pass and returns the number of entries removed
func (m *Manager) CleanAll() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0
	for name, c := range m.caches {
		if n := c.CleanExpired(); n > 0 {
			m.logger.Debug("Cache cleanup completed",
				log.FieldOperation, log.OpCleanup,
				"cache", name,
				"entries_removed", n)
			total += n
		}
	}
	return total
}

// Run cleans all registered caches every interval until Stop is called.
// It blocks, so callers usually start it in its own goroutine.
func (m *Manager) Run(interval time.Duration) {
	defer close(m.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.CleanAll()
		case <-m.stop:
			return
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// Done is closed once Run has returned.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
