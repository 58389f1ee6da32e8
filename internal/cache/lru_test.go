package cache

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"bikram/internal/log"
)

func TestLRUCacheEviction(t *testing.T) {
	c := NewLRUCache[int, string](2, time.Hour)
	c.Set(1, "a")
	c.Set(2, "b")

	// Touch 1 so that 2 becomes the oldest
	if _, ok := c.Get(1); !ok {
		t.Fatal("expected hit for 1")
	}
	c.Set(3, "c")

	if _, ok := c.Get(2); ok {
		t.Fatal("expected 2 to be evicted")
	}
	if v, ok := c.Get(3); !ok || v != "c" {
		t.Fatalf("expected c, got %q %v", v, ok)
	}

	s := c.Stats()
	if s.Evictions != 1 || s.Hits != 2 || s.Misses != 1 || s.Size != 2 {
		t.Fatalf("unexpected stats %+v", s)
	}
}

func TestLRUCacheTTL(t *testing.T) {
	now := time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC)
	c := NewLRUCache[string, int](10, time.Minute)
	c.now = func() time.Time { return now }

	c.Set("a", 1)
	c.Set("b", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("expected fresh hit, got %d %v", v, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected expired entry to miss")
	}
	if n := c.CleanExpired(); n != 1 {
		t.Fatalf("expected 1 cleaned entry, got %d", n)
	}
	if c.Size() != 0 {
		t.Fatalf("expected empty cache, got %d", c.Size())
	}
}

func TestLRUCacheNoTTL(t *testing.T) {
	c := NewLRUCache[string, int](10, 0)
	c.now = func() time.Time { return time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC) }
	c.Set("a", 1)
	if _, ok := c.Get("a"); !ok {
		t.Fatal("entries without TTL must not expire")
	}
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected deleted entry to miss")
	}
}

func TestLRUCacheConcurrentAccess(t *testing.T) {
	c := NewLRUCache[int, int](64, time.Minute)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				c.Set(i%100, g)
				c.Get((i + g) % 100)
			}
		}(g)
	}
	wg.Wait()
	if c.Size() > 64 {
		t.Fatalf("cache grew beyond max size: %d", c.Size())
	}
}

func TestManagerStop(t *testing.T) {
	m := NewManager(nil)
	c := NewLRUCache[int, int](4, time.Nanosecond)
	m.Register("test", c)
	c.Set(1, 1)
	time.Sleep(time.Millisecond)

	if n := m.CleanAll(); n != 1 {
		t.Fatalf("expected 1 cleaned entry, got %d", n)
	}

	go m.Run(time.Hour)
	m.Stop()
	m.Stop()
	select {
	case <-m.Done():
	case <-time.After(time.Second):
		t.Fatal("manager did not stop")
	}
}

func TestManagerLogsCleanup(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(log.New(log.Config{Level: slog.LevelDebug, Format: "json", Output: &buf}))
	c := NewLRUCache[string, int](4, time.Nanosecond)
	m.Register("months", c)
	c.Set("a", 1)
	time.Sleep(time.Millisecond)

	if n := m.CleanAll(); n != 1 {
		t.Fatalf("expected 1 cleaned entry, got %d", n)
	}
	out := buf.String()
	if !strings.Contains(out, `"operation":"cleanup"`) || !strings.Contains(out, `"cache":"months"`) {
		t.Fatalf("cleanup log missing fields: %s", out)
	}
}
