package trace

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bikram/internal/log"
)

func TestMiddlewareAssignsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.Config{Level: slog.LevelDebug, Format: "json", Output: &buf})
	m := NewMiddleware(logger, func(*http.Request) string { return "198.51.100.9" })

	var seen string
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/today", nil))

	if !strings.HasPrefix(seen, "req_") {
		t.Fatalf("expected request ID in context, got %q", seen)
	}
	if got := rr.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("response header %q does not match context ID %q", got, seen)
	}
	if !strings.Contains(buf.String(), `"status_code":418`) {
		t.Fatalf("expected first status to be logged, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"client_ip":"198.51.100.9"`) {
		t.Fatalf("expected client ip in log, got %s", buf.String())
	}
	if got := m.GetMetrics().TotalRequests; got != 1 {
		t.Fatalf("TotalRequests = %d, want 1", got)
	}
}

func TestGenerateRequestIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateRequestID()
		if seen[id] {
			t.Fatalf("duplicate request ID %s", id)
		}
		seen[id] = true
	}
}
