package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"", slog.LevelInfo, true},
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ParseLevel(%q) = %v, %v", tc.in, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseLevel(%q) expected error", tc.in)
		}
	}
}

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf, Level: slog.LevelDebug, Format: "json", Component: ComponentCalendar})

	logger.Info("converted", FieldBSDate, "2082-09-22")
	out := buf.String()
	if !strings.Contains(out, `"component":"calendar"`) {
		t.Fatalf("missing component: %s", out)
	}
	if !strings.Contains(out, `"bs_date":"2082-09-22"`) {
		t.Fatalf("missing field: %s", out)
	}
}

func TestStructuredLoggerError(t *testing.T) {
	var buf bytes.Buffer
	sl := NewStructuredLogger(New(Config{Output: &buf, Level: slog.LevelDebug}))

	sl.LogError(context.Background(), "conversion failed", errors.New("boom"), ComponentCalendar, OpBSToAD,
		NewFields().WithConversion("2082-13-01", ""))
	out := buf.String()
	for _, want := range []string{"component=calendar", "operation=bs_to_ad", "error=boom", "bs_date=2082-13-01"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %s", want, out)
		}
	}
}

func TestContextMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Output: &buf, Level: slog.LevelInfo})

	var got *Logger
	h := Middleware(base)(RequestIDMiddleware(func(*http.Request) string { return "req_1" })(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = FromContext(r.Context())
			got.Info("inside")
		})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got == nil {
		t.Fatal("logger not found in context")
	}
	if !strings.Contains(buf.String(), "request_id=req_1") {
		t.Fatalf("request id not attached: %s", buf.String())
	}
	if FromContext(context.Background()).Component() != "unknown" {
		t.Fatal("expected fallback logger")
	}
}
