package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
)

func TestNewJSONTo_WritesKeyValueFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONTo(LevelInfo, &buf)
	logger.Info("fetch attempt failed", "url", "https://example.test", "attempt", 2, "error", errors.New("status 500"), "backoff", 2*time.Second)
	logger.Debug("dropped below level")

	out := buf.String()
	if !strings.Contains(out, `"msg":"fetch attempt failed"`) {
		t.Fatalf("expected message in output, got %s", out)
	}
	if !strings.Contains(out, `"attempt":2`) || !strings.Contains(out, `"error":"status 500"`) || !strings.Contains(out, `"backoff":"2s"`) {
		t.Fatalf("expected fields in output, got %s", out)
	}
	if strings.Contains(out, "dropped below level") {
		t.Fatalf("debug line should be filtered at info level")
	}
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	t.Parallel()

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	var buf bytes.Buffer
	NewJSONTo(LevelDebug, &buf).With("dataset", "defense_rankings").WarnContext(ctx, "record rejected", "key", "2024/")

	out := buf.String()
	for _, want := range []string{`"trace_id":"4bf92f3577b34da6a3ce929d0e0e4736"`, `"span_id":"00f067aa0ba902b7"`, `"dataset":"defense_rankings"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output, got %s", want, out)
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		"WARN":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q)=%s want %s", raw, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("no panic on nil receiver")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync on nil logger: %v", err)
	}
}
