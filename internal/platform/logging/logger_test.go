package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_KeyValueFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	logger.Warn("point mismatch", "entry_id", int64(42), "period", 3, "error", errors.New("boom"), "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("unexpected entry count: got=%d want=1", len(entries))
	}
	fields := entries[0].ContextMap()
	if got := fields["entry_id"]; got != int64(42) {
		t.Fatalf("unexpected entry_id: got=%v", got)
	}
	if got := fields["error"]; got != "boom" {
		t.Fatalf("unexpected error field: got=%v", got)
	}
	if _, ok := fields["dangling"]; !ok {
		t.Fatalf("expected dangling key to be kept with nil value")
	}
}

func TestLogger_WithCarriesFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(LevelInfo)
	logger := FromZap(zap.New(core)).With("run_id", "r-1")
	logger.Info("run started")
	logger.Debug("filtered out")

	if logs.Len() != 1 {
		t.Fatalf("unexpected entry count: got=%d want=1", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["run_id"]; got != "r-1" {
		t.Fatalf("unexpected run_id: got=%v", got)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q): got=%s want=%s", raw, got, want)
		}
	}
}

func TestNewConsole_WritesToWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsole(LevelInfo, &buf)
	logger.Info("extraction finished", "league_id", 314)
	_ = logger.Sync()

	if !strings.Contains(buf.String(), "extraction finished") {
		t.Fatalf("expected message in console output, got %q", buf.String())
	}
}

func TestLogger_LogAddsTraceFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(LevelInfo)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.WarnContext(ctx, "late picks", "entry_id", int64(7))
	logger.Log(context.Background(), LevelInfo, "no context")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("unexpected entry count: got=%d want=2", len(entries))
	}
	if got := entries[0].ContextMap()["trace_id"]; got != traceID.String() {
		t.Fatalf("unexpected trace_id: got=%v want=%s", got, traceID)
	}
	if _, ok := entries[1].ContextMap()["trace_id"]; ok {
		t.Fatalf("did not expect trace_id without a span")
	}
}
