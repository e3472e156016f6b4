package telemetry

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInfoWritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })

	Info("scan.complete", map[string]any{
		"asset_id": "asset-1",
		"score":    50,
	})
	Error("critique.persist_failed", map[string]any{
		"error": errors.New("boom"),
	})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["asset_id"] != "asset-1" {
		t.Fatalf("unexpected asset_id: %v", ctx["asset_id"])
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Fatalf("expected error level, got %s", entries[1].Level)
	}
	if entries[1].ContextMap()["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", entries[1].ContextMap()["error"])
	}
}

func TestNewFallsBackToInfo(t *testing.T) {
	l := New("bogus", "console")
	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug to be disabled for unknown level")
	}
	if !l.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info to be enabled")
	}
}
