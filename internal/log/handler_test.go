package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerLevelPrefixes(t *testing.T) {
	var buf bytes.Buffer
	handler := NewHandler(&buf, slog.LevelDebug)
	logger := slog.New(handler)

	logger.Error("broken")
	logger.Warn("odd")
	logger.Info("plain")
	logger.Debug("noisy")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "[ERROR] broken" {
		t.Errorf("Expected error prefix, got %q", lines[0])
	}
	if lines[1] != "[WARN] odd" {
		t.Errorf("Expected warn prefix, got %q", lines[1])
	}
	if lines[2] != "plain" {
		t.Errorf("Expected bare info line, got %q", lines[2])
	}
	if lines[3] != "[DEBUG] noisy" {
		t.Errorf("Expected debug prefix, got %q", lines[3])
	}
}

func TestHandlerInlinesAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := NewHandler(&buf, slog.LevelInfo)
	logger := slog.New(handler)

	logger.Info("building", slog.String("preset", "dbg"))
	if got := strings.TrimSpace(buf.String()); got != "building preset=dbg" {
		t.Errorf("Expected inline attribute, got %q", got)
	}
}

func TestHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := NewHandler(&buf, slog.LevelWarn)

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Expected info to be disabled at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("Expected error to be enabled at warn level")
	}
}
