package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Handler is a slog.Handler for compact console output: a level prefix, the
// message, and any attributes formatted inline. Timestamps are omitted; this
// is a CLI, not a service.
type Handler struct {
	level  slog.Level
	mu     sync.Mutex
	output io.Writer
}

// NewHandler creates a new handler writing to output
func NewHandler(output io.Writer, level slog.Level) *Handler {
	return &Handler{
		level:  level,
		output: output,
	}
}

// Enabled returns whether the handler handles records at the given level
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle processes the Record and outputs a formatted log line
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var levelStr string
	switch {
	case r.Level >= slog.LevelError:
		levelStr = "[ERROR] "
	case r.Level >= slog.LevelWarn:
		levelStr = "[WARN] "
	case r.Level >= slog.LevelInfo:
		levelStr = "" // No prefix for INFO
	default:
		levelStr = "[DEBUG] "
	}

	formattedMsg := r.Message
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == slog.TimeKey {
			return true
		}
		formattedMsg += fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
		return true
	})

	fmt.Fprintf(h.output, "%s%s\n", levelStr, formattedMsg)
	return nil
}

// WithAttrs returns a new Handler with the given attributes
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	// For simplicity, we don't support WithAttrs
	return h
}

// WithGroup returns a new Handler with the given group name
func (h *Handler) WithGroup(name string) slog.Handler {
	// For simplicity, we don't support WithGroup
	return h
}
