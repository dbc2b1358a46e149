package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// LogRecord is one captured log record
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// CaptureHandler records every log record for inspection in tests
type CaptureHandler struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewCaptureLogger returns a logger whose records can be inspected
func NewCaptureLogger() (*slog.Logger, *CaptureHandler) {
	handler := &CaptureHandler{}
	return slog.New(handler), handler
}

// Handle implements slog.Handler
func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, LogRecord{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	return nil
}

// Enabled implements slog.Handler; tests capture every level
func (h *CaptureHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler
func (h *CaptureHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler
func (h *CaptureHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Records returns a copy of the captured records
func (h *CaptureHandler) Records() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]LogRecord, len(h.records))
	copy(out, h.records)
	return out
}

// HasMessage reports whether any record carries the given message
func (h *CaptureHandler) HasMessage(msg string) bool {
	for _, r := range h.Records() {
		if r.Message == msg {
			return true
		}
	}
	return false
}
