package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/riskstream-systems/riskstream-stack/common/middleware"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewReturnsLogger(t *testing.T) {
	for _, format := range []string{"json", "text", ""} {
		if l := New(slog.LevelInfo, format); l == nil || l.Logger == nil {
			t.Fatalf("New returned nil logger for format %q", format)
		}
	}
}

type capturedRecord struct {
	msg   string
	attrs map[string]string
}

// captureHandler records emitted log lines, folding in attrs attached via
// Logger.With so request_id propagation is observable.
type captureHandler struct {
	attrs   []slog.Attr
	records *[]capturedRecord
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]string)
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})
	*h.records = append(*h.records, capturedRecord{msg: r.Message, attrs: attrs})
	return nil
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &captureHandler{attrs: merged, records: h.records}
}

func (h *captureHandler) WithGroup(string) slog.Handler { return h }

func TestContextHelpersCarryRequestID(t *testing.T) {
	var records []capturedRecord
	l := &Logger{Logger: slog.New(&captureHandler{records: &records})}

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-123")
	l.ErrorContext(ctx, "write failed")
	l.InfoContext(ctx, "accepted")
	l.ErrorContext(context.Background(), "no request scope")

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 0; i < 2; i++ {
		if got := records[i].attrs["request_id"]; got != "req-123" {
			t.Errorf("record %d: request_id = %q, want req-123", i, got)
		}
	}
	if _, ok := records[2].attrs["request_id"]; ok {
		t.Error("record without request scope should not carry request_id")
	}
}
