package common

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/lugondev/solcodec/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNewLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, config.LogConfig{Level: "warn", Format: "json"})

	logger.Info("hidden")
	logger.Warn("decode failed", "shape", "SwapEvent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if entry["shape"] != "SwapEvent" || entry["msg"] != "decode failed" {
		t.Errorf("unexpected entry %v", entry)
	}

	buf.Reset()
	NewLoggerTo(&buf, config.LogConfig{Level: "info"}).Info("ready", "programs", 7)
	if !strings.Contains(buf.String(), "programs=7") {
		t.Errorf("expected text output, got %q", buf.String())
	}
}

func TestLoggerMixin(t *testing.T) {
	var m LoggerMixin
	if m.GetLogger() != slog.Default() {
		t.Error("expected default logger")
	}
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	m.SetLogger(custom)
	m.SetLogger(nil)
	if m.GetLogger() != custom {
		t.Error("expected nil SetLogger to keep the custom logger")
	}
}
