package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerWithWriter("info", "json", &buf)
	log.With("component", "store").Info("dataset loaded", "chefs", 9)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	if entry["msg"] != "dataset loaded" {
		t.Errorf("msg = %v, want 'dataset loaded'", entry["msg"])
	}

	if entry["component"] != "store" {
		t.Errorf("component = %v, want store", entry["component"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerWithWriter("warn", "text", &buf)
	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message written at warn level")
	}

	if !strings.Contains(out, "shown") {
		t.Error("warn message missing")
	}

	log.SetLevel("debug")
	log.Debug("now visible")

	if !strings.Contains(buf.String(), "now visible") {
		t.Error("debug message missing after SetLevel")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
