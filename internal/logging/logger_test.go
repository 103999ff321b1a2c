package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger = NewComponentLogger(logger, "pipeline")
	logger.Info("run complete", Args(Int("words", 148), Float64("duration", 1.5))...)

	out := buf.String()
	if !strings.Contains(out, "INFO pipeline: run complete") {
		t.Errorf("missing prefix in %q", out)
	}
	if !strings.Contains(out, "words=148") || !strings.Contains(out, "duration=1.5") {
		t.Errorf("missing attrs in %q", out)
	}
}

func TestConsoleHandlerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("write", Args(String("path", "/tmp/two words.json"))...)
	if !strings.Contains(buf.String(), `path="/tmp/two words.json"`) {
		t.Errorf("value with spaces should be quoted, got %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("warn line should pass")
	}
}

func TestJSONHandlerShape(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("aligning", Args(String("audio", "song.mp3"))...)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if record["msg"] != "aligning" {
		t.Errorf("msg = %v", record["msg"])
	}
	if record["level"] != "debug" {
		t.Errorf("level = %v", record["level"])
	}
	if record["audio"] != "song.mp3" {
		t.Errorf("audio = %v", record["audio"])
	}
	if _, ok := record["ts"]; !ok {
		t.Error("missing ts field")
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("no-op logger must be disabled at every level")
	}
}
