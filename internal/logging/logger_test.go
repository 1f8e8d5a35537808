package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bigram/internal/config"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.With("component", "analyze").Info("starting bigram pass", "file", "input.txt")

	line := buf.String()
	for _, want := range []string{"INFO", "analyze: starting bigram pass", "file=input.txt"} {
		if !strings.Contains(line, want) {
			t.Errorf("console line %q missing %q", line, want)
		}
	}
}

func TestNewConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Debug("line tokenized", "line", 3, "tokens", 9)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("json output does not parse: %v (%q)", err, buf.String())
	}
	if record["msg"] != "line tokenized" {
		t.Errorf("msg = %v, want line tokenized", record["msg"])
	}
	if record["level"] != "debug" {
		t.Errorf("level = %v, want debug", record["level"])
	}
	if _, ok := record["ts"]; !ok {
		t.Error("ts field missing")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("New accepted unknown format")
	}
}

func TestNewAppendsToLogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "bigram.log")

	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Writer: &buf, FilePath: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("persisted")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "persisted") {
		t.Errorf("log file %q missing record", string(data))
	}
	if !strings.Contains(buf.String(), "persisted") {
		t.Error("writer did not also receive the record")
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	logger, err := NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if logger == nil {
		t.Fatal("NewFromConfig returned nil logger")
	}

	if logger, err = NewFromConfig(nil); err != nil || logger == nil {
		t.Fatalf("NewFromConfig(nil) = (%v, %v)", logger, err)
	}
}
