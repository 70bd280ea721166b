package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWriter_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := Component(NewWriter(&buf, zerolog.InfoLevel), "state")
	log.Info().Str("key", "pigcat_entries").Msg("loaded")
	log.Debug().Msg("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (debug filtered): %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("record not JSON: %v", err)
	}
	for field, want := range map[string]string{
		"service":   "pigcat",
		"component": "state",
		"level":     "info",
		"message":   "loaded",
		"key":       "pigcat_entries",
	} {
		if rec[field] != want {
			t.Errorf("%s = %v, want %q", field, rec[field], want)
		}
	}
	if _, ok := rec["time"]; !ok {
		t.Errorf("record missing time")
	}
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pigcat.log")
	log, closer, err := New(Options{Path: path, Level: "warn"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info().Msg("skip me")
	log.Warn().Err(errors.New("boom")).Msg("kept")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "skip me") || !strings.Contains(string(data), "kept") {
		t.Fatalf("unexpected log contents: %s", data)
	}
}

func TestNew_DebugOverridesLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pigcat.log")
	log, closer, err := New(Options{Path: path, Level: "error", Debug: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closer.Close()
	if log.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("level = %v, want debug", log.GetLevel())
	}
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	log, closer, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if log.GetLevel() != zerolog.Disabled {
		t.Fatalf("level = %v, want disabled", log.GetLevel())
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, _, err := New(Options{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"}); err == nil {
		t.Fatalf("New returned nil error for invalid level")
	}
}

func TestNewWriter_ErrorStack(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, zerolog.InfoLevel)
	log.Error().Stack().Err(errors.New("disk full")).Msg("save entry failed")

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("record not JSON: %v\n%s", err, buf.String())
	}
	if rec["error"] != "disk full" {
		t.Fatalf("error = %v, want disk full", rec["error"])
	}
	frames, ok := rec["stack"].([]any)
	if !ok || len(frames) == 0 {
		t.Fatalf("stack = %v, want frames", rec["stack"])
	}
}
