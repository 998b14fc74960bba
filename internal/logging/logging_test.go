package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	saved := log.Logger
	t.Cleanup(func() { log.Logger = saved })
}

func TestSetup_QuietByDefault(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	Setup(&buf, false)

	log.Debug().Msg("debug-line")
	log.Info().Msg("info-line")
	log.Warn().Msg("warn-line")

	out := buf.String()
	if strings.Contains(out, "debug-line") || strings.Contains(out, "info-line") {
		t.Errorf("non-verbose logger wrote debug/info output: %q", out)
	}
	if !strings.Contains(out, "warn-line") {
		t.Errorf("non-verbose logger dropped a warning: %q", out)
	}
}

func TestSetup_Verbose(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	Setup(&buf, true)

	log.Debug().Str("city", "Makkah").Msg("debug-line")

	out := buf.String()
	if !strings.Contains(out, "debug-line") {
		t.Errorf("verbose logger dropped debug output: %q", out)
	}
	if !strings.Contains(out, "Makkah") {
		t.Errorf("verbose logger dropped field value: %q", out)
	}
	// Buffers are not terminals, so no escape sequences.
	if strings.Contains(out, "\033[") {
		t.Errorf("console output contains ANSI codes: %q", out)
	}
}

func TestSetupJSON(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	if err := SetupJSON(&buf, "info"); err != nil {
		t.Fatalf("SetupJSON() error = %v", err)
	}

	log.Debug().Msg("hidden")
	log.Info().Str("route", "/healthz").Msg("served")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["level"] != "info" || entry["message"] != "served" || entry["route"] != "/healthz" {
		t.Errorf("unexpected entry %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Errorf("entry has no timestamp: %v", entry)
	}
}

func TestSetupJSON_EmptyLevelDefaultsToInfo(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	if err := SetupJSON(&buf, ""); err != nil {
		t.Fatalf("SetupJSON(\"\") error = %v", err)
	}
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestSetupJSON_InvalidLevel(t *testing.T) {
	restoreLogger(t)

	if err := SetupJSON(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("SetupJSON(\"loud\") should fail")
	}
}
