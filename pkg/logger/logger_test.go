package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines; want 2:\n%s", len(lines), buf.String())
	}

	var entry struct {
		Level     string `json:"level"`
		Message   string `json:"message"`
		Component string `json:"component"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if entry.Level != "warn" || entry.Message != "warn 3" || entry.Component != "fhirmodel" {
		t.Errorf("entry = %+v; want warn/\"warn 3\"/fhirmodel", entry)
	}
}

func TestLogger_SetLevelAndDisable(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)

	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("Info() wrote at level error: %s", buf.String())
	}

	l.SetLevel(LevelDebug)
	if !l.Enabled(LevelDebug) {
		t.Error("Enabled(LevelDebug) = false after SetLevel(LevelDebug)")
	}
	l.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("Debug() output = %q; want it to contain the message", buf.String())
	}

	buf.Reset()
	l.SetLevel(LevelNone)
	l.Error("gone")
	if buf.Len() != 0 {
		t.Errorf("Error() wrote while disabled: %s", buf.String())
	}
}

func TestLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsole(&buf, LevelInfo)
	l.Info("validated %s", "Patient/1")

	out := buf.String()
	if !strings.Contains(out, "validated Patient/1") || !strings.Contains(out, "INF") {
		t.Errorf("console output = %q", out)
	}
	if strings.HasPrefix(out, "{") {
		t.Errorf("console output should not be JSON: %q", out)
	}
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	l := New(&first, LevelInfo)
	l.SetOutput(&second)
	l.Info("moved")
	if first.Len() != 0 || !strings.Contains(second.String(), "moved") {
		t.Errorf("SetOutput() did not redirect: first=%q second=%q", first.String(), second.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"off", LevelNone, false},
		{"loud", LevelNone, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if got != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	if prev.Level() != LevelWarn {
		t.Errorf("default level = %v; want WARN", prev.Level())
	}

	var buf bytes.Buffer
	SetDefault(New(&buf, LevelInfo))
	Info("package level %s", "info")
	if !strings.Contains(buf.String(), "package level info") {
		t.Errorf("Info() output = %q", buf.String())
	}
}
