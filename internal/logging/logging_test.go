package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected LogLevel
	}{
		{name: "Debug", value: "debug", expected: LevelDebug},
		{name: "Info", value: "info", expected: LevelInfo},
		{name: "Warn", value: "warn", expected: LevelWarn},
		{name: "Error", value: "error", expected: LevelError},
		{name: "Case insensitive", value: "DEBUG", expected: LevelDebug},
		{name: "Warning alias", value: "warning", expected: LevelWarn},
		{name: "Surrounding whitespace", value: "  error ", expected: LevelError},
		{name: "Empty defaults to info", value: "", expected: LevelInfo},
		{name: "Unknown defaults to info", value: "verbose", expected: LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.value); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestLogLevelConstants(t *testing.T) {
	levels := []LogLevel{LevelDebug, LevelInfo, LevelWarn, LevelError}
	for i := 0; i < len(levels)-1; i++ {
		if levels[i] >= levels[i+1] {
			t.Errorf("Log levels should be in ascending order: %v >= %v", levels[i], levels[i+1])
		}
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LogLevel(99), "unknown(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("LogLevel.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		expected Format
	}{
		{name: "Buffer defaults to JSON", env: "", expected: FormatJSON},
		{name: "Forced text", env: "text", expected: FormatText},
		{name: "Forced JSON", env: "JSON", expected: FormatJSON},
		{name: "Unknown value falls back to detection", env: "xml", expected: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_FORMAT", tt.env)
			if got := DetectFormat(&bytes.Buffer{}); got != tt.expected {
				t.Errorf("DetectFormat() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTextOutput(t *testing.T) {
	t.Setenv("LOG_FORMAT", "text")

	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}) })

	Error("wrote %d items", 3)

	if !strings.Contains(buf.String(), "[ERROR] wrote 3 items") {
		t.Errorf("Expected text log line, got %q", buf.String())
	}
}

func TestJSONOutput(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}) })

	Error("cannot open %s", "list.m3u")

	var record map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record); err != nil {
		t.Fatalf("Expected a JSON log line, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "cannot open list.m3u" {
		t.Errorf("Expected msg=%q, got %v", "cannot open list.m3u", record["msg"])
	}
	if record["level"] != "ERROR" {
		t.Errorf("Expected level=ERROR, got %v", record["level"])
	}
}

// TestLoggingFunctions tests that logging functions don't panic
func TestLoggingFunctions(t *testing.T) {
	SetOutput(&bytes.Buffer{})

	tests := []struct {
		name string
		fn   func()
	}{
		{name: "Debug doesn't panic", fn: func() { Debug("test message") }},
		{name: "Info doesn't panic", fn: func() { Info("test message") }},
		{name: "Warn doesn't panic", fn: func() { Warn("test message") }},
		{name: "Error doesn't panic", fn: func() { Error("test message") }},
		{name: "Debug with args doesn't panic", fn: func() { Debug("test %s %d", "message", 123) }},
		{name: "Info with args doesn't panic", fn: func() { Info("test %s %d", "message", 123) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Function panicked: %v", r)
				}
			}()
			tt.fn()
		})
	}
}
