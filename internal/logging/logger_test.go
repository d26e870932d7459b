package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		enabled bool
	}{
		{
			name: "valid config with file",
			config: Config{
				FilePath:   filepath.Join(t.TempDir(), "test.log"),
				Level:      slog.LevelInfo,
				Format:     FormatText,
				MaxSizeMB:  10,
				MaxBackups: 2,
			},
			enabled: true,
		},
		{
			name: "empty filepath creates noop logger",
			config: Config{
				FilePath: "",
				Level:    slog.LevelInfo,
				Format:   FormatText,
			},
			enabled: false,
		},
		{
			name: "json format",
			config: Config{
				FilePath:   filepath.Join(t.TempDir(), "test.log"),
				Level:      slog.LevelDebug,
				Format:     FormatJSON,
				MaxSizeMB:  10,
				MaxBackups: 2,
			},
			enabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Init(tt.config); err != nil {
				t.Fatalf("Init() error = %v", err)
			}
			defer Shutdown()

			logger := Get()
			if logger == nil {
				t.Fatal("Get() returned nil logger")
			}
			if logger.IsEnabled() != tt.enabled {
				t.Errorf("IsEnabled() = %v, want %v", logger.IsEnabled(), tt.enabled)
			}

			logger.Info("test message")
			logger.Debug("test debug")
			logger.Warn("test warning")
			logger.Error("test error")
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected LogFormat
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{"invalid", FormatText},
		{"", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseFormat(tt.input)
			if result != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestShutdownRestoresNoop(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")
	if err := Init(Config{FilePath: logFile, MaxSizeMB: 1}); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if !IsEnabled() {
		t.Fatal("IsEnabled() should be true after Init with a file")
	}

	if err := Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if IsEnabled() {
		t.Error("IsEnabled() should be false after Shutdown")
	}
	if Get() != Noop() {
		t.Error("Get() should return the noop logger after Shutdown")
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Config{Level: slog.LevelInfo, Format: FormatJSON}).
		With("component", "registry", "version", 1)

	logger.Info("configured", "preset", "clean")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "registry" || entry["preset"] != "clean" || entry["msg"] != "configured" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNoopWithStaysDisabled(t *testing.T) {
	if Noop().With("a", 1).IsEnabled() {
		t.Error("derived noop logger should be disabled")
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")
	err := Init(Config{
		FilePath:   logFile,
		Level:      slog.LevelDebug,
		Format:     FormatText,
		MaxSizeMB:  10,
		MaxBackups: 2,
	})
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	defer Shutdown()

	Debug("debug message", "key", "value")
	Info("info message", "key", "value")
	Warn("warn message", "key", "value")
	Error("error message", "key", "value")

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if len(content) == 0 {
		t.Error("Log file is empty, expected log messages")
	}
}
