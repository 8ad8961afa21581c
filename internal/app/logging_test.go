package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/dshills/vimotion/internal/config"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, got, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"Info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"WARNING", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo}, // Default
		{"", LogLevelInfo},        // Default
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf, Prefix: "vimotion"})

	logger.Info("moved to %d:%d", 2, 5)

	line := buf.String()
	if !strings.Contains(line, "[INFO] vimotion: moved to 2:5") {
		t.Errorf("unexpected log line %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("log line should end with a newline")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	out := buf.String()
	for _, msg := range []string{"[DEBUG]", "[INFO]"} {
		if strings.Contains(out, msg) {
			t.Errorf("%s should be filtered", msg)
		}
	}
	for _, msg := range []string{"[WARN] warn", "[ERROR] error"} {
		if !strings.Contains(out, msg) {
			t.Errorf("output should contain %s", msg)
		}
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(LoggerConfig{Output: &buf})

	logger := base.WithField("session", "abc").
		WithComponent("engine").
		WithFields(map[string]any{"row": 3})
	logger.Info("hello")

	if got := buf.String(); !strings.Contains(got, "hello {component=engine, row=3, session=abc}") {
		t.Errorf("fields not sorted or missing: %q", got)
	}

	buf.Reset()
	base.Info("plain")
	if strings.Contains(buf.String(), "{") {
		t.Error("derived fields should not leak into the parent logger")
	}
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(LoggerConfig{Output: &buf})

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := base.WithField("worker", i)
			for range 50 {
				l.Info("tick")
			}
		}()
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 400 {
		t.Errorf("got %d lines, want 400", got)
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Error("dropped")
	NullLogger.WithComponent("x").Info("dropped")

	if NullLogger.Enabled(LogLevelError) {
		t.Error("NullLogger should be disabled")
	}
}

func TestOpenLogger(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vimotion.log")
		logger, closer, err := OpenLogger(config.LogConfig{Level: "debug", File: path}, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("OpenLogger() error = %v", err)
		}
		logger.Debug("to file")
		if err := closer.Close(); err != nil {
			t.Fatal(err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "[DEBUG] vimotion: to file") {
			t.Errorf("log file = %q", data)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closer, err := OpenLogger(config.LogConfig{Level: "warn"}, &buf)
		if err != nil {
			t.Fatalf("OpenLogger() error = %v", err)
		}
		defer closer.Close()

		logger.Info("hidden")
		logger.Warn("shown")
		if got := buf.String(); strings.Contains(got, "hidden") || !strings.Contains(got, "shown") {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		logger, closer, err := OpenLogger(config.LogConfig{Level: "debug"}, nil)
		if err != nil {
			t.Fatalf("OpenLogger() error = %v", err)
		}
		defer closer.Close()

		if logger.Enabled(LogLevelError) {
			t.Error("logger without output should be disabled")
		}
	})

	t.Run("bad path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "vimotion.log")
		if _, _, err := OpenLogger(config.LogConfig{File: path}, nil); err == nil {
			t.Error("OpenLogger() should fail for an unwritable path")
		}
	})
}
