package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates logger with console writer", func(t *testing.T) {
		cfg := Config{
			Level:   "info",
			NoColor: true,
		}

		logger := NewLogger(cfg)
		assert.NotNil(t, logger)
	})

	t.Run("creates logger with file writer", func(t *testing.T) {
		tmpDir := t.TempDir()
		logFile := filepath.Join(tmpDir, "test.log")

		cfg := Config{
			Level:   "info",
			LogFile: logFile,
			NoColor: true,
		}

		logger := NewLogger(cfg)
		assert.NotNil(t, logger)

		// Log something
		logger.Info().Msg("test")

		// Verify file was created
		_, err := os.Stat(logFile)
		assert.NoError(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"trace", "trace"},
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"invalid", "info"}, // defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, level, tt.want)
			}
		})
	}
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	logger.Info().Str("test", "value").Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected log output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, "test") {
		t.Errorf("expected log output to contain 'test' field, got: %s", output)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotNil(t, logger)
	logger.Error().Msg("dropped")
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	zerologLogger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	zerologLogger.Trace().Msg("trace message")
	zerologLogger.Debug().Msg("debug message")
	zerologLogger.Info().Msg("info message")
	zerologLogger.Warn().Msg("warn message")
	zerologLogger.Error().Msg("error message")

	output := buf.String()
	assert.NotContains(t, output, "trace message")
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}
