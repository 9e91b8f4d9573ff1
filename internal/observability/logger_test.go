// File: internal/observability/logger_test.go
package observability

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/basedbeardjones-alt/SwagFliperino/internal/config"
)

// setupTestLogger initializes the global logger to write to a buffer.
func setupTestLogger(cfg config.LoggerConfig) *bytes.Buffer {
	buf := new(bytes.Buffer)
	Initialize(cfg, zapcore.AddSync(buf))
	return buf
}

func TestInitializeLogger(t *testing.T) {

	t.Run("should initialize console logger with colors", func(t *testing.T) {
		ResetForTest()

		cfg := config.LoggerConfig{
			Level:       "debug",
			Format:      "console",
			ServiceName: "swagfliperino",
			Colors: config.ColorConfig{
				Info: "green",
			},
		}

		buf := setupTestLogger(cfg)

		logger := GetLogger()
		logger.Info("This is a test message.")
		Sync()

		output := buf.String()
		assert.Contains(t, output, "INFO", "Output should contain the log level")
		assert.Contains(t, output, "This is a test message.", "Output should contain the message")
		assert.Contains(t, output, colorGreen, "Info level should be colorized green")
		assert.Contains(t, output, colorReset, "Output should contain the reset color code")
	})

	t.Run("should initialize json logger", func(t *testing.T) {
		ResetForTest()

		cfg := config.LoggerConfig{
			Level:       "info",
			Format:      "json",
			ServiceName: "swagfliperino",
		}

		buf := setupTestLogger(cfg)

		logger := GetLogger()
		logger.Warn("This is a JSON message.", zap.String("key", "value"))
		Sync()

		var logEntry map[string]interface{}
		err := json.Unmarshal(buf.Bytes(), &logEntry)
		require.NoError(t, err, "Log output should be valid JSON")

		assert.Equal(t, "WARN", logEntry["level"])
		assert.Equal(t, "swagfliperino", logEntry["logger"])
		assert.Equal(t, "This is a JSON message.", logEntry["msg"])
		assert.Equal(t, "value", logEntry["key"])
	})

	t.Run("should write to a log file if configured", func(t *testing.T) {
		ResetForTest()
		tmpFile, err := os.CreateTemp("", "logger-test-*.log")
		require.NoError(t, err)
		defer os.Remove(tmpFile.Name())

		cfg := config.LoggerConfig{
			Level:   "debug",
			Format:  "json",
			LogFile: tmpFile.Name(),
			MaxSize: 1,
		}
		// Initialize directly so nothing lands on the console.
		Initialize(cfg, zapcore.AddSync(io.Discard))

		logger := GetLogger()
		logger.Error("This message goes to the file.")
		Sync()

		data, err := os.ReadFile(tmpFile.Name())
		require.NoError(t, err)
		assert.Contains(t, string(data), "This message goes to the file.")
	})

	t.Run("should fall back to info on an invalid level", func(t *testing.T) {
		ResetForTest()

		cfg := config.LoggerConfig{
			Level:       "not-a-level",
			Format:      "console",
			ServiceName: "swagfliperino",
		}

		buf := setupTestLogger(cfg)

		logger := GetLogger()
		logger.Debug("This debug message should be dropped.")
		logger.Info("This info message should be kept.")
		Sync()

		output := buf.String()
		assert.NotContains(t, output, "This debug message should be dropped.")
		assert.Contains(t, output, "This info message should be kept.")
	})
}

func TestGetLoggerWithoutInitialization(t *testing.T) {
	ResetForTest()
	logger := GetLogger()
	require.NotNil(t, logger, "the fallback logger must never be nil")
}
