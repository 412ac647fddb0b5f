package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/remla25-team8/model-service/internal/infrastructure/config"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates logger with JSON format", func(t *testing.T) {
		logger, err := NewLogger(&config.LogConfig{Level: "info", Format: "json"})

		assert.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("creates logger with console format", func(t *testing.T) {
		logger, err := NewLogger(&config.LogConfig{Level: "debug", Format: "console"})

		assert.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("attaches service fields to every entry", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&config.LogConfig{Level: "info", Format: "json"}, &buf,
			zap.String("service", "restaurant-sentiment"))

		logger.Info("started")
		require.NoError(t, logger.Sync())

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "started", entry["message"])
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "restaurant-sentiment", entry["service"])
		assert.Contains(t, entry, "timestamp")
	})

	t.Run("filters entries below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&config.LogConfig{Level: "warn", Format: "json"}, &buf)

		logger.Info("dropped")
		logger.Warn("kept")
		require.NoError(t, logger.Sync())

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"invalid", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.name))
		})
	}
}
