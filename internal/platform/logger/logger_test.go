// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williamjohngardner/items-api/internal/config"
	"github.com/williamjohngardner/items-api/internal/platform/logger"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantDebug bool
		wantInfo  bool
	}{
		{
			name:      "debug level enables debug",
			logLevel:  "debug",
			wantDebug: true,
			wantInfo:  true,
		},
		{
			name:      "info level suppresses debug",
			logLevel:  "info",
			wantDebug: false,
			wantInfo:  true,
		},
		{
			name:      "warn level suppresses info",
			logLevel:  "warn",
			wantDebug: false,
			wantInfo:  false,
		},
		{
			name:      "error level suppresses info",
			logLevel:  "error",
			wantDebug: false,
			wantInfo:  false,
		},
		{
			name:      "level parsing is case-insensitive",
			logLevel:  "DEBUG",
			wantDebug: true,
			wantInfo:  true,
		},
		{
			name:      "unknown level falls back to info",
			logLevel:  "extremely-verbose",
			wantDebug: false,
			wantInfo:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup replaces the process default logger; restore afterwards.
			original := slog.Default()
			defer slog.SetDefault(original)

			l, err := logger.Setup(config.ServerConfig{
				Env:      config.EnvDevelopment,
				LogLevel: tt.logLevel,
			})
			require.NoError(t, err)
			require.NotNil(t, l)

			ctx := context.Background()
			assert.Equal(t, tt.wantDebug, l.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.wantInfo, l.Enabled(ctx, slog.LevelInfo))
			assert.True(t, l.Enabled(ctx, slog.LevelError), "error level is always enabled")
		})
	}
}

func TestSetupSetsDefaultLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	l, err := logger.Setup(config.ServerConfig{
		Env:      config.EnvProduction,
		LogLevel: "info",
	})
	require.NoError(t, err)
	assert.Same(t, l, slog.Default(), "Setup must install the logger as the process default")
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	customLogger, _ := logger.GetTestLogger(t)

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil context returns default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context without logger returns default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context with logger returns context logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("valid logger round trips", func(t *testing.T) {
		customLogger, _ := logger.GetTestLogger(t)
		ctx := logger.WithLogger(context.Background(), customLogger)

		retrieved := logger.FromContext(ctx)
		assert.Equal(t, customLogger, retrieved)
	})

	t.Run("nil logger panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})

	t.Run("missing logger yields nil", func(t *testing.T) {
		assert.Nil(t, logger.FromContext(context.Background()))
	})
}
