package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/zenerp/backend/internal/infrastructure/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
	}{
		{"console format", config.LogConfig{Level: "debug", Format: "console", Output: "stdout"}},
		{"json format", config.LogConfig{Level: "info", Format: "json", Output: "stderr"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, log)
			log.Info("test message")
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}
