package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(in))
		})
	}
}

func TestNewLoggerDebugFlag(t *testing.T) {
	t.Setenv("ALICENET_LOG_LEVEL", "error")

	quiet := NewLogger(&config.RuntimeConfig{})
	assert.False(t, quiet.Enabled(context.Background(), slog.LevelInfo))

	loud := NewLogger(&config.RuntimeConfig{Debug: true})
	assert.True(t, loud.Enabled(context.Background(), slog.LevelDebug))
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/deploy.go", shortPath("/home/u/src/factory-cli/internal/usecase/deploy.go"))
	assert.Equal(t, "deploy.go", shortPath("/elsewhere/deploy.go"))
}
