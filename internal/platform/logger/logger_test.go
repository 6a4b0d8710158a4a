package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewHonoursLevel(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		enabled   zapcore.Level
		disabled  zapcore.Level
		checkDown bool
	}{
		{name: "development debug", config: Config{Level: "debug", Environment: "development", ServiceName: "hypersomnia"}, enabled: zapcore.DebugLevel},
		{name: "production info", config: Config{Level: "info", Environment: "production"}, enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel, checkDown: true},
		{name: "invalid level falls back to info", config: Config{Level: "loud"}, enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel, checkDown: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.config)
			require.NoError(t, err)
			assert.True(t, l.zap.Core().Enabled(tt.enabled))
			if tt.checkDown {
				assert.False(t, l.zap.Core().Enabled(tt.disabled))
			}
		})
	}
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	core, observed := observer.New(zap.InfoLevel)
	l := FromZap(zap.New(core))

	l.Info("player created", zap.Int64("player_id", 7))
	require.Equal(t, 1, observed.Len())
	assert.Equal(t, int64(7), observed.All()[0].ContextMap()["player_id"])

	observed.TakeAll()
	l.Error("create player", errors.New("boom"))
	require.Equal(t, 1, observed.Len())
	assert.Equal(t, "boom", observed.All()[0].ContextMap()["error"])

	observed.TakeAll()
	l.Debug("hidden")
	assert.Equal(t, 0, observed.Len())

	l.With(zap.String("module", "progress")).Warn("slow write")
	require.Equal(t, 1, observed.Len())
	assert.Equal(t, "progress", observed.All()[0].ContextMap()["module"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(""))
}
