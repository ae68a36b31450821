package logger

import (
	"bytes"
	"context"
	"testing"

	"golang.org/x/exp/slog"

	"postboard/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.expectedLevel <= slog.LevelInfo, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestSetupPrettySlog(t *testing.T) {
	logger := setupPrettySlog()
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
}

func TestNewWithLevel(t *testing.T) {
	ctx := context.Background()

	// Уровень из конфигурации перекрывает уровень окружения
	l := NewWithLevel(config.EnvDev, "warn")
	assert.False(t, l.Enabled(ctx, slog.LevelInfo))
	assert.True(t, l.Enabled(ctx, slog.LevelWarn))

	// Неразборчивый уровень - поведение как у New
	l = NewWithLevel(config.EnvProd, "loud")
	assert.False(t, l.Enabled(ctx, slog.LevelDebug))
	assert.True(t, l.Enabled(ctx, slog.LevelInfo))
}

func TestPrettyHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log.With(slog.String("component", "gateway")).
		WithGroup("req").
		Debug("sending request", slog.String("method", "GET"))

	out := buf.String()
	assert.Contains(t, out, "sending request")
	assert.Contains(t, out, `"component": "gateway"`)
	assert.Contains(t, out, `"req.method": "GET"`)
}

func TestErr(t *testing.T) {
	assert.Equal(t, "boom", Err(assertError("boom")).Value.String())
	assert.Equal(t, "", Err(nil).Value.String())
}

type assertError string

func (e assertError) Error() string { return string(e) }
