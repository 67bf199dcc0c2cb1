package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/phrazzld/task-tracker-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault puts back the default logger replaced by setup.
func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetup(t *testing.T) {
	restoreDefault(t)

	l, err := Setup(config.ServerConfig{LogLevel: "info", Port: 8080})

	require.NoError(t, err)
	require.NotNil(t, l, "Setup should return the configured logger")
	assert.Same(t, l, slog.Default(), "Setup should install the logger as the default")
}

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		level       string
		wantDebug   bool
		wantInfo    bool
		wantWarning bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true, wantWarning: true},
		{level: "info", wantDebug: false, wantInfo: true, wantWarning: true},
		{level: "WARN", wantDebug: false, wantInfo: false, wantWarning: true},
		{level: "error", wantDebug: false, wantInfo: false, wantWarning: false},
		{level: "bogus", wantDebug: false, wantInfo: true, wantWarning: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			restoreDefault(t)

			var buf bytes.Buffer
			l := setup(config.ServerConfig{LogLevel: tt.level}, &buf)
			ctx := context.Background()

			assert.Equal(t, tt.wantDebug, l.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.wantInfo, l.Enabled(ctx, slog.LevelInfo))
			assert.Equal(t, tt.wantWarning, l.Enabled(ctx, slog.LevelWarn))
		})
	}
}

func TestSetupWritesJSON(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	l := setup(config.ServerConfig{LogLevel: "info"}, &buf)
	l.Info("task created", "task_id", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output should be valid JSON")
	assert.Equal(t, "task created", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.EqualValues(t, 42, entry["task_id"])
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	custom := slog.New(slog.NewJSONHandler(&buf, nil))
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	ctx := WithLogger(context.Background(), custom)

	assert.Same(t, custom, FromContext(ctx))
	assert.Same(t, custom, FromContextOrDefault(ctx, fallback))
	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
