package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edustat/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestRunIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RunIDFromContext(ctx))

	id := NewRunID()
	require.NotEmpty(t, id)
	ctx = WithRunID(ctx, id)
	assert.Equal(t, id, RunIDFromContext(ctx))
}

func TestRunIDHandlerInjectsRunID(t *testing.T) {
	var buf bytes.Buffer
	handler := &runIDHandler{Handler: slog.NewJSONHandler(&buf, nil)}
	logger := slog.New(handler)

	ctx := WithRunID(context.Background(), "run-123")
	logger.InfoContext(ctx, "stage complete", "rows", 42)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "run-123", record["run_id"])
	assert.Equal(t, "stage complete", record["msg"])
}

func TestInitializeLoggerFileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "edustat.log")
	logger, err := InitializeLogger(config.LoggingConfig{
		Level:    "debug",
		Format:   "json",
		Output:   "file",
		FilePath: logPath,
	})
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("hello")
	assert.FileExists(t, logPath)
}
