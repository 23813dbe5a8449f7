package iologger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/parhelion/pkg/config"
	"github.com/gnames/parhelion/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		res   slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, parseLevel(v.level), v.level)
	}
}

func TestInitFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	assert := assert.New(t)
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "debug", Destination: "file"}

	logger, err := Init(dir, cfg, false)
	require.NoError(t, err)
	logger.Info("first")
	logger.Debug("details")

	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(string(data), `"msg":"first"`)
	assert.Contains(string(data), `"msg":"details"`)

	logger, err = Init(dir, cfg, true)
	require.NoError(t, err)
	logger.Info("second")
	data, err = os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(string(data), "first")
	assert.Contains(string(data), "second")

	cfg.Format = "text"
	cfg.Level = "warn"
	logger, err = Init(dir, cfg, false)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	data, err = os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.NotContains(string(data), "first")
	assert.NotContains(string(data), "hidden")
	assert.Contains(string(data), "msg=shown")
}

func TestInitError(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	_, err := Init(filepath.Join(t.TempDir(), "none"), cfg, false)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}
