package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/parhelion/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "parhelion"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "parhelion"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "parhelion", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "parhelion", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, ".", cfg.Ingest.ModelsDir)
	assert.False(t, cfg.Ingest.WithObservations)
	assert.True(t, cfg.Ingest.ShowProgress)
	assert.Empty(t, cfg.Ingest.ObservationsDB)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	assert.Equal(t, "xml", cfg.DataType)
	assert.Empty(t, cfg.HomeDir)
}

func TestOptionModelsDir(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid dir",
			input:    "/tmp/models",
			expected: "/tmp/models",
		},
		{
			name:     "trims whitespace",
			input:    "  models  ",
			expected: "models",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: ".",
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: ".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptModelsDir(tt.input)})
			assert.Equal(t, tt.expected, cfg.Ingest.ModelsDir)
		})
	}
}

func TestOptionDataType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"xml", "xml", "xml"},
		{"json is recognized", "json", "json"},
		{"csv is recognized", "csv", "csv"},
		{"normalizes case", " JSON ", "json"},
		{"rejects unknown", "yaml", "xml"},
		{"rejects empty", "", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDataType(tt.input)})
			assert.Equal(t, tt.expected, cfg.DataType)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"debug", "debug", "debug"},
		{"warn", "warn", "warn"},
		{"error", "error", "error"},
		{"normalizes case", "DEBUG", "debug"},
		{"rejects invalid", "verbose", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogFormatAndDestination(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptLogFormat("text"),
		config.OptLogDestination("stderr"),
	})
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Destination)

	cfg.Update([]config.Option{
		config.OptLogFormat("xml"),
		config.OptLogDestination("printer"),
	})
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Destination)
}

func TestOptionBools(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptWithObservations(true),
		config.OptShowProgress(false),
	})
	assert.True(t, cfg.Ingest.WithObservations)
	assert.False(t, cfg.Ingest.ShowProgress)
}

func TestMultipleOptions(t *testing.T) {
	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptModelsDir("first"),
			config.OptModelsDir("second"),
		})
		assert.Equal(t, "second", cfg.Ingest.ModelsDir)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptModelsDir("/data/models"),
			config.OptWithObservations(true),
			config.OptShowProgress(false),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
		})

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Ingest.ModelsDir, newCfg.Ingest.ModelsDir)
		assert.Equal(t, original.Ingest.WithObservations, newCfg.Ingest.WithObservations)
		assert.Equal(t, original.Ingest.ShowProgress, newCfg.Ingest.ShowProgress)
		assert.Equal(t, original.Log, newCfg.Log)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptDataType("csv"),
			config.OptObservationsDB("/tmp/obs.sqlite"),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.Equal(t, "xml", newCfg.DataType)
		assert.Equal(t, "", newCfg.Ingest.ObservationsDB)
	})
}
