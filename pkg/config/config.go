// Package config provides configuration management for Parhelion.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Ingest: models_dir, with_observations, show_progress
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Ingest.ObservationsDB (per-command)
//   - DataType (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use PARHELION_ prefix with underscores for nesting:
//
//	PARHELION_INGEST_MODELS_DIR=./models
//	PARHELION_INGEST_WITH_OBSERVATIONS=true
//	PARHELION_LOG_LEVEL=debug
package config

// Config represents the complete Parhelion configuration.
type Config struct {
	// Ingest contains settings for reading documents and writing models.
	Ingest IngestConfig `mapstructure:"ingest" yaml:"ingest"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// DataType selects the kind of documents to read. Only "xml" is
	// implemented, "json" and "csv" are recognized but rejected by the CLI.
	DataType string

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// IngestConfig contains settings for the ingestion of documents.
type IngestConfig struct {
	// ModelsDir is the directory where model files are written.
	ModelsDir string `mapstructure:"models_dir" yaml:"models_dir"`

	// WithObservations adds the raw observation log to written model files.
	// The log is large and is not needed to update a model later.
	WithObservations bool `mapstructure:"with_observations" yaml:"with_observations"`

	// ShowProgress enables a progress bar while documents are read.
	ShowProgress bool `mapstructure:"show_progress" yaml:"show_progress"`

	// ObservationsDB is a path to a SQLite file. When set, raw observations
	// are exported there after models are written.
	ObservationsDB string `mapstructure:"observations_db" yaml:"observations_db"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Ingest: IngestConfig{
			ModelsDir:    ".",
			ShowProgress: true,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		DataType: "xml",
	}

	return res
}
