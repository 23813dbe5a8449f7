package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptModelsDir sets the directory where model files are written.
func OptModelsDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Models Directory", s) {
			c.Ingest.ModelsDir = s
		}
	}
}

// OptWithObservations sets whether the raw observation log is written
// together with models.
func OptWithObservations(b bool) Option {
	return func(c *Config) {
		c.Ingest.WithObservations = b
	}
}

// OptShowProgress enables or disables the progress bar.
func OptShowProgress(b bool) Option {
	return func(c *Config) {
		c.Ingest.ShowProgress = b
	}
}

// OptObservationsDB sets a path to the SQLite file for observations export.
// Runtime-only field - not in ToOptions().
func OptObservationsDB(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Observations DB", s) {
			c.Ingest.ObservationsDB = s
		}
	}
}

// OptDataType sets the type of documents to read.
// Valid values: "xml", "json", "csv".
// Runtime-only field - not in ToOptions().
func OptDataType(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("DataType", s) {
			c.DataType = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
