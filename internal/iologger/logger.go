// Package iologger creates the slog logger of a run.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/parhelion/pkg/config"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "parhelion.log"

// Init creates a logger from the configuration, makes it the default
// slog logger and returns it. With the "file" destination logs go to
// logDir/parhelion.log, which is appended to or truncated depending on
// append.
func Init(logDir string, cfg config.LogConfig, append bool) (*slog.Logger, error) {
	var writer io.Writer

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if append {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		file, err := os.OpenFile(logPath, flags, 0644)
		if err != nil {
			return nil, CreateLogFileError(logPath, err)
		}
		writer = file
	default:
		writer = os.Stderr
	}

	res := slog.New(newHandler(writer, cfg))
	slog.SetDefault(res)
	return res, nil
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	switch cfg.Format {
	case "text", "tint":
		// tint is rendered as plain text
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
