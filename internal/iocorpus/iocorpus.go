// Package iocorpus loads corpus manifests from YAML files.
package iocorpus

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/parhelion/pkg/corpus"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a manifest. Relative paths in the manifest
// are resolved against the directory of the manifest file.
func Load(path string, logger *slog.Logger) (*corpus.Manifest, error) {
	if logger == nil {
		logger = slog.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ManifestError(path, err)
	}

	var res corpus.Manifest
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, ManifestError(path, err)
	}

	if err = res.Validate(); err != nil {
		return nil, ManifestError(path, err)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, ManifestError(path, err)
	}
	res.Resolve(dir)

	logger.Info("Loaded corpus manifest",
		"path", path,
		"documents", len(res.Documents),
		"models", len(res.Models),
	)
	return &res, nil
}
