// Package iofs prepares the file system locations used by parhelion.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/parhelion/pkg/config"
)

// ConfigYAML is the default content of config.yaml.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config, cache and log directories under homeDir
// if they do not exist yet.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := ensureDir(v); err != nil {
			return err
		}
	}
	return nil
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}
	if err = os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

// EnsureConfigFile writes the default config.yaml unless the user
// already has one.
func EnsureConfigFile(homeDir string) error {
	path := config.ConfigFilePath(homeDir)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	err := os.WriteFile(path, []byte(ConfigYAML), 0644)
	if err != nil {
		return CopyFileError(path, err)
	}
	return nil
}
