/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/parhelion/internal/iofs"
	"github.com/gnames/parhelion/internal/iologger"
	app "github.com/gnames/parhelion/pkg"
	"github.com/gnames/parhelion/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfgFile string
	opts    []config.Option
	cfg     *config.Config
	logger  *slog.Logger
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "parhelion",
		Short:   "Parhelion infers schema models from XML documents",
		Long: `Parhelion walks a corpus of XML documents and records which elements,
attributes and parent/child relations occur, and what kind of values they
hold. The result is saved as a versioned model file per root tag
(<name>.v<version>.parmodel.json).

Commands:
  - create: build new models from documents
  - update: merge documents into existing models
  - generate: generate documents from models (not implemented yet)

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (PARHELION_*)
  3. Config file (~/.config/parhelion/config.yaml)
  4. Built-in defaults

Environment Variables:
  PARHELION_INGEST_MODELS_DIR         Directory for model files
  PARHELION_INGEST_WITH_OBSERVATIONS  Save raw observations in models
  PARHELION_INGEST_SHOW_PROGRESS      Show progress bar
  PARHELION_LOG_LEVEL                 Log level (debug/info/warn/error)
  PARHELION_LOG_FORMAT                Log format (json/text/tint)
  PARHELION_LOG_DESTINATION           Log destination (file/stderr/stdout)`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "parhelion version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.config/parhelion/config.yaml)")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for parhelion")

	rootCmd.AddCommand(getCreateCmd())
	rootCmd.AddCommand(getUpdateCmd())
	rootCmd.AddCommand(getGenerateCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Logging with defaults until the user's config is read.
	defaultLog := config.New().Log
	if logger, err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfgPath := cfgFile
	if cfgPath == "" {
		cfgPath = config.ConfigFilePath(homeDir)
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(cfgPath); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// The default log was truncated above, later output is appended.
	logDir := config.LogDir(cfg.HomeDir)
	if logger, err = iologger.Init(logDir, cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	logger.Info("Configuration loaded", "config_file", cfgPath)
	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(cfgPath string) (*config.Config, error) {
	var err error
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, ReadConfigError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, ReadConfigError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Variables are bound explicitly to keep the list of allowed ones
	// visible. They match the fields of config.ToOptions().
	v.SetEnvPrefix("PARHELION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Ingest configuration
	v.BindEnv("ingest.models_dir", "PARHELION_INGEST_MODELS_DIR")
	v.BindEnv("ingest.with_observations", "PARHELION_INGEST_WITH_OBSERVATIONS")
	v.BindEnv("ingest.show_progress", "PARHELION_INGEST_SHOW_PROGRESS")

	// Log configuration
	v.BindEnv("log.level", "PARHELION_LOG_LEVEL")
	v.BindEnv("log.format", "PARHELION_LOG_FORMAT")
	v.BindEnv("log.destination", "PARHELION_LOG_DESTINATION")

	v.AutomaticEnv()
}
