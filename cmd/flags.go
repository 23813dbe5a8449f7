package cmd

import (
	"github.com/gnames/parhelion/pkg/config"
	"github.com/gnames/parhelion/pkg/corpus"
	"github.com/spf13/cobra"
)

// dataTypes are the values accepted by the --type flag.
var dataTypes = corpus.DataTypes

// ingestFlags keeps values of flags shared by create and update.
type ingestFlags struct {
	dataType       string
	outDir         string
	observations   bool
	observationsDB string
	manifest       string
	models         []string
}

func addDataTypeFlag(cmd *cobra.Command, f *ingestFlags) {
	cmd.Flags().StringVarP(
		&f.dataType, "type", "t", "xml",
		"type of input documents (xml, json, csv)",
	)
}

func addModelsFlag(cmd *cobra.Command, f *ingestFlags) {
	cmd.Flags().StringSliceVarP(
		&f.models, "models", "m", nil,
		"model files to use",
	)
}

func addIngestFlags(cmd *cobra.Command, f *ingestFlags) {
	addDataTypeFlag(cmd, f)
	cmd.Flags().StringVarP(
		&f.outDir, "output", "o", "",
		"directory for model files (default from config)",
	)
	cmd.Flags().BoolVar(
		&f.observations, "observations", false,
		"save raw observations inside model files",
	)
	cmd.Flags().StringVar(
		&f.observationsDB, "observations-db", "",
		"export raw observations to a SQLite file",
	)
	cmd.Flags().StringVar(
		&f.manifest, "manifest", "",
		"YAML file listing documents and models of a corpus",
	)
}

// options converts explicitly set flags to config options.
func (f *ingestFlags) options(cmd *cobra.Command) []config.Option {
	var res []config.Option
	if cmd.Flags().Changed("output") {
		res = append(res, config.OptModelsDir(f.outDir))
	}
	if cmd.Flags().Changed("observations") {
		res = append(res, config.OptWithObservations(f.observations))
	}
	if cmd.Flags().Changed("observations-db") {
		res = append(res, config.OptObservationsDB(f.observationsDB))
	}
	return res
}
