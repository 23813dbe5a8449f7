package cmd

import (
	"context"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/parhelion/internal/iocorpus"
	"github.com/gnames/parhelion/internal/ioingest"
	"github.com/gnames/parhelion/internal/iomodel"
	"github.com/gnames/parhelion/pkg/config"
	"github.com/gnames/parhelion/pkg/model"
	"github.com/spf13/cobra"
)

// runIngest reads documents from arguments and the manifest and merges
// them into models. With update it requires seed models.
func runIngest(
	cmd *cobra.Command,
	f *ingestFlags,
	files []string,
	update bool,
) error {
	dataType := strings.ToLower(strings.TrimSpace(f.dataType))
	models := f.models

	if f.manifest != "" {
		m, err := iocorpus.Load(f.manifest, logger)
		if err != nil {
			return err
		}
		files = append(files, m.Documents...)
		models = append(models, m.Models...)
		if !cmd.Flags().Changed("type") {
			dataType = m.DataType
		}
	}

	if err := checkDataType(dataType); err != nil {
		return err
	}

	if update && len(models) == 0 {
		return NoModelsError()
	}

	ingestOpts := f.options(cmd)
	ingestOpts = append(ingestOpts, config.OptDataType(dataType))
	cfg.Update(ingestOpts)

	var seeds []*model.SchemaModel
	if len(models) > 0 {
		loaded, err := iomodel.LoadAll(models, logger)
		if err != nil {
			return err
		}
		for _, v := range loaded {
			seeds = append(seeds, v)
		}
		slices.SortFunc(seeds, func(a, b *model.SchemaModel) int {
			return strings.Compare(a.Name, b.Name)
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ing := ioingest.New(cfg, logger, seeds...)
	res, err := ing.Ingest(ctx, files)
	if err != nil {
		return err
	}

	if update {
		gn.Info("Updated <em>%d</em> model(s) in <em>%s</em>",
			len(res), cfg.Ingest.ModelsDir)
	} else {
		gn.Info("Created <em>%d</em> model(s) in <em>%s</em>",
			len(res), cfg.Ingest.ModelsDir)
	}
	return nil
}

// checkDataType rejects unknown data types and the ones without a
// reader.
func checkDataType(dataType string) error {
	if !slices.Contains(dataTypes, dataType) {
		return UnsupportedDataTypeError(dataType, false)
	}
	if dataType != "xml" {
		return UnsupportedDataTypeError(dataType, true)
	}
	return nil
}
