// Package ioingest implements the Ingester interface. It reads document
// files, merges their structure into models, infers types and ranges,
// and writes model files.
//
// A run has three strictly ordered phases: walking of all documents,
// inference, and persistence. Nothing is written unless every document
// was parsed and walked.
package ioingest

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/parhelion/internal/iomodel"
	"github.com/gnames/parhelion/internal/ioobsdb"
	"github.com/gnames/parhelion/internal/ioxml"
	"github.com/gnames/parhelion/pkg/config"
	"github.com/gnames/parhelion/pkg/infer"
	"github.com/gnames/parhelion/pkg/ingest"
	"github.com/gnames/parhelion/pkg/model"
	"github.com/gnames/parhelion/pkg/walk"
)

type ingester struct {
	cfg    *config.Config
	log    *slog.Logger
	models map[string]*model.SchemaModel
	walker *walk.Walker
	infer  *infer.Inferencer
}

// New creates an Ingester. Seeds are previously saved models, documents
// with a matching root tag are merged into them.
func New(
	cfg *config.Config,
	logger *slog.Logger,
	seeds ...*model.SchemaModel,
) ingest.Ingester {
	if logger == nil {
		logger = slog.Default()
	}
	models := make(map[string]*model.SchemaModel, len(seeds))
	for _, v := range seeds {
		if v.Observations == nil {
			v.Observations = model.NewObservations()
		}
		models[v.Name] = v
	}
	return &ingester{
		cfg:    cfg,
		log:    logger,
		models: models,
		walker: walk.New(logger),
		infer:  infer.New(logger),
	}
}

// Ingest processes documents in the given order and writes resulting
// models to the models directory of the configuration.
func (in *ingester) Ingest(
	ctx context.Context,
	paths []string,
) (map[string]*model.SchemaModel, error) {
	if len(paths) == 0 {
		return nil, NoInputError()
	}

	startTime := time.Now()
	in.log.Info("Starting ingestion", "documents", len(paths))

	if err := in.walkDocuments(ctx, paths); err != nil {
		return nil, err
	}

	names := in.modelNames()
	for _, name := range names {
		in.infer.Analyze(in.models[name])
	}

	files, err := in.writeModels(names)
	if err != nil {
		return nil, err
	}

	if in.cfg.Ingest.ObservationsDB != "" {
		err = ioobsdb.Export(
			ctx, in.cfg.Ingest.ObservationsDB, in.models, in.log,
		)
		if err != nil {
			return nil, err
		}
	}

	in.summary(len(paths), files, startTime)
	return in.models, nil
}

func (in *ingester) walkDocuments(ctx context.Context, paths []string) error {
	var bar *pb.ProgressBar
	if in.cfg.Ingest.ShowProgress {
		bar = newProgressBar(len(paths), "Documents: ")
		defer bar.Finish()
	}

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return CancelledError(ctx.Err())
		default:
		}

		doc, err := ioxml.ParseFile(path)
		if err != nil {
			in.log.Error("Cannot parse document", "path", path, "error", err)
			return err
		}

		m := in.walker.Walk(doc, in.models)
		in.log.Debug("Walked document", "path", path, "model", m.Name)
		if bar != nil {
			bar.Increment()
		}
	}
	return nil
}

func (in *ingester) writeModels(names []string) ([]string, error) {
	models := make([]*model.SchemaModel, 0, len(names))
	for _, name := range names {
		models = append(models, in.models[name])
	}
	return iomodel.WriteAll(
		models,
		in.cfg.Ingest.ModelsDir,
		in.cfg.Ingest.WithObservations,
		in.log,
	)
}

func (in *ingester) modelNames() []string {
	res := make([]string, 0, len(in.models))
	for k := range in.models {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

func (in *ingester) summary(docs int, files []string, startTime time.Time) {
	var elCount, attrCount int
	for _, m := range in.models {
		els, attrs := m.Observations.Len()
		elCount += els
		attrCount += attrs
	}
	duration := gnfmt.TimeString(time.Since(startTime).Seconds())

	in.log.Info("Ingestion complete",
		"documents", docs,
		"models", len(files),
		"element_observations", elCount,
		"attribute_observations", attrCount,
		"duration", duration,
	)

	models := "model"
	if len(files) != 1 {
		models += "s"
	}
	msg := fmt.Sprintf(`Ingestion complete
Documents: %s, %s: %d
Element observations: %s, attribute observations: %s
Elapsed time: <em>%s</em>`,
		humanize.Comma(int64(docs)),
		models,
		len(files),
		humanize.Comma(int64(elCount)),
		humanize.Comma(int64(attrCount)),
		duration,
	)
	gn.Info(msg)
	for _, v := range files {
		gn.Info("Wrote <em>%s</em>", v)
	}
}
