// Package ingest defines the contract of a corpus ingestion run.
package ingest

import (
	"context"

	"github.com/gnames/parhelion/pkg/model"
)

// Ingester processes a list of document files into schema models and
// persists them.
//
// Documents are processed one at a time in the given order. Models are
// inferred and written only after every document was walked
// successfully, so a failed run leaves no model files behind.
type Ingester interface {
	// Ingest walks documents, infers types and ranges and writes the
	// resulting models. It returns the models keyed by their names.
	Ingest(ctx context.Context, paths []string) (map[string]*model.SchemaModel, error)
}
