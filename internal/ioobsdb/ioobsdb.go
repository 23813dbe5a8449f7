// Package ioobsdb exports observation logs of models into a SQLite
// database for ad hoc inspection with SQL.
package ioobsdb

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/gnames/parhelion/pkg/model"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

const schema = `
CREATE TABLE models (
  name TEXT PRIMARY KEY,
  root_element TEXT NOT NULL,
  version INTEGER NOT NULL
);

CREATE TABLE element_observations (
  model TEXT NOT NULL,
  tag TEXT NOT NULL,
  seq INTEGER NOT NULL,
  children TEXT NOT NULL,
  attribs TEXT NOT NULL,
  value TEXT
);

CREATE TABLE attribute_observations (
  model TEXT NOT NULL,
  name TEXT NOT NULL,
  seq INTEGER NOT NULL,
  value TEXT NOT NULL
);

CREATE INDEX idx_element_observations_tag
  ON element_observations (model, tag);

CREATE INDEX idx_attribute_observations_name
  ON attribute_observations (model, name);
`

// Export writes observations of all models to a SQLite file at path.
// An existing file is replaced. Children and attribute lists of element
// observations are stored as JSON arrays, a missing element value is
// stored as NULL.
func Export(
	ctx context.Context,
	path string,
	models map[string]*model.SchemaModel,
	logger *slog.Logger,
) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return ObservationsDBError(path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := gnsys.MakeDir(dir); err != nil {
			return ObservationsDBError(path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return ObservationsDBError(path, err)
	}
	defer db.Close()

	if _, err = db.ExecContext(ctx, schema); err != nil {
		return ObservationsDBError(path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ObservationsDBError(path, err)
	}
	defer tx.Rollback()

	var elCount, attrCount int
	names := make([]string, 0, len(models))
	for k := range models {
		names = append(names, k)
	}
	slices.Sort(names)

	for _, name := range names {
		m := models[name]
		els, attrs, err := exportModel(ctx, tx, m)
		if err != nil {
			return ObservationsDBError(path, err)
		}
		elCount += els
		attrCount += attrs
	}

	if err = tx.Commit(); err != nil {
		return ObservationsDBError(path, err)
	}

	logger.Info("Exported observations",
		"path", path,
		"models", len(models),
		"elements", humanize.Comma(int64(elCount)),
		"attributes", humanize.Comma(int64(attrCount)),
	)
	return nil
}

func exportModel(
	ctx context.Context,
	tx *sql.Tx,
	m *model.SchemaModel,
) (int, int, error) {
	var elCount, attrCount int
	_, err := tx.ExecContext(ctx,
		`INSERT INTO models (name, root_element, version) VALUES (?, ?, ?)`,
		m.Name, m.RootElement, m.Version,
	)
	if err != nil {
		return 0, 0, err
	}
	if m.Observations == nil {
		return 0, 0, nil
	}

	elStmt, err := tx.PrepareContext(ctx, `
INSERT INTO element_observations (model, tag, seq, children, attribs, value)
VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, 0, err
	}
	defer elStmt.Close()

	attrStmt, err := tx.PrepareContext(ctx, `
INSERT INTO attribute_observations (model, name, seq, value)
VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, 0, err
	}
	defer attrStmt.Close()

	enc := gnfmt.GNjson{}
	for _, tag := range sortedKeys(m.Observations.Elements) {
		for i, obs := range m.Observations.Elements[tag] {
			children, err := enc.Encode(nonNil(obs.Children))
			if err != nil {
				return 0, 0, err
			}
			attribs, err := enc.Encode(nonNil(obs.Attribs))
			if err != nil {
				return 0, 0, err
			}
			var val sql.NullString
			if obs.Value != nil {
				val = sql.NullString{String: *obs.Value, Valid: true}
			}
			_, err = elStmt.ExecContext(ctx,
				m.Name, tag, i, string(children), string(attribs), val,
			)
			if err != nil {
				return 0, 0, err
			}
			elCount++
		}
	}

	for _, name := range sortedKeys(m.Observations.Attribs) {
		for i, v := range m.Observations.Attribs[name] {
			_, err = attrStmt.ExecContext(ctx, m.Name, name, i, v)
			if err != nil {
				return 0, 0, err
			}
			attrCount++
		}
	}
	return elCount, attrCount, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}
