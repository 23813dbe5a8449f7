// Package iomodel reads and writes model files.
package iomodel

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnsys"
	"github.com/gnames/parhelion/pkg/errcode"
	"github.com/gnames/parhelion/pkg/model"
)

// Load reads a model from a file. If the file name contains a version
// (`book.v5.parmodel.json`), it takes precedence over the version
// stored inside the file. A loaded model always counts as written
// before: when the file has no `last_written`, the modification time of
// the file is used.
func Load(path string) (*model.SchemaModel, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NotFoundError(path, err)
		}
		return nil, FormatError(path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, FormatError(path, err)
	}

	res, err := model.Decode(data)
	if err != nil {
		var gnErr *gn.Error
		if errors.As(err, &gnErr) && gnErr.Code == errcode.InvalidFieldError {
			return nil, err
		}
		return nil, FormatError(path, err)
	}

	if ver, ok := model.VersionFromFileName(path); ok {
		res.Version = ver
	}
	if res.LastWritten == nil {
		ts := info.ModTime()
		res.LastWritten = &ts
	}
	return res, nil
}

// LoadAll loads several models and keys them by name. When two files
// hold the same model, the later one wins.
func LoadAll(
	paths []string,
	logger *slog.Logger,
) (map[string]*model.SchemaModel, error) {
	if logger == nil {
		logger = slog.Default()
	}
	res := make(map[string]*model.SchemaModel, len(paths))
	for _, v := range paths {
		m, err := Load(v)
		if err != nil {
			return nil, err
		}
		if _, ok := res[m.Name]; ok {
			logger.Warn("Model loaded more than once, using the last file",
				"name", m.Name, "path", v)
		}
		logger.Info("Loaded model", "path", v, "name", m.Name, "version", m.Version)
		res[m.Name] = m
	}
	return res, nil
}

// pending is a model prepared for writing.
type pending struct {
	m           *model.SchemaModel
	prevVersion int
	prevWritten *time.Time
	path        string
	data        []byte
}

func (p *pending) restore() {
	p.m.Version, p.m.LastWritten = p.prevVersion, p.prevWritten
}

// prepare increments the version of a model written before, sets the
// time of the write and encodes the model.
func prepare(
	m *model.SchemaModel,
	dir string,
	withObservations bool,
	now time.Time,
) (*pending, error) {
	res := &pending{m: m, prevVersion: m.Version, prevWritten: m.LastWritten}
	if m.WrittenBefore() {
		m.Version++
	}
	m.LastWritten = &now
	res.path = filepath.Join(dir, m.FileName())

	var err error
	if res.data, err = model.Encode(m, withObservations); err != nil {
		res.restore()
		return nil, WriteModelError(res.path, err)
	}
	return res, nil
}

// Write saves a model into dir and returns the path of the file. A
// model that was written before gets its version incremented first, so
// every write of the same in-memory model goes to a new file. The
// directory is created if needed. If writing fails, the version and the
// time of the last write stay unchanged.
func Write(
	m *model.SchemaModel,
	dir string,
	withObservations bool,
) (string, error) {
	logger := slog.New(slog.DiscardHandler)
	res, err := WriteAll([]*model.SchemaModel{m}, dir, withObservations, logger)
	if err != nil {
		return "", err
	}
	return res[0], nil
}

// WriteAll saves models into dir and returns paths of written files in
// the order of models. All models are encoded and their file names
// checked before anything is written. Models whose names result in the
// same file name fail with NameCollisionError. If any write fails,
// files written by this call are removed and all models keep their
// previous version and time of the last write.
func WriteAll(
	models []*model.SchemaModel,
	dir string,
	withObservations bool,
	logger *slog.Logger,
) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now()
	ps := make([]*pending, 0, len(models))
	restoreAll := func() {
		for _, p := range ps {
			p.restore()
		}
	}

	files := make(map[string][]string, len(models))
	for _, m := range models {
		p, err := prepare(m, dir, withObservations, now)
		if err != nil {
			restoreAll()
			return nil, err
		}
		ps = append(ps, p)
		files[p.path] = append(files[p.path], m.Name)
	}

	for _, p := range ps {
		if names := files[p.path]; len(names) > 1 {
			restoreAll()
			slices.Sort(names)
			return nil, NameCollisionError(p.path, names)
		}
	}

	if err := gnsys.MakeDir(dir); err != nil {
		restoreAll()
		return nil, WriteModelError(dir, err)
	}

	res := make([]string, 0, len(ps))
	for _, p := range ps {
		if err := os.WriteFile(p.path, p.data, 0644); err != nil {
			for _, v := range res {
				if rmErr := os.Remove(v); rmErr != nil {
					logger.Warn("Cannot remove model file", "path", v, "error", rmErr)
				}
			}
			restoreAll()
			return nil, WriteModelError(p.path, err)
		}
		res = append(res, p.path)
		logger.Info("Wrote model", "path", p.path, "version", p.m.Version)
	}
	return res, nil
}
