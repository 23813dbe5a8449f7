// Package corpus describes a manifest that lists documents of a corpus
// and the models they should be merged into.
//
// Example of a manifest:
//
//	data_type: xml
//	documents:
//	  - data/a.xml
//	  - data/b.xml
//	models:
//	  - models/book.v3.parmodel.json
//
// Relative paths are resolved against the directory of the manifest.
package corpus

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// DataTypes are the data type selectors a manifest may use.
var DataTypes = []string{"xml", "json", "csv"}

// Manifest is the content of a corpus manifest file.
type Manifest struct {
	// DataType of the documents, xml by default.
	DataType string `yaml:"data_type,omitempty"`

	// Documents are paths to the documents of the corpus (required).
	Documents []string `yaml:"documents"`

	// Models are paths to model files used as seeds (optional).
	Models []string `yaml:"models,omitempty"`
}

// Validate checks the manifest and applies defaults.
func (m *Manifest) Validate() error {
	m.DataType = strings.ToLower(strings.TrimSpace(m.DataType))
	if m.DataType == "" {
		m.DataType = "xml"
	}
	if !slices.Contains(DataTypes, m.DataType) {
		return fmt.Errorf("unknown data_type '%s', use one of %v",
			m.DataType, DataTypes)
	}
	if len(m.Documents) == 0 {
		return errors.New("no documents specified in manifest")
	}
	for i, v := range m.Documents {
		if v == "" {
			return fmt.Errorf("document %d: path is empty", i+1)
		}
	}
	for i, v := range m.Models {
		if v == "" {
			return fmt.Errorf("model %d: path is empty", i+1)
		}
	}
	return nil
}

// Resolve makes relative paths of documents and models relative to
// dir instead of the current directory.
func (m *Manifest) Resolve(dir string) {
	for i := range m.Documents {
		m.Documents[i] = resolvePath(dir, m.Documents[i])
	}
	for i := range m.Models {
		m.Models[i] = resolvePath(dir, m.Models[i])
	}
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
