// Package model describes the structure inferred from a corpus of XML
// documents that share the same root tag.
//
// A SchemaModel keeps one ElementSchema per observed tag and one
// AttributeSchema per observed attribute name. All collections inside a
// model only grow: new documents can add tags, children, attributes and
// value types, but never remove them.
//
// This package has no I/O dependencies; reading and writing of model
// files happens in internal/iomodel.
package model

import (
	"time"
)

// SchemaModel represents all observed structure of documents that share
// one root tag.
type SchemaModel struct {
	// Name identifies the model, it is the root tag of its documents.
	Name string

	// RootElement is the tag of the documents' root.
	RootElement string

	// Version is incremented each time the model is written again after
	// it was written at least once before.
	Version int

	// LastWritten is the time of the most recent persistence, nil if
	// the model was never written.
	LastWritten *time.Time

	// Elements maps tags to their schemas.
	Elements map[string]*ElementSchema

	// Attribs maps attribute names to their schemas. Attribute names are
	// context-free: the same name on different elements shares a schema.
	Attribs map[string]*AttributeSchema

	// Observations is the raw evidence collected by the walker. It is
	// consumed by inference and is not persisted by default.
	Observations *Observations
}

// ElementSchema is the observed shape of one element tag.
// Fields are kept in the alphabetical order of their JSON keys.
type ElementSchema struct {
	// Attribs are the names of attributes ever seen on the element.
	Attribs Set[string] `json:"attribs"`

	// Children are tags of elements ever seen directly under the element.
	Children Set[string] `json:"children"`

	// RequiredVal is true unless an instance without text was observed.
	RequiredVal bool `json:"required_val"`

	Tag string `json:"tag"`

	// Types are labels of the element's text content across instances.
	Types Set[TypeLabel] `json:"types"`
}

// AttributeSchema is the observed shape of one attribute name.
// Fields are kept in the alphabetical order of their JSON keys.
type AttributeSchema struct {
	// DataType is set from the first observed value and never changes.
	DataType DataType `json:"data_type"`

	// Max is the largest observed value for numbers, or the largest
	// length for strings.
	Max *float64 `json:"max"`

	// Min is the smallest observed value for numbers, or the smallest
	// length for strings.
	Min *float64 `json:"min"`

	Name string `json:"name"`

	// RePattern is reserved for a regular expression describing values.
	RePattern *string `json:"re_pattern"`
}

// New creates an empty model of version 1.
func New(name, rootElement string) *SchemaModel {
	return &SchemaModel{
		Name:         name,
		RootElement:  rootElement,
		Version:      1,
		Elements:     make(map[string]*ElementSchema),
		Attribs:      make(map[string]*AttributeSchema),
		Observations: NewObservations(),
	}
}

// NewElement creates an empty ElementSchema for a tag.
func NewElement(tag string) *ElementSchema {
	return &ElementSchema{Tag: tag, RequiredVal: true}
}

// NewAttribute creates an AttributeSchema without data type and range.
func NewAttribute(name string) *AttributeSchema {
	return &AttributeSchema{Name: name}
}

// Element returns the schema of a tag, creating and registering it if
// it does not exist yet.
func (m *SchemaModel) Element(tag string) *ElementSchema {
	if res, ok := m.Elements[tag]; ok {
		return res
	}
	res := NewElement(tag)
	m.Elements[tag] = res
	return res
}

// Attribute returns the schema of an attribute name, creating and
// registering it if it does not exist yet.
func (m *SchemaModel) Attribute(name string) *AttributeSchema {
	if res, ok := m.Attribs[name]; ok {
		return res
	}
	res := NewAttribute(name)
	m.Attribs[name] = res
	return res
}

// WrittenBefore returns true if the model was persisted at least once.
func (m *SchemaModel) WrittenBefore() bool {
	return m.LastWritten != nil
}

// CleanName returns the name of the model normalized for file names.
func (m *SchemaModel) CleanName() string {
	return CleanName(m.Name)
}

// FileName returns the file name for the current version of the model.
func (m *SchemaModel) FileName() string {
	return FileName(m.Name, m.Version)
}

// Widen extends the range of the attribute to include the measure.
// The first measure sets both bounds.
func (a *AttributeSchema) Widen(measure float64) {
	if a.Min == nil || measure < *a.Min {
		v := measure
		a.Min = &v
	}
	if a.Max == nil || measure > *a.Max {
		v := measure
		a.Max = &v
	}
}
