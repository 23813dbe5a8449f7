// Package walk records the structure of parsed documents into schema
// models.
package walk

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/gnames/parhelion/pkg/doctree"
	"github.com/gnames/parhelion/pkg/model"
)

// Walker visits every element of a document and merges what it sees
// into the model of the document's root tag.
type Walker struct {
	log *slog.Logger
}

// New creates a Walker. If logger is nil, slog.Default is used.
func New(logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{log: logger}
}

// Walk merges the structure of doc into models. The model is found by
// the root tag of the document and is created if missing. The affected
// model is returned. Schemas only grow: nothing already recorded is
// removed or changed, except that a new attribute gets its data type
// from its first value.
func (w *Walker) Walk(
	doc *doctree.Document,
	models map[string]*model.SchemaModel,
) *model.SchemaModel {
	root := doc.Root
	m, ok := models[root.Tag]
	if !ok {
		m = model.New(root.Tag, root.Tag)
		models[root.Tag] = m
		w.log.Info("new model", "name", m.Name)
	}
	if m.Observations == nil {
		m.Observations = model.NewObservations()
	}

	w.visit(m, root)
	return m
}

func (w *Walker) visit(m *model.SchemaModel, elem *doctree.Element) {
	es := m.Element(elem.Tag)

	attrs := elem.AttrNames()
	slices.Sort(attrs)
	var val *string
	if elem.Text != nil {
		v := strings.TrimSpace(*elem.Text)
		val = &v
	}
	m.Observations.AddElement(elem.Tag, model.ElementObservation{
		Children: elem.ChildTags(),
		Attribs:  attrs,
		Value:    val,
	})

	for _, a := range elem.Attrs {
		es.Attribs.Add(a.Name)
		as := m.Attribute(a.Name)
		if as.DataType == model.DataUnset {
			as.DataType = model.ClassifyAttribute(a.Value)
			w.log.Debug("attribute type",
				"name", a.Name, "data_type", string(as.DataType))
		}
		m.Observations.AddAttribute(a.Name, a.Value)
	}

	for _, child := range elem.Children {
		es.Children.Add(child.Tag)
		w.visit(m, child)
	}
}
