package walk_test

import (
	"strings"
	"testing"

	"github.com/gnames/parhelion/internal/ioxml"
	"github.com/gnames/parhelion/pkg/doctree"
	"github.com/gnames/parhelion/pkg/model"
	"github.com/gnames/parhelion/pkg/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, s string) *doctree.Document {
	doc, err := ioxml.Parse(strings.NewReader(s))
	require.Nil(t, err)
	return doc
}

func TestWalk(t *testing.T) {
	assert := assert.New(t)
	w := walk.New(nil)
	models := make(map[string]*model.SchemaModel)

	doc := parse(t, `<book id="3"><title>Go</title><year>2020</year></book>`)
	m := w.Walk(doc, models)
	require.NotNil(t, m)
	assert.Same(m, models["book"])
	assert.Equal("book", m.Name)
	assert.Equal("book", m.RootElement)

	b := m.Elements["book"]
	require.NotNil(t, b)
	assert.Equal([]string{"title", "year"}, b.Children.Values())
	assert.Equal([]string{"id"}, b.Attribs.Values())
	assert.Len(m.Elements, 3)

	id := m.Attribs["id"]
	require.NotNil(t, id)
	assert.Equal(model.DataInt, id.DataType)
	assert.Equal([]string{"3"}, m.Observations.Attribs["id"])

	obs := m.Observations.Elements["book"]
	require.Len(t, obs, 1)
	assert.Equal([]string{"title", "year"}, obs[0].Children)
	assert.Equal([]string{"id"}, obs[0].Attribs)
	assert.Nil(obs[0].Value)

	title := m.Observations.Elements["title"]
	require.Len(t, title, 1)
	require.NotNil(t, title[0].Value)
	assert.Equal("Go", *title[0].Value)
}

func TestWalkGrowOnly(t *testing.T) {
	assert := assert.New(t)
	w := walk.New(nil)
	models := make(map[string]*model.SchemaModel)

	w.Walk(parse(t, `<book a="x"><title/><note/></book>`), models)
	m := w.Walk(parse(t, `<book b="y"><year/></book>`), models)

	assert.Len(models, 1)
	b := m.Elements["book"]
	assert.Equal([]string{"note", "title", "year"}, b.Children.Values())
	assert.Equal([]string{"a", "b"}, b.Attribs.Values())
	assert.Len(m.Observations.Elements["book"], 2)
}

func TestWalkTypeLockIn(t *testing.T) {
	assert := assert.New(t)
	w := walk.New(nil)
	models := make(map[string]*model.SchemaModel)

	w.Walk(parse(t, `<r n="5"/>`), models)
	m := w.Walk(parse(t, `<r n="abc"/>`), models)

	assert.Equal(model.DataInt, m.Attribs["n"].DataType)
	assert.Equal([]string{"5", "abc"}, m.Observations.Attribs["n"])
}

func TestWalkSeparateRoots(t *testing.T) {
	w := walk.New(nil)
	models := make(map[string]*model.SchemaModel)

	w.Walk(parse(t, `<book/>`), models)
	w.Walk(parse(t, `<catalog><book/></catalog>`), models)

	assert.Len(t, models, 2)
	assert.Len(t, models["book"].Elements, 1)
	assert.Len(t, models["catalog"].Elements, 2)
}

func TestWalkAttributesSorted(t *testing.T) {
	w := walk.New(nil)
	models := make(map[string]*model.SchemaModel)

	m := w.Walk(parse(t, `<r z="1" a="2" m="3"/>`), models)
	obs := m.Observations.Elements["r"]
	require.Len(t, obs, 1)
	assert.Equal(t, []string{"a", "m", "z"}, obs[0].Attribs)
}

func TestWalkStripsText(t *testing.T) {
	w := walk.New(nil)
	models := make(map[string]*model.SchemaModel)

	m := w.Walk(parse(t, "<r>\n  <a>  x </a>\n</r>"), models)
	r := m.Observations.Elements["r"][0]
	require.NotNil(t, r.Value)
	assert.Equal(t, "", *r.Value)
	a := m.Observations.Elements["a"][0]
	require.NotNil(t, a.Value)
	assert.Equal(t, "x", *a.Value)
}
