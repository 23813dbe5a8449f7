package model_test

import (
	"testing"

	"github.com/gnames/parhelion/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)
	m := model.New("book", "book")
	assert.Equal(1, m.Version)
	assert.Nil(m.LastWritten)
	assert.False(m.WrittenBefore())
	assert.Empty(m.Elements)
	assert.Empty(m.Attribs)
	assert.NotNil(m.Observations)
}

func TestGetOrCreate(t *testing.T) {
	assert := assert.New(t)
	m := model.New("book", "book")

	e1 := m.Element("title")
	e2 := m.Element("title")
	assert.Same(e1, e2)
	assert.True(e1.RequiredVal)
	assert.Equal("title", e1.Tag)
	assert.Len(m.Elements, 1)

	a1 := m.Attribute("id")
	a2 := m.Attribute("id")
	assert.Same(a1, a2)
	assert.Equal(model.DataUnset, a1.DataType)
	assert.Len(m.Attribs, 1)
}

func TestWiden(t *testing.T) {
	assert := assert.New(t)
	a := model.NewAttribute("id")
	for _, v := range []float64{3, 10, 1} {
		a.Widen(v)
	}
	assert.Equal(1.0, *a.Min)
	assert.Equal(10.0, *a.Max)

	a.Widen(5)
	assert.Equal(1.0, *a.Min)
	assert.Equal(10.0, *a.Max)
}

func TestClassifyAttribute(t *testing.T) {
	tests := []struct {
		val string
		res model.DataType
	}{
		{"3", model.DataInt},
		{"-12", model.DataInt},
		{"+7", model.DataInt},
		{"3.14", model.DataFloat},
		{".5", model.DataFloat},
		{"-0.5", model.DataFloat},
		{"3.", model.DataStr},
		{"abc", model.DataStr},
		{"", model.DataStr},
		{"true", model.DataStr},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, model.ClassifyAttribute(v.val), v.val)
	}
}

func TestObservations(t *testing.T) {
	assert := assert.New(t)
	o := model.NewObservations()
	val := "x"
	o.AddElement("a", model.ElementObservation{Value: &val})
	o.AddElement("a", model.ElementObservation{})
	o.AddAttribute("id", "1")
	els, attrs := o.Len()
	assert.Equal(2, els)
	assert.Equal(1, attrs)
	assert.Equal("x", *o.Elements["a"][0].Value)
	assert.Nil(o.Elements["a"][1].Value)
}
