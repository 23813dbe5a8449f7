package model

import (
	"encoding/json"
	"errors"
	"math"
	"slices"
	"time"

	"github.com/gnames/gnfmt"
)

var (
	modelFields = []string{
		"attribs", "elements", "last_written", "name",
		"observations", "root_element", "version",
	}
	elementFields   = []string{"attribs", "children", "required_val", "tag", "types"}
	attributeFields = []string{"data_type", "max", "min", "name", "re_pattern"}
)

// modelJSON is the persisted form of SchemaModel. Fields follow the
// alphabetical order of JSON keys.
type modelJSON struct {
	Attribs      map[string]*AttributeSchema `json:"attribs"`
	Elements     map[string]*ElementSchema   `json:"elements"`
	LastWritten  *float64                    `json:"last_written"`
	Name         string                      `json:"name"`
	Observations *Observations               `json:"observations,omitempty"`
	RootElement  string                      `json:"root_element"`
	Version      int                         `json:"version"`
}

// Encode serializes the model to indented JSON with sorted keys.
// Observations are included only if withObservations is true.
func Encode(m *SchemaModel, withObservations bool) ([]byte, error) {
	out := modelJSON{
		Attribs:     m.Attribs,
		Elements:    m.Elements,
		Name:        m.Name,
		RootElement: m.RootElement,
		Version:     m.Version,
	}
	if m.LastWritten != nil {
		ts := float64(m.LastWritten.UnixNano()) / 1e9
		out.LastWritten = &ts
	}
	if withObservations {
		out.Observations = m.Observations
		if out.Observations == nil {
			out.Observations = NewObservations()
		}
	}
	enc := gnfmt.GNjson{Pretty: true}
	return enc.Encode(out)
}

// Decode creates a model from its serialized form. Every object is
// checked against the fields its entity declares, an unknown field
// rejects the whole model with InvalidFieldError. Data that is not a
// JSON model returns FormatError.
func Decode(data []byte) (*SchemaModel, error) {
	enc := gnfmt.GNjson{}

	top, err := decodeObject(enc, "model", data, modelFields)
	if err != nil {
		return nil, err
	}

	var wire modelJSON
	if err = enc.Decode(data, &wire); err != nil {
		return nil, FormatError(err)
	}
	if wire.Name == "" {
		return nil, FormatError(errors.New("model name is empty"))
	}

	res := New(wire.Name, wire.RootElement)
	if res.RootElement == "" {
		res.RootElement = res.Name
	}
	if wire.Version > 0 {
		res.Version = wire.Version
	}
	if wire.LastWritten != nil {
		sec, frac := math.Modf(*wire.LastWritten)
		ts := time.Unix(int64(sec), int64(frac*1e9))
		res.LastWritten = &ts
	}

	if err = decodeElements(enc, top["elements"], res); err != nil {
		return nil, err
	}
	if err = decodeAttributes(enc, top["attribs"], res); err != nil {
		return nil, err
	}
	if wire.Observations != nil {
		res.Observations = wire.Observations
		if res.Observations.Attribs == nil {
			res.Observations.Attribs = make(map[string][]string)
		}
		if res.Observations.Elements == nil {
			res.Observations.Elements = make(map[string][]ElementObservation)
		}
	}
	return res, nil
}

func decodeElements(enc gnfmt.GNjson, data json.RawMessage, m *SchemaModel) error {
	raw, err := decodeMap(enc, data)
	if err != nil {
		return err
	}
	for tag, v := range raw {
		if _, err = decodeObject(enc, "element "+tag, v, elementFields); err != nil {
			return err
		}
		elem := NewElement(tag)
		if err = enc.Decode(v, elem); err != nil {
			return FormatError(err)
		}
		if elem.Tag == "" {
			elem.Tag = tag
		}
		m.Elements[tag] = elem
	}
	return nil
}

func decodeAttributes(enc gnfmt.GNjson, data json.RawMessage, m *SchemaModel) error {
	raw, err := decodeMap(enc, data)
	if err != nil {
		return err
	}
	for name, v := range raw {
		if _, err = decodeObject(enc, "attribute "+name, v, attributeFields); err != nil {
			return err
		}
		attr := NewAttribute(name)
		if err = enc.Decode(v, attr); err != nil {
			return FormatError(err)
		}
		if attr.Name == "" {
			attr.Name = name
		}
		m.Attribs[name] = attr
	}
	return nil
}

// decodeMap reads a JSON object of objects. Missing or null data gives
// an empty map.
func decodeMap(enc gnfmt.GNjson, data json.RawMessage) (map[string]json.RawMessage, error) {
	res := make(map[string]json.RawMessage)
	if len(data) == 0 || string(data) == "null" {
		return res, nil
	}
	if err := enc.Decode(data, &res); err != nil {
		return nil, FormatError(err)
	}
	return res, nil
}

// decodeObject reads a JSON object and checks its keys against the
// allowed ones.
func decodeObject(
	enc gnfmt.GNjson,
	entity string,
	data []byte,
	allowed []string,
) (map[string]json.RawMessage, error) {
	var res map[string]json.RawMessage
	if err := enc.Decode(data, &res); err != nil {
		return nil, FormatError(err)
	}
	if res == nil {
		return nil, FormatError(errors.New(entity + " is not an object"))
	}
	for k := range res {
		if !slices.Contains(allowed, k) {
			return nil, InvalidFieldError(entity, k)
		}
	}
	return res, nil
}
