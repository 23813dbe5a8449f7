package model

import (
	"encoding/json"
	"regexp"
)

// TypeLabel describes the kind of text content observed in an element.
type TypeLabel string

const (
	LabelInt   TypeLabel = "int"
	LabelFloat TypeLabel = "float"
	LabelBool  TypeLabel = "bool"
	LabelStr   TypeLabel = "str"
	// LabelNone marks an element instance without text.
	LabelNone TypeLabel = "none"
)

// DataType is the type of an attribute. It is set from the first
// observed value and never changes afterwards.
type DataType string

const (
	// DataUnset is the DataType of an attribute without observations.
	DataUnset DataType = ""
	DataStr   DataType = "str"
	DataInt   DataType = "int"
	DataFloat DataType = "float"
)

// IsKnown returns true for data types that range inference can handle.
func (d DataType) IsKnown() bool {
	switch d {
	case DataStr, DataInt, DataFloat:
		return true
	default:
		return false
	}
}

// MarshalJSON renders an unset data type as null.
func (d DataType) MarshalJSON() ([]byte, error) {
	if d == DataUnset {
		return []byte("null"), nil
	}
	return json.Marshal(string(d))
}

// UnmarshalJSON reads a data type, null becomes DataUnset.
func (d *DataType) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*d = DataUnset
		return nil
	}
	*d = DataType(*s)
	return nil
}

var (
	reInt   = regexp.MustCompile(`^[-+]?\d+$`)
	reFloat = regexp.MustCompile(`^[-+]?\d*\.\d+$`)
)

// ClassifyAttribute picks a DataType for a raw attribute value.
// Integers (optionally signed) are DataInt, decimal numbers with a
// fractional part are DataFloat, everything else is DataStr.
func ClassifyAttribute(val string) DataType {
	switch {
	case reInt.MatchString(val):
		return DataInt
	case reFloat.MatchString(val):
		return DataFloat
	default:
		return DataStr
	}
}
