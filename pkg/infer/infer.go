// Package infer derives value types and ranges from the observations
// collected by the walker.
package infer

import (
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/gnames/parhelion/pkg/model"
)

var (
	reInt   = regexp.MustCompile(`^\d+$`)
	reFloat = regexp.MustCompile(`^[-+]?\d*\.\d+$`)
	reBool  = regexp.MustCompile(`(?i)^(true|false)$`)
)

// Inferencer summarizes observations of a model into attribute ranges
// and element value types.
type Inferencer struct {
	log *slog.Logger
}

// New creates an Inferencer. If logger is nil, slog.Default is used.
func New(logger *slog.Logger) *Inferencer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inferencer{log: logger}
}

// Analyze updates ranges of attributes and type labels of elements
// from the observations of the model. Ranges and labels only widen.
// Problems with individual values are logged and skipped.
func (inf *Inferencer) Analyze(m *model.SchemaModel) {
	if m == nil || m.Observations == nil {
		return
	}
	inf.analyzeAttributes(m)
	inf.analyzeElements(m)
}

func (inf *Inferencer) analyzeAttributes(m *model.SchemaModel) {
	for _, name := range sortedKeys(m.Attribs) {
		attr := m.Attribs[name]
		vals := m.Observations.Attribs[name]
		if len(vals) == 0 {
			continue
		}
		if !attr.DataType.IsKnown() {
			err := UnsupportedTypeError(name, string(attr.DataType))
			inf.log.Warn("skipping attribute", "model", m.Name, "error", err)
			continue
		}
		for _, v := range vals {
			measure, err := Measure(attr.DataType, v)
			if err != nil {
				inf.log.Warn("cannot measure attribute value",
					"model", m.Name,
					"attribute", name,
					"data_type", string(attr.DataType),
					"value", v,
				)
				continue
			}
			attr.Widen(measure)
		}
	}
}

func (inf *Inferencer) analyzeElements(m *model.SchemaModel) {
	for _, tag := range sortedKeys(m.Elements) {
		elem := m.Elements[tag]
		for _, obs := range m.Observations.Elements[tag] {
			label := ClassifyValue(obs.Value)
			if label == model.LabelNone {
				elem.RequiredVal = false
			}
			elem.Types.Add(label)
		}
	}
}

// Measure converts a raw attribute value into a number used for its
// range: the length in characters for strings and the value itself for
// numbers.
func Measure(dt model.DataType, val string) (float64, error) {
	switch dt {
	case model.DataStr:
		return float64(utf8.RuneCountInString(val)), nil
	case model.DataInt:
		// integers beyond 64 bits still get an approximate range
		if model.ClassifyAttribute(val) != model.DataInt {
			return 0, &strconv.NumError{
				Func: "ParseFloat", Num: val, Err: strconv.ErrSyntax,
			}
		}
		return strconv.ParseFloat(val, 64)
	case model.DataFloat:
		return strconv.ParseFloat(val, 64)
	default:
		return 0, UnsupportedTypeError("", string(dt))
	}
}

// ClassifyValue returns a type label for the text of an element
// instance. Missing or empty text is LabelNone.
func ClassifyValue(val *string) model.TypeLabel {
	switch {
	case val == nil || *val == "":
		return model.LabelNone
	case reInt.MatchString(*val):
		return model.LabelInt
	case reFloat.MatchString(*val):
		return model.LabelFloat
	case reBool.MatchString(*val):
		return model.LabelBool
	default:
		return model.LabelStr
	}
}

func sortedKeys[V any](m map[string]V) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}
