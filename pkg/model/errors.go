package model

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/parhelion/pkg/errcode"
)

// InvalidFieldError is returned when a serialized model contains a field
// that does not belong to the entity.
func InvalidFieldError(entity, field string) error {
	msg := `Unknown field <em>%s</em> in %s

<em>How to fix:</em>
  1. Remove the field from the model file
  2. Regenerate the model with <em>parhelion create</em>`

	vars := []any{field, entity}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidFieldError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid field %q in %s",
			fn.Name(), field, entity),
	}
}

// FormatError is returned when data cannot be interpreted as a model.
func FormatError(err error) error {
	msg := `Data is not a valid Parhelion model

<em>Possible causes:</em>
  - File is not JSON
  - File was truncated
  - Field has a value of a wrong type`

	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ModelFormatError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: invalid model format: %w",
			fn.Name(), err),
	}
}
