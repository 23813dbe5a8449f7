package infer

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/parhelion/pkg/errcode"
)

// UnsupportedTypeError describes an attribute whose data type cannot be
// used for range inference. It is logged, not returned.
func UnsupportedTypeError(attr string, dt string) error {
	msg := "Unknown data type <em>%s</em> of attribute <em>%s</em>"
	vars := []any{dt, attr}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnsupportedTypeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unknown data type %q of attribute %q",
			fn.Name(), dt, attr),
	}
}
