package ioobsdb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/parhelion/pkg/errcode"
)

func ObservationsDBError(path string, err error) error {
	msg := `Cannot export observations to <em>%s</em>

<em>Note:</em> model files were already written`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ObservationsDBError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: observations export failed: %w", fn.Name(), err),
	}
}
