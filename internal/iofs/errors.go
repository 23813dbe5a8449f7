package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/parhelion/pkg/errcode"
)

func CreateDirError(dir string, err error) error {
	msg := "Cannot create directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot create directory: %w", fn.Name(), err),
	}
}

func CopyFileError(file string, err error) error {
	msg := "Cannot write default config to <em>%s</em>"
	vars := []any{file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot copy file: %w", fn.Name(), err),
	}
}
