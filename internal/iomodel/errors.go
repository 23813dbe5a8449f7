package iomodel

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/parhelion/pkg/errcode"
)

func NotFoundError(path string, err error) error {
	msg := "Model file <em>%s</em> not found"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ModelNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open model %s: %w", fn.Name(), path, err),
	}
}

func FormatError(path string, err error) error {
	msg := `File <em>%s</em> is not a valid Parhelion model

<em>How to fix:</em>
  1. Make sure the file was created by <em>parhelion create</em>
  2. Check that the file was not edited by hand`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ModelFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot decode model %s: %w", fn.Name(), path, err),
	}
}

func WriteModelError(path string, err error) error {
	msg := "Cannot write model file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteModelError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write model %s: %w", fn.Name(), path, err),
	}
}

func NameCollisionError(file string, names []string) error {
	msg := `Models <em>%s</em> would be written to the same file <em>%s</em>

<em>Note:</em> namespaces are removed from model file names`

	vars := []any{strings.Join(names, ", "), file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ModelNameCollisionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: models %q share file name %s",
			fn.Name(), names, file),
	}
}
