package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/parhelion/pkg/errcode"
)

func ReadConfigError(path string, err error) error {
	msg := "Cannot read config file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

func UnsupportedDataTypeError(dataType string, known bool) error {
	msg := `Data type <em>%s</em> is not supported yet

<em>Supported data types:</em>
  * xml`
	reason := "not implemented"
	if !known {
		msg = `Unknown data type <em>%s</em>

<em>Valid data types:</em>
  * %s`
		reason = "unknown"
	}
	vars := []any{dataType}
	if !known {
		vars = append(vars, strings.Join(dataTypes, "\n  * "))
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnsupportedDataTypeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: data type %q is %s", fn.Name(), dataType, reason),
	}
}

func NoModelsError() error {
	msg := `No models to update

<em>How to fix:</em>
  1. Give model files with <em>-m</em>
  2. Or list them under <em>models</em> in the manifest`

	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NoModelsError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: no models given", fn.Name()),
	}
}

func NotImplementedError(command string) error {
	msg := "Command <em>%s</em> is not implemented yet"
	vars := []any{command}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NotImplementedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s is not implemented", fn.Name(), command),
	}
}
