package ioxml

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/parhelion/pkg/errcode"
)

// ParseError is returned when a document is not well-formed XML.
func ParseError(path string, err error) error {
	msg := `Cannot parse XML document <em>%s</em>

<em>Possible causes:</em>
  - Document is not well-formed
  - Document is empty or truncated
  - File is not XML`

	if path == "" {
		path = "from input stream"
	}
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

// ReadFileError is returned when a document file cannot be opened.
func ReadFileError(path string, err error) error {
	msg := "Cannot read file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}
