package ioingest

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/parhelion/pkg/errcode"
)

func NoInputError() error {
	msg := `No input files to ingest

<em>How to fix:</em>
  1. Give document files as arguments
  2. Or use <em>--manifest</em> with a list of documents`

	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NoInputError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: no input files", fn.Name()),
	}
}

func CancelledError(err error) error {
	msg := "Ingestion was cancelled, no models were written"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cancelled: %w", fn.Name(), err),
	}
}
