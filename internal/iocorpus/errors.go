package iocorpus

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/parhelion/pkg/errcode"
)

func ManifestError(path string, err error) error {
	msg := `Cannot use corpus manifest <em>%s</em>

<em>How to fix:</em>
  1. Check that the file is valid YAML
  2. List at least one file under <em>documents</em>
  3. Use one of <em>xml, json, csv</em> for <em>data_type</em>`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ManifestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: invalid manifest %s: %w", fn.Name(), path, err),
	}
}
