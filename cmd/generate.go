/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"strconv"
	"strings"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getGenerateCmd returns the generate command. Generation of documents
// from models is not implemented, the command validates its input and
// reports that.
func getGenerateCmd() *cobra.Command {
	var f ingestFlags

	generateCmd := &cobra.Command{
		Use:   "generate [flags] -m MODEL... N",
		Short: "Generate documents from models (not implemented)",
		Long: `Generate N synthetic documents that conform to given models.

This feature is not implemented yet.

Examples:
  parhelion generate -m book.v2.parmodel.json 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runGenerate(&f, args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addDataTypeFlag(generateCmd, &f)
	addModelsFlag(generateCmd, &f)

	return generateCmd
}

func runGenerate(f *ingestFlags, num string) error {
	dataType := strings.ToLower(strings.TrimSpace(f.dataType))
	if err := checkDataType(dataType); err != nil {
		return err
	}
	if len(f.models) == 0 {
		return NoModelsError()
	}
	if n, err := strconv.Atoi(num); err != nil || n < 1 {
		gn.Warn("<em>N</em> must be a positive number, got '%s'", num)
	}
	return NotImplementedError("generate")
}
