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
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	var f ingestFlags

	createCmd := &cobra.Command{
		Use:   "create [flags] FILE...",
		Short: "Create models from XML documents",
		Long: `Create schema models from a corpus of XML documents.

This command:
  1. Parses every document in the given order
  2. Merges the structure of documents with the same root tag
     into one model
  3. Infers value types of elements and ranges of attributes
  4. Writes one model file per root tag into the output directory

Model files are named <root-tag>.v<version>.parmodel.json. If any
document cannot be read or parsed, no model files are written.

Documents can be given as arguments, in a manifest file, or both.

Examples:
  parhelion create books/*.xml

  # Write models into ./models and keep raw observations
  parhelion create -o models --observations books/*.xml

  # Export raw observations to SQLite for inspection
  parhelion create --observations-db obs.sqlite books/*.xml

  # Use a corpus manifest
  parhelion create --manifest corpus.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runIngest(cmd, &f, args, false)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addIngestFlags(createCmd, &f)

	return createCmd
}
