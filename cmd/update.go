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

// getUpdateCmd returns the update command.
func getUpdateCmd() *cobra.Command {
	var f ingestFlags

	updateCmd := &cobra.Command{
		Use:   "update [flags] -m MODEL... FILE...",
		Short: "Update existing models with new XML documents",
		Long: `Merge new XML documents into previously created models.

This command:
  1. Loads model files given with -m (or listed in the manifest)
  2. Parses documents and merges their structure into the model
     with the same root tag, new root tags get new models
  3. Infers value types and ranges from the new documents
  4. Writes updated models with an incremented version

Models only grow: elements, attributes, children and value types
that are already recorded are never removed. The version encoded
in a model's file name takes precedence over the one inside the file.

Examples:
  parhelion update -m book.v1.parmodel.json new/*.xml

  # Use a corpus manifest with models and documents
  parhelion update --manifest corpus.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runIngest(cmd, &f, args, true)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addIngestFlags(updateCmd, &f)
	addModelsFlag(updateCmd, &f)

	return updateCmd
}
