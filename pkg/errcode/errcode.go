// Package errcode enumerates error codes used in gn.Error values
// produced by parhelion.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Input errors
	NoInputError
	ParseError
	UnsupportedDataTypeError
	ManifestError

	// Model errors
	ModelNotFoundError
	ModelFormatError
	InvalidFieldError
	WriteModelError
	NoModelsError
	ModelNameCollisionError

	// Inference errors
	UnsupportedTypeError

	// Ingest errors
	CancelledError
	ObservationsDBError

	// Command errors
	NotImplementedError
)
