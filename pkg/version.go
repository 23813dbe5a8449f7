// Package parhelion infers structural schemas from corpora of XML documents.
//
// Documents are walked element by element; observed tags, attributes,
// parent/child relations and value types accumulate in a model per root tag.
// Models are persisted as versioned JSON files and can be updated with new
// documents later.
package parhelion

var (
	// Version of the application, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
