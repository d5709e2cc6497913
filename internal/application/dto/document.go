package dto

// Document is one entity description read from a source file.
type Document struct {
	// Source is the file the document came from.
	Source string
	// Index is the position of the document within its source, from 0.
	Index int
	// Version is the document format version (semver).
	Version string
	// Kind names the entity kind.
	Kind string
	// Fields holds the raw, unvalidated field values.
	Fields map[string]any
}
