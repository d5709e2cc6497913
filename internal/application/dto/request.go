// Package dto contains data transfer objects for application layer use cases.
package dto

// CheckDocumentsRequest encapsulates all inputs needed to check documents.
type CheckDocumentsRequest struct {
	Paths    []string
	Options  CheckOptions
	Filters  FilterOptions
	Metadata RequestMetadata
}

// FilterOptions defines which valid entities appear in the report.
type FilterOptions struct {
	// FilterExpression is an expr-lang boolean expression over kind,
	// summary, time_per_slide, has_pace, strains_eyes and fields.
	FilterExpression string
	// Kinds restricts the report to these kinds (empty = all).
	Kinds []string
}

// CheckOptions controls validation behavior.
type CheckOptions struct {
	// Lint runs the collect-all JSON Schema pass before construction.
	Lint bool
}

// RequestMetadata contains metadata for request tracking.
type RequestMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string
}
