package dto

import (
	"time"

	"github.com/pyyyc/deckprops/internal/domain/values"
)

// Report contains the result of checking a set of documents.
type Report struct {
	ID        values.RunID   `json:"id" yaml:"id"`
	RequestID string         `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	StartTime time.Time      `json:"start_time" yaml:"start_time"`
	Duration  time.Duration  `json:"duration" yaml:"duration"`
	Results   []EntityResult `json:"results" yaml:"results"`
	Summary   ReportSummary  `json:"summary" yaml:"summary"`
}

// EntityResult describes one checked document.
type EntityResult struct {
	Source       string         `json:"source" yaml:"source"`
	Index        int            `json:"index" yaml:"index"`
	Kind         string         `json:"kind" yaml:"kind"`
	Valid        bool           `json:"valid" yaml:"valid"`
	Summary      string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	CliffNotes   []string       `json:"cliff_notes,omitempty" yaml:"cliff_notes,omitempty"`
	TimePerSlide *float64       `json:"time_per_slide,omitempty" yaml:"time_per_slide,omitempty"`
	StrainsEyes  *bool          `json:"strains_eyes,omitempty" yaml:"strains_eyes,omitempty"`
	Fields       map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
	Error        string         `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind    string         `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	LintIssues   []string       `json:"lint_issues,omitempty" yaml:"lint_issues,omitempty"`
	Notes        []string       `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// ReportSummary contains aggregate counts.
type ReportSummary struct {
	Documents   int `json:"documents" yaml:"documents"`
	Valid       int `json:"valid" yaml:"valid"`
	Invalid     int `json:"invalid" yaml:"invalid"`
	Filtered    int `json:"filtered" yaml:"filtered"`
	StrainsEyes int `json:"strains_eyes" yaml:"strains_eyes"`
}

// HasFailures reports whether any document was invalid.
func (r *Report) HasFailures() bool {
	return r.Summary.Invalid > 0
}
