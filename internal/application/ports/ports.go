// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/pyyyc/deckprops/internal/application/dto"
	"github.com/pyyyc/deckprops/internal/domain/schema"
	"github.com/pyyyc/deckprops/internal/domain/values"
	"github.com/pyyyc/deckprops/internal/infrastructure/system"
)

// DocumentLoader reads entity documents from storage.
type DocumentLoader interface {
	LoadDocuments(ctx context.Context, path string) ([]dto.Document, error)
}

// DocumentLinter checks raw fields against a schema and reports every
// issue found, without building anything.
type DocumentLinter interface {
	Lint(s *schema.Schema, fields map[string]any) ([]string, error)
}

// ReportRepository stores check reports.
type ReportRepository interface {
	Save(ctx context.Context, report *dto.Report) error
	FindByID(ctx context.Context, id values.RunID) (*dto.Report, error)
}

// SystemConfigProvider loads system configuration.
type SystemConfigProvider interface {
	LoadConfig(ctx context.Context, path string) (*system.Config, error)
}

// OutputFormatter formats check reports.
type OutputFormatter interface {
	Format(report *dto.Report) error
}

// FormatterOptions tune formatter output.
type FormatterOptions struct {
	Indent bool
	Color  bool
}

// OutputFormatterFactory creates formatters by name.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}
