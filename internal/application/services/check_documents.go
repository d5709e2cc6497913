// Package services contains application use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/pyyyc/deckprops/internal/application/dto"
	apperrors "github.com/pyyyc/deckprops/internal/application/errors"
	"github.com/pyyyc/deckprops/internal/application/ports"
	"github.com/pyyyc/deckprops/internal/domain/entities"
	"github.com/pyyyc/deckprops/internal/domain/schema"
	"github.com/pyyyc/deckprops/internal/domain/services"
	"github.com/pyyyc/deckprops/internal/domain/values"
	"golang.org/x/sync/errgroup"
)

// Error kinds reported on invalid results.
const (
	ErrorKindInvalidValue = "invalid_value"
	ErrorKindUnknownField = "unknown_field"
	ErrorKindPrivateField = "private_field"
	ErrorKindMissingField = "missing_field"
	ErrorKindUnknownKind  = "unknown_kind"
)

// CheckDocumentsUseCase loads entity documents, validates them through the
// registered schemas and reports summaries and derived values.
type CheckDocumentsUseCase struct {
	loader   ports.DocumentLoader
	linter   ports.DocumentLinter
	registry *entities.Registry
	reports  ports.ReportRepository
	logger   *slog.Logger
}

// NewCheckDocumentsUseCase creates a new check documents use case.
// linter and reports may be nil.
func NewCheckDocumentsUseCase(
	loader ports.DocumentLoader,
	linter ports.DocumentLinter,
	registry *entities.Registry,
	reports ports.ReportRepository,
	logger *slog.Logger,
) *CheckDocumentsUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	if registry == nil {
		registry = entities.DefaultRegistry()
	}

	return &CheckDocumentsUseCase{
		loader:   loader,
		linter:   linter,
		registry: registry,
		reports:  reports,
		logger:   logger,
	}
}

// Execute runs the complete check workflow.
func (uc *CheckDocumentsUseCase) Execute(ctx context.Context, req dto.CheckDocumentsRequest) (*dto.Report, error) {
	startTime := time.Now()

	if len(req.Paths) == 0 {
		return nil, apperrors.NewValidationError("paths", "at least one document path is required")
	}

	filter, err := services.CompileEntityFilter(req.Filters.FilterExpression)
	if err != nil {
		return nil, apperrors.NewValidationError("filter", err.Error())
	}

	if req.Options.Lint && uc.linter == nil {
		return nil, apperrors.NewConfigurationError("lint", "no linter configured", nil)
	}

	docs, err := uc.loadAll(ctx, req.Paths)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("documents loaded", "files", len(req.Paths), "documents", len(docs))

	report := &dto.Report{
		ID:        values.NewRunID(),
		RequestID: req.Metadata.RequestID,
		StartTime: startTime,
		Results:   make([]dto.EntityResult, 0, len(docs)),
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if len(req.Filters.Kinds) > 0 && !slices.Contains(req.Filters.Kinds, doc.Kind) {
			report.Summary.Filtered++
			continue
		}

		result, insight := uc.checkDocument(doc, req.Options.Lint)
		if result.Valid {
			keep, err := filter.Matches(insight)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", doc.Source, doc.Index, err)
			}
			if !keep {
				report.Summary.Filtered++
				continue
			}
		}

		report.Results = append(report.Results, result)
	}

	report.Summary = summarize(report.Results, report.Summary.Filtered)
	report.Duration = time.Since(startTime)

	uc.logger.Info("check complete",
		"documents", len(docs),
		"valid", report.Summary.Valid,
		"invalid", report.Summary.Invalid,
		"filtered", report.Summary.Filtered)

	if uc.reports != nil {
		if err := uc.reports.Save(ctx, report); err != nil {
			return nil, fmt.Errorf("failed to save report: %w", err)
		}
	}

	return report, nil
}

// loadAll reads every path concurrently, keeping documents in path order.
func (uc *CheckDocumentsUseCase) loadAll(ctx context.Context, paths []string) ([]dto.Document, error) {
	loaded := make([][]dto.Document, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			docs, err := uc.loader.LoadDocuments(gctx, path)
			if err != nil {
				return apperrors.NewLoadError(path, err)
			}
			uc.logger.Debug("loaded source", "path", path, "documents", len(docs))
			loaded[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var docs []dto.Document
	for _, batch := range loaded {
		docs = append(docs, batch...)
	}
	return docs, nil
}

// checkDocument builds one document into an entity. Construction is
// fail-fast; the optional lint pass lists every issue beforehand.
func (uc *CheckDocumentsUseCase) checkDocument(doc dto.Document, lint bool) (dto.EntityResult, services.Insight) {
	result := dto.EntityResult{
		Source: doc.Source,
		Index:  doc.Index,
		Kind:   doc.Kind,
	}

	kind, err := uc.registry.Lookup(doc.Kind)
	if err != nil {
		result.Error = err.Error()
		result.ErrorKind = ErrorKindUnknownKind
		return result, services.Insight{}
	}

	if lint {
		issues, err := uc.linter.Lint(kind.Schema, doc.Fields)
		if err != nil {
			uc.logger.Warn("lint failed", "source", doc.Source, "index", doc.Index, "error", err)
		}
		result.LintIssues = issues
	}

	rec, err := kind.Schema.New(doc.Fields)
	if err != nil {
		uc.logger.Debug("document rejected", "source", doc.Source, "index", doc.Index, "error", err)
		result.Error = err.Error()
		result.ErrorKind = ErrorKind(err)
		return result, services.Insight{}
	}

	insight := services.Inspect(kind.Wrap(rec))
	result.Valid = true
	result.Summary = insight.Summary
	result.CliffNotes = insight.CliffNotes
	result.TimePerSlide = insight.TimePerSlide
	result.StrainsEyes = insight.StrainsEyes
	result.Fields = insight.Fields
	switch {
	case insight.HasZeroSlides():
		result.Notes = append(result.Notes, "time per slide undefined: the deck has zero slides")
	case insight.PaceError != nil:
		result.Notes = append(result.Notes, "time per slide undefined: "+insight.PaceError.Error())
	}

	return result, insight
}

// ErrorKind names the failure category of a construction error.
func ErrorKind(err error) string {
	var fe *schema.FieldError
	if !errors.As(err, &fe) {
		if errors.Is(err, entities.ErrUnknownKind) {
			return ErrorKindUnknownKind
		}
		return ""
	}

	switch fe.Kind {
	case schema.ErrInvalidValue:
		return ErrorKindInvalidValue
	case schema.ErrUnknownField:
		return ErrorKindUnknownField
	case schema.ErrPrivateField:
		return ErrorKindPrivateField
	case schema.ErrMissingField:
		return ErrorKindMissingField
	default:
		return ""
	}
}

func summarize(results []dto.EntityResult, filtered int) dto.ReportSummary {
	s := dto.ReportSummary{
		Documents: len(results) + filtered,
		Filtered:  filtered,
	}
	for _, r := range results {
		if !r.Valid {
			s.Invalid++
			continue
		}
		s.Valid++
		if r.StrainsEyes != nil && *r.StrainsEyes {
			s.StrainsEyes++
		}
	}
	return s
}
