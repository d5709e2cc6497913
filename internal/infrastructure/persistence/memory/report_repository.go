// Package memory provides in-memory implementations of application repositories.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pyyyc/deckprops/internal/application/dto"
	"github.com/pyyyc/deckprops/internal/application/ports"
	"github.com/pyyyc/deckprops/internal/domain/values"
)

// Ensure interface compliance
var _ ports.ReportRepository = (*ReportRepository)(nil)

// ErrReportNotFound is returned when no report has the requested ID.
var ErrReportNotFound = errors.New("report not found")

// ReportRepository is an in-memory store of check reports.
// Useful for testing and ephemeral storage.
type ReportRepository struct {
	reports map[uuid.UUID]*dto.Report
	mu      sync.RWMutex
}

// NewReportRepository creates a new in-memory repository.
func NewReportRepository() *ReportRepository {
	return &ReportRepository{
		reports: make(map[uuid.UUID]*dto.Report),
	}
}

// Save stores a report under its run ID.
// Callers should not modify the report after saving.
func (r *ReportRepository) Save(_ context.Context, report *dto.Report) error {
	if report == nil || report.ID.IsZero() {
		return errors.New("report must have a run ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports[report.ID.UUID()] = report
	return nil
}

// FindByID retrieves a report by its run ID.
func (r *ReportRepository) FindByID(_ context.Context, id values.RunID) (*dto.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[id.UUID()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	return report, nil
}

// FindRecent returns up to limit reports, newest first. A limit <= 0
// returns every report.
func (r *ReportRepository) FindRecent(_ context.Context, limit int) ([]*dto.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*dto.Report, 0, len(r.reports))
	for _, report := range r.reports {
		matches = append(matches, report)
	}

	sortNewestFirst(matches)

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// FindBetween returns reports started within [start, end], newest first.
func (r *ReportRepository) FindBetween(_ context.Context, start, end time.Time) ([]*dto.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*dto.Report
	for _, report := range r.reports {
		if !report.StartTime.Before(start) && !report.StartTime.After(end) {
			matches = append(matches, report)
		}
	}

	sortNewestFirst(matches)
	return matches, nil
}

func sortNewestFirst(reports []*dto.Report) {
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].StartTime.After(reports[j].StartTime)
	})
}
