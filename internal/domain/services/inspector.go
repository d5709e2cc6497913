// Package services contains domain services operating on entities.
package services

import (
	"errors"

	"github.com/pyyyc/deckprops/internal/domain/entities"
)

// Insight gathers everything an entity can tell about itself.
// Pointer fields are nil when the entity's kind does not support them.
type Insight struct {
	Kind         string
	Summary      string
	CliffNotes   []string
	TimePerSlide *float64
	StrainsEyes  *bool
	Fields       map[string]any

	// PaceError is set when TimePerSlide is supported but undefined.
	PaceError error
}

// Inspect computes the summary and derived values of an entity.
func Inspect(e entities.Entity) Insight {
	in := Insight{
		Kind:    e.Kind(),
		Summary: e.Summarize(),
		Fields:  e.Record().Values(),
	}

	if c, ok := e.(entities.CliffNoter); ok {
		in.CliffNotes = c.CliffNotes()
	}

	if p, ok := e.(entities.Pacer); ok {
		tps, err := p.TimePerSlide()
		if err != nil {
			in.PaceError = err
		} else {
			in.TimePerSlide = &tps
		}
	}

	if s, ok := e.(entities.EyeStrainer); ok {
		strains := s.StrainsEyes()
		in.StrainsEyes = &strains
	}

	return in
}

// HasZeroSlides reports whether the pace is undefined for lack of slides.
func (in Insight) HasZeroSlides() bool {
	return errors.Is(in.PaceError, entities.ErrDivideByZero)
}
