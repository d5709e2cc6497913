// Package entities contains the presentation entity kinds. Each kind owns a
// flat schema of validated attributes and adds summaries and derived values
// on top of the generic record.
package entities

import (
	"github.com/pyyyc/deckprops/internal/domain/schema"
)

// Entity is a validated record of a known kind.
type Entity interface {
	Kind() string
	Record() *schema.Record
	Set(name string, value any) error
	Summarize() string
}

// Pacer is implemented by entities that split a time budget across slides.
type Pacer interface {
	TimePerSlide() (float64, error)
}

// EyeStrainer is implemented by entities with slide colors.
type EyeStrainer interface {
	StrainsEyes() bool
}

// CliffNoter is implemented by entities with a per-slide outline.
type CliffNoter interface {
	CliffNotes() []string
}

// base carries the record shared by every kind.
type base struct {
	rec *schema.Record
}

// Kind returns the entity kind name.
func (b base) Kind() string {
	return b.rec.Kind()
}

// Record returns the underlying validated record.
func (b base) Record() *schema.Record {
	return b.rec
}

// Set validates and stores a single field.
func (b base) Set(name string, value any) error {
	return b.rec.Set(name, value)
}

func timePerSlide(timeLimit float64, slides int) (float64, error) {
	if slides == 0 {
		return 0, ErrDivideByZero
	}
	return timeLimit / float64(slides), nil
}
