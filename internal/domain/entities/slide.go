package entities

import (
	"fmt"

	"github.com/pyyyc/deckprops/internal/domain/schema"
	"github.com/pyyyc/deckprops/internal/domain/values"
)

// KindSlide is the kind name of individual slides.
const KindSlide = "slide"

// SlideSchema declares an individual slide.
var SlideSchema = schema.MustSchema(KindSlide,
	schema.String("topic", "Topic of the slide", schema.Default("Python!")),
	schema.Color("slide_color", "Color of the slide", schema.Default("white")),
)

// Slide is one slide of a deck.
type Slide struct {
	base
}

// NewSlide validates values and builds a slide.
func NewSlide(raw map[string]any) (*Slide, error) {
	rec, err := SlideSchema.New(raw)
	if err != nil {
		return nil, err
	}
	return &Slide{base{rec}}, nil
}

// Topic returns the slide topic.
func (s *Slide) Topic() string { return s.rec.Text("topic") }

// Color returns the slide color.
func (s *Slide) Color() values.Color { return s.rec.Color("slide_color") }

// Summarize returns a short description.
func (s *Slide) Summarize() string {
	return fmt.Sprintf("Slide about %s.", s.Topic())
}

// StrainsEyes reports whether the slide color will strain the audience's eyes.
func (s *Slide) StrainsEyes() bool {
	return s.Color().StrainsEyes()
}
