package entities

import (
	"fmt"

	"github.com/pyyyc/deckprops/internal/domain/schema"
)

// KindDeck is the kind name of slide-by-slide presentations.
const KindDeck = "deck"

// DeckSchema declares a presentation made of a presenter and its slides.
var DeckSchema = schema.MustSchema(KindDeck,
	schema.Nested("presenter", "Presenter info", PersonSchema, schema.Required()),
	schema.String("topic", "Topic of presentation", schema.Default("Python!")),
	schema.Float("time_limit", "Time limit in minutes", schema.Default(90.0)),
	schema.List("slides", "Slideshow",
		schema.Nested("slide", "Slide", SlideSchema),
		schema.Default([]any{}),
	),
)

// Deck is a PyYYC presentation described slide by slide.
type Deck struct {
	base
}

// NewDeck validates values and builds a deck.
func NewDeck(raw map[string]any) (*Deck, error) {
	rec, err := DeckSchema.New(raw)
	if err != nil {
		return nil, err
	}
	return &Deck{base{rec}}, nil
}

// Presenter returns the presenter.
func (d *Deck) Presenter() *Person {
	return &Person{base{d.rec.Record("presenter")}}
}

// Topic returns the presentation topic.
func (d *Deck) Topic() string { return d.rec.Text("topic") }

// TimeLimit returns the time limit in minutes.
func (d *Deck) TimeLimit() float64 { return d.rec.Float("time_limit") }

// Slides returns the slides in order.
func (d *Deck) Slides() []*Slide {
	items := d.rec.List("slides")
	slides := make([]*Slide, 0, len(items))
	for _, item := range items {
		slides = append(slides, &Slide{base{item.(*schema.Record)}})
	}
	return slides
}

// Summarize returns a short description. Useful for press junkets.
func (d *Deck) Summarize() string {
	return fmt.Sprintf("Pythonista %s talking about %s.", d.Presenter().Name(), d.Topic())
}

// CliffNotes returns the summary followed by one line per slide.
func (d *Deck) CliffNotes() []string {
	slides := d.Slides()
	notes := make([]string, 0, len(slides)+1)
	notes = append(notes, d.Summarize())
	for i, s := range slides {
		notes = append(notes, fmt.Sprintf("Slide %d: %s", i, s.Topic()))
	}
	return notes
}

// TimePerSlide returns the minutes available for each slide.
func (d *Deck) TimePerSlide() (float64, error) {
	return timePerSlide(d.TimeLimit(), len(d.rec.List("slides")))
}

// StrainsEyes reports whether any slide will strain the audience's eyes.
func (d *Deck) StrainsEyes() bool {
	for _, s := range d.Slides() {
		if s.StrainsEyes() {
			return true
		}
	}
	return false
}
