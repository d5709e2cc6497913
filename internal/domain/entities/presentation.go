package entities

import (
	"fmt"

	"github.com/pyyyc/deckprops/internal/domain/schema"
)

// Kind names of the meetup presentations.
const (
	KindPyYYC = "pyyyc"
	KindYYCjs = "yycjs"
)

// talkFields is the field group shared by the meetup talk kinds.
func talkFields() []schema.Field {
	return []schema.Field{
		schema.String("presenter", "Name of the presenter", schema.Required()),
		schema.String("topic", "Brief explanation of the topic", schema.Required()),
		schema.Float("time_limit", "Time limit of the presentation in minutes", schema.Required()),
		schema.Int("nslides", "Number of powerpoint slides", schema.Required()),
		schema.Color("slide_color", "RGB color of the slides", schema.Required()),
	}
}

var (
	// PyYYCSchema declares a PyYYC meetup presentation.
	PyYYCSchema = schema.MustSchema(KindPyYYC, talkFields()...)

	// YYCjsSchema declares a YYCjs meetup presentation.
	YYCjsSchema = schema.MustSchema(KindYYCjs, talkFields()...)
)

// talk implements the accessors and derived values common to meetup talks.
type talk struct {
	base
}

// Presenter returns the presenter's name.
func (t talk) Presenter() string { return t.rec.Text("presenter") }

// Topic returns the talk topic.
func (t talk) Topic() string { return t.rec.Text("topic") }

// TimeLimit returns the time limit in minutes.
func (t talk) TimeLimit() float64 { return t.rec.Float("time_limit") }

// SlideCount returns the number of slides.
func (t talk) SlideCount() int { return t.rec.Int("nslides") }

// TimePerSlide returns the minutes available for each slide.
func (t talk) TimePerSlide() (float64, error) {
	return timePerSlide(t.TimeLimit(), t.SlideCount())
}

// PyYYCPresentation is a talk at the PyYYC meetup.
type PyYYCPresentation struct {
	talk
}

// NewPyYYCPresentation validates values and builds a PyYYC presentation.
func NewPyYYCPresentation(raw map[string]any) (*PyYYCPresentation, error) {
	rec, err := PyYYCSchema.New(raw)
	if err != nil {
		return nil, err
	}
	return &PyYYCPresentation{talk{base{rec}}}, nil
}

// Summarize returns a short description. Useful for press junkets.
func (p *PyYYCPresentation) Summarize() string {
	return fmt.Sprintf("Pythonista %s talking about %s.", p.Presenter(), p.Topic())
}

// StrainsEyes reports whether the slide color will strain the audience's eyes.
func (p *PyYYCPresentation) StrainsEyes() bool {
	return p.rec.Color("slide_color").StrainsEyes()
}

// YYCjsPresentation is a talk at the YYCjs meetup.
type YYCjsPresentation struct {
	talk
}

// NewYYCjsPresentation validates values and builds a YYCjs presentation.
func NewYYCjsPresentation(raw map[string]any) (*YYCjsPresentation, error) {
	rec, err := YYCjsSchema.New(raw)
	if err != nil {
		return nil, err
	}
	return &YYCjsPresentation{talk{base{rec}}}, nil
}

// Summarize returns a short description.
func (p *YYCjsPresentation) Summarize() string {
	return fmt.Sprintf("JavaScripter %s talking about %s.", p.Presenter(), p.Topic())
}

// StrainsEyes is always false for YYCjs talks.
func (p *YYCjsPresentation) StrainsEyes() bool {
	return false
}
