package entities

import (
	"github.com/pyyyc/deckprops/internal/domain/schema"
)

// KindPerson is the kind name of people.
const KindPerson = "person"

// PersonSchema declares basic info about a person.
var PersonSchema = schema.MustSchema(KindPerson,
	schema.String("name", "Name of person", schema.Required()),
	schema.String("bio", "Short biography"),
)

// Person is a presenter.
type Person struct {
	base
}

// NewPerson validates values and builds a person.
func NewPerson(raw map[string]any) (*Person, error) {
	rec, err := PersonSchema.New(raw)
	if err != nil {
		return nil, err
	}
	return &Person{base{rec}}, nil
}

// Name returns the person's name.
func (p *Person) Name() string { return p.rec.Text("name") }

// Bio returns the biography, "" when unset.
func (p *Person) Bio() string { return p.rec.Text("bio") }

// Summarize returns the name, followed by the bio when there is one.
func (p *Person) Summarize() string {
	if p.Bio() == "" {
		return p.Name()
	}
	return p.Name() + ": " + p.Bio()
}
