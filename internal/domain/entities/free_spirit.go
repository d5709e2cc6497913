package entities

import (
	"fmt"

	"github.com/pyyyc/deckprops/internal/domain/schema"
	"github.com/pyyyc/deckprops/internal/domain/values"
)

// KindFreeSpirit is the kind name of free-spirit presentations.
const KindFreeSpirit = "free_spirit"

// FreeSpiritSchema declares a free-spirit presentation.
var FreeSpiritSchema = schema.MustSchema(KindFreeSpirit,
	schema.String("presenter", "Name of the presenter", schema.Required()),
	schema.Color("favorite_color", "Favorite color of the presenter", schema.Required()),
)

// FreeSpiritPresentation has a presenter and a favorite color, nothing else.
type FreeSpiritPresentation struct {
	base
}

// NewFreeSpiritPresentation validates values and builds a free-spirit presentation.
func NewFreeSpiritPresentation(raw map[string]any) (*FreeSpiritPresentation, error) {
	rec, err := FreeSpiritSchema.New(raw)
	if err != nil {
		return nil, err
	}
	return &FreeSpiritPresentation{base{rec}}, nil
}

// Presenter returns the presenter's name.
func (p *FreeSpiritPresentation) Presenter() string { return p.rec.Text("presenter") }

// FavoriteColor returns the presenter's favorite color.
func (p *FreeSpiritPresentation) FavoriteColor() values.Color { return p.rec.Color("favorite_color") }

// Summarize returns a short description.
func (p *FreeSpiritPresentation) Summarize() string {
	return fmt.Sprintf("%s loves %s.", p.Presenter(), p.FavoriteColor())
}
