package entities

import (
	"sort"

	"github.com/pyyyc/deckprops/internal/domain/schema"
)

// Kind binds a schema to the constructor wrapping its records.
type Kind struct {
	Name   string
	Schema *schema.Schema
	Wrap   func(*schema.Record) Entity
}

// Registry holds the known entity kinds.
type Registry struct {
	kinds map[string]Kind
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds: make(map[string]Kind),
	}
}

// DefaultRegistry returns a registry with every built-in kind.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Kind{Name: KindPyYYC, Schema: PyYYCSchema, Wrap: func(rec *schema.Record) Entity {
		return &PyYYCPresentation{talk{base{rec}}}
	}})
	r.Register(Kind{Name: KindYYCjs, Schema: YYCjsSchema, Wrap: func(rec *schema.Record) Entity {
		return &YYCjsPresentation{talk{base{rec}}}
	}})
	r.Register(Kind{Name: KindFreeSpirit, Schema: FreeSpiritSchema, Wrap: func(rec *schema.Record) Entity {
		return &FreeSpiritPresentation{base{rec}}
	}})
	r.Register(Kind{Name: KindPerson, Schema: PersonSchema, Wrap: func(rec *schema.Record) Entity {
		return &Person{base{rec}}
	}})
	r.Register(Kind{Name: KindSlide, Schema: SlideSchema, Wrap: func(rec *schema.Record) Entity {
		return &Slide{base{rec}}
	}})
	r.Register(Kind{Name: KindDeck, Schema: DeckSchema, Wrap: func(rec *schema.Record) Entity {
		return &Deck{base{rec}}
	}})
	return r
}

// Register adds a kind, replacing any kind with the same name.
func (r *Registry) Register(k Kind) {
	r.kinds[k.Name] = k
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (Kind, error) {
	k, ok := r.kinds[name]
	if !ok {
		return Kind{}, &KindNotFoundError{Kind: name, Known: r.Names()}
	}
	return k, nil
}

// Names returns the registered kind names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build validates raw values against the kind's schema and wraps the record.
func (r *Registry) Build(kind string, raw map[string]any) (Entity, error) {
	k, err := r.Lookup(kind)
	if err != nil {
		return nil, err
	}
	rec, err := k.Schema.New(raw)
	if err != nil {
		return nil, err
	}
	return k.Wrap(rec), nil
}
