package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrDivideByZero is returned by TimePerSlide when there are no slides.
	ErrDivideByZero = errors.New("cannot divide time among zero slides")

	// ErrUnknownKind is returned when a kind is not registered.
	ErrUnknownKind = errors.New("unknown entity kind")
)

// KindNotFoundError indicates a lookup for an unregistered kind.
type KindNotFoundError struct {
	Kind  string
	Known []string
}

func (e *KindNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q (known: %v)", ErrUnknownKind, e.Kind, e.Known)
}

// Unwrap returns ErrUnknownKind.
func (e *KindNotFoundError) Unwrap() error {
	return ErrUnknownKind
}
