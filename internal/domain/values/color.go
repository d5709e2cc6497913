package values

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Color is an RGB triple with channels in [0, 255].
type Color struct {
	rgb [3]uint8
}

// Named colors accepted as shorthand.
var (
	ColorRed   = Color{[3]uint8{255, 0, 0}}
	ColorGreen = Color{[3]uint8{0, 255, 0}}
	ColorBlue  = Color{[3]uint8{0, 0, 255}}
	ColorWhite = Color{[3]uint8{255, 255, 255}}
	ColorBlack = Color{[3]uint8{0, 0, 0}}
)

var palette = map[string]Color{
	"red":   ColorRed,
	"green": ColorGreen,
	"blue":  ColorBlue,
	"white": ColorWhite,
	"black": ColorBlack,
}

// PaletteNames returns the color names ParseColor understands, sorted.
func PaletteNames() []string {
	return []string{"black", "blue", "green", "red", "white"}
}

// ParseColor validates v as a color.
//
// A palette name is replaced by its triple. Otherwise v must be a slice or
// array of exactly three integers, each in [0, 255].
func ParseColor(v any) (Color, error) {
	switch c := v.(type) {
	case Color:
		return c, nil
	case *Color:
		if c == nil {
			return Color{}, fmt.Errorf("<nil>: must be rgb color")
		}
		return *c, nil
	case string:
		named, ok := palette[c]
		if !ok {
			return Color{}, fmt.Errorf("%q: must be rgb color or one of %s", c, strings.Join(PaletteNames(), ", "))
		}
		return named, nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return Color{}, fmt.Errorf("%v: must be rgb color", v)
	}
	if rv.Len() != 3 {
		return Color{}, fmt.Errorf("%v: must be rgb color", v)
	}

	var out Color
	for i := 0; i < 3; i++ {
		n, ok := AsInteger(rv.Index(i).Interface())
		if !ok {
			return Color{}, fmt.Errorf("%v: rgb must be ints", v)
		}
		if n < 0 || n > 255 {
			return Color{}, fmt.Errorf("%v: rgb must be 0-255", v)
		}
		out.rgb[i] = uint8(n)
	}
	return out, nil
}

// MustParseColor parses a color or panics (for tests/constants)
func MustParseColor(v any) Color {
	c, err := ParseColor(v)
	if err != nil {
		panic(err)
	}
	return c
}

// Channels returns the channels as a slice.
func (c Color) Channels() []int {
	return []int{int(c.rgb[0]), int(c.rgb[1]), int(c.rgb[2])}
}

// String formats the color as a list, e.g. [255, 0, 0].
func (c Color) String() string {
	return fmt.Sprintf("[%d, %d, %d]", c.rgb[0], c.rgb[1], c.rgb[2])
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.rgb[0], c.rgb[1], c.rgb[2])
}

// StrainsEyes reports whether some channel is above 200 while some
// (possibly different) channel is below 50.
func (c Color) StrainsEyes() bool {
	var bright, dark bool
	for _, ch := range c.rgb {
		if ch > 200 {
			bright = true
		}
		if ch < 50 {
			dark = true
		}
	}
	return bright && dark
}

// MarshalJSON implements json.Marshaler
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Channels())
}

// MarshalYAML implements yaml.InterfaceMarshaler
func (c Color) MarshalYAML() (any, error) {
	return c.Channels(), nil
}
