package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadColor is returned when a palette colour cannot be parsed.
var ErrBadColor = errors.New("bad colour")

// Palette holds the gradient endpoints (top to bottom) and the glyph colour.
type Palette struct {
	Start color.RGBA
	End   color.RGBA
	Glyph color.RGBA
}

// ParsePalette builds a palette from "#rrggbb" gradient endpoints with a white glyph.
func ParsePalette(start, end string) (Palette, error) {
	s, err := parseHex(start)
	if err != nil {
		return Palette{}, err
	}
	e, err := parseHex(end)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Start: s, End: e, Glyph: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func parseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w %q: %v", ErrBadColor, s, err)
	}
	return toRGBA(c), nil
}

// At returns the linear RGB interpolation between Start and End at t in [0,1].
func (p Palette) At(t float64) color.RGBA {
	if t <= 0 {
		return opaque(p.Start)
	}
	if t >= 1 {
		return opaque(p.End)
	}
	return toRGBA(fromRGBA(p.Start).BlendRgb(fromRGBA(p.End), t))
}

// Lightest returns the gradient endpoint with the higher CIE L* lightness.
// Ties resolve to End.
func (p Palette) Lightest() color.RGBA {
	ls, _, _ := fromRGBA(p.Start).Lab()
	le, _, _ := fromRGBA(p.End).Lab()
	if ls > le {
		return opaque(p.Start)
	}
	return opaque(p.End)
}

func fromRGBA(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xFF
	return c
}
