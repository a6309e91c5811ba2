package render

import (
	"image/color"
	"image/draw"
)

// Glyph is the "N" laid out on a canvas: two vertical bars joined by a
// diagonal quadrilateral.
type Glyph struct {
	Left      Rect
	Right     Rect
	BarRadius float64
	Diagonal  [4]Point
}

// Bounds returns the box spanning both bars.
func (g Glyph) Bounds() Rect {
	return Rect{X0: g.Left.X0, Y0: g.Left.Y0, X1: g.Right.X1, Y1: g.Right.Y1}
}

// GlyphLayout computes the glyph for a size×size canvas.
//
// The diagonal corners are, in drawing order:
//
//	(L+x·w, T), (L+(1+x)·w, T+y·w), (S-L-x·w, B-y·w), (S-L, B)
//
// where L is the inset, w the stroke width, x the diagonal inset and y the
// diagonal drop.
func GlyphLayout(size int, g Geometry) Glyph {
	s := float64(size)
	inset := s * g.GlyphInset
	w := s * g.StrokeWidth
	x, y := g.DiagonalInset, g.DiagonalDrop
	top, bottom := inset, s-inset

	return Glyph{
		Left:      Rect{X0: inset, Y0: top, X1: inset + w, Y1: bottom},
		Right:     Rect{X0: s - inset - w, Y0: top, X1: s - inset, Y1: bottom},
		BarRadius: w * g.BarRadius,
		Diagonal: [4]Point{
			{X: inset + x*w, Y: top},
			{X: inset + (1+x)*w, Y: top + y*w},
			{X: s - inset - x*w, Y: bottom - y*w},
			{X: s - inset, Y: bottom},
		},
	}
}

func drawGlyph(dst draw.Image, g Glyph, c color.Color) {
	fillRoundedRect(dst, g.Left, g.BarRadius, c)
	fillRoundedRect(dst, g.Right, g.BarRadius, c)
	fillPolygon(dst, g.Diagonal[:], c)
}
