// Package render draws the master app icon: a gradient rounded square with
// an optional drop shadow and a white "N" glyph.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// layerCount is the number of rounded rectangles stacked by BackgroundLayered.
const layerCount = 10

// RenderMaster draws the icon for p on a size×size canvas. Sizes below 1 are
// treated as 1. Parameters are not validated; degenerate geometry yields a
// degenerate picture rather than an error.
func RenderMaster(size int, p Preset) *image.RGBA {
	if size < 1 {
		size = 1
	}
	g := p.Geometry
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))

	switch p.Style.Background {
	case BackgroundLayered:
		drawLayered(canvas, p.Palette, g, p.Style)
	default:
		drawSquircle(canvas, p.Palette, g)
	}

	glyph := GlyphLayout(size, g)
	if p.Style.Shadow {
		drawShadow(canvas, glyph, g)
	}
	drawGlyph(canvas, glyph, p.Palette.Glyph)

	if p.Style.Flatten {
		return flatten(canvas, p.Palette.Lightest())
	}
	return canvas
}

// squircleRect is the rounded-square silhouette inside the margin.
func squircleRect(size int, g Geometry) (Rect, float64) {
	s := float64(size)
	m := s * g.Margin
	return Rect{X0: m, Y0: m, X1: s - m, Y1: s - m}, s * g.CornerRadius
}

// fillGradient paints every row of dst with the palette colour for that row.
func fillGradient(dst *image.RGBA, p Palette) {
	b := dst.Bounds()
	h := b.Dy()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y-b.Min.Y) / float64(h-1)
		}
		draw.Draw(dst, image.Rect(b.Min.X, y, b.Max.X, y+1), image.NewUniform(p.At(t)), image.Point{}, draw.Src)
	}
}

func drawSquircle(canvas *image.RGBA, p Palette, g Geometry) {
	size := canvas.Bounds().Dx()
	gradient := image.NewRGBA(canvas.Bounds())
	fillGradient(gradient, p)

	r, radius := squircleRect(size, g)
	mask := roundedRectMask(size, r, radius)
	draw.DrawMask(canvas, canvas.Bounds(), gradient, image.Point{}, mask, image.Point{}, draw.Over)
}

func drawLayered(canvas *image.RGBA, p Palette, g Geometry, style Style) {
	size := canvas.Bounds().Dx()
	r, radius := squircleRect(size, g)
	step := float64(size) * g.LayerStep
	for i := 0; i < layerCount; i++ {
		c := p.At(float64(i) / layerCount)
		fill := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 - i*10)}
		fillRoundedRectOp(canvas, r.Inset(float64(i)*step), radius, fill, style.LayerOp)
	}
}

func drawShadow(canvas *image.RGBA, glyph Glyph, g Geometry) {
	size := canvas.Bounds().Dx()
	off := float64(size) * g.ShadowOffset
	layer := image.NewNRGBA(canvas.Bounds())
	fillRoundedRect(layer, glyph.Bounds().Offset(off, off), glyph.BarRadius, color.NRGBA{A: g.ShadowAlpha})

	blurred := imaging.Blur(layer, float64(size)*g.ShadowBlur)
	draw.Draw(canvas, canvas.Bounds(), blurred, image.Point{}, draw.Over)
}

// flatten composites img over an opaque backing colour.
func flatten(img *image.RGBA, backing color.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(backing), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
	return out
}
