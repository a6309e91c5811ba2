package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// Rect is an axis-aligned rectangle in canvas pixel coordinates.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func (r Rect) Dx() float64 { return r.X1 - r.X0 }
func (r Rect) Dy() float64 { return r.Y1 - r.Y0 }

// Empty reports whether r has no interior.
func (r Rect) Empty() bool { return r.X0 >= r.X1 || r.Y0 >= r.Y1 }

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X0: r.X0 + d, Y0: r.Y0 + d, X1: r.X1 - d, Y1: r.Y1 - d}
}

// Offset moves r by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// Point is a canvas coordinate.
type Point struct {
	X, Y float64
}

// fillRoundedRect composites an anti-aliased rounded rectangle of colour c over dst.
// Empty rectangles draw nothing.
func fillRoundedRect(dst draw.Image, r Rect, radius float64, c color.Color) {
	fillRoundedRectOp(dst, r, radius, c, draw.Over)
}

// fillRoundedRectOp is fillRoundedRect with an explicit operator. With
// draw.Src the covered pixels take c outright, alpha included.
func fillRoundedRectOp(dst draw.Image, r Rect, radius float64, c color.Color, op draw.Op) {
	if r.Empty() {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = op
	roundedRectPath(z, r, radius)
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// fillPolygon composites an anti-aliased closed polygon of colour c over dst.
func fillPolygon(dst draw.Image, pts []Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// roundedRectMask returns an alpha coverage mask of the rounded rectangle.
func roundedRectMask(size int, r Rect, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	fillRoundedRect(mask, r, radius, color.Opaque)
	return mask
}

func roundedRectPath(z *vector.Rasterizer, r Rect, radius float64) {
	radius = math.Max(0, math.Min(radius, math.Min(r.Dx(), r.Dy())/2))
	k := radius * (1 - kappa)
	x0, y0 := float32(r.X0), float32(r.Y0)
	x1, y1 := float32(r.X1), float32(r.Y1)
	rad, kk := float32(radius), float32(k)

	z.MoveTo(x0+rad, y0)
	z.LineTo(x1-rad, y0)
	z.CubeTo(x1-kk, y0, x1, y0+kk, x1, y0+rad)
	z.LineTo(x1, y1-rad)
	z.CubeTo(x1, y1-kk, x1-kk, y1, x1-rad, y1)
	z.LineTo(x0+rad, y1)
	z.CubeTo(x0+kk, y1, x0, y1-kk, x0, y1-rad)
	z.LineTo(x0, y0+rad)
	z.CubeTo(x0, y0+kk, x0+kk, y0, x0+rad, y0)
	z.ClosePath()
}
