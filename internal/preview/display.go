package preview

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/nouvelle/iconset/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// ErrNoFramebuffer is returned by Display on platforms without /dev/fb*.
var ErrNoFramebuffer = errors.New("framebuffer display not supported on this platform")

// blit clears dst to black and draws src into it, scaled with nearest-neighbour
// sampling to the largest size that keeps its aspect ratio.
func blit(dst draw.Image, src image.Image) {
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, image.NewUniform(color.Black), image.Point{}, draw.Src)

	sb := src.Bounds()
	if sb.Empty() || bounds.Empty() {
		return
	}
	w, h := bounds.Dx(), sb.Dy()*bounds.Dx()/sb.Dx()
	if h > bounds.Dy() {
		w, h = sb.Dx()*bounds.Dy()/sb.Dy(), bounds.Dy()
	}
	xdraw.NearestNeighbor.Scale(dst, layout.Center(bounds, w, h), src, sb, xdraw.Src, nil)
}
