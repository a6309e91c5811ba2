package export

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Filter names a resampling kernel.
type Filter string

const (
	// FilterLanczos is a Lanczos-3 kernel.
	FilterLanczos Filter = "lanczos"
	// FilterCatmullRom is the Catmull-Rom cubic from x/image/draw.
	FilterCatmullRom Filter = "catmullrom"
)

// ParseFilter maps a flag value to a Filter. Empty selects FilterLanczos.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case "", FilterLanczos:
		return FilterLanczos, nil
	case FilterCatmullRom:
		return FilterCatmullRom, nil
	}
	return "", fmt.Errorf("unknown filter %q (have %s, %s)", s, FilterLanczos, FilterCatmullRom)
}

// Resize resamples img to size×size. An image already at that size is
// returned unchanged.
func Resize(img image.Image, size int, f Filter) image.Image {
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img
	}
	if f == FilterCatmullRom {
		dst := image.NewNRGBA(image.Rect(0, 0, size, size))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		return dst
	}
	return imaging.Resize(img, size, size, imaging.Lanczos)
}
