//go:build !linux || !cgo

package preview

import "image"

// Display is only available on Linux with cgo.
func Display(img image.Image, device string) error {
	return ErrNoFramebuffer
}
