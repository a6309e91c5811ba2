//go:build linux && cgo

package preview

import (
	"image"

	fb "github.com/gonutz/framebuffer"
)

// Display shows img on the framebuffer device, e.g. "/dev/fb0".
func Display(img image.Image, device string) error {
	dev, err := fb.Open(device)
	if err != nil {
		return err
	}
	defer dev.Close()
	blit(dev, img)
	return nil
}
