package preview

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"image"
	"image/draw"
)

// Fingerprint identifies an image by the first 12 hex digits of a SHA-256
// over its dimensions and non-premultiplied pixels.
func Fingerprint(img image.Image) string {
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)

	h := sha256.New()
	var dims [8]byte
	binary.BigEndian.PutUint32(dims[:4], uint32(b.Dx()))
	binary.BigEndian.PutUint32(dims[4:], uint32(b.Dy()))
	h.Write(dims[:])
	h.Write(n.Pix)
	return hex.EncodeToString(h.Sum(nil))[:12]
}

// Payload is the QR text stamped on a proof sheet.
func Payload(preset, fingerprint string) string {
	return "iconset:" + preset + ":" + fingerprint
}
