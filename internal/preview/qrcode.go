package preview

import (
	"image"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 128

// qrImage returns a QR code image for payload, or (nil, nil) when payload is empty.
func qrImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	qrCode.DisableBorder = true

	return qrCode.Image(sizePx), nil
}
