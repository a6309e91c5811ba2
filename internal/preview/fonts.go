package preview

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/nouvelle/iconset/internal/assets"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	titlePt = 28
	labelPt = 14
)

var (
	facesOnce sync.Once
	titleFace font.Face
	labelFace font.Face
)

// faces returns the title and label faces, falling back to basicfont when
// the embedded fonts fail to load.
func faces() (title, label font.Face) {
	facesOnce.Do(func() {
		titleFace = basicfont.Face7x13
		labelFace = basicfont.Face7x13
		if otf, err := opentype.Parse(assets.TitleTTF); err == nil {
			face, ferr := opentype.NewFace(otf, &opentype.FaceOptions{Size: titlePt, DPI: 72, Hinting: font.HintingFull})
			if ferr == nil {
				titleFace = face
			}
		}
		if tt, err := truetype.Parse(assets.LabelTTF); err == nil {
			labelFace = truetype.NewFace(tt, &truetype.Options{Size: labelPt, DPI: 72, Hinting: font.HintingFull})
		}
	})
	return titleFace, labelFace
}

// drawTextCentered draws text horizontally centred in rect with its
// baseline placed so the line is vertically centred.
func drawTextCentered(dst draw.Image, rect image.Rectangle, text string, fg color.Color, face font.Face) {
	drawer := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: face}
	metrics := face.Metrics()
	textWidth := drawer.MeasureString(text).Ceil()
	xPos := rect.Min.X + (rect.Dx()-textWidth)/2
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil()
	baseline := rect.Min.Y + (rect.Dy()-lineHeight)/2 + metrics.Ascent.Ceil()
	drawer.Dot = fixed.P(xPos, baseline)
	drawer.DrawString(text)
}

// drawTextAt draws left-aligned text with its line box starting at (x, top).
func drawTextAt(dst draw.Image, x, top int, text string, fg color.Color, face font.Face) {
	drawer := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: face}
	drawer.Dot = fixed.P(x, top+face.Metrics().Ascent.Ceil())
	drawer.DrawString(text)
}
