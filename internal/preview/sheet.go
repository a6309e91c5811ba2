// Package preview composes a proof sheet of every exported icon size and
// can show it on a Linux framebuffer.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/nouvelle/iconset/internal/export"
	"github.com/nouvelle/iconset/internal/manifest"
	"github.com/nouvelle/iconset/internal/render/layout"
)

const (
	defaultWidth   = 1200
	defaultColumns = 6
	titleHeight    = 112
	labelHeight    = 28
	cellPadding    = 12
)

var (
	// Background and Foreground are the sheet colours.
	Background = color.RGBA{R: 0xF4, G: 0xF4, B: 0xF6, A: 0xFF}
	Foreground = color.RGBA{R: 0x1F, G: 0x22, B: 0x2E, A: 0xFF}
)

// Options control the sheet layout.
type Options struct {
	// Width of the sheet in pixels; 0 means 1200.
	Width int
	// Columns per row; 0 means 6.
	Columns int
	// Preset names the render preset in the title and QR payload.
	Preset string
	Filter export.Filter
}

// Sheet renders one cell per distinct manifest size, smallest first. Each cell
// shows the icon at its real pixel size, scaled down only when it does not fit,
// captioned with the size and the number of files using it. The title band
// carries a QR code of Payload(opts.Preset, Fingerprint(master)).
func Sheet(master image.Image, m manifest.Manifest, opts Options) (*image.RGBA, error) {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	cols := opts.Columns
	if cols <= 0 {
		cols = defaultColumns
	}
	sizes := m.Sizes()
	counts := m.CountBySize()
	rows := (len(sizes) + cols - 1) / cols
	cellW := width / cols
	height := titleHeight + rows*(cellW+labelHeight)

	sheet := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	titleFace, labelFace := faces()

	titleRect, body := layout.SplitHorizontal(sheet.Bounds(), titleHeight)
	fp := Fingerprint(master)
	qr, err := qrImage(Payload(opts.Preset, fp), titleHeight-2*cellPadding)
	if err != nil {
		return nil, fmt.Errorf("qr code: %w", err)
	}
	qrRect := layout.Inset(image.Rect(titleRect.Max.X-titleHeight, titleRect.Min.Y, titleRect.Max.X, titleRect.Max.Y), cellPadding)
	draw.Draw(sheet, qrRect, qr, qr.Bounds().Min, draw.Src)

	mb := master.Bounds()
	title := fmt.Sprintf("%s  %dx%d master", opts.Preset, mb.Dx(), mb.Dy())
	drawTextAt(sheet, 2*cellPadding, 2*cellPadding, title, Foreground, titleFace)
	summary := fmt.Sprintf("%d files, %d sizes, %s", len(m), len(sizes), fp)
	drawTextAt(sheet, 2*cellPadding, titleHeight/2+cellPadding, summary, Foreground, labelFace)

	for i, cell := range layout.Grid(body, len(sizes), cols) {
		size := sizes[i]
		iconArea, caption := layout.SplitHorizontal(cell, cell.Dy()-labelHeight)
		slot := layout.FitSquare(layout.Inset(iconArea, cellPadding))
		shown := min(size, slot.Dx())
		if shown > 0 {
			icon := export.Resize(master, shown, opts.Filter)
			dst := layout.Center(slot, shown, shown)
			draw.Draw(sheet, dst, icon, icon.Bounds().Min, draw.Over)
		}
		label := fmt.Sprintf("%dpx", size)
		if n := counts[size]; n > 1 {
			label = fmt.Sprintf("%dpx x%d", size, n)
		}
		drawTextCentered(sheet, caption, label, Foreground, labelFace)
	}
	return sheet, nil
}
