package render

import (
	"errors"
	"fmt"
	"image/color"
	"image/draw"
	"sort"
)

// MasterSize is the canvas size the master icon is rendered at.
const MasterSize = 1024

// ErrUnknownPreset is returned by LookupPreset for names that are not registered.
var ErrUnknownPreset = errors.New("unknown preset")

// Background selects how the rounded-square backdrop is filled.
type Background int

const (
	// BackgroundVertical fills a top-to-bottom gradient and masks it to the squircle.
	BackgroundVertical Background = iota
	// BackgroundLayered stacks inset rounded rectangles stepping through the gradient.
	BackgroundLayered
)

// Geometry parameters are fractions of the canvas size unless noted.
type Geometry struct {
	Margin       float64
	CornerRadius float64
	StrokeWidth  float64
	GlyphInset   float64

	// DiagonalInset, DiagonalDrop and BarRadius are fractions of the stroke
	// width. DiagonalInset shifts the diagonal's corners horizontally into
	// the bars; DiagonalDrop lowers its inner top corner and raises its inner
	// bottom corner.
	DiagonalInset float64
	DiagonalDrop  float64
	BarRadius     float64

	// LayerStep is the extra inset per layer for BackgroundLayered.
	LayerStep float64

	ShadowOffset float64
	ShadowBlur   float64
	ShadowAlpha  uint8
}

// Style toggles the optional render stages.
type Style struct {
	Background Background
	// LayerOp combines each BackgroundLayered layer with those beneath it.
	// draw.Src replaces pixels outright, leaving the interior as translucent
	// as the innermost layer.
	LayerOp draw.Op
	Shadow  bool
	Flatten bool
}

// Preset is a named palette, geometry and style.
type Preset struct {
	Name     string
	Palette  Palette
	Geometry Geometry
	Style    Style
}

var white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

var (
	indigo = Palette{
		Start: color.RGBA{R: 0x58, G: 0x56, B: 0xD6, A: 0xFF}, // #5856D6
		End:   color.RGBA{R: 0x63, G: 0x66, B: 0xF1, A: 0xFF}, // #6366F1
		Glyph: white,
	}
	purple = Palette{
		Start: color.RGBA{R: 0x6D, G: 0x28, B: 0xD9, A: 0xFF}, // #6D28D9
		End:   color.RGBA{R: 0x7C, G: 0x3A, B: 0xED, A: 0xFF}, // #7C3AED
		Glyph: white,
	}

	squircleGeometry = Geometry{
		Margin:        0.10,
		CornerRadius:  0.20,
		StrokeWidth:   0.08,
		GlyphInset:    0.30,
		DiagonalInset: 0.3,
		DiagonalDrop:  0.3,
		BarRadius:     0.4,
		ShadowOffset:  0.015,
		ShadowBlur:    0.012,
		ShadowAlpha:   80,
	}
	layeredGeometry = Geometry{
		Margin:        0.12,
		CornerRadius:  0.22,
		StrokeWidth:   0.08,
		GlyphInset:    0.30,
		DiagonalInset: 0.3,
		DiagonalDrop:  1.0,
		BarRadius:     0.4,
		LayerStep:     2.0 / MasterSize,
	}
)

var presets = map[string]Preset{
	"squircle": {
		Name:     "squircle",
		Palette:  indigo,
		Geometry: squircleGeometry,
		Style:    Style{Background: BackgroundVertical, Shadow: true, Flatten: true},
	},
	"dark": {
		Name:     "dark",
		Palette:  purple,
		Geometry: squircleGeometry,
		Style:    Style{Background: BackgroundVertical, Shadow: true, Flatten: true},
	},
	"layered": {
		Name:     "layered",
		Palette:  indigo,
		Geometry: layeredGeometry,
		Style:    Style{Background: BackgroundLayered, LayerOp: draw.Src},
	},
}

// DefaultPreset is used when no preset is named.
const DefaultPreset = "squircle"

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w %q (have %v)", ErrUnknownPreset, name, PresetNames())
	}
	return p, nil
}

// PresetNames lists registered presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
