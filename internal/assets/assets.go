// Package assets holds the fonts used to label the proof sheet.
package assets

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleTTF is the proof-sheet heading face.
var TitleTTF = gobold.TTF

// LabelTTF is the face for per-size captions.
var LabelTTF = goregular.TTF
