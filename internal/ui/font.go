package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 16.0
	monoFontSize    = 12.0
)

// Font faces for text rendering
var (
	regularFace *text.GoTextFace
	boldFace    *text.GoTextFace
	monoFace    *text.GoTextFace
)

func init() {
	regularFace = loadFace("regular", goregular.TTF, defaultFontSize)
	boldFace = loadFace("bold", gobold.TTF, titleFontSize)
	monoFace = loadFace("mono", gomono.TTF, monoFontSize)
}

func loadFace(name string, ttf []byte, size float64) *text.GoTextFace {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		log.Printf("Failed to load %s font: %v", name, err)
		return nil
	}
	return &text.GoTextFace{Source: source, Size: size}
}

// faceWithSize returns the regular face at a custom size.
func faceWithSize(size float64) *text.GoTextFace {
	if regularFace == nil {
		return nil
	}
	return &text.GoTextFace{Source: regularFace.Source, Size: size}
}

// measureText returns the width and height of s.
func measureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
