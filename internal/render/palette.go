package render

import (
	"fmt"
	"image/color"

	"github.com/hailam/chessbits/internal/storage"
)

// Palette holds the board colors of one theme as hex strings.
type Palette struct {
	Light     string
	Dark      string
	Highlight string
	Selected  string
	Label     string
}

var palettes = map[storage.Theme]Palette{
	storage.ThemeClassic: {Light: "#f0d9b5", Dark: "#b58863", Highlight: "#cdd26a", Selected: "#f6f669", Label: "#5c4a3a"},
	storage.ThemeGreen:   {Light: "#eeeed2", Dark: "#769656", Highlight: "#baca44", Selected: "#f6f669", Label: "#3a4a2a"},
	storage.ThemeBlue:    {Light: "#dee3e6", Dark: "#8ca2ad", Highlight: "#7fa9c9", Selected: "#c3d88a", Label: "#33444d"},
}

// PaletteFor returns the palette of a theme, or the classic one.
func PaletteFor(t storage.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[storage.ThemeClassic]
}

// RGBA parses a "#rrggbb" color. Malformed input yields opaque black.
func RGBA(hex string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
