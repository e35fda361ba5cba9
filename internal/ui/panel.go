package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/chessbits/internal/view"
)

// Panel dimensions
const (
	PanelWidth     = 300
	PanelPadding   = 20
	SectionSpacing = 24
	ButtonHeight   = 34
	SectionLabelH  = 20
	LineHeight     = 20
)

// Panel colors
var (
	panelBg       = color.RGBA{38, 40, 45, 255}    // Dark background
	buttonBg      = color.RGBA{50, 54, 60, 255}    // Button background (darker)
	buttonHoverBg = color.RGBA{65, 70, 78, 255}    // Button hover (brighter)
	buttonActive  = color.RGBA{76, 132, 96, 255}   // Active toggle (green)
	buttonBorder  = color.RGBA{70, 75, 82, 255}    // Subtle button border
	textPrimary   = color.RGBA{240, 240, 245, 255} // Primary text
	textSecondary = color.RGBA{160, 165, 175, 255} // Secondary text
	textMuted     = color.RGBA{120, 125, 135, 255} // Muted text
	dividerColor  = color.RGBA{60, 65, 72, 255}    // Divider line
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	Active     func() bool
	hovered    bool
}

// Panel is the side panel: view toggles, position fields, the current
// selection and the FEN.
type Panel struct {
	viewer  *Viewer
	x       int
	height  int
	buttons []*Button
}

// NewPanel creates the panel to the right of a board of boardSize pixels.
func NewPanel(v *Viewer, boardSize int) *Panel {
	p := &Panel{viewer: v, x: boardSize, height: boardSize}
	p.createButtons()
	return p
}

func (p *Panel) createButtons() {
	contentX := p.x + PanelPadding
	contentW := PanelWidth - PanelPadding*2
	w := contentW / 2
	y := PanelPadding + 32

	p.buttons = []*Button{
		{X: contentX, Y: y, W: w - 4, H: ButtonHeight, Label: "Flip",
			OnClick: p.viewer.FlipAction, Active: func() bool { return p.viewer.prefs.Flipped }},
		{X: contentX + w, Y: y, W: w - 4, H: ButtonHeight, Label: "Theme",
			OnClick: p.viewer.CycleThemeAction},
		{X: contentX, Y: y + ButtonHeight + 6, W: w - 4, H: ButtonHeight, Label: "Coordinates",
			OnClick: p.viewer.ToggleCoordinatesAction, Active: func() bool { return p.viewer.prefs.ShowCoordinates }},
		{X: contentX + w, Y: y + ButtonHeight + 6, W: w - 4, H: ButtonHeight, Label: "Defaults",
			OnClick: p.viewer.DefaultsAction},
	}
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	clicked := false
	for _, btn := range p.buttons {
		btn.hovered = input.IsInBounds(btn.X, btn.Y, btn.W, btn.H)
		if btn.hovered && input.IsLeftJustPressed() && !clicked {
			btn.OnClick()
			clicked = true
		}
	}
	return clicked
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	for _, btn := range p.buttons {
		if btn.hovered {
			return true
		}
	}
	return false
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image, scale float64) {
	s := func(v int) float32 { return float32(float64(v) * scale) }
	vector.DrawFilledRect(screen, s(p.x), 0, s(PanelWidth), s(p.height), panelBg, false)

	x := p.x + PanelPadding
	p.drawText(screen, "Bitboard viewer", x, PanelPadding, textPrimary, boldFace, scale)

	for _, btn := range p.buttons {
		p.drawButton(screen, btn, scale)
	}

	y := p.buttons[len(p.buttons)-1].Y + ButtonHeight + SectionSpacing
	p.drawSectionLabel(screen, "POSITION", x, y, scale)
	y += SectionLabelH
	for _, line := range view.Info(p.viewer.position) {
		p.drawText(screen, line, x, y, textPrimary, regularFace, scale)
		y += LineHeight
	}

	y += SectionSpacing / 2
	p.drawSectionLabel(screen, "SELECTION", x, y, scale)
	y += SectionLabelH
	for _, line := range wrap(p.viewer.selection.Describe(), 32) {
		p.drawText(screen, line, x, y, textPrimary, regularFace, scale)
		y += LineHeight
	}

	y += SectionSpacing / 2
	p.drawSectionLabel(screen, "FEN", x, y, scale)
	y += SectionLabelH
	for _, line := range wrap(p.viewer.position.ToFEN(), 34) {
		p.drawText(screen, line, x, y, textSecondary, monoFace, scale)
		y += LineHeight - 4
	}

	hintY := p.height - 36
	vector.DrawFilledRect(screen, s(x), s(hintY-10), s(PanelWidth-PanelPadding*2), s(1), dividerColor, false)
	p.drawText(screen, "F flip  T theme  C coords  Esc clear", x, hintY, textMuted, regularFace, scale)
}

func (p *Panel) drawButton(screen *ebiten.Image, btn *Button, scale float64) {
	s := func(v int) float32 { return float32(float64(v) * scale) }
	bg := buttonBg
	if btn.hovered {
		bg = buttonHoverBg
	}
	if btn.Active != nil && btn.Active() {
		bg = buttonActive
	}
	vector.DrawFilledRect(screen, s(btn.X), s(btn.Y), s(btn.W), s(btn.H), bg, false)
	vector.StrokeRect(screen, s(btn.X), s(btn.Y), s(btn.W), s(btn.H), 1, buttonBorder, false)

	w, h := measureText(btn.Label, regularFace)
	cx := float64(btn.X+btn.W/2)*scale - w*scale/2
	cy := float64(btn.Y+btn.H/2)*scale - h*scale/2
	p.drawTextAt(screen, btn.Label, cx, cy, textPrimary, regularFace, scale)
}

func (p *Panel) drawSectionLabel(screen *ebiten.Image, label string, x, y int, scale float64) {
	p.drawText(screen, label, x, y, textMuted, regularFace, scale)
}

// Text drawing helpers
func (p *Panel) drawText(screen *ebiten.Image, s string, x, y int, c color.Color, face *text.GoTextFace, scale float64) {
	p.drawTextAt(screen, s, float64(x)*scale, float64(y)*scale, c, face, scale)
}

func (p *Panel) drawTextAt(screen *ebiten.Image, s string, x, y float64, c color.Color, face *text.GoTextFace, scale float64) {
	if face == nil {
		return
	}
	scaled := &text.GoTextFace{Source: face.Source, Size: face.Size * scale}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, scaled, op)
}

// wrap splits s into lines of at most width bytes, breaking at spaces where
// it can and inside a word where it must.
func wrap(s string, width int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(s) {
		for len(word) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
