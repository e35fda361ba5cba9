package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/chessbits/internal/board"
	"github.com/hailam/chessbits/internal/render"
	"github.com/hailam/chessbits/internal/storage"
	"github.com/hailam/chessbits/internal/view"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare      color.RGBA
	DarkSquare       color.RGBA
	SelectedSquare   color.RGBA
	DestinationColor color.RGBA
	LabelColor       color.RGBA
	Background       color.RGBA
}

// themeFor builds the board colors of a stored theme.
func themeFor(t storage.Theme) *Theme {
	pal := render.PaletteFor(t)
	selected := render.RGBA(pal.Selected)
	selected.A = 180
	dest := render.RGBA(pal.Highlight)
	dest.A = 200
	return &Theme{
		LightSquare:      render.RGBA(pal.Light),
		DarkSquare:       render.RGBA(pal.Dark),
		SelectedSquare:   selected,
		DestinationColor: dest,
		LabelColor:       render.RGBA(pal.Label),
		Background:       color.RGBA{40, 44, 52, 255}, // Dark gray
	}
}

// Renderer handles all board drawing.
type Renderer struct {
	sprites     *SpriteManager
	theme       *Theme
	geometry    view.Geometry
	coordinates bool
	scale       float64 // HiDPI scale factor
}

// NewRenderer creates a renderer from viewer preferences.
func NewRenderer(prefs *storage.Preferences) *Renderer {
	return &Renderer{
		sprites:     NewSpriteManager(prefs.SquareSize),
		theme:       themeFor(prefs.Theme),
		geometry:    view.Geometry{SquareSize: prefs.SquareSize, Flipped: prefs.Flipped},
		coordinates: prefs.ShowCoordinates,
		scale:       1.0,
	}
}

// Apply picks up changed preferences. The square size is fixed at creation.
func (r *Renderer) Apply(prefs *storage.Preferences) {
	r.theme = themeFor(prefs.Theme)
	r.geometry.Flipped = prefs.Flipped
	r.coordinates = prefs.ShowCoordinates
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
	r.sprites.SetScale(scale)
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the 64 squares and, if enabled, the coordinates.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := r.geometry.SquareSize
	for sq := board.A1; sq < board.NoSquare; sq++ {
		c := r.theme.LightSquare
		if (sq.File()+sq.Rank())%2 == 0 {
			c = r.theme.DarkSquare
		}
		x, y := r.geometry.Origin(sq)
		vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(size), r.s(size), c, false)
	}

	if r.coordinates {
		r.drawCoordinates(screen)
	}
}

// drawCoordinates writes file letters along the bottom edge and rank numbers
// along the left edge.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	size := r.geometry.SquareSize
	face := faceWithSize(float64(size) / 6 * r.scale)
	if face == nil {
		return
	}
	for i := 0; i < 8; i++ {
		file := r.geometry.SquareAtCell(i, 7).File()
		rank := r.geometry.SquareAtCell(0, i).Rank()

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(r.s((i+1)*size-size/6)), float64(r.s(8*size-size/5)))
		op.ColorScale.ScaleWithColor(r.theme.LabelColor)
		text.Draw(screen, string(rune('a'+file)), face, op)

		op = &text.DrawOptions{}
		op.GeoM.Translate(float64(r.s(3)), float64(r.s(i*size+2)))
		op.ColorScale.ScaleWithColor(r.theme.LabelColor)
		text.Draw(screen, string(rune('1'+rank)), face, op)
	}
}

// DrawSelection tints the selected square and marks every destination.
func (r *Renderer) DrawSelection(screen *ebiten.Image, pos *board.Position, sel view.Selection) {
	if !sel.Active() {
		return
	}
	r.highlightSquare(screen, sel.Square, r.theme.SelectedSquare)

	for _, sq := range sel.Targets() {
		if pos.PieceAt(sq.Layout()) != board.NoPiece {
			r.drawOccupiedIndicator(screen, sq)
		} else {
			r.drawDestinationIndicator(screen, sq)
		}
	}
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	x, y := r.geometry.Origin(sq)
	size := r.geometry.SquareSize
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(size), r.s(size), c, false)
}

// drawDestinationIndicator draws a dot on an empty destination.
func (r *Renderer) drawDestinationIndicator(screen *ebiten.Image, sq board.Square) {
	x, y := r.geometry.Origin(sq)
	half := r.s(r.geometry.SquareSize) / 2
	vector.DrawFilledCircle(screen, r.s(x)+half, r.s(y)+half, half*0.3, r.theme.DestinationColor, true)
}

// drawOccupiedIndicator rings an occupied destination.
func (r *Renderer) drawOccupiedIndicator(screen *ebiten.Image, sq board.Square) {
	x, y := r.geometry.Origin(sq)
	half := r.s(r.geometry.SquareSize) / 2
	vector.StrokeCircle(screen, r.s(x)+half, r.s(y)+half, half*0.9, half*0.15, r.theme.DestinationColor, true)
}

// DrawPieces draws every piece of pos.
func (r *Renderer) DrawPieces(screen *ebiten.Image, pos *board.Position) {
	pos.ForEachPiece(func(piece board.Piece, bit board.Square) {
		x, y := r.geometry.Origin(bit.Layout())
		r.sprites.DrawPieceAt(screen, piece, int(r.s(x)), int(r.s(y)))
	})
}

// ScreenToSquare converts logical screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	return r.geometry.SquareAt(x, y)
}

// BoardSize returns the board size in logical pixels.
func (r *Renderer) BoardSize() int {
	return 8 * r.geometry.SquareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
