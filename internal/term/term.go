// Package term draws a Position on a character terminal with tcell and lets
// the user move a cursor over it to inspect destination sets.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/hailam/chessbits/internal/board"
	"github.com/hailam/chessbits/internal/render"
	"github.com/hailam/chessbits/internal/storage"
	"github.com/hailam/chessbits/internal/view"
)

// Each square is cellWidth columns wide and one row high.
const (
	cellWidth = 3
	boardLeft = 2
	boardTop  = 1
	infoLeft  = boardLeft + 8*cellWidth + 3
)

// glyphs are the Unicode chess symbols, indexed by board.Piece.
var glyphs = [12]rune{'♙', '♘', '♗', '♖', '♕', '♔', '♟', '♞', '♝', '♜', '♛', '♚'}

// Viewer is a terminal board viewer.
type Viewer struct {
	screen   tcell.Screen
	pos      *board.Position
	geometry view.Geometry
	theme    storage.Theme
	ascii    bool

	cursor    board.Square
	selection view.Selection
	status    string
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithPreferences applies stored theme and orientation.
func WithPreferences(p *storage.Preferences) Option {
	return func(v *Viewer) {
		v.theme = p.Theme
		v.geometry.Flipped = p.Flipped
	}
}

// WithASCII draws FEN letters instead of chess symbols.
func WithASCII() Option {
	return func(v *Viewer) { v.ascii = true }
}

// New returns a viewer drawing pos on an initialized screen.
func New(screen tcell.Screen, pos *board.Position, opts ...Option) *Viewer {
	v := &Viewer{
		screen:    screen,
		pos:       pos,
		geometry:  view.Geometry{SquareSize: 1},
		theme:     storage.ThemeClassic,
		cursor:    board.E2,
		selection: view.None,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Selection returns the current selection.
func (v *Viewer) Selection() view.Selection {
	return v.selection
}

// Cursor returns the square under the cursor.
func (v *Viewer) Cursor() board.Square {
	return v.cursor
}

// Flipped reports whether black is drawn at the bottom.
func (v *Viewer) Flipped() bool {
	return v.geometry.Flipped
}

// Theme returns the current color theme.
func (v *Viewer) Theme() storage.Theme {
	return v.theme
}

// Run draws the board and processes events until the user quits.
func (v *Viewer) Run() error {
	v.Draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
			v.Draw()
		case *tcell.EventKey:
			if v.HandleKey(ev) {
				return nil
			}
			v.Draw()
		}
	}
}

// HandleKey applies one key press and reports whether the viewer should quit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.moveCursor(0, -1)
	case tcell.KeyDown:
		v.moveCursor(0, 1)
	case tcell.KeyLeft:
		v.moveCursor(-1, 0)
	case tcell.KeyRight:
		v.moveCursor(1, 0)
	case tcell.KeyEnter:
		v.toggleSelection()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			v.toggleSelection()
		case 'f':
			v.geometry.Flipped = !v.geometry.Flipped
		case 't':
			v.theme = v.theme.Next()
			v.status = fmt.Sprintf("Theme: %s", v.theme)
		}
	}
	return false
}

// moveCursor moves by screen direction, so it follows the orientation.
func (v *Viewer) moveCursor(dc, dr int) {
	col, row := v.geometry.Cell(v.cursor)
	if sq := v.geometry.SquareAtCell(col+dc, row+dr); sq != board.NoSquare {
		v.cursor = sq
	}
}

func (v *Viewer) toggleSelection() {
	if v.selection.Active() && v.selection.Square == v.cursor {
		v.selection = view.None
		v.status = ""
		return
	}
	sel, err := view.Select(v.pos, v.cursor)
	if err != nil {
		v.status = err.Error()
		return
	}
	v.selection = sel
	v.status = sel.Describe()
}

// Draw paints the whole screen.
func (v *Viewer) Draw() {
	v.screen.Clear()
	pal := render.PaletteFor(v.theme)
	label := tcell.StyleDefault.Foreground(tcell.GetColor(pal.Label))

	for sq := board.A1; sq < board.NoSquare; sq++ {
		v.drawSquare(sq, pal)
	}

	for i := 0; i < 8; i++ {
		file := v.geometry.SquareAtCell(i, 7).File()
		rank := v.geometry.SquareAtCell(0, i).Rank()
		v.screen.SetContent(boardLeft+i*cellWidth+1, boardTop+8, rune('a'+file), nil, label)
		v.screen.SetContent(0, boardTop+i, rune('1'+rank), nil, label)
	}

	y := boardTop
	for _, line := range view.Info(v.pos) {
		v.drawText(infoLeft, y, line, tcell.StyleDefault)
		y++
	}
	y++
	v.drawText(infoLeft, y, "Cursor: "+v.cursor.String(), tcell.StyleDefault)
	v.drawText(infoLeft, y+1, v.selection.Describe(), tcell.StyleDefault.Bold(true))
	v.drawText(boardLeft, boardTop+10, v.status, tcell.StyleDefault)
	v.drawText(boardLeft, boardTop+11, "arrows move  enter select  f flip  t theme  q quit", tcell.StyleDefault.Dim(true))

	v.screen.Show()
}

func (v *Viewer) drawSquare(sq board.Square, pal render.Palette) {
	col, row := v.geometry.Cell(sq)
	bg := pal.Light
	if (sq.File()+sq.Rank())%2 == 0 {
		bg = pal.Dark
	}
	switch {
	case v.selection.Active() && sq == v.selection.Square:
		bg = pal.Selected
	case v.selection.IsTarget(sq):
		bg = pal.Highlight
	}

	style := tcell.StyleDefault.Background(tcell.GetColor(bg)).Foreground(tcell.ColorBlack)
	x, y := boardLeft+col*cellWidth, boardTop+row

	left, right := ' ', ' '
	if sq == v.cursor {
		left, right = '[', ']'
	}
	v.screen.SetContent(x, y, left, nil, style)
	v.screen.SetContent(x+1, y, v.glyph(v.pos.PieceAt(sq.Layout())), nil, style)
	v.screen.SetContent(x+2, y, right, nil, style)
}

func (v *Viewer) glyph(p board.Piece) rune {
	if p == board.NoPiece {
		return ' '
	}
	if v.ascii {
		return rune(p.String()[0])
	}
	return glyphs[p]
}

func (v *Viewer) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
