// Package view holds the display state shared by the window and terminal
// viewers: where each square is drawn and which piece is selected.
package view

import (
	"fmt"

	"github.com/hailam/chessbits/internal/board"
)

// Geometry maps algebraic squares to cells of an 8x8 grid and back.
// Column 0 is the left edge and row 0 the top edge of the drawn board.
type Geometry struct {
	SquareSize int
	Flipped    bool
}

// Cell returns the column and row at which sq is drawn.
func (g Geometry) Cell(sq board.Square) (col, row int) {
	if g.Flipped {
		return 7 - sq.File(), sq.Rank()
	}
	return sq.File(), 7 - sq.Rank()
}

// SquareAtCell is the inverse of Cell. Cells off the grid give NoSquare.
func (g Geometry) SquareAtCell(col, row int) board.Square {
	if col < 0 || col > 7 || row < 0 || row > 7 {
		return board.NoSquare
	}
	if g.Flipped {
		return board.NewSquare(7-col, row)
	}
	return board.NewSquare(col, 7-row)
}

// Origin returns the top-left pixel of sq.
func (g Geometry) Origin(sq board.Square) (x, y int) {
	col, row := g.Cell(sq)
	return col * g.SquareSize, row * g.SquareSize
}

// SquareAt returns the square under pixel (x, y), or NoSquare.
func (g Geometry) SquareAt(x, y int) board.Square {
	if g.SquareSize <= 0 || x < 0 || y < 0 {
		return board.NoSquare
	}
	return g.SquareAtCell(x/g.SquareSize, y/g.SquareSize)
}

// Selection is the piece picked by the user and where it can go.
type Selection struct {
	Square       board.Square // algebraic
	Piece        board.Piece
	Destinations board.Bitboard // board-layout order
}

// None is the empty selection.
var None = Selection{Square: board.NoSquare, Piece: board.NoPiece}

// Select picks the piece on algebraic square sq. An empty square yields None.
func Select(pos *board.Position, sq board.Square) (Selection, error) {
	if !sq.IsValid() {
		return None, nil
	}
	bit := sq.Layout()
	piece := pos.PieceAt(bit)
	if piece == board.NoPiece {
		return None, nil
	}
	dests, err := pos.DestinationsFrom(bit)
	if err != nil {
		return None, fmt.Errorf("select %s: %w", sq, err)
	}
	return Selection{Square: sq, Piece: piece, Destinations: dests}, nil
}

// Active reports whether a piece is selected.
func (s Selection) Active() bool {
	return s.Piece != board.NoPiece
}

// Targets returns the destination squares in algebraic order.
func (s Selection) Targets() []board.Square {
	targets := make([]board.Square, 0, s.Destinations.PopCount())
	for sq := board.A1; sq < board.NoSquare; sq++ {
		if s.Destinations.IsSet(sq.Layout()) {
			targets = append(targets, sq)
		}
	}
	return targets
}

// IsTarget reports whether algebraic square sq is a destination.
func (s Selection) IsTarget(sq board.Square) bool {
	return sq.IsValid() && s.Destinations.IsSet(sq.Layout())
}

// Describe summarizes the selection in one line, e.g. "White Knight g1: f3 h3".
func (s Selection) Describe() string {
	if !s.Active() {
		return "No piece selected"
	}
	line := fmt.Sprintf("%s %s %s:", s.Piece.Color(), s.Piece.Type(), s.Square)
	targets := s.Targets()
	if len(targets) == 0 {
		return line + " no destinations"
	}
	for _, sq := range targets {
		line += " " + sq.String()
	}
	return line
}

// Info returns the side information of pos as display lines.
func Info(pos *board.Position) []string {
	return []string{
		fmt.Sprintf("Side to move: %s", pos.SideToMove),
		fmt.Sprintf("Castling: %s", pos.CastlingRights),
		fmt.Sprintf("En passant: %s", pos.EnPassant.LSB()),
		fmt.Sprintf("Halfmove clock: %d", pos.HalfMoveClock),
		fmt.Sprintf("Fullmove number: %d", pos.FullMoveNumber),
	}
}
