// Package board implements a chess position as bitboards together with
// pseudo-legal destination generators for every piece type.
package board

import "fmt"

// Square is a square index from 0 to 63.
// Square constants and the label codec use the algebraic mapping:
// A1=0, H1=7, A8=56, H8=63. Piece bitboards use the board-layout mapping
// instead; Layout converts between the two.
type Square uint8

// Square constants, algebraic order.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 8*iota, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A2, B2, C2, D2, E2, F2, G2, H2
	A3, B3, C3, D3, E3, F3, G3, H3
	A4, B4, C4, D4, E4, F4, G4, H4
	A5, B5, C5, D5, E5, F5, G5, H5
	A6, B6, C6, D6, E6, F6, G6, H6
	A7, B7, C7, D7, E7, F7, G7, H7
	A8, B8, C8, D8, E8, F8, G8, H8
)

// NoSquare marks an absent square, such as an empty en passant target.
const NoSquare Square = 64

// File returns 0 for file a through 7 for file h.
func (sq Square) File() int {
	return int(sq % 8)
}

// Rank returns 0 for rank 1 through 7 for rank 8.
func (sq Square) Rank() int {
	return int(sq / 8)
}

// NewSquare returns the algebraic square at file and rank, both 0-based.
func NewSquare(file, rank int) Square {
	return Square(8*rank + file)
}

// String returns the label, e.g. "e4", or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts a two-character label such as "e4" to its square.
func ParseSquare(label string) (Square, error) {
	if len(label) != 2 || label[0] < 'a' || label[0] > 'h' || label[1] < '1' || label[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, label)
	}
	return NewSquare(int(label[0]-'a'), int(label[1]-'1')), nil
}

// IsValid reports whether sq is one of a1..h8.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Layout mirrors the file of the square. It maps an algebraic square to the
// bit the FEN scan uses for it, and a layout bit back to its algebraic square.
func (sq Square) Layout() Square {
	if !sq.IsValid() {
		return NoSquare
	}
	return sq ^ 7
}
