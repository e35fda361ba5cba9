package board

import "strings"

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
	NoColor
)

var colorNames = [...]string{"White", "Black", "NoColor"}

// Other returns the opposing side.
func (c Color) Other() Color {
	return c ^ 1
}

// Valid reports whether c is White or Black.
func (c Color) Valid() bool {
	return c < NoColor
}

func (c Color) String() string {
	return colorNames[min(c, NoColor)]
}

// PieceType is the kind of a piece regardless of color.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

var pieceTypeNames = [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "None"}

func (pt PieceType) String() string {
	return pieceTypeNames[min(pt, NoPieceType)]
}

// Piece is a colored piece, encoded as type + 6*color so that it indexes
// the twelve piece sets in FEN letter order.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece
)

// pieceLetters holds the FEN letter of every Piece at its own index.
const pieceLetters = "PNBRQKpnbrqk"

// pieceSetNames names each piece set the way Dump prints it.
var pieceSetNames = [12]string{
	"white_pawns", "white_knights", "white_bishops", "white_rooks", "white_queens", "white_king",
	"black_pawns", "black_knights", "black_bishops", "black_rooks", "black_queens", "black_king",
}

// NewPiece combines a type and a color. Out of range arguments give NoPiece.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || !c.Valid() {
		return NoPiece
	}
	return Piece(pt) + 6*Piece(c)
}

// PieceFromChar maps a FEN letter to its piece. Any other rune, including
// non-ASCII ones, gives NoPiece.
func PieceFromChar(r rune) Piece {
	if i := strings.IndexRune(pieceLetters, r); i >= 0 {
		return Piece(i)
	}
	return NoPiece
}

func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// String returns the FEN letter, or a space for NoPiece.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	return pieceLetters[p : p+1]
}

// SetName returns the snake_case name of the piece's bitboard, e.g. "white_pawns".
func (p Piece) SetName() string {
	if p >= NoPiece {
		return ""
	}
	return pieceSetNames[p]
}
