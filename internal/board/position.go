package board

import (
	"fmt"
	"io"
	"strings"
)

// CastlingRights is a 4-bit mask, one bit per castling option.
type CastlingRights uint8

const (
	BlackQueenSideCastle CastlingRights = 1 << iota // q
	BlackKingSideCastle                             // k
	WhiteQueenSideCastle                            // Q
	WhiteKingSideCastle                             // K
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// castlingChars maps FEN castling letters to their bits.
var castlingChars = map[rune]CastlingRights{
	'K': WhiteKingSideCastle,
	'Q': WhiteQueenSideCastle,
	'k': BlackKingSideCastle,
	'q': BlackQueenSideCastle,
}

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr&AllCastling == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side holds the right in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Position holds the piece bitboards and the side information of a FEN.
// Generators only read it; the counters are its only mutators.
// A Position shared between goroutines needs external locking around
// AdvanceHalfMove and AdvanceFullMove.
type Position struct {
	// Piece bitboards: [Color][PieceType], board-layout order
	Pieces [2][6]Bitboard

	// Union of each color's six piece sets, recomputed after loading
	Occupied [2]Bitboard

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Bitboard // At most one bit, algebraic order; Empty if none
	HalfMoveClock  int      // Plies since the last capture or pawn move
	FullMoveNumber int      // Starts at 1, incremented after black moves
}

// NewPosition returns an empty position: no pieces, white to move, no rights.
func NewPosition() *Position {
	return &Position{FullMoveNumber: 1}
}

// StartPosition returns the standard initial position.
func StartPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// All returns every occupied bit.
func (p *Position) All() Bitboard {
	return p.Occupied[White] | p.Occupied[Black]
}

// Bitboard returns a copy of the piece set for the given piece.
func (p *Position) Bitboard(piece Piece) Bitboard {
	if piece >= NoPiece {
		return Empty
	}
	return p.Pieces[piece.Color()][piece.Type()]
}

// PieceAt returns the piece on layout bit sq, or NoPiece if it is empty.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	bb := SquareBB(sq)
	for c := White; c <= Black; c++ {
		if p.Occupied[c]&bb == 0 {
			continue
		}
		for pt := Pawn; pt <= King; pt++ {
			if p.Pieces[c][pt]&bb != 0 {
				return NewPiece(pt, c)
			}
		}
	}
	return NoPiece
}

// ForEachPiece calls fn for every occupied layout bit, white sets first.
func (p *Position) ForEachPiece(fn func(piece Piece, sq Square)) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			piece := NewPiece(pt, c)
			p.Pieces[c][pt].ForEach(func(sq Square) {
				fn(piece, sq)
			})
		}
	}
}

// AdvanceHalfMove increments the halfmove clock.
func (p *Position) AdvanceHalfMove() {
	p.HalfMoveClock++
}

// AdvanceFullMove increments the fullmove number.
func (p *Position) AdvanceFullMove() {
	p.FullMoveNumber++
}

// updateOccupied recalculates occupancy bitboards from piece bitboards.
func (p *Position) updateOccupied() {
	p.Occupied[White] = Empty
	p.Occupied[Black] = Empty

	for pt := Pawn; pt <= King; pt++ {
		p.Occupied[White] |= p.Pieces[White][pt]
		p.Occupied[Black] |= p.Pieces[Black][pt]
	}
}

// Validate checks the structural invariants of the position.
func (p *Position) Validate() error {
	var seen Bitboard
	for c := White; c <= Black; c++ {
		var union Bitboard
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			if seen&bb != 0 {
				return fmt.Errorf("%s %s set overlaps another piece set", c, pt)
			}
			seen |= bb
			union |= bb
		}
		if union != p.Occupied[c] {
			return fmt.Errorf("%s occupancy does not match its piece sets", c)
		}
	}
	if p.EnPassant.PopCount() > 1 {
		return fmt.Errorf("en passant target has %d bits set", p.EnPassant.PopCount())
	}
	if p.CastlingRights&^AllCastling != 0 {
		return fmt.Errorf("castling rights %04b has bits outside KQkq", p.CastlingRights)
	}
	if !p.SideToMove.Valid() {
		return fmt.Errorf("side to move %d is not white or black", p.SideToMove)
	}
	return nil
}

// Dump writes every bitboard and flag as a 64-digit binary number.
func (p *Position) Dump(w io.Writer) error {
	for piece := WhitePawn; piece < NoPiece; piece++ {
		if _, err := fmt.Fprintf(w, "%s: %064b\n", piece.SetName(), uint64(p.Bitboard(piece))); err != nil {
			return err
		}
		if piece == WhiteKing {
			if _, err := fmt.Fprintf(w, "white_pieces: %064b\n", uint64(p.Occupied[White])); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "black_pieces: %064b\n"+
		"turn: %064b\n"+
		"castling_rights: %064b\n"+
		"en_passant_square: %064b\n"+
		"halfmove_clock: %064b\n"+
		"fullmove_number: %064b\n",
		uint64(p.Occupied[Black]),
		uint64(p.SideToMove),
		uint64(p.CastlingRights),
		uint64(p.EnPassant),
		uint64(p.HalfMoveClock),
		uint64(p.FullMoveNumber))
	return err
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank).Layout())
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.SideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.CastlingRights)
	fmt.Fprintf(&sb, "En passant: %s\n", p.EnPassant.LSB())
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.HalfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", p.FullMoveNumber)
	return sb.String()
}
