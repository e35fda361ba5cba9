package board

import "fmt"

// MoveFunc computes the destination set of every piece in pieces given the
// board occupancy. Generators are pure and may run concurrently.
type MoveFunc func(pieces, occupied Bitboard) Bitboard

// pieceMoves dispatches the non-pawn generators by piece type.
// Pawns need color, enemies and the en passant target; see PawnMoves.
var pieceMoves = [6]MoveFunc{
	Knight: KnightMoves,
	Bishop: BishopMoves,
	Rook:   RookMoves,
	Queen:  QueenMoves,
	King:   KingMoves,
}

// MovesFor returns the generator for a non-pawn piece type, or nil.
func MovesFor(pt PieceType) MoveFunc {
	if pt >= NoPieceType {
		return nil
	}
	return pieceMoves[pt]
}

// KnightMoves returns every square a knight in knights can jump to that is
// not in occupied. The whole set is shifted at once.
func KnightMoves(knights, occupied Bitboard) Bitboard {
	// Two up, one toward h / toward a
	moves := (knights << 15) & NotFileA
	moves |= (knights << 17) & NotFileH
	// One up, two toward h / toward a
	moves |= (knights << 6) & NotFileAB
	moves |= (knights << 10) & NotFileGH

	// Two down, one toward h / toward a
	moves |= (knights >> 17) & NotFileA
	moves |= (knights >> 15) & NotFileH
	// One down, two toward h / toward a
	moves |= (knights >> 10) & NotFileAB
	moves |= (knights >> 6) & NotFileGH

	return moves &^ occupied
}

// KingMoves returns every adjacent square of each king that is not occupied.
func KingMoves(kings, occupied Bitboard) Bitboard {
	var all Bitboard
	for kings != 0 {
		king := kings.Lowest()
		kings &= kings - 1

		moves := king.North() | king.South()
		moves |= king.West() | king.East()
		moves |= king.NorthWest() | king.NorthEast()
		moves |= king.SouthWest() | king.SouthEast()

		all |= moves &^ occupied
	}
	return all
}

// Ray directions as single-step shifts with the wraparound mask applied.
var (
	orthogonal = [4]func(Bitboard) Bitboard{Bitboard.North, Bitboard.South, Bitboard.West, Bitboard.East}
	diagonal   = [4]func(Bitboard) Bitboard{Bitboard.NorthWest, Bitboard.NorthEast, Bitboard.SouthWest, Bitboard.SouthEast}
)

// slide walks one ray from a single bit. Each step is masked by the free
// squares before it is tested, so the ray ends in front of the first
// occupied square and never includes it.
func slide(from, occupied Bitboard, step func(Bitboard) Bitboard) Bitboard {
	var moves Bitboard
	next := step(from) &^ occupied
	for next != 0 {
		moves |= next
		next = step(next) &^ occupied
	}
	return moves
}

// BishopMoves returns the diagonal rays of every bishop, stopping short of
// the first occupied square.
func BishopMoves(bishops, occupied Bitboard) Bitboard {
	var all Bitboard
	for bishops != 0 {
		bishop := bishops.Lowest()
		bishops &= bishops - 1

		for _, step := range diagonal {
			all |= slide(bishop, occupied, step)
		}
	}
	return all
}

// RookMoves returns the orthogonal rays of every rook, stopping short of
// the first occupied square.
func RookMoves(rooks, occupied Bitboard) Bitboard {
	var all Bitboard
	for rooks != 0 {
		rook := rooks.Lowest()
		rooks &= rooks - 1

		for _, step := range orthogonal {
			all |= slide(rook, occupied, step)
		}
	}
	return all
}

// ray walks one queen ray from a single bit. Occupancy only ends the walk;
// the occupied square that ended it is part of the result.
func ray(from, occupied Bitboard, step func(Bitboard) Bitboard) Bitboard {
	var moves Bitboard
	pos := step(from)
	for pos != 0 && pos&occupied == 0 {
		moves |= pos
		pos = step(pos)
	}
	if pos != 0 {
		moves |= pos
	}
	return moves
}

func queenVertical(queen, occupied Bitboard) Bitboard {
	return ray(queen, occupied, Bitboard.North) | ray(queen, occupied, Bitboard.South)
}

func queenHorizontal(queen, occupied Bitboard) Bitboard {
	return ray(queen, occupied, Bitboard.West) | ray(queen, occupied, Bitboard.East)
}

func queenDiagonal(queen, occupied Bitboard) Bitboard {
	var moves Bitboard
	for _, step := range diagonal {
		moves |= ray(queen, occupied, step)
	}
	return moves
}

// QueenMoves returns the eight rays of every queen. Unlike BishopMoves and
// RookMoves, each ray includes the first occupied square it reaches.
func QueenMoves(queens, occupied Bitboard) Bitboard {
	var all Bitboard
	for queens != 0 {
		queen := queens.Lowest()
		queens &= queens - 1

		all |= queenVertical(queen, occupied) |
			queenHorizontal(queen, occupied) |
			queenDiagonal(queen, occupied)
	}
	return all
}

// PawnMoves returns the union of single pushes, double pushes from the home
// rank, captures onto enemies and captures onto the en passant target.
// The double push only checks its destination square.
func PawnMoves(c Color, pawns, occupied, enemies, enPassant Bitboard) (Bitboard, error) {
	if !c.Valid() {
		return Empty, fmt.Errorf("%w: pawn color %d", ErrInvalidValue, c)
	}
	return pawnPushes(c, pawns, occupied) |
		pawnDoublePushes(c, pawns, occupied) |
		pawnAttacks(c, pawns)&enemies |
		pawnAttacks(c, pawns)&enPassant, nil
}

func pawnPushes(c Color, pawns, occupied Bitboard) Bitboard {
	if c == White {
		return pawns.North() &^ occupied
	}
	return pawns.South() &^ occupied
}

func pawnDoublePushes(c Color, pawns, occupied Bitboard) Bitboard {
	if c == White {
		return ((pawns & Rank2) << 16) &^ occupied
	}
	return ((pawns & Rank7) >> 16) &^ occupied
}

// pawnAttacks returns the two forward diagonals of every pawn.
func pawnAttacks(c Color, pawns Bitboard) Bitboard {
	if c == White {
		return pawns.NorthEast() | pawns.NorthWest()
	}
	return pawns.SouthWest() | pawns.SouthEast()
}

// Destinations returns the destination set of all pieces of one color and
// type, using the position's occupancy. Knights, kings and sliders see the
// occupancy of both colors.
func (p *Position) Destinations(c Color, pt PieceType) (Bitboard, error) {
	if !c.Valid() {
		return Empty, fmt.Errorf("%w: color %d", ErrInvalidValue, c)
	}
	if pt >= NoPieceType {
		return Empty, fmt.Errorf("%w: piece type %d", ErrInvalidValue, pt)
	}
	return p.destinations(c, pt, p.Pieces[c][pt])
}

// DestinationsFrom returns the destination set of the single piece on layout
// bit sq. An empty square yields an empty set.
func (p *Position) DestinationsFrom(sq Square) (Bitboard, error) {
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		return Empty, nil
	}
	return p.destinations(piece.Color(), piece.Type(), SquareBB(sq))
}

func (p *Position) destinations(c Color, pt PieceType, pieces Bitboard) (Bitboard, error) {
	all := p.All()
	if pt == Pawn {
		return PawnMoves(c, pieces, all, p.Occupied[c.Other()], p.EnPassant)
	}
	return pieceMoves[pt](pieces, all), nil
}
