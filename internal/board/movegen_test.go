package board

import (
	"errors"
	"testing"
)

// at builds a bitboard in board-layout order from algebraic squares.
func at(squares ...Square) Bitboard {
	var bb Bitboard
	for _, sq := range squares {
		bb |= SquareBB(sq.Layout())
	}
	return bb
}

func TestKnightMoveCounts(t *testing.T) {
	tests := []struct {
		name string
		from Square
		want int
	}{
		{"e4", E4, 8},
		{"d5", D5, 8},
		{"a1", A1, 2},
		{"h1", H1, 2},
		{"a8", A8, 2},
		{"h8", H8, 2},
		{"b1", B1, 3},
		{"g2", G2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KnightMoves(at(tt.from), Empty)
			if got.PopCount() != tt.want {
				t.Errorf("knight on %s: got %d destinations, want %d\n%s", tt.from, got.PopCount(), tt.want, got)
			}
		})
	}
}

func TestKnightMovesExactSquares(t *testing.T) {
	if got, want := KnightMoves(at(A1), Empty), at(B3, C2); got != want {
		t.Errorf("knight a1:\n%s\nwant\n%s", got, want)
	}
	if got, want := KnightMoves(at(H8), Empty), at(G6, F7); got != want {
		t.Errorf("knight h8:\n%s\nwant\n%s", got, want)
	}
	want := at(D6, F6, C5, G5, C3, G3, D2, F2)
	if got := KnightMoves(at(E4), Empty); got != want {
		t.Errorf("knight e4:\n%s\nwant\n%s", got, want)
	}
}

func TestKnightMovesExcludeOccupied(t *testing.T) {
	occupied := at(E4, D6, F2)
	got := KnightMoves(at(E4), occupied)
	want := at(F6, C5, G5, C3, G3, D2)
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestKnightMovesWholeSetMatchesPerPiece(t *testing.T) {
	knights := at(A1, B1, G1, E4, H5, A8, H8)
	occupied := knights | at(C3, F6)

	var perPiece Bitboard
	knights.ForEach(func(sq Square) {
		perPiece |= KnightMoves(SquareBB(sq), occupied)
	})

	if got := KnightMoves(knights, occupied); got != perPiece {
		t.Errorf("whole-set shift\n%s\nper-piece union\n%s", got, perPiece)
	}
}

func TestKingMoves(t *testing.T) {
	tests := []struct {
		name     string
		kings    Bitboard
		occupied Bitboard
		want     Bitboard
	}{
		{"e4 empty", at(E4), Empty, at(D3, E3, F3, D4, F4, D5, E5, F5)},
		{"a1 corner", at(A1), Empty, at(A2, B1, B2)},
		{"h8 corner", at(H8), Empty, at(G8, G7, H7)},
		{"h4 edge", at(H4), Empty, at(G3, H3, G4, G5, H5)},
		{"blocked", at(E1), at(E1, D1, F2), at(F1, D2, E2)},
		{"two kings", at(A1, H8), Empty, at(A2, B1, B2, G8, G7, H7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KingMoves(tt.kings, tt.occupied)
			if got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestKingMoveCounts(t *testing.T) {
	if n := KingMoves(at(E4), Empty).PopCount(); n != 8 {
		t.Errorf("king e4: got %d destinations, want 8", n)
	}
	if n := KingMoves(at(A1), Empty).PopCount(); n != 3 {
		t.Errorf("king a1: got %d destinations, want 3", n)
	}
}

func TestRookStopsBeforeBlocker(t *testing.T) {
	occupied := at(A1, A8)
	got := RookMoves(at(A1), occupied)

	if file := got & FileA; file != at(A2, A3, A4, A5, A6, A7) {
		t.Errorf("a-file destinations:\n%s", file)
	}
	want := at(A2, A3, A4, A5, A6, A7, B1, C1, D1, E1, F1, G1, H1)
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestQueenIncludesBlocker(t *testing.T) {
	occupied := at(A1, A8)
	got := QueenMoves(at(A1), occupied)

	if file := got & FileA; file != at(A2, A3, A4, A5, A6, A7, A8) {
		t.Errorf("a-file destinations:\n%s", file)
	}
	want := at(A2, A3, A4, A5, A6, A7, A8,
		B1, C1, D1, E1, F1, G1, H1,
		B2, C3, D4, E5, F6, G7, H8)
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestBishopStopsBeforeBlocker(t *testing.T) {
	occupied := at(C1, E3)
	got := BishopMoves(at(C1), occupied)
	want := at(D2, B2, A3)
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	// Same board, queen diagonals reach e3.
	queen := QueenMoves(at(C1), occupied) &^ (FileC | Rank1)
	if queen != at(D2, E3, B2, A3) {
		t.Errorf("queen diagonals:\n%s", queen)
	}
}

func TestSlidersDoNotWrap(t *testing.T) {
	tests := []struct {
		name string
		gen  MoveFunc
		from Square
		want Bitboard
	}{
		{"rook h4", RookMoves, H4, at(H1, H2, H3, H5, H6, H7, H8, A4, B4, C4, D4, E4, F4, G4)},
		{"bishop a4", BishopMoves, A4, at(B5, C6, D7, E8, B3, C2, D1)},
		{"bishop h5", BishopMoves, H5, at(G6, F7, E8, G4, F3, E2, D1)},
		{"queen a1", QueenMoves, A1, RookMoves(at(A1), at(A1)) | BishopMoves(at(A1), at(A1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.gen(at(tt.from), at(tt.from))
			if got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestSlidersMultiplePieces(t *testing.T) {
	rooks := at(A1, H8)
	occupied := rooks
	want := RookMoves(at(A1), occupied) | RookMoves(at(H8), occupied)
	if got := RookMoves(rooks, occupied); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if RookMoves(Empty, Universe) != Empty || QueenMoves(Empty, Empty) != Empty {
		t.Error("no pieces should give no destinations")
	}
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name      string
		color     Color
		pawns     Bitboard
		occupied  Bitboard
		enemies   Bitboard
		enPassant Bitboard
		want      Bitboard
	}{
		{
			name:  "white initial push",
			color: White, pawns: at(E2), occupied: at(E2),
			want: at(E3, E4),
		},
		{
			name:  "black initial push",
			color: Black, pawns: at(D7), occupied: at(D7),
			want: at(D6, D5),
		},
		{
			name:  "white captures",
			color: White, pawns: at(E4), occupied: at(E4, D5, F5), enemies: at(D5, F5),
			want: at(E5, D5, F5),
		},
		{
			name:  "black captures",
			color: Black, pawns: at(E5), occupied: at(E5, D4, F4), enemies: at(D4, F4),
			want: at(E4, D4, F4),
		},
		{
			name:  "blocked push",
			color: White, pawns: at(E4), occupied: at(E4, E5),
			want: Empty,
		},
		{
			name:  "double push ignores the intermediate square",
			color: White, pawns: at(E2), occupied: at(E2, E3),
			want: at(E4),
		},
		{
			name:  "no double push off the home rank",
			color: White, pawns: at(E3), occupied: at(E3),
			want: at(E4),
		},
		{
			name:  "h-file capture does not wrap",
			color: White, pawns: at(H4), occupied: at(H4, A4, A5, G5), enemies: at(A4, A5, G5),
			want: at(H5, G5),
		},
		{
			name:  "a-file capture does not wrap",
			color: White, pawns: at(A4), occupied: at(A4, H6, B5), enemies: at(H6, B5),
			want: at(A5, B5),
		},
		{
			name:  "en passant",
			color: White, pawns: at(E5), occupied: at(E5, D5), enPassant: at(D6),
			want: at(E6, D6),
		},
		{
			name:  "black en passant",
			color: Black, pawns: at(D4), occupied: at(D4, E4), enPassant: at(E3),
			want: at(D3, E3),
		},
		{
			name:  "friendly piece is not captured",
			color: White, pawns: at(E4), occupied: at(E4, D5),
			want: at(E5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PawnMoves(tt.color, tt.pawns, tt.occupied, tt.enemies, tt.enPassant)
			if err != nil {
				t.Fatalf("PawnMoves: %v", err)
			}
			if got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestPawnMovesRejectsColor(t *testing.T) {
	for _, c := range []Color{NoColor, 3, 255} {
		_, err := PawnMoves(c, at(E2), at(E2), Empty, Empty)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("color %d: got %v, want ErrInvalidValue", c, err)
		}
	}
}

func TestMovesFor(t *testing.T) {
	if MovesFor(Pawn) != nil {
		t.Error("pawns have no plain generator")
	}
	if MovesFor(NoPieceType) != nil {
		t.Error("NoPieceType should have no generator")
	}
	for pt := Knight; pt <= King; pt++ {
		if MovesFor(pt) == nil {
			t.Errorf("%s has no generator", pt)
		}
	}
	got := MovesFor(Knight)(at(A1), Empty)
	if got != KnightMoves(at(A1), Empty) {
		t.Error("dispatch returned a different knight generator")
	}
}

func BenchmarkKnightMoves(b *testing.B) {
	pos := StartPosition()
	knights, all := pos.Pieces[White][Knight], pos.All()
	for i := 0; i < b.N; i++ {
		KnightMoves(knights, all)
	}
}

func BenchmarkQueenMoves(b *testing.B) {
	occupied := at(A1, D4, H8, B7, G2)
	for i := 0; i < b.N; i++ {
		QueenMoves(at(D4), occupied)
	}
}

func BenchmarkRookMoves(b *testing.B) {
	occupied := at(A1, D4, H8, B7, G2)
	for i := 0; i < b.N; i++ {
		RookMoves(at(D4, A1), occupied)
	}
}
