package board

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func mustParse(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func TestParseFENStartPosition(t *testing.T) {
	pos := mustParse(t, StartFEN)

	tests := []struct {
		piece Piece
		want  Bitboard
	}{
		{WhitePawn, 0x000000000000FF00},
		{WhiteKnight, 0x0000000000000042},
		{WhiteBishop, 0x0000000000000024},
		{WhiteRook, 0x0000000000000081},
		{WhiteQueen, 0x0000000000000010},
		{WhiteKing, 0x0000000000000008},
		{BlackPawn, 0x00FF000000000000},
		{BlackKnight, 0x4200000000000000},
		{BlackBishop, 0x2400000000000000},
		{BlackRook, 0x8100000000000000},
		{BlackQueen, 0x1000000000000000},
		{BlackKing, 0x0800000000000000},
	}

	for _, tt := range tests {
		if got := pos.Bitboard(tt.piece); got != tt.want {
			t.Errorf("%s: got %#016x, want %#016x", tt.piece.SetName(), uint64(got), uint64(tt.want))
		}
	}

	// e1 is bit 3 under the layout scan, not bit 4 as the algebraic label gives.
	if pos.Pieces[White][King] != SquareBB(3) || pos.Pieces[White][King] == SquareBB(E1) {
		t.Errorf("white king should sit on bit 3, got\n%s", pos.Pieces[White][King])
	}

	if pos.Occupied[White] != 0xFFFF || pos.Occupied[Black] != 0xFFFF000000000000 {
		t.Errorf("occupancy: white %#x black %#x", uint64(pos.Occupied[White]), uint64(pos.Occupied[Black]))
	}
	if pos.SideToMove != White {
		t.Errorf("side to move: got %s", pos.SideToMove)
	}
	if pos.CastlingRights != 0b1111 {
		t.Errorf("castling: got %04b", pos.CastlingRights)
	}
	if AllCastling != 0b1111 {
		t.Errorf("AllCastling: got %04b", AllCastling)
	}
	if pos.EnPassant != Empty {
		t.Errorf("en passant: got %#x", uint64(pos.EnPassant))
	}
	if pos.HalfMoveClock != 0 || pos.FullMoveNumber != 1 {
		t.Errorf("counters: got %d %d", pos.HalfMoveClock, pos.FullMoveNumber)
	}
}

func TestParseFENScanOrder(t *testing.T) {
	pos := mustParse(t, "k7/8/8/8/8/8/8/7K w - - 0 1")
	if pos.Pieces[Black][King] != SquareBB(63) {
		t.Errorf("a8 king: got %#x", uint64(pos.Pieces[Black][King]))
	}
	if pos.Pieces[White][King] != SquareBB(0) {
		t.Errorf("h1 king: got %#x", uint64(pos.Pieces[White][King]))
	}

	pos = mustParse(t, "7k/8/8/8/8/8/8/K7 b - - 0 1")
	if pos.Pieces[Black][King] != SquareBB(56) || pos.Pieces[White][King] != SquareBB(7) {
		t.Errorf("h8/a1 kings: got %#x %#x", uint64(pos.Pieces[Black][King]), uint64(pos.Pieces[White][King]))
	}
	if pos.SideToMove != Black {
		t.Errorf("side to move: got %s", pos.SideToMove)
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"empty", "", ErrFormat},
		{"three fields", "8/8/8/8/8/8/8/8 w -", ErrFormat},
		{"bad side", "8/8/8/8/8/8/8/8 x - -", ErrInvalidValue},
		{"uppercase side", "8/8/8/8/8/8/8/8 W - -", ErrInvalidValue},
		{"bad en passant", "8/8/8/8/8/8/8/8 w - z9", ErrInvalidSquare},
		{"short en passant", "8/8/8/8/8/8/8/8 w - e", ErrInvalidSquare},
		{"en passant off the board", "8/8/8/8/8/8/8/8 w - i33", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(tt.fen)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if pos != nil {
				t.Error("no position should be returned on error")
			}
		})
	}
}

func TestParseFENCastling(t *testing.T) {
	tests := []struct {
		field string
		want  CastlingRights
	}{
		{"-", NoCastling},
		{"KQkq", 0b1111},
		{"K", 0b1000},
		{"Q", 0b0100},
		{"k", 0b0010},
		{"q", 0b0001},
		{"Kq", 0b1001},
		{"KXq", 0b1001},
		{"zz", NoCastling},
	}

	for _, tt := range tests {
		pos := mustParse(t, "8/8/8/8/8/8/8/8 w "+tt.field+" -")
		if pos.CastlingRights != tt.want {
			t.Errorf("%q: got %04b, want %04b", tt.field, pos.CastlingRights, tt.want)
		}
	}
}

func TestParseFENEnPassantUsesAlgebraicIndex(t *testing.T) {
	pos := mustParse(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if pos.EnPassant != SquareBB(43) {
		t.Fatalf("en passant: got %#x", uint64(pos.EnPassant))
	}

	// The algebraic d6 bit is layout e6, straight ahead of the e5 pawn, so
	// the two encodings never meet on the pawn's diagonals.
	got, err := pos.DestinationsFrom(E5.Layout())
	if err != nil {
		t.Fatal(err)
	}
	if got != at(E6) {
		t.Errorf("e5 pawn destinations:\n%s", got)
	}
}

func TestParseFENIgnoresCounters(t *testing.T) {
	pos := mustParse(t, "8/8/8/8/8/8/8/8 w - - 42 17")
	if pos.HalfMoveClock != 0 || pos.FullMoveNumber != 1 {
		t.Errorf("counters: got %d %d, want 0 1", pos.HalfMoveClock, pos.FullMoveNumber)
	}

	pos.AdvanceHalfMove()
	pos.AdvanceHalfMove()
	pos.AdvanceFullMove()
	if pos.HalfMoveClock != 2 || pos.FullMoveNumber != 2 {
		t.Errorf("after advancing: got %d %d, want 2 2", pos.HalfMoveClock, pos.FullMoveNumber)
	}
}

func TestParseFENUnknownLetters(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	pos, err := ParseFEN("xK6/8/8/8/8/8/8/8 w KZ -", WithLogger(logger))
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	// x consumes a8, so the king lands on b8.
	if pos.Pieces[White][King] != SquareBB(62) {
		t.Errorf("king: got %#x, want bit 62", uint64(pos.Pieces[White][King]))
	}
	if pos.All() != pos.Pieces[White][King] {
		t.Error("unknown letter should not set any bit")
	}
	if pos.CastlingRights != WhiteKingSideCastle {
		t.Errorf("castling: got %04b", pos.CastlingRights)
	}

	out := buf.String()
	if !strings.Contains(out, `piece character 'x'`) || !strings.Contains(out, `castling character 'Z'`) {
		t.Errorf("missing diagnostics, got %q", out)
	}
}

func TestParseFENEnPassantReadsTwoCharacters(t *testing.T) {
	pos := mustParse(t, "8/8/8/8/8/8/8/8 w - e33")
	if pos.EnPassant != SquareBB(E3) {
		t.Errorf("en passant: got %#x, want e3", uint64(pos.EnPassant))
	}
}

func TestParseFENMultibyteLetter(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	pos, err := ParseFEN("\u00e9K6/8/8/8/8/8/8/8 w - -", WithLogger(logger))
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	// The accented letter takes a8 as a single square.
	if pos.Pieces[White][King] != SquareBB(62) {
		t.Errorf("king: got %#x, want bit 62", uint64(pos.Pieces[White][King]))
	}
	if got := buf.String(); strings.Count(got, "ignoring piece character") != 1 || !strings.Contains(got, "'\u00e9'") {
		t.Errorf("diagnostics: got %q", got)
	}
}

func TestParseFENOverlongRank(t *testing.T) {
	// Eighty squares of layout: pieces past bit 0 have nowhere to go.
	pos, err := ParseFEN("8/8/8/8/8/8/8/8/8/8PK w - -")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.All() != Empty {
		t.Errorf("expected no pieces, got\n%s", pos.All())
	}
}

func TestToFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		kiwipeteFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 1",
	}

	for _, fen := range fens {
		pos := mustParse(t, fen)
		if got := pos.ToFEN(); got != fen {
			t.Errorf("ToFEN:\n got %s\nwant %s", got, fen)
		}
		again := mustParse(t, pos.ToFEN())
		if *again != *pos {
			t.Errorf("%s: reparsed position differs", fen)
		}
	}
}

func TestToFENWritesCounters(t *testing.T) {
	pos := StartPosition()
	pos.AdvanceHalfMove()
	pos.AdvanceFullMove()
	if got := pos.ToFEN(); !strings.HasSuffix(got, " - 1 2") {
		t.Errorf("got %s", got)
	}
}
