package board

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseOption configures ParseFEN.
type ParseOption func(*fenParser)

// WithLogger reports skipped castling letters and unknown layout letters.
// They never fail the parse.
func WithLogger(l *log.Logger) ParseOption {
	return func(fp *fenParser) {
		fp.logger = l
	}
}

type fenParser struct {
	logger *log.Logger
}

func (fp *fenParser) warnf(format string, args ...any) {
	if fp.logger != nil {
		fp.logger.Printf(format, args...)
	}
}

// ParseFEN parses a FEN string and returns a Position.
//
// Only the first four fields are read; the halfmove clock and fullmove
// number keep their defaults of 0 and 1. The board layout is scanned with a
// cursor that starts at 63 and counts down, so a8 lands on bit 63 and h1 on
// bit 0. The en passant field uses the algebraic mapping instead.
func ParseFEN(fen string, opts ...ParseOption) (*Position, error) {
	fp := &fenParser{}
	for _, opt := range opts {
		opt(fp)
	}

	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("%w: need at least 4 fields, got %d", ErrFormat, len(parts))
	}

	pos := NewPosition()

	// Side to move (field 1)
	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidValue, parts[1])
	}

	// Castling rights (field 2)
	fp.parseCastlingRights(pos, parts[2])

	// En passant target (field 3)
	// Only the first two characters name the square; "e33" reads as e3.
	if label := parts[3]; label != "-" {
		if len(label) > 2 {
			label = label[:2]
		}
		sq, err := ParseSquare(label)
		if err != nil {
			return nil, fmt.Errorf("%w: en passant target: %w", ErrInvalidValue, err)
		}
		pos.EnPassant = SquareBB(sq)
	}

	// Piece placement (field 0)
	fp.parsePiecePlacement(pos, parts[0])

	pos.updateOccupied()

	return pos, nil
}

// parseCastlingRights ORs in the bit of every known letter.
func (fp *fenParser) parseCastlingRights(pos *Position, castling string) {
	if castling == "-" {
		return
	}
	for _, c := range castling {
		cr, ok := castlingChars[c]
		if !ok {
			fp.warnf("fen: ignoring castling character %q", c)
			continue
		}
		pos.CastlingRights |= cr
	}
}

// parsePiecePlacement scans the layout field with a descending cursor.
// Every character other than a digit or '/' takes one square, whatever its
// encoded length.
func (fp *fenParser) parsePiecePlacement(pos *Position, placement string) {
	cursor := 63

	for _, r := range placement {
		switch {
		case r >= '0' && r <= '9':
			cursor -= int(r - '0')
		case r == '/':
			continue
		default:
			piece := PieceFromChar(r)
			switch {
			case piece == NoPiece:
				fp.warnf("fen: ignoring piece character %q", r)
			case cursor < 0:
				fp.warnf("fen: piece %q falls off the board", r)
			default:
				color, pt := piece.Color(), piece.Type()
				pos.Pieces[color][pt] = SetBit(pos.Pieces[color][pt], Square(cursor))
			}
			cursor--
		}
	}
}

// ToFEN returns the FEN representation of the position.
// The layout is written in the same scan order ParseFEN reads it.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	// Piece placement
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank).Layout())
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	// Side to move
	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	// Castling rights
	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	// En passant, already in algebraic order
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.LSB().String())

	// Half-move clock and full-move number
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}
