package board

import "errors"

var (
	// ErrFormat reports a position string without the four required fields.
	ErrFormat = errors.New("malformed position string")

	// ErrInvalidValue reports a field or argument outside its allowed values,
	// such as an unknown side-to-move token or a pawn color other than 0 or 1.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidSquare reports a square label that is not a1..h8.
	ErrInvalidSquare = errors.New("invalid square")
)
