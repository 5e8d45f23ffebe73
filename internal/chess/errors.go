package chess

import "errors"

var (
	// ErrOutOfBounds reports a row or column outside [0,7].
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrInvalidNotation reports a malformed square or move string.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrInvalidMove reports a move that does not match the board it is applied to.
	ErrInvalidMove = errors.New("invalid move application")

	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidPosition reports a board without exactly one king per side.
	ErrInvalidPosition = errors.New("invalid position")
)
