package chess

import "fmt"

const BoardSize = 8

// Square addresses a board cell. Row 0 is rank 8, column 0 is file a.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewSquare returns the square at row, col or ErrOutOfBounds.
func NewSquare(row, col int) (Square, error) {
	if !onBoard(row, col) {
		return Square{}, fmt.Errorf("row %d col %d: %w", row, col, ErrOutOfBounds)
	}
	return Square{Row: row, Col: col}, nil
}

// MustSquare is NewSquare for constant coordinates; it panics on bad input.
func MustSquare(row, col int) Square {
	sq, err := NewSquare(row, col)
	if err != nil {
		panic(err)
	}
	return sq
}

func onBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (s Square) offset(dr, dc int) (Square, bool) {
	row, col := s.Row+dr, s.Col+dc
	return Square{Row: row, Col: col}, onBoard(row, col)
}

func (s Square) String() string {
	if !onBoard(s.Row, s.Col) {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return SquareToNotation(s)
}
