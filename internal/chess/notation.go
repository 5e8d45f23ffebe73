package chess

import "fmt"

var (
	rowsToRanks = [BoardSize]byte{'8', '7', '6', '5', '4', '3', '2', '1'}
	colsToFiles = [BoardSize]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}
)

// SquareToNotation renders s as file and rank, e.g. (0,0) is "a8".
func SquareToNotation(s Square) string {
	return string([]byte{colsToFiles[s.Col], rowsToRanks[s.Row]})
}

// MoveToNotation renders origin and destination back to back, e.g. "e2e4".
func MoveToNotation(m Move) string {
	return SquareToNotation(m.from) + SquareToNotation(m.to)
}

// NotationToSquare is the inverse of SquareToNotation.
func NotationToSquare(s string) (Square, error) {
	return ParseSquare(s)
}

func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, ErrInvalidNotation)
	}
	col, row := -1, -1
	for i, f := range colsToFiles {
		if f == s[0] {
			col = i
		}
	}
	for i, r := range rowsToRanks {
		if r == s[1] {
			row = i
		}
	}
	if col < 0 || row < 0 {
		return Square{}, fmt.Errorf("square %q: %w", s, ErrOutOfBounds)
	}
	return Square{Row: row, Col: col}, nil
}

// ParseMoveNotation splits coordinate notation such as "g1f3" into squares.
func ParseMoveNotation(s string) (from, to Square, err error) {
	if len(s) != 4 {
		return Square{}, Square{}, fmt.Errorf("move %q: %w", s, ErrInvalidNotation)
	}
	if from, err = ParseSquare(s[:2]); err != nil {
		return Square{}, Square{}, err
	}
	if to, err = ParseSquare(s[2:]); err != nil {
		return Square{}, Square{}, err
	}
	return from, to, nil
}
