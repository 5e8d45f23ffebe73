package chess

import "strings"

// Board is the 8x8 grid, row-major, indexed [row][col].
type Board [BoardSize][BoardSize]Piece

var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingBoard returns the standard initial layout with black on rows 0-1.
func StartingBoard() Board {
	var b Board
	for col, k := range backRank {
		b[0][col] = B(k)
		b[1][col] = B(Pawn)
		b[6][col] = W(Pawn)
		b[7][col] = W(k)
	}
	return b
}

func (b *Board) at(s Square) Piece {
	return b[s.Row][s.Col]
}

func (b *Board) set(s Square, p Piece) {
	b[s.Row][s.Col] = p
}

// Codes returns the board as rows of sprite codes.
func (b Board) Codes() [][]string {
	rows := make([][]string, BoardSize)
	for r := range b {
		rows[r] = make([]string, BoardSize)
		for c, p := range b[r] {
			rows[r][c] = p.Code()
		}
	}
	return rows
}

func (b Board) String() string {
	var sb strings.Builder
	for r := range b {
		for c, p := range b[r] {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.FEN())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
