package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ParseFEN builds a position from the placement, side to move and fullmove
// fields. Castling, en passant and the halfmove clock are accepted and ignored.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty FEN string: %w", ErrInvalidFEN)
	}

	board, err := parsePlacement(fields[0])
	if err != nil {
		return nil, err
	}

	toMove := White
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
		case "b":
			toMove = Black
		default:
			return nil, fmt.Errorf("side to move %q: %w", fields[1], ErrInvalidFEN)
		}
	}

	pos, err := FromBoard(board, toMove)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidFEN)
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("fullmove %q: %w", fields[5], ErrInvalidFEN)
		}
		pos.startMove = n
	}
	return pos, nil
}

func parsePlacement(placement string) (Board, error) {
	var board Board
	rows := strings.Split(placement, "/")
	if len(rows) != BoardSize {
		return board, fmt.Errorf("placement has %d ranks: %w", len(rows), ErrInvalidFEN)
	}
	for r, row := range rows {
		col := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			pc, ok := pieceFromFEN(c)
			if !ok {
				return board, fmt.Errorf("invalid piece character %q: %w", c, ErrInvalidFEN)
			}
			if col >= BoardSize {
				return board, fmt.Errorf("rank %c overflows: %w", rowsToRanks[r], ErrInvalidFEN)
			}
			board[r][col] = pc
			col++
		}
		if col != BoardSize {
			return board, fmt.Errorf("rank %c has %d files: %w", rowsToRanks[r], col, ErrInvalidFEN)
		}
	}
	return board, nil
}

// FEN renders the position. Castling and en passant are always "-" and the
// halfmove clock is not tracked.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < BoardSize; c++ {
			pc := p.board[r][c]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.FEN())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	side := " w"
	if p.sideToMove == Black {
		side = " b"
	}
	sb.WriteString(side)
	sb.WriteString(" - - 0 ")
	sb.WriteString(strconv.Itoa(p.FullMove()))
	return sb.String()
}
