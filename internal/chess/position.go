// Package chess is a rule engine: board state, pseudo-legal move generation,
// king safety filtering, reversible moves and coordinate notation. Castling,
// en passant and promotion are not part of the rules it knows.
package chess

import "fmt"

// Position is the mutable game state. It is mutated only through ApplyMove
// and UndoLastMove and must not be shared between goroutines without
// external locking.
type Position struct {
	board      Board
	sideToMove Color
	whiteKing  Square
	blackKing  Square
	history    []Move

	// fullmove number and side to move before the first recorded move
	startMove int
	startSide Color
}

// NewGame returns the standard starting position with white to move.
func NewGame() *Position {
	return &Position{
		board:      StartingBoard(),
		sideToMove: White,
		whiteKing:  Square{Row: 7, Col: 4},
		blackKing:  Square{Row: 0, Col: 4},
		history:    make([]Move, 0),
		startMove:  1,
		startSide:  White,
	}
}

// FromBoard builds a position from a raw board, locating the kings by scan.
func FromBoard(board Board, toMove Color) (*Position, error) {
	p := &Position{
		board:      board,
		sideToMove: toMove,
		history:    make([]Move, 0),
		startMove:  1,
		startSide:  toMove,
	}
	var whiteKings, blackKings int
	for r := range board {
		for c, pc := range board[r] {
			if pc.IsEmpty() {
				p.board[r][c] = Empty
				continue
			}
			if pc.Kind > King || pc.Color > Black {
				return nil, fmt.Errorf("unknown piece %d/%d on %v: %w", pc.Color, pc.Kind, Square{Row: r, Col: c}, ErrInvalidPosition)
			}
			if pc.Kind != King {
				continue
			}
			if pc.Color == White {
				p.whiteKing = Square{Row: r, Col: c}
				whiteKings++
			} else {
				p.blackKing = Square{Row: r, Col: c}
				blackKings++
			}
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return nil, fmt.Errorf("%d white and %d black kings: %w", whiteKings, blackKings, ErrInvalidPosition)
	}
	return p, nil
}

// Board returns a copy of the grid.
func (p *Position) Board() Board {
	return p.board
}

func (p *Position) At(s Square) Piece {
	return p.board.at(s)
}

func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// KingSquare returns the cached location of c's king.
func (p *Position) KingSquare(c Color) Square {
	if c == White {
		return p.whiteKing
	}
	return p.blackKing
}

// History returns a copy of the applied moves, oldest first.
func (p *Position) History() []Move {
	out := make([]Move, len(p.history))
	copy(out, p.history)
	return out
}

// Ply is the number of applied moves.
func (p *Position) Ply() int {
	return len(p.history)
}

// FullMove is the FEN fullmove number: it starts at the number the position
// was built with and increments after each black move.
func (p *Position) FullMove() int {
	plies := len(p.history)
	if p.startSide == Black {
		plies++
	}
	return p.startMove + plies/2
}

func (p *Position) LastMove() (Move, bool) {
	if len(p.history) == 0 {
		return Move{}, false
	}
	return p.history[len(p.history)-1], true
}

// NewMove describes moving whatever stands on from to to, as of the current board.
func (p *Position) NewMove(from, to Square) (Move, error) {
	if !onBoard(from.Row, from.Col) || !onBoard(to.Row, to.Col) {
		return Move{}, fmt.Errorf("move %v-%v: %w", from, to, ErrOutOfBounds)
	}
	return newMove(from, to, &p.board), nil
}

// ApplyMove plays m without checking legality. It fails with ErrInvalidMove
// when m was not built from the current board for the side to move.
func (p *Position) ApplyMove(m Move) error {
	switch {
	case m.moved.IsEmpty():
		return fmt.Errorf("move %v moves nothing: %w", m, ErrInvalidMove)
	case m.from == m.to:
		return fmt.Errorf("move %v does not leave its square: %w", m, ErrInvalidMove)
	case m.moved.Color != p.sideToMove:
		return fmt.Errorf("move %v moves a %s piece on %s's turn: %w", m, m.moved.Color, p.sideToMove, ErrInvalidMove)
	case p.board.at(m.from) != m.moved:
		return fmt.Errorf("move %v expects %v on %v, found %v: %w", m, m.moved, m.from, p.board.at(m.from), ErrInvalidMove)
	case p.board.at(m.to) != m.captured:
		return fmt.Errorf("move %v expects %v on %v, found %v: %w", m, m.captured, m.to, p.board.at(m.to), ErrInvalidMove)
	}
	p.apply(m)
	return nil
}

func (p *Position) apply(m Move) {
	p.board.set(m.from, Empty)
	p.board.set(m.to, m.moved)
	p.history = append(p.history, m)
	p.sideToMove = p.sideToMove.Opponent()
	if m.moved.Kind == King {
		p.setKingSquare(m.moved.Color, m.to)
	}
}

// UndoLastMove takes back the most recent move. It does nothing when no
// move has been played.
func (p *Position) UndoLastMove() {
	if len(p.history) == 0 {
		return
	}
	m := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	p.board.set(m.from, m.moved)
	p.board.set(m.to, m.captured)
	p.sideToMove = p.sideToMove.Opponent()
	if m.moved.Kind == King {
		p.setKingSquare(m.moved.Color, m.from)
	}
}

func (p *Position) setKingSquare(c Color, s Square) {
	if c == White {
		p.whiteKing = s
	} else {
		p.blackKing = s
	}
}
