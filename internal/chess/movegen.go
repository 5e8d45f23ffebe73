package chess

type direction struct {
	dr, dc int
}

var (
	knightOffsets = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []direction{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	rookDirs      = []direction{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	bishopDirs    = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// PseudoLegalMoves lists every move of the side to move that obeys piece
// geometry and occupancy, ignoring king safety. Moves come in row-major
// square order, then direction order, then slide distance.
func (p *Position) PseudoLegalMoves() []Move {
	moves := make([]Move, 0, 48)
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			pc := p.board[r][c]
			if pc.IsEmpty() || pc.Color != p.sideToMove {
				continue
			}
			from := Square{Row: r, Col: c}
			switch pc.Kind {
			case Pawn:
				moves = p.pawnMoves(from, moves)
			case Rook:
				moves = p.slidingMoves(from, rookDirs, moves)
			case Knight:
				moves = p.steppingMoves(from, knightOffsets, moves)
			case Bishop:
				moves = p.slidingMoves(from, bishopDirs, moves)
			case Queen:
				moves = p.slidingMoves(from, rookDirs, moves)
				moves = p.slidingMoves(from, bishopDirs, moves)
			case King:
				moves = p.steppingMoves(from, kingOffsets, moves)
			}
		}
	}
	return moves
}

func (p *Position) pawnMoves(from Square, moves []Move) []Move {
	color := p.board.at(from).Color
	forward, startRow := -1, 6
	if color == Black {
		forward, startRow = 1, 1
	}

	if one, ok := from.offset(forward, 0); ok && p.board.at(one).IsEmpty() {
		moves = append(moves, newMove(from, one, &p.board))
		if two, ok := from.offset(2*forward, 0); ok && from.Row == startRow && p.board.at(two).IsEmpty() {
			moves = append(moves, newMove(from, two, &p.board))
		}
	}
	for _, dc := range []int{-1, 1} {
		to, ok := from.offset(forward, dc)
		if !ok {
			continue
		}
		if target := p.board.at(to); !target.IsEmpty() && target.Color != color {
			moves = append(moves, newMove(from, to, &p.board))
		}
	}
	return moves
}

// steppingMoves handles knights and kings: one hop per offset.
func (p *Position) steppingMoves(from Square, offsets []direction, moves []Move) []Move {
	color := p.board.at(from).Color
	for _, d := range offsets {
		to, ok := from.offset(d.dr, d.dc)
		if !ok {
			continue
		}
		if target := p.board.at(to); target.IsEmpty() || target.Color != color {
			moves = append(moves, newMove(from, to, &p.board))
		}
	}
	return moves
}

// slidingMoves walks each ray until the edge or the first occupied square,
// which is included only when it holds an opponent piece.
func (p *Position) slidingMoves(from Square, dirs []direction, moves []Move) []Move {
	color := p.board.at(from).Color
	for _, d := range dirs {
		to, ok := from.offset(d.dr, d.dc)
		for ok {
			target := p.board.at(to)
			if target.IsEmpty() {
				moves = append(moves, newMove(from, to, &p.board))
			} else {
				if target.Color != color {
					moves = append(moves, newMove(from, to, &p.board))
				}
				break
			}
			to, ok = to.offset(d.dr, d.dc)
		}
	}
	return moves
}
