package chess

// Move is a single ply. Two moves with the same origin and destination are
// equal whatever piece moved or was captured.
type Move struct {
	from     Square
	to       Square
	moved    Piece
	captured Piece
}

func newMove(from, to Square, board *Board) Move {
	return Move{
		from:     from,
		to:       to,
		moved:    board.at(from),
		captured: board.at(to),
	}
}

func (m Move) From() Square { return m.from }
func (m Move) To() Square { return m.to }
func (m Move) Moved() Piece { return m.moved }
func (m Move) Captured() Piece { return m.captured }
func (m Move) IsCapture() bool { return !m.captured.IsEmpty() }
func (m Move) String() string { return MoveToNotation(m) }
func (m Move) Equal(o Move) bool { return m.Key() == o.Key() }

// Key identifies a move by its squares alone.
func (m Move) Key() int {
	return m.from.Row*1000 + m.from.Col*100 + m.to.Row*10 + m.to.Col
}
