package chess

// SquareAttacked reports whether any pseudo-legal move of by lands on s.
// The side to move is switched for the duration of the call and restored.
func (p *Position) SquareAttacked(s Square, by Color) bool {
	saved := p.sideToMove
	p.sideToMove = by
	defer func() { p.sideToMove = saved }()

	for _, m := range p.PseudoLegalMoves() {
		if m.to == s {
			return true
		}
	}
	return false
}

// InCheck reports whether the side to move has its king attacked.
func (p *Position) InCheck() bool {
	return p.SquareAttacked(p.KingSquare(p.sideToMove), p.sideToMove.Opponent())
}

// LegalMoves filters PseudoLegalMoves down to the moves that do not leave
// the mover's king attacked, keeping generator order. Each candidate is
// played, tested from the mover's side, and taken back.
func (p *Position) LegalMoves() []Move {
	candidates := p.PseudoLegalMoves()
	legal := candidates[:0]
	mover := p.sideToMove
	for _, m := range candidates {
		p.apply(m)
		p.sideToMove = mover
		exposed := p.InCheck()
		p.sideToMove = mover.Opponent()
		p.UndoLastMove()
		if !exposed {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegal reports whether a move with m's squares is among LegalMoves.
func (p *Position) IsLegal(m Move) bool {
	_, ok := p.FindLegal(m.from, m.to)
	return ok
}

// FindLegal returns the legal move from one square to another, if any.
func (p *Position) FindLegal(from, to Square) (Move, bool) {
	key := Move{from: from, to: to}.Key()
	for _, m := range p.LegalMoves() {
		if m.Key() == key {
			return m, true
		}
	}
	return Move{}, false
}

// Perft counts the leaf nodes of the legal move tree depth plies deep.
func (p *Position) Perft(depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		p.apply(m)
		nodes += p.Perft(depth - 1)
		p.UndoLastMove()
	}
	return nodes
}
