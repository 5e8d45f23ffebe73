package model

import "github.com/benbeisheim/chess-backend/internal/chess"

// WSMove is a move request as the client sends it, squares in notation.
type WSMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Squares decodes the request into board squares.
func (m WSMove) Squares() (from, to chess.Square, err error) {
	if from, err = chess.ParseSquare(m.From); err != nil {
		return
	}
	to, err = chess.ParseSquare(m.To)
	return
}

// Ply is one entry of the move history as shown to clients.
type Ply struct {
	Piece         string `json:"piece"`
	From          string `json:"from"`
	To            string `json:"to"`
	CapturedPiece string `json:"capturedPiece,omitempty"`
	Notation      string `json:"notation"`
}

func newPly(m chess.Move) Ply {
	p := Ply{
		Piece:    m.Moved().Code(),
		From:     chess.SquareToNotation(m.From()),
		To:       chess.SquareToNotation(m.To()),
		Notation: chess.MoveToNotation(m),
	}
	if m.IsCapture() {
		p.CapturedPiece = m.Captured().Code()
	}
	return p
}

type SimpleMove struct {
	From chess.Square `json:"from"`
	To   chess.Square `json:"to"`
}
