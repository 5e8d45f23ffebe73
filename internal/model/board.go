package model

import "github.com/benbeisheim/chess-backend/internal/chess"

// BoardState is the render view of a position: one sprite code per square,
// "--" for empty, rows ordered from rank 8 down to rank 1.
type BoardState struct {
	Board             [][]string   `json:"board"`
	WhiteKingPosition chess.Square `json:"whiteKingPosition"`
	BlackKingPosition chess.Square `json:"blackKingPosition"`
}

func newBoardState(pos *chess.Position) BoardState {
	return BoardState{
		Board:             pos.Board().Codes(),
		WhiteKingPosition: pos.KingSquare(chess.White),
		BlackKingPosition: pos.KingSquare(chess.Black),
	}
}
