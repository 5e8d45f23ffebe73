package model

import "github.com/benbeisheim/chess-backend/internal/chess"

type Player struct {
	ID    string
	Color PlayerColor
}

type ClientPlayer struct {
	ID       string      `json:"name"`
	Color    PlayerColor `json:"color"`
	TimeLeft int         `json:"timeLeft"`
}

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

func colorOf(c chess.Color) PlayerColor {
	if c == chess.White {
		return PlayerColorWhite
	}
	return PlayerColorBlack
}

func (pc PlayerColor) engineColor() chess.Color {
	if pc == PlayerColorBlack {
		return chess.Black
	}
	return chess.White
}
