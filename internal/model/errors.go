package model

import "errors"

var (
	ErrGameFull      = errors.New("game is full")
	ErrNotSeated     = errors.New("player not in game")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrIllegalMove   = errors.New("invalid move, not legal")
	ErrAlreadyQueued = errors.New("player already in queue")

	ErrDuplicateConnection = errors.New("connection already exists")
)
