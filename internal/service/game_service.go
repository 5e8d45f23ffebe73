package service

import (
	"fmt"

	"github.com/benbeisheim/chess-backend/internal/chess"
	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.PlayerColor, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) MatchStatus(playerID string) (Match, bool) {
	return gs.gameManager.MatchStatus(playerID)
}

func (gs *GameService) IsQueued(playerID string) bool {
	return gs.gameManager.IsQueued(playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

// HandleMove plays a move given as squares in notation.
func (gs *GameService) HandleMove(gameID string, playerID string, move model.WSMove) error {
	from, to, err := move.Squares()
	if err != nil {
		return err
	}
	return gs.gameManager.MakeMove(gameID, playerID, from, to)
}

// HandleMoveNotation plays a move written as "e2e4".
func (gs *GameService) HandleMoveNotation(gameID string, playerID string, notation string) error {
	from, to, err := chess.ParseMoveNotation(notation)
	if err != nil {
		return err
	}
	return gs.gameManager.MakeMove(gameID, playerID, from, to)
}

func (gs *GameService) HandleUndo(gameID string, playerID string) error {
	return gs.gameManager.Undo(gameID, playerID)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn model.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}

// SendError reports cause to playerID's connection on the game.
func (gs *GameService) SendError(gameID string, playerID string, cause error) {
	gs.gameManager.SendError(gameID, playerID, cause)
}
