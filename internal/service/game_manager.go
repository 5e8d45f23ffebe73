package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benbeisheim/chess-backend/internal/chess"
	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/google/uuid"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

// Match tells a queued player which game they were paired into.
type Match struct {
	GameID string            `json:"game_id"`
	Color  model.PlayerColor `json:"color"`
}

type GameManager struct {
	games       map[string]*model.Game
	queue       *model.Queue
	matches     map[string]Match // playerID -> latest pairing
	clockBudget time.Duration
	mu          sync.RWMutex
}

func NewGameManager(clockBudget time.Duration) *GameManager {
	return &GameManager{
		games:       make(map[string]*model.Game),
		queue:       model.NewQueue(),
		matches:     make(map[string]Match),
		clockBudget: clockBudget,
	}
}

// Run pairs queued players every interval until ctx is done.
func (gm *GameManager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gm.matchQueued()
		}
	}
}

func (gm *GameManager) matchQueued() {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	for {
		player1, player2, ok := gm.queue.GetNextPair()
		if !ok {
			return
		}
		gameID := uuid.New().String()
		game := model.NewGame(gameID, gm.clockBudget)
		p1Color, err := game.AddPlayer(player1.ID)
		if err != nil {
			slog.Error("failed to seat matched player", "game", gameID, "player", player1.ID, "err", err)
			continue
		}
		p2Color, err := game.AddPlayer(player2.ID)
		if err != nil {
			slog.Error("failed to seat matched player", "game", gameID, "player", player2.ID, "err", err)
			continue
		}
		gm.games[gameID] = game
		gm.matches[player1.ID] = Match{GameID: gameID, Color: p1Color}
		gm.matches[player2.ID] = Match{GameID: gameID, Color: p2Color}
		slog.Info("players matched", "game", gameID, "white", player1.ID, "black", player2.ID)
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return fmt.Errorf("%s: %w", gameID, ErrGameExists)
	}

	gm.games[gameID] = model.NewGame(gameID, gm.clockBudget)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%s: %w", gameID, ErrGameNotFound)
	}

	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.PlayerColor, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	delete(gm.matches, playerID)
	return gm.queue.AddPlayer(model.Player{ID: playerID})
}

// MatchStatus returns the latest pairing for playerID. ok is false while
// the player is still waiting or never queued.
func (gm *GameManager) MatchStatus(playerID string) (Match, bool) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	m, ok := gm.matches[playerID]
	return m, ok
}

func (gm *GameManager) IsQueued(playerID string) bool {
	return gm.queue.Contains(playerID)
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, from, to chess.Square) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMove(playerID, from, to)
}

func (gm *GameManager) Undo(gameID string, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.Undo(playerID)
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn model.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}

func (gm *GameManager) SendError(gameID string, playerID string, cause error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.SendError(playerID, cause)
}
