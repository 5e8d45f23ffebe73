package model

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benbeisheim/chess-backend/internal/chess"
	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// Conn is the part of a websocket connection a game writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.Mutex
}

// Game is one session: a position, its two seats and its observers.
// The position is only touched with mu held.
type Game struct {
	ID          string
	mu          sync.Mutex
	position    *chess.Position
	players     Players
	connections *GameConnections
	whiteClock  *Clock
	blackClock  *Clock
}

type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

type GameState struct {
	ID          string      `json:"id"`
	Board       BoardState  `json:"boardState"`
	ToMove      PlayerColor `json:"toMove"`
	MoveHistory []Ply       `json:"moveHistory"`
	LegalMoves  []string    `json:"legalMoves"`
	IsCheck     bool        `json:"isCheck"`
	LastMove    *SimpleMove `json:"lastMove"`
	FEN         string      `json:"fen"`
	Players     Players     `json:"players"`
}

func NewGame(id string, clockBudget time.Duration) *Game {
	return &Game{
		ID:          id,
		position:    chess.NewGame(),
		connections: NewGameConnections(),
		whiteClock:  NewClock(clockBudget),
		blackClock:  NewClock(clockBudget),
	}
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

// AddPlayer seats playerID as white, then black. A seated player gets
// their existing color back.
func (g *Game) AddPlayer(playerID string) (PlayerColor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if color, ok := g.seatOf(playerID); ok {
		return color, nil
	}
	if g.players.White.ID == "" {
		g.players.White = ClientPlayer{ID: playerID, Color: PlayerColorWhite}
		slog.Info("player seated", "game", g.ID, "player", playerID, "color", PlayerColorWhite)
		return PlayerColorWhite, nil
	}
	if g.players.Black.ID == "" {
		g.players.Black = ClientPlayer{ID: playerID, Color: PlayerColorBlack}
		slog.Info("player seated", "game", g.ID, "player", playerID, "color", PlayerColorBlack)
		return PlayerColorBlack, nil
	}
	return "", fmt.Errorf("game %s: %w", g.ID, ErrGameFull)
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.seatOf(playerID)
	return ok
}

func (g *Game) seatOf(playerID string) (PlayerColor, bool) {
	switch {
	case playerID == "":
		return "", false
	case g.players.White.ID == playerID:
		return PlayerColorWhite, true
	case g.players.Black.ID == playerID:
		return PlayerColorBlack, true
	}
	return "", false
}

// MakeMove plays from-to for playerID if it is their turn and the move is
// among the position's legal moves.
func (g *Game) MakeMove(playerID string, from, to chess.Square) error {
	g.mu.Lock()
	color, ok := g.seatOf(playerID)
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("player %s: %w", playerID, ErrNotSeated)
	}
	if color.engineColor() != g.position.SideToMove() {
		g.mu.Unlock()
		return fmt.Errorf("%s to move: %w", colorOf(g.position.SideToMove()), ErrNotYourTurn)
	}

	move, ok := g.position.FindLegal(from, to)
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("%s%s: %w", from, to, ErrIllegalMove)
	}
	if err := g.position.ApplyMove(move); err != nil {
		g.mu.Unlock()
		return err
	}
	g.clockOf(color.engineColor()).Stop()
	g.clockOf(g.position.SideToMove()).Start()
	slog.Info("move applied", "game", g.ID, "player", playerID, "move", move.String(), "ply", g.position.Ply())
	g.mu.Unlock()

	go g.broadcastState()
	return nil
}

// Undo takes back the last move. With no history it does nothing.
func (g *Game) Undo(playerID string) error {
	g.mu.Lock()
	if _, ok := g.seatOf(playerID); !ok {
		g.mu.Unlock()
		return fmt.Errorf("player %s: %w", playerID, ErrNotSeated)
	}
	if g.position.Ply() == 0 {
		g.mu.Unlock()
		return nil
	}
	last, _ := g.position.LastMove()
	g.clockOf(g.position.SideToMove()).Stop()
	g.position.UndoLastMove()
	if g.position.Ply() > 0 {
		g.clockOf(g.position.SideToMove()).Start()
	}
	slog.Info("move taken back", "game", g.ID, "player", playerID, "move", last.String(), "ply", g.position.Ply())
	g.mu.Unlock()

	go g.broadcastState()
	return nil
}

func (g *Game) clockOf(c chess.Color) *Clock {
	if c == chess.White {
		return g.whiteClock
	}
	return g.blackClock
}

// GetState snapshots the session. Legal moves are recomputed every call.
func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.stateLocked()
}

func (g *Game) stateLocked() GameState {
	pos := g.position
	history := pos.History()
	plies := make([]Ply, len(history))
	for i, m := range history {
		plies[i] = newPly(m)
	}
	legal := pos.LegalMoves()
	notations := make([]string, len(legal))
	for i, m := range legal {
		notations[i] = chess.MoveToNotation(m)
	}

	state := GameState{
		ID:          g.ID,
		Board:       newBoardState(pos),
		ToMove:      colorOf(pos.SideToMove()),
		MoveHistory: plies,
		LegalMoves:  notations,
		IsCheck:     pos.InCheck(),
		FEN:         pos.FEN(),
		Players:     g.players,
	}
	if last, ok := pos.LastMove(); ok {
		state.LastMove = &SimpleMove{From: last.From(), To: last.To()}
	}
	state.Players.White.TimeLeft = g.whiteClock.deciseconds()
	state.Players.Black.TimeLeft = g.blackClock.deciseconds()
	return state
}

// RegisterConnection adds an observer. Seated players and spectators may
// both watch; a second connection for the same id is closed and rejected
// with ErrDuplicateConnection.
func (g *Game) RegisterConnection(playerID string, conn Conn) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return fmt.Errorf("player %s: %w", playerID, ErrDuplicateConnection)
	}

	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()
	slog.Debug("connection registered", "game", g.ID, "player", playerID, "seated", g.IsPlayerInGame(playerID))

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if _, exists := g.connections.connections[playerID]; exists {
		delete(g.connections.connections, playerID)
		slog.Debug("connection unregistered", "game", g.ID, "player", playerID)
	}
}

// broadcastState pushes a fresh snapshot to every observer. The snapshot is
// taken under the connections mutex so observers never see states out of
// order; failed connections are dropped.
func (g *Game) broadcastState() {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	msg, err := ws.NewMessage(ws.MessageTypeGameState, g.GetState())
	if err != nil {
		slog.Error("failed to marshal state", "game", g.ID, "err", err)
		return
	}
	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			slog.Warn("failed to send state", "game", g.ID, "player", playerID, "err", err)
			delete(g.connections.connections, playerID)
		}
	}
}

// SendError writes an error message to one observer.
func (g *Game) SendError(playerID string, cause error) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	if conn, ok := g.connections.connections[playerID]; ok {
		if err := conn.WriteJSON(ws.ErrorMessage(cause)); err != nil {
			slog.Warn("failed to send error", "game", g.ID, "player", playerID, "err", err)
		}
	}
}
