package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection registers the socket as an observer of the game and
// serves its messages until it closes.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	playerID, _ := c.Locals("wsPlayerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		slog.Warn("failed to register connection", "game", gameID, "player", playerID, "err", err)
		if !errors.Is(err, model.ErrDuplicateConnection) {
			sendError(c, err)
			c.Close()
		}
		return
	}
	slog.Info("websocket connected", "game", gameID, "player", playerID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			slog.Debug("websocket read ended", "game", gameID, "player", playerID, "err", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			slog.Debug("unparseable message", "game", gameID, "player", playerID, "err", err)
			wsc.gameService.SendError(gameID, playerID, fmt.Errorf("invalid message: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			slog.Debug("message rejected", "game", gameID, "player", playerID, "type", msg.Type, "err", err)
			wsc.gameService.SendError(gameID, playerID, err)
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
	slog.Info("websocket disconnected", "game", gameID, "player", playerID)
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.WSMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("invalid move payload: %w", err)
		}
		return wsc.gameService.HandleMove(gameID, playerID, move)
	case ws.MessageTypeUndo:
		return wsc.gameService.HandleUndo(gameID, playerID)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// sendError writes an error frame to a connection the game does not own.
func sendError(c model.Conn, cause error) {
	if err := c.WriteJSON(ws.ErrorMessage(cause)); err != nil {
		slog.Warn("failed to send error", "err", err)
	}
}
