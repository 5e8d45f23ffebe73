package controller

import (
	"log/slog"

	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type moveRequest struct {
	Move string `json:"move"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return errorResponse(c, err)
	}
	slog.Info("game created", "game", gameID, "player", playerID(c))
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	player := playerID(c)

	color, err := gc.gameService.JoinGame(gameID, player)
	if err != nil {
		slog.Warn("join rejected", "game", gameID, "player", player, "err", err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

// MakeMove plays {"move":"e2e4"} and answers with the resulting state.
func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	player := playerID(c)

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := gc.gameService.HandleMoveNotation(gameID, player, req.Move); err != nil {
		slog.Debug("move rejected", "game", gameID, "player", player, "move", req.Move, "err", err)
		return errorResponse(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) Undo(c *fiber.Ctx) error {
	if err := gc.gameService.HandleUndo(c.Params("gameId"), playerID(c)); err != nil {
		return errorResponse(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	player := playerID(c)
	if err := gc.gameService.JoinMatchmaking(player); err != nil {
		return errorResponse(c, err)
	}
	slog.Info("player queued", "player", player)

	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

func (gc *GameController) MatchmakingStatus(c *fiber.Ctx) error {
	player := playerID(c)
	if match, ok := gc.gameService.MatchStatus(player); ok {
		return c.JSON(fiber.Map{
			"status":  "matched",
			"game_id": match.GameID,
			"color":   match.Color,
		})
	}
	if gc.gameService.IsQueued(player) {
		return c.JSON(fiber.Map{
			"status": "queued",
		})
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "player is not in matchmaking",
	})
}

func playerID(c *fiber.Ctx) string {
	id, _ := c.Locals("playerID").(string)
	return id
}
