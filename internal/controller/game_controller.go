package controller

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/chesscore/chesscore/internal/model"
	"github.com/chesscore/chesscore/internal/render"
	"github.com/chesscore/chesscore/internal/service"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// errorStatus maps the error taxonomy onto HTTP status codes. Every
// core error is recoverable; the client decides whether to retry.
func errorStatus(err error) int {
	var illegalMove *model.IllegalMoveError
	var parseErr *model.ParseError
	var serErr *model.SerializationError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrGameOver):
		return fiber.StatusConflict
	case errors.As(err, &illegalMove):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &parseErr):
		return fiber.StatusBadRequest
	case errors.As(err, &serErr):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var body struct {
		Name string `json:"name"`
	}
	// The body is optional; an absent name gets a generated one.
	_ = c.BodyParser(&body)

	color, err := gc.gameService.JoinGame(gameID, playerID, body.Name)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var req model.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move payload",
		})
	}
	if err := gc.gameService.HandleMove(gameID, playerID, req); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Move applied",
	})
}

func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"moves": moves,
	})
}

func (gc *GameController) GetStatus(c *fiber.Ctx) error {
	status, err := gc.gameService.Status(c.Params("gameId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"status": status,
	})
}

func (gc *GameController) ClaimDraw(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var body struct {
		Method string `json:"method"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid draw payload",
		})
	}
	if err := gc.gameService.ClaimDraw(gameID, playerID, model.Status(body.Method)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Draw claimed",
	})
}

func (gc *GameController) Resign(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.Resign(gameID, playerID); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Resigned",
	})
}

func (gc *GameController) SaveGame(c *fiber.Ctx) error {
	path, err := gc.gameService.SaveGame(c.Params("gameId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game saved",
		"path":    path,
	})
}

func (gc *GameController) LoadGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if err := gc.gameService.LoadGame(gameID); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game loaded",
		"game_id": gameID,
	})
}

func (gc *GameController) GetBoardSVG(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorJSON(c, err)
	}
	var buf bytes.Buffer
	render.BoardSVG(&buf, gameState.Board)
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(buf.Bytes())
}
