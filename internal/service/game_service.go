package service

import (
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/chesscore/chesscore/internal/model"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

// JoinGame seats the player; a missing display name gets a generated
// one.
func (gs *GameService) JoinGame(gameID, playerID, name string) (model.Color, error) {
	if name == "" {
		name = petname.Generate(2, " ")
	}
	return gs.gameManager.AddPlayerToGame(gameID, playerID, name)
}

func (gs *GameService) GetGameState(gameID string) (model.ClientState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) GetGame(gameID string) (*model.Game, error) {
	return gs.gameManager.GetGame(gameID)
}

func (gs *GameService) HandleMove(gameID, playerID string, req model.MoveRequest) error {
	return gs.gameManager.MakeMove(gameID, playerID, req)
}

func (gs *GameService) LegalMoves(gameID string) ([]model.Move, error) {
	return gs.gameManager.LegalMoves(gameID)
}

func (gs *GameService) Status(gameID string) (model.Status, error) {
	return gs.gameManager.Status(gameID)
}

func (gs *GameService) ClaimDraw(gameID, playerID string, method model.Status) error {
	return gs.gameManager.ClaimDraw(gameID, playerID, method)
}

func (gs *GameService) Resign(gameID, playerID string) error {
	return gs.gameManager.Resign(gameID, playerID)
}

func (gs *GameService) SaveGame(gameID string) (string, error) {
	return gs.gameManager.SaveGame(gameID)
}

func (gs *GameService) LoadGame(gameID string) error {
	return gs.gameManager.LoadGame(gameID)
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}
