package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/chesscore/chesscore/internal/model"
)

// ErrGameNotFound is returned for any operation naming an unknown game.
var ErrGameNotFound = errors.New("game not found")

// GameManager is the registry of live games and the gateway to the
// save directory.
type GameManager struct {
	games       map[string]*model.Game
	mu          sync.RWMutex
	dataDir     string
	clockBudget time.Duration
}

func NewGameManager(dataDir string, clockBudget time.Duration) *GameManager {
	return &GameManager{
		games:       make(map[string]*model.Game),
		dataDir:     dataDir,
		clockBudget: clockBudget,
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}
	gm.games[gameID] = model.NewGame(gameID, gm.clockBudget)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID, playerID, name string) (model.Color, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID, name)
}

func (gm *GameManager) GetGameState(gameID string) (model.ClientState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.ClientState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID, playerID string, req model.MoveRequest) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMove(playerID, req)
}

func (gm *GameManager) LegalMoves(gameID string) ([]model.Move, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMoves(), nil
}

func (gm *GameManager) Status(gameID string) (model.Status, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.Status(), nil
}

func (gm *GameManager) ClaimDraw(gameID, playerID string, method model.Status) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.ClaimDraw(playerID, method)
}

func (gm *GameManager) Resign(gameID, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.Resign(playerID)
}

// SaveGame persists the engine state of a game to the save directory,
// one file per game ID. The live game is unaffected, even on failure.
func (gm *GameManager) SaveGame(gameID string) (string, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	data, err := game.Save()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(gm.dataDir, 0o755); err != nil {
		return "", &model.SerializationError{Op: "save", Err: err}
	}
	path := gm.savePath(gameID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &model.SerializationError{Op: "save", Err: err}
	}
	return path, nil
}

// LoadGame restores a previously saved game under its old ID. The
// engine state round-trips completely, so repetition claims keep
// working after the reload.
func (gm *GameManager) LoadGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return fmt.Errorf("game %s is already live", gameID)
	}
	data, err := os.ReadFile(gm.savePath(gameID))
	if err != nil {
		return &model.SerializationError{Op: "load", Err: err}
	}
	state, err := model.Load(data)
	if err != nil {
		return err
	}
	gm.games[gameID] = model.NewGameFromState(gameID, state, gm.clockBudget)
	return nil
}

func (gm *GameManager) savePath(gameID string) string {
	return filepath.Join(gm.dataDir, gameID+".json")
}

func (gm *GameManager) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}
