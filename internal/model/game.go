package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/chesscore/chesscore/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// GameConnections holds the websocket observers of one game.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game wraps one GameState with everything a served game needs around
// it: an ID, the two seats, per-side clocks, the recorded move history
// and its observers. The engine state is only ever touched while
// holding the game lock, so each command mutates the shared state as a
// single critical section.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       *GameState
	players     Players
	moveHistory []MovePair
	captured    CapturedPieces
	lastMove    *Move
	resigned    *Color
	connections *GameConnections
	whiteClock  *Clock
	blackClock  *Clock
}

type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

// ClientState is the snapshot sent to clients over REST and websocket.
type ClientState struct {
	Board           *Board         `json:"board"`
	ToMove          Color          `json:"toMove"`
	Status          Status         `json:"status"`
	IsCheck         bool           `json:"isCheck"`
	MoveHistory     []MovePair     `json:"moveHistory"`
	CapturedPieces  CapturedPieces `json:"capturedPieces"`
	CastlingRights  CastlingRights `json:"castlingRights"`
	EnPassantTarget *Position      `json:"enPassantTarget"`
	HalfmoveClock   int            `json:"halfmoveClock"`
	FullmoveNumber  int            `json:"fullmoveNumber"`
	EligibleDraws   []Status       `json:"eligibleDraws"`
	LastMove        *Move          `json:"lastMove"`
	Resigned        *Color         `json:"resigned"`
	Players         Players        `json:"players"`
}

func NewGame(id string, clockBudget time.Duration) *Game {
	return &Game{
		ID:          id,
		state:       NewGameState(),
		moveHistory: make([]MovePair, 0),
		captured:    CapturedPieces{White: make([]Piece, 0), Black: make([]Piece, 0)},
		connections: NewGameConnections(),
		whiteClock:  NewClock(clockBudget),
		blackClock:  NewClock(clockBudget),
	}
}

// NewGameFromState wraps a restored engine state, e.g. after loading a
// save file. Seats start open and the recorded ply history starts
// empty; the engine's own position history survives the round trip.
func NewGameFromState(id string, state *GameState, clockBudget time.Duration) *Game {
	game := NewGame(id, clockBudget)
	game.state = state
	return game
}

func (g *Game) AddPlayer(playerID, name string) (Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.players.White.ID == "" {
		g.players.White = ClientPlayer{ID: playerID, Name: name, Color: White, TimeLeft: g.clientTime(g.whiteClock)}
		return White, nil
	}
	if g.players.Black.ID == "" {
		g.players.Black = ClientPlayer{ID: playerID, Name: name, Color: Black, TimeLeft: g.clientTime(g.blackClock)}
		return Black, nil
	}
	return "", errors.New("game is full")
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	if g.players.White.ID != "" && g.players.White.ID == playerID {
		return true
	}
	if g.players.Black.ID != "" && g.players.Black.ID == playerID {
		return true
	}
	return false
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.players.White.ID == "" || g.players.Black.ID == ""
}

// MakeMove validates and applies one move on behalf of playerID. On any
// failure the game state is unchanged and the game continues.
func (g *Game) MakeMove(playerID string, req MoveRequest) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.resigned != nil {
		return ErrGameOver
	}
	if err := g.checkTurn(playerID); err != nil {
		return err
	}
	proposal, err := req.ToMove()
	if err != nil {
		return err
	}

	mover := g.state.ToMove()
	// Find the generated move the proposal names, so the recorded ply
	// carries the castle and en passant flags.
	move := proposal
	for _, legal := range g.state.LegalMoves() {
		if proposal.matches(legal) {
			move = legal
			break
		}
	}
	var piece Piece
	if p := g.state.Board().PieceAt(move.From); p != nil {
		piece = *p
	}
	capturedPiece := g.capturedBy(move)

	if err := g.state.ApplyMove(move); err != nil {
		return err
	}

	if mover == White {
		g.whiteClock.Stop()
		g.blackClock.Start()
	} else {
		g.blackClock.Stop()
		g.whiteClock.Start()
	}
	g.players.White.TimeLeft = g.clientTime(g.whiteClock)
	g.players.Black.TimeLeft = g.clientTime(g.blackClock)

	if capturedPiece != nil {
		switch mover {
		case White:
			g.captured.White = append(g.captured.White, *capturedPiece)
		case Black:
			g.captured.Black = append(g.captured.Black, *capturedPiece)
		}
	}

	g.recordPly(mover, Ply{
		Piece:          piece,
		From:           move.From,
		To:             move.To,
		CapturedPiece:  capturedPiece,
		CastleRookMove: castleRookMove(move),
		Promotion:      move.Promotion,
		Notation:       notation(move, piece, capturedPiece != nil),
	})
	g.lastMove = &move

	go g.broadcastState()
	return nil
}

func (g *Game) checkTurn(playerID string) error {
	seat := g.players.White
	if g.state.ToMove() == Black {
		seat = g.players.Black
	}
	// An open seat accepts moves from anyone, which is how a local
	// two-player session drives both sides.
	if seat.ID != "" && seat.ID != playerID {
		return errors.New("not your turn")
	}
	return nil
}

func (g *Game) capturedBy(move Move) *Piece {
	if move.IsEnPassant {
		if p := g.state.Board().PieceAt(Position{X: move.To.X, Y: move.From.Y}); p != nil {
			captured := *p
			return &captured
		}
		return nil
	}
	if p := g.state.Board().PieceAt(move.To); p != nil {
		captured := *p
		return &captured
	}
	return nil
}

func (g *Game) recordPly(mover Color, ply Ply) {
	if mover == White {
		g.moveHistory = append(g.moveHistory, MovePair{WhitePly: ply})
		return
	}
	if n := len(g.moveHistory); n > 0 && g.moveHistory[n-1].BlackPly == nil {
		g.moveHistory[n-1].BlackPly = &ply
		return
	}
	// Black moved first, which happens when a game is restored from a
	// save with black to move.
	g.moveHistory = append(g.moveHistory, MovePair{BlackPly: &ply})
}

func castleRookMove(move Move) *CastleRookMove {
	if !move.IsCastle {
		return nil
	}
	switch move.To.X {
	case 6:
		return &CastleRookMove{From: Position{X: 7, Y: move.From.Y}, To: Position{X: 5, Y: move.From.Y}}
	case 2:
		return &CastleRookMove{From: Position{X: 0, Y: move.From.Y}, To: Position{X: 3, Y: move.From.Y}}
	}
	return nil
}

func notation(move Move, piece Piece, capture bool) string {
	if move.IsCastle {
		if move.To.X == 6 {
			return "O-O"
		}
		return "O-O-O"
	}
	pawnFile := ""
	if piece.Type == Pawn && move.From.X != move.To.X {
		pawnFile = move.From.fileNotation()
	}
	captureMark := ""
	if capture {
		captureMark = "x"
	}
	promotion := ""
	if move.Promotion != "" {
		promotion = "=" + move.Promotion.getPieceNotation()
	}
	return fmt.Sprintf("%s%s%s%s%s", piece.Type.getPieceNotation(), pawnFile, captureMark, move.To.Notation(), promotion)
}

// ClaimDraw ends the game by one of the advisory draw conditions, if it
// currently holds.
func (g *Game) ClaimDraw(playerID string, method Status) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.resigned != nil {
		return ErrGameOver
	}
	if err := g.state.ClaimDraw(method); err != nil {
		return err
	}
	go g.broadcastState()
	return nil
}

func (g *Game) Resign(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.resigned != nil || g.state.terminal() {
		return ErrGameOver
	}
	var color Color
	switch playerID {
	case g.players.White.ID:
		color = White
	case g.players.Black.ID:
		color = Black
	default:
		// In a local session whoever holds the turn resigns.
		color = g.state.ToMove()
	}
	g.resigned = &color
	go g.broadcastState()
	return nil
}

// EligibleDraws lists the draw conditions currently claimable.
func (g *Game) EligibleDraws() []Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.EligibleDraws()
}

// LegalMoves returns the legal move list for the current position.
func (g *Game) LegalMoves() []Move {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.LegalMoves()
}

// Status reports the engine status of the game.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.Status()
}

// GetState snapshots the game for clients. The board is cloned so the
// snapshot stays stable while the game moves on.
func (g *Game) GetState() ClientState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.clientState()
}

func (g *Game) clientState() ClientState {
	g.players.White.TimeLeft = g.clientTime(g.whiteClock)
	g.players.Black.TimeLeft = g.clientTime(g.blackClock)
	return ClientState{
		Board:           g.state.Board().Clone(),
		ToMove:          g.state.ToMove(),
		Status:          g.state.Status(),
		IsCheck:         g.state.InCheck(),
		MoveHistory:     append([]MovePair{}, g.moveHistory...),
		CapturedPieces:  g.captured,
		CastlingRights:  g.state.CastlingRights(),
		EnPassantTarget: g.state.EnPassantTarget(),
		HalfmoveClock:   g.state.HalfmoveClock(),
		FullmoveNumber:  g.state.FullmoveNumber(),
		EligibleDraws:   g.state.EligibleDraws(),
		LastMove:        g.lastMove,
		Resigned:        g.resigned,
		Players:         g.players,
	}
}

// Save serializes the wrapped engine state.
func (g *Game) Save() ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Save(g.state)
}

func (g *Game) clientTime(clock *Clock) int {
	return int(clock.GetTimeLeft().Milliseconds() / 100)
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	isAuthorized := g.isPlayerInGame(playerID) || g.canSpectate()
	g.mu.Unlock()

	if !isAuthorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the healthy connection and reject the new one.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	delete(g.connections.connections, playerID)
}

func (g *Game) broadcastState() {
	state := g.GetState()
	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("marshal state for game %s: %v", g.ID, err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Printf("send state to player %s: %v", playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}
