package model

import (
	"encoding/json"
	"fmt"
)

// savedGame is the persisted representation. It round-trips every field
// of the game state, including the full position history: a save
// without history would silently break repetition claims after reload.
type savedGame struct {
	Board           [8][8]*Piece   `json:"board"`
	ToMove          Color          `json:"toMove"`
	CastlingRights  CastlingRights `json:"castlingRights"`
	EnPassantTarget *Position      `json:"enPassantTarget"`
	HalfmoveClock   int            `json:"halfmoveClock"`
	FullmoveNumber  int            `json:"fullmoveNumber"`
	History         []string       `json:"history"`
	Claimed         *Status        `json:"claimed,omitempty"`
}

// Save serializes the game state. A failed save leaves the in-memory
// state valid and unaffected.
func Save(gs *GameState) ([]byte, error) {
	saved := savedGame{
		Board:           gs.board.Grid,
		ToMove:          gs.toMove,
		CastlingRights:  gs.castlingRights,
		EnPassantTarget: gs.EnPassantTarget(),
		HalfmoveClock:   gs.halfmoveClock,
		FullmoveNumber:  gs.fullmoveNumber,
		History:         append([]string{}, gs.history...),
		Claimed:         gs.claimed,
	}
	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return nil, &SerializationError{Op: "save", Err: err}
	}
	return data, nil
}

// Load restores a game state saved by Save, rebuilding the derived
// occurrence counts and king caches and validating the invariants the
// rest of the engine relies on.
func Load(data []byte) (*GameState, error) {
	var saved savedGame
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, &SerializationError{Op: "load", Err: err}
	}

	if saved.ToMove != White && saved.ToMove != Black {
		return nil, &SerializationError{Op: "load", Err: fmt.Errorf("invalid side to move %q", saved.ToMove)}
	}
	if saved.HalfmoveClock < 0 || saved.FullmoveNumber < 1 {
		return nil, &SerializationError{Op: "load", Err: fmt.Errorf("invalid move counters %d/%d", saved.HalfmoveClock, saved.FullmoveNumber)}
	}
	if saved.EnPassantTarget != nil && !boundaryCheck(*saved.EnPassantTarget) {
		return nil, &SerializationError{Op: "load", Err: fmt.Errorf("en passant target off the board")}
	}
	if len(saved.History) == 0 {
		return nil, &SerializationError{Op: "load", Err: fmt.Errorf("missing position history")}
	}

	board := &Board{Grid: saved.Board}
	kings := map[Color]int{}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			piece := board.Grid[y][x]
			if piece == nil {
				continue
			}
			if piece.Color != White && piece.Color != Black {
				return nil, &SerializationError{Op: "load", Err: fmt.Errorf("invalid piece color %q", piece.Color)}
			}
			switch piece.Type {
			case King:
				kings[piece.Color]++
				board.setKingPosition(piece.Color, Position{X: x, Y: y})
			case Queen, Rook, Bishop, Knight, Pawn:
			default:
				return nil, &SerializationError{Op: "load", Err: fmt.Errorf("invalid piece type %q", piece.Type)}
			}
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return nil, &SerializationError{Op: "load", Err: fmt.Errorf("board must hold exactly one king per color")}
	}

	gs := &GameState{
		board:           board,
		toMove:          saved.ToMove,
		castlingRights:  saved.CastlingRights,
		enPassantTarget: saved.EnPassantTarget,
		halfmoveClock:   saved.HalfmoveClock,
		fullmoveNumber:  saved.FullmoveNumber,
		history:         saved.History,
		positionCounts:  make(map[string]int),
		claimed:         saved.Claimed,
	}
	for _, key := range saved.History {
		gs.positionCounts[key]++
	}
	// The history always includes the current position; a save whose
	// tail disagrees with its own fields was corrupted.
	if current := gs.positionKey(); saved.History[len(saved.History)-1] != current {
		return nil, &SerializationError{Op: "load", Err: fmt.Errorf("history tail %q does not match position %q", saved.History[len(saved.History)-1], current)}
	}
	return gs, nil
}
