package model

import (
	"errors"
	"testing"
)

func TestFoolsMate(t *testing.T) {
	gs := NewGameState()
	mustApply(t, gs, "f2", "f3")
	mustApply(t, gs, "e7", "e5")
	mustApply(t, gs, "g2", "g4")
	mustApply(t, gs, "d8", "h4")

	if got := gs.Status(); got != StatusCheckmate {
		t.Fatalf("status after fool's mate: %v, want %v", got, StatusCheckmate)
	}
	if got := len(gs.LegalMoves()); got != 0 {
		t.Errorf("checkmated side has %d legal moves, want 0", got)
	}
	if err := gs.ApplyMove(Move{From: mustSquare(t, "e1"), To: mustSquare(t, "f2")}); !errors.Is(err, ErrGameOver) {
		t.Errorf("move after checkmate: got %v, want ErrGameOver", err)
	}
}

func TestStalemate(t *testing.T) {
	gs := testState(t, map[string]Piece{
		"a8": {Type: King, Color: Black},
		"b6": {Type: Queen, Color: White},
		"h1": {Type: King, Color: White},
	}, Black)

	if gs.InCheck() {
		t.Fatal("stalemated king must not be in check")
	}
	if got := gs.Status(); got != StatusStalemate {
		t.Fatalf("status: %v, want %v", got, StatusStalemate)
	}
	if err := gs.ApplyMove(Move{From: mustSquare(t, "a8"), To: mustSquare(t, "a7")}); !errors.Is(err, ErrGameOver) {
		t.Errorf("move after stalemate: got %v, want ErrGameOver", err)
	}
}

func TestCheckIsReportedButNotTerminal(t *testing.T) {
	gs := NewGameState()
	mustApply(t, gs, "e2", "e4")
	mustApply(t, gs, "e7", "e5")
	mustApply(t, gs, "d1", "h5")
	mustApply(t, gs, "g7", "g6")
	mustApply(t, gs, "h5", "e5")

	if got := gs.Status(); got != StatusCheck {
		t.Fatalf("status: %v, want %v", got, StatusCheck)
	}
	if !gs.InCheck() {
		t.Error("black should be in check from the queen on e5")
	}
	// Blocking the check is still possible, so the game continues.
	mustApply(t, gs, "f8", "e7")
	if got := gs.Status(); got == StatusCheckmate || got == StatusStalemate {
		t.Errorf("game should continue after the block, status %v", got)
	}
}

func TestIllegalMoveLeavesStateUntouched(t *testing.T) {
	gs := NewGameState()
	before := gs.positionKey()

	tests := []struct {
		name string
		move Move
	}{
		{"pawn moving three squares", Move{From: mustSquare(t, "e2"), To: mustSquare(t, "e5")}},
		{"moving from an empty square", Move{From: mustSquare(t, "e4"), To: mustSquare(t, "e5")}},
		{"moving the opponent's piece", Move{From: mustSquare(t, "e7"), To: mustSquare(t, "e5")}},
		{"capturing an own piece", Move{From: mustSquare(t, "a1"), To: mustSquare(t, "a2")}},
		{"knight moving like a rook", Move{From: mustSquare(t, "b1"), To: mustSquare(t, "b4")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gs.ApplyMove(tt.move)
			var illegal *IllegalMoveError
			if !errors.As(err, &illegal) {
				t.Fatalf("got %v, want IllegalMoveError", err)
			}
			if gs.positionKey() != before {
				t.Error("rejected move changed the position")
			}
			if gs.ToMove() != White {
				t.Error("rejected move changed the side to move")
			}
			if len(gs.history) != 1 {
				t.Errorf("rejected move grew the history to %d entries", len(gs.history))
			}
		})
	}
}

func TestMoveIntoCheckRejected(t *testing.T) {
	gs := testState(t, map[string]Piece{
		"e1": {Type: King, Color: White},
		"a2": {Type: Rook, Color: Black},
		"e8": {Type: King, Color: Black},
	}, White)

	err := gs.ApplyMove(Move{From: mustSquare(t, "e1"), To: mustSquare(t, "e2")})
	var illegal *IllegalMoveError
	if !errors.As(err, &illegal) {
		t.Fatalf("king stepping onto an attacked rank: got %v, want IllegalMoveError", err)
	}
}

func TestCastlingRightsClearedPermanently(t *testing.T) {
	gs := NewGameState()
	mustApply(t, gs, "e2", "e4")
	mustApply(t, gs, "a7", "a6")
	mustApply(t, gs, "e1", "e2")
	mustApply(t, gs, "a6", "a5")
	mustApply(t, gs, "e2", "e1")
	mustApply(t, gs, "a5", "a4")

	rights := gs.CastlingRights()
	if rights.WhiteKingside || rights.WhiteQueenside {
		t.Error("white rights should stay cleared after the king returns home")
	}
	if !rights.BlackKingside || !rights.BlackQueenside {
		t.Error("black rights should be untouched")
	}
}

func TestRookMoveClearsOneSide(t *testing.T) {
	gs := NewGameState()
	mustApply(t, gs, "h2", "h4")
	mustApply(t, gs, "a7", "a6")
	mustApply(t, gs, "h1", "h3")

	rights := gs.CastlingRights()
	if rights.WhiteKingside {
		t.Error("kingside right should be cleared by the rook leaving h1")
	}
	if !rights.WhiteQueenside {
		t.Error("queenside right should survive a kingside rook move")
	}
}

func TestCapturingHomeRookClearsOpponentRight(t *testing.T) {
	gs := testState(t, map[string]Piece{
		"e1": {Type: King, Color: White},
		"h1": {Type: Rook, Color: White},
		"e8": {Type: King, Color: Black},
		"h8": {Type: Rook, Color: Black},
	}, White)
	gs.castlingRights = newCastlingRights()

	mustApply(t, gs, "h1", "h8")

	rights := gs.CastlingRights()
	if rights.BlackKingside {
		t.Error("black kingside right should be cleared when its rook is captured on h8")
	}
	if rights.WhiteKingside {
		t.Error("white kingside right should be cleared by the rook leaving h1")
	}
	if !rights.BlackQueenside || !rights.WhiteQueenside {
		t.Error("queenside rights should be untouched")
	}
}

func TestHalfmoveAndFullmoveCounters(t *testing.T) {
	gs := NewGameState()
	if gs.FullmoveNumber() != 1 {
		t.Fatalf("initial fullmove number %d, want 1", gs.FullmoveNumber())
	}

	mustApply(t, gs, "g1", "f3")
	if gs.HalfmoveClock() != 1 {
		t.Errorf("halfmove clock after a knight move: %d, want 1", gs.HalfmoveClock())
	}
	mustApply(t, gs, "g8", "f6")
	if gs.FullmoveNumber() != 2 {
		t.Errorf("fullmove number after black's reply: %d, want 2", gs.FullmoveNumber())
	}
	mustApply(t, gs, "e2", "e4")
	if gs.HalfmoveClock() != 0 {
		t.Errorf("halfmove clock after a pawn move: %d, want 0", gs.HalfmoveClock())
	}
	mustApply(t, gs, "f6", "e4")
	if gs.HalfmoveClock() != 0 {
		t.Errorf("halfmove clock after a capture: %d, want 0", gs.HalfmoveClock())
	}
}

// Playing out a fixed line, the side that just moved may never be left
// in check, and every applied move must have come from the legal list.
func TestAppliedMovesNeverLeaveMoverInCheck(t *testing.T) {
	gs := NewGameState()
	for ply := 0; ply < 60; ply++ {
		legal := gs.LegalMoves()
		if len(legal) == 0 {
			break
		}
		mover := gs.ToMove()
		move := legal[ply%len(legal)]
		if err := gs.ApplyMove(move); err != nil {
			t.Fatalf("ply %d: legal move %v rejected: %v", ply, move, err)
		}
		if isKingInCheck(gs.Board(), mover) {
			t.Fatalf("ply %d: move %v left %s in check", ply, move, mover)
		}
	}
}
