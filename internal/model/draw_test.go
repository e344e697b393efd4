package model

import (
	"errors"
	"testing"
)

func TestThreefoldRepetition(t *testing.T) {
	gs := NewGameState()
	shuffle := [][2]string{
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
	}
	// Two knight shuttles bring the starting position back twice.
	for round := 0; round < 2; round++ {
		if got := len(gs.EligibleDraws()); got != 0 {
			t.Fatalf("round %d: %d eligible draws before the third occurrence", round, got)
		}
		for _, move := range shuffle {
			mustApply(t, gs, move[0], move[1])
		}
	}

	if got := gs.RepetitionCount(); got != 3 {
		t.Fatalf("repetition count: %d, want 3", got)
	}
	if got := gs.Status(); got != StatusDrawByRepetition {
		t.Fatalf("status: %v, want %v", got, StatusDrawByRepetition)
	}

	// The condition is claimable, not auto-terminating.
	mustApply(t, gs, "e2", "e4")
	if got := gs.Status(); got == StatusDrawByRepetition {
		t.Fatal("advancing a pawn should leave the repeated position behind")
	}
}

func TestClaimDrawEndsTheGame(t *testing.T) {
	gs := NewGameState()
	shuffle := [][2]string{
		{"g1", "f3"}, {"g8", "f6"},
		{"f3", "g1"}, {"f6", "g8"},
	}
	for round := 0; round < 2; round++ {
		for _, move := range shuffle {
			mustApply(t, gs, move[0], move[1])
		}
	}

	if err := gs.ClaimDraw(StatusDrawByFiftyMove); err == nil {
		t.Error("claiming an ineligible draw condition should fail")
	}
	if err := gs.ClaimDraw(StatusDrawByRepetition); err != nil {
		t.Fatalf("claiming the repetition draw: %v", err)
	}
	if !gs.Claimed() {
		t.Error("claim should be recorded")
	}
	if got := gs.Status(); got != StatusDrawByRepetition {
		t.Errorf("status after claim: %v, want %v", got, StatusDrawByRepetition)
	}
	if err := gs.ApplyMove(Move{From: mustSquare(t, "e2"), To: mustSquare(t, "e4")}); !errors.Is(err, ErrGameOver) {
		t.Errorf("move after claim: got %v, want ErrGameOver", err)
	}
	if err := gs.ClaimDraw(StatusDrawByRepetition); !errors.Is(err, ErrGameOver) {
		t.Errorf("second claim: got %v, want ErrGameOver", err)
	}
}

func TestFiftyMoveRule(t *testing.T) {
	gs := testState(t, map[string]Piece{
		"e1": {Type: King, Color: White},
		"a1": {Type: Rook, Color: White},
		"e8": {Type: King, Color: Black},
		"a8": {Type: Rook, Color: Black},
	}, White)
	gs.halfmoveClock = halfmoveClockForFiftyMoveRule - 1

	if got := len(gs.EligibleDraws()); got != 0 {
		t.Fatalf("one ply short of the rule: %d eligible draws", got)
	}

	mustApply(t, gs, "a1", "a2")
	if got := gs.Status(); got != StatusDrawByFiftyMove {
		t.Fatalf("status at a full hundred halfmoves: %v, want %v", got, StatusDrawByFiftyMove)
	}
	if err := gs.ClaimDraw(StatusDrawByFiftyMove); err != nil {
		t.Errorf("claiming the fifty-move draw: %v", err)
	}
}

func TestFiftyMoveClockResets(t *testing.T) {
	gs := testState(t, map[string]Piece{
		"e1": {Type: King, Color: White},
		"a2": {Type: Pawn, Color: White},
		"e8": {Type: King, Color: Black},
		"a8": {Type: Rook, Color: Black},
	}, White)
	gs.halfmoveClock = halfmoveClockForFiftyMoveRule - 1

	mustApply(t, gs, "a2", "a3")
	if got := gs.HalfmoveClock(); got != 0 {
		t.Errorf("pawn move should reset the clock, got %d", got)
	}
	if got := len(gs.EligibleDraws()); got != 0 {
		t.Errorf("no draw should be claimable after the reset, got %d", got)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]Piece
		want   bool
	}{
		{
			name: "king versus king",
			pieces: map[string]Piece{
				"e1": {Type: King, Color: White},
				"e8": {Type: King, Color: Black},
			},
			want: true,
		},
		{
			name: "king and bishop versus king",
			pieces: map[string]Piece{
				"e1": {Type: King, Color: White},
				"c1": {Type: Bishop, Color: White},
				"e8": {Type: King, Color: Black},
			},
			want: true,
		},
		{
			name: "king and knight versus king",
			pieces: map[string]Piece{
				"e1": {Type: King, Color: White},
				"b8": {Type: Knight, Color: Black},
				"e8": {Type: King, Color: Black},
			},
			want: true,
		},
		{
			name: "same-colored bishops",
			pieces: map[string]Piece{
				"e1": {Type: King, Color: White},
				"c1": {Type: Bishop, Color: White},
				"e8": {Type: King, Color: Black},
				"f8": {Type: Bishop, Color: Black},
			},
			want: true,
		},
		{
			name: "opposite-colored bishops",
			pieces: map[string]Piece{
				"e1": {Type: King, Color: White},
				"c1": {Type: Bishop, Color: White},
				"e8": {Type: King, Color: Black},
				"c8": {Type: Bishop, Color: Black},
			},
			want: false,
		},
		{
			name: "bishop against knight",
			pieces: map[string]Piece{
				"e1": {Type: King, Color: White},
				"c1": {Type: Bishop, Color: White},
				"e8": {Type: King, Color: Black},
				"b8": {Type: Knight, Color: Black},
			},
			want: false,
		},
		{
			name: "two knights against a lone king",
			pieces: map[string]Piece{
				"e1": {Type: King, Color: White},
				"b1": {Type: Knight, Color: White},
				"g1": {Type: Knight, Color: White},
				"e8": {Type: King, Color: Black},
			},
			want: false,
		},
		{
			name: "a single pawn is sufficient",
			pieces: map[string]Piece{
				"e1": {Type: King, Color: White},
				"a2": {Type: Pawn, Color: White},
				"e8": {Type: King, Color: Black},
			},
			want: false,
		},
		{
			name: "a rook is sufficient",
			pieces: map[string]Piece{
				"e1": {Type: King, Color: White},
				"a1": {Type: Rook, Color: White},
				"e8": {Type: King, Color: Black},
			},
			want: false,
		},
		{
			name: "a queen is sufficient",
			pieces: map[string]Piece{
				"e1": {Type: King, Color: White},
				"d8": {Type: Queen, Color: Black},
				"e8": {Type: King, Color: Black},
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := testState(t, tt.pieces, White)
			if got := gs.insufficientMaterial(); got != tt.want {
				t.Errorf("insufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawByMaterialStatus(t *testing.T) {
	gs := testState(t, map[string]Piece{
		"e1": {Type: King, Color: White},
		"c1": {Type: Bishop, Color: White},
		"e8": {Type: King, Color: Black},
	}, Black)

	if got := gs.Status(); got != StatusDrawByMaterial {
		t.Fatalf("status: %v, want %v", got, StatusDrawByMaterial)
	}
	if err := gs.ClaimDraw(StatusDrawByMaterial); err != nil {
		t.Errorf("claiming the material draw: %v", err)
	}
}
