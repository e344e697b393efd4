package model

import "testing"

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name     string
		pieces   map[string]Piece
		attacker Color
		square   string
		want     bool
	}{
		{
			name:     "rook attacks along open file",
			pieces:   map[string]Piece{"a1": {Type: Rook, Color: White}},
			attacker: White,
			square:   "a8",
			want:     true,
		},
		{
			name: "rook ray is blocked by any piece",
			pieces: map[string]Piece{
				"a1": {Type: Rook, Color: White},
				"a4": {Type: Pawn, Color: White},
			},
			attacker: White,
			square:   "a8",
			want:     false,
		},
		{
			name:     "bishop attacks along the diagonal",
			pieces:   map[string]Piece{"c1": {Type: Bishop, Color: White}},
			attacker: White,
			square:   "h6",
			want:     true,
		},
		{
			name:     "bishop does not attack off the diagonal",
			pieces:   map[string]Piece{"c1": {Type: Bishop, Color: White}},
			attacker: White,
			square:   "c5",
			want:     false,
		},
		{
			name:     "knight jumps over occupancy",
			pieces:   map[string]Piece{"g1": {Type: Knight, Color: White}, "g2": {Type: Pawn, Color: White}, "f2": {Type: Pawn, Color: White}},
			attacker: White,
			square:   "f3",
			want:     true,
		},
		{
			name:     "queen combines rook and bishop rays",
			pieces:   map[string]Piece{"d1": {Type: Queen, Color: White}},
			attacker: White,
			square:   "h5",
			want:     true,
		},
		{
			name:     "king attacks adjacent squares only",
			pieces:   map[string]Piece{"e1": {Type: King, Color: White}},
			attacker: White,
			square:   "e3",
			want:     false,
		},
		{
			name:     "white pawn attacks diagonally forward",
			pieces:   map[string]Piece{"e4": {Type: Pawn, Color: White}},
			attacker: White,
			square:   "d5",
			want:     true,
		},
		{
			name:     "white pawn does not attack straight ahead",
			pieces:   map[string]Piece{"e4": {Type: Pawn, Color: White}},
			attacker: White,
			square:   "e5",
			want:     false,
		},
		{
			name:     "black pawn attacks toward white's side",
			pieces:   map[string]Piece{"e5": {Type: Pawn, Color: Black}},
			attacker: Black,
			square:   "d4",
			want:     true,
		},
		{
			name:     "black pawn does not attack backwards",
			pieces:   map[string]Piece{"e5": {Type: Pawn, Color: Black}},
			attacker: Black,
			square:   "d6",
			want:     false,
		},
		{
			name:     "opposing pieces do not count for the attacker",
			pieces:   map[string]Piece{"a1": {Type: Rook, Color: Black}},
			attacker: White,
			square:   "a8",
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testState(t, tt.pieces, White).Board()
			got := isSquareAttacked(board, tt.attacker, mustSquare(t, tt.square))
			if got != tt.want {
				t.Errorf("isSquareAttacked(%s, %s) = %v, want %v", tt.attacker, tt.square, got, tt.want)
			}
		})
	}
}

func TestIsKingInCheck(t *testing.T) {
	gs := testState(t, map[string]Piece{
		"e1": {Type: King, Color: White},
		"e8": {Type: King, Color: Black},
		"e5": {Type: Rook, Color: Black},
	}, White)

	if !isKingInCheck(gs.Board(), White) {
		t.Error("white king on the rook's file should be in check")
	}
	if isKingInCheck(gs.Board(), Black) {
		t.Error("black king behind its own rook should not be in check")
	}
	if !gs.InCheck() {
		t.Error("InCheck should report the side to move")
	}
}
