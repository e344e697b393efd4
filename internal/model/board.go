package model

import "fmt"

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

// A Piece is a plain value; pieces carry no identity beyond the square
// they occupy.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

// fenLetter is the single-letter encoding used in position keys and
/// save files: pnbrqk for black, PNBRQK for white.
func (p Piece) fenLetter() byte {
	var b byte
	switch p.Type {
	case King:
		b = 'k'
	case Queen:
		b = 'q'
	case Rook:
		b = 'r'
	case Bishop:
		b = 'b'
	case Knight:
		b = 'n'
	case Pawn:
		b = 'p'
	}
	if p.Color == White {
		b -= 'a' - 'A'
	}
	return b
}

// Position addresses a board square. X is the file (0 = a), Y is the rank
// counted from the top of the board (0 = rank 8), matching the grid layout.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Notation returns the square in algebraic notation, "a1" through "h8".
func (p Position) Notation() string {
	return fmt.Sprintf("%c%d", p.X+97, 8-p.Y)
}

func (p Position) fileNotation() string {
	return fmt.Sprintf("%c", p.X+97)
}

func boundaryCheck(position Position) bool {
	return position.X >= 0 && position.X < 8 && position.Y >= 0 && position.Y < 8
}

// Board is the 8x8 grid plus cached king positions. It has no legality
// awareness: mutators only touch occupancy and the king caches.
type Board struct {
	Grid              [8][8]*Piece `json:"grid"`
	WhiteKingPosition Position     `json:"whiteKingPosition"`
	BlackKingPosition Position     `json:"blackKingPosition"`
}

func (b *Board) PieceAt(pos Position) *Piece {
	return b.Grid[pos.Y][pos.X]
}

func (b *Board) Place(pos Position, piece Piece) {
	b.Grid[pos.Y][pos.X] = &piece
	if piece.Type == King {
		b.setKingPosition(piece.Color, pos)
	}
}

func (b *Board) Remove(pos Position) {
	b.Grid[pos.Y][pos.X] = nil
}

// Move relocates the piece on from to to, overwriting any occupant of to.
func (b *Board) Move(from, to Position) {
	piece := b.Grid[from.Y][from.X]
	b.Grid[from.Y][from.X] = nil
	b.Grid[to.Y][to.X] = piece
	if piece != nil && piece.Type == King {
		b.setKingPosition(piece.Color, to)
	}
}

func (b *Board) setKingPosition(color Color, pos Position) {
	switch color {
	case White:
		b.WhiteKingPosition = pos
	case Black:
		b.BlackKingPosition = pos
	}
}

func (b *Board) KingPosition(color Color) Position {
	if color == White {
		return b.WhiteKingPosition
	}
	return b.BlackKingPosition
}

// Clone returns an independent copy. The legality filter simulates moves
// on clones so a rejected candidate never touches the live board.
func (b *Board) Clone() *Board {
	clone := &Board{
		WhiteKingPosition: b.WhiteKingPosition,
		BlackKingPosition: b.BlackKingPosition,
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if b.Grid[y][x] != nil {
				piece := *b.Grid[y][x]
				clone.Grid[y][x] = &piece
			}
		}
	}
	return clone
}

func newBoard() *Board {
	board := &Board{}
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, pieceType := range backRank {
		board.Place(Position{X: x, Y: 0}, Piece{Type: pieceType, Color: Black})
		board.Place(Position{X: x, Y: 7}, Piece{Type: pieceType, Color: White})
	}
	for x := 0; x < 8; x++ {
		board.Place(Position{X: x, Y: 1}, Piece{Type: Pawn, Color: Black})
		board.Place(Position{X: x, Y: 6}, Piece{Type: Pawn, Color: White})
	}
	return board
}
