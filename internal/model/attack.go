package model

import "fmt"

var (
	rookDirs   = []Position{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	bishopDirs = []Position{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	knightDirs = []Position{{X: 2, Y: 1}, {X: 2, Y: -1}, {X: -2, Y: 1}, {X: -2, Y: -1}, {X: 1, Y: 2}, {X: 1, Y: -2}, {X: -1, Y: 2}, {X: -1, Y: -2}}
	kingDirs   = []Position{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
)

// isKingInCheck reports whether color's king is attacked by the other
// side. A missing king means the game state invariants were broken
// upstream, which is unrecoverable.
func isKingInCheck(board *Board, color Color) bool {
	kingPos := board.KingPosition(color)
	king := board.PieceAt(kingPos)
	if king == nil || king.Type != King || king.Color != color {
		panic(fmt.Sprintf("no %s king on the board", color))
	}
	return isSquareAttacked(board, color.Opponent(), kingPos)
}

// isSquareAttacked reports whether any piece of attackingColor has a
// pseudo-legal attack reaching position: offset tables for knights and
// kings, ray-casting for sliders, and the diagonal-only pawn attack.
func isSquareAttacked(board *Board, attackingColor Color, position Position) bool {
	for _, dir := range rookDirs {
		targetPos := Position{X: position.X + dir.X, Y: position.Y + dir.Y}
		for boundaryCheck(targetPos) {
			if piece := board.PieceAt(targetPos); piece != nil {
				if piece.Color == attackingColor && (piece.Type == Queen || piece.Type == Rook) {
					return true
				}
				break
			}
			targetPos = Position{X: targetPos.X + dir.X, Y: targetPos.Y + dir.Y}
		}
	}
	for _, dir := range bishopDirs {
		targetPos := Position{X: position.X + dir.X, Y: position.Y + dir.Y}
		for boundaryCheck(targetPos) {
			if piece := board.PieceAt(targetPos); piece != nil {
				if piece.Color == attackingColor && (piece.Type == Queen || piece.Type == Bishop) {
					return true
				}
				break
			}
			targetPos = Position{X: targetPos.X + dir.X, Y: targetPos.Y + dir.Y}
		}
	}
	for _, dir := range knightDirs {
		targetPos := Position{X: position.X + dir.X, Y: position.Y + dir.Y}
		if boundaryCheck(targetPos) {
			if piece := board.PieceAt(targetPos); piece != nil && piece.Color == attackingColor && piece.Type == Knight {
				return true
			}
		}
	}
	for _, dir := range kingDirs {
		targetPos := Position{X: position.X + dir.X, Y: position.Y + dir.Y}
		if boundaryCheck(targetPos) {
			if piece := board.PieceAt(targetPos); piece != nil && piece.Color == attackingColor && piece.Type == King {
				return true
			}
		}
	}
	// A pawn attacks the two squares diagonally ahead of it, so the
	// attacking pawn sits one rank behind the target from its own
	// point of view.
	pawnRank := position.Y + 1
	if attackingColor == Black {
		pawnRank = position.Y - 1
	}
	for _, dx := range []int{-1, 1} {
		targetPos := Position{X: position.X + dx, Y: pawnRank}
		if boundaryCheck(targetPos) {
			if piece := board.PieceAt(targetPos); piece != nil && piece.Color == attackingColor && piece.Type == Pawn {
				return true
			}
		}
	}
	return false
}
