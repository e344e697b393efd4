package model

// LegalMoves returns every move the side to move may actually play:
// the pseudo-legal set minus any move that would leave the mover's own
// king in check. An empty result means checkmate or stalemate.
func (gs *GameState) LegalMoves() []Move {
	return gs.legalMovesFor(gs.toMove)
}

func (gs *GameState) legalMovesFor(color Color) []Move {
	legalMoves := []Move{}
	for _, move := range gs.pseudoLegalMoves(color) {
		if !gs.leavesKingInCheck(move, color) {
			legalMoves = append(legalMoves, move)
		}
	}
	return legalMoves
}

// leavesKingInCheck simulates the move on a scratch copy of the board,
// never the live one, so a rejected candidate causes no partial
// mutation.
func (gs *GameState) leavesKingInCheck(move Move, color Color) bool {
	scratch := gs.board.Clone()
	applyMoveToBoard(scratch, move, color)
	return isKingInCheck(scratch, color)
}

// applyMoveToBoard executes a generated move on the given board,
// including the en passant capture removal, the castling rook
// relocation, and the promotion piece substitution. It is shared by the
// legality filter (against a scratch board) and ApplyMove (against the
// live one).
func applyMoveToBoard(board *Board, move Move, mover Color) {
	if move.IsEnPassant {
		// The captured pawn sits on the capturing pawn's rank, not on
		// the destination square.
		board.Remove(Position{X: move.To.X, Y: move.From.Y})
	}
	board.Move(move.From, move.To)
	if move.Promotion != "" {
		board.Place(move.To, Piece{Type: move.Promotion, Color: mover})
	}
	if move.IsCastle {
		switch move.To.X {
		case 6:
			board.Move(Position{X: 7, Y: move.From.Y}, Position{X: 5, Y: move.From.Y})
		case 2:
			board.Move(Position{X: 0, Y: move.From.Y}, Position{X: 3, Y: move.From.Y})
		}
	}
}
