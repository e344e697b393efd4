package model

var promotionTypes = []PieceType{Queen, Rook, Bishop, Knight}

// pseudoLegalMoves emits every move that obeys piece movement and
// occupancy rules for color, without regard for the mover's own king.
func (gs *GameState) pseudoLegalMoves(color Color) []Move {
	moves := []Move{}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pos := Position{X: x, Y: y}
			piece := gs.board.PieceAt(pos)
			if piece != nil && piece.Color == color {
				moves = append(moves, gs.pseudoMovesForPiece(pos, piece)...)
			}
		}
	}
	return moves
}

func (gs *GameState) pseudoMovesForPiece(pos Position, piece *Piece) []Move {
	switch piece.Type {
	case Pawn:
		return gs.pseudoPawnMoves(pos, piece)
	case Knight:
		return gs.pseudoOffsetMoves(pos, piece, knightDirs)
	case Bishop:
		return gs.pseudoSlidingMoves(pos, piece, bishopDirs)
	case Rook:
		return gs.pseudoSlidingMoves(pos, piece, rookDirs)
	case Queen:
		return append(gs.pseudoSlidingMoves(pos, piece, bishopDirs), gs.pseudoSlidingMoves(pos, piece, rookDirs)...)
	case King:
		return append(gs.pseudoOffsetMoves(pos, piece, kingDirs), gs.pseudoCastleMoves(pos, piece)...)
	}
	return nil
}

func (gs *GameState) pseudoPawnMoves(pos Position, piece *Piece) []Move {
	pawnMoves := []Move{}
	dir := -1
	startRank := 6
	if piece.Color == Black {
		dir = 1
		startRank = 1
	}
	appendMove := func(to Position, enPassant bool) {
		lastRank := to.Y == 0 || to.Y == 7
		if lastRank {
			// One move per promotable kind; a bare push to the last
			// rank is not a legal proposal.
			for _, promotion := range promotionTypes {
				pawnMoves = append(pawnMoves, Move{From: pos, To: to, Promotion: promotion})
			}
			return
		}
		pawnMoves = append(pawnMoves, Move{From: pos, To: to, IsEnPassant: enPassant})
	}
	// Forward pushes. The double push needs both squares empty and the
	// pawn still on its starting rank.
	oneAhead := Position{X: pos.X, Y: pos.Y + dir}
	if gs.board.PieceAt(oneAhead) == nil {
		appendMove(oneAhead, false)
		twoAhead := Position{X: pos.X, Y: pos.Y + 2*dir}
		if pos.Y == startRank && gs.board.PieceAt(twoAhead) == nil {
			appendMove(twoAhead, false)
		}
	}
	// Diagonal captures, including the en passant capture onto the
	// skipped square when an enemy pawn sits beside us.
	for _, dx := range []int{-1, 1} {
		target := Position{X: pos.X + dx, Y: pos.Y + dir}
		if !boundaryCheck(target) {
			continue
		}
		if occupant := gs.board.PieceAt(target); occupant != nil {
			if occupant.Color != piece.Color {
				appendMove(target, false)
			}
			continue
		}
		if gs.enPassantTarget != nil && *gs.enPassantTarget == target {
			beside := gs.board.PieceAt(Position{X: target.X, Y: pos.Y})
			if beside != nil && beside.Type == Pawn && beside.Color != piece.Color {
				appendMove(target, true)
			}
		}
	}
	return pawnMoves
}

func (gs *GameState) pseudoOffsetMoves(pos Position, piece *Piece, dirs []Position) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		targetPos := Position{X: pos.X + dir.X, Y: pos.Y + dir.Y}
		if boundaryCheck(targetPos) {
			occupant := gs.board.PieceAt(targetPos)
			if occupant == nil || occupant.Color != piece.Color {
				moves = append(moves, Move{From: pos, To: targetPos})
			}
		}
	}
	return moves
}

func (gs *GameState) pseudoSlidingMoves(pos Position, piece *Piece, dirs []Position) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		targetPos := Position{X: pos.X + dir.X, Y: pos.Y + dir.Y}
		for boundaryCheck(targetPos) {
			occupant := gs.board.PieceAt(targetPos)
			if occupant == nil {
				moves = append(moves, Move{From: pos, To: targetPos})
			} else {
				if occupant.Color != piece.Color {
					moves = append(moves, Move{From: pos, To: targetPos})
				}
				break
			}
			targetPos = Position{X: targetPos.X + dir.X, Y: targetPos.Y + dir.Y}
		}
	}
	return moves
}

// pseudoCastleMoves emits the two-square king moves for each direction
// with an intact castling right: the squares between king and rook must
// be empty, and the king may not castle out of, through, or into check.
// The rook relocation is a side effect of applying the move.
func (gs *GameState) pseudoCastleMoves(pos Position, piece *Piece) []Move {
	castleMoves := []Move{}
	y := pos.Y
	opponent := piece.Color.Opponent()
	hasRook := func(x int) bool {
		rook := gs.board.PieceAt(Position{X: x, Y: y})
		return rook != nil && rook.Type == Rook && rook.Color == piece.Color
	}
	empty := func(xs ...int) bool {
		for _, x := range xs {
			if gs.board.PieceAt(Position{X: x, Y: y}) != nil {
				return false
			}
		}
		return true
	}
	safe := func(xs ...int) bool {
		for _, x := range xs {
			if isSquareAttacked(gs.board, opponent, Position{X: x, Y: y}) {
				return false
			}
		}
		return true
	}
	if gs.castlingRights.kingside(piece.Color) && hasRook(7) && empty(5, 6) && safe(4, 5, 6) {
		castleMoves = append(castleMoves, Move{From: pos, To: Position{X: 6, Y: y}, IsCastle: true})
	}
	if gs.castlingRights.queenside(piece.Color) && hasRook(0) && empty(1, 2, 3) && safe(4, 3, 2) {
		castleMoves = append(castleMoves, Move{From: pos, To: Position{X: 2, Y: y}, IsCastle: true})
	}
	return castleMoves
}
