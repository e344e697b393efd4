package model

import "strings"

// Status is the answer to a game status query. Checkmate and stalemate
// are terminal; the draw statuses are advisory conditions a player may
// claim.
type Status string

const (
	StatusInProgress       Status = "inProgress"
	StatusCheck            Status = "check"
	StatusCheckmate        Status = "checkmate"
	StatusStalemate        Status = "stalemate"
	StatusDrawByRepetition Status = "drawByRepetition"
	StatusDrawByFiftyMove  Status = "drawByFiftyMove"
	StatusDrawByMaterial   Status = "drawByMaterial"
)

// GameState is the authoritative rules state: the board, the side to
// move, castling rights, the en passant target, the halfmove clock and
// fullmove number, and the append-only position history that backs
// repetition claims. It is mutated exclusively by ApplyMove, one legal
// move at a time.
type GameState struct {
	board           *Board
	toMove          Color
	castlingRights  CastlingRights
	enPassantTarget *Position
	halfmoveClock   int
	fullmoveNumber  int
	history         []string
	positionCounts  map[string]int
	claimed         *Status
}

// NewGameState returns the standard initial position, with the history
// already containing it.
func NewGameState() *GameState {
	gs := &GameState{
		board:          newBoard(),
		toMove:         White,
		castlingRights: newCastlingRights(),
		fullmoveNumber: 1,
		positionCounts: make(map[string]int),
	}
	gs.recordPosition()
	return gs
}

// Board exposes the live board for rendering. Callers must not mutate
// it; all mutation goes through ApplyMove.
func (gs *GameState) Board() *Board {
	return gs.board
}

func (gs *GameState) ToMove() Color {
	return gs.toMove
}

func (gs *GameState) CastlingRights() CastlingRights {
	return gs.castlingRights
}

func (gs *GameState) EnPassantTarget() *Position {
	if gs.enPassantTarget == nil {
		return nil
	}
	target := *gs.enPassantTarget
	return &target
}

func (gs *GameState) HalfmoveClock() int {
	return gs.halfmoveClock
}

func (gs *GameState) FullmoveNumber() int {
	return gs.fullmoveNumber
}

// Claimed reports whether a draw claim has ended the game.
func (gs *GameState) Claimed() bool {
	return gs.claimed != nil
}

func (gs *GameState) InCheck() bool {
	return isKingInCheck(gs.board, gs.toMove)
}

// ApplyMove validates the proposal against the legal move list and, if
// it survives, executes it and updates every derived field. On failure
// the state is unchanged and the game continues.
func (gs *GameState) ApplyMove(proposal Move) error {
	if gs.terminal() {
		return ErrGameOver
	}
	var move Move
	found := false
	for _, legal := range gs.LegalMoves() {
		if proposal.matches(legal) {
			move = legal
			found = true
			break
		}
	}
	if !found {
		return &IllegalMoveError{Move: proposal}
	}

	piece := *gs.board.PieceAt(move.From)
	captured := gs.board.PieceAt(move.To) != nil || move.IsEnPassant

	gs.updateCastlingRights(move, piece)
	applyMoveToBoard(gs.board, move, gs.toMove)

	gs.enPassantTarget = nil
	if piece.Type == Pawn && abs(move.To.Y-move.From.Y) == 2 {
		skipped := Position{X: move.From.X, Y: (move.From.Y + move.To.Y) / 2}
		gs.enPassantTarget = &skipped
	}

	if captured || piece.Type == Pawn {
		gs.halfmoveClock = 0
	} else {
		gs.halfmoveClock++
	}
	if gs.toMove == Black {
		gs.fullmoveNumber++
	}
	gs.toMove = gs.toMove.Opponent()

	gs.recordPosition()
	return nil
}

// Moving a king or rook, or capturing a rook on its home square,
// permanently clears the corresponding flags.
func (gs *GameState) updateCastlingRights(move Move, piece Piece) {
	if piece.Type == King {
		gs.castlingRights.clearBoth(piece.Color)
	}
	if piece.Type == Rook {
		if color, kingside, ok := rookHomeSquare(move.From); ok && color == piece.Color {
			gs.castlingRights.clear(color, kingside)
		}
	}
	if target := gs.board.PieceAt(move.To); target != nil && target.Type == Rook {
		if color, kingside, ok := rookHomeSquare(move.To); ok && color == target.Color {
			gs.castlingRights.clear(color, kingside)
		}
	}
}

func rookHomeSquare(pos Position) (Color, bool, bool) {
	switch pos {
	case Position{X: 0, Y: 7}:
		return White, false, true
	case Position{X: 7, Y: 7}:
		return White, true, true
	case Position{X: 0, Y: 0}:
		return Black, false, true
	case Position{X: 7, Y: 0}:
		return Black, true, true
	}
	return "", false, false
}

// Status reports the current game status. Checkmate and stalemate take
// precedence; the claimable draw conditions come next, then check.
func (gs *GameState) Status() Status {
	if gs.claimed != nil {
		return *gs.claimed
	}
	inCheck := gs.InCheck()
	if len(gs.LegalMoves()) == 0 {
		if inCheck {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if draw, ok := gs.drawStatus(); ok {
		return draw
	}
	if inCheck {
		return StatusCheck
	}
	return StatusInProgress
}

func (gs *GameState) terminal() bool {
	if gs.claimed != nil {
		return true
	}
	status := gs.Status()
	return status == StatusCheckmate || status == StatusStalemate
}

func (gs *GameState) recordPosition() {
	key := gs.positionKey()
	gs.history = append(gs.history, key)
	gs.positionCounts[key]++
}

// positionKey identifies a position for repetition purposes: occupancy,
// side to move, castling rights and en passant target, with the clocks
// excluded. The layout follows the first four FEN fields. The en
// passant field is only recorded when a pawn of the side to move could
// actually use it, so positions that differ by an unusable target
// compare equal.
func (gs *GameState) positionKey() string {
	var sb strings.Builder
	for y := 0; y < 8; y++ {
		empty := 0
		for x := 0; x < 8; x++ {
			piece := gs.board.Grid[y][x]
			if piece == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.fenLetter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if y < 7 {
			sb.WriteByte('/')
		}
	}
	if gs.toMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	rights := ""
	if gs.castlingRights.WhiteKingside {
		rights += "K"
	}
	if gs.castlingRights.WhiteQueenside {
		rights += "Q"
	}
	if gs.castlingRights.BlackKingside {
		rights += "k"
	}
	if gs.castlingRights.BlackQueenside {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
	if gs.enPassantCaptureAvailable() {
		sb.WriteString(" " + gs.enPassantTarget.Notation())
	} else {
		sb.WriteString(" -")
	}
	return sb.String()
}

func (gs *GameState) enPassantCaptureAvailable() bool {
	if gs.enPassantTarget == nil {
		return false
	}
	target := *gs.enPassantTarget
	// The capturing pawn stands one rank past the target from the
	// mover's point of view, on an adjacent file.
	capturerRank := target.Y + 1
	if gs.toMove == Black {
		capturerRank = target.Y - 1
	}
	for _, dx := range []int{-1, 1} {
		pos := Position{X: target.X + dx, Y: capturerRank}
		if !boundaryCheck(pos) {
			continue
		}
		if piece := gs.board.PieceAt(pos); piece != nil && piece.Type == Pawn && piece.Color == gs.toMove {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
