package model

import "fmt"

const (
	halfmoveClockForFiftyMoveRule     = 100
	repetitionsForThreefoldRepetition = 3
)

// drawStatus reports the first claimable draw condition, if any.
func (gs *GameState) drawStatus() (Status, bool) {
	if gs.positionCounts[gs.positionKey()] >= repetitionsForThreefoldRepetition {
		return StatusDrawByRepetition, true
	}
	if gs.halfmoveClock >= halfmoveClockForFiftyMoveRule {
		return StatusDrawByFiftyMove, true
	}
	if gs.insufficientMaterial() {
		return StatusDrawByMaterial, true
	}
	return "", false
}

// EligibleDraws lists the draw conditions the player to move could
// claim right now.
func (gs *GameState) EligibleDraws() []Status {
	draws := []Status{}
	if gs.positionCounts[gs.positionKey()] >= repetitionsForThreefoldRepetition {
		draws = append(draws, StatusDrawByRepetition)
	}
	if gs.halfmoveClock >= halfmoveClockForFiftyMoveRule {
		draws = append(draws, StatusDrawByFiftyMove)
	}
	if gs.insufficientMaterial() {
		draws = append(draws, StatusDrawByMaterial)
	}
	return draws
}

// ClaimDraw ends the game by the given draw condition, if it currently
// holds. The draw conditions are claimable, not auto-terminating: until
// a claim, play continues.
func (gs *GameState) ClaimDraw(method Status) error {
	if gs.terminal() {
		return ErrGameOver
	}
	for _, eligible := range gs.EligibleDraws() {
		if eligible == method {
			claimed := method
			gs.claimed = &claimed
			return nil
		}
	}
	return fmt.Errorf("draw by %s is not claimable", method)
}

// RepetitionCount reports how often the current position (occupancy,
// side to move, rights, en passant target) has occurred.
func (gs *GameState) RepetitionCount() int {
	return gs.positionCounts[gs.positionKey()]
}

// insufficientMaterial applies a conservative material table: king vs
// king, king and one minor vs king, and king and bishop vs king and
// bishop with both bishops on the same color complex. Any pawn, rook or
// queen on the board, or two minors against a lone king, counts as
// sufficient.
func (gs *GameState) insufficientMaterial() bool {
	type minor struct {
		pieceType   PieceType
		squareColor int
	}
	minors := map[Color][]minor{}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			piece := gs.board.Grid[y][x]
			if piece == nil {
				continue
			}
			switch piece.Type {
			case King:
			case Bishop, Knight:
				minors[piece.Color] = append(minors[piece.Color], minor{piece.Type, (x + y) % 2})
			default:
				// A pawn, rook or queen can always force mate.
				return false
			}
		}
	}
	white, black := minors[White], minors[Black]
	if len(white) > 1 || len(black) > 1 {
		return false
	}
	if len(white) == 0 || len(black) == 0 {
		// K vs K, or K+minor vs K.
		return true
	}
	// One minor each: drawn only for same-colored bishops.
	return white[0].pieceType == Bishop && black[0].pieceType == Bishop &&
		white[0].squareColor == black[0].squareColor
}
