package model

// A Move is a proposal: it only becomes state after passing the
// legality filter. The flags are set by the move generator; a proposal
// built at the boundary carries only from, to and promotion, and
// inherits the flags of the generated move it matches.
type Move struct {
	From        Position  `json:"from"`
	To          Position  `json:"to"`
	Promotion   PieceType `json:"promotion,omitempty"`
	IsCastle    bool      `json:"isCastle,omitempty"`
	IsEnPassant bool      `json:"isEnPassant,omitempty"`
}

// matches ignores the generator-owned flags so a boundary proposal can
// be compared against the legal move list.
func (m Move) matches(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion == other.Promotion
}

// CastlingRights are four independent flags. Once cleared they are
// never restored.
type CastlingRights struct {
	WhiteKingside  bool `json:"whiteKingside"`
	WhiteQueenside bool `json:"whiteQueenside"`
	BlackKingside  bool `json:"blackKingside"`
	BlackQueenside bool `json:"blackQueenside"`
}

func newCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

func (cr CastlingRights) kingside(color Color) bool {
	if color == White {
		return cr.WhiteKingside
	}
	return cr.BlackKingside
}

func (cr CastlingRights) queenside(color Color) bool {
	if color == White {
		return cr.WhiteQueenside
	}
	return cr.BlackQueenside
}

func (cr *CastlingRights) clear(color Color, kingside bool) {
	switch {
	case color == White && kingside:
		cr.WhiteKingside = false
	case color == White && !kingside:
		cr.WhiteQueenside = false
	case color == Black && kingside:
		cr.BlackKingside = false
	default:
		cr.BlackQueenside = false
	}
}

func (cr *CastlingRights) clearBoth(color Color) {
	cr.clear(color, true)
	cr.clear(color, false)
}

// CastleRookMove records the rook relocation that accompanies a castle,
// for clients replaying a ply.
type CastleRookMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// A Ply is one half-move as recorded in the game's move history.
type Ply struct {
	Piece          Piece           `json:"piece"`
	From           Position        `json:"from"`
	To             Position        `json:"to"`
	CapturedPiece  *Piece          `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Promotion      PieceType       `json:"promotion"`
	Notation       string          `json:"notation"`
}

// MovePair groups white's ply with black's reply, one full move.
type MovePair struct {
	WhitePly Ply  `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

// MoveRequest is the boundary representation of a move: algebraic
// squares plus an optional promotion letter.
type MoveRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// ToMove parses the request into a Move proposal. Malformed notation
// fails with a ParseError and never reaches the game state.
func (r MoveRequest) ToMove() (Move, error) {
	from, err := ParseSquare(r.From)
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(r.To)
	if err != nil {
		return Move{}, err
	}
	move := Move{From: from, To: to}
	if r.Promotion != "" {
		promotion, err := ParsePromotion(r.Promotion)
		if err != nil {
			return Move{}, err
		}
		move.Promotion = promotion
	}
	return move, nil
}
