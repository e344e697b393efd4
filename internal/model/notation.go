package model

// ParseSquare converts algebraic notation ("a1" through "h8") into a
// Position. Invalid notation fails with a ParseError before reaching
// the game state.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, &ParseError{Input: s, Reason: "square notation is a file letter and a rank digit"}
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' {
		return Position{}, &ParseError{Input: s, Reason: "file must be a-h"}
	}
	if rank < '1' || rank > '8' {
		return Position{}, &ParseError{Input: s, Reason: "rank must be 1-8"}
	}
	return Position{X: int(file - 'a'), Y: int('8' - rank)}, nil
}

// ParsePromotion converts a promotion letter (q, r, b, n) into the piece
// type a pawn promotes to. King and pawn are not valid promotion targets.
func ParsePromotion(s string) (PieceType, error) {
	switch s {
	case "q":
		return Queen, nil
	case "r":
		return Rook, nil
	case "b":
		return Bishop, nil
	case "n":
		return Knight, nil
	}
	return "", &ParseError{Input: s, Reason: "promotion piece must be q, r, b or n"}
}
