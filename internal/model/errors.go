package model

import (
	"errors"
	"fmt"
)

// ErrGameOver is returned by mutating operations once the game has
// reached a terminal state. The game state is left untouched.
var ErrGameOver = errors.New("game is over")

// IllegalMoveError reports a proposed move that is not in the current
// legal move list: wrong piece movement, wrong turn, a move that would
// leave the mover's own king in check, or a malformed castle, en passant
// or promotion. The game state is left untouched.
type IllegalMoveError struct {
	Move Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s%s", e.Move.From.Notation(), e.Move.To.Notation())
}

// ParseError reports malformed external input, such as bad square
// notation. It is raised at the boundary and never mutates state.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// SerializationError reports a save or load failure. A failed save
// leaves the in-memory game untouched; a failed load produces no game.
type SerializationError struct {
	Op  string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s game: %v", e.Op, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
