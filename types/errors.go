package types

import (
	"errors"
	"fmt"
)

// Move prohibitions enforced by the rules engine.
var (
	ErrOverwrite   = errors.New("vertex already occupied")
	ErrSuicide     = errors.New("suicide")
	ErrKo          = errors.New("ko")
	ErrOutOfBounds = errors.New("vertex out of bounds")
)

// IllegalMoveError reports a move the rules engine refused to apply.
type IllegalMoveError struct {
	Player Player
	Vertex Vertex
	Reason error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s at %s: %v", e.Player, e.Vertex, e.Reason)
}

func (e *IllegalMoveError) Unwrap() error {
	return e.Reason
}
