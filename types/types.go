// Package types contains shared data structures for tesuji-arena.
package types

import "fmt"

// Sign is the owner of a board cell: Empty, or the sign of the player whose stone sits there.
type Sign int

// Player is one of the two opposing colours, represented as a signed unit so that the
// opponent is a negation and owner equality is a direct comparison with a cell's Sign.
type Player int

const (
	Empty Sign = 0

	Black Player = 1
	White Player = -1
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return -p
}

// Sign returns the cell owner value of the player's stones.
func (p Player) Sign() Sign {
	return Sign(p)
}

// Valid reports whether p is Black or White.
func (p Player) Valid() bool {
	return p == Black || p == White
}

func (p Player) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

// Player returns the player owning a stone of this sign. It must not be called on Empty.
func (s Sign) Player() Player {
	return Player(s)
}

// Vertex is a board coordinate. X runs left to right and Y top to bottom, both 0-indexed.
type Vertex struct {
	X int
	Y int
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Move is either a pass or a stone placement at Vertex.
type Move struct {
	Pass   bool
	Vertex Vertex
}

// PassMove returns the pass sentinel.
func PassMove() Move {
	return Move{Pass: true}
}

// PlayAt returns a placement at v.
func PlayAt(v Vertex) Move {
	return Move{Vertex: v}
}

func (m Move) String() string {
	if m.Pass {
		return "pass"
	}
	return m.Vertex.String()
}

// MoveAnalysis describes what playing a vertex would do, as reported by the rules engine.
type MoveAnalysis struct {
	Pass      bool // the vertex is off the board, so the move can only be a pass
	Overwrite bool // the vertex is already occupied
	Capturing bool // at least one opponent chain would be removed
	Suicide   bool // the placed stone's chain would be left without liberties
	Ko        bool // the move retakes a ko immediately
}

// Legal reports whether none of the prohibitions apply.
func (a MoveAnalysis) Legal() bool {
	return !a.Pass && !a.Overwrite && !a.Suicide && !a.Ko
}

// MoveOptions selects which prohibitions the rules engine enforces when applying a move.
type MoveOptions struct {
	PreventOverwrite bool
	PreventSuicide   bool
	PreventKo        bool
}

// StrictMove enforces every prohibition.
var StrictMove = MoveOptions{
	PreventOverwrite: true,
	PreventSuicide:   true,
	PreventKo:        true,
}

// LibertyClass classifies an empty cell by the owners of its occupied neighbours.
type LibertyClass int

const (
	LibertyNone   LibertyClass = iota // no occupied neighbour
	LibertyShared                     // neighbours of both colours
	LibertyBlack                      // only black neighbours
	LibertyWhite                      // only white neighbours
)

func (l LibertyClass) String() string {
	switch l {
	case LibertyNone:
		return "none"
	case LibertyShared:
		return "shared"
	case LibertyBlack:
		return "black"
	case LibertyWhite:
		return "white"
	}
	return fmt.Sprintf("LibertyClass(%d)", int(l))
}

// TerritoryOwner is the owner credited with an empty cell.
type TerritoryOwner int

const (
	Neutral TerritoryOwner = iota
	TerritoryBlack
	TerritoryWhite
)

func (t TerritoryOwner) String() string {
	switch t {
	case Neutral:
		return "neutral"
	case TerritoryBlack:
		return "black"
	case TerritoryWhite:
		return "white"
	}
	return fmt.Sprintf("TerritoryOwner(%d)", int(t))
}

// TerritoryOf maps a player to the matching territory owner.
func TerritoryOf(p Player) TerritoryOwner {
	if p == Black {
		return TerritoryBlack
	}
	return TerritoryWhite
}

// LibertyOf maps a player to the matching single-owner liberty class.
func LibertyOf(p Player) LibertyClass {
	if p == Black {
		return LibertyBlack
	}
	return LibertyWhite
}

// Shape is the connectivity pattern of a stone with its same-coloured neighbours.
type Shape int

const (
	Isolated Shape = iota
	Endpoint
	Straight
	Corner
	Junction
	Full
)

func (s Shape) String() string {
	switch s {
	case Isolated:
		return "isolated"
	case Endpoint:
		return "endpoint"
	case Straight:
		return "straight"
	case Corner:
		return "corner"
	case Junction:
		return "junction"
	case Full:
		return "full"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Orientation is a quarter-turn count (0..3) applied to a Shape by visual consumers.
type Orientation int
