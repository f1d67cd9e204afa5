// Package engine defines the collaborators the game core depends on.
package engine

import (
	"context"
	"time"

	"tesuji-arena/types"
)

// Board is an immutable board snapshot owned by a rules engine.
// Every move produces a new snapshot; the receiver is never modified.
type Board interface {
	Width() int
	Height() int

	// Get returns the owner of v, or types.Empty for empty and off-board vertices.
	Get(v types.Vertex) types.Sign

	// Has reports whether v lies on the board.
	Has(v types.Vertex) bool

	// Neighbors returns the on-board orthogonal neighbours of v.
	Neighbors(v types.Vertex) []types.Vertex

	// Chain returns the maximal connected set of vertices sharing v's owner (or emptiness).
	Chain(v types.Vertex) []types.Vertex

	// AnalyzeMove reports what placing a stone of player p at v would do.
	AnalyzeMove(p types.Player, v types.Vertex) types.MoveAnalysis

	// MakeMove applies m for p and returns the resulting snapshot.
	// It returns a *types.IllegalMoveError if a prohibition selected in opts is violated.
	MakeMove(p types.Player, m types.Move, opts types.MoveOptions) (Board, error)

	// Captures returns the number of stones captured by p so far.
	Captures(p types.Player) int

	// IsValid reports whether every chain on the board has at least one liberty.
	IsValid() bool
}

// Strategy selects moves. Implementations must not modify the board they are given.
type Strategy interface {
	Name() string

	// Init performs one-time setup for a board of the given dimensions, such as loading a model.
	Init(ctx context.Context, width, height int) error

	// NextMove returns the move for player p on board b.
	NextMove(ctx context.Context, b Board, p types.Player) (types.Move, error)
}

// PolicyModel is a trained decision function mapping encoded board history to a move distribution.
type PolicyModel interface {
	// Size is the edge length of the square board the model was trained for.
	Size() int

	// Predict returns one probability per board point followed by the pass probability.
	Predict(input []float64) ([]float64, error)
}

// TerritoryPolicy decides when territory scoring is meaningful.
type TerritoryPolicy string

const (
	// CountAlways scores territory on every board.
	CountAlways TerritoryPolicy = "always"
	// RequireBothPlayers reports an all-neutral grid until both colours have stones on the board.
	RequireBothPlayers TerritoryPolicy = "both-players"
)

// StrategyWeight binds a strategy kind to its composite weight.
type StrategyWeight struct {
	Kind   string  `json:"kind"` // "random" or "policy"
	Weight float64 `json:"weight"`
}

// GameConfig holds configuration for starting a new arena game.
type GameConfig struct {
	BoardSize     int              // 9, 13, or 19
	TurnDelay     time.Duration    // pause between turns in the spectator views
	TurnTimeout   time.Duration    // per-turn deadline; expiry is played as a pass. Zero disables.
	MaxTurns      int              // hard cap on turns per game; zero means unbounded
	Strategies    []StrategyWeight // weighted strategy mix used by both colours
	ModelPath     string           // go-deep JSON dump; empty seeds a random network
	Territory     TerritoryPolicy
	FilterIllegal bool         // policy strategy skips outputs the rules engine would refuse
	Seed          int64        // random source seed; zero picks one from the clock
	Opening       []types.Move // played in order, black first, before the strategies take over
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize: 19,
		TurnDelay: 200 * time.Millisecond,
		MaxTurns:  1000,
		Strategies: []StrategyWeight{
			{Kind: "policy", Weight: 80},
			{Kind: "random", Weight: 20},
		},
		Territory:     RequireBothPlayers,
		FilterIllegal: true,
	}
}
