// Package strategy implements the move strategies: a random legal search, a policy-driven
// player fed by a rolling board history, and a weighted composite of both.
package strategy

import (
	"context"
	"io"
	"log"
	"math/rand"
	"sync"
	"time"

	"tesuji-arena/engine"
	"tesuji-arena/types"
)

var debugLog = log.New(io.Discard, "strategy ", log.Ltime|log.Lmicroseconds)

// SetDebugOutput directs the package debug log to w.
func SetDebugOutput(w io.Writer) {
	debugLog.SetOutput(w)
}

// Random plays the first legal vertex of a randomly ordered scan, or passes when none is left.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ engine.Strategy = (*Random)(nil)

// NewRandom creates a random strategy drawing from rng. A nil rng is seeded from the clock.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Random{rng: rng}
}

// Name returns "random".
func (r *Random) Name() string { return "random" }

// Init does nothing; a random scan works on any board.
func (r *Random) Init(ctx context.Context, width, height int) error { return nil }

// NextMove shuffles the columns and rows once and scans their cross product in that order.
func (r *Random) NextMove(ctx context.Context, b engine.Board, p types.Player) (types.Move, error) {
	r.mu.Lock()
	xs := r.rng.Perm(b.Width())
	ys := r.rng.Perm(b.Height())
	r.mu.Unlock()

	for _, x := range xs {
		for _, y := range ys {
			v := types.Vertex{X: x, Y: y}
			if b.Get(v) != types.Empty {
				continue
			}
			if b.AnalyzeMove(p, v).Legal() {
				return types.PlayAt(v), nil
			}
		}
	}
	return types.PassMove(), nil
}
