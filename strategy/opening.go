package strategy

import (
	"context"
	"sync"

	"tesuji-arena/engine"
	"tesuji-arena/types"
)

// Opening plays a fixed move sequence, one move per call, then defers to the wrapped strategy.
// A scripted move the board refuses is skipped and the wrapped strategy answers instead.
type Opening struct {
	moves []types.Move
	next  engine.Strategy

	mu     sync.Mutex
	played int
}

var _ engine.Strategy = (*Opening)(nil)

// NewOpening plays moves before next.
func NewOpening(moves []types.Move, next engine.Strategy) *Opening {
	return &Opening{moves: append([]types.Move(nil), moves...), next: next}
}

// Name returns the wrapped strategy's name.
func (o *Opening) Name() string { return "opening+" + o.next.Name() }

// Init rewinds the opening and initializes the wrapped strategy.
func (o *Opening) Init(ctx context.Context, width, height int) error {
	o.mu.Lock()
	o.played = 0
	o.mu.Unlock()
	return o.next.Init(ctx, width, height)
}

func (o *Opening) NextMove(ctx context.Context, b engine.Board, p types.Player) (types.Move, error) {
	o.mu.Lock()
	var m types.Move
	scripted := o.played < len(o.moves)
	if scripted {
		m = o.moves[o.played]
		o.played++
	}
	o.mu.Unlock()

	if scripted {
		if m.Pass || b.AnalyzeMove(p, m.Vertex).Legal() {
			return m, nil
		}
		debugLog.Printf("opening: %s %v refused, deferring to %s", p, m, o.next.Name())
	}
	return o.next.NextMove(ctx, b, p)
}
