package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tesuji-arena/engine"
	"tesuji-arena/types"
)

// Stop terminates the session without further turns.
func (s *Session) Stop() {
	if s.state == Active {
		debugLog.Printf("[%s] stopped at turn %d", s.shortID(), s.Turn())
	}
	s.state = Terminated
}

// timedStrategy plays a pass when the wrapped strategy misses its per-turn deadline.
type timedStrategy struct {
	engine.Strategy
	timeout time.Duration
}

// WithTimeout bounds every NextMove call of strategy by d. A strategy that runs out of time
// passes. A zero d returns strategy unchanged.
func WithTimeout(strategy engine.Strategy, d time.Duration) engine.Strategy {
	if d <= 0 {
		return strategy
	}
	return &timedStrategy{Strategy: strategy, timeout: d}
}

func (t *timedStrategy) NextMove(ctx context.Context, b engine.Board, p types.Player) (types.Move, error) {
	turnCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	m, err := t.Strategy.NextMove(turnCtx, b, p)
	// A late answer is discarded even when the strategy never looked at turnCtx.
	if errors.Is(turnCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		debugLog.Printf("%s (%s) timed out after %s, passing", p, t.Name(), t.timeout)
		return types.PassMove(), nil
	}
	return m, err
}

// PlayOptions controls Play.
type PlayOptions struct {
	TurnTimeout time.Duration
	TurnDelay   time.Duration
	MaxTurns    int            // zero means unbounded
	OnTurn      func(Snapshot) // called after every turn

	// Wait, when set, is called before every turn and may block to pause the game.
	// A non-nil error ends Play with that error.
	Wait func(ctx context.Context) error
}

// Play takes turns with strategy until the session terminates, the turn cap is reached or ctx
// is cancelled.
func Play(ctx context.Context, s *Session, strategy engine.Strategy, opts PlayOptions) error {
	strategy = WithTimeout(strategy, opts.TurnTimeout)
	for s.Active() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if opts.MaxTurns > 0 && s.Turn() >= opts.MaxTurns {
			s.Stop()
			break
		}
		if opts.Wait != nil {
			if err := opts.Wait(ctx); err != nil {
				return err
			}
		}
		if _, err := s.TakeTurn(ctx, strategy); err != nil {
			return fmt.Errorf("turn %d: %w", s.Turn()+1, err)
		}
		if opts.OnTurn != nil {
			opts.OnTurn(s.Snapshot())
		}
		if opts.TurnDelay > 0 && s.Active() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(opts.TurnDelay):
			}
		}
	}
	return nil
}
