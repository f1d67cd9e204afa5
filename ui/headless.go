package ui

import (
	"context"
	"math/rand"

	"tesuji-arena/engine"
	"tesuji-arena/engine/rules"
	"tesuji-arena/game"
	"tesuji-arena/strategy"
)

// NewGame builds the strategy mix of cfg, initializes it and starts a session on an empty
// board. A non-zero cfg.Seed makes the game repeatable.
func NewGame(ctx context.Context, cfg engine.GameConfig) (*game.Session, engine.Strategy, error) {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	strat, err := strategy.FromConfig(cfg, rng)
	if err != nil {
		return nil, nil, err
	}
	if err := strat.Init(ctx, cfg.BoardSize, cfg.BoardSize); err != nil {
		return nil, nil, err
	}
	return game.New(rules.New(cfg.BoardSize, cfg.BoardSize)), strat, nil
}

// RunHeadless plays one game of cfg, printing every position with r, then the final counts.
func RunHeadless(ctx context.Context, cfg engine.GameConfig, r *Renderer) error {
	sess, strat, err := NewGame(ctx, cfg)
	if err != nil {
		return err
	}
	var renderErr error
	err = game.Play(ctx, sess, strat, game.PlayOptions{
		TurnTimeout: cfg.TurnTimeout,
		TurnDelay:   cfg.TurnDelay,
		MaxTurns:    cfg.MaxTurns,
		OnTurn: func(snap game.Snapshot) {
			if renderErr == nil {
				renderErr = r.Render(snap.Board)
			}
		},
	})
	if err != nil {
		return err
	}
	if renderErr != nil {
		return renderErr
	}
	return r.Summary(sess.Board())
}
