package ui

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"tesuji-arena/engine"
	"tesuji-arena/engine/rules"
	"tesuji-arena/game"
	"tesuji-arena/strategy"
	"tesuji-arena/types"
)

// GameResult is the outcome of one self-play game. Scores are stones plus territory.
type GameResult struct {
	Turns    int
	Winner   types.Player // zero on a tie
	Score    map[types.Player]int
	Captures map[types.Player]int
}

// BatchSummary aggregates the results of a batch.
type BatchSummary struct {
	Games    int
	Ties     int
	Turns    int
	Wins     map[types.Player]int
	Score    map[types.Player]int
	Captures map[types.Player]int
}

func newBatchSummary() BatchSummary {
	return BatchSummary{
		Wins:     map[types.Player]int{},
		Score:    map[types.Player]int{},
		Captures: map[types.Player]int{},
	}
}

func (s *BatchSummary) add(r GameResult) {
	s.Games++
	s.Turns += r.Turns
	if r.Winner.Valid() {
		s.Wins[r.Winner]++
	} else {
		s.Ties++
	}
	for _, p := range []types.Player{types.Black, types.White} {
		s.Score[p] += r.Score[p]
		s.Captures[p] += r.Captures[p]
	}
}

// BatchOptions controls RunBatch.
type BatchOptions struct {
	Games    int
	Parallel int       // concurrent games; zero uses every CPU
	Progress io.Writer // progress bar output; nil disables the bar
}

// RunBatch plays opts.Games self-play games of cfg without delays and summarizes them.
// Every game gets its own strategies, seeded from cfg.Seed, so a fixed seed repeats the batch.
func RunBatch(ctx context.Context, cfg engine.GameConfig, opts BatchOptions) (BatchSummary, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	seeds := make([]int64, opts.Games)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = newBar(opts.Games, opts.Progress)
		defer bar.Close()
	}

	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	results := make([]GameResult, opts.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := range seeds {
		i := i
		g.Go(func() error {
			r, err := playOne(ctx, cfg, seeds[i])
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = r
			if bar != nil {
				bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchSummary{}, err
	}
	if bar != nil {
		bar.Finish()
	}

	summary := newBatchSummary()
	for _, r := range results {
		summary.add(r)
	}
	return summary, nil
}

func playOne(ctx context.Context, cfg engine.GameConfig, seed int64) (GameResult, error) {
	strat, err := strategy.FromConfig(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return GameResult{}, err
	}
	if err := strat.Init(ctx, cfg.BoardSize, cfg.BoardSize); err != nil {
		return GameResult{}, err
	}
	sess := game.New(rules.New(cfg.BoardSize, cfg.BoardSize))
	err = game.Play(ctx, sess, strat, game.PlayOptions{
		TurnTimeout: cfg.TurnTimeout,
		MaxTurns:    cfg.MaxTurns,
	})
	if err != nil {
		return GameResult{}, err
	}
	return resultOf(sess, cfg.Territory), nil
}

func resultOf(sess *game.Session, policy engine.TerritoryPolicy) GameResult {
	_, counts := sess.Territory(policy)
	r := GameResult{
		Turns:    sess.Turn(),
		Score:    map[types.Player]int{},
		Captures: sess.Scores(),
	}
	for _, p := range []types.Player{types.Black, types.White} {
		r.Score[p] = counts.Stones[p] + counts.Territory[p]
	}
	switch {
	case r.Score[types.Black] > r.Score[types.White]:
		r.Winner = types.Black
	case r.Score[types.White] > r.Score[types.Black]:
		r.Winner = types.White
	}
	return r
}

func newBar(n int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("self-play"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}

// Print writes the summary, coloured when color is set.
func (s BatchSummary) Print(w io.Writer, color bool) error {
	au := aurora.NewAurora(color)
	names := map[types.Player]aurora.Value{
		types.Black: au.Red("black"),
		types.White: au.Blue("white"),
	}
	if _, err := fmt.Fprintf(w, "%s %d games, %d ties, %.1f turns per game\n",
		au.Bold("summary:"), s.Games, s.Ties, perGame(s.Turns, s.Games)); err != nil {
		return err
	}
	for _, p := range []types.Player{types.Black, types.White} {
		_, err := fmt.Fprintf(w, "  %s: %d wins, %.1f points, %.1f captures per game\n",
			names[p], s.Wins[p], perGame(s.Score[p], s.Games), perGame(s.Captures[p], s.Games))
		if err != nil {
			return err
		}
	}
	return nil
}

func perGame(total, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(total) / float64(games)
}
