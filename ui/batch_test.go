package ui

import (
	"bytes"
	"context"
	"io"
	"reflect"
	"strings"
	"testing"

	"tesuji-arena/engine"
	"tesuji-arena/types"
)

func randomConfig() engine.GameConfig {
	cfg := engine.DefaultConfig()
	cfg.BoardSize = 5
	cfg.MaxTurns = 60
	cfg.Seed = 7
	cfg.Strategies = []engine.StrategyWeight{{Kind: "random", Weight: 1}}
	return cfg
}

func TestRunBatch(t *testing.T) {
	cfg := randomConfig()
	opts := BatchOptions{Games: 4, Parallel: 2, Progress: io.Discard}
	summary, err := RunBatch(context.Background(), cfg, opts)
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	if summary.Games != 4 {
		t.Errorf("Games = %d, want 4", summary.Games)
	}
	if got := summary.Wins[types.Black] + summary.Wins[types.White] + summary.Ties; got != 4 {
		t.Errorf("wins and ties add up to %d, want 4", got)
	}
	if summary.Turns == 0 || summary.Turns > 4*cfg.MaxTurns {
		t.Errorf("Turns = %d, want between 1 and %d", summary.Turns, 4*cfg.MaxTurns)
	}

	again, err := RunBatch(context.Background(), cfg, BatchOptions{Games: 4, Parallel: 3})
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	if !reflect.DeepEqual(summary, again) {
		t.Errorf("same seed gave different batches:\n%+v\n%+v", summary, again)
	}
}

func TestRunBatchUnknownStrategy(t *testing.T) {
	cfg := randomConfig()
	cfg.Strategies = []engine.StrategyWeight{{Kind: "oracle", Weight: 1}}
	if _, err := RunBatch(context.Background(), cfg, BatchOptions{Games: 2}); err == nil {
		t.Error("RunBatch with an unknown strategy should fail")
	}
}

func TestBatchSummaryPrint(t *testing.T) {
	s := newBatchSummary()
	s.add(GameResult{Turns: 10, Winner: types.Black, Score: map[types.Player]int{types.Black: 5, types.White: 3}})
	s.add(GameResult{Turns: 20, Score: map[types.Player]int{types.Black: 4, types.White: 4},
		Captures: map[types.Player]int{types.White: 2}})

	var buf bytes.Buffer
	if err := s.Print(&buf, false); err != nil {
		t.Fatalf("Print: %v", err)
	}
	for _, want := range []string{
		"summary: 2 games, 1 ties, 15.0 turns per game",
		"black: 1 wins, 4.5 points, 0.0 captures per game",
		"white: 0 wins, 3.5 points, 1.0 captures per game",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("summary missing %q:\n%s", want, buf.String())
		}
	}
}
