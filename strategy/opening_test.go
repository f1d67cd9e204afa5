package strategy

import (
	"context"
	"math/rand"
	"testing"

	"tesuji-arena/engine"
	"tesuji-arena/engine/rules"
	"tesuji-arena/types"
)

func play(x, y int) types.Move {
	return types.PlayAt(types.Vertex{X: x, Y: y})
}

func TestOpening(t *testing.T) {
	ctx := context.Background()
	fallback := &stub{name: "fallback", move: play(4, 4)}
	o := NewOpening([]types.Move{play(2, 2), play(2, 2), types.PassMove()}, fallback)
	if err := o.Init(ctx, 5, 5); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if fallback.inits.Load() != 1 {
		t.Errorf("wrapped Init called %d times, want 1", fallback.inits.Load())
	}

	var b engine.Board = rules.New(5, 5)
	want := []types.Move{
		play(2, 2),       // scripted
		play(4, 4),       // (2,2) is taken, the wrapped strategy answers
		types.PassMove(), // scripted pass
		play(4, 4),       // opening exhausted
	}
	p := types.Black
	for i, w := range want {
		m, err := o.NextMove(ctx, b, p)
		if err != nil {
			t.Fatalf("move %d: %v", i+1, err)
		}
		if m != w {
			t.Fatalf("move %d = %v, want %v", i+1, m, w)
		}
		if i == 0 {
			if b, err = b.MakeMove(p, m, types.StrictMove); err != nil {
				t.Fatal(err)
			}
		}
		p = p.Opponent()
	}

	if err := o.Init(ctx, 5, 5); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if m, _ := o.NextMove(ctx, rules.New(5, 5), types.Black); m != play(2, 2) {
		t.Errorf("after Init, first move = %v, want the opening again", m)
	}
}

func TestFromConfigOpening(t *testing.T) {
	cfg := smallConfig()
	cfg.Strategies = []engine.StrategyWeight{{Kind: "random", Weight: 1}}
	cfg.Opening = []types.Move{play(0, 0)}
	s, err := FromConfig(cfg, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	o, ok := s.(*Opening)
	if !ok {
		t.Fatalf("FromConfig returned %T, want *Opening", s)
	}
	if o.Name() != "opening+random" {
		t.Errorf("Name = %q", o.Name())
	}
}
