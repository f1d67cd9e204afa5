package strategy

import (
	"context"
	"math/rand"
	"testing"

	"tesuji-arena/engine"
	"tesuji-arena/engine/rules"
	"tesuji-arena/types"
)

func TestRandomNeverIllegal(t *testing.T) {
	r := NewRandom(rand.New(rand.NewSource(1)))
	ctx := context.Background()

	for game := 0; game < 20; game++ {
		var b engine.Board = rules.New(5, 5)
		p := types.Black
		passes := 0
		for turn := 0; turn < 200 && passes < 2; turn++ {
			m, err := r.NextMove(ctx, b, p)
			if err != nil {
				t.Fatalf("NextMove: %v", err)
			}
			if m.Pass {
				passes++
			} else {
				passes = 0
				if a := b.AnalyzeMove(p, m.Vertex); !a.Legal() {
					t.Fatalf("game %d turn %d: %v at %v is illegal: %+v", game, turn, p, m.Vertex, a)
				}
			}
			next, err := b.MakeMove(p, m, types.StrictMove)
			if err != nil {
				t.Fatalf("game %d turn %d: MakeMove: %v", game, turn, err)
			}
			b = next
			p = p.Opponent()
		}
	}
}

func TestRandomPassesWhenExhausted(t *testing.T) {
	r := NewRandom(rand.New(rand.NewSource(1)))
	// The only empty point of a single-cell board is suicide.
	m, err := r.NextMove(context.Background(), rules.New(1, 1), types.Black)
	if err != nil {
		t.Fatalf("NextMove: %v", err)
	}
	if !m.Pass {
		t.Errorf("NextMove = %v, want pass", m)
	}

	full, err := rules.FromSigns([][]types.Sign{{1, 1}, {1, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if m, _ := r.NextMove(context.Background(), full, types.Black); !m.Pass {
		t.Errorf("NextMove filling its own last eye = %v, want pass", m)
	}
}

func TestRandomUnbiased(t *testing.T) {
	const (
		size   = 9
		trials = size * size * 100
	)
	r := NewRandom(rand.New(rand.NewSource(42)))
	b := rules.New(size, size)
	counts := make(map[types.Vertex]int)
	for i := 0; i < trials; i++ {
		m, err := r.NextMove(context.Background(), b, types.Black)
		if err != nil || m.Pass {
			t.Fatalf("NextMove = %v, %v", m, err)
		}
		counts[m.Vertex]++
	}

	if len(counts) != size*size {
		t.Errorf("%d distinct vertices chosen, want %d", len(counts), size*size)
	}
	expected := trials / (size * size)
	corners := []types.Vertex{{X: 0, Y: 0}, {X: size - 1, Y: 0}, {X: 0, Y: size - 1}, {X: size - 1, Y: size - 1}}
	for _, c := range corners {
		if n := counts[c]; n < expected/2 || n > expected*2 {
			t.Errorf("corner %v chosen %d times, want about %d", c, n, expected)
		}
	}
}
