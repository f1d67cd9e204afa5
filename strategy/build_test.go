package strategy

import (
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"tesuji-arena/engine"
	"tesuji-arena/engine/rules"
	"tesuji-arena/policy"
	"tesuji-arena/types"
)

func smallConfig() engine.GameConfig {
	cfg := engine.DefaultConfig()
	cfg.BoardSize = 5
	cfg.Seed = 1
	return cfg
}

func TestFromConfigComposite(t *testing.T) {
	s, err := FromConfig(smallConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	c, ok := s.(*Composite)
	if !ok {
		t.Fatalf("FromConfig returned %T, want *Composite", s)
	}
	if err := c.Init(context.Background(), 5, 5); err != nil {
		t.Fatalf("Init: %v", err)
	}
	m, err := c.NextMove(context.Background(), rules.New(5, 5), types.Black)
	if err != nil {
		t.Fatalf("NextMove: %v", err)
	}
	if !m.Pass && (m.Vertex.X >= 5 || m.Vertex.Y >= 5) {
		t.Errorf("NextMove = %v, off the board", m)
	}
}

func TestFromConfigSingle(t *testing.T) {
	cfg := smallConfig()
	cfg.Strategies = []engine.StrategyWeight{{Kind: "random", Weight: 1}, {Kind: "policy", Weight: 0}}
	s, err := FromConfig(cfg, nil)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if _, ok := s.(*Random); !ok {
		t.Errorf("FromConfig returned %T, want *Random", s)
	}
}

func TestFromConfigErrors(t *testing.T) {
	cfg := smallConfig()
	cfg.Strategies = []engine.StrategyWeight{{Kind: "mcts", Weight: 1}}
	if _, err := FromConfig(cfg, nil); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("FromConfig error = %v, want ErrUnknownKind", err)
	}
	cfg.Strategies = nil
	if _, err := FromConfig(cfg, nil); !errors.Is(err, ErrNoStrategies) {
		t.Errorf("FromConfig error = %v, want ErrNoStrategies", err)
	}
}

func TestModelFromConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.json")
	if err := policy.Seeded(5, []int{4}, 2).Save(path); err != nil {
		t.Fatal(err)
	}
	cfg := smallConfig()
	cfg.ModelPath = path
	m, err := ModelFromConfig(cfg)(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Size() != 5 {
		t.Errorf("Size = %d, want 5", m.Size())
	}

	cfg.BoardSize = 9
	p := NewPolicy(ModelFromConfig(cfg))
	if err := p.Init(context.Background(), 9, 9); !errors.Is(err, ErrUnsupportedSize) {
		t.Errorf("Init error = %v, want ErrUnsupportedSize", err)
	}
}
